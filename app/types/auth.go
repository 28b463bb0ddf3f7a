package types

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/labstack/echo/v4"
	"google.golang.org/protobuf/encoding/protojson"
)

// NewCheckAvailabilityRequestFromContext decodes with protojson so the enum
// accepts both its name ("FIELD_EMAIL") and its number.
func NewCheckAvailabilityRequestFromContext(ctx echo.Context) (*CheckAvailabilityRequest, error) {
	raw, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return nil, err
	}

	var body CheckAvailabilityRequest
	if err = (protojson.UnmarshalOptions{DiscardUnknown: true}).Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("invalid request body: %w", err)
	}

	return &body, nil
}

func NewSignUpRequestFromContext(ctx echo.Context) (*SignUpRequest, error) {
	var body SignUpRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}

	return &body, nil
}

func (r *SignUpRequest) Validate() error {
	if strings.TrimSpace(r.GetUsername()) == "" || strings.TrimSpace(r.GetEmail()) == "" || r.GetPassword() == "" {
		return errors.New("username, email and password are required")
	}

	return nil
}

func NewVerifyEmailRequestFromContext(ctx echo.Context) (*VerifyEmailRequest, error) {
	var body VerifyEmailRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}

	return &body, nil
}

func NewSignInRequestFromContext(ctx echo.Context) (*SignInRequest, error) {
	var body SignInRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}

	return &body, nil
}

func (r *SignInRequest) Validate() error {
	if strings.TrimSpace(r.GetEmail()) == "" || r.GetPassword() == "" {
		return errors.New("email and password are required")
	}

	return nil
}

func NewRefreshTokenRequestFromContext(ctx echo.Context) (*RefreshTokenRequest, error) {
	var body RefreshTokenRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}

	return &body, nil
}

func NewRequestPasswordResetRequestFromContext(ctx echo.Context) (*RequestPasswordResetRequest, error) {
	var body RequestPasswordResetRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}

	return &body, nil
}

func (r *RequestPasswordResetRequest) Validate() error {
	if strings.TrimSpace(r.GetEmail()) == "" {
		return errors.New("email is required")
	}

	return nil
}

func NewResetPasswordRequestFromContext(ctx echo.Context) (*ResetPasswordRequest, error) {
	var body ResetPasswordRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}

	return &body, nil
}

func (r *ResetPasswordRequest) Validate() error {
	if strings.TrimSpace(r.GetResetToken()) == "" {
		return errors.New("reset_token is required")
	}
	if r.GetNewPassword() == "" {
		return errors.New("new_password is required")
	}

	return nil
}

func NewResendVerificationRequestFromContext(ctx echo.Context) (*ResendVerificationRequest, error) {
	var body ResendVerificationRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}

	return &body, nil
}

func (r *ResendVerificationRequest) Validate() error {
	if strings.TrimSpace(r.GetEmail()) == "" {
		return errors.New("email is required")
	}

	return nil
}

func NewValidateTokenRequestFromContext(ctx echo.Context) (*ValidateTokenRequest, error) {
	var body ValidateTokenRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}

	return &body, nil
}

func (r *ValidateTokenRequest) Validate() error {
	if strings.TrimSpace(r.GetAccessToken()) == "" {
		return errors.New("access_token is required")
	}

	return nil
}

func NewSignOutRequestFromContext(ctx echo.Context) (*SignOutRequest, error) {
	var body SignOutRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}

	return &body, nil
}

func (r *SignOutRequest) Validate() error {
	if strings.TrimSpace(r.GetRefreshToken()) == "" {
		return errors.New("refresh_token is required")
	}

	return nil
}
