package controller

import (
	"errors"
	"net/http"

	httpdto "github.com/vibast-solutions/ms-go-authn/app/dto/http"
	"github.com/vibast-solutions/ms-go-authn/app/middleware"
	"github.com/vibast-solutions/ms-go-authn/app/service"
	"github.com/vibast-solutions/ms-go-authn/app/types"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

type AuthController struct {
	authService service.Authenticator
}

func NewAuthController(authService service.Authenticator) *AuthController {
	return &AuthController{authService: authService}
}

func (c *AuthController) CheckAvailability(ctx echo.Context) error {
	req, err := types.NewCheckAvailabilityRequestFromContext(ctx)
	if err != nil {
		logrus.WithError(err).Debug("Failed to bind check availability request")
		return ctx.JSON(http.StatusBadRequest, httpdto.ErrorResponse{Error: "invalid request body"})
	}

	available, err := c.authService.CheckAvailability(ctx.Request().Context(), toServiceField(req.GetField()), req.GetValue())
	if err != nil {
		return writeError(ctx, logrus.WithField("field", req.GetField().String()), "Check availability", err)
	}

	return writeProtoJSON(ctx, http.StatusOK, &types.CheckAvailabilityResponse{IsAvailable: available})
}

func (c *AuthController) SignUp(ctx echo.Context) error {
	req, err := types.NewSignUpRequestFromContext(ctx)
	if err != nil {
		logrus.WithError(err).Debug("Failed to bind sign-up request")
		return ctx.JSON(http.StatusBadRequest, httpdto.ErrorResponse{Error: "invalid request body"})
	}

	logger := logrus.WithFields(logrus.Fields{
		"username": req.GetUsername(),
		"email":    req.GetEmail(),
	})
	if err = req.Validate(); err != nil {
		logger.Debug("Sign-up validation failed")
		return ctx.JSON(http.StatusBadRequest, httpdto.ErrorResponse{Error: err.Error()})
	}

	logger.Info("Sign-up request received")
	res, err := c.authService.SignUp(ctx.Request().Context(), req.GetUsername(), req.GetEmail(), req.GetPassword())
	if err != nil {
		return writeError(ctx, logger, "Sign-up", err)
	}

	logger.WithField("user_id", res.AccountID).Info("Account created")
	return writeProtoJSON(ctx, http.StatusCreated, &types.SignUpResponse{UserId: res.AccountID, Message: res.Message})
}

func (c *AuthController) VerifyEmail(ctx echo.Context) error {
	req, err := types.NewVerifyEmailRequestFromContext(ctx)
	if err != nil {
		logrus.WithError(err).Debug("Failed to bind verify email request")
		return ctx.JSON(http.StatusBadRequest, httpdto.ErrorResponse{Error: "invalid request body"})
	}

	logrus.Info("Verify email request received")
	err = c.authService.VerifyEmail(ctx.Request().Context(), req.GetVerificationToken())
	if err != nil {
		if service.IsTokenError(err) {
			logrus.WithError(err).Info("Verify email rejected")
			return writeProtoJSON(ctx, http.StatusOK, &types.VerifyEmailResponse{
				Success: false,
				Message: service.MessageVerificationFailed,
			})
		}
		return writeError(ctx, logrus.NewEntry(logrus.StandardLogger()), "Verify email", err)
	}

	return writeProtoJSON(ctx, http.StatusOK, &types.VerifyEmailResponse{Success: true, Message: service.MessageEmailVerified})
}

func (c *AuthController) SignIn(ctx echo.Context) error {
	req, err := types.NewSignInRequestFromContext(ctx)
	if err != nil {
		logrus.WithError(err).Debug("Failed to bind sign-in request")
		return ctx.JSON(http.StatusBadRequest, httpdto.ErrorResponse{Error: "invalid request body"})
	}

	logger := logrus.WithField("email", req.GetEmail())
	if err = req.Validate(); err != nil {
		logger.Debug("Sign-in validation failed")
		return ctx.JSON(http.StatusBadRequest, httpdto.ErrorResponse{Error: err.Error()})
	}

	logger.Info("Sign-in request received")
	pair, err := c.authService.SignIn(ctx.Request().Context(), req.GetEmail(), req.GetPassword())
	if err != nil {
		return writeError(ctx, logger, "Sign-in", err)
	}

	logger.WithField("user_id", pair.AccountID).Info("Sign-in successful")
	return writeProtoJSON(ctx, http.StatusOK, &types.SignInResponse{Tokens: &types.Tokens{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}})
}

func (c *AuthController) RefreshToken(ctx echo.Context) error {
	req, err := types.NewRefreshTokenRequestFromContext(ctx)
	if err != nil {
		logrus.WithError(err).Debug("Failed to bind refresh token request")
		return ctx.JSON(http.StatusBadRequest, httpdto.ErrorResponse{Error: "invalid request body"})
	}

	logrus.Info("Refresh token request received")
	pair, err := c.authService.RefreshToken(ctx.Request().Context(), req.GetRefreshToken())
	if err != nil {
		return writeError(ctx, logrus.NewEntry(logrus.StandardLogger()), "Refresh token", err)
	}

	logrus.WithField("user_id", pair.AccountID).Info("Refresh token rotated")
	return writeProtoJSON(ctx, http.StatusOK, &types.RefreshTokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	})
}

func (c *AuthController) RequestPasswordReset(ctx echo.Context) error {
	req, err := types.NewRequestPasswordResetRequestFromContext(ctx)
	if err != nil {
		logrus.WithError(err).Debug("Failed to bind password reset request")
		return ctx.JSON(http.StatusBadRequest, httpdto.ErrorResponse{Error: "invalid request body"})
	}

	logger := logrus.WithField("email", req.GetEmail())
	if err = req.Validate(); err != nil {
		logger.Debug("Password reset request validation failed")
		return ctx.JSON(http.StatusBadRequest, httpdto.ErrorResponse{Error: err.Error()})
	}

	logger.Info("Password reset requested")
	if err = c.authService.RequestPasswordReset(ctx.Request().Context(), req.GetEmail()); err != nil {
		return writeError(ctx, logger, "Password reset request", err)
	}

	return writeProtoJSON(ctx, http.StatusOK, &types.RequestPasswordResetResponse{Message: service.MessagePasswordResetRequest})
}

func (c *AuthController) ResetPassword(ctx echo.Context) error {
	req, err := types.NewResetPasswordRequestFromContext(ctx)
	if err != nil {
		logrus.WithError(err).Debug("Failed to bind reset password request")
		return ctx.JSON(http.StatusBadRequest, httpdto.ErrorResponse{Error: "invalid request body"})
	}

	if err = req.Validate(); err != nil {
		logrus.Debug("Reset password validation failed")
		return ctx.JSON(http.StatusBadRequest, httpdto.ErrorResponse{Error: err.Error()})
	}

	logrus.Info("Reset password request received")
	err = c.authService.ResetPassword(ctx.Request().Context(), req.GetResetToken(), req.GetNewPassword())
	if err != nil {
		if service.IsTokenError(err) {
			logrus.WithError(err).Info("Reset password rejected")
			return writeProtoJSON(ctx, http.StatusOK, &types.ResetPasswordResponse{
				Success: false,
				Message: service.MessageResetFailed,
			})
		}
		return writeError(ctx, logrus.NewEntry(logrus.StandardLogger()), "Reset password", err)
	}

	logrus.Info("Password reset successful")
	return writeProtoJSON(ctx, http.StatusOK, &types.ResetPasswordResponse{Success: true, Message: service.MessagePasswordReset})
}

func (c *AuthController) ResendVerification(ctx echo.Context) error {
	req, err := types.NewResendVerificationRequestFromContext(ctx)
	if err != nil {
		logrus.WithError(err).Debug("Failed to bind resend verification request")
		return ctx.JSON(http.StatusBadRequest, httpdto.ErrorResponse{Error: "invalid request body"})
	}

	logger := logrus.WithField("email", req.GetEmail())
	if err = req.Validate(); err != nil {
		logger.Debug("Resend verification validation failed")
		return ctx.JSON(http.StatusBadRequest, httpdto.ErrorResponse{Error: err.Error()})
	}

	logger.Info("Resend verification requested")
	if err = c.authService.ResendVerification(ctx.Request().Context(), req.GetEmail()); err != nil {
		return writeError(ctx, logger, "Resend verification", err)
	}

	return writeProtoJSON(ctx, http.StatusOK, &types.ResendVerificationResponse{Message: service.MessageVerificationResent})
}

func (c *AuthController) ValidateToken(ctx echo.Context) error {
	req, err := types.NewValidateTokenRequestFromContext(ctx)
	if err != nil {
		logrus.WithError(err).Debug("Failed to bind validate token request")
		return ctx.JSON(http.StatusBadRequest, httpdto.ErrorResponse{Error: "invalid request body"})
	}

	if err = req.Validate(); err != nil {
		logrus.Debug("Validate token validation failed")
		return ctx.JSON(http.StatusBadRequest, httpdto.ErrorResponse{Error: err.Error()})
	}

	claims, err := c.authService.ValidateAccessToken(ctx.Request().Context(), req.GetAccessToken())
	if err != nil {
		if service.IsTokenError(err) {
			logrus.WithError(err).Debug("Validate token failed")
			return writeProtoJSON(ctx, http.StatusOK, &types.ValidateTokenResponse{Valid: false})
		}
		return writeError(ctx, logrus.NewEntry(logrus.StandardLogger()), "Validate token", err)
	}

	logrus.WithField("user_id", claims.AccountID).Debug("Validate token succeeded")
	return writeProtoJSON(ctx, http.StatusOK, &types.ValidateTokenResponse{
		Valid:     true,
		UserId:    claims.AccountID,
		ExpiresAt: claims.ExpiresAt.Unix(),
	})
}

func (c *AuthController) SignOut(ctx echo.Context) error {
	req, err := types.NewSignOutRequestFromContext(ctx)
	if err != nil {
		logrus.WithError(err).Debug("Failed to bind sign-out request")
		return ctx.JSON(http.StatusBadRequest, httpdto.ErrorResponse{Error: "invalid request body"})
	}

	if err = req.Validate(); err != nil {
		logrus.Debug("Sign-out validation failed")
		return ctx.JSON(http.StatusBadRequest, httpdto.ErrorResponse{Error: err.Error()})
	}

	logrus.Info("Sign-out request received")
	if err = c.authService.SignOut(ctx.Request().Context(), req.GetRefreshToken()); err != nil {
		return writeError(ctx, logrus.NewEntry(logrus.StandardLogger()), "Sign-out", err)
	}

	return writeProtoJSON(ctx, http.StatusOK, &types.SignOutResponse{Message: "signed out"})
}

// Me echoes the claims the auth middleware accepted.
func (c *AuthController) Me(ctx echo.Context) error {
	claims, ok := ctx.Get(middleware.ContextKeyClaims).(*service.AccessClaims)
	if !ok {
		logrus.Warn("Me failed: missing claims in context")
		return ctx.JSON(http.StatusUnauthorized, httpdto.ErrorResponse{Error: "unauthorized"})
	}

	return ctx.JSON(http.StatusOK, httpdto.MeResponse{
		UserID:    claims.AccountID,
		IssuedAt:  claims.IssuedAt.Unix(),
		ExpiresAt: claims.ExpiresAt.Unix(),
	})
}

func toServiceField(field types.AvailabilityField) service.Field {
	switch field {
	case types.AvailabilityField_FIELD_USERNAME:
		return service.FieldUsername
	case types.AvailabilityField_FIELD_EMAIL:
		return service.FieldEmail
	default:
		return service.FieldUnspecified
	}
}

func writeError(ctx echo.Context, logger *logrus.Entry, operation string, err error) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		logger.WithError(err).Debug(operation + " validation failed")
		return ctx.JSON(http.StatusBadRequest, httpdto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrDuplicate):
		logger.Warn(operation + " failed: duplicate")
		return ctx.JSON(http.StatusConflict, httpdto.ErrorResponse{Error: service.ErrDuplicate.Error()})
	case errors.Is(err, service.ErrInvalidCredentials), service.IsTokenError(err):
		logger.WithError(err).Warn(operation + " failed: invalid credentials")
		return ctx.JSON(http.StatusUnauthorized, httpdto.ErrorResponse{Error: service.ErrInvalidCredentials.Error()})
	case errors.Is(err, service.ErrAccountNotVerified):
		logger.Warn(operation + " failed: account not verified")
		return ctx.JSON(http.StatusForbidden, httpdto.ErrorResponse{Error: service.ErrAccountNotVerified.Error()})
	case errors.Is(err, service.ErrRateLimited):
		logger.Warn(operation + " failed: rate limited")
		return ctx.JSON(http.StatusTooManyRequests, httpdto.ErrorResponse{Error: service.ErrRateLimited.Error()})
	case errors.Is(err, service.ErrTransient):
		logger.WithError(err).Error(operation + " failed: transient")
		return ctx.JSON(http.StatusServiceUnavailable, httpdto.ErrorResponse{Error: service.ErrTransient.Error()})
	default:
		logger.WithError(err).Error(operation + " failed")
		return ctx.JSON(http.StatusInternalServerError, httpdto.ErrorResponse{Error: "internal server error"})
	}
}

func writeProtoJSON(ctx echo.Context, statusCode int, message proto.Message) error {
	payload, err := protojson.MarshalOptions{
		UseProtoNames:   true,
		EmitUnpopulated: true,
	}.Marshal(message)
	if err != nil {
		logrus.WithError(err).Error("Failed to marshal protobuf response")
		return ctx.JSON(http.StatusInternalServerError, httpdto.ErrorResponse{Error: "internal server error"})
	}

	return ctx.Blob(statusCode, echo.MIMEApplicationJSONCharsetUTF8, payload)
}
