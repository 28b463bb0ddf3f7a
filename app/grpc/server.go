package grpc

import (
	"context"
	"errors"

	"github.com/vibast-solutions/ms-go-authn/app/service"
	"github.com/vibast-solutions/ms-go-authn/app/types"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type AuthServer struct {
	types.UnimplementedAuthServiceServer
	authService service.Authenticator
}

func NewAuthServer(authService service.Authenticator) *AuthServer {
	return &AuthServer{authService: authService}
}

func (s *AuthServer) CheckAvailability(ctx context.Context, req *types.CheckAvailabilityRequest) (*types.CheckAvailabilityResponse, error) {
	logger := logrus.WithField("field", req.GetField().String())
	logger.Debug("Check availability request received (grpc)")

	available, err := s.authService.CheckAvailability(ctx, toServiceField(req.GetField()), req.GetValue())
	if err != nil {
		logger.WithError(err).Error("Check availability failed (grpc)")
		return nil, toStatus(err)
	}

	return &types.CheckAvailabilityResponse{IsAvailable: available}, nil
}

func (s *AuthServer) SignUp(ctx context.Context, req *types.SignUpRequest) (*types.SignUpResponse, error) {
	logger := logrus.WithFields(logrus.Fields{
		"username": req.GetUsername(),
		"email":    req.GetEmail(),
	})
	if err := req.Validate(); err != nil {
		logger.Debug("Sign-up validation failed (grpc)")
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	logger.Info("Sign-up request received (grpc)")
	res, err := s.authService.SignUp(ctx, req.GetUsername(), req.GetEmail(), req.GetPassword())
	if err != nil {
		logFailure(logger, "Sign-up", err)
		return nil, toStatus(err)
	}

	logger.WithField("user_id", res.AccountID).Info("Account created (grpc)")
	return &types.SignUpResponse{UserId: res.AccountID, Message: res.Message}, nil
}

// VerifyEmail never fails hard on a bad token; the outcome is in Success.
func (s *AuthServer) VerifyEmail(ctx context.Context, req *types.VerifyEmailRequest) (*types.VerifyEmailResponse, error) {
	logrus.Info("Verify email request received (grpc)")

	err := s.authService.VerifyEmail(ctx, req.GetVerificationToken())
	if err != nil {
		if service.IsTokenError(err) {
			logrus.WithError(err).Info("Verify email rejected (grpc)")
			return &types.VerifyEmailResponse{Success: false, Message: service.MessageVerificationFailed}, nil
		}
		logFailure(logrus.NewEntry(logrus.StandardLogger()), "Verify email", err)
		return nil, toStatus(err)
	}

	return &types.VerifyEmailResponse{Success: true, Message: service.MessageEmailVerified}, nil
}

func (s *AuthServer) SignIn(ctx context.Context, req *types.SignInRequest) (*types.SignInResponse, error) {
	logger := logrus.WithField("email", req.GetEmail())
	if err := req.Validate(); err != nil {
		logger.Debug("Sign-in validation failed (grpc)")
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	logger.Info("Sign-in request received (grpc)")
	pair, err := s.authService.SignIn(ctx, req.GetEmail(), req.GetPassword())
	if err != nil {
		logFailure(logger, "Sign-in", err)
		return nil, toStatus(err)
	}

	logger.WithField("user_id", pair.AccountID).Info("Sign-in successful (grpc)")
	return &types.SignInResponse{Tokens: &types.Tokens{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}}, nil
}

func (s *AuthServer) RefreshToken(ctx context.Context, req *types.RefreshTokenRequest) (*types.RefreshTokenResponse, error) {
	logrus.Info("Refresh token request received (grpc)")

	pair, err := s.authService.RefreshToken(ctx, req.GetRefreshToken())
	if err != nil {
		logFailure(logrus.NewEntry(logrus.StandardLogger()), "Refresh token", err)
		return nil, toStatus(err)
	}

	logrus.WithField("user_id", pair.AccountID).Info("Refresh token rotated (grpc)")
	return &types.RefreshTokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}

func (s *AuthServer) RequestPasswordReset(ctx context.Context, req *types.RequestPasswordResetRequest) (*types.RequestPasswordResetResponse, error) {
	logger := logrus.WithField("email", req.GetEmail())
	if err := req.Validate(); err != nil {
		logger.Debug("Password reset request validation failed (grpc)")
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	logger.Info("Password reset request received (grpc)")
	if err := s.authService.RequestPasswordReset(ctx, req.GetEmail()); err != nil {
		logFailure(logger, "Password reset request", err)
		return nil, toStatus(err)
	}

	return &types.RequestPasswordResetResponse{Message: service.MessagePasswordResetRequest}, nil
}

func (s *AuthServer) ResetPassword(ctx context.Context, req *types.ResetPasswordRequest) (*types.ResetPasswordResponse, error) {
	if err := req.Validate(); err != nil {
		logrus.Debug("Reset password validation failed (grpc)")
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	logrus.Info("Reset password request received (grpc)")
	err := s.authService.ResetPassword(ctx, req.GetResetToken(), req.GetNewPassword())
	if err != nil {
		if service.IsTokenError(err) {
			logrus.WithError(err).Info("Reset password rejected (grpc)")
			return &types.ResetPasswordResponse{Success: false, Message: service.MessageResetFailed}, nil
		}
		logFailure(logrus.NewEntry(logrus.StandardLogger()), "Reset password", err)
		return nil, toStatus(err)
	}

	return &types.ResetPasswordResponse{Success: true, Message: service.MessagePasswordReset}, nil
}

func (s *AuthServer) ResendVerification(ctx context.Context, req *types.ResendVerificationRequest) (*types.ResendVerificationResponse, error) {
	logger := logrus.WithField("email", req.GetEmail())
	if err := req.Validate(); err != nil {
		logger.Debug("Resend verification validation failed (grpc)")
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	logger.Info("Resend verification request received (grpc)")
	if err := s.authService.ResendVerification(ctx, req.GetEmail()); err != nil {
		logFailure(logger, "Resend verification", err)
		return nil, toStatus(err)
	}

	return &types.ResendVerificationResponse{Message: service.MessageVerificationResent}, nil
}

// ValidateToken answers Valid=false for any rejected token.
func (s *AuthServer) ValidateToken(ctx context.Context, req *types.ValidateTokenRequest) (*types.ValidateTokenResponse, error) {
	if err := req.Validate(); err != nil {
		logrus.Debug("Validate token validation failed (grpc)")
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	claims, err := s.authService.ValidateAccessToken(ctx, req.GetAccessToken())
	if err != nil {
		if service.IsTokenError(err) {
			logrus.WithError(err).Debug("Access token rejected (grpc)")
			return &types.ValidateTokenResponse{Valid: false}, nil
		}
		logFailure(logrus.NewEntry(logrus.StandardLogger()), "Validate token", err)
		return nil, toStatus(err)
	}

	return &types.ValidateTokenResponse{
		Valid:     true,
		UserId:    claims.AccountID,
		ExpiresAt: claims.ExpiresAt.Unix(),
	}, nil
}

func (s *AuthServer) SignOut(ctx context.Context, req *types.SignOutRequest) (*types.SignOutResponse, error) {
	if err := req.Validate(); err != nil {
		logrus.Debug("Sign-out validation failed (grpc)")
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	logrus.Info("Sign-out request received (grpc)")
	if err := s.authService.SignOut(ctx, req.GetRefreshToken()); err != nil {
		logFailure(logrus.NewEntry(logrus.StandardLogger()), "Sign-out", err)
		return nil, toStatus(err)
	}

	return &types.SignOutResponse{Message: "signed out"}, nil
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

// toStatus maps service errors onto gRPC codes with non-revealing messages.
func toStatus(err error) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, service.ErrDuplicate):
		return status.Error(codes.AlreadyExists, service.ErrDuplicate.Error())
	case errors.Is(err, service.ErrInvalidCredentials), service.IsTokenError(err):
		return status.Error(codes.Unauthenticated, service.ErrInvalidCredentials.Error())
	case errors.Is(err, service.ErrAccountNotVerified):
		return status.Error(codes.PermissionDenied, service.ErrAccountNotVerified.Error())
	case errors.Is(err, service.ErrRateLimited):
		return status.Error(codes.ResourceExhausted, service.ErrRateLimited.Error())
	case errors.Is(err, service.ErrTransient):
		return status.Error(codes.Unavailable, service.ErrTransient.Error())
	default:
		return status.Error(codes.Internal, "internal server error")
	}
}

func logFailure(logger *logrus.Entry, operation string, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		logger.WithError(err).Debug(operation + " validation failed (grpc)")
	case errors.Is(err, service.ErrTransient):
		logger.WithError(err).Error(operation + " failed: transient (grpc)")
	case errors.Is(err, service.ErrDuplicate),
		errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrAccountNotVerified),
		errors.Is(err, service.ErrRateLimited),
		service.IsTokenError(err):
		logger.WithError(err).Warn(operation + " failed (grpc)")
	default:
		logger.WithError(err).Error(operation + " failed (grpc)")
	}
}
