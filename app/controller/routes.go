package controller

import (
	"github.com/vibast-solutions/ms-go-authn/app/middleware"

	"github.com/labstack/echo/v4"
)

// RegisterRoutes mounts the auth endpoints under /auth.
func RegisterRoutes(e *echo.Echo, c *AuthController, m *middleware.AuthMiddleware) {
	auth := e.Group("/auth")
	auth.POST("/check-availability", c.CheckAvailability)
	auth.POST("/sign-up", c.SignUp)
	auth.POST("/verify-email", c.VerifyEmail)
	auth.POST("/sign-in", c.SignIn)
	auth.POST("/refresh-token", c.RefreshToken)
	auth.POST("/request-password-reset", c.RequestPasswordReset)
	auth.POST("/reset-password", c.ResetPassword)
	auth.POST("/resend-verification", c.ResendVerification)
	auth.POST("/validate-token", c.ValidateToken)
	auth.POST("/sign-out", c.SignOut)

	authProtected := auth.Group("")
	authProtected.Use(m.RequireAuth)
	authProtected.GET("/me", c.Me)
}
