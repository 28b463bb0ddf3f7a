package cmd

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/vibast-solutions/ms-go-authn/app/controller"
	authgrpc "github.com/vibast-solutions/ms-go-authn/app/grpc"
	"github.com/vibast-solutions/ms-go-authn/app/middleware"
	"github.com/vibast-solutions/ms-go-authn/app/service"
	"github.com/vibast-solutions/ms-go-authn/app/telemetry"
	"github.com/vibast-solutions/ms-go-authn/app/types"
	"github.com/vibast-solutions/ms-go-authn/config"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
)

const (
	serviceName     = "ms-go-authn"
	shutdownTimeout = 10 * time.Second
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP and gRPC servers",
	Long:  `Start both HTTP (Echo) and gRPC servers for the authentication service.`,
	Run:   runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}
	if err := configureLogging(cfg); err != nil {
		logrus.WithError(err).Fatal("Failed to configure logging")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.OTel, serviceName)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to set up tracing")
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logrus.WithError(err).Warn("Failed to flush traces")
		}
	}()

	a, err := buildApp(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialise service")
	}
	defer a.Close()

	httpServer := newHTTPServer(a.auth)
	grpcServer := newGRPCServer(a.auth)

	errCh := make(chan error, 2)
	go func() {
		errCh <- startHTTPServer(cfg, httpServer)
	}()
	go func() {
		errCh <- startGRPCServer(cfg, grpcServer)
	}()
	go runSweeper(ctx, a.auth, cfg.PurgeInterval)

	select {
	case <-ctx.Done():
		logrus.Info("Shutdown signal received")
	case err := <-errCh:
		logrus.WithError(err).Error("Server stopped unexpectedly")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Warn("HTTP server shutdown failed")
	}
	grpcServer.GracefulStop()
	logrus.Info("Servers stopped")
}

func newHTTPServer(authService service.Authenticator) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogRemoteIP:  true,
		LogLatency:   true,
		LogUserAgent: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			fields := logrus.Fields{
				"remote_ip":  v.RemoteIP,
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency_ms": v.Latency.Milliseconds(),
				"user_agent": v.UserAgent,
			}
			entry := logrus.WithFields(fields)
			if v.Error != nil {
				entry = entry.WithError(v.Error)
			}
			entry.Info("http_request")
			return nil
		},
	}))
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	controller.RegisterRoutes(e, controller.NewAuthController(authService), middleware.NewAuthMiddleware(authService))
	return e
}

func startHTTPServer(cfg *config.Config, e *echo.Echo) error {
	httpAddr := net.JoinHostPort(cfg.HTTP.Host, cfg.HTTP.Port)
	logrus.WithField("addr", httpAddr).Info("Starting HTTP server")
	if err := e.Start(httpAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func newGRPCServer(authService service.Authenticator) *grpc.Server {
	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			authgrpc.RecoveryUnaryInterceptor(),
			authgrpc.LoggingUnaryInterceptor(),
		),
	)
	types.RegisterAuthServiceServer(grpcServer, authgrpc.NewAuthServer(authService))
	return grpcServer
}

func startGRPCServer(cfg *config.Config, grpcServer *grpc.Server) error {
	grpcAddr := net.JoinHostPort(cfg.GRPC.Host, cfg.GRPC.Port)
	lis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		return err
	}

	logrus.WithField("addr", grpcAddr).Info("Starting gRPC server")
	return grpcServer.Serve(lis)
}

// runSweeper purges expired tokens every interval until ctx is done.
func runSweeper(ctx context.Context, authService *service.AuthService, interval time.Duration) {
	if interval <= 0 {
		logrus.Info("Token sweeper disabled")
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			refresh, verification, err := authService.PurgeExpired(ctx)
			if err != nil {
				logrus.WithError(err).Warn("Token sweep failed")
				continue
			}
			logrus.WithFields(logrus.Fields{
				"refresh_tokens":      refresh,
				"verification_tokens": verification,
			}).Info("Expired tokens purged")
		}
	}
}
