package http

import (
	"context"
	"log/slog"
	"net"
	"strconv"
	"strings"

	"mylot/config"
	"mylot/internal/delivery"
	deliverymiddleware "mylot/internal/delivery/middleware"

	httpmiddleware "mylot/internal/delivery/http/middleware"
	"mylot/internal/delivery/http/router"
	"mylot/internal/delivery/http/validator"
	"mylot/internal/delivery/http/view"
	"mylot/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
)

type HTTPParams struct {
	fx.In
	fx.Lifecycle

	Config          *config.Config
	Logger          *slog.Logger
	ErrorMiddleware *httpmiddleware.ErrorMiddleware
	RouterParams    router.RouterParams
}

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

func NewServer(params HTTPParams) (delivery.Delivery, error) {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.Validator = validator.New()
	echoServer.HTTPErrorHandler = params.ErrorMiddleware.HandleHTTPError

	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, err
	}
	echoServer.Renderer = renderer

	echoServer.Use(middleware.Recover())
	echoServer.Use(deliverymiddleware.NewRequestIDMiddleware(params.Logger).Process)
	echoServer.Use(deliverymiddleware.NewLoggerMiddleware(params.Logger, params.Config).Handle)
	echoServer.Use(slogecho.New(params.Logger))
	echoServer.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     params.Config.HTTP.CORS.AllowOrigins,
		AllowCredentials: true,
	}))

	// The stateless API authenticates by token, so CSRF protection only
	// covers the cookie-backed web forms.
	echoServer.Use(middleware.CSRFWithConfig(middleware.CSRFConfig{
		TokenLookup:    "form:csrf,header:X-CSRF-Token",
		ContextKey:     "csrf",
		CookieName:     "_csrf",
		CookieHTTPOnly: true,
		CookieSecure:   params.Config.HTTP.Cookie.Secure,
		Skipper: func(c echo.Context) bool {
			return strings.HasPrefix(c.Path(), "/api/") || c.Path() == "/health"
		},
	}))

	router := router.NewRouter(params.RouterParams)
	router.RegisterRoutes(echoServer)

	delivery := &httpServer{
		cfg:    params.Config,
		logger: params.Logger,
		server: echoServer,
	}

	params.Append(fx.Hook{
		OnStop: delivery.stop,
	})

	return delivery, nil
}

func (s *httpServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting HTTP server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil {
		return errors.Wrap(err, "failed to serve http")
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
