package httpserver

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/avatarctic/inventory-service/internal/core/ports"
	customMiddleware "github.com/avatarctic/inventory-service/internal/infrastructure/httpserver/middleware"
)

type ServerConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type ServerDeps struct {
	HealthService ports.HealthService
}

type Server struct {
	echo       *echo.Echo
	config     *ServerConfig
	logger     *logrus.Logger
	healthSvc  ports.HealthService
	middleware *customMiddleware.MiddlewareCollection
}

func NewServer(serverConfig *ServerConfig, logger *logrus.Logger, deps ServerDeps) *Server {
	e := echo.New()
	e.HideBanner = true

	server := &Server{
		echo:      e,
		config:    serverConfig,
		logger:    logger,
		healthSvc: deps.HealthService,
		middleware: customMiddleware.NewMiddlewareCollection(
			logger,
			GetRequestsTotal(),
			GetRequestDuration(),
		),
	}

	server.setupMiddleware()
	server.setupRoutes()

	return server
}
