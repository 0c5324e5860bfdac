package httpserver

func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.healthCheck)
	s.echo.GET("/health/ready", s.readinessCheck)
	s.echo.GET("/health/live", s.livenessCheck)
	s.echo.GET("/metrics", s.metricsEndpoint)
}
