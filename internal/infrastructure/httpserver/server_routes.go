package httpserver

func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.healthCheck)
	s.echo.GET("/metrics", s.metricsEndpoint)

	api := s.echo.Group("/api/v1")

	auth := api.Group("/auth")
	auth.POST("/login", s.login)

	properties := api.Group("/properties")
	properties.GET("", s.searchProperties)
	properties.GET("/:id", s.getProperty)

	pois := api.Group("/pois")
	pois.GET("", s.discoverPOIs)
	pois.GET("/categories", s.listPOICategories)
	pois.GET("/:id", s.getPOI)

	bookings := api.Group("/bookings")
	bookings.POST("", s.createBooking)
	bookings.GET("", s.listGuestBookings)
	bookings.GET("/:id", s.getBooking)
	bookings.POST("/:id/cancel", s.cancelBooking)

	chat := api.Group("/chat")
	chat.POST("/messages", s.sendChatMessage)

	admin := api.Group("/admin")
	admin.Use(s.middleware.JWT.RequireJWT())
	admin.POST("/properties", s.createProperty)
	admin.PUT("/properties/:id", s.updateProperty)
	admin.DELETE("/properties/:id", s.deleteProperty)
	admin.GET("/analytics/searches", s.getSearchEvents)
	admin.GET("/analytics/summary", s.getSearchSummary)
	admin.DELETE("/cache", s.purgeCaches)
}
