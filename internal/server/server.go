// Package server exposes the analysis engine over HTTP.
package server

import (
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
)

// Server wires the engine's handlers onto an echo instance.
type Server struct {
	Config *Config
}

// New builds the echo instance with all routes registered.
func New(cfg *Config) *echo.Echo {
	s := &Server{Config: cfg}

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.GET("/service-info", s.GetServiceInfo)
	e.POST("/validate", s.PostValidate)
	e.POST("/analyze", s.PostAnalyze)
	e.POST("/mutations", s.PostMutations)

	return e
}
