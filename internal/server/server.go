package server

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agenthands/kgbridge/internal/config"
	"github.com/agenthands/kgbridge/internal/converter"
	"github.com/agenthands/kgbridge/internal/driver"
)

// Server exposes the converter over HTTP for callers that want the import
// structure as a JSON payload instead of running the CLI.
type Server struct {
	Converter *converter.Converter
	Driver    driver.GraphDriver
}

func NewServer(d driver.GraphDriver, cfg *config.Config) *Server {
	return &Server{
		Converter: converter.New(d, &cfg.Queries),
		Driver:    d,
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", s.Health)
	r.POST("/convert", s.Convert)

	return r
}

func (s *Server) Health(c *gin.Context) {
	if err := s.Driver.VerifyConnectivity(c.Request.Context()); err != nil {
		log.Printf("Health check failed: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Convert runs one full conversion and returns the three-sequence structure.
// Store-side failures map to 502 so callers can tell them from bugs here.
func (s *Server) Convert(c *gin.Context) {
	kg, err := s.Converter.Convert(c.Request.Context())
	if err != nil {
		log.Printf("Conversion failed: %v", err)
		status := http.StatusInternalServerError
		if errors.Is(err, driver.ErrConnectivity) || errors.Is(err, driver.ErrQueryExecution) ||
			errors.Is(err, driver.ErrAuthentication) {
			status = http.StatusBadGateway
		}
		c.JSON(status, gin.H{"error": "conversion failed"})
		return
	}

	c.JSON(http.StatusOK, kg)
}
