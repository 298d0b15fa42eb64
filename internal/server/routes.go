package server

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/danmuck/kawaiictl/internal/launch"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type launchRequest struct {
	Username string `json:"username"`
	Version  string `json:"version"`
}

func (s *Server) registerRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"uptime":  time.Since(s.startedAt).String(),
			"service": "kawaiictl",
		})
	})
	s.router.POST("/launch", s.handleLaunch)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func (s *Server) handleLaunch(c *gin.Context) {
	var req launchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "invalid json body"})
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Version = strings.TrimSpace(req.Version)
	if req.Username == "" || req.Version == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "username and version are required"})
		return
	}

	proc, shared, err := s.launchOnce(c.Request.Context(), req.Username, req.Version)
	if err != nil {
		c.JSON(statusFor(err), gin.H{
			"status":  "error",
			"outcome": launch.Outcome(err),
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{
		"status": "started",
		"pid":    proc.PID,
		"shared": shared,
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, launch.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, launch.ErrMissingArtifact), errors.Is(err, launch.ErrInvalidDescriptor):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, launch.ErrDownload):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
