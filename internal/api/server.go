// Package api exposes the verification service over HTTP for the public
// site and the admin back office.
package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"certverify/internal/sheeturl"
	"certverify/internal/verify"
)

// Server wires HTTP handlers over the verification service.
type Server struct {
	svc            *verify.Service
	allowedOrigins []string
}

func New(svc *verify.Service, allowedOrigins []string) *Server {
	return &Server{svc: svc, allowedOrigins: allowedOrigins}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(s.allowedOrigins) > 0 {
		corsCfg.AllowOrigins = s.allowedOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	r.Use(cors.New(corsCfg))

	r.GET("/healthz", s.handleHealth)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/certificates", s.handleList)
		apiGroup.GET("/certificates/:number", s.handleVerify)
		apiGroup.POST("/refresh", s.handleRefresh)
		apiGroup.GET("/source/check", s.handleSourceCheck)
	}

	return r
}

func (s *Server) handleHealth(c *gin.Context) {
	_, state := s.svc.Records()
	c.JSON(http.StatusOK, gin.H{"status": "ok", "ready": s.svc.Ready(), "data_state": state})
}

func (s *Server) handleList(c *gin.Context) {
	records, state := s.svc.Records()
	c.JSON(http.StatusOK, gin.H{
		"state":    state,
		"degraded": state == verify.StateDegraded,
		"count":    len(records),
		"records":  records,
	})
}

func (s *Server) handleVerify(c *gin.Context) {
	number := c.Param("number")

	cert, found, ready := s.svc.Lookup(number)
	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "certificate data not loaded yet, try again shortly"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "certificate not found", "query": number})
		return
	}
	c.JSON(http.StatusOK, gin.H{"certificate": cert})
}

func (s *Server) handleRefresh(c *gin.Context) {
	stats, err := s.svc.Refresh(c.Request.Context())
	if err != nil {
		// Raw error text on purpose: the admin page shows it so the
		// operator can fix the source URL.
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"total":   stats.Total,
		"added":   stats.Added,
		"removed": stats.Removed,
	})
}

// handleSourceCheck gives the admin URL form live validation feedback.
func (s *Server) handleSourceCheck(c *gin.Context) {
	url := c.Query("url")
	converted := sheeturl.ConvertToCSV(url)
	c.JSON(http.StatusOK, gin.H{
		"url":          url,
		"converted":    converted,
		"valid":        sheeturl.IsValidCSVSource(converted),
		"instructions": sheeturl.ConversionInstructions(url),
	})
}
