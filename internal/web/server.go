// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package web exposes the analysis engine over HTTP.
package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lexiscan/internal/engine"
	"lexiscan/internal/storage"
	"lexiscan/internal/version"
)

// Server wires the analysis engine and result storage behind a gin router.
type Server struct {
	analyzer  *engine.Analyzer
	store     storage.Store
	maxUpload int64
	router    *gin.Engine
}

// NewServer creates a configured server. store may be a MemoryStore when
// no database is available; maxUpload bounds file uploads in bytes.
func NewServer(analyzer *engine.Analyzer, store storage.Store, maxUpload int64) *Server {
	s := &Server{
		analyzer:  analyzer,
		store:     store,
		maxUpload: maxUpload,
		router:    gin.Default(),
	}

	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"version": version.Version,
		})
	})

	api := s.router.Group("/api")
	{
		api.POST("/analyze", s.handleAnalyze)
		api.POST("/analyze/file", s.handleAnalyzeFile)
		api.GET("/analyses/:id", s.handleGetAnalysis)
		api.DELETE("/analyses/:id", s.handleDeleteAnalysis)
		api.GET("/history/:userID", s.handleHistory)
		api.GET("/templates", s.handleListTemplates)
		api.POST("/templates/:type", s.handleGenerateTemplate)
	}

	return s
}

// Run starts the HTTP server on addr.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Handler returns the underlying http.Handler, used by tests.
func (s *Server) Handler() http.Handler {
	return s.router
}
