// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package web

import (
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"lexiscan/internal/engine"
	"lexiscan/internal/knowledge"
	"lexiscan/internal/pdftext"
	"lexiscan/internal/rules"
	"lexiscan/internal/storage"
	"lexiscan/internal/summary"
	"lexiscan/internal/templates"
)

// AnalyzeRequest is the request body for POST /api/analyze.
type AnalyzeRequest struct {
	Text          string   `json:"text" binding:"required"`
	Filename      string   `json:"filename"`
	UserID        string   `json:"user_id"`
	SummaryLength string   `json:"summary_length"`
	Checks        []string `json:"checks"`
}

func fail(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// handleAnalyze handles POST /api/analyze.
func (s *Server) handleAnalyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	result := s.analyzer.Analyze(req.Text, engine.Options{
		SummaryLength: summary.Length(req.SummaryLength),
		Groups:        rules.ParseGroups(req.Checks),
	})

	response := gin.H{
		"success": true,
		"result":  result,
	}

	if req.UserID != "" {
		userID, err := uuid.Parse(req.UserID)
		if err != nil {
			fail(c, http.StatusBadRequest, "INVALID_USER_ID", "Invalid user_id format")
			return
		}
		record := &storage.Record{
			UserID:       userID,
			Filename:     req.Filename,
			DocumentType: result.DocumentType,
			Result:       result,
		}
		if err := s.store.Save(c.Request.Context(), record); err != nil {
			fail(c, http.StatusInternalServerError, "SAVE_FAILED", err.Error())
			return
		}
		response["id"] = record.ID
	}

	c.JSON(http.StatusOK, response)
}

// handleAnalyzeFile handles POST /api/analyze/file with a multipart upload.
// PDF uploads go through text extraction; anything else is treated as text.
func (s *Server) handleAnalyzeFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		fail(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	if fileHeader.Size > s.maxUpload {
		fail(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "uploaded file exceeds the size limit")
		return
	}

	text, err := s.readUpload(fileHeader.Filename, func(dst string) error {
		return c.SaveUploadedFile(fileHeader, dst)
	})
	if err != nil {
		fail(c, http.StatusUnprocessableEntity, "EXTRACTION_FAILED", err.Error())
		return
	}

	result := s.analyzer.Analyze(text, engine.Options{
		SummaryLength: summary.Length(c.PostForm("summary_length")),
		Groups:        rules.ParseGroups(strings.Fields(c.PostForm("checks"))),
	})

	response := gin.H{
		"success": true,
		"result":  result,
	}

	if rawUserID := c.PostForm("user_id"); rawUserID != "" {
		userID, err := uuid.Parse(rawUserID)
		if err != nil {
			fail(c, http.StatusBadRequest, "INVALID_USER_ID", "Invalid user_id format")
			return
		}
		record := &storage.Record{
			UserID:       userID,
			Filename:     fileHeader.Filename,
			DocumentType: result.DocumentType,
			Result:       result,
		}
		if err := s.store.Save(c.Request.Context(), record); err != nil {
			fail(c, http.StatusInternalServerError, "SAVE_FAILED", err.Error())
			return
		}
		response["id"] = record.ID
	}

	c.JSON(http.StatusOK, response)
}

// readUpload materializes the upload in a temp directory and returns its
// text content, extracting from PDFs when needed.
func (s *Server) readUpload(filename string, save func(dst string) error) (string, error) {
	tmpDir, err := os.MkdirTemp("", "lexiscan-upload-")
	if err != nil {
		return "", err
	}
	defer os.RemoveAll(tmpDir)

	dst := filepath.Join(tmpDir, filepath.Base(filename))
	if err := save(dst); err != nil {
		return "", err
	}

	if strings.EqualFold(filepath.Ext(filename), ".pdf") {
		doc, err := pdftext.Extract(dst)
		if err != nil {
			return "", err
		}
		return doc.Text, nil
	}

	f, err := os.Open(dst)
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, s.maxUpload))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// handleGetAnalysis handles GET /api/analyses/:id.
func (s *Server) handleGetAnalysis(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid analysis id format")
		return
	}

	record, err := s.store.GetByID(c.Request.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		fail(c, http.StatusNotFound, "NOT_FOUND", "Analysis not found")
		return
	}
	if err != nil {
		fail(c, http.StatusInternalServerError, "FETCH_FAILED", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"record":  record,
	})
}

// handleDeleteAnalysis handles DELETE /api/analyses/:id.
func (s *Server) handleDeleteAnalysis(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid analysis id format")
		return
	}

	err = s.store.Delete(c.Request.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		fail(c, http.StatusNotFound, "NOT_FOUND", "Analysis not found")
		return
	}
	if err != nil {
		fail(c, http.StatusInternalServerError, "DELETE_FAILED", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// handleHistory handles GET /api/history/:userID.
func (s *Server) handleHistory(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userID"))
	if err != nil {
		fail(c, http.StatusBadRequest, "INVALID_USER_ID", "Invalid user id format")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	records, err := s.store.ListByUserID(c.Request.Context(), userID, limit, offset)
	if err != nil {
		fail(c, http.StatusInternalServerError, "FETCH_FAILED", err.Error())
		return
	}
	if records == nil {
		records = []*storage.Record{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"records": records,
	})
}

// handleListTemplates handles GET /api/templates.
func (s *Server) handleListTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"templates": templates.Registry,
	})
}

// GenerateTemplateRequest is the request body for POST /api/templates/:type.
type GenerateTemplateRequest struct {
	Insights string `json:"insights" binding:"required"`
}

// handleGenerateTemplate handles POST /api/templates/:type.
func (s *Server) handleGenerateTemplate(c *gin.Context) {
	var req GenerateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	docType := knowledge.DocumentType(c.Param("type"))
	document, err := templates.Generate(docType, req.Insights)
	if err != nil {
		fail(c, http.StatusNotFound, "TEMPLATE_NOT_FOUND", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"type":     docType,
		"document": document,
	})
}
