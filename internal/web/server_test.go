// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexiscan/internal/engine"
	"lexiscan/internal/storage"
)

func newTestServer() *Server {
	gin.SetMode(gin.TestMode)
	return NewServer(engine.New(), storage.NewMemoryStore(), 1<<20)
}

func doJSON(t *testing.T, s *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealth(t *testing.T) {
	s := newTestServer()
	w := doJSON(t, s, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, body["version"])
}

func TestAnalyze(t *testing.T) {
	s := newTestServer()
	w := doJSON(t, s, http.MethodPost, "/api/analyze", map[string]interface{}{
		"text": "This service agreement is made between the service provider and the client. The scope of work includes deliverables.",
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])

	result, ok := body["result"].(map[string]interface{})
	require.True(t, ok, "response should carry a result object")
	assert.Equal(t, "service_agreement", result["documentType"])
	assert.NotEmpty(t, result["summary"])
}

func TestAnalyze_MissingText(t *testing.T) {
	s := newTestServer()
	w := doJSON(t, s, http.MethodPost, "/api/analyze", map[string]interface{}{
		"filename": "contract.txt",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])

	errObj, ok := body["error"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "INVALID_REQUEST", errObj["code"])
}

func TestAnalyze_InvalidUserID(t *testing.T) {
	s := newTestServer()
	w := doJSON(t, s, http.MethodPost, "/api/analyze", map[string]interface{}{
		"text":    "lease agreement between lessor and lessee",
		"user_id": "not-a-uuid",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	errObj := decodeBody(t, w)["error"].(map[string]interface{})
	assert.Equal(t, "INVALID_USER_ID", errObj["code"])
}

func TestAnalyze_SaveAndFetchRoundTrip(t *testing.T) {
	s := newTestServer()
	userID := uuid.New()

	w := doJSON(t, s, http.MethodPost, "/api/analyze", map[string]interface{}{
		"text":     "This employment agreement is between the employer and the employee. Salary and provident fund terms apply.",
		"filename": "offer.txt",
		"user_id":  userID.String(),
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	id, ok := body["id"].(string)
	require.True(t, ok, "saved analysis should return its id")

	w = doJSON(t, s, http.MethodGet, "/api/analyses/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)

	record := decodeBody(t, w)["record"].(map[string]interface{})
	assert.Equal(t, "offer.txt", record["filename"])
	assert.Equal(t, "employment_contract", record["documentType"])
	assert.Equal(t, userID.String(), record["userId"])
}

func TestGetAnalysis_NotFound(t *testing.T) {
	s := newTestServer()
	w := doJSON(t, s, http.MethodGet, "/api/analyses/"+uuid.New().String(), nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	errObj := decodeBody(t, w)["error"].(map[string]interface{})
	assert.Equal(t, "NOT_FOUND", errObj["code"])
}

func TestDeleteAnalysis(t *testing.T) {
	s := newTestServer()
	userID := uuid.New()

	w := doJSON(t, s, http.MethodPost, "/api/analyze", map[string]interface{}{
		"text":    "partnership deed between the partners for profit sharing",
		"user_id": userID.String(),
	})
	require.Equal(t, http.StatusOK, w.Code)
	id := decodeBody(t, w)["id"].(string)

	w = doJSON(t, s, http.MethodDelete, "/api/analyses/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, s, http.MethodDelete, "/api/analyses/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHistory(t *testing.T) {
	s := newTestServer()
	userID := uuid.New()

	for i := 0; i < 3; i++ {
		w := doJSON(t, s, http.MethodPost, "/api/analyze", map[string]interface{}{
			"text":     "rent agreement between lessor and lessee for the premises",
			"filename": fmt.Sprintf("lease-%d.txt", i),
			"user_id":  userID.String(),
		})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(t, s, http.MethodGet, "/api/history/"+userID.String()+"?limit=2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	records := decodeBody(t, w)["records"].([]interface{})
	assert.Len(t, records, 2)
}

func TestHistory_EmptyUser(t *testing.T) {
	s := newTestServer()
	w := doJSON(t, s, http.MethodGet, "/api/history/"+uuid.New().String(), nil)

	require.Equal(t, http.StatusOK, w.Code)
	records, ok := decodeBody(t, w)["records"].([]interface{})
	require.True(t, ok, "records should be an array, not null")
	assert.Empty(t, records)
}

func TestListTemplates(t *testing.T) {
	s := newTestServer()
	w := doJSON(t, s, http.MethodGet, "/api/templates", nil)

	require.Equal(t, http.StatusOK, w.Code)
	tpls := decodeBody(t, w)["templates"].([]interface{})
	require.NotEmpty(t, tpls)

	var types []string
	for _, raw := range tpls {
		tpl := raw.(map[string]interface{})
		types = append(types, tpl["type"].(string))
		assert.NotEmpty(t, tpl["title"])
	}
	assert.Contains(t, types, "service_agreement")
	assert.Contains(t, types, "nda")
}

func TestGenerateTemplate(t *testing.T) {
	s := newTestServer()
	w := doJSON(t, s, http.MethodPost, "/api/templates/service_agreement", map[string]interface{}{
		"insights": "Software development engagement with milestone payments",
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	document := body["document"].(string)
	assert.Contains(t, document, "SERVICE AGREEMENT")
	assert.Contains(t, document, "Software development engagement")
}

func TestGenerateTemplate_UnknownType(t *testing.T) {
	s := newTestServer()
	w := doJSON(t, s, http.MethodPost, "/api/templates/affidavit", map[string]interface{}{
		"insights": "irrelevant",
	})

	require.Equal(t, http.StatusNotFound, w.Code)
	errObj := decodeBody(t, w)["error"].(map[string]interface{})
	assert.Equal(t, "TEMPLATE_NOT_FOUND", errObj["code"])
}

func TestAnalyzeFile_TooLarge(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := NewServer(engine.New(), storage.NewMemoryStore(), 16)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "big.txt")
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte("a"), 64))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/analyze/file", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestAnalyzeFile_TextUpload(t *testing.T) {
	s := newTestServer()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "contract.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte("This service agreement is made between the service provider and the client. The scope of work covers the agreed deliverables and consulting engagement."))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/analyze/file", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	result := decodeBody(t, w)["result"].(map[string]interface{})
	assert.Equal(t, "service_agreement", result["documentType"])
}

func TestAnalyzeFile_MissingFile(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodPost, "/api/analyze/file", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	errObj := decodeBody(t, w)["error"].(map[string]interface{})
	assert.Equal(t, "MISSING_FILE", errObj["code"])
}
