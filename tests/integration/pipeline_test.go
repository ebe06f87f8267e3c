// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"lexiscan/internal/engine"
	"lexiscan/internal/formatters"
	"lexiscan/internal/rules"
	"lexiscan/internal/storage"
	"lexiscan/internal/summary"
	"lexiscan/internal/web"

	_ "lexiscan/internal/formatters/json"
	_ "lexiscan/internal/formatters/text"
	_ "lexiscan/internal/formatters/yaml"
)

const serviceAgreement = `SERVICE AGREEMENT

This Service Agreement is made between Acme Software Private Limited, the service provider,
and Bharat Retail Limited, the client, for professional services.

The scope of work covers software development and technical services with agreed deliverables
delivered in monthly milestones. Payment terms: the client shall pay Rupees 5,00,000
(₹5,00,000) per milestone within 30 days of invoice, with interest at 12% per annum on
delayed payments. The service provider holds GSTIN registration 29ABCDE1234F1Z5 and GST
at 18% applies; TDS shall be deducted as applicable.

All intellectual property in the deliverables vests in the client on payment. Each party
shall keep confidential information secret. Either party may terminate this agreement with
60 days written notice. Disputes shall be resolved by arbitration in Bangalore under the
Arbitration and Conciliation Act. The governing law of this agreement is Indian law,
including the Indian Contract Act, 1872, with jurisdiction of courts at Bangalore. Neither
party is liable for force majeure events. The service provider gives an indemnity to the
client against third party claims. The term of this agreement is 12 months.`

// TestFullAnalysisPipeline runs the complete analysis pipeline over a
// realistic service agreement and checks the result end to end.
func TestFullAnalysisPipeline(t *testing.T) {
	analyzer := engine.New()
	result := analyzer.Analyze(serviceAgreement, engine.Options{
		SummaryLength: summary.LengthDetailed,
		Groups:        rules.ParseGroups(nil),
	})

	if result.DocumentType != "service_agreement" {
		t.Errorf("documentType = %q, want service_agreement", result.DocumentType)
	}
	if result.ConfidenceScore < 70 || result.ConfidenceScore > 95 {
		t.Errorf("confidenceScore = %d, want within [70, 95]", result.ConfidenceScore)
	}
	if result.Metadata.ComplianceScore < 50 {
		t.Errorf("complianceScore = %d, expected a compliant document to score above 50", result.Metadata.ComplianceScore)
	}
	if result.Summary == "" {
		t.Error("summary should not be empty")
	}
	if len(result.LegalTerms) == 0 {
		t.Error("expected legal terms in a document full of them")
	}
	for _, risk := range result.Risks {
		if risk.Level == "critical" {
			t.Errorf("unexpected critical risk: %s", risk.Description)
		}
	}
}

// TestAllFormattersRenderPipelineResult pushes one analysis through every
// registered output format.
func TestAllFormattersRenderPipelineResult(t *testing.T) {
	result := engine.New().Analyze(serviceAgreement, engine.Options{})

	for _, format := range formatters.List() {
		t.Run(format, func(t *testing.T) {
			out, err := formatters.Export(format, result, formatters.FormatterOptions{NoColor: true})
			if err != nil {
				t.Fatalf("Export(%s) returned error: %v", format, err)
			}
			if !strings.Contains(out, "service_agreement") && !strings.Contains(out, "SERVICE AGREEMENT") {
				t.Errorf("%s output does not mention the document type", format)
			}
		})
	}
}

// TestWebAnalyzeAndExportRoundTrip drives the HTTP surface backed by the
// in-memory store: analyze, persist, fetch back.
func TestWebAnalyzeAndExportRoundTrip(t *testing.T) {
	gin.SetMode(gin.TestMode)
	server := web.NewServer(engine.New(), storage.NewMemoryStore(), 1<<20)

	payload, err := json.Marshal(map[string]interface{}{
		"text":     serviceAgreement,
		"filename": "acme-services.txt",
		"user_id":  "6b1e6c2e-4c9d-4e5f-8a7b-1c2d3e4f5a6b",
	})
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("analyze returned status %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		Success bool   `json:"success"`
		ID      string `json:"id"`
		Result  struct {
			DocumentType string `json:"documentType"`
		} `json:"result"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response does not parse: %v", err)
	}
	if !body.Success || body.ID == "" {
		t.Fatalf("expected a saved analysis id, got %+v", body)
	}
	if body.Result.DocumentType != "service_agreement" {
		t.Errorf("documentType = %q, want service_agreement", body.Result.DocumentType)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/analyses/"+body.ID, nil)
	w = httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("fetch returned status %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "acme-services.txt") {
		t.Error("fetched record should carry the original filename")
	}
}
