// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexiscan/internal/extractor"
	"lexiscan/internal/knowledge"
	"lexiscan/internal/preprocess"
	"lexiscan/internal/rules"
	"lexiscan/internal/summary"
)

func TestAnalyze_EmptyInputSubstitutesSample(t *testing.T) {
	a := New()
	result := a.Analyze("", Options{})

	// The sample document is a service agreement with GST and arbitration
	// provisions, so classification and extraction find real evidence.
	assert.Equal(t, "service_agreement", result.DocumentType)
	assert.NotEmpty(t, result.Summary)
	assert.NotEmpty(t, result.KeyPoints)
	assert.Greater(t, result.Metadata.WordCount, 100)
}

func TestAnalyze_BinaryInputSubstitutesSample(t *testing.T) {
	a := New()
	garbage := "PK\x03\x04" + strings.Repeat("\x00\x01", 300)
	result := a.Analyze(garbage, Options{})

	assert.Equal(t, "service_agreement", result.DocumentType)
	assert.Equal(t, preprocess.WordCount(preprocess.Normalize(garbage)), result.Metadata.WordCount)
}

func TestAnalyze_ConfidenceBounds(t *testing.T) {
	a := New()
	inputs := []string{
		"",
		"short",
		strings.Repeat("unrelated prose about gardening and recipes with no legal content whatsoever. ", 10),
		strings.Repeat("This service agreement with GST, arbitration in Mumbai, consideration of ₹5,00,000 under the Indian Contract Act, 1872. ", 40),
	}
	for _, input := range inputs {
		result := a.Analyze(input, Options{})
		assert.GreaterOrEqual(t, result.ConfidenceScore, MinConfidence)
		assert.LessOrEqual(t, result.ConfidenceScore, MaxConfidence)
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	a := New()
	input := strings.Repeat("Employment agreement with salary, provident fund, gratuity and notice period for the employee. ", 5)

	first := a.Analyze(input, Options{})
	second := a.Analyze(input, Options{})

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(firstJSON), string(secondJSON))
}

func TestAnalyze_RecommendationsDeduplicated(t *testing.T) {
	a := New()
	result := a.Analyze("", Options{})

	seen := map[string]bool{}
	for _, rec := range result.Recommendations {
		assert.False(t, seen[rec], "duplicate recommendation: %s", rec)
		seen[rec] = true
	}
}

func TestAnalyze_RisksCombineRuleAndSpecificFindings(t *testing.T) {
	a := New()
	// A service-flavored document missing IP, confidentiality, GST: both
	// the rule battery and the service analyzer contribute findings.
	input := strings.Repeat("The service provider delivers professional services with deliverables in scope of work. ", 3)
	result := a.Analyze(input, Options{})

	require.NotEmpty(t, result.Risks)
	categories := map[string]bool{}
	for _, r := range result.Risks {
		categories[r.Category] = true
	}
	assert.True(t, categories["TAX_RISK"], "service analyzer findings should be merged in")
	assert.True(t, categories["contractual"] || categories["procedural"], "rule battery findings should be merged in")
}

func TestAnalyze_JSONFieldNames(t *testing.T) {
	a := New()
	result := a.Analyze("", Options{})

	data, err := json.Marshal(result)
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &m))

	for _, field := range []string{
		"documentType", "confidenceScore", "summary", "keyPoints", "risks",
		"recommendations", "legalTerms", "complianceDetails", "metadata",
		"relevantCases", "applicableStatutes", "specificAnalysis",
	} {
		assert.Contains(t, m, field)
	}

	meta, ok := m["metadata"].(map[string]interface{})
	require.True(t, ok)
	for _, field := range []string{
		"wordCount", "characterCount", "sentenceCount",
		"documentComplexity", "legalTermsFound", "complianceScore",
	} {
		assert.Contains(t, meta, field)
	}
}

func TestAnalyze_SummaryLengthOption(t *testing.T) {
	a := New()
	short := a.Analyze("", Options{SummaryLength: summary.LengthShort})
	detailed := a.Analyze("", Options{SummaryLength: summary.LengthDetailed})
	assert.LessOrEqual(t, len(short.Summary), len(detailed.Summary))
}

func TestComplexity_Buckets(t *testing.T) {
	cases := []struct {
		name            string
		sentences       int
		complianceScore int
		want            string
	}{
		{"empty evidence", 0, 0, "Low"},
		{"sentences and compliance only", 200, 100, "Medium"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := complexity(extractor.Extraction{}, tc.sentences, tc.complianceScore)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTermSummaries_Relevance(t *testing.T) {
	a := New()
	result := a.Analyze("", Options{})

	require.NotEmpty(t, result.LegalTerms)
	for _, ts := range result.LegalTerms {
		assert.Greater(t, ts.Relevance, 0.0)
		assert.LessOrEqual(t, ts.Relevance, 1.0)
		assert.Greater(t, ts.Count, 0)
	}
}

func TestKeyPoints_SeededBulletsWithoutEvidence(t *testing.T) {
	points := keyPoints(knowledge.DocGeneralAgreement, extractor.Extraction{}, rules.ComplianceResult{Score: 17})

	// Type and score bullets are always present, and nothing else appears
	// when extraction found no evidence.
	require.Len(t, points, 2)
	assert.Equal(t, "Document Type: GENERAL AGREEMENT (Indian Legal Framework)", points[0])
	assert.Equal(t, "Indian Legal Compliance Score: 17%", points[1])
}

func TestKeyPoints_ComplianceIssuesCappedAtThree(t *testing.T) {
	compliance := rules.ComplianceResult{
		Score:  40,
		Issues: []string{"one", "two", "three", "four"},
	}
	points := keyPoints(knowledge.DocServiceAgreement, extractor.Extraction{}, compliance)

	require.Len(t, points, 3)
	assert.Equal(t, "Compliance Issues: one, two, three", points[2])
}
