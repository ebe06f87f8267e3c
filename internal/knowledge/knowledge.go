// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package knowledge holds the static legal knowledge base: terminology,
// detection patterns, clause templates, statutes and case law. Everything in
// this package is initialized once at process start and never mutated, so it
// is safe to share across concurrent analyses without locking.
package knowledge

import "regexp"

// RiskLevel classifies how severe a pattern's presence (or absence) is.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// Multiplier returns the scoring multiplier applied to sentences that match a
// pattern of this risk level during summarization.
func (r RiskLevel) Multiplier() float64 {
	switch r {
	case RiskCritical:
		return 2.0
	case RiskHigh:
		return 1.5
	case RiskMedium:
		return 1.2
	default:
		return 1.0
	}
}

// Importance tiers a legal term by how strongly it signals document content.
type Importance string

const (
	ImportanceCritical Importance = "critical"
	ImportanceHigh     Importance = "high"
	ImportanceMedium   Importance = "medium"
	ImportanceLow      Importance = "low"
)

// Weight converts an importance tier into a numeric factor used when ranking
// extracted terms and scoring summary sentences.
func (i Importance) Weight() float64 {
	switch i {
	case ImportanceCritical:
		return 1.0
	case ImportanceHigh:
		return 0.8
	case ImportanceMedium:
		return 0.6
	case ImportanceLow:
		return 0.4
	default:
		return 0.5
	}
}

// LegalTerm is a domain keyword matched together with its synonyms as a
// single logical unit.
type LegalTerm struct {
	Term       string
	Category   string
	Weight     float64
	Synonyms   []string
	Definition string
	Importance Importance
	StatuteRef string
}

// PatternRule is a compiled regular expression tied to a legal category,
// importance weight and risk level.
type PatternRule struct {
	Pattern     *regexp.Regexp
	Category    string
	Importance  float64
	Description string
	RiskLevel   RiskLevel
	Context     string
}

// ClauseTemplate describes a clause the analyzer looks for. A clause counts
// as found when any of its patterns matches; quality accumulates per match
// and saturates at 1.0.
type ClauseTemplate struct {
	Type            string
	Patterns        []*regexp.Regexp
	Importance      float64
	Description     string
	Recommendations []string
	Compliance      []string
}

// Statute is an Indian act with the sections and document types it governs.
type Statute struct {
	Act                 string
	Year                int
	Sections            map[string]string
	ApplicableDocuments []DocumentType
	Penalties           []string
}

// LegalCase is a precedent matched against document content by keyword.
type LegalCase struct {
	Title            string
	Citation         string
	Court            string
	Year             int
	Principle        string
	RelevantSections []string
	Keywords         []string
	Category         string
}
