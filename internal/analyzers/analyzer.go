// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package analyzers

import (
	"lexiscan/internal/knowledge"
	"lexiscan/internal/rules"
)

// ComplianceStatus is the outcome of one document-type compliance check.
type ComplianceStatus string

const (
	StatusCompliant    ComplianceStatus = "COMPLIANT"
	StatusNonCompliant ComplianceStatus = "NON_COMPLIANT"
	StatusPartial      ComplianceStatus = "PARTIAL"
)

// ElementImportance grades a critical element.
type ElementImportance string

const (
	ElementMandatory   ElementImportance = "MANDATORY"
	ElementRecommended ElementImportance = "RECOMMENDED"
	ElementOptional    ElementImportance = "OPTIONAL"
)

// ComplianceCheck is one named regulatory requirement with its status.
type ComplianceCheck struct {
	Requirement string           `json:"requirement"`
	Status      ComplianceStatus `json:"status"`
	Details     string           `json:"details"`
	Action      string           `json:"action"`
}

// CriticalElement records presence of one structurally required element.
type CriticalElement struct {
	Element     string            `json:"element"`
	Found       bool              `json:"found"`
	Importance  ElementImportance `json:"importance"`
	Description string            `json:"description"`
}

// Result is the document-type-specific analysis layered on top of the
// generic rule battery.
type Result struct {
	SpecificRisks           []rules.Risk      `json:"specificRisks"`
	SpecificRecommendations []string          `json:"specificRecommendations"`
	ComplianceChecks        []ComplianceCheck `json:"complianceChecks"`
	MissingClauses          []string          `json:"missingClauses"`
	CriticalElements        []CriticalElement `json:"criticalElements"`
}

// DocumentAnalyzer inspects normalized text for one document type.
// Implementations must be stateless; a single instance is shared across
// concurrent analyses.
type DocumentAnalyzer interface {
	// Analyze runs the type-specific checks over lowercased text.
	Analyze(content string) Result

	// Type returns the document type this analyzer serves.
	Type() knowledge.DocumentType

	// Description returns a short human-readable summary of the analyzer.
	Description() string
}

// Registry holds all registered document analyzers.
type Registry struct {
	analyzers map[knowledge.DocumentType]DocumentAnalyzer
	fallback  knowledge.DocumentType
}

// NewRegistry creates an empty analyzer registry. The fallback type is used
// by Get when no analyzer is registered for a requested type.
func NewRegistry(fallback knowledge.DocumentType) *Registry {
	return &Registry{
		analyzers: make(map[knowledge.DocumentType]DocumentAnalyzer),
		fallback:  fallback,
	}
}

// Register adds an analyzer to the registry, replacing any previous
// analyzer for the same type.
func (r *Registry) Register(a DocumentAnalyzer) {
	r.analyzers[a.Type()] = a
}

// Get retrieves the analyzer for dt, falling back to the registry's default
// analyzer for types without a dedicated one. The second return is false
// only when neither dt nor the fallback is registered.
func (r *Registry) Get(dt knowledge.DocumentType) (DocumentAnalyzer, bool) {
	if a, ok := r.analyzers[dt]; ok {
		return a, true
	}
	a, ok := r.analyzers[r.fallback]
	return a, ok
}

// List returns the registered document types.
func (r *Registry) List() []knowledge.DocumentType {
	var types []knowledge.DocumentType
	for dt := range r.analyzers {
		types = append(types, dt)
	}
	return types
}

// DefaultRegistry returns a registry with every built-in analyzer
// registered and service_agreement as the fallback.
func DefaultRegistry() *Registry {
	r := NewRegistry(knowledge.DocServiceAgreement)
	r.Register(&ServiceAgreementAnalyzer{})
	r.Register(&EmploymentContractAnalyzer{})
	r.Register(&LeaseAgreementAnalyzer{})
	return r
}
