// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package templates generates Indian legal document drafts with real
// legal language and statutory references.
package templates

import (
	"fmt"
	"time"

	"lexiscan/internal/knowledge"
)

// Template describes a generatable document type.
type Template struct {
	Type            knowledge.DocumentType `json:"type"`
	Title           string                 `json:"title"`
	Description     string                 `json:"description"`
	RequiredClauses []string               `json:"requiredClauses"`
	LegalReferences []string               `json:"legalReferences"`

	render func(insights, date, timestamp string) string
}

// Registry lists all available document templates.
var Registry = []Template{
	{
		Type:            knowledge.DocServiceAgreement,
		Title:           "Professional Service Agreement",
		Description:     "Comprehensive service agreement compliant with Indian Contract Act 1872",
		RequiredClauses: []string{"scope", "payment", "gst", "ip", "termination", "jurisdiction"},
		LegalReferences: []string{"Indian Contract Act 1872", "GST Act 2017", "Copyright Act 1957"},
		render:          renderServiceAgreement,
	},
	{
		Type:            knowledge.DocEmploymentContract,
		Title:           "Employment Agreement",
		Description:     "Employment contract with Indian labor law compliance",
		RequiredClauses: []string{"designation", "salary", "benefits", "termination", "confidentiality"},
		LegalReferences: []string{"Industrial Disputes Act 1947", "EPF Act 1952", "Payment of Gratuity Act 1972"},
		render:          renderEmploymentContract,
	},
	{
		Type:            knowledge.DocLeaseAgreement,
		Title:           "Property Lease Agreement",
		Description:     "Residential/commercial lease with stamp duty compliance",
		RequiredClauses: []string{"property", "rent", "deposit", "maintenance", "termination"},
		LegalReferences: []string{"Transfer of Property Act 1882", "Registration Act 1908", "Indian Stamp Act 1899"},
		render:          renderLeaseAgreement,
	},
	{
		Type:            knowledge.DocPartnershipDeed,
		Title:           "Partnership Deed",
		Description:     "Partnership agreement under Indian Partnership Act 1932",
		RequiredClauses: []string{"partners", "capital", "profit_sharing", "management", "dissolution"},
		LegalReferences: []string{"Indian Partnership Act 1932", "Income Tax Act 1961"},
		render:          renderPartnershipDeed,
	},
	{
		Type:            knowledge.DocNDA,
		Title:           "Non-Disclosure Agreement",
		Description:     "Confidentiality agreement with IP protection",
		RequiredClauses: []string{"confidential_info", "obligations", "exceptions", "term", "remedies"},
		LegalReferences: []string{"Indian Contract Act 1872", "Copyright Act 1957", "Trade Marks Act 1999"},
		render:          renderNDA,
	},
	{
		Type:            knowledge.DocLoanAgreement,
		Title:           "Loan Agreement",
		Description:     "Personal/business loan agreement with security provisions",
		RequiredClauses: []string{"loan_amount", "interest", "repayment", "security", "default"},
		LegalReferences: []string{"Indian Contract Act 1872", "Negotiable Instruments Act 1881", "SARFAESI Act 2002"},
		render:          renderLoanAgreement,
	},
	{
		Type:            knowledge.DocSaleDeed,
		Title:           "Sale Deed",
		Description:     "Property sale deed with registration requirements",
		RequiredClauses: []string{"property_description", "consideration", "title", "possession", "registration"},
		LegalReferences: []string{"Transfer of Property Act 1882", "Registration Act 1908", "Indian Stamp Act 1899"},
		render:          renderSaleDeed,
	},
}

// Get returns the template for the given document type.
func Get(docType knowledge.DocumentType) (Template, error) {
	for _, t := range Registry {
		if t.Type == docType {
			return t, nil
		}
	}
	return Template{}, fmt.Errorf("no template available for document type: %s", docType)
}

// Generate renders the template for docType with the provided insights
// (scope of services, property details, etc.) inserted into the draft.
func Generate(docType knowledge.DocumentType, insights string) (string, error) {
	t, err := Get(docType)
	if err != nil {
		return "", err
	}

	now := time.Now()
	date := now.Format("2/1/2006")
	timestamp := now.Format("2/1/2006, 3:04:05 pm")

	return t.render(insights, date, timestamp), nil
}
