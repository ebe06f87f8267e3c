// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package rules evaluates the risk and compliance rule battery. Every rule
// is an independent predicate over the lowercased document text, gated on
// document type; failed rules emit a Risk, deduct from the compliance
// score, or both. Evaluation is pure and order-stable, so two runs over the
// same input produce identical output.
package rules

import (
	"strings"

	"lexiscan/internal/knowledge"
)

// Risk is one finding produced by a failed rule.
type Risk struct {
	Level       knowledge.RiskLevel `json:"level"`
	Description string              `json:"description"`
	Category    string              `json:"category"`
	Remedy      string              `json:"remedy"`
	Section     string              `json:"section,omitempty"`
}

// ComplianceResult carries the deducted compliance score with the issues
// and recommendations accumulated from failed checks.
type ComplianceResult struct {
	Score           int      `json:"score"`
	Issues          []string `json:"issues"`
	Recommendations []string `json:"recommendations"`
}

// Result is the full output of one rule evaluation.
type Result struct {
	Risks      []Risk           `json:"risks"`
	Compliance ComplianceResult `json:"compliance"`
}

// BaselineScore is the compliance score before any deductions.
const BaselineScore = 70

// Rule group names, used to toggle subsets of the battery.
const (
	GroupClauses      = "clauses"
	GroupStatutory    = "statutory"
	GroupFinancial    = "financial"
	GroupJurisdiction = "jurisdiction"
)

// rule is one entry in the battery. failed is evaluated against the
// lowercased text; appliesTo nil means every document type. A rule with a
// zero Level contributes to compliance only.
type rule struct {
	name           string
	group          string
	appliesTo      []knowledge.DocumentType
	excludes       []knowledge.DocumentType
	failed         func(lower string) bool
	level          knowledge.RiskLevel
	description    string
	category       string
	remedy         string
	section        string
	deduct         int
	issue          string
	recommendation string
}

func missingAll(phrases ...string) func(string) bool {
	return func(lower string) bool {
		for _, p := range phrases {
			if strings.Contains(lower, p) {
				return false
			}
		}
		return true
	}
}

// battery is the fixed rule table. Order is significant: risks and issues
// are emitted in battery order, so reordering entries changes output order
// for identical input.
var battery = []rule{
	// Missing-clause checks
	{
		name:           "termination_clause",
		group:          GroupClauses,
		failed:         missingAll("termination", "terminate"),
		level:          knowledge.RiskHigh,
		description:    "Missing termination clause - unclear exit mechanism",
		category:       "contractual",
		remedy:         "Add clear termination clause with notice period and conditions",
		section:        "Section 39 of Indian Contract Act, 1872",
		deduct:         10,
		issue:          "Termination clause missing",
		recommendation: "Add clear termination clause with notice period and conditions",
	},
	{
		name:           "dispute_resolution",
		group:          GroupClauses,
		failed:         missingAll("dispute", "arbitration"),
		level:          knowledge.RiskMedium,
		description:    "No dispute resolution mechanism specified",
		category:       "procedural",
		remedy:         "Include arbitration clause under Arbitration and Conciliation Act 2015",
		section:        "Arbitration and Conciliation Act, 2015",
		deduct:         8,
		issue:          "No dispute resolution mechanism specified",
		recommendation: "Include arbitration clause under Arbitration and Conciliation Act 2015",
	},
	{
		name:           "governing_law",
		group:          GroupClauses,
		failed:         missingAll("governing law", "indian law"),
		level:          knowledge.RiskMedium,
		description:    "Governing law not specified",
		category:       "jurisdictional",
		remedy:         "Specify Indian law as governing law",
		deduct:         7,
		issue:          "Governing law not specified",
		recommendation: "Specify Indian law as governing law",
	},

	// Statutory and compliance checks
	{
		name:           "gst_compliance",
		group:          GroupStatutory,
		appliesTo:      []knowledge.DocumentType{knowledge.DocServiceAgreement},
		failed:         missingAll("gst"),
		level:          knowledge.RiskHigh,
		description:    "GST compliance not addressed - potential tax liability",
		category:       "tax_compliance",
		remedy:         "Include GST registration numbers and tax calculation clauses",
		section:        "Section 22 of GST Act, 2017",
		deduct:         15,
		issue:          "GST compliance clauses missing",
		recommendation: "Include GST registration numbers and applicable tax rates",
	},
	{
		name:  "stamp_duty",
		group: GroupStatutory,
		appliesTo: []knowledge.DocumentType{
			knowledge.DocEmploymentContract,
			knowledge.DocLeaseAgreement,
			knowledge.DocSaleDeed,
		},
		failed:         missingAll("stamp"),
		level:          knowledge.RiskCritical,
		description:    "Stamp duty requirements not mentioned - document may be inadmissible",
		category:       "legal_compliance",
		remedy:         "Pay appropriate stamp duty as per Indian Stamp Act 1899",
		section:        "Section 3 of Indian Stamp Act, 1899",
		deduct:         20,
		issue:          "Stamp duty requirements not addressed",
		recommendation: "Pay stamp duty as per Indian Stamp Act 1899",
	},
	{
		name:           "provident_fund",
		group:          GroupStatutory,
		appliesTo:      []knowledge.DocumentType{knowledge.DocEmploymentContract},
		failed:         missingAll("provident fund", "pf"),
		level:          knowledge.RiskHigh,
		description:    "PF compliance missing - violation of EPF Act 1952",
		category:       "employment_compliance",
		remedy:         "Include PF registration and contribution details",
		section:        "Employees Provident Fund Act, 1952",
		deduct:         20,
		issue:          "PF compliance missing",
		recommendation: "Include PF registration and contribution details as per EPF Act 1952",
	},
	{
		name:           "contract_act_reference",
		group:          GroupStatutory,
		appliesTo:      []knowledge.DocumentType{knowledge.DocServiceAgreement},
		failed:         missingAll("indian contract act"),
		deduct:         10,
		issue:          "No reference to Indian Contract Act 1872",
		recommendation: "Reference Indian Contract Act 1872 for legal validity",
	},
	{
		name:           "ip_rights",
		group:          GroupStatutory,
		appliesTo:      []knowledge.DocumentType{knowledge.DocServiceAgreement},
		failed:         missingAll("intellectual property", "copyright"),
		deduct:         8,
		issue:          "IP rights not clearly defined",
		recommendation: "Include IP ownership and licensing clauses",
	},
	{
		name:           "gratuity_provision",
		group:          GroupStatutory,
		appliesTo:      []knowledge.DocumentType{knowledge.DocEmploymentContract},
		failed:         missingAll("gratuity"),
		deduct:         15,
		issue:          "Gratuity provisions missing",
		recommendation: "Include gratuity calculation as per Payment of Gratuity Act 1972",
	},
	{
		name:           "notice_period",
		group:          GroupStatutory,
		appliesTo:      []knowledge.DocumentType{knowledge.DocEmploymentContract},
		failed:         missingAll("notice period"),
		deduct:         10,
		issue:          "Notice period not specified",
		recommendation: "Specify notice period as per Industrial Disputes Act 1947",
	},
	{
		name:           "lease_registration",
		group:          GroupStatutory,
		appliesTo:      []knowledge.DocumentType{knowledge.DocLeaseAgreement},
		failed:         missingAll("registration"),
		deduct:         15,
		issue:          "Registration requirements not mentioned",
		recommendation: "Register document if lease value exceeds state limits",
	},

	// Financial checks
	{
		name:           "payment_terms",
		group:          GroupFinancial,
		failed:         missingAll("payment", "consideration"),
		level:          knowledge.RiskHigh,
		description:    "Payment terms not clearly defined",
		category:       "financial",
		remedy:         "Specify clear payment schedule, amounts, and methods",
		deduct:         10,
		issue:          "Payment terms not clearly defined",
		recommendation: "Specify clear payment schedule, amounts, and methods",
	},
	{
		name:  "delayed_payment_interest",
		group: GroupFinancial,
		failed: func(lower string) bool {
			return strings.Contains(lower, "payment") &&
				!strings.Contains(lower, "interest") &&
				!strings.Contains(lower, "late fee")
		},
		level:          knowledge.RiskMedium,
		description:    "No provision for delayed payment interest",
		category:       "financial",
		remedy:         "Add interest clause for delayed payments",
		deduct:         5,
		issue:          "No provision for delayed payment interest",
		recommendation: "Add interest clause for delayed payments",
	},

	// Jurisdiction checks
	{
		name:           "jurisdiction_clause",
		group:          GroupJurisdiction,
		failed:         missingAll("jurisdiction", "court"),
		level:          knowledge.RiskMedium,
		description:    "Jurisdiction not specified - potential forum disputes",
		category:       "jurisdictional",
		remedy:         "Specify courts of specific city/state for jurisdiction",
		deduct:         8,
		issue:          "Jurisdiction not specified",
		recommendation: "Specify courts of specific city/state for jurisdiction",
	},

	// General document structure, runs only for types without a dedicated
	// statutory battery above
	{
		name:  "legal_structure",
		group: GroupClauses,
		excludes: []knowledge.DocumentType{
			knowledge.DocServiceAgreement,
			knowledge.DocEmploymentContract,
			knowledge.DocLeaseAgreement,
		},
		failed: missingAll("whereas", "agreement"),
		deduct:         10,
		issue:          "Document lacks proper legal structure",
		recommendation: "Use proper legal document format with recitals",
	},
}

// Evaluate runs the full battery against text for the given document type.
// Text is lowercased once; each applicable rule whose predicate reports
// failure contributes its Risk and its compliance deltas. The compliance
// score starts at BaselineScore and is clamped to [0,100].
func Evaluate(text string, docType knowledge.DocumentType) Result {
	return EvaluateGroups(text, docType, nil)
}

// EvaluateGroups is Evaluate restricted to a set of rule groups. A nil or
// all-true enabled map runs the full battery.
func EvaluateGroups(text string, docType knowledge.DocumentType, enabled map[string]bool) Result {
	lower := strings.ToLower(text)

	res := Result{
		Risks: []Risk{},
		Compliance: ComplianceResult{
			Score:           BaselineScore,
			Issues:          []string{},
			Recommendations: []string{},
		},
	}

	for _, r := range battery {
		if enabled != nil && !enabled[r.group] {
			continue
		}
		if !r.applies(docType) {
			continue
		}
		if !r.failed(lower) {
			continue
		}

		if r.level != "" {
			res.Risks = append(res.Risks, Risk{
				Level:       r.level,
				Description: r.description,
				Category:    r.category,
				Remedy:      r.remedy,
				Section:     r.section,
			})
		}
		if r.deduct != 0 {
			res.Compliance.Score -= r.deduct
		}
		if r.issue != "" {
			res.Compliance.Issues = append(res.Compliance.Issues, r.issue)
		}
		if r.recommendation != "" {
			res.Compliance.Recommendations = append(res.Compliance.Recommendations, r.recommendation)
		}
	}

	res.Compliance.Score = clampScore(res.Compliance.Score)
	return res
}

func (r rule) applies(docType knowledge.DocumentType) bool {
	for _, t := range r.excludes {
		if t == docType {
			return false
		}
	}
	if len(r.appliesTo) == 0 {
		return true
	}
	for _, t := range r.appliesTo {
		if t == docType {
			return true
		}
	}
	return false
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// ParseGroups converts a slice of group names into an enabled-groups map.
// An empty slice or ["all"] enables every group.
func ParseGroups(groups []string) map[string]bool {
	result := map[string]bool{
		GroupClauses:      false,
		GroupStatutory:    false,
		GroupFinancial:    false,
		GroupJurisdiction: false,
	}

	if len(groups) == 0 || (len(groups) == 1 && groups[0] == "all") {
		for key := range result {
			result[key] = true
		}
		return result
	}

	for _, g := range groups {
		if name := strings.ToLower(strings.TrimSpace(g)); name != "" {
			if _, exists := result[name]; exists {
				result[name] = true
			}
		}
	}

	return result
}
