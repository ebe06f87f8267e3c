// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package analyzers

import (
	"strings"

	"lexiscan/internal/knowledge"
	"lexiscan/internal/rules"
)

// EmploymentContractAnalyzer checks employment contracts for statutory
// benefit coverage: PF, gratuity, notice period, working hours.
type EmploymentContractAnalyzer struct{}

func (a *EmploymentContractAnalyzer) Type() knowledge.DocumentType {
	return knowledge.DocEmploymentContract
}

func (a *EmploymentContractAnalyzer) Description() string {
	return "Employment contract checks: PF, gratuity, notice period, working hours, leave policy"
}

func (a *EmploymentContractAnalyzer) Analyze(content string) Result {
	lower := strings.ToLower(content)
	return Result{
		SpecificRisks:           a.risks(lower),
		SpecificRecommendations: a.recommendations(),
		ComplianceChecks:        a.complianceChecks(lower),
		MissingClauses:          a.missingClauses(lower),
		CriticalElements:        a.criticalElements(lower),
	}
}

func (a *EmploymentContractAnalyzer) risks(lower string) []rules.Risk {
	var risks []rules.Risk

	if !strings.Contains(lower, "provident fund") && !strings.Contains(lower, "pf") {
		risks = append(risks, rules.Risk{
			Level:       knowledge.RiskCritical,
			Description: "PF compliance missing - violation of EPF Act 1952",
			Category:    "STATUTORY_COMPLIANCE",
			Remedy:      "Include PF registration and contribution details",
			Section:     "EPF Act 1952, Section 6",
		})
	}

	if !strings.Contains(lower, "gratuity") {
		risks = append(risks, rules.Risk{
			Level:       knowledge.RiskHigh,
			Description: "Gratuity provisions missing",
			Category:    "STATUTORY_COMPLIANCE",
			Remedy:      "Include gratuity calculation as per Payment of Gratuity Act 1972",
			Section:     "Payment of Gratuity Act 1972, Section 4",
		})
	}

	if !strings.Contains(lower, "notice period") {
		risks = append(risks, rules.Risk{
			Level:       knowledge.RiskMedium,
			Description: "Notice period not specified",
			Category:    "TERMINATION_RISK",
			Remedy:      "Specify notice period as per Industrial Disputes Act 1947",
		})
	}

	if !strings.Contains(lower, "working hours") && !strings.Contains(lower, "work time") {
		risks = append(risks, rules.Risk{
			Level:       knowledge.RiskMedium,
			Description: "Working hours not defined",
			Category:    "LABOR_LAW_RISK",
			Remedy:      "Define working hours as per Factories Act 1948",
		})
	}

	return risks
}

func (a *EmploymentContractAnalyzer) recommendations() []string {
	return []string{
		"Include PF registration number and contribution details",
		"Add gratuity calculation formula",
		"Specify notice period for termination",
		"Define working hours and overtime policy",
		"Include ESI registration if applicable",
		"Add professional tax deduction clause",
		"Include confidentiality and non-compete clauses",
		"Specify probation period terms",
		"Add performance evaluation criteria",
		"Include leave policy details",
	}
}

func (a *EmploymentContractAnalyzer) complianceChecks(lower string) []ComplianceCheck {
	hasPF := strings.Contains(lower, "provident fund") || strings.Contains(lower, "pf")
	hasESI := strings.Contains(lower, "esi") || strings.Contains(lower, "employee state insurance")

	pfDetails := "PF compliance missing"
	if strings.Contains(lower, "pf") {
		pfDetails = "PF provisions found"
	}
	esiDetails := "ESI compliance missing"
	if strings.Contains(lower, "esi") {
		esiDetails = "ESI provisions found"
	}

	wageStatus := StatusPartial
	if strings.Contains(lower, "minimum wage") {
		wageStatus = StatusCompliant
	}

	return []ComplianceCheck{
		{
			Requirement: "Provident Fund Compliance",
			Status:      statusOf(hasPF),
			Details:     pfDetails,
			Action:      "Include PF registration and contribution as per EPF Act 1952",
		},
		{
			Requirement: "Employee State Insurance",
			Status:      statusOf(hasESI),
			Details:     esiDetails,
			Action:      "Include ESI registration and contribution if applicable",
		},
		{
			Requirement: "Minimum Wages Compliance",
			Status:      wageStatus,
			Details:     "Salary mentioned but minimum wage compliance unclear",
			Action:      "Ensure salary meets minimum wage requirements",
		},
	}
}

func (a *EmploymentContractAnalyzer) missingClauses(lower string) []string {
	var missing []string
	if !strings.Contains(lower, "provident fund") && !strings.Contains(lower, "pf") {
		missing = append(missing, "Provident Fund Provisions")
	}
	if !strings.Contains(lower, "gratuity") {
		missing = append(missing, "Gratuity Calculation")
	}
	if !strings.Contains(lower, "notice period") {
		missing = append(missing, "Notice Period")
	}
	if !strings.Contains(lower, "working hours") {
		missing = append(missing, "Working Hours")
	}
	if !strings.Contains(lower, "leave") {
		missing = append(missing, "Leave Policy")
	}
	if !strings.Contains(lower, "confidential") {
		missing = append(missing, "Confidentiality Agreement")
	}
	return missing
}

func (a *EmploymentContractAnalyzer) criticalElements(lower string) []CriticalElement {
	return []CriticalElement{
		{
			Element:     "Employee Details",
			Found:       strings.Contains(lower, "employee") || strings.Contains(lower, "name"),
			Importance:  ElementMandatory,
			Description: "Complete employee personal and contact details",
		},
		{
			Element:     "Designation",
			Found:       strings.Contains(lower, "designation") || strings.Contains(lower, "position"),
			Importance:  ElementMandatory,
			Description: "Job title and role description",
		},
		{
			Element:     "Salary Structure",
			Found:       strings.Contains(lower, "salary") || strings.Contains(lower, "₹"),
			Importance:  ElementMandatory,
			Description: "Detailed salary breakdown including allowances",
		},
		{
			Element:     "PF Registration",
			Found:       strings.Contains(lower, "pf") || strings.Contains(lower, "provident fund"),
			Importance:  ElementMandatory,
			Description: "PF registration number and contribution details",
		},
		{
			Element:     "Reporting Structure",
			Found:       strings.Contains(lower, "report") || strings.Contains(lower, "manager"),
			Importance:  ElementRecommended,
			Description: "Clear reporting hierarchy and responsibilities",
		},
	}
}
