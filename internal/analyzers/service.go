// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package analyzers

import (
	"strings"

	"lexiscan/internal/knowledge"
	"lexiscan/internal/rules"
)

// ServiceAgreementAnalyzer checks service agreements for IP, GST, scope,
// payment, and confidentiality coverage. It is the fallback analyzer for
// document types without a dedicated one.
type ServiceAgreementAnalyzer struct{}

func (a *ServiceAgreementAnalyzer) Type() knowledge.DocumentType {
	return knowledge.DocServiceAgreement
}

func (a *ServiceAgreementAnalyzer) Description() string {
	return "Service agreement checks: IP ownership, GST, scope of work, payment schedule, confidentiality"
}

func (a *ServiceAgreementAnalyzer) Analyze(content string) Result {
	lower := strings.ToLower(content)
	return Result{
		SpecificRisks:           a.risks(lower),
		SpecificRecommendations: a.recommendations(lower),
		ComplianceChecks:        a.complianceChecks(lower),
		MissingClauses:          a.missingClauses(lower),
		CriticalElements:        a.criticalElements(lower),
	}
}

func (a *ServiceAgreementAnalyzer) risks(lower string) []rules.Risk {
	var risks []rules.Risk

	if !strings.Contains(lower, "intellectual property") && !strings.Contains(lower, "copyright") {
		risks = append(risks, rules.Risk{
			Level:       knowledge.RiskHigh,
			Description: "Intellectual property ownership not clearly defined",
			Category:    "IP_RISK",
			Remedy:      "Add clear IP ownership and licensing clauses as per Copyright Act 1957",
			Section:     "Copyright Act 1957",
		})
	}

	if !strings.Contains(lower, "gst") && !strings.Contains(lower, "goods and services tax") {
		risks = append(risks, rules.Risk{
			Level:       knowledge.RiskCritical,
			Description: "GST compliance not addressed - potential tax liability",
			Category:    "TAX_RISK",
			Remedy:      "Include GST registration numbers and tax calculation as per GST Act 2017",
			Section:     "GST Act 2017, Section 9",
		})
	}

	if !strings.Contains(lower, "scope of work") && !strings.Contains(lower, "deliverables") {
		risks = append(risks, rules.Risk{
			Level:       knowledge.RiskHigh,
			Description: "Scope of work not clearly defined - risk of scope creep",
			Category:    "CONTRACTUAL_RISK",
			Remedy:      "Define detailed scope of work and deliverables",
			Section:     "Indian Contract Act 1872, Section 10",
		})
	}

	if !strings.Contains(lower, "payment terms") && !strings.Contains(lower, "milestone") {
		risks = append(risks, rules.Risk{
			Level:       knowledge.RiskMedium,
			Description: "Payment schedule not clearly defined",
			Category:    "FINANCIAL_RISK",
			Remedy:      "Include detailed payment schedule with milestones",
		})
	}

	if !strings.Contains(lower, "confidential") && !strings.Contains(lower, "non-disclosure") {
		risks = append(risks, rules.Risk{
			Level:       knowledge.RiskMedium,
			Description: "Confidentiality obligations not specified",
			Category:    "DATA_RISK",
			Remedy:      "Add confidentiality and non-disclosure clauses",
		})
	}

	return risks
}

func (a *ServiceAgreementAnalyzer) recommendations(lower string) []string {
	recs := []string{
		"Include detailed scope of work with specific deliverables",
		"Add milestone-based payment schedule",
		"Specify GST registration numbers and place of supply",
		"Include IP ownership transfer clause",
		"Add confidentiality and non-disclosure provisions",
		"Include termination clause with notice period",
		"Add dispute resolution through arbitration",
		"Specify governing law as Indian Contract Act 1872",
	}

	if !strings.Contains(lower, "force majeure") {
		recs = append(recs, "Add force majeure clause for unforeseeable circumstances")
	}
	if !strings.Contains(lower, "indemnity") {
		recs = append(recs, "Include mutual indemnification clauses")
	}

	return recs
}

func (a *ServiceAgreementAnalyzer) complianceChecks(lower string) []ComplianceCheck {
	hasGST := strings.Contains(lower, "gst")
	hasTDS := strings.Contains(lower, "tds") || strings.Contains(lower, "tax deducted")

	gstDetails := "GST compliance not addressed"
	if hasGST {
		gstDetails = "GST provisions found"
	}
	tdsDetails := "TDS deduction not mentioned"
	if hasTDS {
		tdsDetails = "TDS provisions found"
	}

	actStatus := StatusPartial
	if strings.Contains(lower, "indian contract act") {
		actStatus = StatusCompliant
	}

	return []ComplianceCheck{
		{
			Requirement: "GST Registration and Tax Compliance",
			Status:      statusOf(hasGST),
			Details:     gstDetails,
			Action:      "Include GST registration numbers and applicable tax rates",
		},
		{
			Requirement: "TDS Deduction Provisions",
			Status:      statusOf(hasTDS),
			Details:     tdsDetails,
			Action:      "Include TDS deduction clause as per Income Tax Act 1961",
		},
		{
			Requirement: "Indian Contract Act Compliance",
			Status:      actStatus,
			Details:     "Basic contract elements present but specific act reference needed",
			Action:      "Reference Indian Contract Act 1872 for legal validity",
		},
	}
}

func (a *ServiceAgreementAnalyzer) missingClauses(lower string) []string {
	var missing []string
	if !strings.Contains(lower, "scope") && !strings.Contains(lower, "deliverable") {
		missing = append(missing, "Scope of Work")
	}
	if !strings.Contains(lower, "payment") {
		missing = append(missing, "Payment Terms")
	}
	if !strings.Contains(lower, "intellectual property") && !strings.Contains(lower, "copyright") {
		missing = append(missing, "Intellectual Property Rights")
	}
	if !strings.Contains(lower, "confidential") {
		missing = append(missing, "Confidentiality")
	}
	if !strings.Contains(lower, "termination") {
		missing = append(missing, "Termination")
	}
	if !strings.Contains(lower, "dispute") && !strings.Contains(lower, "arbitration") {
		missing = append(missing, "Dispute Resolution")
	}
	if !strings.Contains(lower, "force majeure") {
		missing = append(missing, "Force Majeure")
	}
	if !strings.Contains(lower, "governing law") {
		missing = append(missing, "Governing Law")
	}
	if !strings.Contains(lower, "gst") {
		missing = append(missing, "GST Compliance")
	}
	if !strings.Contains(lower, "indemnity") {
		missing = append(missing, "Indemnification")
	}
	return missing
}

func (a *ServiceAgreementAnalyzer) criticalElements(lower string) []CriticalElement {
	return []CriticalElement{
		{
			Element:     "Service Provider Details",
			Found:       strings.Contains(lower, "service provider") || strings.Contains(lower, "contractor"),
			Importance:  ElementMandatory,
			Description: "Complete details of service provider including registration",
		},
		{
			Element:     "Client Details",
			Found:       strings.Contains(lower, "client") || strings.Contains(lower, "customer"),
			Importance:  ElementMandatory,
			Description: "Complete details of client including business registration",
		},
		{
			Element:     "Service Description",
			Found:       strings.Contains(lower, "services") || strings.Contains(lower, "scope"),
			Importance:  ElementMandatory,
			Description: "Detailed description of services to be provided",
		},
		{
			Element:     "Payment Amount",
			Found:       strings.Contains(lower, "₹") || strings.Contains(lower, "rupees") || strings.Contains(lower, "amount"),
			Importance:  ElementMandatory,
			Description: "Total contract value and payment schedule",
		},
		{
			Element:     "Timeline",
			Found:       strings.Contains(lower, "timeline") || strings.Contains(lower, "duration") || strings.Contains(lower, "months"),
			Importance:  ElementMandatory,
			Description: "Project timeline and delivery schedule",
		},
		{
			Element:     "GST Registration Numbers",
			Found:       strings.Contains(lower, "gstin") || strings.Contains(lower, "gst registration"),
			Importance:  ElementMandatory,
			Description: "GST registration numbers of both parties",
		},
	}
}

func statusOf(compliant bool) ComplianceStatus {
	if compliant {
		return StatusCompliant
	}
	return StatusNonCompliant
}
