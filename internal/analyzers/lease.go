// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package analyzers

import (
	"strings"

	"lexiscan/internal/knowledge"
	"lexiscan/internal/rules"
)

// LeaseAgreementAnalyzer checks lease agreements for stamp duty,
// registration, and deposit coverage.
type LeaseAgreementAnalyzer struct{}

func (a *LeaseAgreementAnalyzer) Type() knowledge.DocumentType {
	return knowledge.DocLeaseAgreement
}

func (a *LeaseAgreementAnalyzer) Description() string {
	return "Lease agreement checks: stamp duty, registration, security deposit, maintenance"
}

func (a *LeaseAgreementAnalyzer) Analyze(content string) Result {
	lower := strings.ToLower(content)
	return Result{
		SpecificRisks:           a.risks(lower),
		SpecificRecommendations: a.recommendations(),
		ComplianceChecks:        a.complianceChecks(lower),
		MissingClauses:          a.missingClauses(lower),
		CriticalElements:        a.criticalElements(lower),
	}
}

func (a *LeaseAgreementAnalyzer) risks(lower string) []rules.Risk {
	var risks []rules.Risk

	if !strings.Contains(lower, "stamp duty") && !strings.Contains(lower, "stamp") {
		risks = append(risks, rules.Risk{
			Level:       knowledge.RiskCritical,
			Description: "Stamp duty requirements not addressed - document may be inadmissible",
			Category:    "LEGAL_VALIDITY",
			Remedy:      "Pay stamp duty as per Indian Stamp Act 1899",
			Section:     "Indian Stamp Act 1899, Section 3",
		})
	}

	if !strings.Contains(lower, "registration") && !strings.Contains(lower, "register") {
		risks = append(risks, rules.Risk{
			Level:       knowledge.RiskHigh,
			Description: "Registration requirements not mentioned",
			Category:    "LEGAL_VALIDITY",
			Remedy:      "Register document if lease value exceeds state limits",
			Section:     "Registration Act 1908, Section 17",
		})
	}

	if !strings.Contains(lower, "security deposit") && !strings.Contains(lower, "advance") {
		risks = append(risks, rules.Risk{
			Level:       knowledge.RiskMedium,
			Description: "Security deposit terms not clearly defined",
			Category:    "FINANCIAL_RISK",
			Remedy:      "Specify security deposit amount and refund conditions",
		})
	}

	return risks
}

func (a *LeaseAgreementAnalyzer) recommendations() []string {
	return []string{
		"Pay stamp duty as per state stamp act",
		"Register document if required by law",
		"Include detailed property description",
		"Specify maintenance responsibilities",
		"Add rent escalation clause",
		"Include termination conditions",
		"Specify security deposit refund terms",
		"Add force majeure clause",
		"Include dispute resolution mechanism",
	}
}

func (a *LeaseAgreementAnalyzer) complianceChecks(lower string) []ComplianceCheck {
	hasStamp := strings.Contains(lower, "stamp")
	hasRegistration := strings.Contains(lower, "registration")

	stampDetails := "Stamp duty not addressed"
	if hasStamp {
		stampDetails = "Stamp duty mentioned"
	}
	regDetails := "Registration not addressed"
	if hasRegistration {
		regDetails = "Registration mentioned"
	}

	return []ComplianceCheck{
		{
			Requirement: "Stamp Duty Payment",
			Status:      statusOf(hasStamp),
			Details:     stampDetails,
			Action:      "Pay appropriate stamp duty as per state schedule",
		},
		{
			Requirement: "Document Registration",
			Status:      statusOf(hasRegistration),
			Details:     regDetails,
			Action:      "Register document if lease value exceeds ₹100",
		},
	}
}

func (a *LeaseAgreementAnalyzer) missingClauses(lower string) []string {
	var missing []string
	if !strings.Contains(lower, "stamp") {
		missing = append(missing, "Stamp Duty Clause")
	}
	if !strings.Contains(lower, "registration") {
		missing = append(missing, "Registration Clause")
	}
	if !strings.Contains(lower, "maintenance") {
		missing = append(missing, "Maintenance Responsibilities")
	}
	if !strings.Contains(lower, "termination") {
		missing = append(missing, "Termination Conditions")
	}
	return missing
}

func (a *LeaseAgreementAnalyzer) criticalElements(lower string) []CriticalElement {
	return []CriticalElement{
		{
			Element:     "Property Description",
			Found:       strings.Contains(lower, "property") || strings.Contains(lower, "premises"),
			Importance:  ElementMandatory,
			Description: "Detailed description of leased property",
		},
		{
			Element:     "Rent Amount",
			Found:       strings.Contains(lower, "rent") || strings.Contains(lower, "₹"),
			Importance:  ElementMandatory,
			Description: "Monthly rent amount and payment terms",
		},
		{
			Element:     "Lease Period",
			Found:       strings.Contains(lower, "period") || strings.Contains(lower, "duration"),
			Importance:  ElementMandatory,
			Description: "Lease duration and renewal terms",
		},
		{
			Element:     "Security Deposit",
			Found:       strings.Contains(lower, "security") || strings.Contains(lower, "deposit"),
			Importance:  ElementMandatory,
			Description: "Security deposit amount and refund conditions",
		},
	}
}
