// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package knowledge

import "regexp"

// PatternRules is the statutory and compliance pattern battery. Every rule
// is scanned against each document; importance and RiskLevel feed the
// summarizer's sentence scoring.
var PatternRules = []PatternRule{
	// Indian Contract Act
	{
		Pattern:     regexp.MustCompile(`(?i)indian\s+contract\s+act\s*,?\s*1872`),
		Category:    "indian_statute",
		Importance:  0.95,
		Description: "Reference to Indian Contract Act 1872",
		RiskLevel:   RiskLow,
		Context:     "Fundamental contract law in India",
	},
	{
		Pattern:     regexp.MustCompile(`(?i)section\s+(\d+)\s+of\s+indian\s+contract\s+act`),
		Category:    "statutory_reference",
		Importance:  0.9,
		Description: "Specific section reference to Contract Act",
		RiskLevel:   RiskLow,
	},

	// GST and tax
	{
		Pattern:     regexp.MustCompile(`(?i)goods\s+and\s+services\s+tax|gst\s+act\s*,?\s*2017`),
		Category:    "tax_compliance",
		Importance:  0.9,
		Description: "GST compliance requirement",
		RiskLevel:   RiskMedium,
		Context:     "Mandatory for most commercial transactions",
	},
	{
		Pattern:     regexp.MustCompile(`(?i)gstin\s*:?\s*[0-9]{2}[a-z]{5}[0-9]{4}[a-z][1-9a-z]z[0-9a-z]`),
		Category:    "tax_identification",
		Importance:  0.85,
		Description: "GST Identification Number",
		RiskLevel:   RiskLow,
	},
	{
		Pattern:     regexp.MustCompile(`(?i)tds\s+(?:deduction|rate|certificate)`),
		Category:    "tax_compliance",
		Importance:  0.8,
		Description: "TDS compliance provision",
		RiskLevel:   RiskMedium,
	},

	// Currency and payment
	{
		Pattern:     regexp.MustCompile(`(?i)₹\s*[\d,]+(?:\.\d{2})?|rs\.?\s*[\d,]+|rupees?\s+[\d,]+|inr\s*[\d,]+`),
		Category:    "indian_currency",
		Importance:  0.85,
		Description: "Indian Rupee amount",
		RiskLevel:   RiskMedium,
	},
	{
		Pattern:     regexp.MustCompile(`(?i)rtgs|neft|imps|upi`),
		Category:    "payment_method",
		Importance:  0.75,
		Description: "Indian electronic payment methods",
		RiskLevel:   RiskLow,
	},

	// Courts and jurisdiction
	{
		Pattern:     regexp.MustCompile(`(?i)supreme\s+court\s+of\s+india`),
		Category:    "jurisdiction",
		Importance:  0.9,
		Description: "Supreme Court jurisdiction",
		RiskLevel:   RiskLow,
	},
	{
		Pattern:     regexp.MustCompile(`(?i)high\s+court\s+of\s+\w+`),
		Category:    "jurisdiction",
		Importance:  0.85,
		Description: "High Court jurisdiction",
		RiskLevel:   RiskLow,
	},
	{
		Pattern:     regexp.MustCompile(`(?i)district\s+court|civil\s+court|magistrate`),
		Category:    "jurisdiction",
		Importance:  0.8,
		Description: "Lower court jurisdiction",
		RiskLevel:   RiskLow,
	},

	// Corporate law
	{
		Pattern:     regexp.MustCompile(`(?i)companies\s+act\s*,?\s*2013`),
		Category:    "corporate_law",
		Importance:  0.9,
		Description: "Reference to Companies Act 2013",
		RiskLevel:   RiskLow,
	},
	{
		Pattern:     regexp.MustCompile(`(?i)cin\s*:?\s*[luf]\d{5}[a-z]{2}\d{4}[a-z]{3}\d{6}`),
		Category:    "corporate_identification",
		Importance:  0.85,
		Description: "Corporate Identification Number",
		RiskLevel:   RiskLow,
	},
	{
		Pattern:     regexp.MustCompile(`(?i)memorandum\s+(?:and|&)\s+articles\s+of\s+association`),
		Category:    "corporate_documents",
		Importance:  0.85,
		Description: "Company incorporation documents",
		RiskLevel:   RiskLow,
	},

	// Employment law
	{
		Pattern:     regexp.MustCompile(`(?i)provident\s+fund|pf\s+contribution`),
		Category:    "employment_benefits",
		Importance:  0.8,
		Description: "PF compliance requirement",
		RiskLevel:   RiskMedium,
	},
	{
		Pattern:     regexp.MustCompile(`(?i)employees?\s+state\s+insurance|esi`),
		Category:    "employment_benefits",
		Importance:  0.75,
		Description: "ESI compliance requirement",
		RiskLevel:   RiskMedium,
	},
	{
		Pattern:     regexp.MustCompile(`(?i)gratuity\s+payment`),
		Category:    "employment_benefits",
		Importance:  0.75,
		Description: "Gratuity payment obligation",
		RiskLevel:   RiskMedium,
	},

	// Property law
	{
		Pattern:     regexp.MustCompile(`(?i)stamp\s+duty|registration\s+fee`),
		Category:    "property_compliance",
		Importance:  0.85,
		Description: "Property registration requirements",
		RiskLevel:   RiskHigh,
	},
	{
		Pattern:     regexp.MustCompile(`(?i)power\s+of\s+attorney|mukhtarnama`),
		Category:    "property_authorization",
		Importance:  0.8,
		Description: "Property authorization document",
		RiskLevel:   RiskMedium,
	},

	// Consumer protection
	{
		Pattern:     regexp.MustCompile(`(?i)consumer\s+protection\s+act\s*,?\s*2019`),
		Category:    "consumer_law",
		Importance:  0.8,
		Description: "Consumer protection compliance",
		RiskLevel:   RiskMedium,
	},

	// Alternative dispute resolution
	{
		Pattern:     regexp.MustCompile(`(?i)arbitration\s+(?:and|&)\s+conciliation\s+act\s*,?\s*2015`),
		Category:    "adr_law",
		Importance:  0.85,
		Description: "ADR statutory framework",
		RiskLevel:   RiskLow,
	},
	{
		Pattern:     regexp.MustCompile(`(?i)lok\s+adalat`),
		Category:    "adr_mechanism",
		Importance:  0.75,
		Description: "Lok Adalat dispute resolution",
		RiskLevel:   RiskLow,
	},

	// Banking and finance
	{
		Pattern:     regexp.MustCompile(`(?i)negotiable\s+instruments\s+act\s*,?\s*1881`),
		Category:    "banking_law",
		Importance:  0.85,
		Description: "Banking instruments regulation",
		RiskLevel:   RiskMedium,
	},
	{
		Pattern:     regexp.MustCompile(`(?i)cheque\s+bounce|dishono?ur\s+of\s+cheque`),
		Category:    "banking_violation",
		Importance:  0.8,
		Description: "Cheque dishonour provision",
		RiskLevel:   RiskHigh,
	},

	// Force majeure
	{
		Pattern:     regexp.MustCompile(`(?i)force\s+majeure|act\s+of\s+god|natural\s+calamity`),
		Category:    "force_majeure",
		Importance:  0.8,
		Description: "Force majeure clause",
		RiskLevel:   RiskLow,
		Context:     "Include monsoon, cyclone, earthquake provisions",
	},

	// Pandemic provisions
	{
		Pattern:     regexp.MustCompile(`(?i)covid-?19|coronavirus|pandemic|epidemic|lockdown`),
		Category:    "pandemic_clause",
		Importance:  0.75,
		Description: "Pandemic-related provision",
		RiskLevel:   RiskMedium,
		Context:     "Post-COVID contractual considerations",
	},
}
