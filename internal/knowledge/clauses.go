// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package knowledge

// ClauseTemplates lists the clause families checked during extraction.
// Quality accrues at ClauseQualityStep per pattern occurrence, capped at 1.0.
var ClauseTemplates = []ClauseTemplate{
	{
		Type:        "gst_compliance",
		Patterns:    compileAll(`(?i)gst`, `(?i)goods\s+and\s+services\s+tax`),
		Importance:  0.9,
		Description: "GST Compliance Clause",
		Recommendations: []string{
			"Include GST registration numbers of both parties",
			"Specify GST rate applicable to services/goods",
			"Define responsibility for GST payment and filing",
		},
		Compliance: []string{
			"GST Act, 2017 compliance",
			"Input tax credit provisions",
			"Place of supply determination",
		},
	},
	{
		Type:        "indian_jurisdiction",
		Patterns:    compileAll(`(?i)jurisdiction`, `(?i)courts?\s+of`),
		Importance:  0.85,
		Description: "Indian Jurisdiction Clause",
		Recommendations: []string{
			"Specify Indian courts with jurisdiction",
			"Include arbitration seat in India",
			"Reference Indian legal framework",
		},
		Compliance: []string{
			"Code of Civil Procedure, 1908",
			"Arbitration and Conciliation Act, 2015",
			"Specific Relief Act, 1963",
		},
	},
	{
		Type:        "employment_compliance",
		Patterns:    compileAll(`(?i)employment`, `(?i)employee`, `(?i)salary`),
		Importance:  0.85,
		Description: "Employment Law Compliance",
		Recommendations: []string{
			"Include PF and ESI compliance",
			"Define gratuity payment terms",
			"Specify notice period as per labor laws",
		},
		Compliance: []string{
			"Employees Provident Fund Act, 1952",
			"Payment of Gratuity Act, 1972",
			"Industrial Disputes Act, 1947",
		},
	},
	{
		Type:        "stamp_duty_compliance",
		Patterns:    compileAll(`(?i)agreement`, `(?i)contract`),
		Importance:  0.8,
		Description: "Stamp Duty and Registration",
		Recommendations: []string{
			"Ensure adequate stamp duty payment",
			"Register document if value exceeds ₹100",
			"Include registration clause for enforceability",
		},
		Compliance: []string{
			"Indian Stamp Act, 1899",
			"Registration Act, 1908",
			"State-specific stamp duty rates",
		},
	},
}

// ClauseQualityStep is the quality increment per matched clause pattern.
const ClauseQualityStep = 0.25
