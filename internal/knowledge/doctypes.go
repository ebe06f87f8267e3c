// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package knowledge

import (
	"regexp"
	"strings"
)

// DocumentType is one of the fixed set of document classifications.
type DocumentType string

const (
	DocServiceAgreement   DocumentType = "service_agreement"
	DocEmploymentContract DocumentType = "employment_contract"
	DocLeaseAgreement     DocumentType = "lease_agreement"
	DocPartnershipDeed    DocumentType = "partnership_deed"
	DocSaleDeed           DocumentType = "sale_deed"
	DocLoanAgreement      DocumentType = "loan_agreement"
	DocNDA                DocumentType = "nda"
	DocCourtJudgment      DocumentType = "court_judgment"
	DocLegalNotice        DocumentType = "legal_notice"
	DocPetition           DocumentType = "petition"
	DocAffidavit          DocumentType = "affidavit"
	DocPowerOfAttorney    DocumentType = "power_of_attorney"
	DocWillTestament      DocumentType = "will_testament"
	DocMOU                DocumentType = "mou"
	DocGeneralAgreement   DocumentType = "general_agreement"
)

// AllDocumentTypes lists every supported type in classifier evaluation order.
// The order matters: classification ties are broken by first-defined-wins.
var AllDocumentTypes = []DocumentType{
	DocServiceAgreement,
	DocEmploymentContract,
	DocLeaseAgreement,
	DocPartnershipDeed,
	DocSaleDeed,
	DocLoanAgreement,
	DocNDA,
	DocCourtJudgment,
	DocLegalNotice,
	DocPetition,
	DocAffidavit,
	DocPowerOfAttorney,
	DocWillTestament,
	DocMOU,
	DocGeneralAgreement,
}

// Valid reports whether dt is a member of the supported enumeration.
func (dt DocumentType) Valid() bool {
	for _, t := range AllDocumentTypes {
		if t == dt {
			return true
		}
	}
	return false
}

// Label returns a human-readable form, e.g. "SERVICE AGREEMENT".
func (dt DocumentType) Label() string {
	return strings.ToUpper(strings.ReplaceAll(string(dt), "_", " "))
}

// Description returns the one-line introduction used as the summary prefix.
func (dt DocumentType) Description() string {
	if d, ok := typeDescriptions[dt]; ok {
		return d
	}
	return typeDescriptions[DocGeneralAgreement]
}

var typeDescriptions = map[DocumentType]string{
	DocServiceAgreement:   "This service agreement under Indian Contract Act 1872 establishes terms for professional services.",
	DocEmploymentContract: "This employment contract governs the working relationship under Indian labor laws.",
	DocLeaseAgreement:     "This lease agreement governs property rental under Indian property laws.",
	DocPartnershipDeed:    "This partnership deed establishes business collaboration under Indian Partnership Act.",
	DocSaleDeed:           "This sale deed covers property transfer under Indian Registration Act.",
	DocLoanAgreement:      "This loan agreement establishes lending terms under Indian banking regulations.",
	DocNDA:                "This non-disclosure agreement protects confidential information under Indian IP laws.",
	DocCourtJudgment:      "This court judgment records a judicial decision under Indian procedural law.",
	DocLegalNotice:        "This legal notice demands action or remedy under Indian law.",
	DocPetition:           "This petition seeks legal remedy before an Indian court.",
	DocAffidavit:          "This affidavit provides sworn statement under Indian Evidence Act.",
	DocPowerOfAttorney:    "This power of attorney grants legal authorization under Indian law.",
	DocWillTestament:      "This will and testament directs inheritance under Indian succession law.",
	DocMOU:                "This memorandum of understanding establishes preliminary agreement terms.",
	DocGeneralAgreement:   "This legal agreement establishes contractual obligations under Indian law.",
}

// TypeIndicators holds the classifier signal set for one document type. Each
// indicator that matches at least once contributes PointsPerMatch to the
// type's score; the score saturates at MaxScore.
type TypeIndicators struct {
	Type           DocumentType
	Patterns       []*regexp.Regexp
	PointsPerMatch int
	MaxScore       int
}

// ClassifierIndicators is the ordered classifier signal table. The point
// values and caps are hand-tuned against the calibration corpus; treat them
// as opaque constants. The general_agreement entry is capped low so it can
// never outscore a specific type that matched any indicator.
var ClassifierIndicators = []TypeIndicators{
	{
		Type:           DocServiceAgreement,
		PointsPerMatch: 15,
		MaxScore:       100,
		Patterns: compileAll(
			`(?i)service\s+agreement`,
			`(?i)professional\s+services`,
			`(?i)scope\s+of\s+work`,
			`(?i)deliverables`,
			`(?i)service\s+provider`,
			`(?i)consulting`,
			`(?i)software\s+development`,
			`(?i)technical\s+services`,
		),
	},
	{
		Type:           DocEmploymentContract,
		PointsPerMatch: 12,
		MaxScore:       100,
		Patterns: compileAll(
			`(?i)employment\s+agreement`,
			`(?i)appointment\s+letter`,
			`(?i)job\s+description`,
			`(?i)salary`,
			`(?i)designation`,
			`(?i)probation`,
			`(?i)notice\s+period`,
			`(?i)employee`,
			`(?i)employer`,
			`(?i)provident\s+fund`,
			`(?i)gratuity`,
		),
	},
	{
		Type:           DocLeaseAgreement,
		PointsPerMatch: 14,
		MaxScore:       100,
		Patterns: compileAll(
			`(?i)lease\s+agreement`,
			`(?i)rent\s+agreement`,
			`(?i)landlord`,
			`(?i)tenant`,
			`(?i)monthly\s+rent`,
			`(?i)security\s+deposit`,
			`(?i)premises`,
			`(?i)lease\s+period`,
			`(?i)tenancy`,
		),
	},
	{
		Type:           DocPartnershipDeed,
		PointsPerMatch: 16,
		MaxScore:       100,
		Patterns: compileAll(
			`(?i)partnership\s+deed`,
			`(?i)partners`,
			`(?i)firm`,
			`(?i)profit\s+sharing`,
			`(?i)capital\s+contribution`,
			`(?i)partnership\s+act`,
			`(?i)business\s+partnership`,
		),
	},
	{
		Type:           DocSaleDeed,
		PointsPerMatch: 15,
		MaxScore:       100,
		Patterns: compileAll(
			`(?i)sale\s+deed`,
			`(?i)conveyance`,
			`(?i)vendor`,
			`(?i)purchaser`,
			`(?i)property`,
			`(?i)consideration`,
			`(?i)registration`,
			`(?i)transfer\s+of\s+property`,
		),
	},
	{
		Type:           DocLoanAgreement,
		PointsPerMatch: 14,
		MaxScore:       100,
		Patterns: compileAll(
			`(?i)loan\s+agreement`,
			`(?i)borrower`,
			`(?i)lender`,
			`(?i)principal\s+amount`,
			`(?i)interest\s+rate`,
			`(?i)repayment`,
			`(?i)emi`,
			`(?i)security`,
			`(?i)mortgage`,
		),
	},
	{
		Type:           DocNDA,
		PointsPerMatch: 18,
		MaxScore:       100,
		Patterns: compileAll(
			`(?i)non.disclosure`,
			`(?i)confidentiality`,
			`(?i)proprietary\s+information`,
			`(?i)trade\s+secrets`,
			`(?i)confidential\s+information`,
			`(?i)nda`,
		),
	},
	{
		Type:           DocCourtJudgment,
		PointsPerMatch: 12,
		MaxScore:       100,
		Patterns: compileAll(
			`(?i)judgment`,
			`(?i)court`,
			`(?i)plaintiff`,
			`(?i)defendant`,
			`(?i)civil\s+suit`,
			`(?i)criminal\s+case`,
			`(?i)honorable\s+court`,
			`(?i)justice`,
			`(?i)order`,
			`(?i)decree`,
		),
	},
	{
		Type:           DocLegalNotice,
		PointsPerMatch: 16,
		MaxScore:       100,
		Patterns: compileAll(
			`(?i)legal\s+notice`,
			`(?i)notice`,
			`(?i)demand`,
			`(?i)breach`,
			`(?i)violation`,
			`(?i)remedy`,
			`(?i)legal\s+action`,
		),
	},
	{
		Type:           DocPetition,
		PointsPerMatch: 15,
		MaxScore:       100,
		Patterns: compileAll(
			`(?i)petition`,
			`(?i)petitioner`,
			`(?i)respondent`,
			`(?i)writ`,
			`(?i)mandamus`,
			`(?i)certiorari`,
			`(?i)habeas\s+corpus`,
			`(?i)constitutional`,
		),
	},
	{
		Type:           DocAffidavit,
		PointsPerMatch: 18,
		MaxScore:       100,
		Patterns: compileAll(
			`(?i)affidavit`,
			`(?i)sworn\s+statement`,
			`(?i)deponent`,
			`(?i)oath`,
			`(?i)affirmation`,
			`(?i)notary`,
		),
	},
	{
		Type:           DocPowerOfAttorney,
		PointsPerMatch: 17,
		MaxScore:       100,
		Patterns: compileAll(
			`(?i)power\s+of\s+attorney`,
			`(?i)attorney`,
			`(?i)agent`,
			`(?i)principal`,
			`(?i)authorization`,
			`(?i)represent`,
		),
	},
	{
		Type:           DocWillTestament,
		PointsPerMatch: 16,
		MaxScore:       100,
		Patterns: compileAll(
			`(?i)will`,
			`(?i)testament`,
			`(?i)testator`,
			`(?i)beneficiary`,
			`(?i)inheritance`,
			`(?i)executor`,
			`(?i)bequest`,
		),
	},
	{
		Type:           DocMOU,
		PointsPerMatch: 18,
		MaxScore:       100,
		Patterns: compileAll(
			`(?i)memorandum\s+of\s+understanding`,
			`(?i)mou`,
			`(?i)understanding`,
			`(?i)cooperation`,
			`(?i)collaboration`,
		),
	},
	{
		Type:           DocGeneralAgreement,
		PointsPerMatch: 8,
		MaxScore:       40,
		Patterns: compileAll(
			`(?i)agreement`,
			`(?i)contract`,
			`(?i)parties`,
			`(?i)terms\s+and\s+conditions`,
			`(?i)whereas`,
		),
	},
}

func compileAll(exprs ...string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(exprs))
	for i, expr := range exprs {
		patterns[i] = regexp.MustCompile(expr)
	}
	return patterns
}
