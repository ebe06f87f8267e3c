// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package rules

import (
	"reflect"
	"testing"

	"lexiscan/internal/knowledge"
)

func TestEvaluate_EmptyGeneralAgreement(t *testing.T) {
	res := Evaluate("", knowledge.DocGeneralAgreement)

	// Deductions: termination 10, dispute 8, governing law 7, payment 10,
	// jurisdiction 8, legal structure 10 = 53 off the baseline of 70.
	if res.Compliance.Score != 17 {
		t.Errorf("compliance score = %d, want 17", res.Compliance.Score)
	}
	if len(res.Risks) != 5 {
		t.Errorf("risks = %d, want 5", len(res.Risks))
	}
	if len(res.Compliance.Issues) != 6 {
		t.Errorf("issues = %d, want 6", len(res.Compliance.Issues))
	}
}

func TestEvaluate_TwoMissingClauses(t *testing.T) {
	text := "This agreement is subject to governing law of India. Payment shall carry interest on delay. " +
		"The courts at Mumbai have jurisdiction. Whereas the parties agree to these terms."
	res := Evaluate(text, knowledge.DocGeneralAgreement)

	if len(res.Risks) != 2 {
		t.Fatalf("risks = %d, want exactly 2 (termination and dispute resolution)", len(res.Risks))
	}
	if res.Risks[0].Level != knowledge.RiskHigh || res.Risks[0].Description != "Missing termination clause - unclear exit mechanism" {
		t.Errorf("first risk = %+v, want the high termination finding", res.Risks[0])
	}
	if res.Risks[1].Level != knowledge.RiskMedium || res.Risks[1].Category != "procedural" {
		t.Errorf("second risk = %+v, want the medium dispute finding", res.Risks[1])
	}
	if res.Compliance.Score != 52 {
		t.Errorf("compliance score = %d, want 70-10-8 = 52", res.Compliance.Score)
	}
}

func TestEvaluate_ServiceAgreementStatutory(t *testing.T) {
	// GST present: no gst risk. Service agreements are outside the stamp
	// duty battery, so "stamp" may be absent without a critical finding.
	text := "Service agreement with GST at 18%. Payment with interest on delay, termination on notice, " +
		"arbitration for disputes, governing law of India, jurisdiction of Pune courts, " +
		"under the Indian Contract Act with intellectual property assignment."
	res := Evaluate(text, knowledge.DocServiceAgreement)

	for _, r := range res.Risks {
		if r.Category == "tax_compliance" {
			t.Error("gst risk should not fire when GST is addressed")
		}
		if r.Level == knowledge.RiskCritical {
			t.Error("stamp duty rule must not apply to service agreements")
		}
	}
	if res.Compliance.Score != BaselineScore {
		t.Errorf("fully compliant service agreement score = %d, want %d", res.Compliance.Score, BaselineScore)
	}
}

func TestEvaluate_EmploymentStampDuty(t *testing.T) {
	res := Evaluate("", knowledge.DocEmploymentContract)

	var critical *Risk
	for i := range res.Risks {
		if res.Risks[i].Level == knowledge.RiskCritical {
			critical = &res.Risks[i]
		}
	}
	if critical == nil {
		t.Fatal("employment contract without stamp duty must raise a critical risk")
	}
	if critical.Section != "Section 3 of Indian Stamp Act, 1899" {
		t.Errorf("critical risk section = %q", critical.Section)
	}
}

func TestEvaluate_ScoreClampedAtZero(t *testing.T) {
	// Employment contracts fail enough statutory rules on empty input to
	// push the raw score below zero.
	res := Evaluate("", knowledge.DocEmploymentContract)
	if res.Compliance.Score != 0 {
		t.Errorf("score = %d, want clamp at 0", res.Compliance.Score)
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	text := "Agreement with payment terms. Whereas the parties intend to be bound."
	first := Evaluate(text, knowledge.DocLeaseAgreement)
	second := Evaluate(text, knowledge.DocLeaseAgreement)
	if !reflect.DeepEqual(first, second) {
		t.Error("evaluation must be deterministic for identical input")
	}
}

func TestEvaluate_InitializedSlices(t *testing.T) {
	res := Evaluate("termination arbitration governing law payment interest jurisdiction whereas", knowledge.DocGeneralAgreement)
	if res.Risks == nil || res.Compliance.Issues == nil || res.Compliance.Recommendations == nil {
		t.Error("result slices must be initialized, not nil")
	}
}

func TestEvaluateGroups_RestrictsBattery(t *testing.T) {
	enabled := map[string]bool{GroupFinancial: true}
	res := EvaluateGroups("", knowledge.DocGeneralAgreement, enabled)

	if len(res.Risks) != 1 {
		t.Fatalf("risks = %d, want only the payment finding", len(res.Risks))
	}
	if res.Risks[0].Category != "financial" {
		t.Errorf("risk category = %q, want financial", res.Risks[0].Category)
	}
	if res.Compliance.Score != 60 {
		t.Errorf("score = %d, want 70-10 = 60", res.Compliance.Score)
	}
}

func TestParseGroups(t *testing.T) {
	cases := []struct {
		name   string
		input  []string
		expect map[string]bool
	}{
		{
			"empty enables all",
			nil,
			map[string]bool{GroupClauses: true, GroupStatutory: true, GroupFinancial: true, GroupJurisdiction: true},
		},
		{
			"all keyword enables all",
			[]string{"all"},
			map[string]bool{GroupClauses: true, GroupStatutory: true, GroupFinancial: true, GroupJurisdiction: true},
		},
		{
			"specific groups",
			[]string{"clauses", " FINANCIAL "},
			map[string]bool{GroupClauses: true, GroupStatutory: false, GroupFinancial: true, GroupJurisdiction: false},
		},
		{
			"unknown names ignored",
			[]string{"bogus"},
			map[string]bool{GroupClauses: false, GroupStatutory: false, GroupFinancial: false, GroupJurisdiction: false},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseGroups(tc.input); !reflect.DeepEqual(got, tc.expect) {
				t.Errorf("ParseGroups(%v) = %v, want %v", tc.input, got, tc.expect)
			}
		})
	}
}
