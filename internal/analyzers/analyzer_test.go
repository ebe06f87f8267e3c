// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package analyzers

import (
	"testing"

	"lexiscan/internal/knowledge"
)

func TestDefaultRegistry_LookupAndFallback(t *testing.T) {
	reg := DefaultRegistry()

	cases := []struct {
		name     string
		docType  knowledge.DocumentType
		wantType knowledge.DocumentType
	}{
		{"service agreement", knowledge.DocServiceAgreement, knowledge.DocServiceAgreement},
		{"employment contract", knowledge.DocEmploymentContract, knowledge.DocEmploymentContract},
		{"lease agreement", knowledge.DocLeaseAgreement, knowledge.DocLeaseAgreement},
		{"nda falls back to service", knowledge.DocNDA, knowledge.DocServiceAgreement},
		{"will falls back to service", knowledge.DocWillTestament, knowledge.DocServiceAgreement},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, ok := reg.Get(tc.docType)
			if !ok || a == nil {
				t.Fatal("registry must always resolve via the fallback")
			}
			if a.Type() != tc.wantType {
				t.Errorf("analyzer type = %s, want %s", a.Type(), tc.wantType)
			}
		})
	}
}

func TestServiceAnalyzer_MissingEverything(t *testing.T) {
	a := &ServiceAgreementAnalyzer{}
	res := a.Analyze("")

	if len(res.SpecificRisks) != 5 {
		t.Errorf("risks = %d, want 5 for empty content", len(res.SpecificRisks))
	}

	var sawCriticalGST bool
	for _, r := range res.SpecificRisks {
		if r.Category == "TAX_RISK" {
			sawCriticalGST = true
			if r.Level != knowledge.RiskCritical {
				t.Errorf("GST risk level = %s, want critical", r.Level)
			}
		}
	}
	if !sawCriticalGST {
		t.Error("missing GST must surface a TAX_RISK finding")
	}

	if len(res.MissingClauses) != 10 {
		t.Errorf("missing clauses = %d, want 10", len(res.MissingClauses))
	}
	for _, el := range res.CriticalElements {
		if el.Found {
			t.Errorf("element %q should not be found in empty content", el.Element)
		}
	}
}

func TestServiceAnalyzer_CompliantDocument(t *testing.T) {
	content := "The service provider shall perform services for the client with a defined scope of work and deliverables. " +
		"Payment terms follow milestones with amounts in rupees. GST registration and GSTIN numbers are stated and TDS applies. " +
		"Intellectual property vests in the client. Confidential information is protected. " +
		"Termination on notice, dispute resolution by arbitration, governing law of India, force majeure and indemnity included. " +
		"Duration of six months under the Indian Contract Act."
	a := &ServiceAgreementAnalyzer{}
	res := a.Analyze(content)

	if len(res.SpecificRisks) != 0 {
		t.Errorf("risks = %d, want 0 for compliant content: %+v", len(res.SpecificRisks), res.SpecificRisks)
	}
	if len(res.MissingClauses) != 0 {
		t.Errorf("missing clauses = %v, want none", res.MissingClauses)
	}
	for _, check := range res.ComplianceChecks {
		if check.Status != StatusCompliant {
			t.Errorf("check %q status = %s, want COMPLIANT", check.Requirement, check.Status)
		}
	}
	for _, el := range res.CriticalElements {
		if !el.Found {
			t.Errorf("element %q should be found", el.Element)
		}
	}
}

func TestEmploymentAnalyzer_StatutoryFocus(t *testing.T) {
	a := &EmploymentContractAnalyzer{}
	res := a.Analyze("Plain employment letter with no statutory provisions at all.")

	if len(res.SpecificRisks) == 0 {
		t.Fatal("employment analyzer should flag missing statutory provisions")
	}
	var sawPF bool
	for _, r := range res.SpecificRisks {
		if r.Level == knowledge.RiskCritical {
			sawPF = true
		}
	}
	if !sawPF {
		t.Error("expected at least one critical statutory risk")
	}
}

func TestLeaseAnalyzer_RegistrationRisk(t *testing.T) {
	a := &LeaseAgreementAnalyzer{}
	res := a.Analyze("Simple rent arrangement without formalities.")

	if len(res.SpecificRisks) == 0 {
		t.Fatal("lease analyzer should flag missing registration and stamp duty")
	}
	if len(res.SpecificRecommendations) == 0 {
		t.Error("lease analyzer should always recommend improvements")
	}
}

func TestAnalyzerTypes(t *testing.T) {
	cases := []struct {
		analyzer DocumentAnalyzer
		want     knowledge.DocumentType
	}{
		{&ServiceAgreementAnalyzer{}, knowledge.DocServiceAgreement},
		{&EmploymentContractAnalyzer{}, knowledge.DocEmploymentContract},
		{&LeaseAgreementAnalyzer{}, knowledge.DocLeaseAgreement},
	}
	for _, tc := range cases {
		if got := tc.analyzer.Type(); got != tc.want {
			t.Errorf("Type() = %s, want %s", got, tc.want)
		}
		if tc.analyzer.Description() == "" {
			t.Errorf("%s analyzer must describe itself", tc.want)
		}
	}
}
