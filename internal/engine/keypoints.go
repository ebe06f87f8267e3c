// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"fmt"
	"strings"

	"lexiscan/internal/extractor"
	"lexiscan/internal/knowledge"
	"lexiscan/internal/rules"
)

// keyPoints builds the bullet list of notable findings. The document type
// and compliance score bullets are always present; the rest are derived
// from extracted evidence.
func keyPoints(docType knowledge.DocumentType, ext extractor.Extraction, compliance rules.ComplianceResult) []string {
	points := []string{
		fmt.Sprintf("Document Type: %s (Indian Legal Framework)", docType.Label()),
		fmt.Sprintf("Indian Legal Compliance Score: %d%%", compliance.Score),
	}

	if critical := criticalTermPoints(ext.Terms); critical != "" {
		points = append(points, critical)
	}

	if refs := patternDescriptions(ext.Patterns, "indian_statute", "statutory_reference"); len(refs) > 0 {
		points = append(points, "Indian Legal References: "+strings.Join(refs, ", "))
	}

	if amounts := currencyAmounts(ext.Patterns); len(amounts) > 0 {
		points = append(points, "Financial Terms (INR): "+strings.Join(amounts, ", "))
	}

	if tax := patternDescriptions(ext.Patterns, "tax_compliance"); len(tax) > 0 {
		points = append(points, "Tax Compliance: "+strings.Join(tax, ", "))
	}

	if juris := patternDescriptions(ext.Patterns, "jurisdiction", "adr_mechanism"); len(juris) > 0 {
		points = append(points, "Jurisdiction & Dispute Resolution: "+strings.Join(juris, ", "))
	}

	if benefits := patternDescriptions(ext.Patterns, "employment_benefits"); len(benefits) > 0 {
		points = append(points, "Employment Benefits: "+strings.Join(benefits, ", "))
	}

	if len(compliance.Issues) > 0 {
		issues := compliance.Issues
		if len(issues) > 3 {
			issues = issues[:3]
		}
		points = append(points, "Compliance Issues: "+strings.Join(issues, ", "))
	}

	return points
}

func criticalTermPoints(terms []extractor.TermMatch) string {
	var parts []string
	for _, tm := range terms {
		if tm.Term.Importance != knowledge.ImportanceCritical || tm.Term.StatuteRef == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s (%dx - %s)", tm.Term.Term, tm.Count, tm.Term.StatuteRef))
		if len(parts) == 5 {
			break
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return "Critical Indian Legal Elements: " + strings.Join(parts, ", ")
}

func patternDescriptions(patterns []extractor.PatternMatch, categories ...string) []string {
	var out []string
	for _, pm := range patterns {
		for _, cat := range categories {
			if pm.Rule.Category == cat {
				out = append(out, pm.Rule.Description)
				break
			}
		}
	}
	return out
}

// currencyAmounts collects up to four distinct rupee amounts in match order.
func currencyAmounts(patterns []extractor.PatternMatch) []string {
	set := newOrderedSet()
	for _, pm := range patterns {
		if pm.Rule.Category != "indian_currency" {
			continue
		}
		for _, m := range pm.Matches {
			set.add(m)
		}
	}
	amounts := set.values()
	if len(amounts) > 4 {
		amounts = amounts[:4]
	}
	return amounts
}
