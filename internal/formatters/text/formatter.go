// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"lexiscan/internal/engine"
	"lexiscan/internal/formatters"
	"lexiscan/internal/knowledge"
)

// Formatter implements human-readable text output formatting
type Formatter struct {
	colors map[string]*color.Color
}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{
		colors: map[string]*color.Color{
			"green":   color.New(color.FgGreen),
			"yellow":  color.New(color.FgYellow),
			"red":     color.New(color.FgRed),
			"redBold": color.New(color.FgRed, color.Bold),
			"cyan":    color.New(color.FgCyan),
			"white":   color.New(color.FgWhite, color.Bold),
		},
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable report with colored risk levels"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

func (f *Formatter) Format(result engine.AnalysisResult, options formatters.FormatterOptions) (string, error) {
	if options.NoColor {
		color.NoColor = true
	}

	var sb strings.Builder

	f.colors["white"].Fprintln(&sb, "LEGAL DOCUMENT ANALYSIS")
	fmt.Fprintln(&sb, strings.Repeat("=", 60))

	fmt.Fprintf(&sb, "Document Type:    %s\n", strings.ToUpper(strings.ReplaceAll(result.DocumentType, "_", " ")))
	fmt.Fprintf(&sb, "Confidence:       %d%%\n", result.ConfidenceScore)
	fmt.Fprintf(&sb, "Compliance Score: %s\n", f.complianceScore(result.Metadata.ComplianceScore))
	fmt.Fprintf(&sb, "Complexity:       %s\n", result.Metadata.DocumentComplexity)
	fmt.Fprintf(&sb, "Words: %d | Sentences: %d | Legal terms: %d\n",
		result.Metadata.WordCount, result.Metadata.SentenceCount, result.Metadata.LegalTermsFound)

	fmt.Fprintln(&sb)
	f.colors["cyan"].Fprintln(&sb, "SUMMARY")
	fmt.Fprintln(&sb, result.Summary)

	if len(result.KeyPoints) > 0 {
		fmt.Fprintln(&sb)
		f.colors["cyan"].Fprintln(&sb, "KEY POINTS")
		for _, point := range result.KeyPoints {
			fmt.Fprintf(&sb, "  • %s\n", point)
		}
	}

	if len(result.Risks) > 0 {
		fmt.Fprintln(&sb)
		f.colors["cyan"].Fprintln(&sb, "RISKS")
		for _, risk := range result.Risks {
			levelColor := f.riskColor(risk.Level)
			levelColor.Fprintf(&sb, "  [%s]", strings.ToUpper(string(risk.Level)))
			fmt.Fprintf(&sb, " %s\n", risk.Description)
			if options.Verbose {
				fmt.Fprintf(&sb, "      Category: %s\n", risk.Category)
				fmt.Fprintf(&sb, "      Remedy:   %s\n", risk.Remedy)
				if risk.Section != "" {
					fmt.Fprintf(&sb, "      Section:  %s\n", risk.Section)
				}
			}
		}
	}

	if len(result.ComplianceDetails.Issues) > 0 {
		fmt.Fprintln(&sb)
		f.colors["cyan"].Fprintln(&sb, "COMPLIANCE ISSUES")
		for _, issue := range result.ComplianceDetails.Issues {
			fmt.Fprintf(&sb, "  ✗ %s\n", issue)
		}
	}

	if len(result.Recommendations) > 0 {
		fmt.Fprintln(&sb)
		f.colors["cyan"].Fprintln(&sb, "RECOMMENDATIONS")
		for _, rec := range result.Recommendations {
			fmt.Fprintf(&sb, "  → %s\n", rec)
		}
	}

	if options.Verbose && len(result.LegalTerms) > 0 {
		fmt.Fprintln(&sb)
		f.colors["cyan"].Fprintln(&sb, "LEGAL TERMS")
		for _, term := range result.LegalTerms {
			fmt.Fprintf(&sb, "  %-30s count=%d relevance=%.2f\n", term.Term, term.Count, term.Relevance)
		}
	}

	if options.Verbose && len(result.ApplicableStatutes) > 0 {
		fmt.Fprintln(&sb)
		f.colors["cyan"].Fprintln(&sb, "APPLICABLE STATUTES")
		for _, statute := range result.ApplicableStatutes {
			fmt.Fprintf(&sb, "  %s, %d\n", statute.Act, statute.Year)
		}
	}

	if options.Verbose && len(result.RelevantCases) > 0 {
		fmt.Fprintln(&sb)
		f.colors["cyan"].Fprintln(&sb, "RELEVANT CASES")
		for _, c := range result.RelevantCases {
			fmt.Fprintf(&sb, "  %s %s — %s\n", c.Title, c.Citation, c.Principle)
		}
	}

	return sb.String(), nil
}

func (f *Formatter) riskColor(level knowledge.RiskLevel) *color.Color {
	switch level {
	case knowledge.RiskCritical:
		return f.colors["redBold"]
	case knowledge.RiskHigh:
		return f.colors["red"]
	case knowledge.RiskMedium:
		return f.colors["yellow"]
	default:
		return f.colors["green"]
	}
}

func (f *Formatter) complianceScore(score int) string {
	switch {
	case score >= 70:
		return f.colors["green"].Sprintf("%d/100", score)
	case score >= 40:
		return f.colors["yellow"].Sprintf("%d/100", score)
	default:
		return f.colors["red"].Sprintf("%d/100", score)
	}
}

func init() {
	formatters.Register(NewFormatter())
}
