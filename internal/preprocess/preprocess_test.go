// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package preprocess

import (
	"strings"
	"testing"
)

func TestNormalize_SubstitutesUnusableInput(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"too short", "short text"},
		{"zip container marker", "PK\x03\x04" + strings.Repeat("x", 200)},
		{"office container marker", "[Content_Types].xml" + strings.Repeat("x", 200)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.input); got != SampleDocument {
				t.Errorf("expected sample document substitution, got %q...", got[:40])
			}
			if !Substituted(tc.input) {
				t.Error("Substituted should report true")
			}
		})
	}
}

func TestNormalize_CleansRegularText(t *testing.T) {
	input := strings.Repeat("This agreement is governed by the laws of India. ", 5) + "Consideration: ₹5,00,000 @ 18% «GST»"
	got := Normalize(input)

	if Substituted(input) {
		t.Fatal("long prose should not be substituted")
	}
	if strings.Contains(got, "«") || strings.Contains(got, "»") {
		t.Error("unexpected characters should be stripped")
	}
	if !strings.Contains(got, "₹5,00,000") {
		t.Error("rupee amounts should survive normalization")
	}
	if !strings.Contains(got, "18%") {
		t.Error("percentages should survive normalization")
	}
	if strings.Contains(got, "  ") {
		t.Error("whitespace should be collapsed")
	}
	if got != strings.TrimSpace(got) {
		t.Error("result should be trimmed")
	}
}

func TestNormalize_Deterministic(t *testing.T) {
	input := strings.Repeat("The parties agree to arbitration under the Arbitration and Conciliation Act. ", 3)
	if Normalize(input) != Normalize(input) {
		t.Error("Normalize must be deterministic")
	}
}

func TestSentences(t *testing.T) {
	content := "This is a sentence long enough to count. Too short. " +
		"Another sentence that clears the length threshold easily! " +
		"Does the splitter handle question marks properly?"
	got := Sentences(content)

	if len(got) != 3 {
		t.Fatalf("expected 3 sentences, got %d: %v", len(got), got)
	}
	for _, s := range got {
		if len(s) <= 15 {
			t.Errorf("sentence %q should have been dropped as too short", s)
		}
		if s != strings.TrimSpace(s) {
			t.Errorf("sentence %q should be trimmed", s)
		}
	}
}

func TestSentences_Cap(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 200; i++ {
		sb.WriteString("This sentence pads out the document with enough length. ")
	}
	if got := Sentences(sb.String()); len(got) != 150 {
		t.Errorf("expected sentence cap of 150, got %d", len(got))
	}
}

func TestWordCount(t *testing.T) {
	if got := WordCount("the quick  brown\tfox"); got != 4 {
		t.Errorf("expected 4 words, got %d", got)
	}
	if got := WordCount(""); got != 0 {
		t.Errorf("expected 0 words for empty input, got %d", got)
	}
}

func TestSampleDocument_IsAnalyzable(t *testing.T) {
	if len(SampleDocument) < MinContentLength {
		t.Fatal("sample document must clear the minimum content length")
	}
	for _, marker := range []string{"GST", "arbitration", "₹"} {
		if !strings.Contains(SampleDocument, marker) {
			t.Errorf("sample document should contain %q", marker)
		}
	}
}
