// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package preprocess normalizes raw document text before analysis.
// Input that is too short or looks like a binary container is replaced with
// a fixed sample agreement so downstream stages always receive analyzable
// prose.
package preprocess

import (
	"regexp"
	"strings"
)

const (
	// MinContentLength is the threshold below which input is treated as
	// unusable and substituted with the sample document.
	MinContentLength = 100

	maxSentences      = 150
	minSentenceLength = 15
)

var (
	stripRe    = regexp.MustCompile(`[^\w\s.,!?;:()\-₹$%]`)
	spaceRe    = regexp.MustCompile(`\s+`)
	sentenceRe = regexp.MustCompile(`[.!?]+`)
)

// Normalize cleans raw text for analysis. Binary container markers ("PK",
// "Content_Types") and inputs under MinContentLength are replaced with
// SampleDocument; otherwise unexpected characters are stripped and
// whitespace is collapsed. The result is deterministic for a given input.
func Normalize(content string) string {
	if strings.Contains(content, "PK") || strings.Contains(content, "Content_Types") || len(content) < MinContentLength {
		return SampleDocument
	}

	cleaned := stripRe.ReplaceAllString(content, " ")
	cleaned = spaceRe.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

// Substituted reports whether Normalize would discard content and return
// the sample document instead.
func Substituted(content string) bool {
	return strings.Contains(content, "PK") || strings.Contains(content, "Content_Types") || len(content) < MinContentLength
}

// Sentences splits normalized text on terminal punctuation, trims each
// fragment, drops fragments of minSentenceLength characters or fewer, and
// caps the result at maxSentences entries in document order.
func Sentences(content string) []string {
	parts := sentenceRe.Split(content, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		s := strings.TrimSpace(p)
		if len(s) > minSentenceLength {
			sentences = append(sentences, s)
		}
		if len(sentences) == maxSentences {
			break
		}
	}
	return sentences
}

// WordCount counts whitespace-separated tokens in content.
func WordCount(content string) int {
	return len(strings.Fields(content))
}
