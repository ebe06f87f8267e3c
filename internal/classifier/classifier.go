// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package classifier assigns a document type by scoring indicator patterns.
package classifier

import (
	"lexiscan/internal/knowledge"
)

// Score holds the indicator score one document type earned for a document.
type Score struct {
	Type  knowledge.DocumentType
	Score int
}

// Classify scores every document type against content and returns the
// highest scorer. Ties are broken in favor of the earlier entry in the
// indicator table; a later type must strictly exceed the current best to
// displace it. With no indicator matches at all the result is
// general_agreement.
func Classify(content string) knowledge.DocumentType {
	best := knowledge.DocGeneralAgreement
	bestScore := 0
	for _, s := range ScoreAll(content) {
		if s.Score > bestScore {
			bestScore = s.Score
			best = s.Type
		}
	}
	return best
}

// ScoreAll computes the indicator score for every document type, in
// indicator-table order. Each matching indicator pattern contributes its
// type's per-match points, saturating at the type's cap.
func ScoreAll(content string) []Score {
	scores := make([]Score, 0, len(knowledge.ClassifierIndicators))
	for _, ind := range knowledge.ClassifierIndicators {
		score := 0
		for _, p := range ind.Patterns {
			if p.MatchString(content) {
				score += ind.PointsPerMatch
			}
		}
		if score > ind.MaxScore {
			score = ind.MaxScore
		}
		scores = append(scores, Score{Type: ind.Type, Score: score})
	}
	return scores
}
