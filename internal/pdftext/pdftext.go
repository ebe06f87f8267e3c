// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package pdftext extracts plain text from PDF documents so they can be
// analyzed like any other text input.
package pdftext

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// maxPages caps extraction for very large documents. Legal agreements
// rarely exceed this, and it keeps extraction time bounded.
const maxPages = 50

// Document holds the text extracted from a PDF file.
type Document struct {
	Filename  string
	Text      string
	PageCount int
	WordCount int
}

// Validate checks that the file is a structurally sound PDF before
// extraction is attempted. Relaxed validation is used because many
// real-world scanned agreements carry minor format violations.
func Validate(filePath string) error {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	if err := api.ValidateFile(filePath, conf); err != nil {
		return fmt.Errorf("invalid PDF file %s: %w", filepath.Base(filePath), err)
	}
	return nil
}

// Extract validates and extracts text from the PDF at filePath.
func Extract(filePath string) (*Document, error) {
	if err := Validate(filePath); err != nil {
		return nil, err
	}

	doc := &Document{Filename: filepath.Base(filePath)}

	f, r, err := pdf.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening PDF: %w", err)
	}
	defer f.Close()

	doc.PageCount = r.NumPage()
	pages := doc.PageCount
	if pages > maxPages {
		pages = maxPages
	}

	type pageResult struct {
		pageNum int
		text    string
		err     error
	}

	resultChan := make(chan pageResult, pages)
	for i := 1; i <= pages; i++ {
		go func(pageNum int) {
			p := r.Page(pageNum)
			if p.V.IsNull() {
				resultChan <- pageResult{pageNum: pageNum, err: fmt.Errorf("null page")}
				return
			}
			text, err := extractPageText(p)
			resultChan <- pageResult{pageNum: pageNum, text: text, err: err}
		}(i)
	}

	pageTexts := make(map[int]string)
	for i := 0; i < pages; i++ {
		result := <-resultChan
		if result.err != nil {
			continue
		}
		pageTexts[result.pageNum] = result.text
	}

	var buf bytes.Buffer
	for i := 1; i <= pages; i++ {
		if text, ok := pageTexts[i]; ok {
			if buf.Len() > 0 {
				buf.WriteString("\n")
			}
			buf.WriteString(text)
		}
	}

	doc.Text = cleanText(buf.String())
	doc.WordCount = len(strings.Fields(doc.Text))

	return doc, nil
}

// extractPageText extracts text using row-based positioning so that words
// separated by layout gaps keep their spacing. Falls back to plain text
// extraction when row information is unavailable.
func extractPageText(p pdf.Page) (string, error) {
	rows, err := p.GetTextByRow()
	if err != nil {
		return p.GetPlainText(nil)
	}

	sortedRows := make([]*pdf.Row, 0, len(rows))
	for _, row := range rows {
		if row != nil && len(row.Content) > 0 {
			sortedRows = append(sortedRows, row)
		}
	}

	// Top-to-bottom reading order.
	sort.Slice(sortedRows, func(i, j int) bool {
		return averageY(sortedRows[i].Content) < averageY(sortedRows[j].Content)
	})

	var buf bytes.Buffer
	for _, row := range sortedRows {
		rowText := joinRowText(row.Content)
		if strings.TrimSpace(rowText) != "" {
			buf.WriteString(rowText)
			buf.WriteString("\n")
		}
	}

	return buf.String(), nil
}

func averageY(elements []pdf.Text) float64 {
	if len(elements) == 0 {
		return 0
	}
	var total float64
	for _, e := range elements {
		total += e.Y
	}
	return total / float64(len(elements))
}

// joinRowText assembles a row's text elements left-to-right, inserting a
// space wherever the horizontal gap between elements exceeds 20% of the
// font size.
func joinRowText(elements []pdf.Text) string {
	if len(elements) == 0 {
		return ""
	}

	sorted := make([]pdf.Text, len(elements))
	copy(sorted, elements)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].X < sorted[j].X
	})

	var buf bytes.Buffer
	for i, e := range sorted {
		buf.WriteString(e.S)
		if i < len(sorted)-1 {
			gap := sorted[i+1].X - (e.X + e.W)
			fontSize := e.FontSize
			if fontSize <= 0 {
				fontSize = 12
			}
			if gap > fontSize*0.2 {
				buf.WriteString(" ")
			}
		}
	}

	return buf.String()
}

// cleanText trims each line and drops blank lines while keeping line
// structure, which helps sentence splitting downstream.
func cleanText(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(strings.ReplaceAll(line, "\t", " "))
		for strings.Contains(line, "  ") {
			line = strings.ReplaceAll(line, "  ", " ")
		}
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
