// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/urugowoc/urugo/pkg/slug"
)

/*
TestFrom verifies the slug pipeline: lowercasing, accent stripping, and
hyphen cleanup.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Weaving Workshop", "weaving-workshop"},
		{"punctuation", "Umuganda: Community Day!", "umuganda-community-day"},
		{"accents", "Café Crème à Kigali", "cafe-creme-a-kigali"},
		{"digits", "Annual Report 2026", "annual-report-2026"},
		{"multiple_spaces", "Craft   Exhibition", "craft-exhibition"},
		{"leading_trailing", "  --Hello World--  ", "hello-world"},
		{"already_slug", "kinyarwanda-cooking-class", "kinyarwanda-cooking-class"},
		{"empty", "", ""},
		{"only_symbols", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}
