// Copyright (c) 2026 VideoVenta. All rights reserved.
// Author: studio@videoventa.mx

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/videoventa-mx/videoventa/pkg/slug"
)

/*
TestFrom covers the username derivation rules for client portal slugs.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple_company", "ABC Corporation", "abc-corporation"},
		{"accents_stripped", "Producción Ángel", "produccion-angel"},
		{"punctuation_collapsed", "Juan & Sons, S.A. de C.V.", "juan-sons-s-a-de-c-v"},
		{"multiple_spaces", "Casa   Blanca", "casa-blanca"},
		{"leading_trailing_junk", "  --Estudio 9--  ", "estudio-9"},
		{"digits_preserved", "Video 2026", "video-2026"},
		{"empty", "", ""},
		{"only_symbols", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, slug.From(tt.input))
		})
	}
}

/*
TestFrom_Deterministic confirms the same name always yields the same slug.
*/
func TestFrom_Deterministic(t *testing.T) {
	first := slug.From("María José Films")
	second := slug.From("María José Films")
	assert.Equal(t, first, second)
	assert.Equal(t, "maria-jose-films", first)
}
