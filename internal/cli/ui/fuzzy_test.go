package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		s1       string
		s2       string
		expected int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"routes", "route", 1},
		{"serializaton", "serialization", 1},
		{"créate", "create", 1},
	}

	for _, tt := range tests {
		t.Run(tt.s1+"_"+tt.s2, func(t *testing.T) {
			assert.Equal(t, tt.expected, LevenshteinDistance(tt.s1, tt.s2))
		})
	}
}

func TestFindSimilar(t *testing.T) {
	candidates := []string{"create", "update", "serialization", "routes"}

	tests := []struct {
		name     string
		target   string
		opts     *FuzzyMatchOptions
		expected []string
	}{
		{"typo", "serializaton", nil, []string{"serialization"}},
		{"case insensitive", "ROUTE", nil, []string{"routes", "create"}},
		{"case sensitive", "ROUTE", &FuzzyMatchOptions{CaseSensitive: true}, []string{}},
		{"no match", "controller", nil, []string{}},
		{"nearest first, ties in order", "reate", nil, []string{"create", "update", "routes"}},
		{"limited", "reate", &FuzzyMatchOptions{MaxSuggestions: 1}, []string{"create"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FindSimilar(tt.target, candidates, tt.opts))
		})
	}
}
