// Package naming converts identifiers between the conventions used by generated
// artifacts: PascalCase entity names, kebab-case URL segments
// and human-readable labels.
package naming

import (
	"strings"
	"unicode"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var rules = inflect.NewDefaultRuleset()

// Words splits an identifier into its words.
// Handles snake_case, kebab-case, camelCase and PascalCase, keeping acronyms
// together (HTTPRequest -> HTTP, Request).
func Words(s string) []string {
	var (
		words []string
		cur   []rune
	)
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || unicode.IsSpace(r):
			flush()
			continue
		case unicode.IsUpper(r) && i > 0:
			prev := runes[i-1]
			// Split before an uppercase letter that follows a lowercase letter or
			// digit, or that starts a new word after an acronym.
			if unicode.IsLower(prev) || unicode.IsDigit(prev) {
				flush()
			} else if unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()
	return words
}

// Pascal converts an identifier to PascalCase.
func Pascal(s string) string {
	words := Words(s)
	for i, w := range words {
		words[i] = capitalize(strings.ToLower(w))
	}
	return strings.Join(words, "")
}

// Kebab converts an identifier to kebab-case.
func Kebab(s string) string {
	return joinLower(Words(s), "-")
}

// Plural returns the plural form of a word. Compound words separated by
// '_' or '-' only have their last word pluralized.
func Plural(s string) string {
	if s == "" {
		return s
	}
	i := strings.LastIndexAny(s, "_-")
	return s[:i+1] + rules.Pluralize(s[i+1:])
}

// Headline converts an identifier into title-cased, space-separated words.
//
//	first_name -> First Name
//	coverImage -> Cover Image
func Headline(s string) string {
	// Casers are stateful; one per call.
	caser := cases.Title(language.English)
	words := Words(s)
	for i, w := range words {
		words[i] = caser.String(w)
	}
	return strings.Join(words, " ")
}

// ResourceSegment returns the URL path segment for an entity:
// ProductCategory -> product-categories.
func ResourceSegment(entity string) string {
	return Plural(Kebab(entity))
}

func joinLower(words []string, sep string) string {
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, sep)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
