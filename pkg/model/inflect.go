package model

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var splitWordsPattern = regexp.MustCompile(`[_\-\s.]+`)

// Humanize converts an identifier ("BlogPost", "created_at") into
// human-readable words ("Blog Post", "Created At").
func Humanize(identifier string) string {
	words := Words(identifier)
	if len(words) == 0 {
		return ""
	}
	caser := cases.Title(language.Und)
	for idx, word := range words {
		words[idx] = caser.String(word)
	}
	return strings.Join(words, " ")
}

// Underscore converts an identifier into lower_snake_case.
func Underscore(identifier string) string {
	return strings.Join(Words(identifier), "_")
}

// Camelize converts an identifier into UpperCamelCase ("created_at" becomes
// "CreatedAt"). Used for DOM ids.
func Camelize(identifier string) string {
	words := Words(identifier)
	caser := cases.Title(language.Und)
	for idx, word := range words {
		words[idx] = caser.String(word)
	}
	return strings.Join(words, "")
}

// Words splits an identifier on separators and camelCase boundaries and
// lowercases every word. Runs of capitals stay together ("HTMLBody" yields
// "html" and "body").
func Words(identifier string) []string {
	var out []string
	for _, chunk := range splitWordsPattern.Split(identifier, -1) {
		if chunk == "" {
			continue
		}
		for _, word := range strings.Fields(splitCamel(chunk)) {
			out = append(out, strings.ToLower(word))
		}
	}
	return out
}

func splitCamel(input string) string {
	runes := []rune(input)
	var out strings.Builder
	for i, r := range runes {
		if i > 0 && isBoundary(runes, i) {
			out.WriteRune(' ')
		}
		out.WriteRune(r)
	}
	return out.String()
}

func isBoundary(runes []rune, index int) bool {
	prev, r := runes[index-1], runes[index]
	if isLower(prev) && isUpper(r) {
		return true
	}
	if (isLetter(prev) && isDigit(r)) || (isDigit(prev) && isLetter(r)) {
		return true
	}
	// "HTMLBody": split before the last capital of a run followed by lowercase.
	if isUpper(prev) && isUpper(r) && index+1 < len(runes) && isLower(runes[index+1]) {
		return true
	}
	return false
}

func isUpper(r rune) bool  { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool  { return r >= 'a' && r <= 'z' }
func isDigit(r rune) bool  { return r >= '0' && r <= '9' }
func isLetter(r rune) bool { return isUpper(r) || isLower(r) }
