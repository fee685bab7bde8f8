// Package words provides the category vocabularies the quiz checks answers
// against. Vocabularies come from an embedded default pack, plain text files,
// YAML packs, or the SQLite word bank in internal/storage; all of them are
// exposed through the Provider interface.
package words

import (
	"errors"
	"sort"
	"strings"
	"unicode"
)

// ErrUnknownCategory is returned when a category key is not known to a provider.
var ErrUnknownCategory = errors.New("words: unknown category")

// Category describes one quiz question.
type Category struct {
	Key    string // Stable identifier, e.g. "fruits"
	Prompt string // Question shown to the player, e.g. "Name a fruit"
}

// Set is a set of normalized words.
type Set map[string]struct{}

// NewSet builds a set from the given words, normalizing each and dropping
// empty entries.
func NewSet(list ...string) Set {
	s := make(Set, len(list))
	for _, w := range list {
		s.Add(w)
	}
	return s
}

// Add normalizes w and inserts it. Empty words are ignored.
func (s Set) Add(w string) {
	if n := Normalize(w); n != "" {
		s[n] = struct{}{}
	}
}

// Has reports whether the normalized word is in the set.
func (s Set) Has(w string) bool {
	_, ok := s[w]
	return ok
}

// Len returns the number of words.
func (s Set) Len() int {
	return len(s)
}

// Sorted returns the words in lexical order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for w := range s {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Provider supplies categories and their accepted answers.
//
// Words must never fail: an unknown category or an unavailable backing
// resource yields an empty set, and the game then treats every answer as wrong.
type Provider interface {
	Categories() []Category
	Words(key string) Set
}

// Normalize trims surrounding whitespace and lowercases s.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// DefaultPrompt derives a readable prompt from a category key,
// e.g. "car_brands" becomes "Car brands".
func DefaultPrompt(key string) string {
	k := strings.TrimSpace(strings.NewReplacer("_", " ", "-", " ").Replace(key))
	if k == "" {
		return ""
	}
	r := []rune(k)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
