// Package scoring turns structured descriptions of code samples, learning
// resources, technology stacks, and project scopes into bounded deterministic
// scores. Every operation is pure: identical inputs always produce identical
// outputs, and nothing here touches the network or shared mutable state.
package scoring

import (
	"path/filepath"
	"strings"
	"time"
)

// Language identifies a supported source language.
type Language string

const (
	LangGo         Language = "go"
	LangTypeScript Language = "typescript"
	LangPython     Language = "python"
	LangRust       Language = "rust"
)

// SupportedLanguages lists the languages the complexity analyzer can parse.
var SupportedLanguages = []Language{LangGo, LangTypeScript, LangPython, LangRust}

// extToLanguage maps file extensions to Language.
var extToLanguage = map[string]Language{
	".go":  LangGo,
	".ts":  LangTypeScript,
	".tsx": LangTypeScript,
	".py":  LangPython,
	".rs":  LangRust,
}

// DetectLanguage returns the language for a file path based on its extension.
// The second return value is false when the extension is not recognized.
func DetectLanguage(path string) (Language, bool) {
	lang, ok := extToLanguage[filepath.Ext(path)]
	return lang, ok
}

// ParseLanguage normalizes a user-supplied language name. It accepts the
// canonical names plus a few common aliases ("golang", "ts", "py", "rs").
func ParseLanguage(s string) (Language, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "go", "golang":
		return LangGo, true
	case "typescript", "ts", "tsx":
		return LangTypeScript, true
	case "python", "py":
		return LangPython, true
	case "rust", "rs":
		return LangRust, true
	}
	return "", false
}

// Scorer evaluates resources, project scopes, and technology stacks.
// The zero value is not usable; construct with NewScorer.
//
// currentYear anchors recency scoring. It is a field rather than a call to
// time.Now inside the scoring path so that historical scoring behavior can be
// reproduced exactly and tests can pin a year.
type Scorer struct {
	currentYear int
}

// NewScorer returns a Scorer anchored to the current wall-clock year.
func NewScorer() *Scorer {
	return &Scorer{currentYear: time.Now().UTC().Year()}
}

// NewScorerAt returns a Scorer anchored to the given year.
func NewScorerAt(year int) *Scorer {
	return &Scorer{currentYear: year}
}

// CurrentYear returns the year recency scoring is anchored to.
func (s *Scorer) CurrentYear() int {
	return s.currentYear
}
