package scoring

import (
	"fmt"
	"strings"
)

// namedStack is one well-known frontend/backend/database combination.
type namedStack struct {
	name     string
	frontend string
	backend  string
	database string
}

// popularStacks is the ordered table of named stacks. A match requires all
// three substrings to appear in the corresponding inputs simultaneously;
// the first full match wins.
var popularStacks = []namedStack{
	{"MERN", "React", "Node.js", "MongoDB"},
	{"MEAN", "Angular", "Node.js", "MongoDB"},
	{"MEVN", "Vue", "Node.js", "MongoDB"},
	{"Django Stack", "React", "Django", "PostgreSQL"},
	{"Flask Stack", "React", "Flask", "PostgreSQL"},
	{"Ruby Stack", "React", "Ruby on Rails", "PostgreSQL"},
	{"Laravel Stack", "Vue", "Laravel", "MySQL"},
	{"ASP.NET Stack", "React", "ASP.NET Core", "SQL Server"},
}

// Compatibility tiers.
const (
	CompatibilityExcellent = "Excellent"
	CompatibilityGood      = "Good"
	CompatibilityFair      = "Fair"
	CompatibilityPoor      = "Poor"
)

// matchedStackBonus rewards a recognized named stack on top of the pairing
// buckets, so a canonical stack with no extra tools still rates Excellent.
const matchedStackBonus = 20

// suggestedAlternatives is offered when a stack scores below Good.
var suggestedAlternatives = []string{
	"MERN Stack (MongoDB, Express, React, Node.js)",
	"Django + React + PostgreSQL",
	"Vue + Node.js + MongoDB",
}

// StackCompatibility is the assessment of one technology stack.
//
// Score is an additive sum of independent rule buckets and is intentionally
// not normalized to 0-100 — if every bonus applies it exceeds 100. Callers
// comparing it against QualityScore values must account for that.
type StackCompatibility struct {
	Frontend string `json:"frontend"`
	Backend  string `json:"backend"`
	Database string `json:"database"`

	IsCompatible bool   `json:"isCompatible"`
	Level        string `json:"compatibilityLevel"`
	Score        int    `json:"compatibilityScore"`
	MatchedStack string `json:"matchedStack"`

	Issues                []string `json:"issues"`
	Recommendations       []string `json:"recommendations"`
	SuggestedAlternatives []string `json:"suggestedAlternatives,omitempty"`
}

// ValidateStack checks how well a frontend/backend/database combination and
// its extra tooling fit together.
func (s *Scorer) ValidateStack(frontend, backend, database string, extraTools []string) StackCompatibility {
	frontendNorm := strings.ToLower(frontend)
	backendNorm := strings.ToLower(backend)
	databaseNorm := strings.ToLower(database)

	matched := ""
	for _, stack := range popularStacks {
		if strings.Contains(frontendNorm, strings.ToLower(stack.frontend)) &&
			strings.Contains(backendNorm, strings.ToLower(stack.backend)) &&
			strings.Contains(databaseNorm, strings.ToLower(stack.database)) {
			matched = stack.name
			break
		}
	}

	score := 0
	var issues []string

	// Frontend-backend pairing.
	if containsAny(frontendNorm, "react", "vue", "angular") {
		switch {
		case containsAny(backendNorm, "node", "express", "nest"):
			score += 30
		case containsAny(backendNorm, "django", "flask", "fastapi"):
			score += 25
		default:
			score += 15
			issues = append(issues, "Frontend-Backend pairing is unconventional")
		}
	}

	// Backend-database pairing.
	switch {
	case strings.Contains(backendNorm, "node") && strings.Contains(databaseNorm, "mongo"),
		strings.Contains(backendNorm, "django") && strings.Contains(databaseNorm, "postgres"),
		strings.Contains(backendNorm, "flask") && strings.Contains(databaseNorm, "postgres"):
		score += 35
	default:
		score += 20
		issues = append(issues, "Backend-Database pairing may need additional configuration")
	}

	// Extra tools bonus, capped.
	toolsBonus := len(extraTools) * 5
	if toolsBonus > 35 {
		toolsBonus = 35
	}
	score += toolsBonus

	if matched != "" {
		score += matchedStackBonus
	}

	level := classifyCompatibility(score)

	var recommendations []string
	if matched != "" {
		recommendations = append(recommendations, fmt.Sprintf("This is a well-known %q stack - excellent choice!", matched))
	}
	if score < 60 {
		recommendations = append(recommendations, "Consider using a more standard stack combination for easier development")
	}
	if strings.Contains(databaseNorm, "mongo") && strings.Contains(backendNorm, "sql") {
		recommendations = append(recommendations, "Using SQL-focused backend with NoSQL database - ensure proper ODM/ORM setup")
	}

	result := StackCompatibility{
		Frontend:        frontend,
		Backend:         backend,
		Database:        database,
		IsCompatible:    score >= 40,
		Level:           level,
		Score:           score,
		MatchedStack:    matched,
		Issues:          issues,
		Recommendations: recommendations,
	}
	if result.MatchedStack == "" {
		result.MatchedStack = "Custom Stack"
	}
	if len(result.Issues) == 0 {
		result.Issues = []string{"No major issues detected"}
	}
	if len(result.Recommendations) == 0 {
		result.Recommendations = []string{"Stack looks good!"}
	}
	if score < 60 {
		result.SuggestedAlternatives = append([]string(nil), suggestedAlternatives...)
	}
	return result
}

func classifyCompatibility(score int) string {
	switch {
	case score >= 80:
		return CompatibilityExcellent
	case score >= 60:
		return CompatibilityGood
	case score >= 40:
		return CompatibilityFair
	default:
		return CompatibilityPoor
	}
}

func containsAny(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
