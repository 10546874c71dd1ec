package mcptools

import "github.com/dusk-indust/mentor/internal/scoring"

// --- MCP Tool Input Types ---
// These structs define the JSON schema for each MCP tool's input.
// The MCP Go SDK auto-generates JSON schemas from struct tags.

// AnalyzeCodeComplexityInput is the input for the analyze_code_complexity tool.
type AnalyzeCodeComplexityInput struct {
	Code     string `json:"code" jsonschema:"the source code to analyze"`
	Language string `json:"language" jsonschema:"source language: go, typescript, python, rust"`
}

// AnalyzeCodeComplexityOutput is the result of the analyze_code_complexity tool.
type AnalyzeCodeComplexityOutput struct {
	Report scoring.ComplexityReport `json:"report"`
}

// ScoreResourceQualityInput is the input for the score_resource_quality tool.
type ScoreResourceQualityInput struct {
	URL             string `json:"url" jsonschema:"resource URL to evaluate"`
	ResourceType    string `json:"resourceType" jsonschema:"type of resource: tutorial, documentation, video, course, article, blog"`
	Source          string `json:"source,omitempty" jsonschema:"source platform (e.g. MDN, freeCodeCamp, YouTube)"`
	LastUpdatedYear int    `json:"lastUpdatedYear,omitempty" jsonschema:"year of last update; when set, recency is folded into the score"`
}

// ScoreResourceQualityOutput is the result of the score_resource_quality tool.
type ScoreResourceQualityOutput struct {
	Quality scoring.QualityScore `json:"quality"`
}

// CalculateProjectComplexityInput is the input for the calculate_project_complexity tool.
type CalculateProjectComplexityInput struct {
	Features       []string `json:"features" jsonschema:"list of project features/requirements"`
	TeamSize       int      `json:"teamSize" jsonschema:"number of team members"`
	TimelineMonths int      `json:"timelineMonths" jsonschema:"project timeline in months (must be positive)"`
	TechStackCount int      `json:"techStackCount" jsonschema:"number of technologies in the stack"`
}

// CalculateProjectComplexityOutput is the result of the calculate_project_complexity tool.
type CalculateProjectComplexityOutput struct {
	Analysis scoring.ProjectComplexity `json:"analysis"`
}

// ValidateTechStackInput is the input for the validate_tech_stack tool.
type ValidateTechStackInput struct {
	Frontend        string   `json:"frontend" jsonschema:"frontend framework/library (e.g. React, Vue, Angular)"`
	Backend         string   `json:"backend" jsonschema:"backend framework (e.g. Node.js, Django, Flask)"`
	Database        string   `json:"database" jsonschema:"database system (e.g. MongoDB, PostgreSQL, MySQL)"`
	AdditionalTools []string `json:"additionalTools,omitempty" jsonschema:"additional tools/services"`
}

// ValidateTechStackOutput is the result of the validate_tech_stack tool.
type ValidateTechStackOutput struct {
	Compatibility scoring.StackCompatibility `json:"compatibility"`
}
