package scoring

import "math"

// Difficulty tiers for a project scope.
const (
	DifficultyLow      = "Low"
	DifficultyMedium   = "Medium"
	DifficultyHigh     = "High"
	DifficultyVeryHigh = "Very High"
)

// NoRiskFactors is the sentinel emitted when no individual risk threshold
// triggers, so callers never see an empty list.
const NoRiskFactors = "None identified"

// ProjectComplexity is the additive complexity assessment of a project scope.
type ProjectComplexity struct {
	Score          float64 `json:"complexityScore"`
	Difficulty     string  `json:"difficultyLevel"`
	Recommendation string  `json:"recommendation"`

	FeatureScore     int     `json:"featureComplexity"`
	TimelinePressure float64 `json:"timelinePressure"`
	TeamFactor       int     `json:"teamAdequacy"`
	TechComplexity   int     `json:"technologyComplexity"`

	SuggestedTimelineMonths int      `json:"suggestedTimelineMonths"`
	RiskFactors             []string `json:"riskFactors"`
}

// ScoreProjectComplexity derives a complexity score from a feature list, team
// size, timeline, and technology stack size. Four additive sub-scores feed
// the total: feature count x10, timeline pressure (12/months)x20, a penalty
// of 5 per head the team falls short of five, and stack size x3.
//
// timelineMonths must be positive and teamSize non-negative; violations
// return an *InvalidInputError rather than an uncaught division error.
func (s *Scorer) ScoreProjectComplexity(features []string, teamSize, timelineMonths, techStackCount int) (*ProjectComplexity, error) {
	if timelineMonths <= 0 {
		return nil, &InvalidInputError{Field: "timelineMonths", Value: timelineMonths, Reason: "must be positive"}
	}
	if teamSize < 0 {
		return nil, &InvalidInputError{Field: "teamSize", Value: teamSize, Reason: "must be non-negative"}
	}

	featureScore := len(features) * 10
	timelinePressure := (12.0 / float64(timelineMonths)) * 20
	teamFactor := (5 - teamSize) * 5
	if teamFactor < 0 {
		teamFactor = 0
	}
	techComplexity := techStackCount * 3

	total := float64(featureScore) + timelinePressure + float64(teamFactor) + float64(techComplexity)

	difficulty, recommendation := classifyDifficulty(total)

	suggested := int(float64(len(features))*0.5 + float64(techStackCount)*0.3)
	if suggested < timelineMonths {
		suggested = timelineMonths
	}

	riskFactors := collectRiskFactors(len(features), timelinePressure, teamSize, techStackCount)

	return &ProjectComplexity{
		Score:                   math.Round(total*100) / 100,
		Difficulty:              difficulty,
		Recommendation:          recommendation,
		FeatureScore:            featureScore,
		TimelinePressure:        math.Round(timelinePressure*100) / 100,
		TeamFactor:              teamFactor,
		TechComplexity:          techComplexity,
		SuggestedTimelineMonths: suggested,
		RiskFactors:             riskFactors,
	}, nil
}

func classifyDifficulty(total float64) (difficulty, recommendation string) {
	switch {
	case total > 80:
		return DifficultyVeryHigh, "Consider breaking into smaller phases, expanding team, or extending timeline"
	case total > 60:
		return DifficultyHigh, "Requires experienced team and careful planning"
	case total > 40:
		return DifficultyMedium, "Manageable with proper planning and regular milestones"
	default:
		return DifficultyLow, "Good project scope for the given constraints"
	}
}

// collectRiskFactors evaluates the four independent risk thresholds. Each
// tag is included when its condition holds; none are mutually exclusive.
func collectRiskFactors(featureCount int, timelinePressure float64, teamSize, techStackCount int) []string {
	var risks []string
	if featureCount > 10 {
		risks = append(risks, "High feature count")
	}
	if timelinePressure > 15 {
		risks = append(risks, "Tight timeline")
	}
	if teamSize < 3 {
		risks = append(risks, "Small team")
	}
	if techStackCount > 8 {
		risks = append(risks, "Complex tech stack")
	}
	if len(risks) == 0 {
		return []string{NoRiskFactors}
	}
	return risks
}
