package scoring

import (
	"math"
	"strings"
)

// sourceScore pairs a trusted-source substring with its reputation score.
type sourceScore struct {
	substr string
	score  int
}

// trustedSources is the priority-ordered reputation table. Lookup is a
// case-insensitive substring match against both the URL and the source label;
// the first match wins, so the order here must not change.
var trustedSources = []sourceScore{
	{"developer.mozilla.org", 95},
	{"mdn", 95},
	{"mozilla", 95},
	{"docs.python.org", 95},
	{"python.org", 95},
	{"reactjs.org", 95},
	{"react.dev", 95},
	{"nodejs.org", 95},
	{"github.com", 85},
	{"stackoverflow.com", 80},
	{"freecodecamp", 90},
	{"codecademy", 85},
	{"udemy", 80},
	{"coursera", 90},
	{"edx", 90},
	{"youtube.com", 70},
	{"medium.com", 65},
	{"dev.to", 70},
	{"geeksforgeeks", 70},
	{"w3schools", 65},
	{"tutorialspoint", 60},
}

const defaultSourceScore = 50

// typeScores maps resource categories to quality sub-scores. Lookup is a
// case-insensitive exact match; unknown types score 70.
var typeScores = map[string]int{
	"documentation":          95,
	"official documentation": 100,
	"course":                 90,
	"tutorial":               85,
	"video":                  80,
	"article":                75,
	"blog":                   65,
}

const defaultTypeScore = 70

// QualityScore is the bounded quality assessment of one learning resource.
// Score is always an integer in [0, 100].
type QualityScore struct {
	URL          string `json:"url"`
	ResourceType string `json:"resourceType"`
	Source       string `json:"source"`

	SourceScore  int  `json:"sourceScore"`
	TypeScore    int  `json:"typeScore"`
	RecencyScore int  `json:"recencyScore,omitempty"`
	HasRecency   bool `json:"hasRecency"`

	Score          int      `json:"score"`
	Rating         string   `json:"rating"`
	Recommendation string   `json:"recommendation"`
	Insights       []string `json:"insights,omitempty"`
}

// ScoreResource scores a learning resource from its URL, category, and source
// label. The combined score weights source reputation 0.6 and resource type
// 0.4.
func (s *Scorer) ScoreResource(url, resourceType, source string) QualityScore {
	srcScore := lookupSourceScore(url, source)
	typScore := lookupTypeScore(resourceType)

	score := int(float64(srcScore)*0.6 + float64(typScore)*0.4)
	rating, recommendation := rateTwoFactor(score)

	q := QualityScore{
		URL:            url,
		ResourceType:   resourceType,
		Source:         source,
		SourceScore:    srcScore,
		TypeScore:      typScore,
		Score:          score,
		Rating:         rating,
		Recommendation: recommendation,
	}
	q.Insights = buildInsights(url, srcScore, typScore, score)
	return q
}

// ScoreResourceWithRecency folds a last-updated year into the score. The
// weights shift to 0.4 source, 0.3 recency, 0.3 type — a deliberate,
// explicit variant rather than an inferred one.
func (s *Scorer) ScoreResourceWithRecency(url, resourceType, source string, lastUpdatedYear int) QualityScore {
	srcScore := lookupSourceScore(url, source)
	typScore := lookupTypeScore(resourceType)
	recScore := recencyScore(s.currentYear - lastUpdatedYear)

	score := int(math.Round(float64(srcScore)*0.4 + float64(recScore)*0.3 + float64(typScore)*0.3))
	rating, recommendation := rateWithRecency(score)

	q := QualityScore{
		URL:            url,
		ResourceType:   resourceType,
		Source:         source,
		SourceScore:    srcScore,
		TypeScore:      typScore,
		RecencyScore:   recScore,
		HasRecency:     true,
		Score:          score,
		Rating:         rating,
		Recommendation: recommendation,
	}
	q.Insights = buildInsights(url, srcScore, typScore, score)
	return q
}

func lookupSourceScore(url, source string) int {
	urlLower := strings.ToLower(url)
	sourceLower := strings.ToLower(source)
	for _, ts := range trustedSources {
		if strings.Contains(urlLower, ts.substr) || strings.Contains(sourceLower, ts.substr) {
			return ts.score
		}
	}
	return defaultSourceScore
}

func lookupTypeScore(resourceType string) int {
	if score, ok := typeScores[strings.ToLower(resourceType)]; ok {
		return score
	}
	return defaultTypeScore
}

// recencyScore maps resource age in years to a stepped sub-score. Ages at or
// below zero (updated this year, or a future-dated entry) score 100.
func recencyScore(yearsOld int) int {
	switch {
	case yearsOld <= 0:
		return 100
	case yearsOld == 1:
		return 90
	case yearsOld == 2:
		return 75
	case yearsOld <= 3:
		return 60
	default:
		return 40
	}
}

func rateTwoFactor(score int) (rating, recommendation string) {
	switch {
	case score >= 90:
		return "Excellent", "Highly recommended - Top quality resource"
	case score >= 80:
		return "Very Good", "Recommended - High quality resource"
	case score >= 70:
		return "Good", "Recommended - Solid resource"
	case score >= 60:
		return "Fair", "Acceptable - Verify with other sources"
	default:
		return "Poor", "Use with caution - Seek better alternatives"
	}
}

func rateWithRecency(score int) (rating, recommendation string) {
	switch {
	case score >= 85:
		rating = "Excellent"
	case score >= 70:
		rating = "Good"
	case score >= 55:
		rating = "Fair"
	default:
		rating = "Poor"
	}

	switch {
	case score >= 80:
		recommendation = "Highly recommended"
	case score >= 65:
		recommendation = "Recommended"
	default:
		recommendation = "Use with caution"
	}
	return rating, recommendation
}

// buildInsights assembles the qualitative notes shown alongside a score.
func buildInsights(url string, srcScore, typScore, score int) []string {
	urlLower := strings.ToLower(url)

	var insights []string
	for _, marker := range []string{"docs.", "official", ".org", "developer."} {
		if strings.Contains(urlLower, marker) {
			insights = append(insights, "Official/authoritative source")
			break
		}
	}
	if srcScore >= 90 {
		insights = append(insights, "Highly trusted platform")
	}
	if typScore >= 85 {
		insights = append(insights, "Comprehensive format")
	}
	if score < 70 {
		insights = append(insights, "Consider cross-referencing with other sources")
	}
	return insights
}
