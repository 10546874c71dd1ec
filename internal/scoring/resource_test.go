package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreResource_TrustedSource(t *testing.T) {
	s := NewScorer()

	q := s.ScoreResource("https://developer.mozilla.org/en-US/docs/Web/JavaScript", "tutorial", "MDN")

	assert.Equal(t, 95, q.SourceScore)
	assert.Equal(t, 85, q.TypeScore)
	assert.Equal(t, 91, q.Score, "0.6*95 + 0.4*85 truncated")
	assert.Equal(t, "Excellent", q.Rating)
	assert.False(t, q.HasRecency)
	assert.GreaterOrEqual(t, q.Score, 90, "MDN tutorials always rate Excellent")
	assert.Contains(t, q.Insights, "Official/authoritative source")
}

func TestScoreResource_MDNDocumentation(t *testing.T) {
	s := NewScorer()

	q := s.ScoreResource("", "documentation", "developer.mozilla.org")

	assert.Equal(t, 95, q.SourceScore)
	assert.Equal(t, 95, q.TypeScore)
	assert.Equal(t, 95, q.Score)
	assert.Equal(t, "Excellent", q.Rating)
}

func TestScoreResource_UnknownSourceAndType(t *testing.T) {
	s := NewScorer()

	q := s.ScoreResource("https://example.com/post/123", "podcast", "")

	assert.Equal(t, 50, q.SourceScore, "unknown sources fall back to the default")
	assert.Equal(t, 70, q.TypeScore, "unknown types fall back to the default")
	assert.Equal(t, 58, q.Score)
	assert.Equal(t, "Poor", q.Rating)
	assert.Contains(t, q.Insights, "Consider cross-referencing with other sources")
}

func TestScoreResource_SourceLabelMatchesWhenURLDoesNot(t *testing.T) {
	s := NewScorer()

	q := s.ScoreResource("https://learn.example.io/js", "course", "freeCodeCamp")
	assert.Equal(t, 90, q.SourceScore, "source label participates in the lookup")
}

func TestScoreResource_FirstMatchWins(t *testing.T) {
	// "mdn" precedes "medium.com" in the reputation table, so a Medium post
	// mentioning MDN in its slug takes the earlier entry's score.
	got := lookupSourceScore("https://medium.com/@dev/mdn-guide", "")
	assert.Equal(t, 95, got)
}

func TestScoreResourceWithRecency(t *testing.T) {
	s := NewScorerAt(2024)

	t.Run("current year", func(t *testing.T) {
		q := s.ScoreResourceWithRecency("https://docs.python.org/3/tutorial/", "documentation", "Python", 2024)

		assert.True(t, q.HasRecency)
		assert.Equal(t, 95, q.SourceScore)
		assert.Equal(t, 95, q.TypeScore)
		assert.Equal(t, 100, q.RecencyScore)
		assert.Equal(t, 97, q.Score, "round(0.4*95 + 0.3*100 + 0.3*95)")
		assert.Equal(t, "Excellent", q.Rating)
		assert.Equal(t, "Highly recommended", q.Recommendation)
	})

	t.Run("stale resource drags the score down", func(t *testing.T) {
		q := s.ScoreResourceWithRecency("https://docs.python.org/3/tutorial/", "documentation", "Python", 2019)

		assert.Equal(t, 40, q.RecencyScore, "five years old hits the floor step")
		assert.Equal(t, 79, q.Score, "round(0.4*95 + 0.3*40 + 0.3*95)")
		assert.Equal(t, "Good", q.Rating)
	})

	t.Run("future year clamps to full recency", func(t *testing.T) {
		q := s.ScoreResourceWithRecency("https://docs.python.org/3/tutorial/", "documentation", "Python", 2030)
		assert.Equal(t, 100, q.RecencyScore)
	})
}

func TestRecencyScore_Steps(t *testing.T) {
	cases := []struct {
		yearsOld int
		want     int
	}{
		{0, 100},
		{-1, 100},
		{1, 90},
		{2, 75},
		{3, 60},
		{4, 40},
		{10, 40},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, recencyScore(tc.yearsOld), "yearsOld=%d", tc.yearsOld)
	}
}

func TestLookupTypeScore_CaseInsensitive(t *testing.T) {
	assert.Equal(t, 100, lookupTypeScore("Official Documentation"))
	assert.Equal(t, 90, lookupTypeScore("COURSE"))
	assert.Equal(t, 70, lookupTypeScore("newsletter"))
}

func TestScoreResource_BoundedScore(t *testing.T) {
	s := NewScorerAt(2024)
	urls := []string{
		"https://developer.mozilla.org/x",
		"https://example.com/y",
		"https://tutorialspoint.com/z",
	}
	types := []string{"official documentation", "blog", "unknown"}

	for _, u := range urls {
		for _, ty := range types {
			q := s.ScoreResource(u, ty, "")
			assert.GreaterOrEqual(t, q.Score, 0)
			assert.LessOrEqual(t, q.Score, 100)

			qr := s.ScoreResourceWithRecency(u, ty, "", 2015)
			assert.GreaterOrEqual(t, qr.Score, 0)
			assert.LessOrEqual(t, qr.Score, 100)
		}
	}
}
