package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssessment_BoundaryTable(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{1, "Poor"},
		{2.99, "Poor"},
		{3, "Needs improvement"},
		{4.99, "Needs improvement"},
		{5, "Fair"},
		{6.99, "Fair"},
		{7, "Good"},
		{8.99, "Good"},
		{9, "Excellent"},
		{10, "Excellent"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Assessment(tt.score), "score %v", tt.score)
	}
}

func TestAssessment_OutOfRange(t *testing.T) {
	// The decoder does not clamp scores, so labels must stay total.
	assert.Equal(t, "Poor", Assessment(-3))
	assert.Equal(t, "Poor", Assessment(0))
	assert.Equal(t, "Excellent", Assessment(42))
}

func TestMetrics_FixedOrder(t *testing.T) {
	a := &Analysis{
		Specificity: Metric{Score: 1},
		Clarity:     Metric{Score: 2},
		Context:     Metric{Score: 3},
		Constraints: Metric{Score: 4},
		Brevity:     Metric{Score: 5},
	}

	var names []string
	var scores []float64
	for _, m := range a.Metrics() {
		names = append(names, m.Name)
		scores = append(scores, m.Metric.Score)
	}
	assert.Equal(t, []string{"Specificity", "Clarity", "Context", "Constraints", "Brevity"}, names)
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, scores)
}

func TestRecommendationList(t *testing.T) {
	t.Run("top-level list wins", func(t *testing.T) {
		a := &Analysis{
			Recommendations: []string{"do this"},
			Clarity:         Metric{Suggestions: []string{"ignored"}},
		}
		assert.Equal(t, []string{"do this"}, a.RecommendationList())
	})

	t.Run("falls back to metric suggestions in order", func(t *testing.T) {
		a := &Analysis{
			Specificity: Metric{Suggestions: []string{"s1"}},
			Context:     Metric{Suggestions: []string{"c1", "c2"}},
			Brevity:     Metric{Suggestions: []string{"b1"}},
		}
		assert.Equal(t, []string{"s1", "c1", "c2", "b1"}, a.RecommendationList())
	})

	t.Run("empty when nothing suggested", func(t *testing.T) {
		assert.Empty(t, (&Analysis{}).RecommendationList())
	})
}
