// Package analysis turns the raw Gemini evaluation payload into a validated
// result and decides what a numeric score means in human terms.
package analysis

// MetricNames lists the five quality dimensions in display order.
var MetricNames = []string{"specificity", "clarity", "context", "constraints", "brevity"}

// Metric is one scored quality dimension of a prompt.
// Explanation and Suggestions may contain inline display markup.
type Metric struct {
	Score       float64
	Explanation string
	Suggestions []string
}

// Analysis is the full-evaluation payload of a Result. It only exists for
// prompts the model accepted as coding-related.
type Analysis struct {
	OverallScore      float64
	OverallAssessment string
	Specificity       Metric
	Clarity           Metric
	Context           Metric
	Constraints       Metric
	Brevity           Metric
	Recommendations   []string
	ImprovedPrompt    string
}

// Result is the validated outcome of one analysis request. It is a tagged
// union over CodingRelated:
//   - CodingRelated == false: only Reason is populated, Analysis is nil.
//   - CodingRelated == true: Analysis is non-nil, Reason is empty.
type Result struct {
	CodingRelated bool
	Reason        string
	Analysis      *Analysis
}

// Metrics returns the five metrics in display order, paired with their
// display names.
func (a *Analysis) Metrics() []struct {
	Name   string
	Metric Metric
} {
	return []struct {
		Name   string
		Metric Metric
	}{
		{"Specificity", a.Specificity},
		{"Clarity", a.Clarity},
		{"Context", a.Context},
		{"Constraints", a.Constraints},
		{"Brevity", a.Brevity},
	}
}

// RecommendationList returns the actionable improvements for the prompt.
// The model normally returns a top-level recommendations list; older
// response shapes only carried per-metric suggestions, so those are the
// fallback, concatenated in metric order.
func (a *Analysis) RecommendationList() []string {
	if len(a.Recommendations) > 0 {
		return a.Recommendations
	}
	var out []string
	for _, m := range a.Metrics() {
		out = append(out, m.Metric.Suggestions...)
	}
	return out
}

// Assessment maps a numeric score to its qualitative label. Thresholds are
// inclusive; any finite float gets a label, even outside 1-10.
func Assessment(score float64) string {
	switch {
	case score >= 9:
		return "Excellent"
	case score >= 7:
		return "Good"
	case score >= 5:
		return "Fair"
	case score >= 3:
		return "Needs improvement"
	default:
		return "Poor"
	}
}
