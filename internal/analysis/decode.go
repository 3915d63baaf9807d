package analysis

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// fallbackReason is used when the model rejects a prompt without saying why.
const fallbackReason = "Not a coding prompt"

// DecodeError reports a malformed analysis payload. Field is the dotted path
// of the offending key, e.g. "metrics.clarity.score".
type DecodeError struct {
	Field string
	Msg   string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid analysis data: %s: %s", e.Field, e.Msg)
}

func decodeErrf(field, format string, args ...interface{}) *DecodeError {
	return &DecodeError{Field: field, Msg: fmt.Sprintf(format, args...)}
}

// Decode validates the raw response mapping and builds a Result. This is the
// single validation boundary: everything downstream may assume a fully
// populated result. On any missing key, wrong-shaped value, or failed
// coercion it returns a *DecodeError and no partial result.
func Decode(raw map[string]interface{}) (*Result, error) {
	// An absent discriminant is treated as coding-related; the model is
	// expected to always set it, but absence must not fail the decode.
	related := true
	if v, ok := raw["is_coding_related"]; ok {
		b, ok := v.(bool)
		if !ok {
			return nil, decodeErrf("is_coding_related", "expected bool, got %T", v)
		}
		related = b
	}

	if !related {
		reason := fallbackReason
		if v, ok := raw["reason"]; ok {
			if s, ok := v.(string); ok && s != "" {
				reason = s
			}
		}
		return &Result{CodingRelated: false, Reason: reason}, nil
	}

	metricsRaw, ok := raw["metrics"]
	if !ok {
		return nil, decodeErrf("metrics", "missing required field")
	}
	metricsMap, ok := metricsRaw.(map[string]interface{})
	if !ok {
		return nil, decodeErrf("metrics", "expected object, got %T", metricsRaw)
	}

	metrics := make(map[string]Metric, len(MetricNames))
	for _, name := range MetricNames {
		m, err := decodeMetric(metricsMap, name)
		if err != nil {
			return nil, err
		}
		metrics[name] = m
	}

	overallScore, err := toNumber(raw, "overall_score", "overall_score")
	if err != nil {
		return nil, err
	}
	overallAssessment, err := toText(raw, "overall_assessment", "overall_assessment")
	if err != nil {
		return nil, err
	}

	a := &Analysis{
		OverallScore:      overallScore,
		OverallAssessment: overallAssessment,
		Specificity:       metrics["specificity"],
		Clarity:           metrics["clarity"],
		Context:           metrics["context"],
		Constraints:       metrics["constraints"],
		Brevity:           metrics["brevity"],
	}

	if v, ok := raw["improved_prompt"]; ok && v != nil {
		s, ok := v.(string)
		if !ok {
			return nil, decodeErrf("improved_prompt", "expected string, got %T", v)
		}
		a.ImprovedPrompt = s
	}

	recs, err := toTextList(raw, "recommendations", "recommendations")
	if err != nil {
		return nil, err
	}
	a.Recommendations = recs

	return &Result{CodingRelated: true, Analysis: a}, nil
}

func decodeMetric(metrics map[string]interface{}, name string) (Metric, error) {
	path := "metrics." + name

	v, ok := metrics[name]
	if !ok {
		return Metric{}, decodeErrf(path, "missing required field")
	}
	obj, ok := v.(map[string]interface{})
	if !ok {
		return Metric{}, decodeErrf(path, "expected object, got %T", v)
	}

	score, err := toNumber(obj, "score", path+".score")
	if err != nil {
		return Metric{}, err
	}
	explanation, err := toText(obj, "explanation", path+".explanation")
	if err != nil {
		return Metric{}, err
	}
	suggestions, err := toTextList(obj, "suggestions", path+".suggestions")
	if err != nil {
		return Metric{}, err
	}

	return Metric{Score: score, Explanation: explanation, Suggestions: suggestions}, nil
}

// toNumber coerces a required numeric field. JSON decoding yields float64,
// but json.Number and numeric strings are accepted too, matching the loose
// shapes the model has been seen to emit.
func toNumber(obj map[string]interface{}, key, path string) (float64, error) {
	v, ok := obj[key]
	if !ok {
		return 0, decodeErrf(path, "missing required field")
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, decodeErrf(path, "cannot parse %q as number", n.String())
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, decodeErrf(path, "cannot parse %q as number", n)
		}
		return f, nil
	default:
		return 0, decodeErrf(path, "expected number, got %T", v)
	}
}

func toText(obj map[string]interface{}, key, path string) (string, error) {
	v, ok := obj[key]
	if !ok {
		return "", decodeErrf(path, "missing required field")
	}
	s, ok := v.(string)
	if !ok {
		return "", decodeErrf(path, "expected string, got %T", v)
	}
	return s, nil
}

// toTextList coerces an optional string list. Absence or null yields nil.
func toTextList(obj map[string]interface{}, key, path string) ([]string, error) {
	v, ok := obj[key]
	if !ok || v == nil {
		return nil, nil
	}
	items, ok := v.([]interface{})
	if !ok {
		return nil, decodeErrf(path, "expected list, got %T", v)
	}
	out := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, decodeErrf(fmt.Sprintf("%s[%d]", path, i), "expected string, got %T", item)
		}
		out = append(out, s)
	}
	return out, nil
}
