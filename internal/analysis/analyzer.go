package analysis

import (
	"context"
	"encoding/json"
	"fmt"
)

// Completer is the single outbound call to the model service. Implemented by
// *gemini.Client.
type Completer interface {
	CompleteJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Analyze runs one analysis round trip: send the prompt with the scoring
// instructions, parse the JSON body, and decode it into a validated Result.
// A Result with CodingRelated == false is not an error here; the caller
// decides how to surface the rejection.
func Analyze(ctx context.Context, client Completer, prompt string) (*Result, error) {
	text, err := client.CompleteJSON(ctx, SystemInstructions, prompt)
	if err != nil {
		return nil, fmt.Errorf("error calling Gemini API: %w", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse model response as JSON: %w", err)
	}

	result, err := Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("received invalid analysis format from Gemini: %w", err)
	}
	return result, nil
}
