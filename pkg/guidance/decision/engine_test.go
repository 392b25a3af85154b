package decision

import (
	"testing"

	"career-path-be/pkg/guidance/intent"
	"career-path-be/pkg/knowledge"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name         string
		result       intent.Result
		wantSource   Source
		wantAllowGPT bool
	}{
		{
			name:       "eligibility stays app data only",
			result:     intent.Result{Intent: intent.EligibilityCheck, Confidence: 1.0},
			wantSource: AppDataOnly,
		},
		{
			name:         "roadmap permits cosmetic rewrite",
			result:       intent.Result{Intent: intent.Roadmap, Confidence: 0.9},
			wantSource:   AppDataGPTExplain,
			wantAllowGPT: true,
		},
		{
			name:         "overview permits cosmetic rewrite",
			result:       intent.Result{Intent: intent.CareerOverview, Confidence: 0.8},
			wantSource:   AppDataGPTExplain,
			wantAllowGPT: true,
		},
		{
			name:       "general guidance falls back",
			result:     intent.Result{Intent: intent.GeneralGuidance, Confidence: 0.5},
			wantSource: FallbackGeneric,
		},
		{
			name:       "low confidence overrides intent",
			result:     intent.Result{Intent: intent.EligibilityCheck, Confidence: 0.4},
			wantSource: FallbackGeneric,
		},
		{
			name:       "unknown intent falls back",
			result:     intent.Result{Intent: intent.Intent("mystery"), Confidence: 0.9},
			wantSource: FallbackGeneric,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decide(tt.result)

			if got.Source != tt.wantSource {
				t.Errorf("Source = %q, want %q", got.Source, tt.wantSource)
			}
			if got.AllowGPTExplain != tt.wantAllowGPT {
				t.Errorf("AllowGPTExplain = %v, want %v", got.AllowGPTExplain, tt.wantAllowGPT)
			}
		})
	}
}

func TestDecideDataRequired(t *testing.T) {
	res := intent.Result{
		Intent:     intent.EligibilityCheck,
		Entities:   intent.EntitySet{Career: "doctor"},
		Confidence: 1.0,
	}

	dec := Decide(res)
	if len(dec.DataRequired) != 1 {
		t.Fatalf("DataRequired = %v, want one key", dec.DataRequired)
	}
	if dec.DataRequired[0] != (DataKey{Kind: knowledge.KindCareer, ID: "doctor"}) {
		t.Errorf("DataRequired[0] = %+v", dec.DataRequired[0])
	}

	// Missing entity slot yields an empty requirement list, not a guess.
	res.Entities.Career = ""
	if dec := Decide(res); len(dec.DataRequired) != 0 {
		t.Errorf("DataRequired = %v, want empty", dec.DataRequired)
	}
}
