package intent

import (
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		wantIntent     Intent
		wantCareer     string
		wantConfidence float64
	}{
		{
			name:           "eligibility with abbreviation",
			query:          "Am I eligible for CA?",
			wantIntent:     EligibilityCheck,
			wantCareer:     "chartered_accountant",
			wantConfidence: 1.0,
		},
		{
			name:           "become question",
			query:          "How do I become a CA?",
			wantIntent:     CareerSteps,
			wantCareer:     "chartered_accountant",
			wantConfidence: 1.0,
		},
		{
			name:           "skills question with career",
			query:          "What skills do I need for a doctor?",
			wantIntent:     CareerSkills,
			wantCareer:     "doctor",
			wantConfidence: 0.95,
		},
		{
			name:           "failure paths with career",
			query:          "What if I fail to become a doctor?",
			wantIntent:     FailurePaths,
			wantCareer:     "doctor",
			wantConfidence: 0.95,
		},
		{
			name:           "stream guidance",
			query:          "Which stream should I choose in class 10?",
			wantIntent:     StreamGuidance,
			wantConfidence: 1.0,
		},
		{
			name:           "exam info",
			query:          "Tell me about the NEET exam",
			wantIntent:     ExamInfo,
			wantConfidence: 0.9,
		},
		{
			name:           "course info",
			query:          "What is the MBBS degree?",
			wantIntent:     CourseInfo,
			wantCareer:     "doctor",
			wantConfidence: 0.9,
		},
		{
			name:           "overview phrase",
			query:          "Tell me about doctor",
			wantIntent:     CareerOverview,
			wantCareer:     "doctor",
			wantConfidence: 0.8,
		},
		{
			name:           "bare career mention",
			query:          "chartered accountant",
			wantIntent:     CareerOverview,
			wantCareer:     "chartered_accountant",
			wantConfidence: 0.75,
		},
		{
			name:           "no match falls through",
			query:          "hello there",
			wantIntent:     GeneralGuidance,
			wantConfidence: 0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.query)

			if got.Intent != tt.wantIntent {
				t.Errorf("Intent = %q, want %q", got.Intent, tt.wantIntent)
			}
			if got.Entities.Career != tt.wantCareer {
				t.Errorf("Career = %q, want %q", got.Entities.Career, tt.wantCareer)
			}
			if got.Confidence != tt.wantConfidence {
				t.Errorf("Confidence = %v, want %v", got.Confidence, tt.wantConfidence)
			}
		})
	}
}

func TestClassifyDeterministic(t *testing.T) {
	queries := []string{
		"Am I eligible for CA?",
		"How do I become a doctor?",
		"Which stream after class 10?",
		"random gibberish",
	}

	for _, q := range queries {
		first := Classify(q)
		second := Classify(q)
		if first != second {
			t.Errorf("Classify(%q) not deterministic: %+v vs %+v", q, first, second)
		}
	}
}

func TestClassifySkillsNeedsCareer(t *testing.T) {
	// Skills phrasing without a resolvable career must not claim the
	// career_skills intent.
	got := Classify("what skills are in demand")
	if got.Intent == CareerSkills {
		t.Errorf("Intent = %q, want anything but career_skills", got.Intent)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"What is the best career?", "what best career?"},
		{"Could I become an engineer", "i become engineer"},
		{"CAN I do it", "can i do it"}, // "can" and "i" are kept
		{"  My  Future  ", "future"},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
