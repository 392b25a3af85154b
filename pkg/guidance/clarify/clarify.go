package clarify

import "strings"

// Kind labels why a query was judged ambiguous.
type Kind string

const (
	VagueIntent    Kind = "vague_intent"
	MultipleCareer Kind = "multiple_careers"
	MissingStream  Kind = "missing_stream"
	MissingContext Kind = "missing_context"
)

// Option is one selectable answer to a clarification prompt.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"name"`
}

// Prompt is shown to the user in place of a normal answer. The next turn's
// raw text is interpreted against Options before normal classification.
type Prompt struct {
	Kind          Kind     `json:"type"`
	Message       string   `json:"message"`
	Options       []Option `json:"options"`
	NeedsResponse bool     `json:"needs_response"`
}

// Queries that are inherently vague without session context.
var vaguePatterns = []string{
	"what exams",
	"what are exams",
	"how to prepare",
	"how do i prepare",
	"is it good",
	"is it worth it",
	"what next",
	"what should i do",
	"how do i start",
	"what do i need",
	"what's required",
	"can i do it",
	"is it hard",
	"how difficult",
	"what skills",
	"how long",
}

// Context-dependent phrasings grouped by the kind of context they need.
// Only exam_prep and career_steps actually gate on a session field.
var contextDependentPatterns = []struct {
	category string
	patterns []string
}{
	{"eligibility", []string{"eligible", "qualify", "requirement", "can i"}},
	{"exam_prep", []string{"prepare for", "study for", "pass", "clear"}},
	{"career_steps", []string{"start", "begin", "become", "way to"}},
	{"salary", []string{"earn", "salary", "pay", "income", "money"}},
}

// Detect decides whether a query needs clarification before answering.
// currentCareer and currentStream come from session memory; remembered
// context makes an otherwise vague query answerable.
func Detect(query, currentCareer, currentStream string) (bool, Kind) {
	normalized := strings.ToLower(strings.TrimSpace(query))

	for _, pattern := range vaguePatterns {
		if strings.Contains(normalized, pattern) {
			if currentCareer == "" && currentStream == "" {
				return true, VagueIntent
			}
		}
	}

	for _, group := range contextDependentPatterns {
		for _, pattern := range group.patterns {
			if !strings.Contains(normalized, pattern) {
				continue
			}
			if group.category == "exam_prep" && currentCareer == "" {
				return true, MissingContext
			}
			if group.category == "career_steps" && currentStream == "" {
				return true, MissingStream
			}
		}
	}

	return false, ""
}

// ForVagueIntent builds the prompt asking which topic the user means.
func ForVagueIntent() *Prompt {
	return &Prompt{
		Kind:    VagueIntent,
		Message: "Are you asking about:",
		Options: []Option{
			{ID: "eligibility", Label: "📋 Eligibility requirements"},
			{ID: "exam_preparation", Label: "📚 Exam preparation tips"},
			{ID: "career_roadmap", Label: "🗺️ Career roadmap & steps"},
			{ID: "salary", Label: "💰 Salary & growth"},
		},
		NeedsResponse: true,
	}
}

// ForMissingStream asks which stream the user is in.
func ForMissingStream() *Prompt {
	return &Prompt{
		Kind:    MissingStream,
		Message: "Which stream are you in or interested in?",
		Options: []Option{
			{ID: "science", Label: "🔬 Science (PCM/PCB)"},
			{ID: "commerce", Label: "💼 Commerce"},
			{ID: "arts", Label: "📖 Arts"},
		},
		NeedsResponse: true,
	}
}

// ForMissingCareer asks which career the user is interested in.
func ForMissingCareer() *Prompt {
	return &Prompt{
		Kind:    MissingContext,
		Message: "Which career are you interested in?",
		Options: []Option{
			{ID: "chartered_accountant", Label: "📊 Chartered Accountant (CA)"},
			{ID: "software_engineer", Label: "💻 Software Engineer"},
			{ID: "doctor", Label: "🏥 Doctor (MBBS)"},
			{ID: "civil_services", Label: "🏛️ Civil Services (IAS/IPS)"},
			{ID: "registered_nurse", Label: "🏥 Registered Nurse"},
		},
		NeedsResponse: true,
	}
}

// ForMultipleCareers asks which of several matched careers the user means.
func ForMultipleCareers(careers []string) *Prompt {
	options := make([]Option, len(careers))
	for i, career := range careers {
		options[i] = Option{ID: career, Label: strings.ReplaceAll(career, "_", " ")}
	}
	return &Prompt{
		Kind:          MultipleCareer,
		Message:       "I found multiple matches. Are you asking about:",
		Options:       options,
		NeedsResponse: true,
	}
}

// ForKind builds the prompt matching a detected ambiguity kind.
func ForKind(kind Kind) *Prompt {
	switch kind {
	case MissingStream:
		return ForMissingStream()
	case MissingContext:
		return ForMissingCareer()
	default:
		return ForVagueIntent()
	}
}
