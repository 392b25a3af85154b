package intent

// Intent is the closed set of question categories the pipeline understands.
// Classification never produces a value outside this set.
type Intent string

const (
	CareerOverview   Intent = "career_overview"
	EligibilityCheck Intent = "eligibility_check"
	CareerSteps      Intent = "career_steps"
	CareerSkills     Intent = "career_skills"
	FailurePaths     Intent = "failure_paths"
	ExamInfo         Intent = "exam_info"
	Roadmap          Intent = "roadmap"
	StreamGuidance   Intent = "stream_guidance"
	CourseInfo       Intent = "course_info"
	Comparison       Intent = "comparison"
	GeneralGuidance  Intent = "general_guidance"
)

// EntitySet holds at most one resolved identifier per slot. An empty string
// means the slot could not be resolved from the query text.
type EntitySet struct {
	Career     string `json:"career,omitempty"`
	Stream     string `json:"stream,omitempty"`
	ClassLevel string `json:"class_level,omitempty"`
	Exam       string `json:"exam,omitempty"`
	Course     string `json:"course,omitempty"`
}

// Result is the immutable outcome of classifying one query. Confidence is the
// fixed constant of the rule that fired, not a model probability.
type Result struct {
	Intent     Intent    `json:"intent"`
	Entities   EntitySet `json:"entities"`
	Confidence float64   `json:"confidence"`
}
