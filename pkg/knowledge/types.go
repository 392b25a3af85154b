package knowledge

// Kind identifies the record families stored in the knowledge base.
type Kind string

const (
	KindCareer Kind = "career"
	KindStream Kind = "stream"
	KindExam   Kind = "exam"
	KindCourse Kind = "course"
)

// SalaryBand holds the verified salary progression for a career.
// Empty fields mean the data authors did not specify the band.
type SalaryBand struct {
	Entry  string `json:"entry"`
	Mid    string `json:"mid"`
	Senior string `json:"senior"`
}

// Roadmap describes the phased progression toward a career.
type Roadmap struct {
	Entry     string `json:"entry"`
	ShortTerm string `json:"short_term"`
	MidTerm   string `json:"mid_term"`
	LongTerm  string `json:"long_term"`
}

// CareerAttributes are the eligibility-related fields of a career record.
// DegreeRequired is a pointer so "absent" is distinguishable from "false".
type CareerAttributes struct {
	MinimumEducation      string   `json:"minimum_education"`
	MandatorySubjects     []string `json:"mandatory_subjects"`
	DegreeRequired        *bool    `json:"degree_required"`
	EntranceExams         []string `json:"entrance_exams"`
	FoundationAllowedIn12 bool     `json:"foundation_allowed_in_12"`
}

// Career is a verified career record as authored in the JSON data set.
// The chat core only ever reads these fields; it never writes back.
type Career struct {
	ID               string           `json:"id"`
	DisplayName      string           `json:"display_name"`
	Description      string           `json:"description"`
	Stream           string           `json:"stream"`
	Variant          string           `json:"variant"`
	EntryPaths       []string         `json:"entry_paths"`
	ExamsRequired    []string         `json:"exams_required"`
	Skills           []string         `json:"skills"`
	SalaryBand       *SalaryBand      `json:"salary_band"`
	Roadmap          *Roadmap         `json:"roadmap"`
	FailureSafePaths []string         `json:"failure_safe_paths"`
	Attributes       CareerAttributes `json:"attributes"`
}

// Stream is a verified stream record (science, commerce, arts, ...).
type Stream struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"display_name"`
	Description string   `json:"description"`
	Variants    []string `json:"variants"`
}

// Exam is a verified entrance/competitive exam record.
type Exam struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"display_name"`
	Description string   `json:"description"`
	Difficulty  string   `json:"difficulty"`
	Requires    []string `json:"requires"`
	LeadsTo     []string `json:"leads_to"`
}

// Course is a verified course/degree record.
type Course struct {
	ID            string   `json:"id"`
	DisplayName   string   `json:"display_name"`
	Description   string   `json:"description"`
	DurationYears float64  `json:"duration_years"`
	EntryExams    []string `json:"entry_exams"`
}

// Edge is one link in the career graph (education → stream, course → career, ...).
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
	Type string `json:"type"`
}

// ClassLevel lists the streams reachable from a school class level.
type ClassLevel struct {
	ID      string   `json:"id"`
	Streams []string `json:"streams"`
}
