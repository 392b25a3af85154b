package source

import (
	"fmt"
	"strings"

	"career-path-be/pkg/knowledge"
)

// AnswerSource fetches verified records only. It never invents data: any
// miss surfaces as Available=false and absent record fields become explicit
// "Not specified" placeholders, never guesses.
type AnswerSource struct {
	kb *knowledge.Base
}

func New(kb *knowledge.Base) *AnswerSource {
	return &AnswerSource{kb: kb}
}

// Eligibility holds the eligibility-related fields of one career record.
type Eligibility struct {
	Available         bool
	CareerName        string
	MinimumEducation  string
	MandatorySubjects []string
	DegreeRequired    bool
	EntranceExams     []string
	FoundationIn12    bool
}

// CareerSteps is the step-by-step material for a career, assembled only from
// fields present on the record.
type CareerSteps struct {
	Available        bool
	CareerName       string
	Steps            []string
	Skills           []string
	SalaryBand       *knowledge.SalaryBand
	Roadmap          *knowledge.Roadmap
	FailureSafePaths []string
}

// RoadmapInfo carries a career's phased progression.
type RoadmapInfo struct {
	Available  bool
	CareerName string
	ShortTerm  string
	MidTerm    string
	LongTerm   string
	EntryPoint string
}

// StreamOption is one stream offered for a class level.
type StreamOption struct {
	ID          string
	Name        string
	Description string
}

// StreamGuidance lists the streams reachable from a class level.
type StreamGuidance struct {
	Available  bool
	ClassLevel string
	Streams    []StreamOption
}

// ExamDetails is the verified material about one entrance exam.
type ExamDetails struct {
	Available   bool
	ExamName    string
	Description string
	Difficulty  string
	LeadsTo     []string
	Requires    []string
}

// CourseDetails is the verified material about one course.
type CourseDetails struct {
	Available     bool
	CourseName    string
	Description   string
	DurationYears float64
	EntryExams    []string
}

const notSpecified = "Not specified"

func orPlaceholder(s string) string {
	if s == "" {
		return notSpecified
	}
	return s
}

// CareerEligibility returns the eligibility view of a career record.
func (s *AnswerSource) CareerEligibility(careerID string) Eligibility {
	career, ok := s.kb.Career(careerID)
	if !ok {
		return Eligibility{}
	}

	attrs := career.Attributes
	degreeRequired := true
	if attrs.DegreeRequired != nil {
		degreeRequired = *attrs.DegreeRequired
	}

	return Eligibility{
		Available:         true,
		CareerName:        displayName(career),
		MinimumEducation:  orPlaceholder(attrs.MinimumEducation),
		MandatorySubjects: attrs.MandatorySubjects,
		DegreeRequired:    degreeRequired,
		EntranceExams:     attrs.EntranceExams,
		FoundationIn12:    attrs.FoundationAllowedIn12,
	}
}

// CareerStepPlan builds the step list for a career from its entry courses,
// exam requirements and stream placement, in that order of assembly.
func (s *AnswerSource) CareerStepPlan(careerID string) CareerSteps {
	career, ok := s.kb.Career(careerID)
	if !ok {
		return CareerSteps{}
	}

	var steps []string
	if courses := s.entryCourses(career); len(courses) > 0 {
		steps = append(steps, fmt.Sprintf("Complete %s course", strings.Join(courses, ", ")))
	}
	if len(career.ExamsRequired) > 0 {
		steps = append(steps, fmt.Sprintf("Clear entrance exams: %s", strings.ToUpper(strings.Join(career.ExamsRequired, ", "))))
	}
	if career.Stream != "" && career.Variant != "" {
		first := fmt.Sprintf("Choose %s stream with %s variant in Class 12",
			capitalize(career.Stream), strings.ToUpper(career.Variant))
		steps = append([]string{first}, steps...)
	}

	return CareerSteps{
		Available:        true,
		CareerName:       displayName(career),
		Steps:            steps,
		Skills:           career.Skills,
		SalaryBand:       career.SalaryBand,
		Roadmap:          career.Roadmap,
		FailureSafePaths: career.FailureSafePaths,
	}
}

// entryCourses merges the record's own entry paths with the course_to_career
// edges of the career graph, deduplicated in encounter order and resolved to
// course display names where the course record exists.
func (s *AnswerSource) entryCourses(career *knowledge.Career) []string {
	ids := append([]string(nil), career.EntryPaths...)
	for _, edge := range s.kb.EntryPathsFor(career.ID) {
		if edge.Type == "course_to_career" {
			ids = append(ids, edge.From)
		}
	}

	seen := make(map[string]bool)
	var names []string
	for _, id := range ids {
		name := strings.TrimPrefix(id, "course:")
		if course, ok := s.kb.Course(id); ok {
			name = strings.TrimPrefix(course.ID, "course:")
			if course.DisplayName != "" {
				name = course.DisplayName
			}
		}
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

// CareerRoadmap returns the phased roadmap of a career. A record without a
// roadmap is reported unavailable rather than padded.
func (s *AnswerSource) CareerRoadmap(careerID string) RoadmapInfo {
	career, ok := s.kb.Career(careerID)
	if !ok || career.Roadmap == nil {
		return RoadmapInfo{}
	}

	return RoadmapInfo{
		Available:  true,
		CareerName: displayName(career),
		ShortTerm:  orPlaceholder(career.Roadmap.ShortTerm),
		MidTerm:    orPlaceholder(career.Roadmap.MidTerm),
		LongTerm:   orPlaceholder(career.Roadmap.LongTerm),
		EntryPoint: career.Roadmap.Entry,
	}
}

// StreamsForClass lists up to six streams for a class level.
func (s *AnswerSource) StreamsForClass(classLevel string) StreamGuidance {
	streams := s.kb.StreamsForClass(classLevel)
	if len(streams) == 0 {
		return StreamGuidance{}
	}

	if len(streams) > 6 {
		streams = streams[:6]
	}

	options := make([]StreamOption, 0, len(streams))
	for _, st := range streams {
		description := st.Description
		if description == "" {
			description = "Explore this stream for various career paths"
		}
		name := st.DisplayName
		if name == "" {
			name = st.ID
		}
		options = append(options, StreamOption{ID: st.ID, Name: name, Description: description})
	}

	return StreamGuidance{Available: true, ClassLevel: classLevel, Streams: options}
}

// ExamInfo returns verified exam details by id or name.
func (s *AnswerSource) ExamInfo(examID string) ExamDetails {
	exam, ok := s.kb.Exam(examID)
	if !ok {
		return ExamDetails{}
	}

	name := exam.DisplayName
	if name == "" {
		name = strings.ToUpper(exam.ID)
	}

	return ExamDetails{
		Available:   true,
		ExamName:    name,
		Description: orPlaceholder(exam.Description),
		Difficulty:  orPlaceholder(exam.Difficulty),
		LeadsTo:     exam.LeadsTo,
		Requires:    exam.Requires,
	}
}

// CourseInfo returns verified course details.
func (s *AnswerSource) CourseInfo(courseID string) CourseDetails {
	course, ok := s.kb.Course(courseID)
	if !ok {
		return CourseDetails{}
	}

	return CourseDetails{
		Available:     true,
		CourseName:    orPlaceholder(course.DisplayName),
		Description:   orPlaceholder(course.Description),
		DurationYears: course.DurationYears,
		EntryExams:    course.EntryExams,
	}
}

func displayName(c *knowledge.Career) string {
	if c.DisplayName != "" {
		return c.DisplayName
	}
	return c.ID
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
