package source

import (
	"strings"
	"testing"

	"career-path-be/pkg/knowledge"
)

func testSource() *AnswerSource {
	noDegree := false
	kb := knowledge.NewBase(
		[]*knowledge.Career{
			{
				ID:            "career:chartered_accountant",
				DisplayName:   "Chartered Accountant",
				Stream:        "commerce",
				Variant:       "accountancy",
				EntryPaths:    []string{"course:bcom"},
				ExamsRequired: []string{"ca_foundation"},
				Skills:        []string{"Accounting", "Taxation"},
				SalaryBand:    &knowledge.SalaryBand{Entry: "₹6-9 LPA", Mid: "₹12-20 LPA", Senior: "₹25-50 LPA"},
				Roadmap: &knowledge.Roadmap{
					Entry:     "Class 12 (Commerce preferred)",
					ShortTerm: "Clear CA Foundation",
					MidTerm:   "Clear CA Intermediate and articleship",
					LongTerm:  "Clear CA Final",
				},
				FailureSafePaths: []string{"CMA", "CS"},
				Attributes: knowledge.CareerAttributes{
					MinimumEducation:      "12th pass (Commerce preferred)",
					MandatorySubjects:     []string{"Accountancy"},
					DegreeRequired:        &noDegree,
					EntranceExams:         []string{"ca_foundation"},
					FoundationAllowedIn12: true,
				},
			},
			{
				// Sparse record: no attributes, no roadmap.
				ID:          "career:lawyer",
				DisplayName: "Lawyer",
			},
			{
				// Entry course comes from the graph only.
				ID:          "career:registered_nurse",
				DisplayName: "Registered Nurse",
			},
		},
		[]*knowledge.Stream{
			{ID: "stream:science", DisplayName: "Science", Description: "PCM/PCB subjects"},
			{ID: "stream:commerce", DisplayName: "Commerce"},
		},
		[]*knowledge.Exam{
			{ID: "exam:neet", DisplayName: "NEET", Description: "Medical entrance", Difficulty: "High"},
		},
		[]*knowledge.Course{
			{ID: "course:mbbs", DisplayName: "MBBS", Description: "Medical degree", DurationYears: 5.5, EntryExams: []string{"neet"}},
			{ID: "course:bcom", DisplayName: "B.Com"},
			{ID: "course:bsc_nursing", DisplayName: "BSc Nursing"},
		},
		[]knowledge.Edge{
			{From: "course:bsc_nursing", To: "career:registered_nurse", Type: "course_to_career"},
		},
		[]*knowledge.ClassLevel{
			{ID: "education:class_10", Streams: []string{"stream:science", "stream:commerce"}},
		},
	)
	return New(kb)
}

func TestCareerEligibility(t *testing.T) {
	s := testSource()

	data := s.CareerEligibility("chartered_accountant")
	if !data.Available {
		t.Fatal("expected available eligibility data")
	}
	if data.MinimumEducation != "12th pass (Commerce preferred)" {
		t.Errorf("MinimumEducation = %q", data.MinimumEducation)
	}
	if data.DegreeRequired {
		t.Error("DegreeRequired = true, record says false")
	}
	if !data.FoundationIn12 {
		t.Error("FoundationIn12 = false")
	}

	if data := s.CareerEligibility("astronaut"); data.Available {
		t.Error("unknown career reported available")
	}

	// An absent degree_required field defaults to required.
	if data := s.CareerEligibility("lawyer"); !data.DegreeRequired {
		t.Error("absent degree_required should default to true")
	}
	if data := s.CareerEligibility("lawyer"); data.MinimumEducation != "Not specified" {
		t.Errorf("empty minimum education = %q, want placeholder", data.MinimumEducation)
	}
}

func TestCareerStepPlan(t *testing.T) {
	s := testSource()

	data := s.CareerStepPlan("chartered_accountant")
	if !data.Available {
		t.Fatal("expected available step plan")
	}
	if len(data.Steps) != 3 {
		t.Fatalf("Steps = %v, want 3", data.Steps)
	}
	// Stream choice is prepended, then entry courses, then exams uppercased.
	if !strings.HasPrefix(data.Steps[0], "Choose Commerce stream with ACCOUNTANCY variant") {
		t.Errorf("Steps[0] = %q", data.Steps[0])
	}
	if data.Steps[1] != "Complete B.Com course" {
		t.Errorf("Steps[1] = %q", data.Steps[1])
	}
	if data.Steps[2] != "Clear entrance exams: CA_FOUNDATION" {
		t.Errorf("Steps[2] = %q", data.Steps[2])
	}
	if data.SalaryBand == nil || data.SalaryBand.Entry != "₹6-9 LPA" {
		t.Errorf("SalaryBand = %+v", data.SalaryBand)
	}

	// Sparse record still answers, with an empty step list.
	sparse := s.CareerStepPlan("lawyer")
	if !sparse.Available || len(sparse.Steps) != 0 {
		t.Errorf("sparse plan = %+v", sparse)
	}
}

func TestCareerStepPlanUsesGraphEntryCourses(t *testing.T) {
	s := testSource()

	// registered_nurse carries no entry_paths of its own; the course comes
	// from the course_to_career edge.
	data := s.CareerStepPlan("registered_nurse")
	if !data.Available || len(data.Steps) != 1 {
		t.Fatalf("plan = %+v", data)
	}
	if data.Steps[0] != "Complete BSc Nursing course" {
		t.Errorf("Steps[0] = %q", data.Steps[0])
	}
}

func TestCareerRoadmap(t *testing.T) {
	s := testSource()

	data := s.CareerRoadmap("chartered_accountant")
	if !data.Available || data.ShortTerm != "Clear CA Foundation" {
		t.Errorf("roadmap = %+v", data)
	}
	if data.EntryPoint != "Class 12 (Commerce preferred)" {
		t.Errorf("EntryPoint = %q", data.EntryPoint)
	}

	// A record without a roadmap is unavailable, never padded.
	if data := s.CareerRoadmap("lawyer"); data.Available {
		t.Error("roadmap-less career reported available")
	}
}

func TestStreamsForClass(t *testing.T) {
	s := testSource()

	data := s.StreamsForClass("10")
	if !data.Available || len(data.Streams) != 2 {
		t.Fatalf("guidance = %+v", data)
	}
	if data.Streams[0].Description != "PCM/PCB subjects" {
		t.Errorf("Streams[0].Description = %q", data.Streams[0].Description)
	}
	// Missing description gets the stock line.
	if data.Streams[1].Description != "Explore this stream for various career paths" {
		t.Errorf("Streams[1].Description = %q", data.Streams[1].Description)
	}

	if data := s.StreamsForClass("9"); data.Available {
		t.Error("unknown class level reported available")
	}
}

func TestExamAndCourseInfo(t *testing.T) {
	s := testSource()

	exam := s.ExamInfo("neet")
	if !exam.Available || exam.ExamName != "NEET" || exam.Difficulty != "High" {
		t.Errorf("exam = %+v", exam)
	}
	if exam := s.ExamInfo("gate"); exam.Available {
		t.Error("unknown exam reported available")
	}

	course := s.CourseInfo("mbbs")
	if !course.Available || course.DurationYears != 5.5 {
		t.Errorf("course = %+v", course)
	}
	if course := s.CourseInfo("llb"); course.Available {
		t.Error("unknown course reported available")
	}
}
