package format

import (
	"fmt"
	"strings"

	"career-path-be/pkg/guidance/source"
)

// Response type discriminants. The rewrite step may only touch Answer on
// career_card responses, every other field is structural.
const (
	TypeCareerCard    = "career_card"
	TypeStreamInfo    = "stream_info"
	TypeExamInfo      = "exam_info"
	TypeCourseInfo    = "course_info"
	TypeError         = "error"
	TypeGeneric       = "generic"
	TypeSearchResults = "search_results"
	TypeClarification = "clarification"
)

// Fixed user-facing sentences for data misses. These are the only strings an
// error-typed response may carry.
const (
	msgNoCareerData        = "I don't have verified data for this career yet. Please try our onboarding tool for personalized recommendations!"
	msgNoCareerStepsData   = "I don't have verified data for this career yet."
	msgNoRoadmapData       = "I don't have roadmap data for this career yet."
	msgNoStreamData        = "Stream data not available."
	msgNoExamData          = "Exam details unavailable. Please contact support or try another exam."
	msgNoCourseData        = "I don't have verified data for this course yet."
	fallbackCareerResponse = "I couldn't find detailed information for that career. Would you like to explore alternative paths?"
	fallbackExamResponse   = "Exam details unavailable. Please contact support or try another exam."
	fallbackStreamResponse = "That stream isn't available in your region. Let's explore alternatives."
	fallbackGenericShort   = "Information unavailable. Please try again later."
)

// Response is the stable answer shape handed to the HTTP layer. Answer is
// the only field the end user reads.
type Response struct {
	Type            string `json:"type"`
	Answer          string `json:"answer"`
	CareerName      string `json:"career_name,omitempty"`
	Why             string `json:"why,omitempty"`
	WhatToStudy     string `json:"what_to_study,omitempty"`
	Skills          string `json:"skills,omitempty"`
	Roadmap         string `json:"roadmap,omitempty"`
	AllowGPTExplain bool   `json:"allow_gpt_explain,omitempty"`
	GPTEnhanced     bool   `json:"gpt_enhanced,omitempty"`
}

// Eligibility renders an eligibility check. Section order is fixed:
// education, subjects, exams, degree-required, foundation-allowed.
func Eligibility(data source.Eligibility) Response {
	if !data.Available {
		return Response{Type: TypeError, Answer: msgNoCareerData}
	}

	why := fmt.Sprintf("📋 **Eligibility for %s**", data.CareerName)

	var requirements []string
	if data.MinimumEducation != "" {
		requirements = append(requirements, fmt.Sprintf("• Minimum Education: %s", data.MinimumEducation))
	}
	if len(data.MandatorySubjects) > 0 {
		requirements = append(requirements, fmt.Sprintf("• Required Subjects: %s", strings.Join(data.MandatorySubjects, ", ")))
	}
	if len(data.EntranceExams) > 0 {
		requirements = append(requirements, fmt.Sprintf("• Entrance Exams: %s", strings.Join(data.EntranceExams, ", ")))
	}
	degreeStatus := "No"
	if data.DegreeRequired {
		degreeStatus = "Yes"
	}
	requirements = append(requirements, fmt.Sprintf("• Degree Required: %s", degreeStatus))
	if data.FoundationIn12 {
		requirements = append(requirements, "• Can start foundation in Class 12: Yes")
	}

	whatToStudy := strings.Join(requirements, "\n")

	return Response{
		Type:        TypeCareerCard,
		CareerName:  data.CareerName,
		Why:         why,
		WhatToStudy: whatToStudy,
		Answer:      why + "\n\n" + whatToStudy,
	}
}

// CareerSteps renders the step-by-step path. Salary and failure-safe
// sections appear only when the record carries them.
func CareerSteps(data source.CareerSteps) Response {
	if !data.Available {
		return Response{Type: TypeError, Answer: msgNoCareerStepsData}
	}

	why := fmt.Sprintf("🎯 **How to become a %s**", data.CareerName)

	var stepsText string
	if len(data.Steps) > 0 {
		lines := make([]string, len(data.Steps))
		for i, step := range data.Steps {
			lines[i] = fmt.Sprintf("%d. %s", i+1, step)
		}
		stepsText = strings.Join(lines, "\n")
	} else {
		// No authored steps, fall back to the roadmap phases.
		shortTerm, midTerm, longTerm := "Choose the right stream", "Complete required education", "Gain experience and specialize"
		if data.Roadmap != nil {
			if data.Roadmap.ShortTerm != "" {
				shortTerm = data.Roadmap.ShortTerm
			}
			if data.Roadmap.MidTerm != "" {
				midTerm = data.Roadmap.MidTerm
			}
			if data.Roadmap.LongTerm != "" {
				longTerm = data.Roadmap.LongTerm
			}
		}
		stepsText = fmt.Sprintf("• Short-term: %s\n• Mid-term: %s\n• Long-term: %s", shortTerm, midTerm, longTerm)
	}

	skillsText := "Build relevant skills for this field"
	if len(data.Skills) > 0 {
		skillsText = "• " + strings.Join(data.Skills, "\n• ")
	}

	answerParts := []string{
		why,
		fmt.Sprintf("📚 **Steps:**\n%s", stepsText),
		fmt.Sprintf("💡 **Skills:**\n%s", skillsText),
	}

	if len(data.FailureSafePaths) > 0 {
		failureText := "• " + strings.Join(data.FailureSafePaths, "\n• ")
		answerParts = append(answerParts, fmt.Sprintf("🔄 **Alternatives if things don't work out:**\n%s", failureText))
	}

	if data.SalaryBand != nil {
		salaryText := fmt.Sprintf("Entry: %s → Mid: %s → Senior: %s",
			orNA(data.SalaryBand.Entry), orNA(data.SalaryBand.Mid), orNA(data.SalaryBand.Senior))
		answerParts = append(answerParts, fmt.Sprintf("💰 **Salary Progression:**\n%s", salaryText))
	}

	return Response{
		Type:        TypeCareerCard,
		CareerName:  data.CareerName,
		Why:         why,
		WhatToStudy: stepsText,
		Skills:      skillsText,
		Answer:      strings.Join(answerParts, "\n\n"),
	}
}

// Roadmap renders the phased progression of a career.
func Roadmap(data source.RoadmapInfo, allowGPT bool) Response {
	if !data.Available {
		return Response{Type: TypeError, Answer: msgNoRoadmapData}
	}

	why := fmt.Sprintf("🗺️ **Career Roadmap: %s**", data.CareerName)

	roadmapText := fmt.Sprintf("**Short-term:** %s\n\n**Mid-term:** %s\n\n**Long-term:** %s",
		data.ShortTerm, data.MidTerm, data.LongTerm)
	if data.EntryPoint != "" {
		roadmapText += fmt.Sprintf("\n\n**Entry Point:** %s", data.EntryPoint)
	}

	return Response{
		Type:            TypeCareerCard,
		CareerName:      data.CareerName,
		Why:             why,
		Roadmap:         roadmapText,
		Answer:          why + "\n\n" + roadmapText,
		AllowGPTExplain: allowGPT,
	}
}

// StreamGuidance renders the streams available after a class level.
func StreamGuidance(data source.StreamGuidance) Response {
	if !data.Available {
		return Response{Type: TypeError, Answer: msgNoStreamData}
	}

	why := fmt.Sprintf("📚 **Streams after Class %s**", data.ClassLevel)

	lines := make([]string, len(data.Streams))
	for i, stream := range data.Streams {
		lines[i] = fmt.Sprintf("• **%s**: %s", stream.Name, stream.Description)
	}
	streamsText := strings.Join(lines, "\n")

	return Response{
		Type:        TypeStreamInfo,
		Why:         why,
		WhatToStudy: streamsText,
		Answer:      fmt.Sprintf("%s\n\n%s\n\nUse our onboarding tool to find the best stream for your interests!", why, streamsText),
	}
}

// ExamInfo renders verified exam details.
func ExamInfo(data source.ExamDetails) Response {
	if !data.Available {
		return Response{Type: TypeError, Answer: msgNoExamData}
	}

	why := fmt.Sprintf("📝 **About %s**", data.ExamName)

	var parts []string
	parts = append(parts, fmt.Sprintf("• Overview: %s", data.Description))
	parts = append(parts, fmt.Sprintf("• Difficulty: %s", data.Difficulty))
	if len(data.Requires) > 0 {
		parts = append(parts, fmt.Sprintf("• Requires: %s", strings.Join(data.Requires, ", ")))
	}
	if len(data.LeadsTo) > 0 {
		parts = append(parts, fmt.Sprintf("• Leads To: %s", strings.Join(data.LeadsTo, ", ")))
	}
	detail := strings.Join(parts, "\n")

	return Response{
		Type:        TypeExamInfo,
		Why:         why,
		WhatToStudy: detail,
		Answer:      why + "\n\n" + detail,
	}
}

// CourseInfo renders verified course details.
func CourseInfo(data source.CourseDetails) Response {
	if !data.Available {
		return Response{Type: TypeError, Answer: msgNoCourseData}
	}

	why := fmt.Sprintf("🎓 **About %s**", data.CourseName)

	var parts []string
	parts = append(parts, fmt.Sprintf("• Overview: %s", data.Description))
	if data.DurationYears > 0 {
		parts = append(parts, fmt.Sprintf("• Duration: %g years", data.DurationYears))
	}
	if len(data.EntryExams) > 0 {
		parts = append(parts, fmt.Sprintf("• Entry Exams: %s", strings.Join(data.EntryExams, ", ")))
	}
	detail := strings.Join(parts, "\n")

	return Response{
		Type:        TypeCourseInfo,
		Why:         why,
		WhatToStudy: detail,
		Answer:      why + "\n\n" + detail,
	}
}

// Fallback is the generic message when nothing verified can answer.
func Fallback() Response {
	return Response{
		Type:   TypeGeneric,
		Answer: "I can help you with:\n• Career eligibility and requirements\n• Step-by-step career paths\n• Stream guidance (after Class 10/12)\n• Career roadmaps\n\nTry asking:\n• 'How can I become a CA?'\n• 'What streams are available after Class 10?'\n• 'Am I eligible for engineering?'\n\nOr use our **Onboarding Tool** for personalized career recommendations!",
	}
}

// FallbackFor picks the per-kind fallback sentence ("career", "exam",
// "stream"); anything else gets the short generic one.
func FallbackFor(kind string) string {
	switch kind {
	case "career":
		return fallbackCareerResponse
	case "exam":
		return fallbackExamResponse
	case "stream":
		return fallbackStreamResponse
	default:
		return fallbackGenericShort
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
