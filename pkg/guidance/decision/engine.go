package decision

import (
	"career-path-be/pkg/guidance/intent"
	"career-path-be/pkg/knowledge"
)

// Source says where an answer may come from. The rewrite backend is never a
// source of facts, APP_DATA_GPT_EXPLAIN only permits cosmetic restyling.
type Source string

const (
	AppDataOnly       Source = "APP_DATA_ONLY"
	AppDataGPTExplain Source = "APP_DATA_GPT_EXPLAIN"
	FallbackGeneric   Source = "FALLBACK_GENERIC"
)

// DataKey names one record the answer source must fetch.
type DataKey struct {
	Kind knowledge.Kind
	ID   string
}

// Decision is the pure outcome of (intent, entities, confidence).
type Decision struct {
	Source          Source
	AllowGPTExplain bool
	DataRequired    []DataKey
}

// sourceByIntent is the fixed intent-to-source table. Unknown intents fall
// back to the generic message.
var sourceByIntent = map[intent.Intent]Source{
	intent.EligibilityCheck: AppDataOnly,
	intent.CareerSteps:      AppDataOnly,
	intent.CareerSkills:     AppDataOnly,
	intent.FailurePaths:     AppDataOnly,
	intent.Roadmap:          AppDataGPTExplain,
	intent.StreamGuidance:   AppDataOnly,
	intent.ExamInfo:         AppDataOnly,
	intent.CourseInfo:       AppDataOnly,
	intent.CareerOverview:   AppDataGPTExplain,
	intent.Comparison:       AppDataOnly,
	intent.GeneralGuidance:  FallbackGeneric,
}

// Decide maps a classification to an answer source policy. Confidence below
// 0.5 forces the generic fallback regardless of the matched intent. Null
// entity slots are omitted from DataRequired; the caller treats an empty list
// on a data-needing intent as "cannot answer".
func Decide(res intent.Result) Decision {
	if res.Confidence < 0.5 {
		return Decision{Source: FallbackGeneric}
	}

	source, ok := sourceByIntent[res.Intent]
	if !ok {
		source = FallbackGeneric
	}

	return Decision{
		Source:          source,
		AllowGPTExplain: source == AppDataGPTExplain,
		DataRequired:    dataNeeds(res.Intent, res.Entities),
	}
}

func dataNeeds(in intent.Intent, entities intent.EntitySet) []DataKey {
	var needs []DataKey

	switch in {
	case intent.CareerSteps, intent.CareerOverview, intent.Roadmap,
		intent.EligibilityCheck, intent.CareerSkills, intent.FailurePaths:
		if entities.Career != "" {
			needs = append(needs, DataKey{Kind: knowledge.KindCareer, ID: entities.Career})
		}
	case intent.StreamGuidance:
		if entities.ClassLevel != "" {
			needs = append(needs, DataKey{Kind: knowledge.KindStream, ID: entities.ClassLevel})
		}
	case intent.ExamInfo:
		if entities.Exam != "" {
			needs = append(needs, DataKey{Kind: knowledge.KindExam, ID: entities.Exam})
		}
	case intent.CourseInfo:
		if entities.Course != "" {
			needs = append(needs, DataKey{Kind: knowledge.KindCourse, ID: entities.Course})
		}
	}

	return needs
}
