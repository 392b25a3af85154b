package intent

import "strings"

var fillerWords = map[string]bool{
	"the": true, "a": true, "an": true, "is": true, "are": true,
	"could": true, "would": true, "should": true, "my": true,
}

// Normalize lowercases the query and strips filler words. "i" and "can" are
// deliberately kept, eligibility phrasings like "can i" depend on them.
func Normalize(query string) string {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(query)))
	kept := words[:0]
	for _, w := range words {
		if !fillerWords[w] {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}

func containsAny(q string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(q, w) {
			return true
		}
	}
	return false
}

// Classify runs the ordered rule cascade over a raw query. The first rule
// whose predicate matches wins and short-circuits everything below it; the
// confidence is the fixed constant of that rule. The skills and failure rules
// must stay above the career-steps rules because their phrasings usually also
// contain career and action keywords.
func Classify(query string) Result {
	q := strings.ToLower(query)
	entities := Extract(q)

	if containsAny(q, "skill", "skills", "ability", "abilities", "competenc", "what should i learn") && entities.Career != "" {
		return Result{Intent: CareerSkills, Entities: entities, Confidence: 0.95}
	}

	if containsAny(q, "fail", "don't work", "doesn't work", "alternative", "backup", "plan b", "what if") && entities.Career != "" {
		return Result{Intent: FailurePaths, Entities: entities, Confidence: 0.95}
	}

	if containsAny(q, "eligible", "eligibility", "qualify", "requirement", "without degree", "need degree") {
		return Result{Intent: EligibilityCheck, Entities: entities, Confidence: 1.0}
	}

	hasCareerKeyword := containsAny(q, "become", "career", "ca", "engineer", "doctor", "lawyer", "teacher", "nurse", "mbbs", "architect")
	hasActionWord := containsAny(q, "how", "start", "want", "like", "interested", "steps", "what to do")
	if hasCareerKeyword && hasActionWord {
		return Result{Intent: CareerSteps, Entities: entities, Confidence: 1.0}
	}

	// "I want to be X" with a resolved career also counts as career steps.
	if entities.Career != "" && containsAny(q, "want", "like", "be ", "interested in") {
		return Result{Intent: CareerSteps, Entities: entities, Confidence: 1.0}
	}

	if containsAny(q, "roadmap", "path", "future", "progression", "after") {
		return Result{Intent: Roadmap, Entities: entities, Confidence: 0.9}
	}

	if containsAny(q, "stream", "subject", "class 10", "class 12", "pcm", "pcb", "commerce", "arts") {
		return Result{Intent: StreamGuidance, Entities: entities, Confidence: 1.0}
	}

	if containsAny(q, "exam", "neet", "jee", "entrance", "test", "competitive", "cet", "mset", "mhcet", "mhtcet") {
		return Result{Intent: ExamInfo, Entities: entities, Confidence: 0.9}
	}

	if containsAny(q, "course", "degree", "b.tech", "mbbs", "b.com", "mba") {
		return Result{Intent: CourseInfo, Entities: entities, Confidence: 0.9}
	}

	if containsAny(q, "what is", "tell me about", "explain", "overview") {
		return Result{Intent: CareerOverview, Entities: entities, Confidence: 0.8}
	}

	// A bare career mention without action words is treated as an overview.
	if entities.Career != "" {
		return Result{Intent: CareerOverview, Entities: entities, Confidence: 0.75}
	}

	if containsAny(q, "vs", "versus", "compare", "difference", "better") {
		return Result{Intent: Comparison, Entities: entities, Confidence: 0.9}
	}

	return Result{Intent: GeneralGuidance, Entities: entities, Confidence: 0.5}
}
