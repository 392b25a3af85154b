package intent

import (
	"regexp"
	"strings"
	"sync"
)

// careerPhrase binds a query phrase to its canonical career id.
type careerPhrase struct {
	phrase string
	id     string
}

// careerPhrases is scanned in order and the first hit wins, so multi-word and
// more specific phrases must stay ahead of the short abbreviations they
// overlap with ("chartered accountant" before "ca", "company secretary"
// before "cs"). Reordering needs the classifier regression tests to pass.
var careerPhrases = []careerPhrase{
	{"chartered accountant", "chartered_accountant"},
	{"civil services", "civil_services"},
	{"software engineer", "software_engineer"},
	{"registered nurse", "registered_nurse"},
	{"b.arch", "barch_architecture"},
	{"barch", "barch_architecture"},
	{"architect", "barch_architecture"},
	{"architecture", "barch_architecture"},
	{"mbbs", "doctor"},
	{"doctor", "doctor"},
	{"dentist", "dentist"},
	{"bds", "dentist"},
	{"pharmacist", "pharmacist"},
	{"b.pharm", "pharmacist"},
	{"bpharm", "pharmacist"},
	{"engineer", "software_engineer"},
	{"engineering", "software_engineer"},
	{"lawyer", "lawyer"},
	{"teacher", "teacher"},
	{"ias", "civil_services"},
	{"company secretary", "company_secretary"},
	{"ca", "chartered_accountant"},
	{"cs", "company_secretary"},
	{"cma", "cost_management_accountant"},
	{"nurse", "registered_nurse"},
}

var streamPhrases = []string{"science", "commerce", "arts", "pcm", "pcb", "mpc", "bipc", "pcmb"}

var examPhrases = []string{"neet", "jee", "ca foundation", "ca intermediate", "upsc", "ssc", "cet", "mset", "mhcet", "mhtcet"}

var coursePhrases = []string{"b.tech", "btech", "mbbs", "b.com", "bcom", "mba", "bsc nursing", "b.arch"}

var (
	boundaryOnce sync.Once
	boundaryRe   map[string]*regexp.Regexp
)

// boundaryPatterns compiles word-boundary regexes for the short abbreviations
// once; a bare substring check would match "ca" inside "can" or "cs" inside
// "physics".
func boundaryPatterns() map[string]*regexp.Regexp {
	boundaryOnce.Do(func() {
		boundaryRe = make(map[string]*regexp.Regexp)
		for _, cp := range careerPhrases {
			if len(cp.phrase) <= 2 {
				boundaryRe[cp.phrase] = regexp.MustCompile(`\b` + regexp.QuoteMeta(cp.phrase) + `\b`)
			}
		}
	})
	return boundaryRe
}

// Extract resolves entity slots from lowercase query text. Each slot is a
// first-match scan over its own fixed phrase table; slots do not interact.
// Extraction never fails, unresolved slots stay empty.
func Extract(query string) EntitySet {
	q := strings.ToLower(query)
	var entities EntitySet

	patterns := boundaryPatterns()
	for _, cp := range careerPhrases {
		if len(cp.phrase) <= 2 {
			if patterns[cp.phrase].MatchString(q) {
				entities.Career = cp.id
				break
			}
			continue
		}
		if strings.Contains(q, cp.phrase) {
			entities.Career = cp.id
			break
		}
	}

	for _, s := range streamPhrases {
		if strings.Contains(q, s) {
			entities.Stream = s
			break
		}
	}

	switch {
	case strings.Contains(q, "class 10") || strings.Contains(q, "10th"):
		entities.ClassLevel = "10"
	case strings.Contains(q, "class 12") || strings.Contains(q, "12th"):
		entities.ClassLevel = "12"
	}

	for _, e := range examPhrases {
		if strings.Contains(q, e) {
			entities.Exam = strings.ReplaceAll(e, " ", "_")
			break
		}
	}

	for _, c := range coursePhrases {
		if strings.Contains(q, c) {
			entities.Course = strings.NewReplacer(" ", "_", ".", "").Replace(c)
			break
		}
	}

	return entities
}

// CareerMatches returns every distinct career the query names, in phrase-table
// order. More than one match means the query is ambiguous about which career
// it asks after.
func CareerMatches(query string) []string {
	q := strings.ToLower(query)
	patterns := boundaryPatterns()

	seen := make(map[string]bool)
	var ids []string
	for _, cp := range careerPhrases {
		matched := strings.Contains(q, cp.phrase)
		if len(cp.phrase) <= 2 {
			matched = patterns[cp.phrase].MatchString(q)
		}
		if matched && !seen[cp.id] {
			seen[cp.id] = true
			ids = append(ids, cp.id)
		}
	}
	return ids
}
