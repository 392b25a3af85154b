package search

import (
	"strings"

	"career-path-be/pkg/knowledge"
)

// Hit is one record matched by a comprehensive search.
type Hit struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Kind        string `json:"type"`
}

// Results groups hits per record kind for one query.
type Results struct {
	Query   string `json:"query"`
	Careers []Hit  `json:"careers"`
	Streams []Hit  `json:"streams"`
	Exams   []Hit  `json:"exams"`
	Courses []Hit  `json:"courses"`
	Total   int    `json:"total_results"`
}

// Searcher scans every record kind by case-insensitive containment over id,
// display name and description. It is the last verified resort before the
// generic fallback, never a fuzzy guesser.
type Searcher struct {
	kb *knowledge.Base
}

func New(kb *knowledge.Base) *Searcher {
	return &Searcher{kb: kb}
}

// Comprehensive searches all four record kinds.
func (s *Searcher) Comprehensive(query string) Results {
	res := Results{
		Query:   query,
		Careers: s.searchCareers(query),
		Streams: s.searchStreams(query),
		Exams:   s.searchExams(query),
		Courses: s.searchCourses(query),
	}
	res.Total = len(res.Careers) + len(res.Streams) + len(res.Exams) + len(res.Courses)
	return res
}

func matches(query, id, name, description string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(name), q) ||
		strings.Contains(strings.ToLower(description), q) ||
		strings.Contains(strings.ToLower(id), q)
}

func (s *Searcher) searchCareers(query string) []Hit {
	var hits []Hit
	for _, c := range s.kb.Careers() {
		if matches(query, c.ID, c.DisplayName, c.Description) {
			hits = append(hits, Hit{ID: c.ID, Name: c.DisplayName, Description: c.Description, Kind: "career"})
		}
	}
	return hits
}

func (s *Searcher) searchStreams(query string) []Hit {
	var hits []Hit
	for _, st := range s.kb.Streams() {
		if matches(query, st.ID, st.DisplayName, st.Description) {
			hits = append(hits, Hit{ID: st.ID, Name: st.DisplayName, Description: st.Description, Kind: "stream"})
		}
	}
	return hits
}

func (s *Searcher) searchExams(query string) []Hit {
	var hits []Hit
	for _, e := range s.kb.Exams() {
		if matches(query, e.ID, e.DisplayName, e.Description) {
			hits = append(hits, Hit{ID: e.ID, Name: e.DisplayName, Description: e.Description, Kind: "exam"})
		}
	}
	return hits
}

func (s *Searcher) searchCourses(query string) []Hit {
	var hits []Hit
	for _, c := range s.kb.Courses() {
		if matches(query, c.ID, c.DisplayName, c.Description) {
			hits = append(hits, Hit{ID: c.ID, Name: c.DisplayName, Description: c.Description, Kind: "course"})
		}
	}
	return hits
}

// searchKeywords hint that a free-text question is really a lookup.
var searchKeywords = []string{"stream", "career", "exam", "course", "job", "what", "tell me about"}

// LooksLikeSearch reports whether the question contains a search keyword.
// Combined with low classification confidence it routes the turn through
// Comprehensive before the normal pipeline.
func LooksLikeSearch(question string) bool {
	q := strings.ToLower(question)
	for _, kw := range searchKeywords {
		if strings.Contains(q, kw) {
			return true
		}
	}
	return false
}
