package analytics

import (
	"sort"
	"sync"
	"time"
)

// Summary aggregates event counters in memory. It is safe for concurrent
// writers (the consumer) and readers (the admin endpoint).
type Summary struct {
	mu           sync.RWMutex
	totalEvents  int
	countsByType map[EventType]int
	careerViews  map[string]int
}

func NewSummary() *Summary {
	return &Summary{
		countsByType: make(map[EventType]int),
		careerViews:  make(map[string]int),
	}
}

func (s *Summary) Record(event Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.totalEvents++
	s.countsByType[event.Type]++
	if event.Type == EventCareerViewed && event.Entity != "" {
		s.careerViews[event.Entity]++
	}
}

// CareerCount is one entry of the popular-careers ranking.
type CareerCount struct {
	Career string `json:"career"`
	Views  int    `json:"views"`
}

// Snapshot is a point-in-time copy of the aggregated counters.
type Snapshot struct {
	TotalEvents    int               `json:"total_events"`
	EventsByType   map[string]int    `json:"events_by_type"`
	PopularCareers []CareerCount     `json:"popular_careers"`
	GeneratedAt    time.Time         `json:"generated_at"`
}

// Snapshot copies the counters; the returned maps are owned by the caller.
func (s *Summary) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byType := make(map[string]int, len(s.countsByType))
	for t, n := range s.countsByType {
		byType[string(t)] = n
	}

	careers := make([]CareerCount, 0, len(s.careerViews))
	for career, views := range s.careerViews {
		careers = append(careers, CareerCount{Career: career, Views: views})
	}
	sort.Slice(careers, func(i, j int) bool {
		if careers[i].Views != careers[j].Views {
			return careers[i].Views > careers[j].Views
		}
		return careers[i].Career < careers[j].Career
	})
	if len(careers) > 10 {
		careers = careers[:10]
	}

	return Snapshot{
		TotalEvents:    s.totalEvents,
		EventsByType:   byType,
		PopularCareers: careers,
		GeneratedAt:    time.Now(),
	}
}
