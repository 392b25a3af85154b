package knowledge

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Base is the in-memory, read-only knowledge base. It is loaded once at
// process start and shared across all concurrent turns without locking.
type Base struct {
	careers     map[string]*Career
	streams     map[string]*Stream
	exams       map[string]*Exam
	courses     map[string]*Course
	edges       []Edge
	classLevels map[string]*ClassLevel
}

// Load reads the versioned career data directory layout:
//
//	<dir>/careers/*.json
//	<dir>/streams/*.json
//	<dir>/exams/*.json
//	<dir>/courses/*.json
//	<dir>/class_levels/*.json
//	<dir>/mappings/graph_edges.json
//
// Missing sub-directories are tolerated; a record file that fails to parse
// aborts the load so a broken deploy is caught at startup, not per-request.
func Load(dir string) (*Base, error) {
	b := newEmpty()

	if err := loadDir(filepath.Join(dir, "careers"), func(raw []byte, name string) error {
		var c Career
		if err := json.Unmarshal(raw, &c); err != nil {
			return err
		}
		b.addCareer(&c)
		return nil
	}); err != nil {
		return nil, err
	}

	if err := loadDir(filepath.Join(dir, "streams"), func(raw []byte, name string) error {
		var s Stream
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		b.addStream(&s)
		return nil
	}); err != nil {
		return nil, err
	}

	if err := loadDir(filepath.Join(dir, "exams"), func(raw []byte, name string) error {
		var e Exam
		if err := json.Unmarshal(raw, &e); err != nil {
			return err
		}
		b.addExam(&e)
		return nil
	}); err != nil {
		return nil, err
	}

	if err := loadDir(filepath.Join(dir, "courses"), func(raw []byte, name string) error {
		var c Course
		if err := json.Unmarshal(raw, &c); err != nil {
			return err
		}
		b.addCourse(&c)
		return nil
	}); err != nil {
		return nil, err
	}

	if err := loadDir(filepath.Join(dir, "class_levels"), func(raw []byte, name string) error {
		var cl ClassLevel
		if err := json.Unmarshal(raw, &cl); err != nil {
			return err
		}
		b.classLevels[cl.ID] = &cl
		return nil
	}); err != nil {
		return nil, err
	}

	edgesPath := filepath.Join(dir, "mappings", "graph_edges.json")
	if raw, err := os.ReadFile(edgesPath); err == nil {
		if err := json.Unmarshal(raw, &b.edges); err != nil {
			return nil, fmt.Errorf("parse %s: %w", edgesPath, err)
		}
	}

	return b, nil
}

// NewBase builds a knowledge base from in-memory records. Used by tests and
// by callers that assemble data from another source.
func NewBase(careers []*Career, streams []*Stream, exams []*Exam, courses []*Course, edges []Edge, classLevels []*ClassLevel) *Base {
	b := newEmpty()
	for _, c := range careers {
		b.addCareer(c)
	}
	for _, s := range streams {
		b.addStream(s)
	}
	for _, e := range exams {
		b.addExam(e)
	}
	for _, c := range courses {
		b.addCourse(c)
	}
	b.edges = append(b.edges, edges...)
	for _, cl := range classLevels {
		b.classLevels[cl.ID] = cl
	}
	return b
}

func newEmpty() *Base {
	return &Base{
		careers:     make(map[string]*Career),
		streams:     make(map[string]*Stream),
		exams:       make(map[string]*Exam),
		courses:     make(map[string]*Course),
		classLevels: make(map[string]*ClassLevel),
	}
}

func loadDir(dir string, each func(raw []byte, name string) error) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		raw, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if err := each(raw, entry.Name()); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
	}
	return nil
}

func (b *Base) addCareer(c *Career) { b.careers[normalizeID("career", c.ID)] = c }
func (b *Base) addStream(s *Stream) { b.streams[normalizeID("stream", s.ID)] = s }
func (b *Base) addExam(e *Exam)     { b.exams[normalizeID("exam", e.ID)] = e }
func (b *Base) addCourse(c *Course) { b.courses[normalizeID("course", c.ID)] = c }

// normalizeID stores and looks up ids in their namespaced form so that both
// "doctor" and "career:doctor" resolve to the same record.
func normalizeID(prefix, id string) string {
	if strings.Contains(id, ":") {
		return id
	}
	return prefix + ":" + id
}

// Career looks up a career record by bare or namespaced id.
func (b *Base) Career(id string) (*Career, bool) {
	c, ok := b.careers[normalizeID("career", id)]
	return c, ok
}

// Stream looks up a stream record by bare or namespaced id.
func (b *Base) Stream(id string) (*Stream, bool) {
	s, ok := b.streams[normalizeID("stream", id)]
	return s, ok
}

// Exam looks up an exam record by bare or namespaced id. If the exact id
// misses, the display name is scanned for a case-insensitive containment
// match, so "mhcet" resolves the record titled "MH-CET".
func (b *Base) Exam(id string) (*Exam, bool) {
	if e, ok := b.exams[normalizeID("exam", id)]; ok {
		return e, true
	}
	needle := strings.ToLower(id)
	for _, e := range b.exams {
		if strings.Contains(strings.ToLower(e.DisplayName), needle) ||
			strings.Contains(strings.ToLower(e.ID), needle) {
			return e, true
		}
	}
	return nil, false
}

// Course looks up a course record by bare or namespaced id.
func (b *Base) Course(id string) (*Course, bool) {
	c, ok := b.courses[normalizeID("course", id)]
	return c, ok
}

// StreamsForClass returns the streams reachable from a class level, in
// authored order. The class-level file wins; education_to_stream graph
// edges are the fallback.
func (b *Base) StreamsForClass(level string) []*Stream {
	classID := normalizeClassID(level)

	if cl, ok := b.classLevels[classID]; ok {
		streams := make([]*Stream, 0, len(cl.Streams))
		for _, sid := range cl.Streams {
			if s, ok := b.Stream(sid); ok {
				streams = append(streams, s)
			}
		}
		return streams
	}

	var streams []*Stream
	for _, e := range b.edges {
		if e.From == classID && e.Type == "education_to_stream" {
			if s, ok := b.Stream(e.To); ok {
				streams = append(streams, s)
			}
		}
	}
	return streams
}

// EntryPathsFor returns the graph sources that lead into a career
// (courses, exams) as authored in the edge list.
func (b *Base) EntryPathsFor(careerID string) []Edge {
	target := normalizeID("career", careerID)
	var paths []Edge
	for _, e := range b.edges {
		if e.To == target {
			paths = append(paths, e)
		}
	}
	return paths
}

// Careers returns all career records in unspecified order.
func (b *Base) Careers() []*Career {
	out := make([]*Career, 0, len(b.careers))
	for _, c := range b.careers {
		out = append(out, c)
	}
	return out
}

// Streams returns all stream records in unspecified order.
func (b *Base) Streams() []*Stream {
	out := make([]*Stream, 0, len(b.streams))
	for _, s := range b.streams {
		out = append(out, s)
	}
	return out
}

// Exams returns all exam records in unspecified order.
func (b *Base) Exams() []*Exam {
	out := make([]*Exam, 0, len(b.exams))
	for _, e := range b.exams {
		out = append(out, e)
	}
	return out
}

// Courses returns all course records in unspecified order.
func (b *Base) Courses() []*Course {
	out := make([]*Course, 0, len(b.courses))
	for _, c := range b.courses {
		out = append(out, c)
	}
	return out
}

func normalizeClassID(level string) string {
	if strings.HasPrefix(level, "education:") {
		return level
	}
	if strings.HasPrefix(level, "class_") {
		return "education:" + level
	}
	return "education:class_" + level
}
