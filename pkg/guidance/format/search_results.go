package format

import (
	"fmt"
	"strings"

	"career-path-be/pkg/guidance/search"
)

// SearchResults renders comprehensive search hits grouped by kind, careers
// first. Sections for empty kinds are omitted.
func SearchResults(results search.Results) Response {
	if results.Total == 0 {
		return Response{Type: TypeError, Answer: fallbackGenericShort}
	}

	why := fmt.Sprintf("🔍 **Found %d results**", results.Total)

	var sections []string
	appendSection := func(header string, hits []search.Hit) {
		if len(hits) == 0 {
			return
		}
		lines := make([]string, len(hits))
		for i, hit := range hits {
			lines[i] = fmt.Sprintf("• **%s**: %s", hit.Name, hit.Description)
		}
		sections = append(sections, fmt.Sprintf("%s\n%s", header, strings.Join(lines, "\n")))
	}

	appendSection("💼 **Careers:**", results.Careers)
	appendSection("📚 **Streams:**", results.Streams)
	appendSection("📝 **Exams:**", results.Exams)
	appendSection("🎓 **Courses:**", results.Courses)

	return Response{
		Type:   TypeSearchResults,
		Why:    why,
		Answer: why + "\n\n" + strings.Join(sections, "\n\n"),
	}
}
