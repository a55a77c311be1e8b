package ingredient

import (
	"regexp"
	"strings"
)

// Section groups ingredient lines and instruction text under one name.
// Section order is significant: it is the order sections appeared in the
// source text and the order they are displayed.
type Section struct {
	Name         string   `json:"name"`
	Ingredients  []Parsed `json:"ingredients"`
	Instructions string   `json:"instructions"`
}

var sectionMarker = regexp.MustCompile(`\[([^\]]+)\]`)

// HasSections reports whether s contains a [Section] marker.
func HasSections(s string) bool {
	return sectionMarker.MatchString(s)
}

// ParseBlock parses a pipe-separated block of ingredient lines.
// Blank segments between pipes are skipped.
func ParseBlock(s string) []Parsed {
	var out []Parsed
	for _, item := range strings.Split(s, "|") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		out = append(out, ParseLine(item))
	}
	return out
}

// segment is one named chunk of a section-marked block.
type segment struct {
	name string
	body string
}

// splitSegments splits s on [Name] markers. Each marker starts a segment
// that runs until the next marker or end of text. When markers are
// present, text before the first marker is discarded; when none are, the
// whole text forms a single unnamed segment.
func splitSegments(s string) []segment {
	locs := sectionMarker.FindAllStringSubmatchIndex(s, -1)
	if len(locs) == 0 {
		return []segment{{body: s}}
	}

	segs := make([]segment, 0, len(locs))
	for i, loc := range locs {
		end := len(s)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		segs = append(segs, segment{
			name: strings.TrimSpace(s[loc[2]:loc[3]]),
			body: s[loc[1]:end],
		})
	}
	return segs
}

// ParseSectioned splits a section-marked ingredient block into ordered
// sections, pipe-splitting and parsing each section's lines. Input with
// no markers yields a single unnamed section.
func ParseSectioned(ingredients string) []Section {
	segs := splitSegments(ingredients)
	sections := make([]Section, 0, len(segs))
	for _, seg := range segs {
		sections = append(sections, Section{
			Name:        seg.name,
			Ingredients: ParseBlock(seg.body),
		})
	}
	return sections
}

// AssembleSections combines section-marked ingredient and instruction
// blocks into ordered sections. Ingredient bodies are pipe-split and
// parsed; instruction bodies are used verbatim, trimmed. Sections that
// never receive instruction text are dropped, since a section without
// steps cannot be cooked from.
func AssembleSections(ingredients, instructions string) []Section {
	var order []string
	byName := map[string]*Section{}

	lookup := func(name string) *Section {
		if sec, ok := byName[name]; ok {
			return sec
		}
		sec := &Section{Name: name}
		byName[name] = sec
		order = append(order, name)
		return sec
	}

	if ingredients != "" {
		for _, seg := range splitSegments(ingredients) {
			if seg.name == "" {
				continue
			}
			lookup(seg.name).Ingredients = ParseBlock(seg.body)
		}
	}

	if instructions != "" {
		for _, seg := range splitSegments(instructions) {
			if seg.name == "" {
				continue
			}
			lookup(seg.name).Instructions = strings.TrimSpace(seg.body)
		}
	}

	var out []Section
	for _, name := range order {
		if sec := byName[name]; sec.Instructions != "" {
			out = append(out, *sec)
		}
	}
	return out
}
