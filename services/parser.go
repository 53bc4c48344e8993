package services

import (
	"strings"

	"tonotes/model"
)

var bulletMarkers = []string{"*", "-", "•", "+"}

type section int

const (
	sectionNone section = iota - 1
	sectionNoteType
	sectionImportance
	sectionCategory
	sectionSuggestions
	sectionSuggestedTags
)

// ParseAnalysis extracts the five analysis fields from free text produced by
// the generator. It is a tolerant line scanner, not a grammar: every field is
// looked up independently and falls back to its default when it cannot be
// found. It never fails and RawText always holds raw unchanged.
//
// A label may be preceded by a bullet and wrapped in markdown bold. Scalar
// fields take the first labelled line with a non-empty value. Suggestions are
// the bulleted lines between the suggestions label and the next label.
func ParseAnalysis(raw string, labels LabelSet) model.AnalysisResult {
	result := model.NewAnalysisResult(raw)
	found := make(map[section]bool, 5)
	inSuggestions := false

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")

		sec, value := matchSection(line, labels)
		if sec == sectionNone {
			if inSuggestions {
				if item, ok := bulletItem(line); ok {
					result.Suggestions = append(result.Suggestions, item)
				}
			}
			continue
		}

		inSuggestions = false
		if found[sec] {
			continue
		}

		switch sec {
		case sectionSuggestions:
			found[sec] = true
			inSuggestions = true
			if item, ok := bulletItem(value); ok {
				result.Suggestions = append(result.Suggestions, item)
			}
		case sectionSuggestedTags:
			tags := splitTags(unbold(value))
			if len(tags) > 0 {
				found[sec] = true
				result.SuggestedTags = tags
			}
		default:
			value = unbold(value)
			if value == "" {
				continue
			}
			found[sec] = true
			switch sec {
			case sectionNoteType:
				result.NoteType = value
			case sectionImportance:
				result.ImportanceLevel = value
			case sectionCategory:
				result.Category = value
			}
		}
	}
	return result
}

// matchSection reports which label line begins with, if any, and the trimmed
// text following the label.
func matchSection(line string, labels LabelSet) (section, string) {
	body := strings.TrimSpace(line)
	body = strings.TrimPrefix(body, "**")
	for _, m := range bulletMarkers {
		if strings.HasPrefix(body, m) {
			body = strings.TrimSpace(body[len(m):])
			break
		}
	}
	body = strings.TrimPrefix(body, "**")

	for i, label := range labels.sectionLabels() {
		if label == "" || !strings.HasPrefix(body, label) {
			continue
		}
		rest := strings.TrimSpace(body[len(label):])
		rest = strings.TrimSpace(strings.TrimPrefix(rest, "**"))
		return section(i), rest
	}
	return sectionNone, ""
}

// unbold strips a markdown bold wrapper from a label value.
func unbold(value string) string {
	value = strings.TrimPrefix(strings.TrimSpace(value), "**")
	value = strings.TrimSuffix(value, "**")
	return strings.TrimSpace(value)
}

func bulletItem(line string) (string, bool) {
	s := strings.TrimSpace(line)
	if strings.HasPrefix(s, "**") {
		return "", false
	}
	for _, m := range bulletMarkers {
		if strings.HasPrefix(s, m) {
			item := strings.TrimSpace(s[len(m):])
			return item, item != ""
		}
	}
	return "", false
}

func splitTags(value string) []string {
	tags := []string{}
	for _, part := range strings.Split(value, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
