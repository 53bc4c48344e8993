package services

import (
	"strings"
	"time"

	"tonotes/model"
)

const promptDateLayout = time.RFC3339

// BuildAnalysisPrompt renders note into the instruction sent to the text
// generator. The output depends only on its inputs.
func BuildAnalysisPrompt(note *model.Note, labels LabelSet) string {
	p := labels.Prompt
	var b strings.Builder

	b.WriteString(p.Intro)
	b.WriteString("\n\n")

	b.WriteString(p.NoteHeader + "\n")
	b.WriteString(p.Title + " " + note.Title + "\n")
	b.WriteString(p.Content + " " + note.Content + "\n")
	if note.Pinned {
		b.WriteString(p.Pinned + "\n")
	} else {
		b.WriteString(p.Unpinned + "\n")
	}
	if note.StartDate != nil {
		b.WriteString(p.StartDate + " " + note.StartDate.UTC().Format(promptDateLayout) + "\n")
	}
	if note.EndDate != nil {
		b.WriteString(p.EndDate + " " + note.EndDate.UTC().Format(promptDateLayout) + "\n")
	}
	if len(note.Tags) > 0 {
		b.WriteString(p.Tags + " " + strings.Join(note.Tags, ", ") + "\n")
	}

	b.WriteString("\n" + p.FormatHeader + "\n\n")
	b.WriteString(p.ResultHeader + "\n")
	b.WriteString("- " + labels.NoteType + " " + p.NoteTypeHint + "\n")
	b.WriteString("- " + labels.ImportanceLevel + " " + p.ImportanceHint + "\n")
	b.WriteString("- " + labels.Category + " " + p.CategoryHint + "\n")
	b.WriteString("- " + labels.Suggestions + " " + p.SuggestionsHint + "\n")
	b.WriteString("- " + labels.SuggestedTags + " " + p.SuggestedTagsHint + "\n")

	b.WriteString("\n" + p.Closing)
	return b.String()
}
