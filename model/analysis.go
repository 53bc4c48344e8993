package model

const (
	DefaultNoteType        = "Undetermined"
	DefaultImportanceLevel = "Medium"
	DefaultCategory        = "General"
)

// AnalysisResult is derived from the text generator's reply and never persisted.
type AnalysisResult struct {
	NoteType        string   `json:"note_type"`
	ImportanceLevel string   `json:"importance_level"`
	Category        string   `json:"category"`
	Suggestions     []string `json:"suggestions"`
	SuggestedTags   []string `json:"suggested_tags"`
	RawText         string   `json:"raw_text"`
}

func NewAnalysisResult(raw string) AnalysisResult {
	return AnalysisResult{
		NoteType:        DefaultNoteType,
		ImportanceLevel: DefaultImportanceLevel,
		Category:        DefaultCategory,
		Suggestions:     []string{},
		SuggestedTags:   []string{},
		RawText:         raw,
	}
}
