package usecase

import (
	"context"
	"log"

	"tonotes/metrics"
	"tonotes/model"
	"tonotes/services"
	"tonotes/utils"
)

// AnalysisService asks the text generator about a visible note and parses
// the reply into an AnalysisResult.
type AnalysisService struct {
	Notes     *NotesService
	Generator services.TextGenerator
	Labels    services.LabelSet
}

func NewAnalysisService(notes *NotesService, generator services.TextGenerator, labels services.LabelSet) *AnalysisService {
	return &AnalysisService{Notes: notes, Generator: generator, Labels: labels}
}

func (s *AnalysisService) AnalyzeNote(ctx context.Context, id, owner string) (*model.AnalysisResult, error) {
	note, err := s.Notes.GetNote(ctx, id, owner)
	if err != nil {
		return nil, err
	}

	prompt := services.BuildAnalysisPrompt(note, s.Labels)
	text, err := s.Generator.Generate(ctx, prompt)
	if err != nil {
		log.Printf("analysis of note %s failed: %v", id, err)
		return nil, utils.ErrAnalysisFailed.With(err, "note_id", id)
	}

	result := services.ParseAnalysis(text, s.Labels)
	metrics.TrackNoteOperation("analyze")
	return &result, nil
}
