package dto

import (
	"time"

	"tonotes/model"
	"tonotes/utils"
)

type NoteLink struct {
	Href   string `json:"href"`
	Method string `json:"method,omitempty"` // Optional: GET, POST, PUT, PATCH, DELETE
}

// Dates arrive as DD/MM/YYYY or ISO-8601 strings under either the snake or
// the camel case key; the snake case key wins when both are sent.
type CreateNoteRequest struct {
	Title        string   `json:"title" binding:"required,min=1,max=200"`
	Content      string   `json:"content" binding:"required,min=1"`
	StartDate    any      `json:"start_date"`
	StartDateAlt any      `json:"startDate"`
	EndDate      any      `json:"end_date"`
	EndDateAlt   any      `json:"endDate"`
	Pinned       bool     `json:"pinned"`
	Tags         []string `json:"tags" binding:"omitempty,dive,max=50"`
}

// UpdateNoteRequest is a partial update: absent and null fields are skipped.
type UpdateNoteRequest struct {
	Title        *string  `json:"title" binding:"omitnil,min=1,max=200"`
	Content      *string  `json:"content" binding:"omitnil,min=1"`
	StartDate    any      `json:"start_date"`
	StartDateAlt any      `json:"startDate"`
	EndDate      any      `json:"end_date"`
	EndDateAlt   any      `json:"endDate"`
	Pinned       *bool    `json:"pinned"`
	Tags         []string `json:"tags" binding:"omitempty,dive,max=50"`
}

func firstPresent(primary, alias any) any {
	if primary != nil {
		return primary
	}
	return alias
}

func parseDates(start, startAlt, end, endAlt any) (*time.Time, *time.Time, error) {
	startDate, err := utils.ParseDate(firstPresent(start, startAlt))
	if err != nil {
		return nil, nil, err
	}
	endDate, err := utils.ParseDate(firstPresent(end, endAlt))
	if err != nil {
		return nil, nil, err
	}
	return startDate, endDate, nil
}

func (r CreateNoteRequest) ToInput() (model.NoteInput, error) {
	start, end, err := parseDates(r.StartDate, r.StartDateAlt, r.EndDate, r.EndDateAlt)
	if err != nil {
		return model.NoteInput{}, err
	}
	return model.NoteInput{
		Title:     r.Title,
		Content:   r.Content,
		StartDate: start,
		EndDate:   end,
		Pinned:    r.Pinned,
		Tags:      r.Tags,
	}, nil
}

func (r UpdateNoteRequest) ToPatch() (model.NotePatch, error) {
	start, end, err := parseDates(r.StartDate, r.StartDateAlt, r.EndDate, r.EndDateAlt)
	if err != nil {
		return model.NotePatch{}, err
	}
	return model.NotePatch{
		Title:     r.Title,
		Content:   r.Content,
		StartDate: start,
		EndDate:   end,
		Pinned:    r.Pinned,
		Tags:      r.Tags,
	}, nil
}

type NoteResponse struct {
	ID        string              `json:"id"`
	UserID    string              `json:"user_id"`
	Title     string              `json:"title"`
	Content   string              `json:"content"`
	StartDate *time.Time          `json:"start_date"`
	EndDate   *time.Time          `json:"end_date"`
	Pinned    bool                `json:"pinned"`
	Tags      []string            `json:"tags"`
	Deleted   bool                `json:"deleted"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
	Links     map[string]NoteLink `json:"_links,omitempty"`
}

// NoteLinks builds the HAL links of a note under basePath (e.g. /api/v1/notes).
func NoteLinks(basePath string, note *model.Note) map[string]NoteLink {
	self := basePath + "/" + note.ID
	if note.Deleted {
		return map[string]NoteLink{
			"restore": {Href: self + "/restore", Method: "PATCH"},
		}
	}
	return map[string]NoteLink{
		"self":     {Href: self, Method: "GET"},
		"update":   {Href: self, Method: "PUT"},
		"delete":   {Href: self, Method: "DELETE"},
		"analysis": {Href: self + "/ai", Method: "GET"},
	}
}

func ToNoteResponse(note *model.Note, links map[string]NoteLink) NoteResponse {
	return NoteResponse{
		ID:        note.ID,
		UserID:    note.UserID,
		Title:     note.Title,
		Content:   note.Content,
		StartDate: note.StartDate,
		EndDate:   note.EndDate,
		Pinned:    note.Pinned,
		Tags:      note.Tags,
		Deleted:   note.Deleted,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
		Links:     links,
	}
}

// Convert slice of notes to slice of NoteResponse
func ToNoteResponses(notes []*model.Note, basePath string) []NoteResponse {
	responses := make([]NoteResponse, len(notes))
	for i, note := range notes {
		responses[i] = ToNoteResponse(note, NoteLinks(basePath, note))
	}
	return responses
}

type AnalysisResponse struct {
	NoteID   string               `json:"note_id"`
	Analysis model.AnalysisResult `json:"analysis"`
}
