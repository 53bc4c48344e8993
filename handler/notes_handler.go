package handler

import (
	"tonotes/dto"
	"tonotes/middleware"
	"tonotes/usecase"
	"tonotes/utils"

	"github.com/gin-gonic/gin"
)

const NotesBasePath = "/api/v1/notes"

func GetUserNotesHandler(c *gin.Context, notesService *usecase.NotesService) {
	userID := c.GetString(middleware.ContextUserID)

	notes, err := notesService.ListNotes(c.Request.Context(), userID)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, "Notes retrieved successfully", dto.ToNoteResponses(notes, NotesBasePath))
}

func GetNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("id")
	userID := c.GetString(middleware.ContextUserID)

	note, err := notesService.GetNote(c.Request.Context(), noteID, userID)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, "Note retrieved successfully", dto.ToNoteResponse(note, dto.NoteLinks(NotesBasePath, note)))
}

func CreateNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, utils.BindingError(err))
		return
	}

	input, err := req.ToInput()
	if err != nil {
		utils.Error(c, err)
		return
	}

	userID := c.GetString(middleware.ContextUserID)
	note, err := notesService.CreateNote(c.Request.Context(), userID, input)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Created(c, "Note created successfully", dto.ToNoteResponse(note, dto.NoteLinks(NotesBasePath, note)))
}

func UpdateNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("id")
	userID := c.GetString(middleware.ContextUserID)

	var req dto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, utils.BindingError(err))
		return
	}

	patch, err := req.ToPatch()
	if err != nil {
		utils.Error(c, err)
		return
	}

	note, err := notesService.UpdateNote(c.Request.Context(), noteID, userID, patch)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, "Note updated successfully", dto.ToNoteResponse(note, dto.NoteLinks(NotesBasePath, note)))
}

func DeleteNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("id")
	userID := c.GetString(middleware.ContextUserID)

	if err := notesService.SoftDeleteNote(c.Request.Context(), noteID, userID); err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, "Note deleted successfully", gin.H{"id": noteID})
}

func RestoreNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("id")
	userID := c.GetString(middleware.ContextUserID)

	note, err := notesService.RestoreNote(c.Request.Context(), noteID, userID)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, "Note restored successfully", dto.ToNoteResponse(note, dto.NoteLinks(NotesBasePath, note)))
}

func AnalyzeNoteHandler(c *gin.Context, analysisService *usecase.AnalysisService) {
	noteID := c.Param("id")
	userID := c.GetString(middleware.ContextUserID)

	result, err := analysisService.AnalyzeNote(c.Request.Context(), noteID, userID)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, "Note analyzed successfully", dto.AnalysisResponse{NoteID: noteID, Analysis: *result})
}
