package utils

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindUnauthorized
	KindNotFound
	KindValidation
	KindStorageUnavailable
	KindUpstreamAnalysis
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindStorageUnavailable:
		return "storage_unavailable"
	case KindUpstreamAnalysis:
		return "upstream_analysis"
	default:
		return "internal"
	}
}

// HTTPStatus is the status code a failure of this kind is reported with.
func (k ErrorKind) HTTPStatus() int {
	switch k {
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation:
		return http.StatusBadRequest
	case KindStorageUnavailable:
		return http.StatusServiceUnavailable
	case KindUpstreamAnalysis:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

const (
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeNoteNotFound       = "NOTE_NOT_FOUND"
	CodeRestoreFailed      = "NOTE_RESTORE_ERROR"
	CodeNoUpdateData       = "NO_UPDATE_DATA"
	CodeValidation         = "VALIDATION_ERROR"
	CodeInvalidDateFormat  = "INVALID_DATE_FORMAT"
	CodeStorageUnavailable = "STORAGE_UNAVAILABLE"
	CodeAIAnalysis         = "AI_ANALYSIS_ERROR"
	CodeRateLimited        = "RATE_LIMIT_EXCEEDED"
	CodeInternal           = "INTERNAL_ERROR"
	CodeRouteNotFound      = "ROUTE_NOT_FOUND"
)

// AppError is the closed error type every service operation reports.
// Two AppErrors match under errors.Is when their codes are equal.
type AppError struct {
	Kind    ErrorKind
	Code    string
	Message string
	Context map[string]any
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code
}

// With returns a copy of e carrying cause and extra context.
func (e *AppError) With(cause error, kv ...any) *AppError {
	out := &AppError{Kind: e.Kind, Code: e.Code, Message: e.Message, Err: cause}
	if len(kv) > 0 {
		out.Context = make(map[string]any, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			if key, ok := kv[i].(string); ok {
				out.Context[key] = kv[i+1]
			}
		}
	}
	return out
}

var (
	ErrUnauthorized       = &AppError{Kind: KindUnauthorized, Code: CodeUnauthorized, Message: "Invalid or missing credentials"}
	ErrNoteNotFound       = &AppError{Kind: KindNotFound, Code: CodeNoteNotFound, Message: "Note not found or access denied"}
	ErrRestoreFailed      = &AppError{Kind: KindNotFound, Code: CodeRestoreFailed, Message: "Note could not be restored or was not found"}
	ErrNoUpdatableFields  = &AppError{Kind: KindValidation, Code: CodeNoUpdateData, Message: "No fields to update"}
	ErrValidation         = &AppError{Kind: KindValidation, Code: CodeValidation, Message: "Invalid request body"}
	ErrInvalidDateFormat  = &AppError{Kind: KindValidation, Code: CodeInvalidDateFormat, Message: "Invalid date format"}
	ErrStorageUnavailable = &AppError{Kind: KindStorageUnavailable, Code: CodeStorageUnavailable, Message: "Note storage is unavailable"}
	ErrAnalysisFailed     = &AppError{Kind: KindUpstreamAnalysis, Code: CodeAIAnalysis, Message: "AI analysis failed"}
	ErrInternal           = &AppError{Kind: KindInternal, Code: CodeInternal, Message: "Internal server error"}
)

// AsAppError unwraps err into an *AppError, falling back to ErrInternal.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return ErrInternal.With(err)
}
