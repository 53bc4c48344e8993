package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestEnvelopeInvariants(t *testing.T) {
	ok := Ok("done", []string{"a"})
	assert.True(t, ok.Success)
	assert.Nil(t, ok.ErrorCode)
	require.NotNil(t, ok.Data)
	assert.Equal(t, []string{"a"}, *ok.Data)

	fail := Fail[[]string](CodeNoteNotFound, "missing")
	assert.False(t, fail.Success)
	require.NotNil(t, fail.ErrorCode)
	assert.Equal(t, CodeNoteNotFound, *fail.ErrorCode)
	assert.Nil(t, fail.Data)
}

func TestEnvelopeJSONShape(t *testing.T) {
	raw, err := json.Marshal(Fail[any](CodeUnauthorized, "nope"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":false,"error_code":"UNAUTHORIZED","message":"nope","data":null}`, string(raw))

	raw, err = json.Marshal(Ok("yes", map[string]int{"n": 1}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"error_code":null,"message":"yes","data":{"n":1}}`, string(raw))
}

func TestErrorResponseStatus(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{ErrUnauthorized, http.StatusUnauthorized, CodeUnauthorized},
		{ErrNoteNotFound, http.StatusNotFound, CodeNoteNotFound},
		{ErrRestoreFailed, http.StatusNotFound, CodeRestoreFailed},
		{ErrNoUpdatableFields, http.StatusBadRequest, CodeNoUpdateData},
		{ErrInvalidDateFormat.With(nil, "input", "x"), http.StatusBadRequest, CodeInvalidDateFormat},
		{ErrStorageUnavailable.With(errors.New("dial tcp")), http.StatusServiceUnavailable, CodeStorageUnavailable},
		{ErrAnalysisFailed, http.StatusBadGateway, CodeAIAnalysis},
		{errors.New("boom"), http.StatusInternalServerError, CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			Error(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			body := decode(t, w)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.code, body["error_code"])
			assert.Nil(t, body["data"])
			assert.NotContains(t, body["message"], "dial tcp")
		})
	}
}

func TestErrorResponseIncludesValidationDetails(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Error(c, ErrInvalidDateFormat.With(nil, "input", "31/02/2025"))

	body := decode(t, w)
	details, ok := body["details"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "31/02/2025", details["input"])
}

func TestAppErrorMatching(t *testing.T) {
	wrapped := ErrNoteNotFound.With(errors.New("cause"), "id", "n1")
	assert.ErrorIs(t, wrapped, ErrNoteNotFound)
	assert.NotErrorIs(t, wrapped, ErrRestoreFailed)
	assert.Equal(t, "n1", wrapped.Context["id"])
	assert.Nil(t, ErrNoteNotFound.Context, "With must not mutate the sentinel")

	internal := AsAppError(errors.New("plain"))
	assert.Equal(t, KindInternal, internal.Kind)
	assert.EqualError(t, internal.Unwrap(), "plain")
}
