package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"bazi-insight/internal/dto"
	"bazi-insight/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChat(t *testing.T) {
	stub := &stubChatService{resp: &dto.ChatResponse{Response: "The day master 丙 thrives in winter water."}}
	_, e := newTestHandler(&stubAnalysisService{}, stub)

	body := `{"message":"What does my chart say?","baziData":{"mcpData":{"dayMaster":"丙"}}}`
	rec := doJSON(e, http.MethodPost, "/api/chat", body)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Response)
}

func TestChat_MissingMessage(t *testing.T) {
	_, e := newTestHandler(&stubAnalysisService{}, &stubChatService{})
	rec := doJSON(e, http.MethodPost, "/api/chat", `{"baziData":{"mcpData":{"dayMaster":"丙"}}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChat_MissingChartData(t *testing.T) {
	_, e := newTestHandler(&stubAnalysisService{}, &stubChatService{err: service.ErrMissingChart})
	rec := doJSON(e, http.MethodPost, "/api/chat", `{"message":"hello"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "chart data")
}

func TestChat_AIUnavailable(t *testing.T) {
	_, e := newTestHandler(&stubAnalysisService{}, &stubChatService{err: errors.New("gemini: rate limited")})
	rec := doJSON(e, http.MethodPost, "/api/chat", `{"message":"hello","baziData":{"mcpData":{"dayMaster":"丙"}}}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "try again later")
}
