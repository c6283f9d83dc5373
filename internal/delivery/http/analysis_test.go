package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bazi-insight/internal/dto"
	"bazi-insight/internal/repository"
	"bazi-insight/internal/service"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAnalysisService struct {
	submitResp *dto.SubmitBirthChartResponse
	submitErr  error
	getResp    *dto.GetAnalysisResponse
	getErr     error
	gotSubmit  dto.SubmitBirthChartRequest
	gotID      string
}

func (s *stubAnalysisService) Submit(ctx context.Context, req dto.SubmitBirthChartRequest) (*dto.SubmitBirthChartResponse, error) {
	s.gotSubmit = req
	return s.submitResp, s.submitErr
}

func (s *stubAnalysisService) Get(ctx context.Context, id string) (*dto.GetAnalysisResponse, error) {
	s.gotID = id
	return s.getResp, s.getErr
}

type stubChatService struct {
	resp *dto.ChatResponse
	err  error
}

func (s *stubChatService) Chat(ctx context.Context, req dto.ChatRequest) (*dto.ChatResponse, error) {
	return s.resp, s.err
}

func newTestHandler(analysis service.AnalysisService, chat service.ChatService) (*HttpAPIHandler, *echo.Echo) {
	e := echo.New()
	handler := NewHttpAPIHandler(context.Background(), e, goValidator.New(), &service.Service{
		AnalysisService: analysis,
		ChatService:     chat,
	})
	handler.SetupRoutes()
	return handler, e
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestSubmitBirthChart(t *testing.T) {
	stub := &stubAnalysisService{
		submitResp: &dto.SubmitBirthChartResponse{
			ID:      "3b18e8a1-5cde-4a5c-bf6a-9d2da7a9c7de",
			Success: true,
			Preview: dto.ChartPreview{
				EightCharacters: "己巳 丙子 丙寅 戊子",
				Zodiac:          "蛇",
				DayMaster:       "丙",
			},
		},
	}
	_, e := newTestHandler(stub, &stubChatService{})

	body := `{"nickname":"tester","gender":"male","birthDate":"1990-01-01T00:30","birthPlace":"Singapore"}`
	rec := doJSON(e, http.MethodPost, "/api/analysis", body)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.SubmitBirthChartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, stub.submitResp.ID, resp.ID)
	assert.Equal(t, "蛇", resp.Preview.Zodiac)
	assert.Equal(t, "Singapore", stub.gotSubmit.BirthPlace)
}

func TestSubmitBirthChart_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing gender", `{"birthDate":"1990-01-01T00:30","birthPlace":"Singapore"}`},
		{"invalid gender", `{"gender":"other","birthDate":"1990-01-01T00:30","birthPlace":"Singapore"}`},
		{"missing birth date", `{"gender":"male","birthPlace":"Singapore"}`},
		{"missing birth place", `{"gender":"male","birthDate":"1990-01-01T00:30"}`},
		{"malformed json", `{"gender":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, e := newTestHandler(&stubAnalysisService{}, &stubChatService{})
			rec := doJSON(e, http.MethodPost, "/api/analysis", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestSubmitBirthChart_ServiceErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"unparseable birth date", service.ErrInvalidBirthDate, http.StatusBadRequest},
		{"calendar authority down", service.ErrChartUnavailable, http.StatusInternalServerError},
		{"unexpected failure", errors.New("boom"), http.StatusInternalServerError},
	}

	valid := `{"gender":"male","birthDate":"1990-01-01T00:30","birthPlace":"Singapore"}`
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, e := newTestHandler(&stubAnalysisService{submitErr: tt.err}, &stubChatService{})
			rec := doJSON(e, http.MethodPost, "/api/analysis", valid)
			assert.Equal(t, tt.wantCode, rec.Code)

			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestGetAnalysis(t *testing.T) {
	stub := &stubAnalysisService{
		getResp: &dto.GetAnalysisResponse{
			UserInfo: dto.UserInfo{Nickname: "tester", Gender: "male"},
			Patterns: []dto.PatternTag{{Label: "Balanced Constitution Pattern", Kind: "neutral"}},
		},
	}
	_, e := newTestHandler(stub, &stubChatService{})

	rec := doJSON(e, http.MethodGet, "/api/analysis?id=abc-123", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc-123", stub.gotID)

	var resp dto.GetAnalysisResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "tester", resp.UserInfo.Nickname)
	require.Len(t, resp.Patterns, 1)
	assert.Equal(t, "neutral", resp.Patterns[0].Kind)
}

func TestGetAnalysis_MissingID(t *testing.T) {
	_, e := newTestHandler(&stubAnalysisService{}, &stubChatService{})
	rec := doJSON(e, http.MethodGet, "/api/analysis", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetAnalysis_UnknownID(t *testing.T) {
	_, e := newTestHandler(&stubAnalysisService{getErr: repository.ErrSessionNotFound}, &stubChatService{})
	rec := doJSON(e, http.MethodGet, "/api/analysis?id=unknown", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
