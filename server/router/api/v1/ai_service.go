package v1

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fragora/fragora/server/internal/observability"
	"github.com/fragora/fragora/server/service/recommend"
)

type chatRequest struct {
	UserID  string `json:"userId"`
	Message string `json:"message"`
}

type chatResponse struct {
	ReplyText       string             `json:"replyText"`
	Recommendations []*perfumeResponse `json:"recommendations"`
}

// chatRecommendation handles POST /api/v1/ai/chat.
func (s *APIV1Service) chatRecommendation(c echo.Context) error {
	ctx := c.Request().Context()

	request := &chatRequest{}
	if err := c.Bind(request); err != nil {
		return errorJSON(c, http.StatusBadRequest, "malformed request body")
	}
	if request.UserID == "" {
		return errorJSON(c, http.StatusBadRequest, "userId is required")
	}
	if request.Message == "" {
		return errorJSON(c, http.StatusBadRequest, "message is required")
	}

	requestContext := observability.NewRequestContext(slog.Default(), "chatRecommendation", request.UserID)
	result, err := s.RecommendService.ChatRecommendation(ctx, request.Message)
	if err != nil {
		requestContext.Error("chat recommendation failed", err)
		return errorJSON(c, http.StatusInternalServerError, "failed to compute recommendation")
	}

	requestContext.Info("chat recommendation served",
		slog.Int(observability.LogFieldMessageLen, len(request.Message)),
		slog.Int(observability.LogFieldResultCount, len(result.Recommendations)),
		slog.Int64(observability.LogFieldDuration, requestContext.DurationMs()),
	)
	return c.JSON(http.StatusOK, &chatResponse{
		ReplyText:       result.ReplyText,
		Recommendations: convertPerfumeList(result.Recommendations),
	})
}

type testAnswersRequest struct {
	TimeOfDay string   `json:"timeOfDay"`
	Season    string   `json:"season"`
	Style     []string `json:"style"`
	Intensity string   `json:"intensity"`
	UseCase   string   `json:"useCase"`
}

type testRequest struct {
	UserID  string              `json:"userId"`
	Answers *testAnswersRequest `json:"answers"`
}

type testResponse struct {
	SummaryText     string             `json:"summaryText"`
	Recommendations []*perfumeResponse `json:"recommendations"`
}

var (
	validTimesOfDay  = map[string]bool{"dia": true, "noche": true, recommend.TimeOfDayBoth: true}
	validSeasons     = map[string]bool{"verano": true, "invierno": true, recommend.SeasonAllYear: true}
	validIntensities = map[string]bool{
		recommend.IntensitySuave:  true,
		recommend.IntensityMedia:  true,
		recommend.IntensityFuerte: true,
	}
)

// testRecommendation handles POST /api/v1/ai/test.
func (s *APIV1Service) testRecommendation(c echo.Context) error {
	ctx := c.Request().Context()

	request := &testRequest{}
	if err := c.Bind(request); err != nil {
		return errorJSON(c, http.StatusBadRequest, "malformed request body")
	}
	if request.UserID == "" {
		return errorJSON(c, http.StatusBadRequest, "userId is required")
	}
	if request.Answers == nil {
		return errorJSON(c, http.StatusBadRequest, "answers is required")
	}
	answers := request.Answers
	if !validTimesOfDay[answers.TimeOfDay] {
		return errorJSON(c, http.StatusBadRequest, "timeOfDay must be one of dia, noche, ambos")
	}
	if !validSeasons[answers.Season] {
		return errorJSON(c, http.StatusBadRequest, "season must be one of verano, invierno, todo_el_ano")
	}
	if !validIntensities[answers.Intensity] {
		return errorJSON(c, http.StatusBadRequest, "intensity must be one of suave, media, fuerte")
	}
	if len(answers.Style) == 0 {
		return errorJSON(c, http.StatusBadRequest, "style is required")
	}
	if answers.UseCase == "" {
		return errorJSON(c, http.StatusBadRequest, "useCase is required")
	}

	requestContext := observability.NewRequestContext(slog.Default(), "testRecommendation", request.UserID)
	result, err := s.RecommendService.TestRecommendation(ctx, request.UserID, recommend.StructuredAnswers{
		TimeOfDay: answers.TimeOfDay,
		Season:    answers.Season,
		Style:     answers.Style,
		Intensity: answers.Intensity,
		UseCase:   answers.UseCase,
	})
	if err != nil {
		requestContext.Error("test recommendation failed", err)
		return errorJSON(c, http.StatusInternalServerError, "failed to compute recommendation")
	}

	requestContext.Info("test recommendation served",
		slog.Int(observability.LogFieldResultCount, len(result.Recommendations)),
		slog.Int64(observability.LogFieldDuration, requestContext.DurationMs()),
	)
	return c.JSON(http.StatusOK, &testResponse{
		SummaryText:     result.ReplyText,
		Recommendations: convertPerfumeList(result.Recommendations),
	})
}
