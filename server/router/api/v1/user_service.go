package v1

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	apierrors "github.com/fragora/fragora/server/internal/errors"
	"github.com/fragora/fragora/server/internal/observability"
	"github.com/fragora/fragora/store"
)

// getUserPreferences handles GET /api/v1/users/:userId/preferences. Users
// that have never interacted get an empty record, not a 404.
func (s *APIV1Service) getUserPreferences(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Param("userId")
	if userID == "" {
		return errorJSON(c, http.StatusBadRequest, "userId is required")
	}

	prefs, err := s.PreferenceService.GetPreferences(ctx, userID)
	if err != nil {
		slog.Error("failed to get preferences", slog.String(observability.LogFieldUserID, userID), slog.String("error", err.Error()))
		return errorJSON(c, http.StatusInternalServerError, "failed to get preferences")
	}
	return c.JSON(http.StatusOK, convertUserPreferences(prefs))
}

type updatePreferenceRequest struct {
	PerfumeID string `json:"perfumeId"`
	Action    string `json:"action"`
}

// updateUserPreference handles POST /api/v1/users/:userId/preferences.
func (s *APIV1Service) updateUserPreference(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Param("userId")
	if userID == "" {
		return errorJSON(c, http.StatusBadRequest, "userId is required")
	}

	request := &updatePreferenceRequest{}
	if err := c.Bind(request); err != nil {
		return errorJSON(c, http.StatusBadRequest, "malformed request body")
	}
	if request.PerfumeID == "" {
		return errorJSON(c, http.StatusBadRequest, "perfumeId is required")
	}
	action := store.PreferenceAction(request.Action)
	if !action.IsValid() {
		return errorJSON(c, http.StatusBadRequest, "action must be one of like, dislike, favorite, wantToTry, haveIt")
	}

	if _, err := s.findPerfume(ctx, request.PerfumeID); err != nil {
		return serviceErrorJSON(c, err)
	}

	requestContext := observability.NewRequestContext(slog.Default(), "updateUserPreference", userID)
	updated, err := s.PreferenceService.ApplyAction(ctx, userID, request.PerfumeID, action)
	if err != nil {
		requestContext.Error("failed to apply preference action", err,
			slog.String(observability.LogFieldPerfumeID, request.PerfumeID),
			slog.String(observability.LogFieldErrorCode, string(apierrors.GetCodeFromError(err, apierrors.ErrCodeInternal))),
		)
		return serviceErrorJSON(c, err)
	}

	requestContext.Info("preference updated",
		slog.String(observability.LogFieldPerfumeID, request.PerfumeID),
		slog.String("action", request.Action),
		slog.Int64(observability.LogFieldDuration, requestContext.DurationMs()),
	)
	return c.JSON(http.StatusOK, convertUserPreferences(updated))
}
