package v1

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"log/slog"

	apierrors "github.com/fragora/fragora/server/internal/errors"
	"github.com/fragora/fragora/server/internal/observability"
	"github.com/fragora/fragora/server/service/review"
	"github.com/fragora/fragora/store"
)

// listPerfumes handles GET /api/v1/perfumes.
//
// Supports simple query params (name, brand, tag, limit, offset) pushed down
// to the store, plus an optional CEL `filter` expression evaluated over the
// fetched rows, e.g. `filter=average_rating >= 4.0 && "fresco" in tags`.
func (s *APIV1Service) listPerfumes(c echo.Context) error {
	ctx := c.Request().Context()
	requestContext := observability.NewRequestContext(slog.Default(), "listPerfumes", "")

	find := &store.FindPerfume{}
	if name := c.QueryParam("name"); name != "" {
		find.NameSearch = &name
	}
	if brand := c.QueryParam("brand"); brand != "" {
		find.BrandSearch = &brand
	}
	if tag := c.QueryParam("tag"); tag != "" {
		find.Tag = &tag
	}
	if limitText := c.QueryParam("limit"); limitText != "" {
		limit, err := strconv.Atoi(limitText)
		if err != nil || limit < 0 {
			return errorJSON(c, http.StatusBadRequest, "limit must be a non-negative integer")
		}
		find.Limit = &limit
	}
	if offsetText := c.QueryParam("offset"); offsetText != "" {
		offset, err := strconv.Atoi(offsetText)
		if err != nil || offset < 0 {
			return errorJSON(c, http.StatusBadRequest, "offset must be a non-negative integer")
		}
		find.Offset = &offset
	}

	perfumes, err := s.Store.ListPerfumes(ctx, find)
	if err != nil {
		requestContext.Error("failed to list perfumes", err)
		return errorJSON(c, http.StatusInternalServerError, "failed to list perfumes")
	}

	if expression := c.QueryParam("filter"); expression != "" {
		program, err := compilePerfumeFilter(expression)
		if err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid filter expression")
		}
		filtered := make([]*store.Perfume, 0, len(perfumes))
		for _, perfume := range perfumes {
			matched, err := matchPerfumeFilter(program, perfume)
			if err != nil {
				return errorJSON(c, http.StatusBadRequest, "invalid filter expression")
			}
			if matched {
				filtered = append(filtered, perfume)
			}
		}
		perfumes = filtered
	}

	requestContext.Info("perfumes listed",
		slog.Int64(observability.LogFieldDuration, requestContext.DurationMs()),
		slog.Int(observability.LogFieldResultCount, len(perfumes)),
	)
	return c.JSON(http.StatusOK, convertPerfumeList(perfumes))
}

// findPerfume resolves a catalog id into a typed service error: NOT_FOUND
// for unknown ids, INTERNAL for store failures.
func (s *APIV1Service) findPerfume(ctx context.Context, perfumeID string) (*store.Perfume, error) {
	perfume, err := s.Store.GetPerfume(ctx, perfumeID)
	if err != nil {
		return nil, apierrors.Internal("failed to get perfume", err)
	}
	if perfume == nil {
		return nil, apierrors.NotFound("perfume not found")
	}
	return perfume, nil
}

// getPerfume handles GET /api/v1/perfumes/:id.
func (s *APIV1Service) getPerfume(c echo.Context) error {
	ctx := c.Request().Context()
	perfumeID := c.Param("id")

	perfume, err := s.findPerfume(ctx, perfumeID)
	if err != nil {
		if !apierrors.IsCode(err, apierrors.ErrCodeNotFound) {
			slog.Error("failed to get perfume", slog.String(observability.LogFieldPerfumeID, perfumeID), slog.String("error", err.Error()))
		}
		return serviceErrorJSON(c, err)
	}
	return c.JSON(http.StatusOK, convertPerfume(perfume))
}

// listPerfumeReviews handles GET /api/v1/perfumes/:id/reviews.
func (s *APIV1Service) listPerfumeReviews(c echo.Context) error {
	ctx := c.Request().Context()
	perfumeID := c.Param("id")

	if _, err := s.findPerfume(ctx, perfumeID); err != nil {
		return serviceErrorJSON(c, err)
	}

	reviews, err := s.ReviewService.ListByPerfume(ctx, perfumeID)
	if err != nil {
		slog.Error("failed to list reviews", slog.String(observability.LogFieldPerfumeID, perfumeID), slog.String("error", err.Error()))
		return errorJSON(c, http.StatusInternalServerError, "failed to list reviews")
	}
	return c.JSON(http.StatusOK, convertReviewList(reviews))
}

type addReviewRequest struct {
	UserID  string `json:"userId"`
	Rating  *int   `json:"rating"`
	Comment string `json:"comment"`
}

// addPerfumeReview handles POST /api/v1/perfumes/:id/reviews.
func (s *APIV1Service) addPerfumeReview(c echo.Context) error {
	ctx := c.Request().Context()
	perfumeID := c.Param("id")

	request := &addReviewRequest{}
	if err := c.Bind(request); err != nil {
		return errorJSON(c, http.StatusBadRequest, "malformed request body")
	}
	if request.UserID == "" {
		return errorJSON(c, http.StatusBadRequest, "userId is required")
	}
	if request.Rating == nil || *request.Rating < review.MinRating || *request.Rating > review.MaxRating {
		return errorJSON(c, http.StatusBadRequest, "rating must be an integer between 1 and 5")
	}
	if request.Comment == "" {
		return errorJSON(c, http.StatusBadRequest, "comment is required")
	}

	if _, err := s.findPerfume(ctx, perfumeID); err != nil {
		return serviceErrorJSON(c, err)
	}

	requestContext := observability.NewRequestContext(slog.Default(), "addPerfumeReview", request.UserID)
	created, err := s.ReviewService.AddReview(ctx, request.UserID, perfumeID, *request.Rating, request.Comment)
	if err != nil {
		requestContext.Error("failed to add review", err,
			slog.String(observability.LogFieldErrorCode, string(apierrors.GetCodeFromError(err, apierrors.ErrCodeInternal))),
		)
		return errorJSON(c, http.StatusInternalServerError, "failed to add review")
	}

	requestContext.Info("review added",
		slog.String(observability.LogFieldPerfumeID, perfumeID),
		slog.Int64(observability.LogFieldDuration, requestContext.DurationMs()),
	)
	return c.JSON(http.StatusCreated, convertReview(created))
}
