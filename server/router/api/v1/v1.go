package v1

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fragora/fragora/internal/profile"
	apierrors "github.com/fragora/fragora/server/internal/errors"
	"github.com/fragora/fragora/server/middleware"
	"github.com/fragora/fragora/server/service/preference"
	"github.com/fragora/fragora/server/service/recommend"
	"github.com/fragora/fragora/server/service/review"
	"github.com/fragora/fragora/store"
)

// APIV1Service wires the REST handlers to the domain services.
type APIV1Service struct {
	Profile *profile.Profile
	Store   *store.Store

	RecommendService  recommend.Service
	PreferenceService preference.Service
	ReviewService     review.Service

	// aiRateLimiter throttles the recommendation endpoints per client IP;
	// they are the only CPU-meaningful handlers.
	aiRateLimiter *middleware.RateLimiter
}

// NewAPIV1Service creates the v1 API service.
func NewAPIV1Service(profile *profile.Profile, st *store.Store) *APIV1Service {
	return &APIV1Service{
		Profile:           profile,
		Store:             st,
		RecommendService:  recommend.NewService(st),
		PreferenceService: preference.NewService(st),
		ReviewService:     review.NewService(st),
		aiRateLimiter:     middleware.NewRateLimiter(time.Second/10, 20),
	}
}

// RegisterRoutes registers all v1 routes on the given Echo instance.
func (s *APIV1Service) RegisterRoutes(e *echo.Echo) {
	apiGroup := e.Group("/api/v1")

	perfumeGroup := apiGroup.Group("/perfumes")
	perfumeGroup.GET("", s.listPerfumes)
	perfumeGroup.GET("/:id", s.getPerfume)
	perfumeGroup.GET("/:id/reviews", s.listPerfumeReviews)
	perfumeGroup.POST("/:id/reviews", s.addPerfumeReview)

	userGroup := apiGroup.Group("/users")
	userGroup.GET("/:userId/preferences", s.getUserPreferences)
	userGroup.POST("/:userId/preferences", s.updateUserPreference)

	aiGroup := apiGroup.Group("/ai", s.rateLimitMiddleware)
	aiGroup.POST("/chat", s.chatRecommendation)
	aiGroup.POST("/test", s.testRecommendation)
}

// rateLimitMiddleware rejects clients that exceed the AI endpoint budget.
func (s *APIV1Service) rateLimitMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !s.aiRateLimiter.Allow(c.RealIP()) {
			return serviceErrorJSON(c, apierrors.RateLimitExceeded("rate limit exceeded"))
		}
		return next(c)
	}
}

// errorResponse is the JSON error body shape shared by all handlers.
type errorResponse struct {
	Message string `json:"message"`
}

func errorJSON(c echo.Context, status int, message string) error {
	return c.JSON(status, &errorResponse{Message: message})
}

// serviceErrorJSON maps a ServiceError code to its HTTP status. Errors that
// are not ServiceError values get a generic 500 body so internals never leak.
func serviceErrorJSON(c echo.Context, err error) error {
	svcErr, ok := err.(*apierrors.ServiceError)
	if !ok {
		return errorJSON(c, http.StatusInternalServerError, "internal server error")
	}
	switch svcErr.Code {
	case apierrors.ErrCodeInvalidArgument:
		return errorJSON(c, http.StatusBadRequest, svcErr.Message)
	case apierrors.ErrCodeNotFound:
		return errorJSON(c, http.StatusNotFound, svcErr.Message)
	case apierrors.ErrCodeRateLimitExceeded:
		return errorJSON(c, http.StatusTooManyRequests, svcErr.Message)
	default:
		return errorJSON(c, http.StatusInternalServerError, svcErr.Message)
	}
}
