package favorites

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joefazee/travelsheet/app/api"
	"github.com/joefazee/travelsheet/internal/logger"
	"github.com/joefazee/travelsheet/models"
)

// Handler handles HTTP requests for favorites
type Handler struct {
	service Service
	log     logger.Logger
}

// NewHandler creates a new favorites handler
func NewHandler(service Service, log logger.Logger) *Handler {
	if log == nil {
		log = logger.NewNullLogger()
	}
	return &Handler{service: service, log: log}
}

// ListFavorites handles GET /favorites
func (h *Handler) ListFavorites(c *gin.Context) {
	visitorID, ok := api.VisitorID(c)
	if !ok {
		api.UnauthorizedResponse(c)
		return
	}

	resp, err := h.service.List(c.Request.Context(), visitorID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	api.SuccessResponse(c, http.StatusOK, "Favorites retrieved successfully", resp)
}

// ToggleFavorite handles POST /favorites/:code/toggle
func (h *Handler) ToggleFavorite(c *gin.Context) {
	visitorID, ok := api.VisitorID(c)
	if !ok {
		api.UnauthorizedResponse(c)
		return
	}

	resp, err := h.service.Toggle(c.Request.Context(), visitorID, c.Param("code"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	api.UpdatedResponse(c, "Favorite toggled successfully", resp)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidVisitorID):
		api.UnauthorizedResponse(c)
	case errors.Is(err, models.ErrInvalidCountryCode):
		api.ValidationErrorResponse(c, map[string]string{"code": err.Error()})
	case errors.Is(err, models.ErrRecordNotFound):
		api.NotFoundResponse(c, "Country")
	default:
		h.log.Error(err, map[string]interface{}{"path": c.FullPath()})
		api.InternalErrorResponse(c, "Failed to process favorites")
	}
}
