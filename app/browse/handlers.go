package browse

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/joefazee/travelsheet/app/api"
	"github.com/joefazee/travelsheet/internal/logger"
	"github.com/joefazee/travelsheet/internal/validator"
	"github.com/joefazee/travelsheet/models"
)

// Handler handles HTTP requests for browse sessions
type Handler struct {
	service Service
	log     logger.Logger
}

// NewHandler creates a new browse handler
func NewHandler(service Service, log logger.Logger) *Handler {
	if log == nil {
		log = logger.NewNullLogger()
	}
	return &Handler{service: service, log: log}
}

func (h *Handler) visitor(c *gin.Context) (uuid.UUID, bool) {
	id, ok := api.VisitorID(c)
	if !ok {
		api.UnauthorizedResponse(c)
	}
	return id, ok
}

func (h *Handler) respond(c *gin.Context, resp *StateResponse, err error) {
	if err != nil {
		h.handleError(c, err)
		return
	}
	api.SuccessResponse(c, http.StatusOK, "Browse state", resp)
}

// GetState handles GET /browse
func (h *Handler) GetState(c *gin.Context) {
	visitorID, ok := h.visitor(c)
	if !ok {
		return
	}
	resp, err := h.service.State(c.Request.Context(), visitorID)
	h.respond(c, resp, err)
}

// Select handles POST /browse/select/:code
func (h *Handler) Select(c *gin.Context) {
	visitorID, ok := h.visitor(c)
	if !ok {
		return
	}
	resp, err := h.service.Select(c.Request.Context(), visitorID, c.Param("code"))
	h.respond(c, resp, err)
}

// Deselect handles POST /browse/deselect
func (h *Handler) Deselect(c *gin.Context) {
	visitorID, ok := h.visitor(c)
	if !ok {
		return
	}
	resp, err := h.service.Deselect(c.Request.Context(), visitorID)
	h.respond(c, resp, err)
}

// Navigate handles POST /browse/navigate/:direction
func (h *Handler) Navigate(c *gin.Context) {
	visitorID, ok := h.visitor(c)
	if !ok {
		return
	}
	direction, err := ParseDirection(c.Param("direction"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	resp, err := h.service.Navigate(c.Request.Context(), visitorID, direction)
	h.respond(c, resp, err)
}

// Back handles POST /browse/back
func (h *Handler) Back(c *gin.Context) {
	visitorID, ok := h.visitor(c)
	if !ok {
		return
	}
	resp, err := h.service.Back(c.Request.Context(), visitorID)
	h.respond(c, resp, err)
}

// Forward handles POST /browse/forward
func (h *Handler) Forward(c *gin.Context) {
	visitorID, ok := h.visitor(c)
	if !ok {
		return
	}
	resp, err := h.service.Forward(c.Request.Context(), visitorID)
	h.respond(c, resp, err)
}

// SetSection handles PUT /browse/section/:id
func (h *Handler) SetSection(c *gin.Context) {
	visitorID, ok := h.visitor(c)
	if !ok {
		return
	}

	id := c.Param("id")
	v := validator.New()
	v.Check(validator.Matches(id, validator.SectionIDRgx), "id", "must be lowercase letters")
	if !v.Valid() {
		api.ValidationErrorResponse(c, v.Errors)
		return
	}

	resp, err := h.service.SetSection(c.Request.Context(), visitorID, id)
	h.respond(c, resp, err)
}

// OpenLocation handles GET /browse/location, starting a session from a deep link
func (h *Handler) OpenLocation(c *gin.Context) {
	visitorID, ok := h.visitor(c)
	if !ok {
		return
	}
	resp, err := h.service.OpenLocation(c.Request.Context(), visitorID, c.Request.URL.Query())
	h.respond(c, resp, err)
}

// ListSections handles GET /browse/sections
func (h *Handler) ListSections(c *gin.Context) {
	api.ListResponse(c, "Sections retrieved successfully", Sections, len(Sections))
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidVisitorID):
		api.UnauthorizedResponse(c)
	case errors.Is(err, models.ErrInvalidDirection):
		api.ValidationErrorResponse(c, map[string]string{"direction": err.Error()})
	case errors.Is(err, models.ErrInvalidSection):
		api.ValidationErrorResponse(c, map[string]string{"id": err.Error()})
	default:
		h.log.Error(err, map[string]interface{}{"path": c.FullPath()})
		api.InternalErrorResponse(c, "Failed to update browse session")
	}
}
