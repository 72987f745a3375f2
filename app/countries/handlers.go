package countries

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/joefazee/travelsheet/app/api"
	"github.com/joefazee/travelsheet/internal/logger"
	"github.com/joefazee/travelsheet/internal/sanitizer"
	"github.com/joefazee/travelsheet/models"
)

// Handler handles HTTP requests for countries
type Handler struct {
	service   Service
	favorites FavoritesProvider
	sanitizer sanitizer.HTMLStripperer
	log       logger.Logger
}

// NewHandler creates a new country handler
func NewHandler(service Service, favorites FavoritesProvider, s sanitizer.HTMLStripperer, log logger.Logger) *Handler {
	if log == nil {
		log = logger.NewNullLogger()
	}
	return &Handler{
		service:   service,
		favorites: favorites,
		sanitizer: s,
		log:       log,
	}
}

// ListCountries handles GET /countries
func (h *Handler) ListCountries(c *gin.Context) {
	criteria := Criteria{
		SearchText:  c.Query("search"),
		Continent:   c.Query("continent"),
		SafetyLevel: c.Query("safety"),
	}
	if h.sanitizer != nil {
		criteria.SearchText = h.sanitizer.SearchText(criteria.SearchText)
	}
	if raw := c.Query("favorites"); raw != "" {
		only, err := strconv.ParseBool(raw)
		if err != nil {
			api.BadRequestResponse(c, map[string]string{"favorites": "must be a boolean"})
			return
		}
		criteria.FavoritesOnly = only
	}

	criteria = criteria.Normalize()
	if errs := criteria.Validate(); errs != nil {
		api.ValidationErrorResponse(c, errs)
		return
	}

	var favorites Favorites
	if criteria.FavoritesOnly && h.favorites != nil {
		if visitorID, ok := api.VisitorID(c); ok {
			set, err := h.favorites.FavoritesFor(c.Request.Context(), visitorID)
			if err != nil {
				h.log.Error(err, map[string]interface{}{"action": "load favorites", "visitor": visitorID.String()})
				api.InternalErrorResponse(c, "Failed to load favorites")
				return
			}
			favorites = set
		}
	}

	list, err := h.service.ListCountries(c.Request.Context(), criteria, favorites)
	if err != nil {
		api.InternalErrorResponse(c, "Failed to fetch countries")
		return
	}

	api.ListResponse(c, "Countries retrieved successfully", list, len(list))
}

// GetCountry handles GET /countries/:code
func (h *Handler) GetCountry(c *gin.Context) {
	country, err := h.service.GetCountry(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.handleLookupError(c, err)
		return
	}

	api.SuccessResponse(c, http.StatusOK, "Country retrieved successfully", country)
}

// GetNeighbors handles GET /countries/:code/neighbors
func (h *Handler) GetNeighbors(c *gin.Context) {
	neighbors, err := h.service.GetNeighbors(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.handleLookupError(c, err)
		return
	}

	api.SuccessResponse(c, http.StatusOK, "Neighbors retrieved successfully", neighbors)
}

// GetAliases handles GET /aliases/:code
func (h *Handler) GetAliases(c *gin.Context) {
	aliases, err := h.service.GetAliases(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.handleLookupError(c, err)
		return
	}

	api.ListResponse(c, "Aliases retrieved successfully", aliases, len(aliases))
}

func (h *Handler) handleLookupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidCountryCode):
		api.ValidationErrorResponse(c, map[string]string{"code": err.Error()})
	case errors.Is(err, models.ErrRecordNotFound), errors.Is(err, models.ErrCatalogNotLoaded):
		api.NotFoundResponse(c, "Country")
	default:
		h.log.Error(err, map[string]interface{}{"path": c.FullPath()})
		api.InternalErrorResponse(c, "Failed to fetch country")
	}
}
