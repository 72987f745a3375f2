package countries

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/joefazee/travelsheet/app/api"
	"github.com/joefazee/travelsheet/internal/logger"
	"github.com/joefazee/travelsheet/internal/sanitizer"
)

type mockFavoritesProvider struct {
	mock.Mock
}

func (m *mockFavoritesProvider) FavoritesFor(ctx context.Context, visitorID uuid.UUID) (Favorites, error) {
	args := m.Called(ctx, visitorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(Favorites), args.Error(1)
}

type listEnvelope struct {
	Success bool              `json:"success"`
	Data    []CountryResponse `json:"data"`
	Meta    api.ListMeta      `json:"meta"`
	Error   *api.ErrorInfo    `json:"error"`
}

func setupRouter(t *testing.T, favorites FavoritesProvider, visitor uuid.UUID) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		if visitor != uuid.Nil {
			api.SetVisitorID(c, visitor)
		}
		c.Next()
	})

	Init(r.Group("/api/v1"), Dependencies{
		Catalog:   fixtureCatalog(t),
		Favorites: favorites,
		Sanitizer: sanitizer.NewHTMLStripper(),
		Logger:    logger.NewNullLogger(),
	})
	return r
}

func doGet(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHandler_ListCountries(t *testing.T) {
	r := setupRouter(t, nil, uuid.Nil)

	t.Run("full catalog in sorted order", func(t *testing.T) {
		w := doGet(r, "/api/v1/countries")
		require.Equal(t, http.StatusOK, w.Code)

		var body listEnvelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Equal(t, 6, body.Meta.Count)

		codes := make([]string, len(body.Data))
		for i, c := range body.Data {
			codes[i] = c.Code
		}
		assert.Equal(t, []string{"FR", "LV", "MT", "DE", "PL", "US"}, codes)
	})

	t.Run("search with markup is sanitized", func(t *testing.T) {
		w := doGet(r, "/api/v1/countries?search=%3Cb%3Epol%3C%2Fb%3E")
		require.Equal(t, http.StatusOK, w.Code)

		var body listEnvelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Len(t, body.Data, 1)
		assert.Equal(t, "Polska", body.Data[0].LocalizedName)
	})

	t.Run("search keeps inner spacing", func(t *testing.T) {
		w := doGet(r, "/api/v1/countries?search=stany%20%20zjednoczone")
		require.Equal(t, http.StatusOK, w.Code)

		var body listEnvelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Empty(t, body.Data)
	})

	t.Run("search too long", func(t *testing.T) {
		w := doGet(r, "/api/v1/countries?search="+strings.Repeat("a", MaxSearchRunes+1))
		require.Equal(t, http.StatusBadRequest, w.Code)

		var body listEnvelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.NotNil(t, body.Error)
		assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	})

	t.Run("filters combine", func(t *testing.T) {
		w := doGet(r, "/api/v1/countries?continent=Europe&safety=medium")
		var body listEnvelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Len(t, body.Data, 2)
		assert.Equal(t, "FR", body.Data[0].Code)
		assert.Equal(t, "LV", body.Data[1].Code)
	})

	t.Run("invalid continent", func(t *testing.T) {
		w := doGet(r, "/api/v1/countries?continent=Atlantis")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid favorites flag", func(t *testing.T) {
		w := doGet(r, "/api/v1/countries?favorites=maybe")
		require.Equal(t, http.StatusBadRequest, w.Code)
		var body listEnvelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.NotNil(t, body.Error)
		assert.Equal(t, "BAD_REQUEST", body.Error.Code)
	})

	t.Run("favorites only without a visitor is empty", func(t *testing.T) {
		w := doGet(r, "/api/v1/countries?favorites=true")
		require.Equal(t, http.StatusOK, w.Code)
		var body listEnvelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Empty(t, body.Data)
	})
}

func TestHandler_ListCountries_Favorites(t *testing.T) {
	visitor := uuid.New()
	provider := new(mockFavoritesProvider)
	provider.On("FavoritesFor", mock.Anything, visitor).Return(favoriteSet{"US": true, "PL": true}, nil)

	r := setupRouter(t, provider, visitor)
	w := doGet(r, "/api/v1/countries?favorites=true")
	require.Equal(t, http.StatusOK, w.Code)

	var body listEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 2)
	assert.Equal(t, "PL", body.Data[0].Code)
	assert.Equal(t, "US", body.Data[1].Code)
	provider.AssertExpectations(t)
}

func TestHandler_ListCountries_FavoritesError(t *testing.T) {
	visitor := uuid.New()
	provider := new(mockFavoritesProvider)
	provider.On("FavoritesFor", mock.Anything, visitor).Return(nil, assert.AnError)

	r := setupRouter(t, provider, visitor)
	w := doGet(r, "/api/v1/countries?favorites=true")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandler_GetCountry(t *testing.T) {
	r := setupRouter(t, nil, uuid.Nil)

	t.Run("detail with derived values", func(t *testing.T) {
		w := doGet(r, "/api/v1/countries/de")
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Data CountryDetailResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Niemcy", body.Data.LocalizedName)
		assert.Equal(t, "Bezpiecznie", body.Data.SafetyLabel)
		assert.Equal(t, "Europa", body.Data.ContinentPL)
		assert.Equal(t, PlugsPartial, body.Data.Plugs.Status)
		assert.Equal(t, "Przykład: 10 PLN ≈ 2.33 EUR", body.Data.CurrencyExample)
		require.Len(t, body.Data.Embassies, 1)
		assert.Equal(t, "+49 30 223130", body.Data.Embassies[0].PhoneDisplay)
		assert.Equal(t, "+4930223130", body.Data.Embassies[0].PhoneE164)
		assert.Equal(t, "1 EUR = 4,30 zł", body.Data.RateLabel)
		assert.Contains(t, string(body.Data.Payload), `"embassies"`)
	})

	t.Run("unknown code", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, doGet(r, "/api/v1/countries/ZZ").Code)
	})

	t.Run("malformed code", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, doGet(r, "/api/v1/countries/POL").Code)
	})
}

func TestHandler_GetNeighbors(t *testing.T) {
	r := setupRouter(t, nil, uuid.Nil)

	tests := []struct {
		code, prev, next string
	}{
		{"DE", "MT", "PL"},
		{"FR", "US", "LV"},
		{"US", "PL", "FR"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			w := doGet(r, "/api/v1/countries/"+tt.code+"/neighbors")
			require.Equal(t, http.StatusOK, w.Code)

			var body struct {
				Data NeighborsResponse `json:"data"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Data.Current.Code)
			assert.Equal(t, tt.prev, body.Data.Previous.Code)
			assert.Equal(t, tt.next, body.Data.Next.Code)
		})
	}
}

func TestHandler_GetAliases(t *testing.T) {
	r := setupRouter(t, nil, uuid.Nil)

	w := doGet(r, "/api/v1/aliases/US")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data []string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body.Data, "USA")

	w = doGet(r, "/api/v1/aliases/FR")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Empty(t, body.Data)
}

func TestService_NotLoaded(t *testing.T) {
	svc := NewService(NewCatalog(nil))

	_, err := svc.GetCountry(context.Background(), "PL")
	assert.Error(t, err)

	list, err := svc.ListCountries(context.Background(), Criteria{}, nil)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestNeighbors(t *testing.T) {
	prev, next, ok := Neighbors([]string{"A", "B", "C"}, "A")
	assert.True(t, ok)
	assert.Equal(t, "C", prev)
	assert.Equal(t, "B", next)

	prev, next, ok = Neighbors([]string{"A"}, "A")
	assert.True(t, ok)
	assert.Equal(t, "A", prev)
	assert.Equal(t, "A", next)

	_, _, ok = Neighbors([]string{"A"}, "Z")
	assert.False(t, ok)
}
