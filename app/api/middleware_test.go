package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/joefazee/travelsheet/internal/logger"
	"github.com/joefazee/travelsheet/internal/security"
)

func visitorRouter(maker security.Maker) (*gin.Engine, *uuid.UUID) {
	gin.SetMode(gin.TestMode)
	seen := new(uuid.UUID)
	r := gin.New()
	r.Use(VisitorMiddleware(maker, time.Hour, logger.NewNullLogger()))
	r.GET("/", func(c *gin.Context) {
		id, _ := VisitorID(c)
		*seen = id
		c.Status(http.StatusNoContent)
	})
	return r, seen
}

func TestVisitorMiddleware(t *testing.T) {
	t.Run("issues a token for a new visitor", func(t *testing.T) {
		maker, err := security.NewPasetoMaker("12345678901234567890123456789012")
		require.NoError(t, err)
		r, seen := visitorRouter(maker)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
		token := w.Header().Get(VisitorTokenHeader)
		require.NotEmpty(t, token)

		payload, err := maker.VerifyToken(token)
		require.NoError(t, err)
		assert.Equal(t, payload.VisitorID, *seen)
	})

	t.Run("keeps the visitor of a valid token", func(t *testing.T) {
		maker, err := security.NewPasetoMaker("12345678901234567890123456789012")
		require.NoError(t, err)
		r, seen := visitorRouter(maker)

		visitor := uuid.New()
		token, _, err := maker.CreateToken(visitor, time.Hour)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(VisitorTokenHeader, token)
		r.ServeHTTP(w, req)

		assert.Equal(t, visitor, *seen)
		assert.Equal(t, token, w.Header().Get(VisitorTokenHeader))
	})

	t.Run("replaces an invalid token", func(t *testing.T) {
		maker, err := security.NewPasetoMaker("12345678901234567890123456789012")
		require.NoError(t, err)
		r, seen := visitorRouter(maker)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(VisitorTokenHeader, "garbage")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.NotEqual(t, uuid.Nil, *seen)
		assert.NotEqual(t, "garbage", w.Header().Get(VisitorTokenHeader))
	})

	t.Run("fails when no token can be issued", func(t *testing.T) {
		maker := new(security.MockMaker)
		maker.On("CreateToken", mock.Anything, time.Hour).Return("", nil, assert.AnError)
		r, _ := visitorRouter(maker)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		maker.AssertExpectations(t)
	})
}

func TestVisitorID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := VisitorID(c)
	assert.False(t, ok)

	id := uuid.New()
	SetVisitorID(c, id)
	got, ok := VisitorID(c)
	assert.True(t, ok)
	assert.Equal(t, id, got)
}
