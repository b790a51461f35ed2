package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mwindels/magnet-solver/shared/geom"
	"github.com/mwindels/magnet-solver/shared/magnet"
	"github.com/mwindels/magnet-solver/shared/scene"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	m, err := magnet.NewRectangle(1.0, 1.0, geom.Vector2{X: 0.0, Y: -0.5}, 0.0, 1.0, 90.0)
	require.NoError(t, err)

	svc := &service{scene: scene.New(m), workers: 1}
	router := gin.New()
	router.Use(requestLogger(zap.NewNop()), gin.Recovery())
	router.GET("/field", svc.handleField)
	router.POST("/grid", svc.handleGrid)
	return router
}

func TestHandleField(t *testing.T) {
	router := testRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/field?x=0&y=-0.5", nil)
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp sampleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.InDelta(t, 0.0, resp.Bx, 1e-12)
	assert.InDelta(t, 0.5, resp.By, 1e-12)
	assert.False(t, resp.Singular)
}

func TestHandleFieldRejectsBadCoordinates(t *testing.T) {
	router := testRouter(t)

	for _, query := range []string{"/field", "/field?x=1", "/field?x=abc&y=0"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, query, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "query %q", query)
	}
}

func TestHandleGrid(t *testing.T) {
	router := testRouter(t)

	body := `{"min": [-1.0, -1.0], "max": [1.0, 1.0], "nx": 3, "ny": 3}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/grid", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Nx      int              `json:"nx"`
		Ny      int              `json:"ny"`
		Samples []sampleResponse `json:"samples"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Nx)
	assert.Equal(t, 3, resp.Ny)
	require.Len(t, resp.Samples, 9)
	assert.Equal(t, -1.0, resp.Samples[0].X)
	assert.Equal(t, 1.0, resp.Samples[8].Y)
}

func TestHandleGridAcceptsZeroValuedBounds(t *testing.T) {
	router := testRouter(t)

	body := `{"min": [0, 0], "max": [1, 1], "nx": 2, "ny": 2}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/grid", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Samples []sampleResponse `json:"samples"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Samples, 4)
	assert.Equal(t, 0.0, resp.Samples[0].X)
	assert.Equal(t, 0.0, resp.Samples[0].Y)
}

func TestHandleGridRejectsBadRequests(t *testing.T) {
	router := testRouter(t)

	bodies := []string{
		`not json`,
		`{"min": [0, 0], "max": [1, 1]}`,
		`{"min": [1, 1], "max": [0, 0], "nx": 2, "ny": 2}`,
	}
	for _, body := range bodies {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/grid", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %q", body)
	}
}
