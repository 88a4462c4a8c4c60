package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"variantsudoku/internal/model"
	"variantsudoku/internal/puzzles"
	"variantsudoku/pkg/config"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, &config.Config{Port: "8080", FixturesFile: "fixtures.json"})
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthHandler(t *testing.T) {
	router := setupRouter()
	w := doRequest(t, router, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func emptyGivens(n int) [][]int {
	g := make([][]int, n)
	for y := range g {
		g[y] = make([]int, n)
	}
	return g
}

func classicBlocks(n, boxH, boxW int) *model.Blocks {
	horizontal := make([][]bool, n-1)
	for y := range horizontal {
		horizontal[y] = make([]bool, n)
		for x := range horizontal[y] {
			horizontal[y][x] = (y+1)%boxH == 0
		}
	}
	vertical := make([][]bool, n)
	for y := range vertical {
		vertical[y] = make([]bool, n-1)
		for x := range vertical[y] {
			vertical[y][x] = (x+1)%boxW == 0
		}
	}
	return &model.Blocks{Horizontal: horizontal, Vertical: vertical}
}

func TestFactsHandler_SatisfiablePuzzle(t *testing.T) {
	router := setupRouter()
	req := factsRequest{Puzzle: model.Puzzle{N: 4, GivenNumbers: emptyGivens(4), Blocks: classicBlocks(4, 2, 2)}}

	w := doRequest(t, router, http.MethodPost, "/api/facts", req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp factsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Satisfiable)
	require.Len(t, resp.Candidates, 4)
	for _, row := range resp.Candidates {
		for _, cands := range row {
			assert.Len(t, cands, 4)
		}
	}
}

func TestFactsHandler_UnsatisfiablePuzzle(t *testing.T) {
	router := setupRouter()
	givens := emptyGivens(4)
	givens[0][0] = 1
	givens[0][1] = 1
	req := factsRequest{Puzzle: model.Puzzle{N: 4, GivenNumbers: givens, Blocks: classicBlocks(4, 2, 2)}}

	w := doRequest(t, router, http.MethodPost, "/api/facts", req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp factsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Satisfiable)
	assert.Nil(t, resp.Decided)
}

func TestFactsHandler_MalformedPuzzleIsBadRequest(t *testing.T) {
	router := setupRouter()
	// N says 9 but the grid is shaped 4x4: Puzzle.Validate panics, and
	// solveGuarded must turn that into a 400 rather than crash the server.
	req := factsRequest{Puzzle: model.Puzzle{N: 9, GivenNumbers: emptyGivens(4)}}

	w := doRequest(t, router, http.MethodPost, "/api/facts", req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFactsHandler_InvalidJSONBody(t *testing.T) {
	router := setupRouter()
	req := httptest.NewRequest(http.MethodPost, "/api/facts", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFixturesHandlers_NoLoaderReturnsServiceUnavailable(t *testing.T) {
	puzzles.SetGlobal(nil)
	router := setupRouter()

	w := doRequest(t, router, http.MethodGet, "/api/fixtures", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = doRequest(t, router, http.MethodGet, "/api/fixtures/anything", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestFixturesHandlers_WithLoader(t *testing.T) {
	loader := puzzles.NewLoaderFromFixtures([]puzzles.Fixture{
		{Name: "classic-empty", Puzzle: model.Puzzle{N: 4, GivenNumbers: emptyGivens(4), Blocks: classicBlocks(4, 2, 2)}},
	})
	puzzles.SetGlobal(loader)
	defer puzzles.SetGlobal(nil)

	router := setupRouter()

	w := doRequest(t, router, http.MethodGet, "/api/fixtures", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var listBody map[string][]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listBody))
	assert.Equal(t, []string{"classic-empty"}, listBody["fixtures"])

	w = doRequest(t, router, http.MethodGet, "/api/fixtures/classic-empty", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var facts factsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &facts))
	assert.True(t, facts.Satisfiable)

	w = doRequest(t, router, http.MethodGet, "/api/fixtures/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
