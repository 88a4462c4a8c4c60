// Package http is the thin out-of-core JSON facade §6 names: it adapts
// HTTP requests into driver.Solve calls and projects the result back to
// JSON. No solver logic lives here — only request/response plumbing.
package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"variantsudoku/internal/driver"
	"variantsudoku/internal/engine"
	"variantsudoku/internal/model"
	"variantsudoku/internal/puzzles"
	"variantsudoku/pkg/config"
	"variantsudoku/pkg/constants"
)

var cfg *config.Config

// RegisterRoutes wires every endpoint this server exposes onto r.
func RegisterRoutes(r *gin.Engine, c *config.Config) {
	cfg = c

	r.GET("/health", healthHandler)

	api := r.Group("/api")
	{
		api.POST("/facts", factsHandler)
		api.GET("/fixtures", listFixturesHandler)
		api.GET("/fixtures/:name", fixtureFactsHandler)
	}
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": constants.APIVersion,
	})
}

// factsRequest is the JSON body POST /api/facts expects.
type factsRequest struct {
	Puzzle model.Puzzle        `json:"puzzle"`
	Config engine.SolverConfig `json:"config"`
}

// factsResponse projects model.IrrefutableFacts to JSON, distinguishing
// an absent (UNSAT) result from a populated one.
type factsResponse struct {
	Satisfiable bool       `json:"satisfiable"`
	Decided     [][]int    `json:"decidedNumbers,omitempty"`
	Candidates  [][][]bool `json:"candidates,omitempty"`
}

func factsHandler(c *gin.Context) {
	var req factsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	facts, err := solveGuarded(c, &req.Puzzle, req.Config)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, toFactsResponse(facts))
}

func listFixturesHandler(c *gin.Context) {
	loader := puzzles.Global()
	if loader == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no fixtures loaded"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"fixtures": loader.Names()})
}

func fixtureFactsHandler(c *gin.Context) {
	loader := puzzles.Global()
	if loader == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no fixtures loaded"})
		return
	}

	name := c.Param("name")
	puzzle, ok := loader.Get(name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown fixture: " + name})
		return
	}

	facts, err := solveGuarded(c, &puzzle, engine.DefaultSolverConfig())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toFactsResponse(facts))
}

func toFactsResponse(facts *model.IrrefutableFacts) factsResponse {
	if facts == nil {
		return factsResponse{Satisfiable: false}
	}
	return factsResponse{Satisfiable: true, Decided: facts.DecidedNumbers, Candidates: facts.Candidates}
}

// solveGuarded calls driver.Solve, converting the panic Puzzle.Validate
// raises on malformed input into an ordinary error: HTTP request bodies
// are an untrusted boundary, unlike the core's own Go callers.
func solveGuarded(c *gin.Context, p *model.Puzzle, cfg engine.SolverConfig) (facts *model.IrrefutableFacts, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("facts: malformed puzzle: %v", r)
			err = errors.New("malformed puzzle")
		}
	}()
	return driver.Solve(c.Request.Context(), p, cfg)
}
