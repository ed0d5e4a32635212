// Package httpadapter exposes the core as a JSON API. It never reveals a
// puzzle's hidden assignment: responses carry values, targets, and cell
// states only.
package httpadapter

import (
	"errors"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"svw.info/sumplete/internal/domain"
	"svw.info/sumplete/internal/ports"
	"svw.info/sumplete/internal/solver"
	"svw.info/sumplete/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(r *gin.Engine) {
	api := r.Group("/api")
	api.POST("/puzzles", h.handleGenerate)
	api.GET("/puzzles", h.handleList)
	api.GET("/puzzles/:id", h.handleGet)
	api.POST("/puzzles/:id/solve", h.handleSolveStored)
	api.POST("/puzzles/:id/hint", h.handleHint)
	api.POST("/solve", h.handleSolveAdHoc)
	api.GET("/puzzles/:id/watch", h.handleWatch)
	api.GET("/solvers", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"solvers": solver.Names()})
	})
}

// puzzleView is a Puzzle without its hidden solution.
type puzzleView struct {
	ID         string  `json:"id"`
	Seed       int64   `json:"seed,omitempty"`
	Size       int     `json:"size"`
	Values     [][]int `json:"values"`
	RowTargets []int   `json:"rowTargets"`
	ColTargets []int   `json:"colTargets"`
	CreatedAt  int64   `json:"createdAt,omitempty"`
	Name       string  `json:"name,omitempty"`
}

func viewOf(p *domain.Puzzle) puzzleView {
	return puzzleView{
		ID:         p.ID,
		Seed:       p.Seed,
		Size:       p.Size,
		Values:     p.Values,
		RowTargets: p.RowTargets,
		ColTargets: p.ColTargets,
		CreatedAt:  p.CreatedAt,
		Name:       p.Name,
	}
}

// ---- Generate ----

type generateReq struct {
	Size                 int     `json:"size" binding:"omitempty,gte=1,lte=32"`
	MinValue             int     `json:"minValue" binding:"omitempty,gte=1"`
	MaxValue             int     `json:"maxValue" binding:"omitempty,gtefield=MinValue"`
	InclusionProbability float64 `json:"inclusionProbability" binding:"omitempty,gt=0,lte=1"`
	Seed                 int64   `json:"seed"`
	Name                 string  `json:"name"`
}

func (h *Handler) handleGenerate(c *gin.Context) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	spec := domain.GenerateSpec{
		Size:                 req.Size,
		MinValue:             req.MinValue,
		MaxValue:             req.MaxValue,
		InclusionProbability: req.InclusionProbability,
		Seed:                 req.Seed,
	}
	p, err := h.UC.Generate(c.Request.Context(), spec)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	p.Name = req.Name
	if err := h.UC.Save(c.Request.Context(), p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, viewOf(p))
}

// ---- List / Get ----

func (h *Handler) handleList(c *gin.Context) {
	metas, err := h.UC.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"puzzles": metas})
}

func (h *Handler) handleGet(c *gin.Context) {
	p, err := h.UC.Load(c.Request.Context(), c.Param("id"))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, os.ErrNotExist) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, viewOf(p))
}

// ---- Solve ----

type solveReq struct {
	Solver string `json:"solver" binding:"omitempty"`
	Seed   int64  `json:"seed"`
}

type solveResp struct {
	Solved     bool                 `json:"solved"`
	Moves      int                  `json:"moves"`
	DurationMs int64                `json:"durationMs"`
	States     [][]domain.CellState `json:"states"`
	Error      string               `json:"error,omitempty"`
}

func (h *Handler) handleSolveStored(c *gin.Context) {
	p, err := h.UC.Load(c.Request.Context(), c.Param("id"))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, os.ErrNotExist) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	var req solveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.solveWith(c, p, req.Solver, req.Seed)
}

type adHocSolveReq struct {
	Solver     string  `json:"solver"`
	Seed       int64   `json:"seed"`
	Values     [][]int `json:"values" binding:"required"`
	RowTargets []int   `json:"rowTargets" binding:"required"`
	ColTargets []int   `json:"colTargets" binding:"required"`
}

// handleSolveAdHoc accepts an externally supplied puzzle. Unlike the
// generator's output, these targets may be unsatisfiable.
func (h *Handler) handleSolveAdHoc(c *gin.Context) {
	var req adHocSolveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p := &domain.Puzzle{
		Size:       len(req.Values),
		Values:     req.Values,
		RowTargets: req.RowTargets,
		ColTargets: req.ColTargets,
	}
	h.solveWith(c, p, req.Solver, req.Seed)
}

func (h *Handler) solveWith(c *gin.Context, p *domain.Puzzle, name string, seed int64) {
	grid, err := domain.NewGrid(p)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	strat, err := buildStrategy(name, seed)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := usecase.SolveGrid(c.Request.Context(), strat, grid)
	resp := solveResp{
		Solved:     res.Solved,
		Moves:      res.Moves,
		DurationMs: res.Duration.Milliseconds(),
		States:     grid.States(),
	}
	switch {
	case err == nil:
		c.JSON(http.StatusOK, resp)
	case errors.Is(err, solver.ErrNoSolution), errors.Is(err, solver.ErrBudgetExhausted):
		resp.Error = err.Error()
		c.JSON(http.StatusUnprocessableEntity, resp)
	default:
		resp.Error = err.Error()
		c.JSON(http.StatusInternalServerError, resp)
	}
}

func buildStrategy(name string, seed int64) (ports.Strategy, error) {
	if name == "" {
		name = solver.NameBacktrackingLCV
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return solver.New(name, rand.New(rand.NewSource(seed)))
}

// ---- Hint ----

type hintReq struct {
	States [][]domain.CellState `json:"states"`
}

func (h *Handler) handleHint(c *gin.Context) {
	p, err := h.UC.Load(c.Request.Context(), c.Param("id"))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, os.ErrNotExist) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	var req hintReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	grid, err := domain.NewGrid(p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	for r := range req.States {
		for col := range req.States[r] {
			if err := grid.SetState(r, col, req.States[r][col]); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
		}
	}
	hint, found := h.UC.Hint(grid)
	c.JSON(http.StatusOK, gin.H{"found": found, "hint": hint})
}
