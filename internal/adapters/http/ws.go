package httpadapter

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"svw.info/sumplete/internal/domain"
	"svw.info/sumplete/internal/ports"
	"svw.info/sumplete/internal/usecase"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// eventBuffer bounds the in-flight state changes per watcher. The
// observer runs on the solving goroutine and must not block it, so
// events beyond the buffer are dropped and counted.
const eventBuffer = 4096

type watchFrame struct {
	Type    string              `json:"type"` // "event" | "result" | "error"
	Event   *domain.StateChange `json:"event,omitempty"`
	Solved  bool                `json:"solved,omitempty"`
	Moves   int                 `json:"moves,omitempty"`
	Dropped int                 `json:"dropped,omitempty"`
	Error   string              `json:"error,omitempty"`
}

// handleWatch streams every cell state change while the chosen solver
// runs against a stored puzzle, followed by one result frame.
func (h *Handler) handleWatch(c *gin.Context) {
	p, err := h.UC.Load(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	seed, _ := strconv.ParseInt(c.Query("seed"), 10, 64)
	strat, err := buildStrategy(c.Query("solver"), seed)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	grid, err := domain.NewGrid(p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.Error("websocket upgrade failed", "err", err)
		return
	}
	defer ws.Close()

	events := make(chan domain.StateChange, eventBuffer)
	dropped := 0
	grid.Subscribe(func(ev domain.StateChange) {
		select {
		case events <- ev:
		default:
			dropped++
		}
	})

	type outcome struct {
		res ports.Result
		err error
	}
	doneCh := make(chan outcome, 1)
	go func() {
		res, err := usecase.SolveGrid(c.Request.Context(), strat, grid)
		close(events)
		doneCh <- outcome{res, err}
	}()

	for ev := range events {
		ev := ev
		if err := ws.WriteJSON(watchFrame{Type: "event", Event: &ev}); err != nil {
			slog.Info("watcher disconnected", "err", err)
			// keep draining so the solver goroutine finishes
			for range events {
			}
			<-doneCh
			return
		}
	}

	out := <-doneCh
	frame := watchFrame{
		Type:    "result",
		Solved:  out.res.Solved,
		Moves:   out.res.Moves,
		Dropped: dropped,
	}
	if out.err != nil {
		frame.Error = out.err.Error()
	}
	_ = ws.WriteJSON(frame)
}
