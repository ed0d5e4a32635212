package domain

// StateChange describes one cell mutation. The grid emits it synchronously
// on every SetState, including trial assignments made and reverted by
// solvers; observers render, they never feed back into the grid.
type StateChange struct {
	Row int       `json:"row"`
	Col int       `json:"col"`
	Old CellState `json:"old"`
	New CellState `json:"new"`
}

// Observer receives state changes. It runs on the solving goroutine and
// must not block it; buffer or drop on the consumer side.
type Observer func(StateChange)
