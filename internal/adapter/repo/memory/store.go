package memory

import (
	"sync"

	"towerwars/internal/app/ports"
)

// Store is the process-local backing for all memory repos. It exists so the
// agent can run without a database: the decision log then lives only as long
// as the process.
type Store struct {
	mu    sync.RWMutex
	turns map[int][]ports.TurnRecord
}

func NewStore() *Store {
	return &Store{turns: make(map[int][]ports.TurnRecord)}
}
