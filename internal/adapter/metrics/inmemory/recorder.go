package inmemory

import "sync"

// Snapshot is the KPI view served at /ops/kpi.
type Snapshot struct {
	DecisionTotal  uint64            `json:"decision_total"`
	CombatTotal    uint64            `json:"combat_total"`
	NegotiateTotal uint64            `json:"negotiate_total"`
	ProposalTotal  uint64            `json:"proposal_total"`
	LogFailures    uint64            `json:"log_failures"`
	ByMode         map[string]uint64 `json:"by_mode"`
}

type Recorder struct {
	mu          sync.Mutex
	combats     uint64
	negotiates  uint64
	proposals   uint64
	logFailures uint64
	byMode      map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{byMode: map[string]uint64{}}
}

func (r *Recorder) RecordCombat(mode string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.combats++
	r.byMode[mode]++
}

func (r *Recorder) RecordNegotiate(proposals int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.negotiates++
	if proposals > 0 {
		r.proposals += uint64(proposals)
	}
}

func (r *Recorder) RecordLogFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logFailures++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		CombatTotal:    r.combats,
		NegotiateTotal: r.negotiates,
		DecisionTotal:  r.combats + r.negotiates,
		ProposalTotal:  r.proposals,
		LogFailures:    r.logFailures,
		ByMode:         make(map[string]uint64, len(r.byMode)),
	}
	for k, v := range r.byMode {
		out.ByMode[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
