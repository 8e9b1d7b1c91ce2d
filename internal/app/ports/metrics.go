package ports

// DecisionMetrics counts what the engine decided, keyed by operating mode.
// RecordLogFailure tracks decision-log writes that were dropped; a failing
// log never fails a turn.
type DecisionMetrics interface {
	RecordCombat(mode string)
	RecordNegotiate(proposals int)
	RecordLogFailure()
}
