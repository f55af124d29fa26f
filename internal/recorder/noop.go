package recorder

// NoopRecorder is used when no database is configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordScan(_ *ScanEvent) error         { return nil }
func (n *NoopRecorder) RecordSignal(_ *SignalEvent) error     { return nil }
func (n *NoopRecorder) RecordTrade(_ *TradeEvent) error       { return nil }
func (n *NoopRecorder) RecordSnapshot(_ *SnapshotEvent) error { return nil }
func (n *NoopRecorder) Close() error                          { return nil }
