package entity

// IDGeneratedEvent is published for every identifier the module mints. The
// audit consumer records it into the history store; EventID deduplicates
// redeliveries.
type IDGeneratedEvent struct {
	EventID string
	Kind    IDKind
	Value   string
	At      int64
}
