package entity

// GenRecord is one entry in the generation history.
type GenRecord struct {
	Kind  IDKind
	Value string
	At    int64 // unix ms at generation time
}
