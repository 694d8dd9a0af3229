package domain

// Snapshot is one immutable view of a trip and everything on it, pushed
// to feed subscribers after every committed mutation. Subscribers may
// observe any subset of intermediate snapshots; the only guarantee is
// that the latest one eventually reflects the latest committed write.
type Snapshot struct {
	Trip   Trip    `json:"trip"`
	Events []Event `json:"events"`
	Links  []Link  `json:"links"` // newest first
}
