package tutorial

// StepRecord is one discrete instructional unit in the tutorial,
// addressable by an integer identifier. Identifiers are not guaranteed
// contiguous or unique across the collection.
type StepRecord struct {
	Step     int    `json:"step"`
	Guidance string `json:"guidance"`
}

// Library holds the step collection and transcript for one tutorial.
// It is built once at startup and never mutated afterwards, so it is
// safe to share across concurrent requests without synchronization.
type Library struct {
	steps      []StepRecord
	transcript string
}

// NewLibrary copies the given steps so later mutation of the caller's
// slice cannot leak into the library.
func NewLibrary(steps []StepRecord, transcript string) *Library {
	copied := make([]StepRecord, len(steps))
	copy(copied, steps)
	return &Library{
		steps:      copied,
		transcript: transcript,
	}
}

// Steps returns the step collection in load order. Callers must not
// modify the returned slice.
func (l *Library) Steps() []StepRecord {
	return l.steps
}

// Transcript returns the full transcript text, or "" if none was loaded.
func (l *Library) Transcript() string {
	return l.transcript
}
