package board

import (
	"slices"
	"sync"
)

type OpKind string

const (
	OpCreate OpKind = "create"
	OpUpdate OpKind = "update"
	OpDelete OpKind = "delete"
	OpToggle OpKind = "toggle"
)

type OpState string

const (
	OpIdle    OpState = "idle"
	OpPending OpState = "pending"
)

type opKey struct {
	kind OpKind
	id   string
}

// Tracker records which mutations are in flight, per operation kind and
// entity id, and the message of the most recent failure. Create operations
// use the empty id. A pair is pending while its starts outnumber its
// completes.
type Tracker struct {
	mu       sync.Mutex
	inFlight map[opKey]int
	errKind  OpKind
	errMsg   string
}

func NewTracker() *Tracker {
	return &Tracker{inFlight: make(map[opKey]int)}
}

// Start marks an operation in flight. A failure left by an earlier
// operation of the same kind is cleared.
func (t *Tracker) Start(kind OpKind, id string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.inFlight[opKey{kind, id}]++
	if t.errMsg != "" && t.errKind == kind {
		t.errMsg = ""
	}
}

// Complete ends one in-flight occurrence of the operation. Completing an
// operation that is not pending is a no-op. A non-nil err becomes the
// tracker's error message.
func (t *Tracker) Complete(kind OpKind, id string, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	key := opKey{kind, id}
	if n := t.inFlight[key]; n > 1 {
		t.inFlight[key] = n - 1
	} else {
		delete(t.inFlight, key)
	}
	if err != nil {
		t.errKind = kind
		t.errMsg = err.Error()
	}
}

func (t *Tracker) IsPending(kind OpKind, id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.inFlight[opKey{kind, id}] > 0
}

func (t *Tracker) State(kind OpKind, id string) OpState {
	if t.IsPending(kind, id) {
		return OpPending
	}
	return OpIdle
}

// PendingIDs returns the sorted ids with an operation of kind in flight.
func (t *Tracker) PendingIDs(kind OpKind) []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	ids := []string{}
	for key := range t.inFlight {
		if key.kind == kind {
			ids = append(ids, key.id)
		}
	}
	slices.Sort(ids)
	return ids
}

// Err returns the message of the last failed operation, or "".
func (t *Tracker) Err() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.errMsg
}

func (t *Tracker) AcknowledgeError() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.errMsg = ""
	t.errKind = ""
}
