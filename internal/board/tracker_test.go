package board_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jaekwang-park/todo-board/internal/board"
)

func TestTracker_PendingCount(t *testing.T) {
	type event struct {
		start bool
		want  bool
	}
	tests := []struct {
		name   string
		events []event
	}{
		{"start complete", []event{{true, true}, {false, false}}},
		{"double start", []event{{true, true}, {true, true}, {false, true}, {false, false}}},
		{"complete without start", []event{{false, false}, {true, true}, {false, false}}},
		{"excess completes clamp", []event{{true, true}, {false, false}, {false, false}, {true, true}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker := board.NewTracker()
			for i, e := range tt.events {
				if e.start {
					tracker.Start(board.OpUpdate, "todo-1")
				} else {
					tracker.Complete(board.OpUpdate, "todo-1", nil)
				}
				assert.Equal(t, e.want, tracker.IsPending(board.OpUpdate, "todo-1"), "after event %d", i)
			}
		})
	}
}

func TestTracker_KindsAreIndependent(t *testing.T) {
	tracker := board.NewTracker()

	tracker.Start(board.OpUpdate, "todo-1")
	tracker.Start(board.OpToggle, "todo-2")
	tracker.Start(board.OpCreate, "")

	assert.True(t, tracker.IsPending(board.OpUpdate, "todo-1"))
	assert.False(t, tracker.IsPending(board.OpDelete, "todo-1"))
	assert.False(t, tracker.IsPending(board.OpToggle, "todo-1"))
	assert.Equal(t, board.OpPending, tracker.State(board.OpCreate, ""))
	assert.Equal(t, board.OpIdle, tracker.State(board.OpCreate, "todo-1"))
	assert.Equal(t, []string{"todo-2"}, tracker.PendingIDs(board.OpToggle))
	assert.Empty(t, tracker.PendingIDs(board.OpDelete))
}

func TestTracker_Errors(t *testing.T) {
	tracker := board.NewTracker()

	tracker.Start(board.OpDelete, "todo-1")
	tracker.Complete(board.OpDelete, "todo-1", errors.New("todo not found"))
	assert.Equal(t, "todo not found", tracker.Err())
	assert.False(t, tracker.IsPending(board.OpDelete, "todo-1"))

	// A different kind leaves the error in place.
	tracker.Start(board.OpUpdate, "todo-2")
	assert.Equal(t, "todo not found", tracker.Err())

	// The next delete clears it when it starts.
	tracker.Start(board.OpDelete, "todo-3")
	assert.Empty(t, tracker.Err())

	tracker.Complete(board.OpDelete, "todo-3", errors.New("boom"))
	tracker.AcknowledgeError()
	assert.Empty(t, tracker.Err())

	tracker.Complete(board.OpUpdate, "todo-2", nil)
	assert.Empty(t, tracker.Err())
}

func TestTracker_Concurrent(t *testing.T) {
	tracker := board.NewTracker()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tracker.Start(board.OpToggle, "todo-1")
			tracker.Complete(board.OpToggle, "todo-1", nil)
		}()
	}
	wg.Wait()

	assert.False(t, tracker.IsPending(board.OpToggle, "todo-1"))
}
