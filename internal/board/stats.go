package board

import (
	"math"

	"github.com/jaekwang-park/todo-board/internal/model"
)

type Stats struct {
	Total     int
	Completed int
	Active    int
	// CompletionRate is a whole percentage, 0 when there are no todos.
	CompletionRate int
}

func ComputeStats(todos []model.Todo) Stats {
	s := Stats{Total: len(todos)}
	for _, t := range todos {
		if t.Completed {
			s.Completed++
		}
	}
	s.Active = s.Total - s.Completed
	if s.Total > 0 {
		s.CompletionRate = int(math.Round(float64(s.Completed) * 100 / float64(s.Total)))
	}
	return s
}
