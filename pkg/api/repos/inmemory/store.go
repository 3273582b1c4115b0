package inmemory

import (
	"sort"
	"sync"
	"time"

	"code.cloudfoundry.org/clock"
	"github.com/taskboard/taskboard/pkg/taskboard"
)

// Store keeps every record in memory behind a single lock. Ids are assigned
// from per-table counters starting at 1.
type Store struct {
	mu    sync.RWMutex
	clock clock.Clock

	users    map[int64]taskboard.User
	projects map[int64]taskboard.Project
	tasks    map[int64]taskboard.Task

	lastUserID    int64
	lastProjectID int64
	lastTaskID    int64
}

func NewStore(clk clock.Clock) *Store {
	return &Store{
		clock:    clk,
		users:    make(map[int64]taskboard.User),
		projects: make(map[int64]taskboard.Project),
		tasks:    make(map[int64]taskboard.Task),
	}
}

func (s *Store) now() time.Time {
	return s.clock.Now().UTC().Truncate(time.Microsecond)
}

func sortedIDs[T any](m map[int64]T) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}
