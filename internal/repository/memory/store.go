// Package memory backs the repositories with process-local maps. All state
// is ephemeral and reset on restart; records returned to callers are always
// copies so shared state can only change through an explicit Update.
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bellezapura/salon-api/internal/model"
)

// Store holds every collection behind a single mutex. The original system
// was single-writer; the mutex only guards against the concurrency the HTTP
// layer introduces.
type Store struct {
	mu            sync.RWMutex
	users         map[uuid.UUID]*model.User
	services      map[uuid.UUID]*model.Service
	professionals map[uuid.UUID]*model.Professional
	bookings      map[uuid.UUID]*model.Booking
	sales         []*model.Sale
}

func NewStore() *Store {
	return &Store{
		users:         make(map[uuid.UUID]*model.User),
		services:      make(map[uuid.UUID]*model.Service),
		professionals: make(map[uuid.UUID]*model.Professional),
		bookings:      make(map[uuid.UUID]*model.Booking),
	}
}

// NewSeededStore returns a store populated with the demo fixtures.
func NewSeededStore() *Store {
	s := NewStore()
	Seed(s)
	return s
}

// sortByCreation gives List results a stable oldest-first order; map
// iteration alone would shuffle them between calls.
func sortByCreation[T any](items []T, at func(T) time.Time) {
	sort.Slice(items, func(i, j int) bool {
		return at(items[i]).Before(at(items[j]))
	})
}
