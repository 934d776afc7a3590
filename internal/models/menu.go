package models

import (
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Dish is a single menu entry. ID is assigned by the MenuStore and never changes.
type Dish struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Course      Course
}

// DishInput carries the caller-supplied fields of a new dish
type DishInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Course      Course
}

// Snapshot is an immutable view of the menu at one version.
// The backing slice is never written after the snapshot is published.
type Snapshot struct {
	dishes  []Dish
	version uint64
}

// Dishes returns a copy of all dishes in insertion order
func (s Snapshot) Dishes() []Dish {
	out := make([]Dish, len(s.dishes))
	copy(out, s.dishes)
	return out
}

func (s Snapshot) Len() int {
	return len(s.dishes)
}

func (s Snapshot) IsEmpty() bool {
	return len(s.dishes) == 0
}

// Version increases by one with every mutation
func (s Snapshot) Version() uint64 {
	return s.version
}

// ByCourse returns the dishes of one course, keeping their relative order
func (s Snapshot) ByCourse(course Course) []Dish {
	out := make([]Dish, 0, len(s.dishes))
	for _, dish := range s.dishes {
		if dish.Course == course {
			out = append(out, dish)
		}
	}
	return out
}

// AveragePrice returns the mean price of a course, or zero when it has no dishes
func (s Snapshot) AveragePrice(course Course) decimal.Decimal {
	total := decimal.Zero
	count := int64(0)
	for _, dish := range s.dishes {
		if dish.Course != course {
			continue
		}
		total = total.Add(dish.Price)
		count++
	}

	if count == 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(count))
}

// Find looks a dish up by ID
func (s Snapshot) Find(id string) (Dish, bool) {
	for _, dish := range s.dishes {
		if dish.ID == id {
			return dish, true
		}
	}
	return Dish{}, false
}

// Stats summarises the snapshot
func (s Snapshot) Stats() MenuStats {
	stats := MenuStats{
		Total:     len(s.dishes),
		PerCourse: make(map[Course]int, len(courseOrder)),
		Version:   s.version,
	}
	for _, course := range courseOrder {
		stats.PerCourse[course] = 0
	}
	for _, dish := range s.dishes {
		stats.PerCourse[dish.Course]++
	}
	return stats
}

// MenuStats contains counts used for status display and logging
type MenuStats struct {
	Total     int
	PerCourse map[Course]int
	Version   uint64
}

// SnapshotListener receives every new snapshot after a mutation
type SnapshotListener func(Snapshot)

// IDGenerator produces identifiers for new dishes
type IDGenerator func() string

// StoreOption configures a MenuStore
type StoreOption func(*MenuStore)

// WithIDGenerator replaces the default UUID generator
func WithIDGenerator(gen IDGenerator) StoreOption {
	return func(s *MenuStore) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// MenuStore is the sole owner of the menu. All mutation goes through AddDish
// and RemoveDish; readers only ever see published snapshots.
type MenuStore struct {
	mu        sync.RWMutex
	current   Snapshot
	newID     IDGenerator
	listeners map[uint64]SnapshotListener
	order     []uint64
	nextSubID uint64

	// delivery state, guarded by deliverMu
	deliverMu  sync.Mutex
	pending    []Snapshot
	delivering bool
	delivered  uint64
}

// NewMenuStore creates an empty menu
func NewMenuStore(opts ...StoreOption) *MenuStore {
	store := &MenuStore{
		newID:     uuid.NewString,
		listeners: make(map[uint64]SnapshotListener),
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

// AddDish appends a dish with a fresh ID. Input is stored as given; callers validate.
func (s *MenuStore) AddDish(in DishInput) Dish {
	s.mu.Lock()
	dish := Dish{
		ID:          s.uniqueIDLocked(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Course:      in.Course,
	}

	dishes := make([]Dish, len(s.current.dishes), len(s.current.dishes)+1)
	copy(dishes, s.current.dishes)
	dishes = append(dishes, dish)
	snapshot := s.publishLocked(dishes)
	s.mu.Unlock()

	s.notify(snapshot)
	return dish
}

// RemoveDish deletes the dish with the given ID. Unknown IDs are ignored and
// do not produce a new snapshot.
func (s *MenuStore) RemoveDish(id string) bool {
	s.mu.Lock()
	index := -1
	for i, dish := range s.current.dishes {
		if dish.ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		s.mu.Unlock()
		return false
	}

	dishes := make([]Dish, 0, len(s.current.dishes)-1)
	dishes = append(dishes, s.current.dishes[:index]...)
	dishes = append(dishes, s.current.dishes[index+1:]...)
	snapshot := s.publishLocked(dishes)
	s.mu.Unlock()

	s.notify(snapshot)
	return true
}

// AveragePrice returns the mean price of a course in the current menu
func (s *MenuStore) AveragePrice(course Course) decimal.Decimal {
	return s.Snapshot().AveragePrice(course)
}

// Snapshot returns the current immutable menu state
func (s *MenuStore) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Stats returns counts for the current menu
func (s *MenuStore) Stats() MenuStats {
	return s.Snapshot().Stats()
}

// Subscribe registers a listener called synchronously after every mutation.
// Listeners never see versions go backwards; with concurrent writers an
// intermediate version may be skipped. The returned function removes the listener.
func (s *MenuStore) Subscribe(listener SnapshotListener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.listeners[id] = listener
	s.order = append(s.order, id)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.listeners, id)
			for i, subID := range s.order {
				if subID == id {
					s.order = append(s.order[:i:i], s.order[i+1:]...)
					break
				}
			}
		})
	}
}

func (s *MenuStore) publishLocked(dishes []Dish) Snapshot {
	s.current = Snapshot{
		dishes:  dishes,
		version: s.current.version + 1,
	}
	return s.current
}

func (s *MenuStore) uniqueIDLocked() string {
	for {
		id := s.newID()
		if _, taken := s.current.Find(id); !taken {
			return id
		}
	}
}

// notify delivers snapshots one at a time in version order. A mutation made
// while listeners run, from a listener or another goroutine, is queued and
// delivered by the goroutine already delivering. Snapshots older than the
// last delivered one are dropped.
func (s *MenuStore) notify(snapshot Snapshot) {
	s.deliverMu.Lock()
	s.pending = append(s.pending, snapshot)
	if s.delivering {
		s.deliverMu.Unlock()
		return
	}
	s.delivering = true
	s.deliverMu.Unlock()

	drained := false
	defer func() {
		if drained {
			return
		}
		// a listener panicked; release delivery so later mutations still notify
		s.deliverMu.Lock()
		s.delivering = false
		s.pending = nil
		s.deliverMu.Unlock()
	}()

	for {
		next, ok := s.nextPending()
		if !ok {
			drained = true
			return
		}
		for _, listener := range s.currentListeners() {
			listener(next)
		}
	}
}

func (s *MenuStore) nextPending() (Snapshot, bool) {
	s.deliverMu.Lock()
	defer s.deliverMu.Unlock()

	for len(s.pending) > 0 {
		next := s.pending[0]
		s.pending = s.pending[1:]
		if next.version > s.delivered {
			s.delivered = next.version
			return next, true
		}
	}
	s.delivering = false
	return Snapshot{}, false
}

func (s *MenuStore) currentListeners() []SnapshotListener {
	s.mu.RLock()
	defer s.mu.RUnlock()

	listeners := make([]SnapshotListener, 0, len(s.order))
	for _, id := range s.order {
		listeners = append(listeners, s.listeners[id])
	}
	return listeners
}
