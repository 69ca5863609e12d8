package inventory

import (
	"context"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"Expronix-Backend/domain"
	"Expronix-Backend/entities"
	"Expronix-Backend/pkg/expiry"
)

type (
	// Persister is the storage port behind the store. Implementations
	// persist the full ordered snapshot after every mutation.
	Persister interface {
		SaveInventory(ctx context.Context, items []entities.FoodItem) error
		LoadInventory(ctx context.Context) ([]entities.FoodItem, error)
	}

	// ItemPatch is a shallow partial update. Nil fields are left untouched.
	// Status is deliberately absent: it is derived state the store owns.
	ItemPatch struct {
		Name        *string
		Category    *string
		ExpiryDate  *time.Time
		Location    *entities.StorageLocation
		Quantity    *string
		Price       *float64
		Image       *string
		Ingredients []string
	}

	// Store holds the process-wide food item list. Single logical writer;
	// the mutex makes mutations safe from any goroutine and reads hand out
	// copies so callers never observe a partially-updated collection.
	Store struct {
		mu        sync.Mutex
		items     []entities.FoodItem
		persister Persister
		now       func() time.Time
	}
)

type Option func(*Store)

// WithClock overrides the reference clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func NewStore(persister Persister, opts ...Option) *Store {
	s := &Store{
		persister: persister,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load pulls the persisted inventory. A read failure leaves the store empty;
// first-run seeding happens at migration time, when absent state is certain,
// so a transient error can never replace a real inventory with starter data.
func (s *Store) Load(ctx context.Context) {
	items, err := s.persister.LoadInventory(ctx)
	if err != nil {
		log.Printf("Error loading inventory: %v", err)
		items = nil
	}
	s.LoadItems(items)
}

// LoadItems replaces the collection with the given items in the given order,
// recomputing each status against the current time.
func (s *Store) LoadItems(items []entities.FoodItem) {
	now := s.now()
	fresh := make([]entities.FoodItem, len(items))
	copy(fresh, items)
	for i := range fresh {
		fresh[i].Status = expiry.Classify(fresh[i].ExpiryDate, now)
	}

	s.mu.Lock()
	s.items = fresh
	s.mu.Unlock()
}

// Add inserts the item at the head of the list (newest first), deriving its
// status and defaulting its ingredient list to the item name when empty.
func (s *Store) Add(ctx context.Context, item entities.FoodItem) (entities.FoodItem, error) {
	now := s.now()
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	if item.AddedDate.IsZero() {
		item.AddedDate = now
	}
	if len(item.Ingredients) == 0 {
		item.Ingredients = datatypes.NewJSONSlice([]string{item.Name})
	}
	item.Status = expiry.Classify(item.ExpiryDate, now)

	s.mu.Lock()
	s.items = append([]entities.FoodItem{item}, s.items...)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	return item, s.persister.SaveInventory(ctx, snapshot)
}

// Update applies a shallow merge of patch onto the stored item. When the
// expiry date changes the status is recomputed in the same step, so fields
// and status can never disagree. An empty patch leaves the item untouched.
func (s *Store) Update(ctx context.Context, id uuid.UUID, patch ItemPatch) (entities.FoodItem, error) {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return entities.FoodItem{}, domain.ErrFoodItemNotFound
	}

	item := s.items[idx]
	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Category != nil {
		item.Category = *patch.Category
	}
	if patch.Location != nil {
		item.Location = *patch.Location
	}
	if patch.Quantity != nil {
		item.Quantity = *patch.Quantity
	}
	if patch.Price != nil {
		item.Price = *patch.Price
	}
	if patch.Image != nil {
		item.Image = *patch.Image
	}
	if patch.Ingredients != nil {
		item.Ingredients = datatypes.NewJSONSlice(patch.Ingredients)
	}
	if patch.ExpiryDate != nil {
		item.ExpiryDate = *patch.ExpiryDate
		item.Status = expiry.Classify(item.ExpiryDate, s.now())
	}
	s.items[idx] = item
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	return item, s.persister.SaveInventory(ctx, snapshot)
}

// Remove deletes the item with the given id. Removing an unknown id is a
// no-op, not an error.
func (s *Store) Remove(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return nil
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	return s.persister.SaveInventory(ctx, snapshot)
}

// List returns a snapshot copy of the collection in store order.
func (s *Store) List() []entities.FoodItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Get looks up a single item by id.
func (s *Store) Get(id uuid.UUID) (entities.FoodItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexLocked(id)
	if idx < 0 {
		return entities.FoodItem{}, false
	}
	return s.items[idx], true
}

type RankedItem struct {
	entities.FoodItem
	Priority expiry.Priority
}

// Ranked returns all items ordered ascending by priority score, most urgent
// first. The sort is stable so equal scores keep store order, which is the
// contract the priority consumption list depends on.
func (s *Store) Ranked(referenceDate time.Time) []RankedItem {
	items := s.List()
	ranked := make([]RankedItem, 0, len(items))
	for _, item := range items {
		ranked = append(ranked, RankedItem{
			FoodItem: item,
			Priority: expiry.Score(item.ExpiryDate, referenceDate),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Priority.Score < ranked[j].Priority.Score
	})
	return ranked
}

// Urgent returns up to limit non-Safe items from the ranked list.
func (s *Store) Urgent(referenceDate time.Time, limit int) []RankedItem {
	urgent := make([]RankedItem, 0, limit)
	for _, r := range s.Ranked(referenceDate) {
		if r.Priority.Tier == expiry.TierSafe {
			continue
		}
		urgent = append(urgent, r)
		if len(urgent) == limit {
			break
		}
	}
	return urgent
}

func (s *Store) indexLocked(id uuid.UUID) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) snapshotLocked() []entities.FoodItem {
	out := make([]entities.FoodItem, len(s.items))
	copy(out, s.items)
	return out
}
