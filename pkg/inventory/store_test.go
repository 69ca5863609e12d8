package inventory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Expronix-Backend/domain"
	"Expronix-Backend/entities"
	"Expronix-Backend/pkg/expiry"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)

type fakePersister struct {
	saved   [][]entities.FoodItem
	loaded  []entities.FoodItem
	loadErr error
}

func (f *fakePersister) SaveInventory(_ context.Context, items []entities.FoodItem) error {
	f.saved = append(f.saved, items)
	return nil
}

func (f *fakePersister) LoadInventory(_ context.Context) ([]entities.FoodItem, error) {
	return f.loaded, f.loadErr
}

func newTestStore() (*Store, *fakePersister) {
	p := &fakePersister{}
	return NewStore(p, WithClock(func() time.Time { return testNow })), p
}

func testItem(name string, daysOut int) entities.FoodItem {
	return entities.FoodItem{
		Name:       name,
		Category:   "Other",
		ExpiryDate: testNow.AddDate(0, 0, daysOut),
		Location:   entities.LocationPantry,
		Quantity:   "1 unit",
	}
}

func TestAddDerivesStatusAndPrepends(t *testing.T) {
	store, p := newTestStore()
	ctx := context.Background()

	first, err := store.Add(ctx, testItem("Rice", 30))
	require.NoError(t, err)
	second, err := store.Add(ctx, testItem("Milk", 1))
	require.NoError(t, err)

	assert.Equal(t, entities.StatusFresh, first.Status)
	assert.Equal(t, entities.StatusExpiringSoon, second.Status)
	assert.NotEqual(t, uuid.Nil, first.ID)
	assert.Equal(t, testNow, first.AddedDate)

	items := store.List()
	require.Len(t, items, 2)
	assert.Equal(t, "Milk", items[0].Name, "newest item comes first")
	assert.Equal(t, "Rice", items[1].Name)

	assert.Len(t, p.saved, 2, "every mutation persists")
}

func TestAddDefaultsIngredientsToName(t *testing.T) {
	store, _ := newTestStore()

	added, err := store.Add(context.Background(), testItem("Butter", 5))
	require.NoError(t, err)
	assert.Equal(t, []string{"Butter"}, []string(added.Ingredients))
}

func TestUpdateShallowMerge(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	added, err := store.Add(ctx, testItem("Cheddar", 5))
	require.NoError(t, err)

	name := "Aged Cheddar"
	price := 9.90
	updated, err := store.Update(ctx, added.ID, ItemPatch{Name: &name, Price: &price})
	require.NoError(t, err)

	assert.Equal(t, "Aged Cheddar", updated.Name)
	assert.Equal(t, 9.90, updated.Price)
	assert.Equal(t, added.ExpiryDate, updated.ExpiryDate, "untouched fields survive")
	assert.Equal(t, added.Status, updated.Status)
}

func TestUpdateExpiryRecomputesStatusAtomically(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	added, err := store.Add(ctx, testItem("Yogurt", 10))
	require.NoError(t, err)
	assert.Equal(t, entities.StatusFresh, added.Status)

	pastDate := testNow.AddDate(0, 0, -2)
	updated, err := store.Update(ctx, added.ID, ItemPatch{ExpiryDate: &pastDate})
	require.NoError(t, err)

	assert.Equal(t, entities.StatusExpired, updated.Status)

	got, ok := store.Get(added.ID)
	require.True(t, ok)
	assert.Equal(t, entities.StatusExpired, got.Status)
}

func TestUpdateEmptyPatchIsIdempotent(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	added, err := store.Add(ctx, testItem("Pasta", 20))
	require.NoError(t, err)

	updated, err := store.Update(ctx, added.ID, ItemPatch{})
	require.NoError(t, err)
	assert.Equal(t, added, updated)
}

func TestUpdateUnknownID(t *testing.T) {
	store, _ := newTestStore()

	_, err := store.Update(context.Background(), uuid.New(), ItemPatch{})
	assert.ErrorIs(t, err, domain.ErrFoodItemNotFound)
}

func TestRemoveIsIdempotent(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	added, err := store.Add(ctx, testItem("Juice", 3))
	require.NoError(t, err)

	require.NoError(t, store.Remove(ctx, added.ID))
	assert.Empty(t, store.List())

	assert.NoError(t, store.Remove(ctx, added.ID), "second remove is a no-op")
	assert.NoError(t, store.Remove(ctx, uuid.New()))
}

func TestLoadItemsPreservesOrderAndRecomputesStatus(t *testing.T) {
	store, _ := newTestStore()

	a := testItem("A", -1)
	a.ID = uuid.New()
	a.Status = entities.StatusFresh // stale on purpose
	b := testItem("B", 8)
	b.ID = uuid.New()

	store.LoadItems([]entities.FoodItem{a, b})

	items := store.List()
	require.Len(t, items, 2)
	assert.Equal(t, "A", items[0].Name)
	assert.Equal(t, entities.StatusExpired, items[0].Status, "stale status corrected")
	assert.Equal(t, entities.StatusFresh, items[1].Status)
}

func TestLoadEmptyInventoryStaysEmpty(t *testing.T) {
	store, _ := newTestStore()

	store.Load(context.Background())

	assert.Empty(t, store.List())
}

func TestLoadReadFailureLeavesStoreEmpty(t *testing.T) {
	p := &fakePersister{loadErr: errors.New("connection refused")}
	store := NewStore(p, WithClock(func() time.Time { return testNow }))

	store.Load(context.Background())

	assert.Empty(t, store.List())
	assert.Empty(t, p.saved, "a failed read must not trigger a write")
}

func TestSeedItemsSpanUrgencyTiers(t *testing.T) {
	tiers := map[expiry.Tier]bool{}
	for _, item := range SeedItems(testNow) {
		tiers[expiry.Score(item.ExpiryDate, testNow).Tier] = true
	}

	assert.True(t, tiers[expiry.TierCritical])
	assert.True(t, tiers[expiry.TierNearExpiry])
	assert.True(t, tiers[expiry.TierSafe])
}

func TestListReturnsSnapshot(t *testing.T) {
	store, _ := newTestStore()

	added, err := store.Add(context.Background(), testItem("Bread", 2))
	require.NoError(t, err)

	items := store.List()
	items[0].Name = "mutated"

	got, ok := store.Get(added.ID)
	require.True(t, ok)
	assert.Equal(t, "Bread", got.Name)
}

func TestRankedOrdersByScoreStable(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	// Added in this order; store order is newest first.
	_, err := store.Add(ctx, testItem("Safe", 20))
	require.NoError(t, err)
	_, err = store.Add(ctx, testItem("Urgent A", 1))
	require.NoError(t, err)
	_, err = store.Add(ctx, testItem("Urgent B", 1))
	require.NoError(t, err)
	_, err = store.Add(ctx, testItem("Expired", -3))
	require.NoError(t, err)

	ranked := store.Ranked(testNow)
	require.Len(t, ranked, 4)
	assert.Equal(t, "Expired", ranked[0].Name)
	assert.Equal(t, 0, ranked[0].Priority.Score)
	// Equal scores keep store order: B was added after A so it sits first.
	assert.Equal(t, "Urgent B", ranked[1].Name)
	assert.Equal(t, "Urgent A", ranked[2].Name)
	assert.Equal(t, "Safe", ranked[3].Name)
	assert.Equal(t, expiry.TierSafe, ranked[3].Priority.Tier)
}

func TestUrgentExcludesSafeAndLimits(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	for _, d := range []int{30, -1, 0, 2, 5, 25} {
		_, err := store.Add(ctx, testItem("item", d))
		require.NoError(t, err)
	}

	urgent := store.Urgent(testNow, 3)
	require.Len(t, urgent, 3)
	for _, u := range urgent {
		assert.NotEqual(t, expiry.TierSafe, u.Priority.Tier)
	}
	assert.Equal(t, 0, urgent[0].Priority.Score)
}
