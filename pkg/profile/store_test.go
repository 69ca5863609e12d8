package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Expronix-Backend/entities"
)

type fakePersister struct {
	saved   []entities.UserProfile
	loaded  entities.UserProfile
	loadErr error
}

func (f *fakePersister) SaveProfile(_ context.Context, p entities.UserProfile) error {
	f.saved = append(f.saved, p)
	return nil
}

func (f *fakePersister) LoadProfile(_ context.Context) (entities.UserProfile, error) {
	return f.loaded, f.loadErr
}

func loadedStore(t *testing.T) (*Store, *fakePersister) {
	t.Helper()
	p := &fakePersister{loadErr: errors.New("missing state")}
	store := NewStore(p)
	store.Load(context.Background())
	return store, p
}

func TestLoadFallsBackToDefaultProfile(t *testing.T) {
	store, p := loadedStore(t)

	got := store.Get()
	assert.Equal(t, "John Doe", got.Name)
	assert.True(t, got.Settings.Notifications.ExpiryReminders)
	assert.Equal(t, 3, got.Settings.Notifications.ReminderTiming)
	assert.Len(t, got.Allergies, 2)
	require.Len(t, p.saved, 1, "default profile persisted on first run")
}

func TestLoadKeepsPersistedProfile(t *testing.T) {
	existing := DefaultProfile()
	existing.Name = "Jane"
	p := &fakePersister{loaded: existing}
	store := NewStore(p)

	store.Load(context.Background())

	assert.Equal(t, "Jane", store.Get().Name)
	assert.Empty(t, p.saved, "no rewrite when load succeeds")
}

func TestUpdateShallowMergesScalars(t *testing.T) {
	store, p := loadedStore(t)

	name := "Jane Roe"
	age := 31
	updated, err := store.Update(context.Background(), Patch{Name: &name, Age: &age})
	require.NoError(t, err)

	assert.Equal(t, "Jane Roe", updated.Name)
	assert.Equal(t, 31, updated.Age)
	assert.Equal(t, "john@example.com", updated.Email, "untouched fields survive")
	assert.Len(t, p.saved, 2, "every update persists")
}

func TestUpdateReplacesListsWholesale(t *testing.T) {
	store, _ := loadedStore(t)
	ctx := context.Background()

	_, err := store.Update(ctx, Patch{
		Allergies: []entities.Allergy{{Name: "Shellfish", Severity: entities.SeverityMild}},
	})
	require.NoError(t, err)

	got := store.Get()
	require.Len(t, got.Allergies, 1, "list replaced, not merged element-wise")
	assert.Equal(t, "Shellfish", got.Allergies[0].Name)
	assert.Len(t, got.HealthConditions, 1, "other lists untouched")
}

func TestUpdateReplacesSettingsWholesale(t *testing.T) {
	store, _ := loadedStore(t)

	settings := entities.DefaultSettings()
	settings.Appearance.DarkMode = true
	// Caller built the block from scratch; unmentioned sub-fields take the
	// zero values the caller gave them.
	settings.Notifications = entities.NotificationSettings{}

	updated, err := store.Update(context.Background(), Patch{Settings: &settings})
	require.NoError(t, err)

	assert.True(t, updated.Settings.Appearance.DarkMode)
	assert.False(t, updated.Settings.Notifications.ExpiryReminders, "nested block replaced wholesale")
}

func TestUpdateEmptyPatchChangesNothing(t *testing.T) {
	store, _ := loadedStore(t)
	before := store.Get()

	after, err := store.Update(context.Background(), Patch{})
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestFamilyMembersReadTransformWriteBack(t *testing.T) {
	store, _ := loadedStore(t)
	ctx := context.Background()

	// Add: caller appends to the current list and writes the whole list.
	current := store.Get().FamilyMembers
	updated, err := store.Update(ctx, Patch{
		FamilyMembers: append(current, entities.FamilyMember{Name: "Timmy", Age: 6, AlertsEnabled: true}),
	})
	require.NoError(t, err)
	require.Len(t, updated.FamilyMembers, 1)
	memberID := updated.FamilyMembers[0].ID
	assert.NotEmpty(t, memberID, "new members get a generated id")
	_, err = uuid.Parse(memberID)
	assert.NoError(t, err)

	// Edit: id stays stable for the member's lifetime.
	members := store.Get().FamilyMembers
	members[0].Age = 7
	updated, err = store.Update(ctx, Patch{FamilyMembers: members})
	require.NoError(t, err)
	assert.Equal(t, memberID, updated.FamilyMembers[0].ID)
	assert.Equal(t, 7, updated.FamilyMembers[0].Age)

	// Delete: write back the filtered list.
	updated, err = store.Update(ctx, Patch{FamilyMembers: []entities.FamilyMember{}})
	require.NoError(t, err)
	assert.Empty(t, updated.FamilyMembers)
}

func TestGetReturnsSnapshot(t *testing.T) {
	store, _ := loadedStore(t)

	got := store.Get()
	got.Allergies[0].Name = "mutated"

	assert.Equal(t, "Dairy", store.Get().Allergies[0].Name)
}

func TestGetDeepCopiesFamilyMembers(t *testing.T) {
	store, _ := loadedStore(t)

	_, err := store.Update(context.Background(), Patch{
		FamilyMembers: []entities.FamilyMember{{
			Name:             "Kid",
			Allergies:        []entities.Allergy{{Name: "Eggs", Severity: entities.SeverityMild}},
			HealthConditions: []string{"BP"},
		}},
	})
	require.NoError(t, err)

	got := store.Get()
	got.FamilyMembers[0].Allergies[0].Name = "mutated"
	got.FamilyMembers[0].HealthConditions[0] = "mutated"

	member := store.Get().FamilyMembers[0]
	assert.Equal(t, "Eggs", member.Allergies[0].Name)
	assert.Equal(t, "BP", member.HealthConditions[0])
}
