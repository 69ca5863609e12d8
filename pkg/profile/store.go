package profile

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"Expronix-Backend/entities"
)

type (
	// Persister is the storage port behind the profile store.
	Persister interface {
		SaveProfile(ctx context.Context, profile entities.UserProfile) error
		LoadProfile(ctx context.Context) (entities.UserProfile, error)
	}

	// Patch is a top-level shallow merge. Nil fields are untouched; a
	// provided list or Settings block replaces the stored value wholesale.
	// Partial nested changes are the caller's job: read, merge, write back.
	Patch struct {
		Name             *string
		Email            *string
		Age              *int
		BloodGroup       *string
		EmergencyContact *string
		HouseholdSize    *int
		Photo            *string
		Allergies        []entities.Allergy
		HealthConditions []string
		FamilyMembers    []entities.FamilyMember
		Settings         *entities.UserSettings
	}

	// Store holds the single household profile. Reads return copies;
	// every update persists synchronously before returning.
	Store struct {
		mu        sync.Mutex
		profile   entities.UserProfile
		persister Persister
	}
)

func NewStore(persister Persister) *Store {
	return &Store{persister: persister}
}

// DefaultProfile is the first-run profile, settings included.
func DefaultProfile() entities.UserProfile {
	return entities.UserProfile{
		ID:               uuid.New(),
		Name:             "John Doe",
		Email:            "john@example.com",
		Age:              28,
		BloodGroup:       "O+",
		EmergencyContact: "+1 (555) 123-4567",
		HouseholdSize:    2,
		Allergies: datatypes.NewJSONSlice([]entities.Allergy{
			{Name: "Dairy", Severity: entities.SeveritySevere},
			{Name: "Peanuts", Severity: entities.SeverityModerate},
		}),
		HealthConditions: datatypes.NewJSONSlice([]string{"Diabetes"}),
		FamilyMembers:    datatypes.NewJSONSlice([]entities.FamilyMember{}),
		Settings:         entities.DefaultSettings(),
	}
}

// Load pulls the persisted profile, falling back to the first-run default
// when nothing usable is stored. The default is persisted immediately so
// later updates merge onto a durable base.
func (s *Store) Load(ctx context.Context) {
	loaded, err := s.persister.LoadProfile(ctx)
	if err != nil || loaded.ID == uuid.Nil {
		loaded = DefaultProfile()
		_ = s.persister.SaveProfile(ctx, loaded)
	}
	s.mu.Lock()
	s.profile = loaded
	s.mu.Unlock()
}

// Get returns a copy of the current profile.
func (s *Store) Get() entities.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyLocked()
}

// Update applies a shallow merge and persists before returning, so the last
// write is never lost to a process exit.
func (s *Store) Update(ctx context.Context, patch Patch) (entities.UserProfile, error) {
	s.mu.Lock()
	if patch.Name != nil {
		s.profile.Name = *patch.Name
	}
	if patch.Email != nil {
		s.profile.Email = *patch.Email
	}
	if patch.Age != nil {
		s.profile.Age = *patch.Age
	}
	if patch.BloodGroup != nil {
		s.profile.BloodGroup = *patch.BloodGroup
	}
	if patch.EmergencyContact != nil {
		s.profile.EmergencyContact = *patch.EmergencyContact
	}
	if patch.HouseholdSize != nil {
		s.profile.HouseholdSize = *patch.HouseholdSize
	}
	if patch.Photo != nil {
		s.profile.Photo = *patch.Photo
	}
	if patch.Allergies != nil {
		s.profile.Allergies = datatypes.NewJSONSlice(patch.Allergies)
	}
	if patch.HealthConditions != nil {
		s.profile.HealthConditions = datatypes.NewJSONSlice(patch.HealthConditions)
	}
	if patch.FamilyMembers != nil {
		members := make([]entities.FamilyMember, len(patch.FamilyMembers))
		copy(members, patch.FamilyMembers)
		for i := range members {
			if members[i].ID == "" {
				members[i].ID = uuid.NewString()
			}
		}
		s.profile.FamilyMembers = datatypes.NewJSONSlice(members)
	}
	if patch.Settings != nil {
		s.profile.Settings = *patch.Settings
	}
	updated := s.copyLocked()
	s.mu.Unlock()

	return updated, s.persister.SaveProfile(ctx, updated)
}

func (s *Store) copyLocked() entities.UserProfile {
	out := s.profile
	out.Allergies = datatypes.NewJSONSlice(append([]entities.Allergy(nil), s.profile.Allergies...))
	out.HealthConditions = datatypes.NewJSONSlice(append([]string(nil), s.profile.HealthConditions...))
	members := append([]entities.FamilyMember(nil), s.profile.FamilyMembers...)
	for i := range members {
		members[i].Allergies = append([]entities.Allergy(nil), members[i].Allergies...)
		members[i].HealthConditions = append([]string(nil), members[i].HealthConditions...)
	}
	out.FamilyMembers = datatypes.NewJSONSlice(members)
	return out
}
