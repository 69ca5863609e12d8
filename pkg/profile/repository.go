package profile

import (
	"context"

	"gorm.io/gorm"

	"Expronix-Backend/entities"
)

type repository struct {
	db *gorm.DB
}

// NewRepository returns a gorm-backed Persister holding a single profile row.
func NewRepository(db *gorm.DB) Persister {
	return &repository{db: db}
}

func (r *repository) SaveProfile(ctx context.Context, profile entities.UserProfile) error {
	return r.db.WithContext(ctx).Save(&profile).Error
}

func (r *repository) LoadProfile(ctx context.Context) (entities.UserProfile, error) {
	var profile entities.UserProfile
	if err := r.db.WithContext(ctx).First(&profile).Error; err != nil {
		return entities.UserProfile{}, err
	}
	return profile, nil
}
