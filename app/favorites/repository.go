package favorites

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/joefazee/travelsheet/models"
)

// Repository implements Persistence using GORM
type Repository struct {
	db *gorm.DB
}

var _ Persistence = (*Repository)(nil)

// NewRepository creates a new favorites repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db: db,
	}
}

// Read returns the favorite codes of owner in ascending order
func (r *Repository) Read(ctx context.Context, owner uuid.UUID) ([]string, error) {
	codes := []string{}
	err := r.db.WithContext(ctx).
		Model(&models.Favorite{}).
		Where("owner_id = ?", owner).
		Order("code ASC").
		Pluck("code", &codes).Error
	if err != nil {
		return nil, fmt.Errorf("read favorites: %w", err)
	}
	return codes, nil
}

// Write replaces the favorites of owner with codes
func (r *Repository) Write(ctx context.Context, owner uuid.UUID, codes []string) error {
	rows := make([]models.Favorite, 0, len(codes))
	for _, code := range codes {
		fav := models.Favorite{OwnerID: owner, Code: code}
		if err := fav.Validate(); err != nil {
			return fmt.Errorf("favorite %q: %w", code, err)
		}
		rows = append(rows, fav)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("owner_id = ?", owner).Delete(&models.Favorite{}).Error; err != nil {
			return fmt.Errorf("clear favorites: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("write favorites: %w", err)
		}
		return nil
	})
}
