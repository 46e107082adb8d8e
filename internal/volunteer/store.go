package volunteer

import (
	"context"
	"errors"

	"github.com/foodbridge/backend/internal/shared"
	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// WithTx returns a store bound to tx so a lifecycle transition can commit its
// volunteer and donation writes together.
func (s *Store) WithTx(tx *gorm.DB) *Store {
	return &Store{db: tx}
}

func (s *Store) Migrate() error {
	return s.db.AutoMigrate(&Volunteer{})
}

func (s *Store) Create(ctx context.Context, v *Volunteer) error {
	if v.ID == "" {
		v.ID = shared.NewID("vol_")
	}
	return s.db.WithContext(ctx).Create(v).Error
}

func (s *Store) GetByID(ctx context.Context, id string) (*Volunteer, error) {
	var v Volunteer
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&v).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.ErrNotFound
	}
	return &v, err
}

func (s *Store) GetByUserID(ctx context.Context, userID string) (*Volunteer, error) {
	var v Volunteer
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&v).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.ErrNotFound
	}
	return &v, err
}

// ListAvailable returns every available volunteer whose ID is not in
// excluded, in creation order. The order is the selection tie-break, so it
// must stay deterministic.
func (s *Store) ListAvailable(ctx context.Context, excluded []string) ([]*Volunteer, error) {
	var volunteers []*Volunteer
	q := s.db.WithContext(ctx).Where("available = ?", true)
	if len(excluded) > 0 {
		q = q.Where("id NOT IN ?", excluded)
	}
	err := q.Order("created_at ASC, id ASC").Find(&volunteers).Error
	return volunteers, err
}

// Save writes v back conditionally on its version. A concurrent writer
// having bumped the version surfaces as shared.ErrConflict.
func (s *Store) Save(ctx context.Context, v *Volunteer) error {
	current := v.Version
	v.Version = current + 1

	result := s.db.WithContext(ctx).Model(&Volunteer{}).
		Where("id = ? AND version = ?", v.ID, current).
		Select("lat", "lon", "available", "assigned", "accepted", "completed", "version", "updated_at").
		Updates(v)
	if result.Error != nil {
		v.Version = current
		return result.Error
	}
	if result.RowsAffected == 0 {
		v.Version = current
		return shared.ErrConflict
	}
	return nil
}

func (s *Store) SetAvailability(ctx context.Context, id string, available bool) error {
	result := s.db.WithContext(ctx).Model(&Volunteer{}).Where("id = ?", id).
		Updates(map[string]any{
			"available": available,
			"version":   gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (s *Store) UpdateLocation(ctx context.Context, id string, lat, lon float64) error {
	result := s.db.WithContext(ctx).Model(&Volunteer{}).Where("id = ?", id).
		Updates(map[string]any{
			"lat":     lat,
			"lon":     lon,
			"version": gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
