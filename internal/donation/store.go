package donation

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
// donation and volunteer writes together.
func (s *Store) WithTx(tx *gorm.DB) *Store {
	return &Store{db: tx}
}

func (s *Store) Migrate() error {
	return s.db.AutoMigrate(&Donation{})
}

func (s *Store) Create(ctx context.Context, d *Donation) error {
	if d.ID == "" {
		d.ID = shared.NewID("don_")
	}
	if d.Status == "" {
		d.Status = StatusPending
	}
	return s.db.WithContext(ctx).Create(d).Error
}

func (s *Store) GetByID(ctx context.Context, id string) (*Donation, error) {
	var d Donation
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.ErrNotFound
	}
	return &d, err
}

func (s *Store) List(ctx context.Context) ([]*Donation, error) {
	var donations []*Donation
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&donations).Error
	return donations, err
}

func (s *Store) ListByDonor(ctx context.Context, donorID string) ([]*Donation, error) {
	var donations []*Donation
	err := s.db.WithContext(ctx).Where("donor_id = ?", donorID).
		Order("created_at DESC").Find(&donations).Error
	return donations, err
}

func (s *Store) ListByIDs(ctx context.Context, ids []string) ([]*Donation, error) {
	if len(ids) == 0 {
		return []*Donation{}, nil
	}
	var donations []*Donation
	err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&donations).Error
	return donations, err
}

// ListPending returns every unmatched donation in creation order. The
// clustering job depends on this order for its first-fit pass.
func (s *Store) ListPending(ctx context.Context) ([]*Donation, error) {
	var donations []*Donation
	err := s.db.WithContext(ctx).Where("status = ?", StatusPending).
		Order("created_at ASC, id ASC").Find(&donations).Error
	return donations, err
}

// Save writes d back conditionally on its version. A concurrent writer
// having bumped the version surfaces as shared.ErrConflict.
func (s *Store) Save(ctx context.Context, d *Donation) error {
	current := d.Version
	d.Version = current + 1

	result := s.db.WithContext(ctx).Model(&Donation{}).
		Where("id = ? AND version = ?", d.ID, current).
		Select("status", "assigned_to", "proof_url", "version", "updated_at").
		Updates(d)
	if result.Error != nil {
		d.Version = current
		return result.Error
	}
	if result.RowsAffected == 0 {
		d.Version = current
		return shared.ErrConflict
	}
	return nil
}
