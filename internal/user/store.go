package user

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

func (s *Store) Migrate() error {
	return s.db.AutoMigrate(&User{})
}

func (s *Store) Create(ctx context.Context, u *User) error {
	if u.ID == "" {
		u.ID = shared.NewID("usr_")
	}
	if u.Role == "" {
		u.Role = shared.RoleDonor
	}
	return s.db.WithContext(ctx).Create(u).Error
}

func (s *Store) GetByID(ctx context.Context, id string) (*User, error) {
	var u User
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.ErrNotFound
	}
	return &u, err
}

func (s *Store) SetRole(ctx context.Context, id string, role shared.Role) error {
	result := s.db.WithContext(ctx).Model(&User{}).Where("id = ?", id).Update("role", role)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (s *Store) FindOrCreateFromJWT(ctx context.Context, userID, email, name string) (*User, error) {
	var u User
	err := s.db.WithContext(ctx).Where("id = ?", userID).First(&u).Error
	if err == nil {
		if u.Email != email || u.Name != name {
			u.Email = email
			u.Name = name
			if err := s.db.WithContext(ctx).Save(&u).Error; err != nil {
				return nil, err
			}
		}
		return &u, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	u = User{
		ID:    userID,
		Email: email,
		Name:  name,
		Role:  shared.RoleDonor,
	}

	if err := s.db.WithContext(ctx).Create(&u).Error; err != nil {
		return nil, err
	}

	return &u, nil
}

func (s *Store) SyncFromJWT(ctx context.Context, userID, email, name string) error {
	_, err := s.FindOrCreateFromJWT(ctx, userID, email, name)
	return err
}
