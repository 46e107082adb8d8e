package user

import (
	"context"
	"errors"
	"testing"

	"github.com/foodbridge/backend/internal/shared"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *Store {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	store := NewStore(db)
	if err := store.Migrate(); err != nil {
		t.Fatalf("migration failed: %v", err)
	}
	return store
}

func TestStore_Create_Defaults(t *testing.T) {
	store := newTestStore(t)

	u := &User{Email: "donor@example.com"}
	if err := store.Create(context.Background(), u); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if u.ID == "" {
		t.Error("user ID should be generated if not provided")
	}
	if u.Role != shared.RoleDonor {
		t.Errorf("Role = %s, want %s", u.Role, shared.RoleDonor)
	}
}

func TestStore_SetRole(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	store.Create(ctx, &User{ID: "usr_1"})

	if err := store.SetRole(ctx, "usr_1", shared.RoleVolunteer); err != nil {
		t.Fatalf("SetRole() error = %v", err)
	}
	u, _ := store.GetByID(ctx, "usr_1")
	if u.Role != shared.RoleVolunteer {
		t.Errorf("Role = %s, want volunteer", u.Role)
	}

	if err := store.SetRole(ctx, "usr_missing", shared.RoleDonor); !errors.Is(err, shared.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_FindOrCreateFromJWT(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	u, err := store.FindOrCreateFromJWT(ctx, "usr_jwt", "first@example.com", "First Name")
	if err != nil {
		t.Fatalf("FindOrCreateFromJWT() error = %v", err)
	}
	if u.ID != "usr_jwt" || u.Role != shared.RoleDonor {
		t.Errorf("unexpected user: %+v", u)
	}

	// a second sync with changed profile fields updates in place
	u, err = store.FindOrCreateFromJWT(ctx, "usr_jwt", "second@example.com", "Second Name")
	if err != nil {
		t.Fatalf("FindOrCreateFromJWT() error = %v", err)
	}
	if u.Email != "second@example.com" || u.Name != "Second Name" {
		t.Errorf("profile should update on sync: %+v", u)
	}

	stored, _ := store.GetByID(ctx, "usr_jwt")
	if stored.Email != "second@example.com" {
		t.Errorf("stored email = %s", stored.Email)
	}
}

func TestStore_SyncFromJWT_KeepsRole(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	store.SyncFromJWT(ctx, "usr_1", "v@example.com", "Vol")
	store.SetRole(ctx, "usr_1", shared.RoleVolunteer)

	if err := store.SyncFromJWT(ctx, "usr_1", "v@example.com", "Vol"); err != nil {
		t.Fatalf("SyncFromJWT() error = %v", err)
	}

	u, _ := store.GetByID(ctx, "usr_1")
	if u.Role != shared.RoleVolunteer {
		t.Errorf("sync must not reset role, got %s", u.Role)
	}
}
