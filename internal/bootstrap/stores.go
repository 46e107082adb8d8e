package bootstrap

import (
	"github.com/foodbridge/backend/internal/cluster"
	"github.com/foodbridge/backend/internal/donation"
	"github.com/foodbridge/backend/internal/user"
	"github.com/foodbridge/backend/internal/volunteer"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func ProvideUserStore(db *gorm.DB) *user.Store {
	return user.NewStore(db)
}

func ProvideVolunteerStore(db *gorm.DB) *volunteer.Store {
	return volunteer.NewStore(db)
}

func ProvideDonationStore(db *gorm.DB) *donation.Store {
	return donation.NewStore(db)
}

func ProvideClusterStore(redisClient *redis.Client) *cluster.Store {
	return cluster.NewStore(redisClient)
}

func RunMigrations(userStore *user.Store, volunteerStore *volunteer.Store, donationStore *donation.Store) error {
	if err := userStore.Migrate(); err != nil {
		return err
	}
	if err := volunteerStore.Migrate(); err != nil {
		return err
	}
	return donationStore.Migrate()
}

var StoresModule = fx.Options(
	fx.Provide(
		ProvideUserStore,
		ProvideVolunteerStore,
		ProvideDonationStore,
		ProvideClusterStore,
	),
	fx.Invoke(RunMigrations),
)
