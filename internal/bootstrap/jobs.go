package bootstrap

import (
	"context"
	"log/slog"

	"github.com/foodbridge/backend/internal/cluster"
	"github.com/foodbridge/backend/internal/donation"
	"go.uber.org/fx"
)

func ProvideClusterRunner(cfg *Config, donationStore *donation.Store, clusterStore *cluster.Store, logger *slog.Logger) *cluster.Runner {
	return cluster.NewRunner(donationStore, clusterStore, cfg.ClusterRadiusKm, logger.With("component", "cluster_job"))
}

// StartClusterJob ties the periodic clustering run to the process lifecycle:
// it starts with the application and stops cleanly on shutdown.
func StartClusterJob(lc fx.Lifecycle, runner *cluster.Runner, cfg *Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			runner.Start(cfg.ClusterInterval)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			runner.Stop()
			return nil
		},
	})
}

var JobsModule = fx.Options(
	fx.Provide(ProvideClusterRunner),
	fx.Invoke(StartClusterJob),
)
