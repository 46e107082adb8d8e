// Package cluster groups unmatched donations by geographic proximity on a
// fixed interval. The grouping is a single greedy first-fit pass, good
// enough for the reporting and dispatch views that consume it.
package cluster

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/foodbridge/backend/internal/donation"
	"github.com/foodbridge/backend/internal/geo"
)

// PendingSource lists every donation still waiting for a volunteer, in a
// stable read order. The order decides first-fit cluster membership.
type PendingSource interface {
	ListPending(ctx context.Context) ([]*donation.Donation, error)
}

// Sink persists a run's output, replacing the previous run's.
type Sink interface {
	Replace(ctx context.Context, records []Record) error
}

type Runner struct {
	source   PendingSource
	sink     Sink
	radiusKm float64
	logger   *slog.Logger

	running sync.Mutex
	stop    chan struct{}
	done    chan struct{}
}

// NewRunner builds a runner grouping donations within radiusKm (great-circle
// kilometers) of a cluster's center.
func NewRunner(source PendingSource, sink Sink, radiusKm float64, logger *slog.Logger) *Runner {
	return &Runner{
		source:   source,
		sink:     sink,
		radiusKm: radiusKm,
		logger:   logger,
	}
}

// Start launches the periodic run loop. Stop ends it.
func (r *Runner) Start(interval time.Duration) {
	r.stop = make(chan struct{})
	r.done = make(chan struct{})

	go func() {
		defer close(r.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				r.RunOnce(context.Background())
			case <-r.stop:
				return
			}
		}
	}()

	r.logger.Info("cluster job started", "interval", interval, "radius_km", r.radiusKm)
}

func (r *Runner) Stop() {
	if r.stop == nil {
		return
	}
	close(r.stop)
	<-r.done
	r.logger.Info("cluster job stopped")
}

// RunOnce executes a single clustering pass. A tick that fires while the
// previous run is still executing is skipped. Failures are logged and
// swallowed; the scheduler must survive any single bad run.
func (r *Runner) RunOnce(ctx context.Context) {
	if !r.running.TryLock() {
		r.logger.Warn("previous clustering run still in progress, skipping tick")
		return
	}
	defer r.running.Unlock()

	pending, err := r.source.ListPending(ctx)
	if err != nil {
		r.logger.Error("clustering run failed to read pending donations", "error", err)
		return
	}

	records := Clusterize(pending, r.radiusKm)

	if err := r.sink.Replace(ctx, records); err != nil {
		r.logger.Error("clustering run failed to save clusters", "error", err)
		return
	}

	r.logger.Info("clustering completed", "pending", len(pending), "clusters", len(records))
}

// Clusterize groups donations with a single greedy pass: each donation joins
// the first existing cluster whose center is within radiusKm, otherwise it
// seeds a new cluster at its own location. Centers never move.
func Clusterize(donations []*donation.Donation, radiusKm float64) []Record {
	records := make([]Record, 0)

	for _, d := range donations {
		added := false
		for i := range records {
			if geo.DistanceKilometers(records[i].Center, d.Coordinate()) <= radiusKm {
				records[i].DonationIDs = append(records[i].DonationIDs, d.ID)
				added = true
				break
			}
		}
		if !added {
			records = append(records, Record{
				Center:      d.Coordinate(),
				DonationIDs: []string{d.ID},
			})
		}
	}

	return records
}
