// Package lifecycle owns every transition a donation request moves through:
// assign, accept, reject (with synchronous reassignment) and complete. Each
// transition re-reads current state, applies its mutation to the donation and
// the volunteer's workload lists together inside one transaction, and retries
// a bounded number of times when an optimistic-version conflict is detected.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/foodbridge/backend/internal/donation"
	"github.com/foodbridge/backend/internal/matching"
	"github.com/foodbridge/backend/internal/shared"
	"github.com/foodbridge/backend/internal/volunteer"
	"gorm.io/gorm"
)

const maxConflictRetries = 3

type Service struct {
	db         *gorm.DB
	donations  *donation.Store
	volunteers *volunteer.Store
	engine     *matching.Engine
	locks      *keyedLocks
	logger     *slog.Logger
}

func NewService(db *gorm.DB, donations *donation.Store, volunteers *volunteer.Store, engine *matching.Engine, logger *slog.Logger) *Service {
	return &Service{
		db:         db,
		donations:  donations,
		volunteers: volunteers,
		engine:     engine,
		locks:      newKeyedLocks(),
		logger:     logger,
	}
}

func (s *Service) inTx(ctx context.Context, fn func(donations *donation.Store, volunteers *volunteer.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(s.donations.WithTx(tx), s.volunteers.WithTx(tx))
	})
}

// retry re-runs fn while it reports an optimistic-version conflict. fn must
// re-read all state on every attempt.
func (s *Service) retry(donationID string, fn func() (*donation.Donation, error)) (*donation.Donation, error) {
	for attempt := 0; attempt < maxConflictRetries; attempt++ {
		d, err := fn()
		if errors.Is(err, shared.ErrConflict) {
			s.logger.Warn("transition conflicted, retrying", "donation_id", donationID, "attempt", attempt+1)
			continue
		}
		return d, err
	}
	return nil, fmt.Errorf("transition on %s exhausted retries: %w", donationID, shared.ErrConflict)
}

// Assign offers a pending donation to the nearest available volunteer. It is
// an idempotent no-op when the donation is already assigned or beyond. When
// no volunteer is eligible the donation stays pending; callers distinguish
// the outcomes by the returned status.
func (s *Service) Assign(ctx context.Context, donationID string) (*donation.Donation, error) {
	unlock := s.locks.Lock(donationID)
	defer unlock()

	return s.retry(donationID, func() (*donation.Donation, error) {
		d, err := s.donations.GetByID(ctx, donationID)
		if err != nil {
			return nil, err
		}
		if d.Status != donation.StatusPending {
			return d, nil
		}

		candidate, err := s.engine.SelectVolunteer(ctx, d.Coordinate(), nil)
		if err != nil {
			return nil, err
		}
		if candidate == nil {
			s.logger.Info("no eligible volunteer", "donation_id", d.ID)
			return d, nil
		}

		if err := s.applyAssignment(ctx, d, candidate); err != nil {
			return nil, err
		}

		s.logger.Info("donation assigned", "donation_id", d.ID, "volunteer_id", candidate.ID)
		return d, nil
	})
}

func (s *Service) applyAssignment(ctx context.Context, d *donation.Donation, candidate *volunteer.Volunteer) error {
	return s.inTx(ctx, func(donations *donation.Store, volunteers *volunteer.Store) error {
		d.Status = donation.StatusAssigned
		d.AssignedTo = &candidate.ID
		if err := donations.Save(ctx, d); err != nil {
			return err
		}

		candidate.Assigned = append(candidate.Assigned, d.ID)
		return volunteers.Save(ctx, candidate)
	})
}

// Accept confirms an offered donation. Only the volunteer the donation is
// assigned to may accept, and only from the assigned state.
func (s *Service) Accept(ctx context.Context, donationID, callerUserID string) (*donation.Donation, error) {
	unlock := s.locks.Lock(donationID)
	defer unlock()

	return s.retry(donationID, func() (*donation.Donation, error) {
		d, v, err := s.loadForCaller(ctx, donationID, callerUserID)
		if err != nil {
			return nil, err
		}
		if d.Status != donation.StatusAssigned {
			return nil, fmt.Errorf("accept requires an assigned donation, status is %s: %w", d.Status, shared.ErrPreconditionFailed)
		}
		if d.AssignedTo == nil || *d.AssignedTo != v.ID {
			return nil, fmt.Errorf("donation %s is not assigned to caller: %w", d.ID, shared.ErrNotAuthorized)
		}

		err = s.inTx(ctx, func(donations *donation.Store, volunteers *volunteer.Store) error {
			d.Status = donation.StatusAccepted
			if err := donations.Save(ctx, d); err != nil {
				return err
			}

			v.Assigned = v.Assigned.Without(d.ID)
			v.Accepted = append(v.Accepted, d.ID)
			return volunteers.Save(ctx, v)
		})
		if err != nil {
			return nil, err
		}

		s.logger.Info("donation accepted", "donation_id", d.ID, "volunteer_id", v.ID)
		return d, nil
	})
}

// Reject returns an offered donation to the pool and immediately retries
// assignment with the rejecting volunteer excluded. The exclusion holds for
// this attempt only; a later independent assignment may select the same
// volunteer again. The unassignment and any reassignment commit together, so
// the caller observes either a new assignee or a final pending state.
func (s *Service) Reject(ctx context.Context, donationID, callerUserID string) (*donation.Donation, error) {
	unlock := s.locks.Lock(donationID)
	defer unlock()

	return s.retry(donationID, func() (*donation.Donation, error) {
		d, v, err := s.loadForCaller(ctx, donationID, callerUserID)
		if err != nil {
			return nil, err
		}
		if d.Status != donation.StatusAssigned {
			return nil, fmt.Errorf("reject requires an assigned donation, status is %s: %w", d.Status, shared.ErrPreconditionFailed)
		}
		if d.AssignedTo == nil || *d.AssignedTo != v.ID {
			return nil, fmt.Errorf("donation %s is not assigned to caller: %w", d.ID, shared.ErrNotAuthorized)
		}

		candidate, err := s.engine.SelectVolunteer(ctx, d.Coordinate(), []string{v.ID})
		if err != nil {
			return nil, err
		}

		err = s.inTx(ctx, func(donations *donation.Store, volunteers *volunteer.Store) error {
			v.Assigned = v.Assigned.Without(d.ID)
			if err := volunteers.Save(ctx, v); err != nil {
				return err
			}

			if candidate == nil {
				d.Status = donation.StatusPending
				d.AssignedTo = nil
				return donations.Save(ctx, d)
			}

			d.Status = donation.StatusAssigned
			d.AssignedTo = &candidate.ID
			if err := donations.Save(ctx, d); err != nil {
				return err
			}

			candidate.Assigned = append(candidate.Assigned, d.ID)
			return volunteers.Save(ctx, candidate)
		})
		if err != nil {
			return nil, err
		}

		if candidate == nil {
			s.logger.Info("donation rejected, no replacement found", "donation_id", d.ID, "rejected_by", v.ID)
		} else {
			s.logger.Info("donation rejected and reassigned", "donation_id", d.ID, "rejected_by", v.ID, "volunteer_id", candidate.ID)
		}
		return d, nil
	})
}

// Complete finishes an accepted donation and records the proof-of-delivery
// reference on both the donation and the volunteer's completed list.
func (s *Service) Complete(ctx context.Context, donationID, callerUserID, proofURL string) (*donation.Donation, error) {
	unlock := s.locks.Lock(donationID)
	defer unlock()

	return s.retry(donationID, func() (*donation.Donation, error) {
		d, v, err := s.loadForCaller(ctx, donationID, callerUserID)
		if err != nil {
			return nil, err
		}
		if d.Status != donation.StatusAccepted {
			return nil, fmt.Errorf("complete requires an accepted donation, status is %s: %w", d.Status, shared.ErrPreconditionFailed)
		}
		if d.AssignedTo == nil || *d.AssignedTo != v.ID {
			return nil, fmt.Errorf("donation %s is not assigned to caller: %w", d.ID, shared.ErrNotAuthorized)
		}

		err = s.inTx(ctx, func(donations *donation.Store, volunteers *volunteer.Store) error {
			d.Status = donation.StatusCompleted
			d.ProofURL = proofURL
			if err := donations.Save(ctx, d); err != nil {
				return err
			}

			v.Assigned = v.Assigned.Without(d.ID)
			v.Accepted = v.Accepted.Without(d.ID)
			v.Completed = append(v.Completed, volunteer.CompletedDelivery{
				DonationID: d.ID,
				ProofURL:   proofURL,
			})
			return volunteers.Save(ctx, v)
		})
		if err != nil {
			return nil, err
		}

		s.logger.Info("donation completed", "donation_id", d.ID, "volunteer_id", v.ID)
		return d, nil
	})
}

// loadForCaller reads the donation and resolves the caller's volunteer
// record. A caller without a volunteer record is not authorized to transition
// anything.
func (s *Service) loadForCaller(ctx context.Context, donationID, callerUserID string) (*donation.Donation, *volunteer.Volunteer, error) {
	d, err := s.donations.GetByID(ctx, donationID)
	if err != nil {
		return nil, nil, err
	}

	v, err := s.volunteers.GetByUserID(ctx, callerUserID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, nil, fmt.Errorf("caller %s is not a volunteer: %w", callerUserID, shared.ErrNotAuthorized)
		}
		return nil, nil, err
	}

	return d, v, nil
}
