package panel

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lagtech/expertos-api/internal/modules/orders"
	"github.com/lagtech/expertos-api/pkg/businesstime"
)

// OrderSource is the read side of the order store the panel aggregates over.
type OrderSource interface {
	FetchRange(ctx context.Context, start, end time.Time) ([]orders.WorkOrder, error)
	FetchSince(ctx context.Context, start time.Time) ([]orders.WorkOrder, error)
}

// accrualWorkers bounds the per-order fan-out. Accrual is pure CPU work, so a
// small pool is enough even for large panels.
const accrualWorkers = 8

// Service computes panel rows and header counts over the order store.
type Service struct {
	source OrderSource
	cal    businesstime.Calendar
	now    func() time.Time
	log    zerolog.Logger
}

// NewService creates a new panel service. The evaluation clock defaults to
// time.Now.
func NewService(source OrderSource, cal businesstime.Calendar, log zerolog.Logger) *Service {
	return &Service{
		source: source,
		cal:    cal,
		now:    time.Now,
		log:    log.With().Str("service", "panel").Logger(),
	}
}

// WithClock overrides the evaluation clock. Used by tests for deterministic
// accrual results.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Panel returns one row per open order created within [start, end] (calendar
// dates, both inclusive), ordered by creation time with order ID as
// tie-break. Orders in finished, pending-review or cancelled status are
// excluded. An empty result is success, not an error.
//
// Per-order accrual fans out across a bounded worker group; when ctx is
// cancelled no partial result is returned.
func (s *Service) Panel(ctx context.Context, start, end time.Time) ([]Row, error) {
	fetched, err := s.source.FetchRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}

	open := make([]orders.WorkOrder, 0, len(fetched))
	for _, o := range fetched {
		if !o.Status.PanelExcluded() {
			open = append(open, o)
		}
	}

	// Sort before the fan-out so row order is independent of worker timing.
	sort.SliceStable(open, func(i, j int) bool {
		if open[i].CreatedAt.Equal(open[j].CreatedAt) {
			return open[i].ID < open[j].ID
		}
		return open[i].CreatedAt.Before(open[j].CreatedAt)
	})

	evalAt := s.now()
	rows := make([]Row, len(open))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(accrualWorkers)
	for i, o := range open {
		i, o := i, o
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			elapsed := businesstime.Accrue(o.CreatedAt, evalAt, s.cal)
			rows[i] = Row{
				OrderID:         o.ID,
				Client:          o.Client,
				Title:           o.Title,
				CreatedDate:     o.CreatedAt.Format("2006-01-02"),
				StatusCode:      int(o.Status),
				StatusLabel:     o.StatusLabel,
				ElapsedDuration: businesstime.FormatDuration(elapsed, s.cal),
				Priority:        orders.PriorityLabel(o.Priority),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return rows, nil
}

// Header counts orders created on or after start, bucketed by status for the
// dashboard header.
func (s *Service) Header(ctx context.Context, start time.Time) (HeaderCounts, error) {
	fetched, err := s.source.FetchSince(ctx, start)
	if err != nil {
		return HeaderCounts{}, fmt.Errorf("failed to fetch orders: %w", err)
	}

	var counts HeaderCounts
	for _, o := range fetched {
		if o.Status != orders.StatusCancelled {
			counts.TotalOpen++
		}
		if o.Status == orders.StatusFinished {
			counts.Finished++
		}
		if o.Status.CountsAsPending() {
			counts.Pending++
		}
		if o.Status == orders.StatusInDevelopment {
			counts.InDevelopment++
		}
	}

	return counts, nil
}
