package analytics

import (
	"context"
	"fmt"

	"github.com/sangkips/ownerdesk-api/internal/domain/enum"
	"github.com/sangkips/ownerdesk-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// Snapshot is the set of counts and the revenue sum for one window
type Snapshot struct {
	Products     int64
	Suppliers    int64
	Orders       int64
	Expenses     int64
	Transactions int64
	Users        int64
	Revenue      decimal.Decimal
}

func (s *Snapshot) set(source enum.RecordSource, n int64) {
	switch source {
	case enum.SourceProducts:
		s.Products = n
	case enum.SourceSuppliers:
		s.Suppliers = n
	case enum.SourceOrders:
		s.Orders = n
	case enum.SourceExpenses:
		s.Expenses = n
	case enum.SourceTransactions:
		s.Transactions = n
	case enum.SourceUsers:
		s.Users = n
	}
}

// Aggregator computes metric snapshots
type Aggregator struct {
	repo repository.AnalyticsRepository
}

func NewAggregator(repo repository.AnalyticsRepository) *Aggregator {
	return &Aggregator{repo: repo}
}

// Aggregate runs one count per record source and the revenue sum
// concurrently. The first failure cancels the remaining queries and no
// snapshot is returned.
func (a *Aggregator) Aggregate(ctx context.Context, w repository.Window) (Snapshot, error) {
	sources := enum.CountedSources()
	counts := make([]int64, len(sources))
	var revenue decimal.Decimal

	g, ctx := errgroup.WithContext(ctx)

	for i, source := range sources {
		g.Go(func() error {
			n, err := a.repo.CountRecords(ctx, source, w)
			if err != nil {
				return fmt.Errorf("can't count %s: %w", source, err)
			}
			counts[i] = n
			return nil
		})
	}

	g.Go(func() error {
		var err error
		revenue, err = a.repo.SumOrderRevenue(ctx, w)
		if err != nil {
			return fmt.Errorf("can't sum revenue: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}

	snap := Snapshot{Revenue: revenue}
	for i, source := range sources {
		snap.set(source, counts[i])
	}
	return snap, nil
}
