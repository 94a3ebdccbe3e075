package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/mslopes/investsnap/internal/domain/models"
	"github.com/mslopes/investsnap/internal/logger"
	"github.com/mslopes/investsnap/internal/yahoo"
)

// SnapshotService defines business logic for building investment snapshots.
// This decouples HTTP handlers from upstream data access.
type SnapshotService interface {
	GetSnapshot(ctx context.Context, ticker, startDate string, amount float64) (*models.Snapshot, error)
}

type snapshotService struct {
	provider yahoo.MarketDataProvider
}

func NewSnapshotService(provider yahoo.MarketDataProvider) SnapshotService {
	return &snapshotService{provider: provider}
}

// fetchResult collects the joined upstream data for one request.
// Profile is nil when its fetch failed; the cause is logged, never returned.
type fetchResult struct {
	history []models.HistoricalPoint
	quote   *models.Quote
	profile *models.CompanyProfile
	stats   *models.FinancialStats
}

// GetSnapshot fetches all upstream data for the ticker and assembles
// the snapshot. An empty historical series yields
// models.ErrNoHistoricalData; any other upstream failure (except the
// profile carve-out) fails the whole request.
func (s *snapshotService) GetSnapshot(ctx context.Context, ticker, startDate string, amount float64) (*models.Snapshot, error) {
	res, err := s.fetch(ctx, ticker, startDate)
	if err != nil {
		return nil, err
	}
	if len(res.history) == 0 {
		return nil, fmt.Errorf("%w for ticker %s since %s", models.ErrNoHistoricalData, ticker, startDate)
	}
	return assemble(ticker, startDate, amount, res), nil
}

// fetch issues the four upstream reads concurrently and waits for all of
// them. History, quote and statistics are all-or-nothing: the errgroup
// cancels siblings on first failure and no partial result is returned.
func (s *snapshotService) fetch(ctx context.Context, ticker, startDate string) (*fetchResult, error) {
	res := &fetchResult{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		points, err := s.provider.Historical(gctx, ticker, startDate)
		if err != nil {
			return err
		}
		res.history = points
		return nil
	})

	g.Go(func() error {
		q, err := s.provider.Quote(gctx, ticker)
		if err != nil {
			return err
		}
		res.quote = q
		return nil
	})

	g.Go(func() error {
		st, err := s.provider.Statistics(gctx, ticker)
		if err != nil {
			return err
		}
		res.stats = st
		return nil
	})

	g.Go(func() error {
		p, err := s.provider.Profile(gctx, ticker)
		if err != nil {
			// Non-fatal: the snapshot is assembled with fallback defaults.
			logger.L().Warn().
				Str("ticker", ticker).
				Err(err).
				Msg("profile fetch failed, continuing without profile")
			return nil
		}
		res.profile = p
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}
