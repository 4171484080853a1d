package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/eshopcore/backoffice/internal/domain/model"
)

// BackofficeFacade exposes the subset of application functionality required by the sweeper.
type BackofficeFacade interface {
	RefundsByStatus(ctx context.Context, status model.RefundStatus) ([]model.Refund, error)
	RefundEligible(ctx context.Context, id int64, windowDays int) (bool, error)
}

// RefundSweeper periodically inspects pending refunds and flags the ones whose
// eligibility window has lapsed. It never mutates refunds; resolution stays a
// human decision.
type RefundSweeper struct {
	facade        BackofficeFacade
	sweepInterval time.Duration
	batchSize     int
	workers       int
	windowDays    int
	logger        *slog.Logger

	jobs   chan model.Refund
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewRefundSweeper constructs the sweeper worker pool.
func NewRefundSweeper(facade BackofficeFacade, sweepInterval time.Duration, batchSize, workers, windowDays int, logger *slog.Logger) *RefundSweeper {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &RefundSweeper{
		facade:        facade,
		sweepInterval: sweepInterval,
		batchSize:     batchSize,
		workers:       workers,
		windowDays:    windowDays,
		logger:        logger,
		jobs:          make(chan model.Refund, batchSize*workers),
	}
}

// Start launches background sweeping.
func (p *RefundSweeper) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(runCtx)
	}

	p.wg.Add(1)
	go p.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (p *RefundSweeper) Stop() {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.mu.Unlock()

	p.wg.Wait()
}

func (p *RefundSweeper) dispatch(ctx context.Context) {
	defer p.wg.Done()
	defer close(p.jobs)
	ticker := time.NewTicker(p.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.fetchAndDispatch(ctx)
		}
	}
}

func (p *RefundSweeper) fetchAndDispatch(ctx context.Context) {
	refunds, err := p.facade.RefundsByStatus(ctx, model.RefundStatusPending)
	if err != nil {
		p.logger.Error("fetch pending refunds failed", slog.String("error", err.Error()))
		return
	}
	if len(refunds) > p.batchSize {
		refunds = refunds[:p.batchSize]
	}
	for _, refund := range refunds {
		select {
		case <-ctx.Done():
			return
		case p.jobs <- refund:
		}
	}
}

func (p *RefundSweeper) worker(ctx context.Context) {
	defer p.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case refund, ok := <-p.jobs:
			if !ok {
				return
			}
			p.handleRefund(ctx, refund)
		}
	}
}

func (p *RefundSweeper) handleRefund(ctx context.Context, refund model.Refund) {
	eligible, err := p.facade.RefundEligible(ctx, refund.ID, p.windowDays)
	if err != nil {
		p.logger.Error("eligibility check failed",
			slog.Int64("refund", refund.ID),
			slog.String("error", err.Error()))
		return
	}
	if !eligible {
		p.logger.Warn("pending refund past eligibility window",
			slog.Int64("refund", refund.ID),
			slog.Int64("order", refund.OrderID),
			slog.Int("window_days", p.windowDays))
	}
}
