package headtracker

import (
	"context"
	"sync"
	"time"

	"github.com/goran-ethernal/RangeIndexor/internal/common"
	"github.com/goran-ethernal/RangeIndexor/internal/logger"
	"github.com/goran-ethernal/RangeIndexor/pkg/config"
	"github.com/goran-ethernal/RangeIndexor/pkg/coordinator"
	pkgrpc "github.com/goran-ethernal/RangeIndexor/pkg/rpc"
)

// Head is the last chain head observed by the tracker.
type Head struct {
	// Number is the highest indexable block after finality and confirmations are applied.
	Number uint64
	// Stale is set when the most recent lookup failed or timed out.
	Stale bool
	// UpdatedAt is the time of the last successful lookup; zero if none succeeded yet.
	UpdatedAt time.Time
	// Err is the error of the most recent failed lookup.
	Err error
}

// Known reports whether at least one lookup has succeeded.
func (h Head) Known() bool {
	return !h.UpdatedAt.IsZero()
}

// Tracker polls the chain head and serves it without blocking.
type Tracker struct {
	client        pkgrpc.EthClient
	finality      Finality
	confirmations uint64
	pollInterval  time.Duration
	timeout       time.Duration
	log           *logger.Logger

	mu   sync.RWMutex
	head Head
}

// New creates a head tracker for the configured chain.
func New(client pkgrpc.EthClient, cfg config.ChainConfig, log *logger.Logger) (*Tracker, error) {
	finality, err := ParseFinality(cfg.Finality)
	if err != nil {
		return nil, err
	}

	return &Tracker{
		client:        client,
		finality:      finality,
		confirmations: cfg.Confirmations,
		pollInterval:  cfg.PollInterval.Duration,
		timeout:       cfg.HeadTimeout.Duration,
		log:           log.WithComponent(common.ComponentHeadTracker),
	}, nil
}

// CurrentHead returns the last known head. It never blocks on the chain.
func (t *Tracker) CurrentHead() Head {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.head
}

// Refresh looks up the chain head, bounded by the head timeout.
// On failure the last known head is kept, marked stale, and a HeadUnavailableError is returned.
func (t *Tracker) Refresh(ctx context.Context) (Head, error) {
	lookupCtx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	number, err := t.finality.Resolve(lookupCtx, t.client, t.confirmations)

	t.mu.Lock()
	defer t.mu.Unlock()

	if err != nil {
		t.head.Stale = true
		t.head.Err = err

		HeadLookupErrorInc()
		HeadStaleLog(true)

		return t.head, coordinator.NewHeadUnavailableError(err)
	}

	if number < t.head.Number {
		// a shallow reorg or a lagging node; the head never moves backwards
		t.log.Debugf("chain head %d is below last known head %d, keeping %d", number, t.head.Number, t.head.Number)
		number = t.head.Number
	}

	t.head = Head{
		Number:    number,
		UpdatedAt: time.Now().UTC(),
	}

	HeadLog(number)
	HeadStaleLog(false)

	return t.head, nil
}

// Start refreshes the head immediately and then every poll interval until ctx is done.
func (t *Tracker) Start(ctx context.Context) error {
	t.log.Infof("head tracker started - finality: %s, confirmations: %d, interval: %v",
		t.finality, t.confirmations, t.pollInterval)

	ticker := time.NewTicker(t.pollInterval)
	defer ticker.Stop()

	for {
		if head, err := t.Refresh(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			t.log.Warnf("chain head unavailable, serving last known head %d: %v", head.Number, err)
		} else {
			t.log.Debugf("chain head: %d", head.Number)
		}

		select {
		case <-ctx.Done():
			t.log.Info("head tracker stopped")
			return nil
		case <-ticker.C:
		}
	}
}
