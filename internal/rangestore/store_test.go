package rangestore

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/goran-ethernal/RangeIndexor/internal/db"
	"github.com/goran-ethernal/RangeIndexor/internal/logger"
	"github.com/goran-ethernal/RangeIndexor/internal/migrations"
	"github.com/goran-ethernal/RangeIndexor/pkg/coordinator"
	pkgrangestore "github.com/goran-ethernal/RangeIndexor/pkg/rangestore"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	database, err := db.NewSQLiteDB(filepath.Join(t.TempDir(), "ranges.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	require.NoError(t, migrations.RunMigrations(logger.NewNopLogger(), database))

	return New(database, nil, logger.NewNopLogger())
}

func requireRange(t *testing.T, s *Store, strategy string, from, to uint64) {
	t.Helper()

	r, err := s.Get(context.Background(), strategy)
	require.NoError(t, err)
	require.NotNil(t, r)
	require.Equal(t, from, r.FromBlock, "from_block")
	require.Equal(t, to, r.ToBlock, "to_block")
	require.LessOrEqual(t, r.FromBlock, r.ToBlock)
}

func TestStore_GetMissing(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	r, err := s.Get(context.Background(), "unknown")
	require.NoError(t, err)
	require.Nil(t, r)
}

func TestStore_Commit(t *testing.T) {
	t.Parallel()

	type commit struct {
		from, to uint64
	}

	tests := []struct {
		name     string
		commits  []commit
		next     commit
		wantErr  func(t *testing.T, err error)
		wantFrom uint64
		wantTo   uint64
	}{
		{
			name:     "first commit creates the row",
			next:     commit{100, 199},
			wantFrom: 100,
			wantTo:   199,
		},
		{
			name:     "contiguous commit extends to_block",
			commits:  []commit{{100, 199}},
			next:     commit{200, 299},
			wantFrom: 100,
			wantTo:   299,
		},
		{
			name:     "re-committing the last batch is idempotent",
			commits:  []commit{{100, 199}, {200, 299}},
			next:     commit{200, 299},
			wantFrom: 100,
			wantTo:   299,
		},
		{
			name:     "lower from_block widens the range",
			commits:  []commit{{100, 199}},
			next:     commit{50, 250},
			wantFrom: 50,
			wantTo:   250,
		},
		{
			name:    "regression is rejected and leaves the row unchanged",
			commits: []commit{{100, 500}},
			next:    commit{100, 400},
			wantErr: func(t *testing.T, err error) {
				t.Helper()
				var regErr *coordinator.RegressionError
				require.ErrorAs(t, err, &regErr)
				require.Equal(t, uint64(500), regErr.Current)
				require.Equal(t, uint64(400), regErr.Requested)
			},
			wantFrom: 100,
			wantTo:   500,
		},
		{
			name:    "gap is rejected",
			commits: []commit{{100, 199}},
			next:    commit{201, 300},
			wantErr: func(t *testing.T, err error) {
				t.Helper()
				require.ErrorIs(t, err, coordinator.ErrRangeGap)
			},
			wantFrom: 100,
			wantTo:   199,
		},
		{
			name:    "inverted batch is a validation error",
			commits: []commit{{100, 199}},
			next:    commit{300, 200},
			wantErr: func(t *testing.T, err error) {
				t.Helper()
				var valErr *coordinator.ValidationError
				require.ErrorAs(t, err, &valErr)
			},
			wantFrom: 100,
			wantTo:   199,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			s := newTestStore(t)

			for _, c := range tt.commits {
				require.NoError(t, s.Commit(ctx, "transfers", c.from, c.to))
			}

			err := s.Commit(ctx, "transfers", tt.next.from, tt.next.to)
			if tt.wantErr != nil {
				tt.wantErr(t, err)
			} else {
				require.NoError(t, err)
			}

			requireRange(t, s, "transfers", tt.wantFrom, tt.wantTo)
		})
	}
}

func TestStore_CommitTxRollback(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)
	require.NoError(t, s.Commit(ctx, "transfers", 100, 199))

	tx, err := s.db.BeginTx(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, s.CommitTx(ctx, tx, "transfers", 200, 299))
	require.NoError(t, tx.Rollback())

	requireRange(t, s, "transfers", 100, 199)

	tx, err = s.db.BeginTx(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, s.CommitTx(ctx, tx, "transfers", 200, 299))
	require.NoError(t, tx.Commit())

	requireRange(t, s, "transfers", 100, 299)
}

func TestStore_CrashResumeIsIdempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	uninterrupted := newTestStore(t)
	restarted := newTestStore(t)

	batches := [][2]uint64{{100, 199}, {200, 299}, {300, 399}}
	for _, b := range batches {
		require.NoError(t, uninterrupted.Commit(ctx, "s", b[0], b[1]))
		require.NoError(t, restarted.Commit(ctx, "s", b[0], b[1]))
	}
	// the restarted runner re-processes the last committed batch
	require.NoError(t, restarted.Commit(ctx, "s", 300, 399))

	a, err := uninterrupted.Get(ctx, "s")
	require.NoError(t, err)
	b, err := restarted.Get(ctx, "s")
	require.NoError(t, err)
	require.Equal(t, a.FromBlock, b.FromBlock)
	require.Equal(t, a.ToBlock, b.ToBlock)
}

func TestStore_ResetAndList(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Commit(ctx, "b", 100, 500))
	require.NoError(t, s.Reset(ctx, "b", 100, 900))
	require.NoError(t, s.Reset(ctx, "a", 10, 20))

	var valErr *coordinator.ValidationError
	require.ErrorAs(t, s.Reset(ctx, "a", 30, 20), &valErr)

	ranges, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, ranges, 2)
	require.Equal(t, "a", ranges[0].StrategyName)
	require.Equal(t, uint64(10), ranges[0].FromBlock)
	require.Equal(t, uint64(20), ranges[0].ToBlock)
	require.Equal(t, "b", ranges[1].StrategyName)
	require.Equal(t, uint64(900), ranges[1].ToBlock)
}

func TestStore_ConcurrentCommitsPerStrategy(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)

	const batches = 20

	var wg sync.WaitGroup
	for _, name := range []string{"a", "b", "c"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range uint64(batches) {
				from := i * 10
				if err := s.Commit(ctx, name, from, from+9); err != nil {
					t.Errorf("commit %s [%d,%d]: %v", name, from, from+9, err)
					return
				}
			}
		}()
	}
	wg.Wait()

	for _, name := range []string{"a", "b", "c"} {
		requireRange(t, s, name, 0, batches*10-1)
	}
}

func TestStore_ReindexJournal(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Commit(ctx, "transfers", 100, 900))

	run, err := s.StartRun(ctx, "transfers", 200, 300)
	require.NoError(t, err)
	require.NotEmpty(t, run.ID)
	require.Equal(t, pkgrangestore.RunRunning, run.Status)
	require.Equal(t, uint64(200), run.CurrentBlock)

	require.NoError(t, s.UpdateRunProgress(ctx, run.ID, 250))

	pending, err := s.PendingRuns(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Equal(t, uint64(250), pending[0].CurrentBlock)
	require.Zero(t, pending[0].FinishedAt)

	// the accumulated range is untouched while the run is in flight
	requireRange(t, s, "transfers", 100, 900)

	require.NoError(t, s.CompleteRun(ctx, run.ID, 100, 900))

	got, err := s.GetRun(ctx, run.ID)
	require.NoError(t, err)
	require.Equal(t, pkgrangestore.RunCompleted, got.Status)
	require.Equal(t, uint64(300), got.CurrentBlock)
	require.NotZero(t, got.FinishedAt)

	pending, err = s.PendingRuns(ctx)
	require.NoError(t, err)
	require.Empty(t, pending)

	requireRange(t, s, "transfers", 100, 900)
}

func TestStore_FinishRun(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)

	run, err := s.StartRun(ctx, "transfers", 0, 100)
	require.NoError(t, err)
	require.NoError(t, s.UpdateRunProgress(ctx, run.ID, 40))

	require.Error(t, s.FinishRun(ctx, run.ID, pkgrangestore.RunCompleted, ""))
	require.NoError(t, s.FinishRun(ctx, run.ID, pkgrangestore.RunFailed, errors.New("rpc down").Error()))

	got, err := s.GetRun(ctx, run.ID)
	require.NoError(t, err)
	require.Equal(t, pkgrangestore.RunFailed, got.Status)
	require.Equal(t, "rpc down", got.Error)
	require.Equal(t, uint64(40), got.CurrentBlock)

	// progress is ignored once the run is finished
	require.NoError(t, s.UpdateRunProgress(ctx, run.ID, 90))
	got, err = s.GetRun(ctx, run.ID)
	require.NoError(t, err)
	require.Equal(t, uint64(40), got.CurrentBlock)

	r, err := s.Get(ctx, "transfers")
	require.NoError(t, err)
	require.Nil(t, r)

	missing, err := s.GetRun(ctx, "does-not-exist")
	require.NoError(t, err)
	require.Nil(t, missing)

	require.Error(t, s.FinishRun(ctx, "does-not-exist", pkgrangestore.RunInterrupted, "gone"))
}

func TestStore_StartRunValidation(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	_, err := s.StartRun(context.Background(), "transfers", 10, 5)
	var valErr *coordinator.ValidationError
	require.ErrorAs(t, err, &valErr)
}
