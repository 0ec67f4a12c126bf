package status

import (
	"cmp"
	"slices"

	"github.com/goran-ethernal/RangeIndexor/internal/common"
	"github.com/goran-ethernal/RangeIndexor/pkg/coordinator"
	"github.com/goran-ethernal/RangeIndexor/pkg/rangestore"
)

// Run is an in-flight walk of one strategy.
type Run struct {
	Strategy  string
	From      uint64
	To        uint64
	Current   uint64
	IsReindex bool
	// Calculating is set while the reindex range is not resolved yet.
	Calculating bool
}

// Input is everything the projection reads.
type Input struct {
	State     coordinator.ControlState
	Head      uint64
	HeadStale bool
	// Strategies are the configured strategy names.
	Strategies []string
	Ranges     []rangestore.StrategyRange
	Runs       []Run
	LastError  string
}

// Project derives the status snapshot. It has no side effects.
//
// last_block is the smallest to_block among strategies still behind the head; when
// every strategy has caught up it is the smallest to_block overall, and 0 without
// any indexed range. The index block reports the first active reindex run by
// strategy name, otherwise the slowest forward run.
func Project(in Input) coordinator.StatusSnapshot {
	byName := make(map[string]rangestore.StrategyRange, len(in.Ranges))
	for _, r := range in.Ranges {
		byName[r.StrategyName] = r
	}

	reindexing := make(map[string]bool)
	for _, run := range in.Runs {
		if run.IsReindex {
			reindexing[run.Strategy] = true
		}
	}

	names := in.Strategies
	if len(names) == 0 {
		names = make([]string, 0, len(in.Ranges))
		for _, r := range in.Ranges {
			names = append(names, r.StrategyName)
		}
	}

	snapshot := coordinator.StatusSnapshot{
		Status:     in.State,
		Head:       in.Head,
		HeadStale:  in.HeadStale,
		LastError:  in.LastError,
		Strategies: make([]coordinator.StrategyProgress, 0, len(names)),
	}

	var (
		minBehindTo, minTo uint64
		anyBehind, anyRow  bool
	)

	for _, name := range names {
		progress := coordinator.StrategyProgress{
			Name:       name,
			Behind:     in.Head,
			Reindexing: reindexing[name],
		}

		if r, ok := byName[name]; ok {
			progress.FromBlock = r.FromBlock
			progress.ToBlock = r.ToBlock
			progress.Behind = common.SaturatingSub(in.Head, r.ToBlock)
			progress.Indexed = true

			if !anyRow || r.ToBlock < minTo {
				minTo = r.ToBlock
			}
			anyRow = true

			if r.ToBlock < in.Head && (!anyBehind || r.ToBlock < minBehindTo) {
				minBehindTo = r.ToBlock
				anyBehind = true
			}
		}

		snapshot.Strategies = append(snapshot.Strategies, progress)
	}

	switch {
	case anyBehind:
		snapshot.LastBlock = minBehindTo
	case anyRow:
		snapshot.LastBlock = minTo
	}
	snapshot.Behind = common.SaturatingSub(snapshot.Head, snapshot.LastBlock)
	snapshot.Index = pickIndex(in.Runs)

	return snapshot
}

func pickIndex(runs []Run) *coordinator.IndexProgress {
	if len(runs) == 0 {
		return nil
	}

	sorted := slices.Clone(runs)
	slices.SortFunc(sorted, func(a, b Run) int {
		// reindex runs first, then by name; forward runs slowest first
		if a.IsReindex != b.IsReindex {
			if a.IsReindex {
				return -1
			}
			return 1
		}
		if a.IsReindex {
			return cmp.Compare(a.Strategy, b.Strategy)
		}
		return cmp.Or(cmp.Compare(a.Current, b.Current), cmp.Compare(a.Strategy, b.Strategy))
	})

	run := sorted[0]
	if run.Calculating {
		return &coordinator.IndexProgress{
			Strategy:    run.Strategy,
			IsReindex:   run.IsReindex,
			Calculating: true,
		}
	}

	return &coordinator.IndexProgress{
		From:      run.From,
		To:        run.To,
		Current:   run.Current,
		Strategy:  run.Strategy,
		IsReindex: run.IsReindex,
	}
}
