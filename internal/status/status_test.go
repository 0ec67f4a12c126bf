package status

import (
	"encoding/json"
	"testing"

	"github.com/goran-ethernal/RangeIndexor/pkg/coordinator"
	"github.com/goran-ethernal/RangeIndexor/pkg/rangestore"
	"github.com/stretchr/testify/require"
)

func TestProject_LastBlockAndBehind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		head       uint64
		ranges     []rangestore.StrategyRange
		wantLast   uint64
		wantBehind uint64
	}{
		{
			name:       "single strategy",
			head:       125902000,
			ranges:     []rangestore.StrategyRange{{StrategyName: "a", FromBlock: 1, ToBlock: 125901332}},
			wantLast:   125901332,
			wantBehind: 668,
		},
		{
			name: "slowest strategy behind head",
			head: 1000,
			ranges: []rangestore.StrategyRange{
				{StrategyName: "a", FromBlock: 0, ToBlock: 900},
				{StrategyName: "b", FromBlock: 0, ToBlock: 400},
				{StrategyName: "c", FromBlock: 0, ToBlock: 1000},
			},
			wantLast:   400,
			wantBehind: 600,
		},
		{
			name: "all caught up",
			head: 1000,
			ranges: []rangestore.StrategyRange{
				{StrategyName: "a", FromBlock: 0, ToBlock: 1000},
				{StrategyName: "b", FromBlock: 0, ToBlock: 1005},
			},
			wantLast:   1000,
			wantBehind: 0,
		},
		{
			name:       "range ahead of a stale head saturates",
			head:       900,
			ranges:     []rangestore.StrategyRange{{StrategyName: "a", FromBlock: 0, ToBlock: 950}},
			wantLast:   950,
			wantBehind: 0,
		},
		{
			name:       "nothing indexed",
			head:       900,
			wantLast:   0,
			wantBehind: 900,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			snap := Project(Input{State: coordinator.StateRunning, Head: tt.head, Ranges: tt.ranges})
			require.Equal(t, tt.wantLast, snap.LastBlock)
			require.Equal(t, tt.wantBehind, snap.Behind)
			require.Equal(t, tt.head, snap.Head)
			require.Nil(t, snap.Index)
		})
	}
}

func TestProject_Index(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		runs []Run
		want *coordinator.IndexProgress
	}{
		{
			name: "idle",
			want: nil,
		},
		{
			name: "slowest forward run",
			runs: []Run{
				{Strategy: "b", From: 500, To: 900, Current: 700},
				{Strategy: "a", From: 100, To: 900, Current: 300},
			},
			want: &coordinator.IndexProgress{From: 100, To: 900, Current: 300, Strategy: "a"},
		},
		{
			name: "reindex run wins over forward runs",
			runs: []Run{
				{Strategy: "a", From: 100, To: 900, Current: 300},
				{Strategy: "z", From: 200, To: 300, Current: 250, IsReindex: true},
				{Strategy: "m", From: 0, To: 900, Current: 10, IsReindex: true},
			},
			want: &coordinator.IndexProgress{From: 0, To: 900, Current: 10, Strategy: "m", IsReindex: true},
		},
		{
			name: "calculating reindex reports zero range",
			runs: []Run{
				{Strategy: "a", From: 100, To: 900, Current: 300, Calculating: true, IsReindex: true},
			},
			want: &coordinator.IndexProgress{Strategy: "a", IsReindex: true, Calculating: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			snap := Project(Input{State: coordinator.StateReindexing, Head: 1000, Runs: tt.runs})
			require.Equal(t, tt.want, snap.Index)
		})
	}
}

func TestProject_CalculatingIsDistinctFromEmptyRange(t *testing.T) {
	t.Parallel()

	calculating := Project(Input{Runs: []Run{{Strategy: "a", IsReindex: true, Calculating: true}}})
	genesis := Project(Input{Runs: []Run{{Strategy: "a", IsReindex: true}}})

	require.Zero(t, calculating.Index.From)
	require.Zero(t, calculating.Index.To)
	require.True(t, calculating.Index.Calculating)

	require.Zero(t, genesis.Index.From)
	require.Zero(t, genesis.Index.To)
	require.False(t, genesis.Index.Calculating)
}

func TestProject_Strategies(t *testing.T) {
	t.Parallel()

	snap := Project(Input{
		State:      coordinator.StatePaused,
		Head:       1000,
		HeadStale:  true,
		LastError:  "rpc down",
		Strategies: []string{"a", "b"},
		Ranges: []rangestore.StrategyRange{
			{StrategyName: "a", FromBlock: 100, ToBlock: 900},
			{StrategyName: "old", FromBlock: 0, ToBlock: 10},
		},
		Runs: []Run{{Strategy: "b", From: 0, To: 1000, IsReindex: true}},
	})

	require.Equal(t, coordinator.StatePaused, snap.Status)
	require.True(t, snap.HeadStale)
	require.Equal(t, "rpc down", snap.LastError)
	require.Equal(t, []coordinator.StrategyProgress{
		{Name: "a", FromBlock: 100, ToBlock: 900, Behind: 100, Indexed: true},
		{Name: "b", Behind: 1000, Reindexing: true},
	}, snap.Strategies)
	require.Equal(t, uint64(900), snap.LastBlock, "unconfigured strategies are ignored")
}

func TestProject_JSON(t *testing.T) {
	t.Parallel()

	idle, err := json.Marshal(Project(Input{State: coordinator.StateRunning, Head: 10}))
	require.NoError(t, err)
	require.NotContains(t, string(idle), `"index"`)
	require.Contains(t, string(idle), `"status":"running"`)
	require.Contains(t, string(idle), `"last_block":0`)

	forward, err := json.Marshal(Project(Input{Runs: []Run{{From: 1, To: 5, Current: 2}}}))
	require.NoError(t, err)
	require.Contains(t, string(forward), `"index":{"from":1,"to":5,"current":2,"is_reindex":false,"calculating":false}`)
}
