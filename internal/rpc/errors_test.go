package rpc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type mockDataError struct {
	data any
	msg  string
}

func (m *mockDataError) Error() string {
	return m.msg
}

func (m *mockDataError) ErrorData() any {
	return m.data
}

func TestTooManyResultsHint(t *testing.T) {
	t.Parallel()

	const celoHint = "Query returned more than 20000 results. Try with this block range [0x7dfd25, 0x7e0fcc]."

	tests := []struct {
		name      string
		err       error
		wantMatch bool
		wantFrom  uint64
		wantTo    uint64
		wantHint  bool
	}{
		{name: "nil"},
		{name: "plain unrelated", err: errors.New("execution reverted")},
		{name: "data error unrelated", err: &mockDataError{data: "header not found", msg: "header not found"}},
		{name: "fewer results is not a match", err: errors.New("Query returned less than 20000 results.")},
		{
			name:      "hint in error data",
			err:       &mockDataError{data: celoHint, msg: "query returned more than 20000 results"},
			wantMatch: true,
			wantFrom:  8256805,
			wantTo:    8261580,
			wantHint:  true,
		},
		{
			name:      "hint in message",
			err:       errors.New("Query returned more than 10000 results. Try with this block range [0x1aBc,   0x2DEF]."),
			wantMatch: true,
			wantFrom:  6844,
			wantTo:    11759,
			wantHint:  true,
		},
		{
			name:      "match without range",
			err:       errors.New("query returned more than 10000 results"),
			wantMatch: true,
		},
		{
			name:      "unparsable range",
			err:       errors.New("Query returned more than 5 results. Try with this block range [0xZZZZ, 0x1234]."),
			wantMatch: true,
		},
		{
			name:      "first of several ranges",
			err:       errors.New("Query returned more than 5 results. Try [0x10, 0x20] or [0x30, 0x40]."),
			wantMatch: true,
			wantFrom:  16,
			wantTo:    32,
			wantHint:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			match, data := IsTooManyResultsError(tt.err)
			require.Equal(t, tt.wantMatch, match)

			from, to, ok := ParseSuggestedBlockRange(data)
			require.Equal(t, tt.wantHint, ok)
			require.Equal(t, tt.wantFrom, from)
			require.Equal(t, tt.wantTo, to)
		})
	}
}

func TestIsChunkSizeError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "unrelated", err: errors.New("execution reverted"), want: false},
		{name: "block range", err: errors.New("eth_getLogs block range is too wide"), want: true},
		{name: "compute limit", err: errors.New("Compute Limit reached"), want: true},
		{name: "response size", err: errors.New("response size should not be greater than 150MB"), want: true},
		{name: "query timeout", err: errors.New("query timeout exceeded"), want: true},
		{
			name: "too many results",
			err: &mockDataError{
				data: "Query returned more than 10000 results. Try with this block range [0x1, 0x2].",
				msg:  "query returned more than 10000 results",
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, IsChunkSizeError(tt.err))
		})
	}
}

func TestShouldRetry(t *testing.T) {
	t.Parallel()

	require.True(t, shouldRetry(errors.New("503 service unavailable")))
	require.False(t, shouldRetry(errors.New("request timed out, reduce block range")))
	require.False(t, shouldRetry(errors.New("invalid argument")))
}

func TestSuggestedSpan(t *testing.T) {
	t.Parallel()

	hint := "Query returned more than 20000 results. Try with this block range [0x7dfd25, 0x7e0fcc]."

	require.Equal(t, uint64(4776), SuggestedSpan(&mockDataError{data: hint, msg: "query returned more than 20000 results"}))
	require.Equal(t, uint64(4776), SuggestedSpan(errors.New(hint)))
	require.Zero(t, SuggestedSpan(errors.New("query returned more than 10000 results")))
	require.Zero(t, SuggestedSpan(errors.New("block range too large")))
	require.Zero(t, SuggestedSpan(errors.New("Query returned more than 1 results. Try with this block range [0x20, 0x10].")))
	require.Zero(t, SuggestedSpan(nil))
}
