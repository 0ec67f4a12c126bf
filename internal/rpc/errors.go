package rpc

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/goran-ethernal/RangeIndexor/internal/common"
	"github.com/goran-ethernal/RangeIndexor/internal/retry"
)

var (
	tooManyResultsRe = regexp.MustCompile(`(?i)query returned more than \d+ results`)
	blockRangeHintRe = regexp.MustCompile(`\[(0x[0-9a-fA-F]+),\s*(0x[0-9a-fA-F]+)\]`)

	// provider messages asking for a smaller block range
	chunkSizeFragments = []string{
		"compute limit",
		"block range",
		"query timeout",
		"response size",
		"exceeded",
		"too large",
		"limit exceeded",
		"timed out",
		"timeout",
	}
)

// IsTooManyResultsError checks if the error is an RPC "too many results" error (DataError with message in ErrorData).
func IsTooManyResultsError(err error) (bool, string) {
	if err == nil {
		return false, ""
	}

	var dataErr rpc.DataError
	if errors.As(err, &dataErr) {
		errData := fmt.Sprintf("%v", dataErr.ErrorData())
		return tooManyResultsRe.MatchString(errData), errData
	}

	if tooManyResultsRe.MatchString(err.Error()) {
		return true, err.Error()
	}

	return false, ""
}

// IsChunkSizeError reports whether the provider rejected a request because the block range was too wide.
func IsChunkSizeError(err error) bool {
	if err == nil {
		return false
	}

	if ok, _ := IsTooManyResultsError(err); ok {
		return true
	}

	errStr := strings.ToLower(err.Error())
	for _, fragment := range chunkSizeFragments {
		if strings.Contains(errStr, fragment) {
			return true
		}
	}

	return false
}

// ParseSuggestedBlockRange attempts to extract the suggested block range from the error message.
// Expected format: "Query returned more than 20000 results. Try with this block range [0x7dfd25, 0x7e0fcc]."
func ParseSuggestedBlockRange(err string) (fromBlock, toBlock uint64, ok bool) {
	if err == "" {
		return 0, 0, false
	}

	matches := blockRangeHintRe.FindStringSubmatch(err)

	const expectedMatches = 3 // full match + 2 groups
	if len(matches) != expectedMatches {
		return 0, 0, false
	}

	from, err1 := common.ParseBlockNumber(matches[1])
	to, err2 := common.ParseBlockNumber(matches[2])

	if err1 != nil || err2 != nil {
		return 0, 0, false
	}

	return from, to, true
}

// SuggestedSpan returns the width of the block range a "too many results" error
// suggests, or 0 when the error carries no usable hint.
func SuggestedSpan(err error) uint64 {
	ok, data := IsTooManyResultsError(err)
	if !ok {
		return 0
	}

	from, to, ok := ParseSuggestedBlockRange(data)
	if !ok || to < from {
		return 0
	}
	return to - from + 1
}

// errorType buckets an error for the rpc error metric.
func errorType(err error) string {
	switch {
	case IsChunkSizeError(err):
		return "range_too_large"
	case retry.IsRetryable(err):
		return "transient"
	default:
		return "other"
	}
}
