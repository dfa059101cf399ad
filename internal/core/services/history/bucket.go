package history

import (
	"time"
)

const (
	// BucketWidth is the fixed width of a charting slot.
	BucketWidth = 10 * time.Minute

	// BucketsPerHour is how many slots one hour of history spans.
	BucketsPerHour = 6
)

// BucketStart maps a timestamp to the start of its containing 10-minute
// bucket: minutes floored to the lower multiple of 10, seconds and
// sub-second zeroed. Times are normalized to UTC so bucket keys are
// stable regardless of the server timezone.
func BucketStart(t time.Time) time.Time {
	return t.UTC().Truncate(BucketWidth)
}

// Grid enumerates n consecutive bucket starts ending at the bucket that
// contains end. It walks backward from end in 10-minute steps and then
// reverses, so the result is ordered oldest to newest with no gaps.
func Grid(end time.Time, n int) []time.Time {
	grid := make([]time.Time, 0, n)
	cursor := BucketStart(end)
	for i := 0; i < n; i++ {
		grid = append(grid, cursor)
		cursor = cursor.Add(-BucketWidth)
	}
	for i, j := 0, len(grid)-1; i < j; i, j = i+1, j-1 {
		grid[i], grid[j] = grid[j], grid[i]
	}
	return grid
}
