package booking

import (
	"strings"
	"testing"
	"time"

	"shareBooker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilter(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input    string
		expected Filter
		wantErr  bool
	}{
		{input: "ALL", expected: FilterAll},
		{input: "CURRENT", expected: FilterCurrent},
		{input: "FUTURE", expected: FilterFuture},
		{input: "PAST", expected: FilterPast},
		{input: "WAITING", expected: FilterWaiting},
		{input: "REJECTED", expected: FilterRejected},
		{input: "APPROVED", expected: FilterApproved},
		{input: "all", expected: FilterAll},
		{input: "waiting", expected: FilterWaiting},
		{input: "Approved", expected: FilterApproved},
		{input: "UNKNOWN", wantErr: true},
		{input: "", wantErr: true},
		{input: "DONE", wantErr: true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()

			f, err := ParseFilter(tc.input)

			if tc.wantErr {
				require.ErrorIs(t, err, ErrUnsupportedFilter)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, f)
			assert.Equal(t, strings.ToUpper(tc.input), f.String())
		})
	}
}

func TestFilterMatches(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 9, 12, 0, 0, 0, time.UTC)

	current := models.Booking{
		Start:  now.Add(-time.Hour),
		End:    now.Add(time.Hour),
		Status: models.StatusApproved,
	}
	future := models.Booking{
		Start:  now.Add(time.Hour),
		End:    now.Add(2 * time.Hour),
		Status: models.StatusWaiting,
	}
	past := models.Booking{
		Start:  now.Add(-2 * time.Hour),
		End:    now.Add(-time.Hour),
		Status: models.StatusRejected,
	}
	startingNow := models.Booking{
		Start:  now,
		End:    now.Add(time.Hour),
		Status: models.StatusApproved,
	}

	testCases := []struct {
		name     string
		filter   Filter
		booking  models.Booking
		expected bool
	}{
		{"all matches current", FilterAll, current, true},
		{"all matches past", FilterAll, past, true},
		{"current matches running booking", FilterCurrent, current, true},
		{"current matches booking starting exactly now", FilterCurrent, startingNow, true},
		{"current rejects future booking", FilterCurrent, future, false},
		{"current rejects past booking", FilterCurrent, past, false},
		{"future matches future booking", FilterFuture, future, true},
		{"future rejects booking starting exactly now", FilterFuture, startingNow, false},
		{"future rejects current booking", FilterFuture, current, false},
		{"past matches past booking", FilterPast, past, true},
		{"past rejects current booking", FilterPast, current, false},
		{"waiting matches waiting status", FilterWaiting, future, true},
		{"waiting rejects approved status", FilterWaiting, current, false},
		{"rejected matches rejected status", FilterRejected, past, true},
		{"rejected rejects waiting status", FilterRejected, future, false},
		{"approved matches approved status", FilterApproved, current, true},
		{"approved rejects rejected status", FilterApproved, past, false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, tc.filter.matches(tc.booking, now))
		})
	}
}

// CURRENT, FUTURE and PAST partition any booking set: every booking lands in
// exactly one of the three buckets.
func TestTimeFiltersArePartition(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 9, 12, 0, 0, 0, time.UTC)

	bookings := []models.Booking{
		{Start: now.Add(-3 * time.Hour), End: now.Add(-time.Hour)},
		{Start: now.Add(-time.Hour), End: now.Add(time.Hour)},
		{Start: now.Add(time.Hour), End: now.Add(3 * time.Hour)},
		{Start: now, End: now.Add(time.Hour)},
		{Start: now.Add(-time.Hour), End: now},
	}

	for _, b := range bookings {
		count := 0
		for _, f := range []Filter{FilterCurrent, FilterFuture, FilterPast} {
			if f.matches(b, now) {
				count++
			}
		}
		assert.Equal(t, 1, count, "booking %+v must be in exactly one time bucket", b)
	}
}
