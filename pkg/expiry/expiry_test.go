package expiry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"Expronix-Backend/domain"
	"Expronix-Backend/entities"
)

var ref = time.Date(2025, 6, 15, 10, 30, 0, 0, time.Local)

func days(n int) time.Time {
	return ref.AddDate(0, 0, n)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		expiry time.Time
		want   entities.ExpiryStatus
	}{
		{"one day before reference", days(-1), entities.StatusExpired},
		{"ten days before reference", days(-10), entities.StatusExpired},
		{"same day", days(0), entities.StatusExpiringSoon},
		{"three days out", days(3), entities.StatusExpiringSoon},
		{"four days out", days(4), entities.StatusFresh},
		{"ten days out", days(10), entities.StatusFresh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.expiry, ref))
		})
	}
}

func TestClassifyIgnoresTimeOfDay(t *testing.T) {
	lateTonight := time.Date(2025, 6, 15, 23, 59, 0, 0, time.Local)
	earlyRef := time.Date(2025, 6, 15, 0, 1, 0, 0, time.Local)

	assert.Equal(t, entities.StatusExpiringSoon, Classify(lateTonight, earlyRef))

	yesterdayEvening := time.Date(2025, 6, 14, 23, 59, 0, 0, time.Local)
	assert.Equal(t, entities.StatusExpired, Classify(yesterdayEvening, earlyRef))
}

func TestScore(t *testing.T) {
	tests := []struct {
		name      string
		expiry    time.Time
		wantScore int
		wantTier  Tier
		wantLabel string
	}{
		{"expired yesterday", days(-1), 0, TierCritical, "Expired"},
		{"expired last week", days(-7), 0, TierCritical, "Expired"},
		{"expires today", days(0), 1, TierCritical, "Expiring Soon"},
		{"expires in two days", days(2), 3, TierCritical, "Expiring Soon"},
		{"expires in three days", days(3), 4, TierNearExpiry, "Near Expiry"},
		{"expires in six days", days(6), 7, TierNearExpiry, "Near Expiry"},
		{"expires in seven days", days(7), 8, TierSafe, "Safe"},
		{"expires in ten days", days(10), 10, TierSafe, "Safe"},
		{"expires far in the future", days(90), 10, TierSafe, "Safe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.expiry, ref)
			assert.Equal(t, tt.wantScore, got.Score)
			assert.Equal(t, tt.wantTier, got.Tier)
			assert.Equal(t, tt.wantLabel, got.Label)
		})
	}
}

func TestScoreMonotonic(t *testing.T) {
	prev := Score(days(-15), ref).Score
	for n := -14; n <= 15; n++ {
		cur := Score(days(n), ref).Score
		assert.GreaterOrEqual(t, cur, prev, "score must not decrease as expiry moves later (n=%d)", n)
		prev = cur
	}
}

// Day three is Expiring Soon to the classifier but Near Expiry to the scorer.
// Inherited behavior, asserted so nobody unifies the thresholds by accident.
func TestClassifierScorerThresholdMismatch(t *testing.T) {
	threeOut := days(3)
	assert.Equal(t, entities.StatusExpiringSoon, Classify(threeOut, ref))
	assert.Equal(t, TierNearExpiry, Score(threeOut, ref).Tier)
}

func TestDaysUntilRoundsHalfAwayFromZero(t *testing.T) {
	// A 23-hour calendar day (spring DST transition) must still count as one day.
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	before := time.Date(2025, 3, 8, 12, 0, 0, 0, loc)
	after := time.Date(2025, 3, 9, 12, 0, 0, 0, loc)
	assert.Equal(t, 1, DaysUntil(after, before))
	assert.Equal(t, -1, DaysUntil(before, after))
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2025-06-18")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC), got)

	got, err = ParseDate("2025-06-18T09:30:00Z")
	assert.NoError(t, err)
	assert.Equal(t, 2025, got.Year())

	_, err = ParseDate("18/06/2025")
	assert.ErrorIs(t, err, domain.ErrInvalidExpiryDate)

	_, err = ParseDate("")
	assert.ErrorIs(t, err, domain.ErrInvalidExpiryDate)
}
