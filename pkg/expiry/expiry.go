package expiry

import (
	"math"
	"time"

	"Expronix-Backend/domain"
	"Expronix-Backend/entities"
)

type Tier string

const (
	TierCritical   Tier = "Critical"
	TierNearExpiry Tier = "Near Expiry"
	TierSafe       Tier = "Safe"
)

type Priority struct {
	Score int    `json:"score"`
	Tier  Tier   `json:"tier"`
	Label string `json:"label"`
}

// DaysUntil returns the number of calendar days between ref and expiry,
// positive when expiry is in the future. Both dates are truncated to local
// midnight; the remainder is rounded half away from zero so daylight-saving
// shifts cannot produce off-by-one results.
func DaysUntil(expiryDate, referenceDate time.Time) int {
	e := midnight(expiryDate)
	r := midnight(referenceDate)
	return int(math.Round(e.Sub(r).Hours() / 24))
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Classify buckets an expiry date relative to a reference date. The reference
// is an explicit parameter so callers stay deterministic; pass time.Now() for
// live classification.
func Classify(expiryDate, referenceDate time.Time) entities.ExpiryStatus {
	diffDays := DaysUntil(expiryDate, referenceDate)

	if diffDays < 0 {
		return entities.StatusExpired
	}
	if diffDays <= 3 {
		return entities.StatusExpiringSoon
	}
	return entities.StatusFresh
}

// Score computes the 0-10 priority score and urgency tier for an expiry date.
// Lower scores are more urgent; expired items always score 0.
//
// The Critical tier cuts off at diffDays <= 2 while Classify treats
// diffDays <= 3 as Expiring Soon. The one-day window where an item is Fresh
// but Critical is inherited behavior and kept on purpose.
func Score(expiryDate, referenceDate time.Time) Priority {
	diffDays := DaysUntil(expiryDate, referenceDate)

	score := diffDays + 1
	if score < 0 {
		score = 0
	}
	if score > 10 {
		score = 10
	}
	if diffDays < 0 {
		score = 0
	}

	switch {
	case diffDays <= 2:
		label := "Expiring Soon"
		if diffDays < 0 {
			label = "Expired"
		}
		return Priority{Score: score, Tier: TierCritical, Label: label}
	case diffDays <= 6:
		return Priority{Score: score, Tier: TierNearExpiry, Label: "Near Expiry"}
	default:
		return Priority{Score: score, Tier: TierSafe, Label: "Safe"}
	}
}

// ParseDate parses dates arriving from request payloads or scan results.
// Accepts "2006-01-02" or RFC3339; anything else is a validation error so a
// malformed date can never reach Classify or Score.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, domain.ErrInvalidExpiryDate
}
