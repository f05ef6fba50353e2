// Package reward maps the number of found items to a discount tier.
package reward

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Summary is the user-facing reward state for a given found count.
type Summary struct {
	Title   string
	Message string
	// Code is the redemption code for the tier, empty below the first
	// discount threshold. A fresh code is minted on every evaluation;
	// codes are intentionally not stable across repeated queries.
	Code string
}

// Tier thresholds over the fixed ten-item catalog.
const (
	TenPercentAt    = 5
	TwentyPercentAt = 7
)

// Summarize evaluates the reward tier for found items out of total.
func Summarize(found, total int) Summary {
	switch {
	case found < TenPercentAt:
		return Summary{
			Title: "Keep Hunting!",
			Message: fmt.Sprintf("You've found %d/%d items. Find at least %d to unlock a 10%% discount.",
				found, total, TenPercentAt),
		}
	case found < TwentyPercentAt:
		code := "10OFF-" + codeSuffix()
		return Summary{
			Title:   "10% Unlocked",
			Message: fmt.Sprintf("You've found %d/%d items. Your code: %s.", found, total, code),
			Code:    code,
		}
	case found < total:
		code := "20OFF-" + codeSuffix()
		return Summary{
			Title:   "20% Unlocked",
			Message: fmt.Sprintf("You've found %d/%d items. Your code: %s.", found, total, code),
			Code:    code,
		}
	default:
		code := "20OFF-" + codeSuffix()
		return Summary{
			Title: "Grand Prize Entry",
			Message: fmt.Sprintf("You found all %d! Your code: %s. You're entered into the $5000 draw.",
				total, code),
			Code: code,
		}
	}
}

// codeSuffix returns a short random alphanumeric suffix: the first six
// characters of a fresh UUID, uppercased.
func codeSuffix() string {
	return strings.ToUpper(uuid.NewString()[:6])
}
