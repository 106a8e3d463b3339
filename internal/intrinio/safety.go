package intrinio

import "github.com/divitrack/Dividend-Tracker-Backend/internal/model"

// Safety score rubric. These are policy constants for an informational
// heuristic, not validated business rules: a payout ratio comfortably below
// earnings and a yield that is not suspiciously high both read as safer.
const (
	safetyBaseline = 50

	payoutComfortable = 0.40 // payout below this earns the full bonus
	payoutModerate    = 0.60
	payoutStretched   = 0.80

	yieldElevated = 5.0 // percent
	yieldExtreme  = 8.0

	ratingHighThreshold   = 70
	ratingMediumThreshold = 40
)

// ScoreSafety buckets a payout ratio and dividend yield into a Low/Medium/
// High safety rating. A nil payout ratio contributes nothing either way.
func ScoreSafety(payoutRatio *float64, dividendYield float64) model.DividendSafetyScore {
	score := safetyBaseline

	if payoutRatio != nil {
		switch ratio := *payoutRatio; {
		case ratio < payoutComfortable:
			score += 30
		case ratio < payoutModerate:
			score += 15
		case ratio < payoutStretched:
			// Sustainable but unremarkable.
		default:
			score -= 20
		}
	}

	switch {
	case dividendYield > yieldExtreme:
		score -= 20
	case dividendYield > yieldElevated:
		score -= 10
	default:
		score += 10
	}

	rating := model.SafetyRatingLow
	switch {
	case score >= ratingHighThreshold:
		rating = model.SafetyRatingHigh
	case score >= ratingMediumThreshold:
		rating = model.SafetyRatingMedium
	}

	return model.DividendSafetyScore{
		Score:       score,
		PayoutRatio: payoutRatio,
		Rating:      rating,
	}
}
