package eligibility

import (
	"context"
	"time"
)

// Verdict is the eligibility decision for a prospective donation.
type Verdict struct {
	Eligible bool   `json:"eligible"`
	Reason   string `json:"reason"`
}

// Evaluator decides whether a donor may donate right now. lastDonation is the
// donor's most recent completed donation, or nil when there is none; callers
// must compute it from the donation ledger, never from user input.
//
// Implementations fail safe: an answer that cannot be interpreted yields
// {Eligible: false} with the raw answer in the reason, without error. A hard
// failure to reach the decision service returns an error and the enclosing
// operation must abort.
type Evaluator interface {
	Evaluate(ctx context.Context, questionnaire map[string]interface{}, lastDonation *time.Time) (Verdict, error)
}

// FormatLastDonation renders the last-donation date the way the decision
// service expects: "YYYY-MM-DD", or "None" when there is no history.
func FormatLastDonation(lastDonation *time.Time) string {
	if lastDonation == nil {
		return "None"
	}
	return lastDonation.Format("2006-01-02")
}
