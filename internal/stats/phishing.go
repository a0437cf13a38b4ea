package stats

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"
)

// DateLayout is the day/month/year layout of stored password-change dates.
// Day and month may have one or two digits.
const DateLayout = "2/1/2006"

const secondsPerDay = 24 * 60 * 60

// ErrInvalidDate is returned for a password-change date that does not parse.
var ErrInvalidDate = errors.New("invalid date")

// AverageDateDifference sorts the dates chronologically and returns the mean
// number of days between consecutive changes, rounded half to even. Fewer
// than two dates yield 0.
func AverageDateDifference(dates []string) (int, error) {
	parsed := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		t, err := time.Parse(DateLayout, d)
		if err != nil {
			return 0, fmt.Errorf("%w %q: expected d/m/yyyy", ErrInvalidDate, d)
		}
		parsed = append(parsed, t)
	}
	if len(parsed) < 2 {
		return 0, nil
	}
	sort.Slice(parsed, func(i, j int) bool { return parsed[i].Before(parsed[j]) })

	var total int
	for i := 1; i < len(parsed); i++ {
		total += int((parsed[i].Unix() - parsed[i-1].Unix()) / secondsPerDay)
	}
	return int(math.RoundToEven(float64(total) / float64(len(parsed)-1))), nil
}

// PhishingProbability is the share of received phishing emails that were
// clicked; a user who received none has probability 0.
func PhishingProbability(clicked, phishing int) float64 {
	if phishing == 0 {
		return 0
	}
	return float64(clicked) / float64(phishing)
}
