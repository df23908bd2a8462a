package trip

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// MaxInterestLength is the character limit of the interest field
const MaxInterestLength = 225

// Plan is a trip plan draft assembled by the plan form
type Plan struct {
	Date     time.Time
	Place    Place
	Interest string
}

// InterestCount returns the number of characters used by the interest text
func (p Plan) InterestCount() int {
	return utf8.RuneCountInString(p.Interest)
}

// Validate checks the draft before submission
func (p Plan) Validate() error {
	if p.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	if strings.TrimSpace(p.Place.Name) == "" {
		return fmt.Errorf("location is required")
	}
	if n := p.InterestCount(); n > MaxInterestLength {
		return fmt.Errorf("interest is too long: %d / %d", n, MaxInterestLength)
	}
	return nil
}

// Summary is the one-line confirmation shown after submitting
func (p Plan) Summary() string {
	s := fmt.Sprintf("Plan: %s at %s", p.Place.Name, p.Date.Format("Jan 2 15:04"))
	if interest := strings.TrimSpace(p.Interest); interest != "" {
		s += fmt.Sprintf(" (%s)", interest)
	}
	return s
}
