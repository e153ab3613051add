// Package sentiment tags free-text news reasons with a three-way sentiment.
package sentiment

import (
	"strings"
)

const (
	Positive = "Positive"
	Negative = "Negative"
	Neutral  = "Neutral"
)

// Classify assigns a sentiment tag by substring containment, checking
// "Positive" before "Negative". A reason containing both markers therefore
// resolves to Positive; downstream consumers depend on that priority order.
func Classify(reason string) string {
	switch {
	case strings.Contains(reason, Positive):
		return Positive
	case strings.Contains(reason, Negative):
		return Negative
	default:
		return Neutral
	}
}
