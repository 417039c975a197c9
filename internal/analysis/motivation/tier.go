package motivation

// Tier is the volunteer's progress bracket.
type Tier string

const (
	Starter  Tier = "starter"
	Steady   Tier = "steady"
	Champion Tier = "champion"
)

const (
	steadyThreshold   = 50
	championThreshold = 200
)

// DefaultMessage is used when the provider answers without any choice.
const DefaultMessage = "Keep going! You're making a difference!"

var fallbackMessages = map[Tier]string{
	Starter:  "Start small. Keep going! 🌱",
	Steady:   "Great job! Stay consistent! 💪",
	Champion: "Amazing work! Inspire others! ✨",
}

// TierFor buckets points: below 50, 50 up to 199, and 200 or more.
func TierFor(points int) Tier {
	switch {
	case points >= championThreshold:
		return Champion
	case points >= steadyThreshold:
		return Steady
	default:
		return Starter
	}
}

// Fallback returns the canned message for the points tier.
func Fallback(points int) string {
	return fallbackMessages[TierFor(points)]
}
