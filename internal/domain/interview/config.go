package interview

// DefaultRoundLimit is the number of answered questions after which an
// interview is complete.
const DefaultRoundLimit = 5

// MaxScorePerRound is the denominator the evaluation prompt asks for.
const MaxScorePerRound = 10

// Config holds the tunable limits of an interview.
type Config struct {
	RoundLimit int
}

// DefaultConfig returns the five-round interview.
func DefaultConfig() Config {
	return Config{RoundLimit: DefaultRoundLimit}
}

// MaxTotalScore is the best achievable total, e.g. 50 for five rounds.
func (c Config) MaxTotalScore() int {
	return c.RoundLimit * MaxScorePerRound
}
