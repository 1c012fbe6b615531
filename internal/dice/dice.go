package dice

import (
	"math/rand"
	"regexp"
	"strconv"
)

// Roller rolls dice from an injected random source. Every generation call
// owns its own Roller so results are reproducible from a seed.
type Roller struct {
	rng *rand.Rand
}

// NewRoller creates a roller backed by the given random source.
func NewRoller(rng *rand.Rand) *Roller {
	return &Roller{rng: rng}
}

// Roll rolls n dice with the specified number of sides and returns the total
func (r *Roller) Roll(n, sides int) int {
	if n < 1 || sides < 1 {
		return 0
	}
	total := 0
	for i := 0; i < n; i++ {
		total += r.rng.Intn(sides) + 1
	}
	return total
}

// RollWithBonus rolls n dice with the specified number of sides and adds a bonus
func (r *Roller) RollWithBonus(n, sides, bonus int) int {
	return r.Roll(n, sides) + bonus
}

// notationRegex matches dice notation like "1d6", "2d4+1", "1d8-2"
var notationRegex = regexp.MustCompile(`^(\d+)d(\d+)([+-]\d+)?$`)

// Valid reports whether the notation parses.
func Valid(notation string) bool {
	return notationRegex.MatchString(notation)
}

// RollNotation parses dice notation and returns the roll result.
// Supports formats: "1d6", "2d4", "1d8+2", "2d6-1".
// Returns 0 if the notation is invalid.
func (r *Roller) RollNotation(notation string) int {
	if notation == "" {
		return 0
	}

	matches := notationRegex.FindStringSubmatch(notation)
	if matches == nil {
		return 0
	}

	count, _ := strconv.Atoi(matches[1])
	sides, _ := strconv.Atoi(matches[2])

	bonus := 0
	if matches[3] != "" {
		bonus, _ = strconv.Atoi(matches[3])
	}

	return r.RollWithBonus(count, sides, bonus)
}
