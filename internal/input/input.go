// Package input turns user intent into validated arrays for the generators:
// comma-separated parsing, random generation and per-algorithm validation.
package input

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"

	"github.com/llehouerou/sortviz/internal/sorting"
)

// Bounds for user-selectable settings.
const (
	MinRange = 5
	MaxRange = 100

	// MaxCountingValue bounds values fed to counting sort, whose count array
	// is sized by the maximum value.
	MaxCountingValue = 1 << 20
)

var (
	ErrEmpty     = errors.New("no numbers entered")
	ErrMalformed = errors.New("not a number")
	ErrNegative  = errors.New("negative numbers are not supported")
	ErrTooLarge  = errors.New("value too large")
)

// Mode selects where arrays come from.
type Mode int

const (
	ModeRandom Mode = iota
	ModeExplicit
)

// String returns the mode name used in configuration.
func (m Mode) String() string {
	switch m {
	case ModeRandom:
		return "random"
	case ModeExplicit:
		return "explicit"
	default:
		return "unknown"
	}
}

// ParseMode accepts "random" or "explicit" (also "input").
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "random", "":
		return ModeRandom, nil
	case "explicit", "input":
		return ModeExplicit, nil
	default:
		return ModeRandom, fmt.Errorf("unknown input mode %q", s)
	}
}

// Parse reads comma-separated integers. Blank tokens between commas are
// skipped; any other non-integer token fails with ErrMalformed.
func Parse(text string) ([]int, error) {
	var values []int
	for tok := range strings.SplitSeq(text, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", tok, ErrMalformed)
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return nil, ErrEmpty
	}
	return values, nil
}

// Format renders values as comma-separated text, the inverse of Parse.
func Format(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// Validate rejects values the algorithm cannot handle.
func Validate(a sorting.Algorithm, values []int) error {
	if !a.RequiresNonNegative() {
		return nil
	}
	for _, v := range values {
		if v < 0 {
			return fmt.Errorf("%s: %d: %w", a, v, ErrNegative)
		}
		if a == sorting.Counting && v > MaxCountingValue {
			return fmt.Errorf("%s: %d exceeds %d: %w", a, v, MaxCountingValue, ErrTooLarge)
		}
	}
	return nil
}

// ClampRange bounds r to [MinRange, MaxRange].
func ClampRange(r int) int {
	return min(max(r, MinRange), MaxRange)
}

// Random returns length uniform integers in [1, valueRange].
func Random(rng *rand.Rand, length, valueRange int) []int {
	if length <= 0 || valueRange <= 0 {
		return []int{}
	}
	out := make([]int, length)
	for i := range out {
		out[i] = rng.IntN(valueRange) + 1
	}
	return out
}

// Source produces the array for a run. Explicit sources return the same
// values every time; random sources draw a fresh array on every call.
type Source struct {
	mode       Mode
	values     []int
	length     int
	valueRange int
	rng        *rand.Rand
}

// Explicit returns a source that always yields values.
func Explicit(values []int) Source {
	return Source{mode: ModeExplicit, values: slices.Clone(values)}
}

// NewRandom returns a source drawing length values in [1, valueRange]. A
// length of 0 means length == valueRange. rng may be nil.
func NewRandom(rng *rand.Rand, length, valueRange int) Source {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint:gosec // visual data only
	}
	valueRange = ClampRange(valueRange)
	if length <= 0 {
		length = valueRange
	}
	return Source{mode: ModeRandom, length: length, valueRange: valueRange, rng: rng}
}

// Mode returns the source mode.
func (s Source) Mode() Mode {
	return s.mode
}

// Next returns the array for the next run.
func (s Source) Next() []int {
	if s.mode == ModeExplicit {
		return slices.Clone(s.values)
	}
	if s.rng == nil {
		return []int{}
	}
	return Random(s.rng, s.length, s.valueRange)
}
