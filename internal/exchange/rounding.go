package exchange

import (
	"fmt"
	"math"
	"strings"
)

// RoundingFunc turns a converted amount into whole subunits of the target currency.
type RoundingFunc func(amount float64) int64

// Truncate drops the fractional part, rounding toward zero.
func Truncate(amount float64) int64 { return int64(amount) }

func Floor(amount float64) int64 { return int64(math.Floor(amount)) }

func Ceil(amount float64) int64 { return int64(math.Ceil(amount)) }

// HalfUp rounds half away from zero.
func HalfUp(amount float64) int64 { return int64(math.Round(amount)) }

// HalfEven rounds half to the nearest even value (banker's rounding).
func HalfEven(amount float64) int64 { return int64(math.RoundToEven(amount)) }

var roundingByName = map[string]RoundingFunc{
	"truncate":  Truncate,
	"floor":     Floor,
	"ceil":      Ceil,
	"half_up":   HalfUp,
	"half_even": HalfEven,
}

// RoundingNames lists the names accepted by RoundingByName.
var RoundingNames = []string{"truncate", "floor", "ceil", "half_up", "half_even"}

// RoundingByName returns the named policy. An empty name yields nil, which means
// "use the converter default".
func RoundingByName(name string) (RoundingFunc, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, nil
	}
	fn, ok := roundingByName[name]
	if !ok {
		return nil, fmt.Errorf("unknown rounding %q, expected one of %s", name, strings.Join(RoundingNames, ", "))
	}
	return fn, nil
}
