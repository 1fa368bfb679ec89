package mask

// derive.go — power-range derivation: nominal value ∓ margins, clamped
// to regulatory limits. Pure arithmetic over float64 with ±Inf standing
// in for "unbounded", so margin and limit composition falls out of
// ordinary comparisons.

import "math"

// PowerValue is one declared transmit-power figure from a response.
// Key is the channel or frequency identifier, used only for error
// reporting.
type PowerValue struct {
	Kind    PowerKind
	Key     string
	Nominal float64
}

// Derive computes the expected power range for one declared value.
//
// The nominal value is first coerced into [limits.Lower, limits.Upper],
// then the band is widened by the margins and clamped back to the
// limits:
//
//	upper = min(nominal + margins.Upper, limits.Upper)
//	lower = max(nominal - margins.Lower, limits.Lower)
//
// An unbounded (+Inf) margin opens that side of the band up to the
// matching limit; if the limit is also unbounded the side stays open.
// A clamped result with lower > upper can only come from an unusable
// margin/limit combination and returns a RangeInversionError naming
// the kind and key. A NaN bound (infinities cancelling in the
// arithmetic) is reported the same way rather than emitted.
func Derive(v PowerValue, m Margins, l Limits) (ExpectedPowerRange, error) {
	nominal := min(max(v.Nominal, l.Lower), l.Upper)

	upper := min(nominal+m.Upper, l.Upper)
	lower := max(nominal-m.Lower, l.Lower)

	if lower > upper || math.IsNaN(lower) || math.IsNaN(upper) {
		return ExpectedPowerRange{}, &RangeInversionError{
			Kind:  v.Kind,
			Key:   v.Key,
			Lower: lower,
			Upper: upper,
		}
	}
	return ExpectedPowerRange{
		LowerBound:   lower,
		NominalValue: nominal,
		UpperBound:   upper,
	}, nil
}
