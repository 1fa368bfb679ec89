// Package mask derives response masks from AFC available spectrum
// inquiry responses: tolerance bands around declared power values,
// accepted response-code sets, and the merge of several per-request
// derivations into one mask document.
//
// Everything in this package is a pure in-memory transformation; file
// discovery, configuration loading, and output writing live with the
// callers in internal/source, internal/config, and cmd/resp2mask.
package mask

import "math"

// PowerKind distinguishes the two power conventions a response may
// declare: EIRP per channel, or PSD per frequency range.
type PowerKind int

const (
	EIRP PowerKind = iota
	PSD
)

func (k PowerKind) String() string {
	if k == PSD {
		return "PSD"
	}
	return "EIRP"
}

// Margins widen the tolerance band around a nominal power value.
// Both are non-negative; +Inf leaves that side of the band open.
type Margins struct {
	Lower float64
	Upper float64
}

// Limits clamp a derived band to regulatory absolutes, in the same
// units as the nominal value. -Inf / +Inf disable a side.
type Limits struct {
	Lower float64
	Upper float64
}

// Policy is the full set of conversion knobs. It is built once by the
// configuration loader and passed immutably into Build.
type Policy struct {
	EIRPMargins Margins
	PSDMargins  Margins
	EIRPLimits  Limits
	PSDLimits   Limits

	// ExpectLessSpecificError also accepts GENERAL_FAILURE when the
	// reference response carried a more specific failure code.
	ExpectLessSpecificError bool
	// PermitAnyCode marks the code set advisory: an unlisted code in a
	// judged response warns instead of failing.
	PermitAnyCode bool
	// ExcludeExtensions drops vendor extensions from the mask.
	ExcludeExtensions bool
}

// DefaultPolicy returns the built-in conversion policy: band open
// below, exact at and above the nominal value, no regulatory clamps,
// general-failure leniency on, extensions excluded.
func DefaultPolicy() Policy {
	return Policy{
		EIRPMargins:             Margins{Lower: math.Inf(1), Upper: 0},
		PSDMargins:              Margins{Lower: math.Inf(1), Upper: 0},
		EIRPLimits:              Limits{Lower: math.Inf(-1), Upper: math.Inf(1)},
		PSDLimits:               Limits{Lower: math.Inf(-1), Upper: math.Inf(1)},
		ExpectLessSpecificError: true,
		PermitAnyCode:           false,
		ExcludeExtensions:       true,
	}
}

// Validate checks the numeric constraints on margins and limits before
// any conversion runs. A violation means the configuration file is
// wrong, so the error names the offending option.
func (p Policy) Validate() error {
	checks := []struct {
		option string
		m      Margins
		l      Limits
	}{
		{"eirp", p.EIRPMargins, p.EIRPLimits},
		{"psd", p.PSDMargins, p.PSDLimits},
	}
	for _, c := range checks {
		if c.m.Lower < 0 || math.IsNaN(c.m.Lower) {
			return &InvalidConfigError{Option: c.option + "_margins.lower", Reason: "must be a non-negative number or inf"}
		}
		if c.m.Upper < 0 || math.IsNaN(c.m.Upper) {
			return &InvalidConfigError{Option: c.option + "_margins.upper", Reason: "must be a non-negative number or inf"}
		}
		if math.IsNaN(c.l.Lower) || math.IsNaN(c.l.Upper) {
			return &InvalidConfigError{Option: c.option + "_limits", Reason: "must be numbers or ±inf"}
		}
		// lower = +inf or upper = -inf leaves no value the nominal can
		// be clamped to; Inf-Inf arithmetic downstream would yield NaN.
		if math.IsInf(c.l.Lower, 1) || math.IsInf(c.l.Upper, -1) {
			return &InvalidConfigError{Option: c.option + "_limits", Reason: "lower may not be +inf and upper may not be -inf"}
		}
		if c.l.Lower > c.l.Upper {
			return &InvalidConfigError{Option: c.option + "_limits", Reason: "lower exceeds upper"}
		}
	}
	return nil
}

// margins returns the margin pair for one power kind.
func (p Policy) margins(k PowerKind) Margins {
	if k == PSD {
		return p.PSDMargins
	}
	return p.EIRPMargins
}

// limits returns the limit pair for one power kind.
func (p Policy) limits(k PowerKind) Limits {
	if k == PSD {
		return p.PSDLimits
	}
	return p.EIRPLimits
}
