package mask

import (
	"math"

	"resp2mask/internal/sdi"
)

// ExpectedPowerRange is the tolerance band a judged response's power
// value must fall in. Bounds are inclusive; ±Inf leaves a side open.
// The nominal value the band was derived from is retained in the mask.
type ExpectedPowerRange struct {
	LowerBound   float64
	NominalValue float64
	UpperBound   float64
}

// Contains reports whether v falls inside the band.
func (r ExpectedPowerRange) Contains(v float64) bool {
	return v >= r.LowerBound && v <= r.UpperBound
}

// Bounded reports whether the named side of the band is finite.
func (r ExpectedPowerRange) Bounded() (lower, upper bool) {
	return !math.IsInf(r.LowerBound, -1), !math.IsInf(r.UpperBound, 1)
}

// ExpectedFrequencyInfo is the mask counterpart of one PSD entry.
type ExpectedFrequencyInfo struct {
	FrequencyRange sdi.FrequencyRange
	MaxPSD         ExpectedPowerRange
}

// ExpectedChannelInfo is the mask counterpart of one EIRP entry.
// ChannelCFI and MaxEIRP stay parallel arrays, as in the response.
type ExpectedChannelInfo struct {
	GlobalOperatingClass float64
	ChannelCFI           []float64
	MaxEIRP              []ExpectedPowerRange
}

// ExpectedResponse is the mask fragment derived from one inquiry
// response: the per-entry power bands, the accepted code set, and the
// optional vendor-extension pass-through. Source records where the
// response came from so merge collisions can name both contributors.
type ExpectedResponse struct {
	RequestID             string
	RulesetID             string
	ExpectedResponseCodes []sdi.ResponseCode
	// PermitAnyCode marks the code set advisory. On the wire it becomes
	// an empty disallowedResponseCodes list; otherwise that field is
	// omitted so harness-side defaults stay in charge.
	PermitAnyCode         bool
	ExpectedFrequencyInfo []ExpectedFrequencyInfo
	ExpectedChannelInfo   []ExpectedChannelInfo
	VendorExtensions      []sdi.VendorExtension

	Source string
}

// AcceptsCode reports how the mask judges a response code. ok means the
// code does not fail the mask; warn means it is unlisted but tolerated
// because the mask permits any code.
func (e *ExpectedResponse) AcceptsCode(code sdi.ResponseCode) (ok, warn bool) {
	for _, c := range e.ExpectedResponseCodes {
		if c == code {
			return true, false
		}
	}
	if e.PermitAnyCode {
		return true, true
	}
	return false, false
}

// Document is the final mask artifact for one response set: an ordered
// collection of expected responses with unique request IDs, plus any
// message-level vendor extensions.
type Document struct {
	Version           string
	ExpectedResponses []*ExpectedResponse
	VendorExtensions  []sdi.VendorExtension
}

// RequestIDs returns the fragment request IDs in document order.
func (d *Document) RequestIDs() []string {
	ids := make([]string, len(d.ExpectedResponses))
	for i, e := range d.ExpectedResponses {
		ids[i] = e.RequestID
	}
	return ids
}
