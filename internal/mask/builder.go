package mask

import (
	"fmt"

	"resp2mask/internal/sdi"
)

// builder.go — converts one inquiry response into its mask fragment:
// derived power bands per declared entry, the accepted code set, and
// the optional vendor-extension pass-through.

// Build derives the mask fragment for one response under pol. source
// names where the response came from and is recorded on the fragment
// for merge-time error reporting.
//
// Warnings (overlapping but non-identical frequency ranges) do not
// fail the build; they come back alongside the fragment. Errors are
// scoped to this one response unless they are a RangeInversionError,
// which the caller must treat as fatal to the whole set.
func Build(resp *sdi.AvailableSpectrumInquiryResponse, pol Policy, source string) (*ExpectedResponse, []string, error) {
	if resp.RequestID == "" {
		return nil, nil, &MalformedResponseError{Field: "requestId", Reason: "missing or empty"}
	}

	out := &ExpectedResponse{
		RequestID: resp.RequestID,
		RulesetID: resp.RulesetID,
		Source:    source,
	}
	var warnings []string

	// PSD entries, keyed by exact frequency range. Overlapping ranges
	// that are not byte-equal keys are legal per the wire format but
	// almost always a mistake in a reference response, so they warn.
	seenRanges := make(map[sdi.FrequencyRange]bool)
	for _, fi := range resp.AvailableFrequencyInfo {
		key := fmt.Sprintf("%g-%g MHz", fi.FrequencyRange.LowFrequency, fi.FrequencyRange.HighFrequency)
		if seenRanges[fi.FrequencyRange] {
			return nil, warnings, &DuplicateKeyError{Kind: PSD, Key: key}
		}
		for prev := range seenRanges {
			if prev.Overlaps(fi.FrequencyRange) {
				warnings = append(warnings, fmt.Sprintf(
					"%s: frequency range %s overlaps %g-%g MHz; mask entries kept separate",
					resp.RequestID, key, prev.LowFrequency, prev.HighFrequency))
			}
		}
		seenRanges[fi.FrequencyRange] = true

		band, err := Derive(PowerValue{Kind: PSD, Key: key, Nominal: fi.MaxPSD},
			pol.margins(PSD), pol.limits(PSD))
		if err != nil {
			return nil, warnings, err
		}
		out.ExpectedFrequencyInfo = append(out.ExpectedFrequencyInfo, ExpectedFrequencyInfo{
			FrequencyRange: fi.FrequencyRange,
			MaxPSD:         band,
		})
	}

	// EIRP entries, keyed by (operating class, channel CFI).
	type chanKey struct {
		class float64
		cfi   float64
	}
	seenChans := make(map[chanKey]bool)
	for _, ci := range resp.AvailableChannelInfo {
		if len(ci.ChannelCFI) != len(ci.MaxEIRP) {
			return nil, warnings, &MalformedResponseError{
				Field:  "availableChannelInfo",
				Reason: fmt.Sprintf("class %g lists %d channels but %d EIRP values", ci.GlobalOperatingClass, len(ci.ChannelCFI), len(ci.MaxEIRP)),
			}
		}
		bands := make([]ExpectedPowerRange, len(ci.MaxEIRP))
		for i, eirp := range ci.MaxEIRP {
			key := chanKey{class: ci.GlobalOperatingClass, cfi: ci.ChannelCFI[i]}
			if seenChans[key] {
				return nil, warnings, &DuplicateKeyError{
					Kind: EIRP,
					Key:  fmt.Sprintf("class %g channel %g", key.class, key.cfi),
				}
			}
			seenChans[key] = true

			band, err := Derive(PowerValue{
				Kind:    EIRP,
				Key:     fmt.Sprintf("class %g channel %g", key.class, key.cfi),
				Nominal: eirp,
			}, pol.margins(EIRP), pol.limits(EIRP))
			if err != nil {
				return nil, warnings, err
			}
			bands[i] = band
		}
		out.ExpectedChannelInfo = append(out.ExpectedChannelInfo, ExpectedChannelInfo{
			GlobalOperatingClass: ci.GlobalOperatingClass,
			ChannelCFI:           ci.ChannelCFI,
			MaxEIRP:              bands,
		})
	}

	// Accepted code set: the reference response's own code, relaxed to
	// also accept the generic failure when the reference failed with
	// something more specific.
	out.ExpectedResponseCodes = []sdi.ResponseCode{resp.Response.ResponseCode}
	if pol.ExpectLessSpecificError && resp.Response.ResponseCode.IsSpecificFailure() {
		out.ExpectedResponseCodes = append(out.ExpectedResponseCodes, sdi.GeneralFailure)
	}
	out.PermitAnyCode = pol.PermitAnyCode

	if !pol.ExcludeExtensions {
		out.VendorExtensions = resp.VendorExtensions
	}
	return out, warnings, nil
}
