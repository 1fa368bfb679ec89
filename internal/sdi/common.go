// Package sdi holds the spectrum-device-interface wire types shared by
// inquiry responses and the masks derived from them.
//
// Only the fields the converter reads are modeled strictly; everything a
// response may legally carry beyond that (descriptions, supplemental
// info, vendor payloads) is passed through opaquely.
package sdi

import "encoding/json"

// FrequencyRange is a half-open frequency interval in MHz:
// [LowFrequency, HighFrequency). Contiguous ranges in real responses
// share a high/low endpoint, so an endpoint shared with another range
// does not count as overlap.
type FrequencyRange struct {
	LowFrequency  float64 `json:"lowFrequency"`
	HighFrequency float64 `json:"highFrequency"`
}

// Overlaps reports whether two ranges share any frequency.
func (r FrequencyRange) Overlaps(other FrequencyRange) bool {
	return r.LowFrequency < other.HighFrequency && other.LowFrequency < r.HighFrequency
}

// VendorExtension is the standard extension envelope. Parameters are
// kept as raw JSON so unknown payloads survive a convert round trip
// byte-for-byte.
type VendorExtension struct {
	ExtensionID string          `json:"extensionId"`
	Parameters  json.RawMessage `json:"parameters"`
}
