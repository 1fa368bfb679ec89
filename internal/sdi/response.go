package sdi

import (
	"encoding/json"
	"fmt"
)

// SupplementalInfo carries parameter names explaining a specific
// response code. At most one field is populated.
type SupplementalInfo struct {
	MissingParams    []string `json:"missingParams,omitempty"`
	InvalidParams    []string `json:"invalidParams,omitempty"`
	UnexpectedParams []string `json:"unexpectedParams,omitempty"`
}

// Response is the outcome field of one inquiry response.
type Response struct {
	ResponseCode     ResponseCode      `json:"responseCode"`
	ShortDescription string            `json:"shortDescription,omitempty"`
	SupplementalInfo *SupplementalInfo `json:"supplementalInfo,omitempty"`
}

// AvailableFrequencyInfo reports the maximum permissible power in a
// frequency range, expressed as a power spectral density in dBm/MHz.
type AvailableFrequencyInfo struct {
	FrequencyRange FrequencyRange `json:"frequencyRange"`
	MaxPSD         float64        `json:"maxPsd"`
}

// AvailableChannelInfo reports the maximum permissible EIRP in dBm for
// each listed channel. ChannelCFI and MaxEIRP are parallel arrays under
// one global operating class.
type AvailableChannelInfo struct {
	GlobalOperatingClass float64   `json:"globalOperatingClass"`
	ChannelCFI           []float64 `json:"channelCfi"`
	MaxEIRP              []float64 `json:"maxEirp"`
}

// AvailableSpectrumInquiryResponse answers a single spectrum request.
type AvailableSpectrumInquiryResponse struct {
	RequestID              string                   `json:"requestId"`
	RulesetID              string                   `json:"rulesetId"`
	Response               Response                 `json:"response"`
	AvailableFrequencyInfo []AvailableFrequencyInfo `json:"availableFrequencyInfo,omitempty"`
	AvailableChannelInfo   []AvailableChannelInfo   `json:"availableChannelInfo,omitempty"`
	AvailabilityExpireTime string                   `json:"availabilityExpireTime,omitempty"`
	VendorExtensions       []VendorExtension        `json:"vendorExtensions,omitempty"`
}

// AvailableSpectrumInquiryResponseMessage is the top-level message an
// AFC system returns: one or more responses plus a protocol version.
type AvailableSpectrumInquiryResponseMessage struct {
	Version                           string                             `json:"version"`
	AvailableSpectrumInquiryResponses []AvailableSpectrumInquiryResponse `json:"availableSpectrumInquiryResponses"`
	VendorExtensions                  []VendorExtension                  `json:"vendorExtensions,omitempty"`
}

// DecodeResponseMessage parses one response message from JSON and
// checks the structural minimum a conversion needs: a version string
// and at least one response.
func DecodeResponseMessage(data []byte) (*AvailableSpectrumInquiryResponseMessage, error) {
	var msg AvailableSpectrumInquiryResponseMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("decode response message: %w", err)
	}
	if msg.Version == "" {
		return nil, fmt.Errorf("decode response message: missing version")
	}
	if len(msg.AvailableSpectrumInquiryResponses) == 0 {
		return nil, fmt.Errorf("decode response message: no availableSpectrumInquiryResponses")
	}
	return &msg, nil
}
