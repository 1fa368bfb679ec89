package sdi

// response_test.go — Tests for response decoding and the shared wire
// helpers.

import (
	"strings"
	"testing"
)

const sampleMessage = `{
  "version": "1.4",
  "availableSpectrumInquiryResponses": [
    {
      "requestId": "REQ-USA1",
      "rulesetId": "US_47_CFR_PART_15_SUBPART_E",
      "availableFrequencyInfo": [
        {"frequencyRange": {"lowFrequency": 5925, "highFrequency": 6425}, "maxPsd": 10.5}
      ],
      "availableChannelInfo": [
        {"globalOperatingClass": 133, "channelCfi": [15, 47], "maxEirp": [30.0, 35.5]}
      ],
      "response": {"responseCode": 0, "shortDescription": "SUCCESS"}
    }
  ]
}`

func TestDecodeResponseMessage(t *testing.T) {
	msg, err := DecodeResponseMessage([]byte(sampleMessage))
	if err != nil {
		t.Fatalf("DecodeResponseMessage returned error: %v", err)
	}
	if msg.Version != "1.4" {
		t.Errorf("version = %q, want 1.4", msg.Version)
	}
	if len(msg.AvailableSpectrumInquiryResponses) != 1 {
		t.Fatalf("responses = %d, want 1", len(msg.AvailableSpectrumInquiryResponses))
	}
	resp := msg.AvailableSpectrumInquiryResponses[0]
	if resp.RequestID != "REQ-USA1" {
		t.Errorf("requestId = %q, want REQ-USA1", resp.RequestID)
	}
	if resp.Response.ResponseCode != Success {
		t.Errorf("responseCode = %v, want SUCCESS", resp.Response.ResponseCode)
	}
	if got := resp.AvailableFrequencyInfo[0].MaxPSD; got != 10.5 {
		t.Errorf("maxPsd = %g, want 10.5", got)
	}
	if got := resp.AvailableChannelInfo[0].MaxEIRP[1]; got != 35.5 {
		t.Errorf("maxEirp[1] = %g, want 35.5", got)
	}
}

func TestDecodeResponseMessageErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"not json", `{"version": `, "decode response message"},
		{"missing version", `{"availableSpectrumInquiryResponses": [{"requestId": "1", "rulesetId": "r", "response": {"responseCode": 0}}]}`, "missing version"},
		{"no responses", `{"version": "1.4", "availableSpectrumInquiryResponses": []}`, "no availableSpectrumInquiryResponses"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeResponseMessage([]byte(tc.data))
			if err == nil {
				t.Fatal("DecodeResponseMessage accepted bad input")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error = %v, want it to mention %q", err, tc.want)
			}
		})
	}
}

func TestFrequencyRangeOverlaps(t *testing.T) {
	base := FrequencyRange{LowFrequency: 6000, HighFrequency: 6100}
	tests := []struct {
		name  string
		other FrequencyRange
		want  bool
	}{
		{"identical", FrequencyRange{6000, 6100}, true},
		{"contained", FrequencyRange{6020, 6080}, true},
		{"straddles low edge", FrequencyRange{5950, 6050}, true},
		// Contiguous ranges share an endpoint without overlapping.
		{"adjacent below", FrequencyRange{5900, 6000}, false},
		{"adjacent above", FrequencyRange{6100, 6200}, false},
		{"disjoint", FrequencyRange{6425, 6525}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := base.Overlaps(tc.other); got != tc.want {
				t.Errorf("Overlaps(%+v) = %v, want %v", tc.other, got, tc.want)
			}
			// Overlap is symmetric.
			if got := tc.other.Overlaps(base); got != tc.want {
				t.Errorf("Overlaps is not symmetric for %+v", tc.other)
			}
		})
	}
}

func TestResponseCode(t *testing.T) {
	if s := Success.String(); !strings.Contains(s, "SUCCESS") {
		t.Errorf("Success.String() = %q", s)
	}
	if s := ResponseCode(777).String(); !strings.Contains(s, "VENDOR_SPECIFIC") {
		t.Errorf("vendor code String() = %q", s)
	}

	if Success.IsSpecificFailure() || GeneralFailure.IsSpecificFailure() {
		t.Error("SUCCESS / GENERAL_FAILURE counted as specific failures")
	}
	for _, c := range []ResponseCode{VersionNotSupported, InvalidValue, UnsupportedSpectrum, 777} {
		if !c.IsSpecificFailure() {
			t.Errorf("%v not counted as a specific failure", c)
		}
	}
}
