package sdi

import "fmt"

// ResponseCode reports success or failure of an available spectrum
// inquiry. -1 is a general failure, 0 is success, 100-199 are protocol
// errors, and 300-399 are inquiry-specific errors. Vendors may use
// codes outside the named set, so the type is an open int rather than
// a closed enum.
type ResponseCode int

const (
	GeneralFailure      ResponseCode = -1
	Success             ResponseCode = 0
	VersionNotSupported ResponseCode = 100
	DeviceDisallowed    ResponseCode = 101
	MissingParam        ResponseCode = 102
	InvalidValue        ResponseCode = 103
	UnexpectedParam     ResponseCode = 106
	UnsupportedSpectrum ResponseCode = 300
	UnsupportedBasis    ResponseCode = 301
)

var responseCodeNames = map[ResponseCode]string{
	GeneralFailure:      "GENERAL_FAILURE",
	Success:             "SUCCESS",
	VersionNotSupported: "VERSION_NOT_SUPPORTED",
	DeviceDisallowed:    "DEVICE_DISALLOWED",
	MissingParam:        "MISSING_PARAM",
	InvalidValue:        "INVALID_VALUE",
	UnexpectedParam:     "UNEXPECTED_PARAM",
	UnsupportedSpectrum: "UNSUPPORTED_SPECTRUM",
	UnsupportedBasis:    "UNSUPPORTED_BASIS",
}

func (c ResponseCode) String() string {
	if name, ok := responseCodeNames[c]; ok {
		return fmt.Sprintf("%s (%d)", name, int(c))
	}
	return fmt.Sprintf("VENDOR_SPECIFIC (%d)", int(c))
}

// IsSpecificFailure reports whether c is a failure code more specific
// than the generic GENERAL_FAILURE. Such codes may be relaxed to also
// accept GENERAL_FAILURE when building a mask.
func (c ResponseCode) IsSpecificFailure() bool {
	return c != Success && c != GeneralFailure
}
