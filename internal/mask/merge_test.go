package mask

// merge_test.go — Tests for response-set merging: order preservation,
// request-ID uniqueness, version agreement, and the single-member
// equivalence property.

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"resp2mask/internal/sdi"
)

func fragment(requestID, source string) *ExpectedResponse {
	return &ExpectedResponse{
		RequestID:             requestID,
		RulesetID:             "US_47_CFR_PART_15_SUBPART_E",
		ExpectedResponseCodes: []sdi.ResponseCode{sdi.Success},
		Source:                source,
	}
}

func TestMergeDistinctIDs(t *testing.T) {
	a := &Document{Version: "1.4", ExpectedResponses: []*ExpectedResponse{fragment("REQ-USA1", "a.json")}}
	b := &Document{Version: "1.4", ExpectedResponses: []*ExpectedResponse{fragment("REQ-USA2", "b.json")}}

	got, err := Merge([]*Document{a, b})
	if err != nil {
		t.Fatalf("Merge returned error: %v", err)
	}
	wantIDs := []string{"REQ-USA1", "REQ-USA2"}
	if diff := cmp.Diff(wantIDs, got.RequestIDs()); diff != "" {
		t.Errorf("merged request IDs mismatch (-want +got):\n%s", diff)
	}
	if got.Version != "1.4" {
		t.Errorf("version = %q, want 1.4", got.Version)
	}
}

func TestMergeDuplicateID(t *testing.T) {
	a := &Document{Version: "1.4", ExpectedResponses: []*ExpectedResponse{fragment("REQ-USA1", "a.json")}}
	b := &Document{Version: "1.4", ExpectedResponses: []*ExpectedResponse{fragment("REQ-USA1", "b.json")}}

	got, err := Merge([]*Document{a, b})
	if got != nil {
		t.Error("Merge returned a document alongside a duplicate-ID error")
	}
	var dup *DuplicateRequestIDError
	if !errors.As(err, &dup) {
		t.Fatalf("error = %v, want DuplicateRequestIDError", err)
	}
	if dup.RequestID != "REQ-USA1" {
		t.Errorf("duplicate ID = %q, want REQ-USA1", dup.RequestID)
	}
	if dup.FirstSource != "a.json" || dup.SecondSource != "b.json" {
		t.Errorf("sources = %q / %q, want a.json / b.json", dup.FirstSource, dup.SecondSource)
	}
}

func TestMergeDuplicateIDWithinOneDocument(t *testing.T) {
	a := &Document{Version: "1.4", ExpectedResponses: []*ExpectedResponse{
		fragment("REQ-USA1", "a.json"),
		fragment("REQ-USA1", "a.json"),
	}}
	_, err := Merge([]*Document{a})
	var dup *DuplicateRequestIDError
	if !errors.As(err, &dup) {
		t.Fatalf("error = %v, want DuplicateRequestIDError", err)
	}
}

func TestMergeVersionMismatch(t *testing.T) {
	a := &Document{Version: "1.4", ExpectedResponses: []*ExpectedResponse{fragment("REQ-USA1", "a.json")}}
	b := &Document{Version: "1.3", ExpectedResponses: []*ExpectedResponse{fragment("REQ-USA2", "b.json")}}

	_, err := Merge([]*Document{a, b})
	var mismatch *VersionMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("error = %v, want VersionMismatchError", err)
	}
	if mismatch.Want != "1.4" || mismatch.Got != "1.3" {
		t.Errorf("versions = %q/%q, want 1.4/1.3", mismatch.Want, mismatch.Got)
	}
}

// TestMergeSingleMemberEquivalence checks that a one-member set merges
// to content identical to the member itself.
func TestMergeSingleMemberEquivalence(t *testing.T) {
	part := &Document{Version: "1.4", ExpectedResponses: []*ExpectedResponse{fragment("REQ-SRI17", "only.json")}}

	got, err := Merge([]*Document{part})
	if err != nil {
		t.Fatalf("Merge returned error: %v", err)
	}
	if diff := cmp.Diff(part, got); diff != "" {
		t.Errorf("one-member merge altered content (-want +got):\n%s", diff)
	}
}

func TestMergeEmpty(t *testing.T) {
	got, err := Merge(nil)
	if err != nil {
		t.Fatalf("Merge(nil) returned error: %v", err)
	}
	if got != nil {
		t.Errorf("Merge(nil) = %v, want nil", got)
	}
}

func TestMergeConcatenatesExtensions(t *testing.T) {
	a := &Document{
		Version:           "1.4",
		ExpectedResponses: []*ExpectedResponse{fragment("REQ-USA1", "a.json")},
		VendorExtensions:  []sdi.VendorExtension{{ExtensionID: "acme:first"}},
	}
	b := &Document{
		Version:           "1.4",
		ExpectedResponses: []*ExpectedResponse{fragment("REQ-USA2", "b.json")},
		VendorExtensions:  []sdi.VendorExtension{{ExtensionID: "acme:second"}},
	}
	got, err := Merge([]*Document{a, b})
	if err != nil {
		t.Fatalf("Merge returned error: %v", err)
	}
	if len(got.VendorExtensions) != 2 ||
		got.VendorExtensions[0].ExtensionID != "acme:first" ||
		got.VendorExtensions[1].ExtensionID != "acme:second" {
		t.Errorf("extensions = %v, want first then second", got.VendorExtensions)
	}
}
