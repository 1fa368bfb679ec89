package mask

// merge.go — folds the per-response mask documents of one response set
// into a single document, enforcing request-ID uniqueness and version
// agreement across the whole set.

// Merge combines the documents of one response set, in input order,
// into one mask document.
//
// Request IDs must be unique across the entire set, including within a
// single input document: a collision returns a DuplicateRequestIDError
// naming both contributing sources and no document. All inputs must
// agree on the protocol version. Message-level vendor extensions are
// concatenated in input order.
//
// A one-element input merges to a document with the same fragments,
// so converting a single response and converting a one-member set
// produce identical content.
func Merge(parts []*Document) (*Document, error) {
	if len(parts) == 0 {
		return nil, nil
	}

	merged := &Document{Version: parts[0].Version}
	firstSource := make(map[string]string)

	for _, part := range parts {
		if part.Version != merged.Version {
			src := ""
			if len(part.ExpectedResponses) > 0 {
				src = part.ExpectedResponses[0].Source
			}
			return nil, &VersionMismatchError{Want: merged.Version, Got: part.Version, Source: src}
		}
		for _, frag := range part.ExpectedResponses {
			if first, ok := firstSource[frag.RequestID]; ok {
				return nil, &DuplicateRequestIDError{
					RequestID:    frag.RequestID,
					FirstSource:  first,
					SecondSource: frag.Source,
				}
			}
			firstSource[frag.RequestID] = frag.Source
			merged.ExpectedResponses = append(merged.ExpectedResponses, frag)
		}
		merged.VendorExtensions = append(merged.VendorExtensions, part.VendorExtensions...)
	}
	return merged, nil
}
