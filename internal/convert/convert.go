// Package convert orchestrates the response-set conversion: building
// mask fragments from each decoded response message and merging them
// into a single mask document.
//
// Fragment building is independent per input file, so members of a set
// are converted concurrently; the merge runs as a single ordered pass
// afterwards, so the outcome never depends on completion order.
package convert

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"

	"resp2mask/internal/logging"
	"resp2mask/internal/mask"
	"resp2mask/internal/sdi"
)

// Input is one decoded member of a response set.
type Input struct {
	Source  string
	Message *sdi.AvailableSpectrumInquiryResponseMessage
}

// Skip records one response that could not be converted. Skips never
// abort the rest of the set.
type Skip struct {
	Source string
	Err    error
}

// Result is the outcome of converting one response set. Document is
// nil when no response survived conversion.
type Result struct {
	Document *mask.Document
	Skipped  []Skip
	Warnings []string
}

// Set converts the inputs of one response set into a single mask
// document under pol.
//
// Per-response failures (malformed responses, duplicate power keys)
// skip that response and are reported in the result. Range inversions,
// version mismatches, and duplicate request IDs are fatal to the set:
// Set returns the error and no result.
func Set(ctx context.Context, inputs []Input, pol mask.Policy, log logging.Logger) (*Result, error) {
	if err := pol.Validate(); err != nil {
		return nil, err
	}

	type partial struct {
		doc      *mask.Document
		skipped  []Skip
		warnings []string
	}
	partials := make([]partial, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, in := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			log.Info("converting", logging.String("source", in.Source))

			doc := &mask.Document{Version: in.Message.Version}
			if !pol.ExcludeExtensions {
				doc.VendorExtensions = in.Message.VendorExtensions
			}
			for r := range in.Message.AvailableSpectrumInquiryResponses {
				frag, warns, err := mask.Build(&in.Message.AvailableSpectrumInquiryResponses[r], pol, in.Source)
				partials[i].warnings = append(partials[i].warnings, warns...)
				if err != nil {
					var inv *mask.RangeInversionError
					if errors.As(err, &inv) {
						return err
					}
					partials[i].skipped = append(partials[i].skipped, Skip{Source: in.Source, Err: err})
					continue
				}
				doc.ExpectedResponses = append(doc.ExpectedResponses, frag)
			}
			if len(doc.ExpectedResponses) > 0 {
				partials[i].doc = doc
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &Result{}
	var parts []*mask.Document
	for _, p := range partials {
		res.Skipped = append(res.Skipped, p.skipped...)
		res.Warnings = append(res.Warnings, p.warnings...)
		if p.doc != nil {
			parts = append(parts, p.doc)
		}
	}

	doc, err := mask.Merge(parts)
	if err != nil {
		return nil, err
	}
	res.Document = doc
	return res, nil
}
