package mask

import "fmt"

// MalformedResponseError reports a response missing a field the
// conversion needs. It is scoped to one response: siblings in the same
// set keep converting.
type MalformedResponseError struct {
	Field  string
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response: %s: %s", e.Field, e.Reason)
}

// DuplicateKeyError reports two power entries in one response sharing a
// channel or frequency key. Scoped to one response.
type DuplicateKeyError struct {
	Kind PowerKind
	Key  string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate %s key %s in response", e.Kind, e.Key)
}

// DuplicateRequestIDError reports two responses in one set sharing a
// request ID. Aggregated responses must carry distinct request IDs, so
// this is fatal to the whole set: no partial mask is produced.
type DuplicateRequestIDError struct {
	RequestID    string
	FirstSource  string
	SecondSource string
}

func (e *DuplicateRequestIDError) Error() string {
	return fmt.Sprintf("duplicate request ID %q: first seen in %s, again in %s",
		e.RequestID, e.FirstSource, e.SecondSource)
}

// VersionMismatchError reports responses with different protocol
// versions in one set. Masks cannot mix versions, so this is fatal to
// the set.
type VersionMismatchError struct {
	Want   string
	Got    string
	Source string
}

func (e *VersionMismatchError) Error() string {
	return fmt.Sprintf("version mismatch: %s has version %q, set has %q",
		e.Source, e.Got, e.Want)
}

// RangeInversionError reports a derived power range whose clamped lower
// bound exceeds its upper bound. That can only come from an unusable
// margin/limit combination, so it is fatal to the set rather than a
// per-response skip.
type RangeInversionError struct {
	Kind  PowerKind
	Key   string
	Lower float64
	Upper float64
}

func (e *RangeInversionError) Error() string {
	return fmt.Sprintf("%s range for %s inverted after clamping: lower %g > upper %g (check margins and limits)",
		e.Kind, e.Key, e.Lower, e.Upper)
}

// InvalidConfigError reports a conversion policy option violating its
// numeric constraints.
type InvalidConfigError struct {
	Option string
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %s: %s", e.Option, e.Reason)
}
