package mask

// encode.go — mask document serialization. The mask dialect keeps
// Python-encoder JSON conventions: two-space indent, and unbounded
// power bounds written as the bare Infinity / -Infinity tokens, which
// encoding/json refuses to emit. The document is therefore rendered by
// hand from an ordered value tree instead of json.Marshal.

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"resp2mask/internal/sdi"
)

const indent = "  "

// jsonValue is one node of the rendered tree: string, float64,
// json.RawMessage, []jsonValue, or *jsonObject.
type jsonValue any

// jsonObject is a JSON object with stable key order.
type jsonObject struct {
	keys []string
	vals map[string]jsonValue
}

func obj() *jsonObject { return &jsonObject{vals: make(map[string]jsonValue)} }

// set appends a key/value pair. Values are rendered in insertion order.
func (o *jsonObject) set(key string, v jsonValue) *jsonObject {
	o.keys = append(o.keys, key)
	o.vals[key] = v
	return o
}

// MarshalIndent renders the document in the mask wire format, with a
// trailing newline so the output diff-compares cleanly.
func (d *Document) MarshalIndent() ([]byte, error) {
	var buf bytes.Buffer
	if err := render(&buf, d.tree(), 0); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// tree converts the document into the ordered value tree. Optional
// fields are omitted when empty; disallowedResponseCodes is present
// (and empty) only for permit-any fragments, so harness defaults stay
// in charge otherwise.
func (d *Document) tree() *jsonObject {
	resps := make([]jsonValue, len(d.ExpectedResponses))
	for i, e := range d.ExpectedResponses {
		resps[i] = e.tree()
	}
	root := obj().
		set("version", d.Version).
		set("expectedSpectrumInquiryResponses", resps)
	if len(d.VendorExtensions) > 0 {
		root.set("vendorExtensions", extensionTree(d.VendorExtensions))
	}
	return root
}

func (e *ExpectedResponse) tree() *jsonObject {
	o := obj().
		set("requestId", e.RequestID).
		set("rulesetId", e.RulesetID)

	codes := make([]jsonValue, len(e.ExpectedResponseCodes))
	for i, c := range e.ExpectedResponseCodes {
		codes[i] = float64(c)
	}
	o.set("expectedResponseCodes", codes)
	if e.PermitAnyCode {
		o.set("disallowedResponseCodes", []jsonValue{})
	}

	if len(e.ExpectedFrequencyInfo) > 0 {
		infos := make([]jsonValue, len(e.ExpectedFrequencyInfo))
		for i, fi := range e.ExpectedFrequencyInfo {
			infos[i] = obj().
				set("frequencyRange", obj().
					set("lowFrequency", fi.FrequencyRange.LowFrequency).
					set("highFrequency", fi.FrequencyRange.HighFrequency)).
				set("maxPsd", fi.MaxPSD.tree())
		}
		o.set("expectedFrequencyInfo", infos)
	}

	if len(e.ExpectedChannelInfo) > 0 {
		infos := make([]jsonValue, len(e.ExpectedChannelInfo))
		for i, ci := range e.ExpectedChannelInfo {
			cfis := make([]jsonValue, len(ci.ChannelCFI))
			for j, cfi := range ci.ChannelCFI {
				cfis[j] = cfi
			}
			bands := make([]jsonValue, len(ci.MaxEIRP))
			for j, band := range ci.MaxEIRP {
				bands[j] = band.tree()
			}
			infos[i] = obj().
				set("globalOperatingClass", ci.GlobalOperatingClass).
				set("channelCfi", cfis).
				set("maxEirp", bands)
		}
		o.set("expectedChannelInfo", infos)
	}

	if len(e.VendorExtensions) > 0 {
		o.set("vendorExtensions", extensionTree(e.VendorExtensions))
	}
	return o
}

func (r ExpectedPowerRange) tree() *jsonObject {
	return obj().
		set("upperBound", r.UpperBound).
		set("nominalValue", r.NominalValue).
		set("lowerBound", r.LowerBound)
}

func extensionTree(exts []sdi.VendorExtension) []jsonValue {
	out := make([]jsonValue, len(exts))
	for i, ext := range exts {
		out[i] = obj().
			set("extensionId", ext.ExtensionID).
			set("parameters", json.RawMessage(ext.Parameters))
	}
	return out
}

// render writes one tree node at the given indent depth.
func render(buf *bytes.Buffer, v jsonValue, depth int) error {
	switch val := v.(type) {
	case string:
		b, err := json.Marshal(val)
		if err != nil {
			return err
		}
		buf.Write(b)
	case float64:
		buf.WriteString(formatFloat(val))
	case json.RawMessage:
		if len(val) == 0 {
			buf.WriteString("null")
			return nil
		}
		// Vendor payloads are opaque; re-indent them to match.
		return json.Indent(buf, val, pad(depth), indent)
	case []jsonValue:
		if len(val) == 0 {
			buf.WriteString("[]")
			return nil
		}
		buf.WriteString("[\n")
		for i, item := range val {
			buf.WriteString(pad(depth + 1))
			if err := render(buf, item, depth+1); err != nil {
				return err
			}
			if i < len(val)-1 {
				buf.WriteByte(',')
			}
			buf.WriteByte('\n')
		}
		buf.WriteString(pad(depth))
		buf.WriteByte(']')
	case *jsonObject:
		if len(val.keys) == 0 {
			buf.WriteString("{}")
			return nil
		}
		buf.WriteString("{\n")
		for i, key := range val.keys {
			buf.WriteString(pad(depth + 1))
			fmt.Fprintf(buf, "%q: ", key)
			if err := render(buf, val.vals[key], depth+1); err != nil {
				return err
			}
			if i < len(val.keys)-1 {
				buf.WriteByte(',')
			}
			buf.WriteByte('\n')
		}
		buf.WriteString(pad(depth))
		buf.WriteByte('}')
	default:
		return fmt.Errorf("encode mask: unsupported value %T", v)
	}
	return nil
}

// formatFloat renders a JSON number, with unbounded values as the
// Infinity tokens the mask dialect uses.
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	default:
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
}

func pad(depth int) string {
	return strings.Repeat(indent, depth)
}
