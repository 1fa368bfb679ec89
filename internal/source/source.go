// Package source turns caller-supplied paths into response sets: a
// single file is a one-member set, a directory is a set of all regular
// files directly inside it. It also owns output-file naming, which
// depends on the merged mask's request IDs.
package source

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"resp2mask/internal/mask"
)

// Set is one response set to be converted into a single mask file.
type Set struct {
	// Name is the directory name, or the file stem for single-file
	// sets; it seeds the default output file name.
	Name string
	// Path is the path the caller supplied.
	Path string
	// Files are the member response files, in sorted order so a
	// directory converts the same way on every run.
	Files []string
	// Dir records whether the set came from a directory.
	Dir bool
}

// Discover builds the response set for one source path.
func Discover(path string) (*Set, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("source %s: %w", path, err)
	}

	if !info.IsDir() {
		stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		return &Set{Name: stem, Path: path, Files: []string{path}}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("source %s: %w", path, err)
	}
	set := &Set{Name: filepath.Base(path), Path: path, Dir: true}
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			set.Files = append(set.Files, filepath.Join(path, entry.Name()))
		}
	}
	sort.Strings(set.Files)
	return set, nil
}

// wfaRequestID matches the request IDs of WFA-issued test vectors,
// e.g. REQ-USA1 or REQ-SRI17.
var wfaRequestID = regexp.MustCompile(`^REQ-([A-Z]{3})(\d+)$`)

// MaskFileName derives the output file name for a converted set.
//
// Non-WFA sets are named after the set: <name>_mask.json. For WFA
// vectors (first request ID matches REQ-XXXN), single-response masks
// are named from the request ID (AFCS.XXX.N_mask.json) and
// multi-response masks from the set name with underscores promoted to
// dots (AFCS.<name with _ → .>_mask.json).
func (s *Set) MaskFileName(doc *mask.Document) string {
	if doc != nil && len(doc.ExpectedResponses) > 0 {
		m := wfaRequestID.FindStringSubmatch(doc.ExpectedResponses[0].RequestID)
		if m != nil {
			if len(doc.ExpectedResponses) > 1 {
				return "AFCS." + strings.ReplaceAll(s.Name, "_", ".") + "_mask.json"
			}
			return "AFCS." + m[1] + "." + m[2] + "_mask.json"
		}
	}
	return s.Name + "_mask.json"
}
