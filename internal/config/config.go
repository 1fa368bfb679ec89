// Package config loads the conversion policy from a TOML file (the
// tool's native config format) or a YAML file, merging file values
// key-by-key over the built-in defaults.
//
// Unbounded margins and limits are written as the float infinity of
// the config language: `inf` in TOML, `.inf` in YAML.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"resp2mask/internal/mask"
)

// filePolicy mirrors the on-disk option names. Pointer fields
// distinguish "absent, keep the default" from an explicit zero.
type filePolicy struct {
	EIRPMargins             *boundPair `toml:"eirp_margins" yaml:"eirp_margins"`
	PSDMargins              *boundPair `toml:"psd_margins" yaml:"psd_margins"`
	EIRPLimits              *boundPair `toml:"eirp_limits" yaml:"eirp_limits"`
	PSDLimits               *boundPair `toml:"psd_limits" yaml:"psd_limits"`
	ExpectLessSpecificError *bool      `toml:"expect_less_specific_error" yaml:"expect_less_specific_error"`
	PermitAnyCode           *bool      `toml:"permit_any_code" yaml:"permit_any_code"`
	ExcludeExtensions       *bool      `toml:"exclude_extensions" yaml:"exclude_extensions"`
}

type boundPair struct {
	Lower *float64 `toml:"lower" yaml:"lower"`
	Upper *float64 `toml:"upper" yaml:"upper"`
}

// Load reads the policy file at path and merges it over the built-in
// defaults. An empty path, or a path that does not exist, yields the
// defaults unchanged. The merged policy is validated before return.
func Load(path string) (mask.Policy, error) {
	pol := mask.DefaultPolicy()
	if path == "" {
		return pol, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return pol, nil
	}
	if err != nil {
		return pol, fmt.Errorf("read config %s: %w", path, err)
	}

	var fp filePolicy
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fp); err != nil {
			return pol, fmt.Errorf("parse config %s: %w", path, err)
		}
	default:
		if err := toml.Unmarshal(data, &fp); err != nil {
			return pol, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	fp.apply(&pol)
	if err := pol.Validate(); err != nil {
		return pol, fmt.Errorf("config %s: %w", path, err)
	}
	return pol, nil
}

// apply overlays the file values onto pol, keeping defaults for any
// key the file omits.
func (fp *filePolicy) apply(pol *mask.Policy) {
	applyPair(fp.EIRPMargins, &pol.EIRPMargins.Lower, &pol.EIRPMargins.Upper)
	applyPair(fp.PSDMargins, &pol.PSDMargins.Lower, &pol.PSDMargins.Upper)
	applyPair(fp.EIRPLimits, &pol.EIRPLimits.Lower, &pol.EIRPLimits.Upper)
	applyPair(fp.PSDLimits, &pol.PSDLimits.Lower, &pol.PSDLimits.Upper)

	if fp.ExpectLessSpecificError != nil {
		pol.ExpectLessSpecificError = *fp.ExpectLessSpecificError
	}
	if fp.PermitAnyCode != nil {
		pol.PermitAnyCode = *fp.PermitAnyCode
	}
	if fp.ExcludeExtensions != nil {
		pol.ExcludeExtensions = *fp.ExcludeExtensions
	}
}

func applyPair(pair *boundPair, lower, upper *float64) {
	if pair == nil {
		return
	}
	if pair.Lower != nil {
		*lower = *pair.Lower
	}
	if pair.Upper != nil {
		*upper = *pair.Upper
	}
}
