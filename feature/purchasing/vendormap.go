package purchasing

import (
	"encoding/json"
	"fmt"
	"os"
)

// VendorMap translates opaque ABM vendor tokens (e.g. "64AFCB0") into
// readable vendor names. Loaded once per run, read-only thereafter.
type VendorMap map[string]string

// LoadVendorMap reads a vendor token to name mapping from a JSON file.
// A missing file is not an error and yields an empty map: vendor tokens are
// then used as-is. A present but unreadable file is an error so a typo in
// the mapping does not silently degrade every vendor name.
func LoadVendorMap(path string) (VendorMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return VendorMap{}, nil
		}
		return VendorMap{}, fmt.Errorf("reading vendor mapping %s: %w", path, err)
	}

	var mapping VendorMap
	if err := json.Unmarshal(data, &mapping); err != nil {
		return VendorMap{}, fmt.Errorf("parsing vendor mapping %s: %w", path, err)
	}
	if mapping == nil {
		mapping = VendorMap{}
	}
	return mapping, nil
}

// Resolve returns the display name for a vendor token, falling back to the
// raw token when no mapping entry exists.
func (m VendorMap) Resolve(token string) string {
	if name, ok := m[token]; ok {
		return name
	}
	return token
}
