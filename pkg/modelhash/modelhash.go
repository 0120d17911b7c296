// Package modelhash extracts supported-model checksums from manifest
// debug_info blocks. Tracers that emit new-style rules attach a JSON payload
// describing the model assets they traced; the md5 hashes collected here
// feed the model-check registration source.
package modelhash

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/goliatone/go-oplist/pkg/manifest"
)

type debugInfo struct {
	IsNewStyleRule bool                 `json:"is_new_style_rule"`
	AssetInfo      map[string]assetInfo `json:"asset_info"`
}

type assetInfo struct {
	MD5Hash []string `json:"md5_hash"`
}

// FromManifests collects the md5 hashes of every asset recorded by a
// new-style debug_info payload, deduplicated and sorted. Manifests without
// debug_info contribute nothing; a debug_info entry that is not valid JSON
// is an error naming the manifest it came from.
func FromManifests(manifests ...manifest.Manifest) ([]string, error) {
	hashes := make(map[string]struct{})
	for _, m := range manifests {
		if len(m.DebugInfo) == 0 {
			continue
		}

		var info debugInfo
		if err := json.Unmarshal([]byte(m.DebugInfo[0]), &info); err != nil {
			return nil, fmt.Errorf("modelhash: %s: decode debug_info: %w", describe(m), err)
		}
		if !info.IsNewStyleRule {
			continue
		}
		for _, asset := range info.AssetInfo {
			for _, hash := range asset.MD5Hash {
				hashes[hash] = struct{}{}
			}
		}
	}

	if len(hashes) == 0 {
		return nil, nil
	}
	out := make([]string, 0, len(hashes))
	for hash := range hashes {
		out = append(out, hash)
	}
	sort.Strings(out)
	return out, nil
}

func describe(m manifest.Manifest) string {
	if m.Source != "" {
		return m.Source
	}
	return "manifest"
}
