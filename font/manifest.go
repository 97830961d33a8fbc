package font

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Manifest is a declarative TOML list of fonts to preload:
//
//	[[fonts]]
//	family = "Inter"
//	path = "/usr/share/fonts/inter/Inter-Regular.ttf"
type Manifest struct {
	Fonts []ManifestFont `toml:"fonts"`
}

// ManifestFont is one [[fonts]] entry.
type ManifestFont struct {
	Family string `toml:"family"`
	Path   string `toml:"path"`
}

// LoadManifest parses a TOML manifest file and registers every font it
// lists. Returns the FaceIDs assigned, in manifest order.
func LoadManifest(r *Registry, path string) ([]FaceID, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}

	var ids []FaceID
	for _, entry := range m.Fonts {
		loaded, err := r.LoadFile(entry.Path)
		if err != nil {
			return ids, fmt.Errorf("manifest entry %q: %w", entry.Family, err)
		}
		ids = append(ids, loaded...)
	}
	return ids, nil
}
