package font

import (
	"fmt"
	"log"
	"os"
	"sort"
	"sync"

	"github.com/boergens/fontkit/sfnt"
)

// Registry owns every loaded Font, assigns each a stable, never-reused
// FaceID, and runs the matching algorithm against a FontDescriptor. A
// Face is immutable once added; Registry's lock only protects the
// bookkeeping maps/slices around it, matching the interior-mutability
// caching idiom this module's ambient stack uses elsewhere.
type Registry struct {
	mu       sync.RWMutex
	fonts    map[FaceID]*Font
	order    []FaceID // insertion order, for deterministic tie-breaking
	byFamily map[string][]FaceID
	nextID   FaceID
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		fonts:    make(map[FaceID]*Font),
		byFamily: make(map[string][]FaceID),
	}
}

// LoadData registers every face contained in data under the assigned
// FaceIDs, in collection order.
func (r *Registry) LoadData(data []byte) ([]FaceID, error) {
	fonts, err := LoadFromBytes(data, "")
	if err != nil {
		return nil, fmt.Errorf("invalid font: %w", err)
	}
	return r.add(fonts), nil
}

// LoadFile reads and registers every face contained in the file at path.
func (r *Registry) LoadFile(path string) ([]FaceID, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("file not found: %w", err)
	}
	fonts, err := LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("invalid font: %w", err)
	}
	return r.add(fonts), nil
}

// PlatformFontInfo describes one font as reported by a platform font
// enumerator (fontconfig, CoreText, DirectWrite, or a directory walk).
// The enumerator itself lives outside this package; this type is only
// the contract LoadSystem consumes.
type PlatformFontInfo struct {
	FamilyName   string
	Path         string
	Weight       Weight
	Style        Style
	IsSystemFont bool
}

// LoadSystem consumes an iterator of platform-described fonts, parsing
// and registering each. A parse failure for one entry is logged and
// skipped; LoadSystem itself never fails. Re-running LoadSystem may
// register duplicates — de-duplication is not this layer's job.
func (r *Registry) LoadSystem(infos []PlatformFontInfo) int {
	count := 0
	for _, info := range infos {
		if _, err := r.LoadFile(info.Path); err != nil {
			log.Printf("font: skipping %s: %v", info.Path, err)
			continue
		}
		count++
	}
	return count
}

// add assigns FaceIDs to fonts and indexes them, holding the lock for the
// whole batch so collection siblings get contiguous, ascending ids.
func (r *Registry) add(fonts []*Font) []FaceID {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]FaceID, 0, len(fonts))
	for _, f := range fonts {
		id := r.nextID
		r.nextID++

		r.fonts[id] = f
		r.order = append(r.order, id)

		folded := foldFamily(f.Info.Family)
		r.byFamily[folded] = append(r.byFamily[folded], id)

		ids = append(ids, id)
	}
	return ids
}

// Get returns the Font registered under id, or nil if absent.
func (r *Registry) Get(id FaceID) *Font {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.fonts[id]
}

// Count returns the number of registered faces.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.fonts)
}

// Families returns every distinct (case-folded) family name registered.
func (r *Registry) Families() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	families := make([]string, 0, len(r.byFamily))
	for f := range r.byFamily {
		families = append(families, f)
	}
	sort.Strings(families)
	return families
}

// Match runs the matching algorithm: for each family in desc's chain, in
// order, score every candidate sharing that family and return the
// lowest-scoring one (ties broken by lowest face id). The first family
// with any match wins; later families are never consulted.
func (r *Registry) Match(desc FontDescriptor) (FaceID, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var candidates []matchCandidate
	for _, id := range r.order {
		f := r.fonts[id]
		candidates = append(candidates, matchCandidate{
			id:     id,
			family: f.Info.Family,
			variant: Variant{
				Style:   f.Info.Style,
				Weight:  f.Info.Weight,
				Stretch: f.Info.Stretch,
			},
		})
	}

	return matchDescriptor(candidates, desc)
}

// FaceData returns face id's raw container bytes and its index within
// that container, satisfying shaping.FaceSource so the shaping package
// never needs to import this one.
func (r *Registry) FaceData(id int) (data []byte, faceIndex int, ok bool) {
	f := r.Get(FaceID(id))
	if f == nil {
		return nil, 0, false
	}
	return f.RawData, f.FaceIndex, true
}

// FaceUnitsPerEm returns face id's unscaled units-per-em and ascent/
// descent, satisfying shaping.FaceSource.
func (r *Registry) FaceUnitsPerEm(id int) (unitsPerEm uint16, ascent, descent float64, ok bool) {
	f := r.Get(FaceID(id))
	if f == nil {
		return 0, 0, 0, false
	}
	m := f.Face().Metrics()
	return m.UnitsPerEm, m.Ascent, m.Descent, true
}

// Metrics returns face id's metrics scaled to sizePx. Fails if sizePx is
// not positive or id is unknown.
func (r *Registry) Metrics(id FaceID, sizePx float64) (sfnt.FontMetrics, error) {
	if sizePx <= 0 {
		return sfnt.FontMetrics{}, fmt.Errorf("font: size must be positive, got %v", sizePx)
	}

	f := r.Get(id)
	if f == nil {
		return sfnt.FontMetrics{}, fmt.Errorf("font: no such face id %d", id)
	}

	return f.Face().Metrics().Scaled(sizePx), nil
}
