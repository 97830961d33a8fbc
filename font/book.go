package font

// Len is an alias for Count, matching the FontBook-style introspection
// vocabulary (Len/Fonts/Families) alongside the registry's core
// match/get/count operations.
func (r *Registry) Len() int {
	return r.Count()
}

// Fonts returns every registered Font in insertion (face id) order.
func (r *Registry) Fonts() []*Font {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fonts := make([]*Font, 0, len(r.order))
	for _, id := range r.order {
		fonts = append(fonts, r.fonts[id])
	}
	return fonts
}

// FindByFamily returns every registered Font sharing family under the
// matcher's case folding (foldFamily), which is full Unicode case
// folding rather than ASCII-only folding.
func (r *Registry) FindByFamily(family string) []*Font {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byFamily[foldFamily(family)]
	fonts := make([]*Font, 0, len(ids))
	for _, id := range ids {
		fonts = append(fonts, r.fonts[id])
	}
	return fonts
}
