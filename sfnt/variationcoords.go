package sfnt

// VariationCoordinates is an ordered sequence of (tag, value) pairs with
// at most one entry per tag. Setting an existing tag updates it in place
// rather than appending a duplicate.
type VariationCoordinates struct {
	tags   []Tag
	values []float64
}

// Set assigns value to tag, updating an existing entry in place or
// appending a new one.
func (c *VariationCoordinates) Set(tag Tag, value float64) {
	for i, t := range c.tags {
		if t == tag {
			c.values[i] = value
			return
		}
	}
	c.tags = append(c.tags, tag)
	c.values = append(c.values, value)
}

// Get returns the value set for tag and whether it was present.
func (c *VariationCoordinates) Get(tag Tag) (float64, bool) {
	for i, t := range c.tags {
		if t == tag {
			return c.values[i], true
		}
	}
	return 0, false
}

// Len returns the number of (tag, value) pairs set.
func (c *VariationCoordinates) Len() int {
	return len(c.tags)
}

// Validate checks every set tag's value against the face's declared axis
// bounds. Tags absent from the face are silently ignored; an in-range
// violation for a tag the face does declare fails validation.
func (c *VariationCoordinates) Validate(fvar *FvarTable) error {
	if fvar == nil {
		return nil
	}
	for i, tag := range c.tags {
		for _, axis := range fvar.Axes {
			if axis.Tag != tag {
				continue
			}
			v := c.values[i]
			if v < axis.Min || v > axis.Max {
				return errCorrupted("axis " + tag.String() + " value out of range")
			}
		}
	}
	return nil
}
