package hand

// Validate checks r against every invariant in order: deck size, hand size,
// each category's range in list order, then the combined category size.
//
// Postcondition: returns nil, or a *ConfigError describing the first violation.
func (r Request) Validate() error {
	if r.Population <= 0 {
		return configErrorf(InvalidPopulation, -1,
			"deck size must be > 0, got %d", r.Population)
	}
	if r.HandSize <= 0 || r.HandSize > r.Population {
		return configErrorf(InvalidDrawSize, -1,
			"hand size must be in [1, %d], got %d", r.Population, r.HandSize)
	}
	total := 0
	for i, c := range r.Categories {
		if c.Count < 0 || c.Count > r.Population {
			return configErrorf(InvalidCategoryRange, i,
				"category %d (%s): copies must be in [0, %d], got %d", i, c.name(), r.Population, c.Count)
		}
		if c.Min < 0 || c.Min > c.Max || c.Max > c.Count {
			return configErrorf(InvalidCategoryRange, i,
				"category %d (%s): need 0 <= min <= max <= copies, got min=%d max=%d copies=%d",
				i, c.name(), c.Min, c.Max, c.Count)
		}
		total += c.Count
	}
	if total > r.Population {
		return configErrorf(OverAllocatedPopulation, -1,
			"categories hold %d cards but the deck has %d", total, r.Population)
	}
	return nil
}
