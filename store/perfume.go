package store

// PerfumeNotes holds the three ordered note layers of a perfume pyramid.
type PerfumeNotes struct {
	Top   []string `json:"top"`
	Heart []string `json:"heart"`
	Base  []string `json:"base"`
}

// UsageStats holds relative popularity counts per usage context.
// These are popularity counters, not probabilities.
type UsageStats struct {
	Day    int `json:"day"`
	Night  int `json:"night"`
	Summer int `json:"summer"`
	Winter int `json:"winter"`
	Office int `json:"office"`
	Date   int `json:"date"`
}

// BuyLink is an external purchase link for a perfume.
type BuyLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Perfume represents a catalog entry. The catalog is immutable from the
// service layer's perspective; rows are created only by seeding.
type Perfume struct {
	ID                    string
	Name                  string
	Brand                 string
	Year                  int
	Concentration         string
	Family                string
	Notes                 PerfumeNotes
	Tags                  []string
	AverageRating         float64
	AverageLongevityHours float64
	AverageIntensity      string // suave | media | fuerte | bestia
	UsageStats            UsageStats
	ImageURL              string
	BuyLinks              []BuyLink
	CreatedTs             int64
	UpdatedTs             int64
}

// HasTag reports whether the perfume carries the given normalized tag.
func (p *Perfume) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// FindPerfume specifies the conditions for finding perfumes.
type FindPerfume struct {
	ID *string
	// NameSearch and BrandSearch are case-insensitive substring filters.
	NameSearch  *string
	BrandSearch *string
	// Tag filters on exact (case-insensitive) tag membership.
	Tag    *string
	Limit  *int
	Offset *int
}
