package store

// Review represents a user review of a perfume. Reviews are append-only;
// there is no update or delete path.
type Review struct {
	ID        int64
	UID       string
	UserID    string
	PerfumeID string
	Rating    int // 1-5
	Comment   string
	CreatedTs int64
}

// FindReview specifies the conditions for finding reviews.
type FindReview struct {
	UID       *string
	UserID    *string
	PerfumeID *string
	Limit     *int
	Offset    *int
}
