package requests

import "time"

// ListQuery is the common listing filter for clinical collections and catalogs.
type ListQuery struct {
	Page      int
	Limit     int
	Search    string
	Status    string
	PatientID string
	Type      string
	From      *time.Time
	To        *time.Time
}

func (q *ListQuery) Skip() int64 {
	if q.Page <= 1 || q.Limit <= 0 {
		return 0
	}
	return int64(q.Page-1) * int64(q.Limit)
}
