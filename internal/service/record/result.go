package record

import "github.com/heartmarshall/studytrack-backend/internal/domain"

// CreateResult is returned by Create. Score is nil when the ledger update
// failed; the record is created regardless.
type CreateResult struct {
	Record   *domain.Record
	XPEarned int64
	Score    *domain.Score
}

// ListResult is one page of records plus the total number of matches.
type ListResult struct {
	Records []domain.Record
	Total   int
}
