package service

import (
	"time"

	"github.com/MKhiriev/go-blog/models"
)

// DefaultListLimit is the page size used when a listing asks for none.
const DefaultListLimit = 9

// zeroTime counts every row.
var zeroTime time.Time

// timeNow is replaced in tests.
var timeNow = time.Now

// withDefaultLimit fills in the page size of an unbounded listing.
func withDefaultLimit(params models.ListParams) models.ListParams {
	if params.Limit == 0 {
		params.Limit = DefaultListLimit
	}
	return params
}

// oneMonthAgo returns local midnight of the same day one calendar month
// before now. Day overflow normalises forward (March 31 gives March 3 or 2).
func oneMonthAgo(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month()-1, now.Day(), 0, 0, 0, 0, now.Location())
}
