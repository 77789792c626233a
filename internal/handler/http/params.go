package http

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

// decodeBody decodes the JSON body of r into dst. A missing body leaves dst
// zero-valued so that validation reports the missing fields.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	err := utils.DecodeJSON(w, r, dst)
	if err == nil || errors.Is(err, utils.ErrEmptyBody) {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
}

// listParams reads startIndex, limit and order. Unparseable numbers fall back
// to zero, and the service substitutes the default page size for a zero
// limit.
func listParams(q url.Values) models.ListParams {
	return models.ListParams{
		StartIndex: parseUint(q.Get("startIndex")),
		Limit:      parseUint(q.Get("limit")),
		Ascending:  q.Get("order") == "asc",
	}
}

func postFilter(q url.Values) models.PostFilter {
	return models.PostFilter{
		UserID:     q.Get("userId"),
		Category:   q.Get("category"),
		Slug:       q.Get("slug"),
		PostID:     q.Get("postId"),
		SearchTerm: q.Get("searchTerm"),
		ListParams: listParams(q),
	}
}

// parseUint reads a non-negative count. Unparseable input is zero; values
// beyond PostgreSQL's bigint are clamped to math.MaxInt64.
func parseUint(s string) uint64 {
	n, err := strconv.ParseUint(s, 10, 64)
	switch {
	case errors.Is(err, strconv.ErrRange):
		return math.MaxInt64
	case err != nil:
		return 0
	case n > math.MaxInt64:
		return math.MaxInt64
	}
	return n
}
