package request

import "hotel-console/internal/pkg/patch"

// DeleteQuery carries the operator's answer to the delete prompt.
type DeleteQuery struct {
	Confirm *bool `form:"confirm"`
}

// Confirmed treats a missing answer as a decline.
func (q DeleteQuery) Confirmed() bool {
	return patch.Coalesce(q.Confirm, false)
}

type SearchQuery struct {
	ID string `form:"id"`
}
