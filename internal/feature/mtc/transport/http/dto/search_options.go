package dto

import "strconv"

// SortOrder is the requested list ordering direction.
type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

// MtcsSortBy enumerates the mtc list sort fields.
type MtcsSortBy string

const (
	MtcsSortByName          MtcsSortBy = "name"
	MtcsSortByAverageRating MtcsSortBy = "averageRating"
	MtcsSortByAverageCost   MtcsSortBy = "averageCost"
)

// MtcsSearchOptions carries the pagination, search and sorting query
// parameters of the mtc list endpoint. Skip and Take stay nil when absent
// or unparsable; both must be present for paging to apply.
type MtcsSearchOptions struct {
	Skip        *int
	Take        *int
	SearchInput string
	SortBy      MtcsSortBy
	SortOrder   SortOrder
}

// NewMtcsSearchOptions parses raw query parameter strings, defaulting to
// sorting by name ascending.
func NewMtcsSearchOptions(skip, take, searchInput, sortBy, sortOrder string) MtcsSearchOptions {
	opts := MtcsSearchOptions{
		SearchInput: searchInput,
		SortBy:      MtcsSortByName,
		SortOrder:   SortOrderAsc,
	}

	opts.Skip = parseOptionalInt(skip)
	opts.Take = parseOptionalInt(take)

	switch MtcsSortBy(sortBy) {
	case MtcsSortByAverageRating, MtcsSortByAverageCost:
		opts.SortBy = MtcsSortBy(sortBy)
	}
	if SortOrder(sortOrder) == SortOrderDesc {
		opts.SortOrder = SortOrderDesc
	}

	return opts
}

func parseOptionalInt(raw string) *int {
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return nil
	}
	return &n
}
