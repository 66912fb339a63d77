package tmdb

import (
	"fmt"

	"github.com/s0up4200/tmdbkit/endpoints"
)

// SortOrder is the direction of a sorted listing.
type SortOrder int

const (
	SortOrderDefault SortOrder = iota
	SortOrderAscending
	SortOrderDescending
)

func (o SortOrder) wire(v *endpoints.Values) (string, error) {
	switch o {
	case SortOrderDefault:
		return "", nil
	case SortOrderAscending:
		return v.SortOrderAsc, nil
	case SortOrderDescending:
		return v.SortOrderDesc, nil
	}
	return "", unknownEnum("sort order", int(o))
}

// AccountSort is the sort key for account movie listings.
type AccountSort int

const (
	AccountSortDefault AccountSort = iota
	AccountSortCreatedAt
)

func (s AccountSort) wire(v *endpoints.Values) (string, error) {
	switch s {
	case AccountSortDefault:
		return "", nil
	case AccountSortCreatedAt:
		return v.SortByCreatedAt, nil
	}
	return "", unknownEnum("account sort", int(s))
}

// DiscoverSort is the sort key for discovery.
type DiscoverSort int

const (
	DiscoverSortDefault DiscoverSort = iota
	DiscoverSortPopularity
	DiscoverSortReleaseDate
	DiscoverSortVoteAverage
)

func (s DiscoverSort) wire(v *endpoints.Values) (string, error) {
	switch s {
	case DiscoverSortDefault:
		return "", nil
	case DiscoverSortPopularity:
		return v.SortByPopularity, nil
	case DiscoverSortReleaseDate:
		return v.SortByReleaseDate, nil
	case DiscoverSortVoteAverage:
		return v.SortByVoteAverage, nil
	}
	return "", unknownEnum("discover sort", int(s))
}

// SearchType selects the matching strategy of a search.
type SearchType int

const (
	SearchTypeDefault SearchType = iota
	SearchTypePhrase
	SearchTypeNgram
)

func (s SearchType) wire(v *endpoints.Values) (string, error) {
	switch s {
	case SearchTypeDefault:
		return "", nil
	case SearchTypePhrase:
		return v.SearchTypePhrase, nil
	case SearchTypeNgram:
		return v.SearchTypeNgram, nil
	}
	return "", unknownEnum("search type", int(s))
}

// FilterOperator combines list-valued discovery filters.
type FilterOperator int

const (
	OperatorAnd FilterOperator = iota
	OperatorOr
)

// separator resolves the operator to its configured separator.
func (o FilterOperator) separator(v *endpoints.Values) (string, error) {
	switch o {
	case OperatorAnd:
		return v.AndSeparator, nil
	case OperatorOr:
		return v.OrSeparator, nil
	}
	return "", unknownEnum("filter operator", int(o))
}

// JoinIDs joins ids with the separator configured for op.
func JoinIDs(ids []int, op FilterOperator, v *endpoints.Values) (string, error) {
	sep, err := op.separator(v)
	if err != nil {
		return "", err
	}
	return joinInts(ids, sep), nil
}

func unknownEnum(kind string, value int) error {
	return &PreconditionError{Reason: fmt.Sprintf("no configured mapping for %s %d", kind, value)}
}

func boolValue(b bool, v *endpoints.Values) string {
	if b {
		return v.True
	}
	return v.False
}
