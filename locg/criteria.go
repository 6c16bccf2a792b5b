package locg

import "fmt"

// The collection types for fetching comic lists.
//
// Issue returns each item as a separate issue; Series returns the individual
// series for each item.
const (
	CollectionIssue  CollectionType = "issue"
	CollectionSeries CollectionType = "series"
)

// The format types comic lists can be filtered with.
const (
	// FilterRegular - regular issues.
	FilterRegular FilterType = iota + 1
	// FilterVariant - variant issues or reprints.
	FilterVariant
	// FilterTrade - trade paperbacks.
	FilterTrade
	// FilterHardcover - hardcovers.
	FilterHardcover
	// FilterDigital - digital issues.
	FilterDigital
	// FilterAnnual - annuals.
	FilterAnnual
)

// The orders comic lists can be sorted by.
const (
	// SortMostPulled keeps the ordering the remote service already provides.
	SortMostPulled SortType = "pulls"
	// SortPickOfTheWeek orders by pick-of-the-week rank.
	SortPickOfTheWeek SortType = "potw"
	// SortAlphaAsc orders by name, A-Z.
	SortAlphaAsc SortType = "alpha-asc"
	// SortAlphaDesc orders by name, Z-A.
	SortAlphaDesc SortType = "alpha-desc"
	// SortLowPrice orders by price, low to high.
	SortLowPrice SortType = "price-asc"
	// SortHighPrice orders by price, high to low.
	SortHighPrice SortType = "price-desc"
	// SortCommunityConsensus orders by community rating.
	SortCommunityConsensus SortType = "community"
)

// CollectionType selects the underlying list representation and the
// extraction mode for a fetched list.
type CollectionType string

// FilterType restricts a comic list to certain physical or digital formats.
// Multiple filters combine as a logical OR upstream.
type FilterType int

// SortType is a total order over a fetched comic list.
type SortType string

// FetchOptions are the optional criteria for fetching comic lists.
type FetchOptions struct {
	// Publishers restricts results to the given publishers. Each element is
	// either a publisher name (string) or a numeric site ID (int).
	Publishers []interface{}
	// Filter restricts results to the given format types.
	Filter []FilterType
	// Sort orders the results. The zero value keeps the remote's natural order.
	Sort SortType
}

var filterTypes = map[FilterType]bool{
	FilterRegular:   true,
	FilterVariant:   true,
	FilterTrade:     true,
	FilterHardcover: true,
	FilterDigital:   true,
	FilterAnnual:    true,
}

// Kept in declaration order so validation messages list the options stably.
var sortTypes = []SortType{
	SortMostPulled,
	SortPickOfTheWeek,
	SortAlphaAsc,
	SortAlphaDesc,
	SortLowPrice,
	SortHighPrice,
	SortCommunityConsensus,
}

// ValidateFilter checks each element against the closed set of filter types.
func ValidateFilter(filter []FilterType) error {
	for _, f := range filter {
		if !filterTypes[f] {
			return fmt.Errorf("%w: the 'filter' option must only include filter types. received %d", ErrOutOfRange, f)
		}
	}
	return nil
}

// ValidateSort checks the sort value against the closed set of sort types.
func ValidateSort(sort SortType) error {
	for _, s := range sortTypes {
		if sort == s {
			return nil
		}
	}
	return fmt.Errorf("%w: the 'sort' option must be one of %s. received '%s'", ErrOutOfRange, joinSortTypes(), sort)
}

func joinSortTypes() string {
	val := ""
	for i, s := range sortTypes {
		val += "'" + string(s) + "'"
		if i != len(sortTypes)-1 {
			val += ", "
		}
	}
	return val
}
