package locg

import (
	"sort"

	"github.com/comiccruncher/locg/internal/stringutil"
)

// SortComics orders comics in place by the given sort type and returns the
// slice. SortMostPulled keeps the remote-side ordering untouched since the
// remote already returns lists ranked by pulls.
//
// Only ascending comparators exist for name and price; the descending orders
// reverse the ascendingly-sorted slice so ties resolve identically in both
// directions. All sorts are stable.
func SortComics(comics []Comic, sortType SortType) []Comic {
	switch sortType {
	case SortPickOfTheWeek:
		sort.SliceStable(comics, func(i, j int) bool { return lessPOTW(comics[i], comics[j]) })
	case SortAlphaAsc:
		sort.SliceStable(comics, func(i, j int) bool { return lessName(comics[i], comics[j]) })
	case SortAlphaDesc:
		sort.SliceStable(comics, func(i, j int) bool { return lessName(comics[i], comics[j]) })
		reverse(comics)
	case SortLowPrice:
		sort.SliceStable(comics, func(i, j int) bool { return lessPrice(comics[i], comics[j]) })
	case SortHighPrice:
		sort.SliceStable(comics, func(i, j int) bool { return lessPrice(comics[i], comics[j]) })
		reverse(comics)
	case SortCommunityConsensus:
		sort.SliceStable(comics, func(i, j int) bool { return moreRating(comics[i], comics[j]) })
	}
	return comics
}

// Unranked comics sort after every ranked one.
func lessPOTW(a, b Comic) bool {
	if a.POTW == nil {
		return false
	}
	if b.POTW == nil {
		return true
	}
	return *a.POTW < *b.POTW
}

// Case-sensitive lexicographic order.
func lessName(a, b Comic) bool {
	return a.Name < b.Name
}

// Comics with no parseable price sort after every priced one.
func lessPrice(a, b Comic) bool {
	pa, oka := stringutil.ParseMoney(a.Price)
	pb, okb := stringutil.ParseMoney(b.Price)
	if !oka {
		return false
	}
	if !okb {
		return true
	}
	return pa < pb
}

// Descending by rating; unrated comics sort after every rated one.
func moreRating(a, b Comic) bool {
	if a.Rating == nil {
		return false
	}
	if b.Rating == nil {
		return true
	}
	return *a.Rating > *b.Rating
}

func reverse(comics []Comic) {
	for i, j := 0, len(comics)-1; i < j; i, j = i+1, j-1 {
		comics[i], comics[j] = comics[j], comics[i]
	}
}
