// Package rangedata holds the static ISBN registration-group range table
// used to split an ISBN body into registrant and publication elements.
//
// The table is generated from the International ISBN Agency's range
// message export by cmd/scripts/genranges and is never mutated after
// process start, so it is safe to share without locking.
package rangedata

// Range is an inclusive registrant sub-range. Low and High always have
// equal width; that width is the registrant element length for any body
// whose leading digits fall inside the range.
type Range struct {
	Low  string
	High string
}

// Group is a single registration group: the name of its national or
// language area and its registrant ranges in agency order. Range order is
// significant; ranges of different widths may overlap numerically and the
// first match wins.
type Group struct {
	Name   string
	Ranges []Range
}

// Lookup returns the group registered under a hyphenated prefix key such
// as "978-85".
func Lookup(key string) (Group, bool) {
	group, ok := groups[key]
	return group, ok
}

// Count reports the number of registration groups in the table.
func Count() int {
	return len(groups)
}
