// Package domain models United States Social Security Administration (SSA)
// baby name data.
//
// # Data Source
//
// The SSA publishes a national dataset of baby names at
// https://www.ssa.gov/oact/babynames/names.zip. The archive contains one text
// file per year, named "yobYYYY.txt" (year of birth), starting at 1880. Each
// file lists every name given to at least five babies registered in that
// year.
//
// # File Conventions
//
// Entry naming:
//
//	yob1880.txt, yob1881.txt, ... yob2018.txt
//	The four-digit year sits at byte offset 3 of the entry name, after the
//	"yob" prefix. Non-.txt entries (the bundled NationalReadMe.pdf) carry no
//	name data and are skipped.
//
// Line format:
//
//	<name>,<gender>,<count>
//	e.g. "Mary,F,7065" — exactly three comma-separated fields, no quoting,
//	no embedded commas. Gender is the single symbol "M" or "F". Count is a
//	non-negative decimal integer; the SSA suppresses names with fewer than
//	five occurrences, so counts below 5 never appear in practice, but the
//	model only requires count >= 0.
//
// Ordering:
//
//	Within each file, female names come first, each gender block sorted by
//	descending count. Normalization preserves archive entry order and line
//	order so downstream aggregation and golden tests are reproducible.
//
// # Error Policy
//
// The dataset is machine-generated and expected to be well-formed, so parsing
// is fail-fast: the first malformed line aborts the whole run with the entry
// name and line number rather than silently dropping rows. A partially parsed
// table is never emitted.
package domain
