// Package profile produces a read-only statistical report of a delimited
// weather file: per-column mean, median, quartiles, outlier bounds and
// missing-value ratios. It never rewrites field values; it exists to judge
// how much cleaning a file needs and whether the result looks sane.
package profile
