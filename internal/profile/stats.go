package profile

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// missingIndicators is the extended set of placeholder spellings seen in
// station exports. Broader than the cleaner's sentinel rule on purpose:
// the report should count everything that is effectively absent.
var missingIndicators = map[string]struct{}{
	"":          {},
	"-":         {},
	"--":        {},
	"---":       {},
	"----":      {},
	"n/a":       {},
	"na":        {},
	"null":      {},
	"nan":       {},
	"none":      {},
	"missing":   {},
	"unknown":   {},
	"#n/a":      {},
	"#null":     {},
	"?":         {},
	"nil":       {},
	"undefined": {},
	"blank":     {},
}

// IsMissing reports whether a raw field value stands for absent data.
func IsMissing(value string) bool {
	v := strings.ToLower(strings.TrimSpace(value))
	_, ok := missingIndicators[v]
	return ok
}

// ColumnStats summarizes one column of the profiled file. Numeric moments
// are only meaningful when IsNumeric is true.
type ColumnStats struct {
	Name         string  `json:"name"`
	Mean         float64 `json:"mean"`
	Median       float64 `json:"median"`
	Min          float64 `json:"min"`
	Max          float64 `json:"max"`
	Q1           float64 `json:"q1"`
	Q3           float64 `json:"q3"`
	MissingCount int     `json:"missing_count"`
	TotalCount   int     `json:"total_count"`
	MissingRatio float64 `json:"missing_ratio"`
	IsNumeric    bool    `json:"is_numeric"`
}

// IQR returns the interquartile range.
func (s ColumnStats) IQR() float64 {
	return s.Q3 - s.Q1
}

// LowerBound returns the lower outlier fence, Q1 - 1.5*IQR.
func (s ColumnStats) LowerBound() float64 {
	return s.Q1 - 1.5*s.IQR()
}

// UpperBound returns the upper outlier fence, Q3 + 1.5*IQR.
func (s ColumnStats) UpperBound() float64 {
	return s.Q3 + 1.5*s.IQR()
}

// profileColumn computes the stats for one column's raw values.
func profileColumn(name string, values []string) ColumnStats {
	stats := ColumnStats{Name: name, TotalCount: len(values)}

	var nums []float64
	numeric := true
	for _, v := range values {
		if IsMissing(v) {
			stats.MissingCount++
			continue
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			numeric = false
			continue
		}
		nums = append(nums, f)
	}
	if stats.TotalCount > 0 {
		stats.MissingRatio = float64(stats.MissingCount) / float64(stats.TotalCount)
	}

	stats.IsNumeric = numeric && len(nums) > 0
	if !stats.IsNumeric {
		return stats
	}

	sort.Float64s(nums)
	stats.Min = nums[0]
	stats.Max = nums[len(nums)-1]
	stats.Median = quantile(nums, 0.5)
	stats.Q1 = quantile(nums, 0.25)
	stats.Q3 = quantile(nums, 0.75)

	var sum float64
	for _, f := range nums {
		sum += f
	}
	stats.Mean = sum / float64(len(nums))
	return stats
}

// quantile linearly interpolates the q-th quantile of sorted values.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
