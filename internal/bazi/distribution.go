package bazi

import (
	"sort"

	"bazi-insight/internal/model"
)

// ElementsDistribution maps the five elements to integer percentages.
// Percentages sum to exactly 100 for a non-empty pillar set and are all zero
// for an empty one.
type ElementsDistribution struct {
	Wood  int `json:"wood"`
	Fire  int `json:"fire"`
	Earth int `json:"earth"`
	Metal int `json:"metal"`
	Water int `json:"water"`
}

// Get returns the percentage for an element.
func (d ElementsDistribution) Get(e Element) int {
	switch e {
	case Wood:
		return d.Wood
	case Fire:
		return d.Fire
	case Earth:
		return d.Earth
	case Metal:
		return d.Metal
	default:
		return d.Water
	}
}

// YinYangDistribution holds yin/yang integer percentages summing to 100.
// 50/50 is the documented neutral baseline for empty input, not an error.
type YinYangDistribution struct {
	Yin  int `json:"yin"`
	Yang int `json:"yang"`
}

var glyphToElement = map[string]Element{
	"木": Wood, "火": Fire, "土": Earth, "金": Metal, "水": Water,
}

// CalculateElements tallies one count per pillar's primary element and
// converts counts to percentages. Hidden stems are an extension point and
// are not counted by the baseline rule. Rounding is reconciled with the
// largest-remainder method so totals are exactly 100.
func CalculateElements(pillars model.FourPillars) ElementsDistribution {
	counts := [5]int{}
	total := 0
	for _, p := range pillars.Ordered() {
		e, ok := glyphToElement[p.FiveElements]
		if !ok {
			continue
		}
		counts[e]++
		total++
	}

	var dist ElementsDistribution
	if total == 0 {
		return dist
	}

	percents := largestRemainder(counts[:], total)
	dist.Wood = percents[Wood]
	dist.Fire = percents[Fire]
	dist.Earth = percents[Earth]
	dist.Metal = percents[Metal]
	dist.Water = percents[Water]
	return dist
}

// CalculateYinYang tallies one count per pillar's primary polarity.
func CalculateYinYang(pillars model.FourPillars) YinYangDistribution {
	yin, yang := 0, 0
	for _, p := range pillars.Ordered() {
		switch p.YinYang {
		case "阴":
			yin++
		case "阳":
			yang++
		}
	}

	total := yin + yang
	if total == 0 {
		return YinYangDistribution{Yin: 50, Yang: 50}
	}

	percents := largestRemainder([]int{yin, yang}, total)
	return YinYangDistribution{Yin: percents[0], Yang: percents[1]}
}

// largestRemainder converts counts to integer percentages that sum to
// exactly 100: floor everything, then hand the leftover points to the
// buckets with the largest fractional remainders (ties resolved by bucket
// order for determinism).
func largestRemainder(counts []int, total int) []int {
	type bucket struct {
		index     int
		percent   int
		remainder int
	}

	buckets := make([]bucket, len(counts))
	assigned := 0
	for i, c := range counts {
		exact := c * 100
		buckets[i] = bucket{
			index:     i,
			percent:   exact / total,
			remainder: exact % total,
		}
		assigned += exact / total
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].remainder > buckets[j].remainder
	})

	for i := 0; i < 100-assigned; i++ {
		buckets[i%len(buckets)].percent++
	}

	result := make([]int, len(counts))
	for _, b := range buckets {
		result[b.index] = b.percent
	}
	return result
}
