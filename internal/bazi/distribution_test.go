package bazi

import (
	"testing"
	"time"

	"bazi-insight/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestCalculateElements(t *testing.T) {
	tests := []struct {
		name string
		year int
		mon  time.Month
		day  int
		hour int
		want ElementsDistribution
	}{
		{
			// Stems 己丙丙戊: two fire, two earth.
			name: "fire and earth split evenly",
			year: 1990, mon: time.January, day: 1, hour: 0,
			want: ElementsDistribution{Fire: 50, Earth: 50},
		},
		{
			// Stems 庚壬甲庚: two metal, one water, one wood.
			name: "dominant metal",
			year: 2000, mon: time.June, day: 15, hour: 12,
			want: ElementsDistribution{Wood: 25, Metal: 50, Water: 25},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chart := mustDerive(t, tt.year, tt.mon, tt.day, tt.hour, 0, "male")
			got := CalculateElements(chart.FourPillars)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, 100, got.Wood+got.Fire+got.Earth+got.Metal+got.Water)
		})
	}
}

func TestCalculateElements_EmptyPillars(t *testing.T) {
	got := CalculateElements(model.FourPillars{})
	assert.Equal(t, ElementsDistribution{}, got)
}

func TestCalculateYinYang(t *testing.T) {
	// Stems 己丙丙戊: one yin, three yang.
	chart := mustDerive(t, 1990, time.January, 1, 0, 30, "male")
	got := CalculateYinYang(chart.FourPillars)
	assert.Equal(t, YinYangDistribution{Yin: 25, Yang: 75}, got)
}

func TestCalculateYinYang_EmptyPillarsBaseline(t *testing.T) {
	got := CalculateYinYang(model.FourPillars{})
	assert.Equal(t, YinYangDistribution{Yin: 50, Yang: 50}, got)
}

func TestLargestRemainder(t *testing.T) {
	tests := []struct {
		name   string
		counts []int
		total  int
		want   []int
	}{
		{"even quarters", []int{1, 1, 1, 1, 0}, 4, []int{25, 25, 25, 25, 0}},
		{"thirds reconcile to 100", []int{1, 1, 1}, 3, []int{34, 33, 33}},
		{"sixths reconcile to 100", []int{1, 1, 1, 1, 1, 1}, 6, []int{17, 17, 17, 17, 16, 16}},
		{"single bucket", []int{4}, 4, []int{100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := largestRemainder(tt.counts, tt.total)
			assert.Equal(t, tt.want, got)

			sum := 0
			for _, v := range got {
				sum += v
			}
			assert.Equal(t, 100, sum)
		})
	}
}
