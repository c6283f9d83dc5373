package bazi

import (
	"testing"
	"time"

	"bazi-insight/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDerive(t *testing.T, year int, month time.Month, day, hour, minute int, gender string) *model.Chart {
	t.Helper()
	chart, err := NewEngine().Derive(Input{
		Instant: time.Date(year, month, day, hour, minute, 0, 0, time.UTC),
		Gender:  gender,
	})
	require.NoError(t, err)
	return chart
}

func TestEngine_Derive(t *testing.T) {
	tests := []struct {
		name            string
		year            int
		month           time.Month
		day             int
		hour            int
		minute          int
		gender          string
		eightCharacters string
		zodiac          string
		dayMaster       string
		deityStars      []string
		firstLuckAge    int
		firstLuckPillar string
	}{
		{
			name:            "male born in early zi hour",
			year:            1990,
			month:           time.January,
			day:             1,
			hour:            0,
			minute:          30,
			gender:          "male",
			eightCharacters: "己巳 丙子 丙寅 戊子",
			zodiac:          "蛇",
			dayMaster:       "丙",
			deityStars:      []string{"禄神"},
			firstLuckAge:    8,
			firstLuckPillar: "乙亥",
		},
		{
			name:            "female born at noon",
			year:            2000,
			month:           time.June,
			day:             15,
			hour:            12,
			minute:          0,
			gender:          "female",
			eightCharacters: "庚辰 壬午 甲辰 庚午",
			zodiac:          "龙",
			dayMaster:       "甲",
			deityStars:      []string{"华盖"},
			firstLuckAge:    3,
			firstLuckPillar: "辛巳",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chart := mustDerive(t, tt.year, tt.month, tt.day, tt.hour, tt.minute, tt.gender)

			assert.Equal(t, tt.eightCharacters, chart.EightCharacters)
			assert.Equal(t, tt.zodiac, chart.Zodiac)
			assert.Equal(t, tt.dayMaster, chart.DayMaster)
			assert.Equal(t, tt.deityStars, chart.DeityStars)

			require.Len(t, chart.LuckCycles, 8)
			first := chart.LuckCycles[0]
			assert.Equal(t, tt.firstLuckAge, first.Age)
			assert.Equal(t, tt.firstLuckPillar, first.HeavenlyStem+first.EarthlyBranch)
			for i := 1; i < len(chart.LuckCycles); i++ {
				assert.Equal(t, chart.LuckCycles[i-1].Age+10, chart.LuckCycles[i].Age)
			}
		})
	}
}

func TestEngine_Derive_TenGods(t *testing.T) {
	chart := mustDerive(t, 1990, time.January, 1, 0, 30, "male")

	assert.Equal(t, "伤官", chart.FourPillars.Year.TenGods)
	assert.Equal(t, "比肩", chart.FourPillars.Month.TenGods)
	assert.Equal(t, "日主", chart.FourPillars.Day.TenGods)
	assert.Equal(t, "食神", chart.FourPillars.Hour.TenGods)
}

func TestEngine_Derive_DayCycleAnchors(t *testing.T) {
	tests := []struct {
		name   string
		year   int
		month  time.Month
		day    int
		pillar string
	}{
		{"cycle origin", 1949, time.October, 1, "甲子"},
		{"pre-millennium", 2000, time.January, 1, "戊午"},
		{"nineties", 1990, time.January, 1, "丙寅"},
		{"post-millennium", 2000, time.June, 15, "甲辰"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chart := mustDerive(t, tt.year, tt.month, tt.day, 12, 0, "male")
			day := chart.FourPillars.Day
			assert.Equal(t, tt.pillar, day.HeavenlyStem+day.EarthlyBranch)
		})
	}
}

func TestEngine_Derive_HourBranches(t *testing.T) {
	tests := []struct {
		hour   int
		branch string
	}{
		{0, "子"},
		{1, "丑"},
		{11, "午"},
		{12, "午"},
		{22, "亥"},
		{23, "子"},
	}

	for _, tt := range tests {
		chart := mustDerive(t, 2000, time.June, 15, tt.hour, 0, "female")
		assert.Equal(t, tt.branch, chart.FourPillars.Hour.EarthlyBranch, "hour %d", tt.hour)
	}
}

// A birth at 23:00 falls in the zi hour of the same civil day: the hour
// pillar rolls over but the day pillar does not.
func TestEngine_Derive_LateZiHourKeepsDay(t *testing.T) {
	at2300 := mustDerive(t, 2000, time.June, 15, 23, 0, "male")
	atNoon := mustDerive(t, 2000, time.June, 15, 12, 0, "male")

	assert.Equal(t, "子", at2300.FourPillars.Hour.EarthlyBranch)
	assert.Equal(t, atNoon.FourPillars.Day, at2300.FourPillars.Day)
}

// The sexagenary year turns at the solar new year, not on January 1.
func TestEngine_Derive_YearBoundaryAtLichun(t *testing.T) {
	before := mustDerive(t, 1990, time.February, 3, 12, 0, "male")
	after := mustDerive(t, 1990, time.February, 5, 12, 0, "male")

	assert.Equal(t, "己", before.FourPillars.Year.HeavenlyStem)
	assert.Equal(t, "巳", before.FourPillars.Year.EarthlyBranch)
	assert.Equal(t, "庚", after.FourPillars.Year.HeavenlyStem)
	assert.Equal(t, "午", after.FourPillars.Year.EarthlyBranch)
}

func TestEngine_Derive_OutOfRangeYear(t *testing.T) {
	_, err := NewEngine().Derive(Input{
		Instant: time.Date(1850, time.March, 10, 8, 0, 0, 0, time.UTC),
		Gender:  "male",
	})
	assert.Error(t, err)
}

func TestEngine_Derive_Deterministic(t *testing.T) {
	a := mustDerive(t, 1990, time.January, 1, 0, 30, "male")
	b := mustDerive(t, 1990, time.January, 1, 0, 30, "male")
	assert.Equal(t, a, b)
}

func TestEngine_Derive_LuckDirection(t *testing.T) {
	// 1990 is a yin year (己), so the male count runs backward and the
	// female count forward from the month pillar 丙子.
	male := mustDerive(t, 1990, time.January, 1, 0, 30, "male")
	female := mustDerive(t, 1990, time.January, 1, 0, 30, "female")

	assert.Equal(t, "乙亥", male.LuckCycles[0].HeavenlyStem+male.LuckCycles[0].EarthlyBranch)
	assert.Equal(t, "丁丑", female.LuckCycles[0].HeavenlyStem+female.LuckCycles[0].EarthlyBranch)
}
