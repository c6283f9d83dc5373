package bazi

import (
	"fmt"
	"math"
	"strings"
	"time"

	"bazi-insight/internal/model"
)

// Engine derives natal charts from a reference instant. It is a pure
// function of its input: no shared state, safe for arbitrary parallelism.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Input for a chart derivation. Instant carries the birth wall clock encoded
// as UTC by the civil-time normalizer; the engine reads its literal fields
// and applies no timezone offset of its own.
type Input struct {
	Instant time.Time
	Gender  string
}

const (
	minYear = 1901
	maxYear = 2099
)

// Derive computes the four pillars and all derived chart data. The only
// failure mode is an instant outside the supported epoch.
func (e *Engine) Derive(in Input) (*model.Chart, error) {
	t := in.Instant.UTC()
	year, month, day := t.Year(), int(t.Month()), t.Day()
	hour := t.Hour()

	if year < minYear || year > maxYear {
		return nil, fmt.Errorf("birth year %d outside supported range %d-%d", year, minYear, maxYear)
	}

	dayCycle := (julianDayNumber(year, month, day) + 49) % 60
	dayStem, dayBranch := Stem(dayCycle%10), Branch(dayCycle%12)

	yearStem, yearBranch := yearPillar(year, month, day)
	yearCycle := SexagenaryIndex(yearStem, yearBranch)

	monthStem, monthBranch := monthPillar(year, month, day, yearStem)
	monthCycle := SexagenaryIndex(monthStem, monthBranch)

	hourBranch := Branch(((hour + 1) / 2) % 12)
	hourStem := Stem((int(dayStem%5)*2 + int(hourBranch)) % 10)

	dayVoid := VoidBranches(dayCycle)
	yearVoid := VoidBranches(yearCycle)

	pillars := model.FourPillars{
		Year:  buildPillar(yearStem, yearBranch, dayStem, dayVoid, false),
		Month: buildPillar(monthStem, monthBranch, dayStem, dayVoid, false),
		Day:   buildPillar(dayStem, dayBranch, dayStem, yearVoid, true),
		Hour:  buildPillar(hourStem, hourBranch, dayStem, dayVoid, false),
	}

	branches := []Branch{yearBranch, monthBranch, dayBranch, hourBranch}

	chart := &model.Chart{
		Gender:          in.Gender,
		SolarCalendar:   t.Format("2006-01-02 15:04"),
		EightCharacters: eightCharacters(pillars),
		Zodiac:          yearBranch.Zodiac(),
		DayMaster:       dayStem.Glyph(),
		FourPillars:     pillars,
		DeityStars:      deityStars(dayStem, dayBranch, yearBranch, branches),
		LuckCycles:      e.luckCycles(year, month, day, yearStem, monthCycle, in.Gender),
	}
	return chart, nil
}

// yearPillar applies the sexagenary year formula with the year boundary on
// the solar new year (立春), not January 1.
func yearPillar(year, month, day int) (Stem, Branch) {
	y := year
	if month < 2 || (month == 2 && day < JieDay(year, 2)) {
		y--
	}
	return Stem((y - 4) % 10), Branch((y - 4) % 12)
}

// monthPillar locates the solar-term-bounded month and applies the
// five-tigers rule: the year stem fixes the first month's stem, later months
// cycle stems in lockstep with branches.
func monthPillar(year, month, day int, yearStem Stem) (Stem, Branch) {
	m := month
	if day < JieDay(year, month) {
		m--
	}
	branch := Branch(m % 12)

	// Month number counted from the 寅 month.
	number := (int(branch)-2+12)%12 + 1
	first := (int(yearStem%5))*2 + 2
	return Stem((first + number - 1) % 10), branch
}

func buildPillar(s Stem, b Branch, dayMaster Stem, void [2]Branch, isDay bool) model.Pillar {
	tenGod := DayMasterLabel
	if !isDay {
		tenGod = TenGod(dayMaster, s)
	}

	hidden := make([]string, 0, 3)
	for _, hs := range b.HiddenStems() {
		hidden = append(hidden, hs.Glyph())
	}

	return model.Pillar{
		HeavenlyStem:  s.Glyph(),
		EarthlyBranch: b.Glyph(),
		FiveElements:  s.Element().Glyph(),
		YinYang:       s.Polarity().Glyph(),
		TenGods:       tenGod,
		HiddenStems:   hidden,
		NaYin:         NaYin(s, b),
		Empty:         b == void[0] || b == void[1],
	}
}

func eightCharacters(p model.FourPillars) string {
	parts := make([]string, 0, 4)
	for _, pillar := range p.Ordered() {
		parts = append(parts, pillar.HeavenlyStem+pillar.EarthlyBranch)
	}
	return strings.Join(parts, " ")
}

// luckCycles walks the month pillar through the sexagenary cycle in ten-year
// steps. Direction is forward for yang-year males and yin-year females,
// backward otherwise; the start age is the distance to the adjacent solar
// term at three days per year.
func (e *Engine) luckCycles(year, month, day int, yearStem Stem, monthCycle int, gender string) []model.LuckCycle {
	forward := (yearStem.Polarity() == Yang) == (gender == "male")

	days := daysToAdjacentTerm(year, month, day, forward)
	startAge := int(math.Round(float64(days) / 3.0))
	if startAge < 1 {
		startAge = 1
	}

	cycles := make([]model.LuckCycle, 0, 8)
	for i := 0; i < 8; i++ {
		step := i + 1
		var idx int
		if forward {
			idx = (monthCycle + step) % 60
		} else {
			idx = (monthCycle - step + 60) % 60
		}
		age := startAge + 10*i
		cycles = append(cycles, model.LuckCycle{
			Age:           age,
			HeavenlyStem:  Stem(idx % 10).Glyph(),
			EarthlyBranch: Branch(idx % 12).Glyph(),
			Period:        fmt.Sprintf("%d-%d", year+age, year+age+9),
		})
	}
	return cycles
}

// daysToAdjacentTerm counts civil days from the birth date to the next
// month-opening term (forward) or back to the previous one.
func daysToAdjacentTerm(year, month, day int, forward bool) int {
	birth := julianDayNumber(year, month, day)

	if forward {
		y, m := year, month
		if day >= JieDay(y, m) {
			m++
			if m > 12 {
				m, y = 1, y+1
			}
		}
		return julianDayNumber(y, m, JieDay(y, m)) - birth
	}

	y, m := year, month
	if day < JieDay(y, m) {
		m--
		if m < 1 {
			m, y = 12, y-1
		}
	}
	return birth - julianDayNumber(y, m, JieDay(y, m))
}

// julianDayNumber for a Gregorian calendar date. The sexagenary day cycle is
// anchored on it: index (JDN+49) mod 60 puts 1949-10-01 at 甲子.
func julianDayNumber(year, month, day int) int {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3
	return day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}
