package model

import "time"

// Pillar is one of the four sexagenary pillars. Stem/branch glyphs, the
// five-element and yin-yang of the stem, the ten-god label relative to the
// day master, the branch's hidden stems, the na yin sound element of the
// 60-cycle combination and the void (empty) flag.
type Pillar struct {
	HeavenlyStem  string   `json:"heavenlyStem"`
	EarthlyBranch string   `json:"earthlyBranch"`
	FiveElements  string   `json:"fiveElements"`
	YinYang       string   `json:"yinYang"`
	TenGods       string   `json:"tenGods"`
	HiddenStems   []string `json:"hiddenStems"`
	NaYin         string   `json:"nayin"`
	Empty         bool     `json:"empty"`
}

type FourPillars struct {
	Year  Pillar `json:"year"`
	Month Pillar `json:"month"`
	Day   Pillar `json:"day"`
	Hour  Pillar `json:"hour"`
}

// Ordered returns the pillars in year, month, day, hour order.
func (f FourPillars) Ordered() []Pillar {
	return []Pillar{f.Year, f.Month, f.Day, f.Hour}
}

type LuckCycle struct {
	Age           int    `json:"age"`
	HeavenlyStem  string `json:"heavenlyStem"`
	EarthlyBranch string `json:"earthlyBranch"`
	Period        string `json:"period"`
}

// Chart is the full natal chart produced by the calendar authority.
// The four pillars are always present together; a chart is never partially
// computed.
type Chart struct {
	Gender          string      `json:"gender"`
	SolarCalendar   string      `json:"solarCalendar"`
	EightCharacters string      `json:"eightCharacters"`
	Zodiac          string      `json:"zodiac"`
	DayMaster       string      `json:"dayMaster"`
	FourPillars     FourPillars `json:"fourPillars"`
	DeityStars      []string    `json:"deityStars"`
	LuckCycles      []LuckCycle `json:"luckCycles"`
}

// BirthInfo is the raw submission payload retained with each session.
type BirthInfo struct {
	Nickname   string `json:"nickname"`
	Gender     string `json:"gender"`
	BirthDate  string `json:"birthDate"`
	BirthPlace string `json:"birthPlace"`
}

// AnalysisSession is created exactly once at submission time and read many
// times afterwards. It is never mutated.
type AnalysisSession struct {
	ID        string    `json:"id"`
	BirthInfo BirthInfo `json:"birthInfo"`
	Chart     Chart     `json:"chart"`
	CreatedAt time.Time `json:"createdAt"`
}
