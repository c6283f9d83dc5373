package dto

import (
	"bazi-insight/internal/bazi"
	"bazi-insight/internal/model"
)

type SubmitBirthChartRequest struct {
	Nickname   string `json:"nickname"`
	Gender     string `json:"gender" validate:"required,oneof=male female"`
	BirthDate  string `json:"birthDate" validate:"required"`
	BirthPlace string `json:"birthPlace" validate:"required"`
}

type ChartPreview struct {
	EightCharacters string `json:"eightCharacters"`
	Zodiac          string `json:"zodiac"`
	DayMaster       string `json:"dayMaster"`
}

type SubmitBirthChartResponse struct {
	ID      string       `json:"id"`
	Success bool         `json:"success"`
	Preview ChartPreview `json:"preview"`
}

type UserInfo struct {
	Nickname   string `json:"nickname"`
	Gender     string `json:"gender"`
	BirthDate  string `json:"birthDate"`
	BirthPlace string `json:"birthPlace"`
}

// DisplayPillar is the trimmed pillar shape the presentation layer renders.
type DisplayPillar struct {
	HeavenlyStem  string `json:"heavenlyStem"`
	EarthlyBranch string `json:"earthlyBranch"`
	Element       string `json:"element"`
}

type DisplayPillars struct {
	Year  DisplayPillar `json:"year"`
	Month DisplayPillar `json:"month"`
	Day   DisplayPillar `json:"day"`
	Hour  DisplayPillar `json:"hour"`
}

// GetAnalysisResponse carries the stored chart plus fields recomputed from
// it on every read, so derived data can never drift from the chart.
type GetAnalysisResponse struct {
	UserInfo    UserInfo                  `json:"userInfo"`
	MCPData     model.Chart               `json:"mcpData"`
	FourPillars DisplayPillars            `json:"fourPillars"`
	Elements    bazi.ElementsDistribution `json:"elements"`
	YinYang     bazi.YinYangDistribution  `json:"yinYang"`
	Patterns    []PatternTag              `json:"patterns"`
}

// PatternTag pairs a narrative tag with its classification. The
// classification is always derived from the tag text, never stored.
type PatternTag struct {
	Label string `json:"label"`
	Kind  string `json:"kind"`
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatBaziData struct {
	MCPData *model.Chart `json:"mcpData"`
}

type ChatRequest struct {
	Message  string        `json:"message" validate:"required"`
	BaziData *ChatBaziData `json:"baziData"`
	History  []ChatMessage `json:"history"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

func NewDisplayPillars(pillars model.FourPillars) DisplayPillars {
	convert := func(p model.Pillar) DisplayPillar {
		return DisplayPillar{
			HeavenlyStem:  p.HeavenlyStem,
			EarthlyBranch: p.EarthlyBranch,
			Element:       p.FiveElements,
		}
	}
	return DisplayPillars{
		Year:  convert(pillars.Year),
		Month: convert(pillars.Month),
		Day:   convert(pillars.Day),
		Hour:  convert(pillars.Hour),
	}
}
