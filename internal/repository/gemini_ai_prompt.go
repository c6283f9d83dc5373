package repository

import (
	"fmt"
	"strings"

	"bazi-insight/internal/dto"
	"bazi-insight/internal/model"
)

const chatSystemPrompt = `You are Master Cantian, an expert BaZi (Chinese astrology) consultant with deep knowledge of:
- Four Pillars of Destiny (四柱命理)
- Five Elements Theory (五行)
- Yin-Yang Balance (陰陽)
- Heavenly Stems and Earthly Branches (天干地支)
- Ten Gods System (十神)
- Deity Stars and Special Configurations (神煞)
- Luck Cycles and Timing (大运流年)

You have access to PRECISE BaZi calculations, ensuring accuracy in calendar
conversions, Four Pillars, hidden stems, Ten Gods relationships and deity
stars.

Provide insightful, personalized guidance based on the user's BaZi chart.
Be specific, helpful, and culturally respectful. Use both Chinese terms and
English explanations. Reference specific elements from their chart (stems,
branches, ten gods, deity stars). Keep responses concise but meaningful
(2-3 paragraphs maximum).`

func (r *geminiAIRepository) promptChartConsultation(chart *model.Chart, message string, history []dto.ChatMessage) string {
	var sb strings.Builder

	sb.WriteString(chatSystemPrompt)
	sb.WriteString("\n\n")
	sb.WriteString(FormatChartForAI(chart))
	sb.WriteString("\n\n")

	if len(history) > 0 {
		sb.WriteString("Conversation so far:\n")
		for _, msg := range history {
			sb.WriteString(fmt.Sprintf("- %s: %s\n", msg.Role, msg.Content))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("User Question: %s\n\n", message))
	sb.WriteString("Please provide analysis based on the precise BaZi calculations above. You can confidently reference specific Ten Gods, Deity Stars, and complex relationships.")

	return sb.String()
}

// FormatChartForAI renders a chart as the structured prompt context the
// generative model consumes.
func FormatChartForAI(chart *model.Chart) string {
	var sb strings.Builder

	sb.WriteString("BaZi Chart Analysis:\n\n")
	sb.WriteString("Basic Information:\n")
	sb.WriteString(fmt.Sprintf("- Gender: %s\n", chart.Gender))
	sb.WriteString(fmt.Sprintf("- Solar Calendar: %s\n", chart.SolarCalendar))
	sb.WriteString(fmt.Sprintf("- Eight Characters: %s\n", chart.EightCharacters))
	sb.WriteString(fmt.Sprintf("- Zodiac Animal: %s\n", chart.Zodiac))
	sb.WriteString(fmt.Sprintf("- Day Master: %s\n\n", chart.DayMaster))

	sb.WriteString("Four Pillars Detail:\n")
	names := []string{"Year", "Month", "Day", "Hour"}
	for i, pillar := range chart.FourPillars.Ordered() {
		sb.WriteString(fmt.Sprintf("- %s Pillar: %s%s (%s, %s)\n",
			names[i], pillar.HeavenlyStem, pillar.EarthlyBranch, pillar.FiveElements, pillar.YinYang))
	}

	sb.WriteString("\nTen Gods Relationships:\n")
	for i, pillar := range chart.FourPillars.Ordered() {
		sb.WriteString(fmt.Sprintf("- %s: %s\n", names[i], pillar.TenGods))
	}

	if len(chart.DeityStars) > 0 {
		sb.WriteString(fmt.Sprintf("\nDeity Stars: %s\n", strings.Join(chart.DeityStars, ", ")))
	}

	if len(chart.LuckCycles) > 0 {
		sb.WriteString("\nLuck Cycles:\n")
		for _, cycle := range chart.LuckCycles {
			sb.WriteString(fmt.Sprintf("- Age %d (%s): %s%s\n",
				cycle.Age, cycle.Period, cycle.HeavenlyStem, cycle.EarthlyBranch))
		}
	}

	sb.WriteString("\nThis data provides the foundation for accurate BaZi personality analysis, career guidance, relationship compatibility, and destiny forecasting.")

	return sb.String()
}
