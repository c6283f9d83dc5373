package strategy

import (
	"fmt"
	"strings"

	"bazi-insight/internal/bazi"
	"bazi-insight/internal/dto"
	"bazi-insight/internal/model"
)

// PatternRule inspects an aggregated chart and contributes zero or more
// narrative tags. Rules are independent of each other and their results
// are unioned; a rule must not depend on what earlier rules produced.
type PatternRule interface {
	Evaluate(elements bazi.ElementsDistribution, chart *model.Chart) []string
}

type PatternAnalyzer interface {
	Analyze(elements bazi.ElementsDistribution, chart *model.Chart) []dto.PatternTag
}

type patternAnalyzer struct {
	rules []PatternRule
}

func NewPatternAnalyzer() PatternAnalyzer {
	return &patternAnalyzer{
		rules: []PatternRule{
			&strongElementRule{threshold: 40},
			&missingElementRule{},
			&deityStarRule{limit: 3},
			&tenGodGroupRule{label: "Wealth Star Pattern", gods: []string{bazi.TenGodProperWealth, bazi.TenGodSideWealth}},
			&tenGodGroupRule{label: "Academic Achievement Pattern", gods: []string{bazi.TenGodProperSeal, bazi.TenGodSideSeal}},
			&tenGodGroupRule{label: "Authority Pattern", gods: []string{bazi.TenGodProperOfficer, bazi.TenGodSevenKiller}},
			&tenGodGroupRule{label: "Creative Expression Pattern", gods: []string{bazi.TenGodEatingGod, bazi.TenGodHurtingGod}},
		},
	}
}

// Analyze runs every rule in order and unions the results, dropping
// duplicates while keeping first-seen order. When nothing fires it
// returns the single balanced-constitution fallback.
func (p *patternAnalyzer) Analyze(elements bazi.ElementsDistribution, chart *model.Chart) []dto.PatternTag {
	seen := make(map[string]bool)
	labels := make([]string, 0, 8)
	for _, rule := range p.rules {
		for _, label := range rule.Evaluate(elements, chart) {
			if seen[label] {
				continue
			}
			seen[label] = true
			labels = append(labels, label)
		}
	}
	if len(labels) == 0 {
		labels = append(labels, "Balanced Constitution Pattern")
	}

	tags := make([]dto.PatternTag, 0, len(labels))
	for _, label := range labels {
		tags = append(tags, dto.PatternTag{Label: label, Kind: ClassifyPattern(label)})
	}
	return tags
}

// ClassifyPattern derives the tag kind from the label text alone, so the
// classification can never drift from the tag it describes.
func ClassifyPattern(label string) string {
	if strings.Contains(label, "Missing") {
		return "attention"
	}
	if strings.Contains(label, "Strong") || strings.Contains(label, "Star") || strings.Contains(label, "Achievement") {
		return "positive"
	}
	return "neutral"
}

var elementDisplayNames = [5]string{"Wood", "Fire", "Earth", "Metal", "Water"}

type strongElementRule struct {
	threshold int
}

func (r *strongElementRule) Evaluate(elements bazi.ElementsDistribution, _ *model.Chart) []string {
	var labels []string
	for e := bazi.Wood; e <= bazi.Water; e++ {
		if elements.Get(e) > r.threshold {
			labels = append(labels, fmt.Sprintf("Strong %s Element Pattern", elementDisplayNames[e]))
		}
	}
	return labels
}

type missingElementRule struct{}

func (r *missingElementRule) Evaluate(elements bazi.ElementsDistribution, _ *model.Chart) []string {
	var labels []string
	for e := bazi.Wood; e <= bazi.Water; e++ {
		if elements.Get(e) == 0 {
			labels = append(labels, fmt.Sprintf("Missing %s Element", elementDisplayNames[e]))
		}
	}
	return labels
}

type deityStarRule struct {
	limit int
}

func (r *deityStarRule) Evaluate(_ bazi.ElementsDistribution, chart *model.Chart) []string {
	if chart == nil {
		return nil
	}
	stars := chart.DeityStars
	if len(stars) > r.limit {
		stars = stars[:r.limit]
	}
	labels := make([]string, 0, len(stars))
	for _, star := range stars {
		labels = append(labels, fmt.Sprintf("%s Pattern", star))
	}
	return labels
}

type tenGodGroupRule struct {
	label string
	gods  []string
}

func (r *tenGodGroupRule) Evaluate(_ bazi.ElementsDistribution, chart *model.Chart) []string {
	if chart == nil {
		return nil
	}
	for _, pillar := range chart.FourPillars.Ordered() {
		for _, god := range r.gods {
			if pillar.TenGods == god {
				return []string{r.label}
			}
		}
	}
	return nil
}
