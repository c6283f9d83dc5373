package bazi

// Classical deity-star lookups. Each star names the branches that trigger it
// for a given day stem or branch group; a star is flagged when any of the
// four pillar branches matches.

// 天乙贵人 by day stem.
var tianyiBranches = [10][]Branch{
	{1, 7},  // 甲: 丑未
	{0, 8},  // 乙: 子申
	{11, 9}, // 丙: 亥酉
	{11, 9}, // 丁: 亥酉
	{1, 7},  // 戊: 丑未
	{0, 8},  // 己: 子申
	{1, 7},  // 庚: 丑未
	{2, 6},  // 辛: 寅午
	{3, 5},  // 壬: 卯巳
	{3, 5},  // 癸: 卯巳
}

// 文昌贵人 by day stem.
var wenchangBranch = [10]Branch{5, 6, 8, 9, 8, 9, 11, 0, 2, 3}

// 禄神 by day stem.
var luBranch = [10]Branch{2, 3, 5, 6, 5, 6, 8, 9, 11, 0}

// 羊刃 by day stem; only yang stems carry a blade.
var yangBladeBranch = map[Stem]Branch{
	0: 3, // 甲: 卯
	2: 6, // 丙: 午
	4: 6, // 戊: 午
	6: 9, // 庚: 酉
	8: 0, // 壬: 子
}

// Trine-group stars keyed by the group index of the day (and year) branch.
// Groups: 申子辰=0, 巳酉丑=1, 寅午戌=2, 亥卯未=3.
var (
	peachBlossomBranch = [4]Branch{9, 6, 3, 0}  // 咸池
	skyHorseBranch     = [4]Branch{2, 11, 8, 5} // 驿马
	canopyBranch       = [4]Branch{4, 1, 10, 7} // 华盖
	generalStarBranch  = [4]Branch{0, 9, 6, 3}  // 将星
)

func trineGroup(b Branch) int {
	switch b {
	case 8, 0, 4: // 申子辰
		return 0
	case 5, 9, 1: // 巳酉丑
		return 1
	case 2, 6, 10: // 寅午戌
		return 2
	default: // 亥卯未
		return 3
	}
}

func containsBranch(branches []Branch, b Branch) bool {
	for _, item := range branches {
		if item == b {
			return true
		}
	}
	return false
}

// deityStars evaluates the star tables over the four pillar branches.
// Stem-keyed stars are judged from the day master; trine stars from both the
// day and year branch groups. The result order is fixed.
func deityStars(dayStem Stem, dayBranch, yearBranch Branch, branches []Branch) []string {
	stars := make([]string, 0, 4)

	for _, b := range tianyiBranches[dayStem] {
		if containsBranch(branches, b) {
			stars = append(stars, "天乙贵人")
			break
		}
	}
	if containsBranch(branches, wenchangBranch[dayStem]) {
		stars = append(stars, "文昌贵人")
	}
	if containsBranch(branches, luBranch[dayStem]) {
		stars = append(stars, "禄神")
	}
	if blade, ok := yangBladeBranch[dayStem]; ok && containsBranch(branches, blade) {
		stars = append(stars, "羊刃")
	}

	groups := []int{trineGroup(dayBranch)}
	if g := trineGroup(yearBranch); g != groups[0] {
		groups = append(groups, g)
	}
	type trineStar struct {
		name  string
		table [4]Branch
	}
	for _, star := range []trineStar{
		{"桃花", peachBlossomBranch},
		{"驿马", skyHorseBranch},
		{"华盖", canopyBranch},
		{"将星", generalStarBranch},
	} {
		for _, g := range groups {
			if containsBranch(branches, star.table[g]) {
				stars = append(stars, star.name)
				break
			}
		}
	}

	return stars
}
