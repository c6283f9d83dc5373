package bazi

// Element is one of the five elements (wu xing).
type Element int

const (
	Wood Element = iota
	Fire
	Earth
	Metal
	Water
)

var elementGlyphs = [5]string{"木", "火", "土", "金", "水"}
var elementNames = [5]string{"wood", "fire", "earth", "metal", "water"}

func (e Element) Glyph() string { return elementGlyphs[e] }
func (e Element) Name() string  { return elementNames[e] }

// Generates reports whether e generates other in the generation cycle
// (wood→fire→earth→metal→water→wood).
func (e Element) Generates(other Element) bool {
	return (e+1)%5 == other
}

// Controls reports whether e dominates other in the control cycle
// (wood→earth, earth→water, water→fire, fire→metal, metal→wood).
func (e Element) Controls(other Element) bool {
	return (e+2)%5 == other
}

// Polarity is yin or yang.
type Polarity int

const (
	Yang Polarity = iota
	Yin
)

func (p Polarity) Glyph() string {
	if p == Yin {
		return "阴"
	}
	return "阳"
}

func (p Polarity) Name() string {
	if p == Yin {
		return "yin"
	}
	return "yang"
}

// Stem is one of the ten heavenly stems, ordinal 0 (甲) through 9 (癸).
// Element and polarity are fixed functions of the ordinal.
type Stem int

var stemGlyphs = [10]string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}
var stemPinyin = [10]string{"Jia", "Yi", "Bing", "Ding", "Wu", "Ji", "Geng", "Xin", "Ren", "Gui"}

func (s Stem) Glyph() string      { return stemGlyphs[s] }
func (s Stem) Pinyin() string     { return stemPinyin[s] }
func (s Stem) Element() Element   { return Element(s / 2) }
func (s Stem) Polarity() Polarity { return Polarity(s % 2) }

// Branch is one of the twelve earthly branches, ordinal 0 (子) through
// 11 (亥). The ordinal doubles as the two-hour time-slot index.
type Branch int

var branchGlyphs = [12]string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}
var branchPinyin = [12]string{"Zi", "Chou", "Yin", "Mao", "Chen", "Si", "Wu", "Wei", "Shen", "You", "Xu", "Hai"}

var branchElements = [12]Element{
	Water, Earth, Wood, Wood, Earth, Fire,
	Fire, Earth, Metal, Metal, Earth, Water,
}

var branchPolarities = [12]Polarity{
	Yang, Yin, Yang, Yin, Yang, Yin,
	Yang, Yin, Yang, Yin, Yang, Yin,
}

// Each branch carries one to three hidden stems, principal stem first.
var branchHiddenStems = [12][]Stem{
	{9},       // 子: 癸
	{5, 9, 7}, // 丑: 己 癸 辛
	{0, 2, 4}, // 寅: 甲 丙 戊
	{1},       // 卯: 乙
	{4, 1, 9}, // 辰: 戊 乙 癸
	{2, 4, 6}, // 巳: 丙 戊 庚
	{3, 5},    // 午: 丁 己
	{5, 3, 1}, // 未: 己 丁 乙
	{6, 8, 4}, // 申: 庚 壬 戊
	{7},       // 酉: 辛
	{4, 7, 3}, // 戌: 戊 辛 丁
	{8, 0},    // 亥: 壬 甲
}

var zodiacAnimals = [12]string{"鼠", "牛", "虎", "兔", "龙", "蛇", "马", "羊", "猴", "鸡", "狗", "猪"}

func (b Branch) Glyph() string      { return branchGlyphs[b] }
func (b Branch) Pinyin() string     { return branchPinyin[b] }
func (b Branch) Element() Element   { return branchElements[b] }
func (b Branch) Polarity() Polarity { return branchPolarities[b] }
func (b Branch) Zodiac() string     { return zodiacAnimals[b] }

func (b Branch) HiddenStems() []Stem {
	return branchHiddenStems[b]
}

// naYin holds the 30 sound-element labels of the sexagenary cycle, indexed
// by cycle/2.
var naYin = [30]string{
	"海中金", "炉中火", "大林木", "路旁土", "剑锋金",
	"山头火", "涧下水", "城头土", "白蜡金", "杨柳木",
	"泉中水", "屋上土", "霹雳火", "松柏木", "长流水",
	"砂中金", "山下火", "平地木", "壁上土", "金箔金",
	"覆灯火", "天河水", "大驿土", "钗钏金", "桑柘木",
	"大溪水", "沙中土", "天上火", "石榴木", "大海水",
}

// SexagenaryIndex returns the position of a stem/branch pair in the 60-term
// cycle, 0 for 甲子.
func SexagenaryIndex(s Stem, b Branch) int {
	for i := 0; i < 60; i++ {
		if Stem(i%10) == s && Branch(i%12) == b {
			return i
		}
	}
	return -1
}

// NaYin returns the sound-element label for a stem/branch combination.
func NaYin(s Stem, b Branch) string {
	idx := SexagenaryIndex(s, b)
	if idx < 0 {
		return ""
	}
	return naYin[idx/2]
}

// VoidBranches returns the two branches left uncovered by the ten-day xun
// that the given cycle index belongs to. For the 甲子 xun these are 戌 and 亥.
func VoidBranches(cycleIndex int) [2]Branch {
	start := cycleIndex - cycleIndex%10
	return [2]Branch{Branch((start + 10) % 12), Branch((start + 11) % 12)}
}

// Ten-god labels, selected by the relation of a stem to the day master.
const (
	TenGodFriend        = "比肩"
	TenGodRobWealth     = "劫财"
	TenGodEatingGod     = "食神"
	TenGodHurtingGod    = "伤官"
	TenGodSideWealth    = "偏财"
	TenGodProperWealth  = "正财"
	TenGodSevenKiller   = "七杀"
	TenGodProperOfficer = "正官"
	TenGodSideSeal      = "偏印"
	TenGodProperSeal    = "正印"

	// The day pillar's own stem carries no relational label.
	DayMasterLabel = "日主"
)

// TenGod labels stem other relative to the day master via the element
// generation/domination cycle crossed with polarity.
func TenGod(dayMaster, other Stem) string {
	de, oe := dayMaster.Element(), other.Element()
	same := dayMaster.Polarity() == other.Polarity()

	switch {
	case de == oe:
		if same {
			return TenGodFriend
		}
		return TenGodRobWealth
	case de.Generates(oe):
		if same {
			return TenGodEatingGod
		}
		return TenGodHurtingGod
	case oe.Generates(de):
		if same {
			return TenGodSideSeal
		}
		return TenGodProperSeal
	case de.Controls(oe):
		if same {
			return TenGodSideWealth
		}
		return TenGodProperWealth
	default: // other controls the day master
		if same {
			return TenGodSevenKiller
		}
		return TenGodProperOfficer
	}
}
