package bazi

import "math"

// The twelve "jie" solar terms open the twelve calendrical months. Indexed by
// Gregorian month: January's term is 小寒, February's 立春 (the solar new
// year), and so on through December's 大雪.
var jieNames = [13]string{"", "小寒", "立春", "惊蛰", "清明", "立夏", "芒种", "小暑", "立秋", "白露", "寒露", "立冬", "大雪"}

// Century constants for the published solar-term day approximation
// day = floor(y*0.2422 + C) - leap, where y is the offset into the century.
// Valid for 1901-2000 (index 0) and 2001-2100 (index 1); accurate to the
// civil day, which is the granularity month and year boundaries need.
var jieConstants = [13][2]float64{
	{},
	{6.11, 5.4055},   // 小寒
	{4.6295, 3.87},   // 立春
	{6.3826, 5.63},   // 惊蛰
	{5.59, 4.81},     // 清明
	{6.318, 5.52},    // 立夏
	{6.5, 5.678},     // 芒种
	{7.928, 7.108},   // 小暑
	{8.35, 7.5},      // 立秋
	{8.44, 7.646},    // 白露
	{9.098, 8.318},   // 寒露
	{8.218, 7.438},   // 立冬
	{7.9, 7.18},      // 大雪
}

// JieDay returns the day of the month on which the month-opening solar term
// falls for the given Gregorian year and month.
func JieDay(year, month int) int {
	var y int
	var c float64
	if year <= 2000 {
		y = year - 1900
		c = jieConstants[month][0]
	} else {
		y = year - 2000
		c = jieConstants[month][1]
	}

	d := int(math.Floor(float64(y)*0.2422 + c))
	if month <= 2 {
		// January and February terms precede the leap day.
		return d - (y-1)/4
	}
	return d - y/4
}

// JieName returns the name of the month-opening term of a Gregorian month.
func JieName(month int) string {
	return jieNames[month]
}
