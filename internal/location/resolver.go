package location

import (
	"strings"
	"time"

	"bazi-insight/pkg/logger"
)

// Resolver maps free-text birthplace strings to IANA timezone identifiers.
// Resolution never fails: unresolvable input degrades to UTC with a warning
// log, so a typo in the birthplace cannot block a submission.
type Resolver struct {
	log *logger.Logger
}

func NewResolver(log *logger.Logger) *Resolver {
	return &Resolver{log: log}
}

// curatedZones is checked first, in order, by substring match. It covers the
// common city and region spellings users actually type.
var curatedZones = []struct {
	Key  string
	Zone string
}{
	{"san jose", "America/Los_Angeles"},
	{"san francisco", "America/Los_Angeles"},
	{"los angeles", "America/Los_Angeles"},
	{"california", "America/Los_Angeles"},
	{"new york", "America/New_York"},
	{"chicago", "America/Chicago"},
	{"singapore", "Asia/Singapore"},
	{"beijing", "Asia/Shanghai"},
	{"shanghai", "Asia/Shanghai"},
	{"hong kong", "Asia/Hong_Kong"},
	{"london", "Europe/London"},
	{"paris", "Europe/Paris"},
	{"tokyo", "Asia/Tokyo"},
}

// cityZones is the secondary lookup table for city names outside the curated
// set. Matched on the normalized name, exact first, then substring.
var cityZones = []struct {
	City string
	Zone string
}{
	{"amsterdam", "Europe/Amsterdam"},
	{"athens", "Europe/Athens"},
	{"auckland", "Pacific/Auckland"},
	{"bangkok", "Asia/Bangkok"},
	{"barcelona", "Europe/Madrid"},
	{"berlin", "Europe/Berlin"},
	{"bogota", "America/Bogota"},
	{"boston", "America/New_York"},
	{"brisbane", "Australia/Brisbane"},
	{"brussels", "Europe/Brussels"},
	{"buenos aires", "America/Argentina/Buenos_Aires"},
	{"cairo", "Africa/Cairo"},
	{"calgary", "America/Edmonton"},
	{"chengdu", "Asia/Shanghai"},
	{"chongqing", "Asia/Shanghai"},
	{"copenhagen", "Europe/Copenhagen"},
	{"dallas", "America/Chicago"},
	{"delhi", "Asia/Kolkata"},
	{"denver", "America/Denver"},
	{"dubai", "Asia/Dubai"},
	{"dublin", "Europe/Dublin"},
	{"frankfurt", "Europe/Berlin"},
	{"guangzhou", "Asia/Shanghai"},
	{"hangzhou", "Asia/Shanghai"},
	{"hanoi", "Asia/Bangkok"},
	{"helsinki", "Europe/Helsinki"},
	{"ho chi minh", "Asia/Ho_Chi_Minh"},
	{"honolulu", "Pacific/Honolulu"},
	{"houston", "America/Chicago"},
	{"istanbul", "Europe/Istanbul"},
	{"jakarta", "Asia/Jakarta"},
	{"johannesburg", "Africa/Johannesburg"},
	{"kuala lumpur", "Asia/Kuala_Lumpur"},
	{"kyoto", "Asia/Tokyo"},
	{"lagos", "Africa/Lagos"},
	{"lima", "America/Lima"},
	{"lisbon", "Europe/Lisbon"},
	{"madrid", "Europe/Madrid"},
	{"manila", "Asia/Manila"},
	{"melbourne", "Australia/Melbourne"},
	{"mexico city", "America/Mexico_City"},
	{"miami", "America/New_York"},
	{"milan", "Europe/Rome"},
	{"montreal", "America/Toronto"},
	{"moscow", "Europe/Moscow"},
	{"mumbai", "Asia/Kolkata"},
	{"munich", "Europe/Berlin"},
	{"nairobi", "Africa/Nairobi"},
	{"nanjing", "Asia/Shanghai"},
	{"osaka", "Asia/Tokyo"},
	{"oslo", "Europe/Oslo"},
	{"perth", "Australia/Perth"},
	{"phoenix", "America/Phoenix"},
	{"prague", "Europe/Prague"},
	{"rio de janeiro", "America/Sao_Paulo"},
	{"rome", "Europe/Rome"},
	{"santiago", "America/Santiago"},
	{"sao paulo", "America/Sao_Paulo"},
	{"seattle", "America/Los_Angeles"},
	{"seoul", "Asia/Seoul"},
	{"shenzhen", "Asia/Shanghai"},
	{"stockholm", "Europe/Stockholm"},
	{"sydney", "Australia/Sydney"},
	{"taipei", "Asia/Taipei"},
	{"tianjin", "Asia/Shanghai"},
	{"toronto", "America/Toronto"},
	{"vancouver", "America/Vancouver"},
	{"vienna", "Europe/Vienna"},
	{"warsaw", "Europe/Warsaw"},
	{"wellington", "Pacific/Auckland"},
	{"wuhan", "Asia/Shanghai"},
	{"xian", "Asia/Shanghai"},
	{"zurich", "Europe/Zurich"},
}

// Resolve returns a best-effort IANA timezone for a birthplace string.
func (r *Resolver) Resolve(place string) string {
	normalized := strings.ToLower(strings.TrimSpace(place))

	for _, entry := range curatedZones {
		if strings.Contains(normalized, entry.Key) {
			return entry.Zone
		}
	}

	for _, entry := range cityZones {
		if normalized == entry.City {
			return entry.Zone
		}
	}
	for _, entry := range cityZones {
		if strings.Contains(normalized, entry.City) {
			return entry.Zone
		}
	}

	r.log.Warn("could not resolve timezone for birthplace, using UTC fallback",
		logger.StringField("birth_place", place),
	)
	return "UTC"
}

// Validate reports whether a zone identifier loads from the tz database.
func Validate(zone string) bool {
	_, err := time.LoadLocation(zone)
	return err == nil
}
