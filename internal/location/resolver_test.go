package location

import (
	"testing"

	"bazi-insight/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()
	log, err := logger.New("error", "console")
	require.NoError(t, err)
	return NewResolver(log)
}

func TestResolver_Resolve(t *testing.T) {
	resolver := newTestResolver(t)

	tests := []struct {
		name  string
		place string
		want  string
	}{
		{"curated city", "Singapore", "Asia/Singapore"},
		{"curated city inside longer text", "Beijing, China", "Asia/Shanghai"},
		{"case insensitive", "NEW YORK", "America/New_York"},
		{"surrounding whitespace", "  london  ", "Europe/London"},
		{"region keyword", "somewhere in California", "America/Los_Angeles"},
		{"secondary exact city", "seoul", "Asia/Seoul"},
		{"secondary city inside longer text", "Sydney, Australia", "Australia/Sydney"},
		{"unresolvable falls back to UTC", "Atlantis", "UTC"},
		{"empty input falls back to UTC", "", "UTC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolver.Resolve(tt.place))
		})
	}
}

// Every zone the tables can return must load from the tz database.
func TestResolver_TableZonesAreValid(t *testing.T) {
	for _, entry := range curatedZones {
		assert.True(t, Validate(entry.Zone), entry.Zone)
	}
	for _, entry := range cityZones {
		assert.True(t, Validate(entry.Zone), entry.Zone)
	}
	assert.True(t, Validate("UTC"))
}

func TestValidate(t *testing.T) {
	assert.True(t, Validate("Asia/Singapore"))
	assert.False(t, Validate("Mars/Olympus_Mons"))
}
