package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "+2.50%", FormatPercent(2.5))
	assert.Equal(t, "-1.00%", FormatPercent(-1))
	assert.Equal(t, "0.00%", FormatPercent(0))
}

func TestFormatRiskReward(t *testing.T) {
	assert.Equal(t, "1:2.00", FormatRiskReward(2))
	assert.Equal(t, "1:0.00", FormatRiskReward(0))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "2026-02-10", FormatDate(time.Date(2026, 2, 10, 18, 0, 0, 0, time.UTC)))
	assert.Equal(t, "", FormatDate(time.Time{}))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-02-10")
	assert.NoError(t, err)
	assert.Equal(t, 2026, d.Year())

	_, err = ParseDate("10/02/2026")
	assert.Error(t, err)
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", TruncateString("short", 10))
	assert.Equal(t, "long co...", TruncateString("long comment here", 10))
	assert.Equal(t, "ab", TruncateString("abcdef", 2))
}
