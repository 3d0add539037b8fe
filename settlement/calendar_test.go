package settlement_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/settlement-engine/settlement"
)

// =============================================================================
// REFERENCE CONFIGURATION
// =============================================================================

func TestCalendar_Default_MondayToFriday(t *testing.T) {
	cal := settlement.NewCalendar()

	for _, d := range []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday} {
		assert.True(t, cal.IsWorkingDay("USD", d), "%s should be a USD working day", d)
	}
	assert.False(t, cal.IsWorkingDay("USD", time.Saturday))
	assert.False(t, cal.IsWorkingDay("USD", time.Sunday))
}

func TestCalendar_AEDAndSAR_SundayToThursday(t *testing.T) {
	cal := settlement.NewCalendar()

	for _, currency := range []string{"AED", "SAR"} {
		for _, d := range []time.Weekday{time.Sunday, time.Monday, time.Tuesday, time.Wednesday, time.Thursday} {
			assert.True(t, cal.IsWorkingDay(currency, d), "%s should be a %s working day", d, currency)
		}
		assert.False(t, cal.IsWorkingDay(currency, time.Friday), "%s excludes Friday", currency)
		assert.False(t, cal.IsWorkingDay(currency, time.Saturday), "%s excludes Saturday", currency)
	}
}

func TestCalendar_UnknownCurrency_FallsBackToDefault(t *testing.T) {
	// GIVEN: A currency with no explicit entry
	// WHEN: Checking working days
	// THEN: The default Mon-Fri set applies; this is not an error

	cal := settlement.NewCalendar()

	assert.True(t, cal.IsWorkingDay("XXX", time.Wednesday))
	assert.False(t, cal.IsWorkingDay("XXX", time.Sunday))
}

// =============================================================================
// CONFIGURATION LOADING
// =============================================================================

func TestParseCalendar_OverridesTable(t *testing.T) {
	raw := `{
		"_default": ["Mon", "Tue", "Wed"],
		"ILS": ["Sunday", "monday", "Tuesday", "Wednesday", "Thursday"]
	}`

	cal, err := settlement.ParseCalendar(strings.NewReader(raw))
	require.NoError(t, err)

	assert.True(t, cal.IsWorkingDay("ILS", time.Sunday))
	assert.False(t, cal.IsWorkingDay("ILS", time.Friday))

	// Default replaced; previously-known currencies now use it too.
	assert.False(t, cal.IsWorkingDay("USD", time.Thursday))
	assert.False(t, cal.IsWorkingDay("AED", time.Sunday), "built-in AED entry replaced by override")
}

func TestParseCalendar_UnknownWeekday_IsError(t *testing.T) {
	_, err := settlement.ParseCalendar(strings.NewReader(`{"USD": ["Funday"]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Funday")
}

func TestWeekdaySet_Empty(t *testing.T) {
	var set settlement.WeekdaySet
	assert.True(t, set.IsEmpty())
	assert.Empty(t, set.Weekdays())
}
