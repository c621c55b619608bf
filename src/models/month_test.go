package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonth(t *testing.T) {
	m, err := ParseMonth("2024-05")
	require.NoError(t, err)
	assert.Equal(t, Month{Year: 2024, Month: time.May}, m)

	for _, bad := range []string{"", "2024", "2024-13", "2024-5", "May 2024", "2024-05-10"} {
		_, err := ParseMonth(bad)
		assert.Error(t, err, "expected %q to be rejected", bad)
	}
}

func TestMonthString(t *testing.T) {
	assert.Equal(t, "2024-05", Month{Year: 2024, Month: time.May}.String())
	assert.Equal(t, "2024-12", Month{Year: 2024, Month: time.December}.String())
}

func TestMonthAddMonths(t *testing.T) {
	jan := Month{Year: 2024, Month: time.January}

	assert.Equal(t, Month{Year: 2024, Month: time.March}, jan.AddMonths(2))
	assert.Equal(t, Month{Year: 2023, Month: time.December}, jan.AddMonths(-1))
	assert.Equal(t, Month{Year: 2023, Month: time.February}, jan.AddMonths(-11))
	assert.Equal(t, jan, jan.AddMonths(0))
}

func TestMonthContains(t *testing.T) {
	may := Month{Year: 2024, Month: time.May}

	assert.True(t, may.Contains(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, may.Contains(time.Date(2024, 5, 31, 23, 59, 59, 0, time.UTC)))
	assert.False(t, may.Contains(time.Date(2024, 4, 30, 23, 59, 59, 0, time.UTC)))
	assert.False(t, may.Contains(time.Date(2023, 5, 15, 12, 0, 0, 0, time.UTC)))
}

func TestMonthJSONRoundTrip(t *testing.T) {
	m := Month{Year: 2024, Month: time.May}

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `"2024-05"`, string(data))

	var decoded Month
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, m, decoded)

	assert.Error(t, json.Unmarshal([]byte(`"not-a-month"`), &decoded))
}
