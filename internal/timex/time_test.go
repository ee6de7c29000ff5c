package timex

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTime_UnmarshalAcceptedLayouts(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{"zoned with millis", `"2023-03-20T12:34:56.789Z"`, time.Date(2023, 3, 20, 12, 34, 56, 789000000, time.UTC)},
		{"zoned", `"2023-04-01T09:00:00Z"`, time.Date(2023, 4, 1, 9, 0, 0, 0, time.UTC)},
		{"no zone", `"2023-10-23T16:43:34"`, time.Date(2023, 10, 23, 16, 43, 34, 0, time.UTC)},
		{"space separated", `"2023-11-13 17:47:04"`, time.Date(2023, 11, 13, 17, 47, 4, 0, time.UTC)},
		{"bare date", `"2023-10-15"`, time.Date(2023, 10, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Time
			require.NoError(t, json.Unmarshal([]byte(tt.in), &got))
			assert.True(t, tt.want.Equal(got.Time), "got %s", got.Time)
		})
	}
}

func TestTime_NullAndEmpty(t *testing.T) {
	var got Time
	require.NoError(t, json.Unmarshal([]byte(`null`), &got))
	assert.True(t, got.IsZero())

	require.NoError(t, json.Unmarshal([]byte(`""`), &got))
	assert.True(t, got.IsZero())

	b, err := json.Marshal(Time{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
}

func TestTime_UnmarshalRejectsGarbage(t *testing.T) {
	var got Time
	require.Error(t, json.Unmarshal([]byte(`"2023 - 10 - 23T16: 43: 34"`), &got))
	require.Error(t, json.Unmarshal([]byte(`42`), &got))
}

func TestTime_MarshalRFC3339(t *testing.T) {
	ts := NewTime(time.Date(2024, 10, 10, 8, 30, 0, 0, time.UTC))
	b, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, `"2024-10-10T08:30:00Z"`, string(b))
}
