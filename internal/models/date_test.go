package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.January, d.Month())
	assert.Equal(t, 15, d.Day())
	assert.Equal(t, "2024-01-15", d.String())

	// Unpadded components are accepted
	d, err = ParseDate("2025-7-1")
	require.NoError(t, err)
	assert.Equal(t, "2025-07-01", d.String())

	// A timestamp loses its time-of-day component
	d, err = ParseDate("2024-01-15T18:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15", d.String())

	_, err = ParseDate("not a date")
	require.Error(t, err)
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := MustParseDate("2024-01-15")

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-15"`, string(data))

	var back Date
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, d, back)

	var bad Date
	assert.Error(t, json.Unmarshal([]byte(`"nope"`), &bad))
	assert.Error(t, json.Unmarshal([]byte(`42`), &bad))
}

func TestDateScanAndValue(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-01-15", d.String())

	// Driver values carrying a time-of-day normalize to the calendar day
	require.NoError(t, d.Scan(time.Date(2024, time.March, 2, 23, 59, 59, 0, time.UTC)))
	assert.Equal(t, "2024-03-02", d.String())

	// A DATE arrives as midnight in the session's zone; the calendar day must
	// hold for any offset, east or west of UTC
	jst := time.FixedZone("JST", 9*60*60)
	require.NoError(t, d.Scan(time.Date(2024, time.January, 15, 0, 0, 0, 0, jst)))
	assert.Equal(t, "2024-01-15", d.String())

	pst := time.FixedZone("PST", -8*60*60)
	require.NoError(t, d.Scan(time.Date(2024, time.January, 15, 0, 0, 0, 0, pst)))
	assert.Equal(t, "2024-01-15", d.String())

	require.NoError(t, d.Scan([]byte("2023-12-31")))
	assert.Equal(t, "2023-12-31", d.String())

	require.NoError(t, d.Scan("2022-06-01"))
	assert.Equal(t, "2022-06-01", d.String())

	assert.Error(t, d.Scan(42))

	v, err := MustParseDate("2024-01-15").Value()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), v)
}

func TestDateComparisons(t *testing.T) {
	a := MustParseDate("2024-01-15")
	b := MustParseDate("2024-01-16")

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.IsZero())
	assert.True(t, Date{}.IsZero())
}
