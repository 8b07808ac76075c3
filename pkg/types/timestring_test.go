package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr error
	}{
		{name: "valid morning", input: "10:00", want: "10:00"},
		{name: "valid evening", input: "19:30", want: "19:30"},
		{name: "missing colon", input: "1000", wantErr: ErrMalformedTime},
		{name: "hour out of range", input: "25:00", wantErr: ErrMalformedTime},
		{name: "minute out of range", input: "10:75", wantErr: ErrMalformedTime},
		{name: "not padded", input: "9:30", wantErr: ErrMalformedTime},
		{name: "garbage", input: "ab:cd", wantErr: ErrMalformedTime},
		{name: "empty", input: "", wantErr: ErrMalformedTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		start   TimeString
		add     int
		want    TimeString
		wantErr error
	}{
		{name: "no carry", start: "10:00", add: 30, want: "10:30"},
		{name: "minute overflow carries into hour", start: "19:30", add: 90, want: "21:00"},
		{name: "overflow past hour boundary", start: "19:45", add: 30, want: "20:15"},
		{name: "three hour combo", start: "10:30", add: 180, want: "13:30"},
		{name: "past midnight", start: "23:30", add: 60, wantErr: ErrTimeOutOfRange},
		{name: "malformed input", start: "19:75", add: 30, wantErr: ErrMalformedTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.start.AddMinutes(tt.add)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd TimeString
		want                       bool
	}{
		{name: "real overlap", aStart: "14:30", aEnd: "15:30", bStart: "14:00", bEnd: "15:30", want: true},
		{name: "contained", aStart: "14:00", aEnd: "16:00", bStart: "14:30", bEnd: "15:00", want: true},
		{name: "back to back before", aStart: "13:00", aEnd: "14:00", bStart: "14:00", bEnd: "15:30", want: false},
		{name: "back to back after", aStart: "15:30", aEnd: "16:30", bStart: "14:00", bEnd: "15:30", want: false},
		{name: "disjoint", aStart: "10:00", aEnd: "11:00", bStart: "12:00", bEnd: "13:00", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// Overlap is symmetric.
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestComparisons(t *testing.T) {
	assert.True(t, TimeString("09:30").IsBefore("10:00"))
	assert.True(t, TimeString("20:00").IsAfter("19:30"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsAfter("10:00"))
}

func TestScan(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan("14:30:00"))
	assert.Equal(t, TimeString("14:30"), ts)

	require.NoError(t, ts.Scan([]byte("09:00")))
	assert.Equal(t, TimeString("09:00"), ts)

	require.NoError(t, ts.Scan(time.Date(2024, 6, 1, 11, 30, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("11:30"), ts)

	assert.Error(t, ts.Scan(42))
}

func TestNewTimeString(t *testing.T) {
	got := NewTimeString(time.Date(2024, 6, 1, 9, 5, 0, 0, time.UTC))
	assert.Equal(t, TimeString("09:05"), got)
}
