package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name           string
		aStart, aEnd   types.TimeString
		bStart, bEnd   types.TimeString
		expectOverlaps bool
	}{
		{
			name:   "identical intervals",
			aStart: "10:00", aEnd: "10:30",
			bStart: "10:00", bEnd: "10:30",
			expectOverlaps: true,
		},
		{
			name:   "slot fully inside booking",
			aStart: "10:00", aEnd: "10:30",
			bStart: "09:30", bEnd: "11:00",
			expectOverlaps: true,
		},
		{
			name:   "slot fully contains booking",
			aStart: "09:00", aEnd: "12:00",
			bStart: "10:00", bEnd: "10:30",
			expectOverlaps: true,
		},
		{
			name:   "partial overlap on leading edge",
			aStart: "11:30", aEnd: "12:00",
			bStart: "11:20", bEnd: "11:40",
			expectOverlaps: true,
		},
		{
			name:   "partial overlap on trailing edge",
			aStart: "11:30", aEnd: "12:00",
			bStart: "11:50", bEnd: "12:30",
			expectOverlaps: true,
		},
		{
			name:   "touching before is not overlap",
			aStart: "11:30", aEnd: "12:00",
			bStart: "11:00", bEnd: "11:30",
			expectOverlaps: false,
		},
		{
			name:   "touching after is not overlap",
			aStart: "11:30", aEnd: "12:00",
			bStart: "12:00", bEnd: "12:30",
			expectOverlaps: false,
		},
		{
			name:   "disjoint",
			aStart: "09:00", aEnd: "09:30",
			bStart: "15:00", bEnd: "16:00",
			expectOverlaps: false,
		},
		{
			name:   "booking ending at midnight",
			aStart: "23:30", aEnd: types.EndOfDay,
			bStart: "23:00", bEnd: types.EndOfDay,
			expectOverlaps: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd)
			assert.Equal(t, tt.expectOverlaps, got)

			// Пересечение симметрично
			mirrored := Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd)
			assert.Equal(t, tt.expectOverlaps, mirrored)
		})
	}
}

func TestOverlapsPadded(t *testing.T) {
	tests := []struct {
		name           string
		aStart, aEnd   types.TimeString
		bStart, bEnd   types.TimeString
		pad            int
		expectOverlaps bool
	}{
		{
			name:   "zero padding behaves like Overlaps",
			aStart: "09:30", aEnd: "10:00",
			bStart: "10:00", bEnd: "11:00",
			pad:            0,
			expectOverlaps: false,
		},
		{
			name:   "padding blocks adjacent slot before booking",
			aStart: "09:30", aEnd: "10:00",
			bStart: "10:00", bEnd: "11:00",
			pad:            15,
			expectOverlaps: true,
		},
		{
			name:   "padding blocks adjacent slot after booking",
			aStart: "11:00", aEnd: "11:30",
			bStart: "10:00", bEnd: "11:00",
			pad:            15,
			expectOverlaps: true,
		},
		{
			name:   "slot beyond padded zone stays free",
			aStart: "11:30", aEnd: "12:00",
			bStart: "10:00", bEnd: "11:00",
			pad:            15,
			expectOverlaps: false,
		},
		{
			name:   "padding clamped at start of day",
			aStart: "00:00", aEnd: "00:30",
			bStart: "00:15", bEnd: "01:00",
			pad:            60,
			expectOverlaps: true,
		},
		{
			name:   "padding clamped at end of day",
			aStart: "23:30", aEnd: types.EndOfDay,
			bStart: "22:30", bEnd: "23:15",
			pad:            60,
			expectOverlaps: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := OverlapsPadded(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd, tt.pad)
			require.NoError(t, err)
			assert.Equal(t, tt.expectOverlaps, got)
		})
	}
}

func TestOverlapsPadded_InvalidTime(t *testing.T) {
	_, err := OverlapsPadded("bad", "10:00", "10:00", "11:00", 15)
	require.Error(t, err)
}
