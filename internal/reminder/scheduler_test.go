package reminder

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDailySpec(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"18:00", "0 0 18 * * *", false},
		{"09:05", "0 5 9 * * *", false},
		{" 7:30 ", "0 30 7 * * *", false},
		{"00:00", "0 0 0 * * *", false},
		{"24:00", "", true},
		{"12:60", "", true},
		{"noon", "", true},
		{"12:00:00", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := buildDailySpec(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			assert.False(t, ValidTime(tt.in))
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
		assert.True(t, ValidTime(tt.in))
	}
}

func TestNextRun(t *testing.T) {
	now := time.Date(2024, 1, 25, 17, 30, 0, 0, time.Local)

	next, err := NextRun("18:00", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 25, 18, 0, 0, 0, time.Local), next)

	next, err = NextRun("09:00", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 26, 9, 0, 0, 0, time.Local), next)

	_, err = NextRun("bad", now)
	assert.Error(t, err)
}

func TestScheduleDaily(t *testing.T) {
	s := NewScheduler(time.Local, zerolog.Nop())

	_, err := s.ScheduleDaily(KindStudy, "18:00", func() {})
	require.NoError(t, err)
	_, err = s.ScheduleDaily(KindGoals, "09:00", func() {})
	require.NoError(t, err)
	_, err = s.ScheduleDaily(KindGoals, "9am", func() {})
	assert.Error(t, err)

	assert.Equal(t, 2, s.Entries())

	s.Start()
	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Stop did not return")
	}
}
