package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kuhealthcare/portal/internal/portalapi"
)

var today = time.Date(2026, 8, 31, 14, 30, 0, 0, time.UTC)

func TestMaintenanceSoon(t *testing.T) {
	tests := []struct {
		name    string
		dueDate string
		want    bool
	}{
		{"due today", "2026-08-31", true},
		{"due tomorrow", "2026-09-01", true},
		{"due in exactly 7 days", "2026-09-07", true},
		{"due in 8 days", "2026-09-08", false},
		{"overdue yesterday is not flagged", "2026-08-30", false},
		{"long overdue is not flagged", "2026-01-01", false},
		{"unparsable date", "soon", false},
		{"empty date", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaintenanceSoon(tt.dueDate, today))
		})
	}
}

func TestMaintenanceSoon_AcrossDSTTransition(t *testing.T) {
	// The window is a calendar-day count. In a DST zone the elapsed
	// hours across a transition are not a multiple of 24, so a
	// wall-clock division would misclassify both edges.
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// US spring-forward is 2026-03-08; the interval 03-07 -> 03-15 is
	// 191 wall-clock hours but exactly 8 calendar days.
	beforeSpringForward := time.Date(2026, 3, 7, 12, 0, 0, 0, loc)
	assert.False(t, MaintenanceSoon("2026-03-15", beforeSpringForward), "8 days out must not be flagged")
	assert.True(t, MaintenanceSoon("2026-03-14", beforeSpringForward), "7 days out stays inside the window")

	// One day overdue across the transition is -23 wall-clock hours;
	// it must still count as a full day in the past.
	afterSpringForward := time.Date(2026, 3, 9, 12, 0, 0, 0, loc)
	assert.False(t, MaintenanceSoon("2026-03-08", afterSpringForward), "overdue by 1 day must not be flagged")

	// US fall-back is 2026-11-01: 8 days out spans 193 wall-clock hours.
	beforeFallBack := time.Date(2026, 10, 31, 12, 0, 0, 0, loc)
	assert.False(t, MaintenanceSoon("2026-11-08", beforeFallBack), "8 days out across fall-back must not be flagged")
	assert.True(t, MaintenanceSoon("2026-11-07", beforeFallBack))
}

func TestPartitionAppointments(t *testing.T) {
	appts := []portalapi.Appointment{
		{ID: "a1", Date: "2026-08-30"},
		{ID: "a2", Date: "2026-08-31"},
		{ID: "a3", Date: "2026-09-15"},
		{ID: "a4", Date: "2025-12-24"},
		{ID: "a5", Date: "garbled"},
	}

	upcoming, past := PartitionAppointments(appts, today)

	// Today counts as upcoming; unparsable dates sink into past.
	var upcomingIDs, pastIDs []string
	for _, a := range upcoming {
		upcomingIDs = append(upcomingIDs, a.ID)
	}
	for _, a := range past {
		pastIDs = append(pastIDs, a.ID)
	}
	assert.Equal(t, []string{"a2", "a3"}, upcomingIDs)
	assert.Equal(t, []string{"a1", "a4", "a5"}, pastIDs)

	// Disjoint and covering.
	require.Equal(t, len(appts), len(upcoming)+len(past))
	seen := map[string]bool{}
	for _, a := range append(upcoming, past...) {
		require.False(t, seen[a.ID], "appointment %s appears twice", a.ID)
		seen[a.ID] = true
	}
}

func TestPartitionAppointments_Empty(t *testing.T) {
	upcoming, past := PartitionAppointments(nil, today)
	assert.Empty(t, upcoming)
	assert.Empty(t, past)
}

func TestStaffAvailableOn(t *testing.T) {
	s := portalapi.MedicalStaff{
		ID:       "s1",
		Schedule: map[string]bool{"Monday": true, "Wednesday": false},
	}

	monday := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC) // a Monday
	wednesday := monday.AddDate(0, 0, 2)
	friday := monday.AddDate(0, 0, 4)

	assert.True(t, StaffAvailableOn(s, monday))
	assert.False(t, StaffAvailableOn(s, wednesday))
	assert.False(t, StaffAvailableOn(s, friday), "missing key means unavailable")
}

func TestAvailableStaff(t *testing.T) {
	roster := []portalapi.MedicalStaff{
		{ID: "s1", Schedule: map[string]bool{"Monday": true}},
		{ID: "s2", Schedule: map[string]bool{"Monday": false}},
		{ID: "s3", Schedule: nil},
	}

	monday := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	got := AvailableStaff(roster, monday)
	require.Len(t, got, 1)
	assert.Equal(t, "s1", got[0].ID)
}

func TestStaffAssignedTo(t *testing.T) {
	roster := []portalapi.MedicalStaff{
		{ID: "s1", Schedule: map[string]bool{"Tuesday": true}},
		{ID: "s2", Schedule: map[string]bool{"Tuesday": true, "Friday": true}},
	}
	assert.Len(t, StaffAssignedTo(roster, "Tuesday"), 2)
	assert.Len(t, StaffAssignedTo(roster, "Friday"), 1)
	assert.Empty(t, StaffAssignedTo(roster, "Sunday"))
}

func TestForecastAmbulanceDemand_AlwaysFour(t *testing.T) {
	for _, peak := range []bool{true, false} {
		for _, temp := range []float64{-10, 0, 22.5, 48} {
			assert.Equal(t, 4, ForecastAmbulanceDemand(peak, temp),
				"peak=%v temp=%v", peak, temp)
		}
	}
}
