package dashboard

import (
	"time"

	"github.com/kuhealthcare/portal/internal/portalapi"
)

const dateLayout = "2006-01-02"

// ambulanceDemandForecast is a stub, not a model. The source feature
// ignores every input toggle and temperature reading; reproducing
// anything smarter is out of scope.
const ambulanceDemandForecast = 4

// ForecastAmbulanceDemand returns the predicted number of ambulances
// needed. The inputs are accepted for interface compatibility with the
// forecast panel and have no effect on the result.
func ForecastAmbulanceDemand(peakHours bool, temperatureCelsius float64) int {
	return ambulanceDemandForecast
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// MaintenanceSoon reports whether an equipment due date falls within the
// next 7 days, today inclusive. Overdue equipment (a due date in the
// past) is NOT flagged; that matches the shipped behavior and screens
// rely on it, so it is preserved rather than fixed.
// The difference is a calendar-day count, so both endpoints are
// re-anchored at UTC midnight before dividing; wall-clock elapsed hours
// would drift across DST transitions and misclassify the window edges.
func MaintenanceSoon(dueDate string, today time.Time) bool {
	due, err := time.Parse(dateLayout, dueDate)
	if err != nil {
		return false
	}
	days := int(utcMidnight(due).Sub(utcMidnight(today)) / (24 * time.Hour))
	return days >= 0 && days <= 7
}

func utcMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// PartitionAppointments splits appointments into upcoming and past by
// date-only comparison against today. Today's appointments count as
// upcoming. Rows with unparsable dates land in past so the two halves
// always cover the input. The slices are freshly allocated; the input is
// not reordered.
func PartitionAppointments(appts []portalapi.Appointment, today time.Time) (upcoming, past []portalapi.Appointment) {
	cutoff := dateOnly(today)
	for _, a := range appts {
		d, err := time.ParseInLocation(dateLayout, a.Date, today.Location())
		if err != nil || d.Before(cutoff) {
			past = append(past, a)
			continue
		}
		upcoming = append(upcoming, a)
	}
	return upcoming, past
}

// StaffAvailableOn reports whether a staff member's weekday schedule
// marks them available on the given date. Schedule keys are canonical
// English day names, which time.Weekday.String produces directly.
func StaffAvailableOn(s portalapi.MedicalStaff, date time.Time) bool {
	return s.Schedule[date.Weekday().String()]
}

// AvailableStaff filters the roster down to members available on date.
func AvailableStaff(staff []portalapi.MedicalStaff, date time.Time) []portalapi.MedicalStaff {
	var out []portalapi.MedicalStaff
	for _, s := range staff {
		if StaffAvailableOn(s, date) {
			out = append(out, s)
		}
	}
	return out
}

// StaffAssignedTo returns the roster members whose schedule marks the
// named weekday available. Used by the admin scheduling screen.
func StaffAssignedTo(staff []portalapi.MedicalStaff, day string) []portalapi.MedicalStaff {
	var out []portalapi.MedicalStaff
	for _, s := range staff {
		if s.Schedule[day] {
			out = append(out, s)
		}
	}
	return out
}

// Weekdays lists the canonical schedule keys in display order.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
