package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/kuhealthcare/portal/internal/dashboard"
	"github.com/kuhealthcare/portal/internal/portalapi"
)

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

func printPatients(patients []portalapi.Patient) {
	w := newTable()
	fmt.Fprintln(w, "NAME\tEMAIL")
	for _, p := range patients {
		fmt.Fprintf(w, "%s\t%s\n", p.FullName(), p.Email)
	}
	w.Flush()
}

func printStaff(roster []portalapi.MedicalStaff) {
	w := newTable()
	fmt.Fprintln(w, "NAME\tDEPARTMENT\tROLE\tAVAILABLE DAYS")
	for _, st := range roster {
		days := make([]string, 0, len(st.Schedule))
		for day, available := range st.Schedule {
			if available {
				days = append(days, day)
			}
		}
		sort.Strings(days)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", st.FullName(), st.Department, st.Role, strings.Join(days, ", "))
	}
	w.Flush()
}

func printEmergencies(emergencies []portalapi.EmergencyRequest) {
	w := newTable()
	fmt.Fprintln(w, "ID\tTITLE\tLOCATION\tURGENCY\tSTATUS")
	for _, e := range emergencies {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", e.ID, e.Title, e.Location, e.Urgency, e.Status)
	}
	w.Flush()
}

func printAppointments(title string, appointments []portalapi.Appointment) {
	fmt.Println(title)
	if len(appointments) == 0 {
		fmt.Println("  (none)")
		return
	}
	w := newTable()
	fmt.Fprintln(w, "DATE\tTIME\tTYPE\tREASON\tWITH\tSTATUS")
	for _, a := range appointments {
		with := a.StaffName
		if with == "" {
			with = a.PatientName
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", a.Date, a.Time, a.Type, a.Reason, with, a.Status)
	}
	w.Flush()
}

func printMedications(medications []portalapi.Medication) {
	w := newTable()
	fmt.Fprintln(w, "NAME\tQUANTITY\tEXPIRES\tSTATUS")
	for _, m := range medications {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", m.Name, m.Quantity, m.ExpirationDate, m.Status)
	}
	w.Flush()
}

func printEquipment(equipment []portalapi.Equipment, today time.Time) {
	w := newTable()
	fmt.Fprintln(w, "NAME\tMAINTENANCE DUE\tNOTE")
	for _, e := range equipment {
		note := ""
		if dashboard.MaintenanceSoon(e.MaintenanceDueDate, today) {
			note = "maintenance due soon"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Name, e.MaintenanceDueDate, note)
	}
	w.Flush()
}

func printConsumables(consumables []portalapi.Consumable) {
	w := newTable()
	fmt.Fprintln(w, "NAME\tQUANTITY\tSTATUS")
	for _, c := range consumables {
		fmt.Fprintf(w, "%s\t%d\t%s\n", c.Name, c.Quantity, c.Status)
	}
	w.Flush()
}

func printBilling(reports []portalapi.BillingReport) {
	w := newTable()
	fmt.Fprintln(w, "PATIENT\tAPPOINTMENT\tPAYMENT\tDATE PAID")
	for _, r := range reports {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.PatientID, r.AppointmentID, r.PaymentType, r.DatePaid)
	}
	w.Flush()
}

func printRecords(records []portalapi.MedicalRecord) {
	w := newTable()
	fmt.Fprintln(w, "TITLE\tDESCRIPTION\tBY")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\n", r.Title, r.Description, r.StaffName)
	}
	w.Flush()
}

func printPrescriptions(prescriptions []portalapi.Prescription) {
	w := newTable()
	fmt.Fprintln(w, "MEDICATION\tDOSAGE\tINSTRUCTIONS")
	for _, rx := range prescriptions {
		fmt.Fprintf(w, "%s\t%s\t%s\n", rx.MedicationName, rx.Dosage, rx.Instructions)
	}
	w.Flush()
}
