package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kuhealthcare/portal/internal/dashboard"
	"github.com/kuhealthcare/portal/internal/portalapi"
)

func patientCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patient",
		Short: "Patient screens",
	}
	cmd.AddCommand(patientOverviewCmd(flags))
	cmd.AddCommand(patientDoctorsCmd(flags))
	cmd.AddCommand(patientBookCmd(flags))
	cmd.AddCommand(patientEmergencyCmd(flags))
	cmd.AddCommand(patientPayCmd(flags))
	cmd.AddCommand(patientInsuranceCmd(flags))
	return cmd
}

func newPatientDashboard(cmd *cobra.Command, flags *rootFlags) (*dashboard.Patient, error) {
	client, logger := newClient(flags)
	session, err := login(cmd.Context(), client, flags, portalapi.RolePatient)
	if err != nil {
		return nil, err
	}
	return dashboard.NewPatient(client, *session.Patient, logger), nil
}

func patientOverviewCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Show appointments, medical history, prescriptions, and balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			patient, err := newPatientDashboard(cmd, flags)
			if err != nil {
				return err
			}
			patient.RefreshAll(cmd.Context())

			fmt.Printf("Welcome, %s %s\n\n", patient.Identity.FirstName, patient.Identity.LastName)
			today := time.Now()
			printAppointments("Upcoming appointments", patient.Upcoming(today))
			fmt.Println()
			printAppointments("Past appointments", patient.Past(today))
			fmt.Println("\nMedical history")
			printRecords(patient.Records)
			fmt.Println("\nPrescriptions")
			printPrescriptions(patient.Prescriptions)
			fmt.Printf("\nOutstanding balance: AED %d\n", patient.Balance)
			if patient.Identity.InsuranceProvider != "" {
				fmt.Printf("Insurance provider: %s\n", patient.Identity.InsuranceProvider)
			}
			return nil
		},
	}
}

func patientDoctorsCmd(flags *rootFlags) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "doctors",
		Short: "List staff available on a date, for booking",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _ := newClient(flags)
			if _, err := login(cmd.Context(), client, flags, portalapi.RolePatient); err != nil {
				return err
			}
			day, err := time.Parse("2006-01-02", date)
			if err != nil {
				return fmt.Errorf("invalid date %q, want YYYY-MM-DD", date)
			}
			roster, err := client.ListStaff(cmd.Context())
			if err != nil {
				return err
			}
			printStaff(dashboard.AvailableStaff(roster, day))
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Visit date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}

func patientBookCmd(flags *rootFlags) *cobra.Command {
	var staffID, date, timeOfDay, reason, apptType string
	cmd := &cobra.Command{
		Use:   "book",
		Short: "Book an appointment",
		RunE: func(cmd *cobra.Command, args []string) error {
			patient, err := newPatientDashboard(cmd, flags)
			if err != nil {
				return err
			}
			if err := patient.BookAppointment(cmd.Context(), staffID, date, timeOfDay, reason, apptType); err != nil {
				return err
			}
			fmt.Println("Appointment booked.")
			return nil
		},
	}
	cmd.Flags().StringVar(&staffID, "staff-id", "", "Staff member ID")
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&timeOfDay, "time", "", "Time (HH:MM)")
	cmd.Flags().StringVar(&reason, "reason", "", "Reason for the visit")
	cmd.Flags().StringVar(&apptType, "type", "Consultation", "Appointment type")
	for _, required := range []string{"staff-id", "date", "time", "reason"} {
		_ = cmd.MarkFlagRequired(required)
	}
	return cmd
}

func patientEmergencyCmd(flags *rootFlags) *cobra.Command {
	var title, location, urgency string
	cmd := &cobra.Command{
		Use:   "emergency",
		Short: "Request an ambulance",
		RunE: func(cmd *cobra.Command, args []string) error {
			patient, err := newPatientDashboard(cmd, flags)
			if err != nil {
				return err
			}
			msg, err := patient.RequestEmergency(cmd.Context(), title, location, urgency)
			if err != nil {
				return err
			}
			fmt.Println(msg)
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "Short description of the emergency")
	cmd.Flags().StringVar(&location, "location", "", "Where the ambulance should go")
	cmd.Flags().StringVar(&urgency, "urgency", "High", "Urgency level")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("location")
	return cmd
}

func patientPayCmd(flags *rootFlags) *cobra.Command {
	var paymentType string
	cmd := &cobra.Command{
		Use:   "pay",
		Short: "Settle the outstanding balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			patient, err := newPatientDashboard(cmd, flags)
			if err != nil {
				return err
			}
			patient.RefreshBalance(cmd.Context())
			if patient.Balance == 0 {
				fmt.Println("Nothing to pay.")
				return nil
			}
			msg, err := patient.SettlePayments(cmd.Context(), paymentType)
			if err != nil {
				return err
			}
			fmt.Println(msg)
			return nil
		},
	}
	cmd.Flags().StringVar(&paymentType, "type", "Cash", "Payment type (Cash or Insurance)")
	return cmd
}

func patientInsuranceCmd(flags *rootFlags) *cobra.Command {
	var provider string
	cmd := &cobra.Command{
		Use:   "insurance",
		Short: "Update the insurance provider on file",
		RunE: func(cmd *cobra.Command, args []string) error {
			patient, err := newPatientDashboard(cmd, flags)
			if err != nil {
				return err
			}
			if err := patient.UpdateInsurance(cmd.Context(), provider); err != nil {
				return err
			}
			fmt.Println("Insurance updated.")
			return nil
		},
	}
	cmd.Flags().StringVar(&provider, "provider", "", "Insurance provider name")
	_ = cmd.MarkFlagRequired("provider")
	return cmd
}
