package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kuhealthcare/portal/internal/dashboard"
	"github.com/kuhealthcare/portal/internal/portalapi"
)

func staffCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "staff",
		Short: "Medical staff screens",
	}
	cmd.AddCommand(staffOverviewCmd(flags))
	cmd.AddCommand(staffRecordCmd(flags))
	cmd.AddCommand(staffPrescribeCmd(flags))
	return cmd
}

func newStaffDashboard(cmd *cobra.Command, flags *rootFlags) (*dashboard.Staff, error) {
	client, logger := newClient(flags)
	session, err := login(cmd.Context(), client, flags, portalapi.RoleStaff)
	if err != nil {
		return nil, err
	}
	return dashboard.NewStaff(client, *session.Staff, logger), nil
}

func staffOverviewCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Show appointments and assigned patients",
		RunE: func(cmd *cobra.Command, args []string) error {
			staff, err := newStaffDashboard(cmd, flags)
			if err != nil {
				return err
			}
			staff.RefreshAll(cmd.Context())

			fmt.Printf("Dr. %s %s, %s\n\n", staff.Identity.FirstName, staff.Identity.LastName, staff.Identity.Department)
			printAppointments("Appointments", staff.Appointments)
			fmt.Println("\nPatients")
			printPatients(staff.Patients)
			if len(staff.MedicationNames) > 0 {
				fmt.Printf("\nPrescribable medications: %s\n", strings.Join(staff.MedicationNames, ", "))
			}
			return nil
		},
	}
}

func staffRecordCmd(flags *rootFlags) *cobra.Command {
	var patientID, title, description string
	cmd := &cobra.Command{
		Use:   "add-record",
		Short: "Add a medical record for a patient",
		RunE: func(cmd *cobra.Command, args []string) error {
			staff, err := newStaffDashboard(cmd, flags)
			if err != nil {
				return err
			}
			if err := staff.SubmitMedicalRecord(cmd.Context(), patientID, title, description); err != nil {
				return err
			}
			fmt.Println("Medical record added.")
			return nil
		},
	}
	cmd.Flags().StringVar(&patientID, "patient-id", "", "Patient ID")
	cmd.Flags().StringVar(&title, "title", "", "Record title")
	cmd.Flags().StringVar(&description, "description", "", "Record details")
	_ = cmd.MarkFlagRequired("patient-id")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func staffPrescribeCmd(flags *rootFlags) *cobra.Command {
	var patientID, medication, dosage, instructions string
	cmd := &cobra.Command{
		Use:   "prescribe",
		Short: "Write a prescription for a patient",
		RunE: func(cmd *cobra.Command, args []string) error {
			staff, err := newStaffDashboard(cmd, flags)
			if err != nil {
				return err
			}
			if err := staff.SubmitPrescription(cmd.Context(), patientID, medication, dosage, instructions); err != nil {
				return err
			}
			fmt.Println("Prescription added.")
			return nil
		},
	}
	cmd.Flags().StringVar(&patientID, "patient-id", "", "Patient ID")
	cmd.Flags().StringVar(&medication, "medication", "", "Medication name")
	cmd.Flags().StringVar(&dosage, "dosage", "", "Dosage, e.g. 500mg")
	cmd.Flags().StringVar(&instructions, "instructions", "", "Usage instructions")
	_ = cmd.MarkFlagRequired("patient-id")
	_ = cmd.MarkFlagRequired("medication")
	return cmd
}
