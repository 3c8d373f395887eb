package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kuhealthcare/portal/internal/dashboard"
	"github.com/kuhealthcare/portal/internal/portalapi"
)

func adminCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrator screens (sentinel admin/admin login)",
	}
	cmd.AddCommand(adminOverviewCmd(flags))
	cmd.AddCommand(adminAddStaffCmd(flags))
	cmd.AddCommand(adminDispatchCmd(flags))
	cmd.AddCommand(adminScheduleCmd(flags))
	cmd.AddCommand(adminInventoryCmd(flags))
	return cmd
}

func newAdminDashboard(cmd *cobra.Command, flags *rootFlags) (*dashboard.Admin, error) {
	client, logger := newClient(flags)
	if _, err := login(cmd.Context(), client, flags, portalapi.RoleAdmin); err != nil {
		return nil, err
	}
	return dashboard.NewAdmin(client, logger), nil
}

func adminOverviewCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Show users, emergencies, inventory, and billing",
		RunE: func(cmd *cobra.Command, args []string) error {
			admin, err := newAdminDashboard(cmd, flags)
			if err != nil {
				return err
			}
			admin.RefreshAll(cmd.Context())

			fmt.Println("Patients")
			printPatients(admin.Patients)
			fmt.Println("\nStaff")
			printStaff(admin.Staff)
			fmt.Println("\nEmergencies")
			printEmergencies(admin.Emergencies)
			fmt.Println("\nMedications")
			printMedications(admin.Medications)
			fmt.Println("\nEquipment")
			printEquipment(admin.Equipment, time.Now())
			fmt.Println("\nConsumables")
			printConsumables(admin.Consumables)
			fmt.Println("\nBilling")
			printBilling(admin.Billing)
			fmt.Printf("\nForecast ambulance demand: %d\n",
				dashboard.ForecastAmbulanceDemand(true, 30))
			return nil
		},
	}
}

func adminAddStaffCmd(flags *rootFlags) *cobra.Command {
	var form dashboard.AddStaffForm
	cmd := &cobra.Command{
		Use:   "add-staff",
		Short: "Register a staff account",
		RunE: func(cmd *cobra.Command, args []string) error {
			admin, err := newAdminDashboard(cmd, flags)
			if err != nil {
				return err
			}
			if err := admin.SubmitStaff(cmd.Context(), form); err != nil {
				return err
			}
			fmt.Println("Staff member added.")
			return nil
		},
	}
	cmd.Flags().StringVar(&form.FirstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&form.LastName, "last-name", "", "Last name")
	cmd.Flags().StringVar(&form.Email, "staff-email", "", "Email address")
	cmd.Flags().StringVar(&form.Phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&form.Password, "staff-password", "", "Initial password")
	cmd.Flags().StringVar(&form.Department, "department", "", "Department")
	cmd.Flags().StringVar(&form.Role, "role", "", "Role (Doctor, Nurse, ...)")
	cmd.Flags().StringVar(&form.Specialization, "specialization", "", "Specialization")
	for _, required := range []string{"first-name", "last-name", "staff-email", "staff-password"} {
		_ = cmd.MarkFlagRequired(required)
	}
	return cmd
}

func adminDispatchCmd(flags *rootFlags) *cobra.Command {
	var id, status string
	cmd := &cobra.Command{
		Use:   "dispatch",
		Short: "Update an emergency's dispatch status",
		RunE: func(cmd *cobra.Command, args []string) error {
			admin, err := newAdminDashboard(cmd, flags)
			if err != nil {
				return err
			}
			if err := admin.UpdateEmergencyStatus(cmd.Context(), id, status); err != nil {
				return err
			}
			fmt.Println("Emergency status updated.")
			return nil
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "Emergency ID")
	cmd.Flags().StringVar(&status, "status", "", "New status (pending, dispatched, resolved)")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("status")
	return cmd
}

func adminScheduleCmd(flags *rootFlags) *cobra.Command {
	var email, day string
	var unassign bool
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Assign or unassign a staff member's working day",
		RunE: func(cmd *cobra.Command, args []string) error {
			admin, err := newAdminDashboard(cmd, flags)
			if err != nil {
				return err
			}
			valid := false
			for _, name := range dashboard.Weekdays {
				if name == day {
					valid = true
				}
			}
			if !valid {
				return fmt.Errorf("unknown weekday %q", day)
			}
			if unassign {
				err = admin.UnassignStaffDay(cmd.Context(), email, day)
			} else {
				err = admin.AssignStaffDay(cmd.Context(), email, day)
			}
			if err != nil {
				return err
			}
			fmt.Printf("Schedule updated. Staff assigned to %s:\n", day)
			printStaff(dashboard.StaffAssignedTo(admin.Staff, day))
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "staff-email", "", "Staff email")
	cmd.Flags().StringVar(&day, "day", "", "Weekday name (Monday...Sunday)")
	cmd.Flags().BoolVar(&unassign, "unassign", false, "Remove the day instead of adding it")
	_ = cmd.MarkFlagRequired("staff-email")
	_ = cmd.MarkFlagRequired("day")
	return cmd
}

func adminInventoryCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Add medications, equipment, and consumables",
	}

	var medName, medQuantity, medExpiration string
	medCmd := &cobra.Command{
		Use:   "add-medication",
		Short: "Add a medication to the inventory",
		RunE: func(cmd *cobra.Command, args []string) error {
			admin, err := newAdminDashboard(cmd, flags)
			if err != nil {
				return err
			}
			if err := admin.SubmitMedication(cmd.Context(), medName, medQuantity, medExpiration); err != nil {
				return err
			}
			fmt.Println("Medication added.")
			return nil
		},
	}
	medCmd.Flags().StringVar(&medName, "name", "", "Medication name")
	medCmd.Flags().StringVar(&medQuantity, "quantity", "", "Quantity on hand")
	medCmd.Flags().StringVar(&medExpiration, "expiration", "", "Expiration date (YYYY-MM-DD)")
	_ = medCmd.MarkFlagRequired("name")
	_ = medCmd.MarkFlagRequired("quantity")
	_ = medCmd.MarkFlagRequired("expiration")
	cmd.AddCommand(medCmd)

	var eqName, eqDue string
	eqCmd := &cobra.Command{
		Use:   "add-equipment",
		Short: "Add an equipment item",
		RunE: func(cmd *cobra.Command, args []string) error {
			admin, err := newAdminDashboard(cmd, flags)
			if err != nil {
				return err
			}
			if err := admin.SubmitEquipment(cmd.Context(), eqName, eqDue); err != nil {
				return err
			}
			fmt.Println("Equipment added.")
			return nil
		},
	}
	eqCmd.Flags().StringVar(&eqName, "name", "", "Equipment name")
	eqCmd.Flags().StringVar(&eqDue, "maintenance-due", "", "Maintenance due date (YYYY-MM-DD)")
	_ = eqCmd.MarkFlagRequired("name")
	_ = eqCmd.MarkFlagRequired("maintenance-due")
	cmd.AddCommand(eqCmd)

	var conName, conQuantity string
	conCmd := &cobra.Command{
		Use:   "add-consumable",
		Short: "Add a consumable item",
		RunE: func(cmd *cobra.Command, args []string) error {
			admin, err := newAdminDashboard(cmd, flags)
			if err != nil {
				return err
			}
			if err := admin.SubmitConsumable(cmd.Context(), conName, conQuantity); err != nil {
				return err
			}
			fmt.Println("Consumable added.")
			return nil
		},
	}
	conCmd.Flags().StringVar(&conName, "name", "", "Consumable name")
	conCmd.Flags().StringVar(&conQuantity, "quantity", "", "Quantity on hand")
	_ = conCmd.MarkFlagRequired("name")
	_ = conCmd.MarkFlagRequired("quantity")
	cmd.AddCommand(conCmd)

	return cmd
}
