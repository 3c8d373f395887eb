// Command portal is a terminal front end for the hosted healthcare
// backend. It signs in as an admin, patient, or staff member and exposes
// each role's screens as subcommands.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/kuhealthcare/portal/internal/config"
	"github.com/kuhealthcare/portal/internal/portalapi"
	"github.com/kuhealthcare/portal/pkg/logging"
)

type rootFlags struct {
	backendURL string
	email      string
	password   string
	logLevel   string
	timeout    time.Duration
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "portal",
		Short: "KU Healthcare portal client",
	}
	rootCmd.PersistentFlags().StringVar(&flags.backendURL, "backend-url", cfg.BackendBaseURL, "Backend base URL")
	rootCmd.PersistentFlags().StringVar(&flags.email, "email", os.Getenv("PORTAL_EMAIL"), "Login email")
	rootCmd.PersistentFlags().StringVar(&flags.password, "password", os.Getenv("PORTAL_PASSWORD"), "Login password")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().DurationVar(&flags.timeout, "timeout", cfg.HTTPTimeout, "Per-request HTTP timeout")

	rootCmd.AddCommand(loginCmd(flags))
	rootCmd.AddCommand(registerCmd(flags))
	rootCmd.AddCommand(adminCmd(flags))
	rootCmd.AddCommand(patientCmd(flags))
	rootCmd.AddCommand(staffCmd(flags))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newClient(flags *rootFlags) (*portalapi.Client, *logging.Logger) {
	logger := logging.New(flags.logLevel)
	return portalapi.New(flags.backendURL, logger, portalapi.WithTimeout(flags.timeout)), logger
}

// login resolves the credential flags to a session and rejects sessions
// whose role does not match the subcommand.
func login(ctx context.Context, client *portalapi.Client, flags *rootFlags, want portalapi.Role) (portalapi.Session, error) {
	if flags.email == "" || flags.password == "" {
		return portalapi.Session{}, fmt.Errorf("credentials required: pass --email and --password or set PORTAL_EMAIL and PORTAL_PASSWORD")
	}
	session, err := client.Login(ctx, flags.email, flags.password)
	if err != nil {
		return portalapi.Session{}, err
	}
	if session.Role != want {
		return portalapi.Session{}, fmt.Errorf("logged in as %s, but this command requires a %s account", session.Role, want)
	}
	return session, nil
}

func loginCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Verify credentials and print the resolved role",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _ := newClient(flags)
			session, err := client.Login(cmd.Context(), flags.email, flags.password)
			if err != nil {
				return err
			}
			fmt.Printf("Logged in as %s (%s)\n", session.DisplayName(), session.Role)
			return nil
		},
	}
}

func registerCmd(flags *rootFlags) *cobra.Command {
	var params portalapi.RegisterPatientParams
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new patient account",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _ := newClient(flags)
			if err := client.RegisterPatient(cmd.Context(), params); err != nil {
				return err
			}
			fmt.Println("Account created. You can now log in.")
			return nil
		},
	}
	cmd.Flags().StringVar(&params.FirstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&params.LastName, "last-name", "", "Last name")
	cmd.Flags().StringVar(&params.Email, "new-email", "", "Email address")
	cmd.Flags().StringVar(&params.Phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&params.Password, "new-password", "", "Password")
	cmd.Flags().StringVar(&params.Gender, "gender", "", "Gender")
	cmd.Flags().StringVar(&params.DateOfBirth, "date-of-birth", "", "Date of birth (YYYY-MM-DD)")
	for _, required := range []string{"first-name", "last-name", "new-email", "new-password"} {
		_ = cmd.MarkFlagRequired(required)
	}
	return cmd
}
