package commands

import (
	"github.com/spf13/cobra"

	"aniresfr/internal/domain"
)

func registerCmd() *cobra.Command {
	var (
		p             domain.RegistrationProfile
		passwordStdin bool
	)
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register an organisation and store the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passwordStdin {
				pw, err := readSecret(cmd.InOrStdin())
				if err != nil {
					return err
				}
				p.Password = pw
			}

			out := appCtx.Auth.Register(cmd.Context(), p,
				terminalReporter{out: cmd.OutOrStdout(), errOut: cmd.ErrOrStderr()})
			if !out.Succeeded() {
				return errAttemptFailed
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&p.OrgName, "name", "", "organisation name")
	f.StringVar(&p.PhoneNumber, "phone", "", "organisation phone number")
	f.StringVar(&p.Email, "email", "", "organisation email")
	f.StringVar(&p.EmergencyContact, "emergency-contact", "", "emergency contact number")
	f.StringVar(&p.Password, "password", "", "account password")
	f.BoolVar(&passwordStdin, "password-stdin", false, "read the password from stdin")
	f.StringVar(&p.Location, "location", "", "organisation location")
	f.StringVar(&p.WebsiteLink, "website", "", "organisation website")
	f.Float64Var(&p.Latitude, "lat", 0, "latitude")
	f.Float64Var(&p.Longitude, "lng", 0, "longitude")
	cmd.MarkFlagsMutuallyExclusive("password", "password-stdin")
	return cmd
}
