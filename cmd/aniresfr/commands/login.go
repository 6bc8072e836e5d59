package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"aniresfr/internal/domain"
)

func loginCmd() *cobra.Command {
	var (
		email         string
		password      string
		passwordStdin bool
	)
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passwordStdin {
				p, err := readSecret(cmd.InOrStdin())
				if err != nil {
					return err
				}
				password = p
			}

			out := appCtx.Auth.Login(cmd.Context(), domain.Credentials{
				Email:    email,
				Password: password,
			}, terminalReporter{out: cmd.OutOrStdout(), errOut: cmd.ErrOrStderr()})
			if !out.Succeeded() {
				return errAttemptFailed
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "organisation email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "read the password from stdin")
	cmd.MarkFlagsMutuallyExclusive("password", "password-stdin")
	return cmd
}

// readSecret returns the first line of r without its line ending.
func readSecret(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
