package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen-go/internal/crypto"
)

var errNoMatch = errors.New("password does not match hash")

// VerifyCmd creates the 'verify' command.
func VerifyCmd() *cobra.Command {
	var hash string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check a password read from stdin against an Argon2id hash",
		Example: `  passgen random --hash | tee pair.txt
  cut -f1 pair.txt | passgen verify --hash "$(cut -f2 pair.txt)"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && !errors.Is(err, io.EOF) {
				return err
			}
			password := strings.TrimRight(line, "\r\n")

			ok, err := crypto.VerifyPassword(password, hash)
			if err != nil {
				return err
			}
			if !ok {
				return errNoMatch
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}

	cmd.Flags().StringVar(&hash, "hash", "", "PHC-encoded Argon2id hash")
	cmd.MarkFlagRequired("hash")
	return cmd
}
