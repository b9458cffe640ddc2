package cmd

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/spf13/cobra"

	"github.com/gregLibert/oathmfa/pkg/credentials"
	"github.com/gregLibert/oathmfa/pkg/tokencode"
)

var codeCmd = &cobra.Command{
	Use:   "code",
	Short: "Print the current TOTP code for this AWS identity's MFA device",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := session.NewSessionWithOptions(session.Options{SharedConfigState: session.SharedConfigEnable})
		if err != nil {
			return fmt.Errorf("creating AWS session: %w", err)
		}

		identity, err := credentials.ResolveIdentity(sess)
		if err != nil {
			return fmt.Errorf("resolving caller identity: %w", err)
		}

		code, err := tokencode.Get(identity.Issuer)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), code)
		return nil
	},
}
