package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/gregLibert/oathmfa/pkg/oath"
	"github.com/gregLibert/oathmfa/pkg/pcsc"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the credentials stored on the connected OATH device",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := pcsc.Establish()
		if err != nil {
			return err
		}
		defer func() { _ = ctx.Release() }()

		client, card, err := oath.Connect(ctx)
		if err != nil {
			return err
		}
		defer func() { _ = card.Disconnect() }()

		creds, err := client.List()
		if err != nil {
			return err
		}

		t := table.NewWriter()
		t.SetOutputMirror(cmd.OutOrStdout())
		t.AppendHeader(table.Row{"Name", "Type", "Algorithm"})
		for _, c := range creds {
			t.AppendRow(table.Row{string(c.Name), credentialTypeName(c.Type), algorithmName(c.Algorithm)})
		}
		t.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func credentialTypeName(v byte) string {
	switch v {
	case 0x1:
		return "HOTP"
	case 0x2:
		return "TOTP"
	default:
		return fmt.Sprintf("unknown(0x%X)", v)
	}
}

func algorithmName(v byte) string {
	switch v {
	case 0x1:
		return "HMAC-SHA1"
	case 0x2:
		return "HMAC-SHA256"
	case 0x3:
		return "HMAC-SHA512"
	default:
		return fmt.Sprintf("unknown(0x%X)", v)
	}
}
