package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/spf13/cobra"
)

var runCachePath string

var runCmd = &cobra.Command{
	Use:                "run -- <command> [args...]",
	Short:              "Run a command with temporary, MFA-gated AWS session credentials",
	Args:               cobra.MinimumNArgs(1),
	DisableFlagParsing: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := session.NewSessionWithOptions(session.Options{SharedConfigState: session.SharedConfigEnable})
		if err != nil {
			return fmt.Errorf("creating AWS session: %w", err)
		}

		cache, err := openCache(runCachePath)
		if err != nil {
			return fmt.Errorf("opening credential cache: %w", err)
		}

		sc, err := authenticate(sess, cache)
		if err != nil {
			return err
		}

		child := exec.Command(args[0], args[1:]...)
		child.Stdin = os.Stdin
		child.Stdout = os.Stdout
		child.Stderr = os.Stderr
		child.Env = append(os.Environ(),
			"AWS_ACCESS_KEY_ID="+sc.AccessKeyID,
			"AWS_SECRET_ACCESS_KEY="+sc.SecretAccessKey,
			"AWS_SESSION_TOKEN="+sc.SessionToken,
		)

		if err := child.Run(); err != nil {
			if exitErr, ok := err.(*exec.ExitError); ok {
				os.Exit(exitErr.ExitCode())
			}
			return fmt.Errorf("running %s: %w", args[0], err)
		}
		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&runCachePath, "cache-path", "", "override the credential cache file path")
}
