package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/gfycat-go/gfycat"
)

// availableCmd represents the available command
var availableCmd = &cobra.Command{
	Use:     "available <username>",
	Short:   "Check whether a username can still be registered",
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeApp,
	RunE:    runAvailable,
}

// emailVerifiedCmd represents the email-verified command
var emailVerifiedCmd = &cobra.Command{
	Use:     "email-verified",
	Short:   "Check whether the authenticated account has a verified email",
	Args:    cobra.NoArgs,
	PreRunE: initializeApp,
	RunE:    runEmailVerified,
}

// sendVerificationCmd represents the send-verification command
var sendVerificationCmd = &cobra.Command{
	Use:     "send-verification",
	Short:   "Send a verification email to the authenticated account",
	Args:    cobra.NoArgs,
	PreRunE: initializeApp,
	RunE:    runSendVerification,
}

// resetPasswordCmd represents the reset-password command
var resetPasswordCmd = &cobra.Command{
	Use:     "reset-password <email>",
	Short:   "Request a password reset email",
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeApp,
	RunE:    runResetPassword,
}

func init() {
	rootCmd.AddCommand(availableCmd)
	rootCmd.AddCommand(emailVerifiedCmd)
	rootCmd.AddCommand(sendVerificationCmd)
	rootCmd.AddCommand(resetPasswordCmd)
}

func runAvailable(cmd *cobra.Command, args []string) error {
	username := args[0]

	available, err := client.UsernameAvailable(cmd.Context(), username)
	if err != nil {
		if errors.Is(err, gfycat.ErrInvalidValue) {
			return fmt.Errorf("username %q is not valid", username)
		}
		return err
	}

	if available {
		fmt.Printf("✓ %s is available\n", username)
	} else {
		fmt.Printf("✗ %s is taken\n", username)
	}
	return nil
}

func runEmailVerified(cmd *cobra.Command, args []string) error {
	verified, err := client.EmailVerified(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("Email verified: %s\n", boolToStatus(verified))
	return nil
}

func runSendVerification(cmd *cobra.Command, args []string) error {
	if err := client.SendVerificationEmail(cmd.Context()); err != nil {
		if errors.Is(err, gfycat.ErrMissingEmail) {
			return fmt.Errorf("the account has no email address")
		}
		return err
	}

	fmt.Println("✓ Verification email sent")
	return nil
}

func runResetPassword(cmd *cobra.Command, args []string) error {
	email := args[0]

	if err := client.ResetPassword(cmd.Context(), email); err != nil {
		switch {
		case errors.Is(err, gfycat.ErrInvalidValue):
			return fmt.Errorf("no account found for %s", email)
		case errors.Is(err, gfycat.ErrMissingEmail):
			return fmt.Errorf("the account has no email address")
		}
		return err
	}

	logger.Info().Str("email", email).Msg("Password reset requested")
	fmt.Printf("✓ Password reset email sent to %s\n", email)
	return nil
}
