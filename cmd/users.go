package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/gfycat-go/gfycat"
)

// userCmd represents the user command
var userCmd = &cobra.Command{
	Use:     "user <id>",
	Short:   "Show the public profile of a user",
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeApp,
	RunE:    runUser,
}

// meCmd represents the me command
var meCmd = &cobra.Command{
	Use:     "me",
	Short:   "Show the profile of the authenticated account",
	Args:    cobra.NoArgs,
	PreRunE: initializeApp,
	RunE:    runMe,
}

func init() {
	rootCmd.AddCommand(userCmd)
	rootCmd.AddCommand(meCmd)
}

func runUser(cmd *cobra.Command, args []string) error {
	user, err := client.User(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}

	printUser(user)
	return nil
}

func runMe(cmd *cobra.Command, args []string) error {
	self, err := client.Self(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to get account: %w", err)
	}

	printUser(&self.User)
	fmt.Printf("Email: %s (verified: %s)\n", self.Email, boolToStatus(self.EmailVerified))
	fmt.Printf("Gfycats: %d  Albums: %d  Bookmarks: %d\n", self.TotalGfycats, self.TotalAlbums, self.TotalBookmarks)
	if len(self.DomainWhitelist) > 0 {
		fmt.Printf("Domain whitelist: %s\n", strings.Join(self.DomainWhitelist, ", "))
	}
	if len(self.GeoWhitelist) > 0 {
		fmt.Printf("Geo whitelist: %s\n", strings.Join(self.GeoWhitelist, ", "))
	}
	return nil
}

func printUser(user *gfycat.User) {
	fmt.Printf("%s (@%s)", user.GetDisplayName(), user.Username)
	if user.Verified {
		fmt.Printf(" [VERIFIED]")
	}
	fmt.Println()
	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("ID: %s\n", user.UserID)
	if user.Description != "" {
		fmt.Printf("About: %s\n", user.Description)
	}
	fmt.Printf("Profile: %s\n", user.ProfileURL)
	if created := user.CreatedAt(); !created.IsZero() {
		fmt.Printf("Joined: %s\n", created.Format("2006-01-02"))
	}
	fmt.Printf("Views: %d  Followers: %d  Following: %d\n", user.Views, user.Followers, user.Following)
	fmt.Printf("Published: %d gfycats, %d albums\n", user.PublishedGfycats, user.PublishedAlbums)
}
