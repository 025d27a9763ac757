package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/gfycat-go/filter"
	"github.com/s0up4200/gfycat-go/gfycat"
)

var (
	filterExpr  string
	showDetails bool
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info <id>...",
	Short: "Show metadata for one or more gfycats",
	Long: `Fetch the metadata of one or more gfycats, optionally keeping only those
matching a filter expression.

Examples:
  gfycat info happyfluffycat
  gfycat info id1 id2 id3 --filter 'Views > 1000 and !NSFW'
  gfycat info id1 id2 --filter 'hasTag("cats") and Duration < 10'`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: initializeApp,
	RunE:    runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	infoCmd.Flags().BoolVar(&showDetails, "details", false, "show rendition URLs and sizes")
}

func runInfo(cmd *cobra.Command, args []string) error {
	// Compile first so a bad expression fails before any request
	var f *filter.ExprFilter
	if filterExpr != "" {
		var err error
		f, err = filter.Compile(filterExpr)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
	}

	items, err := client.MediaItems(cmd.Context(), args)
	if err != nil {
		return err
	}

	if f != nil {
		logger.Info().Str("filter", f.String()).Int("items", len(items)).Msg("Applying filter")
		items, err = f.Select(items)
		if err != nil {
			return err
		}
	}

	if len(items) == 0 {
		fmt.Println("No gfycats found matching the filter criteria.")
		return nil
	}

	fmt.Printf("\nFound %d gfycats:\n", len(items))
	fmt.Println(strings.Repeat("-", 80))

	for _, item := range items {
		printMediaItem(item)
	}
	return nil
}

func printMediaItem(item *gfycat.MediaItem) {
	title := item.Title
	if title == "" {
		title = item.GfyName
	}
	fmt.Printf("• %s (%s)", title, item.GfyID)
	if item.IsNSFW() {
		fmt.Printf(" [NSFW]")
	}
	fmt.Println()

	if item.Username != "" {
		fmt.Printf("  By: %s\n", item.Username)
	}
	if created := item.CreatedAt(); !created.IsZero() {
		fmt.Printf("  Created: %s\n", created.Format("2006-01-02"))
	}
	fmt.Printf("  %dx%d, %.1fs, %d views\n", item.Width, item.Height, item.Duration().Seconds(), item.Views)
	if len(item.Tags) > 0 {
		fmt.Printf("  Tags: %s\n", strings.Join(item.Tags, ", "))
	}

	if !showDetails {
		return
	}
	fmt.Printf("  MP4: %s (%s)\n", item.MP4URL, formatSize(item.MP4Size))
	fmt.Printf("  WebM: %s (%s)\n", item.WebmURL, formatSize(item.WebmSize))
	if item.GifSize != nil {
		fmt.Printf("  GIF: %s (%s)\n", item.GifURL, formatSize(*item.GifSize))
	} else {
		fmt.Printf("  GIF: %s\n", item.GifURL)
	}
	if item.Subreddit != nil {
		fmt.Printf("  Subreddit: r/%s\n", *item.Subreddit)
	}
	if item.MD5 != nil {
		fmt.Printf("  MD5: %s\n", *item.MD5)
	}
}

func formatSize(size int64) string {
	sizeMB := float64(size) / 1024 / 1024
	if sizeMB >= 1 {
		return fmt.Sprintf("%.1f MB", sizeMB)
	}
	return fmt.Sprintf("%.1f KB", float64(size)/1024)
}
