package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/ytplay/ytplay/color"
	"github.com/ytplay/ytplay/icon"
	"github.com/ytplay/ytplay/log"
	"github.com/ytplay/ytplay/metadata"
	"github.com/ytplay/ytplay/playlist"
	"github.com/ytplay/ytplay/style"
	"github.com/ytplay/ytplay/util"
)

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().BoolP("no-lookup", "n", false, "Do not suggest the video title as the name")
}

var addCmd = &cobra.Command{
	Use:   "add [url] [name]",
	Short: "Add a track to the playlist",
	Long: `Add a YouTube link to the playlist under a unique name.
Missing arguments are asked for. When the name is asked for, the video title is suggested.`,
	Args:    cobra.MaximumNArgs(2),
	Example: "  ytplay add https://youtu.be/dQw4w9WgXcQ \"Never Gonna Give You Up\"",
	Run: func(cmd *cobra.Command, args []string) {
		var url, name string

		if len(args) > 0 {
			url = args[0]
		} else {
			handleErr(survey.AskOne(
				&survey.Input{Message: "YouTube link"},
				&url,
				survey.WithValidator(survey.Required),
				survey.WithValidator(validateSourceURL),
			))
		}

		if len(args) > 1 {
			name = args[1]
		} else {
			var suggestion string
			if !lo.Must(cmd.Flags().GetBool("no-lookup")) && playlist.IsSourceURL(strings.TrimSpace(url)) {
				suggestion = lookupTitle(cmd.Context(), strings.TrimSpace(url))
			}

			handleErr(survey.AskOne(
				&survey.Input{Message: "Name", Default: suggestion},
				&name,
				survey.WithValidator(survey.Required),
			))
		}

		track, err := openPlaylist().Add(name, url)
		handleErr(err)

		fmt.Printf(
			"%s added %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(track.Name),
		)
	},
}

func validateSourceURL(answer any) error {
	url, _ := answer.(string)
	if !playlist.IsSourceURL(strings.TrimSpace(url)) {
		return errors.New("not a YouTube link")
	}
	return nil
}

// lookupTitle returns the video title, or "" when it cannot be resolved.
func lookupTitle(ctx context.Context, url string) string {
	erase := util.PrintErasable(fmt.Sprintf("%s Looking up the title...", icon.Get(icon.Progress)))
	defer erase()

	entry, err := openMetadata().Resolve(ctx, url)
	var persist *metadata.PersistError
	if err != nil && !errors.As(err, &persist) {
		log.Warn(err)
		return ""
	}
	return entry.Title
}
