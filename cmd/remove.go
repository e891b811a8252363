package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/ytplay/ytplay/color"
	"github.com/ytplay/ytplay/icon"
	"github.com/ytplay/ytplay/playlist"
	"github.com/ytplay/ytplay/style"
)

func init() {
	rootCmd.AddCommand(removeCmd)
	removeCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}

var removeCmd = &cobra.Command{
	Use:               "remove [name|number]",
	Short:             "Remove a track from the playlist",
	Long:              "Remove a track by its name or by its number as shown by the list command.",
	Aliases:           []string{"rm"},
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionTrackNames,
	Run: func(cmd *cobra.Command, args []string) {
		store := openPlaylist()

		position, err := findTrack(store, args[0])
		handleErr(err)

		track, err := store.Resolve(position)
		handleErr(err)

		if !lo.Must(cmd.Flags().GetBool("yes")) {
			var confirm bool
			handleErr(survey.AskOne(&survey.Confirm{
				Message: fmt.Sprintf("Remove %s?", track.Name),
				Default: false,
			}, &confirm))

			if !confirm {
				return
			}
		}

		_, err = store.Remove(position)
		handleErr(err)

		fmt.Printf(
			"%s removed %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(track.Name),
		)
	},
}

// findTrack accepts a track name or its 1-based number.
func findTrack(store *playlist.Store, query string) (int, error) {
	if position, ok := store.IndexOf(query).Get(); ok {
		return position, nil
	}

	if number, err := strconv.Atoi(query); err == nil {
		if number < 1 || number > store.Len() {
			return 0, fmt.Errorf("no track number %d, the playlist has %d", number, store.Len())
		}
		return number - 1, nil
	}

	return 0, errUnknownTrack(store, query)
}

func errUnknownTrack(store *playlist.Store, name string) error {
	names := lo.Map(store.List(), func(t playlist.Track, _ int) string { return t.Name })
	if len(names) == 0 {
		return errors.New("the playlist is empty")
	}

	closest := lo.MinBy(names, func(a string, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})
	return fmt.Errorf(
		"unknown track %s, did you mean %s?",
		style.Fg(color.Red)(name),
		style.Fg(color.Yellow)(closest),
	)
}

func completionTrackNames(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	names := lo.Map(openPlaylist().List(), func(t playlist.Track, _ int) string { return t.Name })
	return names, cobra.ShellCompDirectiveNoFileComp
}
