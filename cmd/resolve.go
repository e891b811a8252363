package cmd

import (
	"encoding/json"
	"os"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/ytplay/ytplay/color"
	"github.com/ytplay/ytplay/metadata"
	"github.com/ytplay/ytplay/playlist"
	"github.com/ytplay/ytplay/style"
	"github.com/ytplay/ytplay/util"
)

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().BoolP("json", "j", false, "Print the cache entry as JSON")
	resolveCmd.SetOut(os.Stdout)
}

var resolveCmd = &cobra.Command{
	Use:               "resolve [name|number|url]",
	Short:             "Show the audio stream behind a track",
	Long:              "Resolve a track or a YouTube link to its audio stream, title and duration. Results are cached.",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionTrackNames,
	Run: func(cmd *cobra.Command, args []string) {
		url := strings.TrimSpace(args[0])
		if !playlist.IsSourceURL(url) {
			store := openPlaylist()
			position, err := findTrack(store, url)
			handleErr(err)

			track, err := store.Resolve(position)
			handleErr(err)
			url = track.URL
		}

		entry, err := openMetadata().Resolve(cmd.Context(), url)
		if _, ok := lo.ErrorsAs[*metadata.PersistError](err); !ok {
			handleErr(err)
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(entry))
			return
		}

		label := style.Fg(color.Purple)
		duration := "unknown"
		if hint, ok := entry.DurationHint().Get(); ok {
			duration = util.FormatClock(hint.Seconds(), hint.Seconds()) + " " + style.Faint("("+hint.Round(time.Second).String()+")")
		}

		cmd.Printf("%s %s\n", label("Title   "), entry.Title)
		cmd.Printf("%s %s\n", label("Duration"), duration)
		cmd.Printf("%s %s\n", label("Stream  "), entry.StreamURL)
	},
}
