package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/ytplay/ytplay/color"
	"github.com/ytplay/ytplay/playlist"
	"github.com/ytplay/ytplay/style"
	"github.com/ytplay/ytplay/util"
)

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolP("json", "j", false, "Print the tracks as JSON")
	listCmd.Flags().Bool("schema", false, "Print the JSON schema of the --json output")
	listCmd.Flags().StringP("filter", "f", "", "Show only tracks whose name fuzzily matches")
	listCmd.MarkFlagsMutuallyExclusive("json", "schema")

	listCmd.SetOut(os.Stdout)
}

var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "Show the playlist",
	Aliases: []string{"ls"},
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("schema")) {
			reflector := new(jsonschema.Reflector)
			reflector.Anonymous = true

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(reflector.Reflect([]playlist.Track{})))
			return
		}

		store := openPlaylist()
		tracks := store.List()
		if filter := lo.Must(cmd.Flags().GetString("filter")); filter != "" {
			tracks = store.Search(filter)
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(tracks))
			return
		}

		if len(tracks) == 0 {
			cmd.Println(style.Faint("no tracks"))
			return
		}

		// numbers refer to the full playlist so they work with remove
		for _, t := range tracks {
			number := store.IndexOf(t.Name).OrElse(-1) + 1
			cmd.Printf(
				"%s %s\n   %s\n",
				style.Fg(color.Yellow)(fmt.Sprintf("%3d.", number)),
				style.Bold(t.Name),
				style.Faint(t.URL),
			)
		}
		cmd.Println(style.Faint(util.Quantify(len(tracks), "track", "tracks")))
	},
}
