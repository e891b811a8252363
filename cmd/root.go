// Package cmd is the ytplay command line.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ytplay/ytplay/color"
	"github.com/ytplay/ytplay/constant"
	"github.com/ytplay/ytplay/i18n"
	"github.com/ytplay/ytplay/icon"
	"github.com/ytplay/ytplay/key"
	"github.com/ytplay/ytplay/log"
	"github.com/ytplay/ytplay/style"
	"github.com/ytplay/ytplay/tui"
	"github.com/ytplay/ytplay/util"
	"github.com/ytplay/ytplay/where"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Icon variant: "+strings.Join(icon.AvailableVariants(), ", "))
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("theme", "T", "", "Color theme: "+strings.Join(style.Themes(), ", "))
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("theme", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return style.Themes(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.UITheme, rootCmd.PersistentFlags().Lookup("theme")))

	rootCmd.PersistentFlags().StringP("language", "L", "", "Interface language: "+strings.Join(i18n.Languages(), ", "))
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("language", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return i18n.Languages(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.UILanguage, rootCmd.PersistentFlags().Lookup("language")))
}

var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "Play a YouTube audio playlist from the terminal",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Play a YouTube audio playlist from the terminal"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		CheckDependencies()

		// sockets left over from a crashed run
		_ = util.Delete(where.Temp())

		a := newApp()
		err := tui.Run(&tui.Options{
			Controller: a.session,
			Playlist:   a.playlist,
			Metadata:   a.metadata,
			Translator: i18n.New(viper.GetString(key.UILanguage)),
			SeekStep:   viper.GetFloat64(key.PlayerSeekStep),
			VolumeStep: viper.GetInt(key.PlayerVolumeStep),
		})
		if closeErr := a.Close(); closeErr != nil {
			log.Warn(closeErr)
		}
		handleErr(err)
	},
}

// Execute runs the root command.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
