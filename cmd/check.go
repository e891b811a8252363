package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/ytplay/ytplay/constant"
	"github.com/ytplay/ytplay/icon"
	"github.com/ytplay/ytplay/key"
	"github.com/ytplay/ytplay/style"
)

type dependency struct {
	name    string
	install map[string]string
}

func dependencies() []dependency {
	engine := viper.GetString(key.PlayerEngine)
	if engine == "" {
		engine = constant.MPV
	}

	return []dependency{
		{
			name: engine,
			install: map[string]string{
				constant.Darwin:  "brew install mpv",
				constant.Linux:   "sudo apt install mpv",
				constant.Windows: "scoop install mpv",
			},
		},
		{
			name: constant.YtDlp,
			install: map[string]string{
				constant.Darwin:  "brew install yt-dlp",
				constant.Linux:   "pipx install yt-dlp",
				constant.Windows: "scoop install yt-dlp",
			},
		},
	}
}

// CheckDependencies exits with an install hint when mpv or yt-dlp is not on PATH.
func CheckDependencies() {
	missing := lo.Filter(dependencies(), func(d dependency, _ int) bool {
		_, err := exec.LookPath(d.name)
		return err != nil
	})

	if len(missing) == 0 {
		return
	}

	for _, d := range missing {
		printMissingDependencyError(d)
	}
	os.Exit(1)
}

func printMissingDependencyError(dep dependency) {
	theme := style.Current()

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Error).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(theme.Error).Render(fmt.Sprintf("%s Missing dependency", icon.Get(icon.Fail)))
	body := style.New().Foreground(theme.Text).Render(fmt.Sprintf("%q was not found in your PATH.", dep.name))

	var suggestion string
	if installCmd, ok := dep.install[runtime.GOOS]; ok {
		suggestion = fmt.Sprintf("\nTo install it, try running:\n  %s", style.New().Foreground(theme.Accent).Bold(true).Render(installCmd))
	}

	fmt.Println(box.Render(strings.TrimRight(
		lipgloss.JoinVertical(lipgloss.Left, title, "", body, suggestion),
		"\n",
	)))
}
