// Package open hands a track's page to the system browser.
package open

import (
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/ytplay/ytplay/constant"
)

// Start opens link with the default handler and returns without waiting.
func Start(link string) error {
	cmd, err := command(link)
	if err != nil {
		return err
	}
	return cmd.Start()
}

// Run is like Start but waits for the handler to exit.
func Run(link string) error {
	cmd, err := command(link)
	if err != nil {
		return err
	}
	return cmd.Run()
}

func command(link string) (*exec.Cmd, error) {
	target, err := normalize(link)
	if err != nil {
		return nil, err
	}

	switch runtime.GOOS {
	case constant.Windows:
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", target), nil
	case constant.Darwin:
		return exec.Command("open", target), nil
	case constant.Linux:
		return exec.Command("xdg-open", target), nil
	case constant.Android:
		return exec.Command("termux-open", target), nil
	default:
		return nil, fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}
}

// normalize adds the https scheme that stored links may omit
// and refuses anything that is not a web link.
func normalize(link string) (string, error) {
	link = strings.TrimSpace(link)
	if link == "" || strings.HasPrefix(link, "-") {
		return "", fmt.Errorf("invalid link: %q", link)
	}
	if !strings.Contains(link, "://") {
		link = "https://" + link
	}

	u, err := url.Parse(link)
	if err != nil {
		return "", fmt.Errorf("invalid link: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme: %q", u.Scheme)
	}
	return u.String(), nil
}
