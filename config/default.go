package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/ytplay/ytplay/color"
	"github.com/ytplay/ytplay/constant"
	"github.com/ytplay/ytplay/key"
	"github.com/ytplay/ytplay/style"
)

// Field is a registered configuration key with its default and help text.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty renders the field for "config info".
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.App + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// MarshalJSON includes both the current and the default value.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

func (f *Field) typeName() string {
	return typeOf(f.Value)
}

func typeOf(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case float64:
		return "float"
	case bool:
		return "bool"
	default:
		return "unknown"
	}
}

// Default holds every registered configuration field by key.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc}
		EnvExposed = append(EnvExposed, k)
	}

	register(key.PlayerPlayMode, "advance", "What happens when a track ends.\nAvailable options are: repeat, advance, stop")
	register(key.PlayerShuffle, false, "Pick a random track on next")
	register(key.PlayerVolume, 100, "Playback volume. From 0 to 100")
	register(key.PlayerMuted, false, "Start muted")
	register(key.PlayerVolumeStep, 5, "Volume change per key press")
	register(key.PlayerSeekStep, 5, "Seconds to seek per arrow key press")
	register(key.PlayerProgressInterval, 500, "Progress polling interval in milliseconds")
	register(key.PlayerEndEpsilon, 0.5, "A track counts as finished this many seconds before its end")
	register(key.PlayerEngine, constant.MPV, "Path or name of the mpv executable")
	register(key.ResolverFormat, "bestaudio/best", "yt-dlp format selector used to pick the audio stream")
	register(key.ResolverTimeout, 60, "Seconds to wait for yt-dlp before giving up")
	register(key.PlaylistNameMaxLength, 100, "Maximum length of a playlist entry name")
	register(key.UITheme, "dark", "Interface theme.\nAvailable options are: dark, light")
	register(key.UILanguage, "en", "Interface language.\nAvailable options are: en, pl")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"bold":     style.Bold,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"cyan":     style.Fg(color.Cyan),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": typeOf,
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(strconv.Quote(value))
		case int, float64:
			return style.Fg(color.Cyan)(fmt.Sprint(value))
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ bold (purple .Key) }} {{ faint (typename .Value) }}
{{ faint .Description }}
{{ blue "current" }}  {{ hl (value .Key) }}
{{ blue "default" }}  {{ hl .Value }}
{{ blue "env" }}      {{ .Env }}`))
