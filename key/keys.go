// Package key defines the canonical set of configuration identifiers.
package key

// DefinedFieldsCount is the number of registered configuration fields.
const DefinedFieldsCount = 19

// Playback session settings. These are persisted back on every user toggle.
const (
	PlayerPlayMode = "player.play_mode"
	PlayerShuffle  = "player.shuffle"
	PlayerVolume   = "player.volume"
	PlayerMuted    = "player.muted"
)

// Playback tuning.
const (
	PlayerVolumeStep       = "player.volume_step"
	PlayerSeekStep         = "player.seek_step"
	PlayerProgressInterval = "player.progress_interval_ms"
	PlayerEndEpsilon       = "player.end_epsilon"
	PlayerEngine           = "player.engine"
)

// Stream resolution.
const (
	ResolverFormat  = "resolver.format"
	ResolverTimeout = "resolver.timeout_seconds"
)

// Playlist constraints.
const (
	PlaylistNameMaxLength = "playlist.name_max_length"
)

// Interface presentation.
const (
	UITheme    = "ui.theme"
	UILanguage = "ui.language"
)

const (
	IconsVariant = "icons.variant"
)

const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

const (
	CliColored = "cli.colored"
)
