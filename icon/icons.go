package icon

type Icon int

const (
	Fail Icon = iota
	Success
	Info
	Warn
	Progress
	Play
	Pause
	Stop
	Loading
	Shuffle
	Repeat
	Advance
	Volume
	Muted
	Music
	Cursor
)

var icons = map[Icon]*iconDef{
	Fail: {
		emoji:   "❌",
		nerd:    "",
		plain:   "x",
		kaomoji: "(×_×)",
		squares: "▣",
	},
	Success: {
		emoji:   "✅",
		nerd:    "",
		plain:   "v",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "■",
	},
	Info: {
		emoji:   "💡",
		nerd:    "",
		plain:   "i",
		kaomoji: "(°ロ°)",
		squares: "◫",
	},
	Warn: {
		emoji:   "⚠️",
		nerd:    "",
		plain:   "!",
		kaomoji: "(>_<)",
		squares: "◪",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "~",
		kaomoji: "(•_•)",
		squares: "◩",
	},
	Play: {
		emoji:   "▶️",
		nerd:    "",
		plain:   ">",
		kaomoji: "(♪^∇^)",
		squares: "▶",
	},
	Pause: {
		emoji:   "⏸️",
		nerd:    "",
		plain:   "||",
		kaomoji: "(-_-)zz",
		squares: "⏸",
	},
	Stop: {
		emoji:   "⏹️",
		nerd:    "",
		plain:   "[]",
		kaomoji: "(._.)",
		squares: "■",
	},
	Loading: {
		emoji:   "🔄",
		nerd:    "",
		plain:   "...",
		kaomoji: "(・・?)",
		squares: "◌",
	},
	Shuffle: {
		emoji:   "🔀",
		nerd:    "",
		plain:   "S",
		kaomoji: "(@_@)",
		squares: "⧉",
	},
	Repeat: {
		emoji:   "🔂",
		nerd:    "",
		plain:   "R",
		kaomoji: "(∞)",
		squares: "↻",
	},
	Advance: {
		emoji:   "⏭️",
		nerd:    "",
		plain:   ">>",
		kaomoji: "(→_→)",
		squares: "⇥",
	},
	Volume: {
		emoji:   "🔊",
		nerd:    "",
		plain:   "vol",
		kaomoji: "(ﾟOﾟ)",
		squares: "◧",
	},
	Muted: {
		emoji:   "🔇",
		nerd:    "",
		plain:   "mute",
		kaomoji: "(ㆆ_ㆆ)",
		squares: "◨",
	},
	Music: {
		emoji:   "🎵",
		nerd:    "",
		plain:   "*",
		kaomoji: "(♪)",
		squares: "♫",
	},
	Cursor: {
		emoji:   "👉",
		nerd:    "",
		plain:   ">",
		kaomoji: "(☞ﾟヮﾟ)☞",
		squares: "▸",
	},
}
