package constant

// Executables the player shells out to.
const (
	MPV   = "mpv"
	YtDlp = "yt-dlp"
)

// SourceURLPattern matches the remote video pages a playlist entry may point at.
const SourceURLPattern = `^(https?://)?(www\.)?(youtube\.com|youtu\.?be)/.+$`
