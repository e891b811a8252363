// Package where resolves application directories and data file paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/ytplay/ytplay/constant"
	"github.com/ytplay/ytplay/filesystem"
)

// EnvConfigPath overrides the configuration directory.
const EnvConfigPath = "YTPLAY_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config returns the configuration directory, honouring EnvConfigPath.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.App))
}

// Cache returns the cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.App))
}

// Logs returns the directory daily log files are written to.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Playlist returns the path of the playlist file.
func Playlist() string {
	return filepath.Join(Config(), "playlist.json")
}

// MetadataCache returns the path of the resolved stream metadata file.
func MetadataCache() string {
	return filepath.Join(Cache(), "metadata.json")
}

// Temp returns a scratch directory for IPC sockets.
func Temp() string {
	return ensureDir(filepath.Join(os.TempDir(), constant.App))
}
