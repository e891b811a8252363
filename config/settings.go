package config

import (
	"sync"

	"github.com/spf13/viper"
	"github.com/ytplay/ytplay/key"
)

// Snapshot is the subset of configuration the player restores at startup.
type Snapshot struct {
	PlayMode string
	Shuffle  bool
	Volume   int
	Muted    bool
	Theme    string
	Language string
}

// Load reads the current snapshot from viper.
func Load() Snapshot {
	return Snapshot{
		PlayMode: viper.GetString(key.PlayerPlayMode),
		Shuffle:  viper.GetBool(key.PlayerShuffle),
		Volume:   viper.GetInt(key.PlayerVolume),
		Muted:    viper.GetBool(key.PlayerMuted),
		Theme:    viper.GetString(key.UITheme),
		Language: viper.GetString(key.UILanguage),
	}
}

// Settings writes single keys back to the config file.
type Settings struct {
	mu sync.Mutex
}

// Persist sets key to value and rewrites the config file.
func (s *Settings) Persist(k string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	viper.Set(k, value)
	return Write()
}
