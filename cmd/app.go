package cmd

import (
	"context"
	"time"

	"github.com/spf13/viper"
	"github.com/ytplay/ytplay/config"
	"github.com/ytplay/ytplay/key"
	"github.com/ytplay/ytplay/log"
	"github.com/ytplay/ytplay/metadata"
	"github.com/ytplay/ytplay/player"
	"github.com/ytplay/ytplay/playlist"
	"github.com/ytplay/ytplay/resolve"
	"github.com/ytplay/ytplay/session"
	"github.com/ytplay/ytplay/where"
)

func openPlaylist() *playlist.Store {
	return playlist.Open(
		playlist.NewFileStorage(where.Playlist()),
		playlist.WithMaxNameLength(viper.GetInt(key.PlaylistNameMaxLength)),
	)
}

func newResolver() resolve.Resolver {
	return resolve.NewYtDlp(
		viper.GetString(key.ResolverFormat),
		time.Duration(viper.GetInt(key.ResolverTimeout))*time.Second,
	)
}

func openMetadata() *metadata.Cache {
	return metadata.New(newResolver(), metadata.NewFileStorage(where.MetadataCache()))
}

// app is everything the interactive player runs on.
type app struct {
	playlist *playlist.Store
	metadata *metadata.Cache
	engine   player.Engine
	session  *session.Controller

	stopSampler context.CancelFunc
	sampled     chan struct{}
}

// newApp restores the saved settings and starts a session with its progress sampler.
func newApp() *app {
	settings := config.Load()

	mode, err := session.ParsePlayMode(settings.PlayMode)
	if err != nil {
		log.Warnf("%s, using %s", err, session.ModeAdvance)
		mode = session.ModeAdvance
	}

	a := &app{
		playlist: openPlaylist(),
		metadata: openMetadata(),
		engine:   player.NewMPV(viper.GetString(key.PlayerEngine), where.Temp()),
		sampled:  make(chan struct{}),
	}

	a.session = session.New(a.engine, a.playlist, a.metadata, session.Options{
		PlayMode:    mode,
		Shuffle:     settings.Shuffle,
		Volume:      settings.Volume,
		Muted:       settings.Muted,
		EndEpsilon:  viper.GetFloat64(key.PlayerEndEpsilon),
		Preferences: &config.Settings{},
	})

	ctx, cancel := context.WithCancel(context.Background())
	a.stopSampler = cancel

	interval := time.Duration(viper.GetInt(key.PlayerProgressInterval)) * time.Millisecond
	go func() {
		defer close(a.sampled)
		session.NewSampler(a.session, interval).Run(ctx)
	}()

	return a
}

// Close stops the sampler, the session and the engine in that order.
func (a *app) Close() error {
	a.stopSampler()
	<-a.sampled

	if err := a.session.Close(); err != nil {
		return err
	}
	return a.engine.Close()
}
