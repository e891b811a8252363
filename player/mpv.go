package player

import (
	"crypto/rand"
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/samber/mo"
	"github.com/ytplay/ytplay/constant"
	"github.com/ytplay/ytplay/log"
)

const (
	socketWaitRetries = 10
	socketWaitDelay   = 300 * time.Millisecond
)

// ErrNotRunning is returned by property writes before the first Play.
var ErrNotRunning = errors.New("mpv is not running")

// MPV runs a single idle, audio only mpv process and controls it over JSON-IPC.
// The process is spawned by the first Play and respawned if it exits.
type MPV struct {
	binary    string
	socketDir string

	// mu protects socket writes
	mu       sync.Mutex
	requests int64

	// procMu guards the fields below
	procMu     sync.Mutex
	socketPath string
	cmd        *exec.Cmd
	exited     chan struct{}
	events     *EventListener

	volume int
	muted  bool

	endMu sync.Mutex
	onEnd func()
}

// NewMPV returns an engine that starts binary (usually "mpv") on demand
// and places its IPC socket in socketDir.
func NewMPV(binary, socketDir string) *MPV {
	if binary == "" {
		binary = constant.MPV
	}
	return &MPV{
		binary:    binary,
		socketDir: socketDir,
		volume:    100,
	}
}

var (
	_ Engine      = (*MPV)(nil)
	_ EndNotifier = (*MPV)(nil)
)

// OnEnd registers fn to run when a stream plays to its end.
func (m *MPV) OnEnd(fn func()) {
	m.endMu.Lock()
	defer m.endMu.Unlock()
	m.onEnd = fn
}

func (m *MPV) handleEvent(_ string, event mpvEvent) {
	if !event.ended() {
		return
	}

	m.endMu.Lock()
	fn := m.onEnd
	m.endMu.Unlock()

	if fn != nil {
		log.Debugf("mpv reached the end of the stream")
		fn()
	}
}

func (m *MPV) running() bool {
	if m.exited == nil {
		return false
	}
	select {
	case <-m.exited:
		return false
	default:
		return true
	}
}

// ensureStarted spawns mpv unless a live process exists. procMu must be held.
func (m *MPV) ensureStarted() error {
	if m.running() {
		return nil
	}

	randomBytes := make([]byte, 4)
	if _, err := rand.Read(randomBytes); err != nil {
		return fmt.Errorf("generate socket name: %w", err)
	}
	m.socketPath = filepath.Join(m.socketDir, fmt.Sprintf("%s-%x.sock", constant.App, randomBytes))

	m.cmd = exec.Command(m.binary, m.args()...)
	m.cmd.SysProcAttr = sysProcAttr()
	m.cmd.Stdout = nil
	m.cmd.Stderr = nil
	m.cmd.Stdin = nil

	if err := m.cmd.Start(); err != nil {
		return fmt.Errorf("start mpv: %w", err)
	}

	exited := make(chan struct{})
	m.exited = exited
	cmd := m.cmd
	go func() {
		_ = cmd.Wait()
		close(exited)
	}()

	if err := m.waitForSocket(); err != nil {
		select {
		case <-exited:
		default:
			log.Warnf("killing mpv: socket never became ready")
			_ = killProcess(cmd)
		}
		return fmt.Errorf("mpv socket not ready: %w", err)
	}

	if m.events != nil {
		m.events.Stop()
	}
	m.events = NewEventListener(m.socketPath, m.handleEvent)
	if err := m.events.Start(); err != nil {
		log.Warnf("no end of stream events: %s", err)
	}

	log.Infof("mpv started with socket %s", m.socketPath)
	return nil
}

func (m *MPV) args() []string {
	args := []string{
		"--no-terminal",
		"--really-quiet",
		"--no-video",
		"--idle=yes",
		"--keep-open=yes",
		"--input-ipc-server=" + m.socketPath,
		fmt.Sprintf("--volume=%d", m.volume),
	}
	if m.muted {
		args = append(args, "--mute=yes")
	}
	return args
}

func (m *MPV) waitForSocket() error {
	for i := 0; i < socketWaitRetries; i++ {
		time.Sleep(socketWaitDelay)

		select {
		case <-m.exited:
			return errors.New("mpv exited before socket was ready")
		default:
		}

		conn, err := net.Dial("unix", m.socketPath)
		if err == nil {
			conn.Close()
			return nil
		}
	}
	return fmt.Errorf("socket %s not ready after %d attempts", m.socketPath, socketWaitRetries)
}

// socket returns the IPC socket of a live process, or "" when there is none.
func (m *MPV) socket() string {
	m.procMu.Lock()
	defer m.procMu.Unlock()

	if !m.running() {
		return ""
	}
	return m.socketPath
}

func (m *MPV) Play(streamURL, title string) error {
	target, err := sanitizeMediaTarget(streamURL)
	if err != nil {
		return fmt.Errorf("invalid media target: %w", err)
	}

	m.procMu.Lock()
	err = m.ensureStarted()
	socket := m.socketPath
	m.procMu.Unlock()
	if err != nil {
		return err
	}

	if _, err := m.sendCommand(socket, "set_property", "force-media-title", sanitizeTitle(title)); err != nil {
		log.Warnf("set media title: %s", err)
	}
	if _, err := m.sendCommand(socket, "loadfile", target, "replace"); err != nil {
		return err
	}
	_, err = m.sendCommand(socket, "set_property", "pause", false)
	return err
}

func (m *MPV) Pause(paused bool) error {
	return m.set("pause", paused)
}

func (m *MPV) Stop() error {
	socket := m.socket()
	if socket == "" {
		return nil
	}
	_, err := m.sendCommand(socket, "stop")
	return err
}

func (m *MPV) Seek(seconds float64) error {
	socket := m.socket()
	if socket == "" {
		return ErrNotRunning
	}
	_, err := m.sendCommand(socket, "seek", seconds, "absolute")
	return err
}

// Volume returns the last volume set. It is remembered across restarts of mpv.
func (m *MPV) Volume() (int, error) {
	m.procMu.Lock()
	defer m.procMu.Unlock()
	return m.volume, nil
}

func (m *MPV) SetVolume(volume int) error {
	m.procMu.Lock()
	m.volume = volume
	m.procMu.Unlock()

	return m.setIfRunning("volume", volume)
}

func (m *MPV) Muted() (bool, error) {
	m.procMu.Lock()
	defer m.procMu.Unlock()
	return m.muted, nil
}

func (m *MPV) SetMuted(muted bool) error {
	m.procMu.Lock()
	m.muted = muted
	m.procMu.Unlock()

	return m.setIfRunning("mute", muted)
}

func (m *MPV) Position() mo.Option[float64] {
	return m.floatProperty("time-pos")
}

func (m *MPV) Duration() mo.Option[float64] {
	return m.floatProperty("duration")
}

// Close asks mpv to quit and kills it if it does not within three seconds.
func (m *MPV) Close() error {
	m.procMu.Lock()
	defer m.procMu.Unlock()

	if !m.running() {
		return nil
	}

	_, _ = m.sendCommand(m.socketPath, "quit")

	select {
	case <-m.exited:
	case <-time.After(3 * time.Second):
		_ = killProcess(m.cmd)
	}

	if m.events != nil {
		m.events.Stop()
		m.events = nil
	}

	_ = os.Remove(m.socketPath)
	return nil
}

func (m *MPV) set(property string, value any) error {
	socket := m.socket()
	if socket == "" {
		return ErrNotRunning
	}
	_, err := m.sendCommand(socket, "set_property", property, value)
	return err
}

// setIfRunning applies value now if mpv is up; otherwise it is passed on the next start.
func (m *MPV) setIfRunning(property string, value any) error {
	socket := m.socket()
	if socket == "" {
		return nil
	}
	_, err := m.sendCommand(socket, "set_property", property, value)
	return err
}

// floatProperty reads a numeric property. Unavailable properties are None.
func (m *MPV) floatProperty(name string) mo.Option[float64] {
	socket := m.socket()
	if socket == "" {
		return mo.None[float64]()
	}

	data, err := m.sendCommand(socket, "get_property", name)
	if err != nil {
		if !strings.Contains(err.Error(), "property unavailable") {
			log.Debugf("get %s: %s", name, err)
		}
		return mo.None[float64]()
	}

	value, ok := data.(float64)
	if !ok {
		return mo.None[float64]()
	}
	return mo.Some(value)
}

// sanitizeMediaTarget rejects anything mpv could read as a flag or a non http(s) URL.
func sanitizeMediaTarget(link string) (string, error) {
	l := strings.TrimSpace(link)
	if l == "" {
		return "", errors.New("empty URL")
	}

	if strings.ContainsAny(l, "\x00\n\r") {
		return "", errors.New("invalid control characters in URL")
	}

	if strings.HasPrefix(l, "-") {
		return "", errors.New("url must not start with '-'")
	}

	u, err := url.Parse(l)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return l, nil
	default:
		return "", fmt.Errorf("unsupported URL scheme: %q", u.Scheme)
	}
}

func sanitizeTitle(title string) string {
	t := strings.NewReplacer("\n", " ", "\r", " ", "\t", " ", "\x00", "").Replace(title)
	return strings.TrimSpace(t)
}
