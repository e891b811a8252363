package player

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"sync"

	"github.com/ytplay/ytplay/log"
)

// EventCallback receives mpv events. For property changes event is the property name.
type EventCallback func(event string, data mpvEvent)

type mpvEvent struct {
	Event  string `json:"event"`
	Name   string `json:"name"`
	Data   any    `json:"data"`
	Reason string `json:"reason"`
}

// ended reports whether e means the loaded file played to its end.
func (e mpvEvent) ended() bool {
	switch e.Event {
	case "end-file":
		return e.Reason == "eof"
	case "property-change":
		reached, _ := e.Data.(bool)
		return e.Name == "eof-reached" && reached
	}
	return false
}

// observed are the properties mpv pushes changes of to the listener.
var observed = []string{"eof-reached"}

// EventListener reads mpv events over its own persistent IPC connection.
type EventListener struct {
	socketPath string
	callback   EventCallback

	mu   sync.Mutex
	conn net.Conn
}

func NewEventListener(socketPath string, callback EventCallback) *EventListener {
	return &EventListener{
		socketPath: socketPath,
		callback:   callback,
	}
}

// Start connects, subscribes to the observed properties and starts reading.
// mpv only delivers property changes to the connection that observed them.
func (el *EventListener) Start() error {
	el.mu.Lock()
	defer el.mu.Unlock()

	if el.conn != nil {
		return nil
	}

	conn, err := net.Dial("unix", el.socketPath)
	if err != nil {
		return fmt.Errorf("event listener connect: %w", err)
	}

	enc := json.NewEncoder(conn)
	for i, name := range observed {
		if err := enc.Encode(ipcCommand{Command: []any{"observe_property", i + 1, name}}); err != nil {
			conn.Close()
			return fmt.Errorf("observe %s: %w", name, err)
		}
	}

	el.conn = conn
	go el.readLoop(conn)

	log.Infof("mpv event listener started on %s", el.socketPath)
	return nil
}

// Stop closes the connection, which ends the read loop.
func (el *EventListener) Stop() {
	el.mu.Lock()
	defer el.mu.Unlock()

	if el.conn == nil {
		return
	}
	_ = el.conn.Close()
	el.conn = nil
}

func (el *EventListener) readLoop(conn net.Conn) {
	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		var event mpvEvent
		if err := json.Unmarshal(scanner.Bytes(), &event); err != nil || event.Event == "" {
			continue
		}

		name := event.Event
		if event.Event == "property-change" {
			name = event.Name
		}
		el.callback(name, event)
	}

	if err := scanner.Err(); err != nil {
		log.Debugf("event listener stopped: %s", err)
	}
}
