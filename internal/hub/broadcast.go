package hub

import (
	"encoding/json"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/Artyom17/webxr-input-profiles/internal/scene"
	"github.com/Artyom17/webxr-input-profiles/internal/viewer"
	"go.uber.org/zap"
)

const (
	defaultFullSyncInterval = 5 * time.Second
	defaultDeltaCountSync   = 100
	analogThreshold         = 1e-4
)

// Broadcaster consumes frames from the update loop and broadcasts them to
// the hub: only nodes whose state actually changed go out each tick, with a
// periodic full sync so late or lossy clients resynchronize.
//
// Run owns the frame loop, but SendInitialState is called from HTTP handler
// goroutines; the mutex covers the shared last-state map and the sequence
// counter.
type Broadcaster struct {
	hub    *Hub
	log    *zap.Logger
	frames <-chan viewer.Frame

	fullSyncEvery  time.Duration
	deltaSyncCount int64

	mu   sync.Mutex
	last map[string]scene.State
	seq  int64
}

func NewBroadcaster(h *Hub, frames <-chan viewer.Frame, log *zap.Logger) *Broadcaster {
	return &Broadcaster{
		hub:            h,
		log:            log,
		frames:         frames,
		fullSyncEvery:  defaultFullSyncInterval,
		deltaSyncCount: defaultDeltaCountSync,
		last:           make(map[string]scene.State),
	}
}

// Run starts the broadcaster loop. Should be run in a goroutine; returns
// when the frame channel closes.
func (b *Broadcaster) Run() {
	ticker := time.NewTicker(b.fullSyncEvery)
	defer ticker.Stop()

	var deltaCount int64

	for {
		select {
		case frame, ok := <-b.frames:
			if !ok {
				return
			}

			changed := b.apply(frame)
			if len(changed) == 0 {
				continue
			}

			deltaCount++

			if deltaCount >= b.deltaSyncCount {
				b.sendFull()
				deltaCount = 0
			} else {
				b.send(NewFrameMessage(b.nextSeq(), changed))
			}

		case <-ticker.C:
			if b.hasState() {
				b.sendFull()
			}
		}
	}
}

// SendInitialState sends the current full node state to a newly connected
// client. Safe to call concurrently with Run.
func (b *Broadcaster) SendInitialState(c *Client) {
	b.mu.Lock()
	b.seq++
	msg := NewFullMessage(b.seq, b.snapshotLocked())
	b.mu.Unlock()

	c.Reply(msg)
}

// apply folds a frame into the last-known state and returns the nodes that
// actually changed.
func (b *Broadcaster) apply(frame viewer.Frame) []scene.State {
	b.mu.Lock()
	defer b.mu.Unlock()

	var changed []scene.State
	for _, st := range frame {
		if prev, ok := b.last[st.Name]; ok && stateEqual(prev, st) {
			continue
		}
		b.last[st.Name] = st
		changed = append(changed, st)
	}
	return changed
}

func (b *Broadcaster) hasState() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.last) > 0
}

func (b *Broadcaster) nextSeq() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.seq++
	return b.seq
}

func (b *Broadcaster) snapshot() []scene.State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snapshotLocked()
}

// snapshotLocked returns the full node state sorted by name. Callers hold mu.
func (b *Broadcaster) snapshotLocked() []scene.State {
	nodes := make([]scene.State, 0, len(b.last))
	for _, st := range b.last {
		nodes = append(nodes, st)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].Name < nodes[j].Name })
	return nodes
}

func (b *Broadcaster) sendFull() {
	b.mu.Lock()
	b.seq++
	msg := NewFullMessage(b.seq, b.snapshotLocked())
	b.mu.Unlock()

	b.send(msg)
}

func (b *Broadcaster) send(msg *ServerMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		b.log.Error("marshal broadcast message", zap.Error(err))
		return
	}
	b.hub.Broadcast(data)
}

func floatEqual(a, b float64) bool {
	return math.Abs(a-b) < analogThreshold
}

func stateEqual(a, b scene.State) bool {
	return a.Visible == b.Visible &&
		floatEqual(a.Position.X, b.Position.X) &&
		floatEqual(a.Position.Y, b.Position.Y) &&
		floatEqual(a.Position.Z, b.Position.Z) &&
		floatEqual(a.Orientation.X, b.Orientation.X) &&
		floatEqual(a.Orientation.Y, b.Orientation.Y) &&
		floatEqual(a.Orientation.Z, b.Orientation.Z) &&
		floatEqual(a.Orientation.W, b.Orientation.W)
}
