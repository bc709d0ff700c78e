package server

import (
	"math/rand"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/katalvlaran/igris/analysis"
	"github.com/katalvlaran/igris/topology"
	"go.uber.org/zap"
)

// Frame types on the activity stream.
const (
	FrameGraph    = "graph"
	FrameActivity = "activity"
	FrameError    = "error"
)

const writeWait = 5 * time.Second

// Frame is one websocket message. The first frame carries the graph, every
// following frame one simulation step over it.
type Frame struct {
	Type     string              `json:"type"`
	Sequence int                 `json:"sequence"`
	Meta     *Meta               `json:"meta,omitempty"`
	Graph    *topology.GraphData `json:"graph,omitempty"`
	Activity *analysis.Activity  `json:"activity,omitempty"`
	Error    *ErrorInfo          `json:"error,omitempty"`
}

// activity generates one graph from the query and streams activity samples
// at the configured interval until the client goes away or the server stops.
func (s *Server) activity(w http.ResponseWriter, r *http.Request) {
	g, meta, err := s.buildIGRIS(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	s.metrics.ActivityStreams.Inc()
	defer s.metrics.ActivityStreams.Dec()

	cfg := s.store.Get().Activity
	log := s.logger.With(zap.String("generation_id", meta.GenerationID))
	log.Info("activity stream opened", zap.Duration("interval", cfg.Interval))

	// The reader only watches for the close handshake.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Warn("activity stream read error", zap.Error(err))
				}
				return
			}
		}
	}()

	send := func(f Frame) bool {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(f); err != nil {
			log.Debug("activity stream write failed", zap.Error(err))
			return false
		}
		return true
	}

	if !send(Frame{Type: FrameGraph, Meta: meta, Graph: topology.Export(g)}) {
		return
	}

	rng := rand.New(rand.NewSource(*meta.Seed))
	ticker := time.NewTicker(cfg.Interval)
	defer ticker.Stop()

	for seq := 1; ; seq++ {
		select {
		case <-closed:
			log.Info("activity stream closed by client")
			return
		case <-r.Context().Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
				time.Now().Add(writeWait))
			return
		case <-ticker.C:
			act, err := analysis.SampleActivity(g, rng, cfg.SampleSize)
			if err != nil {
				send(Frame{Type: FrameError, Sequence: seq, Error: &ErrorInfo{Code: CodeInternal, Message: err.Error()}})
				return
			}
			frame := Frame{
				Type:     FrameActivity,
				Sequence: seq,
				Meta:     &Meta{GenerationID: meta.GenerationID},
				Activity: &act,
			}
			if !send(frame) {
				return
			}
		}
	}
}
