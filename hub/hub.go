package hub

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/otcore/textot/common"
	"github.com/otcore/textot/internal/util"
)

// Hub fans out committed changes to every connected client and serializes
// updates through a single Document.
type Hub struct {
	log      zerolog.Logger
	doc      *Document
	mu       sync.Mutex // protects clients
	clients  map[chan<- []byte]bool
	upgrader websocket.Upgrader
}

// New returns a Hub serving doc, logging through log.
func New(log zerolog.Logger, doc *Document) *Hub {
	return &Hub{
		log:     log,
		doc:     doc,
		clients: make(map[chan<- []byte]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

func (h *Hub) subscribe(c chan<- []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = true
}

func (h *Hub) unsubscribe(c chan<- []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, c)
}

func (h *Hub) broadcast(msg []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for send := range h.clients {
		send <- msg
	}
}

func marshalOrPanic(v interface{}) []byte {
	b, err := json.Marshal(v)
	util.PanicOnError(err)
	return b
}

// ServeHTTP upgrades r to a websocket connection and runs it until the
// client disconnects. A connection is not subscribed to broadcasts until it
// sends an Init message; see pumpIn.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("upgrade failed")
		return
	}

	clientID := uuid.New()
	logger := h.log.With().Str("client", clientID.String()).Logger()

	send := make(chan []byte)
	defer h.unsubscribe(send)

	done := make(chan struct{})
	go h.pumpOut(conn, send, done, logger)
	h.pumpIn(conn, clientID, send, &logger)
	close(done)
	conn.Close()
}

// pumpIn reads messages from conn until it closes or errors. Each message is
// first sniffed by its "type" field (common.MsgType) before being decoded
// into its specific shape, the same two-step dispatch the teacher's hub
// used: an Init message triggers the initial snapshot and subscribes the
// connection to broadcasts; an Update message is applied to the document and
// rebroadcast as a Change. Update messages received before Init are
// rejected, since the connection is not yet subscribed to receive the
// resulting Change.
func (h *Hub) pumpIn(conn *websocket.Conn, clientID uuid.UUID, send chan<- []byte, logger *zerolog.Logger) {
	initialized := false
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return
			}
			logger.Error().Err(err).Msg("read failed")
			return
		}

		var mt common.MsgType
		if err := json.Unmarshal(raw, &mt); err != nil {
			logger.Error().Err(err).Msg("malformed message")
			return
		}

		switch mt.Type {
		case "init":
			var msg common.Init
			if err := json.Unmarshal(raw, &msg); err != nil {
				logger.Error().Err(err).Msg("malformed init message")
				return
			}
			if initialized {
				logger.Error().Msg("duplicate init message")
				continue
			}
			if err := h.handleInit(conn, clientID, send, logger); err != nil {
				return
			}
			initialized = true
		case "update":
			if !initialized {
				logger.Error().Msg("update received before init")
				continue
			}
			var msg common.Update
			if err := json.Unmarshal(raw, &msg); err != nil {
				logger.Error().Err(err).Msg("malformed update message")
				continue
			}
			h.handleUpdate(&msg, clientID, logger)
		default:
			logger.Error().Str("type", mt.Type).Msg("unknown message type")
		}
	}
}

func (h *Hub) handleInit(conn *websocket.Conn, clientID uuid.UUID, send chan<- []byte, logger *zerolog.Logger) error {
	patchID, text := h.doc.Snapshot()
	if err := conn.WriteJSON(&common.Snapshot{
		Type:     "snapshot",
		ClientID: clientID,
		PatchID:  patchID,
		Text:     text,
	}); err != nil {
		logger.Error().Err(err).Msg("sending snapshot failed")
		return err
	}
	h.subscribe(send)
	return nil
}

func (h *Hub) handleUpdate(msg *common.Update, clientID uuid.UUID, logger *zerolog.Logger) {
	appliedOp, patchID, err := h.doc.ApplyUpdate(clientID, msg.BasePatchID, msg.RawOperation)
	if err != nil {
		logger.Error().Err(err).Msg("applying update failed")
		return
	}

	h.broadcast(marshalOrPanic(&common.Change{
		Type:         "change",
		ClientID:     clientID,
		PatchID:      patchID,
		RawOperation: appliedOp.Raw(),
	}))
}

func (h *Hub) pumpOut(conn *websocket.Conn, send <-chan []byte, done <-chan struct{}, logger zerolog.Logger) {
	for {
		select {
		case msg := <-send:
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				logger.Error().Err(err).Msg("write failed")
				return
			}
		case <-done:
			return
		}
	}
}
