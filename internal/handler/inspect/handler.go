// Package inspect exposes stored API listings and request history,
// including a websocket live tail.
package inspect

import (
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/mockforge/mockforge/internal/model/mockapi"
	"github.com/mockforge/mockforge/internal/service/requestlog"
	"github.com/mockforge/mockforge/pkg/utils"
)

const defaultRequestLimit = 50

// Handler serves the inspection endpoints.
type Handler struct {
	store    mockapi.Store
	reqLog   *requestlog.Log
	upgrader websocket.Upgrader
}

// New creates the inspection handler.
func New(store mockapi.Store, reqLog *requestlog.Log) *Handler {
	return &Handler{
		store:  store,
		reqLog: reqLog,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes registers the inspection routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/apis", h.handleListAPIs)
	r.Get("/apis/{apiID}/requests", h.handleListRequests)
	r.Get("/apis/{apiID}/requests/watch", h.handleWatchRequests)
}

func (h *Handler) handleListAPIs(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.store.ListAPIs())
}

func (h *Handler) handleListRequests(w http.ResponseWriter, r *http.Request) {
	apiID := chi.URLParam(r, "apiID")
	if _, ok := h.store.GetAPI(apiID); !ok {
		utils.RespondError(w, http.StatusNotFound, "API not found")
		return
	}

	limit := defaultRequestLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			utils.RespondError(w, http.StatusBadRequest, "invalid limit value")
			return
		}
		limit = parsed
	}

	utils.RespondJSON(w, http.StatusOK, h.reqLog.Recent(apiID, limit))
}

// handleWatchRequests upgrades to a websocket and forwards new request-log
// entries for the API until the client disconnects.
func (h *Handler) handleWatchRequests(w http.ResponseWriter, r *http.Request) {
	apiID := chi.URLParam(r, "apiID")
	if _, ok := h.store.GetAPI(apiID); !ok {
		utils.RespondError(w, http.StatusNotFound, "API not found")
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[inspect] websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	entries, unsubscribe := h.reqLog.Subscribe()
	defer unsubscribe()

	// Drain the read side to observe client-initiated close.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case entry, ok := <-entries:
			if !ok {
				return
			}
			if entry.APIID != apiID {
				continue
			}
			if err := conn.WriteJSON(entry); err != nil {
				return
			}
		case <-done:
			return
		case <-r.Context().Done():
			return
		}
	}
}
