// Package mock serves the dynamic CRUD surface of stored mock APIs.
package mock

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mockforge/mockforge/internal/model/mockapi"
	"github.com/mockforge/mockforge/internal/service/requestlog"
	"github.com/mockforge/mockforge/pkg/utils"
)

// Handler routes mock API requests to the store. Every response is recorded
// in the request log.
type Handler struct {
	store  mockapi.Store
	reqLog *requestlog.Log
}

// New creates the mock surface handler. reqLog may be nil to disable
// request recording.
func New(store mockapi.Store, reqLog *requestlog.Log) *Handler {
	return &Handler{store: store, reqLog: reqLog}
}

// RegisterRoutes registers the mock surface under /mock/{apiID}.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/mock/{apiID}", func(r chi.Router) {
		r.Get("/", h.handleSummary)
		r.Get("/{resource}", h.handleListItems)
		r.Post("/{resource}", h.handleCreateItem)
		r.Put("/{resource}", h.handleMissingItemID)
		r.Delete("/{resource}", h.handleMissingItemID)
		r.Get("/{resource}/{itemID}", h.handleGetItem)
		r.Put("/{resource}/{itemID}", h.handleUpdateItem)
		r.Delete("/{resource}/{itemID}", h.handleDeleteItem)
	})
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	apiID := chi.URLParam(r, "apiID")

	summary, ok := h.store.GetAPI(apiID)
	if !ok {
		h.respondError(w, r, apiID, "", http.StatusNotFound, "API not found")
		return
	}

	h.respond(w, r, apiID, "", http.StatusOK, map[string]any{
		"apiId":       summary.ID,
		"name":        summary.Name,
		"description": summary.Description,
		"resources":   summary.Resources,
		"endpoints":   h.store.FlatEndpoints(apiID),
	})
}

func (h *Handler) handleListItems(w http.ResponseWriter, r *http.Request) {
	apiID := chi.URLParam(r, "apiID")
	resource := chi.URLParam(r, "resource")

	collection, err := h.store.Collection(apiID, resource)
	if err != nil {
		h.respondStoreError(w, r, apiID, resource, "", err)
		return
	}

	h.respond(w, r, apiID, resource, http.StatusOK, collection)
}

func (h *Handler) handleGetItem(w http.ResponseWriter, r *http.Request) {
	apiID := chi.URLParam(r, "apiID")
	resource := chi.URLParam(r, "resource")
	itemID := chi.URLParam(r, "itemID")

	record, err := h.store.Item(apiID, resource, itemID)
	if err != nil {
		h.respondStoreError(w, r, apiID, resource, itemID, err)
		return
	}

	h.respond(w, r, apiID, resource, http.StatusOK, record)
}

func (h *Handler) handleCreateItem(w http.ResponseWriter, r *http.Request) {
	apiID := chi.URLParam(r, "apiID")
	resource := chi.URLParam(r, "resource")

	fields, ok := h.decodeRecord(w, r, apiID, resource)
	if !ok {
		return
	}

	record, err := h.store.CreateItem(apiID, resource, fields)
	if err != nil {
		h.respondStoreError(w, r, apiID, resource, "", err)
		return
	}

	h.respond(w, r, apiID, resource, http.StatusCreated, record)
}

func (h *Handler) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	apiID := chi.URLParam(r, "apiID")
	resource := chi.URLParam(r, "resource")
	itemID := chi.URLParam(r, "itemID")

	patch, ok := h.decodeRecord(w, r, apiID, resource)
	if !ok {
		return
	}

	record, err := h.store.UpdateItem(apiID, resource, itemID, patch)
	if err != nil {
		h.respondStoreError(w, r, apiID, resource, itemID, err)
		return
	}

	h.respond(w, r, apiID, resource, http.StatusOK, record)
}

func (h *Handler) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	apiID := chi.URLParam(r, "apiID")
	resource := chi.URLParam(r, "resource")
	itemID := chi.URLParam(r, "itemID")

	deleted, err := h.store.DeleteItem(apiID, resource, itemID)
	if err != nil {
		h.respondStoreError(w, r, apiID, resource, itemID, err)
		return
	}
	if !deleted {
		h.respondError(w, r, apiID, resource, http.StatusNotFound, fmt.Sprintf("item with id %q not found", itemID))
		return
	}

	h.respond(w, r, apiID, resource, http.StatusOK, map[string]any{
		"success": true,
		"message": "item deleted",
	})
}

// handleMissingItemID covers PUT/DELETE on a bare collection path.
func (h *Handler) handleMissingItemID(w http.ResponseWriter, r *http.Request) {
	apiID := chi.URLParam(r, "apiID")
	resource := chi.URLParam(r, "resource")
	h.respondError(w, r, apiID, resource, http.StatusBadRequest, "resource name and item id required")
}

// decodeRecord reads the JSON body; an empty body is treated as an empty
// record, matching the permissive mock surface.
func (h *Handler) decodeRecord(w http.ResponseWriter, r *http.Request, apiID, resource string) (mockapi.Record, bool) {
	fields := mockapi.Record{}
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil && !errors.Is(err, io.EOF) {
		h.respondError(w, r, apiID, resource, http.StatusBadRequest, "invalid request body")
		return nil, false
	}
	return fields, true
}

func (h *Handler) respondStoreError(w http.ResponseWriter, r *http.Request, apiID, resource, itemID string, err error) {
	switch {
	case errors.Is(err, mockapi.ErrAPINotFound):
		h.respondError(w, r, apiID, resource, http.StatusNotFound, "API not found")
	case errors.Is(err, mockapi.ErrResourceNotFound):
		h.respondError(w, r, apiID, resource, http.StatusNotFound, fmt.Sprintf("resource %q not found", resource))
	case errors.Is(err, mockapi.ErrItemNotFound):
		h.respondError(w, r, apiID, resource, http.StatusNotFound, fmt.Sprintf("item with id %q not found", itemID))
	default:
		h.respondError(w, r, apiID, resource, http.StatusInternalServerError, err.Error())
	}
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, apiID, resource string, status int, message string) {
	h.respond(w, r, apiID, resource, status, map[string]string{"error": message})
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, apiID, resource string, status int, payload any) {
	utils.RespondJSON(w, status, payload)

	if h.reqLog != nil {
		h.reqLog.Record(requestlog.Entry{
			APIID:      apiID,
			Method:     r.Method,
			Path:       r.URL.Path,
			Resource:   resource,
			Status:     status,
			RemoteAddr: r.RemoteAddr,
		})
	}
}
