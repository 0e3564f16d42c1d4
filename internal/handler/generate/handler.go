package generate

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mockforge/mockforge/internal/model/mockapi"
	"github.com/mockforge/mockforge/internal/service/mockdata"
	"github.com/mockforge/mockforge/internal/service/schemagen"
	"github.com/mockforge/mockforge/pkg/utils"
)

// Handler turns descriptions into stored mock APIs.
type Handler struct {
	schemaSvc *schemagen.Service
	generator *mockdata.Generator
	store     mockapi.Store
	baseURL   string
}

// New creates the generation handler. baseURL overrides the host-derived
// public URL when set (useful behind a proxy).
func New(schemaSvc *schemagen.Service, generator *mockdata.Generator, store mockapi.Store, baseURL string) *Handler {
	return &Handler{
		schemaSvc: schemaSvc,
		generator: generator,
		store:     store,
		baseURL:   strings.TrimRight(baseURL, "/"),
	}
}

// RegisterRoutes registers the generation routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/generate", h.handleGenerate)
	r.Get("/generate/stream", h.handleGenerateStream)
}

type endpointInfo struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
	FullURL     string `json:"fullUrl"`
}

type generatedResponse struct {
	APIID       string         `json:"apiId"`
	BaseURL     string         `json:"baseUrl"`
	APIName     string         `json:"apiName"`
	Description string         `json:"description"`
	Endpoints   []endpointInfo `json:"endpoints"`
	Resources   []string       `json:"resources"`
	CreatedAt   string         `json:"createdAt"`
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Description string `json:"description"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	description := strings.TrimSpace(payload.Description)
	if description == "" {
		utils.RespondError(w, http.StatusBadRequest, "description is required")
		return
	}

	response := h.createMockAPI(r, description)
	utils.RespondJSON(w, http.StatusOK, response)
}

// handleGenerateStream runs the same pipeline but reports progress over SSE.
func (h *Handler) handleGenerateStream(w http.ResponseWriter, r *http.Request) {
	description := strings.TrimSpace(r.URL.Query().Get("description"))
	if description == "" {
		utils.RespondError(w, http.StatusBadRequest, "description query parameter is required")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		utils.RespondError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	utils.SetupSSEHeaders(w)

	utils.SendSSEEvent(w, flusher, "status", map[string]string{"stage": "schema"})
	schema := h.schemaSvc.Generate(r.Context(), description)

	utils.SendSSEEvent(w, flusher, "status", map[string]string{"stage": "data"})
	data := h.generator.GenerateAll(schema.Resources)

	response := h.storeAndDescribe(r, schema, data)
	utils.SendSSEEvent(w, flusher, "result", response)
	utils.SendSSEEvent(w, flusher, "done", map[string]bool{"finished": true})
}

func (h *Handler) createMockAPI(r *http.Request, description string) generatedResponse {
	log.Printf("[generate] generating api structure for: %s", description)
	schema := h.schemaSvc.Generate(r.Context(), description)

	data := h.generator.GenerateAll(schema.Resources)

	return h.storeAndDescribe(r, schema, data)
}

func (h *Handler) storeAndDescribe(r *http.Request, schema mockapi.Schema, data map[string][]mockapi.Record) generatedResponse {
	apiID := h.store.CreateAPI(schema, data)

	base := h.resolveBaseURL(r)
	mockBase := fmt.Sprintf("%s/api/mock/%s", base, apiID)

	flat := h.store.FlatEndpoints(apiID)
	endpoints := make([]endpointInfo, 0, len(flat))
	for _, ep := range flat {
		endpoints = append(endpoints, endpointInfo{
			Method:      ep.Method,
			Path:        ep.Path,
			Description: ep.Description,
			FullURL:     mockBase + strings.ReplaceAll(ep.Path, ":id", "{id}"),
		})
	}

	return generatedResponse{
		APIID:       apiID,
		BaseURL:     mockBase,
		APIName:     schema.Name,
		Description: schema.Description,
		Endpoints:   endpoints,
		Resources:   schema.ResourceNames(),
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}
}

func (h *Handler) resolveBaseURL(r *http.Request) string {
	if h.baseURL != "" {
		return h.baseURL
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s", scheme, r.Host)
}
