package inspect

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mockforge/mockforge/internal/model/mockapi"
	"github.com/mockforge/mockforge/internal/service/requestlog"
)

func setupHandler(t *testing.T) (http.Handler, *requestlog.Log, string) {
	t.Helper()

	store := mockapi.NewMemoryStore()
	apiID := store.CreateAPI(mockapi.Schema{
		Name:        "Inspect API",
		Description: "inspect fixture",
		Resources: []mockapi.Resource{
			{Name: "items", Endpoints: []mockapi.Endpoint{{Method: "GET", Path: "/items", Description: "list"}}},
		},
	}, nil)

	reqLog := requestlog.NewLog(100)
	r := chi.NewRouter()
	New(store, reqLog).RegisterRoutes(r)
	return r, reqLog, apiID
}

func TestListAPIs(t *testing.T) {
	h, _, apiID := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/apis", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var summaries []mockapi.Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summaries))
	require.Len(t, summaries, 1)
	assert.Equal(t, apiID, summaries[0].ID)
	assert.Equal(t, "Inspect API", summaries[0].Name)
	assert.Equal(t, []string{"items"}, summaries[0].Resources)
}

func TestListRequests(t *testing.T) {
	h, reqLog, apiID := setupHandler(t)

	reqLog.Record(requestlog.Entry{APIID: apiID, Method: "GET", Path: "/api/mock/" + apiID + "/items", Status: 200})
	reqLog.Record(requestlog.Entry{APIID: "other", Method: "GET", Path: "/api/mock/other/items", Status: 200})

	req := httptest.NewRequest(http.MethodGet, "/apis/"+apiID+"/requests", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var entries []requestlog.Entry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, apiID, entries[0].APIID)
}

func TestListRequestsUnknownAPI(t *testing.T) {
	h, _, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/apis/missing/requests", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListRequestsInvalidLimit(t *testing.T) {
	h, _, apiID := setupHandler(t)

	for _, limit := range []string{"abc", "0", "-3"} {
		req := httptest.NewRequest(http.MethodGet, "/apis/"+apiID+"/requests?limit="+limit, nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "limit %q", limit)
	}
}

func TestWatchRequestsStreamsEntries(t *testing.T) {
	h, reqLog, apiID := setupHandler(t)

	server := httptest.NewServer(h)
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/apis/" + apiID + "/requests/watch"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	defer conn.Close()

	// Give the subscription a moment to register before recording.
	time.Sleep(50 * time.Millisecond)
	reqLog.Record(requestlog.Entry{APIID: "other", Path: "/filtered-out"})
	reqLog.Record(requestlog.Entry{APIID: apiID, Method: "GET", Path: "/api/mock/" + apiID + "/items", Status: 200})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var entry requestlog.Entry
	require.NoError(t, conn.ReadJSON(&entry))
	assert.Equal(t, apiID, entry.APIID)
	assert.Equal(t, "/api/mock/"+apiID+"/items", entry.Path)
}

func TestWatchRequestsUnknownAPI(t *testing.T) {
	h, _, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/apis/missing/requests/watch", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
