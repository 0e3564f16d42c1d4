package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mockforge/mockforge/internal/model/mockapi"
	"github.com/mockforge/mockforge/internal/service/mockdata"
	"github.com/mockforge/mockforge/internal/service/requestlog"
	"github.com/mockforge/mockforge/internal/service/schemagen"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	svc, err := schemagen.NewService(context.Background(), nil)
	require.NoError(t, err)

	store := mockapi.NewMemoryStore()
	return NewRouter(store, svc, mockdata.NewGenerator(0), requestlog.NewLog(100), "")
}

// Exercises the full flow: generate an API from a description, read its
// seeded data, create an item and inspect the request history.
func TestGenerateAndUseMockAPI(t *testing.T) {
	router := newTestRouter(t)

	body := `{"description": "social media API with users, posts, and comments"}`
	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var generated struct {
		APIID     string   `json:"apiId"`
		APIName   string   `json:"apiName"`
		Resources []string `json:"resources"`
		Endpoints []struct {
			Method string `json:"method"`
			Path   string `json:"path"`
		} `json:"endpoints"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &generated))
	assert.Equal(t, "Social Media API", generated.APIName)
	assert.Equal(t, []string{"users", "posts", "comments"}, generated.Resources)

	var hasCreateComment bool
	for _, ep := range generated.Endpoints {
		if ep.Method == "POST" && ep.Path == "/comments" {
			hasCreateComment = true
		}
	}
	assert.True(t, hasCreateComment, "expected a POST /comments endpoint")

	// Seeded collection.
	req = httptest.NewRequest(http.MethodGet, "/api/mock/"+generated.APIID+"/users", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var users []mockapi.Record
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	assert.Len(t, users, mockdata.DefaultRecordCount)

	// Create an item.
	req = httptest.NewRequest(http.MethodPost, "/api/mock/"+generated.APIID+"/users", strings.NewReader(`{"name": "Ann"}`))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created mockapi.Record
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "Ann", created["name"])
	assert.NotEmpty(t, created["id"])
	assert.NotEmpty(t, created["createdAt"])

	// Request history saw the mock traffic.
	req = httptest.NewRequest(http.MethodGet, "/api/apis/"+generated.APIID+"/requests", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var history []requestlog.Entry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &history))
	require.Len(t, history, 2)
	assert.Equal(t, http.MethodPost, history[0].Method)
	assert.Equal(t, http.MethodGet, history[1].Method)

	// The new API shows up in the listing.
	req = httptest.NewRequest(http.MethodGet, "/api/apis", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var summaries []mockapi.Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summaries))
	require.Len(t, summaries, 1)
	assert.Equal(t, generated.APIID, summaries[0].ID)
}

func TestUnknownMockAPIReturns404(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/mock/doesnotexist", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/generate", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
