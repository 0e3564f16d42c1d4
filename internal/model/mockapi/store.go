package mockapi

import (
	"errors"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mockforge/mockforge/internal/id"
)

var (
	ErrAPINotFound      = errors.New("api not found")
	ErrResourceNotFound = errors.New("resource not found")
	ErrItemNotFound     = errors.New("item not found")
)

// StoredAPI bundles a schema with its generated record collections. Owned
// exclusively by the store; lives until process exit.
type StoredAPI struct {
	ID        string
	Schema    Schema
	Data      map[string][]Record
	CreatedAt time.Time
}

// Summary is the read-only view of a stored API handed to HTTP handlers.
type Summary struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Resources   []string  `json:"resources"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Store exposes mock API registry and record CRUD operations for HTTP
// handlers.
type Store interface {
	CreateAPI(schema Schema, data map[string][]Record) string
	GetAPI(apiID string) (Summary, bool)
	ListAPIs() []Summary
	Collection(apiID, resource string) ([]Record, error)
	Item(apiID, resource, itemID string) (Record, error)
	CreateItem(apiID, resource string, fields Record) (Record, error)
	UpdateItem(apiID, resource, itemID string, patch Record) (Record, error)
	DeleteItem(apiID, resource, itemID string) (bool, error)
	FlatEndpoints(apiID string) []FlatEndpoint
}

// MemoryStore implements Store with a mutex-guarded map. Mock APIs are not
// persisted; a restart loses everything.
type MemoryStore struct {
	mu   sync.RWMutex
	apis map[string]*StoredAPI
}

// NewMemoryStore bootstraps an empty in-memory registry.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{apis: make(map[string]*StoredAPI)}
}

const apiIDLength = 10

// CreateAPI registers a schema and its data under a fresh short id and
// returns the id. Always succeeds.
func (s *MemoryStore) CreateAPI(schema Schema, data map[string][]Record) string {
	if data == nil {
		data = make(map[string][]Record)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Short ids can collide; regenerate until free.
	apiID := id.Alphanumeric(apiIDLength)
	for {
		if _, taken := s.apis[apiID]; !taken {
			break
		}
		apiID = id.Alphanumeric(apiIDLength)
	}

	s.apis[apiID] = &StoredAPI{
		ID:        apiID,
		Schema:    schema,
		Data:      data,
		CreatedAt: time.Now().UTC(),
	}

	log.Printf("[store] created api %s with %d resources", apiID, len(data))
	return apiID
}

// GetAPI returns the summary view of a stored API.
func (s *MemoryStore) GetAPI(apiID string) (Summary, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	api, ok := s.apis[apiID]
	if !ok {
		return Summary{}, false
	}
	return summarize(api), true
}

// ListAPIs returns summaries of all stored APIs, newest first.
func (s *MemoryStore) ListAPIs() []Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summaries := make([]Summary, 0, len(s.apis))
	for _, api := range s.apis {
		summaries = append(summaries, summarize(api))
	}
	sort.Slice(summaries, func(i, j int) bool {
		if !summaries[i].CreatedAt.Equal(summaries[j].CreatedAt) {
			return summaries[i].CreatedAt.After(summaries[j].CreatedAt)
		}
		return summaries[i].ID < summaries[j].ID
	})
	return summaries
}

// Collection returns the full record collection in insertion order.
func (s *MemoryStore) Collection(apiID, resource string) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	collection, err := s.collection(apiID, resource)
	if err != nil {
		return nil, err
	}

	copied := make([]Record, len(collection))
	copy(copied, collection)
	return copied, nil
}

// Item finds a record by id with a linear scan.
func (s *MemoryStore) Item(apiID, resource, itemID string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	collection, err := s.collection(apiID, resource)
	if err != nil {
		return nil, err
	}

	for _, record := range collection {
		if record["id"] == itemID {
			return record, nil
		}
	}
	return nil, ErrItemNotFound
}

// CreateItem appends a new record merged from a fresh id, the caller's
// fields and a server-side creation timestamp. A caller-supplied id wins
// over the generated one, matching the mock surface's permissiveness.
func (s *MemoryStore) CreateItem(apiID, resource string, fields Record) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	api, ok := s.apis[apiID]
	if !ok {
		return nil, ErrAPINotFound
	}
	if _, ok := api.Data[resource]; !ok {
		return nil, ErrResourceNotFound
	}

	record := Record{"id": uuid.NewString()}
	for key, value := range fields {
		record[key] = value
	}
	record["createdAt"] = time.Now().UTC().Format(time.RFC3339)

	api.Data[resource] = append(api.Data[resource], record)
	return record, nil
}

// UpdateItem shallow-merges the patch onto the stored record. The stored map
// is replaced rather than mutated so records handed out earlier stay stable.
func (s *MemoryStore) UpdateItem(apiID, resource, itemID string, patch Record) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	api, ok := s.apis[apiID]
	if !ok {
		return nil, ErrAPINotFound
	}
	collection, ok := api.Data[resource]
	if !ok {
		return nil, ErrResourceNotFound
	}

	for i, record := range collection {
		if record["id"] != itemID {
			continue
		}
		merged := make(Record, len(record)+len(patch))
		for key, value := range record {
			merged[key] = value
		}
		for key, value := range patch {
			merged[key] = value
		}
		collection[i] = merged
		return merged, nil
	}
	return nil, ErrItemNotFound
}

// DeleteItem removes the first record matching the id and reports whether a
// removal occurred.
func (s *MemoryStore) DeleteItem(apiID, resource, itemID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	api, ok := s.apis[apiID]
	if !ok {
		return false, ErrAPINotFound
	}
	collection, ok := api.Data[resource]
	if !ok {
		return false, ErrResourceNotFound
	}

	for i, record := range collection {
		if record["id"] == itemID {
			api.Data[resource] = append(collection[:i], collection[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// FlatEndpoints linearizes the schema's endpoints preserving resource and
// endpoint declaration order. Unknown ids yield an empty list.
func (s *MemoryStore) FlatEndpoints(apiID string) []FlatEndpoint {
	s.mu.RLock()
	defer s.mu.RUnlock()

	endpoints := []FlatEndpoint{}
	api, ok := s.apis[apiID]
	if !ok {
		return endpoints
	}

	for _, resource := range api.Schema.Resources {
		for _, ep := range resource.Endpoints {
			endpoints = append(endpoints, FlatEndpoint{
				Method:       ep.Method,
				Path:         ep.Path,
				Description:  ep.Description,
				ResourceName: resource.Name,
			})
		}
	}
	return endpoints
}

// collection expects the caller to hold at least a read lock.
func (s *MemoryStore) collection(apiID, resource string) ([]Record, error) {
	api, ok := s.apis[apiID]
	if !ok {
		return nil, ErrAPINotFound
	}
	collection, ok := api.Data[resource]
	if !ok {
		return nil, ErrResourceNotFound
	}
	return collection, nil
}

func summarize(api *StoredAPI) Summary {
	return Summary{
		ID:          api.ID,
		Name:        api.Schema.Name,
		Description: api.Schema.Description,
		Resources:   api.Schema.ResourceNames(),
		CreatedAt:   api.CreatedAt,
	}
}
