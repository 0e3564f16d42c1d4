package mockapi

import (
	"fmt"
	"regexp"
)

// Endpoint describes one route of a generated resource.
type Endpoint struct {
	Method         string         `json:"method"`
	Path           string         `json:"path"`
	Description    string         `json:"description"`
	ResponseSchema map[string]any `json:"responseSchema,omitempty"`
}

// Resource is a named record collection plus the endpoints operating on it.
type Resource struct {
	Name      string     `json:"name"`
	Endpoints []Endpoint `json:"endpoints"`
}

// Schema is the structured API description produced from natural language,
// either by the model or by a fallback template. Immutable after creation.
type Schema struct {
	Name        string     `json:"apiName"`
	Description string     `json:"description"`
	Resources   []Resource `json:"resources"`
}

// FlatEndpoint is one entry of the linearized endpoint list used for
// presentation.
type FlatEndpoint struct {
	Method       string `json:"method"`
	Path         string `json:"path"`
	Description  string `json:"description"`
	ResourceName string `json:"resourceName"`
}

// Record is one synthetic data item. Its fields vary per resource archetype;
// every record carries at least an "id".
type Record map[string]any

// Endpoint paths are either /resource or /resource/:id, no deeper nesting.
var pathPattern = regexp.MustCompile(`^/[a-z0-9_-]+(/:id)?$`)

var validMethods = map[string]bool{
	"GET":    true,
	"POST":   true,
	"PUT":    true,
	"DELETE": true,
}

// Validate checks the structural invariants of a schema. Model output is run
// through this before it is allowed anywhere near the store.
func (s *Schema) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("schema is missing apiName")
	}
	if len(s.Resources) == 0 {
		return fmt.Errorf("schema has no resources")
	}
	for _, resource := range s.Resources {
		if resource.Name == "" {
			return fmt.Errorf("resource with empty name")
		}
		if len(resource.Endpoints) == 0 {
			return fmt.Errorf("resource %q has no endpoints", resource.Name)
		}
		for _, ep := range resource.Endpoints {
			if !validMethods[ep.Method] {
				return fmt.Errorf("resource %q has invalid method %q", resource.Name, ep.Method)
			}
			if !pathPattern.MatchString(ep.Path) {
				return fmt.Errorf("resource %q has invalid path %q", resource.Name, ep.Path)
			}
		}
	}
	return nil
}

// ResourceNames returns the resource names in declaration order.
func (s *Schema) ResourceNames() []string {
	names := make([]string, 0, len(s.Resources))
	for _, resource := range s.Resources {
		names = append(names, resource.Name)
	}
	return names
}
