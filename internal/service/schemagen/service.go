package schemagen

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/mockforge/mockforge/internal/model/mockapi"
)

// Literal braces are doubled so FString formatting leaves them intact.
const generationSystemPrompt = `You are an API design expert. Generate a complete REST API structure based on the user's description.

Return ONLY valid JSON (no markdown, no code blocks) with this exact structure:
{{
  "apiName": "string",
  "description": "string",
  "resources": [
    {{
      "name": "string (singular, lowercase)",
      "endpoints": [
        {{
          "method": "GET|POST|PUT|DELETE",
          "path": "/resource or /resource/:id",
          "description": "string",
          "responseSchema": {{
            "type": "object or array",
            "properties": {{
              "fieldName": "string|number|boolean"
            }}
          }}
        }}
      ]
    }}
  ]
}}

Rules:
- Create 3-5 resources
- Each resource should have 3-5 endpoints (GET all, GET one, POST, PUT, DELETE)
- Use realistic field names based on the domain
- Include 5-10 fields per resource
- Make paths RESTful (e.g., /users, /users/:id)
- Response schema should match the domain context`

const generationUserPrompt = "User description: {description}"

// Service synthesizes API schemas from free-text descriptions. The model
// path is optional; without a chat model every call resolves through the
// deterministic templates.
type Service struct {
	enabled bool
	chain   compose.Runnable[map[string]any, *schema.Message]
}

// NewService creates the synthesizer. chatModel may be nil, which yields a
// template-only service.
func NewService(ctx context.Context, chatModel model.ChatModel) (*Service, error) {
	svc := &Service{enabled: chatModel != nil}
	if !svc.enabled {
		return svc, nil
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage(generationSystemPrompt),
		schema.UserMessage(generationUserPrompt),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema generation chain: %w", err)
	}

	svc.chain = runnable
	return svc, nil
}

// Enabled reports whether the model-backed path is available.
func (s *Service) Enabled() bool {
	return s != nil && s.enabled && s.chain != nil
}

// Generate produces a schema for a non-empty description. Any failure on the
// model path (invoke error, empty output, malformed or invalid JSON) falls
// back to a keyword-matched template, so the call never fails outward.
func (s *Service) Generate(ctx context.Context, description string) mockapi.Schema {
	if !s.Enabled() {
		return FallbackSchema(description)
	}

	msg, err := s.chain.Invoke(ctx, map[string]any{"description": description})
	if err != nil {
		log.Printf("[schemagen] model invoke failed, using template fallback: %v", err)
		return FallbackSchema(description)
	}
	if msg == nil || strings.TrimSpace(msg.Content) == "" {
		log.Printf("[schemagen] model returned empty output, using template fallback")
		return FallbackSchema(description)
	}

	parsed, err := parseModelOutput(msg.Content)
	if err != nil {
		log.Printf("[schemagen] model output rejected, using template fallback: %v", err)
		return FallbackSchema(description)
	}

	log.Printf("[schemagen] model produced schema %q with %d resources", parsed.Name, len(parsed.Resources))
	return *parsed
}

var codeFencePattern = regexp.MustCompile("```(?:json)?\\s*\\n([\\s\\S]*?)\\n?```")

// parseModelOutput strips an optional fenced code block, extracts the JSON
// object and validates the parsed shape.
func parseModelOutput(content string) (*mockapi.Schema, error) {
	jsonText := strings.TrimSpace(content)
	if match := codeFencePattern.FindStringSubmatch(jsonText); match != nil {
		jsonText = match[1]
	}

	start := strings.Index(jsonText, "{")
	end := strings.LastIndex(jsonText, "}")
	if start == -1 || end <= start {
		return nil, fmt.Errorf("missing json object")
	}

	var parsed mockapi.Schema
	if err := json.Unmarshal([]byte(jsonText[start:end+1]), &parsed); err != nil {
		return nil, err
	}
	if err := parsed.Validate(); err != nil {
		return nil, err
	}
	return &parsed, nil
}
