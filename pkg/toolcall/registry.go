package toolcall

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	gerrors "github.com/go-faster/errors"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// HandlerFunc executes one tool invocation. Arguments arrive as the raw JSON
// object from the caller; the handler owns decoding and validation.
type HandlerFunc func(ctx context.Context, arguments json.RawMessage) (any, error)

type Tool struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"input_schema"`
	Handler     HandlerFunc     `json:"-"`
}

// UnknownToolError carries the closest known tool name so callers can surface
// a "did you mean" hint.
type UnknownToolError struct {
	Name       string
	Suggestion string
}

func (e *UnknownToolError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown tool %q, did you mean %q", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("unknown tool %q", e.Name)
}

// Registry is an immutable name to handler mapping built once at startup.
type Registry struct {
	tools map[string]Tool
	names []string
}

func NewRegistry(tools ...Tool) (*Registry, error) {
	byName := make(map[string]Tool, len(tools))
	names := make([]string, 0, len(tools))
	for _, tool := range tools {
		if tool.Name == "" {
			return nil, gerrors.New("tool with empty name")
		}
		if tool.Handler == nil {
			return nil, gerrors.Errorf("tool %q has no handler", tool.Name)
		}
		if _, ok := byName[tool.Name]; ok {
			return nil, gerrors.Errorf("duplicate tool %q", tool.Name)
		}
		byName[tool.Name] = tool
		names = append(names, tool.Name)
	}
	sort.Strings(names)
	return &Registry{tools: byName, names: names}, nil
}

// Tools returns the registered tools ordered by name.
func (r *Registry) Tools() []Tool {
	out := make([]Tool, 0, len(r.names))
	for _, name := range r.names {
		out = append(out, r.tools[name])
	}
	return out
}

func (r *Registry) Call(ctx context.Context, name string, arguments json.RawMessage) (any, error) {
	tool, ok := r.tools[name]
	if !ok {
		return nil, &UnknownToolError{Name: name, Suggestion: r.closest(name)}
	}
	if len(arguments) == 0 {
		arguments = json.RawMessage("{}")
	}
	return tool.Handler(ctx, arguments)
}

func (r *Registry) closest(name string) string {
	ranks := fuzzy.RankFindNormalizedFold(name, r.names)
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return ranks[0].Target
}
