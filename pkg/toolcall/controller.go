package toolcall

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/campusgrid/schedule-api/pkg/composables"
	"github.com/campusgrid/schedule-api/pkg/httpapi"
)

type Controller struct {
	registry *Registry
}

func NewController(registry *Registry) *Controller {
	return &Controller{registry: registry}
}

func (c *Controller) Key() string {
	return "/tools"
}

func (c *Controller) Register(r *mux.Router) {
	r.HandleFunc("/tools", c.ListTools).Methods(http.MethodGet)
	r.HandleFunc("/tools/call", c.CallTool).Methods(http.MethodPost)
}

func (c *Controller) ListTools(w http.ResponseWriter, r *http.Request) {
	_ = httpapi.WriteJSON(w, http.StatusOK, struct {
		Tools []Tool `json:"tools"`
	}{Tools: c.registry.Tools()})
}

type callRequest struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

func (c *Controller) CallTool(w http.ResponseWriter, r *http.Request) {
	var req callRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "TOOLS_INVALID_BODY", "request body must be a JSON object", nil)
		return
	}
	if req.Name == "" {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "TOOLS_INVALID_BODY", "name is required", nil)
		return
	}

	logger := composables.UseLogger(r.Context())
	logger.WithField("tool", req.Name).Info("tool call")

	result, err := c.registry.Call(r.Context(), req.Name, req.Arguments)
	if err != nil {
		logger.WithField("tool", req.Name).WithError(err).Warn("tool call failed")
		var unknown *UnknownToolError
		if errors.As(err, &unknown) {
			meta := map[string]string{}
			if unknown.Suggestion != "" {
				meta["suggestion"] = unknown.Suggestion
			}
			_ = httpapi.WriteError(w, http.StatusNotFound, "TOOLS_UNKNOWN_TOOL", unknown.Error(), meta)
			return
		}
		_ = httpapi.WriteServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, struct {
		Result any `json:"result"`
	}{Result: result})
}
