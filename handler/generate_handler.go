package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"storybot/metrics"
)

// GenerateHandler fills a poem or story template and relays it to the generator.
type GenerateHandler struct {
	Generator Generator
	Metrics   *metrics.Metrics
}

func NewGenerateHandler(g Generator, m *metrics.Metrics) *GenerateHandler {
	return &GenerateHandler{
		Generator: g,
		Metrics:   m,
	}
}

// ServeHTTP implements the http.Handler interface for GenerateHandler.
func (h *GenerateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var payload GenerateRequest
	if r.Body != nil {
		defer r.Body.Close()
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			log.Debugf("Could not decode request body from %s: %v", r.RemoteAddr, err)
			payload = GenerateRequest{}
		}
	}

	kind := contentType(stringField(payload.Type))
	prompt := stringField(payload.Prompt)
	if prompt == "" {
		h.Metrics.ObserveRequest(kind, metrics.OutcomeInvalid)
		logAndReturnError(w, r, errNoPrompt, http.StatusBadRequest)
		return
	}

	start := time.Now()
	result, err := h.Generator.Generate(r.Context(), promptText(kind, prompt))
	h.Metrics.ObserveUpstream(kind, time.Since(start))
	if err != nil {
		h.Metrics.ObserveRequest(kind, metrics.OutcomeError)
		logAndReturnError(w, r, err.Error(), http.StatusInternalServerError)
		return
	}

	h.Metrics.ObserveRequest(kind, metrics.OutcomeOK)
	writeJSON(w, http.StatusOK, map[string]string{kind: strings.TrimSpace(result)})
	logRequest(r, kind)
}

// Health reports liveness.
func Health(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok"))
}
