package handler

import (
	"encoding/json"
	"net/http"
)

func logRequest(req *http.Request, kind string) {
	log.Infof("%s -- %s -- %s -- %s", req.RemoteAddr, req.Method, req.URL.Path, kind)
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Errorf("Failed to write response: %v", err)
	}
}

func logAndReturnError(w http.ResponseWriter, req *http.Request, httpResponseStr string, code int) {
	log.Errorf("%s -- %s -- %s -- %d: %s", req.RemoteAddr, req.Method, req.URL.Path, code, httpResponseStr)
	writeJSON(w, code, map[string]string{"error": httpResponseStr})
}
