package mcp

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
)

const maxRequestBytes = 4 << 20

// Handler returns an http.Handler answering single JSON-RPC requests by POST.
// Notifications are acknowledged with 202 and an empty body.
func (s *Server) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBytes))
		if err != nil {
			http.Error(w, "read body: "+err.Error(), http.StatusBadRequest)
			return
		}

		resp := s.HandleMessage(r.Context(), body)
		if resp == nil {
			w.WriteHeader(http.StatusAccepted)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			slog.Error("write JSON-RPC response failed", "err", err)
		}
	})
}
