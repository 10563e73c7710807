package web

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	urlstrip "github.com/okpulse/url-strip"
	"github.com/okpulse/url-strip/result"
)

type stripRequest struct {
	URL string `json:"url"`
}

type stripResponse struct {
	URL   string `json:"url,omitempty"`
	Error string `json:"error,omitempty"`
}

func (s *Server) handleStrip(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method", http.StatusMethodNotAllowed)
		return
	}

	var req stripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URL == "" {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	res := urlstrip.Strip(req.URL)
	if stripErr, isErr := result.GetErr(res); isErr {
		s.log.Info("strip rejected", zap.String("input", req.URL), zap.String("reason", stripErr.Error()))
		writeJSON(w, http.StatusUnprocessableEntity, stripResponse{Error: stripErr.Error()})
		return
	}

	cleaned := result.UnwrapOk(res)
	writeJSON(w, http.StatusOK, stripResponse{URL: cleaned.String()})
}

func (s *Server) handleDomains(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"domains": urlstrip.Domains()})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	s.handleStatic("static/index.html", "text/html; charset=utf-8")(w, r)
}

func (s *Server) handleStatic(name, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := staticFS.ReadFile(name)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", contentType)
		_, _ = w.Write(b)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
