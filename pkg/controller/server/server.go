// Package server exposes the action registry over two HTTP bindings, a
// direct REST endpoint per action and a server-sent events session that
// speaks JSON-RPC. Both run the same validation and produce the same
// result envelopes.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/secmon-lab/repobridge/pkg/controller/registry"
	"github.com/secmon-lab/repobridge/pkg/domain/interfaces"
	"github.com/secmon-lab/repobridge/pkg/domain/types"
	"github.com/secmon-lab/repobridge/pkg/utils/errutil"
	"github.com/secmon-lab/repobridge/pkg/utils/logging"
)

type Server struct {
	mux      *chi.Mux
	registry *registry.Registry
	sessions *sessionStore
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

func New(uc interfaces.UseCase) *Server {
	x := &Server{
		registry: registry.New(uc),
		sessions: newSessionStore(),
	}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Post("/tool/{action}", x.handleTool)
	r.Get("/sse", x.handleSSE)
	r.Post("/messages", x.handleMessage)

	x.mux = r
	return x
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}

// errStatus maps the error taxonomy onto REST status codes. Upstream
// server failures surface as 502 because this process is a gateway to
// them.
func errStatus(err error) int {
	switch {
	case errors.Is(err, types.ErrValidationFailed),
		errors.Is(err, types.ErrUnknownAction),
		errors.Is(err, types.ErrInvalidOption),
		errors.Is(err, types.ErrUpstreamClient):
		return http.StatusBadRequest
	case errors.Is(err, types.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, types.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, types.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, types.ErrUpstreamServer):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	body, mErr := json.Marshal(map[string]string{"error": err.Error()})
	if mErr != nil {
		body = []byte(`{"error":"internal error"}`)
	}

	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, errStatus(err), body)
}

func (x *Server) handleTool(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	action := chi.URLParam(r, "action")

	args := map[string]any{}
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, types.ErrValidationFailed)
		return
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &args); err != nil {
			writeError(w, types.ErrValidationFailed)
			return
		}
	}

	envelope, err := x.registry.Dispatch(ctx, action, args)
	if err != nil {
		if errStatus(err) >= http.StatusInternalServerError {
			errutil.HandleError(ctx, "action failed", err)
		} else {
			logging.From(ctx).Warn("action rejected",
				slog.String("action", action),
				slog.Any("error", err),
			)
		}
		writeError(w, err)
		return
	}

	body, err := json.Marshal(envelope)
	if err != nil {
		errutil.HandleError(ctx, "fail to encode envelope", err)
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, http.StatusOK, body)
}

// handleSSE opens an event stream session. The first event tells the
// client where to post messages, every following event is a JSON-RPC
// response. The stream stays open until the client disconnects.
func (x *Server) handleSSE(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		safeWrite(w, http.StatusInternalServerError, []byte("streaming is not supported"))
		return
	}

	s := x.sessions.open()
	defer x.sessions.close(s.id)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	fmt.Fprintf(w, "event: endpoint\ndata: /messages?sessionId=%s\n\n", s.id)
	flusher.Flush()

	logging.From(r.Context()).Info("sse session opened", slog.Any("session_id", s.id))

	for {
		select {
		case <-r.Context().Done():
			logging.From(r.Context()).Info("sse session closed", slog.Any("session_id", s.id))
			return

		case msg := <-s.send:
			fmt.Fprintf(w, "event: message\ndata: %s\n\n", msg)
			flusher.Flush()
		}
	}
}

func (x *Server) handleMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sessionID := types.SessionID(r.URL.Query().Get("sessionId"))
	s, err := x.sessions.lookup(sessionID)
	if err != nil {
		safeWrite(w, http.StatusBadRequest, []byte("No transport found for sessionId"))
		return
	}

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		safeWrite(w, http.StatusBadRequest, []byte("failed to read request body"))
		return
	}

	resp := handleRPC(ctx, x.registry, raw)
	if resp != nil {
		body, err := json.Marshal(resp)
		if err != nil {
			errutil.HandleError(ctx, "fail to encode JSON-RPC response", err)
			safeWrite(w, http.StatusInternalServerError, []byte("internal error"))
			return
		}

		select {
		case s.send <- body:
		case <-ctx.Done():
			return
		}
	}

	safeWrite(w, http.StatusAccepted, []byte("Accepted"))
}
