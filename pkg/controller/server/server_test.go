package server_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/repobridge/pkg/controller/server"
	"github.com/secmon-lab/repobridge/pkg/domain/mock"
	"github.com/secmon-lab/repobridge/pkg/domain/model"
	"github.com/secmon-lab/repobridge/pkg/domain/types"
)

func TestRouterSmokeTests(t *testing.T) {
	t.Run("GET /health returns 200", func(t *testing.T) {
		srv := server.New(&mock.UseCaseMock{})

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()

		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, rec.Body.String()).Equal("ok")
	})
}

func postTool(t *testing.T, srv *server.Server, action string, args map[string]any) *httptest.ResponseRecorder {
	t.Helper()

	body := gt.R1(json.Marshal(args)).NoError(t)
	req := httptest.NewRequest(http.MethodPost, "/tool/"+action, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	srv.Mux().ServeHTTP(rec, req)
	return rec
}

func TestToolEndpoint(t *testing.T) {
	t.Run("successful action returns an envelope", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			CheckRepoExistsFunc: func(ctx context.Context, name types.RepoName) (bool, error) {
				return true, nil
			},
		}
		srv := server.New(uc)

		rec := postTool(t, srv, "checkRepoExists", map[string]any{"repoName": "demo"})
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, rec.Header().Get("Content-Type")).Equal("application/json")

		var envelope model.Envelope
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		gt.A(t, envelope.Content).Length(1)
		gt.V(t, envelope.Content[0].Type).Equal("text")
		gt.V(t, envelope.Content[0].Text).Equal(`Repository "demo" exists.`)
	})

	t.Run("unknown action returns 400", func(t *testing.T) {
		srv := server.New(&mock.UseCaseMock{})

		rec := postTool(t, srv, "noSuchAction", map[string]any{})
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("validation failure returns 400", func(t *testing.T) {
		srv := server.New(&mock.UseCaseMock{})

		rec := postTool(t, srv, "checkRepoExists", map[string]any{})
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("missing repository returns 404", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			ViewRepositoryFunc: func(ctx context.Context, name types.RepoName) (*model.Repository, error) {
				return nil, goerr.Wrap(types.ErrNotFound, "repository not found")
			},
		}
		srv := server.New(uc)

		rec := postTool(t, srv, "viewRepository", map[string]any{"repoName": "missing"})
		gt.V(t, rec.Code).Equal(http.StatusNotFound)
	})

	t.Run("rate limited post returns 429", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			CreatePostFunc: func(ctx context.Context, status string) (*model.Post, error) {
				return nil, goerr.Wrap(types.ErrRateLimited, "rate limit exceeded")
			},
		}
		srv := server.New(uc)

		rec := postTool(t, srv, "createPost", map[string]any{"status": "hi"})
		gt.V(t, rec.Code).Equal(http.StatusTooManyRequests)
	})

	t.Run("upstream server failure returns 502", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			ListRepositoriesFunc: func(ctx context.Context) ([]types.RepoName, error) {
				return nil, goerr.Wrap(types.ErrUpstreamServer, "github is down")
			},
		}
		srv := server.New(uc)

		rec := postTool(t, srv, "listRepositories", map[string]any{})
		gt.V(t, rec.Code).Equal(http.StatusBadGateway)
	})

	t.Run("empty body is treated as no arguments", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			ListRepositoriesFunc: func(ctx context.Context) ([]types.RepoName, error) {
				return []types.RepoName{"alpha"}, nil
			},
		}
		srv := server.New(uc)

		req := httptest.NewRequest(http.MethodPost, "/tool/listRepositories", nil)
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusOK)
	})
}

func TestMessagesWithoutSession(t *testing.T) {
	srv := server.New(&mock.UseCaseMock{})

	req := httptest.NewRequest(http.MethodPost, "/messages?sessionId=bogus", strings.NewReader("{}"))
	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, req)

	gt.V(t, rec.Code).Equal(http.StatusBadRequest)
	gt.V(t, rec.Body.String()).Equal("No transport found for sessionId")
}

// sseClient drives a live event stream against a test server.
type sseClient struct {
	endpoint string
	events   chan sseEvent
	cancel   context.CancelFunc
}

type sseEvent struct {
	name string
	data string
}

func dialSSE(t *testing.T, baseURL string) *sseClient {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	req := gt.R1(http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/sse", nil)).NoError(t)
	resp := gt.R1(http.DefaultClient.Do(req)).NoError(t)
	gt.V(t, resp.StatusCode).Equal(http.StatusOK)
	gt.V(t, resp.Header.Get("Content-Type")).Equal("text/event-stream")

	client := &sseClient{events: make(chan sseEvent, 8), cancel: cancel}
	go func() {
		defer resp.Body.Close()

		var ev sseEvent
		scanner := bufio.NewScanner(resp.Body)
		for scanner.Scan() {
			line := scanner.Text()
			switch {
			case strings.HasPrefix(line, "event: "):
				ev.name = strings.TrimPrefix(line, "event: ")
			case strings.HasPrefix(line, "data: "):
				ev.data = strings.TrimPrefix(line, "data: ")
			case line == "":
				if ev.name != "" {
					client.events <- ev
				}
				ev = sseEvent{}
			}
		}
	}()

	select {
	case ev := <-client.events:
		gt.V(t, ev.name).Equal("endpoint")
		client.endpoint = ev.data
	case <-time.After(3 * time.Second):
		t.Fatal("timeout waiting for endpoint event")
	}

	return client
}

func (x *sseClient) call(t *testing.T, baseURL string, req map[string]any) {
	t.Helper()

	body := gt.R1(json.Marshal(req)).NoError(t)
	resp := gt.R1(http.Post(baseURL+x.endpoint, "application/json", bytes.NewReader(body))).NoError(t)
	defer resp.Body.Close()
	gt.V(t, resp.StatusCode).Equal(http.StatusAccepted)
}

func (x *sseClient) next(t *testing.T) map[string]any {
	t.Helper()

	select {
	case ev := <-x.events:
		gt.V(t, ev.name).Equal("message")
		var decoded map[string]any
		gt.NoError(t, json.Unmarshal([]byte(ev.data), &decoded))
		return decoded
	case <-time.After(3 * time.Second):
		t.Fatal("timeout waiting for message event")
		return nil
	}
}

func TestSSESession(t *testing.T) {
	uc := &mock.UseCaseMock{
		CheckRepoExistsFunc: func(ctx context.Context, name types.RepoName) (bool, error) {
			return name == "demo", nil
		},
	}
	srv := server.New(uc)
	ts := httptest.NewServer(srv.Mux())
	defer ts.Close()

	client := dialSSE(t, ts.URL)
	defer client.cancel()

	gt.True(t, strings.HasPrefix(client.endpoint, "/messages?sessionId="))

	t.Run("initialize", func(t *testing.T) {
		client.call(t, ts.URL, map[string]any{
			"jsonrpc": "2.0", "id": 1, "method": "initialize",
			"params": map[string]any{"protocolVersion": "2024-11-05"},
		})

		resp := client.next(t)
		gt.V(t, resp["jsonrpc"]).Equal(any("2.0"))
		result := gt.Cast[map[string]any](t, resp["result"])
		gt.V(t, result["protocolVersion"]).Equal(any("2024-11-05"))
	})

	t.Run("tools/list returns the closed action set", func(t *testing.T) {
		client.call(t, ts.URL, map[string]any{
			"jsonrpc": "2.0", "id": 2, "method": "tools/list",
		})

		resp := client.next(t)
		result := gt.Cast[map[string]any](t, resp["result"])
		tools := gt.Cast[[]any](t, result["tools"])
		gt.A(t, tools).Length(14)
	})

	t.Run("tools/call dispatches through the registry", func(t *testing.T) {
		client.call(t, ts.URL, map[string]any{
			"jsonrpc": "2.0", "id": 3, "method": "tools/call",
			"params": map[string]any{
				"name":      "checkRepoExists",
				"arguments": map[string]any{"repoName": "demo"},
			},
		})

		resp := client.next(t)
		result := gt.Cast[map[string]any](t, resp["result"])
		content := gt.Cast[[]any](t, result["content"])
		first := gt.Cast[map[string]any](t, content[0])
		gt.V(t, first["text"]).Equal(any(`Repository "demo" exists.`))
	})

	t.Run("unknown method yields method-not-found", func(t *testing.T) {
		client.call(t, ts.URL, map[string]any{
			"jsonrpc": "2.0", "id": 4, "method": "resources/list",
		})

		resp := client.next(t)
		rpcErr := gt.Cast[map[string]any](t, resp["error"])
		gt.V(t, rpcErr["code"]).Equal(any(float64(-32601)))
	})

	t.Run("invalid arguments yield invalid-params", func(t *testing.T) {
		client.call(t, ts.URL, map[string]any{
			"jsonrpc": "2.0", "id": 5, "method": "tools/call",
			"params": map[string]any{
				"name":      "checkRepoExists",
				"arguments": map[string]any{},
			},
		})

		resp := client.next(t)
		rpcErr := gt.Cast[map[string]any](t, resp["error"])
		gt.V(t, rpcErr["code"]).Equal(any(float64(-32602)))
	})
}
