package server

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/secmon-lab/repobridge/pkg/controller/registry"
	"github.com/secmon-lab/repobridge/pkg/domain/types"
	"github.com/secmon-lab/repobridge/pkg/utils/errutil"
)

const (
	rpcCodeParseError     = -32700
	rpcCodeMethodNotFound = -32601
	rpcCodeInvalidParams  = -32602
	rpcCodeInternalError  = -32603

	protocolVersion = "2024-11-05"
)

type rpcRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      any             `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params"`
}

type rpcResponse struct {
	JSONRPC string    `json:"jsonrpc"`
	ID      any       `json:"id"`
	Result  any       `json:"result,omitempty"`
	Error   *rpcError `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func newRPCResponse(id any, result any) *rpcResponse {
	return &rpcResponse{JSONRPC: "2.0", ID: id, Result: result}
}

func newRPCError(id any, code int, msg string) *rpcResponse {
	return &rpcResponse{JSONRPC: "2.0", ID: id, Error: &rpcError{Code: code, Message: msg}}
}

type toolDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

type toolCallParams struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

// handleRPC runs one JSON-RPC request against the action registry.
// Notifications return nil, meaning nothing is sent back.
func handleRPC(ctx context.Context, reg *registry.Registry, raw []byte) *rpcResponse {
	var req rpcRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return newRPCError(nil, rpcCodeParseError, "failed to parse JSON-RPC request")
	}

	switch req.Method {
	case "initialize":
		return newRPCResponse(req.ID, map[string]any{
			"protocolVersion": protocolVersion,
			"capabilities":    map[string]any{"tools": map[string]any{}},
			"serverInfo": map[string]any{
				"name":    "repobridge",
				"version": types.AppVersion,
			},
		})

	case "notifications/initialized":
		return nil

	case "tools/list":
		specs := registry.Specs()
		tools := make([]toolDefinition, 0, len(specs))
		for _, spec := range specs {
			tools = append(tools, toolDefinition{
				Name:        spec.Name,
				Description: spec.Description,
				InputSchema: spec.InputSchema(),
			})
		}
		return newRPCResponse(req.ID, map[string]any{"tools": tools})

	case "tools/call":
		var params toolCallParams
		if err := json.Unmarshal(req.Params, &params); err != nil {
			return newRPCError(req.ID, rpcCodeInvalidParams, "failed to parse tool call parameters")
		}
		if params.Arguments == nil {
			params.Arguments = map[string]any{}
		}

		envelope, err := reg.Dispatch(ctx, params.Name, params.Arguments)
		if err != nil {
			switch {
			case errors.Is(err, types.ErrUnknownAction):
				return newRPCError(req.ID, rpcCodeMethodNotFound, err.Error())
			case errors.Is(err, types.ErrValidationFailed):
				return newRPCError(req.ID, rpcCodeInvalidParams, err.Error())
			default:
				errutil.HandleError(ctx, "tool call failed", err)
				return newRPCError(req.ID, rpcCodeInternalError, err.Error())
			}
		}
		return newRPCResponse(req.ID, envelope)

	default:
		return newRPCError(req.ID, rpcCodeMethodNotFound, "method not found: "+req.Method)
	}
}
