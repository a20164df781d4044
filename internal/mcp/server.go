package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/gregm711/agent-domain-service-mcp/internal/tools"
)

// Server answers MCP JSON-RPC requests from a tool registry.
// Every request is independent; the server holds no per-call state.
type Server struct {
	name       string
	version    string
	registry   *tools.Registry
	dispatcher *tools.Dispatcher

	writeMu sync.Mutex
}

// NewServer creates a Server exposing the given registry.
func NewServer(name, version string, registry *tools.Registry, dispatcher *tools.Dispatcher) *Server {
	return &Server{
		name:       name,
		version:    version,
		registry:   registry,
		dispatcher: dispatcher,
	}
}

// ServeStdio reads newline-delimited JSON-RPC requests from r and writes
// responses to w until r is exhausted or ctx is cancelled. Log output must
// go elsewhere (stderr); w carries protocol frames only.
func (s *Server) ServeStdio(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		resp := s.HandleMessage(ctx, []byte(line))
		if resp == nil {
			continue
		}
		if err := s.write(w, resp); err != nil {
			return fmt.Errorf("write response: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read request: %w", err)
	}
	return nil
}

func (s *Server) write(w io.Writer, resp *response) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

// HandleMessage processes one raw JSON-RPC message and returns the response,
// or nil when the message is a notification.
func (s *Server) HandleMessage(ctx context.Context, data []byte) *response {
	var req request
	if err := json.Unmarshal(data, &req); err != nil {
		return errorResponse(nil, codeParseError, "parse error: "+err.Error())
	}

	switch req.Method {
	case "initialize":
		return s.handleInitialize(&req)
	case "notifications/initialized", "notifications/cancelled":
		return nil
	case "ping":
		return resultResponse(req.ID, struct{}{})
	case "tools/list":
		return resultResponse(req.ID, map[string]any{"tools": s.registry.Definitions()})
	case "tools/call":
		return s.handleToolsCall(ctx, &req)
	default:
		if req.isNotification() {
			return nil
		}
		return errorResponse(req.ID, codeMethodNotFound, "method not found: "+req.Method)
	}
}

func (s *Server) handleInitialize(req *request) *response {
	slog.Info("MCP client initializing", "server", s.name)
	return resultResponse(req.ID, map[string]any{
		"protocolVersion": protocolVersion,
		"capabilities":    map[string]any{"tools": map[string]any{}},
		"serverInfo":      map[string]any{"name": s.name, "version": s.version},
	})
}

func (s *Server) handleToolsCall(ctx context.Context, req *request) *response {
	var params callParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return errorResponse(req.ID, codeInvalidParams, "invalid params: "+err.Error())
	}
	if params.Name == "" {
		return errorResponse(req.ID, codeInvalidParams, "invalid params: tool name is required")
	}
	if params.Arguments == nil {
		params.Arguments = map[string]any{}
	}

	result := s.dispatcher.Call(ctx, params.Name, params.Arguments)
	return resultResponse(req.ID, result)
}
