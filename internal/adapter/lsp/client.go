// Package lsp provides a Language Server Protocol client for terraform-ls,
// communicating via JSON-RPC 2.0 over stdio. The harness consumes only the
// handful of operations it measures: the initialize handshake, workspace and
// document symbol queries, didOpen with published diagnostics, and shutdown.
package lsp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"sync"
	"sync/atomic"
	"time"

	"tfbench/internal/config"
	lspDomain "tfbench/internal/domain/lsp"
)

// Client manages the terraform-ls process for the duration of a benchmark
// run. Acquire with Start before the scenario loop and release with Stop on
// every exit path; individual request failures never tear it down.
type Client struct {
	cfg       config.LSP
	workspace string

	cmd    *exec.Cmd
	conn   *Conn
	status lspDomain.ServerStatus
	mu     sync.Mutex

	nextID  atomic.Int64
	pending map[int]chan *Message
	pendMu  sync.Mutex

	diagnostics map[string][]lspDomain.Diagnostic // URI -> diagnostics
	diagMu      sync.RWMutex

	done chan struct{} // closed when readLoop exits
}

// NewClient creates a client for the language server named by cfg.Command,
// rooted at the given workspace directory.
func NewClient(cfg config.LSP, workspace string) *Client {
	return &Client{
		cfg:         cfg,
		workspace:   workspace,
		status:      lspDomain.ServerStatusStopped,
		pending:     make(map[int]chan *Message),
		diagnostics: make(map[string][]lspDomain.Diagnostic),
		done:        make(chan struct{}),
	}
}

// Status returns the current server status.
func (c *Client) Status() lspDomain.ServerStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// PID returns the process ID of the language server, or 0 if not running.
func (c *Client) PID() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cmd != nil && c.cmd.Process != nil {
		return c.cmd.Process.Pid
	}
	return 0
}

// Start spawns the language server process and performs the LSP initialize
// handshake. Failure here is a setup failure: the caller should abort the run.
func (c *Client) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status == lspDomain.ServerStatusReady || c.status == lspDomain.ServerStatusStarting {
		return nil
	}

	c.status = lspDomain.ServerStatusStarting

	if len(c.cfg.Command) == 0 {
		c.status = lspDomain.ServerStatusFailed
		return fmt.Errorf("no language server command configured")
	}

	// Check if the binary exists on PATH.
	if _, err := exec.LookPath(c.cfg.Command[0]); err != nil {
		c.status = lspDomain.ServerStatusFailed
		return fmt.Errorf("language server binary not found: %s", c.cfg.Command[0])
	}

	cmd := exec.CommandContext(ctx, c.cfg.Command[0], c.cfg.Command[1:]...) //nolint:gosec // command from trusted config
	cmd.Dir = c.workspace
	cmd.Stderr = os.Stderr // let server stderr pass through for debugging

	stdin, err := cmd.StdinPipe()
	if err != nil {
		c.status = lspDomain.ServerStatusFailed
		return fmt.Errorf("stdin pipe: %w", err)
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		c.status = lspDomain.ServerStatusFailed
		return fmt.Errorf("stdout pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		c.status = lspDomain.ServerStatusFailed
		return fmt.Errorf("start process: %w", err)
	}

	c.cmd = cmd
	c.conn = NewConn(stdioPipe{stdin: stdin, stdout: stdout})
	c.done = make(chan struct{})

	// Start the read loop before sending initialize.
	go c.readLoop()

	// Perform LSP initialize handshake.
	if err := c.initialize(ctx); err != nil {
		c.status = lspDomain.ServerStatusFailed
		// Kill the process on failed init.
		_ = cmd.Process.Kill()
		return fmt.Errorf("initialize: %w", err)
	}

	c.status = lspDomain.ServerStatusReady
	slog.Info("language server started", "command", c.cfg.Command[0], "pid", cmd.Process.Pid, "workspace", c.workspace)
	return nil
}

// Stop performs a graceful LSP shutdown (shutdown + exit) with timeout.
func (c *Client) Stop(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status == lspDomain.ServerStatusStopped {
		return nil
	}

	slog.Info("language server stopping")

	shutdownCtx, cancel := context.WithTimeout(ctx, c.cfg.ShutdownTimeout)
	defer cancel()

	// Send shutdown request.
	if c.conn != nil {
		_, err := c.call(shutdownCtx, "shutdown", nil)
		if err != nil {
			slog.Warn("shutdown request failed", "error", err)
		}
		// Send exit notification.
		_ = c.conn.Notify("exit", nil)
		_ = c.conn.Close()
	}

	// Wait for process to exit or kill it.
	if c.cmd != nil && c.cmd.Process != nil {
		done := make(chan error, 1)
		go func() { done <- c.cmd.Wait() }()
		select {
		case <-done:
		case <-shutdownCtx.Done():
			slog.Warn("language server did not exit gracefully, killing")
			_ = c.cmd.Process.Kill()
		}
	}

	c.status = lspDomain.ServerStatusStopped
	c.conn = nil
	c.cmd = nil

	// Wait for readLoop to finish.
	<-c.done

	slog.Info("language server stopped")
	return nil
}

// WorkspaceSymbols issues a workspace/symbol query and returns the matching
// symbols. The context bounds the round trip.
func (c *Client) WorkspaceSymbols(ctx context.Context, query string) ([]lspDomain.SymbolInformation, error) {
	params := map[string]any{"query": query}
	result, err := c.call(ctx, "workspace/symbol", params)
	if err != nil {
		return nil, err
	}
	if result == nil || string(result) == "null" {
		return nil, nil
	}
	var symbols []lspDomain.SymbolInformation
	if err := json.Unmarshal(result, &symbols); err != nil {
		return nil, fmt.Errorf("unmarshal workspace symbols: %w", err)
	}
	return symbols, nil
}

// DocumentSymbols returns the symbol tree for a file.
func (c *Client) DocumentSymbols(ctx context.Context, uri string) ([]lspDomain.DocumentSymbol, error) {
	params := map[string]any{
		"textDocument": map[string]string{"uri": uri},
	}
	result, err := c.call(ctx, "textDocument/documentSymbol", params)
	if err != nil {
		return nil, err
	}
	if result == nil || string(result) == "null" {
		return nil, nil
	}
	var symbols []lspDomain.DocumentSymbol
	if err := json.Unmarshal(result, &symbols); err != nil {
		return nil, fmt.Errorf("unmarshal document symbols: %w", err)
	}
	return symbols, nil
}

// OpenFile sends a textDocument/didOpen notification to the language server.
func (c *Client) OpenFile(uri, languageID, content string) error {
	params := map[string]any{
		"textDocument": map[string]any{
			"uri":        uri,
			"languageId": languageID,
			"version":    1,
			"text":       content,
		},
	}
	return c.conn.Notify("textDocument/didOpen", params)
}

// Diagnostics returns cached diagnostics for a URI.
func (c *Client) Diagnostics(uri string) []lspDomain.Diagnostic {
	c.diagMu.RLock()
	defer c.diagMu.RUnlock()
	return c.diagnostics[uri]
}

// WaitDiagnostics polls the diagnostics cache for a URI until at least one
// diagnostic arrives or the context expires. Servers publish diagnostics
// asynchronously after didOpen; an empty result after the wait simply means
// the server found nothing (or never answered) within the bound.
func (c *Client) WaitDiagnostics(ctx context.Context, uri string) []lspDomain.Diagnostic {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		if diags := c.Diagnostics(uri); len(diags) > 0 {
			return diags
		}
		select {
		case <-ctx.Done():
			return c.Diagnostics(uri)
		case <-ticker.C:
		}
	}
}

// --- Internal methods ---

// initialize performs the LSP initialize/initialized handshake.
func (c *Client) initialize(ctx context.Context) error {
	workspaceURI := "file://" + c.workspace
	params := map[string]any{
		"processId": os.Getpid(),
		"rootUri":   workspaceURI,
		"capabilities": map[string]any{
			"workspace": map[string]any{
				"symbol": map[string]any{},
			},
			"textDocument": map[string]any{
				"publishDiagnostics": map[string]any{},
				"documentSymbol":     map[string]any{},
			},
		},
	}

	if _, err := c.call(ctx, "initialize", params); err != nil {
		return fmt.Errorf("initialize request: %w", err)
	}

	// Send initialized notification.
	if err := c.conn.Notify("initialized", map[string]any{}); err != nil {
		return fmt.Errorf("initialized notification: %w", err)
	}

	return nil
}

// call sends a JSON-RPC request and waits for the response.
func (c *Client) call(ctx context.Context, method string, params any) (json.RawMessage, error) {
	id := int(c.nextID.Add(1))
	ch := make(chan *Message, 1)

	c.pendMu.Lock()
	c.pending[id] = ch
	c.pendMu.Unlock()

	defer func() {
		c.pendMu.Lock()
		delete(c.pending, id)
		c.pendMu.Unlock()
	}()

	if err := c.conn.Send(id, method, params); err != nil {
		return nil, fmt.Errorf("send %s: %w", method, err)
	}

	select {
	case msg := <-ch:
		if msg.Error != nil {
			return nil, msg.Error
		}
		return msg.Result, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-c.done:
		return nil, fmt.Errorf("connection closed")
	}
}

// readLoop continuously reads messages from the language server.
// Responses are dispatched to pending callers; notifications are handled inline.
func (c *Client) readLoop() {
	defer close(c.done)

	for {
		msg, err := c.conn.ReadMessage()
		if err != nil {
			// Connection closed, normal during shutdown.
			return
		}

		if msg.ID != nil {
			// Response to a request we sent.
			c.pendMu.Lock()
			ch, ok := c.pending[*msg.ID]
			c.pendMu.Unlock()
			if ok {
				ch <- msg
			}
			continue
		}

		// Server notification.
		switch msg.Method {
		case "textDocument/publishDiagnostics":
			c.handlePublishDiagnostics(msg.Params)
		default:
			slog.Debug("lsp notification ignored", "method", msg.Method)
		}
	}
}

// handlePublishDiagnostics processes diagnostic notifications from the server.
func (c *Client) handlePublishDiagnostics(raw json.RawMessage) {
	var params struct {
		URI         string                 `json:"uri"`
		Diagnostics []lspDomain.Diagnostic `json:"diagnostics"`
	}
	if err := json.Unmarshal(raw, &params); err != nil {
		slog.Warn("failed to unmarshal diagnostics", "error", err)
		return
	}

	// Apply max diagnostics limit.
	diags := params.Diagnostics
	if c.cfg.MaxDiagnostics > 0 && len(diags) > c.cfg.MaxDiagnostics {
		diags = diags[:c.cfg.MaxDiagnostics]
	}

	c.diagMu.Lock()
	if len(diags) == 0 {
		delete(c.diagnostics, params.URI)
	} else {
		c.diagnostics[params.URI] = diags
	}
	c.diagMu.Unlock()
}

// stdioPipe combines a stdin (writer) and stdout (reader) into an io.ReadWriteCloser.
type stdioPipe struct {
	stdin  io.WriteCloser
	stdout io.ReadCloser
}

func (p stdioPipe) Read(b []byte) (int, error)  { return p.stdout.Read(b) }
func (p stdioPipe) Write(b []byte) (int, error) { return p.stdin.Write(b) }
func (p stdioPipe) Close() error {
	_ = p.stdin.Close()
	return p.stdout.Close()
}
