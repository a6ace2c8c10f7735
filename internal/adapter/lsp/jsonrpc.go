package lsp

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
)

// Message is one JSON-RPC 2.0 message. Which fields are set depends on the
// direction: requests carry ID+Method+Params, notifications Method+Params,
// responses ID plus either Result or Error.
type Message struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      *int            `json:"id,omitempty"`
	Method  string          `json:"method,omitempty"`
	Params  json.RawMessage `json:"params,omitempty"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *ResponseError  `json:"error,omitempty"`
}

// ResponseError is the error member of a response message.
type ResponseError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("jsonrpc error %d: %s", e.Code, e.Message)
}

// Conn speaks Content-Length-framed JSON-RPC over a byte stream, normally
// the stdio of the language server process. Writes are serialized by a
// mutex; reads must come from a single goroutine.
type Conn struct {
	rwc    io.ReadWriteCloser
	reader *bufio.Reader
	wmu    sync.Mutex
}

// NewConn wraps rwc in a framed JSON-RPC connection.
func NewConn(rwc io.ReadWriteCloser) *Conn {
	return &Conn{
		rwc:    rwc,
		reader: bufio.NewReaderSize(rwc, 64*1024),
	}
}

// Send writes a request with the given id. The response arrives later via
// ReadMessage; matching it back to the id is the caller's job.
func (c *Conn) Send(id int, method string, params any) error {
	return c.send(&id, method, params)
}

// Notify writes a notification. No response will follow.
func (c *Conn) Notify(method string, params any) error {
	return c.send(nil, method, params)
}

func (c *Conn) send(id *int, method string, params any) error {
	raw, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("marshal %s params: %w", method, err)
	}

	data, err := json.Marshal(Message{JSONRPC: "2.0", ID: id, Method: method, Params: raw})
	if err != nil {
		return fmt.Errorf("marshal %s message: %w", method, err)
	}

	c.wmu.Lock()
	defer c.wmu.Unlock()
	if _, err := fmt.Fprintf(c.rwc, "Content-Length: %d\r\n\r\n", len(data)); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := c.rwc.Write(data); err != nil {
		return fmt.Errorf("write body: %w", err)
	}
	return nil
}

// ReadMessage blocks until one complete message has been read and decoded.
func (c *Conn) ReadMessage() (*Message, error) {
	body, err := c.readFrame()
	if err != nil {
		return nil, err
	}

	var msg Message
	if err := json.Unmarshal(body, &msg); err != nil {
		return nil, fmt.Errorf("unmarshal message: %w", err)
	}
	return &msg, nil
}

// Close closes the underlying stream, which unblocks any pending read.
func (c *Conn) Close() error {
	return c.rwc.Close()
}

// readFrame consumes the header block, then exactly Content-Length bytes of
// body. Headers other than Content-Length (Content-Type in practice) are
// skipped.
func (c *Conn) readFrame() ([]byte, error) {
	size := -1
	for {
		line, err := c.reader.ReadString('\n')
		if err != nil {
			return nil, fmt.Errorf("read header: %w", err)
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		if val, ok := strings.CutPrefix(line, "Content-Length: "); ok {
			size, err = strconv.Atoi(val)
			if err != nil {
				return nil, fmt.Errorf("parse Content-Length %q: %w", val, err)
			}
		}
	}
	if size < 0 {
		return nil, fmt.Errorf("frame has no Content-Length header")
	}

	body := make([]byte, size)
	if _, err := io.ReadFull(c.reader, body); err != nil {
		return nil, fmt.Errorf("read body (%d bytes): %w", size, err)
	}
	return body, nil
}
