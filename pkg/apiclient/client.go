package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client is a thin JSON-over-HTTP client for the inventory API.
// Non-2xx responses are surfaced as *Error.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Detail is one entry of a structured error detail list.
type Detail struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message,omitempty"`
}

// Error is the failure shape thrown by the API.
// Details accepts both the structured array form and a plain string.
type Error struct {
	StatusCode int
	Message    string
	Details    []Detail
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("api: status %d", e.StatusCode)
}

// DetailText joins the structured details into one human-readable line.
// Falls back to Message, then to a generic text.
func (e *Error) DetailText() string {
	if len(e.Details) > 0 {
		parts := make([]string, 0, len(e.Details))
		for _, d := range e.Details {
			if d.Field != "" && d.Message != "" {
				parts = append(parts, d.Field+": "+d.Message)
			} else if d.Message != "" {
				parts = append(parts, d.Message)
			}
		}
		if len(parts) > 0 {
			return strings.Join(parts, "; ")
		}
	}
	if e.Message != "" {
		return e.Message
	}
	return "no se pudo completar la operacion"
}

// envelope mirrors the server's uniform response shape.
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Details json.RawMessage `json:"details"`
}

// New builds a Client against the given base URL, e.g. "http://host:8080/api/v1".
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Get issues a GET and decodes the envelope's data field into out.
func (c *Client) Get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Put issues a PUT with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("serializando cuerpo: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("decodificando respuesta: %w", err)
	}
	if len(env.Data) == 0 {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}

// decodeError extracts the structured error from a non-2xx body.
// Bodies that are not the expected envelope still produce a usable *Error.
func decodeError(status int, raw []byte) *Error {
	apiErr := &Error{StatusCode: status}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return apiErr
	}
	apiErr.Message = env.Message

	if len(env.Details) == 0 {
		return apiErr
	}

	// details can be either an array of {field, message} or a bare string
	var list []Detail
	if err := json.Unmarshal(env.Details, &list); err == nil {
		apiErr.Details = list
		return apiErr
	}
	var text string
	if err := json.Unmarshal(env.Details, &text); err == nil && text != "" {
		apiErr.Details = []Detail{{Message: text}}
	}
	return apiErr
}
