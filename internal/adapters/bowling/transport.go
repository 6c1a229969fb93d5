package bowling

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

// maxErrorBody acota lo que leemos de una respuesta fallida.
const maxErrorBody = 1 << 20

type Client struct {
	endpoint string
	http     *http.Client
	observe  Observer
}

// New arma el cliente contra endpoint (ej: http://localhost:5000/api/game).
// No hay endpoint por defecto: lo decide quien configura.
func New(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		http:     &http.Client{},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Endpoint devuelve la URL base ya normalizada.
func (c *Client) Endpoint() string { return c.endpoint }

// do: un solo round trip, sin reintentos. Devuelve el body crudo si el status es 2xx;
// si no, *HTTPError con el texto tal cual vino.
func (c *Client) do(ctx context.Context, op, method, path string, in any) ([]byte, error) {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("bowling %s: encode: %w", op, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, body)
	if err != nil {
		return nil, fmt.Errorf("bowling %s: %w", op, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	res, err := c.http.Do(req)
	if err != nil {
		c.report(op, 0, start)
		return nil, fmt.Errorf("bowling http: %w", err)
	}
	defer res.Body.Close()
	c.report(op, res.StatusCode, start)

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		b, rerr := io.ReadAll(io.LimitReader(res.Body, maxErrorBody+1))
		he := &HTTPError{Status: res.StatusCode}
		if len(b) > maxErrorBody {
			b, he.Truncated = b[:maxErrorBody], true
		}
		he.Body = string(b)
		if rerr != nil {
			// el status manda; el error de lectura va envuelto
			return nil, fmt.Errorf("bowling %s: %v: %w", op, rerr, he)
		}
		return nil, he
	}

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("bowling %s: %w: %v", op, errReadBody, err)
	}
	return b, nil
}

func (c *Client) report(op string, status int, start time.Time) {
	if c.observe != nil {
		c.observe(op, status, time.Since(start))
	}
}
