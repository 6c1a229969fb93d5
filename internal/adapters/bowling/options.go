package bowling

import (
	"net/http"
	"time"
)

type Option func(*Client)

// Observer recibe una llamada por round trip; status 0 = error de transporte.
type Observer func(op string, status int, d time.Duration)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithObserver(o Observer) Option {
	return func(c *Client) { c.observe = o }
}
