package treekv

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// rawResponse is what the transport hands to the envelope parser: the
// status, headers, and body of a single exchange.
type rawResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// transport performs the HTTP exchanges of the client. Mutation parameters
// travel as a form-encoded body for PUT and POST and as query parameters
// for GET and DELETE. The underlying http.Client follows the 307 redirects
// the store issues for writes addressed to a non-leader; request bodies
// are replayable so the redirected request carries them again.
type transport struct {
	client   *http.Client
	config   *Config
	baseURL  string
	observer Observer
}

func newTransport(config *Config) (*transport, error) {
	parsed, err := url.Parse(config.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("treekv: invalid base URL: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("treekv: base URL must have a scheme and host")
	}

	httpTransport := &http.Transport{
		MaxIdleConns:        config.TransportConfig.MaxIdleConns,
		MaxConnsPerHost:     config.TransportConfig.MaxConnsPerHost,
		IdleConnTimeout:     config.TransportConfig.IdleConnTimeout,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	return &transport{
		client:   &http.Client{Transport: httpTransport},
		config:   config,
		baseURL:  strings.TrimRight(parsed.String(), "/"),
		observer: config.Observer,
	}, nil
}

// do performs a single request. params become the query string for GET and
// DELETE and the form body for PUT and POST. timeout overrides the
// configured per-request timeout when positive; it is applied as a context
// deadline bounding connection and read alike, never forwarded to the
// store.
func (t *transport) do(ctx context.Context, method, path string, params url.Values, timeout time.Duration) (*rawResponse, error) {
	if timeout <= 0 {
		timeout = t.config.Timeout
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	reqURL := t.baseURL + path
	var body io.Reader
	switch method {
	case http.MethodPut, http.MethodPost:
		if len(params) > 0 {
			body = strings.NewReader(params.Encode())
		}
	default:
		if len(params) > 0 {
			reqURL += "?" + params.Encode()
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return nil, fmt.Errorf("treekv: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "treekv-go/1.0")
	for key, value := range t.config.Headers {
		req.Header.Set(key, value)
	}

	if t.observer != nil {
		t.observer.OnRequestStart(method, path)
	}
	start := time.Now()

	raw, err := t.roundTrip(req, method, path)

	if t.observer != nil {
		t.observer.OnRequestEnd(method, path, time.Since(start), err)
	}
	return raw, err
}

func (t *transport) roundTrip(req *http.Request, method, path string) (*rawResponse, error) {
	resp, err := t.client.Do(req)
	if err != nil {
		return nil, &NetworkError{Op: method + " " + path, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Op: "reading response for " + method + " " + path, Err: err}
	}

	return &rawResponse{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       data,
	}, nil
}

// close releases idle connections.
func (t *transport) close() error {
	t.client.CloseIdleConnections()
	return nil
}
