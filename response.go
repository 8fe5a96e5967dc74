package treekv

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

// Response headers carrying store consistency metadata.
const (
	headerLeaderPeerURL = "X-Leader-Peer-Url"
	headerStoreIndex    = "X-Treekv-Index"
	headerRaftIndex     = "X-Raft-Index"
	headerRaftTerm      = "X-Raft-Term"
)

// Response is the parsed body of a store response.
type Response struct {
	// Action names the operation the store performed (get, set, create,
	// delete, compareAndSwap).
	Action string `json:"action"`
	// Node is the entry the operation acted on.
	Node *Node `json:"node,omitempty"`
	// PrevNode is the prior state of the entry for mutations that
	// replaced an existing node.
	PrevNode *Node `json:"prevNode,omitempty"`
}

// ResponseMeta is protocol metadata extracted from the response status and
// headers. It rides alongside the parsed body without being merged into
// it, so callers can distinguish payload fields from protocol state.
type ResponseMeta struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// LeaderPeerURL is the peer URL of the current cluster leader.
	LeaderPeerURL string
	// StoreIndex is the store's current index.
	StoreIndex uint64
	// RaftIndex is the underlying raft log index.
	RaftIndex uint64
	// RaftTerm is the underlying raft term.
	RaftTerm uint64
}

// Envelope pairs a parsed response body with its out-of-band metadata.
// Envelopes are created per request and discarded once the caller has
// extracted what it needs.
type Envelope struct {
	Response
	Meta ResponseMeta
}

// parseEnvelope turns a raw transport response into an Envelope, or into
// the normalized error for a failed request.
func parseEnvelope(raw *rawResponse) (*Envelope, error) {
	if raw.StatusCode >= http.StatusBadRequest {
		return nil, normalizeStoreError(raw)
	}
	if len(bytes.TrimSpace(raw.Body)) == 0 {
		return nil, ErrMissingBody
	}
	env := &Envelope{Meta: metaFromHeader(raw.StatusCode, raw.Header)}
	if err := json.Unmarshal(raw.Body, &env.Response); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return env, nil
}

// normalizeStoreError maps an error response to a StoreError when the body
// is the store's native error document. Anything else surfaces as an
// HTTPError with the body preserved.
func normalizeStoreError(raw *rawResponse) error {
	var se StoreError
	if len(raw.Body) > 0 && json.Unmarshal(raw.Body, &se) == nil && se.ErrorCode != 0 {
		se.Status = raw.StatusCode
		return &se
	}
	return &HTTPError{StatusCode: raw.StatusCode, Body: raw.Body}
}

func metaFromHeader(status int, h http.Header) ResponseMeta {
	return ResponseMeta{
		StatusCode:    status,
		LeaderPeerURL: h.Get(headerLeaderPeerURL),
		StoreIndex:    headerUint(h, headerStoreIndex),
		RaftIndex:     headerUint(h, headerRaftIndex),
		RaftTerm:      headerUint(h, headerRaftTerm),
	}
}

// headerUint parses a numeric header, returning 0 when absent or malformed.
func headerUint(h http.Header, name string) uint64 {
	v := h.Get(name)
	if v == "" {
		return 0
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
