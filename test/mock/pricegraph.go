// Package mock provides test doubles for the flight prices checker.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific responses).
package mock

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"time"
)

// Row is one element of a price graph response, in the service's wire format.
type Row struct {
	StartDate  string  `json:"StartDate"`
	ReturnDate string  `json:"ReturnDate"`
	Price      float64 `json:"Price"`
}

// PriceGraphServer is a configurable stand-in for the remote getPriceGraph endpoint.
// It records every request it receives and can be reconfigured between calls.
type PriceGraphServer struct {
	server *httptest.Server

	mu         sync.Mutex
	rows       []Row
	rawBody    string
	statusCode int
	errorBody  string
	delay      time.Duration
	token      string
	calls      int
	forms      []url.Values
}

// NewPriceGraphServer starts a server answering 200 with an empty array.
// Call Close when done.
func NewPriceGraphServer() *PriceGraphServer {
	p := &PriceGraphServer{statusCode: http.StatusOK}
	p.server = httptest.NewServer(http.HandlerFunc(p.serve))
	return p
}

// WithRows configures the rows returned on success.
func (p *PriceGraphServer) WithRows(rows ...Row) *PriceGraphServer {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rows = rows
	p.rawBody = ""
	p.statusCode = http.StatusOK
	return p
}

// WithRawBody configures a literal 200 body, for malformed payloads.
func (p *PriceGraphServer) WithRawBody(body string) *PriceGraphServer {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rawBody = body
	p.statusCode = http.StatusOK
	return p
}

// WithError configures a non-200 answer with a plain text body.
func (p *PriceGraphServer) WithError(status int, body string) *PriceGraphServer {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.statusCode = status
	p.errorBody = body
	return p
}

// WithDelay configures the server to wait before responding.
// This is useful for testing timeout behavior and request overlap.
func (p *PriceGraphServer) WithDelay(d time.Duration) *PriceGraphServer {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.delay = d
	return p
}

// RequireToken makes the server answer 401 unless the bearer token matches.
func (p *PriceGraphServer) RequireToken(token string) *PriceGraphServer {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.token = token
	return p
}

// URL returns the endpoint URL.
func (p *PriceGraphServer) URL() string {
	return p.server.URL
}

// Close shuts the server down.
func (p *PriceGraphServer) Close() {
	p.server.Close()
}

// CallCount returns the number of requests received.
func (p *PriceGraphServer) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

// LastForm returns the form of the most recent request, or nil.
func (p *PriceGraphServer) LastForm() url.Values {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.forms) == 0 {
		return nil
	}
	return p.forms[len(p.forms)-1]
}

func (p *PriceGraphServer) serve(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()

	p.mu.Lock()
	p.calls++
	p.forms = append(p.forms, r.PostForm)
	rows, rawBody := p.rows, p.rawBody
	status, errorBody := p.statusCode, p.errorBody
	delay, token := p.delay, p.token
	p.mu.Unlock()

	if delay > 0 {
		select {
		case <-r.Context().Done():
			return
		case <-time.After(delay):
		}
	}

	if token != "" && r.Header.Get("Authorization") != "Bearer "+token {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if status != http.StatusOK {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(errorBody))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if rawBody != "" {
		_, _ = w.Write([]byte(rawBody))
		return
	}
	if rows == nil {
		rows = []Row{}
	}
	_ = json.NewEncoder(w).Encode(rows)
}

// SampleRows returns three trips between 2024-06-01 and 2024-06-10 priced 100, 250 and 400,
// in an order the client has to sort.
func SampleRows() []Row {
	return []Row{
		{StartDate: "2024-06-05T00:00:00Z", ReturnDate: "2024-06-10T00:00:00Z", Price: 400},
		{StartDate: "2024-06-01T00:00:00Z", ReturnDate: "2024-06-04T00:00:00Z", Price: 100},
		{StartDate: "2024-06-02T00:00:00Z", ReturnDate: "2024-06-06T00:00:00Z", Price: 250},
	}
}
