package main

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/sushihentaime/frogblogs/internal/common"
	"github.com/sushihentaime/frogblogs/internal/ownershipservice"
	"github.com/sushihentaime/frogblogs/internal/rosterservice"
)

type testServer struct {
	*httptest.Server
}

func newTestServer(t *testing.T, h http.Handler) *testServer {
	ts := httptest.NewServer(h)

	t.Cleanup(ts.Close)

	return &testServer{ts}
}

// recordingProducer keeps every published message. A non-nil err is returned from every Publish.
type recordingProducer struct {
	mu   sync.Mutex
	err  error
	msgs [][]byte
}

func (p *recordingProducer) Publish(ctx context.Context, msg []byte, key common.BindingKey, exchange common.Exchange) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.err != nil {
		return p.err
	}

	if key != common.CommentAttachedKey || exchange != common.FrogExchange {
		return errors.New("unexpected routing")
	}

	p.msgs = append(p.msgs, msg)
	return nil
}

func (p *recordingProducer) events(t *testing.T) []common.CommentAttachedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()

	var events []common.CommentAttachedEvent
	for _, msg := range p.msgs {
		var evt common.CommentAttachedEvent
		if err := json.Unmarshal(msg, &evt); err != nil {
			t.Fatal(err)
		}
		events = append(events, evt)
	}

	return events
}

func testConfig() *Config {
	return &Config{
		Port:        ":0",
		Environment: "development",
		Version:     "1.0.0",
		Limiter:     LimiterConfig{Enabled: false, RPS: 2, Burst: 4},
	}
}

func newUnitApplication() *application {
	return &application{
		config: testConfig(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		cache:  common.NewCache(time.Minute, time.Minute),
	}
}

func newTestApplication(t *testing.T) (*application, *sql.DB, *recordingProducer) {
	db := common.TestDB("file://../../migrations", t)

	producer := &recordingProducer{}

	app := newUnitApplication()
	app.rosterService = rosterservice.NewRosterService(db)
	app.ownershipService = ownershipservice.NewOwnershipService(db)
	app.producer = producer

	return app, db, producer
}

func truncateAll(t *testing.T, db *sql.DB) {
	_, err := db.Exec(`TRUNCATE roster.users, roster.memberships, roster.comments, roster.blogs,
		ownership.comments, ownership.blogs, ownership.users RESTART IDENTITY`)
	if err != nil {
		t.Fatal(err)
	}
}

func readResponse(t *testing.T, res *http.Response) (int, http.Header, envelope) {
	defer res.Body.Close()

	responseBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatal(err)
	}

	var envelope envelope
	err = json.Unmarshal(responseBody, &envelope)
	if err != nil {
		t.Fatal(err)
	}

	return res.StatusCode, res.Header, envelope
}

func (ts *testServer) do(t *testing.T, method, path string, payload any) (int, http.Header, envelope) {
	var body io.Reader
	if payload != nil {
		jsonPayload, err := json.Marshal(payload)
		if err != nil {
			t.Fatal(err)
		}
		body = bytes.NewReader(jsonPayload)
	}

	req, err := http.NewRequest(method, ts.URL+path, body)
	if err != nil {
		t.Fatal(err)
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}

	return readResponse(t, res)
}

func (ts *testServer) get(t *testing.T, path string) (int, http.Header, envelope) {
	return ts.do(t, http.MethodGet, path, nil)
}

func (ts *testServer) post(t *testing.T, path string, payload any) (int, http.Header, envelope) {
	return ts.do(t, http.MethodPost, path, payload)
}

func (ts *testServer) put(t *testing.T, path string, payload any) (int, http.Header, envelope) {
	return ts.do(t, http.MethodPut, path, payload)
}

func (ts *testServer) delete(t *testing.T, path string) (int, http.Header, envelope) {
	return ts.do(t, http.MethodDelete, path, nil)
}
