package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	http "github.com/bogdanfinn/fhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "github.com/diogo/helpline/internal/errors"
	"github.com/diogo/helpline/internal/models"
)

// recordedRequest captures what the client sent
type recordedRequest struct {
	Method string
	URL    string
	Header http.Header
	Body   string
}

// fakeDoer is an HTTPDoer that answers every request with a handler
type fakeDoer struct {
	mu       sync.Mutex
	handler  func(req *http.Request) (*http.Response, error)
	requests []recordedRequest
	closed   bool
}

func (f *fakeDoer) Do(req *http.Request) (*http.Response, error) {
	var body string
	if req.Body != nil {
		data, _ := io.ReadAll(req.Body)
		body = string(data)
	}

	f.mu.Lock()
	f.requests = append(f.requests, recordedRequest{
		Method: req.Method,
		URL:    req.URL.String(),
		Header: req.Header.Clone(),
		Body:   body,
	})
	f.mu.Unlock()

	return f.handler(req)
}

func (f *fakeDoer) CloseIdleConnections() {
	f.closed = true
}

func (f *fakeDoer) last(t *testing.T) recordedRequest {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.requests)
	return f.requests[len(f.requests)-1]
}

func respond(status int, body string) func(*http.Request) (*http.Response, error) {
	return func(*http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: status,
			Header:     http.Header{},
			Body:       io.NopCloser(strings.NewReader(body)),
		}, nil
	}
}

func newTestClient(t *testing.T, handler func(*http.Request) (*http.Response, error)) (*Client, *fakeDoer) {
	t.Helper()
	doer := &fakeDoer{handler: handler}
	client, err := NewClient(
		WithBaseURL("http://helpline.test/api/"),
		WithHTTPClient(doer),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithRequestIDFunc(func() string { return "req-1" }),
	)
	require.NoError(t, err)
	return client, doer
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name     string
		baseURL  string
		wantErr  bool
		wantBase string
	}{
		{name: "default", baseURL: "", wantErr: true},
		{name: "trailing slash trimmed", baseURL: "https://example.org/api/", wantBase: "https://example.org/api"},
		{name: "plain http", baseURL: "http://localhost:5000/api", wantBase: "http://localhost:5000/api"},
		{name: "unsupported scheme", baseURL: "ftp://example.org", wantErr: true},
		{name: "missing host", baseURL: "http:///api", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(WithBaseURL(tt.baseURL), WithHTTPClient(&fakeDoer{}))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBase, client.BaseURL())
		})
	}
}

func TestNewClient_DefaultBaseURL(t *testing.T) {
	client, err := NewClient(WithHTTPClient(&fakeDoer{}))
	require.NoError(t, err)
	assert.Equal(t, models.DefaultBaseURL, client.BaseURL())
}

func TestClient_Close(t *testing.T) {
	client, doer := newTestClient(t, respond(200, `{}`))

	client.Close()
	client.Close()

	assert.True(t, client.IsClosed())
	assert.True(t, doer.closed)

	_, err := client.FetchResources(context.Background())
	assert.Error(t, err)
}

func TestSendChat(t *testing.T) {
	client, doer := newTestClient(t, respond(200, `{"conversation_id": 7, "response": "I'm here for you.", "risk_level": "low"}`))

	resp, err := client.SendChat(context.Background(), "I need help", models.ConversationID{})
	require.NoError(t, err)

	assert.Equal(t, "7", resp.ConversationID.String())
	assert.Equal(t, "I'm here for you.", resp.Response)
	assert.Equal(t, models.RiskLow, resp.RiskLevel)

	req := doer.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "http://helpline.test/api/chat", req.URL)
	assert.JSONEq(t, `{"message": "I need help", "conversation_id": null}`, req.Body)
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
	assert.Equal(t, "req-1", req.Header.Get(models.HeaderRequestID))
}

func TestSendChat_ContinuesConversation(t *testing.T) {
	client, doer := newTestClient(t, respond(200, `{"conversation_id": 7, "response": "ok"}`))

	id, err := models.ParseConversationID("7")
	require.NoError(t, err)

	_, err = client.SendChat(context.Background(), "still here", id)
	require.NoError(t, err)
	assert.JSONEq(t, `{"message": "still here", "conversation_id": 7}`, doer.last(t).Body)
}

func TestSendChat_EmptyMessage(t *testing.T) {
	client, doer := newTestClient(t, respond(200, `{}`))

	_, err := client.SendChat(context.Background(), "   ", models.ConversationID{})
	assert.ErrorIs(t, err, apierrors.ErrEmptyMessage)
	assert.Empty(t, doer.requests)
}

func TestSendChat_Errors(t *testing.T) {
	tests := []struct {
		name        string
		handler     func(*http.Request) (*http.Response, error)
		wantStatus  int
		wantMessage string
		wantNetwork bool
		wantParse   bool
	}{
		{
			name:        "structured error body",
			handler:     respond(503, `{"error": "Service unavailable"}`),
			wantStatus:  503,
			wantMessage: "Service unavailable",
		},
		{
			name:       "non-json error body",
			handler:    respond(502, `<html>bad gateway</html>`),
			wantStatus: 502,
		},
		{
			name:        "transport failure",
			handler:     func(*http.Request) (*http.Response, error) { return nil, errors.New("connection refused") },
			wantNetwork: true,
		},
		{
			name:      "undecodable success body",
			handler:   respond(200, `not json`),
			wantParse: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, tt.handler)

			_, err := client.SendChat(context.Background(), "hello", models.ConversationID{})
			require.Error(t, err)

			assert.Equal(t, tt.wantStatus, apierrors.GetHTTPStatus(err))
			assert.Equal(t, tt.wantNetwork, apierrors.IsNetworkError(err))
			assert.Equal(t, tt.wantParse, apierrors.IsParseError(err))

			msg, _ := apierrors.ServerMessage(err)
			assert.Equal(t, tt.wantMessage, msg)
		})
	}
}

func TestFetchAnalysis(t *testing.T) {
	client, doer := newTestClient(t, respond(200, `{
		"conversation_id": 3,
		"risk_level": "immediate_danger",
		"message_count": 2,
		"user_message_count": 1,
		"bot_message_count": 1,
		"keyword_flags": [],
		"last_message_at": "2024-05-01T10:05:00"
	}`))

	id, _ := models.ParseConversationID("3")
	analysis, err := client.FetchAnalysis(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, models.RiskImmediateDanger, analysis.RiskLevel)
	assert.Equal(t, 2, analysis.MessageCount)
	assert.Empty(t, analysis.KeywordFlags)

	req := doer.last(t)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "http://helpline.test/api/conversations/3/analysis", req.URL)
	assert.Empty(t, req.Header.Get("Content-Type"))
}

func TestFetchAnalysis_EscapesID(t *testing.T) {
	client, doer := newTestClient(t, respond(200, `{}`))

	_, err := client.FetchAnalysis(context.Background(), models.NewConversationID("a/b c"))
	require.NoError(t, err)
	assert.Equal(t, "http://helpline.test/api/conversations/a%2Fb%20c/analysis", doer.last(t).URL)
}

func TestFetchAnalysis_NoConversation(t *testing.T) {
	client, doer := newTestClient(t, respond(200, `{}`))

	_, err := client.FetchAnalysis(context.Background(), models.ConversationID{})
	assert.ErrorIs(t, err, apierrors.ErrNoConversation)
	assert.Empty(t, doer.requests)
}

func TestFetchAnalysis_NotFound(t *testing.T) {
	client, _ := newTestClient(t, respond(404, `{"error": "Conversation not found."}`))

	id, _ := models.ParseConversationID("99")
	_, err := client.FetchAnalysis(context.Background(), id)
	assert.Equal(t, 404, apierrors.GetHTTPStatus(err))
}

func TestFetchTranscript(t *testing.T) {
	client, doer := newTestClient(t, respond(200, `{
		"id": 4,
		"created_at": "2024-05-01T10:00:00",
		"risk_level": "moderate",
		"messages": [
			{"id": 1, "sender": "user", "text": "hi", "created_at": "2024-05-01T10:00:00"},
			{"id": 2, "sender": "bot", "text": "hello", "created_at": "2024-05-01T10:00:01"}
		]
	}`))

	id, _ := models.ParseConversationID("4")
	transcript, err := client.FetchTranscript(context.Background(), id)
	require.NoError(t, err)

	require.Len(t, transcript.Messages, 2)
	assert.Equal(t, models.SenderBot, transcript.Messages[1].Sender)
	assert.Equal(t, "http://helpline.test/api/conversations/4", doer.last(t).URL)
}

func TestFetchResources(t *testing.T) {
	client, _ := newTestClient(t, respond(200, `{"resources": [
		{"name": "Hotline", "phone": "1-800-799-7233", "chat": "https://www.thehotline.org/", "type": "emergency"},
		{"phone": "000"},
		{"name": "Emergency Services", "phone": "911"}
	]}`))

	resources, err := client.FetchResources(context.Background())
	require.NoError(t, err)

	require.Len(t, resources, 2)
	assert.Equal(t, "Hotline", resources[0].Name)
	assert.Equal(t, "https://www.thehotline.org/", resources[0].Chat)
	assert.Equal(t, "Emergency Services", resources[1].Name)
}

func TestFetchResources_Malformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `resources`},
		{"missing array", `{"items": []}`},
		{"wrong type", `{"resources": "none"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, respond(200, tt.body))

			_, err := client.FetchResources(context.Background())
			assert.True(t, apierrors.IsParseError(err), "got %v", err)
		})
	}
}

func TestRequest_ContextCancelled(t *testing.T) {
	client, _ := newTestClient(t, func(req *http.Request) (*http.Response, error) {
		return nil, req.Context().Err()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.FetchResources(ctx)
	assert.True(t, apierrors.IsNetworkError(err))
	assert.ErrorIs(t, err, context.Canceled)
}
