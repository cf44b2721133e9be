package api

import (
	"context"
	"sync"

	"github.com/diogo/helpline/internal/models"
)

// MockClient is a mock implementation of HelplineClientInterface for testing.
// It is safe for concurrent use.
type MockClient struct {
	mu sync.Mutex

	// Mock return values
	ChatResponse  *models.ChatResponse
	ChatErr       error
	Analysis      map[string]*models.Analysis
	AnalysisErr   error
	Transcript    *models.Transcript
	TranscriptErr error
	Resources     []models.Resource
	ResourcesErr  error
	BaseURLVal    string

	// Call recorders
	ChatCalls     []models.ChatRequest
	AnalysisCalls []models.ConversationID
	ResourceCalls int
	CloseCalled   bool
}

// Ensure MockClient implements HelplineClientInterface
var _ HelplineClientInterface = (*MockClient)(nil)

func (m *MockClient) SendChat(ctx context.Context, message string, id models.ConversationID) (*models.ChatResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ChatCalls = append(m.ChatCalls, models.ChatRequest{Message: message, ConversationID: id})
	return m.ChatResponse, m.ChatErr
}

func (m *MockClient) FetchAnalysis(ctx context.Context, id models.ConversationID) (*models.Analysis, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AnalysisCalls = append(m.AnalysisCalls, id)
	if m.AnalysisErr != nil {
		return nil, m.AnalysisErr
	}
	return m.Analysis[id.String()], nil
}

func (m *MockClient) FetchTranscript(ctx context.Context, id models.ConversationID) (*models.Transcript, error) {
	return m.Transcript, m.TranscriptErr
}

func (m *MockClient) FetchResources(ctx context.Context) ([]models.Resource, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ResourceCalls++
	return m.Resources, m.ResourcesErr
}

func (m *MockClient) BaseURL() string {
	if m.BaseURLVal == "" {
		return models.DefaultBaseURL
	}
	return m.BaseURLVal
}

func (m *MockClient) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CloseCalled = true
}

func (m *MockClient) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.CloseCalled
}

// Calls returns copies of the recorded chat and analysis calls
func (m *MockClient) Calls() ([]models.ChatRequest, []models.ConversationID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	chats := append([]models.ChatRequest(nil), m.ChatCalls...)
	analyses := append([]models.ConversationID(nil), m.AnalysisCalls...)
	return chats, analyses
}
