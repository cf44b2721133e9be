package conversation

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/diogo/helpline/internal/models"
	"github.com/diogo/helpline/internal/present"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recordingRenderer stores every call as a short event string.
type recordingRenderer struct {
	mu        sync.Mutex
	events    []string
	panels    []present.Panel
	resources []present.ResourceEntry
}

func (r *recordingRenderer) record(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, fmt.Sprintf(format, args...))
}

func (r *recordingRenderer) AppendMessage(msg models.Message) {
	r.record("%s:%s", msg.Sender, msg.Text)
}

func (r *recordingRenderer) ResetInput()      { r.record("reset-input") }
func (r *recordingRenderer) FocusInput()      { r.record("focus") }
func (r *recordingRenderer) ClearTranscript() { r.record("clear") }

func (r *recordingRenderer) SetPanel(panel present.Panel) {
	r.mu.Lock()
	r.panels = append(r.panels, panel)
	r.mu.Unlock()

	if panel.IsPlaceholder() {
		r.record("panel:%s", panel.Placeholder)
		return
	}
	r.record("panel:%s", panel.Analysis.Overview.Risk.Label)
}

func (r *recordingRenderer) Recommend(entries []present.ResourceEntry) {
	r.record("recommend:%d", len(entries))
}

func (r *recordingRenderer) SetResources(entries []present.ResourceEntry) {
	r.mu.Lock()
	r.resources = entries
	r.mu.Unlock()
	r.record("resources:%d", len(entries))
}

func (r *recordingRenderer) Events() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}

func (r *recordingRenderer) Panels() []present.Panel {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]present.Panel(nil), r.panels...)
}

func (r *recordingRenderer) Count(event string) int {
	n := 0
	for _, e := range r.Events() {
		if e == event {
			n++
		}
	}
	return n
}

type chatCall struct {
	Message string
	ID      models.ConversationID
}

// fakeService answers chats from a queue and analyses from a map. Analysis
// fetches for ids with a gate block until the gate is closed.
type fakeService struct {
	mu            sync.Mutex
	replies       []chatReply
	analyses      map[models.ConversationID]*models.Analysis
	analysisErr   error
	gates         map[models.ConversationID]chan struct{}
	chatCalls     []chatCall
	analysisCalls []models.ConversationID
	resources     []models.Resource
	resourcesErr  error
}

type chatReply struct {
	resp *models.ChatResponse
	err  error
}

func newFakeService() *fakeService {
	return &fakeService{
		analyses: make(map[models.ConversationID]*models.Analysis),
		gates:    make(map[models.ConversationID]chan struct{}),
	}
}

func (f *fakeService) queueReply(resp *models.ChatResponse, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.replies = append(f.replies, chatReply{resp: resp, err: err})
}

func (f *fakeService) gate(id models.ConversationID) chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	ch := make(chan struct{})
	f.gates[id] = ch
	return ch
}

func (f *fakeService) SendChat(_ context.Context, message string, id models.ConversationID) (*models.ChatResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.chatCalls = append(f.chatCalls, chatCall{Message: message, ID: id})
	if len(f.replies) == 0 {
		return nil, fmt.Errorf("no reply queued")
	}
	reply := f.replies[0]
	f.replies = f.replies[1:]
	return reply.resp, reply.err
}

func (f *fakeService) FetchAnalysis(ctx context.Context, id models.ConversationID) (*models.Analysis, error) {
	f.mu.Lock()
	f.analysisCalls = append(f.analysisCalls, id)
	gate := f.gates[id]
	f.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.analysisErr != nil {
		return nil, f.analysisErr
	}
	a, ok := f.analyses[id]
	if !ok {
		return nil, fmt.Errorf("analysis for %s not found", id)
	}
	return a, nil
}

func (f *fakeService) FetchResources(context.Context) ([]models.Resource, error) {
	return f.resources, f.resourcesErr
}

func (f *fakeService) ChatCalls() []chatCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]chatCall(nil), f.chatCalls...)
}

func (f *fakeService) AnalysisCalls() []models.ConversationID {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.ConversationID(nil), f.analysisCalls...)
}
