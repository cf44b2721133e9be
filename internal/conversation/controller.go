package conversation

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	apierrors "github.com/diogo/helpline/internal/errors"
	"github.com/diogo/helpline/internal/models"
	"github.com/diogo/helpline/internal/present"
)

// Bot messages rendered in place of a reply.
const (
	ChatFailedText     = "Sorry, something went wrong."
	ConnectionLostText = "I'm having trouble connecting right now. Please double-check your connection and try again."
)

type options struct {
	logger   *slog.Logger
	location *time.Location
}

// Option configures a Controller or a ResourceLoader.
type Option func(*options)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithLocation sets the zone analysis timestamps are shown in. The default is time.Local.
func WithLocation(loc *time.Location) Option {
	return func(o *options) {
		if loc != nil {
			o.location = loc
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{
		logger:   slog.Default(),
		location: time.Local,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Controller owns the active conversation id and keeps the renderer consistent with it.
//
// The id is adopted from every successful chat response and cleared only by Reset.
// Analysis fetches run in the background; a result is painted only if its id is still
// the active one when it arrives. The check and the paint happen under the same lock,
// so Reset cannot slip in between them.
type Controller struct {
	service  Service
	renderer Renderer
	logger   *slog.Logger
	location *time.Location

	mu      sync.Mutex
	current models.ConversationID

	wg sync.WaitGroup
}

// New creates a Controller with no active conversation.
func New(service Service, renderer Renderer, opts ...Option) *Controller {
	o := buildOptions(opts)
	return &Controller{
		service:  service,
		renderer: renderer,
		logger:   o.logger,
		location: o.location,
	}
}

// ConversationID returns the active conversation id; the zero value means none.
func (c *Controller) ConversationID() models.ConversationID {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Submit sends text as a user message. Blank text is ignored. The call blocks until
// the service replies; the analysis refresh that follows a reply runs in the background.
func (c *Controller) Submit(ctx context.Context, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	c.renderer.AppendMessage(models.UserMessage(text))
	c.renderer.ResetInput()

	id := c.ConversationID()
	resp, err := c.service.SendChat(ctx, text, id)
	if err != nil {
		c.renderer.AppendMessage(models.BotMessage(c.failureText(err)))
		return
	}

	c.mu.Lock()
	c.current = resp.ConversationID
	adopted := c.current
	c.renderer.AppendMessage(models.BotMessage(resp.Response))
	if len(resp.RecommendedResources) > 0 {
		c.renderer.Recommend(present.FormatResources(resp.RecommendedResources))
	}
	c.mu.Unlock()

	c.logger.Debug("chat reply received",
		slog.String("conversation_id", adopted.String()),
		slog.String("risk_level", string(resp.RiskLevel)),
	)

	c.spawn(func() {
		c.RefreshAnalysis(ctx, adopted)
	})
}

func (c *Controller) failureText(err error) string {
	if apierrors.IsAPIError(err) {
		c.logger.Warn("chat request rejected",
			slog.Int("status", apierrors.GetHTTPStatus(err)),
			slog.String("error", err.Error()),
		)
		if msg, ok := apierrors.ServerMessage(err); ok {
			return msg
		}
		return ChatFailedText
	}

	c.logger.Error("chat request failed", slog.String("error", err.Error()))
	return ConnectionLostText
}

// RefreshAnalysis fetches and paints the analysis for id. A zero id paints the
// "no conversation" placeholder when nothing is active. Results for an id that is
// no longer active are dropped. Failures are painted, never returned.
func (c *Controller) RefreshAnalysis(ctx context.Context, id models.ConversationID) {
	if id.IsZero() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.current.IsZero() {
			c.renderer.SetPanel(present.PlaceholderPanel(present.PlaceholderNoConversation))
		}
		return
	}

	analysis, err := c.service.FetchAnalysis(ctx, id)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current != id {
		c.logger.Debug("dropping stale analysis",
			slog.String("conversation_id", id.String()),
			slog.String("current", c.current.String()),
		)
		return
	}

	if err != nil || analysis == nil {
		if err != nil {
			c.logger.Warn("analysis unavailable",
				slog.String("conversation_id", id.String()),
				slog.String("error", err.Error()),
			)
		}
		c.renderer.SetPanel(present.PlaceholderPanel(present.PlaceholderUnavailable))
		return
	}

	c.renderer.SetPanel(present.AnalysisPanel(present.FormatAnalysis(*analysis, c.location)))
}

// Refresh re-fetches the analysis for the active conversation.
func (c *Controller) Refresh(ctx context.Context) {
	c.RefreshAnalysis(ctx, c.ConversationID())
}

// Reset forgets the active conversation and returns the display to its initial state.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.current = models.ConversationID{}
	c.renderer.ClearTranscript()
	c.renderer.SetPanel(present.PlaceholderPanel(present.PlaceholderStart))
	c.renderer.FocusInput()
}

// Wait blocks until every background analysis refresh has finished.
func (c *Controller) Wait() {
	c.wg.Wait()
}

func (c *Controller) spawn(fn func()) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		fn()
	}()
}
