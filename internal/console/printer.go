package console

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/diogo/helpline/internal/conversation"
	"github.com/diogo/helpline/internal/models"
	"github.com/diogo/helpline/internal/present"
	"github.com/diogo/helpline/internal/render"
)

// Printer writes controller output to a stream. Output that cannot be taken back
// on a stream, such as clearing the transcript, is ignored.
type Printer struct {
	out    io.Writer
	width  int
	styles Styles

	mu sync.Mutex
}

var (
	_ conversation.Renderer         = (*Printer)(nil)
	_ conversation.ResourceRenderer = (*Printer)(nil)
)

// NewPrinter creates a Printer using the active color theme.
func NewPrinter(out io.Writer, width int) *Printer {
	return &Printer{
		out:    out,
		width:  width,
		styles: NewStyles(render.ActiveTheme()),
	}
}

// Styles returns the printer's styles
func (p *Printer) Styles() Styles {
	return p.styles
}

func (p *Printer) println(s string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.out, s)
}

func (p *Printer) AppendMessage(msg models.Message) {
	p.println(FormatMessage(p.styles, msg, p.width))
}

func (p *Printer) ResetInput()      {}
func (p *Printer) FocusInput()      {}
func (p *Printer) ClearTranscript() {}

func (p *Printer) SetPanel(panel present.Panel) {
	p.println("\n" + FormatPanel(p.styles, panel))
}

func (p *Printer) Recommend(entries []present.ResourceEntry) {
	p.println("\n" + FormatResources(p.styles, "Recommended resources", entries))
}

func (p *Printer) SetResources(entries []present.ResourceEntry) {
	p.println(FormatResources(p.styles, "Support resources", entries))
}

// PrintTranscript writes a stored conversation, oldest message first.
func (p *Printer) PrintTranscript(t *models.Transcript, loc *time.Location) {
	header := p.styles.Heading.Render("Conversation " + render.SanitizeLine(t.ID.String()))
	meta := p.styles.Dim.Render(fmt.Sprintf("Started %s", present.FormatTimestamp(t.CreatedAt, loc)))
	p.println(header + "\n" + FormatBadge(p.styles, present.RiskBadge("Risk: ", t.RiskLevel)) + "\n" + meta)

	for _, m := range t.Messages {
		p.println(p.styles.Dim.Render(present.FormatTimestamp(m.CreatedAt, loc)))
		p.AppendMessage(models.Message{Sender: m.Sender, Text: m.Text})
	}
}
