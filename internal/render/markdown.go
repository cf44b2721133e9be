// Package render provides terminal rendering utilities: the help screen
// markdown, color themes and sanitizing of untrusted text.
package render

import (
	"os"
	"sync"

	"github.com/charmbracelet/glamour"

	"github.com/diogo/helpline/internal/config"
)

const defaultWidth = 80

// maxRenderers bounds the renderer cache. The help screen asks for a new
// width on every resize, so old entries are dropped rather than kept forever.
const maxRenderers = 8

// Options configures markdown rendering of the help screen.
type Options struct {
	// Width is the word-wrap column
	Width int

	// Style is a glamour style name ("dark", "light", "notty", "auto") or
	// the path of a JSON style file
	Style string

	// EnableEmoji converts :emoji: shortcodes
	EnableEmoji bool
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Width:       defaultWidth,
		Style:       config.DefaultMarkdownConfig().Style,
		EnableEmoji: config.DefaultMarkdownConfig().EnableEmoji,
	}
}

// WithWidth returns a copy of o wrapping at width.
func (o Options) WithWidth(width int) Options {
	o.Width = width
	return o
}

// normalized fills the zero fields so equal renderings share a cache entry.
func (o Options) normalized() Options {
	if o.Width <= 0 {
		o.Width = defaultWidth
	}
	if o.Style == "" {
		o.Style = DefaultOptions().Style
	}
	return o
}

// OptionsFromConfig builds render options from a loaded configuration.
// GLAMOUR_STYLE, when set, takes precedence over the configured style.
func OptionsFromConfig(cfg config.Config) Options {
	opts := DefaultOptions()
	if cfg.Markdown.Style != "" {
		opts.Style = cfg.Markdown.Style
	}
	opts.EnableEmoji = cfg.Markdown.EnableEmoji

	if style := os.Getenv("GLAMOUR_STYLE"); style != "" {
		opts.Style = style
	}
	return opts
}

// termRenderer serializes use of one glamour renderer, which is not safe for
// concurrent Render calls.
type termRenderer struct {
	mu sync.Mutex
	tr *glamour.TermRenderer
}

func (r *termRenderer) render(content string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tr.Render(content)
}

// rendererCache keeps one renderer per distinct set of options.
type rendererCache struct {
	mu     sync.Mutex
	byOpts map[Options]*termRenderer
}

var renderers = &rendererCache{byOpts: make(map[Options]*termRenderer)}

func (c *rendererCache) lookup(opts Options) (*termRenderer, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if r, ok := c.byOpts[opts]; ok {
		return r, nil
	}

	tr, err := newTermRenderer(opts)
	if err != nil {
		return nil, err
	}
	if len(c.byOpts) >= maxRenderers {
		clear(c.byOpts)
	}
	r := &termRenderer{tr: tr}
	c.byOpts[opts] = r
	return r, nil
}

func (c *rendererCache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.byOpts)
}

func newTermRenderer(opts Options) (*glamour.TermRenderer, error) {
	ropts := []glamour.TermRendererOption{
		glamour.WithStylePath(opts.Style),
		glamour.WithWordWrap(opts.Width),
		// The help text lays out key bindings one per line
		glamour.WithPreservedNewLines(),
	}
	if opts.EnableEmoji {
		ropts = append(ropts, glamour.WithEmoji())
	}
	return glamour.NewTermRenderer(ropts...)
}

// Markdown renders markdown for the terminal, reusing a cached renderer for
// the same options.
func Markdown(content string, opts Options) (string, error) {
	r, err := renderers.lookup(opts.normalized())
	if err != nil {
		return "", err
	}
	return r.render(content)
}
