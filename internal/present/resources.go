package present

import (
	"strings"

	"github.com/diogo/helpline/internal/models"
)

// ResourcesUnavailableText is the single entry shown when the catalog cannot be loaded.
const ResourcesUnavailableText = "Resources are unavailable right now."

// LineKind identifies an optional resource field.
type LineKind int

const (
	LinePhone LineKind = iota
	LineChat
	LineURL
	LineNotes
)

// ResourceLine is one optional field of a resource entry.
type ResourceLine struct {
	Kind  LineKind
	Label string // empty for notes
	Text  string
	Link  string // tel: or http(s) target, empty for notes
}

// ResourceEntry is the display form of a resource.
type ResourceEntry struct {
	Name        string
	Lines       []ResourceLine
	Unavailable bool
}

// FormatResource builds an entry with one line per present optional field,
// in the order phone, chat, more info, notes. Blank fields produce no line.
func FormatResource(r models.Resource) ResourceEntry {
	entry := ResourceEntry{Name: strings.TrimSpace(r.Name)}

	if phone := strings.TrimSpace(r.Phone); phone != "" {
		entry.Lines = append(entry.Lines, ResourceLine{Kind: LinePhone, Label: "Phone", Text: phone, Link: "tel:" + phone})
	}
	if chat := strings.TrimSpace(r.Chat); chat != "" {
		entry.Lines = append(entry.Lines, ResourceLine{Kind: LineChat, Label: "Chat", Text: chat, Link: chat})
	}
	if link := strings.TrimSpace(r.URL); link != "" {
		entry.Lines = append(entry.Lines, ResourceLine{Kind: LineURL, Label: "More info", Text: link, Link: link})
	}
	if notes := strings.TrimSpace(r.Notes); notes != "" {
		entry.Lines = append(entry.Lines, ResourceLine{Kind: LineNotes, Text: notes})
	}

	return entry
}

// FormatResources formats every resource, preserving order
func FormatResources(resources []models.Resource) []ResourceEntry {
	entries := make([]ResourceEntry, 0, len(resources))
	for _, r := range resources {
		entries = append(entries, FormatResource(r))
	}
	return entries
}

// UnavailableResources is the catalog shown when loading failed
func UnavailableResources() []ResourceEntry {
	return []ResourceEntry{{Name: ResourcesUnavailableText, Unavailable: true}}
}

// String returns the line as "Label: Text", or just the text for notes
func (l ResourceLine) String() string {
	if l.Label == "" {
		return l.Text
	}
	return l.Label + ": " + l.Text
}

// PlainText renders entries as plain text, one block per resource separated by
// blank lines. Used for clipboard export.
func PlainText(entries []ResourceEntry) string {
	blocks := make([]string, 0, len(entries))
	for _, e := range entries {
		lines := []string{e.Name}
		for _, l := range e.Lines {
			lines = append(lines, l.String())
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	return strings.Join(blocks, "\n\n")
}
