package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/voice-notes/models"
)

// categoryOptions is what ctrl+t cycles through; "" means no category.
var categoryOptions = append([]models.Category{""}, models.Categories...)

// noteForm composes a new note or edits an existing one. The content can be
// typed or dictated; every dictated transcript replaces the content.
type noteForm struct {
	ctx       context.Context
	dictation Dictation

	noteID   string
	content  textarea.Model
	tags     textinput.Model
	category int
	focus    int

	feed         *dictationFeed
	recording    bool
	dictationMsg string
	errMsg       string
}

func newNoteForm(ctx context.Context, dictation Dictation, note *models.Note) *noteForm {
	content := textarea.New()
	content.Placeholder = "Type or press ctrl+r to dictate"
	content.ShowLineNumbers = false
	content.SetWidth(60)
	content.SetHeight(6)
	content.Focus()

	tags := textinput.New()
	tags.Placeholder = "comma separated tags"
	tags.Width = 40

	f := &noteForm{
		ctx:       ctx,
		dictation: dictation,
		content:   content,
		tags:      tags,
	}

	if note != nil {
		f.noteID = note.ID
		f.content.SetValue(note.Content)
		f.tags.SetValue(strings.Join(note.Tags, ", "))
		for i, c := range categoryOptions {
			if c == note.Category {
				f.category = i
			}
		}
	}

	if dictation == nil {
		f.dictationMsg = "Dictation is not configured."
	} else if err := dictation.Disabled(); err != nil {
		f.dictationMsg = humanizeError(err)
	}

	return f
}

func (f *noteForm) editing() bool { return f.noteID != "" }

func (f *noteForm) selectedCategory() models.Category {
	return categoryOptions[f.category]
}

func (f *noteForm) draft() models.NoteDraft {
	return models.NoteDraft{
		Content:  strings.TrimSpace(f.content.Value()),
		Category: f.selectedCategory(),
		Tags:     splitTags(f.tags.Value()),
	}
}

func (f *noteForm) update() models.NoteUpdate {
	d := f.draft()
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	return models.NoteUpdate{
		Content:  &d.Content,
		Category: &d.Category,
		Tags:     &tags,
	}
}

func splitTags(raw string) []string {
	return models.NormalizeTags(strings.Split(raw, ","))
}

func (f *noteForm) cycleCategory() {
	f.category = (f.category + 1) % len(categoryOptions)
}

func (f *noteForm) switchFocus() {
	if f.focus == 0 {
		f.focus = 1
		f.content.Blur()
		f.tags.Focus()
		return
	}
	f.focus = 0
	f.tags.Blur()
	f.content.Focus()
}

// toggleDictation starts recording, retrying a disabled session, or stops
// the running one.
func (f *noteForm) toggleDictation() tea.Cmd {
	if f.dictation == nil {
		return nil
	}

	if f.recording {
		return cmdStopDictation(f.dictation)
	}

	if f.dictation.Disabled() != nil {
		f.dictation.Retry()
	}

	f.dictationMsg = "Starting microphone..."
	f.feed = newDictationFeed()
	return cmdStartDictation(f.ctx, f.dictation, f.feed)
}

// stopDictation returns the command that ends a running recording, nil
// when idle.
func (f *noteForm) stopDictation() tea.Cmd {
	if f.dictation == nil || !f.recording {
		return nil
	}
	return cmdStopDictation(f.dictation)
}

func (f *noteForm) handleDictation(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case dictationStartedMsg:
		if msg.feed != f.feed {
			return nil, true
		}
		if msg.err != nil {
			f.recording = false
			f.dictationMsg = humanizeError(msg.err)
			return nil, true
		}
		f.recording = true
		f.dictationMsg = "Recording... ctrl+r to stop"
		return f.feed.next(), true

	case transcriptMsg:
		if msg.feed != f.feed {
			return nil, true
		}
		f.content.SetValue(msg.text)
		return f.feed.next(), true

	case dictationStoppedMsg:
		if msg.feed != f.feed {
			return nil, true
		}
		if msg.text != "" {
			f.content.SetValue(msg.text)
		}
		f.recording = false
		f.feed = nil
		f.dictationMsg = ""
		if msg.err != nil {
			f.dictationMsg = humanizeError(msg.err)
		}
		return nil, true
	}

	return nil, false
}

// updateInput forwards msg to the focused widget.
func (f *noteForm) updateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if f.focus == 0 {
		f.content, cmd = f.content.Update(msg)
	} else {
		f.tags, cmd = f.tags.Update(msg)
	}
	return cmd
}

func (f *noteForm) view() string {
	var b strings.Builder

	b.WriteString("Content:\n")
	b.WriteString(f.content.View())
	b.WriteString("\n\nCategory: ")
	b.WriteString(categoryLabel(f.selectedCategory()))
	b.WriteString("\nTags:     [")
	b.WriteString(f.tags.View())
	b.WriteString("]\n")

	if f.dictationMsg != "" {
		b.WriteString("\nDictation: ")
		b.WriteString(f.dictationMsg)
		b.WriteString("\n")
	}
	renderFeedback(&b, "", f.errMsg)

	return strings.TrimRight(b.String(), "\n")
}

func categoryLabel(c models.Category) string {
	if c == "" {
		return "none"
	}
	return string(c)
}
