package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/voice-notes/internal/views"
	"github.com/MKhiriev/voice-notes/models"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// notesScreen lists notes with search, category and archive filters and
// hosts the note form.
type notesScreen struct {
	ctx       context.Context
	list      *views.NoteList
	dictation Dictation

	idx           int
	loading       bool
	searching     bool
	search        textinput.Model
	form          *noteForm
	pendingDelete *models.Note

	status string
	errMsg string
}

func newNotesScreen(ctx context.Context, list *views.NoteList, dictation Dictation) *notesScreen {
	search := textinput.New()
	search.Placeholder = "search content and tags"
	search.Width = 40

	active := false
	list.SetFilter(models.NoteFilter{Archived: &active})

	return &notesScreen{
		ctx:       ctx,
		list:      list,
		dictation: dictation,
		search:    search,
	}
}

func (s *notesScreen) init() tea.Cmd {
	s.loading = true
	return s.cmdLoad()
}

// capturing reports whether the screen wants every key, including the ones
// the main loop would otherwise handle.
func (s *notesScreen) capturing() bool {
	return s.searching || s.form != nil || s.pendingDelete != nil
}

func (s *notesScreen) current() (models.Note, bool) {
	visible := s.list.Visible()
	if s.idx < 0 || s.idx >= len(visible) {
		return models.Note{}, false
	}
	return visible[s.idx], true
}

func (s *notesScreen) clamp() {
	n := len(s.list.Visible())
	if s.idx >= n {
		s.idx = n - 1
	}
	if s.idx < 0 {
		s.idx = 0
	}
}

func (s *notesScreen) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case notesLoadedMsg:
		s.loading = false
		s.errMsg = humanizeError(msg.err)
		s.clamp()
		return nil

	case noteSavedMsg:
		if msg.err != nil {
			if s.form != nil {
				s.form.errMsg = humanizeError(msg.err)
			} else {
				s.errMsg = humanizeError(msg.err)
			}
			return nil
		}
		s.form = nil
		s.errMsg = ""
		if msg.created {
			s.status = "Note saved"
		} else {
			s.status = "Note updated"
		}
		s.clamp()
		return nil

	case noteArchivedMsg:
		s.errMsg = humanizeError(msg.err)
		if msg.err == nil {
			if msg.note.IsArchived {
				s.status = "Note archived"
			} else {
				s.status = "Note restored"
			}
		}
		s.clamp()
		return nil

	case noteDeletedMsg:
		s.errMsg = humanizeError(msg.err)
		if msg.err == nil {
			s.status = "Note deleted"
		}
		s.clamp()
		return nil
	}

	if s.form != nil {
		if cmd, handled := s.form.handleDictation(msg); handled {
			return cmd
		}
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if s.form != nil {
			return s.form.updateInput(msg)
		}
		return nil
	}

	switch {
	case s.pendingDelete != nil:
		return s.updateConfirm(keyMsg)
	case s.form != nil:
		return s.updateForm(keyMsg)
	case s.searching:
		return s.updateSearch(keyMsg)
	}

	return s.updateList(keyMsg)
}

func (s *notesScreen) updateList(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.up):
		if s.idx > 0 {
			s.idx--
		}
	case key.Matches(msg, keys.down):
		if s.idx < len(s.list.Visible())-1 {
			s.idx++
		}
	case key.Matches(msg, keys.search):
		s.searching = true
		return s.search.Focus()
	case key.Matches(msg, keys.category):
		f := s.list.Filter()
		f.Category = nextCategoryFilter(f.Category)
		s.list.SetFilter(f)
		s.clamp()
	case key.Matches(msg, keys.archived):
		f := s.list.Filter()
		showArchived := f.Archived == nil || !*f.Archived
		f.Archived = &showArchived
		s.list.SetFilter(f)
		s.idx = 0
	case key.Matches(msg, keys.reload):
		s.loading = true
		s.status = ""
		return s.cmdLoad()
	case key.Matches(msg, keys.newItem):
		s.form = newNoteForm(s.ctx, s.dictation, nil)
		s.status = ""
		return textarea.Blink
	case key.Matches(msg, keys.edit):
		if note, ok := s.current(); ok {
			s.form = newNoteForm(s.ctx, s.dictation, &note)
			s.status = ""
		}
	case key.Matches(msg, keys.archive):
		if note, ok := s.current(); ok {
			return s.cmdToggleArchive(note.ID)
		}
	case key.Matches(msg, keys.delete):
		if note, ok := s.current(); ok {
			s.pendingDelete = &note
		}
	case key.Matches(msg, keys.share):
		note, ok := s.current()
		if !ok {
			s.status = "Nothing to copy"
			return nil
		}
		if err := writeClipboard(shareText(note)); err != nil {
			s.errMsg = "Copy failed: " + err.Error()
			return nil
		}
		s.errMsg = ""
		s.status = "Note copied to clipboard"
	}

	return nil
}

func (s *notesScreen) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.esc):
		s.search.SetValue("")
		s.searching = false
		s.search.Blur()
	case key.Matches(msg, keys.enter):
		s.searching = false
		s.search.Blur()
		return nil
	default:
		var cmd tea.Cmd
		s.search, cmd = s.search.Update(msg)
		s.applySearch()
		return cmd
	}

	s.applySearch()
	return nil
}

func (s *notesScreen) applySearch() {
	f := s.list.Filter()
	f.Search = s.search.Value()
	s.list.SetFilter(f)
	s.clamp()
}

func (s *notesScreen) updateForm(msg tea.KeyMsg) tea.Cmd {
	form := s.form

	switch {
	case key.Matches(msg, keys.esc):
		s.form = nil
		return form.stopDictation()
	case key.Matches(msg, keys.save):
		cmds := []tea.Cmd{form.stopDictation()}
		if form.editing() {
			cmds = append(cmds, s.cmdUpdate(form.noteID, form.update()))
		} else {
			cmds = append(cmds, s.cmdCreate(form.draft()))
		}
		return tea.Batch(cmds...)
	case key.Matches(msg, keys.tab):
		form.switchFocus()
		return nil
	case key.Matches(msg, keys.cycle):
		form.cycleCategory()
		return nil
	case key.Matches(msg, keys.dictate):
		return form.toggleDictation()
	}

	return form.updateInput(msg)
}

func (s *notesScreen) updateConfirm(msg tea.KeyMsg) tea.Cmd {
	note := s.pendingDelete

	switch {
	case key.Matches(msg, keys.yes):
		s.pendingDelete = nil
		return s.cmdDelete(note.ID)
	case key.Matches(msg, keys.no):
		s.pendingDelete = nil
	}
	return nil
}

func (s *notesScreen) view() string {
	if s.pendingDelete != nil {
		return renderConfirm(s.pendingDelete.Content)
	}

	if s.form != nil {
		title := "New note"
		if s.form.editing() {
			title = "Edit note"
		}
		return titleStyle.Render(title) + "\n\n" + s.form.view() +
			"\n\n" + helpStyle.Render("ctrl+s: save │ ctrl+r: dictate │ ctrl+t: category │ tab: tags │ esc: cancel")
	}

	var b strings.Builder
	f := s.list.Filter()

	b.WriteString(notesFilterLine(f))
	b.WriteString("\n")
	if s.searching || f.Search != "" {
		b.WriteString("Search: [")
		b.WriteString(s.search.View())
		b.WriteString("]\n")
	}
	b.WriteString("\n")

	visible := s.list.Visible()
	switch {
	case s.loading:
		b.WriteString("Loading...\n")
	case len(visible) == 0 && len(s.list.All()) == 0:
		b.WriteString("No notes yet. Press n to create one.\n")
	case len(visible) == 0:
		b.WriteString("No notes match the filters.\n")
	default:
		for i, note := range visible {
			b.WriteString(renderNoteRow(note, i == s.idx))
			b.WriteString("\n")
		}
	}

	renderFeedback(&b, s.status, s.errMsg)
	return strings.TrimRight(b.String(), "\n")
}

func notesFilterLine(f models.NoteFilter) string {
	view := "active"
	if f.Archived != nil && *f.Archived {
		view = "archived"
	}
	category := "all"
	if f.Category != "" {
		category = string(f.Category)
	}
	return fmt.Sprintf("Showing: %s │ Category: %s", view, category)
}

func renderNoteRow(note models.Note, selected bool) string {
	cursor := "  "
	if selected {
		cursor = "> "
	}

	row := fmt.Sprintf("%s%-10s %s  %s", cursor, "["+categoryLabel(note.Category)+"]", note.CreatedAt.Local().Format(dateLayout), fitText(note.Content, 48))
	if len(note.Tags) > 0 {
		row += "  #" + strings.Join(note.Tags, " #")
	}
	if selected {
		return selectedStyle.Render(row)
	}
	return row
}

// nextCategoryFilter cycles all -> each category -> all.
func nextCategoryFilter(c models.Category) models.Category {
	for i, option := range categoryOptions {
		if option == c {
			return categoryOptions[(i+1)%len(categoryOptions)]
		}
	}
	return ""
}

// shareText is what "share" puts on the clipboard.
func shareText(note models.Note) string {
	text := note.Content
	if len(note.Tags) > 0 {
		text += "\n\n#" + strings.Join(note.Tags, " #")
	}
	return text
}

func (s *notesScreen) cmdLoad() tea.Cmd {
	ctx, list := s.ctx, s.list
	return func() tea.Msg {
		return notesLoadedMsg{err: list.Load(ctx)}
	}
}

func (s *notesScreen) cmdCreate(draft models.NoteDraft) tea.Cmd {
	ctx, list := s.ctx, s.list
	return func() tea.Msg {
		note, err := list.Create(ctx, draft)
		return noteSavedMsg{note: note, created: true, err: err}
	}
}

func (s *notesScreen) cmdUpdate(noteID string, update models.NoteUpdate) tea.Cmd {
	ctx, list := s.ctx, s.list
	return func() tea.Msg {
		note, err := list.Update(ctx, noteID, update)
		return noteSavedMsg{note: note, err: err}
	}
}

func (s *notesScreen) cmdToggleArchive(noteID string) tea.Cmd {
	ctx, list := s.ctx, s.list
	return func() tea.Msg {
		note, err := list.ToggleArchive(ctx, noteID)
		return noteArchivedMsg{note: note, err: err}
	}
}

func (s *notesScreen) cmdDelete(noteID string) tea.Cmd {
	ctx, list := s.ctx, s.list
	return func() tea.Msg {
		return noteDeletedMsg{err: list.Delete(ctx, noteID)}
	}
}

// shutdown stops a running recording before the program exits.
func (s *notesScreen) shutdown() tea.Cmd {
	if s.form == nil {
		return nil
	}
	return s.form.stopDictation()
}
