package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/voice-notes/internal/views"
	"github.com/MKhiriev/voice-notes/models"
)

// todosScreen lists todos with completion, priority and search filters and a
// selectable ordering.
type todosScreen struct {
	ctx  context.Context
	list *views.TodoList

	idx           int
	loading       bool
	searching     bool
	search        textinput.Model
	form          *todoForm
	pendingDelete *models.Todo

	status string
	errMsg string
}

func newTodosScreen(ctx context.Context, list *views.TodoList) *todosScreen {
	search := textinput.New()
	search.Placeholder = "search title and description"
	search.Width = 40

	return &todosScreen{
		ctx:    ctx,
		list:   list,
		search: search,
	}
}

func (s *todosScreen) init() tea.Cmd {
	s.loading = true
	return s.cmdLoad()
}

func (s *todosScreen) capturing() bool {
	return s.searching || s.form != nil || s.pendingDelete != nil
}

func (s *todosScreen) current() (models.Todo, bool) {
	visible := s.list.Visible()
	if s.idx < 0 || s.idx >= len(visible) {
		return models.Todo{}, false
	}
	return visible[s.idx], true
}

func (s *todosScreen) clamp() {
	n := len(s.list.Visible())
	if s.idx >= n {
		s.idx = n - 1
	}
	if s.idx < 0 {
		s.idx = 0
	}
}

func (s *todosScreen) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case todosLoadedMsg:
		s.loading = false
		s.errMsg = humanizeError(msg.err)
		s.clamp()
		return nil

	case todoSavedMsg:
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
			s.status = "Todo added"
		} else {
			s.status = "Todo updated"
		}
		s.clamp()
		return nil

	case todoToggledMsg:
		s.errMsg = humanizeError(msg.err)
		if msg.err == nil {
			if msg.todo.IsCompleted {
				s.status = "Marked done"
			} else {
				s.status = "Marked open"
			}
		}
		s.clamp()
		return nil

	case todoDeletedMsg:
		s.errMsg = humanizeError(msg.err)
		if msg.err == nil {
			s.status = "Todo deleted"
		}
		s.clamp()
		return nil
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

func (s *todosScreen) updateList(msg tea.KeyMsg) tea.Cmd {
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
	case key.Matches(msg, keys.completed):
		f := s.list.Filter()
		f.Completed = nextCompletedFilter(f.Completed)
		s.list.SetFilter(f)
		s.clamp()
	case key.Matches(msg, keys.priority):
		f := s.list.Filter()
		f.Priority = nextPriorityFilter(f.Priority)
		s.list.SetFilter(f)
		s.clamp()
	case key.Matches(msg, keys.sort):
		s.status = "Sorted by " + sortLabel(s.list.NextSort())
	case key.Matches(msg, keys.reload):
		s.loading = true
		s.status = ""
		return s.cmdLoad()
	case key.Matches(msg, keys.newItem):
		s.form = newTodoForm(nil)
		s.status = ""
		return textinput.Blink
	case key.Matches(msg, keys.edit):
		if todo, ok := s.current(); ok {
			s.form = newTodoForm(&todo)
			s.status = ""
		}
	case key.Matches(msg, keys.complete), key.Matches(msg, keys.enter):
		if todo, ok := s.current(); ok {
			return s.cmdToggle(todo.ID)
		}
	case key.Matches(msg, keys.delete):
		if todo, ok := s.current(); ok {
			s.pendingDelete = &todo
		}
	}

	return nil
}

func (s *todosScreen) updateSearch(msg tea.KeyMsg) tea.Cmd {
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

func (s *todosScreen) applySearch() {
	f := s.list.Filter()
	f.Search = s.search.Value()
	s.list.SetFilter(f)
	s.clamp()
}

func (s *todosScreen) updateForm(msg tea.KeyMsg) tea.Cmd {
	form := s.form

	switch {
	case key.Matches(msg, keys.esc):
		s.form = nil
		return nil
	case key.Matches(msg, keys.save), key.Matches(msg, keys.enter):
		if form.editing() {
			update, err := form.update()
			if err != nil {
				form.errMsg = err.Error()
				return nil
			}
			return s.cmdUpdate(form.todoID, update)
		}

		draft, err := form.draft()
		if err != nil {
			form.errMsg = err.Error()
			return nil
		}
		return s.cmdCreate(draft)
	case key.Matches(msg, keys.tab):
		form.focus = moveFocus(form.inputs, form.focus, 1)
		return nil
	case key.Matches(msg, keys.backtab):
		form.focus = moveFocus(form.inputs, form.focus, -1)
		return nil
	case key.Matches(msg, keys.cycle):
		form.cyclePriority()
		return nil
	}

	return form.updateInput(msg)
}

func (s *todosScreen) updateConfirm(msg tea.KeyMsg) tea.Cmd {
	todo := s.pendingDelete

	switch {
	case key.Matches(msg, keys.yes):
		s.pendingDelete = nil
		return s.cmdDelete(todo.ID)
	case key.Matches(msg, keys.no):
		s.pendingDelete = nil
	}
	return nil
}

func (s *todosScreen) view() string {
	if s.pendingDelete != nil {
		return renderConfirm(s.pendingDelete.Title)
	}

	if s.form != nil {
		title := "New todo"
		if s.form.editing() {
			title = "Edit todo"
		}
		return titleStyle.Render(title) + "\n\n" + s.form.view() +
			"\n\n" + helpStyle.Render("enter/ctrl+s: save │ ctrl+t: priority │ tab: next field │ esc: cancel")
	}

	var b strings.Builder
	f := s.list.Filter()

	b.WriteString(todosFilterLine(f, s.list.Sort()))
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
		b.WriteString("No todos yet. Press n to add one.\n")
	case len(visible) == 0:
		b.WriteString("No todos match the filters.\n")
	default:
		for i, todo := range visible {
			b.WriteString(renderTodoRow(todo, i == s.idx))
			b.WriteString("\n")
		}
	}

	renderFeedback(&b, s.status, s.errMsg)
	return strings.TrimRight(b.String(), "\n")
}

func todosFilterLine(f models.TodoFilter, sortBy models.TodoSortKey) string {
	state := "all"
	if f.Completed != nil {
		state = "open"
		if *f.Completed {
			state = "done"
		}
	}
	priority := "all"
	if f.Priority != "" {
		priority = string(f.Priority)
	}
	return fmt.Sprintf("Showing: %s │ Priority: %s │ Sort: %s", state, priority, sortLabel(sortBy))
}

func renderTodoRow(todo models.Todo, selected bool) string {
	cursor := "  "
	if selected {
		cursor = "> "
	}
	check := "[ ]"
	if todo.IsCompleted {
		check = "[x]"
	}

	row := fmt.Sprintf("%s%s %-8s %-16s %s", cursor, check, string(todo.Priority), formatDate(todo.DueDate), fitText(todo.Title, 40))
	if todo.ReminderDate != nil && !todo.ReminderSent {
		row += "  (remind " + formatDate(todo.ReminderDate) + ")"
	}

	switch {
	case selected:
		return selectedStyle.Render(row)
	case todo.IsCompleted:
		return doneStyle.Render(row)
	default:
		return row
	}
}

// nextCompletedFilter cycles all -> open -> done -> all.
func nextCompletedFilter(c *bool) *bool {
	switch {
	case c == nil:
		open := false
		return &open
	case !*c:
		done := true
		return &done
	default:
		return nil
	}
}

// nextPriorityFilter cycles all -> high -> medium -> low -> all.
func nextPriorityFilter(p models.Priority) models.Priority {
	switch p {
	case "":
		return models.PriorityHigh
	case models.PriorityHigh:
		return models.PriorityMedium
	case models.PriorityMedium:
		return models.PriorityLow
	default:
		return ""
	}
}

func sortLabel(k models.TodoSortKey) string {
	return strings.ReplaceAll(string(k), "_", " ")
}

func (s *todosScreen) cmdLoad() tea.Cmd {
	ctx, list := s.ctx, s.list
	return func() tea.Msg {
		return todosLoadedMsg{err: list.Load(ctx)}
	}
}

func (s *todosScreen) cmdCreate(draft models.TodoDraft) tea.Cmd {
	ctx, list := s.ctx, s.list
	return func() tea.Msg {
		todo, err := list.Create(ctx, draft)
		return todoSavedMsg{todo: todo, created: true, err: err}
	}
}

func (s *todosScreen) cmdUpdate(todoID string, update models.TodoUpdate) tea.Cmd {
	ctx, list := s.ctx, s.list
	return func() tea.Msg {
		todo, err := list.Update(ctx, todoID, update)
		return todoSavedMsg{todo: todo, err: err}
	}
}

func (s *todosScreen) cmdToggle(todoID string) tea.Cmd {
	ctx, list := s.ctx, s.list
	return func() tea.Msg {
		todo, err := list.ToggleComplete(ctx, todoID)
		return todoToggledMsg{todo: todo, err: err}
	}
}

func (s *todosScreen) cmdDelete(todoID string) tea.Cmd {
	ctx, list := s.ctx, s.list
	return func() tea.Msg {
		return todoDeletedMsg{err: list.Delete(ctx, todoID)}
	}
}
