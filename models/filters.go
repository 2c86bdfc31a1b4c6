package models

// NoteFilter selects which notes are displayed. Zero values mean "any".
type NoteFilter struct {
	// Category keeps notes of exactly this category. Empty keeps all.
	Category Category `json:"category,omitempty"`

	// Search is matched case-insensitively against the content and every tag.
	Search string `json:"q,omitempty"`

	// Archived keeps only archived (true) or active (false) notes. Nil keeps both.
	Archived *bool `json:"archived,omitempty"`
}

// TodoFilter selects which todos are displayed. Zero values mean "any".
type TodoFilter struct {
	// Search is matched case-insensitively against title and description.
	Search string `json:"q,omitempty"`

	// Completed keeps only completed (true) or open (false) todos. Nil keeps both.
	Completed *bool `json:"completed,omitempty"`

	// Priority keeps todos of exactly this priority. Empty keeps all.
	Priority Priority `json:"priority,omitempty"`
}

// TodoSortKey names a todo ordering.
type TodoSortKey string

const (
	// SortByDueDate orders by due date ascending; undated todos go last.
	SortByDueDate TodoSortKey = "due_date"

	// SortByPriority orders high > medium > low, stable within a level.
	SortByPriority TodoSortKey = "priority"

	// SortByCreatedAt orders newest first.
	SortByCreatedAt TodoSortKey = "created_at"
)

// TodoSortKeys lists the orderings in the order the client cycles them.
var TodoSortKeys = []TodoSortKey{SortByDueDate, SortByPriority, SortByCreatedAt}

// IsValid reports whether k is a known ordering.
func (k TodoSortKey) IsValid() bool {
	switch k {
	case SortByDueDate, SortByPriority, SortByCreatedAt:
		return true
	default:
		return false
	}
}
