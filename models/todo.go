// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Priority is the urgency of a todo.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists priorities from lowest to highest.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// Rank orders priorities: high > medium > low. Unknown values rank lowest.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// IsValid reports whether p is a known priority.
func (p Priority) IsValid() bool {
	return p.Rank() > 0
}

// Todo is an actionable item with optional due date and reminder.
type Todo struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	IsCompleted bool       `json:"is_completed"`
	Priority    Priority   `json:"priority"`
	DueDate     *time.Time `json:"due_date,omitempty"`

	// ReminderDate is when the owner wants to be notified by email.
	ReminderDate *time.Time `json:"reminder_date,omitempty"`

	// ReminderSent flips false->true once the dispatcher has claimed the
	// reminder. It is reset whenever ReminderDate changes.
	ReminderSent bool `json:"reminder_sent"`

	CreatedAt time.Time `json:"created_at"`
}

// TodoDraft carries the user-supplied fields of a new todo.
type TodoDraft struct {
	Title        string     `json:"title" validate:"required,notblank,max=512"`
	Description  string     `json:"description,omitempty"`
	Priority     Priority   `json:"priority,omitempty" validate:"omitempty,priority"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	ReminderDate *time.Time `json:"reminder_date,omitempty"`
}

// TodoUpdate is a partial update of a todo. Nil fields are left untouched.
//
// ClearDueDate and ClearReminder remove the corresponding timestamps; they win
// over DueDate/ReminderDate when both are given.
type TodoUpdate struct {
	Title         *string    `json:"title,omitempty" validate:"omitnil,notblank,max=512"`
	Description   *string    `json:"description,omitempty"`
	IsCompleted   *bool      `json:"is_completed,omitempty"`
	Priority      *Priority  `json:"priority,omitempty" validate:"omitnil,priority"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	ClearDueDate  bool       `json:"clear_due_date,omitempty"`
	ReminderDate  *time.Time `json:"reminder_date,omitempty"`
	ClearReminder bool       `json:"clear_reminder,omitempty"`
}

// IsEmpty reports whether the update carries no change.
func (u TodoUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.IsCompleted == nil &&
		u.Priority == nil && u.DueDate == nil && !u.ClearDueDate &&
		u.ReminderDate == nil && !u.ClearReminder
}

// TouchesReminder reports whether the update changes the reminder timestamp,
// in which case the reminder must be re-armed.
func (u TodoUpdate) TouchesReminder() bool {
	return u.ReminderDate != nil || u.ClearReminder
}
