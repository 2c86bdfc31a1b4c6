// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"strings"
	"time"
)

// Category classifies a note. The zero value means "uncategorized".
type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryIdeas    Category = "ideas"
	CategoryMeetings Category = "meetings"
	CategoryOther    Category = "other"
)

// Categories lists every assignable category in display order.
var Categories = []Category{
	CategoryWork,
	CategoryPersonal,
	CategoryIdeas,
	CategoryMeetings,
	CategoryOther,
}

// IsValid reports whether c is one of the known categories.
// The empty category is valid and means "no category".
func (c Category) IsValid() bool {
	return c == "" || slices.Contains(Categories, c)
}

// Note is a free-text (usually dictated) note owned by a single user.
type Note struct {
	// ID is the server-assigned UUID of the note.
	ID string `json:"id"`

	// UserID is the owner of the note. Every query is scoped by it.
	UserID string `json:"user_id"`

	// Content is the raw transcript or typed text. Must be non-empty at creation.
	Content string `json:"content"`

	// Category is optional; empty means uncategorized.
	Category Category `json:"category,omitempty"`

	// Tags is an optional set of free-form labels.
	Tags []string `json:"tags,omitempty"`

	// IsArchived hides the note from the active list.
	IsArchived bool `json:"is_archived"`

	// AudioURL is an opaque reference to a recording stored elsewhere.
	AudioURL string `json:"audio_url,omitempty"`

	// FormattedContent is an optional rendered version of Content.
	FormattedContent string `json:"formatted_content,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// NoteDraft carries the user-supplied fields of a new note.
type NoteDraft struct {
	Content          string   `json:"content" validate:"required,notblank"`
	Category         Category `json:"category,omitempty" validate:"category"`
	Tags             []string `json:"tags,omitempty" validate:"dive,max=64"`
	AudioURL         string   `json:"audio_url,omitempty" validate:"omitempty,url"`
	FormattedContent string   `json:"formatted_content,omitempty"`
}

// NoteUpdate is a partial update of a note. Nil fields are left untouched.
type NoteUpdate struct {
	Content          *string   `json:"content,omitempty" validate:"omitnil,notblank"`
	Category         *Category `json:"category,omitempty" validate:"omitnil,category"`
	Tags             *[]string `json:"tags,omitempty" validate:"omitnil,dive,max=64"`
	IsArchived       *bool     `json:"is_archived,omitempty"`
	AudioURL         *string   `json:"audio_url,omitempty" validate:"omitnil,omitempty,url"`
	FormattedContent *string   `json:"formatted_content,omitempty"`
}

// IsEmpty reports whether the update carries no field at all.
func (u NoteUpdate) IsEmpty() bool {
	return u.Content == nil && u.Category == nil && u.Tags == nil &&
		u.IsArchived == nil && u.AudioURL == nil && u.FormattedContent == nil
}

// NormalizeTags trims tags, drops blank ones and removes duplicates while
// keeping the first occurrence order.
func NormalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}

	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}
