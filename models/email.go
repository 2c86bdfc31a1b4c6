// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Email is a row of the outbound email queue. A separate mailer drains the
// queue; this service only enqueues.
type Email struct {
	ID        string    `json:"id"`
	To        string    `json:"to"`
	Subject   string    `json:"subject"`
	HTML      string    `json:"html"`
	CreatedAt time.Time `json:"created_at"`
}

// DueReminder is a todo whose reminder falls inside the dispatch window,
// joined with the owner's email.
type DueReminder struct {
	Todo       Todo
	OwnerEmail string
}

// DispatchResult is the outcome of one dispatcher invocation.
type DispatchResult struct {
	// Selected is the number of todos found inside the window.
	Selected int `json:"selected"`

	// Processed is the number of reminders claimed and enqueued by this run.
	Processed int `json:"processed"`

	// Skipped counts todos claimed concurrently by another run.
	Skipped int `json:"skipped"`
}
