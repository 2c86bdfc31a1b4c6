// Package views holds the list logic shared by the terminal client and the
// API: filtering and ordering of notes and todos, and the NoteList/TodoList
// state containers that keep a fetched set in sync with the backend.
//
// Filtering and sorting are pure functions over the full fetched set. They
// never mutate their input and keep the original relative order of items
// that compare equal.
package views
