package views

import "errors"

var (
	ErrEmptyContent = errors.New("note content is empty")
	ErrEmptyTitle   = errors.New("todo title is empty")
)
