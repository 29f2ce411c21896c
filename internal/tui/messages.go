package tui

import "github.com/MKhiriev/go-note-keeper/internal/notebook"

// NavigateTo switches the [RootModel] to another registered page. An optional
// Payload is re-delivered to the target page after the switch.
type NavigateTo struct {
	Page    string
	Payload any
}

// AuthResult reports the outcome of an async login attempt. A nil Err ends
// the authentication program.
type AuthResult struct {
	Err      error
	Username string
}

// RegisterResult reports the outcome of an async registration attempt.
type RegisterResult struct {
	Err      error
	Username string
}

// RegisterSuccessNotice is shown on the menu page after a registration.
type RegisterSuccessNotice struct {
	Username string
}

type notesLoadedMsg struct {
	notes []notebook.Note
	err   error
}

type noteSavedMsg struct {
	err error
}

type noteDeletedMsg struct {
	err error
}

type copiedMsg struct {
	what string
}

type clearStatusMsg struct{}
