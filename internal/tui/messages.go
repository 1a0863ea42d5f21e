package tui

import "github.com/jmoreno/datebook/models"

// NavigateTo switches the active page of the root router. An optional Payload
// is delivered to the target page after the switch.
type NavigateTo struct {
	Page    string
	Payload any
}

// AuthResult finishes the login/register flow. A nil Err means the principal
// is signed in and the flow can close.
type AuthResult struct {
	Principal models.Principal
	Err       error
}

type listsLoadedMsg struct{}

type personSavedMsg struct {
	person models.Person
	err    error
}

type dateSavedMsg struct {
	date models.DateRecord
	err  error
}

type personUpdatedMsg struct {
	err error
}
