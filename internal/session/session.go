// Package session tracks the one in-flight retitle, if any.
package session

import "github.com/idilsaglam/tick/internal/model"

// Committer is the slice of the store an edit session needs.
type Committer interface {
	Edit(id, rawTitle string)
}

// Session holds the provisional text of the item being retitled.
// At most one edit is active at a time; the text only reaches the
// store on Save, never on Cancel.
type Session struct {
	active bool
	id     string
	text   string
}

// Start begins editing the given item, seeding the provisional text
// with its current title.
func (s *Session) Start(it model.Item) {
	s.active = true
	s.id = it.ID
	s.text = it.Title
}

// SetText replaces the provisional text. Ignored while idle.
func (s *Session) SetText(text string) {
	if !s.active {
		return
	}
	s.text = text
}

// Save commits the provisional text through the store and ends the
// session. Blank text abandons the edit the same way Cancel does.
func (s *Session) Save(st Committer) {
	if !s.active {
		return
	}
	st.Edit(s.id, s.text)
	*s = Session{}
}

// Cancel discards the provisional text without touching the store.
func (s *Session) Cancel() {
	*s = Session{}
}

func (s *Session) Active() bool { return s.active }
func (s *Session) ID() string   { return s.id }
func (s *Session) Text() string { return s.text }
