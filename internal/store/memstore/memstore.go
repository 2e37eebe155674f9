package memstore

import (
	"strings"

	"github.com/google/uuid"

	"github.com/idilsaglam/tick/internal/model"
)

// In-memory storage. Single ordered list, lives for the session.
// No locking; there is exactly one owner (the UI event loop).

// TitleLimit caps stored titles, in runes.
const TitleLimit = 80

// Op names the kind of mutation carried by an Event.
type Op string

const (
	OpAdd    Op = "add"
	OpToggle Op = "toggle"
	OpEdit   Op = "edit"
	OpDelete Op = "delete"
)

// Event describes one applied mutation.
type Event struct {
	Op Op
	ID string
}

// Store holds todo items in insertion order. Every operation is
// synchronous and total: blank input and unknown ids are silent
// no-ops, never errors.
type Store struct {
	items []model.Item
	subs  []func(Event)
}

func New() *Store { return &Store{} }

// Subscribe registers fn to run after each applied mutation, in
// registration order. Silent no-ops do not notify.
func (s *Store) Subscribe(fn func(Event)) {
	s.subs = append(s.subs, fn)
}

func (s *Store) notify(op Op, id string) {
	for _, fn := range s.subs {
		fn(Event{Op: op, ID: id})
	}
}

// Add appends a new pending item with the trimmed title.
func (s *Store) Add(rawTitle string) {
	title := cleanTitle(rawTitle)
	if title == "" {
		return
	}
	it := model.Item{ID: uuid.NewString(), Title: title}
	s.items = append(s.items, it)
	s.notify(OpAdd, it.ID)
}

// Toggle flips the done flag of the item with the given id.
func (s *Store) Toggle(id string) {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Done = !s.items[i].Done
			s.notify(OpToggle, id)
			return
		}
	}
}

// Edit replaces the title of the item with the given id. The done
// flag and the item's position are untouched; a blank title leaves
// the item as it was.
func (s *Store) Edit(id, rawTitle string) {
	title := cleanTitle(rawTitle)
	if title == "" {
		return
	}
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Title = title
			s.notify(OpEdit, id)
			return
		}
	}
}

// Delete removes the item with the given id; the rest keep their
// relative order.
func (s *Store) Delete(id string) {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.notify(OpDelete, id)
			return
		}
	}
}

// Items returns a copy of the list in insertion order.
func (s *Store) Items() []model.Item {
	out := make([]model.Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Len() int { return len(s.items) }

// Get looks up one item by id.
func (s *Store) Get(id string) (model.Item, bool) {
	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return model.Item{}, false
}

// Stats counts done and pending items for the header.
func (s *Store) Stats() (done, pending int) {
	for _, it := range s.items {
		if it.Done {
			done++
		} else {
			pending++
		}
	}
	return
}

// cleanTitle trims whitespace and clamps to TitleLimit runes.
func cleanTitle(raw string) string {
	t := strings.TrimSpace(raw)
	if r := []rune(t); len(r) > TitleLimit {
		t = strings.TrimSpace(string(r[:TitleLimit]))
	}
	return t
}
