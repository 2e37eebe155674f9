package memstore

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddAppendsInOrder(t *testing.T) {
	s := New()
	s.Add("Buy milk")
	s.Add("Walk dog")
	s.Add("Write report")

	items := s.Items()
	require.Len(t, items, 3)
	require.Equal(t, "Buy milk", items[0].Title)
	require.Equal(t, "Walk dog", items[1].Title)
	require.Equal(t, "Write report", items[2].Title)
	for _, it := range items {
		require.NotEmpty(t, it.ID)
		require.False(t, it.Done)
	}
}

func TestAddTrimsTitle(t *testing.T) {
	s := New()
	s.Add("  Buy milk  ")
	require.Equal(t, "Buy milk", s.Items()[0].Title)
}

func TestAddBlankIsNoOp(t *testing.T) {
	s := New()
	s.Add("")
	s.Add("   ")
	s.Add("\t\n")
	require.Equal(t, 0, s.Len())
}

func TestAddClampsLongTitle(t *testing.T) {
	s := New()
	s.Add(strings.Repeat("x", 200))
	require.Len(t, []rune(s.Items()[0].Title), TitleLimit)
}

func TestIDsAreUnique(t *testing.T) {
	s := New()
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		s.Add("task")
	}
	for _, it := range s.Items() {
		require.False(t, seen[it.ID], "duplicate id %s", it.ID)
		seen[it.ID] = true
	}
}

func TestToggleFlipsOnlyTarget(t *testing.T) {
	s := New()
	s.Add("first")
	s.Add("second")
	id := s.Items()[0].ID

	s.Toggle(id)
	items := s.Items()
	require.True(t, items[0].Done)
	require.False(t, items[1].Done)
	require.Equal(t, "first", items[0].Title)
	require.Equal(t, "second", items[1].Title)

	// toggling twice restores the original state
	s.Toggle(id)
	require.False(t, s.Items()[0].Done)
}

func TestToggleUnknownIDIsNoOp(t *testing.T) {
	s := New()
	s.Add("only")
	before := s.Items()
	s.Toggle("nope")
	require.Equal(t, before, s.Items())
}

func TestEditReplacesTitleInPlace(t *testing.T) {
	s := New()
	s.Add("Walk dog")
	s.Add("Buy milk")
	it := s.Items()[0]
	s.Toggle(it.ID)

	s.Edit(it.ID, "  Walk the dog  ")
	items := s.Items()
	require.Equal(t, "Walk the dog", items[0].Title)
	require.Equal(t, it.ID, items[0].ID)
	require.True(t, items[0].Done)
	require.Equal(t, "Buy milk", items[1].Title)
}

func TestEditBlankAbandons(t *testing.T) {
	s := New()
	s.Add("keep me")
	id := s.Items()[0].ID
	s.Edit(id, "   ")
	require.Equal(t, "keep me", s.Items()[0].Title)
}

func TestEditUnknownIDIsNoOp(t *testing.T) {
	s := New()
	s.Add("only")
	before := s.Items()
	s.Edit("nope", "new title")
	require.Equal(t, before, s.Items())
}

func TestDeleteRemovesExactlyOne(t *testing.T) {
	s := New()
	s.Add("a")
	s.Add("b")
	s.Add("c")
	id := s.Items()[1].ID

	s.Delete(id)
	items := s.Items()
	require.Len(t, items, 2)
	require.Equal(t, "a", items[0].Title)
	require.Equal(t, "c", items[1].Title)

	s.Delete("nope")
	require.Equal(t, 2, s.Len())
}

func TestGet(t *testing.T) {
	s := New()
	s.Add("findable")
	id := s.Items()[0].ID

	it, ok := s.Get(id)
	require.True(t, ok)
	require.Equal(t, "findable", it.Title)

	_, ok = s.Get("missing")
	require.False(t, ok)
}

func TestStats(t *testing.T) {
	s := New()
	s.Add("a")
	s.Add("b")
	s.Add("c")
	s.Toggle(s.Items()[0].ID)

	done, pending := s.Stats()
	require.Equal(t, 1, done)
	require.Equal(t, 2, pending)
}

func TestSubscribeSeesEveryMutation(t *testing.T) {
	s := New()
	var events []Event
	s.Subscribe(func(ev Event) { events = append(events, ev) })

	s.Add("task")
	id := s.Items()[0].ID
	s.Toggle(id)
	s.Edit(id, "renamed")
	s.Delete(id)

	require.Len(t, events, 4)
	require.Equal(t, OpAdd, events[0].Op)
	require.Equal(t, OpToggle, events[1].Op)
	require.Equal(t, OpEdit, events[2].Op)
	require.Equal(t, OpDelete, events[3].Op)
	for _, ev := range events {
		require.Equal(t, id, ev.ID)
	}
}

func TestNoOpsDoNotNotify(t *testing.T) {
	s := New()
	s.Add("task")
	id := s.Items()[0].ID

	calls := 0
	s.Subscribe(func(Event) { calls++ })

	s.Add("   ")
	s.Toggle("missing")
	s.Edit(id, "")
	s.Edit("missing", "title")
	s.Delete("missing")
	require.Equal(t, 0, calls)
}

// The walkthrough from the drawing board: add two, toggle the first,
// retitle the second, delete the first.
func TestScenario(t *testing.T) {
	s := New()

	s.Add("Buy milk")
	s.Add("Walk dog")
	items := s.Items()
	require.Equal(t, "Buy milk", items[0].Title)
	require.Equal(t, "Walk dog", items[1].Title)

	s.Toggle(items[0].ID)
	require.True(t, s.Items()[0].Done)
	require.False(t, s.Items()[1].Done)

	s.Edit(items[1].ID, "Walk the dog")
	require.Equal(t, "Walk the dog", s.Items()[1].Title)

	s.Delete(items[0].ID)
	final := s.Items()
	require.Len(t, final, 1)
	require.Equal(t, "Walk the dog", final[0].Title)
	require.False(t, final[0].Done)
}

func TestItemsReturnsCopy(t *testing.T) {
	s := New()
	s.Add("original")
	items := s.Items()
	items[0].Title = "mutated"
	require.Equal(t, "original", s.Items()[0].Title)
}
