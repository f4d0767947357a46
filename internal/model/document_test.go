package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"BoardKeeper/internal/apperrors"
)

// buildWorkspace assembles a tree exercising every document field.
func buildWorkspace(t *testing.T) *Workspace {
	t.Helper()
	w := NewWorkspace("Home")
	b := w.Boards[0]
	todo, err := b.CreateList("Todo")
	require.NoError(t, err)
	done, err := b.CreateList("Done")
	require.NoError(t, err)
	require.NoError(t, b.SetCompleted("Done"))

	c, err := todo.CreateCard("groceries")
	require.NoError(t, err)
	c.SetDescription("milk, eggs")
	require.NoError(t, c.SetDeadline("2026-09-01"))
	require.NoError(t, c.SetPriority(4))
	_, err = done.CreateCard("taxes")
	require.NoError(t, err)

	_, err = w.CreateBoard("Empty Board")
	require.NoError(t, err)
	w.SelectBoard(1)

	w.Bin.AddList(NewList("Old"), "Home Board")
	w.Bin.AddCard(NewCard("stale"), "Home Board", "Todo")
	return w
}

func TestDocument_RoundTrip(t *testing.T) {
	w := buildWorkspace(t)
	w.Touch()

	data, err := MarshalWorkspace(w)
	require.NoError(t, err)

	got, err := UnmarshalWorkspace(data)
	require.NoError(t, err)
	assert.Equal(t, w, got)
}

func TestDocument_RoundTrip_EmptySequences(t *testing.T) {
	w := NewWorkspace("Bare")
	require.NoError(t, w.RemoveBoard("Bare Board"))

	data, err := MarshalWorkspace(w)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"boards": []`, "empty sequences persist as empty, not null")

	got, err := UnmarshalWorkspace(data)
	require.NoError(t, err)
	assert.Equal(t, w, got)
	assert.NotNil(t, got.Boards)
	assert.NotNil(t, got.Bin.Lists)
}

func TestUnmarshalWorkspace_Defaults(t *testing.T) {
	// only the required fields present
	doc := `{"name":"Min","boards":[{"name":"B","lists":[{"name":"L","cards":[{"name":"C"}]}]}]}`

	w, err := UnmarshalWorkspace([]byte(doc))
	require.NoError(t, err)

	assert.True(t, w.LastEdited.IsZero())
	assert.Equal(t, 0, w.SelectedBoardIndex)
	c := w.Boards[0].Lists[0].Cards[0]
	assert.Equal(t, "", c.Description)
	assert.Equal(t, "", c.Deadline)
	assert.Equal(t, MinPriority, c.Priority)
	assert.False(t, w.Boards[0].Lists[0].Completed)
}

func TestUnmarshalWorkspace_ClampsSelectedIndex(t *testing.T) {
	doc := `{"name":"W","selected_board_index":7,"boards":[{"name":"A","lists":[]},{"name":"B","lists":[]}]}`
	w, err := UnmarshalWorkspace([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, 1, w.SelectedBoardIndex)

	doc = `{"name":"W","selected_board_index":-2,"boards":[{"name":"A","lists":[]}]}`
	w, err = UnmarshalWorkspace([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, 0, w.SelectedBoardIndex)
}

func TestUnmarshalWorkspace_Malformed(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		path string
	}{
		{"not json", `{{{`, ""},
		{"missing workspace name", `{"boards":[]}`, "name"},
		{"empty workspace name", `{"name":"","boards":[]}`, "name"},
		{"bad timestamp", `{"name":"W","last_edited":"yesterday","boards":[]}`, "last_edited"},
		{"missing board name", `{"name":"W","boards":[{"lists":[]}]}`, "boards[0].name"},
		{"missing list name", `{"name":"W","boards":[{"name":"B","lists":[{"cards":[]}]}]}`, "boards[0].lists[0].name"},
		{"missing card name", `{"name":"W","boards":[{"name":"B","lists":[{"name":"L","cards":[{"priority":1}]}]}]}`, "boards[0].lists[0].cards[0].name"},
		{"missing bin card name", `{"name":"W","boards":[],"bin":{"cards":[{"card":{},"source_board":"B","source_list":"L"}]}}`, "bin.cards[0].card.name"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := UnmarshalWorkspace([]byte(tc.doc))
			require.Error(t, err)
			var me *apperrors.MalformedError
			require.ErrorAs(t, err, &me)
			assert.Equal(t, tc.path, me.Path)
		})
	}
}

func TestUnmarshalWorkspace_WrongFieldType(t *testing.T) {
	doc := `{"name":"W","boards":"nope"}`
	_, err := UnmarshalWorkspace([]byte(doc))
	require.True(t, apperrors.IsMalformed(err))
}

func TestDocument_TimestampSurvivesRoundTrip(t *testing.T) {
	w := NewWorkspace("T")
	w.LastEdited = time.Date(2026, 8, 26, 10, 30, 0, 123456789, time.UTC)

	data, err := MarshalWorkspace(w)
	require.NoError(t, err)
	got, err := UnmarshalWorkspace(data)
	require.NoError(t, err)
	assert.True(t, w.LastEdited.Equal(got.LastEdited))
}
