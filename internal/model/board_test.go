package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"BoardKeeper/internal/apperrors"
)

func listNames(b *Board) []string {
	out := make([]string, 0, len(b.Lists))
	for _, l := range b.Lists {
		out = append(out, l.Name)
	}
	return out
}

func cardNames(l *List) []string {
	out := make([]string, 0, len(l.Cards))
	for _, c := range l.Cards {
		out = append(out, c.Name)
	}
	return out
}

func TestBoard_CreateList(t *testing.T) {
	b := NewBoard("Work")

	_, err := b.CreateList("Todo")
	require.NoError(t, err)

	_, err = b.CreateList("Todo")
	assert.ErrorIs(t, err, apperrors.ErrDuplicateName)

	_, err = b.CreateList("")
	assert.Error(t, err)

	assert.Equal(t, []string{"Todo"}, listNames(b))
}

func TestBoard_RenameList(t *testing.T) {
	b := NewBoard("Work")
	_, _ = b.CreateList("Todo")
	_, _ = b.CreateList("Done")

	require.NoError(t, b.RenameList("Todo", "Backlog"))
	assert.ErrorIs(t, b.RenameList("Backlog", "Done"), apperrors.ErrDuplicateName)
	assert.ErrorIs(t, b.RenameList("ghost", "x"), apperrors.ErrNotFound)
	// renaming to itself is a no-op, not a duplicate
	require.NoError(t, b.RenameList("Done", "Done"))
}

func TestBoard_MoveList_ClampsAndKeepsOrder(t *testing.T) {
	b := NewBoard("Work")
	for _, n := range []string{"a", "b", "c", "d"} {
		_, err := b.CreateList(n)
		require.NoError(t, err)
	}

	require.NoError(t, b.MoveList("d", 0))
	assert.Equal(t, []string{"d", "a", "b", "c"}, listNames(b))

	// out-of-range index clamps to the end
	require.NoError(t, b.MoveList("d", 42))
	assert.Equal(t, []string{"a", "b", "c", "d"}, listNames(b))

	require.NoError(t, b.MoveList("c", -5))
	assert.Equal(t, []string{"c", "a", "b", "d"}, listNames(b))

	assert.ErrorIs(t, b.MoveList("ghost", 0), apperrors.ErrNotFound)
}

func TestBoard_MoveCard(t *testing.T) {
	b := NewBoard("Work")
	src, _ := b.CreateList("Todo")
	dst, _ := b.CreateList("Doing")
	for _, n := range []string{"one", "two", "three"} {
		_, err := src.CreateCard(n)
		require.NoError(t, err)
	}
	_, err := dst.CreateCard("x")
	require.NoError(t, err)

	require.NoError(t, b.MoveCard("Todo", "Doing", "two", 0))
	assert.Equal(t, []string{"one", "three"}, cardNames(src))
	assert.Equal(t, []string{"two", "x"}, cardNames(dst))

	// destination already has a card with that name
	_, err = src.CreateCard("x")
	require.NoError(t, err)
	assert.ErrorIs(t, b.MoveCard("Todo", "Doing", "x", 0), apperrors.ErrDuplicateName)
	assert.NotNil(t, src.FindCard("x"), "failed move must not detach the card")

	assert.ErrorIs(t, b.MoveCard("ghost", "Doing", "one", 0), apperrors.ErrNotFound)
	assert.ErrorIs(t, b.MoveCard("Todo", "ghost", "one", 0), apperrors.ErrNotFound)
	assert.ErrorIs(t, b.MoveCard("Todo", "Doing", "ghost", 0), apperrors.ErrNotFound)

	// index beyond the destination length clamps to append
	require.NoError(t, b.MoveCard("Todo", "Doing", "one", 99))
	assert.Equal(t, "one", dst.Cards[len(dst.Cards)-1].Name)
}

func TestBoard_SetCompleted_SingleFlag(t *testing.T) {
	b := NewBoard("Work")
	_, _ = b.CreateList("Todo")
	_, _ = b.CreateList("Done")
	_, _ = b.CreateList("Archive")

	require.NoError(t, b.SetCompleted("Done"))
	assert.Equal(t, "Done", b.CompletedListName())

	// moving the flag clears the previous holder
	require.NoError(t, b.SetCompleted("Archive"))
	assert.Equal(t, "Archive", b.CompletedListName())
	assert.False(t, b.FindList("Done").Completed)

	count := 0
	for _, l := range b.Lists {
		if l.Completed {
			count++
		}
	}
	assert.Equal(t, 1, count)

	assert.ErrorIs(t, b.SetCompleted("ghost"), apperrors.ErrNotFound)
	assert.Equal(t, "Archive", b.CompletedListName(), "failed SetCompleted must not clear the flag")

	b.ClearCompleted()
	assert.Equal(t, "", b.CompletedListName())
}

func TestList_InsertCard_Clamps(t *testing.T) {
	l := NewList("Todo")
	for _, n := range []string{"a", "b"} {
		_, err := l.CreateCard(n)
		require.NoError(t, err)
	}

	require.NoError(t, l.InsertCard(NewCard("front"), -3))
	require.NoError(t, l.InsertCard(NewCard("back"), 100))
	assert.Equal(t, []string{"front", "a", "b", "back"}, cardNames(l))

	assert.ErrorIs(t, l.InsertCard(NewCard("a"), 0), apperrors.ErrDuplicateName)
}

func TestList_RenameCard(t *testing.T) {
	l := NewList("Todo")
	_, _ = l.CreateCard("a")
	_, _ = l.CreateCard("b")

	require.NoError(t, l.RenameCard("a", "c"))
	assert.ErrorIs(t, l.RenameCard("c", "b"), apperrors.ErrDuplicateName)
	assert.ErrorIs(t, l.RenameCard("ghost", "x"), apperrors.ErrNotFound)
	assert.Error(t, l.RenameCard("b", ""))
}
