package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"BoardKeeper/internal/apperrors"
)

func TestNewWorkspace_DefaultBoard(t *testing.T) {
	w := NewWorkspace("Home")

	require.Len(t, w.Boards, 1)
	assert.Equal(t, "Home Board", w.Boards[0].Name)
	assert.Equal(t, 0, w.SelectedBoardIndex)
	assert.False(t, w.LastEdited.IsZero())
	assert.NotNil(t, w.Bin.Lists)
	assert.NotNil(t, w.Bin.Cards)
}

func TestWorkspace_BoardOps(t *testing.T) {
	w := NewWorkspace("Home")

	_, err := w.CreateBoard("Work")
	require.NoError(t, err)
	_, err = w.CreateBoard("Work")
	assert.ErrorIs(t, err, apperrors.ErrDuplicateName)
	_, err = w.CreateBoard("")
	assert.Error(t, err)

	require.NoError(t, w.RenameBoard("Work", "Office"))
	assert.ErrorIs(t, w.RenameBoard("Office", "Home Board"), apperrors.ErrDuplicateName)
	assert.ErrorIs(t, w.RenameBoard("ghost", "x"), apperrors.ErrNotFound)

	require.NoError(t, w.RemoveBoard("Office"))
	assert.ErrorIs(t, w.RemoveBoard("Office"), apperrors.ErrNotFound)
}

func TestWorkspace_SelectBoard_Clamps(t *testing.T) {
	w := NewWorkspace("Home")
	_, _ = w.CreateBoard("Second")
	_, _ = w.CreateBoard("Third")

	w.SelectBoard(2)
	assert.Equal(t, "Third", w.SelectedBoard().Name)

	w.SelectBoard(99)
	assert.Equal(t, 2, w.SelectedBoardIndex)

	w.SelectBoard(-1)
	assert.Equal(t, 0, w.SelectedBoardIndex)

	// removing the selected board pulls the index back into range
	w.SelectBoard(2)
	require.NoError(t, w.RemoveBoard("Third"))
	assert.Equal(t, 1, w.SelectedBoardIndex)
	assert.Equal(t, "Second", w.SelectedBoard().Name)

	require.NoError(t, w.RemoveBoard("Second"))
	require.NoError(t, w.RemoveBoard("Home Board"))
	assert.Nil(t, w.SelectedBoard())
	assert.Equal(t, 0, w.SelectedBoardIndex)
}

func TestBin_TakeAndPurge(t *testing.T) {
	bin := NewBin()
	bin.AddList(NewList("Todo"), "Work")
	bin.AddCard(NewCard("a"), "Work", "Todo")
	bin.AddCard(NewCard("b"), "Work", "Other")

	e, ok := bin.TakeCard("a")
	require.True(t, ok)
	assert.Equal(t, "Work", e.SourceBoard)
	assert.Equal(t, "Todo", e.SourceList)
	_, ok = bin.TakeCard("a")
	assert.False(t, ok, "an entry leaves the bin exactly once")

	assert.True(t, bin.PurgeCard("b"))
	assert.False(t, bin.PurgeCard("b"))
}

func TestBin_PurgeList_TakesItsCards(t *testing.T) {
	bin := NewBin()
	bin.AddList(NewList("Todo"), "Work")
	bin.AddCard(NewCard("from-todo"), "Work", "Todo")
	bin.AddCard(NewCard("same-list-other-board"), "Home", "Todo")
	bin.AddCard(NewCard("unrelated"), "Work", "Done")

	require.True(t, bin.PurgeList("Todo"))

	assert.Nil(t, bin.FindCard("from-todo"), "cards deleted out of the purged list go with it")
	assert.NotNil(t, bin.FindCard("same-list-other-board"))
	assert.NotNil(t, bin.FindCard("unrelated"))
	assert.False(t, bin.PurgeList("Todo"))
}
