package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"BoardKeeper/internal/apperrors"
)

// The persisted document is a plain JSON tree. Typed document structs keep
// (de)serialization total: required fields are pointers so a missing field
// is distinguishable from a zero value, optional fields default on parse.

type cardDoc struct {
	Name        *string `json:"name"`
	Description string  `json:"description,omitempty"`
	Deadline    string  `json:"deadline,omitempty"`
	Priority    int     `json:"priority,omitempty"`
}

type listDoc struct {
	Name      *string   `json:"name"`
	Cards     []cardDoc `json:"cards"`
	Completed bool      `json:"completed,omitempty"`
}

type boardDoc struct {
	Name  *string   `json:"name"`
	Lists []listDoc `json:"lists"`
}

type deletedListDoc struct {
	List        listDoc `json:"list"`
	SourceBoard string  `json:"source_board"`
}

type deletedCardDoc struct {
	Card        cardDoc `json:"card"`
	SourceBoard string  `json:"source_board"`
	SourceList  string  `json:"source_list"`
}

type binDoc struct {
	Lists []deletedListDoc `json:"lists"`
	Cards []deletedCardDoc `json:"cards"`
}

type workspaceDoc struct {
	Name          *string    `json:"name"`
	LastEdited    string     `json:"last_edited,omitempty"`
	Boards        []boardDoc `json:"boards"`
	SelectedBoard int        `json:"selected_board_index,omitempty"`
	Bin           *binDoc    `json:"bin,omitempty"`
}

// MarshalWorkspace serializes a workspace to its plaintext document form.
func MarshalWorkspace(w *Workspace) ([]byte, error) {
	doc := workspaceDoc{
		Name:          &w.Name,
		Boards:        make([]boardDoc, 0, len(w.Boards)),
		SelectedBoard: w.SelectedBoardIndex,
	}
	if !w.LastEdited.IsZero() {
		doc.LastEdited = w.LastEdited.Format(time.RFC3339Nano)
	}
	for _, b := range w.Boards {
		doc.Boards = append(doc.Boards, boardToDoc(b))
	}
	bin := binDoc{
		Lists: make([]deletedListDoc, 0, len(w.Bin.Lists)),
		Cards: make([]deletedCardDoc, 0, len(w.Bin.Cards)),
	}
	for _, dl := range w.Bin.Lists {
		bin.Lists = append(bin.Lists, deletedListDoc{List: listToDoc(dl.List), SourceBoard: dl.SourceBoard})
	}
	for _, dc := range w.Bin.Cards {
		bin.Cards = append(bin.Cards, deletedCardDoc{Card: cardToDoc(dc.Card), SourceBoard: dc.SourceBoard, SourceList: dc.SourceList})
	}
	doc.Bin = &bin
	return json.MarshalIndent(doc, "", "  ")
}

func boardToDoc(b *Board) boardDoc {
	d := boardDoc{Name: &b.Name, Lists: make([]listDoc, 0, len(b.Lists))}
	for _, l := range b.Lists {
		d.Lists = append(d.Lists, listToDoc(l))
	}
	return d
}

func listToDoc(l *List) listDoc {
	d := listDoc{Name: &l.Name, Cards: make([]cardDoc, 0, len(l.Cards)), Completed: l.Completed}
	for _, c := range l.Cards {
		d.Cards = append(d.Cards, cardToDoc(c))
	}
	return d
}

func cardToDoc(c *Card) cardDoc {
	return cardDoc{Name: &c.Name, Description: c.Description, Deadline: c.Deadline, Priority: c.Priority}
}

// UnmarshalWorkspace parses a plaintext document. A structurally invalid
// tree yields a MalformedError naming the offending field path; missing
// optional fields default instead of failing.
func UnmarshalWorkspace(data []byte) (*Workspace, error) {
	var doc workspaceDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, apperrors.Malformed(typeErr.Field, err)
		}
		return nil, apperrors.Malformed("", err)
	}
	return workspaceFromDoc(&doc)
}

func workspaceFromDoc(doc *workspaceDoc) (*Workspace, error) {
	if doc.Name == nil || *doc.Name == "" {
		return nil, apperrors.Malformed("name", errors.New("missing workspace name"))
	}
	w := &Workspace{
		Name:               *doc.Name,
		Boards:             make([]*Board, 0, len(doc.Boards)),
		SelectedBoardIndex: doc.SelectedBoard,
		Bin:                NewBin(),
	}
	if doc.LastEdited != "" {
		ts, err := time.Parse(time.RFC3339Nano, doc.LastEdited)
		if err != nil {
			return nil, apperrors.Malformed("last_edited", err)
		}
		w.LastEdited = ts
	}
	for i := range doc.Boards {
		b, err := boardFromDoc(&doc.Boards[i], fmt.Sprintf("boards[%d]", i))
		if err != nil {
			return nil, err
		}
		w.Boards = append(w.Boards, b)
	}
	if doc.Bin != nil {
		for i := range doc.Bin.Lists {
			path := fmt.Sprintf("bin.lists[%d].list", i)
			l, err := listFromDoc(&doc.Bin.Lists[i].List, path)
			if err != nil {
				return nil, err
			}
			w.Bin.Lists = append(w.Bin.Lists, DeletedList{List: l, SourceBoard: doc.Bin.Lists[i].SourceBoard})
		}
		for i := range doc.Bin.Cards {
			path := fmt.Sprintf("bin.cards[%d].card", i)
			c, err := cardFromDoc(&doc.Bin.Cards[i].Card, path)
			if err != nil {
				return nil, err
			}
			w.Bin.Cards = append(w.Bin.Cards, DeletedCard{
				Card:        c,
				SourceBoard: doc.Bin.Cards[i].SourceBoard,
				SourceList:  doc.Bin.Cards[i].SourceList,
			})
		}
	}
	w.clampSelected()
	return w, nil
}

func boardFromDoc(doc *boardDoc, path string) (*Board, error) {
	if doc.Name == nil || *doc.Name == "" {
		return nil, apperrors.Malformed(path+".name", errors.New("missing board name"))
	}
	b := NewBoard(*doc.Name)
	for i := range doc.Lists {
		l, err := listFromDoc(&doc.Lists[i], fmt.Sprintf("%s.lists[%d]", path, i))
		if err != nil {
			return nil, err
		}
		b.Lists = append(b.Lists, l)
	}
	return b, nil
}

func listFromDoc(doc *listDoc, path string) (*List, error) {
	if doc.Name == nil || *doc.Name == "" {
		return nil, apperrors.Malformed(path+".name", errors.New("missing list name"))
	}
	l := NewList(*doc.Name)
	l.Completed = doc.Completed
	for i := range doc.Cards {
		c, err := cardFromDoc(&doc.Cards[i], fmt.Sprintf("%s.cards[%d]", path, i))
		if err != nil {
			return nil, err
		}
		l.Cards = append(l.Cards, c)
	}
	return l, nil
}

func cardFromDoc(doc *cardDoc, path string) (*Card, error) {
	if doc.Name == nil || *doc.Name == "" {
		return nil, apperrors.Malformed(path+".name", errors.New("missing card name"))
	}
	return &Card{
		Name:        *doc.Name,
		Description: doc.Description,
		Deadline:    doc.Deadline,
		Priority:    doc.Priority,
	}, nil
}
