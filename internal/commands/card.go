package commands

import (
	"context"
	"fmt"
	"strconv"

	"BoardKeeper/internal/apperrors"
	"BoardKeeper/internal/model"
	"BoardKeeper/internal/store"
)

// findList resolves board/list names inside an open session.
func findList(sess *store.Session, boardName, listName string) (*model.List, error) {
	b := sess.Workspace().FindBoard(boardName)
	if b == nil {
		return nil, fmt.Errorf("board %q: %w", boardName, apperrors.ErrNotFound)
	}
	l := b.FindList(listName)
	if l == nil {
		return nil, fmt.Errorf("list %q: %w", listName, apperrors.ErrNotFound)
	}
	return l, nil
}

type cardAddCmd struct{}

func (cardAddCmd) Name() string        { return "card-add" }
func (cardAddCmd) Description() string { return "Add a card to a list" }
func (cardAddCmd) Usage() string {
	return "card-add <workspace> <board> <list> <card> [<password>]"
}

func (cardAddCmd) Run(ctx context.Context, env *Env, args []string) error {
	if len(args) < 4 || len(args) > 5 {
		return ErrUsage
	}
	sess, _, err := openSession(env, args[0], optArg(args, 4))
	if err != nil {
		return err
	}
	defer sess.Close()
	l, err := findList(sess, args[1], args[2])
	if err != nil {
		return err
	}
	if _, err := l.CreateCard(args[3]); err != nil {
		return err
	}
	if err := sess.Save(); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Added card %q to list %q\n", args[3], args[2])
	return nil
}

type cardEditCmd struct{}

func (cardEditCmd) Name() string { return "card-edit" }
func (cardEditCmd) Description() string {
	return "Edit a card field (name|desc|deadline|priority)"
}
func (cardEditCmd) Usage() string {
	return "card-edit <workspace> <board> <list> <card> <field> <value> [<password>]"
}

func (cardEditCmd) Run(ctx context.Context, env *Env, args []string) error {
	if len(args) < 6 || len(args) > 7 {
		return ErrUsage
	}
	sess, _, err := openSession(env, args[0], optArg(args, 6))
	if err != nil {
		return err
	}
	defer sess.Close()
	l, err := findList(sess, args[1], args[2])
	if err != nil {
		return err
	}
	cardName, field, value := args[3], args[4], args[5]
	c := l.FindCard(cardName)
	if c == nil {
		return fmt.Errorf("card %q: %w", cardName, apperrors.ErrNotFound)
	}
	switch field {
	case "name":
		if err := l.RenameCard(cardName, value); err != nil {
			return err
		}
	case "desc":
		c.SetDescription(value)
	case "deadline":
		if err := c.SetDeadline(value); err != nil {
			return err
		}
	case "priority":
		p, err := strconv.Atoi(value)
		if err != nil {
			return ErrUsage
		}
		if err := c.SetPriority(p); err != nil {
			return err
		}
	default:
		return ErrUsage
	}
	if err := sess.Save(); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Updated %s of card %q\n", field, cardName)
	return nil
}

type cardRmCmd struct{}

func (cardRmCmd) Name() string        { return "card-rm" }
func (cardRmCmd) Description() string { return "Move a card to the bin" }
func (cardRmCmd) Usage() string {
	return "card-rm <workspace> <board> <list> <card> [<password>]"
}

func (cardRmCmd) Run(ctx context.Context, env *Env, args []string) error {
	if len(args) < 4 || len(args) > 5 {
		return ErrUsage
	}
	sess, _, err := openSession(env, args[0], optArg(args, 4))
	if err != nil {
		return err
	}
	defer sess.Close()
	if err := sess.SoftDeleteCard(args[1], args[2], args[3]); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Moved card %q to the bin\n", args[3])
	return nil
}

type cardMoveCmd struct{}

func (cardMoveCmd) Name() string        { return "card-move" }
func (cardMoveCmd) Description() string { return "Move a card between lists of a board" }
func (cardMoveCmd) Usage() string {
	return "card-move <workspace> <board> <from-list> <to-list> <card> <index> [<password>]"
}

func (cardMoveCmd) Run(ctx context.Context, env *Env, args []string) error {
	if len(args) < 6 || len(args) > 7 {
		return ErrUsage
	}
	index, err := strconv.Atoi(args[5])
	if err != nil {
		return ErrUsage
	}
	sess, _, err := openSession(env, args[0], optArg(args, 6))
	if err != nil {
		return err
	}
	defer sess.Close()
	b := sess.Workspace().FindBoard(args[1])
	if b == nil {
		return fmt.Errorf("board %q: %w", args[1], apperrors.ErrNotFound)
	}
	if err := b.MoveCard(args[2], args[3], args[4], index); err != nil {
		return err
	}
	if err := sess.Save(); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Moved card %q to list %q\n", args[4], args[3])
	return nil
}

func init() {
	RegisterCmd(cardAddCmd{})
	RegisterCmd(cardEditCmd{})
	RegisterCmd(cardRmCmd{})
	RegisterCmd(cardMoveCmd{})
}
