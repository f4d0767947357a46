package commands

import (
	"context"
	"fmt"

	"BoardKeeper/internal/apperrors"
)

type listAddCmd struct{}

func (listAddCmd) Name() string        { return "list-add" }
func (listAddCmd) Description() string { return "Add a list to a board" }
func (listAddCmd) Usage() string       { return "list-add <workspace> <board> <list> [<password>]" }

func (listAddCmd) Run(ctx context.Context, env *Env, args []string) error {
	if len(args) < 3 || len(args) > 4 {
		return ErrUsage
	}
	sess, _, err := openSession(env, args[0], optArg(args, 3))
	if err != nil {
		return err
	}
	defer sess.Close()
	b := sess.Workspace().FindBoard(args[1])
	if b == nil {
		return fmt.Errorf("board %q: %w", args[1], apperrors.ErrNotFound)
	}
	if _, err := b.CreateList(args[2]); err != nil {
		return err
	}
	if err := sess.Save(); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Added list %q to board %q\n", args[2], args[1])
	return nil
}

type listRmCmd struct{}

func (listRmCmd) Name() string        { return "list-rm" }
func (listRmCmd) Description() string { return "Move a list to the bin" }
func (listRmCmd) Usage() string       { return "list-rm <workspace> <board> <list> [<password>]" }

func (listRmCmd) Run(ctx context.Context, env *Env, args []string) error {
	if len(args) < 3 || len(args) > 4 {
		return ErrUsage
	}
	sess, _, err := openSession(env, args[0], optArg(args, 3))
	if err != nil {
		return err
	}
	defer sess.Close()
	if err := sess.SoftDeleteList(args[1], args[2]); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Moved list %q to the bin\n", args[2])
	return nil
}

type listDoneCmd struct{}

func (listDoneCmd) Name() string        { return "list-done" }
func (listDoneCmd) Description() string { return "Mark a list as the board's completed list" }
func (listDoneCmd) Usage() string       { return "list-done <workspace> <board> <list> [<password>]" }

func (listDoneCmd) Run(ctx context.Context, env *Env, args []string) error {
	if len(args) < 3 || len(args) > 4 {
		return ErrUsage
	}
	sess, _, err := openSession(env, args[0], optArg(args, 3))
	if err != nil {
		return err
	}
	defer sess.Close()
	b := sess.Workspace().FindBoard(args[1])
	if b == nil {
		return fmt.Errorf("board %q: %w", args[1], apperrors.ErrNotFound)
	}
	if err := b.SetCompleted(args[2]); err != nil {
		return err
	}
	if err := sess.Save(); err != nil {
		return err
	}
	fmt.Fprintf(Out, "List %q is now the completed list of board %q\n", args[2], args[1])
	return nil
}

func init() {
	RegisterCmd(listAddCmd{})
	RegisterCmd(listRmCmd{})
	RegisterCmd(listDoneCmd{})
}
