package commands

import (
	"context"
	"fmt"
	"strconv"
)

type boardAddCmd struct{}

func (boardAddCmd) Name() string        { return "board-add" }
func (boardAddCmd) Description() string { return "Add a board to a workspace" }
func (boardAddCmd) Usage() string       { return "board-add <workspace> <board> [<password>]" }

func (boardAddCmd) Run(ctx context.Context, env *Env, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return ErrUsage
	}
	sess, _, err := openSession(env, args[0], optArg(args, 2))
	if err != nil {
		return err
	}
	defer sess.Close()
	if _, err := sess.Workspace().CreateBoard(args[1]); err != nil {
		return err
	}
	if err := sess.Save(); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Added board %q\n", args[1])
	return nil
}

type boardRmCmd struct{}

func (boardRmCmd) Name() string        { return "board-rm" }
func (boardRmCmd) Description() string { return "Delete a board (boards are not bin-recoverable)" }
func (boardRmCmd) Usage() string       { return "board-rm <workspace> <board> [<password>]" }

func (boardRmCmd) Run(ctx context.Context, env *Env, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return ErrUsage
	}
	sess, _, err := openSession(env, args[0], optArg(args, 2))
	if err != nil {
		return err
	}
	defer sess.Close()
	if err := sess.Workspace().RemoveBoard(args[1]); err != nil {
		return err
	}
	if err := sess.Save(); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Deleted board %q\n", args[1])
	return nil
}

type boardSelectCmd struct{}

func (boardSelectCmd) Name() string        { return "board-select" }
func (boardSelectCmd) Description() string { return "Choose the board shown on next open" }
func (boardSelectCmd) Usage() string       { return "board-select <workspace> <index> [<password>]" }

func (boardSelectCmd) Run(ctx context.Context, env *Env, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return ErrUsage
	}
	index, err := strconv.Atoi(args[1])
	if err != nil {
		return ErrUsage
	}
	sess, _, err := openSession(env, args[0], optArg(args, 2))
	if err != nil {
		return err
	}
	defer sess.Close()
	sess.Workspace().SelectBoard(index)
	if err := sess.Save(); err != nil {
		return err
	}
	b := sess.Workspace().SelectedBoard()
	if b != nil {
		fmt.Fprintf(Out, "Selected board %q\n", b.Name)
	}
	return nil
}

func init() {
	RegisterCmd(boardAddCmd{})
	RegisterCmd(boardRmCmd{})
	RegisterCmd(boardSelectCmd{})
}
