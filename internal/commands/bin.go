package commands

import (
	"context"
	"fmt"

	"BoardKeeper/internal/store"
)

type binLsCmd struct{}

func (binLsCmd) Name() string        { return "bin-ls" }
func (binLsCmd) Description() string { return "Show the workspace recycle bin" }
func (binLsCmd) Usage() string       { return "bin-ls <workspace> [<password>]" }

func (binLsCmd) Run(ctx context.Context, env *Env, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return ErrUsage
	}
	sess, _, err := openSession(env, args[0], optArg(args, 1))
	if err != nil {
		return err
	}
	defer sess.Close()
	bin := sess.Workspace().Bin
	if len(bin.Lists) == 0 && len(bin.Cards) == 0 {
		fmt.Fprintln(Out, "Bin is empty")
		return nil
	}
	for _, dl := range bin.Lists {
		fmt.Fprintf(Out, "list %q  (from board %q)\n", dl.List.Name, dl.SourceBoard)
	}
	for _, dc := range bin.Cards {
		fmt.Fprintf(Out, "card %q  (from %s / %s)\n", dc.Card.Name, dc.SourceBoard, dc.SourceList)
	}
	return nil
}

type binRestoreCmd struct{}

func (binRestoreCmd) Name() string        { return "bin-restore" }
func (binRestoreCmd) Description() string { return "Restore a binned list or card" }
func (binRestoreCmd) Usage() string       { return "bin-restore <workspace> list|card <name> [<password>]" }

func (binRestoreCmd) Run(ctx context.Context, env *Env, args []string) error {
	if len(args) < 3 || len(args) > 4 {
		return ErrUsage
	}
	kind, err := parseKind(args[1])
	if err != nil {
		return err
	}
	sess, _, err := openSession(env, args[0], optArg(args, 3))
	if err != nil {
		return err
	}
	defer sess.Close()
	if err := sess.RestoreItem(args[2], kind); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Restored %s %q\n", kind, args[2])
	return nil
}

type binPurgeCmd struct{}

func (binPurgeCmd) Name() string        { return "bin-purge" }
func (binPurgeCmd) Description() string { return "Permanently delete a binned list or card" }
func (binPurgeCmd) Usage() string       { return "bin-purge <workspace> list|card <name> [<password>]" }

func (binPurgeCmd) Run(ctx context.Context, env *Env, args []string) error {
	if len(args) < 3 || len(args) > 4 {
		return ErrUsage
	}
	kind, err := parseKind(args[1])
	if err != nil {
		return err
	}
	sess, _, err := openSession(env, args[0], optArg(args, 3))
	if err != nil {
		return err
	}
	defer sess.Close()
	if err := sess.PurgeItem(args[2], kind); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Purged %s %q\n", kind, args[2])
	return nil
}

func parseKind(s string) (store.ItemKind, error) {
	switch s {
	case "list":
		return store.KindList, nil
	case "card":
		return store.KindCard, nil
	default:
		return "", ErrUsage
	}
}

func init() {
	RegisterCmd(binLsCmd{})
	RegisterCmd(binRestoreCmd{})
	RegisterCmd(binPurgeCmd{})
}
