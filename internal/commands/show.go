package commands

import (
	"context"
	"fmt"

	"BoardKeeper/internal/model"
)

type showCmd struct{}

func (showCmd) Name() string        { return "show" }
func (showCmd) Description() string { return "Print a workspace's boards, lists and cards" }
func (showCmd) Usage() string       { return "show <workspace> [<password>]" }

func (showCmd) Run(ctx context.Context, env *Env, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return ErrUsage
	}
	sess, entry, err := openSession(env, args[0], optArg(args, 1))
	if err != nil {
		return err
	}
	defer sess.Close()

	ws := sess.Workspace()
	enc := ""
	if entry.Encrypted {
		enc = " [encrypted]"
	}
	fmt.Fprintf(Out, "Workspace %q%s  (last edited %s)\n", ws.Name, enc,
		ws.LastEdited.Format("2006-01-02 15:04"))
	for i, b := range ws.Boards {
		marker := " "
		if i == ws.SelectedBoardIndex {
			marker = "*"
		}
		fmt.Fprintf(Out, "%s Board %q\n", marker, b.Name)
		for _, l := range b.Lists {
			done := ""
			if l.Completed {
				done = " (completed)"
			}
			fmt.Fprintf(Out, "    List %q%s\n", l.Name, done)
			for _, c := range l.Cards {
				printCard(c)
			}
		}
	}
	if len(ws.Bin.Lists) > 0 || len(ws.Bin.Cards) > 0 {
		fmt.Fprintf(Out, "  Bin: %d list(s), %d card(s)\n", len(ws.Bin.Lists), len(ws.Bin.Cards))
	}
	return nil
}

func printCard(c *model.Card) {
	extra := ""
	if c.Deadline != "" {
		extra += "  due " + c.Deadline
	}
	if c.Priority != model.MinPriority {
		extra += "  [" + model.PriorityLabel(c.Priority) + "]"
	}
	fmt.Fprintf(Out, "      - %s%s\n", c.Name, extra)
	if c.Description != "" {
		fmt.Fprintf(Out, "        %s\n", c.Description)
	}
}

func init() { RegisterCmd(showCmd{}) }
