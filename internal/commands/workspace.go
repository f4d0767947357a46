package commands

import (
	"context"
	"fmt"
)

type createCmd struct{}

func (createCmd) Name() string        { return "create" }
func (createCmd) Description() string { return "Create a new workspace" }
func (createCmd) Usage() string       { return "create <workspace>" }

func (createCmd) Run(ctx context.Context, env *Env, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	entry, err := env.Registry.Create(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Created workspace %q at %s\n", entry.Name, entry.Location)
	return nil
}

type lsCmd struct{}

func (lsCmd) Name() string        { return "ls" }
func (lsCmd) Description() string { return "List registered workspaces" }
func (lsCmd) Usage() string       { return "ls" }

func (lsCmd) Run(ctx context.Context, env *Env, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	entries := env.Registry.ListAll()
	if len(entries) == 0 {
		fmt.Fprintln(Out, "No workspaces")
		return nil
	}
	for _, e := range entries {
		lock := ""
		if e.Encrypted {
			lock = " [encrypted]"
		}
		fmt.Fprintf(Out, "- %s%s\n", e.Name, lock)
	}
	return nil
}

type renameCmd struct{}

func (renameCmd) Name() string        { return "rename" }
func (renameCmd) Description() string { return "Rename a workspace" }
func (renameCmd) Usage() string       { return "rename <old> <new>" }

func (renameCmd) Run(ctx context.Context, env *Env, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	if err := env.Registry.Rename(args[0], args[1]); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Renamed %q to %q\n", args[0], args[1])
	return nil
}

type rmCmd struct{}

func (rmCmd) Name() string        { return "rm" }
func (rmCmd) Description() string { return "Delete a workspace and its document (irreversible)" }
func (rmCmd) Usage() string       { return "rm <workspace>" }

func (rmCmd) Run(ctx context.Context, env *Env, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	if err := env.Registry.Delete(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Deleted workspace %q\n", args[0])
	return nil
}

type passwdCmd struct{}

func (passwdCmd) Name() string { return "passwd" }
func (passwdCmd) Description() string {
	return "Set or change a workspace password (empty new password clears it)"
}
func (passwdCmd) Usage() string { return "passwd <workspace> <new-password> [<current-password>]" }

func (passwdCmd) Run(ctx context.Context, env *Env, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return ErrUsage
	}
	name, newPwd := args[0], args[1]
	sess, _, err := openSession(env, name, optArg(args, 2))
	if err != nil {
		return err
	}
	defer sess.Close()
	encrypted, err := sess.SetPassword(newPwd)
	if err != nil {
		return err
	}
	if err := env.Registry.SetEncrypted(name, encrypted); err != nil {
		return err
	}
	if encrypted {
		fmt.Fprintf(Out, "Workspace %q is now encrypted\n", name)
	} else {
		fmt.Fprintf(Out, "Workspace %q is now plaintext\n", name)
	}
	return nil
}

type passwdClearCmd struct{}

func (passwdClearCmd) Name() string        { return "passwd-clear" }
func (passwdClearCmd) Description() string { return "Remove a workspace password" }
func (passwdClearCmd) Usage() string       { return "passwd-clear <workspace> <current-password>" }

func (passwdClearCmd) Run(ctx context.Context, env *Env, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	name := args[0]
	sess, _, err := openSession(env, name, args[1])
	if err != nil {
		return err
	}
	defer sess.Close()
	encrypted, err := sess.SetPassword("")
	if err != nil {
		return err
	}
	if err := env.Registry.SetEncrypted(name, encrypted); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Password removed from workspace %q\n", name)
	return nil
}

func init() {
	RegisterCmd(createCmd{})
	RegisterCmd(lsCmd{})
	RegisterCmd(renameCmd{})
	RegisterCmd(rmCmd{})
	RegisterCmd(passwdCmd{})
	RegisterCmd(passwdClearCmd{})
}
