package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap"

	"BoardKeeper/internal/config"
	"BoardKeeper/internal/registry"
	"BoardKeeper/internal/store"
)

// ErrUsage is returned by a command when arguments are invalid and usage should be shown.
var ErrUsage = errors.New("usage")

// Env carries the wired core components into commands.
type Env struct {
	Cfg      *config.Config
	Registry *registry.Registry
	Store    *store.Store
	Log      *zap.SugaredLogger
}

// Command represents a CLI subcommand.
type Command interface {
	// Name returns the command name as typed by the user, e.g. "create".
	Name() string
	// Description is a short human-readable description shown in help.
	Description() string
	// Usage returns the exact usage string, e.g. "create <workspace>".
	Usage() string
	// Run executes the command with provided args (without the command name).
	Run(ctx context.Context, env *Env, args []string) error
}

// commandSet holds available commands by name.
var commandSet = map[string]Command{}

// Out is the shared writer for CLI output. os.Stdout by default, replaced in tests.
var Out io.Writer = os.Stdout

// RegisterCmd adds a command to the set. Should be called from init() of each command.
func RegisterCmd(cmd Command) {
	commandSet[cmd.Name()] = cmd
}

// Get returns a command by name.
func Get(name string) (Command, bool) {
	c, ok := commandSet[name]
	return c, ok
}

// List returns all registered commands sorted by name.
func List() []Command {
	list := make([]Command, 0, len(commandSet))
	for _, c := range commandSet {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	return list
}

// FormatGlobalUsage builds a help text for all commands.
func FormatGlobalUsage() string {
	lines := []string{
		"BoardKeeper CLI",
		"",
		"Usage:",
		"  boardkeeper [--data-dir <dir>] [--registry <file>] <command> [args]",
		"",
		"Commands:",
	}
	for _, c := range List() {
		lines = append(lines, fmt.Sprintf("  %-44s %s", c.Usage(), c.Description()))
	}
	return strings.Join(lines, "\n") + "\n"
}

// openSession resolves a workspace by registered name and loads its document.
// password may be empty for plaintext workspaces.
func openSession(env *Env, name, password string) (*store.Session, registry.Entry, error) {
	entry, err := env.Registry.Get(name)
	if err != nil {
		return nil, registry.Entry{}, err
	}
	sess, err := env.Store.Load(entry.Location, password)
	if err != nil {
		return nil, registry.Entry{}, err
	}
	return sess, entry, nil
}

// optArg returns args[i] when present, else "".
func optArg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
