// Package command implements the ratbagctl command core: a static tree of
// subcommands, a recursive dispatcher that consumes the token stream left to
// right, lazy resolution of the device/profile/resolution context each node
// declares it needs, and the button-action encoding shared by the remapping
// commands.
package command

import (
	"strconv"

	"github.com/ZephyraSilentis/libratbag/internal/logger"
	"github.com/ZephyraSilentis/libratbag/pkg/ratbag"
)

// Flag declares which pieces of context a command needs resolved before its
// handler runs. Requiring a resolution implies profile and device.
type Flag uint32

const (
	// NeedDevice requires an opened device.
	NeedDevice Flag = 1 << iota
	// NeedProfile requires the active (or explicitly indexed) profile.
	NeedProfile
	// NeedResolution requires the active (or explicitly indexed) resolution.
	NeedResolution
)

// HandlerFunc executes one command. Interior nodes use handlers that route
// into their subcommands; leaves implement the command itself. args holds
// the tokens remaining after the node's own name was consumed.
type HandlerFunc func(cmd *Command, rb ratbag.Ratbag, opts *Options, args []string) error

// Command is one node in the command tree. The tree is built once at startup
// and never mutated.
type Command struct {
	// Name is the token that selects this command.
	Name string

	// Args is the usage hint for positional arguments, empty if none.
	Args string

	// Help is the one-line help text. Nodes without help are hidden from
	// the usage listing but still dispatchable.
	Help string

	// Flags declares the context this command needs before it runs.
	Flags Flag

	// Exec is the command's handler. Never nil.
	Exec HandlerFunc

	// Subcommands are the child nodes in matching order. Empty for leaves.
	Subcommands []*Command
}

// Run dispatches the token stream against the tree rooted at c. The caller
// owns opts and must release it on every exit path.
func Run(c *Command, rb ratbag.Ratbag, opts *Options, args []string) error {
	return c.runSubcommand(rb, opts, args)
}

// runSubcommand matches the next token against c's subcommands, resolves the
// matched child's context requirements, and recurses into its handler with
// the matched token sliced off.
func (c *Command) runSubcommand(rb ratbag.Ratbag, opts *Options, args []string) error {
	if len(args) == 0 {
		return Usagef("missing subcommand for '%s'", c.Name)
	}

	name := args[0]
	for _, sub := range c.Subcommands {
		if sub.Name != name {
			continue
		}
		// The resolver sees the full visible argument list: the
		// device path, if one is still needed, is the last token.
		if err := opts.ensure(rb, sub.Flags, &args); err != nil {
			return err
		}
		logger.Debug("dispatching", "command", sub.Name, "args", args[1:])
		return sub.Exec(sub, rb, opts, args[1:])
	}

	return Usagef("invalid subcommand '%s'", name)
}

// routeSubcommands is the handler used by pure interior nodes.
func routeSubcommands(cmd *Command, rb ratbag.Ratbag, opts *Options, args []string) error {
	return cmd.runSubcommand(rb, opts, args)
}

// parseIndex tentatively parses a token as a positional index. The token
// counts as an index only when it parses as an integer in its entirety;
// anything else falls through to subcommand matching.
func parseIndex(token string) (int, bool) {
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, false
	}
	return n, true
}
