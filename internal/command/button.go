package command

import (
	"github.com/ZephyraSilentis/libratbag/pkg/ratbag"
)

// cmdButton selects a button by positional index for its subcommands. The
// subcommand set is still empty, so any trailing input is a usage error;
// the node exists to keep the `button N <subcommand>` surface stable.
func cmdButton(cmd *Command, rb ratbag.Ratbag, opts *Options, args []string) error {
	if len(args) == 0 {
		return Usagef("missing button index")
	}

	if index, ok := parseIndex(args[0]); ok {
		if index < 0 || index >= opts.Device.NumButtons() {
			return Unsupportedf("invalid button number %d", index)
		}
		opts.Button = index
		args = args[1:]
	}

	return cmd.runSubcommand(rb, opts, args)
}
