package command

import (
	"fmt"

	"github.com/ZephyraSilentis/libratbag/pkg/ratbag"
)

// cmdResolution selects the resolution the nested subcommands operate on,
// by explicit index when the next token fully parses as an integer, by the
// profile's active resolution otherwise.
func cmdResolution(cmd *Command, rb ratbag.Ratbag, opts *Options, args []string) error {
	if len(args) == 0 {
		return Usagef("missing resolution subcommand")
	}

	profile := opts.Profile

	if index, ok := parseIndex(args[0]); ok {
		resolution, err := profile.ResolutionByIndex(index)
		if err != nil {
			return Unsupportedf("unable to retrieve resolution %d", index)
		}
		opts.setResolution(resolution)
		args = args[1:]
	} else {
		resolution, err := activeResolution(profile)
		if err != nil {
			return err
		}
		opts.setResolution(resolution)
	}

	return cmd.runSubcommand(rb, opts, args)
}

func cmdResolutionActiveGet(_ *Command, _ ratbag.Ratbag, opts *Options, _ []string) error {
	resolution, err := activeResolution(opts.Profile)
	if err != nil {
		return err
	}
	defer resolution.Release()

	fmt.Fprintf(opts.Out, "%d\n", resolution.Index())
	return nil
}

func cmdResolutionActiveSet(_ *Command, _ ratbag.Ratbag, opts *Options, args []string) error {
	if len(args) != 1 {
		return Usagef("resolution active set expects an index")
	}

	index, ok := parseIndex(args[0])
	if !ok {
		return Usagef("invalid resolution index '%s'", args[0])
	}

	dev := opts.Device

	if !dev.HasCapability(ratbag.CapSwitchableResolution) {
		return Unsupportedf("device '%s' has no switchable resolution", dev.Name())
	}

	resolution, err := opts.Profile.ResolutionByIndex(index)
	if err != nil {
		return Unsupportedf("'%d' is not a valid resolution on '%s'", index, dev.Name())
	}
	defer resolution.Release()

	if resolution.IsActive() {
		fmt.Fprintf(opts.Out, "'%s' is already in resolution '%d'\n", dev.Name(), index)
		return nil
	}

	if err := resolution.SetActive(); err != nil {
		return Devicef("unable to switch '%s' to resolution '%d': %v", dev.Name(), index, err)
	}

	fmt.Fprintf(opts.Out, "Switched '%s' to resolution '%d'\n", dev.Name(), index)
	return nil
}

func cmdResolutionDPIGet(_ *Command, _ ratbag.Ratbag, opts *Options, _ []string) error {
	fmt.Fprintf(opts.Out, "%d\n", opts.Resolution.DPI())
	return nil
}

func cmdResolutionDPISet(_ *Command, _ ratbag.Ratbag, opts *Options, args []string) error {
	if len(args) != 1 {
		return Usagef("dpi set expects a value")
	}

	dpi, ok := parseIndex(args[0])
	if !ok {
		return Usagef("invalid dpi value '%s'", args[0])
	}

	dev := opts.Device

	if !dev.HasCapability(ratbag.CapSwitchableResolution) {
		return Unsupportedf("device '%s' has no switchable resolution", dev.Name())
	}

	if err := opts.Resolution.SetDPI(dpi); err != nil {
		return Devicef("failed to change the dpi: %v", err)
	}

	return nil
}
