package command

import (
	"fmt"

	"github.com/ZephyraSilentis/libratbag/pkg/ratbag"
)

// cmdProfile selects the profile the nested subcommands operate on. A token
// that fully parses as an integer picks the profile by explicit index;
// anything else falls through to the active profile and subcommand matching.
func cmdProfile(cmd *Command, rb ratbag.Ratbag, opts *Options, args []string) error {
	if len(args) == 0 {
		return Usagef("missing profile subcommand")
	}

	dev := opts.Device

	if index, ok := parseIndex(args[0]); ok {
		profile, err := dev.ProfileByIndex(index)
		if err != nil {
			return Unsupportedf("unable to find profile %d on '%s'", index, dev.Name())
		}
		opts.setProfile(profile)
		args = args[1:]
	} else {
		profile, err := activeProfile(dev)
		if err != nil {
			return err
		}
		opts.setProfile(profile)
	}

	return cmd.runSubcommand(rb, opts, args)
}

func cmdProfileActiveGet(_ *Command, _ ratbag.Ratbag, opts *Options, _ []string) error {
	dev := opts.Device

	// Devices without switchable profiles, or with a single profile, are
	// always on profile 0.
	if !dev.HasCapability(ratbag.CapSwitchableProfile) || dev.NumProfiles() <= 1 {
		fmt.Fprintf(opts.Out, "0\n")
		return nil
	}

	profile, err := activeProfile(dev)
	if err != nil {
		return err
	}
	defer profile.Release()

	fmt.Fprintf(opts.Out, "%d\n", profile.Index())
	return nil
}

func cmdProfileActiveSet(_ *Command, _ ratbag.Ratbag, opts *Options, args []string) error {
	if len(args) != 1 {
		return Usagef("profile active set expects an index")
	}

	index, ok := parseIndex(args[0])
	if !ok {
		return Usagef("invalid profile index '%s'", args[0])
	}

	dev := opts.Device

	if !dev.HasCapability(ratbag.CapSwitchableProfile) {
		return Unsupportedf("device '%s' has no switchable profiles", dev.Name())
	}

	profile, err := dev.ProfileByIndex(index)
	if err != nil {
		return Unsupportedf("'%d' is not a valid profile on '%s'", index, dev.Name())
	}
	defer profile.Release()

	if profile.IsActive() {
		fmt.Fprintf(opts.Out, "'%s' is already in profile '%d'\n", dev.Name(), index)
		return nil
	}

	if err := profile.SetActive(); err != nil {
		return Devicef("unable to switch '%s' to profile '%d': %v", dev.Name(), index, err)
	}

	fmt.Fprintf(opts.Out, "Switched '%s' to profile '%d'\n", dev.Name(), index)
	return nil
}
