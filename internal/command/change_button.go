package command

import (
	"strconv"

	"github.com/ZephyraSilentis/libratbag/pkg/ratbag"
)

func cmdChangeButton(_ *Command, _ ratbag.Ratbag, opts *Options, args []string) error {
	if len(args) != 3 {
		return Usagef("change-button expects <button> <action> <arg>")
	}

	buttonIndex, err := strconv.Atoi(args[0])
	if err != nil {
		return Usagef("invalid button number '%s'", args[0])
	}
	actionKind := args[1]
	actionArg := args[2]

	// The action is encoded before the device is touched; malformed input
	// must never reach the hardware.
	action, err := parseButtonAction(actionKind, actionArg)
	if err != nil {
		return err
	}

	dev := opts.Device
	profile := opts.Profile

	if !dev.HasCapability(ratbag.CapButtonKey) {
		return Unsupportedf("device '%s' has no programmable buttons", dev.Name())
	}

	button, err := profile.ButtonByIndex(buttonIndex)
	if err != nil {
		return Unsupportedf("invalid button number %d", buttonIndex)
	}
	defer button.Release()

	if err := action.apply(button); err != nil {
		return Unsupportedf("unable to perform button %d mapping %s %s: %v",
			buttonIndex, actionKind, actionArg, err)
	}

	// Changes only take effect once the profile is re-activated.
	if err := profile.SetActive(); err != nil {
		return Devicef("unable to apply the current profile: %v", err)
	}

	return nil
}
