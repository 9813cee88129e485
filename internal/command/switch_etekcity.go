package command

import (
	"fmt"

	"github.com/ZephyraSilentis/libratbag/pkg/evdev"
	"github.com/ZephyraSilentis/libratbag/pkg/ratbag"
)

// cmdSwitchEtekcity toggles a volume-key mapping on buttons 6 and 7 of the
// Etekcity mouse. The toggle is tri-state: if both buttons already report
// the volume keys they are disabled; if both are unassigned they are mapped
// to volume up/down; if they carry any other mapping nothing is changed.
func cmdSwitchEtekcity(_ *Command, _ ratbag.Ratbag, opts *Options, _ []string) error {
	dev := opts.Device
	profile := opts.Profile

	if !dev.HasCapability(ratbag.CapSwitchableProfile) {
		return Unsupportedf("device '%s' has no switchable profiles", dev.Name())
	}

	button6, err := profile.ButtonByIndex(6)
	if err != nil {
		return Unsupportedf("device '%s' has no button 6", dev.Name())
	}
	defer button6.Release()

	button7, err := profile.ButtonByIndex(7)
	if err != nil {
		return Unsupportedf("device '%s' has no button 7", dev.Name())
	}
	defer button7.Release()

	key6, _ := button6.Key()
	key7, _ := button7.Key()

	switch {
	case key6 == evdev.KeyVolumeUp && key7 == evdev.KeyVolumeDown:
		if err := button6.Disable(); err != nil {
			return Devicef("unable to disable button 6: %v", err)
		}
		if err := button7.Disable(); err != nil {
			return Devicef("unable to disable button 7: %v", err)
		}
		fmt.Fprintf(opts.Out, "Switched the current profile of '%s' to not report the volume keys\n",
			dev.Name())

	case button6.ActionType() == ratbag.ActionTypeNone && button7.ActionType() == ratbag.ActionTypeNone:
		if err := button6.SetKey(evdev.KeyVolumeUp, nil); err != nil {
			return Devicef("unable to map button 6: %v", err)
		}
		if err := button7.SetKey(evdev.KeyVolumeDown, nil); err != nil {
			return Devicef("unable to map button 7: %v", err)
		}
		fmt.Fprintf(opts.Out, "Switched the current profile of '%s' to report the volume keys\n",
			dev.Name())

	default:
		// The buttons carry some other mapping; refuse to clobber it.
		fmt.Fprintf(opts.Out, "Buttons 6 and 7 of '%s' are mapped to something else, not touching them\n",
			dev.Name())
	}

	return nil
}
