package command

import (
	"fmt"

	"github.com/ZephyraSilentis/libratbag/pkg/evdev"
	"github.com/ZephyraSilentis/libratbag/pkg/ratbag"
)

func cmdInfo(_ *Command, _ ratbag.Ratbag, opts *Options, _ []string) error {
	dev := opts.Device

	fmt.Fprintf(opts.Out, "Device '%s'\n", dev.Name())

	fmt.Fprintf(opts.Out, "Capabilities:")
	if dev.HasCapability(ratbag.CapSwitchableResolution) {
		fmt.Fprintf(opts.Out, " res")
	}
	if dev.HasCapability(ratbag.CapSwitchableProfile) {
		fmt.Fprintf(opts.Out, " profile")
	}
	if dev.HasCapability(ratbag.CapButtonKey) {
		fmt.Fprintf(opts.Out, " btn-key")
	}
	if dev.HasCapability(ratbag.CapButtonMacros) {
		fmt.Fprintf(opts.Out, " btn-macros")
	}
	fmt.Fprintf(opts.Out, "\n")

	numButtons := dev.NumButtons()
	fmt.Fprintf(opts.Out, "Number of buttons: %d\n", numButtons)

	numProfiles := dev.NumProfiles()
	fmt.Fprintf(opts.Out, "Profiles supported: %d\n", numProfiles)

	for i := 0; i < numProfiles; i++ {
		profile, err := dev.ProfileByIndex(i)
		if err != nil {
			continue
		}

		fmt.Fprintf(opts.Out, "  Profile %d%s%s\n", i,
			activeMarker(profile.IsActive()),
			defaultMarker(profile.IsDefault()))

		fmt.Fprintf(opts.Out, "    Resolutions:\n")
		for j := 0; j < profile.NumResolutions(); j++ {
			res, err := profile.ResolutionByIndex(j)
			if err != nil {
				continue
			}
			printResolution(opts, j, res)
			res.Release()
		}

		for b := 0; b < numButtons; b++ {
			button, err := profile.ButtonByIndex(b)
			if err != nil {
				continue
			}
			fmt.Fprintf(opts.Out, "    Button: %d type %s is mapped to '%s'\n",
				b, button.Type(), buttonActionString(button))
			button.Release()
		}

		profile.Release()
	}

	return nil
}

func printResolution(opts *Options, index int, res ratbag.Resolution) {
	dpi := res.DPI()
	rate := res.ReportRate()

	switch {
	case dpi == 0:
		fmt.Fprintf(opts.Out, "      %d: <disabled>\n", index)
	case res.HasCapability(ratbag.CapSeparateXYResolution):
		x, y := res.DPIXY()
		fmt.Fprintf(opts.Out, "      %d: %dx%ddpi @ %dHz%s%s\n", index, x, y, rate,
			activeMarker(res.IsActive()), defaultMarker(res.IsDefault()))
	default:
		fmt.Fprintf(opts.Out, "      %d: %ddpi @ %dHz%s%s\n", index, dpi, rate,
			activeMarker(res.IsActive()), defaultMarker(res.IsDefault()))
	}
}

// buttonActionString renders a button's current mapping for `info` output.
func buttonActionString(button ratbag.Button) string {
	switch button.ActionType() {
	case ratbag.ActionTypeButton:
		return fmt.Sprintf("button %d", button.ButtonTarget())
	case ratbag.ActionTypeKey:
		code, _ := button.Key()
		if name := evdev.NameFromCode(code); name != "" {
			return name
		}
		return fmt.Sprintf("key %d", code)
	case ratbag.ActionTypeSpecial:
		return fmt.Sprintf("special %s", button.Special())
	case ratbag.ActionTypeMacro:
		return fmt.Sprintf("macro '%s'", button.MacroName())
	case ratbag.ActionTypeNone:
		return "none"
	default:
		return "unknown"
	}
}

func activeMarker(active bool) string {
	if active {
		return " (active)"
	}
	return ""
}

func defaultMarker(isDefault bool) string {
	if isDefault {
		return " (default)"
	}
	return ""
}
