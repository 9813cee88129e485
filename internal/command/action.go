package command

import (
	"strconv"

	"github.com/ZephyraSilentis/libratbag/pkg/evdev"
	"github.com/ZephyraSilentis/libratbag/pkg/ratbag"
)

// MacroCapacity bounds the number of events a macro can carry.
const MacroCapacity = 64

// MacroEvent is one press/release step in a macro sequence.
type MacroEvent struct {
	Type    ratbag.MacroEventType
	KeyCode int
}

// Macro is a named, bounded event sequence. The sequence ends at the first
// MacroEventNone entry or at capacity.
type Macro struct {
	Name   string
	Events [MacroCapacity]MacroEvent
}

// Len returns the number of events before the terminator.
func (m *Macro) Len() int {
	for i, ev := range m.Events {
		if ev.Type == ratbag.MacroEventNone {
			return i
		}
	}
	return MacroCapacity
}

// ButtonAction is the tagged result of parsing a remap request. Exactly one
// variant is populated, selected by Type.
type ButtonAction struct {
	Type         ratbag.ActionType
	ButtonTarget int
	KeyCode      int
	Modifiers    []int
	Special      ratbag.SpecialAction
	Macro        Macro
}

// parseButtonAction encodes a (kind, argument) pair into a ButtonAction.
// Malformed input yields a usage error; range validation of button targets
// is left to the device backend.
func parseButtonAction(kind, arg string) (ButtonAction, error) {
	switch kind {
	case "button":
		target, err := strconv.Atoi(arg)
		if err != nil {
			return ButtonAction{}, Usagef("invalid button number '%s'", arg)
		}
		return ButtonAction{Type: ratbag.ActionTypeButton, ButtonTarget: target}, nil

	case "key":
		code := evdev.CodeFromName(arg)
		if code == 0 {
			return ButtonAction{}, Usagef("failed to resolve key %s", arg)
		}
		return ButtonAction{Type: ratbag.ActionTypeKey, KeyCode: code}, nil

	case "special":
		special := ratbag.SpecialActionFromName(arg)
		if special == ratbag.SpecialInvalid {
			return ButtonAction{}, Usagef("invalid special command '%s'", arg)
		}
		return ButtonAction{Type: ratbag.ActionTypeSpecial, Special: special}, nil

	case "macro":
		macro := macroFromString(arg)
		if macro.Len() == 0 {
			return ButtonAction{}, Usagef("invalid macro '%s'", arg)
		}
		return ButtonAction{Type: ratbag.ActionTypeMacro, Macro: macro}, nil

	default:
		return ButtonAction{}, Usagef("invalid button action '%s'", kind)
	}
}

// macroFromString builds one of the canned demonstration macros. The first
// character of the argument selects the macro; anything unrecognized yields
// an empty macro the caller must reject.
func macroFromString(arg string) Macro {
	var m Macro
	if arg == "" {
		return m
	}

	pressRelease := func(keys ...int) {
		for i, key := range keys {
			m.Events[2*i] = MacroEvent{Type: ratbag.MacroEventKeyPressed, KeyCode: key}
			m.Events[2*i+1] = MacroEvent{Type: ratbag.MacroEventKeyReleased, KeyCode: key}
		}
	}

	switch arg[0] {
	case 'f':
		m.Name = "foo"
		pressRelease(evdev.KeyF, evdev.KeyO, evdev.KeyO)
	case 'b':
		m.Name = "bar"
		pressRelease(evdev.KeyB, evdev.KeyA, evdev.KeyR)
	}

	return m
}

// apply writes the action to the button. Macros are transferred one event at
// a time, stopping at the terminator, then committed as a single write.
func (a *ButtonAction) apply(button ratbag.Button) error {
	switch a.Type {
	case ratbag.ActionTypeButton:
		return button.SetButton(a.ButtonTarget)

	case ratbag.ActionTypeKey:
		return button.SetKey(a.KeyCode, a.Modifiers)

	case ratbag.ActionTypeSpecial:
		return button.SetSpecial(a.Special)

	case ratbag.ActionTypeMacro:
		if err := button.SetMacro(a.Macro.Name); err != nil {
			return err
		}
		for i := 0; i < a.Macro.Len(); i++ {
			ev := a.Macro.Events[i]
			if err := button.SetMacroEvent(i, ev.Type, ev.KeyCode); err != nil {
				return err
			}
		}
		return button.WriteMacro()

	default:
		return Usagef("invalid button action type")
	}
}
