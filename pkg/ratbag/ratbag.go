// Package ratbag defines the device-abstraction contracts consumed by the
// ratbagctl command core. It models programmable pointing devices as a tree
// of handles (device -> profile -> resolution/button), mirroring the handle
// lifecycle of the underlying hardware library: every handle obtained from an
// accessor is owned by the caller and must be released exactly once.
package ratbag

import "errors"

// ErrOutOfRange is returned by the indexed accessors when the requested
// profile, resolution or button index does not exist on the device.
var ErrOutOfRange = errors.New("index out of range")

// LogPriority controls how much protocol detail a backend reports through
// the logging layer.
type LogPriority int

const (
	// LogPriorityInfo is the default backend verbosity.
	LogPriorityInfo LogPriority = iota
	// LogPriorityDebug reports backend operations.
	LogPriorityDebug
	// LogPriorityRaw additionally reports raw protocol traffic.
	LogPriorityRaw
)

// DeviceCapability describes an optional device feature. Commands query
// capabilities before attempting the matching operation.
type DeviceCapability int

const (
	// CapSwitchableResolution marks devices whose resolution can be changed
	// at runtime.
	CapSwitchableResolution DeviceCapability = iota
	// CapSwitchableProfile marks devices with selectable profiles.
	CapSwitchableProfile
	// CapButtonKey marks devices whose buttons can be remapped to buttons
	// or key events.
	CapButtonKey
	// CapButtonMacros marks devices whose buttons can replay macros.
	CapButtonMacros
)

// ResolutionCapability describes an optional per-resolution feature.
type ResolutionCapability int

const (
	// CapSeparateXYResolution marks resolutions with independent horizontal
	// and vertical DPI values.
	CapSeparateXYResolution ResolutionCapability = iota
)

// ActionType identifies what a button is currently mapped to.
type ActionType int

const (
	// ActionTypeNone means the button is disabled.
	ActionTypeNone ActionType = iota
	// ActionTypeButton means the button triggers another logical button.
	ActionTypeButton
	// ActionTypeKey means the button triggers a keyboard event.
	ActionTypeKey
	// ActionTypeSpecial means the button triggers a device function.
	ActionTypeSpecial
	// ActionTypeMacro means the button replays a stored macro.
	ActionTypeMacro
	// ActionTypeUnknown is reported for mappings the backend cannot decode.
	ActionTypeUnknown
)

// String returns the human-readable name used in `info` output.
func (t ActionType) String() string {
	switch t {
	case ActionTypeNone:
		return "none"
	case ActionTypeButton:
		return "button"
	case ActionTypeKey:
		return "key"
	case ActionTypeSpecial:
		return "special"
	case ActionTypeMacro:
		return "macro"
	default:
		return "unknown"
	}
}

// MacroEventType identifies one entry in a macro event sequence.
type MacroEventType int

const (
	// MacroEventNone terminates a macro event sequence.
	MacroEventNone MacroEventType = iota
	// MacroEventKeyPressed is a key-down event.
	MacroEventKeyPressed
	// MacroEventKeyReleased is a key-up event.
	MacroEventKeyReleased
)

// ButtonType describes the physical location of a button on the device.
type ButtonType int

const (
	// ButtonTypeUnknown is reported when the backend cannot classify the button.
	ButtonTypeUnknown ButtonType = iota
	// ButtonTypeLeft is the primary button.
	ButtonTypeLeft
	// ButtonTypeMiddle is the wheel click.
	ButtonTypeMiddle
	// ButtonTypeRight is the secondary button.
	ButtonTypeRight
	// ButtonTypeThumb is the first thumb button.
	ButtonTypeThumb
	// ButtonTypeThumb2 is the second thumb button.
	ButtonTypeThumb2
	// ButtonTypeWheelUp is the wheel scroll-up detent.
	ButtonTypeWheelUp
	// ButtonTypeWheelDown is the wheel scroll-down detent.
	ButtonTypeWheelDown
	// ButtonTypeExtra is a vendor-specific extra button.
	ButtonTypeExtra
	// ButtonTypeSide is a side button.
	ButtonTypeSide
	// ButtonTypePinkie is a pinkie-side button.
	ButtonTypePinkie
)

// String returns the human-readable name used in `info` output.
func (t ButtonType) String() string {
	switch t {
	case ButtonTypeLeft:
		return "left"
	case ButtonTypeMiddle:
		return "middle"
	case ButtonTypeRight:
		return "right"
	case ButtonTypeThumb:
		return "thumb"
	case ButtonTypeThumb2:
		return "thumb2"
	case ButtonTypeWheelUp:
		return "wheel up"
	case ButtonTypeWheelDown:
		return "wheel down"
	case ButtonTypeExtra:
		return "extra"
	case ButtonTypeSide:
		return "side"
	case ButtonTypePinkie:
		return "pinkie"
	default:
		return "unknown"
	}
}

// SpecialAction identifies a named device function assignable to a button.
type SpecialAction int

const (
	// SpecialInvalid is the zero value; it is never a valid assignment.
	SpecialInvalid SpecialAction = iota
	// SpecialDoubleClick triggers a double click of the primary button.
	SpecialDoubleClick
	// SpecialWheelLeft tilts the wheel left.
	SpecialWheelLeft
	// SpecialWheelRight tilts the wheel right.
	SpecialWheelRight
	// SpecialWheelUp scrolls up.
	SpecialWheelUp
	// SpecialWheelDown scrolls down.
	SpecialWheelDown
	// SpecialRatchetModeSwitch toggles the wheel ratchet.
	SpecialRatchetModeSwitch
	// SpecialResolutionCycleUp cycles to the next resolution, wrapping.
	SpecialResolutionCycleUp
	// SpecialResolutionUp selects the next higher resolution.
	SpecialResolutionUp
	// SpecialResolutionDown selects the next lower resolution.
	SpecialResolutionDown
	// SpecialProfileCycleUp cycles to the next profile, wrapping.
	SpecialProfileCycleUp
	// SpecialProfileUp selects the next profile.
	SpecialProfileUp
	// SpecialProfileDown selects the previous profile.
	SpecialProfileDown
	// SpecialSecondMode shifts the button layer while held.
	SpecialSecondMode
	// SpecialBatteryLevel reports the battery level.
	SpecialBatteryLevel
)

// specialNames maps the command-line vocabulary to special actions. The
// names are part of the CLI surface and must stay stable.
var specialNames = map[string]SpecialAction{
	"doubleclick":         SpecialDoubleClick,
	"wheel-left":          SpecialWheelLeft,
	"wheel-right":         SpecialWheelRight,
	"wheel-up":            SpecialWheelUp,
	"wheel-down":          SpecialWheelDown,
	"ratchet-mode-switch": SpecialRatchetModeSwitch,
	"resolution-cycle-up": SpecialResolutionCycleUp,
	"resolution-up":       SpecialResolutionUp,
	"resolution-down":     SpecialResolutionDown,
	"profile-cycle-up":    SpecialProfileCycleUp,
	"profile-up":          SpecialProfileUp,
	"profile-down":        SpecialProfileDown,
	"second-mode":         SpecialSecondMode,
	"battery-level":       SpecialBatteryLevel,
}

// SpecialActionFromName resolves a command-line name to a special action.
// Unknown names return SpecialInvalid.
func SpecialActionFromName(name string) SpecialAction {
	return specialNames[name]
}

// String returns the command-line name of the special action, or "unknown"
// for values outside the vocabulary.
func (s SpecialAction) String() string {
	for name, action := range specialNames {
		if action == s {
			return name
		}
	}
	return "unknown"
}

// Ratbag is the entry point into a device backend. It enumerates candidate
// device nodes and opens devices by path. Implementations are synchronous;
// every call blocks until the hardware transaction completes.
type Ratbag interface {
	// OpenDevice opens the device behind the given filesystem path. The
	// returned handle is owned by the caller.
	OpenDevice(path string) (Device, error)

	// DeviceNodes lists the filesystem paths of candidate input device
	// nodes, in stable (sorted) order. Nodes that are not supported
	// devices are included; OpenDevice decides supportability.
	DeviceNodes() ([]string, error)

	// SetLogPriority adjusts how much protocol detail the backend logs.
	SetLogPriority(p LogPriority)
}

// Device is an opened device handle.
type Device interface {
	// Name returns the device's product name.
	Name() string

	// HasCapability reports whether the device supports the feature.
	HasCapability(cap DeviceCapability) bool

	// NumProfiles returns the number of profiles the device stores.
	NumProfiles() int

	// NumButtons returns the number of physical buttons.
	NumButtons() int

	// ProfileByIndex returns the profile at the given index. The returned
	// handle is owned by the caller. Returns ErrOutOfRange for indices
	// outside [0, NumProfiles).
	ProfileByIndex(index int) (Profile, error)

	// Release frees the handle. It must be called exactly once.
	Release()
}

// Profile is a configuration slot on a device.
type Profile interface {
	// Index returns the profile's position on the device.
	Index() int

	// IsActive reports whether this profile is currently in effect.
	IsActive() bool

	// IsDefault reports whether this is the factory/fallback profile.
	IsDefault() bool

	// SetActive makes this profile the active one.
	SetActive() error

	// NumResolutions returns the number of resolution slots.
	NumResolutions() int

	// ResolutionByIndex returns the resolution at the given index. The
	// returned handle is owned by the caller.
	ResolutionByIndex(index int) (Resolution, error)

	// ButtonByIndex returns the button at the given index within this
	// profile. The returned handle is owned by the caller.
	ButtonByIndex(index int) (Button, error)

	// Release frees the handle. It must be called exactly once.
	Release()
}

// Resolution is a DPI/report-rate slot within a profile.
type Resolution interface {
	// Index returns the resolution's position within its profile.
	Index() int

	// IsActive reports whether this resolution is currently in effect.
	IsActive() bool

	// IsDefault reports whether this is the profile's default resolution.
	IsDefault() bool

	// SetActive makes this resolution the active one within its profile.
	SetActive() error

	// HasCapability reports whether the resolution supports the feature.
	HasCapability(cap ResolutionCapability) bool

	// DPI returns the resolution in dots per inch. A zero value means the
	// slot is disabled.
	DPI() int

	// DPIXY returns separate horizontal and vertical DPI values. Only
	// meaningful when CapSeparateXYResolution is set.
	DPIXY() (x, y int)

	// SetDPI changes the resolution.
	SetDPI(dpi int) error

	// ReportRate returns the polling rate in Hz.
	ReportRate() int

	// Release frees the handle. It must be called exactly once.
	Release()
}

// Button is a physical button within a profile.
type Button interface {
	// Index returns the button's position.
	Index() int

	// Type returns the button's physical classification.
	Type() ButtonType

	// ActionType returns what the button is currently mapped to.
	ActionType() ActionType

	// Key returns the key code and modifiers the button is mapped to.
	// Only meaningful when ActionType is ActionTypeKey; otherwise the
	// returned code is zero.
	Key() (code int, modifiers []int)

	// ButtonTarget returns the logical button this button triggers. Only
	// meaningful when ActionType is ActionTypeButton.
	ButtonTarget() int

	// Special returns the device function this button triggers. Only
	// meaningful when ActionType is ActionTypeSpecial.
	Special() SpecialAction

	// MacroName returns the name of the stored macro. Only meaningful
	// when ActionType is ActionTypeMacro.
	MacroName() string

	// SetButton maps this button to another logical button.
	SetButton(target int) error

	// SetKey maps this button to a key event with optional modifiers.
	SetKey(code int, modifiers []int) error

	// SetSpecial maps this button to a device function.
	SetSpecial(action SpecialAction) error

	// SetMacro begins a macro assignment with the given name. Events are
	// staged with SetMacroEvent and committed with WriteMacro.
	SetMacro(name string) error

	// SetMacroEvent stages the macro event at the given sequence index.
	SetMacroEvent(index int, typ MacroEventType, keyCode int) error

	// WriteMacro commits the staged macro to the device as one write.
	WriteMacro() error

	// Disable unmaps the button.
	Disable() error

	// Release frees the handle. It must be called exactly once.
	Release()
}
