package emulated

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ZephyraSilentis/libratbag/internal/logger"
	"github.com/ZephyraSilentis/libratbag/pkg/ratbag"
)

// DeviceSpec describes one emulated device. Specs double as the emulator's
// mutable state: device writes are applied to the spec, so a test that holds
// the spec can assert on the result of a command run.
type DeviceSpec struct {
	// ID labels the device in debug logs. Assigned on registration when
	// empty.
	ID string `yaml:"id,omitempty"`

	// Name is the product name reported by the device.
	Name string `yaml:"name"`

	// Capabilities lists device features by CLI name:
	// switchable-resolution, switchable-profile, button-key, button-macros.
	Capabilities []string `yaml:"capabilities,omitempty"`

	// Buttons is the number of physical buttons. Each profile's button
	// list is padded to this length on registration.
	Buttons int `yaml:"buttons"`

	// Profiles are the device's configuration slots, in index order.
	Profiles []*ProfileSpec `yaml:"profiles"`
}

// ProfileSpec describes one profile slot.
type ProfileSpec struct {
	Active  bool `yaml:"active,omitempty"`
	Default bool `yaml:"default,omitempty"`

	Resolutions []*ResolutionSpec `yaml:"resolutions,omitempty"`

	// ButtonSpecs carries the per-button mappings. Missing entries are
	// padded with unmapped buttons.
	ButtonSpecs []*ButtonSpec `yaml:"buttons,omitempty"`
}

// ResolutionSpec describes one resolution slot. A zero DPI marks the slot
// disabled.
type ResolutionSpec struct {
	DPI        int  `yaml:"dpi"`
	DPIY       int  `yaml:"dpi_y,omitempty"`
	Rate       int  `yaml:"rate,omitempty"`
	Active     bool `yaml:"active,omitempty"`
	Default    bool `yaml:"default,omitempty"`
	SeparateXY bool `yaml:"separate_xy,omitempty"`
}

// ButtonSpec describes one button's physical type and current mapping.
// Action selects the mapping kind: none, button, key, special or macro.
type ButtonSpec struct {
	Type   string `yaml:"type,omitempty"`
	Action string `yaml:"action,omitempty"`

	Target      int              `yaml:"target,omitempty"`
	Key         int              `yaml:"key,omitempty"`
	Modifiers   []int            `yaml:"modifiers,omitempty"`
	Special     string           `yaml:"special,omitempty"`
	Macro       string           `yaml:"macro,omitempty"`
	MacroEvents []MacroEventSpec `yaml:"macro_events,omitempty"`
}

// MacroEventSpec is one committed macro event: press or release of a key.
type MacroEventSpec struct {
	Event string `yaml:"event"`
	Key   int    `yaml:"key"`
}

// reset clears the mapping-specific fields before a new mapping is applied.
func (b *ButtonSpec) reset() {
	b.Target = 0
	b.Key = 0
	b.Modifiers = nil
	b.Special = ""
	b.Macro = ""
	b.MacroEvents = nil
}

func (b *ButtonSpec) actionType() ratbag.ActionType {
	switch b.Action {
	case "", "none":
		return ratbag.ActionTypeNone
	case "button":
		return ratbag.ActionTypeButton
	case "key":
		return ratbag.ActionTypeKey
	case "special":
		return ratbag.ActionTypeSpecial
	case "macro":
		return ratbag.ActionTypeMacro
	default:
		return ratbag.ActionTypeUnknown
	}
}

var buttonTypes = map[string]ratbag.ButtonType{
	"left":       ratbag.ButtonTypeLeft,
	"middle":     ratbag.ButtonTypeMiddle,
	"right":      ratbag.ButtonTypeRight,
	"thumb":      ratbag.ButtonTypeThumb,
	"thumb2":     ratbag.ButtonTypeThumb2,
	"wheel-up":   ratbag.ButtonTypeWheelUp,
	"wheel-down": ratbag.ButtonTypeWheelDown,
	"extra":      ratbag.ButtonTypeExtra,
	"side":       ratbag.ButtonTypeSide,
	"pinkie":     ratbag.ButtonTypePinkie,
}

func (b *ButtonSpec) buttonType() ratbag.ButtonType {
	return buttonTypes[b.Type]
}

var deviceCaps = map[string]ratbag.DeviceCapability{
	"switchable-resolution": ratbag.CapSwitchableResolution,
	"switchable-profile":    ratbag.CapSwitchableProfile,
	"button-key":            ratbag.CapButtonKey,
	"button-macros":         ratbag.CapButtonMacros,
}

func (d *DeviceSpec) hasCapability(cap ratbag.DeviceCapability) bool {
	for _, name := range d.Capabilities {
		if c, ok := deviceCaps[name]; ok && c == cap {
			return true
		}
	}
	return false
}

// normalize pads the per-profile button lists to the device's button count
// and assigns a device ID.
func (d *DeviceSpec) normalize() {
	if d.ID == "" {
		d.ID = newDeviceID()
	}
	for _, profile := range d.Profiles {
		for len(profile.ButtonSpecs) < d.Buttons {
			profile.ButtonSpecs = append(profile.ButtonSpecs, &ButtonSpec{})
		}
	}
	logger.Debug("registered emulated device", "device", d.Name, "id", d.ID)
}

// Fixture is the YAML document format for --simulate and test fixtures:
// a map of device-node paths to device specs.
type Fixture struct {
	Devices map[string]*DeviceSpec `yaml:"devices"`

	// Nodes lists extra device nodes that exist but are unsupported.
	Nodes []string `yaml:"nodes,omitempty"`
}

// Load builds an emulator from a YAML fixture document.
func Load(r io.Reader) (*Emulator, error) {
	var fixture Fixture
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fixture); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}

	e := New()
	for path, spec := range fixture.Devices {
		if spec.Name == "" {
			return nil, fmt.Errorf("fixture device %s has no name", path)
		}
		e.AddDevice(path, spec)
	}
	for _, path := range fixture.Nodes {
		e.AddNode(path)
	}
	return e, nil
}

// LoadFile builds an emulator from a YAML fixture file.
func LoadFile(path string) (*Emulator, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening fixture: %w", err)
	}
	defer f.Close()
	return Load(f)
}
