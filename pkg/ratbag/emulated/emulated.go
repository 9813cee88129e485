// Package emulated provides an in-memory ratbag backend. It backs the test
// suite and the --simulate developer mode with devices defined in code or
// loaded from YAML fixtures, and it keeps acquire/release accounting so
// tests can assert that every handle is released exactly once.
package emulated

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/ZephyraSilentis/libratbag/internal/logger"
	"github.com/ZephyraSilentis/libratbag/pkg/ratbag"
)

// Stats tracks handle lifecycle accounting across one emulator.
type Stats struct {
	// Acquired counts handles handed out to callers.
	Acquired int
	// Released counts first releases of handed-out handles.
	Released int
	// DoubleReleased counts releases of already-released handles.
	DoubleReleased int
	// OpenCalls counts OpenDevice invocations, successful or not.
	OpenCalls int
	// MacroCommits counts WriteMacro calls.
	MacroCommits int
}

// Emulator implements ratbag.Ratbag over in-memory device specs.
type Emulator struct {
	devices map[string]*DeviceSpec
	nodes   map[string]bool

	priority ratbag.LogPriority
	proto    *log.Logger

	// WriteErr, when set, is returned by every mutating device call.
	// Tests use it to exercise device-error paths.
	WriteErr error

	stats Stats
}

// New returns an emulator with no devices.
func New() *Emulator {
	return &Emulator{
		devices: make(map[string]*DeviceSpec),
		nodes:   make(map[string]bool),
		proto:   logger.NewStyledLogger("emulated"),
	}
}

// AddDevice registers a device spec under the given path. The spec is
// normalized in place (button arrays sized, an ID assigned) and remains
// visible to the caller, so tests can inspect mutations after a run.
func (e *Emulator) AddDevice(path string, spec *DeviceSpec) {
	spec.normalize()
	e.devices[path] = spec
	e.nodes[path] = true
}

// AddNode registers a device node that exists on the filesystem but is not
// a supported device: it shows up in DeviceNodes and fails to open.
func (e *Emulator) AddNode(path string) {
	e.nodes[path] = true
}

// Spec returns the spec registered under path, or nil.
func (e *Emulator) Spec(path string) *DeviceSpec {
	return e.devices[path]
}

// Stats returns a copy of the lifecycle accounting.
func (e *Emulator) Stats() Stats {
	return e.stats
}

// Leaked returns the number of handles acquired but never released.
func (e *Emulator) Leaked() int {
	return e.stats.Acquired - e.stats.Released
}

// OpenDevice implements ratbag.Ratbag.
func (e *Emulator) OpenDevice(path string) (ratbag.Device, error) {
	e.stats.OpenCalls++
	e.raw("open", "path", path)

	spec, ok := e.devices[path]
	if !ok {
		return nil, fmt.Errorf("no supported device at %s", path)
	}
	return e.acquireDevice(spec), nil
}

// DeviceNodes implements ratbag.Ratbag.
func (e *Emulator) DeviceNodes() ([]string, error) {
	nodes := make([]string, 0, len(e.nodes))
	for path := range e.nodes {
		nodes = append(nodes, path)
	}
	sort.Strings(nodes)
	return nodes, nil
}

// SetLogPriority implements ratbag.Ratbag.
func (e *Emulator) SetLogPriority(p ratbag.LogPriority) {
	e.priority = p
	if p >= ratbag.LogPriorityDebug {
		e.proto.SetLevel(log.DebugLevel)
	}
}

// raw reports emulated protocol traffic when raw logging is requested.
func (e *Emulator) raw(op string, keyvals ...interface{}) {
	if e.priority < ratbag.LogPriorityRaw {
		return
	}
	e.proto.Debug(op, keyvals...)
}

// write runs a mutating device operation, honoring the injected WriteErr.
func (e *Emulator) write(op string, apply func(), keyvals ...interface{}) error {
	e.raw(op, keyvals...)
	if e.WriteErr != nil {
		return e.WriteErr
	}
	apply()
	return nil
}

func (e *Emulator) acquireDevice(spec *DeviceSpec) *device {
	e.stats.Acquired++
	return &device{e: e, spec: spec}
}

func (e *Emulator) acquireProfile(dev *DeviceSpec, spec *ProfileSpec, index int) *profile {
	e.stats.Acquired++
	return &profile{e: e, dev: dev, spec: spec, index: index}
}

func (e *Emulator) acquireResolution(dev *DeviceSpec, prof *ProfileSpec, spec *ResolutionSpec, index int) *resolution {
	e.stats.Acquired++
	return &resolution{e: e, dev: dev, prof: prof, spec: spec, index: index}
}

func (e *Emulator) acquireButton(dev *DeviceSpec, spec *ButtonSpec, index int) *button {
	e.stats.Acquired++
	return &button{e: e, dev: dev, spec: spec, index: index}
}

// release records a handle release, flagging double releases.
func (e *Emulator) release(released *bool) {
	if *released {
		e.stats.DoubleReleased++
		return
	}
	*released = true
	e.stats.Released++
}

// device implements ratbag.Device.
type device struct {
	e        *Emulator
	spec     *DeviceSpec
	released bool
}

func (d *device) Name() string { return d.spec.Name }

func (d *device) HasCapability(cap ratbag.DeviceCapability) bool {
	return d.spec.hasCapability(cap)
}

func (d *device) NumProfiles() int { return len(d.spec.Profiles) }

func (d *device) NumButtons() int { return d.spec.Buttons }

func (d *device) ProfileByIndex(index int) (ratbag.Profile, error) {
	if index < 0 || index >= len(d.spec.Profiles) {
		return nil, fmt.Errorf("profile %d on '%s': %w", index, d.spec.Name, ratbag.ErrOutOfRange)
	}
	return d.e.acquireProfile(d.spec, d.spec.Profiles[index], index), nil
}

func (d *device) Release() { d.e.release(&d.released) }

// profile implements ratbag.Profile.
type profile struct {
	e        *Emulator
	dev      *DeviceSpec
	spec     *ProfileSpec
	index    int
	released bool
}

func (p *profile) Index() int { return p.index }

func (p *profile) IsActive() bool { return p.spec.Active }

func (p *profile) IsDefault() bool { return p.spec.Default }

func (p *profile) SetActive() error {
	return p.e.write("profile set-active", func() {
		for _, other := range p.dev.Profiles {
			other.Active = false
		}
		p.spec.Active = true
	}, "device", p.dev.Name, "profile", p.index)
}

func (p *profile) NumResolutions() int { return len(p.spec.Resolutions) }

func (p *profile) ResolutionByIndex(index int) (ratbag.Resolution, error) {
	if index < 0 || index >= len(p.spec.Resolutions) {
		return nil, fmt.Errorf("resolution %d in profile %d: %w", index, p.index, ratbag.ErrOutOfRange)
	}
	return p.e.acquireResolution(p.dev, p.spec, p.spec.Resolutions[index], index), nil
}

func (p *profile) ButtonByIndex(index int) (ratbag.Button, error) {
	if index < 0 || index >= len(p.spec.ButtonSpecs) {
		return nil, fmt.Errorf("button %d in profile %d: %w", index, p.index, ratbag.ErrOutOfRange)
	}
	return p.e.acquireButton(p.dev, p.spec.ButtonSpecs[index], index), nil
}

func (p *profile) Release() { p.e.release(&p.released) }

// resolution implements ratbag.Resolution.
type resolution struct {
	e        *Emulator
	dev      *DeviceSpec
	prof     *ProfileSpec
	spec     *ResolutionSpec
	index    int
	released bool
}

func (r *resolution) Index() int { return r.index }

func (r *resolution) IsActive() bool { return r.spec.Active }

func (r *resolution) IsDefault() bool { return r.spec.Default }

func (r *resolution) SetActive() error {
	return r.e.write("resolution set-active", func() {
		for _, other := range r.prof.Resolutions {
			other.Active = false
		}
		r.spec.Active = true
	}, "device", r.dev.Name, "resolution", r.index)
}

func (r *resolution) HasCapability(cap ratbag.ResolutionCapability) bool {
	return cap == ratbag.CapSeparateXYResolution && r.spec.SeparateXY
}

func (r *resolution) DPI() int { return r.spec.DPI }

func (r *resolution) DPIXY() (int, int) {
	if r.spec.DPIY != 0 {
		return r.spec.DPI, r.spec.DPIY
	}
	return r.spec.DPI, r.spec.DPI
}

func (r *resolution) SetDPI(dpi int) error {
	return r.e.write("resolution set-dpi", func() {
		r.spec.DPI = dpi
		if r.spec.DPIY != 0 {
			r.spec.DPIY = dpi
		}
	}, "device", r.dev.Name, "resolution", r.index, "dpi", dpi)
}

func (r *resolution) ReportRate() int { return r.spec.Rate }

func (r *resolution) Release() { r.e.release(&r.released) }

// button implements ratbag.Button. Macro assignment is staged: SetMacro
// names the pending macro, SetMacroEvent fills the staging area, and
// WriteMacro commits everything to the spec in one step.
type button struct {
	e        *Emulator
	dev      *DeviceSpec
	spec     *ButtonSpec
	index    int
	released bool

	pendingName   string
	pendingEvents []MacroEventSpec
}

func (b *button) Index() int { return b.index }

func (b *button) Type() ratbag.ButtonType { return b.spec.buttonType() }

func (b *button) ActionType() ratbag.ActionType { return b.spec.actionType() }

func (b *button) Key() (int, []int) {
	if b.spec.actionType() != ratbag.ActionTypeKey {
		return 0, nil
	}
	return b.spec.Key, b.spec.Modifiers
}

func (b *button) ButtonTarget() int { return b.spec.Target }

func (b *button) Special() ratbag.SpecialAction {
	return ratbag.SpecialActionFromName(b.spec.Special)
}

func (b *button) MacroName() string { return b.spec.Macro }

func (b *button) SetButton(target int) error {
	return b.e.write("button set-button", func() {
		b.spec.reset()
		b.spec.Action = "button"
		b.spec.Target = target
	}, "device", b.dev.Name, "button", b.index, "target", target)
}

func (b *button) SetKey(code int, modifiers []int) error {
	return b.e.write("button set-key", func() {
		b.spec.reset()
		b.spec.Action = "key"
		b.spec.Key = code
		b.spec.Modifiers = modifiers
	}, "device", b.dev.Name, "button", b.index, "key", code)
}

func (b *button) SetSpecial(action ratbag.SpecialAction) error {
	return b.e.write("button set-special", func() {
		b.spec.reset()
		b.spec.Action = "special"
		b.spec.Special = action.String()
	}, "device", b.dev.Name, "button", b.index, "special", action.String())
}

func (b *button) SetMacro(name string) error {
	return b.e.write("button set-macro", func() {
		b.pendingName = name
		b.pendingEvents = nil
	}, "device", b.dev.Name, "button", b.index, "macro", name)
}

func (b *button) SetMacroEvent(index int, typ ratbag.MacroEventType, keyCode int) error {
	return b.e.write("button set-macro-event", func() {
		for len(b.pendingEvents) <= index {
			b.pendingEvents = append(b.pendingEvents, MacroEventSpec{})
		}
		b.pendingEvents[index] = MacroEventSpec{Event: macroEventName(typ), Key: keyCode}
	}, "device", b.dev.Name, "button", b.index, "event", index, "key", keyCode)
}

func (b *button) WriteMacro() error {
	b.e.stats.MacroCommits++
	return b.e.write("button write-macro", func() {
		b.spec.reset()
		b.spec.Action = "macro"
		b.spec.Macro = b.pendingName
		b.spec.MacroEvents = b.pendingEvents
		b.pendingName = ""
		b.pendingEvents = nil
	}, "device", b.dev.Name, "button", b.index)
}

func (b *button) Disable() error {
	return b.e.write("button disable", func() {
		b.spec.reset()
		b.spec.Action = "none"
	}, "device", b.dev.Name, "button", b.index)
}

func (b *button) Release() { b.e.release(&b.released) }

func macroEventName(typ ratbag.MacroEventType) string {
	switch typ {
	case ratbag.MacroEventKeyPressed:
		return "press"
	case ratbag.MacroEventKeyReleased:
		return "release"
	default:
		return "none"
	}
}

// newDeviceID labels each registered device for debug logging.
func newDeviceID() string {
	return uuid.NewString()
}
