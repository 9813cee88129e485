package command

import (
	"io"
	"os"

	"github.com/ZephyraSilentis/libratbag/internal/logger"
	"github.com/ZephyraSilentis/libratbag/pkg/ratbag"
)

// Options is the mutable per-invocation context threaded through the
// dispatch chain. Each handle is resolved lazily the first time a command
// needs it and cached for the rest of the invocation.
//
// Invariant: Resolution is non-nil only if Profile is non-nil, and Profile
// is non-nil only if Device is non-nil. The invocation's owner must call
// Release exactly once on every exit path.
type Options struct {
	// Device is the opened device, nil until a command needs one.
	Device ratbag.Device

	// Profile is the selected profile, nil until resolved. It is either
	// the device's active profile or one picked by explicit index.
	Profile ratbag.Profile

	// Resolution is the selected resolution, nil until resolved.
	Resolution ratbag.Resolution

	// Button is the button index selected by the `button` node, or -1.
	Button int

	// Out is where command output is printed. Defaults to stdout.
	Out io.Writer

	released bool
}

// NewOptions returns an empty invocation context writing to stdout.
func NewOptions() *Options {
	return &Options{Button: -1, Out: os.Stdout}
}

// ensure resolves the context the given flags require, in dependency order:
// device, then profile, then resolution. When a device is needed and not yet
// resolved, the last visible token is consumed as the device path.
func (o *Options) ensure(rb ratbag.Ratbag, flags Flag, args *[]string) error {
	const needAny = NeedDevice | NeedProfile | NeedResolution

	if flags&needAny != 0 && o.Device == nil {
		if len(*args) == 0 {
			return Devicef("missing device path")
		}
		path := (*args)[len(*args)-1]
		dev, err := rb.OpenDevice(path)
		if err != nil {
			return Devicef("device '%s' is not supported", path)
		}
		logger.Debug("opened device", "path", path, "device", dev.Name())
		o.Device = dev
		*args = (*args)[:len(*args)-1]
	}

	if flags&(NeedProfile|NeedResolution) != 0 && o.Profile == nil {
		profile, err := activeProfile(o.Device)
		if err != nil {
			return err
		}
		o.Profile = profile
	}

	if flags&NeedResolution != 0 && o.Resolution == nil {
		resolution, err := activeResolution(o.Profile)
		if err != nil {
			return err
		}
		o.Resolution = resolution
	}

	return nil
}

// setProfile caches an explicitly selected profile, releasing any handle the
// context already held so accounting stays exactly-once.
func (o *Options) setProfile(p ratbag.Profile) {
	if o.Profile != nil {
		o.Profile.Release()
	}
	o.Profile = p
}

// setResolution caches an explicitly selected resolution.
func (o *Options) setResolution(r ratbag.Resolution) {
	if o.Resolution != nil {
		o.Resolution.Release()
	}
	o.Resolution = r
}

// Release frees every handle the invocation resolved, children first. It is
// idempotent so the owner can release unconditionally on every exit path.
func (o *Options) Release() {
	if o.released {
		return
	}
	o.released = true

	if o.Resolution != nil {
		o.Resolution.Release()
		o.Resolution = nil
	}
	if o.Profile != nil {
		o.Profile.Release()
		o.Profile = nil
	}
	if o.Device != nil {
		o.Device.Release()
		o.Device = nil
	}
}

// activeProfile scans the device's profiles in index order and returns the
// first one flagged active. The returned handle is owned by the caller.
func activeProfile(dev ratbag.Device) (ratbag.Profile, error) {
	for i := 0; i < dev.NumProfiles(); i++ {
		profile, err := dev.ProfileByIndex(i)
		if err != nil {
			continue
		}
		if profile.IsActive() {
			return profile, nil
		}
		profile.Release()
	}
	return nil, Devicef("failed to retrieve the active profile of '%s'", dev.Name())
}

// activeResolution scans the profile's resolutions in index order and
// returns the first one flagged active. The returned handle is owned by the
// caller.
func activeResolution(profile ratbag.Profile) (ratbag.Resolution, error) {
	for i := 0; i < profile.NumResolutions(); i++ {
		resolution, err := profile.ResolutionByIndex(i)
		if err != nil {
			continue
		}
		if resolution.IsActive() {
			return resolution, nil
		}
		resolution.Release()
	}
	return nil, Devicef("failed to retrieve the active resolution of profile %d", profile.Index())
}
