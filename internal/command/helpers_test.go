package command

import (
	"bytes"
	"testing"

	"github.com/ZephyraSilentis/libratbag/pkg/ratbag/emulated"
)

// testDevice builds the standard two-profile test mouse. Profile 1 is
// active; its first resolution is active.
func testDevice() *emulated.DeviceSpec {
	return &emulated.DeviceSpec{
		Name: "Test Mouse",
		Capabilities: []string{
			"switchable-resolution",
			"switchable-profile",
			"button-key",
			"button-macros",
		},
		Buttons: 8,
		Profiles: []*emulated.ProfileSpec{
			{
				Default: true,
				Resolutions: []*emulated.ResolutionSpec{
					{DPI: 800, Rate: 500, Default: true},
					{DPI: 1600, Rate: 500, Active: true},
				},
			},
			{
				Active: true,
				Resolutions: []*emulated.ResolutionSpec{
					{DPI: 400, Rate: 250, Active: true, Default: true},
					{DPI: 3200, Rate: 1000},
				},
			},
		},
	}
}

const testPath = "/dev/input/event4"

// newTestEmulator registers the standard test mouse under testPath.
func newTestEmulator() *emulated.Emulator {
	e := emulated.New()
	e.AddDevice(testPath, testDevice())
	return e
}

// runTokens dispatches one token sequence against the full command tree and
// returns the resulting status and captured output. The invocation context
// is released before returning, as the CLI entry point does.
func runTokens(t *testing.T, e *emulated.Emulator, tokens ...string) (Status, string) {
	t.Helper()

	var buf bytes.Buffer
	opts := NewOptions()
	opts.Out = &buf

	err := Run(Tree(), e, opts, tokens)
	opts.Release()

	return StatusOf(err), buf.String()
}

// assertNoLeaks verifies that every handle the run acquired was released
// exactly once.
func assertNoLeaks(t *testing.T, e *emulated.Emulator) {
	t.Helper()

	stats := e.Stats()
	if leaked := e.Leaked(); leaked != 0 {
		t.Errorf("leaked %d handles (acquired %d, released %d)", leaked, stats.Acquired, stats.Released)
	}
	if stats.DoubleReleased != 0 {
		t.Errorf("%d handles released more than once", stats.DoubleReleased)
	}
}
