package emulated

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZephyraSilentis/libratbag/pkg/ratbag"
)

func twoProfileSpec() *DeviceSpec {
	return &DeviceSpec{
		Name:         "Emulated Mouse",
		Capabilities: []string{"switchable-profile", "button-key"},
		Buttons:      4,
		Profiles: []*ProfileSpec{
			{Active: true, Resolutions: []*ResolutionSpec{{DPI: 800, Rate: 500, Active: true}}},
			{Resolutions: []*ResolutionSpec{{DPI: 1600, Rate: 1000, Active: true}}},
		},
	}
}

func TestOpenDevice_UnknownPath(t *testing.T) {
	e := New()

	_, err := e.OpenDevice("/dev/input/event0")

	require.Error(t, err)
	assert.Equal(t, 1, e.Stats().OpenCalls)
}

func TestOpenDevice_NormalizesButtons(t *testing.T) {
	e := New()
	e.AddDevice("/dev/input/event0", twoProfileSpec())

	dev, err := e.OpenDevice("/dev/input/event0")
	require.NoError(t, err)
	defer dev.Release()

	assert.Equal(t, 4, dev.NumButtons())

	profile, err := dev.ProfileByIndex(0)
	require.NoError(t, err)
	defer profile.Release()

	// Button list was padded to the device's button count.
	for i := 0; i < 4; i++ {
		button, err := profile.ButtonByIndex(i)
		require.NoError(t, err)
		assert.Equal(t, ratbag.ActionTypeNone, button.ActionType())
		button.Release()
	}
}

func TestDeviceNodes_SortedAndIncludesUnsupported(t *testing.T) {
	e := New()
	e.AddDevice("/dev/input/event3", twoProfileSpec())
	e.AddNode("/dev/input/event1")

	nodes, err := e.DeviceNodes()

	require.NoError(t, err)
	assert.Equal(t, []string{"/dev/input/event1", "/dev/input/event3"}, nodes)

	_, err = e.OpenDevice("/dev/input/event1")
	assert.Error(t, err, "bare nodes are not supported devices")
}

func TestProfileByIndex_OutOfRange(t *testing.T) {
	e := New()
	e.AddDevice("/dev/input/event0", twoProfileSpec())

	dev, err := e.OpenDevice("/dev/input/event0")
	require.NoError(t, err)
	defer dev.Release()

	_, err = dev.ProfileByIndex(2)
	assert.ErrorIs(t, err, ratbag.ErrOutOfRange)

	_, err = dev.ProfileByIndex(-1)
	assert.ErrorIs(t, err, ratbag.ErrOutOfRange)
}

func TestSetActive_IsExclusive(t *testing.T) {
	spec := twoProfileSpec()
	e := New()
	e.AddDevice("/dev/input/event0", spec)

	dev, err := e.OpenDevice("/dev/input/event0")
	require.NoError(t, err)
	defer dev.Release()

	profile, err := dev.ProfileByIndex(1)
	require.NoError(t, err)
	defer profile.Release()

	require.NoError(t, profile.SetActive())

	assert.False(t, spec.Profiles[0].Active)
	assert.True(t, spec.Profiles[1].Active)
}

func TestWriteErr_FailsMutations(t *testing.T) {
	spec := twoProfileSpec()
	e := New()
	e.AddDevice("/dev/input/event0", spec)
	e.WriteErr = assert.AnError

	dev, err := e.OpenDevice("/dev/input/event0")
	require.NoError(t, err)
	defer dev.Release()

	profile, err := dev.ProfileByIndex(1)
	require.NoError(t, err)
	defer profile.Release()

	assert.Error(t, profile.SetActive())
	assert.False(t, spec.Profiles[1].Active, "failed writes must not apply")
}

func TestRelease_Accounting(t *testing.T) {
	e := New()
	e.AddDevice("/dev/input/event0", twoProfileSpec())

	dev, err := e.OpenDevice("/dev/input/event0")
	require.NoError(t, err)

	profile, err := dev.ProfileByIndex(0)
	require.NoError(t, err)

	profile.Release()
	dev.Release()

	assert.Equal(t, 0, e.Leaked())
	assert.Equal(t, 0, e.Stats().DoubleReleased)

	dev.Release()
	assert.Equal(t, 1, e.Stats().DoubleReleased)
}

func TestButton_KeyOnlyForKeyMappings(t *testing.T) {
	spec := twoProfileSpec()
	spec.Profiles[0].ButtonSpecs = []*ButtonSpec{
		{Type: "left", Action: "button", Target: 1},
	}
	e := New()
	e.AddDevice("/dev/input/event0", spec)

	dev, err := e.OpenDevice("/dev/input/event0")
	require.NoError(t, err)
	defer dev.Release()

	profile, err := dev.ProfileByIndex(0)
	require.NoError(t, err)
	defer profile.Release()

	button, err := profile.ButtonByIndex(0)
	require.NoError(t, err)
	defer button.Release()

	code, mods := button.Key()
	assert.Zero(t, code)
	assert.Nil(t, mods)
	assert.Equal(t, ratbag.ActionTypeButton, button.ActionType())
	assert.Equal(t, 1, button.ButtonTarget())
}

const fixtureYAML = `
devices:
  /dev/input/event7:
    name: Fixture Mouse
    capabilities: [switchable-resolution, button-key]
    buttons: 6
    profiles:
      - active: true
        resolutions:
          - dpi: 1200
            rate: 500
            active: true
nodes:
  - /dev/input/event2
`

func TestLoad_Fixture(t *testing.T) {
	e, err := Load(strings.NewReader(fixtureYAML))
	require.NoError(t, err)

	nodes, err := e.DeviceNodes()
	require.NoError(t, err)
	assert.Equal(t, []string{"/dev/input/event2", "/dev/input/event7"}, nodes)

	dev, err := e.OpenDevice("/dev/input/event7")
	require.NoError(t, err)
	defer dev.Release()

	assert.Equal(t, "Fixture Mouse", dev.Name())
	assert.True(t, dev.HasCapability(ratbag.CapSwitchableResolution))
	assert.False(t, dev.HasCapability(ratbag.CapSwitchableProfile))
	assert.Equal(t, 6, dev.NumButtons())

	spec := e.Spec("/dev/input/event7")
	require.NotNil(t, spec)
	assert.NotEmpty(t, spec.ID, "devices get an ID on registration")
}

func TestLoadFile_SimulateFixture(t *testing.T) {
	e, err := LoadFile("testdata/devices.yaml")
	require.NoError(t, err)

	dev, err := e.OpenDevice("/dev/input/event4")
	require.NoError(t, err)
	defer dev.Release()

	assert.Equal(t, "Simulated Gaming Mouse", dev.Name())
	assert.Equal(t, 2, dev.NumProfiles())

	profile, err := dev.ProfileByIndex(0)
	require.NoError(t, err)
	defer profile.Release()

	button, err := profile.ButtonByIndex(3)
	require.NoError(t, err)
	defer button.Release()

	assert.Equal(t, ratbag.ButtonTypeThumb, button.Type())
	code, _ := button.Key()
	assert.Equal(t, 115, code)
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile("testdata/no-such-fixture.yaml")

	assert.Error(t, err)
}

func TestLoad_UnnamedDevice(t *testing.T) {
	_, err := Load(strings.NewReader("devices:\n  /dev/input/event0:\n    buttons: 2\n"))

	assert.Error(t, err)
}

func TestLoad_UnknownField(t *testing.T) {
	_, err := Load(strings.NewReader("devices:\n  /dev/x:\n    name: m\n    wheels: 3\n"))

	assert.Error(t, err)
}
