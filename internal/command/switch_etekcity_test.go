package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZephyraSilentis/libratbag/pkg/evdev"
	"github.com/ZephyraSilentis/libratbag/pkg/ratbag/emulated"
)

func TestSwitchEtekcity_MapsUnassignedButtons(t *testing.T) {
	e := newTestEmulator()

	status, out := runTokens(t, e, "switch-etekcity", testPath)

	require.Equal(t, StatusSuccess, status)
	assert.Contains(t, out, "to report the volume keys")

	buttons := e.Spec(testPath).Profiles[1].ButtonSpecs
	assert.Equal(t, "key", buttons[6].Action)
	assert.Equal(t, evdev.KeyVolumeUp, buttons[6].Key)
	assert.Equal(t, "key", buttons[7].Action)
	assert.Equal(t, evdev.KeyVolumeDown, buttons[7].Key)
	assertNoLeaks(t, e)
}

func TestSwitchEtekcity_DisablesVolumeButtons(t *testing.T) {
	e := emulated.New()
	spec := testDevice()
	e.AddDevice(testPath, spec)
	spec.Profiles[1].ButtonSpecs[6] = &emulated.ButtonSpec{Action: "key", Key: evdev.KeyVolumeUp}
	spec.Profiles[1].ButtonSpecs[7] = &emulated.ButtonSpec{Action: "key", Key: evdev.KeyVolumeDown}

	status, out := runTokens(t, e, "switch-etekcity", testPath)

	require.Equal(t, StatusSuccess, status)
	assert.Contains(t, out, "to not report the volume keys")

	buttons := spec.Profiles[1].ButtonSpecs
	assert.Equal(t, "none", buttons[6].Action)
	assert.Equal(t, "none", buttons[7].Action)
	assertNoLeaks(t, e)
}

// Buttons configured for something else are left alone.
func TestSwitchEtekcity_ForeignMappingIsPreserved(t *testing.T) {
	e := emulated.New()
	spec := testDevice()
	e.AddDevice(testPath, spec)
	spec.Profiles[1].ButtonSpecs[6] = &emulated.ButtonSpec{Action: "key", Key: evdev.KeyA}

	status, out := runTokens(t, e, "switch-etekcity", testPath)

	require.Equal(t, StatusSuccess, status)
	assert.Contains(t, out, "not touching them")
	assert.Equal(t, evdev.KeyA, spec.Profiles[1].ButtonSpecs[6].Key)
	assertNoLeaks(t, e)
}

func TestSwitchEtekcity_NoSwitchableProfiles(t *testing.T) {
	e := emulated.New()
	spec := testDevice()
	spec.Capabilities = []string{"button-key"}
	e.AddDevice(testPath, spec)

	status, _ := runTokens(t, e, "switch-etekcity", testPath)

	assert.Equal(t, StatusUnsupported, status)
	assertNoLeaks(t, e)
}

func TestSwitchEtekcity_TooFewButtons(t *testing.T) {
	e := emulated.New()
	spec := testDevice()
	spec.Buttons = 4
	e.AddDevice(testPath, spec)

	status, _ := runTokens(t, e, "switch-etekcity", testPath)

	assert.Equal(t, StatusUnsupported, status)
	assertNoLeaks(t, e)
}
