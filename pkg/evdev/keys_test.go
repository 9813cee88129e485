package evdev

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeFromName(t *testing.T) {
	assert.Equal(t, 30, CodeFromName("KEY_A"))
	assert.Equal(t, 115, CodeFromName("KEY_VOLUMEUP"))
	assert.Equal(t, 114, CodeFromName("KEY_VOLUMEDOWN"))
}

func TestCodeFromName_Unknown(t *testing.T) {
	assert.Zero(t, CodeFromName("KEY_BOGUS"))
	assert.Zero(t, CodeFromName(""))
	assert.Zero(t, CodeFromName("key_a"), "names are case sensitive")
}

func TestNameFromCode(t *testing.T) {
	assert.Equal(t, "KEY_A", NameFromCode(KeyA))
	assert.Equal(t, "KEY_VOLUMEUP", NameFromCode(KeyVolumeUp))
	assert.Empty(t, NameFromCode(0))
	assert.Empty(t, NameFromCode(9999))
}

func TestTable_RoundTrips(t *testing.T) {
	for name, code := range keyNames {
		assert.Equal(t, name, NameFromCode(code), "code %d", code)
		assert.Equal(t, code, CodeFromName(name))
	}
}
