// Package evdev provides a lookup table for linux input key names. It covers
// the subset of EV_KEY codes that programmable mice are remapped to and
// stands in for libevdev's event-code lookup.
package evdev

// Key codes as defined in linux/input-event-codes.h.
const (
	KeyEsc          = 1
	Key1            = 2
	Key2            = 3
	Key3            = 4
	Key4            = 5
	Key5            = 6
	Key6            = 7
	Key7            = 8
	Key8            = 9
	Key9            = 10
	Key0            = 11
	KeyTab          = 15
	KeyQ            = 16
	KeyW            = 17
	KeyE            = 18
	KeyR            = 19
	KeyT            = 20
	KeyY            = 21
	KeyU            = 22
	KeyI            = 23
	KeyO            = 24
	KeyP            = 25
	KeyEnter        = 28
	KeyLeftCtrl     = 29
	KeyA            = 30
	KeyS            = 31
	KeyD            = 32
	KeyF            = 33
	KeyG            = 34
	KeyH            = 35
	KeyJ            = 36
	KeyK            = 37
	KeyL            = 38
	KeyLeftShift    = 42
	KeyZ            = 44
	KeyX            = 45
	KeyC            = 46
	KeyV            = 47
	KeyB            = 48
	KeyN            = 49
	KeyM            = 50
	KeyLeftAlt      = 56
	KeySpace        = 57
	KeyMute         = 113
	KeyVolumeDown   = 114
	KeyVolumeUp     = 115
	KeyNextSong     = 163
	KeyPlayPause    = 164
	KeyPreviousSong = 165
	KeyBack         = 158
	KeyForward      = 159
)

var keyNames = map[string]int{
	"KEY_ESC":          KeyEsc,
	"KEY_1":            Key1,
	"KEY_2":            Key2,
	"KEY_3":            Key3,
	"KEY_4":            Key4,
	"KEY_5":            Key5,
	"KEY_6":            Key6,
	"KEY_7":            Key7,
	"KEY_8":            Key8,
	"KEY_9":            Key9,
	"KEY_0":            Key0,
	"KEY_TAB":          KeyTab,
	"KEY_Q":            KeyQ,
	"KEY_W":            KeyW,
	"KEY_E":            KeyE,
	"KEY_R":            KeyR,
	"KEY_T":            KeyT,
	"KEY_Y":            KeyY,
	"KEY_U":            KeyU,
	"KEY_I":            KeyI,
	"KEY_O":            KeyO,
	"KEY_P":            KeyP,
	"KEY_ENTER":        KeyEnter,
	"KEY_LEFTCTRL":     KeyLeftCtrl,
	"KEY_A":            KeyA,
	"KEY_S":            KeyS,
	"KEY_D":            KeyD,
	"KEY_F":            KeyF,
	"KEY_G":            KeyG,
	"KEY_H":            KeyH,
	"KEY_J":            KeyJ,
	"KEY_K":            KeyK,
	"KEY_L":            KeyL,
	"KEY_LEFTSHIFT":    KeyLeftShift,
	"KEY_Z":            KeyZ,
	"KEY_X":            KeyX,
	"KEY_C":            KeyC,
	"KEY_V":            KeyV,
	"KEY_B":            KeyB,
	"KEY_N":            KeyN,
	"KEY_M":            KeyM,
	"KEY_LEFTALT":      KeyLeftAlt,
	"KEY_SPACE":        KeySpace,
	"KEY_MUTE":         KeyMute,
	"KEY_VOLUMEDOWN":   KeyVolumeDown,
	"KEY_VOLUMEUP":     KeyVolumeUp,
	"KEY_NEXTSONG":     KeyNextSong,
	"KEY_PLAYPAUSE":    KeyPlayPause,
	"KEY_PREVIOUSSONG": KeyPreviousSong,
	"KEY_BACK":         KeyBack,
	"KEY_FORWARD":      KeyForward,
}

var keyCodes = func() map[int]string {
	m := make(map[int]string, len(keyNames))
	for name, code := range keyNames {
		m[code] = name
	}
	return m
}()

// CodeFromName resolves a KEY_* name to its event code. Unknown names
// resolve to zero, which is never a valid remap target.
func CodeFromName(name string) int {
	return keyNames[name]
}

// NameFromCode returns the KEY_* name for an event code, or an empty string
// if the code is not in the table.
func NameFromCode(code int) string {
	return keyCodes[code]
}
