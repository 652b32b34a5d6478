package flycam

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func TestInputState_PressEdge(t *testing.T) {
	in := NewInputState()

	assert.True(t, in.Press(KeyEscape), "first press is an edge")
	assert.False(t, in.Press(KeyEscape), "held key repeating is not")
	assert.True(t, in.Down(KeyEscape))

	in.Release(KeyEscape)
	assert.False(t, in.Down(KeyEscape))
	assert.True(t, in.Press(KeyEscape))
}

func TestInputState_OutOfRangeKeys(t *testing.T) {
	in := NewInputState()

	for _, k := range []Key{KeyUnknown, keyCount, Key(-5), Key(10_000)} {
		assert.False(t, in.Press(k))
		assert.False(t, in.Down(k))
		in.Release(k)
	}
}

func TestInputState_Axes(t *testing.T) {
	tests := []struct {
		name              string
		keys              []Key
		forward, right, up float32
	}{
		{"none", nil, 0, 0, 0},
		{"forward", []Key{KeyW}, 1, 0, 0},
		{"backward", []Key{KeyS}, -1, 0, 0},
		{"cancel forward", []Key{KeyW, KeyS}, 0, 0, 0},
		{"strafe left", []Key{KeyA}, 0, -1, 0},
		{"strafe right", []Key{KeyD}, 0, 1, 0},
		{"cancel strafe", []Key{KeyA, KeyD}, 0, 0, 0},
		{"down", []Key{KeyQ}, 0, 0, -1},
		{"up", []Key{KeyE}, 0, 0, 1},
		{"diagonal climb", []Key{KeyW, KeyD, KeyE}, 1, 1, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := NewInputState()
			for _, k := range tc.keys {
				in.Press(k)
			}
			f, r, u := in.Axes()
			assert.Equal(t, tc.forward, f)
			assert.Equal(t, tc.right, r)
			assert.Equal(t, tc.up, u)
		})
	}
}

func TestInputState_ReleaseAll(t *testing.T) {
	in := NewInputState()
	in.Press(KeyW)
	in.Press(KeyE)
	in.ReleaseAll()

	f, _, u := in.Axes()
	assert.Zero(t, f)
	assert.Zero(t, u)
}

func TestKeyByName(t *testing.T) {
	k, ok := KeyByName(" Escape ")
	assert.True(t, ok)
	assert.Equal(t, KeyEscape, k)

	k, ok = KeyByName("esc")
	assert.True(t, ok)
	assert.Equal(t, KeyEscape, k)

	_, ok = KeyByName("hyper")
	assert.False(t, ok)
	assert.Equal(t, "w", KeyW.String())
}

func TestKeyFromGlfw(t *testing.T) {
	assert.Equal(t, KeyW, KeyFromGlfw(glfw.KeyW))
	assert.Equal(t, KeyEscape, KeyFromGlfw(glfw.KeyEscape))
	assert.Equal(t, KeyUnknown, KeyFromGlfw(glfw.KeyPrintScreen))

	for k := KeyA; k < keyCount; k++ {
		assert.Equal(t, k, KeyFromGlfw(keyToGlfw[k]), k.String())
	}
}
