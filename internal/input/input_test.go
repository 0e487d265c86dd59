package input_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"scene-demos/internal/input"
)

func TestWithKeys(t *testing.T) {
	var base input.State
	s := base.WithKeys(input.KeyW, input.KeyG)

	assert.True(t, s.Down(input.KeyW))
	assert.True(t, s.Down(input.KeyG))
	assert.False(t, s.Down(input.KeyS))
	assert.False(t, base.Down(input.KeyW), "WithKeys must not modify the receiver")
}

func TestOutOfRange(t *testing.T) {
	s := input.State{}.WithKeys(input.Key(-1), input.Key(999)).WithPressed(input.Button(7))

	assert.False(t, s.Down(input.Key(-1)))
	assert.False(t, s.Down(input.Key(999)))
	assert.False(t, s.Pressed(input.Button(7)))
}

func TestPressed(t *testing.T) {
	s := input.State{}.WithPressed(input.ButtonRight)

	assert.True(t, s.Pressed(input.ButtonRight))
	assert.False(t, s.Pressed(input.ButtonLeft))
}

func TestMouseMoved(t *testing.T) {
	assert.False(t, input.State{MouseX: 10, MouseY: 10}.MouseMoved())
	assert.True(t, input.State{DeltaY: -1}.MouseMoved())
}

func TestKeysCoversEveryKey(t *testing.T) {
	assert.Contains(t, input.Keys, input.KeyA)
	assert.Contains(t, input.Keys, input.KeyEscape)
	assert.Len(t, input.Keys, int(input.KeyEscape)+1)
}
