package styles

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainStylesLeaveTextUntouched(t *testing.T) {
	s := Plain()

	assert.True(t, s.Colorless())
	assert.Equal(t, "Result : 8", Paint(s.Result, "Result : 8"))
	assert.Equal(t, "Enter the first number:", Paint(s.Prompt, "Enter the first number:"))
}

func TestPaintKeepsLineSpacing(t *testing.T) {
	s := New(&bytes.Buffer{}, false)

	msg := "Invalid operation. \n Please choose +,-,* or /."
	assert.Equal(t, msg, Paint(s.Error, msg))
}

func TestDefaultColors(t *testing.T) {
	colors := DefaultColors()

	assert.NotEmpty(t, colors.Primary)
	assert.NotEmpty(t, colors.Success)
	assert.NotEmpty(t, colors.Error)
	assert.NotEqual(t, colors.Success, colors.Error)
}
