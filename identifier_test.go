package sdl_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	sdl "github.com/ikayzo/sdl-go"
)

func TestIdentifierValidation(t *testing.T) {
	_, err := sdl.NewTag("", "under_score")
	require.NoError(t, err)

	_, err = sdl.NewTag("", "dash-ed")
	require.NoError(t, err)

	_, err = sdl.NewTag("", "dotted.name")
	require.NoError(t, err)

	_, err = sdl.NewTag("", "")
	require.Error(t, err)

	_, err = sdl.NewTag("", "1leading")
	require.Error(t, err)

	_, err = sdl.NewTag("", "has space")
	require.Error(t, err)
}

func TestIdentifierValidationUnicodeLetters(t *testing.T) {
	_, err := sdl.NewTag("", "été")
	require.NoError(t, err)
}
