package enum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type color string

var (
	red  = New(color("red"))
	blue = New(color("blue"))
)

func Test_ToEnum(t *testing.T) {
	c, err := ToEnum[color]("red")
	require.NoError(t, err)
	require.Equal(t, red, c)

	_, err = ToEnum[color]("green")
	require.Error(t, err)
}

func Test_ToList(t *testing.T) {
	require.Equal(t, []color{red, blue}, ToList[color]())
}
