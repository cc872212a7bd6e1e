package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNumberString(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{3, "3"},
		{-3, "-3"},
		{3.5, "3.5"},
		{123.456, "123.456"},
		{0.5, "0.5"},
		{100000000, "100000000"},
	}
	for _, c := range cases {
		require.Equal(t, c.want, Number(c.in).String())
	}
}

func TestTruth(t *testing.T) {
	require.False(t, Nil.Truth())
	require.False(t, False.Truth())
	require.True(t, True.Truth())
	require.True(t, Number(0).Truth())
	require.True(t, String("").Truth())
}

func TestEqual(t *testing.T) {
	vals := []Value{Nil, True, False, Number(0), Number(1), String("1"), String("")}

	// reflexive and symmetric
	for _, x := range vals {
		require.True(t, Equal(x, x))
		for _, y := range vals {
			require.Equal(t, Equal(x, y), Equal(y, x))
		}
	}

	// type-respecting: "1" == 1 is false, nil only equals nil
	require.False(t, Equal(String("1"), Number(1)))
	require.False(t, Equal(Nil, False))
	require.False(t, Equal(Number(0), False))
	require.True(t, Equal(Nil, Nil))
	require.True(t, Equal(Number(1), Number(1)))
	require.False(t, Equal(Number(1), Number(2)))
}
