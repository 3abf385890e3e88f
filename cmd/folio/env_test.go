package main

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_splitList(t *testing.T) {
	require.Equal(t, []string{"AAPL", "MSFT"}, splitList(" aapl, msft,,"))
	require.Equal(t, []string{}, splitList(""))
}

func Test_splitInts(t *testing.T) {
	out, err := splitInts("1, 5,20")
	require.NoError(t, err)
	require.Equal(t, []int{1, 5, 20}, out)

	_, err = splitInts("1,x")
	require.Error(t, err)
}

func Test_parseWeights(t *testing.T) {
	out, err := parseWeights("vti=0.6, bnd=0.4")
	require.NoError(t, err)
	require.Equal(t, map[string]float64{"VTI": 0.6, "BND": 0.4}, out)

	_, err = parseWeights("vti")
	require.Error(t, err)
	_, err = parseWeights("vti=lots")
	require.Error(t, err)
}

func Test_usd(t *testing.T) {
	require.Equal(t, "$1,155.00", usd(decimal.NewFromInt(1155)))
	require.Equal(t, "$0.13", usd(decimal.RequireFromString("0.125")))
}
