package vopt

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cbkit/viewq/errs"
)

func TestValue_Variants(t *testing.T) {
	require.False(t, Text("x").IsNumber())
	require.True(t, Number(1).IsNumber())
	require.Equal(t, "x", Text("x").String())
	require.Equal(t, "-7", Number(-7).String())
}

func TestJSON(t *testing.T) {
	v, err := JSON([]any{"us", "tx"})
	require.NoError(t, err)
	require.False(t, v.IsNumber())
	require.Equal(t, `["us","tx"]`, v.String())

	var rec Record
	require.NoError(t, Assign(&rec, "startkey", v, WithPercentEncoding()))
	require.Equal(t, "%5B%22us%22%2C%22tx%22%5D", rec.Value())
}

func TestJSON_Primitive(t *testing.T) {
	v, err := JSON("brewery_1")
	require.NoError(t, err)
	require.Equal(t, `"brewery_1"`, v.String())

	var rec Record
	require.NoError(t, Assign(&rec, "key", v, WithPercentEncoding()))
	require.Equal(t, "%22brewery_1%22", rec.Value())
}

func TestJSON_Unencodable(t *testing.T) {
	_, err := JSON(make(chan int))
	require.ErrorIs(t, err, errs.ErrInvalidJSONValue)
}
