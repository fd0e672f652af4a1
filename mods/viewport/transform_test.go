package viewport_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mapsmith/mapview/mods/nums"
	"github.com/mapsmith/mapview/mods/viewport"
)

func TestDefaultTransform(t *testing.T) {
	trans := viewport.DefaultTransform()
	require.Equal(t, 0.0, trans.X)
	require.Equal(t, 0.0, trans.Y)
	require.Equal(t, nums.DefaultScale, trans.K)
	require.Equal(t, 0.0, trans.R)
}

func TestTransformString(t *testing.T) {
	trans := viewport.Transform{X: 10, Y: -20, K: 128, R: 1.5}
	require.Equal(t, "translate(10,-20) scale(128) rotate(1.5)", trans.String())
}

func TestTransformJSON(t *testing.T) {
	trans := viewport.Transform{X: 10, Y: 20, K: 100, R: 1.5}
	b, err := json.Marshal(trans)
	require.NoError(t, err)
	require.JSONEq(t, `{"x":10,"y":20,"k":100,"r":1.5}`, string(b))

	var back viewport.Transform
	require.NoError(t, json.Unmarshal(b, &back))
	require.Equal(t, trans, back)
}
