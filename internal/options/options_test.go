package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	encode bool
	limit  int
}

func TestApply(t *testing.T) {
	cfg := &testConfig{}
	err := Apply(cfg,
		NoErr(func(c *testConfig) { c.encode = true }),
		New(func(c *testConfig) error {
			c.limit = 10
			return nil
		}),
	)
	require.NoError(t, err)
	require.True(t, cfg.encode)
	require.Equal(t, 10, cfg.limit)
}

func TestApply_StopsOnError(t *testing.T) {
	errBad := errors.New("bad option")
	cfg := &testConfig{}
	err := Apply(cfg,
		New(func(c *testConfig) error { return errBad }),
		NoErr(func(c *testConfig) { c.encode = true }),
	)
	require.ErrorIs(t, err, errBad)
	require.False(t, cfg.encode, "options after a failure must not apply")
}

func TestApply_NoOptions(t *testing.T) {
	cfg := &testConfig{}
	require.NoError(t, Apply(cfg))
}
