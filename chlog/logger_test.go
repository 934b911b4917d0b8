package chlog_test

import (
	"testing"

	"github.com/katalvlaran/chway/chlog"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsNeverNil(t *testing.T) {
	require.NotNil(t, chlog.Default())
}

func TestInitWithConfigSwapsLogger(t *testing.T) {
	before := chlog.Default()
	chlog.InitWithConfig(chlog.Config{Level: "debug", Format: "text", Output: "stderr"})
	after := chlog.Default()
	require.NotSame(t, before, after)
}

func TestWithReturnsChildLogger(t *testing.T) {
	l := chlog.With("component", "test")
	require.NotNil(t, l)
}
