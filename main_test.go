package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/semafind/distcalc/config"
	"github.com/stretchr/testify/require"
)

func testConfig() config.ConfigMap {
	cfg := config.DefaultConfig()
	cfg.PrettyLogOutput = false
	return cfg
}

func TestRun_EndToEnd(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), testConfig(), strings.NewReader("(4,3)\n(5,1)\n\n"), &out)
	require.NoError(t, err)
	got := out.String()
	require.True(t, strings.HasPrefix(got, "all tests passed...\n"))
	require.Contains(t, got, "(x1, y1) = (4, 3)")
	require.Contains(t, got, "Distance between the points = 2.24")
	require.Contains(t, got, "Good bye...")
}

func TestRun_WithoutSelfTest(t *testing.T) {
	cfg := testConfig()
	cfg.SelfTest = false
	cfg.PropertyChecks = 200
	cfg.Session.Loop = true
	var out bytes.Buffer
	err := run(context.Background(), cfg, strings.NewReader("(0,0)\n(3,4)\n\n(2,2)\n(2,2)\nq\n"), &out)
	require.NoError(t, err)
	got := out.String()
	require.NotContains(t, got, "all tests passed")
	require.Contains(t, got, "= 5.00")
	require.Contains(t, got, "= 0.00")
}

func TestRun_Serve(t *testing.T) {
	cfg := testConfig()
	cfg.Serve = true
	cfg.HttpApi.HttpPort = 0
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	require.NoError(t, run(ctx, cfg, strings.NewReader(""), &out))
	require.Equal(t, "all tests passed...\n", out.String())
}
