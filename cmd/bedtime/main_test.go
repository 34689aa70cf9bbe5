package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testModel = "../../config/sleep_calculator.yaml"

func run(args ...string) (string, error) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--model", testModel}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestBedtime_Defaults(t *testing.T) {
	out, err := run()
	require.NoError(t, err)
	assert.Contains(t, out, "Wake up:      06:32")
	assert.Contains(t, out, "Sleep:        8 hours \n")
	assert.Contains(t, out, "Coffee:       ☕️ 1 cup")
	assert.Contains(t, out, "Your ideal sleep time is…\n10:48 PM\n")
}

func TestBedtime_Flags(t *testing.T) {
	out, err := run("--wake", "7:00 AM", "--sleep", "9.25", "--coffee", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "Sleep:        9 hours 15 min")
	assert.Contains(t, out, "Coffee:       None")
}

func TestBedtime_RejectsOutOfRange(t *testing.T) {
	_, err := run("--sleep", "13")
	assert.Error(t, err)

	_, err = run("--wake", "25:00")
	assert.Error(t, err)
}

func TestBedtime_MissingModel(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--model", "does-not-exist.yaml"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, out.String(), "Something went wrong\nThere was an error when calculating sleep time.\n")
}
