package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestRootRejectsUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "root.cco.hcl"), `data x a { v = 1 }`)

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"check", "--dir", dir, "--format", "toml"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown --format")
}

func TestCheckSucceedsOnValidDocuments(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "root.cco.hcl"), `data x a { v = 1 }`)

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"check", "--dir", dir})

	require.NoError(t, cmd.Execute())
}

func TestCheckReportsStructuralIssues(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "root.cco.hcl"), `root_attr = 1`)

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"check", "--dir", dir})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RootAttribute")
}

func TestEvalRendersExpressionResult(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "root.cco.hcl"), `data x a { v = 1 }`)

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"eval", "x.a.v", "--dir", dir})

	require.NoError(t, cmd.Execute())
}
