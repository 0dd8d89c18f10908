package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandListsSubcommands(t *testing.T) {
	cmd := newRootCommand()

	names := map[string]bool{}
	for _, c := range cmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"migrate", "seed", "create-admin", "verify", "rollback"} {
		assert.True(t, names[want], want)
	}
}

func TestMissingConfigFails(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")

	cmd := newRootCommand()
	cmd.SetArgs([]string{"verify"})
	cmd.SetOut(new(bytes.Buffer))

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestCreateAdminRequiresPassword(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("env: local\n"), 0o600))

	t.Setenv("DATABASE_URL", "postgres://localhost:1/none")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("SESSION_SECRET", "session-secret")
	t.Setenv("ADMIN_PASSWORD", "")

	cmd := newRootCommand()
	cmd.SetArgs([]string{"--config", path, "create-admin", "--email", "ops@example.com"})
	cmd.SetOut(new(bytes.Buffer))

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password is required")
}

func TestRollbackRequiresConfirm(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("env: local\n"), 0o600))

	// unreachable; the command must refuse before dialing
	t.Setenv("DATABASE_URL", "postgres://localhost:1/none")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("SESSION_SECRET", "session-secret")

	tests := []struct {
		name string
		args []string
	}{
		{name: "no flag", args: []string{"--config", path, "rollback"}},
		{name: "explicit false", args: []string{"--config", path, "rollback", "--confirm=false"}},
		{name: "config only", args: []string{"--config", path, "rollback", "--include-site-config"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			color.NoColor = true
			out := new(bytes.Buffer)

			cmd := newRootCommand()
			cmd.SetArgs(tt.args)
			cmd.SetOut(out)

			err := cmd.Execute()
			require.ErrorIs(t, err, errRollbackNotConfirmed)
			assert.Contains(t, out.String(), "nothing deleted")
		})
	}
}

func TestRollbackPlan(t *testing.T) {
	plan := rollbackPlan(false)
	assert.NotContains(t, plan, "users")
	assert.NotContains(t, plan, "site_configs")

	index := func(table string) int {
		for i, name := range plan {
			if name == table {
				return i
			}
		}
		t.Fatalf("%s missing from plan", table)
		return -1
	}
	tests := []struct{ child, parent string }{
		{"service_features", "services"},
		{"awards", "child_contents"},
		{"platforms", "child_contents"},
		{"technical_infos", "child_contents"},
		{"additional_infos", "child_contents"},
	}
	for _, tt := range tests {
		assert.Less(t, index(tt.child), index(tt.parent), tt.child)
	}

	withConfig := rollbackPlan(true)
	assert.Equal(t, "site_configs", withConfig[len(withConfig)-1])
	assert.Len(t, rollbackTables, len(plan), "plan does not alias the shared list")
}

func TestRenderTable(t *testing.T) {
	color.NoColor = true

	out := renderTable([]string{"Table", "Rows"}, [][]string{{"brands", "9"}, {"users"}}, []columnAlignment{alignLeft, alignRight})

	assert.Contains(t, out, "brands")
	assert.Contains(t, out, "TABLE")
	assert.Equal(t, 6, len(strings.Split(strings.TrimSpace(out), "\n")))
	assert.Empty(t, renderTable(nil, nil, nil))
	assert.Equal(t, "✓", okMark())
}
