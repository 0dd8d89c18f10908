package postgresql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationNames(t *testing.T) {
	names, err := migrationNames()
	require.NoError(t, err)
	require.NotEmpty(t, names)
	assert.Equal(t, "0001_init.sql", names[0])
	assert.IsIncreasing(t, names)
}

func TestInitMigrationCreatesEveryTable(t *testing.T) {
	body, err := migrationsFS.ReadFile("migrations/0001_init.sql")
	require.NoError(t, err)

	for _, table := range []string{
		"users", "team_members", "brands", "child_contents", "technical_infos",
		"awards", "platforms", "additional_infos", "services", "service_features",
		"site_configs",
	} {
		assert.Contains(t, string(body), "CREATE TABLE IF NOT EXISTS "+table+" (")
	}
}

func TestFeatureTitleConstraintIsDeferred(t *testing.T) {
	body, err := migrationsFS.ReadFile("migrations/0002_deferrable_feature_titles.sql")
	require.NoError(t, err)

	assert.Contains(t, string(body), "UNIQUE (service_id, title) DEFERRABLE INITIALLY DEFERRED")
}
