package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shelter-dogs/internal/domain/dogs"
	"shelter-dogs/internal/domain/dogs/profile"
)

func TestBuildListQuery(t *testing.T) {
	available := false
	q, args := buildListQuery(dogs.ListFilter{
		Size:    profile.SizeSmall,
		Sex:     profile.SexFemale,
		Adopted: &available,
		Query:   "50%_off",
		Limit:   6,
	})

	assert.Contains(t, q, "WHERE size = $1 AND sex = $2 AND is_adopted = $3 AND name ILIKE $4")
	assert.Contains(t, q, "ORDER BY name ASC, id ASC LIMIT $5")
	assert.Equal(t, []any{"small", "female", false, `%50\%\_off%`, 6}, args)
}

func TestBuildListQuery_NoFilters(t *testing.T) {
	q, args := buildListQuery(dogs.ListFilter{})
	assert.NotContains(t, q, "WHERE")
	assert.NotContains(t, q, "LIMIT")
	assert.Empty(t, args)
}

func TestMigrationSourceFindsEmbeddedFiles(t *testing.T) {
	ms, err := migrationSource().FindMigrations()
	assert.NoError(t, err)
	if assert.Len(t, ms, 1) {
		assert.Equal(t, "0001_dogs.sql", ms[0].Id)
		assert.NotEmpty(t, ms[0].Up)
		assert.NotEmpty(t, ms[0].Down)
	}
}
