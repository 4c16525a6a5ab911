package skill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByCategory(t *testing.T) {
	skills := []TechnicalSkill{
		{Name: "PostgreSQL", Category: "Databases", Level: 8},
		{Name: "Go", Category: "Backend", Level: 9},
		{Name: "Redis", Category: "Databases", Level: 7},
		{Name: "Gin", Category: "Backend", Level: 8},
	}

	groups := GroupByCategory(skills)

	require.Len(t, groups, 2)
	// Categories alphabetical.
	assert.Equal(t, "Backend", groups[0].Category)
	assert.Equal(t, "Databases", groups[1].Category)

	// Names alphabetical within each category.
	assert.Equal(t, "Gin", groups[0].Skills[0].Name)
	assert.Equal(t, "Go", groups[0].Skills[1].Name)
	assert.Equal(t, "PostgreSQL", groups[1].Skills[0].Name)
	assert.Equal(t, "Redis", groups[1].Skills[1].Name)
}

func TestGroupByCategoryEmpty(t *testing.T) {
	assert.Empty(t, GroupByCategory(nil))
}
