package template

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupKnownTemplates(t *testing.T) {
	for _, id := range []string{"bladesmith", "aurora", "verdant", "noir", "coastal"} {
		tpl := Lookup(id)
		require.NotNil(t, tpl)
		assert.Equal(t, id, tpl.ID)
		assert.NotEmpty(t, tpl.Name)
		assert.NotEmpty(t, tpl.DefaultBackground)
		assert.True(t, strings.Contains(tpl.HTML, "data-sf-hook"), "template %s carries no hooks", id)
	}
}

func TestLookupUnknownFallsBackToDefault(t *testing.T) {
	tpl := Lookup("retired-theme")
	require.NotNil(t, tpl)
	assert.Equal(t, DefaultTemplateID, tpl.ID)

	assert.Equal(t, DefaultTemplateID, Lookup("").ID)
}

func TestAllSortedByID(t *testing.T) {
	all := All()
	require.Len(t, all, 5)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].ID, all[i].ID)
	}
}
