package todo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSampleReferencesKnownTagsAndCategories(t *testing.T) {
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	todos, tags := Sample(now)

	tagIDs := map[int]bool{}
	for _, tag := range tags {
		tagIDs[tag.ID] = true
	}
	categories := map[string]bool{}
	for _, c := range DefaultCategories {
		categories[c.ID] = true
	}

	for _, td := range todos {
		for _, id := range td.Tags {
			assert.True(t, tagIDs[id], "todo %d references unknown tag %d", td.ID, id)
		}
		assert.True(t, categories[td.Category], "todo %d has unknown category %q", td.ID, td.Category)
	}
}

func TestOverdue(t *testing.T) {
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	todos, _ := Sample(now)

	assert.True(t, todos[0].Overdue(now))
	assert.False(t, todos[1].Overdue(now), "completed items are never overdue")
	assert.False(t, todos[2].Overdue(now), "no due date")
	assert.False(t, todos[3].Overdue(now), "due tomorrow")
}
