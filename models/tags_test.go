package models

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestAggregateTags(t *testing.T) {
	tags := AggregateTags([][]string{
		{"marketing", " seo ", ""},
		{"Design", "marketing"},
		nil,
		{"  ", "analytics", "seo"},
	})

	assert.DeepEqual(t, []string{"analytics", "Design", "marketing", "seo"}, tags)
}

func TestAggregateTagsEmpty(t *testing.T) {
	tags := AggregateTags(nil)

	assert.Assert(t, tags != nil)
	assert.Equal(t, 0, len(tags))
}

func TestAggregateTagsAccents(t *testing.T) {
	tags := AggregateTags([][]string{{"zebra", "éclair", "eagle"}})

	assert.DeepEqual(t, []string{"eagle", "éclair", "zebra"}, tags)
}
