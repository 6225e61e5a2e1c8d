package models

import (
	"strings"

	"github.com/hashicorp/go-set/v2"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// AggregateTags returns the distinct, trimmed, non empty tags of all posts, sorted
// alphabetically with the same collation a browser uses for localeCompare.
func AggregateTags(tagLists [][]string) []string {
	seen := set.New[string](0)
	tags := make([]string, 0)
	for _, list := range tagLists {
		for _, tag := range list {
			tag = strings.TrimSpace(tag)
			if tag == "" {
				continue
			}
			if seen.Insert(tag) {
				tags = append(tags, tag)
			}
		}
	}

	collate.New(language.English).SortStrings(tags)
	return tags
}
