package store

import "github.com/atelier-web/atelier/pkg/model"

// TagsStore abstracts tag storage and label reconciliation.
type TagsStore interface {
	// ReconcileTags resolves free-text labels to tag identities, creating
	// tags that do not exist yet. Duplicate and empty labels are dropped.
	// Concurrent first use of the same label converges on one identity.
	ReconcileTags(labels []string) ([]model.Tag, error)

	// ListTags returns every tag.
	ListTags() ([]model.Tag, error)

	// ListTagsByArticle returns the tags associated with an article.
	ListTagsByArticle(articleID uint) ([]model.Tag, error)

	// CreateTag inserts a tag. Returns ErrConflict when the name is taken.
	CreateTag(name string) (*model.Tag, error)

	// DeleteTag removes a tag and its article associations.
	DeleteTag(id uint) error
}

// DedupeLabels drops empty strings and exact-match duplicates while
// preserving first-seen order. Matching is case-sensitive, mirroring the
// uniqueness constraint on tag names.
func DedupeLabels(labels []string) []string {
	seen := make(map[string]struct{}, len(labels))
	result := make([]string, 0, len(labels))
	for _, label := range labels {
		if label == "" {
			continue
		}
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		result = append(result, label)
	}
	return result
}
