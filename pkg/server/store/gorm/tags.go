package gorm

import (
	"gorm.io/gorm"

	"github.com/atelier-web/atelier/pkg/model"
	"github.com/atelier-web/atelier/pkg/server/store"
)

// Ensure TagsStore implements store.TagsStore
var _ store.TagsStore = (*TagsStore)(nil)

// TagsStore implements store.TagsStore using GORM
type TagsStore struct {
	db *gorm.DB
}

// NewTagsStore creates a new TagsStore
func NewTagsStore(db *gorm.DB) *TagsStore {
	return &TagsStore{db: db}
}

// ReconcileTags resolves labels to tag identities, creating missing tags.
func (s *TagsStore) ReconcileTags(labels []string) ([]model.Tag, error) {
	return reconcileTags(s.db, labels)
}

// reconcileTags is shared with the articles store so article writes can
// reconcile inside their transaction.
//
// Each label is resolved with a single upsert. The uniqueness constraint on
// tags.name arbitrates concurrent first use: the losing insert falls into
// the conflict arm and returns the winner's row, so no retry is needed. The
// no-op DO UPDATE (rather than DO NOTHING) is what makes RETURNING yield a
// row on conflict.
func reconcileTags(db *gorm.DB, labels []string) ([]model.Tag, error) {
	labels = store.DedupeLabels(labels)

	tags := make([]model.Tag, 0, len(labels))
	for _, name := range labels {
		var tag model.Tag
		tx := db.Raw(`
			INSERT INTO tags (name) VALUES (?)
			ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
			RETURNING id, name
		`, name).Scan(&tag)
		if tx.Error != nil {
			return nil, tx.Error
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// ListTags returns every tag
func (s *TagsStore) ListTags() ([]model.Tag, error) {
	var tags []model.Tag
	if err := s.db.Order("name").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// ListTagsByArticle returns the tags associated with an article
func (s *TagsStore) ListTagsByArticle(articleID uint) ([]model.Tag, error) {
	var tags []model.Tag
	err := s.db.Raw(`
		SELECT tags.id, tags.name FROM tags
		JOIN article_tags ON article_tags.tag_id = tags.id
		WHERE article_tags.article_id = ?
		ORDER BY tags.name
	`, articleID).Scan(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}

// CreateTag inserts a tag, failing on duplicate names
func (s *TagsStore) CreateTag(name string) (*model.Tag, error) {
	tag := model.Tag{Name: name}
	if err := s.db.Create(&tag).Error; err != nil {
		return nil, translateError(err)
	}
	return &tag, nil
}

// DeleteTag removes a tag and its associations
func (s *TagsStore) DeleteTag(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM article_tags WHERE tag_id = ?`, id).Error; err != nil {
			return err
		}
		result := tx.Exec(`DELETE FROM tags WHERE id = ?`, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return store.ErrNotFound
		}
		return nil
	})
}
