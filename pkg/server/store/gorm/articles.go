package gorm

import (
	"gorm.io/gorm"

	"github.com/atelier-web/atelier/pkg/model"
	"github.com/atelier-web/atelier/pkg/server/store"
)

// Ensure ArticlesStore implements store.ArticlesStore
var _ store.ArticlesStore = (*ArticlesStore)(nil)

// ArticlesStore implements store.ArticlesStore using GORM
type ArticlesStore struct {
	db *gorm.DB
}

// NewArticlesStore creates a new ArticlesStore
func NewArticlesStore(db *gorm.DB) *ArticlesStore {
	return &ArticlesStore{db: db}
}

// CreateArticle inserts the article and associates the reconciled labels.
func (s *ArticlesStore) CreateArticle(article *model.Article, labels []string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags").Create(article).Error; err != nil {
			return translateError(err)
		}

		tags, err := reconcileTags(tx, labels)
		if err != nil {
			return err
		}
		if err := replaceArticleTags(tx, article.ID, tags); err != nil {
			return err
		}
		article.Tags = tags
		return nil
	})
}

// ListArticles returns all articles with their tags
func (s *ArticlesStore) ListArticles() ([]model.Article, error) {
	var articles []model.Article
	if err := s.db.Preload("Tags").Order("id").Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

// FetchArticle retrieves one article with its tags
func (s *ArticlesStore) FetchArticle(id uint) (*model.Article, error) {
	var article model.Article
	tx := s.db.Preload("Tags").First(&article, id)
	if tx.Error != nil {
		return nil, translateError(tx.Error)
	}
	return &article, nil
}

// UpdateArticle updates the article's fields and replaces its tag set.
func (s *ArticlesStore) UpdateArticle(article *model.Article, labels []string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Article{}).Where("id = ?", article.ID).Updates(map[string]interface{}{
			"title":     article.Title,
			"content":   article.Content,
			"picture":   article.Picture,
			"published": article.Published,
		})
		if result.Error != nil {
			return translateError(result.Error)
		}
		if result.RowsAffected == 0 {
			return store.ErrNotFound
		}

		// Same create-on-first-use policy as CreateArticle; unknown labels
		// become tags instead of being dropped.
		tags, err := reconcileTags(tx, labels)
		if err != nil {
			return err
		}
		if err := replaceArticleTags(tx, article.ID, tags); err != nil {
			return err
		}
		article.Tags = tags
		return nil
	})
}

// DeleteArticle removes the article and its tag associations
func (s *ArticlesStore) DeleteArticle(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM article_tags WHERE article_id = ?`, id).Error; err != nil {
			return err
		}
		result := tx.Exec(`DELETE FROM articles WHERE id = ?`, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return store.ErrNotFound
		}
		return nil
	})
}

// ArticleAuthor returns the authoring user id
func (s *ArticlesStore) ArticleAuthor(id uint) (uint, error) {
	var article model.Article
	tx := s.db.Select("id", "user_id").First(&article, id)
	if tx.Error != nil {
		return 0, translateError(tx.Error)
	}
	return article.UserID, nil
}

// SetArticlePicture attaches an uploaded file name to the article
func (s *ArticlesStore) SetArticlePicture(id uint, filename string) (*model.Article, error) {
	result := s.db.Model(&model.Article{}).Where("id = ?", id).Update("picture", filename)
	if result.Error != nil {
		return nil, translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, store.ErrNotFound
	}
	return s.FetchArticle(id)
}

// replaceArticleTags swaps the article's association set for the given tags.
func replaceArticleTags(tx *gorm.DB, articleID uint, tags []model.Tag) error {
	if err := tx.Exec(`DELETE FROM article_tags WHERE article_id = ?`, articleID).Error; err != nil {
		return err
	}
	for _, tag := range tags {
		err := tx.Exec(`
			INSERT INTO article_tags (article_id, tag_id) VALUES (?, ?)
			ON CONFLICT DO NOTHING
		`, articleID, tag.ID).Error
		if err != nil {
			return err
		}
	}
	return nil
}
