package store

import "github.com/atelier-web/atelier/pkg/model"

// ArticlesStore abstracts article storage. Create and Update reconcile the
// given labels into tag identities and replace the article's association
// set wholesale; there is no incremental add/remove.
type ArticlesStore interface {
	// CreateArticle inserts the article and associates the reconciled
	// labels. The article's ID and Tags are populated on return.
	CreateArticle(article *model.Article, labels []string) error

	// ListArticles returns all articles with their tags.
	ListArticles() ([]model.Article, error)

	// FetchArticle retrieves one article with its tags.
	FetchArticle(id uint) (*model.Article, error)

	// UpdateArticle updates the article's fields and replaces its tag
	// association with the reconciled labels.
	UpdateArticle(article *model.Article, labels []string) error

	// DeleteArticle removes the article and its tag associations.
	DeleteArticle(id uint) error

	// ArticleAuthor returns the user id that authored the article.
	ArticleAuthor(id uint) (uint, error)

	// SetArticlePicture attaches an uploaded file name to the article and
	// returns the updated record.
	SetArticlePicture(id uint, filename string) (*model.Article, error)
}
