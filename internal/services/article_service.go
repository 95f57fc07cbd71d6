package services

import (
	"errors"
	"strings"

	"github.com/terraincognita07/endotrack/internal/models"
)

var ErrArticleNotFound = errors.New("article not found")

type ArticleService struct {
	articles []models.Article
}

func NewArticleService() *ArticleService {
	return &ArticleService{articles: models.DefaultArticles()}
}

// List filters the catalog by category, case-insensitively. An empty
// category returns everything.
func (service *ArticleService) List(category string) []models.Article {
	category = strings.TrimSpace(category)
	articles := make([]models.Article, 0, len(service.articles))
	for _, article := range service.articles {
		if category != "" && !strings.EqualFold(article.Category, category) {
			continue
		}
		articles = append(articles, article)
	}
	return articles
}

func (service *ArticleService) Find(slug string) (models.Article, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	for _, article := range service.articles {
		if article.Slug == slug {
			return article, nil
		}
	}
	return models.Article{}, ErrArticleNotFound
}
