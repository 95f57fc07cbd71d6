package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetArticles(c *fiber.Ctx) error {
	return c.JSON(handler.articles.List(c.Query("category")))
}

func (handler *Handler) GetArticle(c *fiber.Ctx) error {
	article, err := handler.articles.Find(c.Params("slug"))
	if err != nil {
		return respondError(c, err, "failed to load article")
	}
	return c.JSON(article)
}
