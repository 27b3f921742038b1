package parser

import (
	"encoding/json"

	"reddit-explorer/internal/models"
)

type ParserInterface interface {
	ParseSearch(data json.RawMessage) ([]models.Post, string)
	ParsePostDetails(data json.RawMessage) (models.Post, bool)
	ParseComments(data json.RawMessage) []models.Comment
}
