package game

import (
	"akshu/services"
)

type Handler struct {
	game *services.GameService
}

func NewHandler(game *services.GameService) *Handler {
	return &Handler{game: game}
}
