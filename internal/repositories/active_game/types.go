package active_game

import "github.com/panuwat-oat/dummy-calculator/internal/models"

type SaveActiveGameInput struct {
	ActiveGame *models.ActiveGame
}

type GetActiveGameInput struct {
	DeviceID string
}

type ClearActiveGameInput struct {
	DeviceID string
}
