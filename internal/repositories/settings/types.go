package settings

import "github.com/panuwat-oat/dummy-calculator/internal/models"

type SaveLastPlayerNamesInput struct {
	DeviceID    string
	PlayerNames [models.NumPlayers]string
}

type GetLastPlayerNamesInput struct {
	DeviceID string
}

type GetLastPlayerNamesOutput struct {
	PlayerNames [models.NumPlayers]string
}
