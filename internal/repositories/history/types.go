package history

import "github.com/panuwat-oat/dummy-calculator/internal/models"

type AppendGameInput struct {
	Record *models.HistoryRecord
}

type ListGamesInput struct {
	DeviceID string
}

type ListGamesOutput struct {
	Records []*models.HistoryRecord
}

type ClearGamesInput struct {
	DeviceID string
}
