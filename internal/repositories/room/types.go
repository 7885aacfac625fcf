package room

import "github.com/panuwat-oat/dummy-calculator/internal/models"

type CreateRoomInput struct {
	Room *models.Room
}

type GetRoomInput struct {
	RoomID string
}

type UpdateRoomInput struct {
	Room *models.Room

	// ExpectedVersion is the state version the writer last read. The
	// update is rejected with ErrStaleVersion if the stored room has
	// moved past it.
	ExpectedVersion int64
}

type DeleteRoomInput struct {
	RoomID string
}
