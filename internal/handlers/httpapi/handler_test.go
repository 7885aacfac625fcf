package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/panuwat-oat/dummy-calculator/internal/models"
	"github.com/panuwat-oat/dummy-calculator/internal/services/game"
	gameMocks "github.com/panuwat-oat/dummy-calculator/internal/services/game/mocks"
	"github.com/panuwat-oat/dummy-calculator/internal/services/roomsync"
)

type HandlerTestSuite struct {
	suite.Suite

	ctrl        *gomock.Controller
	gameService *gameMocks.MockService
	router      http.Handler
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.gameService = gameMocks.NewMockService(s.ctrl)

	handler, err := New(&Config{GameService: s.gameService})
	s.Require().NoError(err)
	s.router = handler.Router()
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) do(method, target string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{})
	s.Error(err)
}

func (s *HandlerTestSuite) TestGetActive() {
	state := models.NewGameState([models.NumPlayers]string{"A", "B", "C", "D"})
	s.gameService.EXPECT().
		GetGame(gomock.Any(), &game.GetGameInput{
			Session: game.Session{DeviceID: "device-1"},
		}).
		Return(&game.GetGameOutput{State: state}, nil)

	rec := s.do(http.MethodGet, "/active?deviceId=device-1", nil)

	s.Equal(http.StatusOK, rec.Code)
	var resp stateResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal([models.NumPlayers]string{"A", "B", "C", "D"}, resp.State.PlayerNames)
}

func (s *HandlerTestSuite) TestGetActiveRequiresSession() {
	rec := s.do(http.MethodGet, "/active", nil)

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestGetActiveNotFound() {
	s.gameService.EXPECT().
		GetGame(gomock.Any(), gomock.Any()).
		Return(nil, game.ErrGameNotFound)

	rec := s.do(http.MethodGet, "/active?deviceId=device-1", nil)

	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *HandlerTestSuite) TestStartGame() {
	state := models.NewGameState([models.NumPlayers]string{"A", "B", "C", "D"})
	s.gameService.EXPECT().
		StartGame(gomock.Any(), &game.StartGameInput{
			Session:     game.Session{DeviceID: "device-1"},
			PlayerNames: [models.NumPlayers]string{"A", "B", "C", "D"},
		}).
		Return(&game.StartGameOutput{State: state}, nil)

	rec := s.do(http.MethodPost, "/active", startGameRequest{
		DeviceID:    "device-1",
		PlayerNames: [models.NumPlayers]string{"A", "B", "C", "D"},
	})

	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestStartGameRequiresDeviceID() {
	rec := s.do(http.MethodPost, "/active", startGameRequest{})

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestRecordRound() {
	state := models.NewGameState([models.NumPlayers]string{"A", "B", "C", "D"})
	s.gameService.EXPECT().
		RecordRound(gomock.Any(), &game.RecordRoundInput{
			Session: game.Session{DeviceID: "device-1"},
			Deltas:  [models.NumPlayers]int{10, -5, 0, 20},
		}).
		Return(&game.RecordRoundOutput{State: state, WinnerSlot: -1}, nil)

	rec := s.do(http.MethodPost, "/game/round", roundRequest{
		DeviceID: "device-1",
		Deltas:   []string{"10", "-5", "0", " 20"},
	})

	s.Equal(http.StatusOK, rec.Code)
	var resp roundResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.False(resp.Won)
}

func (s *HandlerTestSuite) TestRecordRoundRejectsMalformedDeltas() {
	// No service expectation: a bad row must never reach the ledger.
	cases := [][]string{
		{"10", "-5", "0"},
		{"10", "-5", "0", "twenty"},
		{"10", "-5", "0", ""},
		{"10", "-5", "0", "20", "30"},
	}
	for _, deltas := range cases {
		rec := s.do(http.MethodPost, "/game/round", roundRequest{
			DeviceID: "device-1",
			Deltas:   deltas,
		})
		s.Equal(http.StatusBadRequest, rec.Code)
	}
}

func (s *HandlerTestSuite) TestRecordRoundFinishedGameConflicts() {
	s.gameService.EXPECT().
		RecordRound(gomock.Any(), gomock.Any()).
		Return(nil, game.ErrGameFinished)

	rec := s.do(http.MethodPost, "/game/round", roundRequest{
		DeviceID: "device-1",
		Deltas:   []string{"1", "2", "3", "4"},
	})

	s.Equal(http.StatusConflict, rec.Code)
}

func (s *HandlerTestSuite) TestUndoRound() {
	state := models.NewGameState([models.NumPlayers]string{"A", "B", "C", "D"})
	s.gameService.EXPECT().
		UndoRound(gomock.Any(), &game.UndoRoundInput{
			Session: game.Session{DeviceID: "device-1", RoomID: "123456"},
		}).
		Return(&game.UndoRoundOutput{State: state}, nil)

	rec := s.do(http.MethodPost, "/game/undo", sessionRequest{
		DeviceID: "device-1",
		RoomID:   "123456",
	})

	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestEditRound() {
	state := models.NewGameState([models.NumPlayers]string{"A", "B", "C", "D"})
	s.gameService.EXPECT().
		EditRound(gomock.Any(), &game.EditRoundInput{
			Session:  game.Session{DeviceID: "device-1"},
			Position: 2,
			Deltas:   [models.NumPlayers]int{1, 2, 3, 4},
		}).
		Return(&game.EditRoundOutput{State: state}, nil)

	rec := s.do(http.MethodPost, "/game/edit", editRoundRequest{
		DeviceID: "device-1",
		Position: 2,
		Deltas:   []string{"1", "2", "3", "4"},
	})

	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestEditRoundUnknownPosition() {
	s.gameService.EXPECT().
		EditRound(gomock.Any(), gomock.Any()).
		Return(nil, game.ErrRoundNotFound)

	rec := s.do(http.MethodPost, "/game/edit", editRoundRequest{
		DeviceID: "device-1",
		Position: 9,
		Deltas:   []string{"1", "2", "3", "4"},
	})

	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *HandlerTestSuite) TestCreateRoom() {
	room := &models.Room{ID: "123456", HostID: "device-1"}
	s.gameService.EXPECT().
		CreateRoom(gomock.Any(), &game.CreateRoomInput{
			DeviceID:    "device-1",
			PlayerNames: [models.NumPlayers]string{"A", "", "", ""},
		}).
		Return(&game.CreateRoomOutput{Room: room}, nil)

	rec := s.do(http.MethodPost, "/room", createRoomRequest{
		DeviceID:    "device-1",
		PlayerNames: [models.NumPlayers]string{"A", "", "", ""},
	})

	s.Equal(http.StatusCreated, rec.Code)
	var resp models.Room
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("123456", resp.ID)
}

func (s *HandlerTestSuite) TestGetRoomNotFound() {
	s.gameService.EXPECT().
		GetRoom(gomock.Any(), &game.GetRoomInput{RoomID: "999999"}).
		Return(nil, game.ErrRoomNotFound)

	rec := s.do(http.MethodGet, "/room/999999", nil)

	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *HandlerTestSuite) TestJoinRoom() {
	room := &models.Room{ID: "123456"}
	s.gameService.EXPECT().
		JoinRoom(gomock.Any(), &game.JoinRoomInput{
			RoomID:     "123456",
			DeviceID:   "device-2",
			PlayerName: "Dana",
		}).
		Return(&game.JoinRoomOutput{Room: room, Slot: 3}, nil)

	rec := s.do(http.MethodPost, "/room/123456/join", joinRoomRequest{
		DeviceID:   "device-2",
		PlayerName: "Dana",
	})

	s.Equal(http.StatusOK, rec.Code)
	var resp joinRoomResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(3, resp.Slot)
}

func (s *HandlerTestSuite) TestJoinRoomFull() {
	s.gameService.EXPECT().
		JoinRoom(gomock.Any(), gomock.Any()).
		Return(nil, game.ErrRoomFull)

	rec := s.do(http.MethodPost, "/room/123456/join", joinRoomRequest{
		DeviceID:   "device-5",
		PlayerName: "Eve",
	})

	s.Equal(http.StatusConflict, rec.Code)
}

func (s *HandlerTestSuite) TestUpdateRoomStaleStateConflicts() {
	s.gameService.EXPECT().
		RenamePlayers(gomock.Any(), &game.RenamePlayersInput{
			Session:     game.Session{RoomID: "123456"},
			PlayerNames: [models.NumPlayers]string{"A", "B", "C", "D"},
		}).
		Return(nil, game.ErrStaleState)

	rec := s.do(http.MethodPut, "/room/123456", renamePlayersRequest{
		PlayerNames: [models.NumPlayers]string{"A", "B", "C", "D"},
	})

	s.Equal(http.StatusConflict, rec.Code)
}

func (s *HandlerTestSuite) TestDeleteRoom() {
	s.gameService.EXPECT().
		EndGame(gomock.Any(), &game.EndGameInput{
			Session: game.Session{RoomID: "123456"},
		}).
		Return(&game.EndGameOutput{Success: true}, nil)

	rec := s.do(http.MethodDelete, "/room/123456", nil)

	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestLeaveRoomLastSeat() {
	s.gameService.EXPECT().
		LeaveRoom(gomock.Any(), &game.LeaveRoomInput{
			RoomID:     "123456",
			PlayerName: "Dana",
		}).
		Return(&game.LeaveRoomOutput{RoomDeleted: true}, nil)

	rec := s.do(http.MethodPost, "/room/123456/leave", leaveRoomRequest{
		PlayerName: "Dana",
	})

	s.Equal(http.StatusOK, rec.Code)
	var resp leaveRoomResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.True(resp.RoomDeleted)
}

func (s *HandlerTestSuite) TestWatchRoomStreamsVersionChanges() {
	state := models.NewGameState([models.NumPlayers]string{"A", "B", "C", "D"})
	state.Version = 1
	room := &models.Room{ID: "123456", State: state}

	gomock.InOrder(
		s.gameService.EXPECT().
			GetRoom(gomock.Any(), &game.GetRoomInput{RoomID: "123456"}).
			Return(&game.GetRoomOutput{Room: room}, nil),
		s.gameService.EXPECT().
			GetRoom(gomock.Any(), &game.GetRoomInput{RoomID: "123456"}).
			Return(nil, game.ErrRoomNotFound),
	)

	watcher, err := roomsync.New(&roomsync.Config{
		GameService: s.gameService,
		Interval:    5 * time.Millisecond,
	})
	s.Require().NoError(err)
	handler, err := New(&Config{GameService: s.gameService, RoomWatcher: watcher})
	s.Require().NoError(err)

	req := httptest.NewRequest(http.MethodGet, "/room/123456/watch", nil)
	rec := httptest.NewRecorder()
	handler.Router().ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("text/event-stream", rec.Header().Get("Content-Type"))
	s.Contains(rec.Body.String(), `data: {"room_id":"123456"`)
}

func (s *HandlerTestSuite) TestGetStatistics() {
	s.gameService.EXPECT().
		GetStatistics(gomock.Any(), &game.GetStatisticsInput{
			Session: game.Session{DeviceID: "device-1"},
		}).
		Return(&game.GetStatisticsOutput{
			Stats: [models.NumPlayers]models.PlayerStats{
				{Average: 0.3, Max: 10, Min: -14},
			},
		}, nil)

	rec := s.do(http.MethodGet, "/game/stats?deviceId=device-1", nil)

	s.Equal(http.StatusOK, rec.Code)
	var resp statsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.InDelta(0.3, resp.Stats[0].Average, 0.0001)
}

func (s *HandlerTestSuite) TestGetHistory() {
	s.gameService.EXPECT().
		GetHistory(gomock.Any(), &game.GetHistoryInput{DeviceID: "device-1"}).
		Return(&game.GetHistoryOutput{
			Records: []*models.HistoryRecord{{ID: 7, Winner: "A", Rounds: 12}},
		}, nil)

	rec := s.do(http.MethodGet, "/history?deviceId=device-1", nil)

	s.Equal(http.StatusOK, rec.Code)
	var resp historyResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Require().Len(resp.Records, 1)
	s.Equal("A", resp.Records[0].Winner)
}

func (s *HandlerTestSuite) TestClearHistory() {
	s.gameService.EXPECT().
		ClearHistory(gomock.Any(), &game.ClearHistoryInput{DeviceID: "device-1"}).
		Return(&game.ClearHistoryOutput{Success: true}, nil)

	rec := s.do(http.MethodDelete, "/history?deviceId=device-1", nil)

	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestSettingsRoundTrip() {
	s.gameService.EXPECT().
		SaveLastPlayerNames(gomock.Any(), &game.SaveLastPlayerNamesInput{
			DeviceID:    "device-1",
			PlayerNames: [models.NumPlayers]string{"A", "B", "C", "D"},
		}).
		Return(&game.SaveLastPlayerNamesOutput{Success: true}, nil)
	s.gameService.EXPECT().
		GetLastPlayerNames(gomock.Any(), &game.GetLastPlayerNamesInput{
			DeviceID: "device-1",
		}).
		Return(&game.GetLastPlayerNamesOutput{
			PlayerNames: [models.NumPlayers]string{"A", "B", "C", "D"},
			Found:       true,
		}, nil)

	rec := s.do(http.MethodPost, "/settings", settingsRequest{
		DeviceID:    "device-1",
		PlayerNames: [models.NumPlayers]string{"A", "B", "C", "D"},
	})
	s.Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/settings?deviceId=device-1", nil)
	s.Equal(http.StatusOK, rec.Code)
	var resp settingsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.True(resp.Found)
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
