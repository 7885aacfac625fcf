package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-zoo/bone"
	"github.com/sirupsen/logrus"

	"github.com/panuwat-oat/dummy-calculator/internal/models"
	"github.com/panuwat-oat/dummy-calculator/internal/services/game"
	"github.com/panuwat-oat/dummy-calculator/internal/services/roomsync"
)

// Config holds configuration for the HTTP handler
type Config struct {
	GameService game.Service

	// RoomWatcher drives the room event stream. Optional; a default
	// watcher over GameService is built when omitted.
	RoomWatcher *roomsync.Watcher
}

// Handler exposes the game service over HTTP
type Handler struct {
	gameService game.Service
	roomWatcher *roomsync.Watcher
}

// New creates a new HTTP handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	watcher := cfg.RoomWatcher
	if watcher == nil {
		var err error
		watcher, err = roomsync.New(&roomsync.Config{
			GameService: cfg.GameService,
		})
		if err != nil {
			return nil, err
		}
	}

	return &Handler{
		gameService: cfg.GameService,
		roomWatcher: watcher,
	}, nil
}

// Router builds the route table.
func (h *Handler) Router() http.Handler {
	mux := bone.New()

	mux.GetFunc("/active", h.getActive)
	mux.PostFunc("/active", h.startGame)
	mux.DeleteFunc("/active", h.endGame)

	mux.PostFunc("/game/round", h.recordRound)
	mux.PostFunc("/game/undo", h.undoRound)
	mux.PostFunc("/game/edit", h.editRound)
	mux.PostFunc("/game/reset", h.resetGame)
	mux.PostFunc("/game/players", h.renamePlayers)
	mux.GetFunc("/game/stats", h.getStatistics)

	mux.PostFunc("/room", h.createRoom)
	mux.GetFunc("/room/:id", h.getRoom)
	mux.PutFunc("/room/:id", h.updateRoom)
	mux.DeleteFunc("/room/:id", h.deleteRoom)
	mux.PostFunc("/room/:id/join", h.joinRoom)
	mux.PostFunc("/room/:id/leave", h.leaveRoom)
	mux.GetFunc("/room/:id/watch", h.watchRoom)

	mux.GetFunc("/history", h.getHistory)
	mux.DeleteFunc("/history", h.clearHistory)

	mux.GetFunc("/settings", h.getSettings)
	mux.PostFunc("/settings", h.saveSettings)

	return mux
}

func respondJSON(w http.ResponseWriter, data interface{}) {
	respondJSONStatus(w, http.StatusOK, data)
}

func respondJSONStatus(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logrus.WithError(err).Error("marshaling JSON response")
	}
}

// respondServiceError translates service errors into status codes.
// Anything unmapped is an internal failure and is logged.
func respondServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, game.ErrGameNotFound),
		errors.Is(err, game.ErrRoomNotFound),
		errors.Is(err, game.ErrRoundNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, game.ErrRoomFull),
		errors.Is(err, game.ErrGameFinished),
		errors.Is(err, game.ErrStaleState):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		logrus.WithField("op", op).WithError(err).Error("game service call failed")
		http.Error(w, "unexpected error", http.StatusInternalServerError)
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

// querySession reads the session identifiers the read-only endpoints
// carry as query parameters.
func querySession(w http.ResponseWriter, r *http.Request) (game.Session, bool) {
	deviceID := r.URL.Query().Get("deviceId")
	roomID := r.URL.Query().Get("roomId")
	if deviceID == "" && roomID == "" {
		http.Error(w, "missing deviceId parameter", http.StatusBadRequest)
		return game.Session{}, false
	}
	return game.Session{DeviceID: deviceID, RoomID: roomID}, true
}

func (h *Handler) getActive(w http.ResponseWriter, r *http.Request) {
	session, ok := querySession(w, r)
	if !ok {
		return
	}

	output, err := h.gameService.GetGame(r.Context(), &game.GetGameInput{
		Session: session,
	})
	if err != nil {
		respondServiceError(w, "get game", err)
		return
	}
	respondJSON(w, stateResponse{State: output.State})
}

func (h *Handler) startGame(w http.ResponseWriter, r *http.Request) {
	var req startGameRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.DeviceID == "" {
		http.Error(w, "missing device_id", http.StatusBadRequest)
		return
	}

	output, err := h.gameService.StartGame(r.Context(), &game.StartGameInput{
		Session:     game.Session{DeviceID: req.DeviceID},
		PlayerNames: req.PlayerNames,
	})
	if err != nil {
		respondServiceError(w, "start game", err)
		return
	}
	respondJSON(w, stateResponse{State: output.State})
}

func (h *Handler) endGame(w http.ResponseWriter, r *http.Request) {
	session, ok := querySession(w, r)
	if !ok {
		return
	}

	output, err := h.gameService.EndGame(r.Context(), &game.EndGameInput{
		Session: session,
	})
	if err != nil {
		respondServiceError(w, "end game", err)
		return
	}
	respondJSON(w, statusResponse{Success: output.Success})
}

func (h *Handler) recordRound(w http.ResponseWriter, r *http.Request) {
	var req roundRequest
	if !decodeBody(w, r, &req) {
		return
	}
	deltas, err := parseDeltas(req.Deltas)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	output, err := h.gameService.RecordRound(r.Context(), &game.RecordRoundInput{
		Session: game.Session{DeviceID: req.DeviceID, RoomID: req.RoomID},
		Deltas:  deltas,
	})
	if err != nil {
		respondServiceError(w, "record round", err)
		return
	}
	respondJSON(w, roundResponse{
		State:      output.State,
		Won:        output.Won,
		WinnerSlot: output.WinnerSlot,
		Settlement: output.Settlement,
	})
}

func (h *Handler) undoRound(w http.ResponseWriter, r *http.Request) {
	var req sessionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	output, err := h.gameService.UndoRound(r.Context(), &game.UndoRoundInput{
		Session: game.Session{DeviceID: req.DeviceID, RoomID: req.RoomID},
	})
	if err != nil {
		respondServiceError(w, "undo round", err)
		return
	}
	respondJSON(w, stateResponse{State: output.State})
}

func (h *Handler) editRound(w http.ResponseWriter, r *http.Request) {
	var req editRoundRequest
	if !decodeBody(w, r, &req) {
		return
	}
	deltas, err := parseDeltas(req.Deltas)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	output, err := h.gameService.EditRound(r.Context(), &game.EditRoundInput{
		Session:  game.Session{DeviceID: req.DeviceID, RoomID: req.RoomID},
		Position: req.Position,
		Deltas:   deltas,
	})
	if err != nil {
		respondServiceError(w, "edit round", err)
		return
	}
	respondJSON(w, stateResponse{State: output.State})
}

func (h *Handler) resetGame(w http.ResponseWriter, r *http.Request) {
	var req sessionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	output, err := h.gameService.ResetGame(r.Context(), &game.ResetGameInput{
		Session: game.Session{DeviceID: req.DeviceID, RoomID: req.RoomID},
	})
	if err != nil {
		respondServiceError(w, "reset game", err)
		return
	}
	respondJSON(w, stateResponse{State: output.State})
}

func (h *Handler) renamePlayers(w http.ResponseWriter, r *http.Request) {
	var req renamePlayersRequest
	if !decodeBody(w, r, &req) {
		return
	}

	output, err := h.gameService.RenamePlayers(r.Context(), &game.RenamePlayersInput{
		Session:     game.Session{DeviceID: req.DeviceID, RoomID: req.RoomID},
		PlayerNames: req.PlayerNames,
	})
	if err != nil {
		respondServiceError(w, "rename players", err)
		return
	}
	respondJSON(w, stateResponse{State: output.State})
}

func (h *Handler) getStatistics(w http.ResponseWriter, r *http.Request) {
	session, ok := querySession(w, r)
	if !ok {
		return
	}

	output, err := h.gameService.GetStatistics(r.Context(), &game.GetStatisticsInput{
		Session: session,
	})
	if err != nil {
		respondServiceError(w, "get statistics", err)
		return
	}
	respondJSON(w, statsResponse{Stats: output.Stats})
}

func (h *Handler) createRoom(w http.ResponseWriter, r *http.Request) {
	var req createRoomRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.DeviceID == "" {
		http.Error(w, "missing device_id", http.StatusBadRequest)
		return
	}

	output, err := h.gameService.CreateRoom(r.Context(), &game.CreateRoomInput{
		DeviceID:    req.DeviceID,
		PlayerNames: req.PlayerNames,
	})
	if err != nil {
		respondServiceError(w, "create room", err)
		return
	}
	respondJSONStatus(w, http.StatusCreated, output.Room)
}

func (h *Handler) getRoom(w http.ResponseWriter, r *http.Request) {
	roomID := bone.GetValue(r, "id")

	output, err := h.gameService.GetRoom(r.Context(), &game.GetRoomInput{
		RoomID: roomID,
	})
	if err != nil {
		respondServiceError(w, "get room", err)
		return
	}
	respondJSON(w, output.Room)
}

func (h *Handler) updateRoom(w http.ResponseWriter, r *http.Request) {
	roomID := bone.GetValue(r, "id")
	var req renamePlayersRequest
	if !decodeBody(w, r, &req) {
		return
	}

	output, err := h.gameService.RenamePlayers(r.Context(), &game.RenamePlayersInput{
		Session:     game.Session{RoomID: roomID},
		PlayerNames: req.PlayerNames,
	})
	if err != nil {
		respondServiceError(w, "update room", err)
		return
	}
	respondJSON(w, stateResponse{State: output.State})
}

func (h *Handler) deleteRoom(w http.ResponseWriter, r *http.Request) {
	roomID := bone.GetValue(r, "id")

	output, err := h.gameService.EndGame(r.Context(), &game.EndGameInput{
		Session: game.Session{RoomID: roomID},
	})
	if err != nil {
		respondServiceError(w, "delete room", err)
		return
	}
	respondJSON(w, statusResponse{Success: output.Success})
}

func (h *Handler) joinRoom(w http.ResponseWriter, r *http.Request) {
	roomID := bone.GetValue(r, "id")
	var req joinRoomRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.PlayerName == "" {
		http.Error(w, "missing player_name", http.StatusBadRequest)
		return
	}

	output, err := h.gameService.JoinRoom(r.Context(), &game.JoinRoomInput{
		RoomID:     roomID,
		DeviceID:   req.DeviceID,
		PlayerName: req.PlayerName,
	})
	if err != nil {
		respondServiceError(w, "join room", err)
		return
	}
	respondJSON(w, joinRoomResponse{
		Room:          output.Room,
		Slot:          output.Slot,
		AlreadyJoined: output.AlreadyJoined,
	})
}

func (h *Handler) leaveRoom(w http.ResponseWriter, r *http.Request) {
	roomID := bone.GetValue(r, "id")
	var req leaveRoomRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.PlayerName == "" {
		http.Error(w, "missing player_name", http.StatusBadRequest)
		return
	}

	output, err := h.gameService.LeaveRoom(r.Context(), &game.LeaveRoomInput{
		RoomID:     roomID,
		PlayerName: req.PlayerName,
	})
	if err != nil {
		respondServiceError(w, "leave room", err)
		return
	}
	respondJSON(w, leaveRoomResponse{RoomDeleted: output.RoomDeleted})
}

// watchRoom streams room snapshots as server-sent events, one event per
// version change, until the client disconnects or the room disappears.
func (h *Handler) watchRoom(w http.ResponseWriter, r *http.Request) {
	roomID := bone.GetValue(r, "id")

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	h.roomWatcher.Watch(r.Context(), roomID, func(room *models.Room) {
		payload, err := json.Marshal(room)
		if err != nil {
			logrus.WithError(err).Error("marshaling room event")
			return
		}
		fmt.Fprintf(w, "data: %s\n\n", payload)
		flusher.Flush()
	})
}

func (h *Handler) getHistory(w http.ResponseWriter, r *http.Request) {
	deviceID := r.URL.Query().Get("deviceId")
	if deviceID == "" {
		http.Error(w, "missing deviceId parameter", http.StatusBadRequest)
		return
	}

	output, err := h.gameService.GetHistory(r.Context(), &game.GetHistoryInput{
		DeviceID: deviceID,
	})
	if err != nil {
		respondServiceError(w, "get history", err)
		return
	}
	respondJSON(w, historyResponse{Records: output.Records})
}

func (h *Handler) clearHistory(w http.ResponseWriter, r *http.Request) {
	deviceID := r.URL.Query().Get("deviceId")
	if deviceID == "" {
		http.Error(w, "missing deviceId parameter", http.StatusBadRequest)
		return
	}

	output, err := h.gameService.ClearHistory(r.Context(), &game.ClearHistoryInput{
		DeviceID: deviceID,
	})
	if err != nil {
		respondServiceError(w, "clear history", err)
		return
	}
	respondJSON(w, statusResponse{Success: output.Success})
}

func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	deviceID := r.URL.Query().Get("deviceId")
	if deviceID == "" {
		http.Error(w, "missing deviceId parameter", http.StatusBadRequest)
		return
	}

	output, err := h.gameService.GetLastPlayerNames(r.Context(), &game.GetLastPlayerNamesInput{
		DeviceID: deviceID,
	})
	if err != nil {
		respondServiceError(w, "get settings", err)
		return
	}
	respondJSON(w, settingsResponse{
		PlayerNames: output.PlayerNames,
		Found:       output.Found,
	})
}

func (h *Handler) saveSettings(w http.ResponseWriter, r *http.Request) {
	var req settingsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.DeviceID == "" {
		http.Error(w, "missing device_id", http.StatusBadRequest)
		return
	}

	output, err := h.gameService.SaveLastPlayerNames(r.Context(), &game.SaveLastPlayerNamesInput{
		DeviceID:    req.DeviceID,
		PlayerNames: req.PlayerNames,
	})
	if err != nil {
		respondServiceError(w, "save settings", err)
		return
	}
	respondJSON(w, statusResponse{Success: output.Success})
}
