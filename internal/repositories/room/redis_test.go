package room

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/panuwat-oat/dummy-calculator/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	// Set up test time
	s.testNow = time.Date(2025, 11, 2, 19, 30, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) testRoom() *models.Room {
	return &models.Room{
		ID:     "482913",
		HostID: "test-device-id",
		Status: models.RoomStatusWaiting,
		State: models.NewGameState(
			[models.NumPlayers]string{"Aom", "Beam", "Chai", "Dao"},
		),
		CreatedAt: s.testNow,
		UpdatedAt: s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestCreateAndGetRoom() {
	room := s.testRoom()

	err := s.repo.CreateRoom(context.Background(), &CreateRoomInput{
		Room: room,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetRoom(context.Background(), &GetRoomInput{
		RoomID: room.ID,
	})
	s.Require().NoError(err)
	s.Equal(room.ID, retrieved.ID)
	s.Equal(room.HostID, retrieved.HostID)
	s.Equal(room.Status, retrieved.Status)
	s.Equal(room.State.PlayerNames, retrieved.State.PlayerNames)
	s.Empty(retrieved.State.Log)
}

func (s *RedisRepositoryTestSuite) TestCreateRoomDuplicateCode() {
	room := s.testRoom()

	err := s.repo.CreateRoom(context.Background(), &CreateRoomInput{Room: room})
	s.Require().NoError(err)

	err = s.repo.CreateRoom(context.Background(), &CreateRoomInput{Room: room})
	s.ErrorIs(err, ErrRoomExists)
}

func (s *RedisRepositoryTestSuite) TestGetRoomNotFound() {
	_, err := s.repo.GetRoom(context.Background(), &GetRoomInput{
		RoomID: "000000",
	})
	s.ErrorIs(err, ErrRoomNotFound)
}

func (s *RedisRepositoryTestSuite) TestUpdateRoom() {
	room := s.testRoom()
	err := s.repo.CreateRoom(context.Background(), &CreateRoomInput{Room: room})
	s.Require().NoError(err)

	room.State.Log = append(room.State.Log, models.LedgerEntry{
		Type:   models.EntryRound,
		Values: [models.NumPlayers]int{10, 20, 30, 40},
	})
	room.State.Scores = [models.NumPlayers]int{10, 20, 30, 40}
	room.State.Version = 1
	room.Status = models.RoomStatusPlaying

	err = s.repo.UpdateRoom(context.Background(), &UpdateRoomInput{
		Room:            room,
		ExpectedVersion: 0,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetRoom(context.Background(), &GetRoomInput{
		RoomID: room.ID,
	})
	s.Require().NoError(err)
	s.Equal(int64(1), retrieved.State.Version)
	s.Equal([models.NumPlayers]int{10, 20, 30, 40}, retrieved.State.Scores)
	s.Len(retrieved.State.Log, 1)
	s.Equal(models.RoomStatusPlaying, retrieved.Status)
}

func (s *RedisRepositoryTestSuite) TestUpdateRoomStaleVersion() {
	room := s.testRoom()
	err := s.repo.CreateRoom(context.Background(), &CreateRoomInput{Room: room})
	s.Require().NoError(err)

	// First writer advances the room
	first := s.testRoom()
	first.State.Version = 1
	err = s.repo.UpdateRoom(context.Background(), &UpdateRoomInput{
		Room:            first,
		ExpectedVersion: 0,
	})
	s.Require().NoError(err)

	// Second writer still holds version 0 and must be rejected
	second := s.testRoom()
	second.State.Scores = [models.NumPlayers]int{99, 0, 0, 0}
	second.State.Version = 1
	err = s.repo.UpdateRoom(context.Background(), &UpdateRoomInput{
		Room:            second,
		ExpectedVersion: 0,
	})
	s.ErrorIs(err, ErrStaleVersion)
}

func (s *RedisRepositoryTestSuite) TestUpdateRoomNotFound() {
	room := s.testRoom()
	err := s.repo.UpdateRoom(context.Background(), &UpdateRoomInput{
		Room:            room,
		ExpectedVersion: 0,
	})
	s.ErrorIs(err, ErrRoomNotFound)
}

func (s *RedisRepositoryTestSuite) TestDeleteRoom() {
	room := s.testRoom()
	err := s.repo.CreateRoom(context.Background(), &CreateRoomInput{Room: room})
	s.Require().NoError(err)

	err = s.repo.DeleteRoom(context.Background(), &DeleteRoomInput{
		RoomID: room.ID,
	})
	s.Require().NoError(err)

	_, err = s.repo.GetRoom(context.Background(), &GetRoomInput{
		RoomID: room.ID,
	})
	s.ErrorIs(err, ErrRoomNotFound)
}
