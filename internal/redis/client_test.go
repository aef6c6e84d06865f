package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/redis"
)

type ClientTestSuite struct {
	suite.Suite
	mr *miniredis.Miniredis
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr
}

func (s *ClientTestSuite) TearDownTest() {
	s.mr.Close()
}

func (s *ClientTestSuite) TestNewClientRequiresEndpoint() {
	client, err := redis.NewClient("", nil)
	s.Nil(client)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ClientTestSuite) TestPing() {
	client, err := redis.NewClient(s.mr.Addr(), &redis.Options{MaxRetries: 1})
	s.Require().NoError(err)
	defer func() { _ = client.Close() }()

	s.NoError(redis.Ping(context.Background(), client))
}

func (s *ClientTestSuite) TestPingUnreachable() {
	addr := s.mr.Addr()
	s.mr.Close()

	client, err := redis.NewClient(addr, nil)
	s.Require().NoError(err)
	defer func() { _ = client.Close() }()

	err = redis.Ping(context.Background(), client)
	s.True(errors.IsUnavailable(err))
}
