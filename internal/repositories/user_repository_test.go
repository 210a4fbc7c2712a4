package repositories

import (
	"context"
	"testing"

	"budget-tracker/internal/database"

	"github.com/stretchr/testify/suite"
)

func TestUserRepository(t *testing.T) {
	suite.Run(t, new(UserRepositorySuite))
}

type UserRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo UserRepositoryInterface
}

func (s *UserRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewUserRepository(s.db.DB)
}

func (s *UserRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *UserRepositorySuite) TestListEmails_Sorted() {
	database.CreateTestUser(s.T(), s.db, "zed@example.com")
	database.CreateTestUser(s.T(), s.db, "amy@example.com")
	database.CreateTestUser(s.T(), s.db, "max@example.com")

	emails, err := s.repo.ListEmails(context.Background())
	s.Require().NoError(err)
	s.Equal([]string{"amy@example.com", "max@example.com", "zed@example.com"}, emails)
}

func (s *UserRepositorySuite) TestListEmails_Empty() {
	emails, err := s.repo.ListEmails(context.Background())
	s.NoError(err)
	s.Empty(emails)
}
