package profile

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/KirkDiggler/tipsy/internal/repositories/sqlite"
	"github.com/stretchr/testify/suite"
)

type SQLiteRepositoryTestSuite struct {
	repositoryContractSuite
	db *sql.DB
}

func (s *SQLiteRepositoryTestSuite) SetupTest() {
	db, err := sqlite.Open(filepath.Join(s.T().TempDir(), "tipsy.db"))
	s.Require().NoError(err)
	s.db = db

	repo, err := NewSQLite(&SQLiteConfig{DB: db})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *SQLiteRepositoryTestSuite) TearDownTest() {
	s.db.Close()
}

func TestSQLiteRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SQLiteRepositoryTestSuite))
}

func (s *SQLiteRepositoryTestSuite) TestNewSQLiteValidatesConfig() {
	_, err := NewSQLite(nil)
	s.Error(err)

	_, err = NewSQLite(&SQLiteConfig{})
	s.Error(err)
}
