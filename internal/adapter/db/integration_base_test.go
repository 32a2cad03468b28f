//go:build integration
// +build integration

package db

import (
	"context"
	"os"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"

	"taskbook/internal/config"
)

// IntegrationSuiteBase connects to MYSQL_TEST_DATABASE, or to the configured
// database with a _test suffix. The name must end in _test since every test
// drops the task book tables.
type IntegrationSuiteBase struct {
	suite.Suite

	DB *sqlx.DB
}

func (s *IntegrationSuiteBase) SetupSuite() {
	conf := config.LoadConfig()
	if name := os.Getenv("MYSQL_TEST_DATABASE"); name != "" {
		conf.DbName = name
	} else {
		conf.DbName += "_test"
	}
	if !strings.HasSuffix(conf.DbName, "_test") {
		s.T().Skip("skipping integration suite: MYSQL_TEST_DATABASE must name a *_test database")
	}

	db, err := ConnectDB(context.Background(), conf)
	if err != nil {
		s.T().Skipf("skipping integration suite: could not connect to mysql: %v", err)
	}
	s.DB = db
}

func (s *IntegrationSuiteBase) TearDownSuite() {
	if s.DB != nil {
		s.Require().NoError(s.DB.Close())
	}
}

func (s *IntegrationSuiteBase) ResetDatabase() {
	for _, table := range []string{"tasks", "persons"} {
		_, err := s.DB.Exec("DROP TABLE IF EXISTS " + table)
		s.Require().NoError(err)
	}
}
