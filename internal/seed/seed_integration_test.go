//go:build integration

package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"udaan/pkg/testutil/containers"
)

type SeederSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	seeder   *Seeder
}

func TestSeederSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(SeederSuite))
}

func (s *SeederSuite) SetupSuite() {
	s.postgres = containers.GetManager().GetPostgres(s.T())
	s.seeder = New(s.postgres.DB, nil)
}

func (s *SeederSuite) SetupTest() {
	err := s.postgres.TruncateTables(context.Background(),
		"documents", "transactions", "properties", "entities", "rural_properties", "urban_properties")
	s.Require().NoError(err)
}

func (s *SeederSuite) count(table string) int {
	var n int
	s.Require().NoError(s.postgres.DB.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n))
	return n
}

func (s *SeederSuite) TestRunInsertsAllSampleRows() {
	summary, err := s.seeder.Run(context.Background())
	s.Require().NoError(err)

	s.Equal(Summary{
		Entities:        len(entities),
		Properties:      len(properties),
		Documents:       len(documents),
		Transactions:    len(transactions),
		RuralProperties: len(ruralProperties),
		UrbanProperties: len(urbanProperties),
	}, summary)

	s.Equal(len(entities), s.count("entities"))
	s.Equal(len(transactions), s.count("transactions"))
	s.Equal(len(urbanProperties), s.count("urban_properties"))

	var owner string
	err = s.postgres.DB.QueryRow(`
		SELECT e.name FROM properties p JOIN entities e ON e.id = p.owner_entity_id
		WHERE p.address = 'Green Valley Apartments, B-101'`).Scan(&owner)
	s.Require().NoError(err)
	s.Equal("John Doe", owner)
}

func (s *SeederSuite) TestRunRollsBackOnFailure() {
	_, err := s.postgres.DB.Exec(`ALTER TABLE urban_properties RENAME COLUMN owner TO owner_name`)
	s.Require().NoError(err)
	defer func() {
		_, err := s.postgres.DB.Exec(`ALTER TABLE urban_properties RENAME COLUMN owner_name TO owner`)
		s.Require().NoError(err)
	}()

	_, err = s.seeder.Run(context.Background())
	s.Require().Error(err)

	s.Zero(s.count("entities"))
	s.Zero(s.count("rural_properties"))
}
