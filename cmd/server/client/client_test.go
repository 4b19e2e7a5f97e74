package client

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ClientTestSuite struct {
	suite.Suite
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) TestParseAllocation() {
	alloc, err := parseAllocation("Strength=40, vitality=30,strength=5")
	s.Require().NoError(err)
	s.Equal(map[string]int{"strength": 45, "vitality": 30}, alloc)

	alloc, err = parseAllocation("  ")
	s.Require().NoError(err)
	s.Empty(alloc)
}

func (s *ClientTestSuite) TestParseAllocationRejectsMalformedPairs() {
	_, err := parseAllocation("strength")
	s.Error(err)

	_, err = parseAllocation("strength=lots")
	s.Error(err)
}

func (s *ClientTestSuite) TestCommandsRegistered() {
	want := []string{
		"create", "stats", "allocate", "train",
		"buy", "equip", "unequip",
		"fight", "join", "poll",
		"races", "enemies", "equipment",
	}
	for _, name := range want {
		cmd, _, err := ClientCmd.Find([]string{name})
		s.Require().NoError(err, name)
		s.Equal(name, cmd.Name())
	}
}
