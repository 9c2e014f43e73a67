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

func (s *ClientTestSuite) TestKebab() {
	s.Equal("move", kebab("Move"))
	s.Equal("get-inventory", kebab("GetInventory"))
	s.Equal("trade-with-player", kebab("TradeWithPlayer"))
}

func (s *ClientTestSuite) TestBuildRequest() {
	req, err := buildRequest([]string{"buyer_id", "seller_id", "item_name", "price"}, []string{"p1", "p2", "Wood", "12"})
	s.Require().NoError(err)
	s.Equal("p2", req.GetFields()["seller_id"].GetStringValue())
	s.Equal(float64(12), req.GetFields()["price"].GetNumberValue())

	_, err = buildRequest([]string{"price"}, []string{"cheap"})
	s.Error(err)
}

func (s *ClientTestSuite) TestEveryActionHasACommand() {
	s.Len(ClientCmd.Commands(), len(actions))

	cmd, _, err := ClientCmd.Find([]string{"get-inventory"})
	s.Require().NoError(err)
	s.Equal("Show the inventory", cmd.Short)
}
