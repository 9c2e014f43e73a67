package errors_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-adventure/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func fieldErrors(err error) map[string][]string {
	return errors.GetMeta(err)["validation_errors"].(map[string][]string)
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("name", "is required").
		Fieldf("max_weight", "must be between %d and %d", 1, 1000).
		RequiredField("roller").
		InvalidField("direction", "not a compass direction")

	err := vb.Build()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Equal(
		"validation failed: name: is required; max_weight: must be between 1 and 1000; "+
			"roller: is required; direction: is invalid: not a compass direction",
		errors.GetMessage(err),
	)
	s.Len(fieldErrors(err), 4)
}

func (s *ValidationTestSuite) TestRepeatedFieldKeepsFirstPosition() {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("buyer_id").
		RequiredField("seller_id").
		InvalidField("buyer_id", "cannot trade with yourself")

	err := vb.Build()
	s.Require().Error(err)
	s.True(strings.HasPrefix(errors.GetMessage(err),
		"validation failed: buyer_id: is required, is invalid: cannot trade with yourself; seller_id"))
	s.Len(fieldErrors(err)["buyer_id"], 2)
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	s.NoError(errors.NewValidationBuilder().Build())
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "test", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
		{"valid with spaces", "  test  ", false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("field", tc.value, vb)
			if tc.shouldErr {
				s.Error(vb.Build())
			} else {
				s.NoError(vb.Build())
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateRange() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("stamina", 120, 0, 100, vb)
	errors.ValidateRange("health", 50, 0, 100, vb)

	err := vb.Build()
	s.Require().Error(err)
	s.Contains(fieldErrors(err)["stamina"][0], "must be between 0 and 100")
	s.NotContains(fieldErrors(err), "health")
}

func (s *ValidationTestSuite) TestValidateEnum() {
	directions := []string{"north", "south", "east", "west"}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("direction", "up", directions, vb)
	errors.ValidateEnum("retreat", "south", directions, vb)

	err := vb.Build()
	s.Require().Error(err)
	s.Contains(fieldErrors(err)["direction"][0], "must be one of: north, south, east, west")
	s.NotContains(fieldErrors(err), "retreat")
}

func (s *ValidationTestSuite) TestValidateName() {
	testCases := []struct {
		name     string
		value    string
		required bool
		problem  string
	}{
		{"plain name", "Aria", true, ""},
		{"unicode counts runes", strings.Repeat("é", errors.MaxNameLength), true, ""},
		{"optional and empty", "", false, ""},
		{"optional but blank", "   ", false, "is required"},
		{"required and empty", "", true, "is required"},
		{"too long", strings.Repeat("a", errors.MaxNameLength+1), true, "must be at most 32 characters"},
		{"control characters", "Aria\n", true, "contains control characters"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateName("name", tc.value, tc.required, vb)
			err := vb.Build()
			if tc.problem == "" {
				s.NoError(err)
				return
			}
			s.Require().Error(err)
			s.Contains(fieldErrors(err)["name"][0], tc.problem)
		})
	}
}
