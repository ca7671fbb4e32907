package model

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshelf-api/internal/shared/validate"
)

func TestCreateAuthorRequestValidate(t *testing.T) {
	valid := CreateAuthorRequest{Gender: GenderMale, Firstname: "Stephen", Lastname: "King"}
	assert.NoError(t, validate.Struct(valid))

	cases := map[string]CreateAuthorRequest{
		"gender":    {Gender: "OTHER", Firstname: "A", Lastname: "B"},
		"firstname": {Gender: GenderFemale, Firstname: strings.Repeat("x", 51), Lastname: "B"},
		"lastname":  {Gender: GenderFemale, Firstname: "A"},
	}
	for field, req := range cases {
		err := validate.Struct(req)
		var fieldErrs validate.Errors
		require.True(t, errors.As(err, &fieldErrs), field)
		require.Len(t, fieldErrs, 1, field)
		assert.Equal(t, field, fieldErrs[0].Field)
	}
}

func TestNamesCountCharactersNotBytes(t *testing.T) {
	req := CreateAuthorRequest{Gender: GenderMale, Firstname: strings.Repeat("ü", 50), Lastname: "Müller"}
	assert.NoError(t, validate.Struct(req))
}
