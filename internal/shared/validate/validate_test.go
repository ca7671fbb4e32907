package validate

import (
	"errors"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (s sample) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Name, validation.Required, validation.Length(1, 5)),
		validation.Field(&s.Email, validation.Required),
	)
}

func TestStructValid(t *testing.T) {
	assert.NoError(t, Struct(sample{Name: "abc", Email: "a@b"}))
}

func TestStructCollectsSortedFieldErrors(t *testing.T) {
	err := Struct(sample{Name: "too long name"})
	require.Error(t, err)

	var fieldErrs Errors
	require.True(t, errors.As(err, &fieldErrs))
	require.Len(t, fieldErrs, 2)
	assert.Equal(t, "email", fieldErrs[0].Field)
	assert.Equal(t, "name", fieldErrs[1].Field)
	assert.Contains(t, err.Error(), "name:")
}

func TestFromOzzoPassesThroughPlainErrors(t *testing.T) {
	plain := errors.New("boom")
	assert.Equal(t, plain, FromOzzo(plain))
	assert.NoError(t, FromOzzo(nil))
}

func TestFromOzzoFlattensNested(t *testing.T) {
	err := FromOzzo(validation.Errors{
		"author": validation.Errors{"lastname": errors.New("cannot be blank")},
	})

	var fieldErrs Errors
	require.True(t, errors.As(err, &fieldErrs))
	assert.Equal(t, Errors{{Field: "author.lastname", Message: "cannot be blank"}}, fieldErrs)
}
