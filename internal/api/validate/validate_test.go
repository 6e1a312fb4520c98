package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequired(t *testing.T) {
	assert.Nil(t, Required("name", "x"))
	assert.NotNil(t, Required("name", ""))
	assert.NotNil(t, Required("name", "   "))

	ef := Required("card_code", "")
	assert.Equal(t, "card_code", ef.Field)
	assert.Equal(t, "required", ef.Msg)
}

func TestPositive(t *testing.T) {
	assert.Nil(t, Positive("quantity", 0.1))
	assert.NotNil(t, Positive("quantity", 0))
	assert.NotNil(t, Positive("quantity", -5))
}

func TestErrsError(t *testing.T) {
	errs := Errs{
		{Field: "card_code", Msg: "required"},
		{Field: "quantity", Msg: "must be positive"},
	}
	assert.Equal(t, "card_code: required; quantity: must be positive", errs.Error())
}
