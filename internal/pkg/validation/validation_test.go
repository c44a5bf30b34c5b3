package validation

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugBindingRule(t *testing.T) {
	require.NoError(t, RegisterCustomValidators())

	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)

	type payload struct {
		Slug string `validate:"slug"`
	}

	assert.NoError(t, v.Struct(payload{Slug: "golang-basics"}))
	assert.Error(t, v.Struct(payload{Slug: "Not A Slug"}))
}
