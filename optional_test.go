package inputprompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptional(t *testing.T) {
	t.Parallel()

	t.Run("some", func(t *testing.T) {
		t.Parallel()

		o := Some(0)
		assert.True(t, o.HasValue(), "zero value is still a value")
		v, ok := o.Get()
		assert.True(t, ok)
		assert.Equal(t, 0, v)
		assert.Equal(t, 0, o.Value())
		assert.Equal(t, 0, o.OrZero())
	})

	t.Run("none", func(t *testing.T) {
		t.Parallel()

		o := None[string]()
		assert.False(t, o.HasValue())
		_, ok := o.Get()
		assert.False(t, ok)
		assert.Equal(t, "", o.OrZero())
		assert.Panics(t, func() { o.Value() })
	})

	t.Run("zero value is none", func(t *testing.T) {
		t.Parallel()

		var o Optional[int]
		assert.False(t, o.HasValue())
		assert.Equal(t, None[int](), o)
	})
}
