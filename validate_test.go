package inputprompt

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("no rules", func(t *testing.T) {
		t.Parallel()

		v, err := Validate(3, nil)
		require.NoError(t, err)
		assert.Equal(t, 3, v)
	})

	t.Run("nil rules are skipped", func(t *testing.T) {
		t.Parallel()

		v, err := Validate(3, []Rule[int]{nil, Between(1, 5)})
		require.NoError(t, err)
		assert.Equal(t, 3, v)
	})

	t.Run("plain errors are wrapped", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("odd numbers only")
		rule := func(v int) error {
			if v%2 == 0 {
				return cause
			}
			return nil
		}

		_, err := Validate(4, []Rule[int]{rule})
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "odd numbers only", ve.Message)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("first failure wins", func(t *testing.T) {
		t.Parallel()

		_, err := Validate("", []Rule[string]{Required[string](), MinLength(3)})
		assert.EqualError(t, err, "Value is required")
	})
}

func TestBuiltinRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		check   func() error
		wantErr string
	}{
		{name: "required ok", check: func() error { return Required[int]()(1) }},
		{name: "required zero", check: func() error { return Required[int]()(0) }, wantErr: "Value is required"},
		{name: "min length ok", check: func() error { return MinLength(2)("日本") }},
		{name: "min length short", check: func() error { return MinLength(3)("日本") }, wantErr: "Value must be at least 3 characters"},
		{name: "max length ok", check: func() error { return MaxLength(2)("ab") }},
		{name: "max length long", check: func() error { return MaxLength(2)("abc") }, wantErr: "Value must be at most 2 characters"},
		{name: "pattern ok", check: func() error { return Pattern(`^[a-z]+$`)("abc") }},
		{name: "pattern mismatch", check: func() error { return Pattern(`^[a-z]+$`)("ab1") }, wantErr: "Value must match ^[a-z]+$"},
		{name: "between lower bound", check: func() error { return Between(1, 10)(1) }},
		{name: "between upper bound", check: func() error { return Between(1, 10)(10) }},
		{name: "between below", check: func() error { return Between(1, 10)(0) }, wantErr: "Value must be between 1 and 10"},
		{name: "between float", check: func() error { return Between(0.5, 1.5)(2.0) }, wantErr: "Value must be between 0.5 and 1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.check()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestPatternPanicsOnInvalidExpression(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { Pattern("(") })
}

func TestTagRule(t *testing.T) {
	t.Parallel()

	t.Run("string tags", func(t *testing.T) {
		t.Parallel()

		email := Tag[string]("email")
		assert.NoError(t, email("gopher@example.com"))
		assert.EqualError(t, email("gopher"), `Value failed "email" check`)
	})

	t.Run("numeric tags with params", func(t *testing.T) {
		t.Parallel()

		age := Tag[int]("min=1,max=120")
		assert.NoError(t, age(30))
		assert.EqualError(t, age(0), `Value failed "min" check (1)`)
		assert.EqualError(t, age(121), `Value failed "max" check (120)`)
	})

	t.Run("validator errors stay reachable", func(t *testing.T) {
		t.Parallel()

		err := Tag[string]("hostname")("not a host")
		var fieldErrs validator.ValidationErrors
		require.ErrorAs(t, err, &fieldErrs)
		assert.Equal(t, "hostname", fieldErrs[0].Tag())
	})

	t.Run("unknown tag panics", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() { _ = Tag[int]("bogus")(1) })
	})
}
