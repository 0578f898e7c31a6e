package inputprompt

import (
	"cmp"
	"errors"
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Rule checks a converted value. Rules must not modify the value.
type Rule[T any] func(value T) error

// Validate runs rules against value in order and stops at the first failure.
//
// The failure is returned as a *ValidationError; errors of other types are
// wrapped. On success value is returned unchanged. An empty rule list always
// succeeds.
func Validate[T any](value T, rules []Rule[T]) (T, error) {
	for _, rule := range rules {
		if rule == nil {
			continue
		}
		if err := rule(value); err != nil {
			var ve *ValidationError
			if errors.As(err, &ve) {
				return value, ve
			}
			return value, &ValidationError{Message: err.Error(), Err: err}
		}
	}
	return value, nil
}

// Required rejects the zero value of T.
func Required[T comparable]() Rule[T] {
	return func(value T) error {
		var zero T
		if value == zero {
			return &ValidationError{Message: "Value is required"}
		}
		return nil
	}
}

// MinLength rejects strings shorter than n runes.
func MinLength(n int) Rule[string] {
	return func(value string) error {
		if utf8.RuneCountInString(value) < n {
			return &ValidationError{Message: fmt.Sprintf("Value must be at least %d characters", n)}
		}
		return nil
	}
}

// MaxLength rejects strings longer than n runes.
func MaxLength(n int) Rule[string] {
	return func(value string) error {
		if utf8.RuneCountInString(value) > n {
			return &ValidationError{Message: fmt.Sprintf("Value must be at most %d characters", n)}
		}
		return nil
	}
}

// Pattern rejects strings that do not match expr. It panics if expr does not compile.
func Pattern(expr string) Rule[string] {
	re := regexp.MustCompile(expr)
	return func(value string) error {
		if !re.MatchString(value) {
			return &ValidationError{Message: fmt.Sprintf("Value must match %s", expr)}
		}
		return nil
	}
}

// Between rejects values outside the closed range [lo, hi].
func Between[T cmp.Ordered](lo, hi T) Rule[T] {
	return func(value T) error {
		if value < lo || value > hi {
			return &ValidationError{Message: fmt.Sprintf("Value must be between %v and %v", lo, hi)}
		}
		return nil
	}
}

var tagValidator = validator.New()

// Tag validates the value with go-playground/validator tag syntax.
//
// Example:
//
//	inputprompt.Tag[string]("required,email")
//	inputprompt.Tag[int]("min=1,max=120")
//
// An unknown tag makes the validator panic; the prompt recovers from it and
// shows the panic text as an error.
func Tag[T any](tag string) Rule[T] {
	return func(value T) error {
		err := tagValidator.Var(value, tag)
		if err == nil {
			return nil
		}
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			if fe.Param() != "" {
				return &ValidationError{Message: fmt.Sprintf("Value failed %q check (%s)", fe.Tag(), fe.Param()), Err: err}
			}
			return &ValidationError{Message: fmt.Sprintf("Value failed %q check", fe.Tag()), Err: err}
		}
		return &ValidationError{Message: err.Error(), Err: err}
	}
}
