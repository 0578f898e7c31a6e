// Package main demonstrates basic usage of the inputprompt library.
package main

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/nao1215/inputprompt"
)

func main() {
	fmt.Println("Basic Input Example")
	fmt.Println("Press Ctrl+C to quit")
	fmt.Println()

	name, err := askName()
	if err != nil {
		exit(err)
	}

	age, err := askAge()
	if err != nil {
		exit(err)
	}

	timeout, err := askTimeout()
	if err != nil {
		exit(err)
	}

	fmt.Printf("Hello %s (%d), requests time out after %s\n", name, age, timeout)
}

func askName() (string, error) {
	p, err := inputprompt.New(inputprompt.Options[string]{
		Message:     "Name",
		Placeholder: "Gopher",
		Converter:   inputprompt.String(),
		Validators: []inputprompt.Rule[string]{
			inputprompt.Required[string](),
			inputprompt.MaxLength(32),
		},
	})
	if err != nil {
		return "", err
	}
	defer p.Close()
	return p.Run()
}

func askAge() (int, error) {
	p, err := inputprompt.New(inputprompt.Options[int]{
		Message:    "Age",
		Default:    inputprompt.Some(20),
		Converter:  inputprompt.Int(),
		Validators: []inputprompt.Rule[int]{inputprompt.Between(0, 150)},
	})
	if err != nil {
		return 0, err
	}
	defer p.Close()
	return p.Run()
}

// askTimeout only applies its default after Tab; Enter on an empty line gives 0s.
func askTimeout() (time.Duration, error) {
	p, err := inputprompt.New(inputprompt.Options[time.Duration]{
		Message:                    "Timeout",
		Default:                    inputprompt.Some(30 * time.Second),
		DefaultValueMustBeSelected: true,
		Converter:                  inputprompt.Duration(),
	}, inputprompt.WithTheme(inputprompt.ThemeDark))
	if err != nil {
		return 0, err
	}
	defer p.Close()
	return p.Run()
}

func exit(err error) {
	if errors.Is(err, inputprompt.ErrInterrupted) || errors.Is(err, inputprompt.ErrEOF) {
		fmt.Println("Goodbye!")
		return
	}
	log.Fatal(err)
}
