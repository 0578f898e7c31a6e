// Package main demonstrates answer history of the inputprompt library.
package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/nao1215/inputprompt"
)

const historyFile = "~/.inputprompt_hosts"

func main() {
	fmt.Println("History Example with File Persistence")
	fmt.Println("Use Up/Down arrow keys to recall previous answers")
	fmt.Println("Press Ctrl+D on an empty line to exit")
	fmt.Printf("Answers are saved to %s\n", historyFile)
	fmt.Println()

	for {
		host, err := askHost()
		if err != nil {
			if errors.Is(err, inputprompt.ErrEOF) || errors.Is(err, inputprompt.ErrInterrupted) {
				fmt.Println("Goodbye!")
				return
			}
			log.Fatal(err)
		}
		fmt.Printf("Connecting to %s\n", host)
	}
}

// askHost opens a new prompt per question; history is loaded on creation
// and saved by Close, so answers survive restarts.
func askHost() (string, error) {
	p, err := inputprompt.New(inputprompt.Options[string]{
		Message:     "Host",
		Placeholder: "example.com",
		Converter:   inputprompt.String(),
		Validators: []inputprompt.Rule[string]{
			inputprompt.Tag[string]("required,hostname"),
		},
	}, inputprompt.WithFileHistory(historyFile, 1000))
	if err != nil {
		return "", err
	}
	defer p.Close()

	host, err := p.Run()
	if err != nil {
		return "", err
	}
	fmt.Printf("%d answers in history\n", p.History().Len())
	return host, nil
}
