// Package main is a small command line front end for inputprompt.
//
// It asks a single question described by flags, or a list of questions
// described by a YAML form, and prints the answers as YAML:
//
//	ask --type int --message Port --default 8080 --validate "min=1,max=65535"
//	ask --file form.yaml
//
// Form file:
//
//	theme: dark
//	history: ~/.ask_history
//	questions:
//	  - name: port
//	    type: int
//	    message: Port
//	    default: "8080"
//	    validate: min=1,max=65535
//	  - name: timeout
//	    type: duration
//	    message: Timeout
//	    default: 30s
//	    mustSelect: true
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/nao1215/inputprompt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type question struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Message     string `yaml:"message"`
	Default     string `yaml:"default"`
	Placeholder string `yaml:"placeholder"`
	MustSelect  bool   `yaml:"mustSelect"`
	Validate    string `yaml:"validate"`
}

type form struct {
	Theme     string     `yaml:"theme"`
	History   string     `yaml:"history"`
	Questions []question `yaml:"questions"`
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if errors.Is(err, inputprompt.ErrInterrupted) || errors.Is(err, inputprompt.ErrEOF) {
			os.Exit(130)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		q       question
		file    string
		theme   string
		noColor bool
		verbose bool
	)

	cmd := &cobra.Command{
		Use:          "ask",
		Short:        "Ask typed questions on the terminal and print the answers as YAML",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := form{Theme: theme}
			if file != "" {
				loaded, err := loadForm(file)
				if err != nil {
					return err
				}
				f = *loaded
				if cmd.Flags().Changed("theme") {
					f.Theme = theme
				}
			} else {
				if q.Message == "" {
					return errors.New("either --message or --file is required")
				}
				if q.Name == "" {
					q.Name = "answer"
				}
				f.Questions = []question{q}
			}

			logger := zap.NewNop()
			if verbose {
				l, err := zap.NewDevelopment()
				if err != nil {
					return fmt.Errorf("failed to create logger: %w", err)
				}
				logger = l
			}
			defer logger.Sync() //nolint:errcheck

			options, err := promptOptions(f, noColor, logger)
			if err != nil {
				return err
			}

			answers := make(map[string]string, len(f.Questions))
			for _, q := range f.Questions {
				answer, err := askQuestion(q, options)
				if err != nil {
					return err
				}
				answers[q.Name] = answer
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			defer enc.Close()
			return enc.Encode(answers)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&file, "file", "f", "", "YAML form describing the questions")
	flags.StringVar(&q.Name, "name", "", "key of the answer in the output")
	flags.StringVarP(&q.Type, "type", "t", "string", "answer type: string, int, uint, float, bool, duration, optional-int")
	flags.StringVarP(&q.Message, "message", "m", "", "question to ask")
	flags.StringVarP(&q.Default, "default", "d", "", "default answer")
	flags.StringVarP(&q.Placeholder, "placeholder", "p", "", "text shown while the input is empty")
	flags.BoolVar(&q.MustSelect, "must-select", false, "only apply the default after Tab is pressed")
	flags.StringVar(&q.Validate, "validate", "", "validator tags, e.g. \"min=1,max=10\"")
	flags.StringVar(&theme, "theme", "default", "color theme: default, dark, light, accessible")
	flags.BoolVar(&noColor, "no-color", false, "disable colors")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log prompt events to stderr")

	return cmd
}

func loadForm(path string) (*form, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the command line
	if err != nil {
		return nil, fmt.Errorf("failed to read form: %w", err)
	}
	var f form
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse form %s: %w", path, err)
	}
	if len(f.Questions) == 0 {
		return nil, fmt.Errorf("form %s has no questions", path)
	}
	for i, q := range f.Questions {
		if q.Name == "" {
			f.Questions[i].Name = fmt.Sprintf("q%d", i+1)
		}
	}
	return &f, nil
}

func promptOptions(f form, noColor bool, logger *zap.Logger) ([]inputprompt.Option, error) {
	options := []inputprompt.Option{inputprompt.WithLogger(logger)}

	if f.Theme != "" {
		theme, ok := inputprompt.Themes[f.Theme]
		if !ok {
			return nil, fmt.Errorf("unknown theme %q", f.Theme)
		}
		options = append(options, inputprompt.WithTheme(theme))
	}
	if f.History != "" {
		options = append(options, inputprompt.WithFileHistory(f.History, 500))
	}
	if noColor {
		options = append(options, inputprompt.WithoutColor())
	}
	return options, nil
}

func askQuestion(q question, options []inputprompt.Option) (string, error) {
	switch q.Type {
	case "", "string":
		return ask(q, inputprompt.String(), options)
	case "int":
		return ask(q, inputprompt.Int(), options)
	case "uint":
		return ask(q, inputprompt.Uint(), options)
	case "float":
		return ask(q, inputprompt.Float(), options)
	case "bool":
		return ask(q, inputprompt.Bool(), options)
	case "duration":
		return ask(q, inputprompt.Duration(), options)
	case "optional-int":
		return ask(q, inputprompt.Pointer(inputprompt.Int()), options)
	default:
		return "", fmt.Errorf("question %s: unknown type %q", q.Name, q.Type)
	}
}

func ask[T any](q question, conv inputprompt.Converter[T], options []inputprompt.Option) (string, error) {
	opts := inputprompt.Options[T]{
		Message:                    q.Message,
		Placeholder:                q.Placeholder,
		Converter:                  conv,
		DefaultValueMustBeSelected: q.MustSelect,
	}
	if q.Default != "" {
		def, err := conv.Convert(q.Default)
		if err != nil {
			return "", fmt.Errorf("question %s: invalid default: %w", q.Name, err)
		}
		opts.Default = inputprompt.Some(def)
	}
	if q.Validate != "" {
		opts.Validators = []inputprompt.Rule[T]{inputprompt.Tag[T](q.Validate)}
	}

	p, err := inputprompt.New(opts, options...)
	if err != nil {
		return "", err
	}
	defer p.Close()

	value, err := p.Run()
	if err != nil {
		return "", err
	}
	text, _ := conv.Format(value)
	return text, nil
}
