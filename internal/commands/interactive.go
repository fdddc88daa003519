package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen-go/internal/generator"
)

// prompter reads answers line by line. An empty answer, or end of input,
// selects the default.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

func (p *prompter) ask(message, defaultValue string) (string, error) {
	if defaultValue != "" {
		fmt.Fprint(p.out, promptStyle.Render(message)+" "+hintStyle.Render(fmt.Sprintf("(%s)", defaultValue))+": ")
	} else {
		fmt.Fprint(p.out, promptStyle.Render(message)+": ")
	}

	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return defaultValue, nil
	}
	return line, nil
}

// askRaw is ask without trimming, so a separator may be a space. A line
// holding only "none" stands for the empty string.
func (p *prompter) askRaw(message, defaultValue string) (string, error) {
	fmt.Fprint(p.out, promptStyle.Render(message)+" "+hintStyle.Render(fmt.Sprintf("(%s, \"none\" for no separator)", defaultValue))+": ")

	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	line = strings.TrimRight(line, "\r\n")
	switch {
	case line == "":
		return defaultValue, nil
	case strings.EqualFold(strings.TrimSpace(line), "none"):
		return "", nil
	}
	return line, nil
}

func (p *prompter) askInt(message string, defaultValue, min, max int) (int, error) {
	answer, err := p.ask(fmt.Sprintf("%s [%d-%d]", message, min, max), strconv.Itoa(defaultValue))
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(answer)
	if err != nil || n < min || n > max {
		return 0, fmt.Errorf("%q is not a number between %d and %d", answer, min, max)
	}
	return n, nil
}

func (p *prompter) confirm(message string, defaultYes bool) (bool, error) {
	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}
	fmt.Fprint(p.out, promptStyle.Render(message)+" "+hintStyle.Render(hint)+": ")

	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	line = strings.TrimSpace(strings.ToLower(line))
	if line == "" {
		return defaultYes, nil
	}
	return line == "y" || line == "yes", nil
}

func (p *prompter) selectKind() (generator.Kind, error) {
	fmt.Fprintln(p.out, titleStyle.Render("Select a password generator"))
	kinds := generator.Kinds()
	for i, k := range kinds {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, k.Label())
	}

	answer, err := p.ask("Generator", "1")
	if err != nil {
		return "", err
	}
	if n, convErr := strconv.Atoi(answer); convErr == nil {
		if n < 1 || n > len(kinds) {
			return "", fmt.Errorf("%w %q", generator.ErrUnknownKind, answer)
		}
		return kinds[n-1], nil
	}
	return generator.ParseKind(answer)
}

// collect asks for the options of kind, bounded to the menu ranges.
func (p *prompter) collect(kind generator.Kind) (generator.Options, error) {
	opts := generator.Options{Kind: kind}
	var err error

	switch kind {
	case generator.KindPin:
		opts.Length, err = p.askInt("Length of the pin code", generator.DefaultPinLength, 4, 32)
	case generator.KindRandom:
		if opts.Caps, err = p.confirm("Include capitals?", false); err != nil {
			return opts, err
		}
		if opts.Numbers, err = p.confirm("Include numbers?", false); err != nil {
			return opts, err
		}
		if opts.Symbols, err = p.confirm("Include symbols?", false); err != nil {
			return opts, err
		}
		opts.Length, err = p.askInt("Length of the password", generator.DefaultRandomLength, 8, 100)
	case generator.KindMemorable:
		if opts.Words, err = p.askInt("Number of words", generator.DefaultWordCount, 2, 10); err != nil {
			return opts, err
		}
		if opts.Separator, err = p.askRaw("Separator", generator.DefaultSeparator); err != nil {
			return opts, err
		}
		opts.Capitalize, err = p.confirm("Capitalize the words?", false)
	}
	return opts, err
}

// InteractiveCmd creates the 'interactive' command, a menu-driven selector.
func InteractiveCmd() *cobra.Command {
	var vocab vocabularyFlags

	cmd := &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"i"},
		Short:   "Choose a generator and its options from prompts",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPrompter(cmd.InOrStdin(), cmd.OutOrStdout())

			kind, err := p.selectKind()
			if err != nil {
				return err
			}
			opts, err := p.collect(kind)
			if err != nil {
				return err
			}
			if kind == generator.KindMemorable {
				if opts.Vocabulary, err = vocab.load(); err != nil {
					return err
				}
			}

			g, err := generator.New(opts)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Your password is: "+passwordStyle.Render(g.Generate()))
			printEntropy(cmd.OutOrStdout(), g)
			return nil
		},
	}

	vocab.register(cmd)
	return cmd
}
