package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/generator"
	"github.com/vaultpass/passgen-go/internal/vocabulary"
)

var errInvalidCount = errors.New("--count must be at least 1")

// outputFlags are shared by every generator subcommand.
type outputFlags struct {
	count   int
	hash    bool
	entropy bool
}

func (f *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.count, "count", 1, "Number of passwords to generate")
	cmd.Flags().BoolVar(&f.hash, "hash", false, "Print an Argon2id hash after each password, tab separated")
	cmd.Flags().BoolVar(&f.entropy, "entropy", false, "Print the estimated entropy to stderr")
}

// emit writes count passwords to stdout, one per line.
func (f *outputFlags) emit(cmd *cobra.Command, g generator.Generator) error {
	if f.count < 1 {
		return errInvalidCount
	}

	out := cmd.OutOrStdout()
	for i := 0; i < f.count; i++ {
		password := g.Generate()
		if !f.hash {
			fmt.Fprintln(out, password)
			continue
		}
		hash, err := crypto.HashPassword(password, crypto.DefaultHashParams())
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s\t%s\n", password, hash)
	}

	if f.entropy {
		printEntropy(cmd.ErrOrStderr(), g)
	}
	return nil
}

func printEntropy(w io.Writer, g generator.Generator) {
	if e, ok := g.(generator.Estimator); ok {
		fmt.Fprintf(w, "entropy: %.1f bits\n", e.EntropyBits())
	}
}

// PinCmd creates the 'pin' command.
func PinCmd() *cobra.Command {
	var (
		out    outputFlags
		length int
	)

	cmd := &cobra.Command{
		Use:   "pin",
		Short: "Generate numeric PIN codes",
		Example: `  passgen pin
  passgen pin --length 4 --count 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := generator.NewPin(length)
			if err != nil {
				return err
			}
			return out.emit(cmd, g)
		},
	}

	cmd.Flags().IntVarP(&length, "length", "l", generator.DefaultPinLength, "Number of digits")
	out.register(cmd)
	return cmd
}

// RandomCmd creates the 'random' command.
func RandomCmd() *cobra.Command {
	var (
		out outputFlags
		cfg generator.RandomConfig
	)

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Generate random character passwords",
		Long: `Generate passwords whose characters are drawn independently from
lowercase letters plus any enabled classes. An enabled class is not
guaranteed to appear in every password.`,
		Example: `  passgen random --length 16 --caps --numbers
  passgen random -l 24 -cns --entropy`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := generator.NewRandom(cfg)
			if err != nil {
				return err
			}
			return out.emit(cmd, g)
		},
	}

	cmd.Flags().IntVarP(&cfg.Length, "length", "l", generator.DefaultRandomLength, "Number of characters")
	cmd.Flags().BoolVarP(&cfg.Caps, "caps", "c", false, "Include uppercase letters")
	cmd.Flags().BoolVarP(&cfg.Numbers, "numbers", "n", false, "Include digits")
	cmd.Flags().BoolVarP(&cfg.Symbols, "symbols", "s", false, "Include punctuation")
	out.register(cmd)
	return cmd
}

// vocabularyFlags select and filter the word list of memorable passwords.
type vocabularyFlags struct {
	path   string
	minLen int
	maxLen int
}

func (f *vocabularyFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.path, "vocabulary", "", "Word list file, one word per line (default: system dictionary or built-in list)")
	cmd.Flags().IntVar(&f.minLen, "min-word-length", 3, "Skip shorter words")
	cmd.Flags().IntVar(&f.maxLen, "max-word-length", 10, "Skip longer words")
}

func (f *vocabularyFlags) load() ([]string, error) {
	return vocabulary.Resolve(f.path, vocabulary.LoadOptions{
		MinWordLength: f.minLen,
		MaxWordLength: f.maxLen,
		LettersOnly:   true,
	})
}

// MemorableCmd creates the 'memorable' command.
func MemorableCmd() *cobra.Command {
	var (
		out   outputFlags
		vocab vocabularyFlags
		cfg   generator.MemorableConfig
	)

	cmd := &cobra.Command{
		Use:   "memorable",
		Short: "Generate passphrases from dictionary words",
		Example: `  passgen memorable
  passgen memorable --words 4 --separator . --capitalize
  passgen memorable --vocabulary ./words.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := vocab.load()
			if err != nil {
				return err
			}
			cfg.Vocabulary = words

			g, err := generator.NewMemorable(cfg)
			if err != nil {
				return err
			}
			return out.emit(cmd, g)
		},
	}

	cmd.Flags().IntVarP(&cfg.Words, "words", "w", generator.DefaultWordCount, "Number of words")
	cmd.Flags().StringVarP(&cfg.Separator, "separator", "s", generator.DefaultSeparator, "Text placed between words (may be empty)")
	cmd.Flags().BoolVarP(&cfg.Capitalize, "capitalize", "c", false, "Upper-case every word")
	vocab.register(cmd)
	out.register(cmd)
	return cmd
}
