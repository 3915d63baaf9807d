// choptimize analyzes a coding prompt with Gemini and reports its quality
// across five metrics: specificity, clarity, context, constraints, brevity.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"choptimize/cmd/choptimize/ui"
	"choptimize/internal/analysis"
	"choptimize/internal/config"
	"choptimize/internal/gemini"
)

const version = "0.1.0"

var (
	// Global flags
	verbose     bool
	modelFlag   string
	timeoutFlag time.Duration

	// Logger
	logger *zap.Logger
)

// exitError carries a specific process exit code out of RunE.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

var rootCmd = &cobra.Command{
	Use:   "choptimize [prompt]",
	Short: "Analyze & optimize coding prompts",
	Long: `choptimize evaluates a coding prompt across 5 key metrics:

  - Specificity:  How precisely the requirements are defined
  - Clarity:      How easily the prompt can be understood
  - Context:      How well background information is provided
  - Constraints:  How explicitly limitations are specified
  - Brevity:      How concisely information is communicated

Examples:
  choptimize "Write a function to reverse a string"
  echo "Create a REST API" | choptimize
  choptimize < my_prompt.txt`,
	Args:          cobra.MaximumNArgs(1),
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zapConfig := zap.NewProductionConfig()
		if verbose {
			zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		} else {
			zapConfig.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
		}
		var err error
		logger, err = zapConfig.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runAnalyze,
}

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().StringVar(&modelFlag, "model", "", "override the Gemini model")
	rootCmd.Flags().DurationVar(&timeoutFlag, "timeout", 0, "request timeout (e.g. 90s)")
	rootCmd.Flags().BoolP("version", "V", false, "show current program version & exit")
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	console := ui.NewConsole()

	var arg string
	if len(args) > 0 {
		arg = args[0]
	}
	prompt, err := readPrompt(arg, os.Stdin, term.IsTerminal(int(os.Stdin.Fd())))
	if err != nil {
		console.Error(err.Error(), promptHint(err))
		return &exitError{code: 1}
	}

	cfg, err := config.Load()
	if err != nil {
		console.Error("configuration error", err.Error())
		return &exitError{code: 1}
	}

	client := gemini.NewClient(gemini.Config{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		Model:   firstNonEmpty(modelFlag, cfg.Model),
		Timeout: firstDuration(timeoutFlag, cfg.Timeout),
		Logger:  logger,
	})

	console.Status("Analyzing prompt...")
	result, err := analysis.Analyze(ctx, client, prompt)
	if err != nil {
		if ctx.Err() != nil || errors.Is(err, context.Canceled) {
			console.Interrupted()
			return &exitError{code: 0}
		}
		console.Error("error analyzing prompt", ui.Escape(err.Error()))
		return &exitError{code: 1}
	}

	if !result.CodingRelated {
		console.Error(
			"this prompt does not appear to be coding-related",
			"[bold yellow]Reason:[/bold yellow] "+ui.Escape(result.Reason),
		)
		return &exitError{code: 1}
	}

	console.RenderReport(result.Analysis, prompt)
	return nil
}

// readPrompt resolves the prompt text from the positional argument, falling
// back to stdin when piped. Empty or whitespace-only input is rejected
// before any network call happens.
func readPrompt(arg string, stdin io.Reader, stdinIsTTY bool) (string, error) {
	prompt := arg
	if prompt == "" {
		if stdinIsTTY {
			return "", errors.New("no prompt provided")
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read prompt from stdin: %w", err)
		}
		prompt = string(data)
	}

	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", errors.New("empty prompt provided")
	}
	return prompt, nil
}

func promptHint(err error) string {
	if err != nil && err.Error() == "no prompt provided" {
		return "provide as argument or via pipe [cyan]|[/cyan] or here string [cyan]<<<[/cyan]"
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstDuration(values ...time.Duration) time.Duration {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		// Flag-parsing and similar cobra-level errors.
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
