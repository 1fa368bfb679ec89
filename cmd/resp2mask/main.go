// Command resp2mask converts AFC available spectrum inquiry responses
// into the response-mask files the test harness judges future
// responses against.
//
// Each SRC argument is either a single response file or a directory
// (a response set); every SRC produces one mask file in the output
// directory. Margins, limits, and leniency flags come from a TOML (or
// YAML) policy file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"resp2mask/internal/config"
	"resp2mask/internal/convert"
	"resp2mask/internal/logging"
	"resp2mask/internal/mask"
	"resp2mask/internal/sdi"
	"resp2mask/internal/source"
)

const defaultConfigPath = "cfg/resp2mask.toml"

type options struct {
	cfgPath   string
	outputDir string
	assumeYes bool
	quiet     bool
	sources   []string
}

func parseArgs(args []string, errOut io.Writer) (*options, error) {
	fs := flag.NewFlagSet("resp2mask", flag.ContinueOnError)
	fs.SetOutput(errOut)
	opts := &options{}
	fs.StringVar(&opts.cfgPath, "cfg", defaultConfigPath,
		"path to the conversion policy file (TOML or YAML)")
	fs.StringVar(&opts.outputDir, "output-dir", "./masks",
		"directory for generated mask files")
	fs.BoolVar(&opts.assumeYes, "y", false,
		"answer yes to all prompts (overwrite files, create directories)")
	fs.BoolVar(&opts.assumeYes, "yes", false, "alias for -y")
	fs.BoolVar(&opts.quiet, "q", false,
		"suppress informational messages (implies -y; skips are still reported)")
	fs.BoolVar(&opts.quiet, "quiet", false, "alias for -q")
	fs.Usage = func() {
		fmt.Fprintf(errOut, "Usage: resp2mask [flags] SRC...\n\n")
		fmt.Fprintf(errOut, "Each SRC is a response file, or a directory whose files are merged\n")
		fmt.Fprintf(errOut, "into a single mask.\n\nFlags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return nil, fmt.Errorf("no source responses given")
	}
	opts.sources = fs.Args()
	if opts.quiet {
		opts.assumeYes = true
	}
	return opts, nil
}

func run(opts *options, log logging.Logger) error {
	pol, err := config.Load(opts.cfgPath)
	if err != nil {
		return err
	}

	var failed bool
	for _, src := range opts.sources {
		if err := convertSource(src, opts, pol, log); err != nil {
			log.Error("conversion failed", logging.String("source", src), logging.Err(err))
			failed = true
		}
	}
	if failed {
		return fmt.Errorf("one or more sources failed to convert")
	}
	return nil
}

// convertSource converts one SRC argument (file or directory) into a
// mask file. Unreadable or unconvertible member files are reported and
// skipped; only set-level failures return an error.
func convertSource(src string, opts *options, pol mask.Policy, log logging.Logger) error {
	set, err := source.Discover(src)
	if err != nil {
		return err
	}
	if set.Dir {
		log.Info("processing response set", logging.String("set", set.Path),
			logging.Int("files", len(set.Files)))
	}

	var inputs []convert.Input
	for _, file := range set.Files {
		data, err := os.ReadFile(file)
		if err != nil {
			log.Warn("skipping unreadable file", logging.String("source", file), logging.Err(err))
			continue
		}
		msg, err := sdi.DecodeResponseMessage(data)
		if err != nil {
			log.Warn("skipping file", logging.String("source", file), logging.Err(err))
			continue
		}
		inputs = append(inputs, convert.Input{Source: file, Message: msg})
	}

	res, err := convert.Set(context.Background(), inputs, pol, log)
	if err != nil {
		return err
	}
	for _, skip := range res.Skipped {
		log.Warn("skipping response", logging.String("source", skip.Source), logging.Err(skip.Err))
	}
	for _, w := range res.Warnings {
		log.Warn(w)
	}
	if res.Document == nil {
		log.Warn("no valid responses found", logging.String("source", src))
		return nil
	}

	outPath := filepath.Join(opts.outputDir, set.MaskFileName(res.Document))
	if !opts.assumeYes {
		err := confirmWritable(outPath, opts.outputDir)
		if err == errSkipped {
			log.Warn("skipping output", logging.String("source", src), logging.String("output", outPath))
			return nil
		}
		if err != nil {
			return err
		}
	}
	if err := os.MkdirAll(opts.outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	out, err := res.Document.MarshalIndent()
	if err != nil {
		return err
	}
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return fmt.Errorf("write mask: %w", err)
	}
	log.Info("mask written", logging.String("source", src), logging.String("output", outPath))
	return nil
}

// errSkipped marks a set the user declined to overwrite.
var errSkipped = fmt.Errorf("output exists and overwrite declined")

// confirmWritable prompts before overwriting an existing mask file or
// creating a missing output directory.
func confirmWritable(outPath, outputDir string) error {
	if _, err := os.Stat(outPath); err == nil {
		ok, err := askYesNo(fmt.Sprintf("Output file %q already exists. Overwrite it?", outPath))
		if err != nil {
			return err
		}
		if !ok {
			return errSkipped
		}
	}
	if _, err := os.Stat(outputDir); os.IsNotExist(err) {
		ok, err := askYesNo(fmt.Sprintf("Output directory %q does not exist. Create it?", outputDir))
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("permission to create output directory %q not granted", outputDir)
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// TUI prompt helpers
// ---------------------------------------------------------------------------

// confirmModel is a bubbletea model that asks one y/n question,
// re-asking until the answer is recognized.
type confirmModel struct {
	question string
	input    textinput.Model
	invalid  bool
	answer   bool
	done     bool
}

func newConfirmModel(question string) confirmModel {
	ti := textinput.New()
	ti.Placeholder = "y/n"
	ti.CharLimit = 3
	ti.Focus()
	return confirmModel{question: question, input: ti}
}

func (m confirmModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			switch m.input.Value() {
			case "y", "n":
				m.answer = m.input.Value() == "y"
				m.done = true
				return m, tea.Quit
			default:
				m.invalid = true
				m.input.SetValue("")
				return m, nil
			}
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	view := fmt.Sprintf("%s [y/n] %s\n", m.question, m.input.View())
	if m.invalid {
		view += "Unrecognized response. Please enter \"y\" or \"n\".\n"
	}
	return view
}

// askYesNo runs the confirm prompt and returns the user's answer.
func askYesNo(question string) (bool, error) {
	p := tea.NewProgram(newConfirmModel(question))
	result, err := p.Run()
	if err != nil {
		return false, err
	}
	final, ok := result.(confirmModel)
	if !ok || !final.done {
		return false, fmt.Errorf("prompt cancelled")
	}
	return final.answer, nil
}

func main() {
	opts, err := parseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		os.Exit(2)
	}
	log := logging.NewStderr(opts.quiet)
	if err := run(opts, log); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}
