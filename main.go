package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"dotdocs/internal/aliases"
	"dotdocs/internal/docs"
	"dotdocs/internal/model"
	"dotdocs/internal/pager"
	"dotdocs/internal/render"
	"dotdocs/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"
)

var errorStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("196")) // Red

func fatalf(format string, args ...interface{}) {
	fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf(format, args...)))
	os.Exit(1)
}

func checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      "dotdocs-dev",
		Repository: "dotdocs",
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		return // Silently fail
	}

	if res.Outdated {
		fmt.Printf("\n✨ A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Println("👉 Download it from https://github.com/dotdocs-dev/dotdocs/releases")
	} else {
		fmt.Printf("✅ You are using the latest version: %s\n", currentVer)
	}
}

// options carries the parsed flag values into run.
type options struct {
	file    string
	format  string
	dir     string
	aliases bool
	noPager bool
	tui     bool
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: dotdocs [options]\n\n")
		fmt.Fprintf(os.Stderr, "dotdocs locates and displays documentation files from your dotfiles\n")
		fmt.Fprintf(os.Stderr, "directory (README, INSTALL, CONFIG, ...), with terminal colors, HTML\n")
		fmt.Fprintf(os.Stderr, "output, or plain text. It can also list your shell aliases.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  dotdocs                    # Page all docs from your dotfiles dir\n")
		fmt.Fprintf(os.Stderr, "  dotdocs -f README.md       # Show a single file\n")
		fmt.Fprintf(os.Stderr, "  dotdocs --format html > docs.html\n")
		fmt.Fprintf(os.Stderr, "  dotdocs -a                 # List shell aliases\n")
		fmt.Fprintf(os.Stderr, "  dotdocs -t                 # Interactive browser\n")
	}

	var opts options
	pflag.StringVarP(&opts.file, "file", "f", "", "Display exactly one named file")
	pflag.BoolVarP(&opts.aliases, "aliases", "a", false, "List aliases from .bash_aliases instead of docs")
	pflag.StringVar(&opts.format, "format", "terminal", "Output format: terminal, html or text")
	pflag.StringVar(&opts.dir, "dir", "", "Documentation directory (overrides resolution)")
	pflag.BoolVar(&opts.noPager, "no-pager", false, "Write to stdout instead of the pager")
	pflag.BoolVarP(&opts.tui, "tui", "t", false, "Browse docs in an interactive TUI")
	verboseFlag := pflag.BoolP("verbose", "v", false, "Enable debug logging")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.BoolP("update", "u", false, "Check for the latest version")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("dotdocs version %s\n", model.Version)
		return
	}

	if *updateFlag {
		checkUpdate(model.Version)
		return
	}

	if *verboseFlag {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	if err := run(opts, os.Stdout); err != nil {
		fatalf("%v", err)
	}
}

// run executes one invocation. Fatal user errors come back as errors for
// main to report at exit code 1; everything else degrades inline.
func run(opts options, stdout io.Writer) error {
	format := model.OutputFormat(opts.format)
	if !format.Valid() {
		return fmt.Errorf("Unknown format %q (want terminal, html or text)", opts.format)
	}

	dir := opts.dir
	if dir != "" {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			return fmt.Errorf("Directory not found: %s", dir)
		}
	} else {
		dir = docs.Resolve()
	}

	if opts.aliases {
		pager.Show(stdout, aliases.Report(dir), !opts.noPager)
		return nil
	}

	if opts.tui {
		return runTuiMode(dir)
	}

	var files []model.DocFile
	if opts.file != "" {
		path := opts.file
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("File not found: %s", path)
		}
		name := filepath.Base(path)
		files = []model.DocFile{{Path: path, Name: name, Rank: docs.Rank(name)}}
	} else {
		files = docs.Locate(dir)
		if len(files) == 0 {
			return fmt.Errorf("No documentation files found in %s", dir)
		}
	}

	blocks := make([]string, 0, len(files))
	for _, f := range files {
		content := docs.ReadContent(f.Path)
		blocks = append(blocks, render.File(format, content, f.Path))
	}
	out := render.Join(blocks)

	// Paging HTML is meaningless; it always goes straight to stdout for
	// the caller to redirect. Non-terminal formats skip the pager too.
	usePager := format == model.FormatTerminal && !opts.noPager
	pager.Show(stdout, out, usePager)
	return nil
}

func runTuiMode(dir string) error {
	files := docs.Locate(dir)
	if len(files) == 0 {
		return fmt.Errorf("No documentation files found in %s", dir)
	}
	m := tui.InitialModel(dir, files)
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("Alas, there's been an error: %v", err)
	}
	return nil
}
