package main

import (
	"io"

	flag "github.com/spf13/pflag"

	"github.com/alnah/mdbook-presentation/internal/config"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// assetFlags holds decoration asset flags.
type assetFlags struct {
	assetPath    string
	style        string
	script       string
	noDecoration bool
}

// cliFlags holds every flag of the command line.
type cliFlags struct {
	common    commonFlags
	assets    assetFlags
	strict    bool
	highlight string

	fs *flag.FlagSet
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs")
}

// addAssetFlags adds decoration asset flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.assetPath, "asset-path", "", "directory with styles/ and scripts/ overrides")
	fs.StringVar(&f.style, "style", "", "stylesheet name (without .css)")
	fs.StringVar(&f.script, "script", "", "script name (without .js)")
	fs.BoolVar(&f.noDecoration, "no-decoration", false, "do not inject the stylesheet and script")
}

// parseFlags parses the command line and returns the positional args.
// Flags may appear before or after the command.
func parseFlags(args []string, stderr io.Writer) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("mdbook-presentation", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &cliFlags{fs: fs}

	addCommonFlags(fs, &f.common)
	addAssetFlags(fs, &f.assets)
	fs.BoolVar(&f.strict, "strict", false, "reject unbalanced or nested markers")
	fs.StringVar(&f.highlight, "highlight", "", "chroma style for fenced code in block regions")

	fs.Usage = func() { printUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// applyTo overlays explicitly set flags onto cfg. Flags win over book.toml
// and the config file.
func (f *cliFlags) applyTo(cfg *config.Config) {
	if f.fs.Changed("strict") {
		cfg.Strict = f.strict
	}
	if f.fs.Changed("highlight") {
		cfg.Render.Highlight = f.highlight
	}
	if f.fs.Changed("asset-path") {
		cfg.Assets.BasePath = f.assets.assetPath
	}
	if f.fs.Changed("style") {
		cfg.Assets.Style = f.assets.style
	}
	if f.fs.Changed("script") {
		cfg.Assets.Script = f.assets.script
	}
	if f.fs.Changed("no-decoration") {
		cfg.Assets.Disabled = f.assets.noDecoration
	}
}
