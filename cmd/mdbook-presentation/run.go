package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	flag "github.com/spf13/pflag"

	presentation "github.com/alnah/mdbook-presentation"
	"github.com/alnah/mdbook-presentation/internal/config"
	"github.com/alnah/mdbook-presentation/internal/hints"
	"github.com/alnah/mdbook-presentation/internal/mdbook"
)

// runMain dispatches the command line and returns the process exit code.
// args excludes the program name.
func runMain(args []string, env *Environment) int {
	f, positional, err := parseFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	if len(positional) == 0 {
		return report(env, runPreprocess(f, env))
	}

	switch cmd, rest := positional[0], positional[1:]; cmd {
	case "supports":
		code, err := runSupports(rest)
		if err != nil {
			return report(env, err)
		}
		return code
	case "config":
		return report(env, runConfig(f, env))
	case "version":
		fmt.Fprintf(env.Stdout, "mdbook-presentation %s (mdbook %s)\n", Version, mdbook.BuiltForVersion)
		return ExitSuccess
	case "help":
		printUsage(env.Stdout)
		return ExitSuccess
	default:
		return report(env, fmt.Errorf("%w: %q", ErrUnknownCommand, cmd))
	}
}

// report prints err, if any, and maps it to an exit code.
func report(env *Environment, err error) int {
	if err != nil {
		fmt.Fprintln(env.Stderr, "mdbook-presentation: "+err.Error())
	}
	return exitCodeFor(err)
}

// runSupports answers mdBook's renderer probe.
func runSupports(args []string) (int, error) {
	if len(args) != 1 {
		return ExitUsage, fmt.Errorf("%w: supports <renderer>", ErrMissingArgument)
	}
	p, err := presentation.New(presentation.WithoutDecoration())
	if err != nil {
		return ExitGeneral, err
	}
	if p.SupportsRenderer(args[0]) {
		return ExitSuccess, nil
	}
	return ExitGeneral, nil
}

// runConfig prints the configuration resulting from the config file and flags.
func runConfig(f *cliFlags, env *Environment) error {
	cfg, err := loadConfig(f.common.config)
	if err != nil {
		return err
	}
	f.applyTo(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = env.Stdout.Write(data)
	return err
}

// runPreprocess reads the book from stdin, rewrites it and writes it to stdout.
// Configuration layers, later wins: defaults, config file, book.toml, flags.
func runPreprocess(f *cliFlags, env *Environment) error {
	logger := newLogger(env.Stderr, resolveLogLevel(f.common, env.Getenv(logEnvVar)))

	cfg, err := loadConfig(f.common.config)
	if err != nil {
		return err
	}

	in, err := mdbook.ReadInput(env.Stdin)
	if err != nil {
		return fmt.Errorf("%w%s", err, hints.ForMalformedInput())
	}

	if err := in.Context.ApplyOptions(cfg, presentation.Name); err != nil {
		return fmt.Errorf("book.toml: %w", err)
	}
	f.applyTo(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	if v := in.Context.Version(); mdbook.VersionMismatch(v) {
		logger.Warn("mdbook version mismatch"+hints.ForVersionMismatch(v, mdbook.BuiltForVersion),
			"running", v, "built_for", mdbook.BuiltForVersion)
	}

	p, err := presentation.New(preprocessorOptions(cfg, logger)...)
	if err != nil {
		return err
	}

	if r := in.Context.Renderer(); r != "" && !p.SupportsRenderer(r) {
		logger.Warn("renderer not supported, book left unchanged"+hints.ForUnsupportedRenderer(r), "renderer", r)
		return in.WriteBook(env.Stdout)
	}

	if err := p.Run(in.Book); err != nil {
		if errors.Is(err, presentation.ErrUnbalancedMarkers) || errors.Is(err, presentation.ErrNestedMarkers) {
			return fmt.Errorf("%w%s", err, hints.ForUnbalancedMarkers())
		}
		return err
	}

	logger.Info("book processed",
		"chapters", presentation.CountChapters(in.Book.Items),
		"rules", len(p.Rules()),
		"strict", cfg.Strict)

	return in.WriteBook(env.Stdout)
}

// loadConfig returns the defaults, or the named config file when set.
func loadConfig(nameOrPath string) (*config.Config, error) {
	if nameOrPath == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(nameOrPath)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) && !strings.ContainsAny(nameOrPath, `/\`) {
			return nil, fmt.Errorf("%w%s", err, hints.ForConfigNotFound(config.SearchPaths(nameOrPath)))
		}
		return nil, err
	}
	return cfg, nil
}

// preprocessorOptions converts the effective configuration to library options.
func preprocessorOptions(cfg *config.Config, logger *slog.Logger) []presentation.Option {
	opts := []presentation.Option{
		presentation.WithLogger(logger),
		presentation.WithStrict(cfg.Strict),
		presentation.WithHighlighting(cfg.Render.Highlight),
	}

	if cfg.Rules != nil {
		opts = append(opts, presentation.WithRules(rulesFromConfig(cfg.Rules)...))
	}

	if cfg.Assets.Disabled {
		opts = append(opts, presentation.WithoutDecoration())
	} else {
		opts = append(opts,
			presentation.WithAssetPath(cfg.Assets.BasePath),
			presentation.WithStyle(cfg.Assets.Style),
			presentation.WithScript(cfg.Assets.Script),
		)
	}

	return opts
}

// rulesFromConfig maps configured rules to library rules. An empty policy
// means block.
func rulesFromConfig(rules []config.RuleConfig) []presentation.Rule {
	out := make([]presentation.Rule, 0, len(rules))
	for _, r := range rules {
		rule := presentation.Rule{
			Name:   r.Name,
			Start:  r.Start,
			End:    r.End,
			Policy: presentation.PolicyBlock,
			Class:  r.Class,
			Open:   r.Open,
			Close:  r.Close,
		}
		if strings.EqualFold(r.Policy, config.PolicyComment) {
			rule.Policy = presentation.PolicyComment
		}
		out = append(out, rule)
	}
	return out
}
