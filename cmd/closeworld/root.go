package main

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/closeworld/axiom"
	"github.com/katalvlaran/closeworld/internal/config"
)

// closeFlags are the per-run overrides shared by close and watch.
type closeFlags struct {
	axiomType   string
	format      string
	output      string
	prefix      string
	ontologyIRI string
	treeAxioms  bool
	declare     bool
}

func (f *closeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.axiomType, "type", "t", "", fmt.Sprintf("Closure axiom type %v", axiom.Types()))
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "Output format (functional, text, json)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().StringVar(&f.prefix, "prefix", "", "IRI bound to ':' in functional output")
	cmd.Flags().StringVar(&f.ontologyIRI, "iri", "", "IRI of the generated ontology")
	cmd.Flags().BoolVar(&f.treeAxioms, "tree-axioms", false, "Also emit SubClassOf axioms of the treeified taxonomy")
	cmd.Flags().BoolVar(&f.declare, "declare", false, "Emit class declarations in functional output")
}

// layer turns the flags into a config layer; unset flags stay zero.
func (f *closeFlags) layer() *config.Config {
	return &config.Config{
		Closure: config.ClosureConfig{
			AxiomType:   f.axiomType,
			OntologyIRI: f.ontologyIRI,
			TreeAxioms:  f.treeAxioms,
		},
		Output: config.OutputConfig{
			Format:  f.format,
			Path:    f.output,
			Prefix:  f.prefix,
			Declare: f.declare,
		},
	}
}

// rootCmd builds the command tree. Loader options let tests isolate the
// config search from the real home and work directories.
func rootCmd(loaderOpts ...config.LoaderOption) *cobra.Command {
	var (
		configPath string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Closed-world closure axioms for class taxonomies",
		Long: `closeworld reads a taxonomy (YAML, JSON or OWL/XML subclass statements),
rewrites it into an equivalent tree and emits, for every class with several
subclasses, an axiom making those subclasses pairwise disjoint.

Configuration is layered: defaults, ~/.config/closeworld/config.yaml,
closeworld.yaml in the working directory or a parent, --config, then flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	// setup loads the layered config, applies flags and builds the app.
	setup := func(c *cobra.Command, flags *closeFlags) (*App, error) {
		bootLogger := newLogger(c.ErrOrStderr(), logLevel)
		cfg, err := config.NewLoader(bootLogger, loaderOpts...).Load(configPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		layer := flags.layer()
		if logLevel != "" {
			layer.Log.Level = logLevel
		}
		cfg.Merge(layer)
		if err := cfg.Validate(); err != nil {
			return nil, err
		}

		return NewApp(cfg, newLogger(c.ErrOrStderr(), cfg.Log.Level)), nil
	}

	var closeOpts closeFlags
	closeCmd := &cobra.Command{
		Use:   "close [pattern...]",
		Short: "Generate closure axioms once",
		Long: `Generate closure axioms for the bundle selected by the glob patterns
("**" matches any depth). Without patterns, closure.sources is used.`,
		Example: `  closeworld close 'ontology/**/*.yaml' --type disjoint-union
  closeworld close vehicles.owl -f text`,
		RunE: func(c *cobra.Command, args []string) error {
			app, err := setup(c, &closeOpts)
			if err != nil {
				return err
			}
			rep, err := app.Generate(args)
			if err != nil {
				return err
			}
			return app.Emit(c.OutOrStdout(), rep)
		},
	}
	closeOpts.register(closeCmd)

	var watchOpts closeFlags
	var debounce time.Duration
	watchCmd := &cobra.Command{
		Use:   "watch [pattern...]",
		Short: "Regenerate closure axioms whenever the bundle changes",
		RunE: func(c *cobra.Command, args []string) error {
			app, err := setup(c, &watchOpts)
			if err != nil {
				return err
			}
			if c.Flags().Changed("debounce") {
				app.cfg.Watch.Debounce = debounce
			}
			ctx, stop := signal.NotifyContext(c.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return app.Watch(ctx, c.OutOrStdout(), args)
		},
	}
	watchOpts.register(watchCmd)
	watchCmd.Flags().DurationVar(&debounce, "debounce", 0, "Quiet period before regenerating (e.g. 500ms)")

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create the user config file with defaults",
		RunE: func(c *cobra.Command, _ []string) error {
			path, err := config.NewLoader(newLogger(c.ErrOrStderr(), logLevel), loaderOpts...).EnsureUserConfig()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.OutOrStdout(), path)
			return err
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(c *cobra.Command, _ []string) {
			fmt.Fprintf(c.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	}

	cmd.AddCommand(closeCmd, watchCmd, initCmd, versionCmd)

	return cmd
}
