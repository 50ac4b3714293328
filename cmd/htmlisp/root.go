package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/KimNorgaard/htmlisp"
	"github.com/KimNorgaard/htmlisp/internal/compiler"
	"github.com/KimNorgaard/htmlisp/internal/console"
	"github.com/KimNorgaard/htmlisp/internal/watch"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const longHelp = `This program takes in a file of HTMLisp,
parses it and outputs normal HTML.

With -w/--watch it watches a directory for changes and re-compiles:
outputs to <working directory>/output/ (see --output-dir),
preserves the input directory structure,
and makes the -i/--input and -o/--output flags optional.

If the output file already exists, it will be overwritten
and if it does not exist, it will be created.

Every flag can also be set through an HTMLISP_* environment variable
(HTMLISP_PRETTIFY=true) or a .htmlisp.yaml file in the working directory.`

type config struct {
	Input     string
	Output    string
	Prettify  bool
	Watch     string
	OutputDir string
	Debounce  time.Duration
	MaxDepth  int
	Lenient   bool
	NoColor   bool
}

func (c config) validate() error {
	if c.Watch != "" {
		return nil
	}
	if c.Input == "" {
		return errors.New("input file not specified")
	}
	if c.Output == "" {
		return errors.New("output file not specified")
	}
	return nil
}

func (c config) compilerOptions() compiler.Options {
	return compiler.Options{Pretty: c.Prettify, ParseOptions: c.parseOptions()}
}

func (c config) parseOptions() []htmlisp.Option {
	opts := []htmlisp.Option{htmlisp.MaxDepth(c.MaxDepth)}
	if c.Lenient {
		opts = append(opts, htmlisp.LenientClose())
	}
	return opts
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:           "htmlisp -i <input file> -o <output file>",
		Short:         "Compile HTMLisp to HTML",
		Long:          longHelp,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			if err := cfg.validate(); err != nil {
				return err
			}
			con := console.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), colorMode(cfg))
			if cfg.Watch != "" {
				return runWatch(cmd, cfg, con)
			}
			return runCompile(cfg, con)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringP("input", "i", "", "HTMLisp file to compile")
	flags.StringP("output", "o", "", "HTML file to write")
	flags.BoolP("prettify", "p", false, "Output prettified HTML")
	flags.StringP("watch", "w", "", "Watch a directory for changes and re-compile")
	flags.String("output-dir", "output", "Output directory used in watch mode")
	flags.Duration("debounce", watch.DefaultDebounce, "Quiet period before a changed file is re-compiled")
	flags.Int("max-depth", htmlisp.DefaultMaxDepth, "Maximum tag nesting depth")
	flags.Bool("lenient", false, "Accept any character as a tag's closing delimiter")
	flags.Bool("no-color", false, "Disable colored output")

	_ = v.BindPFlag("input", flags.Lookup("input"))
	_ = v.BindPFlag("output", flags.Lookup("output"))
	_ = v.BindPFlag("prettify", flags.Lookup("prettify"))
	_ = v.BindPFlag("watch", flags.Lookup("watch"))
	_ = v.BindPFlag("output_dir", flags.Lookup("output-dir"))
	_ = v.BindPFlag("debounce", flags.Lookup("debounce"))
	_ = v.BindPFlag("max_depth", flags.Lookup("max-depth"))
	_ = v.BindPFlag("lenient", flags.Lookup("lenient"))
	_ = v.BindPFlag("no_color", flags.Lookup("no-color"))

	cmd.AddCommand(newASTCmd(v))
	return cmd
}

func initConfig(v *viper.Viper) error {
	v.SetEnvPrefix("HTMLISP")
	v.AutomaticEnv()

	v.SetConfigName(".htmlisp")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config file: %w", err)
		}
	}
	return nil
}

func loadConfig(v *viper.Viper) (config, error) {
	cfg := config{
		Input:     v.GetString("input"),
		Output:    v.GetString("output"),
		Prettify:  v.GetBool("prettify"),
		Watch:     v.GetString("watch"),
		OutputDir: v.GetString("output_dir"),
		Debounce:  v.GetDuration("debounce"),
		MaxDepth:  v.GetInt("max_depth"),
		Lenient:   v.GetBool("lenient"),
		NoColor:   v.GetBool("no_color"),
	}
	if cfg.MaxDepth <= 0 {
		return config{}, fmt.Errorf("max depth must be a positive integer, got %d", cfg.MaxDepth)
	}
	return cfg, nil
}

func colorMode(cfg config) console.Mode {
	if cfg.NoColor {
		return console.Never
	}
	return console.Auto
}

func runCompile(cfg config, con *console.Console) error {
	if err := compiler.CompileFile(cfg.Input, cfg.Output, cfg.compilerOptions()); err != nil {
		return err
	}
	con.Success("%s -> %s", cfg.Input, cfg.Output)
	return nil
}

func runWatch(cmd *cobra.Command, cfg config, con *console.Console) error {
	w, err := watch.New(cfg.Watch, compiler.SourceExt, cfg.Debounce)
	if err != nil {
		return err
	}
	con.Info("Watching for changes in %s...", cfg.Watch)

	opts := cfg.compilerOptions()
	return w.Run(cmd.Context(), func(path string) {
		out, rel, err := compiler.OutputPath(cfg.Watch, path, cfg.OutputDir)
		if err != nil {
			con.Error("%v", err)
			return
		}
		con.Info("Re-compiling due to changes...")
		if err := compiler.CompileFile(path, out, opts); err != nil {
			// Keep watching; the next save may fix it.
			con.Error("%v: %s", err, rel)
			return
		}
		con.Success("%s -> %s", rel, out)
	}, func(err error) {
		con.Error("%v", err)
	})
}
