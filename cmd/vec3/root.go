package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zeusync/raytrace/internal/core/observability/log"
	"github.com/zeusync/raytrace/internal/injector"
)

const (
	keyLogLevel = "log-level"
	keyFormat   = "format"
)

var ErrUnknownFormat = errors.New("unknown output format")

var formats = []string{"text", "json", "yaml"}

// cli carries settings shared by all subcommands.
type cli struct {
	cfgFile string
	v       *viper.Viper
	out     io.Writer
	app     *injector.App
}

func newRootCmd(out io.Writer) *cobra.Command {
	c := &cli{v: viper.New(), out: out}

	rootCmd := &cobra.Command{
		Use:   "vec3",
		Short: "Evaluate and inspect 3D vectors",
		Long: `vec3 evaluates worksheets of vector operations (add, dot, cross, unit, ...)
and parses vectors written in the "(x,y,z)" text form.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.app != nil {
				_ = c.app.Logger.Sync()
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&c.cfgFile, "config", "", "config file (default is ./vec3.yaml if present)")
	flags.String(keyLogLevel, "warn", "log level: debug, info, warn, error, silent")
	flags.StringP(keyFormat, "o", "text", "output format: "+strings.Join(formats, ", "))
	_ = c.v.BindPFlag(keyLogLevel, flags.Lookup(keyLogLevel))
	_ = c.v.BindPFlag(keyFormat, flags.Lookup(keyFormat))

	rootCmd.AddCommand(
		c.evalCmd(),
		c.parseCmd(),
		c.opsCmd(),
	)

	return rootCmd
}

func (c *cli) init() error {
	c.v.SetEnvPrefix("VEC3")
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()

	if c.cfgFile != "" {
		c.v.SetConfigFile(c.cfgFile)
		if err := c.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
	} else {
		c.v.AddConfigPath(".")
		c.v.SetConfigName("vec3")
		c.v.SetConfigType("yaml")
		var notFound viper.ConfigFileNotFoundError
		if err := c.v.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	level, err := log.ParseLevel(c.v.GetString(keyLogLevel))
	if err != nil {
		return err
	}
	if _, err = c.format(); err != nil {
		return err
	}

	c.app = injector.InitializeApp(level)
	if used := c.v.ConfigFileUsed(); used != "" {
		c.app.Logger.Debug("using config file", log.String("path", used))
	}
	return nil
}

func (c *cli) format() (string, error) {
	f := strings.ToLower(c.v.GetString(keyFormat))
	for _, known := range formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}
