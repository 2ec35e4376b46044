package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/zeusync/raytrace/internal/core/observability/log"
	"github.com/zeusync/raytrace/internal/worksheet"
	"github.com/zeusync/raytrace/pkg/vec3"
)

func (c *cli) evalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <worksheet.yaml>...",
		Short: "Evaluate vector worksheets",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reports := make([]*worksheet.Report, 0, len(args))
			for _, path := range args {
				w, err := worksheet.LoadFile(path)
				if err != nil {
					return err
				}
				report, err := c.app.Evaluator.Evaluate(cmd.Context(), w)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				reports = append(reports, report)
			}

			return c.render(reports, func(out io.Writer) {
				for i, report := range reports {
					if i > 0 {
						fmt.Fprintln(out)
					}
					fmt.Fprintf(out, "# %s\n", report.Name)
					for _, res := range report.Results {
						fmt.Fprintln(out, res.String())
					}
				}
			})
		},
	}
}

type parsed struct {
	Input  string       `json:"input" yaml:"input"`
	Vector vec3.Vector3 `json:"vector" yaml:"vector"`
	Length vec3.Scalar  `json:"length" yaml:"length"`
	Unit   vec3.Vector3 `json:"unit" yaml:"unit"`
}

func (c *cli) parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <(x,y,z)>...",
		Short: "Parse vectors and show their length and direction",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]parsed, 0, len(args))
			for _, arg := range args {
				v, err := vec3.ParseVector3(arg)
				if err != nil {
					c.app.Logger.Error("parse failed", log.String("input", arg), log.Error(err))
					return err
				}
				results = append(results, parsed{Input: arg, Vector: v, Length: vec3.Scalar(v.Length()), Unit: v.Unit()})
			}

			return c.render(results, func(out io.Writer) {
				for _, p := range results {
					fmt.Fprintf(out, "%s length=%s unit=%s\n",
						p.Vector, worksheet.ScalarValue(float64(p.Length)), p.Unit)
				}
			})
		},
	}
}

type opInfo struct {
	Name   string `json:"name" yaml:"name"`
	Arity  int    `json:"arity" yaml:"arity"`
	Scalar bool   `json:"scalar" yaml:"scalar"`
}

func (c *cli) opsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List worksheet operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := c.app.Evaluator.Registry()
			var ops []opInfo
			for _, name := range registry.Names() {
				op, err := registry.Lookup(name)
				if err != nil {
					return err
				}
				ops = append(ops, opInfo{Name: op.Name, Arity: op.Arity, Scalar: op.NeedsScalar})
			}

			return c.render(ops, func(out io.Writer) {
				for _, op := range ops {
					suffix := ""
					if op.Scalar {
						suffix = " +scalar"
					}
					fmt.Fprintf(out, "%-16s %d%s\n", op.Name, op.Arity, suffix)
				}
			})
		},
	}
}

func (c *cli) render(v any, text func(io.Writer)) error {
	format, err := c.format()
	if err != nil {
		return err
	}
	switch format {
	case "json":
		enc := json.NewEncoder(c.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(c.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		text(c.out)
		return nil
	}
}
