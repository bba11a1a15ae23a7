// Command recommend-cli runs the recommendation pipeline from the terminal
// against the built-in or a file-backed catalog.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"cogni-recommender/internal/catalog"
	apperrors "cogni-recommender/internal/common/errors"
	"cogni-recommender/internal/common/logger"
	"cogni-recommender/internal/recommendation"

	"github.com/urfave/cli/v2"
)

var version = "1.0.0"

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:    "recommend-cli",
		Usage:   "Recommend a Cogni subscription package from questionnaire answers",
		Version: version,
		Writer:  out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "catalog",
				Usage:   "Path to a JSON package catalog (empty uses the built-in catalog)",
				EnvVars: []string{"RECOMMENDATION_CATALOG_PATH"},
			},
			&cli.StringFlag{
				Name:    "base-url",
				Value:   recommendation.DefaultNextStepsBaseURL,
				Usage:   "Base URL for proposal links",
				EnvVars: []string{"RECOMMENDATION_NEXT_STEPS_BASE_URL"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
		},
		Commands: []*cli.Command{
			recommendCommand(),
			packagesCommand(),
			proposalURLCommand(),
		},
	}
}

func recommendCommand() *cli.Command {
	return &cli.Command{
		Name:  "recommend",
		Usage: "Recommend a package and print the result as JSON",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "org-type", Aliases: []string{"o"}, Usage: "Organization type", Required: true},
			&cli.StringFlag{Name: "team-size", Aliases: []string{"t"}, Usage: "Team size bracket", Required: true},
			&cli.StringFlag{Name: "client-volume", Aliases: []string{"c"}, Usage: "Monthly client volume bracket"},
			&cli.StringFlag{Name: "service-model", Usage: "Service delivery model"},
			&cli.StringFlag{Name: "specialization", Usage: "Clinical specialization"},
		},
		Action: func(c *cli.Context) error {
			engine, err := newEngine(c)
			if err != nil {
				return err
			}

			rec, err := engine.Recommend(c.Context, recommendation.Answers{
				OrgType:        c.String("org-type"),
				TeamSize:       c.String("team-size"),
				ClientVolume:   c.String("client-volume"),
				ServiceModel:   c.String("service-model"),
				Specialization: c.String("specialization"),
			})
			if err != nil {
				return describe(err)
			}

			enc := json.NewEncoder(c.App.Writer)
			enc.SetIndent("", "  ")
			enc.SetEscapeHTML(false)
			return enc.Encode(rec)
		},
	}
}

func packagesCommand() *cli.Command {
	return &cli.Command{
		Name:  "packages",
		Usage: "List the packages in the catalog",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "table", Usage: "Output format (table, json)"},
		},
		Action: func(c *cli.Context) error {
			cat, err := catalog.LoadFile(c.String("catalog"))
			if err != nil {
				return describe(err)
			}

			switch c.String("format") {
			case "json":
				enc := json.NewEncoder(c.App.Writer)
				enc.SetIndent("", "  ")
				enc.SetEscapeHTML(false)
				for def := range cat.All() {
					if err := enc.Encode(def); err != nil {
						return err
					}
				}
				return nil
			case "table":
				w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "PACKAGE\tSEATS\tPRICING")
				for def := range cat.All() {
					fmt.Fprintf(w, "%s\t%s\t%s\n", def.Name, def.SeatRange, def.PricingFormula)
				}
				return w.Flush()
			default:
				return fmt.Errorf("unknown format %q", c.String("format"))
			}
		},
	}
}

func proposalURLCommand() *cli.Command {
	return &cli.Command{
		Name:  "proposal-url",
		Usage: "Print the proposal link for a package and seat count",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "tier", Usage: "Package name", Required: true},
			&cli.IntFlag{Name: "seats", Usage: "Seat count", Required: true},
		},
		Action: func(c *cli.Context) error {
			cat, err := catalog.LoadFile(c.String("catalog"))
			if err != nil {
				return describe(err)
			}

			tier := strings.TrimSpace(c.String("tier"))
			if !cat.Has(tier) {
				return describe(apperrors.NewResourceNotFoundError("catalog", tier))
			}
			if c.Int("seats") < 1 {
				return fmt.Errorf("seats must be a positive integer")
			}

			fmt.Fprintln(c.App.Writer, recommendation.ProposalURL(c.String("base-url"), tier, c.Int("seats")))
			return nil
		},
	}
}

func newEngine(c *cli.Context) (*recommendation.Engine, error) {
	cat, err := catalog.LoadFile(c.String("catalog"))
	if err != nil {
		return nil, describe(err)
	}

	return recommendation.NewEngine(recommendation.Options{
		Catalog:          cat,
		NextStepsBaseURL: c.String("base-url"),
		Logger:           logger.NewStructured(c.String("log-level"), "console"),
	}), nil
}

// describe prefixes application errors with their code.
func describe(err error) error {
	if stdErr, ok := apperrors.As(err); ok {
		return fmt.Errorf("%s: %s", stdErr.Code, errorText(stdErr))
	}
	return err
}

func errorText(e *apperrors.StandardError) string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}
	return e.Message
}
