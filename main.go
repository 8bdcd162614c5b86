package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"twig/css"
	"twig/dom"
	"twig/html"
	"twig/trace"
	u "twig/url"
)

var (
	trace_path string
	verbose    bool
)

func main() {
	root := &cobra.Command{
		Use:          "twig",
		Short:        "Parse restricted HTML and CSS into trees and rule lists",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				slog.SetLogLoggerLevel(slog.LevelDebug)
			}
		},
	}
	root.PersistentFlags().StringVar(&trace_path, "trace", "", "write a Chrome trace of the parse phases to this file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log fetch and parse progress")
	root.AddCommand(domCommand(), cssCommand())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func domCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dom <url|file>",
		Short: "Parse an HTML document and print its node tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			measure, err := startTrace()
			if err != nil {
				return err
			}
			document, err := load(args[0], measure)
			if err != nil {
				return err
			}
			if measure != nil {
				measure.Time("parse")
			}
			root, err := html.Parse(document)
			if measure != nil {
				measure.Stop("parse")
			}
			if err != nil {
				return err
			}
			slog.Debug("parsed document", "source", args[0], "bytes", len(document))
			fmt.Print(dom.Tree(root))
			return finishTrace(measure)
		},
	}
}

func cssCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "css <url|file>",
		Short: "Parse a style sheet and print its rules, selectors ranked by specificity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			measure, err := startTrace()
			if err != nil {
				return err
			}
			source, err := load(args[0], measure)
			if err != nil {
				return err
			}
			if measure != nil {
				measure.Time("parse")
			}
			sheet, err := css.ParseStylesheet(source)
			if measure != nil {
				measure.Stop("parse")
			}
			if err != nil {
				return err
			}
			slog.Debug("parsed style sheet", "source", args[0], "rules", len(sheet.Rules))
			printStylesheet(sheet)
			return finishTrace(measure)
		},
	}
}

// load fetches the source text. Anything without a scheme is treated as
// a local file path.
func load(source string, measure *trace.MeasureTime) (string, error) {
	if measure != nil {
		measure.Time("load")
		defer measure.Stop("load")
	}
	if !strings.Contains(source, "://") {
		content, err := os.ReadFile(source)
		if err != nil {
			return "", err
		}
		return string(content), nil
	}
	url, err := u.NewURL(source)
	if err != nil {
		return "", err
	}
	slog.Debug("fetching", "url", url.String())
	return url.Request()
}

func printStylesheet(sheet *css.Stylesheet) {
	for _, rule := range sheet.Rules {
		selectors := make([]string, len(rule.Selectors))
		for i, selector := range rule.Selectors {
			selectors[i] = selector.String()
		}
		fmt.Println(strings.Join(selectors, ", ") + " {")
		for _, declaration := range rule.Declarations {
			fmt.Println("  " + declaration.Name + ": " + declaration.Value.String() + ";")
		}
		fmt.Println("}")
	}
}

func startTrace() (*trace.MeasureTime, error) {
	if trace_path == "" {
		return nil, nil
	}
	return trace.NewMeasureTime(trace_path)
}

func finishTrace(measure *trace.MeasureTime) error {
	if measure == nil {
		return nil
	}
	return measure.Finish()
}
