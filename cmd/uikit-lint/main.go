package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	uikit "github.com/goliatone/go-uikit"
	"github.com/goliatone/go-uikit/pkg/kit"
	"github.com/goliatone/go-uikit/pkg/view"
	"github.com/goliatone/go-uikit/pkg/widgets"
)

type violation struct {
	file     string
	location string
	message  string
}

func main() {
	flag.Usage = func() {
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [paths...]\n", filepath.Base(os.Args[0])); err != nil {
			panic(err)
		}
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "\nLint view documents against the component kit's props contracts.\n"); err != nil {
			panic(err)
		}
	}
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{
			"examples/views/dashboard.json",
			"examples/views/signup.json",
		}
	}

	ctx := context.Background()
	loader := uikit.NewSourceLoader()
	registry := kit.NewDefaultRegistry()
	resolver := widgets.NewRegistry()

	var violations []violation
	for _, path := range paths {
		linted, err := lintFile(ctx, loader, resolver, registry, path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "lint %s: %v\n", path, err)
			os.Exit(1)
		}
		violations = append(violations, linted...)
	}

	if len(violations) > 0 {
		sort.Slice(violations, func(i, j int) bool {
			if violations[i].file == violations[j].file {
				if violations[i].location == violations[j].location {
					return violations[i].message < violations[j].message
				}
				return violations[i].location < violations[j].location
			}
			return violations[i].file < violations[j].file
		})
		for _, v := range violations {
			fmt.Fprintf(os.Stderr, "%s: %s -> %s\n", v.file, v.location, v.message)
		}
		os.Exit(1)
	}
}

func lintFile(ctx context.Context, loader view.Loader, resolver *widgets.Registry, registry *kit.Registry, path string) ([]violation, error) {
	doc, err := loader.Load(ctx, view.SourceFromFile(path))
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}

	// Placeholders must resolve before validation: "field" is not a
	// registered component.
	if err := resolver.Apply(&doc); err != nil {
		return nil, fmt.Errorf("resolve widgets: %w", err)
	}

	result := view.Validate(doc, registry)
	if result.Valid {
		return nil, nil
	}

	out := make([]violation, 0, len(result.Issues))
	for _, issue := range result.Issues {
		location := issue.Path
		if issue.Field != "" {
			location += "." + issue.Field
		}
		out = append(out, violation{file: path, location: location, message: issue.Message})
	}
	return out, nil
}
