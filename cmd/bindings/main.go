// Command bindings validates a binding catalog without touching any real
// target: every binding is applied to placeholder targets, and the resulting
// pair counts are printed per recognizer.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/suparena/gesturerecognizer"
	"github.com/suparena/gesturerecognizer/catalog"
	"github.com/suparena/gesturerecognizer/catalog/ddb"
	"github.com/suparena/gesturerecognizer/catalog/manifest"
	"github.com/suparena/gesturerecognizer/logging"
	"github.com/suparena/gesturerecognizer/registry"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// placeholder stands in for a real target and accepts every action name.
type placeholder struct {
	name string
}

func (*placeholder) Action(string) (registry.ActionFunc, bool) {
	return func(any) {}, true
}

// placeholders resolves each target name to one placeholder per name.
type placeholders map[string]*placeholder

func (p placeholders) ResolveTarget(name string) (registry.Target, bool) {
	t, ok := p[name]
	if !ok {
		t = &placeholder{name: name}
		p[name] = t
	}
	return t, true
}

// loaded serves bindings that were already read from the real source.
type loaded []catalog.Binding

func (l loaded) Bindings(_ context.Context, recognizer string) ([]catalog.Binding, error) {
	if recognizer == "" {
		return l, nil
	}
	var out []catalog.Binding
	for _, b := range l {
		if b.Recognizer == recognizer {
			out = append(out, b)
		}
	}
	return out, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("bindings", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		versionFlag = fs.Bool("version", false, "Show version information")
		vFlag       = fs.Bool("v", false, "Show version information (short)")
		file        = fs.String("f", "", "Path to a YAML binding manifest")
		useDDB      = fs.Bool("ddb", false, "Load bindings from DynamoDB (AWS_* environment)")
		envFile     = fs.String("env", ".env", "Env file read before the AWS_* variables")
		recognizer  = fs.String("recognizer", "", "Only check bindings of this recognizer")
		export      = fs.Bool("export", false, "Print the loaded bindings as a YAML manifest")
		verbose     = fs.Int("verbose", 0, "Log verbosity (0-3)")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *versionFlag || *vFlag {
		fmt.Fprintf(stdout, "gesturerecognizer bindings %s\n", gesturerecognizer.GetVersionInfo())
		return 0
	}

	logger := logging.New(stderr, *verbose)
	ctx = logger.WithContext(ctx)

	var src catalog.Source
	switch {
	case *useDDB:
		cfg, err := ddb.LoadConfig(*envFile)
		if err != nil {
			logger.Error().Err(err).Msg("Invalid DynamoDB configuration")
			return 1
		}
		client, err := ddb.NewClient(ctx, cfg)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to create DynamoDB client")
			return 1
		}
		src = ddb.New(client, cfg.Table)
	case *file != "":
		src = manifest.File(*file)
	default:
		fmt.Fprintln(stderr, "bindings: one of -f or -ddb is required")
		fs.Usage()
		return 2
	}

	bindings, err := src.Bindings(ctx, *recognizer)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load bindings")
		return 1
	}

	if *export {
		data, err := manifest.Marshal(bindings)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to encode bindings")
			return 1
		}
		_, _ = stdout.Write(data)
		return 0
	}

	set := gesturerecognizer.NewSet()
	for _, b := range bindings {
		if _, err := set.Get(b.Recognizer); err == nil || b.Recognizer == "" {
			continue
		}
		_ = set.Register(b.Recognizer, gesturerecognizer.New(gesturerecognizer.WithLogger(logger)))
	}

	n, err := catalog.Apply(ctx, loaded(bindings), placeholders{}, set)
	if err != nil {
		fmt.Fprintf(stderr, "invalid catalog: %v\n", err)
		return 1
	}

	pairs := 0
	for _, name := range set.Names() {
		r, _ := set.Get(name)
		count := len(r.Targets())
		pairs += count
		fmt.Fprintf(stdout, "%s: %d pairs\n", name, count)
	}
	fmt.Fprintf(stdout, "%d bindings, %d duplicates ignored\n", n, n-pairs)
	return 0
}
