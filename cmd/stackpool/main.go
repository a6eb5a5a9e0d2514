package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/pavanmanishd/stackpool"
	"github.com/pavanmanishd/stackpool/session"
)

func main() {
	fset := flag.NewFlagSet("stackpool", flag.ExitOnError)
	capacity := fset.Int("capacity", 0, "initial pool capacity in nodes")
	maxNodes := fset.Int64("max-nodes", 0, "maximum number of nodes, 0 for no limit")
	level := fset.String("log-level", "warn", "log level: debug, info, warn or error")
	format := fset.String("log-format", "text", "log format: text or json")
	_ = fset.Parse(os.Args[1:])

	logger, err := newLogger(*level, *format)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	s := session.New(
		session.WithLogger(logger),
		session.WithPoolOptions(stackpool.WithMaxNodes(*maxNodes)),
	)
	s.Init(*capacity)

	r := newRepl(s, os.Stdin, os.Stdout)
	r.prompt = true
	err = r.run()
	s.Delete()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(level, format string) (*session.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	switch format {
	case "text":
		return session.NewTextLogger(lvl), nil
	case "json":
		return session.NewJSONLogger(lvl), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
}
