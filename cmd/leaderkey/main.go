// Package main is the entry point for the leaderkey tool.
//
// Subcommands:
//
//	check    validate a keymap document
//	show     print the resolved keymap tree
//	exec     resolve a key sequence and run the bound command
//	capture  print canonical key codes for pressed keys
//	watch    reload a keymap document as it changes
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/leaderkey/internal/capture"
	"github.com/dshills/leaderkey/internal/command"
	"github.com/dshills/leaderkey/internal/config"
	"github.com/dshills/leaderkey/internal/config/watcher"
	"github.com/dshills/leaderkey/internal/input/key"
	"github.com/dshills/leaderkey/internal/keymap"
	"github.com/dshills/leaderkey/internal/keymap/parser"
	"github.com/dshills/leaderkey/internal/session"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	if len(os.Args) < 2 {
		usage()
		return 2
	}

	switch os.Args[1] {
	case "check":
		return runCheck(os.Args[2:])
	case "show":
		return runShow(os.Args[2:])
	case "exec":
		return runExec(os.Args[2:])
	case "capture":
		return runCapture()
	case "watch":
		return runWatch(os.Args[2:])
	case "version", "-version", "--version":
		fmt.Printf("leaderkey %s (%s)\n", version, commit)
		return 0
	case "help", "-h", "-help", "--help":
		usage()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n", os.Args[1])
		usage()
		return 2
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: leaderkey <check|show|exec|capture|watch|version> [options]")
}

// loadKeymap parses a keymap document, choosing the Markdown or plain YAML
// parser by file extension.
func loadKeymap(path string, extendDefaults bool) (*keymap.Group, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading keymap file: %w", err)
	}

	var base *keymap.Group
	if extendDefaults {
		base = parser.Default()
	}

	if strings.EqualFold(filepath.Ext(path), ".md") {
		return parser.ParseMarkdown(string(data), base)
	}
	return parser.ParseYAML(string(data), base)
}

// reportError prints a parse failure with its document location when one
// is available.
func reportError(err error) {
	var perr *parser.ParseError
	if errors.As(err, &perr) {
		if len(perr.Path) > 0 {
			fmt.Fprintf(os.Stderr, "Error: %s (at %s)\n", perr.Message, perr.Path)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %s\n", perr.Error())
		}
		if perr.Value != nil {
			fmt.Fprintf(os.Stderr, "  offending value: %v\n", perr.Value)
		}
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}

func runCheck(args []string) int {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	extend := fs.Bool("extend-defaults", false, "Merge onto the builtin keymap")
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: leaderkey check [-extend-defaults] <file>")
		return 2
	}

	group, err := loadKeymap(fs.Arg(0), *extend)
	if err != nil {
		reportError(err)
		return 1
	}

	bindings := 0
	group.Walk(func(item keymap.Item, _ []key.KeyPress) {
		if _, ok := item.(*keymap.Group); !ok {
			bindings++
		}
	})
	fmt.Printf("OK: %d bindings\n", bindings)
	return 0
}

func runShow(args []string) int {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	extend := fs.Bool("extend-defaults", false, "Merge onto the builtin keymap")
	commands := fs.Bool("commands", false, "List bound command ids instead of the tree")
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: leaderkey show [-extend-defaults] [-commands] <file>")
		return 2
	}

	group, err := loadKeymap(fs.Arg(0), *extend)
	if err != nil {
		reportError(err)
		return 1
	}

	if *commands {
		printCommands(group)
		return 0
	}
	printTree(group, 0)
	return 0
}

func printTree(g *keymap.Group, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, c := range g.Suggestions() {
		switch it := c.Item.(type) {
		case *keymap.Group:
			fmt.Printf("%s%s  [%s]\n", indent, c.Key.Code(), describe(it, "group"))
			printTree(it, depth+1)
		case keymap.FileRef:
			fmt.Printf("%s%s  open %s\n", indent, c.Key.Code(), it.Path)
		case keymap.Command:
			fmt.Printf("%s%s  %s\n", indent, c.Key.Code(), describe(it, it.ID))
		}
	}
}

func describe(item keymap.Item, fallback string) string {
	if d := item.Describe(); d != "" {
		return d
	}
	return fallback
}

func printCommands(g *keymap.Group) {
	for id, paths := range g.AssignedCommands() {
		var seqs []string
		for _, path := range paths {
			codes := make([]string, len(path))
			for i, kp := range path {
				codes[i] = kp.Code()
			}
			seqs = append(seqs, strings.Join(codes, " "))
		}
		fmt.Printf("%s\t%s\n", id, strings.Join(seqs, ", "))
	}
}

func runExec(args []string) int {
	fs := flag.NewFlagSet("exec", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to settings file")
	_ = fs.Parse(args)
	if fs.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "Usage: leaderkey exec [-config file] <keymap-file> <key-code>...")
		return 2
	}

	settings, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	group, err := loadKeymap(fs.Arg(0), settings.ExtendDefaults)
	if err != nil {
		reportError(err)
		return 1
	}

	var seq []key.KeyPress
	for _, code := range fs.Args()[1:] {
		kp, err := key.ParseKeyCode(code)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		seq = append(seq, kp)
	}

	sess := session.New(group)
	sess.SetStrict(settings.Strict)

	switch it := sess.Resolve(seq).(type) {
	case keymap.Command:
		registry := demoRegistry(group)
		if err := registry.Execute(context.Background(), it.ID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	case keymap.FileRef:
		fmt.Printf("open file: %s\n", it.Path)
		return 0
	case *keymap.Group:
		fmt.Println("incomplete sequence; continuations:")
		for _, c := range it.Suggestions() {
			fmt.Printf("  %s\t%s\n", c.Key.Code(), describe(c.Item, ""))
		}
		return 0
	default:
		fmt.Fprintln(os.Stderr, "Error: unassigned key sequence")
		return 1
	}
}

// demoRegistry stands in for the host's command registry: every command id
// bound in the keymap is registered with a run function that announces
// itself.
func demoRegistry(g *keymap.Group) command.Registry {
	registry := command.NewMemoryRegistry()
	for id := range g.AssignedCommands() {
		_ = registry.Register(command.Command{
			ID:   id,
			Name: id,
			Run: func(context.Context) error {
				fmt.Printf("execute: %s\n", id)
				return nil
			},
		})
	}
	return registry
}

func runCapture() int {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init screen: %v\n", err)
		return 1
	}
	defer screen.Fini()

	if err := capture.Run(screen, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func runWatch(args []string) int {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to settings file")
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: leaderkey watch [-config file] <keymap-file>")
		return 2
	}

	settings, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	path := fs.Arg(0)
	group, err := loadKeymap(path, settings.ExtendDefaults)
	if err != nil {
		reportError(err)
		return 1
	}

	sess := session.New(group)
	sess.SetStrict(settings.Strict)
	fmt.Printf("watching %s (%d top-level bindings)\n", path, group.Len())

	w, err := watcher.New(path, settings.Debounce(), func() {
		reloaded, err := loadKeymap(path, settings.ExtendDefaults)
		if err != nil {
			reportError(err)
			return
		}
		sess.Swap(reloaded)
		fmt.Printf("reloaded %s (%d top-level bindings)\n", path, reloaded.Len())
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer w.Close()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	<-signals
	return 0
}
