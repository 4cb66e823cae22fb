// Package main implements the murmur command-line interface.
//
// murmur parses and evaluates programs written in a small esoteric
// language whose surface syntax mixes punctuation-digit numbers,
// multi-word English phrases, and non-ASCII identifiers. The CLI supports
// three modes of operation:
//
//   - Interactive REPL mode (-i flag)
//   - Expression evaluation mode (-e flag)
//   - File evaluation mode (positional argument)
//
// Examples:
//
//	murmur -e '. = .'
//	murmur -i
//	murmur program.mur
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/conneroisu/murmur/pkg/eval"
	"github.com/conneroisu/murmur/pkg/parser"
)

func main() {
	var (
		interactive = flag.Bool("i", false, "Interactive REPL mode")
		expression  = flag.String("e", "", "Evaluate expression")
		seed        = flag.Uint64("seed", 0, "Seed the random source (0 = non-deterministic)")
		help        = flag.Bool("h", false, "Show help")
	)
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	opts := evaluatorOptions(*seed)

	switch {
	case *expression != "":
		evalSource(*expression, opts)
	case *interactive:
		startREPL(opts)
	case flag.NArg() > 0:
		evalFile(flag.Arg(0), opts)
	default:
		showHelp()
	}
}

func evaluatorOptions(seed uint64) []eval.Option {
	opts := []eval.Option{eval.WithWriter(os.Stdout), eval.WithReader(os.Stdin)}
	if seed != 0 {
		opts = append(opts, eval.WithSeed(seed))
	}
	return opts
}

func showHelp() {
	fmt.Println("murmur - a phrase-driven esoteric language interpreter")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  murmur [options] [file]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -i          Interactive REPL mode")
	fmt.Println("  -e EXPR     Evaluate expression")
	fmt.Println("  -seed N     Seed the random source (0 = non-deterministic)")
	fmt.Println("  -h          Show this help")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  murmur -e '. = .'")
	fmt.Println("  murmur -i")
	fmt.Println("  murmur program.mur")
}

// evalSource parses and evaluates one program, printing its result value.
// A parse or evaluation error is reported and the process exits non-zero.
func evalSource(source string, opts []eval.Option) {
	exprs, err := parser.New(source).Parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse error: %v\n", err)
		os.Exit(1)
	}

	result, err := eval.New(opts...).Eval(exprs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "evaluation error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(result.String())
}

// evalFile reads and evaluates a program file.
func evalFile(filename string, opts []eval.Option) {
	content, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading file: %v\n", err)
		os.Exit(1)
	}
	evalSource(string(content), opts)
}

// startREPL runs an interactive Read-Eval-Print Loop. Each line is parsed
// and evaluated under the same Evaluator, so function definitions from one
// line remain visible to later lines, matching Eval's persistent function
// environment across a forest of top-level expressions.
func startREPL(opts []eval.Option) {
	fmt.Println("murmur repl - Type :quit to exit")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	e := eval.New(opts...)

	for {
		fmt.Print("murmur> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == ":quit" || line == ":q" {
			break
		}
		if strings.HasPrefix(line, ":") {
			handleReplCommand(line)
			continue
		}

		exprs, err := parser.New(line).Parse()
		if err != nil {
			fmt.Printf("parse error: %v\n", err)
			continue
		}

		result, err := e.Eval(exprs)
		if err != nil {
			fmt.Printf("evaluation error: %v\n", err)
			continue
		}

		fmt.Println(result.String())
	}
}

func handleReplCommand(cmd string) {
	switch cmd {
	case ":help", ":h":
		fmt.Println("Available commands:")
		fmt.Println("  :help, :h    Show this help")
		fmt.Println("  :quit, :q    Exit the REPL")
	default:
		fmt.Printf("unknown command: %s\n", cmd)
		fmt.Println("Type :help for available commands")
	}
}
