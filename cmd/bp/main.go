/*
 * BP
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Command bp is the BP interpreter's command-line front-end (spec.md §6,
deliberately left as an "external collaborator" by the core spec). It
validates and reads a .bp source file, lexes and parses it line by
line, and drives the result through the program runner.
*/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"devt.de/krotik/common/fileutil"
	"devt.de/krotik/common/termutil"

	"devt.de/krotik/bp/ast"
	"devt.de/krotik/bp/bpconfig"
	"devt.de/krotik/bp/bplog"
	"devt.de/krotik/bp/lexer"
	"devt.de/krotik/bp/parsegraph"
	"devt.de/krotik/bp/runner"
)

var reBPFile = regexp.MustCompile(`^.+\.bp$`)

func main() {
	console := flag.Bool("console", false, "Start an interactive console instead of running a file")
	debug := flag.Bool("debug", false, "Trace every evaluated line's summary token before acting on it")
	auto := flag.Bool("auto", false, "Run the default program file without prompting (RUN_PROGRAM_WITHOUT_INPUT)")
	logfile := flag.String("logfile", "", "Write log output to a file instead of stdout")

	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, fmt.Sprintf("Usage of %s [options] [file.bp]", os.Args[0]))
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "Error: at most one file argument is allowed")
		flag.Usage()
		os.Exit(2)
	}

	if *auto {
		bpconfig.Config[bpconfig.RunWithoutInput] = true
	}

	log, err := buildLogger(*logfile, *debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	if *console {
		err = runConsole(log)
	} else {
		err = runFile(flag.Arg(0), log)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func buildLogger(logfile string, debug bool) (bplog.Logger, error) {
	var base bplog.Logger

	if logfile != "" {
		f, err := os.Create(logfile)
		if err != nil {
			return nil, err
		}
		base = bplog.NewBufferLogger(f)
	} else {
		base = bplog.NewStdOutLogger()
	}

	level := bpconfig.Str(bpconfig.LogLevel)
	if debug {
		level = "debug"
	}

	return bplog.NewLevelLogger(base, level)
}

/*
resolveFilename implements spec.md §6: a given filename is used as-is;
with no filename, RunWithoutInput selects DefaultFile, otherwise the
user is prompted on standard input.
*/
func resolveFilename(arg string) (string, error) {
	if arg != "" {
		return arg, nil
	}

	if bpconfig.Bool(bpconfig.RunWithoutInput) {
		return bpconfig.Str(bpconfig.DefaultFile), nil
	}

	term, err := termutil.NewConsoleLineTerminal(os.Stdout)
	if err != nil {
		return "", err
	}
	term.WriteString("BP program file: ")
	return term.NextLine()
}

func runFile(arg string, log bplog.Logger) error {
	name, err := resolveFilename(arg)
	if err != nil {
		return err
	}

	if !reBPFile.MatchString(name) {
		return fmt.Errorf("%q does not match the required .bp filename pattern", name)
	}

	if ok, _ := fileutil.PathExists(name); !ok {
		return fmt.Errorf("file %q does not exist", name)
	}

	f, err := os.Open(name)
	if err != nil {
		return err
	}

	lines, err := parseProgram(name, f)
	f.Close()
	if err != nil {
		return err
	}

	r := runner.New(lines, os.Stdout, log)
	return r.Run()
}

/*
parseProgram reads a source file into memory line by line and parses
each one independently, so the file is fully read and closed before
evaluation begins (spec.md §5).
*/
func parseProgram(source string, r io.Reader) ([]*ast.Node, error) {
	var lines []*ast.Node

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		n, err := parseLine(source, lineNo, scanner.Text())
		if err != nil {
			return nil, err
		}
		lines = append(lines, n)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

func parseLine(source string, lineNo int, text string) (*ast.Node, error) {
	toks, err := lexer.Lex(source, text)
	if err != nil {
		return nil, fmt.Errorf("%v (line %d)", err, lineNo)
	}

	n, err := parsegraph.Parse(toks)
	if err != nil {
		return nil, fmt.Errorf("%v (line %d)", err, lineNo)
	}

	return n, nil
}

/*
runConsole is the supplemented REPL front-end (SPEC_FULL.md §4): lines
are read one at a time and fed to the runner as they arrive, rather
than all at once from a file. An IF/WHILE/FOR whose body is skipped
before its closing keyword has been entered will surface as an error;
that is a known limitation of driving this line-cursor language
interactively one line at a time.
*/
func runConsole(log bplog.Logger) error {
	term, err := termutil.NewConsoleLineTerminal(os.Stdout)
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, "BP interactive console. Type 'quit' to exit.")

	r := runner.New(nil, os.Stdout, log)

	line, err := term.NextLinePrompt("bp> ", 0)
	for err == nil {
		trimmed := strings.TrimSpace(line)
		if trimmed == "quit" || trimmed == "exit" {
			return nil
		}

		n, perr := parseLine("console", 0, line)
		if perr != nil {
			fmt.Fprintln(os.Stdout, "Error:", perr)
		} else {
			r.AppendLine(n)
			for {
				needMore, rerr := r.Step()
				if rerr != nil {
					fmt.Fprintln(os.Stdout, "Error:", rerr)
					break
				}
				if needMore {
					break
				}
			}
		}

		line, err = term.NextLinePrompt("bp> ", 0)
	}

	if err == io.EOF {
		return nil
	}
	return err
}
