// Command thompson tests inputs against a pattern.
//
// Usage:
//
//	thompson [-c all|head|tail] [-dot] [-no-prefilter] PATTERN [TEXT...]
//
// Each TEXT, or each line of standard input when none is given, is tested
// against PATTERN and printed if it matches. The exit status is 0 if any
// input matched, 1 if none did and 2 on a usage or compile error.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/coregx/thompson"
)

const (
	exitMatch   = 0
	exitNoMatch = 1
	exitError   = 2
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("thompson: ")
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

func run(args []string, stdin io.Reader, stdout io.Writer) int {
	fs := flag.NewFlagSet("thompson", flag.ContinueOnError)
	condName := fs.String("c", "all", "anchoring condition: all, head or tail")
	dot := fs.Bool("dot", false, "print the NFA in Graphviz DOT format and exit")
	noPrefilter := fs.Bool("no-prefilter", false, "always run the automaton")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: thompson [-c all|head|tail] [-dot] [-no-prefilter] PATTERN [TEXT...]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitError
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return exitError
	}

	cond, err := thompson.ParseCondition(*condName)
	if err != nil {
		log.Print(err)
		return exitError
	}

	config := thompson.DefaultConfig()
	config.Condition = cond
	config.EnablePrefilter = !*noPrefilter

	re, err := thompson.CompileWithConfig(fs.Arg(0), config)
	if err != nil {
		log.Print(err)
		return exitError
	}

	if *dot {
		if err := re.NFA().WriteDot(stdout); err != nil {
			log.Print(err)
			return exitError
		}
		return exitMatch
	}

	matched := false
	report := func(text string) {
		if re.MatchString(text) {
			matched = true
			fmt.Fprintln(stdout, text)
		}
	}

	if texts := fs.Args()[1:]; len(texts) > 0 {
		for _, text := range texts {
			report(text)
		}
	} else {
		scanner := bufio.NewScanner(stdin)
		for scanner.Scan() {
			report(scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			log.Print(err)
			return exitError
		}
	}

	if matched {
		return exitMatch
	}
	return exitNoMatch
}
