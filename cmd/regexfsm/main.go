// Command regexfsm compiles regular expressions into Thompson NFAs and
// their subset-construction DFAs, printing the AST/NFA/DFA structure
// and rendering Graphviz graphs for each input.
package main

import (
	"fmt"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"

	"github.com/ntabris/py-regex-parser/cmd/auxiliar"
	"github.com/ntabris/py-regex-parser/internal/ast"
	"github.com/ntabris/py-regex-parser/internal/nfa"
)

// options holds the parsed CLI flags.
type options struct {
	InputFile string
	Verbose   bool
	Silent    bool
}

func parseFlags() *options {
	opts := &options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Compiles regular expressions into NFAs and DFAs via Thompson's construction and subset construction.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.InputFile, "file", "f", "", "text file with one regular expression per line (batch mode); omit for interactive mode"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("no se pudieron leer las banderas: %s\n", err)
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}

	return opts
}

func main() {
	opts := parseFlags()

	if opts.InputFile == "" {
		auxiliar.InteractiveRegexSimulation()
		return
	}

	results, err := auxiliar.ProcessRegexFromFile(opts.InputFile)
	if err != nil {
		gologger.Fatal().Msgf("no se pudo procesar el archivo %s: %v", opts.InputFile, err)
	}

	erList := make([]string, len(results))
	astList := make([]*ast.Node, len(results))
	nfaList := make([]*nfa.NFA, len(results))
	for i, r := range results {
		erList[i] = r.OriginalRegex
		astList[i] = r.AST
		nfaList[i] = r.NFA
	}

	for i := range results {
		auxiliar.PrintAllResults(i, erList, astList, nfaList)
		fmt.Println("\nEl DFA resultante es:")
		auxiliar.PrintDFA(results[i].DFA)
	}

	gologger.Info().Msgf("se procesaron %d expresiones regulares desde %s", len(results), opts.InputFile)
}
