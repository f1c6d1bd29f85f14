package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'langext.cli'
func tracer() tracing.Trace {
	return tracing.Select("langext.cli")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":   "go",
		"trace.langext.cli": "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	flag.Parse()
	pterm.Info.Println("Welcome to the option playground") // colored welcome message
	//
	// set up REPL
	repl, err := readline.New("opt > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D, help with 'help'")
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
		tracing.Select("langext.arith").SetTraceLevel(tracing.LevelDebug)
		tracing.Select("langext.option").SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl *readline.Instance
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if quit := intp.execute(line); quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// execute runs one REPL line: a command (quit, help, sort) or an option
// expression to evaluate.
func (intp *Intp) execute(line string) (quit bool) {
	fields := strings.Fields(line)
	cmd := strings.Split(fields[0], ":") // e.g. "help:expr" or "sort:da"
	switch strings.ToLower(cmd[0]) {
	case "quit":
		pterm.Println("Goodbye!")
		return true
	case "help":
		help(getOptArg(cmd, 1))
		return false
	case "sort":
		if err := sortValues(getOptArg(cmd, 1), fields[1:]); err != nil {
			pterm.Error.Println(err)
		}
		return false
	}
	tracer().Debugf("evaluating expression: %v", fields)
	result, err := eval(fields)
	if err != nil {
		pterm.Error.Println(err)
		return false
	}
	pterm.Println(result.String())
	return false
}

func getOptArg(s []string, inx int) string {
	if len(s) > inx {
		return s[inx]
	}
	return ""
}
