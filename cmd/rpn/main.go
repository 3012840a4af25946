package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/jcgregorio/logger"
	"github.com/jcgregorio/slog"
	"github.com/urfave/cli/v2"

	"github.com/zephyrtronium/rpn"
)

// calcFlags are the command-line flags of the calculator.
type calcFlags struct {
	In      string
	Format  string
	Lines   bool
	Echo    bool
	Prec    uint
	Jobs    int
	Verbose bool
}

func (flags *calcFlags) AsCliFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Destination: &flags.In,
			Name:        "in",
			Usage:       "Input file, or - for stdin. Stdin is read by default if no expressions are given as arguments.",
		},
		&cli.StringFlag{
			Destination: &flags.Format,
			Name:        "fmt",
			Value:       "%g",
			Usage:       "Result formatting string.",
		},
		&cli.BoolFlag{
			Destination: &flags.Lines,
			Name:        "lines",
			Aliases:     []string{"n"},
			Usage:       "Parse separate input lines as separate expressions.",
		},
		&cli.BoolFlag{
			Destination: &flags.Echo,
			Name:        "echo",
			Usage:       "Print the RPN form of each expression before its result.",
		},
		&cli.UintFlag{
			Destination: &flags.Prec,
			Name:        "prec",
			Aliases:     []string{"p"},
			Usage:       "Precision of calculations in bits. 0 calculates with float64.",
		},
		&cli.IntFlag{
			Destination: &flags.Jobs,
			Name:        "jobs",
			Aliases:     []string{"j"},
			Usage:       "Number of expressions to evaluate at once. 0 uses every CPU.",
		},
		&cli.BoolFlag{
			Destination: &flags.Verbose,
			Name:        "verbose",
			Usage:       "Log tokens and RPN of each expression.",
		},
	}
}

func main() {
	var flags calcFlags
	app := &cli.App{
		Name:      "rpn",
		Usage:     "Evaluate infix arithmetic expressions via Reverse Polish Notation.",
		ArgsUsage: "[expression ...]",
		Flags:     flags.AsCliFlags(),
		Action: func(c *cli.Context) error {
			log := newLogger(os.Stderr, flags.Verbose)
			return run(c.Context, &flags, c.Args().Slice(), os.Stdin, c.App.Writer, log)
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger creates the logger for the calculator. Debug lines are written
// only when verbose is set.
func newLogger(dst logger.SyncWriter, verbose bool) slog.Logger {
	return logger.NewFromOptions(&logger.Options{
		SyncWriter:   dst,
		IncludeDebug: verbose,
	})
}

// run evaluates the expressions named by the flags and arguments and writes
// their results to out. The returned error aggregates every failing
// expression.
func run(ctx context.Context, flags *calcFlags, args []string, stdin io.Reader, out io.Writer, log slog.Logger) error {
	srcs, err := sources(flags, args, stdin)
	if err != nil {
		return err
	}
	log.Debugf("evaluating %d expressions", len(srcs))
	res, err := rpn.EvalAll(ctx, srcs, rpn.Workers(flags.Jobs), rpn.Prec(flags.Prec))
	if err != nil {
		return err
	}

	verb := flags.Format + "\n"
	var errs *multierror.Error
	for _, r := range res {
		if r.Expr != nil {
			log.Debugf("%q -> %v %v", r.Src, r.Expr, r.Expr.RPN())
		}
		if r.Err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%q: %w", r.Src, r.Err))
			continue
		}
		if flags.Echo {
			fmt.Fprintf(out, "%v : ", r.Expr)
		}
		if r.Big != nil {
			fmt.Fprintf(out, verb, r.Big)
		} else {
			fmt.Fprintf(out, verb, r.Value)
		}
	}
	if err := errs.ErrorOrNil(); err != nil {
		return cli.Exit(err, 1)
	}
	return nil
}

// sources collects the expressions to evaluate from the arguments and input.
func sources(flags *calcFlags, args []string, stdin io.Reader) ([]string, error) {
	var srcs []string
	in, err := infile(flags.In, len(args) == 0, stdin)
	if err != nil {
		return nil, err
	}
	if in != nil {
		if c, ok := in.(io.Closer); ok {
			defer c.Close()
		}
		if flags.Lines {
			scan := bufio.NewScanner(in)
			for scan.Scan() {
				if line := strings.TrimSpace(scan.Text()); line != "" {
					srcs = append(srcs, line)
				}
			}
			if err := scan.Err(); err != nil {
				return nil, err
			}
		} else {
			b, err := io.ReadAll(in)
			if err != nil {
				return nil, err
			}
			srcs = append(srcs, string(b))
		}
	}
	return append(srcs, args...), nil
}

// infile opens the input named by inname. If inname is empty, the input is
// stdin when std is true and nothing otherwise.
func infile(inname string, std bool, stdin io.Reader) (io.Reader, error) {
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		return f, nil
	case inname == "-", std:
		return stdin, nil
	default:
		return nil, nil
	}
}
