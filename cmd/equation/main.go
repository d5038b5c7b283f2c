package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/zephyrtronium/equation"
	"github.com/zephyrtronium/equation/display"
)

func main() {
	log.SetFlags(0)
	var (
		inname, cfgname string
		prec            uint
		echo, raw, verb bool
	)
	flag.StringVar(&inname, "in", "", "input file, one equation per line (default stdin if no args given)")
	flag.StringVar(&cfgname, "config", "", "YAML configuration file")
	flag.UintVar(&prec, "p", 0, "precision of calculations in bits (0 for float64)")
	flag.BoolVar(&echo, "echo", false, "print parse trees")
	flag.BoolVar(&raw, "raw", false, "print results with %g instead of display formatting")
	flag.BoolVar(&verb, "v", false, "trace each evaluation stage on stderr")
	flag.Parse()

	cfg, err := loadConfig(cfgname)
	if err != nil {
		log.Fatal(err)
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "p" {
			cfg.Precision = prec
		}
	})

	c := calculator{
		prec:    cfg.Precision,
		display: cfg.Display,
		echo:    echo,
		raw:     raw,
		log:     newLogger(os.Stderr, verb),
	}
	for _, arg := range flag.Args() {
		c.run(os.Stdout, arg)
	}
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		err = c.lines(os.Stdout, f)
		f.Close()
		if err != nil {
			log.Fatal(err)
		}
	}
	if c.failed > 0 {
		os.Exit(1)
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		w = io.Discard
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// calculator evaluates equations and writes their results.
type calculator struct {
	prec    uint
	display display.Options
	echo    bool
	raw     bool
	log     *slog.Logger
	// failed counts equations that gave errors.
	failed  int
}

// run evaluates one equation and writes its result, or the error, as one
// line. The error is also returned.
func (c *calculator) run(w io.Writer, src string) error {
	r, tree, err := c.eval(src)
	if c.echo && tree != "" {
		fmt.Fprintf(w, "%s : ", tree)
	}
	if err != nil {
		c.log.Debug("evaluation failed", "equation", src, "err", err)
		c.failed++
		fmt.Fprintln(w, "Error:", err)
		return err
	}
	fmt.Fprintln(w, r)
	return nil
}

// eval runs each stage of evaluation and formats the result. tree is the
// parse tree, if parsing succeeded.
func (c *calculator) eval(src string) (r, tree string, err error) {
	s := equation.Normalize(src)
	c.log.Debug("normalized", "equation", src, "result", s)
	toks, err := equation.Tokenize(s)
	if err != nil {
		return "", "", err
	}
	c.log.Debug("tokenized", "tokens", len(toks))
	e, err := equation.Parse(toks)
	if err != nil {
		return "", "", err
	}
	tree = e.String()
	c.log.Debug("parsed", "tree", tree, "depth", e.Depth())
	if c.prec == 0 {
		x, err := e.Eval()
		if err != nil {
			return "", tree, err
		}
		c.log.Debug("evaluated", "result", x)
		if c.raw {
			return fmt.Sprintf("%g", x), tree, nil
		}
		return display.Format(x, c.display), tree, nil
	}
	x, err := e.EvalBig(c.prec)
	if err != nil {
		return "", tree, err
	}
	c.log.Debug("evaluated", "result", x, "prec", c.prec)
	if c.raw {
		return fmt.Sprintf("%g", x), tree, nil
	}
	return display.FormatBig(x, c.display), tree, nil
}

// lines runs each non-blank line of r.
func (c *calculator) lines(w io.Writer, r io.Reader) error {
	scan := bufio.NewScanner(r)
	for scan.Scan() {
		if strings.TrimSpace(scan.Text()) == "" {
			continue
		}
		c.run(w, scan.Text())
	}
	return scan.Err()
}

func infile(inname string, std bool) (io.ReadCloser, error) {
	switch {
	case inname != "" && inname != "-":
		return os.Open(inname)
	case inname == "-", std:
		return io.NopCloser(os.Stdin), nil
	}
	return nil, nil
}
