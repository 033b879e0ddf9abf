// Command primmst reads a weighted edge list and prints the total weight of
// its minimum spanning tree, or "not connected".
//
// Input (file argument or stdin):
//
//	<vertex_count> <edge_count>
//	<from> <to> <weight>
//	...
//
// Settings come from defaults, primmst.yaml, PRIMMST_* environment variables
// and finally the flags below.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/katalvlaran/primweight/config"
	"github.com/katalvlaran/primweight/converters"
	"github.com/katalvlaran/primweight/logger"
	"github.com/katalvlaran/primweight/metrics"
	"github.com/katalvlaran/primweight/prim_kruskal"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

type cli struct {
	Input     string `arg:"" optional:"" default:"-" help:"Edge list file; '-' reads stdin"`
	Config    string `help:"YAML config file" type:"path"`
	Method    string `help:"MST method (prim, kruskal)"`
	Start     int    `help:"Start vertex; negative keeps the configured value" default:"-1"`
	Symmetric bool   `help:"Store every input edge in both directions"`
	LogLevel  string `help:"Log level (debug, info, warn, error)" name:"log-level"`
	LogFormat string `help:"Log format (json, text)" name:"log-format"`
	Metrics   string `help:"Write Prometheus metrics to this textfile" type:"path"`
}

// overrides turns explicitly set flags into dotted config keys.
func (c *cli) overrides() map[string]any {
	o := make(map[string]any)
	if c.Method != "" {
		o["mst.method"] = c.Method
	}
	if c.Start >= 0 {
		o["mst.start_vertex"] = c.Start
	}
	if c.Symmetric {
		o["mst.symmetric"] = true
	}
	if c.LogLevel != "" {
		o["log.level"] = c.LogLevel
	}
	if c.LogFormat != "" {
		o["log.format"] = c.LogFormat
	}
	if c.Metrics != "" {
		o["metrics.enabled"] = true
		o["metrics.textfile"] = c.Metrics
	}

	return o
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is main without the process globals; it returns the exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var params cli
	exited := false
	parser, err := kong.New(&params,
		kong.Name("primmst"),
		kong.Description("Print the total weight of a minimum spanning tree."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) { exited = true }),
	)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}
	if _, err = parser.Parse(args); err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	if exited {
		return exitOK
	}

	loaderOpts := []config.LoaderOption{config.WithOverrides(params.overrides())}
	if params.Config != "" {
		loaderOpts = append(loaderOpts, config.WithConfigFile(params.Config))
	}
	cfg, err := config.Load(loaderOpts...)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	log := newLogger(cfg.Log, stderr)
	if err = solve(cfg, params.Input, stdin, stdout, log); err != nil {
		log.Error("primmst failed", slog.Any("error", err))
		return exitError
	}

	return exitOK
}

// newLogger installs the process logger and returns it tagged for this command.
// "stderr" output goes to the given writer so tests can capture it.
func newLogger(c config.LogConfig, stderr io.Writer) *slog.Logger {
	lc := logger.Config{
		Level:      c.Level,
		Format:     c.Format,
		Output:     c.Output,
		FilePath:   c.FilePath,
		MaxSize:    c.MaxSize,
		MaxBackups: c.MaxBackups,
		MaxAge:     c.MaxAge,
		Compress:   c.Compress,
	}
	if c.Output == "stderr" {
		logger.Set(logger.NewWithWriter(lc, stderr))
	} else {
		logger.Init(lc)
	}

	return logger.WithComponent("primmst")
}

func solve(cfg *config.Config, input string, stdin io.Reader, stdout io.Writer, log *slog.Logger) error {
	var r io.Reader = stdin
	if input != "-" {
		f, err := os.Open(input)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	readOpts := []converters.Option{converters.WithLogger(log)}
	if cfg.MST.Symmetric {
		readOpts = append(readOpts, converters.WithSymmetric())
	}
	g, st, err := converters.ReadEdgeListStats(r, readOpts...)
	if err != nil {
		return err
	}
	log.Info("input read",
		slog.String("input", input),
		slog.Int("vertices", g.VertexCount()),
		slog.Int("edges", st.Edges),
		slog.Int("skipped", st.Skipped),
	)

	mstOpts := []prim_kruskal.Option{
		prim_kruskal.WithStart(cfg.MST.StartVertex),
		prim_kruskal.WithLogger(log),
	}

	var res prim_kruskal.Result
	start := time.Now()
	if cfg.Metrics.Enabled {
		m := metrics.New(cfg.Metrics.Namespace)
		res, err = m.Compute(g, cfg.MST.Method, mstOpts...)
		if werr := m.WriteTextfile(cfg.Metrics.Textfile); werr != nil {
			err = errors.Join(err, werr)
		}
	} else {
		res, err = prim_kruskal.Compute(g, append(mstOpts, prim_kruskal.WithMethod(cfg.MST.Method))...)
	}
	if err != nil {
		return err
	}
	log.Info("mst computed",
		slog.String("method", res.Method),
		slog.Bool("connected", res.Connected),
		slog.Int("reached", res.Reached),
		slog.Duration("elapsed", time.Since(start)),
	)

	return converters.FormatResult(stdout, res)
}
