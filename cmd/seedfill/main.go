// Command seedfill runs one flood fill scenario and shows the grid before
// and after.
//
//	seedfill                                # built-in 10×10 reference picture
//	seedfill -scenario islands.yaml -v      # log every filled cell
//	seedfill -png-after out.png -cell 24    # also rasterize the result
//	seedfill -out result.yaml               # save the filled grid as a scenario
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/katalvlaran/seedfill/floodfill"
	"github.com/katalvlaran/seedfill/gridgraph"
	"github.com/katalvlaran/seedfill/render"
	"github.com/katalvlaran/seedfill/scenario"
)

type config struct {
	Scenario  string
	PNGBefore string
	PNGAfter  string
	Out       string
	Cell      int
	NoColor   bool
	Verbose   bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "seedfill:", err)
		}
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	cfg := new(config)
	fs := flag.NewFlagSet("seedfill", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Scenario, "scenario", "", "YAML scenario file (default: built-in reference)")
	fs.StringVar(&cfg.PNGBefore, "png-before", "", "write the grid before filling as PNG")
	fs.StringVar(&cfg.PNGAfter, "png-after", "", "write the grid after filling as PNG")
	fs.StringVar(&cfg.Out, "out", "", "write the filled scenario as YAML")
	fs.IntVar(&cfg.Cell, "cell", 16, "PNG pixels per grid cell")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "disable ANSI highlighting of changed cells")
	fs.BoolVar(&cfg.Verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	log := newLogger(stderr, cfg.Verbose)

	sc := scenario.Reference()
	if cfg.Scenario != "" {
		if sc, err = scenario.LoadFile(cfg.Scenario); err != nil {
			return err
		}
	}
	palette, err := render.PaletteFromNames(sc.Palette)
	if err != nil {
		return err
	}

	grid := sc.Cells()
	before := gridgraph.Clone(grid)
	start, repl := sc.StartCoord(), sc.ReplacementRune()
	log.Info("scenario loaded", "name", sc.Name, "start", start.String(),
		"replacement", string(repl), "conn", sc.Conn().String())

	regions, err := gridgraph.ConnectedComponents(grid, sc.Conn())
	if err != nil {
		return fmt.Errorf("%w: %w", floodfill.ErrInvalidGrid, err)
	}

	fmt.Fprintln(stdout, "before:")
	if err = render.Text(stdout, grid); err != nil {
		return err
	}
	if err = writePNG(cfg.PNGBefore, grid, palette, cfg.Cell); err != nil {
		return err
	}

	res, err := floodfill.Fill(grid, start, repl,
		floodfill.WithConnectivity(sc.Conn()),
		floodfill.WithOnFill(func(c gridgraph.Coord, depth int) {
			log.Debug("filled", "cell", c.String(), "depth", depth)
		}),
	)
	if err != nil {
		return err
	}
	if res.Skipped {
		log.Warn("replacement equals start color, grid unchanged", "color", string(res.Target))
	}

	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "after:")
	opts := render.DiffOptions{NoColor: cfg.NoColor || color.NoColor}
	if err = render.Diff(stdout, before, grid, opts); err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	p.Fprintf(stdout, "\nreplaced %q with %q in %d of %d cells (%d regions before fill)\n",
		res.Target, repl, res.Filled, len(grid)*len(grid[0]), len(regions))

	if err = writePNG(cfg.PNGAfter, grid, palette, cfg.Cell); err != nil {
		return err
	}
	if cfg.Out != "" {
		if err = writeScenario(cfg.Out, sc.WithCells(grid)); err != nil {
			return err
		}
		log.Info("scenario written", "path", cfg.Out)
	}
	return nil
}

// writePNG is a no-op for an empty path.
func writePNG(path string, grid [][]rune, p render.Palette, cell int) error {
	if path == "" {
		return nil
	}
	img, err := render.Image(grid, p, cell)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeScenario(path string, sc *scenario.Scenario) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = sc.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
