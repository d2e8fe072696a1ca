package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/lenslab"
	"github.com/gogpu/lenslab/fit"
	"github.com/gogpu/lenslab/scenefile"
)

var (
	errNoImages = errors.New("no images given")
	errBadKind  = errors.New("-kind must be auto, lens or mirror")
)

// fitResult is one line of the fit report.
type fitResult struct {
	File   string  `json:"file"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Scale  float64 `json:"scale"`
	Error  string  `json:"error,omitempty"`

	fit.Estimate
}

type fitConfig struct {
	kind  string
	opts  []fit.Option
	dispW float64
	dispH float64
}

func runFit(args []string, stdout, stderr io.Writer) error {
	fs, verbose := newFlagSet("fit", stderr)
	kind := fs.String("kind", "auto", "silhouette kind: auto, lens or mirror")
	stride := fs.Int("stride", 0, "pixel sampling stride; 0 samples lenses and contours at 1 and mirrors at 2")
	display := fs.String("display", "", "scale results into a WxH display")
	jobs := fs.Int("jobs", 4, "images fitted concurrently")
	sceneOut := fs.String("scene", "", "also write the fitted components and contours to this scene file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	defer setupLogging(*verbose, stderr)()

	switch *kind {
	case "auto", "lens", "mirror":
	default:
		return errBadKind
	}
	files := fs.Args()
	if len(files) == 0 {
		return errNoImages
	}
	cfg := fitConfig{kind: *kind}
	if *stride > 0 {
		cfg.opts = append(cfg.opts, fit.WithStride(*stride))
	}
	if *display != "" {
		var w, h int
		if _, err := fmt.Sscanf(*display, "%dx%d", &w, &h); err != nil || w <= 0 || h <= 0 {
			return fmt.Errorf("bad -display %q: want WxH", *display)
		}
		cfg.dispW, cfg.dispH = float64(w), float64(h)
	}

	results, err := fitAll(context.Background(), files, cfg, *jobs)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	if *sceneOut != "" {
		return writeFitScene(*sceneOut, results, cfg)
	}
	return nil
}

// writeFitScene saves every successful fit, with its decorations, as one
// scene. The viewport is the display when one is set, otherwise the
// largest image.
func writeFitScene(path string, results []fitResult, cfg fitConfig) error {
	w, h := cfg.dispW, cfg.dispH
	if w <= 0 {
		for _, r := range results {
			w = max(w, float64(r.Width))
			h = max(h, float64(r.Height))
		}
	}
	s := lenslab.NewScene(lenslab.R(0, 0, w, h))
	for _, r := range results {
		if r.Error != "" {
			continue
		}
		for _, c := range r.Components() {
			s.Add(c)
		}
	}
	if err := scenefile.Save(path, s); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}
	lenslab.Logger().Debug("wrote fitted scene", "path", path, "components", s.Len())
	return nil
}

// fitAll fits files concurrently, at most jobs at a time, and returns the
// results in input order. An unreadable image aborts the batch; an image
// without a usable silhouette gets an error entry.
func fitAll(ctx context.Context, files []string, cfg fitConfig, jobs int) ([]fitResult, error) {
	results := make([]fitResult, len(files))
	g, ctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := fitFile(file, cfg)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func fitFile(file string, cfg fitConfig) (fitResult, error) {
	img, err := decodeImage(file)
	if err != nil {
		return fitResult{}, err
	}
	pm := fit.FromImage(img)
	r := fitResult{File: file, Width: pm.Width(), Height: pm.Height(), Scale: 1}

	var ok bool
	switch cfg.kind {
	case "lens":
		var l fit.FitResult
		if l, ok = fit.EstimateLens(pm, cfg.opts...); ok {
			r.Lens = &l
		}
	case "mirror":
		var m fit.MirrorFitResult
		if m, ok = fit.EstimateMirror(pm, cfg.opts...); ok {
			r.Mirror = &m
		}
	default:
		r.Estimate, ok = fit.EstimateAny(pm, cfg.opts...)
	}
	if ok && cfg.kind != "auto" {
		r.Contour = fit.ExtractContour(pm, cfg.opts...)
	}
	if !ok {
		r.Error = "no silhouette found"
		lenslab.Logger().Warn("fit failed", "file", file, "kind", cfg.kind)
		return r, nil
	}

	if cfg.dispW > 0 {
		r.Scale = fit.ScaleFactor(float64(r.Width), float64(r.Height), cfg.dispW, cfg.dispH)
		r.Estimate = r.Estimate.Scaled(r.Scale)
	}
	lenslab.Logger().Debug("fitted", "file", file, "kind", cfg.kind)
	return r, nil
}

func decodeImage(file string) (image.Image, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", file, err)
	}
	return img, nil
}
