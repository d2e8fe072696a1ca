package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/gogpu/lenslab"
	"github.com/gogpu/lenslab/scenefile"
)

var errNoScene = errors.New("missing -scene")

// traceFlags are shared by trace and render.
type traceFlags struct {
	scene      string
	maxBounces int
	events     bool
}

func (f *traceFlags) tracer() *lenslab.Tracer {
	opts := []lenslab.TraceOption{lenslab.WithMaxBounces(f.maxBounces)}
	if f.events {
		opts = append(opts, lenslab.WithObserver(lenslab.LogObserver(nil)))
	}
	return lenslab.NewTracer(opts...)
}

func (f *traceFlags) load() (*lenslab.Scene, error) {
	if f.scene == "" {
		return nil, errNoScene
	}
	return scenefile.Load(f.scene)
}

func runTrace(args []string, stdout, stderr io.Writer) error {
	fs, verbose := newFlagSet("trace", stderr)
	var tf traceFlags
	fs.StringVar(&tf.scene, "scene", "", "scene description (.yaml, .yml or .json)")
	fs.IntVar(&tf.maxBounces, "max-bounces", lenslab.DefaultMaxBounces, "interactions per ray")
	fs.BoolVar(&tf.events, "events", false, "log every trace step (needs -v)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	defer setupLogging(*verbose, stderr)()

	s, err := tf.load()
	if err != nil {
		return err
	}
	paths := tf.tracer().TraceScene(s)

	out := make([][]scenefile.Point, len(paths))
	for i, p := range paths {
		pts := make([]scenefile.Point, len(p))
		for j, v := range p {
			pts[j] = scenefile.Point{X: v.X, Y: v.Y}
		}
		out[i] = pts
	}
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("write paths: %w", err)
	}
	return nil
}
