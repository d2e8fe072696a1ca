package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/gogpu/lenslab"
	"github.com/gogpu/lenslab/render"
)

var errNoOutput = errors.New("missing -out")

func runRender(args []string, _, stderr io.Writer) error {
	fs, verbose := newFlagSet("render", stderr)
	var tf traceFlags
	fs.StringVar(&tf.scene, "scene", "", "scene description (.yaml, .yml or .json)")
	fs.IntVar(&tf.maxBounces, "max-bounces", lenslab.DefaultMaxBounces, "interactions per ray")
	fs.BoolVar(&tf.events, "events", false, "log every trace step (needs -v)")
	out := fs.String("out", "", "output PNG file")
	helpers := fs.Bool("helpers", false, "draw normals, lens axes and focal points")
	if err := fs.Parse(args); err != nil {
		return err
	}
	defer setupLogging(*verbose, stderr)()

	if *out == "" {
		return errNoOutput
	}
	s, err := tf.load()
	if err != nil {
		return err
	}

	c := render.NewRenderer(render.WithHelpers(*helpers)).Render(s, tf.tracer().TraceScene(s))
	if err := c.SavePNG(*out); err != nil {
		return fmt.Errorf("save %s: %w", *out, err)
	}
	lenslab.Logger().Info("rendered", "out", *out, "width", c.Width(), "height", c.Height())
	return nil
}
