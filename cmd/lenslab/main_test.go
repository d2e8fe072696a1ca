package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/gogpu/lenslab"
	"github.com/gogpu/lenslab/fit"
	"github.com/gogpu/lenslab/render"
	"github.com/gogpu/lenslab/scenefile"
)

var marker = color.NRGBA{R: 30, G: 90, B: 230, A: 255}

const sceneYAML = `
viewport: {width: 800, height: 600}
emitters:
  - position: {x: 100, y: 300}
    angleRad: 0
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

// silhouette draws a marker-colored polyline on a white 400×400 canvas.
func silhouette(pts []lenslab.Vec2, closed bool, width float64) image.Image {
	c := render.NewCanvas(400, 400)
	c.Clear(color.White)
	c.Polyline(pts, closed, lenslab.Style{Color: marker, Width: width})
	return c.Image()
}

func savePNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func saveBMP(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := bmp.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun_Usage(t *testing.T) {
	var out, errOut bytes.Buffer
	if err := run(nil, &out, &errOut); !errors.Is(err, errUsage) {
		t.Errorf("no args: err = %v", err)
	}
	if err := run([]string{"paint"}, &out, &errOut); !errors.Is(err, errUsage) {
		t.Errorf("unknown command: err = %v", err)
	}
	if err := run([]string{"trace"}, &out, &errOut); !errors.Is(err, errNoScene) {
		t.Errorf("trace without scene: err = %v", err)
	}
	if err := run([]string{"fit"}, &out, &errOut); !errors.Is(err, errNoImages) {
		t.Errorf("fit without images: err = %v", err)
	}
	if err := run([]string{"fit", "-kind", "prism", "a.png"}, &out, &errOut); !errors.Is(err, errBadKind) {
		t.Errorf("bad kind: err = %v", err)
	}
}

func TestRun_Trace(t *testing.T) {
	path := writeFile(t, "scene.yaml", sceneYAML)

	var out, errOut bytes.Buffer
	if err := run([]string{"trace", "-scene", path}, &out, &errOut); err != nil {
		t.Fatalf("trace: %v", err)
	}
	var paths [][]scenefile.Point
	if err := json.Unmarshal(out.Bytes(), &paths); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out.String())
	}
	want := [][]scenefile.Point{{{X: 100, Y: 300}, {X: 800, Y: 300}}}
	if len(paths) != 1 || len(paths[0]) != 2 || paths[0][0] != want[0][0] || paths[0][1] != want[0][1] {
		t.Errorf("paths = %v, want %v", paths, want)
	}
}

func TestRun_TraceEvents(t *testing.T) {
	path := writeFile(t, "scene.json",
		`{"viewport":{"width":800,"height":600},"emitters":[{"position":{"x":100,"y":300},"angleRad":0}]}`)

	var out, errOut bytes.Buffer
	if err := run([]string{"trace", "-v", "-events", "-scene", path}, &out, &errOut); err != nil {
		t.Fatalf("trace: %v", err)
	}
	if !strings.Contains(errOut.String(), "trace step") || !strings.Contains(errOut.String(), "kind=boundary") {
		t.Errorf("stderr = %q, want trace step events", errOut.String())
	}
}

func TestRun_Render(t *testing.T) {
	scene := writeFile(t, "scene.yaml", sceneYAML)
	outPath := filepath.Join(t.TempDir(), "out.png")

	var out, errOut bytes.Buffer
	if err := run([]string{"render", "-scene", scene, "-out", outPath, "-helpers"}, &out, &errOut); err != nil {
		t.Fatalf("render: %v", err)
	}
	f, err := os.Open(outPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 800 || b.Dy() != 600 {
		t.Errorf("bounds = %v", b)
	}

	if err := run([]string{"render", "-scene", scene}, &out, &errOut); !errors.Is(err, errNoOutput) {
		t.Errorf("render without -out: err = %v", err)
	}
}

type report struct {
	File   string               `json:"file"`
	Scale  float64              `json:"scale"`
	Error  string               `json:"error"`
	Lens    *fit.FitResult       `json:"lens"`
	Mirror  *fit.MirrorFitResult `json:"mirror"`
	Contour []lenslab.Vec2       `json:"contour"`
}

func TestRun_Fit(t *testing.T) {
	dir := t.TempDir()
	lens := savePNG(t, dir, "lens.png",
		silhouette(lenslab.NewConvexLens(lenslab.V2(200, 200)).Outline(), true, 2))
	mirror := saveBMP(t, dir, "mirror.bmp",
		silhouette([]lenslab.Vec2{lenslab.V2(100, 150), lenslab.V2(300, 250)}, false, 4))
	empty := savePNG(t, dir, "empty.png", silhouette(nil, false, 1))

	var out, errOut bytes.Buffer
	args := []string{"fit", "-stride", "1", "-jobs", "2", lens, mirror, empty}
	if err := run(args, &out, &errOut); err != nil {
		t.Fatalf("fit: %v", err)
	}
	var got []report
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out.String())
	}
	if len(got) != 3 {
		t.Fatalf("got %d results, want 3", len(got))
	}

	if got[0].File != lens || got[0].Lens == nil || got[0].Lens.Type != fit.TypeConvex {
		t.Errorf("lens result = %+v", got[0])
	}
	if got[1].File != mirror || got[1].Mirror == nil || got[1].Lens != nil {
		t.Errorf("mirror result = %+v", got[1])
	}
	if got[2].Error == "" || got[2].Lens != nil || got[2].Mirror != nil {
		t.Errorf("empty result = %+v", got[2])
	}
}

func TestRun_FitDisplay(t *testing.T) {
	dir := t.TempDir()
	lens := savePNG(t, dir, "lens.png",
		silhouette(lenslab.NewConvexLens(lenslab.V2(200, 200)).Outline(), true, 2))

	var out, errOut bytes.Buffer
	if err := run([]string{"fit", "-kind", "lens", "-display", "200x300", lens}, &out, &errOut); err != nil {
		t.Fatalf("fit: %v", err)
	}
	var got []report
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if len(got) != 1 || got[0].Scale != 0.5 || got[0].Lens == nil {
		t.Fatalf("result = %+v", got)
	}
	if c := got[0].Lens.Center; !c.Approx(lenslab.V2(100, 100), 1) {
		t.Errorf("scaled center = %v, want (100, 100)", c)
	}
	want := lenslab.NewConvexLens(lenslab.V2(100, 100))
	want.Aperture, want.Thickness, want.CurvatureRadius = want.Aperture/2, want.Thickness/2, want.CurvatureRadius/2
	if b := lenslab.BoundsOf(got[0].Contour); !b.Min.Approx(want.Bounds().Min, 2) || !b.Max.Approx(want.Bounds().Max, 2) {
		t.Errorf("scaled contour bounds = %v, want %v", b, want.Bounds())
	}

	if err := run([]string{"fit", "-display", "wide", lens}, &out, &errOut); err == nil {
		t.Error("bad -display accepted")
	}
	if err := run([]string{"fit", filepath.Join(dir, "missing.png")}, &out, &errOut); err == nil {
		t.Error("missing image accepted")
	}
}

func TestRun_FitScene(t *testing.T) {
	dir := t.TempDir()
	lens := savePNG(t, dir, "lens.png",
		silhouette(lenslab.NewConvexLens(lenslab.V2(200, 200)).Outline(), true, 2))
	mirror := saveBMP(t, dir, "mirror.bmp",
		silhouette([]lenslab.Vec2{lenslab.V2(100, 150), lenslab.V2(300, 250)}, false, 4))
	empty := savePNG(t, dir, "empty.png", silhouette(nil, false, 1))
	out := filepath.Join(dir, "fitted.yaml")

	var stdout, stderr bytes.Buffer
	args := []string{"fit", "-display", "200x200", "-scene", out, lens, mirror, empty}
	if err := run(args, &stdout, &stderr); err != nil {
		t.Fatalf("fit: %v", err)
	}
	s, err := scenefile.Load(out)
	if err != nil {
		t.Fatalf("load fitted scene: %v", err)
	}
	if s.Viewport != lenslab.R(0, 0, 200, 200) {
		t.Errorf("viewport = %v", s.Viewport)
	}

	var kinds []lenslab.Kind
	var outlines []lenslab.Outline
	for _, c := range s.Components() {
		kinds = append(kinds, c.Kind())
		if o, ok := c.(lenslab.Outline); ok {
			outlines = append(outlines, o)
		}
	}
	wantKinds := []lenslab.Kind{lenslab.KindMirror, lenslab.KindConvexLens,
		lenslab.KindOutline, lenslab.KindOutline, lenslab.KindOutline}
	if len(kinds) != len(wantKinds) {
		t.Fatalf("kinds = %v, want %v", kinds, wantKinds)
	}
	for i := range kinds {
		if kinds[i] != wantKinds[i] {
			t.Fatalf("kinds = %v, want %v", kinds, wantKinds)
		}
	}

	// Lens contour, mirror contour, then the mirror's fitted segment.
	if !outlines[0].Closed || !outlines[1].Closed || outlines[2].Closed {
		t.Errorf("closed flags = %v %v %v", outlines[0].Closed, outlines[1].Closed, outlines[2].Closed)
	}
	if b := outlines[1].Bounds(); !b.Min.Approx(lenslab.V2(50, 75), 2) || !b.Max.Approx(lenslab.V2(150, 125), 2) {
		t.Errorf("mirror contour bounds = %v, want (50,75)-(150,125)", b)
	}
	if len(outlines[2].Points) != 2 {
		t.Errorf("mirror segment = %v", outlines[2].Points)
	}

	if err := run([]string{"fit", "-scene", filepath.Join(dir, "fitted.txt"), lens}, &stdout, &stderr); !errors.Is(err, scenefile.ErrUnknownFormat) {
		t.Errorf("bad scene extension: err = %v", err)
	}
}
