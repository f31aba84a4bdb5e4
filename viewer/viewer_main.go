package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mayo3d/mayo"
	"github.com/mayo3d/mayo/document"
	"github.com/mayo3d/mayo/gfx"
	"github.com/mayo3d/mayo/view"
)

type config struct {
	assembly    string
	options     string
	hide        string
	explode     float64
	orientation string
	displayMode string
	debug       bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.assembly, "assembly", "", "Assembly definition (YAML)")
	flag.StringVar(&cfg.options, "options", "", "Display options (YAML)")
	flag.StringVar(&cfg.hide, "hide", "", "Comma separated node names to hide")
	flag.Float64Var(&cfg.explode, "explode", 0, "Exploding factor in [0,1]")
	flag.StringVar(&cfg.orientation, "orientation", "", "Camera orientation (iso, front, top, ...)")
	flag.StringVar(&cfg.displayMode, "display-mode", "", "Display mode of the shape driver")
	flag.BoolVar(&cfg.debug, "debug", false, "Enable debug logging")
	flag.Parse()

	if cfg.assembly == "" {
		flag.Usage()
		os.Exit(2)
	}
	if err := run(cfg, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg config, out io.Writer) error {
	opts := mayo.DefaultOptions()
	if cfg.options != "" {
		var err error
		if opts, err = mayo.LoadOptions(cfg.options); err != nil {
			return err
		}
	}
	logger := mayo.NewDefaultLogger(opts.LogPrefix, opts.Debug || cfg.debug)

	def, err := document.LoadAssemblyDef(cfg.assembly)
	if err != nil {
		return err
	}
	root, err := def.Build()
	if err != nil {
		return err
	}

	app := mayo.NewGuiApplication(opts, logger)
	doc := document.NewDocument(root.Name)
	g := app.AddDocument(doc)
	entity, err := doc.AddEntity(root)
	if err != nil {
		return err
	}

	if cfg.displayMode != "" {
		mode, ok := gfx.ParseDisplayMode(cfg.displayMode)
		if !ok {
			return fmt.Errorf("unknown display mode %q", cfg.displayMode)
		}
		if err := g.SetActiveDisplayMode(gfx.DriverShape, mode); err != nil {
			return err
		}
	}

	hidden := make(map[string]bool)
	for _, name := range strings.Split(cfg.hide, ",") {
		if name = strings.TrimSpace(name); name != "" {
			hidden[name] = true
		}
	}
	tree := doc.ModelTree()
	var toHide []document.TreeNodeId
	tree.DeepForeach(entity, func(id document.TreeNodeId) {
		if hidden[tree.Data(id).Name] {
			toHide = append(toHide, id)
		}
	})
	for _, id := range toHide {
		g.SetNodeVisible(id, false)
	}

	g.SetExplodingFactor(float32(cfg.explode))
	if cfg.orientation != "" {
		o, ok := view.ParseOrientation(cfg.orientation)
		if !ok {
			return fmt.Errorf("unknown orientation %q", cfg.orientation)
		}
		g.SetViewCameraOrientation(o)
		for !g.StepViewAnimation(16 * time.Millisecond) {
		}
	}

	printState(out, g, entity)
	return nil
}

func printState(out io.Writer, g *mayo.GuiDocument, entity document.TreeNodeId) {
	tree := g.Document().ModelTree()
	ent := g.GraphicsEntity(entity)
	scene := g.GraphicsScene()

	tree.DeepForeachWithDepth(entity, func(id document.TreeNodeId, depth int) {
		label := tree.Data(id)
		line := fmt.Sprintf("%s%s [%s] %s", strings.Repeat("  ", depth), label.Name, label.Kind, g.NodeVisibleState(id))
		if obj := ent.ObjectOf(id); obj != nil {
			b := obj.LocalBoundingBox().Transformed(scene.ObjectTransformation(obj))
			line += fmt.Sprintf(" %s %v..%v", obj.Attributes.DisplayMode, b.Min, b.Max)
		}
		fmt.Fprintln(out, line)
	})

	box := g.GraphicsBoundingBox()
	cam := g.Camera()
	fmt.Fprintf(out, "bounding box: %v..%v\n", box.Min, box.Max)
	fmt.Fprintf(out, "exploding factor: %.2f\n", g.ExplodingFactor())
	fmt.Fprintf(out, "camera: eye %v center %v\n", cam.Eye, cam.Center)
}
