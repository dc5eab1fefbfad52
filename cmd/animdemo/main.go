// Command animdemo loads a storyboard and steps it frame by frame,
// printing the animated values. It stands in for the render pass that
// would normally drive the engine.
//
// Usage:
//
//	animdemo -storyboard demo.yaml [-step 16]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-render/rtanim/pkg/animator"
	"github.com/go-render/rtanim/pkg/render"
	"github.com/go-render/rtanim/pkg/storyboard"
	rttest "github.com/go-render/rtanim/pkg/testing"
)

func main() {
	path := flag.String("storyboard", "", "storyboard YAML file to play")
	step := flag.Int64("step", 16, "frame step in milliseconds")
	flag.Parse()

	if *path == "" {
		fmt.Fprintln(os.Stderr, "animdemo: -storyboard is required")
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*path, *step); err != nil {
		fmt.Fprintf(os.Stderr, "animdemo: %v\n", err)
		os.Exit(1)
	}
}

func run(path string, stepMs int64) error {
	sb, err := storyboard.Load(path)
	if err != nil {
		return err
	}
	built, err := sb.Build()
	if err != nil {
		return err
	}

	node := render.NewNode()
	manager := animator.NewManager(node)
	for _, a := range built.Animators {
		a.Start()
		manager.Attach(a)
	}
	clock := rttest.NewFrameClock(stepMs, stepMs)
	for frame := 0; ; frame++ {
		info := clock.NextFrame()
		// Staging pushes first: lazy start values must read the committed
		// snapshot before staged properties trample it.
		manager.PushStaging(info)
		if node.DirtyFields() != 0 {
			node.SyncProperties()
		}
		manager.Animate(info)
		printFrame(frame, info.FrameTimeMs, node, built)
		if !info.Out.HasAnimations {
			return nil
		}
	}
}

func printFrame(frame int, timeMs int64, node *render.Node, built *storyboard.Built) {
	p := node.Props()
	fmt.Printf("frame %3d t=%5dms tx=%7.2f ty=%7.2f sx=%5.2f sy=%5.2f rot=%7.2f alpha=%4.2f",
		frame, timeMs, p.TranslationX, p.TranslationY, p.ScaleX, p.ScaleY, p.Rotation, p.Alpha)
	if built.Paint != nil {
		fmt.Printf(" stroke=%5.2f paint_a=%3d", built.Paint.StrokeWidth, built.Paint.Color.Alpha8())
	}
	if built.Value != nil {
		fmt.Printf(" value=%7.2f", built.Value.Value)
	}
	fmt.Println()
}
