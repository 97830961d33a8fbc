package main

import (
	"flag"
	"fmt"
)

func runInfo(args []string) error {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("missing font path")
	}

	reg, id, err := loadSingleFace(fs.Arg(0))
	if err != nil {
		return err
	}

	f := reg.Get(id)
	m := f.Face().Metrics()

	fmt.Printf("family:        %s\n", f.Info.Family)
	fmt.Printf("full name:     %s\n", f.Info.FullName)
	fmt.Printf("postscript:    %s\n", f.Info.PostScriptName)
	fmt.Printf("style:         %s\n", f.Info.Style)
	fmt.Printf("weight:        %d (%s)\n", f.Info.Weight, f.Info.Weight)
	fmt.Printf("stretch:       %v (%s)\n", f.Info.Stretch, f.Info.Stretch)
	fmt.Printf("units per em:  %d\n", m.UnitsPerEm)
	fmt.Printf("ascent/descent (font units): %.1f / %.1f\n", m.Ascent, m.Descent)
	fmt.Printf("line gap (font units):       %.1f\n", m.LineGap)
	return nil
}
