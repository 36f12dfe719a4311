package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/trenchworks/lagoon-engine/internal/dig"
	"github.com/trenchworks/lagoon-engine/internal/geometry"
	"github.com/trenchworks/lagoon-engine/internal/render"
)

func main() {
	planPath := flag.String("input", "plan.txt", "path to the dig plan file")
	imagePath := flag.String("image", "", "optional path to write the classified grid as a PNG")
	scale := flag.Int("scale", 1, "upscale factor for the exported image")
	flag.Parse()

	plan, err := dig.LoadPlanFromFile(*planPath)
	if err != nil {
		log.Fatalf("failed to load plan: %v", err)
	}

	log.Printf("digging %d instructions...", len(plan))
	result, err := geometry.Survey(plan)
	if err != nil {
		log.Fatalf("survey failed: %v", err)
	}
	log.Printf("grid %dx%d: boundary=%d interior=%d",
		result.Lagoon.Width, result.Lagoon.Height, result.Boundary, result.Interior)

	if *imagePath != "" {
		log.Printf("writing image to %s...", *imagePath)
		img := render.Scale(render.Image(result.Grid, render.DefaultPalette), *scale)
		if err := render.SavePNG(*imagePath, img); err != nil {
			log.Printf("failed to write image: %v", err)
			os.Exit(1)
		}
	}

	fmt.Println(result.Area)
}
