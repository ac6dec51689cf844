package main

import (
	"flag"
	"fmt"
	"os"

	"chosenoffset.com/basegame/internal/placeholders"
)

func main() {
	outDir := flag.String("out", "res", "directory to write the images into")
	flag.Parse()

	fmt.Println("Placeholder Graphics Generator")
	fmt.Println("==============================")
	fmt.Println()

	background, character, err := placeholders.GenerateAndSave(*outDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✓ Generated %s (%dx%d pixels)\n", background, placeholders.BackgroundWidth, placeholders.BackgroundHeight)
	fmt.Printf("✓ Generated %s (%dx%d pixels)\n", character, placeholders.SpriteSize, placeholders.SpriteSize)
	fmt.Println()
	fmt.Println("Done! Run the game to see your placeholders in action!")
}
