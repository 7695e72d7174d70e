package main

import (
	"fmt"
	"log"

	"github.com/telagraphic/sfx-board/internal/core"
	"github.com/telagraphic/sfx-board/internal/inputs"
)

func main() {
	log.SetFlags(0) // remove timestamp from prints

	userInput := inputs.ParseFlags()

	result, err := core.Sync(userInput)
	if err != nil {
		log.Fatal(err)
	}

	reportResult(result)
}

func reportResult(result core.SyncResult) {
	if len(result.Added) == 0 {
		fmt.Printf("No new clips, %s is up to date (%d clips)\n",
			result.CatalogPath, result.Total)
		return
	}

	fmt.Printf("Added %d new clips to %s:\n", len(result.Added), result.CatalogPath)
	for _, clip := range result.Added {
		fmt.Printf("- %s (%s)\n", clip.Name, clip.File)
	}
}
