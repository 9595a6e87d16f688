package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pji/life/model"
	"github.com/pji/life/utils"
)

// runAutorun ticks the grid at the configured pace and repaints until the
// board dies out, goes static, hits the generation limit, or the user
// interrupts.
func runAutorun(grid *model.Grid, cfg utils.Config) {
	renderer := &model.TerminalRenderer{}
	stats := utils.NewStats()

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var (
		lastHash  string
		lastFrame = time.Now()
	)
	for {
		select {
		case <-sigChan:
			fmt.Println("\nShutting down gracefully...")
			printFinalStats(stats)
			return
		default:
			// Continue with the loop
		}

		population := grid.CountLivingCells()
		stats.Update(grid.GetGeneration(), population, time.Since(lastFrame))
		lastFrame = time.Now()

		renderer.Clear()
		printStatus(grid, population, cfg, stats)
		renderer.Display(grid)

		if population == 0 {
			fmt.Println("Extinct.")
			printFinalStats(stats)
			return
		}
		hash := grid.Hash()
		if hash == lastHash {
			fmt.Println("Static board.")
			printFinalStats(stats)
			return
		}
		lastHash = hash

		if cfg.MaxGenerations > 0 && grid.GetGeneration() >= cfg.MaxGenerations {
			fmt.Printf("Reached maximum generations limit (%d)\n", cfg.MaxGenerations)
			printFinalStats(stats)
			return
		}

		grid.Tick()
		time.Sleep(cfg.FrameDelay())
	}
}

func printStatus(grid *model.Grid, population int, cfg utils.Config, stats *utils.Stats) {
	density := float64(population) / float64(grid.GetWidth()*grid.GetHeight()) * 100
	line := fmt.Sprintf("Rule: %s | Living: %d | Density: %.1f%%", grid.GetRule(), population, density)
	if cfg.ShowGeneration {
		line = fmt.Sprintf("Gen: %d | %s", grid.GetGeneration(), line)
	}
	fmt.Println(line)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())
}

func printFinalStats(stats *utils.Stats) {
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		stats.TotalGenerations, time.Since(stats.StartTime).Seconds())
}
