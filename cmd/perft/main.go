// Command perft drives the move generator and the search engine from
// the command line: it counts perft nodes at a given depth, or runs a
// depth-limited search on the starting position and prints the result.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/kbolino/draughts/internal/board"
	"github.com/kbolino/draughts/internal/engine"
)

var (
	depth      = flag.Int("depth", 6, "perft depth, or search depth with -search")
	search     = flag.Bool("search", false, "run a depth-limited search instead of perft")
	ttSize     = flag.Int("tt", 1<<20, "transposition table capacity (entries)")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
)

func main() {
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	if *search {
		runSearch()
		return
	}
	runPerft()
}

func runPerft() {
	b := board.NewStartingBoard()
	start := time.Now()
	nodes := board.Perft(b, *depth)
	elapsed := time.Since(start)

	fmt.Printf("perft(%d) = %d nodes in %s (%.0f nodes/sec)\n",
		*depth, nodes, elapsed, float64(nodes)/elapsed.Seconds())
}

func runSearch() {
	eng := engine.NewEngine(*ttSize, nil)

	d := uint8(*depth)
	start := time.Now()
	ev, move := eng.Evaluate(nil, engine.EvaluationSettings{
		SearchUntil: engine.SearchLimit{
			Kind:  engine.SearchLimited,
			Limit: engine.ActualLimit{Depth: &d},
		},
	})
	elapsed := time.Since(start)

	fmt.Printf("depth %d: best move %v, eval %v (%s)\n", *depth, move, ev, elapsed)
}
