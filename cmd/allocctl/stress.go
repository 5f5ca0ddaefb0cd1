package main

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/allockit/allockit/alloc"
	"github.com/allockit/allockit/arena"
)

var (
	stressOps     int
	stressSeed    int64
	stressMaxSize int
	stressGate    int
)

func init() {
	cmd := newStressCmd()
	cmd.Flags().IntVar(&stressOps, "ops", 10000, "Number of random operations")
	cmd.Flags().Int64Var(&stressSeed, "seed", 1, "PRNG seed")
	cmd.Flags().IntVar(&stressMaxSize, "max-size", 4096, "Largest random request in bytes")
	cmd.Flags().IntVar(&stressGate, "gate", 256, "Largest request the arena branch accepts")
	rootCmd.AddCommand(cmd)
}

func newStressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stress",
		Short: "Run a random workload over an arena-backed composite",
		Long: `The stress command hammers a composite allocator - a chunked bump
arena behind a size gate, with the Go heap as fallback - with a seeded
random allocate/free workload and prints the aggregated statistics.

Example:
  allocctl stress
  allocctl stress --ops 100000 --seed 7 --gate 512`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStress()
		},
	}
}

func runStress() error {
	if stressOps <= 0 || stressMaxSize <= 0 || stressGate <= 0 {
		return fmt.Errorf("ops, max-size, and gate must be positive")
	}

	ar := arena.New()
	defer ar.Release()
	gate := uintptr(stressGate)

	var st alloc.Stats
	composite := alloc.NewInspect(
		alloc.NewFallback(
			alloc.NewCond(
				alloc.NewChunkOwner(ar, ar),
				func(l alloc.Layout) bool { return l.Size <= gate },
			),
			alloc.Heap{},
		),
		st.Observe,
	)

	rng := rand.New(rand.NewSource(stressSeed))

	type held struct {
		block []byte
		l     alloc.Layout
	}
	var live []held
	var arenaHits int

	for range stressOps {
		if rng.Intn(3) != 0 || len(live) == 0 {
			l := alloc.Layout{
				Size:  uintptr(1 + rng.Intn(stressMaxSize)),
				Align: uintptr(1) << rng.Intn(7),
			}
			block, err := composite.Allocate(l)
			if err != nil {
				return err
			}
			if l.Size <= gate {
				arenaHits++
			}
			live = append(live, held{block: block, l: l})
		} else {
			h := live[len(live)-1]
			live = live[:len(live)-1]
			if err := composite.Deallocate(h.block, h.l); err != nil {
				return err
			}
		}
	}

	printTrace("arena-gated requests: %d, arena chunks mapped: %d (%d B)\n",
		arenaHits, ar.NumChunks(), ar.AllocatedBytes())
	fmt.Println(st.String())
	return nil
}
