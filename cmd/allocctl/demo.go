package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/allockit/allockit/alloc"
)

var (
	demoStackSize int
	demoGate      int
)

func init() {
	cmd := newDemoCmd()
	cmd.Flags().IntVar(&demoStackSize, "stack-size", 64, "Capacity of the stack buffer in bytes")
	cmd.Flags().IntVar(&demoGate, "gate", 16, "Largest request the stack branch accepts")
	rootCmd.AddCommand(cmd)
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a scripted workload through a gated fallback composite",
		Long: `The demo command builds the canonical composition - a fixed stack
buffer behind a size gate, with the Go heap as fallback - and runs a
scripted allocation sequence through it, tracing how every request
routes.

Example:
  allocctl demo
  allocctl demo --stack-size 128 --gate 32`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo()
		},
	}
}

func runDemo() error {
	if demoStackSize <= 0 || demoGate <= 0 {
		return fmt.Errorf("stack-size and gate must be positive")
	}

	stack := alloc.NewStackSize(demoStackSize)
	gate := uintptr(demoGate)

	var st alloc.Stats
	composite := alloc.NewInspect(
		alloc.NewFallback(
			alloc.NewCond(stack, func(l alloc.Layout) bool { return l.Size <= gate }),
			alloc.Heap{},
		),
		st.Observe,
	)

	sizes := []uintptr{3, 4, gate, gate + 1, gate * 4, 0, 8}
	type held struct {
		block []byte
		l     alloc.Layout
	}
	var blocks []held

	for _, size := range sizes {
		l := alloc.Layout{Size: size, Align: 8}
		block, err := composite.Allocate(l)
		if err != nil {
			printTrace("alloc %4d B -> %v\n", size, err)
			continue
		}
		branch := "heap "
		if stack.Owns(block) {
			branch = "stack"
		}
		printTrace("alloc %4d B -> %s (stack in use: %d/%d)\n",
			size, branch, stack.InUse(), stack.Cap())
		blocks = append(blocks, held{block: block, l: l})
	}

	// Free in LIFO order so the stack branch retracts all the way.
	for i := len(blocks) - 1; i >= 0; i-- {
		if err := composite.Deallocate(blocks[i].block, blocks[i].l); err != nil {
			return err
		}
	}
	printTrace("after frees: stack in use %d/%d\n", stack.InUse(), stack.Cap())

	fmt.Println(st.String())
	return nil
}
