package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/joshuapare/slotkit/arena"
	"github.com/joshuapare/slotkit/heapalloc"
	"github.com/joshuapare/slotkit/mmbuf"
	"github.com/joshuapare/slotkit/rawlist"
	"github.com/joshuapare/slotkit/storage"
	"github.com/joshuapare/slotkit/storage/allocator"
	"github.com/joshuapare/slotkit/storage/fallback"
	"github.com/joshuapare/slotkit/storage/inline"
)

var (
	benchFile string
	useMmap   bool
)

func init() {
	cmd := newBenchCmd()
	cmd.Flags().StringVarP(&benchFile, "workloads", "w", "", "YAML workload file (built-in suite when omitted)")
	cmd.Flags().BoolVar(&useMmap, "mmap", false, "Back inline storage with an anonymous mmap region")
	rootCmd.AddCommand(cmd)
}

func newBenchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the workload suite",
		Long: `The run command executes each workload: a push/pop churn of a linked
list whose nodes live in the selected backend. Results report wall time and
per-operation cost.

Example:
  slotbench run
  slotbench run -w workloads.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench()
		},
	}
}

// Result is one workload's aggregated timing.
type Result struct {
	Workload Workload
	Total    time.Duration
	PerOp    time.Duration
}

func runBench() error {
	suite := defaultSuite()
	if benchFile != "" {
		loaded, err := loadSuite(benchFile)
		if err != nil {
			return err
		}
		suite = loaded
	}

	results := make([]Result, 0, len(suite.Workloads))
	for _, w := range suite.Workloads {
		r, err := runWorkload(w)
		if err != nil {
			return fmt.Errorf("workload %q: %w", w.Name, err)
		}
		results = append(results, r)
	}
	if !quiet {
		printResults(results)
	}
	return nil
}

func runWorkload(w Workload) (Result, error) {
	var total time.Duration
	for round := 0; round < w.Rounds; round++ {
		elapsed, err := runRound(w)
		if err != nil {
			return Result{}, err
		}
		total += elapsed
	}
	ops := w.Ops * w.Rounds
	return Result{Workload: w, Total: total, PerOp: total / time.Duration(ops)}, nil
}

// nodeShape is an upper bound on a list node's size for any handle type
// used here, so the inline backends can be sized without naming the node.
var nodeShape = storage.Layout{Size: 128, Align: 8}

func runRound(w Workload) (time.Duration, error) {
	switch w.Backend {
	case "heap":
		return churn(rawlist.New[int](allocator.NewElement(heapalloc.New())), w)
	case "arena":
		return churn(rawlist.New[int](allocator.NewElement(arena.New())), w)
	case "inline":
		tracking, cleanup, err := newTracking(w.Slots)
		if err != nil {
			return 0, err
		}
		defer cleanup()
		return churn(rawlist.New[int](tracking), w)
	case "fallback":
		tracking, cleanup, err := newTracking(w.Slots)
		if err != nil {
			return 0, err
		}
		defer cleanup()
		s := fallback.NewElement[inline.TrackingHandle, allocator.ElementHandle](
			tracking,
			allocator.NewElement(heapalloc.New()),
		)
		return churn(rawlist.New[int](s), w)
	}
	return 0, fmt.Errorf("unknown backend %q", w.Backend)
}

// newTracking builds the inline backing either over an anonymous mmap
// region (--mmap) or over an internally allocated buffer.
func newTracking(slots int) (*inline.Tracking, func(), error) {
	if !useMmap {
		return inline.NewTracking(nodeShape, slots), func() {}, nil
	}
	region, err := mmbuf.Alloc(int(nodeShape.Size) * slots)
	if err != nil {
		return nil, nil, err
	}
	tracking, err := inline.NewTrackingOver(region.Bytes(), nodeShape, slots)
	if err != nil {
		region.Close()
		return nil, nil, err
	}
	return tracking, func() { region.Close() }, nil
}

// churn fills the list to the workload's slot depth and drains it again
// until Ops operations have run.
func churn[H any](l *rawlist.List[int, H], w Workload) (time.Duration, error) {
	depth := w.Slots
	if depth <= 0 || depth > 1024 {
		depth = 1024
	}
	start := time.Now()
	done := 0
	for done < w.Ops {
		for i := 0; i < depth && done < w.Ops; i++ {
			if err := l.Push(i); err != nil {
				return 0, err
			}
			done++
		}
		l.Clear()
	}
	return time.Since(start), nil
}
