package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/theSherwood/threadcore/control"
	"github.com/theSherwood/threadcore/thread"
)

func main() {
	var (
		count       = flag.Int("n", 4, "Number of threads to spawn")
		work        = flag.Duration("work", 50*time.Millisecond, "Busy-work duration per thread")
		pin         = flag.Bool("pin", false, "Pin each thread to a CPU, round-robin")
		verbose     = flag.Bool("v", false, "Verbose logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		thread.SetLogger(logger)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*count, *work, *pin); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(count int, work time.Duration, pin bool) error {
	var completed atomic.Int64

	start := time.Now()
	threads := make([]*thread.Thread[int], 0, count)
	for i := 0; i < count; i++ {
		th, err := thread.Create(func(int) {
			thread.OnExit(func() { completed.Add(1) })
			spin(work)
		}, i)
		if err != nil {
			thread.JoinAll(threads...)
			closeAll(threads)
			return fmt.Errorf("spawn thread %d: %w", i, err)
		}
		threads = append(threads, th)

		if pin {
			cpu := i % runtime.NumCPU()
			if err := th.PinToCPU(cpu); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: pin thread %d to cpu %d: %v\n", i, cpu, err)
			}
		}
	}

	fmt.Printf("Spawned %d threads (stack %d KiB each)\n", count, thread.StackSize/1024)
	for i, th := range threads {
		fmt.Printf("  #%d native id %d\n", i, th.NativeHandle())
	}

	thread.JoinAll(threads...)
	closeAll(threads)

	stats := control.Stats()
	fmt.Printf("\nJoined after %v\n", time.Since(start).Round(time.Millisecond))
	fmt.Printf("Exit hooks fired:  %d/%d\n", completed.Load(), count)
	fmt.Printf("Blocks allocated:  %d\n", stats.Allocated)
	fmt.Printf("Blocks freed:      %d\n", stats.Freed)
	fmt.Printf("Blocks live:       %d\n", stats.Live)
	return nil
}

func closeAll(threads []*thread.Thread[int]) {
	for _, th := range threads {
		th.Close()
	}
}

// spin burns CPU for roughly d, so pinned threads are visible in a CPU
// monitor.
func spin(d time.Duration) {
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
	}
}
