// Command piecetree-bench is a benchmark and soak test for the piecetree
// library: it loads a large seed document and measures the cost of the
// common read, edit, history and snapshot operations against it.
package main

import (
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"github.com/nrakin/piecetree"
)

const (
	seedLines      = 200_000
	smallEditSize  = 100
	mediumEditSize = 10 * 1024
	largeEditSize  = 1024 * 1024
)

// BenchResult is a single timed measurement, printed in the teacher's
// "name, duration, ops/sec" table format.
type BenchResult struct {
	Name     string
	Duration time.Duration
	Ops      int
	Extra    string
}

func (r BenchResult) String() string {
	if r.Ops > 0 {
		opsPerSec := float64(r.Ops) / r.Duration.Seconds()
		if r.Extra != "" {
			return fmt.Sprintf("%-40s %12v  (%d ops, %.2f ops/sec) %s", r.Name, r.Duration.Round(time.Millisecond), r.Ops, opsPerSec, r.Extra)
		}
		return fmt.Sprintf("%-40s %12v  (%d ops, %.2f ops/sec)", r.Name, r.Duration.Round(time.Millisecond), r.Ops, opsPerSec)
	}
	if r.Extra != "" {
		return fmt.Sprintf("%-40s %12v  %s", r.Name, r.Duration.Round(time.Millisecond), r.Extra)
	}
	return fmt.Sprintf("%-40s %12v", r.Name, r.Duration.Round(time.Millisecond))
}

func main() {
	fmt.Println("piecetree Benchmark and Soak Test")
	fmt.Println("==================================")
	fmt.Printf("Seed lines: %d\n", seedLines)
	fmt.Printf("Go version: %s\n", runtime.Version())
	fmt.Printf("GOMAXPROCS: %d\n", runtime.GOMAXPROCS(0))
	fmt.Println()

	var results []BenchResult

	fmt.Println("Building seed document...")
	tr, buildResult := buildSeedDocument()
	results = append(results, buildResult)
	fmt.Println(buildResult)
	fmt.Printf("Tree ready: %d bytes, %d lines\n\n", tr.Len(), tr.LineCount())

	runBench := func(name string, fn func() BenchResult) {
		fmt.Printf("  %-40s ", name+"...")
		result := fn()
		fmt.Printf("%v\n", result.Duration.Round(time.Millisecond))
		results = append(results, result)
	}

	fmt.Println("Read operations:")
	runBench("Random At() lookups", func() BenchResult { return benchRandomAt(tr) })
	runBench("Sequential forward walk", func() BenchResult { return benchForwardWalk(tr) })
	runBench("Sequential reverse walk", func() BenchResult { return benchReverseWalk(tr) })
	runBench("Random LineContent lookups", func() BenchResult { return benchRandomLineContent(tr) })

	fmt.Println("\nEdit operations:")
	runBench("Small inserts (100 bytes x 1000)", func() BenchResult { return benchSmallInserts(tr) })
	runBench("Small removes (100 bytes x 1000)", func() BenchResult { return benchSmallRemoves(tr) })
	runBench("Medium inserts (10KB x 100)", func() BenchResult { return benchMediumInserts(tr) })
	runBench("Large inserts (1MB x 10)", func() BenchResult { return benchLargeInserts(tr) })

	fmt.Println("\nUndo/redo operations:")
	runBench("Undo/redo cycles", func() BenchResult { return benchUndoRedo(tr) })

	fmt.Println("\nSnapshot operations:")
	runBench("OwningSnap capture x 100", func() BenchResult { return benchOwningSnapCapture(tr) })
	runBench("RefSnap capture x 1000", func() BenchResult { return benchRefSnapCapture(tr) })

	fmt.Println("\n" + "==================================")
	fmt.Println("SUMMARY")
	fmt.Println("==================================")
	for _, r := range results {
		fmt.Println(r)
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	fmt.Println()
	fmt.Printf("Peak heap allocation: %d MB\n", m.HeapSys/(1024*1024))
	fmt.Printf("Total allocations: %d MB\n", m.TotalAlloc/(1024*1024))
}

// buildSeedDocument assembles a multi-line document of realistic text
// through one NewFromBlobs call, the way a real editor would load a file.
func buildSeedDocument() (*piecetree.Tree, BenchResult) {
	start := time.Now()

	var blobs [][]byte
	const chunkLines = 5000
	buf := make([]byte, 0, chunkLines*96)
	for i := 0; i < seedLines; i++ {
		line := fmt.Sprintf("%08d: the quick brown fox jumps over the lazy dog\n", i)
		buf = append(buf, line...)
		if (i+1)%chunkLines == 0 {
			blobs = append(blobs, buf)
			buf = make([]byte, 0, chunkLines*96)
		}
	}
	if len(buf) > 0 {
		blobs = append(blobs, buf)
	}

	tr := piecetree.NewFromBlobs(blobs...)

	return tr, BenchResult{
		Name:     "Build seed document",
		Duration: time.Since(start),
		Extra:    fmt.Sprintf("%d lines, %d blobs", seedLines, len(blobs)),
	}
}

func benchRandomAt(tr *piecetree.Tree) BenchResult {
	rng := rand.New(rand.NewSource(1))
	length := tr.Len()
	ops := 0
	start := time.Now()

	for i := 0; i < 200_000; i++ {
		tr.At(rng.Int63n(length))
		ops++
	}

	return BenchResult{Name: "Random At() lookups", Duration: time.Since(start), Ops: ops}
}

func benchForwardWalk(tr *piecetree.Tree) BenchResult {
	ops := 0
	start := time.Now()

	w := tr.Forward(0)
	for !w.Exhausted() {
		w.Next()
		ops++
	}

	return BenchResult{Name: "Sequential forward walk", Duration: time.Since(start), Ops: ops}
}

func benchReverseWalk(tr *piecetree.Tree) BenchResult {
	ops := 0
	start := time.Now()

	w := tr.Reverse(tr.Len())
	for !w.Exhausted() {
		w.Next()
		ops++
	}

	return BenchResult{Name: "Sequential reverse walk", Duration: time.Since(start), Ops: ops}
}

func benchRandomLineContent(tr *piecetree.Tree) BenchResult {
	rng := rand.New(rand.NewSource(2))
	lineCount := tr.LineCount()
	ops := 0
	start := time.Now()

	for i := 0; i < 50_000; i++ {
		tr.LineContent(1 + rng.Int63n(lineCount))
		ops++
	}

	return BenchResult{Name: "Random LineContent lookups", Duration: time.Since(start), Ops: ops}
}

func benchSmallInserts(tr *piecetree.Tree) BenchResult {
	text := repeatByte('x', smallEditSize)
	before := tr.Head()
	ops := 0
	start := time.Now()

	for i := 0; i < 1000; i++ {
		pos := piecetree.CharOffset(i * 1000)
		if pos > tr.Len() {
			pos = tr.Len()
		}
		tr.Insert(pos, text)
		ops++
	}

	duration := time.Since(start)
	tr.SnapTo(before)

	return BenchResult{Name: "Small inserts (100 bytes x 1000)", Duration: duration, Ops: ops}
}

func benchSmallRemoves(tr *piecetree.Tree) BenchResult {
	before := tr.Head()
	ops := 0
	start := time.Now()

	for i := 0; i < 1000; i++ {
		pos := piecetree.CharOffset(i * 500)
		if pos+smallEditSize > tr.Len() {
			break
		}
		tr.Remove(pos, smallEditSize)
		ops++
	}

	duration := time.Since(start)
	tr.SnapTo(before)

	return BenchResult{Name: "Small removes (100 bytes x 1000)", Duration: duration, Ops: ops}
}

func benchMediumInserts(tr *piecetree.Tree) BenchResult {
	text := repeatByte('y', mediumEditSize)
	before := tr.Head()
	ops := 0
	start := time.Now()

	for i := 0; i < 100; i++ {
		pos := piecetree.CharOffset(i * 10000)
		if pos > tr.Len() {
			pos = tr.Len()
		}
		tr.Insert(pos, text)
		ops++
	}

	duration := time.Since(start)
	tr.SnapTo(before)

	return BenchResult{Name: "Medium inserts (10KB x 100)", Duration: duration, Ops: ops}
}

func benchLargeInserts(tr *piecetree.Tree) BenchResult {
	text := repeatByte('z', largeEditSize)
	before := tr.Head()
	ops := 0
	start := time.Now()

	for i := 0; i < 10; i++ {
		pos := piecetree.CharOffset(i * 100000)
		if pos > tr.Len() {
			pos = tr.Len()
		}
		tr.Insert(pos, text)
		ops++
	}

	duration := time.Since(start)
	tr.SnapTo(before)

	return BenchResult{Name: "Large inserts (1MB x 10)", Duration: duration, Ops: ops}
}

func benchUndoRedo(tr *piecetree.Tree) BenchResult {
	before := tr.Head()
	text := []byte("undo test")

	for i := 0; i < 50; i++ {
		tr.Insert(0, text)
	}

	ops := 0
	start := time.Now()

	for i := 0; i < 10; i++ {
		for tr.TryUndo(0).Success {
			ops++
		}
		for tr.TryRedo(0).Success {
			ops++
		}
	}

	duration := time.Since(start)
	tr.SnapTo(before)

	return BenchResult{Name: "Undo/redo operations", Duration: duration, Ops: ops}
}

func benchOwningSnapCapture(tr *piecetree.Tree) BenchResult {
	ops := 0
	start := time.Now()

	for i := 0; i < 100; i++ {
		_ = tr.OwningSnap()
		ops++
	}

	return BenchResult{Name: "OwningSnap capture x 100", Duration: time.Since(start), Ops: ops}
}

func benchRefSnapCapture(tr *piecetree.Tree) BenchResult {
	ops := 0
	start := time.Now()

	for i := 0; i < 1000; i++ {
		_ = tr.RefSnap()
		ops++
	}

	return BenchResult{Name: "RefSnap capture x 1000", Duration: time.Since(start), Ops: ops}
}

func repeatByte(b byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return out
}
