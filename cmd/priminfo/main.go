// Command priminfo prints CPU capabilities and the kernel selections of
// the primitive suite.
//
// Usage:
//
//	priminfo [flags]
//
// Without flags it prints the CPU summary and the registered memory
// kernels, marking the one selected for this machine.
//
// Examples:
//
//	priminfo
//	priminfo -cpu
//	priminfo -kernels
//	priminfo -features
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/klauspost/cpuid/v2"

	"github.com/cwbudde/algo-prim/internal/cpu"
	"github.com/cwbudde/algo-prim/internal/memkernel"
	"github.com/cwbudde/algo-prim/internal/memkernel/registry"
)

func main() {
	cpuOnly := flag.Bool("cpu", false, "show only the CPU summary")
	kernelsOnly := flag.Bool("kernels", false, "show only the kernel registry")
	features := flag.Bool("features", false, "include the full CPUID feature list")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: priminfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints CPU capabilities and kernel selections of the primitive suite.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	showCPU := !*kernelsOnly
	showKernels := !*cpuOnly

	if showCPU {
		printCPU(w, *features)
	}
	if showCPU && showKernels {
		fmt.Fprintln(w)
	}
	if showKernels {
		printKernels(w)
	}
}

func printCPU(w *tabwriter.Writer, full bool) {
	detected := cpu.DetectFeatures()

	fmt.Fprintf(w, "vendor\t%s\n", cpuid.CPU.VendorString)
	fmt.Fprintf(w, "brand\t%s\n", strings.TrimSpace(cpuid.CPU.BrandName))
	fmt.Fprintf(w, "arch\t%s\n", detected.Architecture)
	fmt.Fprintf(w, "word size\t%d bytes\n", detected.WordBytes)
	fmt.Fprintf(w, "cores\t%d physical, %d logical\n",
		cpuid.CPU.PhysicalCores, cpuid.CPU.LogicalCores)
	fmt.Fprintf(w, "cache line\t%d bytes\n", cpuid.CPU.CacheLine)
	fmt.Fprintf(w, "sse2\t%v\n", detected.HasSSE2)
	fmt.Fprintf(w, "avx2\t%v\n", detected.HasAVX2)
	fmt.Fprintf(w, "erms\t%v\n", detected.HasERMS)
	fmt.Fprintf(w, "neon\t%v\n", detected.HasNEON)
	fmt.Fprintf(w, "fast string move\t%v\n", cpu.HasFastStringMove())

	if full {
		set := cpuid.CPU.FeatureSet()
		sort.Strings(set)
		fmt.Fprintf(w, "cpuid features\t%s\n", strings.Join(set, " "))
	}
}

func printKernels(w *tabwriter.Writer) {
	selected := memkernel.ActiveName()

	fmt.Fprintf(w, "kernel\tlevel\tpriority\t\n")
	for _, entry := range registry.Global.ListEntries() {
		marker := ""
		if entry.Name == selected {
			marker = "selected"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", entry.Name, entry.Level, entry.Priority, marker)
	}
}
