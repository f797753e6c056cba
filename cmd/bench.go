/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/negips/nek1093/sem"
	"github.com/negips/nek1093/utils"
)

// BenchCmd represents the bench command
var BenchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure tensor-product operator throughput",
	Long: `Times repeated tensor-product gradient evaluation over a batch of 3D
elements. On linux the hardware instruction count for one pass is also
reported via the perf subsystem`,
	Run: func(cmd *cobra.Command, args []string) {
		n, _ := cmd.Flags().GetInt("order")
		k, _ := cmd.Flags().GetInt("elements")
		steps, _ := cmd.Flags().GetInt("steps")
		RunBench(n, k, steps)
	},
}

func init() {
	rootCmd.AddCommand(BenchCmd)
	BenchCmd.Flags().IntP("order", "n", 7, "velocity mesh polynomial order")
	BenchCmd.Flags().IntP("elements", "k", 64, "number of elements per pass")
	BenchCmd.Flags().IntP("steps", "s", 100, "number of passes to time")
}

func RunBench(n, k, steps int) {
	s, err := sem.NewSpace(n)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	var (
		t      = sem.NewTensor3D(n + 1)
		fields = make([][]float64, k)
	)
	for e := range fields {
		f := make([]float64, t.Len())
		for i := range f {
			f[i] = float64(i%7) * 0.25
		}
		fields[e] = f
	}
	pass := func() {
		for _, f := range fields {
			if _, _, _, err := s.Grad(t, f); err != nil {
				panic(err)
			}
		}
	}

	start := time.Now()
	for i := 0; i < steps; i++ {
		pass()
	}
	elapsed := time.Since(start)
	perElem := elapsed / time.Duration(steps*k)
	fmt.Printf("order %d, %d elements x %d steps: %v total, %v per element gradient\n",
		n, k, steps, elapsed, perElem)

	if instructions, err := utils.CountInstructions(pass); err == nil {
		fmt.Printf("hardware instructions per pass: %d\n", instructions)
	}
	if cycles, err := utils.CountCycles(pass); err == nil {
		fmt.Printf("hardware cycles per pass: %d\n", cycles)
	}
}
