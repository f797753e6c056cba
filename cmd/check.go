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
	"math"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"github.com/negips/nek1093/comm"
	"github.com/negips/nek1093/params"
	"github.com/negips/nek1093/sem"
	"github.com/negips/nek1093/utils"
)

// CheckCmd represents the check command
var CheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the operator and reduction self checks",
	Long: `Builds the operator state for the given order, verifies the quadrature and
differentiation exactness properties, then splits a model field over the
requested number of ranks and verifies that the collective reductions agree
with the serial computation`,
	Run: func(cmd *cobra.Command, args []string) {
		n, _ := cmd.Flags().GetInt("order")
		r, _ := cmd.Flags().GetInt("ranks")
		k, _ := cmd.Flags().GetInt("elements")
		p := params.New(n)
		p.Ranks = r
		p.Elements = k
		if err := p.Validate(); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		if !RunCheck(p) {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(CheckCmd)
	CheckCmd.Flags().IntP("order", "n", 7, "velocity mesh polynomial order")
	CheckCmd.Flags().IntP("ranks", "r", 4, "number of SPMD ranks")
	CheckCmd.Flags().IntP("elements", "k", 16, "number of elements to split over the ranks")
}

func RunCheck(p *params.Parameters) (ok bool) {
	var (
		s   *sem.Space
		err error
	)
	ok = true
	if s, err = sem.NewSpaceOrders(p.VelocityOrder, p.PressureOrder, p.DealiasOrder); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		return false
	}
	report := func(name string, residual, tol float64) {
		status := "ok"
		if residual > tol {
			status = "FAIL"
			ok = false
		}
		fmt.Printf("%-40s residual %10.3e  [%s]\n", name, residual, status)
	}

	for _, m := range []sem.Mesh{sem.Velocity, sem.Pressure, sem.Dealias} {
		name := fmt.Sprintf("%v weights sum to 2", m)
		report(name, math.Abs(s.Weights(m).Sum()-2), 1.e-13)
	}

	report("derivative exactness on x^N", derivResidual(s), 1.e-10)
	report("mass matrix inverse consistency", massInverseResidual(s), 1.e-12)
	report("interpolation of x^3 to pressure mesh", interpResidual(s), 1.e-12)
	report("partition independent inner product", reductionResidual(s, p), 1.e-12)
	return
}

// derivResidual differentiates x^N on the velocity mesh and compares with
// the analytic N x^(N-1) at every node.
func derivResidual(s *sem.Space) (res float64) {
	var (
		n = s.Order(sem.Velocity)
		z = s.Nodes(sem.Velocity).Data()
		f = make([]float64, len(z))
	)
	for i, x := range z {
		f[i] = utils.POW(x, n)
	}
	df, err := s.Deriv(sem.Velocity).MulVec(f)
	if err != nil {
		panic(err)
	}
	for i, x := range z {
		exact := float64(n) * utils.POW(x, n-1)
		if d := math.Abs(df[i] - exact); d > res {
			res = d
		}
	}
	return
}

// massInverseResidual inverts the velocity mass matrix, as the pressure
// projection steps do, and measures how far B * Binv falls from the
// identity.
func massInverseResidual(s *sem.Space) (res float64) {
	B := s.Mass(sem.Velocity)
	Binv, err := B.Inverse()
	if err != nil {
		panic(err)
	}
	P := B.Mul(Binv)
	n, _ := P.Dims()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var want float64
			if i == j {
				want = 1
			}
			if d := math.Abs(P.At(i, j) - want); d > res {
				res = d
			}
		}
	}
	return
}

// interpResidual maps x^3 from the velocity nodes to the pressure nodes and
// compares with direct evaluation; exact whenever Nv >= 3.
func interpResidual(s *sem.Space) (res float64) {
	var (
		zv = s.Nodes(sem.Velocity).Data()
		zp = s.Nodes(sem.Pressure).Data()
		f  = make([]float64, len(zv))
	)
	for i, x := range zv {
		f[i] = x * x * x
	}
	fp, err := s.Interp(sem.Velocity, sem.Pressure).MulVec(f)
	if err != nil {
		panic(err)
	}
	for i, x := range zp {
		if d := math.Abs(fp[i] - x*x*x); d > res {
			res = d
		}
	}
	return
}

// reductionResidual computes a weighted energy norm of a model field twice:
// serially in one pass, and split over p.Ranks goroutines combining through
// the group collectives. The two must agree to rounding error.
func reductionResidual(s *sem.Space, p *params.Parameters) (res float64) {
	var (
		nPer    = s.Nodes(sem.Velocity).Len()
		nTotal  = p.Elements * nPer
		field   = make([]float64, nTotal)
		weights = make([]float64, nTotal)
		wz      = s.Weights(sem.Velocity).Data()
	)
	for i := range field {
		field[i] = math.Sin(float64(i) * 0.1)
		weights[i] = wz[i%nPer]
	}
	var serial float64
	for i, v := range field {
		serial += v * v * weights[i]
	}

	g, err := comm.NewGroup(p.Ranks)
	if err != nil {
		panic(err)
	}
	pm := comm.NewPartitionMap(p.Ranks, nTotal)
	results := make([]float64, p.Ranks)
	var wg sync.WaitGroup
	for rank := 0; rank < p.Ranks; rank++ {
		wg.Add(1)
		go func(rank int) {
			defer wg.Done()
			k1, k2 := pm.GetBucketRange(rank)
			dot, dotErr := g.Rank(rank).Dot3(field[k1:k2], field[k1:k2], weights[k1:k2])
			if dotErr != nil {
				panic(dotErr)
			}
			results[rank] = dot
		}(rank)
	}
	wg.Wait()
	for _, v := range results {
		if d := math.Abs(v - serial); d > res {
			res = d
		}
	}
	return
}
