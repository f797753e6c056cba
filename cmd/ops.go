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

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/negips/nek1093/params"
	"github.com/negips/nek1093/sem"
)

// OpsCmd represents the ops command
var OpsCmd = &cobra.Command{
	Use:   "ops",
	Short: "Print the node sets, weights and operator matrices for an order",
	Long: `Builds the full staggered operator state for the given velocity-mesh order
and prints the per-mesh node/weight tables and the differentiation,
mass and inter-mesh interpolation matrices`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		n, _ := cmd.Flags().GetInt("order")
		pFile, _ := cmd.Flags().GetString("inputParametersFile")
		var data []byte
		if len(pFile) != 0 {
			if data, err = os.ReadFile(pFile); err != nil {
				panic(err)
			}
		}
		p, err := resolveParams(n, data)
		if err != nil {
			panic(err)
		}
		if data != nil {
			p.Print()
		}
		RunOps(p)
	},
}

func init() {
	rootCmd.AddCommand(OpsCmd)
	OpsCmd.Flags().IntP("order", "n", 7, "velocity mesh polynomial order")
	OpsCmd.Flags().StringP("inputParametersFile", "I", "", "YAML file overriding the per-mesh orders")
}

// resolveParams builds the run parameters from the order flag, or from the
// YAML contents of the input file when one was given. The file is parsed
// into a zero value so that the staggering defaults derive from the orders
// the file sets, not from the flag.
func resolveParams(n int, data []byte) (*params.Parameters, error) {
	if data == nil {
		return params.New(n), nil
	}
	p := &params.Parameters{}
	if err := p.Parse(data); err != nil {
		return nil, err
	}
	return p, nil
}

func RunOps(p *params.Parameters) {
	var (
		s   *sem.Space
		err error
	)
	s, err = sem.NewSpaceOrders(p.VelocityOrder, p.PressureOrder, p.DealiasOrder)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	for _, m := range []sem.Mesh{sem.Velocity, sem.Pressure, sem.Dealias} {
		fmt.Printf("---- %v mesh, order %d (%v)\n", m, s.Order(m), s.Family(m))
		fmt.Printf("Z = %v\n", mat.Formatted(s.Nodes(m).T(), mat.Squeeze()))
		fmt.Printf("W = %v\n", mat.Formatted(s.Weights(m).T(), mat.Squeeze()))
		fmt.Printf("D = \n%v\n", mat.Formatted(s.Deriv(m), mat.Squeeze()))
	}
	fmt.Printf("I[velocity->pressure] = \n%v\n",
		mat.Formatted(s.Interp(sem.Velocity, sem.Pressure), mat.Squeeze()))
	fmt.Printf("I[pressure->velocity] = \n%v\n",
		mat.Formatted(s.Interp(sem.Pressure, sem.Velocity), mat.Squeeze()))
}
