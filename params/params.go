package params

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file. Polynomial orders are fixed
// configuration: changing one requires rebuilding the whole operator state,
// never a mid-run mutation.
type Parameters struct {
	Title         string `yaml:"Title"`
	VelocityOrder int    `yaml:"VelocityOrder"`
	PressureOrder int    `yaml:"PressureOrder"` // 0 -> VelocityOrder-2
	DealiasOrder  int    `yaml:"DealiasOrder"`  // 0 -> VelocityOrder
	Ranks         int    `yaml:"Ranks"`         // 0 -> 1
	Elements      int    `yaml:"Elements"`      // global element count, 0 -> Ranks
}

// New builds a parameter set for a velocity-mesh order with the
// conventional staggering defaults filled in.
func New(velocityOrder int) *Parameters {
	p := &Parameters{VelocityOrder: velocityOrder}
	p.applyDefaults()
	return p
}

func (p *Parameters) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, p); err != nil {
		return err
	}
	p.applyDefaults()
	return p.Validate()
}

func (p *Parameters) applyDefaults() {
	if p.PressureOrder == 0 {
		p.PressureOrder = p.VelocityOrder - 2
	}
	if p.DealiasOrder == 0 {
		p.DealiasOrder = p.VelocityOrder
	}
	if p.Ranks == 0 {
		p.Ranks = 1
	}
	if p.Elements == 0 {
		p.Elements = p.Ranks
	}
}

func (p *Parameters) Validate() error {
	if p.VelocityOrder < 2 {
		return fmt.Errorf("VelocityOrder must be >= 2, got %d", p.VelocityOrder)
	}
	if p.PressureOrder < 0 || p.PressureOrder >= p.VelocityOrder {
		return fmt.Errorf("PressureOrder must satisfy 0 <= Np < Nv, got Np=%d Nv=%d",
			p.PressureOrder, p.VelocityOrder)
	}
	if p.DealiasOrder < p.VelocityOrder {
		return fmt.Errorf("DealiasOrder must be >= VelocityOrder, got %d", p.DealiasOrder)
	}
	if p.Ranks < 1 {
		return fmt.Errorf("Ranks must be >= 1, got %d", p.Ranks)
	}
	if p.Elements < p.Ranks {
		return fmt.Errorf("Elements must be >= Ranks, got %d elements on %d ranks",
			p.Elements, p.Ranks)
	}
	return nil
}

func (p *Parameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", p.Title)
	fmt.Printf("[%d]\t\t\t= Velocity Order (Lobatto)\n", p.VelocityOrder)
	fmt.Printf("[%d]\t\t\t= Pressure Order (Gauss)\n", p.PressureOrder)
	fmt.Printf("[%d]\t\t\t= Dealias Order (Lobatto)\n", p.DealiasOrder)
	fmt.Printf("[%d]\t\t\t= Ranks\n", p.Ranks)
	fmt.Printf("[%d]\t\t\t= Elements\n", p.Elements)
}
