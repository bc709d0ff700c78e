package topology

import "fmt"

// Profile describes an architecture in four short panels.
type Profile struct {
	Name             string `json:"name" yaml:"name"`
	Title            string `json:"title" yaml:"title"`
	Topology         string `json:"topology" yaml:"topology"`
	ComputePrimitive string `json:"compute_primitive" yaml:"compute_primitive"`
	SignalFlow       string `json:"signal_flow" yaml:"signal_flow"`
	KeyAdvantage     string `json:"key_advantage" yaml:"key_advantage"`
}

var profiles = []Profile{
	{
		Name:             NameIGRIS,
		Title:            "IGRIS Specifications",
		Topology:         "Sparse, small-world graph with specialized Hubs and local Cell clusters.",
		ComputePrimitive: "Stateful Micro-Agent (Cell) with local memory and plasticity.",
		SignalFlow:       "Asynchronous message passing. Dynamic routing via Hubs.",
		KeyAdvantage:     "Robustness & Continual Learning.",
	},
	{
		Name:             NameTransformer,
		Title:            "Transformer Specifications",
		Topology:         "Dense, sequential layered stack with global attention.",
		ComputePrimitive: "Stateless Layer (Attention + FFN) operating on tokens.",
		SignalFlow:       "Synchronous forward pass. Global visibility per layer.",
		KeyAdvantage:     "Parallel Training Efficiency.",
	},
}

// Profiles returns a copy of both architecture profiles, IGRIS first.
func Profiles() []Profile {
	out := make([]Profile, len(profiles))
	copy(out, profiles)
	return out
}

// ProfileFor looks up a profile by architecture name.
func ProfileFor(name string) (Profile, error) {
	for _, p := range profiles {
		if p.Name == name {
			return p, nil
		}
	}
	return Profile{}, fmt.Errorf("topology: unknown architecture %q: %w", name, ErrInvalidParameter)
}
