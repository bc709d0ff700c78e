package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/igris/builder"
	"github.com/katalvlaran/igris/config"
	"github.com/katalvlaran/igris/topology"
)

// generateParams are the resolved generator inputs of one request.
type generateParams struct {
	Rewiring float64 `validate:"gte=0,lte=1"`
	Hubs     int     `validate:"gte=1,lte=20"`
	Seed     int64
	Policy   string `validate:"oneof=drop resample"`
}

// parseGenerateParams reads rewiring, hubs, seed and policy from the query,
// falling back to defaults. A missing seed with no configured seed is drawn
// from the clock so the response can still report it.
func parseGenerateParams(r *http.Request, defaults config.GeneratorConfig, v *validator.Validate) (generateParams, error) {
	q := r.URL.Query()
	p := generateParams{
		Rewiring: defaults.RewiringProb,
		Hubs:     defaults.HubConnectivity,
		Seed:     defaults.Seed,
		Policy:   defaults.RewirePolicy,
	}

	if s := q.Get("rewiring"); s != "" {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return p, fmt.Errorf("rewiring %q is not a number: %w", s, topology.ErrInvalidParameter)
		}
		p.Rewiring = f
	}
	if s := q.Get("hubs"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return p, fmt.Errorf("hubs %q is not an integer: %w", s, topology.ErrInvalidParameter)
		}
		p.Hubs = n
	}
	if s := q.Get("seed"); s != "" {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return p, fmt.Errorf("seed %q is not an integer: %w", s, topology.ErrInvalidParameter)
		}
		p.Seed = n
	}
	if s := q.Get("policy"); s != "" {
		p.Policy = strings.ToLower(s)
	}
	if p.Seed == 0 {
		p.Seed = time.Now().UnixNano()
	}

	if err := v.Struct(p); err != nil {
		return p, paramError(err)
	}

	return p, nil
}

// paramError maps the first failing field onto a topology sentinel.
func paramError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%v: %w", err, topology.ErrInvalidParameter)
	}
	fe := verrs[0]
	switch fe.Field() {
	case "Hubs":
		return fmt.Errorf("hubs %v not in [1,%d]: %w", fe.Value(), topology.CellCount, topology.ErrParameterOutOfRange)
	case "Rewiring":
		return fmt.Errorf("rewiring %v not in [0,1]: %w", fe.Value(), topology.ErrInvalidParameter)
	default:
		return fmt.Errorf("%s %v failed %s: %w", strings.ToLower(fe.Field()), fe.Value(), fe.Tag(), topology.ErrInvalidParameter)
	}
}

func (p generateParams) options() []topology.Option {
	policy, _ := builder.ParseRewirePolicy(p.Policy)
	return []topology.Option{topology.WithSeed(p.Seed), topology.WithRewirePolicy(policy)}
}
