package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pilotsmatch/escort-engine/pkg/services/regulation"
)

type EscortsCmd struct {
	width    string
	height   string
	length   string
	weight   string
	roadType string
	states   []string

	deps *Deps
	out  io.Writer
}

func NewEscortsCmd(deps *Deps, out io.Writer) *cobra.Command {
	ec := &EscortsCmd{deps: deps, out: out}
	cmd := &cobra.Command{
		Use:   "escorts",
		Short: "Resolve per-state escort requirements for a load",
		RunE:  ec.run,
	}

	cmd.Flags().StringVar(&ec.width, "width", "", `Load width (e.g. 14'3")`)
	cmd.Flags().StringVar(&ec.height, "height", "", "Load height")
	cmd.Flags().StringVar(&ec.length, "length", "", "Load length")
	cmd.Flags().StringVar(&ec.weight, "weight", "", "Load weight in pounds")
	cmd.Flags().StringVar(&ec.roadType, "road-type", "Interstate", "Road type (Interstate or Non-Interstate)")
	cmd.Flags().StringSliceVar(&ec.states, "states", nil, "Route states in travel order")

	_ = cmd.MarkFlagRequired("states")

	return cmd
}

func (ec *EscortsCmd) run(cmd *cobra.Command, _ []string) error {
	spec, err := regulation.ParseLoadSpec(regulation.LoadSpecInput{
		Width:    ec.width,
		Height:   ec.height,
		Length:   ec.length,
		Weight:   ec.weight,
		RoadType: ec.roadType,
	})
	if err != nil {
		return fmt.Errorf("invalid load spec: %w", err)
	}

	results := ec.deps.Resolver.Resolve(cmd.Context(), spec, ec.states)

	enc := json.NewEncoder(ec.out)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
