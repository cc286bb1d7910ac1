package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/pilotsmatch/escort-engine/pkg/models/domain"
)

type QuoteCmd struct {
	pickupLocation   string
	pickupState      string
	deliveryLocation string
	deliveryState    string
	pickupDate       string
	pickupTime       string
	carTypes         []string
	isSuperload      bool

	deps *Deps
	out  io.Writer
}

func NewQuoteCmd(deps *Deps, out io.Writer) *cobra.Command {
	qc := &QuoteCmd{deps: deps, out: out}
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Calculate a pilot car cost estimate",
		RunE:  qc.run,
	}

	cmd.Flags().StringVar(&qc.pickupLocation, "from", "", "Pickup city")
	cmd.Flags().StringVar(&qc.pickupState, "from-state", "", "Pickup state code")
	cmd.Flags().StringVar(&qc.deliveryLocation, "to", "", "Delivery city")
	cmd.Flags().StringVar(&qc.deliveryState, "to-state", "", "Delivery state code")
	cmd.Flags().StringVar(&qc.pickupDate, "date", "", "Pickup date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&qc.pickupTime, "time", "08:00", "Pickup time (HH:MM, 24h)")
	cmd.Flags().StringSliceVar(&qc.carTypes, "car-types", []string{string(domain.CarTypeLeadChase)},
		"Escort car types to price")
	cmd.Flags().BoolVar(&qc.isSuperload, "superload", false, "Bill at superload (premium) rates")

	_ = cmd.MarkFlagRequired("from-state")
	_ = cmd.MarkFlagRequired("to-state")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func (qc *QuoteCmd) run(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	carTypes := make([]domain.CarType, 0, len(qc.carTypes))
	for _, ct := range qc.carTypes {
		carTypes = append(carTypes, domain.CarType(ct))
	}

	result, err := qc.deps.Calculator.Calculate(ctx, domain.QuoteRequest{
		PickupLocation:   qc.pickupLocation,
		PickupState:      qc.pickupState,
		DeliveryLocation: qc.deliveryLocation,
		DeliveryState:    qc.deliveryState,
		PickupDate:       qc.pickupDate,
		PickupTime:       qc.pickupTime,
		CarTypes:         carTypes,
		IsSuperload:      qc.isSuperload,
	})
	if err != nil {
		return fmt.Errorf("failed to calculate quote: %w", err)
	}

	enc := json.NewEncoder(qc.out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
