package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/shipment"
	"orderdesk/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type orderFlags struct {
	number   string
	date     string
	customer string
	total    string
	status   string
}

func (f *orderFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.number, "number", "", "order number")
	cmd.Flags().StringVar(&f.date, "date", "", "order date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.customer, "customer", "", "customer name")
	cmd.Flags().StringVar(&f.total, "total", "", "order total, two decimals")
	cmd.Flags().StringVar(&f.status, "status", "", "order status: NEW, INVOICED or SHIPPED")
}

// apply copies every flag the user set onto o. Unset flags keep the value in o.
func (f *orderFlags) apply(cmd *cobra.Command, o *order.Order) error {
	var problems []error
	changed := cmd.Flags().Changed

	if changed("number") {
		o.Number = f.number
	}
	if changed("customer") {
		o.CustomerName = f.customer
	}
	if changed("date") {
		d, err := kernel.ParseDate(f.date, "date")
		problems = append(problems, err)
		o.Date = d
	}
	if changed("total") {
		total, err := parseAmount(f.total, "total")
		problems = append(problems, err)
		o.Total = total
	}
	if changed("status") {
		status, err := order.ParseStatus(f.status)
		problems = append(problems, err)
		o.Status = status
	}
	return errors.Join(problems...)
}

type shipmentFlags struct {
	tracking string
	carrier  string
	kind     string
	cost     string
	dispatch string
	arrival  string
	status   string
}

// register adds the shipment flags, each name prefixed with prefix.
func (f *shipmentFlags) register(cmd *cobra.Command, prefix string) {
	cmd.Flags().StringVar(&f.tracking, prefix+"tracking", "", "tracking code")
	cmd.Flags().StringVar(&f.carrier, prefix+"carrier", "", "carrier: CARRIER_A, CARRIER_B or CARRIER_C")
	cmd.Flags().StringVar(&f.kind, prefix+"type", "", "shipment type: STANDARD or EXPRESS")
	cmd.Flags().StringVar(&f.cost, prefix+"cost", "", "shipment cost, two decimals")
	cmd.Flags().StringVar(&f.dispatch, prefix+"dispatch-date", "", "dispatch date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.arrival, prefix+"estimated-arrival", "", "estimated arrival (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.status, prefix+"shipment-status", "", "PREPARING, IN_TRANSIT or DELIVERED")
}

func (f *shipmentFlags) anyChanged(cmd *cobra.Command, prefix string) bool {
	for _, name := range []string{"tracking", "carrier", "type", "cost", "dispatch-date", "estimated-arrival", "shipment-status"} {
		if cmd.Flags().Changed(prefix + name) {
			return true
		}
	}
	return false
}

func (f *shipmentFlags) apply(cmd *cobra.Command, prefix string, s *shipment.Shipment) error {
	var problems []error
	changed := func(name string) bool { return cmd.Flags().Changed(prefix + name) }

	if changed("tracking") {
		s.Tracking = f.tracking
	}
	if changed("carrier") {
		carrier, err := shipment.ParseCarrier(f.carrier)
		problems = append(problems, err)
		s.Carrier = carrier
	}
	if changed("type") {
		kind, err := shipment.ParseKind(f.kind)
		problems = append(problems, err)
		s.Kind = kind
	}
	if changed("cost") {
		cost, err := parseAmount(f.cost, "cost")
		problems = append(problems, err)
		s.Cost = cost
	}
	if changed("dispatch-date") {
		d, err := kernel.ParseDate(f.dispatch, "dispatchDate")
		problems = append(problems, err)
		s.DispatchDate = d
	}
	if changed("estimated-arrival") {
		d, err := kernel.ParseDate(f.arrival, "estimatedArrival")
		problems = append(problems, err)
		s.EstimatedArrival = d
	}
	if changed("shipment-status") {
		status, err := shipment.ParseStatus(f.status)
		problems = append(problems, err)
		s.Status = status
	}
	return errors.Join(problems...)
}

func parseAmount(raw, param string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, errs.NewValueIsRequiredError(param)
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%q is not a decimal amount", raw))
	}
	return amount, nil
}

func parseAsOf(raw string) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return kernel.Today(), nil
	}
	return kernel.ParseDate(raw, "asOf")
}
