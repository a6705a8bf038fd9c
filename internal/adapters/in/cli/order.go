package cli

import (
	"errors"
	"fmt"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/shipment"
	"orderdesk/internal/pkg/errs"

	"github.com/spf13/cobra"
)

func newOrderCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Create, change and inspect orders",
	}
	cmd.AddCommand(newOrderCreateCmd(a))
	cmd.AddCommand(newOrderUpdateCmd(a))
	cmd.AddCommand(newOrderDeleteCmd(a))
	cmd.AddCommand(newOrderGetCmd(a))
	cmd.AddCommand(newOrderListCmd(a))
	cmd.AddCommand(newOrderFindCmd(a))
	cmd.AddCommand(newOrderRemoveShipmentCmd(a))
	return cmd
}

func newOrderCreateCmd(a *app) *cobra.Command {
	var (
		fields     orderFlags
		shipFields shipmentFlags
		shipmentID string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an order, optionally with a new or existing shipment",
		Example: `  orderdesk order create --number 0001 --date 2025-05-02 --customer "Ana López" --total 1234.50
  orderdesk order create --number 0002 --date 2025-05-02 --customer Luis --total 10 \
      --tracking TRK-0001 --carrier CARRIER_A --type STANDARD --cost 850 \
      --dispatch-date 2025-05-10 --estimated-arrival 2025-05-15`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var draft order.Order
			problems := []error{fields.apply(cmd, &draft)}

			if cmd.Flags().Changed("shipment-id") {
				existing, err := a.getShipment(cmd, shipmentID, false)
				if err != nil {
					return err
				}
				draft.Shipment = existing
			} else if shipFields.anyChanged(cmd, "") {
				draft.Shipment = &shipment.Shipment{}
			}
			if draft.Shipment != nil {
				problems = append(problems, shipFields.apply(cmd, "", draft.Shipment))
			}
			if err := errors.Join(problems...); err != nil {
				return err
			}

			command, err := commands.NewCreateOrderCommand(draft)
			if err != nil {
				return err
			}
			created, err := a.deps.Handlers.CreateOrder.Handle(cmd.Context(), command)
			if err != nil {
				return err
			}

			a.log.InfoContext(cmd.Context(), "order created", "order_id", created.ID.Int64(), "number", created.Number)
			return a.printOrder(cmd.OutOrStdout(), created)
		},
	}
	fields.register(cmd)
	shipFields.register(cmd, "")
	cmd.Flags().StringVar(&shipmentID, "shipment-id", "", "link an existing unowned shipment; shipment flags that are set overwrite its fields")
	return cmd
}

func newOrderUpdateCmd(a *app) *cobra.Command {
	var fields orderFlags

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change the fields of an order; unset flags keep their value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := a.getOrder(cmd, args[0])
			if err != nil {
				return err
			}
			if err = fields.apply(cmd, current); err != nil {
				return err
			}

			command, err := commands.NewUpdateOrderCommand(*current)
			if err != nil {
				return err
			}
			updated, err := a.deps.Handlers.UpdateOrder.Handle(cmd.Context(), command)
			if err != nil {
				return err
			}
			return a.printOrder(cmd.OutOrStdout(), updated)
		},
	}
	fields.register(cmd)
	return cmd
}

func newOrderDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Soft-delete an order; its shipment is kept",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := kernel.ParseID(args[0], "id")
			if err != nil {
				return err
			}
			command, err := commands.NewDeleteOrderCommand(id)
			if err != nil {
				return err
			}
			if err = a.deps.Handlers.DeleteOrder.Handle(cmd.Context(), command); err != nil {
				return err
			}
			return a.printDone(cmd.OutOrStdout(), fmt.Sprintf("order %s deleted", id))
		},
	}
}

func newOrderGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show an order with its shipment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := a.getOrder(cmd, args[0])
			if err != nil {
				return err
			}
			return a.printOrder(cmd.OutOrStdout(), o)
		},
	}
}

func newOrderListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List active orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			orders, err := a.deps.Handlers.ListOrders.Handle(cmd.Context(), queries.NewListOrdersQuery())
			if err != nil {
				return err
			}
			return a.printOrders(cmd.OutOrStdout(), orders)
		},
	}
}

func newOrderFindCmd(a *app) *cobra.Command {
	var number, customer string

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Find orders by exact number or by part of the customer name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			switch {
			case cmd.Flags().Changed("number"):
				query, err := queries.NewFindOrderByNumberQuery(number)
				if err != nil {
					return err
				}
				o, err := a.deps.Handlers.FindOrderByNumber.Handle(cmd.Context(), query)
				if err != nil {
					return err
				}
				return a.printOrder(cmd.OutOrStdout(), o)
			case cmd.Flags().Changed("customer"):
				query, err := queries.NewFindOrdersByCustomerQuery(customer)
				if err != nil {
					return err
				}
				orders, err := a.deps.Handlers.FindOrdersByCustomer.Handle(cmd.Context(), query)
				if err != nil {
					return err
				}
				return a.printOrders(cmd.OutOrStdout(), orders)
			default:
				return errs.NewValueIsRequiredError("number or customer")
			}
		},
	}
	cmd.Flags().StringVar(&number, "number", "", "exact order number")
	cmd.Flags().StringVar(&customer, "customer", "", "part of the customer name, any case")
	cmd.MarkFlagsMutuallyExclusive("number", "customer")
	return cmd
}

func newOrderRemoveShipmentCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove-shipment <orderId> <shipmentId>",
		Short: "Detach the shipment from its order and delete it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			orderID, orderErr := kernel.ParseID(args[0], "orderId")
			shipmentID, shipmentErr := kernel.ParseID(args[1], "shipmentId")
			if err := errors.Join(orderErr, shipmentErr); err != nil {
				return err
			}

			command, err := commands.NewDeleteShipmentOfOrderCommand(orderID, shipmentID)
			if err != nil {
				return err
			}
			if err = a.deps.Handlers.DeleteShipmentOfOrder.Handle(cmd.Context(), command); err != nil {
				return err
			}

			a.log.InfoContext(cmd.Context(), "shipment removed from order",
				"order_id", orderID.Int64(), "shipment_id", shipmentID.Int64())
			return a.printDone(cmd.OutOrStdout(), fmt.Sprintf("shipment %s removed from order %s", shipmentID, orderID))
		},
	}
}

func (a *app) getOrder(cmd *cobra.Command, rawID string) (*order.Order, error) {
	id, err := kernel.ParseID(rawID, "id")
	if err != nil {
		return nil, err
	}
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return nil, err
	}
	return a.deps.Handlers.GetOrder.Handle(cmd.Context(), query)
}
