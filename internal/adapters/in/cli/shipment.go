package cli

import (
	"errors"
	"fmt"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/shipment"

	"github.com/spf13/cobra"
)

func newShipmentCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shipment",
		Short: "Create, change, delete and restore shipments",
	}
	cmd.AddCommand(newShipmentCreateCmd(a))
	cmd.AddCommand(newShipmentUpdateCmd(a))
	cmd.AddCommand(newShipmentDeleteCmd(a))
	cmd.AddCommand(newShipmentRestoreCmd(a))
	cmd.AddCommand(newShipmentGetCmd(a))
	cmd.AddCommand(newShipmentListCmd(a))
	cmd.AddCommand(newShipmentOverdueCmd(a))
	return cmd
}

func newShipmentCreateCmd(a *app) *cobra.Command {
	var (
		fields  shipmentFlags
		orderID string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a shipment, optionally attached to an order without one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var draft shipment.Shipment
			problems := []error{fields.apply(cmd, "", &draft)}
			if cmd.Flags().Changed("order-id") {
				id, err := kernel.ParseID(orderID, "orderId")
				problems = append(problems, err)
				draft.OrderID = id
			}
			if err := errors.Join(problems...); err != nil {
				return err
			}

			command, err := commands.NewCreateShipmentCommand(draft)
			if err != nil {
				return err
			}
			created, err := a.deps.Handlers.CreateShipment.Handle(cmd.Context(), command)
			if err != nil {
				return err
			}

			a.log.InfoContext(cmd.Context(), "shipment created", "shipment_id", created.ID.Int64(), "tracking", created.Tracking)
			return a.printShipment(cmd.OutOrStdout(), created)
		},
	}
	fields.register(cmd, "")
	cmd.Flags().StringVar(&orderID, "order-id", "", "owning order")
	return cmd
}

func newShipmentUpdateCmd(a *app) *cobra.Command {
	var fields shipmentFlags

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change the fields of a shipment; unset flags keep their value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := a.getShipment(cmd, args[0], false)
			if err != nil {
				return err
			}
			if err = fields.apply(cmd, "", current); err != nil {
				return err
			}

			command, err := commands.NewUpdateShipmentCommand(*current)
			if err != nil {
				return err
			}
			updated, err := a.deps.Handlers.UpdateShipment.Handle(cmd.Context(), command)
			if err != nil {
				return err
			}
			return a.printShipment(cmd.OutOrStdout(), updated)
		},
	}
	fields.register(cmd, "")
	return cmd
}

func newShipmentDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Soft-delete a shipment, leaving its order reference in place",
		Long: "Soft-delete a shipment directly. The owning order keeps referencing it and shows it as deleted " +
			"until it is restored. Use 'order remove-shipment' to detach it from its order instead.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := kernel.ParseID(args[0], "id")
			if err != nil {
				return err
			}
			command, err := commands.NewDeleteShipmentCommand(id)
			if err != nil {
				return err
			}
			if err = a.deps.Handlers.DeleteShipment.Handle(cmd.Context(), command); err != nil {
				return err
			}
			return a.printDone(cmd.OutOrStdout(), fmt.Sprintf("shipment %s deleted", id))
		},
	}
}

func newShipmentRestoreCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "restore <id>",
		Short: "Restore a soft-deleted shipment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := kernel.ParseID(args[0], "id")
			if err != nil {
				return err
			}
			command, err := commands.NewRestoreShipmentCommand(id)
			if err != nil {
				return err
			}
			if err = a.deps.Handlers.RestoreShipment.Handle(cmd.Context(), command); err != nil {
				return err
			}
			return a.printDone(cmd.OutOrStdout(), fmt.Sprintf("shipment %s restored", id))
		},
	}
}

func newShipmentGetCmd(a *app) *cobra.Command {
	var includeDeleted bool

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a shipment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.getShipment(cmd, args[0], includeDeleted)
			if err != nil {
				return err
			}
			return a.printShipment(cmd.OutOrStdout(), s)
		},
	}
	cmd.Flags().BoolVar(&includeDeleted, "include-deleted", false, "also find soft-deleted shipments")
	return cmd
}

func newShipmentListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List active shipments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			shipments, err := a.deps.Handlers.ListShipments.Handle(cmd.Context(), queries.NewListShipmentsQuery())
			if err != nil {
				return err
			}
			return a.printShipments(cmd.OutOrStdout(), shipments)
		},
	}
}

func newShipmentOverdueCmd(a *app) *cobra.Command {
	var asOf string

	cmd := &cobra.Command{
		Use:   "overdue",
		Short: "List undelivered shipments past their estimated arrival",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			date, err := parseAsOf(asOf)
			if err != nil {
				return err
			}
			query, err := queries.NewListOverdueShipmentsQuery(date)
			if err != nil {
				return err
			}
			overdue, err := a.deps.Handlers.ListOverdueShipments.Handle(cmd.Context(), query)
			if err != nil {
				return err
			}
			return a.printOverdue(cmd.OutOrStdout(), overdue)
		},
	}
	cmd.Flags().StringVar(&asOf, "as-of", "", "reference date (YYYY-MM-DD), today when empty")
	return cmd
}

func (a *app) getShipment(cmd *cobra.Command, rawID string, includeDeleted bool) (*shipment.Shipment, error) {
	id, err := kernel.ParseID(rawID, "id")
	if err != nil {
		return nil, err
	}
	query, err := queries.NewGetShipmentQuery(id, includeDeleted)
	if err != nil {
		return nil, err
	}
	return a.deps.Handlers.GetShipment.Handle(cmd.Context(), query)
}
