package cli

import (
	"fmt"

	"github.com/sangkips/salgaderia-api/internal/receipt"
	"github.com/spf13/cobra"
)

func newTicketCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "ticket <order.json>",
		Short: "Render the ticket of one order",
		Long:  "Render the 35-column ticket of an order read from a JSON file (\"-\" for stdin). With --whatsapp, print a link that sends the ticket to the customer phone.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, catalog, err := loadStore(opts.settingsPath)
			if err != nil {
				return err
			}

			orders, err := loadOrders(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			if len(orders) != 1 {
				return fmt.Errorf("ticket needs exactly one order, got %d", len(orders))
			}
			order := orders[0]

			loc, err := opts.location()
			if err != nil {
				return err
			}

			gen := receipt.NewGenerator(catalog, receipt.WithClock(opts.now), receipt.WithLocation(loc))
			doc, err := gen.Ticket(&order, settings)
			if err != nil {
				return err
			}

			return opts.deliver(cmd.Context(), cmd.OutOrStdout(), doc, order.Customer.Phone)
		},
	}
}
