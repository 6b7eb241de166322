package cli

import (
	"fmt"
	"time"

	"github.com/sangkips/salgaderia-api/internal/domain/entity"
	"github.com/sangkips/salgaderia-api/internal/receipt"
	"github.com/spf13/cobra"
)

func newReminderCmd(opts *options) *cobra.Command {
	var (
		date string
		all  bool
	)

	cmd := &cobra.Command{
		Use:   "reminder <orders.json>",
		Short: "Render the production reminder",
		Long:  "Render the 40-column production reminder for the orders picked up on a date (today by default), read from a JSON array (\"-\" for stdin).",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, catalog, err := loadStore(opts.settingsPath)
			if err != nil {
				return err
			}

			orders, err := loadOrders(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}

			loc, err := opts.location()
			if err != nil {
				return err
			}

			if !all {
				if date == "" {
					date = receipt.FormatDeliveryDate(opts.now().In(loc))
				} else if _, err := time.Parse("02/01/2006", date); err != nil {
					return fmt.Errorf("invalid --date %q, use DD/MM/YYYY", date)
				}
				orders = pickedUpOn(orders, date)
			}

			gen := receipt.NewGenerator(catalog, receipt.WithClock(opts.now), receipt.WithLocation(loc))
			return opts.deliver(cmd.Context(), cmd.OutOrStdout(), gen.Reminder(orders), "")
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "pickup date DD/MM/YYYY (default today)")
	cmd.Flags().BoolVar(&all, "all", false, "include every order in the file regardless of pickup date")
	return cmd
}

func pickedUpOn(orders []entity.Order, date string) []entity.Order {
	var out []entity.Order
	for _, o := range orders {
		if o.Delivery.Date == date {
			out = append(out, o)
		}
	}
	return out
}
