// Package cli implements bakeryctl, which renders tickets and production
// reminders from files without the API or a database.
package cli

import (
	"time"
	// --timezone must resolve on hosts without a zoneinfo database
	_ "time/tzdata"

	"github.com/spf13/cobra"
)

// options are the flags shared by every command.
type options struct {
	settingsPath string
	timezone     string
	printerType  string
	usbPath      string
	address      string
	timeout      time.Duration
	utf8         bool
	whatsapp     bool

	now func() time.Time
}

func newRootCmd(now func() time.Time) *cobra.Command {
	opts := &options{now: now}

	cmd := &cobra.Command{
		Use:           "bakeryctl",
		Short:         "Render order tickets and production reminders",
		Long:          "bakeryctl renders order tickets and the daily production reminder from JSON order files and a YAML store file, then prints them or builds a WhatsApp link.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.settingsPath, "settings", "s", "", "YAML file with store settings and product catalog")
	flags.StringVar(&opts.timezone, "timezone", "America/Sao_Paulo", "timezone used for printed timestamps")
	flags.StringVar(&opts.printerType, "printer", "", "send the document to a printer: usb or network")
	flags.StringVar(&opts.usbPath, "usb-path", "/dev/usb/lp0", "USB printer device file")
	flags.StringVar(&opts.address, "address", "", "network printer address (host:port)")
	flags.DurationVar(&opts.timeout, "timeout", 5*time.Second, "network printer timeout")
	flags.BoolVar(&opts.utf8, "utf8", false, "send accented text to the printer without transliteration")
	flags.BoolVar(&opts.whatsapp, "whatsapp", false, "print a WhatsApp link instead of the document")

	cmd.AddCommand(newTicketCmd(opts))
	cmd.AddCommand(newReminderCmd(opts))
	return cmd
}

// NewRootCmdForTest returns the root command with a fixed clock.
func NewRootCmdForTest(now func() time.Time) *cobra.Command {
	return newRootCmd(now)
}

// Execute runs bakeryctl.
func Execute() error {
	return newRootCmd(time.Now).Execute()
}
