package cli_test

import (
	"bytes"
	"io"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sangkips/salgaderia-api/internal/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cliNow = time.Date(2026, 10, 15, 8, 30, 0, 0, time.UTC)

const storeYAML = `store:
  name: Salgaderia da Vila
  phone: (11) 3333-4444
  footer_message: Volte sempre!
products:
  - id: 11111111-1111-1111-1111-111111111111
    name: Coxinha
`

const orderJSON = `{
  "order_number": "0007",
  "created_at": "2026-10-14T17:05:00Z",
  "created_by": {"name": "Maria"},
  "customer": {"name": "Joana", "phone": "(11) 98765-4321"},
  "delivery": {"date": "15/10/2026", "time": "14:00"},
  "items": [
    {"product_id": "11111111-1111-1111-1111-111111111111", "name": "old", "category": "fritos", "quantity": 10, "unit_price": "1.00", "subtotal": "10.00"}
  ],
  "total": "10.00",
  "sinal": "10.00",
  "restante": "0",
  "payment_status": "pago"
}`

const ordersJSON = `[
  {"order_number": "1", "customer": {"name": "Ana"}, "delivery": {"date": "15/10/2026", "time": "16:00"},
   "items": [{"name": "Kibe", "is_manual": true, "category": "fritos", "quantity": 20}]},
  {"order_number": "2", "customer": {"name": "Bruno"}, "delivery": {"date": "15/10/2026", "time": "09:00"},
   "items": [{"name": "Kibe", "is_manual": true, "category": "fritos", "quantity": 5}]},
  {"order_number": "3", "customer": {"name": "Carla"}, "delivery": {"date": "16/10/2026", "time": "10:00"},
   "items": [{"name": "Empada", "is_manual": true, "category": "assados", "quantity": 50}]}
]`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest(func() time.Time { return cliNow })
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestTicketCommand(t *testing.T) {
	store := writeFile(t, "store.yaml", storeYAML)
	order := writeFile(t, "order.json", orderJSON)

	out, err := run(t, "ticket", order, "--settings", store, "--timezone", "UTC")
	require.NoError(t, err)

	assert.Contains(t, out, "Salgaderia da Vila")
	assert.Contains(t, out, "PEDIDO: #0007")
	assert.Contains(t, out, "10x Coxinha")
	assert.Contains(t, out, "RETIRADA:15/10/2026 quinta-feira as 14:00")
	assert.Contains(t, out, "*** PEDIDO PAGO ***")
	assert.Contains(t, out, "Volte sempre!")
}

func TestTicketCommand_DefaultSettings(t *testing.T) {
	order := writeFile(t, "order.json", orderJSON)

	out, err := run(t, "ticket", order)
	require.NoError(t, err)
	assert.Contains(t, out, "Salgaderia")
	// no catalog: the stored item name is used
	assert.Contains(t, out, "10x old")
}

func TestTicketCommand_WhatsApp(t *testing.T) {
	order := writeFile(t, "order.json", orderJSON)

	out, err := run(t, "ticket", order, "--whatsapp")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "https://wa.me/5511987654321?text="), out)
}

func TestTicketCommand_RejectsManyOrders(t *testing.T) {
	orders := writeFile(t, "orders.json", ordersJSON)

	_, err := run(t, "ticket", orders)
	assert.Error(t, err)
}

func TestTicketCommand_BadSettings(t *testing.T) {
	store := writeFile(t, "store.yaml", "products:\n  - id: nope\n    name: X\n")
	order := writeFile(t, "order.json", orderJSON)

	_, err := run(t, "ticket", order, "--settings", store)
	assert.Error(t, err)
}

func TestReminderCommand_FiltersToday(t *testing.T) {
	orders := writeFile(t, "orders.json", ordersJSON)

	out, err := run(t, "reminder", orders, "--timezone", "UTC")
	require.NoError(t, err)

	assert.Contains(t, out, "25    Kibe")
	assert.NotContains(t, out, "Empada")
	assert.Contains(t, out, "TOTAL DE SALGADOS: 25")
	assert.Less(t, strings.Index(out, "Bruno"), strings.Index(out, "Ana"))
	assert.True(t, strings.HasSuffix(out, strings.Repeat("=", 40)+"\n"), "reminder must end with a newline")
}

func TestReminderCommand_Date(t *testing.T) {
	orders := writeFile(t, "orders.json", ordersJSON)

	out, err := run(t, "reminder", orders, "--date", "16/10/2026")
	require.NoError(t, err)
	assert.Contains(t, out, "50    Empada")
	assert.NotContains(t, out, "Kibe")

	_, err = run(t, "reminder", orders, "--date", "2026-10-16")
	assert.Error(t, err)
}

func TestReminderCommand_All(t *testing.T) {
	orders := writeFile(t, "orders.json", ordersJSON)

	out, err := run(t, "reminder", orders, "--all")
	require.NoError(t, err)
	assert.Less(t, strings.Index(out, "50    Empada"), strings.Index(out, "25    Kibe"))
}

func TestReminderCommand_NetworkPrinter(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	received := make(chan []byte, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		data, _ := io.ReadAll(conn)
		received <- data
	}()

	orders := writeFile(t, "orders.json", ordersJSON)
	_, err = run(t, "reminder", orders, "--printer", "network", "--address", ln.Addr().String())
	require.NoError(t, err)

	select {
	case data := <-received:
		assert.Contains(t, string(data), "LEMBRETE DE PRODUCAO")
	case <-time.After(2 * time.Second):
		t.Fatal("printer received nothing")
	}
}

func TestUnknownPrinterType(t *testing.T) {
	orders := writeFile(t, "orders.json", ordersJSON)

	_, err := run(t, "reminder", orders, "--printer", "bluetooth")
	assert.Error(t, err)
}
