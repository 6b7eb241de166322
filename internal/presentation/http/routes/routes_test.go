package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/salgaderia-api/internal/application/service"
	"github.com/sangkips/salgaderia-api/internal/config"
	"github.com/sangkips/salgaderia-api/internal/domain/entity"
	"github.com/sangkips/salgaderia-api/internal/domain/enum"
	"github.com/sangkips/salgaderia-api/internal/presentation/http/handler"
	"github.com/sangkips/salgaderia-api/internal/presentation/http/routes"
	"github.com/sangkips/salgaderia-api/pkg/printer"
	"github.com/sangkips/salgaderia-api/pkg/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testNow   = time.Date(2026, 10, 15, 8, 30, 0, 0, time.UTC)
	coxinhaID = uuid.MustParse("11111111-1111-1111-1111-111111111111")
)

type testApp struct {
	router *gin.Engine
	orders *fakeOrderRepo
	token  string
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  json.RawMessage `json:"errors"`
}

func newTestApp(t *testing.T, p printer.Printer) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := utils.HashPassword("segredo123")
	require.NoError(t, err)

	operators := newFakeOperatorRepo(entity.Operator{
		Name:     "Maria",
		Email:    "maria@salgaderia.local",
		Password: hash,
		Active:   true,
	})
	orders := newFakeOrderRepo()
	products := newFakeProductRepo(entity.Product{
		ID:       coxinhaID,
		Name:     "Coxinha",
		Category: enum.CategoryFritos,
		Price:    decimal.RequireFromString("1.50"),
		Active:   true,
	})
	settingsRepo := &fakeSettingsRepo{}

	cfg := &config.Config{
		App:       config.AppConfig{Name: "salgaderia-api"},
		RateLimit: config.RateLimitConfig{Requests: 1000, Duration: 1},
	}
	jwtManager := utils.NewJWTManager("test-secret", time.Hour)

	settingsService := service.NewSettingsService(settingsRepo)
	printerService := service.NewPrinterService(p, true)
	receiptService := service.NewReceiptService(orders, products, settingsService, printerService, time.UTC).
		WithClock(func() time.Time { return testNow })

	stop := make(chan struct{})
	t.Cleanup(func() { close(stop) })

	router := routes.Setup(&routes.Handlers{
		Auth:     handler.NewAuthHandler(service.NewAuthService(operators, jwtManager)),
		Settings: handler.NewSettingsHandler(settingsService),
		Product:  handler.NewProductHandler(service.NewProductService(products), 1<<20),
		Order:    handler.NewOrderHandler(service.NewOrderService(orders, products)),
		Receipt:  handler.NewReceiptHandler(receiptService),
		Printer:  handler.NewPrinterHandler(printerService),
	}, &routes.Deps{JWTManager: jwtManager, Cfg: cfg, Stop: stop})

	app := &testApp{router: router, orders: orders}
	app.token = app.login(t)
	return app
}

func (a *testApp) do(method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) login(t *testing.T) string {
	t.Helper()
	w := a.do(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "maria@salgaderia.local",
		"password": "segredo123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var data struct {
		AccessToken string `json:"access_token"`
	}
	decode(t, w, &data)
	require.NotEmpty(t, data.AccessToken)
	return data.AccessToken
}

func decode(t *testing.T, w *httptest.ResponseRecorder, data any) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	if data != nil {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}

func (a *testApp) createOrder(t *testing.T) entity.Order {
	t.Helper()
	w := a.do(http.MethodPost, "/api/v1/orders", map[string]any{
		"customer": map[string]string{"name": "Joana", "phone": "(11) 98765-4321"},
		"delivery": map[string]string{"date": "15/10/2026", "time": "14:00"},
		"sinal":    "5",
		"items": []map[string]any{
			{"product_id": coxinhaID.String(), "quantity": 10},
			{"name": "Bolo de cenoura", "category": "bolos", "quantity": 1, "unit_price": "30.00"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var order entity.Order
	decode(t, w, &order)
	return order
}

func TestHealth(t *testing.T) {
	app := newTestApp(t, nil)

	w := app.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "salgaderia-api")
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app := newTestApp(t, nil)
	app.token = ""

	w := app.do(http.MethodGet, "/api/v1/orders", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	app.token = "garbage"
	w = app.do(http.MethodGet, "/api/v1/profile", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_WrongPassword(t *testing.T) {
	app := newTestApp(t, nil)
	app.token = ""

	w := app.do(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "maria@salgaderia.local",
		"password": "errada123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProfile(t *testing.T) {
	app := newTestApp(t, nil)

	w := app.do(http.MethodGet, "/api/v1/profile", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var op entity.Operator
	decode(t, w, &op)
	assert.Equal(t, "Maria", op.Name)
}

func TestCreateOrder_RecordsOperatorAndTotals(t *testing.T) {
	app := newTestApp(t, nil)

	order := app.createOrder(t)
	assert.Equal(t, "Maria", order.CreatedBy.Name)
	require.NotNil(t, order.CreatedBy.ID)
	assert.True(t, order.Total.Equal(decimal.RequireFromString("45")), order.Total.String())
	assert.True(t, order.Restante.Equal(decimal.RequireFromString("40")), order.Restante.String())
	assert.Equal(t, enum.PaymentStatusPending, order.PaymentStatus)
}

func TestCreateOrder_Invalid(t *testing.T) {
	app := newTestApp(t, nil)

	w := app.do(http.MethodPost, "/api/v1/orders", map[string]any{
		"customer": map[string]string{"name": "Joana"},
		"items":    []map[string]any{},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = app.do(http.MethodPost, "/api/v1/orders", map[string]any{
		"customer": map[string]string{"name": "Joana"},
		"delivery": map[string]string{"date": "2026-10-15"},
		"items":    []map[string]any{{"product_id": coxinhaID.String(), "quantity": 1}},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "delivery.date")
}

func TestOrderLifecycle(t *testing.T) {
	app := newTestApp(t, nil)
	order := app.createOrder(t)
	path := "/api/v1/orders/" + order.ID.String()

	w := app.do(http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = app.do(http.MethodGet, "/api/v1/orders?payment_status=pendente&delivery_date=15/10/2026", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), order.ID.String())

	w = app.do(http.MethodGet, "/api/v1/orders?payment_status=talvez", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = app.do(http.MethodPut, path+"/payment", map[string]string{"payment_status": "pago"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var paid entity.Order
	decode(t, w, &paid)
	assert.Equal(t, enum.PaymentStatusPaid, paid.PaymentStatus)
	assert.True(t, paid.Restante.IsZero())

	w = app.do(http.MethodDelete, path, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = app.do(http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = app.do(http.MethodGet, "/api/v1/orders/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTicket_JSONAndText(t *testing.T) {
	app := newTestApp(t, nil)
	order := app.createOrder(t)
	path := "/api/v1/receipts/orders/" + order.ID.String() + "/ticket"

	w := app.do(http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var doc struct {
		Kind  string `json:"kind"`
		Width int    `json:"width"`
		Text  string `json:"text"`
	}
	decode(t, w, &doc)
	assert.Equal(t, "ticket", doc.Kind)
	assert.Equal(t, 35, doc.Width)
	assert.Contains(t, doc.Text, "10x Coxinha")

	w = app.do(http.MethodGet, path+"?format=text", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/plain"))
	assert.Contains(t, w.Body.String(), "ATENDENTE: Maria")

	w = app.do(http.MethodGet, path, nil, "Accept", "text/plain")
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/plain"))

	w = app.do(http.MethodGet, "/api/v1/receipts/orders/"+uuid.NewString()+"/ticket", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestShareTicket(t *testing.T) {
	app := newTestApp(t, nil)
	order := app.createOrder(t)

	w := app.do(http.MethodGet, "/api/v1/receipts/orders/"+order.ID.String()+"/whatsapp", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var link service.ShareLink
	decode(t, w, &link)
	assert.True(t, strings.HasPrefix(link.URL, "https://wa.me/5511987654321?text="), link.URL)
}

func TestReminder(t *testing.T) {
	app := newTestApp(t, nil)
	app.createOrder(t)

	w := app.do(http.MethodGet, "/api/v1/receipts/reminder?format=text", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "10    Coxinha")
	assert.Contains(t, w.Body.String(), "CLIENTE: Joana")

	w = app.do(http.MethodGet, "/api/v1/receipts/reminder?format=text&date=16/10/2026", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "Joana")

	w = app.do(http.MethodGet, "/api/v1/receipts/reminder?date=amanha", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = app.do(http.MethodGet, "/api/v1/receipts/reminder/whatsapp", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "https://wa.me/?text=")
}

type recordingPrinter struct {
	jobs [][]byte
	err  error
}

func (p *recordingPrinter) Print(_ context.Context, data []byte) error {
	if p.err != nil {
		return p.err
	}
	p.jobs = append(p.jobs, data)
	return nil
}

func (p *recordingPrinter) IsConnected() bool { return p.err == nil }
func (p *recordingPrinter) Type() string      { return printer.TypeNetwork }

func TestPrintTicket(t *testing.T) {
	p := &recordingPrinter{}
	app := newTestApp(t, p)
	order := app.createOrder(t)

	w := app.do(http.MethodPost, "/api/v1/receipts/orders/"+order.ID.String()+"/print", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"printed":true`)
	require.Len(t, p.jobs, 1)
	assert.Contains(t, string(p.jobs[0]), "10x Coxinha")
}

func TestPrintReminder_PrinterDown(t *testing.T) {
	p := &recordingPrinter{err: errors.New("connection refused")}
	app := newTestApp(t, p)
	app.createOrder(t)

	w := app.do(http.MethodPost, "/api/v1/receipts/reminder/print", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"printed":false`)
	assert.Contains(t, w.Body.String(), "LEMBRETE DE PRODUCAO")
}

func TestPrinterEndpoints_NoPrinter(t *testing.T) {
	app := newTestApp(t, nil)

	w := app.do(http.MethodGet, "/api/v1/printer/status", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var status service.PrinterStatus
	decode(t, w, &status)
	assert.False(t, status.Configured)
	assert.Equal(t, printer.TypeNone, status.Type)

	w = app.do(http.MethodPost, "/api/v1/printer/test", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"printed":false`)
	assert.Contains(t, w.Body.String(), "TESTE DE IMPRESSAO")
}

func TestSettings(t *testing.T) {
	app := newTestApp(t, nil)

	w := app.do(http.MethodGet, "/api/v1/settings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var s entity.StoreSettings
	decode(t, w, &s)
	assert.Equal(t, entity.DefaultStoreName, s.Name)

	w = app.do(http.MethodPut, "/api/v1/settings", map[string]any{
		"name":             "Salgaderia da Vila",
		"print_unit_price": true,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	decode(t, w, &s)
	assert.Equal(t, "Salgaderia da Vila", s.Name)
	assert.True(t, s.PrintUnitPrice)
}

func TestProducts(t *testing.T) {
	app := newTestApp(t, nil)

	w := app.do(http.MethodPost, "/api/v1/products", map[string]any{
		"name":     "Empada",
		"category": "assados",
		"price":    "4.50",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var p entity.Product
	decode(t, w, &p)

	w = app.do(http.MethodGet, "/api/v1/products/"+p.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = app.do(http.MethodGet, "/api/v1/products?category=assados", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Empada")
	assert.NotContains(t, w.Body.String(), "Coxinha")

	w = app.do(http.MethodDelete, "/api/v1/products/"+p.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = app.do(http.MethodGet, "/api/v1/products/"+p.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestImportProducts_RejectsOtherFormats(t *testing.T) {
	app := newTestApp(t, nil)

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	fw, err := mw.CreateFormFile("file", "produtos.csv")
	require.NoError(t, err)
	_, _ = fw.Write([]byte("name,category,price\n"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/products/import", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+app.token)
	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), ".xlsx")
}

func TestRequestIDEchoed(t *testing.T) {
	app := newTestApp(t, nil)

	w := app.do(http.MethodGet, "/api/v1/profile", nil, "X-Request-ID", "abc-123")
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
	assert.Contains(t, w.Body.String(), `"request_id":"abc-123"`)
}
