package http_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpadapter "foodorder/internal/adapters/in/http"
	"foodorder/internal/adapters/out/postgres/pgerrs"
	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/sebdah/goldie/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	echo    *echo.Echo
	auth    *httpadapter.JWTAuthenticator
	metrics *httpadapter.Metrics

	placeOrder        *MockPlaceOrderHandler
	updateOrderStatus *MockUpdateOrderStatusHandler
	addMenuItem       *MockAddMenuItemHandler
	updateMenuItem    *MockUpdateMenuItemHandler
	createPartner     *MockCreatePartnerHandler
	listOrders        *MockListOrdersHandler
	getMenu           *MockGetMenuHandler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	auth, err := httpadapter.NewJWTAuthenticator("test-secret")
	require.NoError(t, err)

	f := &fixture{
		auth:              auth,
		metrics:           httpadapter.NewMetrics(),
		placeOrder:        &MockPlaceOrderHandler{},
		updateOrderStatus: &MockUpdateOrderStatusHandler{},
		addMenuItem:       &MockAddMenuItemHandler{},
		updateMenuItem:    &MockUpdateMenuItemHandler{},
		createPartner:     &MockCreatePartnerHandler{},
		listOrders:        &MockListOrdersHandler{},
		getMenu:           &MockGetMenuHandler{},
	}

	server := httpadapter.NewServer(
		f.placeOrder,
		f.updateOrderStatus,
		f.addMenuItem,
		f.updateMenuItem,
		f.createPartner,
		f.listOrders,
		f.getMenu,
		f.metrics,
	)

	f.echo, err = httpadapter.NewRouter(server, auth, f.metrics, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return f
}

func (f *fixture) token(t *testing.T, role httpadapter.Role, id int64) string {
	t.Helper()

	principal := httpadapter.Principal{Role: role, Name: "tester"}
	if id > 0 {
		principal.ID = kernel.MustNewID(id)
	}

	token, err := f.auth.IssueToken(principal)
	require.NoError(t, err)
	return token
}

func (f *fixture) do(method, path, token, body string, headers ...string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)
	return rec
}

func golden(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata"),
		goldie.WithNameSuffix(".golden.json"),
	)
}

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func storedOrder(t *testing.T, restaurantID, partnerID int64) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(
		kernel.MustNewID(12),
		kernel.MustNewID(3),
		kernel.MustNewID(restaurantID),
		kernel.MustNewID(7),
		kernel.MustNewID(partnerID),
		2,
		money(t, "100.00"),
		order.Placed,
		time.Now(),
	)
	require.NoError(t, err)
	return o
}

func TestPlaceOrder(t *testing.T) {
	const body = `{"restaurant_id":1,"item_id":7,"quantity":2,"user":{"phone":"+91-9000000002"}}`

	t.Run("should return the order and its partner", func(t *testing.T) {
		f := newFixture(t)
		f.placeOrder.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.PlaceOrderCommand) bool {
			return cmd.CustomerID().Int64() == 3 &&
				cmd.RestaurantID().Int64() == 1 &&
				cmd.ItemID().Int64() == 7 &&
				cmd.Quantity() == 2 &&
				cmd.Profile().Phone == "+91-9000000002" &&
				cmd.IdempotencyKey() == ""
		})).Return(commands.PlaceOrderResult{
			OrderID:    kernel.MustNewID(1),
			PartnerID:  kernel.MustNewID(2),
			TotalPrice: money(t, "100"),
		}, nil).Once()

		rec := f.do(http.MethodPost, "/place-order", f.token(t, httpadapter.RoleCustomer, 3), body)

		assert.Equal(t, http.StatusOK, rec.Code)
		golden(t).Assert(t, "place_order_ok", rec.Body.Bytes())
		f.placeOrder.AssertExpectations(t)
	})

	t.Run("should pass the idempotency key through", func(t *testing.T) {
		f := newFixture(t)
		f.placeOrder.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.PlaceOrderCommand) bool {
			return cmd.IdempotencyKey() == "retry-1"
		})).Return(commands.PlaceOrderResult{
			OrderID:    kernel.MustNewID(1),
			PartnerID:  kernel.MustNewID(2),
			TotalPrice: money(t, "100"),
		}, nil).Once()

		rec := f.do(http.MethodPost, "/place-order", f.token(t, httpadapter.RoleCustomer, 3), body,
			"Idempotency-Key", "retry-1")

		assert.Equal(t, http.StatusOK, rec.Code)
		f.placeOrder.AssertExpectations(t)
	})

	t.Run("should answer 503 when every partner is busy", func(t *testing.T) {
		f := newFixture(t)
		f.placeOrder.On("Handle", mock.Anything, mock.Anything).
			Return(commands.PlaceOrderResult{}, commands.ErrNoPartnerAvailable).Once()

		rec := f.do(http.MethodPost, "/place-order", f.token(t, httpadapter.RoleCustomer, 3), body)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		golden(t).Assert(t, "place_order_partners_busy", rec.Body.Bytes())
	})

	t.Run("should answer 503 when conflicts outlast the retries", func(t *testing.T) {
		f := newFixture(t)
		f.placeOrder.On("Handle", mock.Anything, mock.Anything).
			Return(commands.PlaceOrderResult{}, ports.ErrTransactionConflict).Once()

		rec := f.do(http.MethodPost, "/place-order", f.token(t, httpadapter.RoleCustomer, 3), body)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("should answer 409 on insufficient inventory", func(t *testing.T) {
		f := newFixture(t)
		f.placeOrder.On("Handle", mock.Anything, mock.Anything).
			Return(commands.PlaceOrderResult{}, menu.ErrInsufficientInventory).Once()

		rec := f.do(http.MethodPost, "/place-order", f.token(t, httpadapter.RoleCustomer, 3), body)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), `"success":false`)
	})

	t.Run("should answer 404 for an unknown item", func(t *testing.T) {
		f := newFixture(t)
		f.placeOrder.On("Handle", mock.Anything, mock.Anything).
			Return(commands.PlaceOrderResult{}, errs.NewObjectNotFoundError("menu item", "7")).Once()

		rec := f.do(http.MethodPost, "/place-order", f.token(t, httpadapter.RoleCustomer, 3), body)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("should hide storage failures", func(t *testing.T) {
		f := newFixture(t)
		f.placeOrder.On("Handle", mock.Anything, mock.Anything).
			Return(commands.PlaceOrderResult{}, errors.Join(ports.ErrStorageUnavailable, errors.New("dial tcp 10.0.0.5:5432"))).
			Once()

		rec := f.do(http.MethodPost, "/place-order", f.token(t, httpadapter.RoleCustomer, 3), body)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "10.0.0.5")
		golden(t).Assert(t, "internal_error", rec.Body.Bytes())
	})

	t.Run("should reject anonymous callers", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/place-order", "", body)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		golden(t).Assert(t, "unauthorized", rec.Body.Bytes())
		f.placeOrder.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("should reject a forged token", func(t *testing.T) {
		f := newFixture(t)
		other, err := httpadapter.NewJWTAuthenticator("another-secret")
		require.NoError(t, err)
		forged, err := other.IssueToken(httpadapter.Principal{Role: httpadapter.RoleCustomer, ID: kernel.MustNewID(3)})
		require.NoError(t, err)

		rec := f.do(http.MethodPost, "/place-order", forged, body)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("should reject callers that are not customers", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/place-order", f.token(t, httpadapter.RolePartner, 2), body)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		f.placeOrder.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("should reject a missing quantity before reaching the handler", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/place-order", f.token(t, httpadapter.RoleCustomer, 3),
			`{"restaurant_id":1,"item_id":7}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "quantity")
		f.placeOrder.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("should reject a zero quantity", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/place-order", f.token(t, httpadapter.RoleCustomer, 3),
			`{"restaurant_id":1,"item_id":7,"quantity":0}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should reject a quantity above the per-order cap", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/place-order", f.token(t, httpadapter.RoleCustomer, 3),
			`{"restaurant_id":1,"item_id":7,"quantity":1001}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "quantity")
		f.placeOrder.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("should answer 400 when the total does not fit the ledger", func(t *testing.T) {
		f := newFixture(t)
		overflow := pgerrs.Classify(&pgconn.PgError{
			Code:    pgerrs.CodeNumericValueOutOfRange,
			Message: "numeric field overflow",
		})
		f.placeOrder.On("Handle", mock.Anything, mock.Anything).
			Return(commands.PlaceOrderResult{}, overflow).Once()

		rec := f.do(http.MethodPost, "/place-order", f.token(t, httpadapter.RoleCustomer, 3), body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "numeric field overflow")
	})

	t.Run("should count outcomes", func(t *testing.T) {
		f := newFixture(t)
		f.placeOrder.On("Handle", mock.Anything, mock.Anything).
			Return(commands.PlaceOrderResult{}, commands.ErrNoPartnerAvailable).Once()

		f.do(http.MethodPost, "/place-order", f.token(t, httpadapter.RoleCustomer, 3), body)
		rec := f.do(http.MethodGet, "/metrics", "", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `foodorder_order_placements_total{outcome="no_partner"} 1`)
		assert.Contains(t, rec.Body.String(), `foodorder_http_requests_total{code="503",method="POST",route="/place-order"} 1`)
	})
}

func TestUpdateOrderStatus(t *testing.T) {
	t.Run("should scope partners to their own orders", func(t *testing.T) {
		f := newFixture(t)
		own := storedOrder(t, 1, 2)
		foreign := storedOrder(t, 1, 5)
		f.updateOrderStatus.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.UpdateOrderStatusCommand) bool {
			return cmd.OrderID().Int64() == 12 &&
				cmd.Status() == order.Dispatched &&
				cmd.Allows(own) &&
				!cmd.Allows(foreign)
		})).Return(nil).Once()

		rec := f.do(http.MethodPut, "/orders/12/status", f.token(t, httpadapter.RolePartner, 2),
			`{"status":"Dispatched"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		golden(t).Assert(t, "success", rec.Body.Bytes())
		f.updateOrderStatus.AssertExpectations(t)
	})

	t.Run("should scope restaurants to their own orders", func(t *testing.T) {
		f := newFixture(t)
		own := storedOrder(t, 1, 2)
		foreign := storedOrder(t, 4, 2)
		f.updateOrderStatus.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.UpdateOrderStatusCommand) bool {
			return cmd.Status() == order.Cancelled && cmd.Allows(own) && !cmd.Allows(foreign)
		})).Return(nil).Once()

		rec := f.do(http.MethodPut, "/orders/12/status", f.token(t, httpadapter.RoleRestaurant, 1),
			`{"status":"Cancelled"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		f.updateOrderStatus.AssertExpectations(t)
	})

	t.Run("should let admins address any order", func(t *testing.T) {
		f := newFixture(t)
		f.updateOrderStatus.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.UpdateOrderStatusCommand) bool {
			return cmd.Allows(storedOrder(t, 9, 9))
		})).Return(nil).Once()

		rec := f.do(http.MethodPut, "/orders/12/status", f.token(t, httpadapter.RoleAdmin, 0),
			`{"status":"Delivered"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("should reject an unknown status", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPut, "/orders/12/status", f.token(t, httpadapter.RoleAdmin, 0),
			`{"status":"Lost"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		f.updateOrderStatus.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("should reject a non-numeric order id", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPut, "/orders/abc/status", f.token(t, httpadapter.RoleAdmin, 0),
			`{"status":"Placed"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should answer 404 for an unknown order", func(t *testing.T) {
		f := newFixture(t)
		f.updateOrderStatus.On("Handle", mock.Anything, mock.Anything).
			Return(errs.NewObjectNotFoundError("order", "12")).Once()

		rec := f.do(http.MethodPut, "/orders/12/status", f.token(t, httpadapter.RoleAdmin, 0),
			`{"status":"Dispatched"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("should answer 409 for a transition outside the lifecycle", func(t *testing.T) {
		f := newFixture(t)
		f.updateOrderStatus.On("Handle", mock.Anything, mock.Anything).
			Return(order.ErrStatusTransitionNotAllowed).Once()

		rec := f.do(http.MethodPut, "/orders/12/status", f.token(t, httpadapter.RoleAdmin, 0),
			`{"status":"Placed"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("should refuse to deliver an order that was never dispatched", func(t *testing.T) {
		f := newFixture(t)
		placed := storedOrder(t, 1, 2)
		_, transitionErr := placed.ChangeStatus(order.Delivered, time.Now())
		require.ErrorIs(t, transitionErr, order.ErrStatusTransitionNotAllowed)
		f.updateOrderStatus.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.UpdateOrderStatusCommand) bool {
			return cmd.Status() == order.Delivered && cmd.Allows(placed)
		})).Return(transitionErr).Once()

		rec := f.do(http.MethodPut, "/orders/12/status", f.token(t, httpadapter.RolePartner, 2),
			`{"status":"Delivered"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
		golden(t).Assert(t, "placed_to_delivered", rec.Body.Bytes())
		assert.Equal(t, order.Placed, placed.Status())
	})

	t.Run("should not let customers change status", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPut, "/orders/12/status", f.token(t, httpadapter.RoleCustomer, 3),
			`{"status":"Cancelled"}`)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestListOrders(t *testing.T) {
	rows := []queries.ListOrdersQueryResponse{{
		ID:             12,
		CustomerID:     3,
		CustomerName:   "Asha",
		RestaurantID:   1,
		RestaurantName: "Spice Route",
		ItemID:         7,
		ItemName:       "Paneer Tikka",
		PartnerID:      2,
		PartnerName:    "Ravi",
		Quantity:       2,
		TotalPrice:     decimal.RequireFromString("100"),
		Status:         "Placed",
		CreatedAt:      time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}}

	t.Run("should list the customer's own orders", func(t *testing.T) {
		f := newFixture(t)
		f.listOrders.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ListOrdersQuery) bool {
			return q.Scope() == queries.ScopeCustomer && q.OwnerID().Int64() == 3
		})).Return(rows, nil).Once()

		rec := f.do(http.MethodGet, "/my-orders", f.token(t, httpadapter.RoleCustomer, 3), "")

		assert.Equal(t, http.StatusOK, rec.Code)
		golden(t).Assert(t, "list_orders", rec.Body.Bytes())
	})

	t.Run("should scope partner and restaurant views", func(t *testing.T) {
		f := newFixture(t)
		f.listOrders.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ListOrdersQuery) bool {
			return q.Scope() == queries.ScopePartner && q.OwnerID().Int64() == 2
		})).Return([]queries.ListOrdersQueryResponse{}, nil).Once()
		f.listOrders.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ListOrdersQuery) bool {
			return q.Scope() == queries.ScopeRestaurant && q.OwnerID().Int64() == 1
		})).Return(rows, nil).Once()

		rec := f.do(http.MethodGet, "/partner/me/orders", f.token(t, httpadapter.RolePartner, 2), "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true,"orders":[]}`, rec.Body.String())

		rec = f.do(http.MethodGet, "/restaurant/me/orders", f.token(t, httpadapter.RoleRestaurant, 1), "")
		assert.Equal(t, http.StatusOK, rec.Code)

		f.listOrders.AssertExpectations(t)
	})

	t.Run("should keep the full listing for admins", func(t *testing.T) {
		f := newFixture(t)
		f.listOrders.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ListOrdersQuery) bool {
			return q.Scope() == queries.ScopeAll
		})).Return(rows, nil).Once()

		rec := f.do(http.MethodGet, "/orders", f.token(t, httpadapter.RoleAdmin, 0), "")
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = f.do(http.MethodGet, "/orders", f.token(t, httpadapter.RoleCustomer, 3), "")
		assert.Equal(t, http.StatusForbidden, rec.Code)
		golden(t).Assert(t, "forbidden_customer", rec.Body.Bytes())
	})
}

func TestMenu(t *testing.T) {
	t.Run("should serve the menu without a token", func(t *testing.T) {
		f := newFixture(t)
		f.getMenu.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetMenuQuery) bool {
			return q.RestaurantID().Int64() == 1
		})).Return([]queries.GetMenuQueryResponse{{
			ID:       7,
			Name:     "Paneer Tikka",
			Price:    decimal.RequireFromString("50"),
			Quantity: 4,
		}}, nil).Once()

		rec := f.do(http.MethodGet, "/menu/1", "", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		golden(t).Assert(t, "get_menu", rec.Body.Bytes())
	})

	t.Run("should add an item for the calling restaurant", func(t *testing.T) {
		f := newFixture(t)
		f.addMenuItem.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.AddMenuItemCommand) bool {
			return cmd.RestaurantID().Int64() == 1 &&
				cmd.Name() == "Dal Makhani" &&
				cmd.Price().String() == "12.50" &&
				cmd.Quantity() == 10
		})).Return(kernel.MustNewID(9), nil).Once()

		rec := f.do(http.MethodPost, "/restaurant/me/menu", f.token(t, httpadapter.RoleRestaurant, 1),
			`{"name":"Dal Makhani","price":12.5,"quantity":10}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		golden(t).Assert(t, "add_menu_item", rec.Body.Bytes())
	})

	t.Run("should update an item of the calling restaurant", func(t *testing.T) {
		f := newFixture(t)
		f.updateMenuItem.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.UpdateMenuItemCommand) bool {
			return cmd.RestaurantID().Int64() == 1 && cmd.ItemID().Int64() == 7 && cmd.Price().String() == "75.00"
		})).Return(nil).Once()

		rec := f.do(http.MethodPut, "/restaurant/me/menu/7", f.token(t, httpadapter.RoleRestaurant, 1),
			`{"name":"Paneer Tikka","price":75,"quantity":3}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		f.updateMenuItem.AssertExpectations(t)
	})

	t.Run("should reject a negative price", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/restaurant/me/menu", f.token(t, httpadapter.RoleRestaurant, 1),
			`{"name":"Dal Makhani","price":-1,"quantity":10}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCreatePartner(t *testing.T) {
	f := newFixture(t)
	f.createPartner.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreatePartnerCommand) bool {
		return cmd.Name() == "Ravi" && cmd.Phone() == "+91-9000000001"
	})).Return(kernel.MustNewID(4), nil).Once()

	rec := f.do(http.MethodPost, "/partners", f.token(t, httpadapter.RoleAdmin, 0),
		`{"name":"Ravi","phone":"+91-9000000001"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"success":true,"partner_id":4}`, rec.Body.String())

	rec = f.do(http.MethodPost, "/partners", f.token(t, httpadapter.RoleRestaurant, 1), `{"name":"Ravi"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestOperationalEndpoints(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())

	rec = f.do(http.MethodGet, "/swagger/doc.json", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/place-order")

	rec = f.do(http.MethodGet, "/no-such-route", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}
