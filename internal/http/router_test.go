package router

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshbox-tech/Freshbox-admin/internal/middlewares"
	"github.com/freshbox-tech/Freshbox-admin/internal/models"
	mock_models "github.com/freshbox-tech/Freshbox-admin/internal/models/mocks"
	"github.com/freshbox-tech/Freshbox-admin/internal/services"
	"github.com/freshbox-tech/Freshbox-admin/internal/utils"
)

type routerMocks struct {
	auth     *mock_models.MockAuthService
	jwt      *mock_models.MockJWTService
	orders   *mock_models.MockOrderService
	riders   *mock_models.MockRiderService
	areas    *mock_models.MockAreaService
	catalog  *mock_models.MockCatalogService
	customer *mock_models.MockCustomerService
	tickets  *mock_models.MockTicketService
	chats    *mock_models.MockChatService
	reports  *mock_models.MockReportService
}

func newTestServer(ctrl *gomock.Controller) (*httptest.Server, *routerMocks) {
	mocks := &routerMocks{
		auth:     mock_models.NewMockAuthService(ctrl),
		jwt:      mock_models.NewMockJWTService(ctrl),
		orders:   mock_models.NewMockOrderService(ctrl),
		riders:   mock_models.NewMockRiderService(ctrl),
		areas:    mock_models.NewMockAreaService(ctrl),
		catalog:  mock_models.NewMockCatalogService(ctrl),
		customer: mock_models.NewMockCustomerService(ctrl),
		tickets:  mock_models.NewMockTicketService(ctrl),
		chats:    mock_models.NewMockChatService(ctrl),
		reports:  mock_models.NewMockReportService(ctrl),
	}

	server := httptest.NewServer(New(Config{}, middlewares.Services{
		Auth:     mocks.auth,
		JWT:      mocks.jwt,
		Orders:   mocks.orders,
		Riders:   mocks.riders,
		Areas:    mocks.areas,
		Catalog:  mocks.catalog,
		Customer: mocks.customer,
		Tickets:  mocks.tickets,
		Chats:    mocks.chats,
		Reports:  mocks.reports,
	}).get())

	return server, mocks
}

// expectSession satisfies the auth middleware for one request carrying the
// "token" cookie.
func expectSession(mocks *routerMocks) {
	mocks.jwt.EXPECT().ValidateToken("token").Return(&jwt.Token{
		Claims: jwt.MapClaims{"sub": "ops@freshbox.test"},
	}, nil)
	mocks.auth.EXPECT().GetAdmin(gomock.Any(), "ops@freshbox.test").Return(&models.Admin{
		ID:    "ADM-1",
		Email: "ops@freshbox.test",
	}, nil)
}

func sessionHeaders() map[string]string {
	return map[string]string{
		"Content-Type": "application/json",
		"Cookie":       "token=token",
	}
}

func TestOrderRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	testServer, mocks := newTestServer(ctrl)
	defer testServer.Close()

	testCases := []struct {
		testName        string
		methodName      string
		targetURL       string
		headers         map[string]string
		body            func() io.Reader
		test            func(t *testing.T)
		expectedCode    int
		expectedMessage string
		checkBody       func(t *testing.T, body string)
	}{
		{
			testName:        "Should reject a request without a session token",
			methodName:      "GET",
			targetURL:       "/api/orders/",
			headers:         map[string]string{"Content-Type": "application/json"},
			expectedCode:    http.StatusUnauthorized,
			expectedMessage: `{"message":"Authentication required","success":false}`,
		},
		{
			testName:   "Should return the order collection",
			methodName: "GET",
			targetURL:  "/api/orders/",
			headers:    sessionHeaders(),
			test: func(t *testing.T) {
				expectSession(mocks)
				mocks.orders.EXPECT().GetOrders(gomock.Any()).Return([]models.Order{}, nil)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: `{"orders":[],"success":true}`,
		},
		{
			testName:   "Should assign an order to an eligible rider",
			methodName: "PUT",
			targetURL:  "/api/orders/assign-order/R-1/ORD-1",
			headers:    sessionHeaders(),
			test: func(t *testing.T) {
				expectSession(mocks)
				mocks.orders.EXPECT().AssignOrder(gomock.Any(), "R-1", "ORD-1").Return(nil)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: `{"message":"Order assigned","success":true}`,
		},
		{
			testName:   "Should return conflict when the order already left assignment",
			methodName: "PUT",
			targetURL:  "/api/orders/assign-order/R-1/ORD-1",
			headers:    sessionHeaders(),
			test: func(t *testing.T) {
				expectSession(mocks)
				mocks.orders.EXPECT().AssignOrder(gomock.Any(), "R-1", "ORD-1").Return(services.ErrOrderNotPending)
			},
			expectedCode:    http.StatusConflict,
			expectedMessage: `{"message":"Order is not awaiting assignment","success":false}`,
		},
		{
			testName:   "Should return conflict for an ineligible rider",
			methodName: "PUT",
			targetURL:  "/api/orders/assign-order/R-3/ORD-1",
			headers:    sessionHeaders(),
			test: func(t *testing.T) {
				expectSession(mocks)
				mocks.orders.EXPECT().AssignOrder(gomock.Any(), "R-3", "ORD-1").Return(services.ErrRiderNotEligible)
			},
			expectedCode:    http.StatusConflict,
			expectedMessage: `{"message":"Rider is not eligible for this order","success":false}`,
		},
		{
			testName:   "Should reject an unknown status code",
			methodName: "PUT",
			targetURL:  "/api/orders/update-step/ORD-1",
			headers:    sessionHeaders(),
			body: func() io.Reader {
				data, _ := json.Marshal(models.StatusUpdate{Status: "shipped"})
				return bytes.NewBuffer(data)
			},
			test: func(t *testing.T) {
				expectSession(mocks)
				mocks.orders.EXPECT().
					UpdateStep(gomock.Any(), "ORD-1", models.StatusUpdate{Status: "shipped"}).
					Return(nil, models.ErrUnknownStatus)
			},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: `{"message":"Unknown status \"shipped\"","success":false}`,
		},
		{
			testName:   "Should append a step and return the reloaded order",
			methodName: "PUT",
			targetURL:  "/api/orders/update-step/ORD-1",
			headers:    sessionHeaders(),
			body: func() io.Reader {
				data, _ := json.Marshal(models.StatusUpdate{Status: "ready", Note: "folded"})
				return bytes.NewBuffer(data)
			},
			test: func(t *testing.T) {
				expectSession(mocks)
				mocks.orders.EXPECT().
					UpdateStep(gomock.Any(), "ORD-1", models.StatusUpdate{Status: "ready", Note: "folded"}).
					Return(&models.Order{ID: "ORD-1", Status: models.StatusReady}, nil)
			},
			expectedCode: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp struct {
					Success bool         `json:"success"`
					Order   models.Order `json:"order"`
				}
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				assert.True(t, resp.Success)
				assert.Equal(t, "ORD-1", resp.Order.ID)
				assert.Equal(t, models.StatusReady, resp.Order.Status)
			},
		},
		{
			testName:   "Should list eligible riders for an order",
			methodName: "GET",
			targetURL:  "/api/orders/eligible-riders/ORD-1",
			headers:    sessionHeaders(),
			test: func(t *testing.T) {
				expectSession(mocks)
				mocks.orders.EXPECT().GetEligibleRiders(gomock.Any(), "ORD-1").Return([]models.Rider{}, nil)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: `{"riders":[],"success":true}`,
		},
		{
			testName:   "Should return not found for an unknown order",
			methodName: "GET",
			targetURL:  "/api/orders/eligible-riders/ORD-404",
			headers:    sessionHeaders(),
			test: func(t *testing.T) {
				expectSession(mocks)
				mocks.orders.EXPECT().GetEligibleRiders(gomock.Any(), "ORD-404").Return(nil, services.ErrOrderIsNotExist)
			},
			expectedCode:    http.StatusNotFound,
			expectedMessage: `{"message":"Order does not exist","success":false}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			var body io.Reader

			if tc.body != nil {
				body = tc.body()
			}

			if tc.test != nil {
				tc.test(t)
			}

			res, mes := utils.TestRequest(t, testServer, tc.methodName, tc.targetURL, tc.headers, body)
			res.Body.Close()

			assert.Equal(t, tc.expectedCode, res.StatusCode)
			if tc.checkBody != nil {
				tc.checkBody(t, mes)
			} else {
				assert.Equal(t, tc.expectedMessage, mes)
			}
		})
	}
}

func TestLoginRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	testServer, mocks := newTestServer(ctrl)
	defer testServer.Close()

	email := "ops@freshbox.test"
	password := "secret"

	t.Run("Should reject missing credentials", func(t *testing.T) {
		data, _ := json.Marshal(models.Credentials{Email: &email})
		res, mes := utils.TestRequest(t, testServer, "POST", "/api/admin/login",
			map[string]string{"Content-Type": "application/json"}, bytes.NewBuffer(data))
		res.Body.Close()

		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Equal(t, `{"message":"Request doesn't contain email or password","success":false}`, mes)
	})

	t.Run("Should reject wrong credentials", func(t *testing.T) {
		mocks.auth.EXPECT().
			Login(gomock.Any(), models.Credentials{Email: &email, Password: &password}).
			Return(nil, services.ErrPasswordIsIncorrect)

		data, _ := json.Marshal(models.Credentials{Email: &email, Password: &password})
		res, mes := utils.TestRequest(t, testServer, "POST", "/api/admin/login",
			map[string]string{"Content-Type": "application/json"}, bytes.NewBuffer(data))
		res.Body.Close()

		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
		assert.Equal(t, `{"message":"Invalid email or password","success":false}`, mes)
	})

	t.Run("Should log in and set the session cookie", func(t *testing.T) {
		mocks.auth.EXPECT().
			Login(gomock.Any(), models.Credentials{Email: &email, Password: &password}).
			Return(&models.Admin{ID: "ADM-1", Email: email}, nil)
		mocks.jwt.EXPECT().GenerateJWT(email).Return("token", nil)

		data, _ := json.Marshal(models.Credentials{Email: &email, Password: &password})
		res, mes := utils.TestRequest(t, testServer, "POST", "/api/admin/login",
			map[string]string{"Content-Type": "application/json"}, bytes.NewBuffer(data))
		res.Body.Close()

		assert.Equal(t, http.StatusOK, res.StatusCode)

		var resp struct {
			Success bool         `json:"success"`
			Token   string       `json:"token"`
			User    models.Admin `json:"user"`
		}
		require.NoError(t, json.Unmarshal([]byte(mes), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "token", resp.Token)
		assert.Equal(t, "ADM-1", resp.User.ID)

		var sessionCookie *http.Cookie
		for _, cookie := range res.Cookies() {
			if cookie.Name == "token" {
				sessionCookie = cookie
			}
		}
		require.NotNil(t, sessionCookie)
		assert.Equal(t, "token", sessionCookie.Value)
		assert.True(t, sessionCookie.HttpOnly)
	})
}

func TestRiderRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	testServer, mocks := newTestServer(ctrl)
	defer testServer.Close()

	t.Run("Should list riders", func(t *testing.T) {
		expectSession(mocks)
		mocks.riders.EXPECT().GetRiders(gomock.Any()).Return([]models.Rider{}, nil)

		res, mes := utils.TestRequest(t, testServer, "GET", "/api/rider/", sessionHeaders(), nil)
		res.Body.Close()

		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Equal(t, `{"riders":[],"success":true}`, mes)
	})

	t.Run("Should reject a malformed online flag", func(t *testing.T) {
		expectSession(mocks)

		res, mes := utils.TestRequest(t, testServer, "PUT", "/api/rider/online/R-1/maybe", sessionHeaders(), nil)
		res.Body.Close()

		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Equal(t, `{"message":"Online flag must be true or false","success":false}`, mes)
	})

	t.Run("Should flip the online flag", func(t *testing.T) {
		expectSession(mocks)
		mocks.riders.EXPECT().SetOnline(gomock.Any(), "R-1", true).Return(nil)

		res, mes := utils.TestRequest(t, testServer, "PUT", "/api/rider/online/R-1/true", sessionHeaders(), nil)
		res.Body.Close()

		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Equal(t, `{"success":true}`, mes)
	})
}

func TestChatRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	testServer, mocks := newTestServer(ctrl)
	defer testServer.Close()

	t.Run("Should create the channel", func(t *testing.T) {
		expectSession(mocks)
		mocks.chats.EXPECT().CreateChannel(gomock.Any(), "ORD-1", "R-1").Return(nil)

		data, _ := json.Marshal(models.ChatRequest{OrderID: "ORD-1", RiderID: "R-1"})
		res, mes := utils.TestRequest(t, testServer, "POST", "/api/chat/create", sessionHeaders(), bytes.NewBuffer(data))
		res.Body.Close()

		assert.Equal(t, http.StatusCreated, res.StatusCode)
		assert.Equal(t, `{"success":true}`, mes)
	})

	t.Run("Should reject a request missing the pair", func(t *testing.T) {
		expectSession(mocks)

		data, _ := json.Marshal(models.ChatRequest{OrderID: "ORD-1"})
		res, mes := utils.TestRequest(t, testServer, "POST", "/api/chat/create", sessionHeaders(), bytes.NewBuffer(data))
		res.Body.Close()

		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Equal(t, `{"message":"Request doesn't contain orderId or riderId","success":false}`, mes)
	})
}

func TestAreaRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	testServer, mocks := newTestServer(ctrl)
	defer testServer.Close()

	t.Run("Should refuse deleting a referenced area", func(t *testing.T) {
		expectSession(mocks)
		mocks.areas.EXPECT().DeleteArea(gomock.Any(), "SA-1").Return(services.ErrAreaIsReferenced)

		res, mes := utils.TestRequest(t, testServer, "DELETE", "/api/serviceArea/SA-1", sessionHeaders(), nil)
		res.Body.Close()

		assert.Equal(t, http.StatusConflict, res.StatusCode)
		assert.Equal(t, `{"message":"Service area is referenced by riders or services","success":false}`, mes)
	})

	t.Run("Should delete an unreferenced area", func(t *testing.T) {
		expectSession(mocks)
		mocks.areas.EXPECT().DeleteArea(gomock.Any(), "SA-1").Return(nil)

		res, mes := utils.TestRequest(t, testServer, "DELETE", "/api/serviceArea/SA-1", sessionHeaders(), nil)
		res.Body.Close()

		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Equal(t, `{"success":true}`, mes)
	})
}

func TestReportsRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	testServer, mocks := newTestServer(ctrl)
	defer testServer.Close()

	expectSession(mocks)
	mocks.reports.EXPECT().Summary(gomock.Any()).Return(&models.DashboardSummary{
		Customers: 3,
		Orders:    2,
		Revenue:   25,
	}, nil)

	res, mes := utils.TestRequest(t, testServer, "GET", "/api/reports/summary", sessionHeaders(), nil)
	res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)

	var resp struct {
		Success bool                    `json:"success"`
		Summary models.DashboardSummary `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(mes), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 3, resp.Summary.Customers)
	assert.Equal(t, 25.0, resp.Summary.Revenue)
}
