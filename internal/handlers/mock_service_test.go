package handlers

import (
	"context"
	"time"

	"wirecalc/internal/electrical"
	"wirecalc/internal/models"
	"wirecalc/internal/service"

	"github.com/gin-gonic/gin"
)

// Hand-rolled service doubles for handler tests.

type mockAuth struct {
	signUpID  int
	signUpErr error
	token     string
	tokenErr  error
	parseID   int
	parseErr  error
}

func (m *mockAuth) SignUp(username, password string) (int, error) {
	return m.signUpID, m.signUpErr
}

func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	return m.token, m.tokenErr
}

func (m *mockAuth) ParseToken(accessToken string) (int, error) {
	return m.parseID, m.parseErr
}

type mockCalculator struct {
	inputResp models.CalculatorState
	inputErr  error
	gotInput  service.InputParams
	resetResp models.CalculatorState
	resetErr  error
	resets    int
}

func (m *mockCalculator) Input(_ context.Context, p service.InputParams) (models.CalculatorState, error) {
	m.gotInput = p
	return m.inputResp, m.inputErr
}

func (m *mockCalculator) Reset(_ context.Context) (models.CalculatorState, error) {
	m.resets++
	return m.resetResp, m.resetErr
}

type mockMonitoring struct {
	stateResp models.CalculatorState
	stateErr  error
}

func (m *mockMonitoring) GetState(_ context.Context) (models.CalculatorState, error) {
	return m.stateResp, m.stateErr
}

type mockLossTables struct {
	gaugesResp []electrical.GaugeResistance
	gaugesErr  error
	gotSystem  string

	tableResp electrical.LossTable
	tableErr  error
	gotParams service.LossParams
}

func (m *mockLossTables) Gauges(system string) ([]electrical.GaugeResistance, error) {
	m.gotSystem = system
	return m.gaugesResp, m.gaugesErr
}

func (m *mockLossTables) Table(_ context.Context, p service.LossParams) (electrical.LossTable, error) {
	m.gotParams = p
	return m.tableResp, m.tableErr
}

type mockEventLog struct {
	listResp  []models.CalcEvent
	listErr   error
	gotFilter service.LogFilter
}

func (m *mockEventLog) List(_ context.Context, f service.LogFilter) ([]models.CalcEvent, error) {
	m.gotFilter = f
	return m.listResp, m.listErr
}

type noopRetention struct{}

func (noopRetention) Run(context.Context, time.Duration) {}

// newTestRouter wires mocks into a full router. A nil mock leaves that
// sub-service absent, which is fine for routes the test never hits.
func newTestRouter(svc *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(svc, nil)
	return h.InitRoutes()
}

// authHeader is accepted by mockAuth regardless of its value.
const authHeader = "Bearer test-token"
