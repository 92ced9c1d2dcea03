package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/budget-dashboard/backend/config"
	"github.com/budget-dashboard/backend/internal/infra/dependency"
	"github.com/budget-dashboard/backend/internal/integration/persistence/model"
	"github.com/budget-dashboard/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

const dateLayout = "2006-01-02"

var tags string

func init() {
	flag.StringVar(&tags, "scenarios", "", "tags to run")
}

func TestFeatures(t *testing.T) {
	flag.Parse()

	suite := godog.TestSuite{
		Name: "budget-dashboard-api",
		ScenarioInitializer: func(s *godog.ScenarioContext) {
			InitializeScenario(s)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			Tags:     tags,
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type testContext struct {
	uri           string
	headers       map[string]string
	client        *http.Client
	response      *response
	db            *mock.Db
	redis         *mock.Redis
	timeMock      *mock.Time
	accessToken   string
	currentUserID uuid.UUID
	currentGoalID uuid.UUID
}

type response struct {
	status int
	body   any
}

var serverInit sync.Once
var testServerPort int
var portInit sync.Once
var clock = mock.NewTime()

func initializeEnvironment() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
		_ = os.Setenv("JWT_SECRET", testJWTSecret)
		_ = os.Setenv("JWT_ISSUER", "")
		_ = os.Setenv("AI_EXPLANATIONS_ENABLED", "false")
	})
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	initializeEnvironment()

	test := &testContext{
		uri:      fmt.Sprintf("http://localhost:%d", testServerPort),
		client:   &http.Client{Timeout: 10 * time.Second},
		timeMock: clock,
		redis:    mock.NewRedis(),
		db: mock.NewDb(map[string]any{
			"budgets":       &model.BudgetModel{},
			"expenses":      &model.ExpenseModel{},
			"savings_goals": &model.SavingsGoalModel{},
		}),
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^today is "([^"]*)"$`, test.todayIs)

	// Auth steps
	ctx.Given(`^I am authenticated$`, test.iAmAuthenticated)
	ctx.Given(`^I am authenticated with an expired token$`, test.iAmAuthenticatedWithAnExpiredToken)

	// Data setup steps
	ctx.Given(`^my monthly budget is "([^"]*)"$`, test.myMonthlyBudgetIs)
	ctx.Given(`^I have a savings goal "([^"]*)" of "([^"]*)" with "([^"]*)" saved due "([^"]*)"$`, test.iHaveASavingsGoal)
	ctx.Given(`^another user has a savings goal "([^"]*)" of "([^"]*)" due "([^"]*)"$`, test.anotherUserHasASavingsGoal)
	ctx.Given(`^I have the following expenses:$`, test.iHaveTheFollowingExpenses)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) items$`, test.theResponseFieldShouldHaveItems)

	// Storage assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the cache should contain (\d+) debt plans?$`, test.theCacheShouldContainDebtPlans)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.response = nil
	t.accessToken = ""
	t.currentUserID = uuid.New()
	t.currentGoalID = uuid.Nil
	t.timeMock.Reset()

	if err := t.db.ClearDB(); err != nil {
		return err
	}
	return t.redis.Clear()
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		gin.SetMode(gin.TestMode)

		cfg := config.Load()
		injector := dependency.NewInjector(cfg, t.db.DbConn, t.redis.Client, t.timeMock.Now)
		engine := injector.Router.Setup(cfg.Server.Environment)

		server := &http.Server{
			Addr:    fmt.Sprintf(":%d", testServerPort),
			Handler: engine,
		}

		go func() {
			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) todayIs(date string) error {
	today, err := time.Parse(dateLayout, date)
	if err != nil {
		return err
	}
	t.timeMock.SetCurrentTime(today.Add(10 * time.Hour))
	return nil
}

func (t *testContext) iAmAuthenticated() error {
	token, err := signToken(t.currentUserID, time.Now().Add(15*time.Minute))
	if err != nil {
		return err
	}
	t.accessToken = token
	return nil
}

func (t *testContext) iAmAuthenticatedWithAnExpiredToken() error {
	token, err := signToken(t.currentUserID, time.Now().Add(-time.Minute))
	if err != nil {
		return err
	}
	t.accessToken = token
	return nil
}

func signToken(userID uuid.UUID, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    userID.String(),
		"sub":        userID.String(),
		"email":      "planner@example.com",
		"token_type": "access",
		"iat":        time.Now().Add(-time.Hour).Unix(),
		"exp":        expiresAt.Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
}

func (t *testContext) myMonthlyBudgetIs(amount string) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	return t.db.DbConn.Create(&model.BudgetModel{
		UserID:    t.currentUserID,
		Amount:    value,
		CreatedAt: now,
		UpdatedAt: now,
	}).Error
}

func (t *testContext) iHaveASavingsGoal(title, target, saved, due string) error {
	goal, err := t.createGoal(t.currentUserID, title, target, saved, due)
	if err != nil {
		return err
	}
	t.currentGoalID = goal.ID
	return nil
}

func (t *testContext) anotherUserHasASavingsGoal(title, target, due string) error {
	goal, err := t.createGoal(uuid.New(), title, target, "0", due)
	if err != nil {
		return err
	}
	t.currentGoalID = goal.ID
	return nil
}

func (t *testContext) createGoal(userID uuid.UUID, title, target, saved, due string) (*model.SavingsGoalModel, error) {
	targetAmount, err := decimal.NewFromString(target)
	if err != nil {
		return nil, err
	}
	currentAmount, err := decimal.NewFromString(saved)
	if err != nil {
		return nil, err
	}
	targetDate, err := time.Parse(dateLayout, due)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	goal := &model.SavingsGoalModel{
		ID:            uuid.New(),
		UserID:        userID,
		Title:         title,
		TargetAmount:  targetAmount,
		CurrentAmount: currentAmount,
		TargetDate:    targetDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := t.db.DbConn.Create(goal).Error; err != nil {
		return nil, err
	}
	return goal, nil
}

func (t *testContext) iHaveTheFollowingExpenses(table *godog.Table) error {
	if len(table.Rows) < 2 {
		return errors.New("expenses table needs a header and at least one row")
	}

	header := make([]string, len(table.Rows[0].Cells))
	for i, cell := range table.Rows[0].Cells {
		header[i] = cell.Value
	}

	for n, row := range table.Rows[1:] {
		values := make(map[string]string, len(header))
		for i, cell := range row.Cells {
			values[header[i]] = cell.Value
		}

		amount, err := decimal.NewFromString(values["amount"])
		if err != nil {
			return err
		}
		date, err := time.Parse(dateLayout, values["date"])
		if err != nil {
			return err
		}

		expense := &model.ExpenseModel{
			ID:          uuid.New(),
			UserID:      t.currentUserID,
			Amount:      amount,
			Category:    values["category"],
			Description: values["description"],
			Date:        date,
			CreatedAt:   time.Now().UTC().Add(time.Duration(n) * time.Second),
		}
		if err := t.db.DbConn.Create(expense).Error; err != nil {
			return err
		}
	}
	return nil
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	content := t.replacePlaceholders(body.Content)
	return t.executeRequest(method, t.replacePlaceholders(path), []byte(content))
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{goal_id}}", t.currentGoalID.String())
	content = strings.ReplaceAll(content, "{{user_id}}", t.currentUserID.String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
	} else {
		t.response.body = responseBody
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	expectedValue = t.replacePlaceholders(expectedValue)
	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}

	if getFieldValue(body, field) == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldHaveItems(field string, quantity int) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}

	items, ok := getFieldValue(body, field).([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not a list: %v", field, body)
	}
	if len(items) != quantity {
		return fmt.Errorf("field '%s' expected %d items, got %d", field, quantity, len(items))
	}
	return nil
}

func (t *testContext) jsonBody() (map[string]any, error) {
	if t.response == nil {
		return nil, errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}
	return body, nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
	entitySlicePtr := reflect.New(entitySlice.Type())
	entitySlicePtr.Elem().Set(entitySlice)

	result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
	}
	return nil
}

func (t *testContext) theCacheShouldContainDebtPlans(quantity int) error {
	keys, err := t.redis.Keys("debt-plan:*")
	if err != nil {
		return err
	}
	if len(keys) != quantity {
		return fmt.Errorf("expected %d cached debt plans, got %d", quantity, len(keys))
	}
	return nil
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var field any = object
	for _, currentField := range strings.Split(dotSeparatedField, ".") {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			arr, ok := field.([]any)
			if !ok || i >= len(arr) {
				return nil
			}
			field = arr[i]
			continue
		}

		m, ok := field.(map[string]any)
		if !ok {
			return nil
		}
		field = m[currentField]
	}

	return field
}
