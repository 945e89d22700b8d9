//go:build integration

// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-pal/backend/config"
	"github.com/finance-pal/backend/internal/application/adapter"
	"github.com/finance-pal/backend/internal/infra/dependency"
	"github.com/finance-pal/backend/internal/integration/entrypoint/middleware"
	"github.com/finance-pal/backend/internal/integration/feed"
	"github.com/finance-pal/backend/internal/integration/persistence/model"
	"github.com/finance-pal/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

// testContext holds the state of one scenario.
type testContext struct {
	uri         string
	headers     map[string]string
	client      *http.Client
	response    *response
	remote      *mock.Db
	local       *mock.Db
	accessToken string
	lastID      uuid.UUID
	accountIDs  map[string]uuid.UUID
	stream      *eventStream
}

type response struct {
	status  int
	headers http.Header
	raw     []byte
	body    any
}

var (
	serverInit     sync.Once
	portInit       sync.Once
	testServerPort int
	timeMock       = mock.NewTime()
	tokenService   adapter.TokenService
	exportLimiter  *middleware.RateLimiter
)

func storeModels() map[string]any {
	models := map[string]any{}
	for _, m := range model.Models() {
		switch typed := m.(type) {
		case *model.TransactionModel:
			models[typed.TableName()] = typed
		case *model.BankAccountModel:
			models[typed.TableName()] = typed
		case *model.BudgetModel:
			models[typed.TableName()] = typed
		case *model.SavingsGoalModel:
			models[typed.TableName()] = typed
		}
	}
	return models
}

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
		_ = os.Setenv("JWT_SECRET", testJWTSecret)
		_ = os.Setenv("DEFAULT_CURRENCY", "USD")
		_ = os.Setenv("GUEST_MODE_ENABLED", "true")
	})
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		initializePort()
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:    fmt.Sprintf("http://localhost:%d", testServerPort),
		client: &http.Client{Timeout: 10 * time.Second},
		remote: mock.NewDb("remote", storeModels()),
		local:  mock.NewDb("local", storeModels()),
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		test.closeStream()
		return ctx, nil
	})

	registerSetupSteps(ctx, test)
	registerRequestSteps(ctx, test)
	registerResponseSteps(ctx, test)
	registerStoreSteps(ctx, test)
	registerStreamSteps(ctx, test)
}

func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.response = nil
	t.accessToken = ""
	t.lastID = uuid.Nil
	t.accountIDs = map[string]uuid.UUID{}
	t.closeStream()
	timeMock.Reset()
	if exportLimiter != nil {
		exportLimiter.Reset()
	}

	if err := t.remote.ClearDB(); err != nil {
		return err
	}
	if err := t.local.ClearDB(); err != nil {
		return err
	}
	mock.ClearRedis()
	return nil
}

func (t *testContext) startServer() error {
	serverInit.Do(func() {
		cfg := config.Load()
		injector := dependency.NewInjector(cfg, dependency.Stores{
			Remote: t.remote.Database,
			Local:  t.local.Database,
			Feed:   feed.NewRedisFeed(mock.NewRedis()),
			Clock:  timeMock.Now,
		})
		tokenService = injector.TokenService
		exportLimiter = injector.ExportRateLimiter
		engine := injector.Router.Setup("test")

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
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(100 * time.Millisecond)
	}
	return fmt.Errorf("server did not become healthy on port %d", testServerPort)
}

// userIDFor derives a stable user ID from an email so scenarios can sign in as
// the same user more than once.
func userIDFor(email string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("mailto:"+email))
}
