//go:build integration

package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-pal/backend/test/integration/mock"
)

var accountPlaceholder = regexp.MustCompile(`\{\{account:([^}]+)\}\}`)

func registerSetupSteps(ctx *godog.ScenarioContext, t *testContext) {
	ctx.Given(`^the API server is running$`, t.theAPIServerIsRunning)
	ctx.Given(`^today is "([^"]*)"$`, t.todayIs)
	ctx.Given(`^I am a guest$`, t.iAmAGuest)
	ctx.Given(`^I am signed in as "([^"]*)"$`, t.iAmSignedInAs)
	ctx.Given(`^I am signed in as "([^"]*)" with an expired token$`, t.iAmSignedInWithAnExpiredToken)
	ctx.Given(`^the header is empty$`, t.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, t.theHeaderContainsTheKeyWith)
	ctx.Given(`^a bank account "([^"]*)" with starting balance "([^"]*)" exists$`, t.aBankAccountExists)
	ctx.Given(`^a budget for "([^"]*)" of "([^"]*)" exists$`, t.aBudgetExists)
	ctx.Given(`^the following transactions exist:$`, t.theFollowingTransactionsExist)
}

func registerRequestSteps(ctx *godog.ScenarioContext, t *testContext) {
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, t.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, t.iSendARequestToWithBody)
}

func registerResponseSteps(ctx *godog.ScenarioContext, t *testContext) {
	ctx.Then(`^the response status should be (\d+)$`, t.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, t.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, t.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, t.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, t.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) items$`, t.theResponseFieldShouldHaveItems)
	ctx.Then(`^the response header "([^"]*)" should contain "([^"]*)"$`, t.theResponseHeaderShouldContain)
	ctx.Then(`^the response body should include "([^"]*)"$`, t.theResponseBodyShouldInclude)
}

func registerStoreSteps(ctx *godog.ScenarioContext, t *testContext) {
	ctx.Then(`^the (remote|local) store should contain (\d+) objects in the "([^"]*)" table$`, t.theStoreShouldContainObjectsInTheTable)
	ctx.Then(`^the (remote|local) store should contain (\d+) objects in "([^"]*)" with the values$`, t.theStoreShouldContainObjectsWithTheValues)
}

func registerStreamSteps(ctx *godog.ScenarioContext, t *testContext) {
	ctx.When(`^I open the "([^"]*)" stream$`, t.iOpenTheStream)
	ctx.Then(`^the stream should deliver a snapshot with (\d+) items$`, t.theStreamShouldDeliverASnapshotWithItems)
	ctx.Then(`^the stream snapshot field "([^"]*)" should be "([^"]*)"$`, t.theStreamSnapshotFieldShouldBe)
}

// Setup steps

func (t *testContext) theAPIServerIsRunning() error {
	return t.startServer()
}

func (t *testContext) todayIs(date string) error {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}
	timeMock.SetCurrentTime(day.Add(12 * time.Hour))
	return nil
}

func (t *testContext) iAmAGuest() error {
	t.accessToken = ""
	return nil
}

func (t *testContext) iAmSignedInAs(email string) error {
	token, err := tokenService.IssueAccessToken(context.Background(), userIDFor(email), email, 15*time.Minute)
	if err != nil {
		return fmt.Errorf("failed to issue access token: %w", err)
	}
	t.accessToken = token
	return nil
}

func (t *testContext) iAmSignedInWithAnExpiredToken(email string) error {
	token, err := tokenService.IssueAccessToken(context.Background(), userIDFor(email), email, -time.Minute)
	if err != nil {
		return fmt.Errorf("failed to issue access token: %w", err)
	}
	t.accessToken = token
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

func (t *testContext) aBankAccountExists(name, startingBalance string) error {
	payload := fmt.Sprintf(`{"name": %q, "starting_balance": %s}`, name, startingBalance)
	if err := t.mustCreate("/api/v1/bank-accounts", payload); err != nil {
		return err
	}
	t.accountIDs[name] = t.lastID
	return nil
}

func (t *testContext) aBudgetExists(category, allocated string) error {
	payload := fmt.Sprintf(`{"category": %q, "allocated_amount": %s}`, category, allocated)
	return t.mustCreate("/api/v1/budgets", payload)
}

// theFollowingTransactionsExist creates one transaction per table row. The
// first row names the columns: date, category, amount and optionally
// description, time and account (a bank account name created earlier).
func (t *testContext) theFollowingTransactionsExist(table *godog.Table) error {
	if len(table.Rows) < 2 {
		return errors.New("transaction table needs a header row and at least one data row")
	}

	header := make([]string, len(table.Rows[0].Cells))
	for i, cell := range table.Rows[0].Cells {
		header[i] = strings.TrimSpace(cell.Value)
	}

	for _, row := range table.Rows[1:] {
		payload := map[string]any{}
		for i, cell := range row.Cells {
			value := strings.TrimSpace(cell.Value)
			if value == "" {
				continue
			}
			switch header[i] {
			case "amount":
				payload["amount"] = json.Number(value)
			case "account":
				id, ok := t.accountIDs[value]
				if !ok {
					return fmt.Errorf("bank account %q was not created in this scenario", value)
				}
				payload["bank_account_id"] = id.String()
			default:
				payload[header[i]] = value
			}
		}

		body, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		if err := t.mustCreate("/api/v1/transactions", string(body)); err != nil {
			return err
		}
	}
	return nil
}

func (t *testContext) mustCreate(path, payload string) error {
	if err := t.executeRequest(http.MethodPost, path, []byte(payload)); err != nil {
		return err
	}
	if t.response.status != http.StatusCreated {
		return fmt.Errorf("POST %s expected 201, got %d (body: %s)", path, t.response.status, string(t.response.raw))
	}
	return nil
}

// Request steps

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replacePlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{id}}", t.lastID.String())
	return accountPlaceholder.ReplaceAllStringFunc(content, func(match string) string {
		name := accountPlaceholder.FindStringSubmatch(match)[1]
		if id, ok := t.accountIDs[name]; ok {
			return id.String()
		}
		return match
	})
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, t.uri+path, body)
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
		status:  resp.StatusCode,
		headers: resp.Header,
		raw:     bodyBytes,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = responseBody

	// Capture the created record's ID
	if idStr, ok := responseBody["id"].(string); ok {
		if id, err := uuid.Parse(idStr); err == nil {
			t.lastID = id
		}
	}

	return nil
}

// Response steps

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
		return fmt.Errorf("field '%s' is not a list in response: %v", field, body)
	}
	if len(items) != quantity {
		return fmt.Errorf("field '%s' expected %d items, got %d", field, quantity, len(items))
	}
	return nil
}

func (t *testContext) theResponseHeaderShouldContain(header, expected string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if actual := t.response.headers.Get(header); !strings.Contains(actual, expected) {
		return fmt.Errorf("header '%s' expected to contain '%s', got '%s'", header, expected, actual)
	}
	return nil
}

func (t *testContext) theResponseBodyShouldInclude(text string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if !bytes.Contains(t.response.raw, []byte(text)) {
		return fmt.Errorf("response body does not include '%s': %s", text, string(t.response.raw))
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

// Store steps

func (t *testContext) store(name string) *mock.Db {
	if name == "local" {
		return t.local
	}
	return t.remote
}

func (t *testContext) theStoreShouldContainObjectsInTheTable(storeName string, quantity int, table string) error {
	return t.countRows(t.store(storeName), quantity, table, nil)
}

func (t *testContext) theStoreShouldContainObjectsWithTheValues(storeName string, quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(content.Content), &criteria); err != nil {
		return err
	}
	return t.countRows(t.store(storeName), quantity, table, criteria)
}

func (t *testContext) countRows(db *mock.Db, quantity int, table string, criteria map[string]any) error {
	entity, ok := db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
	entitySlicePtr := reflect.New(entitySlice.Type())
	entitySlicePtr.Elem().Set(entitySlice)

	query := db.DbConn.Unscoped()
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	result := query.Find(entitySlicePtr.Interface())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
