package requests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"assetdesk/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("emp_id", "EMP001")
	c.Set("role", "employee")
	return c, w
}

func TestSubmitRequestReturnsCreatedOnRejection(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockTx := new(MockTxRunner)
	mockStore := new(MockRequestStore)
	mockCatalog := new(MockCatalogReader)

	service := newTestService(mockTx, mockStore, new(MockLedgerWriter), mockCatalog)
	handler := NewHandler(service, nil)

	var tx *goqu.TxDatabase
	mockCatalog.On("CountUnits", "Laptop", "ThinkPad T14").Return(2, nil).Once()
	mockTx.On("RunInTransaction").Return(nil).Once()
	mockStore.On("NextRequestID", tx).Return(7, nil).Once()
	mockStore.On("FreeUnits", tx, "Laptop", "ThinkPad T14").Return([]models.HardwareUnit{}, nil).Once()
	mockStore.On("InsertRequest", tx, mock.Anything).Return(nil).Once()

	c, w := setupTestContext()
	body, _ := json.Marshal(SubmitRequest{EmpID: "EMP001", Name: "Laptop", Model: "ThinkPad T14", Quantity: 1})
	c.Request = httptest.NewRequest("POST", "/api/requests", bytes.NewBuffer(body))

	handler.SubmitRequest(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var result FulfillmentResult
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, models.StatusRejected, result.Status)
	assert.Nil(t, result.AssetID)
	assert.Equal(t, 7, result.RequestID)
}

func TestSubmitRequestRejectsBadQuantityWithKind(t *testing.T) {
	gin.SetMode(gin.TestMode)

	service := newTestService(new(MockTxRunner), new(MockRequestStore), new(MockLedgerWriter), new(MockCatalogReader))
	handler := NewHandler(service, nil)

	c, w := setupTestContext()
	body, _ := json.Marshal(SubmitRequest{EmpID: "EMP001", Name: "Laptop", Model: "ThinkPad T14", Quantity: 4})
	c.Request = httptest.NewRequest("POST", "/api/requests", bytes.NewBuffer(body))

	handler.SubmitRequest(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "unsupported_quantity", resp["error_kind"])
}

func TestSubmitRequestUnknownHardwareIs404(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockCatalog := new(MockCatalogReader)
	service := newTestService(new(MockTxRunner), new(MockRequestStore), new(MockLedgerWriter), mockCatalog)
	handler := NewHandler(service, nil)

	mockCatalog.On("CountUnits", "Toaster", "X9").Return(0, nil).Once()

	c, w := setupTestContext()
	body, _ := json.Marshal(SubmitRequest{EmpID: "EMP001", Name: "Toaster", Model: "X9", Quantity: 1})
	c.Request = httptest.NewRequest("POST", "/api/requests", bytes.NewBuffer(body))

	handler.SubmitRequest(c)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "no_such_hardware", resp["error_kind"])
}

func TestSubmitRequestRejectsMismatchedEmployee(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockTx := new(MockTxRunner)
	service := newTestService(mockTx, new(MockRequestStore), new(MockLedgerWriter), new(MockCatalogReader))
	handler := NewHandler(service, nil)

	c, w := setupTestContext()
	body, _ := json.Marshal(SubmitRequest{EmpID: "EMP999", Name: "Laptop", Model: "ThinkPad T14", Quantity: 1})
	c.Request = httptest.NewRequest("POST", "/api/requests", bytes.NewBuffer(body))

	handler.SubmitRequest(c)

	assert.Equal(t, http.StatusForbidden, w.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "authorization_error", resp["error_kind"])
	mockTx.AssertNotCalled(t, "RunInTransaction")
}

func TestAssignRequestRejectsNonNumericID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	service := newTestService(new(MockTxRunner), new(MockRequestStore), new(MockLedgerWriter), new(MockCatalogReader))
	handler := NewHandler(service, nil)

	c, w := setupTestContext()
	c.Request = httptest.NewRequest("POST", "/api/requests/assign/abc", nil)
	c.Params = []gin.Param{{Key: "request_id", Value: "abc"}}

	handler.AssignRequest(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
