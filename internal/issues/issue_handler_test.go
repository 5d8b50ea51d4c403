package issues

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"assetdesk/pkg/models"

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

func TestCreateIssueRejectsMismatchedEmployee(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockStore := new(MockIssueStore)
	mockLedger := new(MockOwnershipChecker)
	handler := NewHandler(NewService(mockStore, mockLedger), nil)

	c, w := setupTestContext()
	body, _ := json.Marshal(CreateIssueRequest{
		EmpID:    "EMP999",
		AssetID:  "HW-001",
		Category: "Laptop",
		Issue:    "Battery drains fast",
	})
	c.Request = httptest.NewRequest("POST", "/api/issuerequest", bytes.NewBuffer(body))

	handler.CreateIssue(c)

	assert.Equal(t, http.StatusForbidden, w.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "authorization_error", resp["error_kind"])
	mockLedger.AssertNotCalled(t, "ExistsAllocated", mock.Anything, mock.Anything)
	mockStore.AssertNotCalled(t, "Insert", mock.Anything)
}

func TestCreateIssueAcceptsTokenIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockStore := new(MockIssueStore)
	mockLedger := new(MockOwnershipChecker)
	handler := NewHandler(NewService(mockStore, mockLedger), nil)

	mockLedger.On("ExistsAllocated", "EMP001", "HW-001").Return(true, nil).Once()
	mockStore.On("FindCatalogIssue", "Laptop", "Battery drains fast").Return(&models.CatalogIssue{
		Category: "Laptop",
		Issue:    "Battery drains fast",
		Priority: models.PriorityMedium,
	}, nil).Once()
	mockStore.On("Insert", mock.Anything).Return(nil).Once()

	c, w := setupTestContext()
	body, _ := json.Marshal(CreateIssueRequest{
		EmpID:    "EMP001",
		AssetID:  "HW-001",
		Category: "Laptop",
		Issue:    "Battery drains fast",
	})
	c.Request = httptest.NewRequest("POST", "/api/issuerequest", bytes.NewBuffer(body))

	handler.CreateIssue(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockStore.AssertExpectations(t)
	mockLedger.AssertExpectations(t)
}
