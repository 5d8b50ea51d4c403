package issues

import (
	"errors"
	"testing"

	custom_error "assetdesk/pkg/errors"
	"assetdesk/pkg/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockIssueStore struct {
	mock.Mock
}

func (m *MockIssueStore) FindCatalogIssue(category, issue string) (*models.CatalogIssue, error) {
	args := m.Called(category, issue)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CatalogIssue), args.Error(1)
}

func (m *MockIssueStore) Insert(issue *models.IssueRequest) error {
	args := m.Called(issue)
	return args.Error(0)
}

func (m *MockIssueStore) Get(id uuid.UUID) (*models.IssueRequest, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.IssueRequest), args.Error(1)
}

func (m *MockIssueStore) SaveAnalysis(id uuid.UUID, analysis models.AIAnalysis) error {
	args := m.Called(id, analysis)
	return args.Error(0)
}

type MockOwnershipChecker struct {
	mock.Mock
}

func (m *MockOwnershipChecker) ExistsAllocated(empID, assetID string) (bool, error) {
	args := m.Called(empID, assetID)
	return args.Bool(0), args.Error(1)
}

func TestCreateIssue(t *testing.T) {
	mockStore := new(MockIssueStore)
	mockLedger := new(MockOwnershipChecker)

	service := NewService(mockStore, mockLedger)

	req := CreateIssueRequest{
		EmpID:       "EMP001",
		AssetID:     "HW-001",
		Category:    "Laptop",
		Issue:       "Battery drains fast",
		Description: "dies within an hour",
	}

	mockLedger.On("ExistsAllocated", "EMP001", "HW-001").Return(true, nil).Once()
	mockStore.On("FindCatalogIssue", "Laptop", "Battery drains fast").Return(&models.CatalogIssue{
		Category: "Laptop",
		Issue:    "Battery drains fast",
		Priority: models.PriorityMedium,
	}, nil).Once()
	mockStore.On("Insert", mock.MatchedBy(func(issue *models.IssueRequest) bool {
		return issue.EmpID == "EMP001" &&
			issue.AssetID == "HW-001" &&
			issue.Priority == models.PriorityMedium &&
			issue.TechnicianStatus == models.TechnicianUnassigned &&
			issue.ID != uuid.Nil
	})).Return(nil).Once()

	issue, err := service.Create(req)

	assert.NoError(t, err)
	assert.Equal(t, models.PriorityMedium, issue.Priority)
	assert.Equal(t, models.TechnicianUnassigned, issue.TechnicianStatus)

	mockStore.AssertExpectations(t)
	mockLedger.AssertExpectations(t)
}

func TestCreateIssueRejectsForeignAsset(t *testing.T) {
	mockStore := new(MockIssueStore)
	mockLedger := new(MockOwnershipChecker)

	service := NewService(mockStore, mockLedger)

	mockLedger.On("ExistsAllocated", "EMP002", "HW-001").Return(false, nil).Once()

	issue, err := service.Create(CreateIssueRequest{
		EmpID:    "EMP002",
		AssetID:  "HW-001",
		Category: "Laptop",
		Issue:    "Battery drains fast",
	})

	assert.Nil(t, issue)
	assert.True(t, custom_error.IsKind(err, custom_error.KindAuthorization))
	mockStore.AssertNotCalled(t, "Insert", mock.Anything)
}

func TestCreateIssueRejectsUnknownCatalogEntry(t *testing.T) {
	mockStore := new(MockIssueStore)
	mockLedger := new(MockOwnershipChecker)

	service := NewService(mockStore, mockLedger)

	mockLedger.On("ExistsAllocated", "EMP001", "HW-001").Return(true, nil).Once()
	mockStore.On("FindCatalogIssue", "Laptop", "Makes coffee badly").
		Return(nil, custom_error.NewInvalidIssue("Unknown category or issue")).Once()

	issue, err := service.Create(CreateIssueRequest{
		EmpID:    "EMP001",
		AssetID:  "HW-001",
		Category: "Laptop",
		Issue:    "Makes coffee badly",
	})

	assert.Nil(t, issue)
	assert.True(t, custom_error.IsKind(err, custom_error.KindInvalidIssue))
}

func TestAnalyzePersistsClassification(t *testing.T) {
	mockStore := new(MockIssueStore)
	service := NewService(mockStore, new(MockOwnershipChecker))

	id := uuid.New()

	mockStore.On("Get", id).Return(&models.IssueRequest{
		ID:               id,
		Issue:            "Laptop not working",
		Category:         "Laptop",
		TechnicianStatus: models.TechnicianUnassigned,
	}, nil).Once()
	mockStore.On("SaveAnalysis", id, mock.MatchedBy(func(a models.AIAnalysis) bool {
		return a.Priority == models.PriorityHigh
	})).Return(nil).Once()

	analysis, err := service.Analyze(id)

	assert.NoError(t, err)
	assert.Equal(t, models.PriorityHigh, analysis.Priority)
	mockStore.AssertExpectations(t)
}

func TestAnalyzeBlockedOnceTechnicianAssigned(t *testing.T) {
	mockStore := new(MockIssueStore)
	service := NewService(mockStore, new(MockOwnershipChecker))

	id := uuid.New()

	mockStore.On("Get", id).Return(&models.IssueRequest{
		ID:               id,
		Issue:            "Laptop not working",
		TechnicianStatus: "assigned",
	}, nil).Once()

	analysis, err := service.Analyze(id)

	assert.Nil(t, analysis)
	assert.True(t, custom_error.IsKind(err, custom_error.KindNotAllowed))
	mockStore.AssertNotCalled(t, "SaveAnalysis", mock.Anything, mock.Anything)
}

func TestAnalyzeMissingIssue(t *testing.T) {
	mockStore := new(MockIssueStore)
	service := NewService(mockStore, new(MockOwnershipChecker))

	id := uuid.New()
	mockStore.On("Get", id).Return(nil, custom_error.NewNotFound("Issue not found")).Once()

	_, err := service.Analyze(id)

	assert.True(t, custom_error.IsKind(err, custom_error.KindNotFound))
}

func TestCreateIssuePropagatesLedgerError(t *testing.T) {
	mockLedger := new(MockOwnershipChecker)
	service := NewService(new(MockIssueStore), mockLedger)

	mockLedger.On("ExistsAllocated", "EMP001", "HW-001").Return(false, errors.New("db down")).Once()

	_, err := service.Create(CreateIssueRequest{EmpID: "EMP001", AssetID: "HW-001", Category: "Laptop", Issue: "x"})

	assert.Error(t, err)
}
