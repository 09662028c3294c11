package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/fiscalia/fiscal_tracker_app/internal/apperrors"
	"github.com/fiscalia/fiscal_tracker_app/internal/core/domain"
	portssvc "github.com/fiscalia/fiscal_tracker_app/internal/core/ports/services"
	"github.com/fiscalia/fiscal_tracker_app/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ObligationRepository ---
type MockObligationRepository struct {
	mock.Mock
}

func (m *MockObligationRepository) FindObligationByID(ctx context.Context, obligationID string) (*domain.Obligation, error) {
	args := m.Called(ctx, obligationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Obligation), args.Error(1)
}

func (m *MockObligationRepository) FindObligationsByCompany(ctx context.Context, companyID string, year int) ([]domain.Obligation, error) {
	args := m.Called(ctx, companyID, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Obligation), args.Error(1)
}

func (m *MockObligationRepository) UpsertObligations(ctx context.Context, obligations []domain.Obligation) (int, error) {
	args := m.Called(ctx, obligations)
	return args.Int(0), args.Error(1)
}

func (m *MockObligationRepository) UpdateObligationWorkflow(ctx context.Context, obligation domain.Obligation) error {
	args := m.Called(ctx, obligation)
	return args.Error(0)
}

// --- Mock RuleReader ---
type MockRuleReader struct {
	mock.Mock
}

func (m *MockRuleReader) FindRuleByID(ctx context.Context, ruleID string) (*domain.RuleCatalogEntry, error) {
	args := m.Called(ctx, ruleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RuleCatalogEntry), args.Error(1)
}

func (m *MockRuleReader) ListRules(ctx context.Context, activeOnly bool, limit int, nextToken string) ([]domain.RuleCatalogEntry, string, error) {
	args := m.Called(ctx, activeOnly, limit, nextToken)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]domain.RuleCatalogEntry), args.String(1), args.Error(2)
}

func (m *MockRuleReader) ListActiveRules(ctx context.Context) ([]domain.RuleCatalogEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RuleCatalogEntry), args.Error(1)
}

// --- Mock CompanyReader ---
type MockCompanyReader struct {
	mock.Mock
}

func (m *MockCompanyReader) FindCompanyByID(ctx context.Context, companyID string) (*domain.CompanyProfile, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyProfile), args.Error(1)
}

func (m *MockCompanyReader) ListCompanies(ctx context.Context, activeOnly bool) ([]domain.CompanyProfile, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CompanyProfile), args.Error(1)
}

// --- Test Suite ---
type ObligationServiceTestSuite struct {
	suite.Suite
	mockObligationRepo *MockObligationRepository
	mockRuleReader     *MockRuleReader
	mockCompanyReader  *MockCompanyReader
	service            portssvc.ObligationSvcFacade
}

func (suite *ObligationServiceTestSuite) SetupTest() {
	suite.mockObligationRepo = new(MockObligationRepository)
	suite.mockRuleReader = new(MockRuleReader)
	suite.mockCompanyReader = new(MockCompanyReader)
	suite.service = services.NewObligationService(suite.mockObligationRepo, suite.mockRuleReader, suite.mockCompanyReader)
}

func (suite *ObligationServiceTestSuite) company() *domain.CompanyProfile {
	return &domain.CompanyProfile{
		CompanyID:      "comp-1",
		Name:           "Acme SRL",
		PersonCategory: domain.LegalEntity,
		IsActive:       true,
	}
}

// --- Test Cases ---

func (suite *ObligationServiceTestSuite) TestMaterializeYear_Success() {
	ctx := context.Background()
	rules := []domain.RuleCatalogEntry{{
		RuleID:         "rule-1",
		PersonCategory: domain.LegalEntity,
		ObligationType: "VAT",
		Frequency:      domain.FrequencyQuarterly,
		DueDay:         20,
		DueMonth:       1,
		IsActive:       true,
	}}

	suite.mockCompanyReader.On("FindCompanyByID", ctx, "comp-1").Return(suite.company(), nil).Once()
	suite.mockRuleReader.On("ListActiveRules", ctx).Return(rules, nil).Once()
	suite.mockObligationRepo.On("UpsertObligations", ctx, mock.MatchedBy(func(obs []domain.Obligation) bool {
		if len(obs) != 4 {
			return false
		}
		for _, o := range obs {
			if o.SourceRuleID != "rule-1" || o.WorkflowStatus != domain.StatusPending || o.CreatedBy != "user-1" {
				return false
			}
		}
		return true
	})).Return(4, nil).Once()
	stored := []domain.Obligation{{ObligationID: "ob-1", CompanyID: "comp-1", SourceRuleID: "rule-1"}}
	suite.mockObligationRepo.On("FindObligationsByCompany", ctx, "comp-1", 2025).Return(stored, nil).Once()

	result, err := suite.service.MaterializeYear(ctx, "comp-1", 2025, "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Equal(4, result.Inserted)
	suite.Empty(result.Warnings)
	suite.Equal(stored, result.Obligations)
	suite.mockObligationRepo.AssertExpectations(suite.T())
	suite.mockRuleReader.AssertExpectations(suite.T())
	suite.mockCompanyReader.AssertExpectations(suite.T())
}

func (suite *ObligationServiceTestSuite) TestMaterializeYear_PropagatesWarnings() {
	ctx := context.Background()
	rules := []domain.RuleCatalogEntry{{
		RuleID:         "rule-bad",
		PersonCategory: domain.LegalEntity,
		ObligationType: "VAT",
		Frequency:      domain.FrequencyAnnual,
		DueDay:         15,
		DueMonth:       13, // malformed
		IsActive:       true,
	}}

	suite.mockCompanyReader.On("FindCompanyByID", ctx, "comp-1").Return(suite.company(), nil).Once()
	suite.mockRuleReader.On("ListActiveRules", ctx).Return(rules, nil).Once()
	suite.mockObligationRepo.On("UpsertObligations", ctx, mock.AnythingOfType("[]domain.Obligation")).Return(0, nil).Once()
	suite.mockObligationRepo.On("FindObligationsByCompany", ctx, "comp-1", 2025).Return([]domain.Obligation{}, nil).Once()

	result, err := suite.service.MaterializeYear(ctx, "comp-1", 2025, "user-1")

	suite.Require().NoError(err)
	suite.Require().Len(result.Warnings, 1)
	suite.Equal("rule-bad", result.Warnings[0].RuleID)
	suite.Equal(0, result.Inserted)
}

func (suite *ObligationServiceTestSuite) TestMaterializeYear_CompanyNotFound() {
	ctx := context.Background()
	suite.mockCompanyReader.On("FindCompanyByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	result, err := suite.service.MaterializeYear(ctx, "missing", 2025, "user-1")

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockObligationRepo.AssertNotCalled(suite.T(), "UpsertObligations", mock.Anything, mock.Anything)
}

func (suite *ObligationServiceTestSuite) TestListObligations_AppliesCriteria() {
	ctx := context.Background()
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	stored := []domain.Obligation{
		{ObligationID: "ob-1", CompanyID: "comp-1", DueDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), WorkflowStatus: domain.StatusPending, Priority: domain.PriorityMedium},
		{ObligationID: "ob-2", CompanyID: "comp-1", DueDate: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), WorkflowStatus: domain.StatusCompleted, Priority: domain.PriorityMedium},
	}
	suite.mockObligationRepo.On("FindObligationsByCompany", ctx, "comp-1", 0).Return(stored, nil).Once()

	got, err := suite.service.ListObligations(ctx, "comp-1", domain.FilterCriteria{WorkflowStatus: domain.StatusPending}, now)

	suite.Require().NoError(err)
	suite.Require().Len(got, 1)
	suite.Equal("ob-1", got[0].ObligationID)
}

func (suite *ObligationServiceTestSuite) TestGetStatistics_PartitionSumsToTotal() {
	ctx := context.Background()
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	stored := []domain.Obligation{
		{ObligationID: "ob-1", CompanyID: "comp-1", DueDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ObligationID: "ob-2", CompanyID: "comp-1", DueDate: time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC)},
		{ObligationID: "ob-3", CompanyID: "comp-1", DueDate: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)},
	}
	suite.mockObligationRepo.On("FindObligationsByCompany", ctx, "comp-1", 0).Return(stored, nil).Once()

	stats, err := suite.service.GetStatistics(ctx, "comp-1", now)

	suite.Require().NoError(err)
	suite.Equal(3, stats.Total)
	suite.Equal(stats.Total, stats.Upcoming+stats.Due+stats.Overdue)
	suite.Equal(1, stats.Overdue)
	suite.Equal(1, stats.Due)
	suite.Equal(1, stats.Upcoming)
}

func (suite *ObligationServiceTestSuite) TestGetPeriodView_InvalidMonthFailsFast() {
	ctx := context.Background()
	suite.mockObligationRepo.On("FindObligationsByCompany", ctx, "comp-1", 2025).Return([]domain.Obligation{}, nil).Once()

	_, err := suite.service.GetPeriodView(ctx, "comp-1", 2025, 13, 0, 0)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ObligationServiceTestSuite) TestSetStatus_PersistsMutation() {
	ctx := context.Background()
	stored := &domain.Obligation{ObligationID: "ob-1", CompanyID: "comp-1", WorkflowStatus: domain.StatusPending, Priority: domain.PriorityMedium}

	suite.mockObligationRepo.On("FindObligationByID", ctx, "ob-1").Return(stored, nil).Once()
	suite.mockObligationRepo.On("UpdateObligationWorkflow", ctx, mock.MatchedBy(func(o domain.Obligation) bool {
		return o.ObligationID == "ob-1" && o.WorkflowStatus == domain.StatusCancelled && o.LastUpdatedBy == "user-1"
	})).Return(nil).Once()

	updated, err := suite.service.SetStatus(ctx, "ob-1", domain.StatusCancelled, "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.StatusCancelled, updated.WorkflowStatus)
	suite.mockObligationRepo.AssertExpectations(suite.T())
}

func (suite *ObligationServiceTestSuite) TestSetStatus_RejectsUnknownValueBeforePersisting() {
	ctx := context.Background()
	stored := &domain.Obligation{ObligationID: "ob-1", WorkflowStatus: domain.StatusPending, Priority: domain.PriorityMedium}

	suite.mockObligationRepo.On("FindObligationByID", ctx, "ob-1").Return(stored, nil).Once()

	updated, err := suite.service.SetStatus(ctx, "ob-1", "DONE", "user-1")

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockObligationRepo.AssertNotCalled(suite.T(), "UpdateObligationWorkflow", mock.Anything, mock.Anything)
}

func (suite *ObligationServiceTestSuite) TestToggleCompletion_NormalizesOverdue() {
	ctx := context.Background()
	stored := &domain.Obligation{ObligationID: "ob-1", WorkflowStatus: domain.StatusOverdue, Priority: domain.PriorityMedium}

	suite.mockObligationRepo.On("FindObligationByID", ctx, "ob-1").Return(stored, nil).Once()
	suite.mockObligationRepo.On("UpdateObligationWorkflow", ctx, mock.MatchedBy(func(o domain.Obligation) bool {
		return o.WorkflowStatus == domain.StatusCompleted
	})).Return(nil).Once()

	updated, err := suite.service.ToggleCompletion(ctx, "ob-1", "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.StatusCompleted, updated.WorkflowStatus)
}

func (suite *ObligationServiceTestSuite) TestCyclePriority_WrapsUrgentToLow() {
	ctx := context.Background()
	stored := &domain.Obligation{ObligationID: "ob-1", WorkflowStatus: domain.StatusPending, Priority: domain.PriorityUrgent}

	suite.mockObligationRepo.On("FindObligationByID", ctx, "ob-1").Return(stored, nil).Once()
	suite.mockObligationRepo.On("UpdateObligationWorkflow", ctx, mock.MatchedBy(func(o domain.Obligation) bool {
		return o.Priority == domain.PriorityLow
	})).Return(nil).Once()

	updated, err := suite.service.CyclePriority(ctx, "ob-1", "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.PriorityLow, updated.Priority)
}

func TestObligationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ObligationServiceTestSuite))
}
