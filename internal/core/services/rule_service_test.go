package services_test

import (
	"context"
	"testing"

	"github.com/fiscalia/fiscal_tracker_app/internal/apperrors"
	"github.com/fiscalia/fiscal_tracker_app/internal/core/domain"
	portssvc "github.com/fiscalia/fiscal_tracker_app/internal/core/ports/services"
	"github.com/fiscalia/fiscal_tracker_app/internal/core/services"
	"github.com/fiscalia/fiscal_tracker_app/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock RuleRepository (full facade) ---
type MockRuleRepository struct {
	MockRuleReader
}

func (m *MockRuleRepository) SaveRule(ctx context.Context, rule domain.RuleCatalogEntry) error {
	args := m.Called(ctx, rule)
	return args.Error(0)
}

func (m *MockRuleRepository) UpdateRule(ctx context.Context, rule domain.RuleCatalogEntry) error {
	args := m.Called(ctx, rule)
	return args.Error(0)
}

func (m *MockRuleRepository) DeactivateRule(ctx context.Context, ruleID string, deactivatedBy string) error {
	args := m.Called(ctx, ruleID, deactivatedBy)
	return args.Error(0)
}

// --- Test Suite ---
type RuleServiceTestSuite struct {
	suite.Suite
	mockRepo *MockRuleRepository
	service  portssvc.RuleSvcFacade
}

func (suite *RuleServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockRuleRepository)
	suite.service = services.NewRuleService(suite.mockRepo)
}

func (suite *RuleServiceTestSuite) TestCreateRule_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateRuleRequest{
		PersonCategory: "LEGAL_ENTITY",
		ObligationType: "VAT",
		Tag:            "VAT",
		Frequency:      "QUARTERLY",
		DueDay:         20,
		DueMonth:       1,
		Detail:         "Quarterly VAT return",
	}

	suite.mockRepo.On("SaveRule", ctx, mock.MatchedBy(func(r domain.RuleCatalogEntry) bool {
		return r.RuleID != "" &&
			r.PersonCategory == domain.LegalEntity &&
			r.Frequency == domain.FrequencyQuarterly &&
			r.IsActive &&
			r.CreatedBy == creatorUserID
	})).Return(nil).Once()

	rule, err := suite.service.CreateRule(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(rule)
	suite.Equal(domain.FrequencyQuarterly, rule.Frequency)
	suite.Equal(20, rule.DueDay)
	suite.True(rule.IsActive)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RuleServiceTestSuite) TestUpdateRule_SupersedesStoredEntry() {
	ctx := context.Background()
	existing := &domain.RuleCatalogEntry{
		RuleID:         "rule-1",
		PersonCategory: domain.LegalEntity,
		ObligationType: "VAT",
		Tag:            "VAT",
		Frequency:      domain.FrequencyMonthly,
		DueDay:         15,
		IsActive:       true,
	}
	req := dto.UpdateRuleRequest{
		PersonCategory: "LEGAL_ENTITY",
		ObligationType: "VAT",
		Tag:            "VAT",
		Frequency:      "MONTHLY",
		DueDay:         25,
	}

	suite.mockRepo.On("FindRuleByID", ctx, "rule-1").Return(existing, nil).Once()
	suite.mockRepo.On("UpdateRule", ctx, mock.MatchedBy(func(r domain.RuleCatalogEntry) bool {
		return r.RuleID == "rule-1" && r.DueDay == 25 && r.LastUpdatedBy == "user-1"
	})).Return(nil).Once()

	updated, err := suite.service.UpdateRule(ctx, "rule-1", req, "user-1")

	suite.Require().NoError(err)
	suite.Equal(25, updated.DueDay)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RuleServiceTestSuite) TestUpdateRule_NotFound() {
	ctx := context.Background()
	req := dto.UpdateRuleRequest{
		PersonCategory: "LEGAL_ENTITY",
		ObligationType: "VAT",
		Tag:            "VAT",
		Frequency:      "MONTHLY",
		DueDay:         25,
	}

	suite.mockRepo.On("FindRuleByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	updated, err := suite.service.UpdateRule(ctx, "missing", req, "user-1")

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateRule", mock.Anything, mock.Anything)
}

func (suite *RuleServiceTestSuite) TestListRules_DefaultsPageSize() {
	ctx := context.Background()
	suite.mockRepo.On("ListRules", ctx, true, 50, "").Return([]domain.RuleCatalogEntry{}, "", nil).Once()

	rules, next, err := suite.service.ListRules(ctx, true, 0, "")

	suite.Require().NoError(err)
	suite.NotNil(rules)
	suite.Empty(next)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestRuleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RuleServiceTestSuite))
}
