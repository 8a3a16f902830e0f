package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/ledgerflow/internal/apperrors"
	"github.com/SscSPs/ledgerflow/internal/core/approval"
	"github.com/SscSPs/ledgerflow/internal/core/domain"
	portssvc "github.com/SscSPs/ledgerflow/internal/core/ports/services"
	"github.com/SscSPs/ledgerflow/internal/core/services"
	"github.com/SscSPs/ledgerflow/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type OrganizationServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	orgRepo *MockOrganizationRepository
	curRepo *MockCurrencyRepository
	service portssvc.OrganizationSvcFacade
}

func (suite *OrganizationServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.orgRepo = new(MockOrganizationRepository)
	suite.curRepo = new(MockCurrencyRepository)
	suite.service = services.NewOrganizationService(suite.orgRepo, suite.curRepo)
}

func TestOrganizationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationServiceTestSuite))
}

func (suite *OrganizationServiceTestSuite) TestCreateOrganization_CreatorBecomesOwner() {
	places := int32(2)
	suite.curRepo.On("FindCurrencyByCode", mock.Anything, "USD").Return(&domain.Currency{CurrencyCode: "USD"}, nil)
	suite.orgRepo.On("SaveOrganization", mock.Anything,
		mock.MatchedBy(func(o domain.Organization) bool { return o.Name == "Acme" && o.IsActive && o.OrganizationID != "" }),
		mock.MatchedBy(func(m domain.Membership) bool { return m.UserID == testUserID && m.Role == domain.RoleOwner }),
	).Return(nil).Once()

	org, err := suite.service.CreateOrganization(suite.ctx, dto.CreateOrganizationRequest{
		Name:               "Acme",
		FunctionalCurrency: "USD",
		DecimalPlaces:      &places,
	}, testUserID)

	suite.Require().NoError(err)
	suite.Equal("USD", org.FunctionalCurrency)
	suite.Equal(int32(2), org.Places())
	suite.Equal(testUserID, org.CreatedBy)
	suite.orgRepo.AssertExpectations(suite.T())
}

func (suite *OrganizationServiceTestSuite) TestCreateOrganization_UnknownCurrency() {
	suite.curRepo.On("FindCurrencyByCode", mock.Anything, "XXX").Return(nil, apperrors.ErrNotFound)

	_, err := suite.service.CreateOrganization(suite.ctx, dto.CreateOrganizationRequest{Name: "Acme", FunctionalCurrency: "XXX"}, testUserID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.orgRepo.AssertNotCalled(suite.T(), "SaveOrganization", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OrganizationServiceTestSuite) TestAddMember() {
	suite.orgRepo.On("FindMembership", mock.Anything, testOrgID, testUserID).
		Return(&domain.Membership{UserID: testUserID, OrganizationID: testOrgID, Role: domain.RoleAdmin}, nil)
	suite.orgRepo.On("SaveMembership", mock.Anything, mock.AnythingOfType("domain.Membership")).Return(nil).Once()

	m, err := suite.service.AddMember(suite.ctx, testOrgID, dto.AddMemberRequest{
		UserID:        "user-2",
		Role:          "APPROVER",
		ApprovalLimit: decPtr("5000"),
	}, testUserID)

	suite.Require().NoError(err)
	suite.Equal(domain.RoleApprover, m.Role)
	suite.True(m.ApprovalLimit.Equal(dec("5000")))
	suite.orgRepo.AssertExpectations(suite.T())
}

func (suite *OrganizationServiceTestSuite) TestAddMember_CannotGrantAboveOwnRole() {
	suite.orgRepo.On("FindMembership", mock.Anything, testOrgID, testUserID).
		Return(&domain.Membership{UserID: testUserID, OrganizationID: testOrgID, Role: domain.RoleAdmin}, nil)

	_, err := suite.service.AddMember(suite.ctx, testOrgID, dto.AddMemberRequest{UserID: "user-2", Role: "OWNER"}, testUserID)

	suite.ErrorIs(err, apperrors.ErrInsufficientRole)
	suite.orgRepo.AssertNotCalled(suite.T(), "SaveMembership", mock.Anything, mock.Anything)
}

func (suite *OrganizationServiceTestSuite) TestAddMember_RequiresAdmin() {
	suite.orgRepo.On("FindMembership", mock.Anything, testOrgID, testUserID).
		Return(&domain.Membership{UserID: testUserID, OrganizationID: testOrgID, Role: domain.RoleApprover}, nil)

	_, err := suite.service.AddMember(suite.ctx, testOrgID, dto.AddMemberRequest{UserID: "user-2", Role: "VIEWER"}, testUserID)

	var roleErr *approval.InsufficientRoleError
	suite.Require().ErrorAs(err, &roleErr)
	suite.Equal(domain.RoleAdmin, roleErr.Required)
}

func (suite *OrganizationServiceTestSuite) TestGetOrganization_NotFound() {
	suite.orgRepo.On("FindMembership", mock.Anything, testOrgID, testUserID).
		Return(&domain.Membership{Role: domain.RoleViewer}, nil)
	suite.orgRepo.On("FindOrganizationByID", mock.Anything, testOrgID).Return(nil, apperrors.ErrNotFound)

	_, err := suite.service.GetOrganization(suite.ctx, testOrgID, testUserID)
	suite.ErrorIs(err, apperrors.ErrOrganizationNotFound)
}

func (suite *OrganizationServiceTestSuite) TestListUserOrganizations_EmptyIsNotNil() {
	suite.orgRepo.On("ListOrganizationsByUser", mock.Anything, testUserID).Return(nil, nil)

	orgs, err := suite.service.ListUserOrganizations(suite.ctx, testUserID)
	suite.Require().NoError(err)
	suite.NotNil(orgs)
	suite.Empty(orgs)
}

func TestAuthorizeUserAction(t *testing.T) {
	tests := []struct {
		name     string
		found    *domain.Membership
		findErr  error
		required domain.UserRole
		wantErr  error
	}{
		{"owner meets admin", &domain.Membership{Role: domain.RoleOwner}, nil, domain.RoleAdmin, nil},
		{"viewer misses submitter", &domain.Membership{Role: domain.RoleViewer}, nil, domain.RoleSubmitter, apperrors.ErrInsufficientRole},
		{"missing membership", nil, apperrors.ErrNotFound, domain.RoleViewer, apperrors.ErrNotMember},
		{"repository failure", nil, assert.AnError, domain.RoleViewer, assert.AnError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orgRepo := new(MockOrganizationRepository)
			if tt.found != nil {
				orgRepo.On("FindMembership", mock.Anything, testOrgID, testUserID).Return(tt.found, nil)
			} else {
				orgRepo.On("FindMembership", mock.Anything, testOrgID, testUserID).Return(nil, tt.findErr)
			}
			svc := services.NewOrganizationService(orgRepo, new(MockCurrencyRepository))
			authorizer := svc.(portssvc.OrganizationAuthorizerSvc)

			m, err := authorizer.AuthorizeUserAction(context.Background(), testUserID, testOrgID, tt.required)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				assert.Equal(t, tt.found.Role, m.Role)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, m)
		})
	}
}
