package services

import (
	portsrepo "github.com/SscSPs/ledgerflow/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledgerflow/internal/core/ports/services"
	"github.com/SscSPs/ledgerflow/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Initialize organization service first since every other service authorizes through it
	container.Organization = NewOrganizationService(repos.OrganizationRepo, repos.CurrencyRepo)
	authorizer := container.Organization.(portssvc.OrganizationAuthorizerSvc)

	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.ExchangeRate = NewExchangeRateService(repos.ExchangeRateRepo, container.Currency)
	container.Account = NewAccountService(
		repos.AccountRepo,
		WithAccountAuthorizer(authorizer),
		WithCurrencyRepository(repos.CurrencyRepo),
	)
	container.FiscalPeriod = NewFiscalPeriodService(repos.FiscalPeriodRepo, authorizer)
	container.ApprovalRule = NewApprovalRuleService(repos.ApprovalRuleRepo, authorizer)
	container.Transaction = NewTransactionService(
		repos,
		WithTransactionAuthorizer(authorizer),
		WithPostMaxRetries(cfg.PostMaxRetries),
		WithDefaultDecimalPlaces(cfg.DefaultDecimalPlaces),
		WithFallbackApprovalRole(cfg.DefaultApprovalRole),
	)

	return container
}
