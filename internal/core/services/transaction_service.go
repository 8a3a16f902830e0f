package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/ledgerflow/internal/apperrors"
	"github.com/SscSPs/ledgerflow/internal/core/allocation"
	"github.com/SscSPs/ledgerflow/internal/core/approval"
	"github.com/SscSPs/ledgerflow/internal/core/currency"
	"github.com/SscSPs/ledgerflow/internal/core/domain"
	"github.com/SscSPs/ledgerflow/internal/core/ledger"
	portsrepo "github.com/SscSPs/ledgerflow/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledgerflow/internal/core/ports/services"
	"github.com/SscSPs/ledgerflow/internal/core/reversal"
	"github.com/SscSPs/ledgerflow/internal/core/workflow"
	"github.com/SscSPs/ledgerflow/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultPostMaxRetries bounds how often a post or void is retried after a
// concurrent account modification.
const DefaultPostMaxRetries = 3

// transactionService implements the TransactionSvcFacade interface
type transactionService struct {
	BaseService
	txRepo       portsrepo.TransactionRepositoryFacade
	accountRepo  portsrepo.AccountReader
	orgRepo      portsrepo.OrganizationReader
	currencyRepo portsrepo.CurrencyReader
	rateRepo     portsrepo.ExchangeRateReader
	periodRepo   portsrepo.FiscalPeriodReader
	ruleRepo     portsrepo.ApprovalRuleReader

	maxRetries    int
	defaultPlaces int32
	fallbackRole  domain.UserRole
	now           func() time.Time
	newID         func() string
}

// TransactionServiceOption is a functional option for configuring the transaction service
type TransactionServiceOption func(*transactionService)

// WithTransactionAuthorizer sets the membership check used by every operation.
func WithTransactionAuthorizer(authorizer portssvc.OrganizationAuthorizerSvc) TransactionServiceOption {
	return func(s *transactionService) {
		s.OrganizationAuthorizer = authorizer
	}
}

// WithPostMaxRetries sets how many times a post or void is retried on a version conflict.
func WithPostMaxRetries(n int) TransactionServiceOption {
	return func(s *transactionService) {
		s.maxRetries = n
	}
}

// WithDefaultDecimalPlaces sets the precision used when neither the
// organization nor its functional currency defines one.
func WithDefaultDecimalPlaces(places int32) TransactionServiceOption {
	return func(s *transactionService) {
		s.defaultPlaces = places
	}
}

// WithFallbackApprovalRole sets the role required when no approval rule
// matches. An empty role makes unmatched approvals fail.
func WithFallbackApprovalRole(role domain.UserRole) TransactionServiceOption {
	return func(s *transactionService) {
		s.fallbackRole = role
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) TransactionServiceOption {
	return func(s *transactionService) {
		s.now = now
	}
}

// WithIDGenerator replaces uuid.NewString.
func WithIDGenerator(newID func() string) TransactionServiceOption {
	return func(s *transactionService) {
		s.newID = newID
	}
}

// NewTransactionService creates a new transaction service with the provided repositories and options
func NewTransactionService(repos portsrepo.RepositoryProvider, options ...TransactionServiceOption) portssvc.TransactionSvcFacade {
	svc := &transactionService{
		txRepo:        repos.TransactionRepo,
		accountRepo:   repos.AccountRepo,
		orgRepo:       repos.OrganizationRepo,
		currencyRepo:  repos.CurrencyRepo,
		rateRepo:      repos.ExchangeRateRepo,
		periodRepo:    repos.FiscalPeriodRepo,
		ruleRepo:      repos.ApprovalRuleRepo,
		maxRetries:    DefaultPostMaxRetries,
		defaultPlaces: domain.DefaultDecimalPlaces,
		fallbackRole:  domain.RoleApprover,
		now:           time.Now,
		newID:         uuid.NewString,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure transactionService implements the TransactionSvcFacade interface
var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// --- Reads ---

func (s *transactionService) GetTransaction(ctx context.Context, organizationID, transactionID, userID string) (*domain.Transaction, error) {
	if _, err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleViewer); err != nil {
		return nil, err
	}
	return s.loadTransaction(ctx, organizationID, transactionID)
}

func (s *transactionService) ListTransactions(ctx context.Context, organizationID, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	if _, err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleViewer); err != nil {
		return nil, err
	}

	filter := portsrepo.ListTransactionsFilter{Limit: params.Limit}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if params.Status != "" {
		status, err := domain.ParseTransactionStatus(params.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		filter.Status = &status
	}
	if params.NextToken != "" {
		filter.NextToken = &params.NextToken
	}

	txs, nextToken, err := s.txRepo.ListTransactions(ctx, organizationID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions",
			slog.String("organization_id", organizationID))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	resp := dto.ToListTransactionsResponse(txs, nextToken)
	return &resp, nil
}

func (s *transactionService) GetAuditTrail(ctx context.Context, organizationID, transactionID, userID string) ([]domain.AuditRecord, error) {
	if _, err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleViewer); err != nil {
		return nil, err
	}
	if _, err := s.loadTransaction(ctx, organizationID, transactionID); err != nil {
		return nil, err
	}
	records, err := s.txRepo.ListAuditRecords(ctx, transactionID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list audit records",
			slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to list audit records: %w", err)
	}
	return records, nil
}

// --- Entry writes ---

func (s *transactionService) CreateTransaction(ctx context.Context, organizationID string, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error) {
	if _, err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleSubmitter); err != nil {
		return nil, err
	}

	org, err := s.loadOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	places, err := s.decimalPlaces(ctx, org)
	if err != nil {
		return nil, err
	}

	lines, err := expandEntries(req.Entries, places)
	if err != nil {
		s.LogDebug(ctx, "Transaction entries rejected",
			slog.String("organization_id", organizationID),
			slog.String("error", err.Error()))
		return nil, err
	}

	tx, err := s.newTransaction(ctx, org, places, dto.ToCreateTransactionInput(organizationID, req, lines, userID))
	if err != nil {
		s.LogDebug(ctx, "Transaction rejected",
			slog.String("organization_id", organizationID),
			slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.txRepo.CreateTransaction(ctx, *tx); err != nil {
		s.LogError(ctx, err, "Failed to save transaction",
			slog.String("transaction_id", tx.TransactionID))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", tx.TransactionID),
		slog.String("organization_id", organizationID),
		slog.String("total", tx.TotalAmount.String()),
		slog.Int("entries", len(tx.Entries)))
	return tx, nil
}

// newTransaction builds a Draft aggregate from input. Nothing is saved.
func (s *transactionService) newTransaction(ctx context.Context, org *domain.Organization, places int32, input domain.CreateTransactionInput) (*domain.Transaction, error) {
	if !input.Type.IsValid() {
		return nil, fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, string(input.Type))
	}

	date := truncateToDate(input.Date)
	period, err := s.resolvePeriod(ctx, input.OrganizationID, input.FiscalPeriodID, date)
	if err != nil {
		return nil, err
	}

	txID := s.newID()
	entries, totals, err := s.prepareEntries(ctx, org, places, txID, input.Entries, date)
	if err != nil {
		return nil, err
	}

	return &domain.Transaction{
		TransactionID:  txID,
		OrganizationID: input.OrganizationID,
		FiscalPeriodID: period.FiscalPeriodID,
		Type:           input.Type,
		Date:           date,
		Currency:       org.FunctionalCurrency,
		Description:    input.Description,
		Reference:      input.Reference,
		TotalAmount:    totals.FunctionalDebit,
		Status:         domain.StatusDraft,
		Entries:        entries,
		AuditFields:    domain.NewAuditFields(input.CreatedBy, s.now()),
	}, nil
}

func (s *transactionService) ReplaceEntries(ctx context.Context, organizationID, transactionID string, req dto.ReplaceEntriesRequest, userID string) (*domain.Transaction, error) {
	if _, err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleSubmitter); err != nil {
		return nil, err
	}

	tx, err := s.loadTransaction(ctx, organizationID, transactionID)
	if err != nil {
		return nil, err
	}
	if !tx.IsEditable() {
		return nil, fmt.Errorf("%w: status is %s", apperrors.ErrNotEditable, tx.Status)
	}

	org, err := s.loadOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	places, err := s.decimalPlaces(ctx, org)
	if err != nil {
		return nil, err
	}
	inputs, err := expandEntries(req.Entries, places)
	if err != nil {
		return nil, err
	}
	entries, totals, err := s.prepareEntries(ctx, org, places, tx.TransactionID, inputs, tx.Date)
	if err != nil {
		return nil, err
	}

	updated := *tx
	updated.Entries = entries
	updated.TotalAmount = totals.FunctionalDebit
	if req.Description != nil {
		updated.Description = *req.Description
	}
	updated.Touch(userID, s.now())

	if err := s.txRepo.ReplaceEntries(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to replace transaction entries",
			slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to replace entries: %w", err)
	}

	s.LogInfo(ctx, "Transaction entries replaced",
		slog.String("transaction_id", transactionID),
		slog.Int("entries", len(entries)))
	return &updated, nil
}

// --- Workflow ---

func (s *transactionService) Submit(ctx context.Context, organizationID, transactionID, userID string) (*domain.Transaction, error) {
	if _, err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleSubmitter); err != nil {
		return nil, err
	}
	tx, err := s.loadTransaction(ctx, organizationID, transactionID)
	if err != nil {
		return nil, err
	}

	updated, record, err := s.applyCommand(tx, workflow.Submit{Actor: userID, At: s.now()})
	if err != nil {
		return nil, err
	}
	if err := ledger.Validate(ledger.LinesFromEntries(updated.Entries)); err != nil {
		return nil, err
	}
	return s.saveTransition(ctx, updated, tx.Status, record)
}

func (s *transactionService) Approve(ctx context.Context, organizationID, transactionID string, req dto.ApproveTransactionRequest, userID string) (*domain.Transaction, error) {
	membership, err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleViewer)
	if err != nil {
		return nil, err
	}
	tx, err := s.loadTransaction(ctx, organizationID, transactionID)
	if err != nil {
		return nil, err
	}

	updated, record, err := s.applyCommand(tx, workflow.Approve{Actor: userID, At: s.now(), Notes: req.Notes})
	if err != nil {
		return nil, err
	}
	if err := s.authorizeApproval(ctx, tx, membership); err != nil {
		return nil, err
	}
	return s.saveTransition(ctx, updated, tx.Status, record)
}

func (s *transactionService) Reject(ctx context.Context, organizationID, transactionID string, req dto.RejectTransactionRequest, userID string) (*domain.Transaction, error) {
	membership, err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleViewer)
	if err != nil {
		return nil, err
	}
	tx, err := s.loadTransaction(ctx, organizationID, transactionID)
	if err != nil {
		return nil, err
	}

	updated, record, err := s.applyCommand(tx, workflow.Reject{Actor: userID, At: s.now(), Reason: req.Reason})
	if err != nil {
		return nil, err
	}
	if err := s.authorizeApproval(ctx, tx, membership); err != nil {
		return nil, err
	}
	return s.saveTransition(ctx, updated, tx.Status, record)
}

func (s *transactionService) Post(ctx context.Context, organizationID, transactionID, userID string) (*domain.Transaction, error) {
	membership, err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleAccountant)
	if err != nil {
		return nil, err
	}
	tx, err := s.loadTransaction(ctx, organizationID, transactionID)
	if err != nil {
		return nil, err
	}

	updated, record, err := s.applyCommand(tx, workflow.Post{Actor: userID, At: s.now()})
	if err != nil {
		return nil, err
	}

	period, err := s.loadPeriod(ctx, organizationID, tx.FiscalPeriodID)
	if err != nil {
		return nil, err
	}
	if err := domain.CanPostToPeriod(period.Status, membership.Role); err != nil {
		return nil, fmt.Errorf("%w: %s", err, period.Name)
	}

	err = s.withRetry(ctx, "post", transactionID, func() error {
		effects, err := s.balanceEffects(ctx, organizationID, updated.Entries)
		if err != nil {
			return err
		}
		return s.txRepo.PostTransaction(ctx, updated, record, effects)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to post transaction",
			slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to post transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction posted",
		slog.String("transaction_id", transactionID),
		slog.String("fiscal_period_id", period.FiscalPeriodID))
	return &updated, nil
}

func (s *transactionService) Void(ctx context.Context, organizationID, transactionID string, req dto.VoidTransactionRequest, userID string) (*domain.Transaction, *domain.Transaction, error) {
	membership, err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleAccountant)
	if err != nil {
		return nil, nil, err
	}
	original, err := s.loadTransaction(ctx, organizationID, transactionID)
	if err != nil {
		return nil, nil, err
	}

	updated, record, err := s.applyCommand(original, workflow.Void{Actor: userID, At: s.now(), Reason: req.Reason})
	if err != nil {
		return nil, nil, err
	}

	periodID, date := original.FiscalPeriodID, original.Date
	if req.FiscalPeriodID != nil && *req.FiscalPeriodID != "" {
		periodID = *req.FiscalPeriodID
	}
	if req.Date != nil {
		date = truncateToDate(*req.Date)
	}
	period, err := s.resolvePeriod(ctx, organizationID, periodID, date)
	if err != nil {
		return nil, nil, err
	}
	if err := domain.CanPostToPeriod(period.Status, membership.Role); err != nil {
		return nil, nil, fmt.Errorf("%w: %s", err, period.Name)
	}

	snapshot := original.Snapshot()
	if !reversal.ValidateReversal(snapshot) {
		return nil, nil, fmt.Errorf("%w: posted transaction %s does not balance", apperrors.ErrInternal, transactionID)
	}
	result := reversal.CreateReversingEntries(reversal.Input{
		OriginalTransactionID: original.TransactionID,
		OriginalEntries:       snapshot,
		FiscalPeriodID:        period.FiscalPeriodID,
		VoidedBy:              userID,
		VoidReason:            record.Notes,
	})

	at := record.At
	reversingID := s.newID()
	originalID := original.TransactionID
	postedBy := result.CreatedBy
	reversing := domain.Transaction{
		TransactionID:  reversingID,
		OrganizationID: organizationID,
		FiscalPeriodID: result.FiscalPeriodID,
		Type:           original.Type,
		Date:           date,
		Currency:       original.Currency,
		Description:    result.Description,
		Reference:      original.Reference,
		TotalAmount:    original.TotalAmount,
		Status:         domain.StatusPosted,
		Entries:        reversal.ToLedgerEntries(reversingID, result.ReversingEntries, s.newID),
		PostedBy:       &postedBy,
		PostedAt:       &at,
		ReversalOfID:   &originalID,
		AuditFields:    domain.NewAuditFields(result.CreatedBy, at),
	}
	updated.ReversedByID = &reversingID

	err = s.withRetry(ctx, "void", transactionID, func() error {
		effects, err := s.balanceEffects(ctx, organizationID, reversing.Entries)
		if err != nil {
			return err
		}
		return s.txRepo.VoidTransaction(ctx, updated, record, reversing, effects)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to void transaction",
			slog.String("transaction_id", transactionID))
		return nil, nil, fmt.Errorf("failed to void transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction voided",
		slog.String("transaction_id", transactionID),
		slog.String("reversing_transaction_id", reversingID))
	return &updated, &reversing, nil
}

// --- helpers ---

func (s *transactionService) applyCommand(tx *domain.Transaction, cmd workflow.Command) (domain.Transaction, domain.AuditRecord, error) {
	updated := *tx
	record, err := workflow.ApplyTo(&updated, cmd)
	if err != nil {
		return domain.Transaction{}, domain.AuditRecord{}, err
	}
	record.AuditID = s.newID()
	return updated, record, nil
}

func (s *transactionService) saveTransition(ctx context.Context, updated domain.Transaction, from domain.TransactionStatus, record domain.AuditRecord) (*domain.Transaction, error) {
	if err := s.txRepo.SaveTransition(ctx, updated, from, record); err != nil {
		s.LogError(ctx, err, "Failed to save status transition",
			slog.String("transaction_id", updated.TransactionID),
			slog.String("action", string(record.Action)))
		return nil, fmt.Errorf("failed to save transition: %w", err)
	}
	s.LogInfo(ctx, "Transaction status changed",
		slog.String("transaction_id", updated.TransactionID),
		slog.String("from", string(from)),
		slog.String("to", string(updated.Status)))
	return &updated, nil
}

func (s *transactionService) authorizeApproval(ctx context.Context, tx *domain.Transaction, membership *domain.Membership) error {
	rules, err := s.ruleRepo.ListApprovalRules(ctx, tx.OrganizationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list approval rules",
			slog.String("organization_id", tx.OrganizationID))
		return fmt.Errorf("failed to list approval rules: %w", err)
	}
	rule, err := approval.Authorize(rules, tx.Type, tx.TotalAmount, *membership, s.fallbackRole)
	if err != nil {
		s.LogDebug(ctx, "Approval denied",
			slog.String("transaction_id", tx.TransactionID),
			slog.String("rule", rule.Name),
			slog.String("role", string(membership.Role)),
			slog.String("error", err.Error()))
		return err
	}
	return nil
}

// withRetry runs fn again with a fresh account snapshot while it fails with a
// retryable error, at most maxRetries extra times.
func (s *transactionService) withRetry(ctx context.Context, operation, transactionID string, fn func() error) error {
	for attempt := 0; ; attempt++ {
		err := fn()
		if err == nil || !apperrors.IsRetryable(err) || attempt >= s.maxRetries {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		s.LogWarn(ctx, "Concurrent account modification, retrying",
			slog.String("operation", operation),
			slog.String("transaction_id", transactionID),
			slog.Int("attempt", attempt+1),
			slog.String("error", err.Error()))
	}
}

func (s *transactionService) balanceEffects(ctx context.Context, organizationID string, entries []domain.LedgerEntry) ([]ledger.BalanceEffect, error) {
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.AccountID)
	}
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, organizationID, uniqueStrings(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	return ledger.BalanceEffects(entries, accounts)
}

// prepareEntries converts every line into the functional currency, validates
// the result and numbers the lines.
func (s *transactionService) prepareEntries(ctx context.Context, org *domain.Organization, places int32, txID string, inputs []domain.LedgerEntryInput, date time.Time) ([]domain.LedgerEntry, domain.TransactionTotals, error) {
	if err := ledger.ValidateInputs(inputs); err != nil {
		return nil, domain.TransactionTotals{}, err
	}

	rates := make(currency.Rates)
	for _, code := range currency.ForeignCurrencies(inputs, org.FunctionalCurrency) {
		rate, err := s.rateRepo.FindExchangeRate(ctx, code, org.FunctionalCurrency, date)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, domain.TransactionTotals{}, fmt.Errorf("%w: %s to %s on %s",
					apperrors.ErrRateNotFound, code, org.FunctionalCurrency, date.Format(time.DateOnly))
			}
			return nil, domain.TransactionTotals{}, fmt.Errorf("failed to look up exchange rate %s to %s: %w", code, org.FunctionalCurrency, err)
		}
		rates[code] = *rate
	}

	resolved, err := currency.ResolveEntries(inputs, org.FunctionalCurrency, date, rates, places)
	if err != nil {
		return nil, domain.TransactionTotals{}, err
	}
	lines := ledger.LinesFromResolved(resolved)
	if err := ledger.Validate(lines); err != nil {
		return nil, domain.TransactionTotals{}, err
	}

	if err := s.checkAccounts(ctx, org.OrganizationID, inputs); err != nil {
		return nil, domain.TransactionTotals{}, err
	}

	entries := make([]domain.LedgerEntry, len(resolved))
	for i, r := range resolved {
		entries[i] = domain.LedgerEntry{
			EntryID:          s.newID(),
			TransactionID:    txID,
			LineNumber:       i + 1,
			AccountID:        r.AccountID,
			EntryType:        r.EntryType,
			Amount:           r.SourceAmount,
			Currency:         r.SourceCurrency,
			ExchangeRate:     r.ExchangeRate,
			FunctionalAmount: r.FunctionalAmount,
			Memo:             r.Memo,
			Dimensions:       r.Dimensions,
		}
	}
	return entries, ledger.ComputeTotals(lines), nil
}

func (s *transactionService) checkAccounts(ctx context.Context, organizationID string, inputs []domain.LedgerEntryInput) error {
	ids := make([]string, 0, len(inputs))
	for _, in := range inputs {
		ids = append(ids, in.AccountID)
	}
	ids = uniqueStrings(ids)

	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, organizationID, ids)
	if err != nil {
		return fmt.Errorf("failed to load accounts: %w", err)
	}
	for _, id := range ids {
		account, ok := accounts[id]
		if !ok {
			return fmt.Errorf("%w: %s", apperrors.ErrAccountNotFound, id)
		}
		if !account.IsActive {
			return fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, id)
		}
	}
	return nil
}

// decimalPlaces picks the organization's precision, else its functional
// currency's, else the configured default.
func (s *transactionService) decimalPlaces(ctx context.Context, org *domain.Organization) (int32, error) {
	if org.DecimalPlaces != nil {
		return *org.DecimalPlaces, nil
	}
	cur, err := s.currencyRepo.FindCurrencyByCode(ctx, org.FunctionalCurrency)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return s.defaultPlaces, nil
		}
		return 0, fmt.Errorf("failed to load functional currency %s: %w", org.FunctionalCurrency, err)
	}
	if cur.Precision != nil {
		return *cur.Precision, nil
	}
	return s.defaultPlaces, nil
}

func (s *transactionService) loadOrganization(ctx context.Context, organizationID string) (*domain.Organization, error) {
	org, err := s.orgRepo.FindOrganizationByID(ctx, organizationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrOrganizationNotFound, organizationID)
		}
		return nil, fmt.Errorf("failed to load organization: %w", err)
	}
	return org, nil
}

func (s *transactionService) loadTransaction(ctx context.Context, organizationID, transactionID string) (*domain.Transaction, error) {
	tx, err := s.txRepo.FindTransactionByID(ctx, organizationID, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrTransactionNotFound, transactionID)
		}
		s.LogError(ctx, err, "Failed to load transaction",
			slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to load transaction: %w", err)
	}
	return tx, nil
}

func (s *transactionService) loadPeriod(ctx context.Context, organizationID, fiscalPeriodID string) (*domain.FiscalPeriod, error) {
	period, err := s.periodRepo.FindFiscalPeriodByID(ctx, organizationID, fiscalPeriodID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrFiscalPeriodNotFound, fiscalPeriodID)
		}
		return nil, fmt.Errorf("failed to load fiscal period: %w", err)
	}
	return period, nil
}

// resolvePeriod finds the period by ID, or by date when no ID is given, and
// checks that date falls inside it.
func (s *transactionService) resolvePeriod(ctx context.Context, organizationID, fiscalPeriodID string, date time.Time) (*domain.FiscalPeriod, error) {
	if fiscalPeriodID == "" {
		period, err := s.periodRepo.FindFiscalPeriodForDate(ctx, organizationID, date)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: none covers %s", apperrors.ErrFiscalPeriodNotFound, date.Format(time.DateOnly))
			}
			return nil, fmt.Errorf("failed to find fiscal period: %w", err)
		}
		return period, nil
	}

	period, err := s.loadPeriod(ctx, organizationID, fiscalPeriodID)
	if err != nil {
		return nil, err
	}
	if !period.Contains(date) {
		return nil, fmt.Errorf("%w: date %s is outside fiscal period %s", apperrors.ErrValidation, date.Format(time.DateOnly), period.Name)
	}
	return period, nil
}

// expandEntries turns request lines into engine inputs, dividing split lines
// across their targets.
func expandEntries(reqs []dto.EntryRequest, places int32) ([]domain.LedgerEntryInput, error) {
	inputs := make([]domain.LedgerEntryInput, 0, len(reqs))
	for i, r := range reqs {
		entryType, err := domain.ParseEntryType(r.EntryType)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", apperrors.ErrValidation, i, err)
		}
		input := domain.LedgerEntryInput{
			AccountID:  r.AccountID,
			EntryType:  entryType,
			Amount:     r.Amount,
			Currency:   r.Currency,
			Memo:       r.Memo,
			Dimensions: domain.Dimensions(r.Dimensions).Clone(),
		}
		if len(r.Split) == 0 {
			inputs = append(inputs, input)
			continue
		}

		targets, err := splitTargets(r.Split)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		parts, err := allocation.SplitEntry(input, targets, places)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		inputs = append(inputs, parts...)
	}
	return inputs, nil
}

// splitTargets applies equal weights when no target names a percentage.
func splitTargets(reqs []dto.SplitTargetRequest) ([]allocation.SplitTarget, error) {
	withPercentage := 0
	for _, r := range reqs {
		if r.Percentage != nil {
			withPercentage++
		}
	}
	if withPercentage != 0 && withPercentage != len(reqs) {
		return nil, fmt.Errorf("%w: give a percentage for every split target or for none", apperrors.ErrInvalidAllocation)
	}

	targets := make([]allocation.SplitTarget, len(reqs))
	for i, r := range reqs {
		weight := decimal.NewFromInt(1)
		if r.Percentage != nil {
			weight = *r.Percentage
		}
		targets[i] = allocation.SplitTarget{AccountID: r.AccountID, Percentage: weight, Memo: r.Memo}
	}
	return targets, nil
}

func uniqueStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
