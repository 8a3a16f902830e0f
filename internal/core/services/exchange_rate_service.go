package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/ledgerflow/internal/apperrors"
	"github.com/SscSPs/ledgerflow/internal/core/domain"
	portsrepo "github.com/SscSPs/ledgerflow/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledgerflow/internal/core/ports/services"
	"github.com/SscSPs/ledgerflow/internal/dto"
	"github.com/google/uuid"
)

// exchangeRateService provides business logic for exchange rates.
type exchangeRateService struct {
	BaseService
	rateRepo        portsrepo.ExchangeRateRepositoryFacade
	currencyService portssvc.CurrencySvcFacade
}

// NewExchangeRateService creates a new exchange rate service.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade, currencyService portssvc.CurrencySvcFacade) portssvc.ExchangeRateSvcFacade {
	return &exchangeRateService{
		rateRepo:        rateRepo,
		currencyService: currencyService,
	}
}

var _ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)

// CreateExchangeRate handles the creation of a new exchange rate.
func (s *exchangeRateService) CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, userID string) (*domain.ExchangeRate, error) {
	from := strings.ToUpper(req.FromCurrencyCode)
	to := strings.ToUpper(req.ToCurrencyCode)

	if !req.Rate.IsPositive() {
		return nil, fmt.Errorf("%w: got %s", apperrors.ErrInvalidExchangeRate, req.Rate.String())
	}
	if !req.Rate.Equal(req.Rate.Truncate(domain.MaxRateScale)) {
		return nil, fmt.Errorf("%w: rate %s has more than %d decimal places",
			apperrors.ErrValidation, req.Rate.String(), domain.MaxRateScale)
	}
	if from == to {
		return nil, fmt.Errorf("%w: from and to currency codes cannot be the same", apperrors.ErrValidation)
	}

	method := domain.RateManual
	if req.Method != "" {
		method = domain.RateMethod(req.Method)
		if !method.IsValid() || method == domain.RateIdentity {
			return nil, fmt.Errorf("%w: unknown rate method %q", apperrors.ErrValidation, req.Method)
		}
	}

	for _, code := range []string{from, to} {
		if _, err := s.currencyService.GetCurrencyByCode(ctx, code); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: currency code '%s' not found", apperrors.ErrValidation, code)
			}
			return nil, fmt.Errorf("failed to validate currency '%s': %w", code, err)
		}
	}

	rate := domain.ExchangeRate{
		ExchangeRateID:   uuid.NewString(),
		FromCurrencyCode: from,
		ToCurrencyCode:   to,
		Rate:             req.Rate,
		DateEffective:    truncateToDate(req.DateEffective),
		Method:           method,
		AuditFields:      domain.NewAuditFields(userID, time.Now()),
	}

	if err := s.rateRepo.SaveExchangeRate(ctx, rate); err != nil {
		s.LogError(ctx, err, "Failed to save exchange rate",
			slog.String("from", from), slog.String("to", to))
		return nil, fmt.Errorf("failed to create exchange rate: %w", err)
	}

	s.LogInfo(ctx, "Exchange rate created",
		slog.String("from", from),
		slog.String("to", to),
		slog.String("rate", rate.Rate.String()))
	return &rate, nil
}

// GetExchangeRate retrieves the rate for a currency pair effective on asOf.
func (s *exchangeRateService) GetExchangeRate(ctx context.Context, fromCode, toCode string, asOf time.Time) (*domain.ExchangeRate, error) {
	fromCode = strings.ToUpper(fromCode)
	toCode = strings.ToUpper(toCode)
	if len(fromCode) != 3 || len(toCode) != 3 {
		return nil, fmt.Errorf("%w: currency codes must be 3 letters", apperrors.ErrValidation)
	}
	date := truncateToDate(asOf)
	if fromCode == toCode {
		identity := domain.IdentityRate(fromCode, date)
		return &identity, nil
	}

	rate, err := s.rateRepo.FindExchangeRate(ctx, fromCode, toCode, date)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s to %s on %s", apperrors.ErrRateNotFound, fromCode, toCode, date.Format(time.DateOnly))
		}
		s.LogError(ctx, err, "Failed to get exchange rate",
			slog.String("from", fromCode), slog.String("to", toCode))
		return nil, fmt.Errorf("failed to get exchange rate: %w", err)
	}
	return rate, nil
}
