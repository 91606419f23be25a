// Package investment serves the investor's portfolio read endpoints.
package investment

import (
	"context"

	"equifund/internal/models"
	"equifund/internal/repositories"
)

const defaultListLimit = 10

// SettingsProvider resolves the platform default currency.
type SettingsProvider interface {
	DefaultCurrencyID(ctx context.Context) (uint, error)
}

// InvestmentList pages the investor's history for one currency.
type InvestmentList struct {
	TotalCount      int64               `json:"totalCount"`
	Docs            []models.Investment `json:"docs"`
	DisplayLoadMore bool                `json:"displayLoadMore"`
}

type Service interface {
	// UniqueCurrencies lists the currencies the user has invested in.
	UniqueCurrencies(ctx context.Context, userID uint) ([]models.Currency, error)
	ListInvestments(ctx context.Context, userID, currencyID uint, limit int) (*InvestmentList, error)
}

type service struct {
	investments repositories.InvestmentRepository
	currencies  repositories.CurrencyRepository
	settings    SettingsProvider
}

func NewService(investments repositories.InvestmentRepository, currencies repositories.CurrencyRepository, settings SettingsProvider) Service {
	return &service{investments: investments, currencies: currencies, settings: settings}
}

func (s *service) UniqueCurrencies(ctx context.Context, userID uint) ([]models.Currency, error) {
	ids, err := s.investments.DistinctCurrencyIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []models.Currency{}, nil
	}
	return s.currencies.ListByIDs(ctx, ids)
}

func (s *service) ListInvestments(ctx context.Context, userID, currencyID uint, limit int) (*InvestmentList, error) {
	if currencyID == 0 {
		resolved, err := s.settings.DefaultCurrencyID(ctx)
		if err != nil {
			return nil, err
		}
		currencyID = resolved
	}
	if limit <= 0 {
		limit = defaultListLimit
	}

	totalCount, err := s.investments.CountByUserAndCurrency(ctx, userID, currencyID)
	if err != nil {
		return nil, err
	}
	docs, err := s.investments.ListByUserAndCurrency(ctx, userID, currencyID, limit)
	if err != nil {
		return nil, err
	}

	return &InvestmentList{
		TotalCount:      totalCount,
		Docs:            docs,
		DisplayLoadMore: totalCount > int64(len(docs)),
	}, nil
}
