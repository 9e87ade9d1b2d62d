package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/stockify/stockify-api/internal/domain/entity"
	"github.com/stockify/stockify-api/internal/domain/repository"
	"github.com/stockify/stockify-api/pkg/apperror"
)

// SettingsService handles the company profile and receipt customization.
// Settings are a single row per installation.
type SettingsService struct {
	settingsRepo repository.SettingsRepository
	orderRepo    repository.OrderRepository
	userRepo     repository.UserRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(
	settingsRepo repository.SettingsRepository,
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
		orderRepo:    orderRepo,
		userRepo:     userRepo,
	}
}

// GetSettings retrieves the settings row, creating defaults if none exists
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.Settings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if settings == nil {
		settings = &entity.Settings{
			CompanyName: "Stockify",
			Currency:    "USD",
		}
		if err := s.settingsRepo.Create(ctx, settings); err != nil {
			return nil, err
		}
	}

	return settings, nil
}

// UpdateSettingsInput represents the input for updating settings
type UpdateSettingsInput struct {
	CompanyName        *string
	Address            *string
	Phone              *string
	Email              *string
	TaxNumber          *string
	Currency           *string
	CompanyLogo        *string
	ReceiptHeader      *string
	ReceiptFooter      *string
	ReceiptHeaderImage *string
	ReceiptFooterImage *string
}

// UpdateSettings updates the settings row
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.Settings, error) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	if input.CompanyName != nil {
		if *input.CompanyName == "" {
			return nil, apperror.NewBadRequestError("Company name cannot be empty")
		}
		settings.CompanyName = *input.CompanyName
	}
	if input.Address != nil {
		settings.Address = input.Address
	}
	if input.Phone != nil {
		settings.Phone = input.Phone
	}
	if input.Email != nil {
		settings.Email = input.Email
	}
	if input.TaxNumber != nil {
		settings.TaxNumber = input.TaxNumber
	}
	if input.Currency != nil {
		if *input.Currency == "" {
			return nil, apperror.NewBadRequestError("Currency cannot be empty")
		}
		settings.Currency = *input.Currency
	}
	if input.CompanyLogo != nil {
		settings.CompanyLogo = input.CompanyLogo
	}
	if input.ReceiptHeader != nil {
		settings.ReceiptHeader = input.ReceiptHeader
	}
	if input.ReceiptFooter != nil {
		settings.ReceiptFooter = input.ReceiptFooter
	}
	if input.ReceiptHeaderImage != nil {
		settings.ReceiptHeaderImage = input.ReceiptHeaderImage
	}
	if input.ReceiptFooterImage != nil {
		settings.ReceiptFooterImage = input.ReceiptFooterImage
	}

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// BuildOrderReceipt composes a printable receipt from an order and the
// current settings
func (s *SettingsService) BuildOrderReceipt(ctx context.Context, orderID uuid.UUID) (*entity.Receipt, error) {
	order, err := s.orderRepo.GetWithItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			CompanyName: settings.CompanyName,
		},
		InvoiceNo:     order.InvoiceNo,
		Date:          order.OrderDate.Format("2006-01-02 15:04"),
		CustomerName:  order.CustomerName,
		CustomerPhone: order.CustomerPhone,
		PaymentMethod: order.PaymentMethod.String(),
		SubTotal:      float64(order.SubTotal) / 100,
		TaxAmount:     float64(order.TaxAmount) / 100,
		Total:         float64(order.Total) / 100,
		Paid:          float64(order.Paid) / 100,
		Due:           float64(order.Due) / 100,
		Currency:      settings.Currency,
	}

	if settings.Address != nil {
		receipt.Header.Address = *settings.Address
	}
	if settings.Phone != nil {
		receipt.Header.Phone = *settings.Phone
	}
	if settings.TaxNumber != nil {
		receipt.Header.TaxNumber = *settings.TaxNumber
	}
	if settings.ReceiptHeader != nil {
		receipt.Header.HeaderText = *settings.ReceiptHeader
	}
	if settings.ReceiptFooter != nil {
		receipt.FooterText = *settings.ReceiptFooter
	}

	cashier, err := s.userRepo.GetByID(ctx, order.UserID)
	if err == nil && cashier != nil {
		receipt.Cashier = fmt.Sprintf("%s %s", cashier.FirstName, cashier.LastName)
	}

	for _, item := range order.Items {
		receipt.Items = append(receipt.Items, entity.ReceiptItem{
			Name:      item.ProductName,
			SKU:       item.SKU,
			Quantity:  item.Quantity,
			UnitPrice: float64(item.UnitPrice) / 100,
			Total:     float64(item.SubTotal) / 100,
		})
	}

	return receipt, nil
}
