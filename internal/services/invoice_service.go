package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/you/shopsvc/domain"
)

// InvoiceServiceImpl implements domain.InvoiceService. Rendering writes to
// the caller's stream and a durable file through one MultiWriter, so both
// destinations see the identical byte stream.
type InvoiceServiceImpl struct {
	orderRepo domain.OrderRepository
	renderer  domain.InvoiceRenderer
	dir       string
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(orderRepo domain.OrderRepository, renderer domain.InvoiceRenderer, dir string) domain.InvoiceService {
	return &InvoiceServiceImpl{
		orderRepo: orderRepo,
		renderer:  renderer,
		dir:       dir,
	}
}

// Filename implements domain.InvoiceService
func (s *InvoiceServiceImpl) Filename(orderID string) string {
	return "invoice-" + orderID + ".pdf"
}

// Stream implements domain.InvoiceService. Ownership is checked before a
// single byte is written to w.
func (s *InvoiceServiceImpl) Stream(ctx context.Context, orderID, requestingUserID string, w io.Writer) error {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}

	if order.User.UserID.Hex() != requestingUserID {
		return domain.ErrNotAuthorized
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create invoice dir: %w", err)
	}

	path := filepath.Join(s.dir, s.Filename(orderID))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create invoice file: %w", err)
	}
	defer f.Close()

	if err := s.renderer.Render(order, io.MultiWriter(w, f)); err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to render invoice: %w", err)
	}

	return nil
}
