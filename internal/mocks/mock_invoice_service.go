package mocks

import (
	"context"
	"io"
)

// MockInvoiceService implements domain.InvoiceService for testing
type MockInvoiceService struct {
	StreamFunc   func(ctx context.Context, orderID, requestingUserID string, w io.Writer) error
	FilenameFunc func(orderID string) string
}

// NewMockInvoiceService creates a new MockInvoiceService with default behaviors
func NewMockInvoiceService() *MockInvoiceService {
	return &MockInvoiceService{}
}

func (m *MockInvoiceService) Stream(ctx context.Context, orderID, requestingUserID string, w io.Writer) error {
	if m.StreamFunc != nil {
		return m.StreamFunc(ctx, orderID, requestingUserID, w)
	}
	_, err := w.Write([]byte("%PDF-1.4 test"))
	return err
}

func (m *MockInvoiceService) Filename(orderID string) string {
	if m.FilenameFunc != nil {
		return m.FilenameFunc(orderID)
	}
	return "invoice-" + orderID + ".pdf"
}
