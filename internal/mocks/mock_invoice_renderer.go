package mocks

import (
	"io"

	"github.com/you/shopsvc/domain"
)

// MockInvoiceRenderer implements domain.InvoiceRenderer for testing
type MockInvoiceRenderer struct {
	RenderFunc func(order *domain.Order, w io.Writer) error
}

// NewMockInvoiceRenderer creates a new MockInvoiceRenderer with default behaviors
func NewMockInvoiceRenderer() *MockInvoiceRenderer {
	return &MockInvoiceRenderer{}
}

func (m *MockInvoiceRenderer) Render(order *domain.Order, w io.Writer) error {
	if m.RenderFunc != nil {
		return m.RenderFunc(order, w)
	}
	_, err := w.Write([]byte("rendered invoice " + order.ID.Hex()))
	return err
}
