package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/ikkim/storefront/pkg/logger"
	"github.com/xuri/excelize/v2"
)

const cartSheet = "Cart"

var cartExportHeader = []interface{}{"Product ID", "Name", "Category", "Unit Price", "Quantity", "Line Total"}

// ExportService renders a session's cart as a spreadsheet
type ExportService interface {
	ExportCart(ctx context.Context, sessionID string) (*bytes.Buffer, error)
}

type exportService struct {
	carts CartService
}

func NewExportService(carts CartService) ExportService {
	return &exportService{carts: carts}
}

// ExportCart writes one row per line item in cart order followed by a totals row
func (s *exportService) ExportCart(ctx context.Context, sessionID string) (*bytes.Buffer, error) {
	summary, err := s.carts.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), cartSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	rows := [][]interface{}{cartExportHeader}
	for _, item := range summary.Items {
		rows = append(rows, []interface{}{item.ID, item.Name, item.Category, item.Price, item.Quantity, item.Total()})
	}
	rows = append(rows, []interface{}{"", "Total", "", "", summary.Count, summary.Subtotal})

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(cartSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	logger.Info("Cart exported", map[string]interface{}{
		"session_id": sessionID,
		"lines":      summary.Lines,
		"bytes":      buf.Len(),
	})
	return buf, nil
}
