package exporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/minhqn/price-intel/model"
	"github.com/xuri/excelize/v2"
)

// Column order mirrors the report the web UI used to export.
var headers = []string{"Tên Sản Phẩm", "Cửa Hàng", "Giá (VND)", "Giá Gốc (VND)", "Đơn Vị", "Link"}

const defaultSheet = "Sản Phẩm"

// Sheet names are capped at 31 chars by the xlsx format.
const maxSheetName = 31

// BuildWorkbook renders a MarketAnalysis into an xlsx workbook. Flat results
// get a single sheet; grouped results get one sheet per variant.
func BuildWorkbook(analysis *model.MarketAnalysis) (*excelize.File, error) {
	f := excelize.NewFile()

	if len(analysis.Variants) > 0 {
		for i, variant := range analysis.Variants {
			sheet := sheetName(variant.VariantName, i)
			if i == 0 {
				if err := f.SetSheetName("Sheet1", sheet); err != nil {
					return nil, err
				}
			} else {
				if _, err := f.NewSheet(sheet); err != nil {
					return nil, err
				}
			}
			if err := writeSheet(f, sheet, variant.Items); err != nil {
				return nil, err
			}
		}
		return f, nil
	}

	if err := f.SetSheetName("Sheet1", defaultSheet); err != nil {
		return nil, err
	}
	if err := writeSheet(f, defaultSheet, analysis.Products); err != nil {
		return nil, err
	}
	return f, nil
}

// Export writes the workbook for analysis to w.
func Export(analysis *model.MarketAnalysis, w io.Writer) error {
	f, err := BuildWorkbook(analysis)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

// FileName builds the report file name for a query, e.g.
// "Bao_Cao_Gia_tai_nghe_sony.xlsx".
func FileName(query string) string {
	return fmt.Sprintf("Bao_Cao_Gia_%s.xlsx", strings.Join(strings.Fields(query), "_"))
}

func writeSheet(f *excelize.File, sheet string, items []model.PricePoint) error {
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	for row, item := range items {
		values := []interface{}{
			item.ProductTitle,
			item.StoreName,
			item.Price,
			"",
			item.Unit,
			item.URL,
		}
		if item.OriginalPrice != nil {
			values[3] = *item.OriginalPrice
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func sheetName(name string, idx int) string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return ' '
		}
		return r
	}, name)
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		cleaned = fmt.Sprintf("Nhom %d", idx+1)
	}
	if runes := []rune(cleaned); len(runes) > maxSheetName {
		cleaned = string(runes[:maxSheetName])
	}
	return cleaned
}
