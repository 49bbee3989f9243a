package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Amadoujf/nouveauyama/internal/database/minio"
	"github.com/Amadoujf/nouveauyama/internal/models"
	"github.com/Amadoujf/nouveauyama/internal/pdf"
)

// maxNumberAttempts bounds the re-allocation loop when an insert collides on
// the number unique index. Each retry burns a fresh sequence value; a number
// is never reused.
const maxNumberAttempts = 3

// allocateAndInsert allocates a document number and runs insert, retrying
// with a fresh number on a duplicate collision.
func allocateAndInsert(ctx context.Context, numbering *NumberingService, docType models.DocType, insert func(number string) error) error {
	year := time.Now().Year()

	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		number, err := numbering.AllocateNextNumber(ctx, docType, year)
		if err != nil {
			return err
		}

		err = insert(number)
		if err == nil {
			return nil
		}
		if !errors.Is(err, models.ErrDuplicateNumber) {
			return err
		}
	}

	return fmt.Errorf("exhausted %d attempts: %w", maxNumberAttempts, models.ErrDuplicateNumber)
}

// uploadDocumentPDF stores rendered PDF bytes in the commercial documents
// bucket and returns the public URL persisted as pdf_url.
func uploadDocumentPDF(ctx context.Context, storage *minio.MinioClient, number string, data []byte) (string, error) {
	objectName := fmt.Sprintf("%s.pdf", number)

	if err := storage.UploadBytes(ctx, minio.Storage.CommercialDocuments, objectName, data, "application/pdf"); err != nil {
		return "", err
	}

	base := strings.TrimSuffix(storage.GetConfig().MinioResourceURL, "/")
	return fmt.Sprintf("%s/%s/%s", base, minio.Storage.CommercialDocuments, objectName), nil
}

// partnerStore is the partner lookup surface the document services share.
// The repository implements it; tests substitute an in-memory one.
type partnerStore interface {
	GetByID(partnerID string) (*models.Partner, error)
}

func partnerInfoLines(partner *models.Partner) []string {
	lines := []string{}
	if partner.CompanyName != nil && *partner.CompanyName != "" {
		lines = append(lines, *partner.CompanyName)
	}
	if partner.Address != nil && *partner.Address != "" {
		lines = append(lines, *partner.Address)
	}
	lines = append(lines, fmt.Sprintf("%s, %s", partner.City, partner.Country))
	if partner.NINEA != nil && *partner.NINEA != "" {
		lines = append(lines, "NINEA : "+*partner.NINEA)
	}
	return lines
}

// defaultUnit labels line items that arrive without a unit.
const defaultUnit = "unité"

func normalizeLineItems(items []models.LineItem) models.LineItemList {
	normalized := make(models.LineItemList, len(items))
	for i, item := range items {
		if item.Unit == "" {
			item.Unit = defaultUnit
		}
		normalized[i] = item
	}
	return normalized
}

func lineItemRows(items models.LineItemList) []pdf.TableLine {
	rows := make([]pdf.TableLine, 0, len(items))
	for _, item := range items {
		unit := item.Unit
		if unit == "" {
			unit = defaultUnit
		}
		left := fmt.Sprintf("%s  x%g %s", item.Description, item.Quantity, unit)
		if item.Discount > 0 {
			left = fmt.Sprintf("%s (-%g%%)", left, item.Discount)
		}
		extension := models.LineItemList{item}
		total, err := ComputeTotals(extension)
		right := ""
		if err == nil {
			right = fmt.Sprintf("%d FCFA", total.Total)
		}
		rows = append(rows, pdf.TableLine{Left: left, Right: right})
	}
	return rows
}
