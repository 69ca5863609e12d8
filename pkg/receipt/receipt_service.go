package receipt

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"Expronix-Backend/domain"
	"Expronix-Backend/entities"
	"Expronix-Backend/internal/utils/storage"
	"Expronix-Backend/pkg/assistant"
	"Expronix-Backend/pkg/expiry"
	"Expronix-Backend/pkg/inventory"
)

type (
	ReceiptService interface {
		UploadReceipt(ctx context.Context, image *multipart.FileHeader) (domain.UploadReceiptResponse, error)
		GetScanResult(ctx context.Context, scanID string) (*entities.ReceiptScan, error)
		SaveScannedItems(ctx context.Context, req domain.SaveScannedItemsRequest) error
	}

	receiptService struct {
		receiptRepository ReceiptRepository
		store             *inventory.Store
		assistant         assistant.AssistantService
		s3                storage.AwsS3
	}
)

func NewReceiptService(receiptRepository ReceiptRepository, store *inventory.Store, assistantService assistant.AssistantService, s3 storage.AwsS3) ReceiptService {
	return &receiptService{
		receiptRepository: receiptRepository,
		store:             store,
		assistant:         assistantService,
		s3:                s3,
	}
}

// UploadReceipt stores the image and kicks off OCR extraction in the
// background; clients poll the scan for results.
func (s *receiptService) UploadReceipt(ctx context.Context, image *multipart.FileHeader) (domain.UploadReceiptResponse, error) {
	scanID := uuid.New()
	fileName := fmt.Sprintf("receipt-%s", scanID.String())
	objectKey, err := s.s3.UploadFile(fileName, image, "receipts", storage.AllowImage...)
	if err != nil {
		return domain.UploadReceiptResponse{}, err
	}
	imageURL := s.s3.GetPublicLinkKey(objectKey)

	scan := &entities.ReceiptScan{
		ID:       scanID,
		ImageURL: imageURL,
		Status:   "Pending",
	}
	if err := s.receiptRepository.CreateReceiptScan(ctx, scan); err != nil {
		_ = s.s3.DeleteFile(objectKey)
		return domain.UploadReceiptResponse{}, err
	}

	file, err := image.Open()
	if err != nil {
		return domain.UploadReceiptResponse{}, err
	}
	defer file.Close()
	fileBytes, err := io.ReadAll(file)
	if err != nil {
		return domain.UploadReceiptResponse{}, err
	}
	imageBase64 := base64.StdEncoding.EncodeToString(fileBytes)
	mimeType := image.Header.Get("Content-Type")

	go func() {
		bg := context.Background()
		items, err := s.assistant.ScanReceipt(bg, imageBase64, mimeType)
		if err != nil || len(items) == 0 {
			scan.Status = "Failed"
			if err != nil {
				scan.OcrResults = fmt.Sprintf("Error: %s", err.Error())
			} else {
				scan.OcrResults = "No items could be extracted from the receipt"
			}
			_ = s.receiptRepository.UpdateReceiptScan(bg, scan)
			return
		}

		resultsJSON, _ := json.Marshal(items)
		scan.Status = "Processed"
		scan.OcrResults = string(resultsJSON)
		if err := s.receiptRepository.UpdateReceiptScan(bg, scan); err != nil {
			log.Printf("Error updating receipt scan: %v", err)
		}
	}()

	return domain.UploadReceiptResponse{
		ScanID:   scanID.String(),
		ImageURL: imageURL,
		Status:   "Pending",
	}, nil
}

func (s *receiptService) GetScanResult(ctx context.Context, scanID string) (*entities.ReceiptScan, error) {
	scan, err := s.receiptRepository.GetReceiptScanByID(ctx, scanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidReceiptScan
		}
		return nil, err
	}
	return scan, nil
}

// SaveScannedItems confirms the user-reviewed extraction, adding each item
// to the inventory with derived status.
func (s *receiptService) SaveScannedItems(ctx context.Context, req domain.SaveScannedItemsRequest) error {
	scan, err := s.receiptRepository.GetReceiptScanByID(ctx, req.ScanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrInvalidReceiptScan
		}
		return err
	}

	scanIDStr := scan.ID.String()
	for _, item := range req.Items {
		expiryDate, err := expiry.ParseDate(item.ExpiryDate)
		if err != nil {
			return err
		}

		quantity := item.Quantity
		if quantity == "" {
			quantity = "1 unit"
		}

		_, err = s.store.Add(ctx, entities.FoodItem{
			Name:          item.Name,
			Category:      assistant.CoerceCategory(item.Category),
			ExpiryDate:    expiryDate,
			Location:      entities.LocationPantry,
			Quantity:      quantity,
			Price:         item.Price,
			Ingredients:   datatypes.NewJSONSlice([]string{item.Name}),
			ReceiptScanID: &scanIDStr,
		})
		if err != nil {
			return err
		}
	}

	scan.Status = "Completed"
	return s.receiptRepository.UpdateReceiptScan(ctx, scan)
}
