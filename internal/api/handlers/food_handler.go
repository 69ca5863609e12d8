package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"Expronix-Backend/domain"
	"Expronix-Backend/entities"
	"Expronix-Backend/internal/api/presenters"
	"Expronix-Backend/internal/utils"
	"Expronix-Backend/pkg/expiry"
	"Expronix-Backend/pkg/export"
	"Expronix-Backend/pkg/inventory"
	"Expronix-Backend/pkg/receipt"
)

type FoodHandler struct {
	store          *inventory.Store
	receiptService receipt.ReceiptService
}

func NewFoodHandler(store *inventory.Store, receiptService receipt.ReceiptService) *FoodHandler {
	return &FoodHandler{
		store:          store,
		receiptService: receiptService,
	}
}

func (h *FoodHandler) GetFoodItems(c *fiber.Ctx) error {
	items := h.store.List()
	responses := make([]domain.FoodItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, domain.ToFoodItemResponse(item))
	}
	return presenters.SuccessResponse(c, responses, fiber.StatusOK, domain.MessageSuccessGetFoodItems)
}

func (h *FoodHandler) AddFoodItem(c *fiber.Ctx) error {
	var req domain.AddFoodItemRequest
	if err := c.BodyParser(&req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := utils.Validate.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFoodItem, err)
	}

	expiryDate, err := expiry.ParseDate(req.ExpiryDate)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFoodItem, err)
	}

	item, err := h.store.Add(c.Context(), entities.FoodItem{
		Name:        req.Name,
		Category:    req.Category,
		ExpiryDate:  expiryDate,
		Location:    entities.StorageLocation(req.Location),
		Quantity:    req.Quantity,
		Price:       req.Price,
		Image:       req.Image,
		Ingredients: req.Ingredients,
	})
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedAddFoodItem, err)
	}
	return presenters.SuccessResponse(c, domain.ToFoodItemResponse(item), fiber.StatusCreated, domain.MessageSuccessAddFoodItem)
}

func (h *FoodHandler) UpdateFoodItem(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFoodItem, domain.ErrParseUUID)
	}

	var req domain.UpdateFoodItemRequest
	if err := c.BodyParser(&req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := utils.Validate.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFoodItem, err)
	}

	patch := inventory.ItemPatch{
		Name:        req.Name,
		Category:    req.Category,
		Quantity:    req.Quantity,
		Price:       req.Price,
		Image:       req.Image,
		Ingredients: req.Ingredients,
	}
	if req.Location != nil {
		location := entities.StorageLocation(*req.Location)
		patch.Location = &location
	}
	if req.ExpiryDate != nil {
		expiryDate, err := expiry.ParseDate(*req.ExpiryDate)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFoodItem, err)
		}
		patch.ExpiryDate = &expiryDate
	}

	item, err := h.store.Update(c.Context(), id, patch)
	if err != nil {
		status := fiber.StatusInternalServerError
		if err == domain.ErrFoodItemNotFound {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedUpdateFoodItem, err)
	}
	return presenters.SuccessResponse(c, domain.ToFoodItemResponse(item), fiber.StatusOK, domain.MessageSuccessUpdateFoodItem)
}

func (h *FoodHandler) DeleteFoodItem(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteFoodItem, domain.ErrParseUUID)
	}
	if err := h.store.Remove(c.Context(), id); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteFoodItem, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteFoodItem)
}

// GetPriorityList ranks the inventory by consumption priority, most urgent
// first. With ?urgent=true only non-Safe items are returned, capped by
// ?limit (default 5).
func (h *FoodHandler) GetPriorityList(c *fiber.Ctx) error {
	now := time.Now()

	var ranked []inventory.RankedItem
	if c.QueryBool("urgent") {
		limit := c.QueryInt("limit", 5)
		ranked = h.store.Urgent(now, limit)
	} else {
		ranked = h.store.Ranked(now)
	}

	responses := make([]domain.PriorityItemResponse, 0, len(ranked))
	for _, r := range ranked {
		responses = append(responses, domain.PriorityItemResponse{
			FoodItemResponse: domain.ToFoodItemResponse(r.FoodItem),
			Score:            r.Priority.Score,
			Tier:             string(r.Priority.Tier),
			Label:            r.Priority.Label,
		})
	}
	return presenters.SuccessResponse(c, responses, fiber.StatusOK, domain.MessageSuccessGetPriorityList)
}

func (h *FoodHandler) GetDashboardStats(c *fiber.Ctx) error {
	stats := domain.DashboardStatsResponse{}
	for _, item := range h.store.List() {
		stats.TotalItems++
		stats.InventoryValue += item.Price
		switch item.Status {
		case entities.StatusFresh:
			stats.FreshItems++
		case entities.StatusExpiringSoon:
			stats.ExpiringItems++
		case entities.StatusExpired:
			stats.ExpiredItems++
			stats.WastedValue += item.Price
		}
	}
	return presenters.SuccessResponse(c, stats, fiber.StatusOK, domain.MessageSuccessGetDashboard)
}

func (h *FoodHandler) ExportInventory(c *fiber.Ctx) error {
	data, err := export.InventoryCSV(h.store.List())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedExportInventory, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+export.ReportFileName(time.Now())+`"`)
	return c.Send(data)
}

func (h *FoodHandler) UploadReceipt(c *fiber.Ctx) error {
	image, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadReceipt, err)
	}

	result, err := h.receiptService.UploadReceipt(c.Context(), image)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUploadReceipt, err)
	}
	return presenters.SuccessResponse(c, result, fiber.StatusAccepted, domain.MessageSuccessUploadReceipt)
}

func (h *FoodHandler) GetScanResult(c *fiber.Ctx) error {
	scan, err := h.receiptService.GetScanResult(c.Context(), c.Params("scan_id"))
	if err != nil {
		status := fiber.StatusInternalServerError
		if err == domain.ErrInvalidReceiptScan {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedProcessReceipt, err)
	}
	return presenters.SuccessResponse(c, scan, fiber.StatusOK, domain.MessageSuccessUploadReceipt)
}

func (h *FoodHandler) SaveScannedItems(c *fiber.Ctx) error {
	var req domain.SaveScannedItemsRequest
	if err := c.BodyParser(&req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := utils.Validate.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveScannedItems, err)
	}

	if err := h.receiptService.SaveScannedItems(c.Context(), req); err != nil {
		status := fiber.StatusInternalServerError
		switch err {
		case domain.ErrInvalidReceiptScan:
			status = fiber.StatusNotFound
		case domain.ErrInvalidExpiryDate:
			status = fiber.StatusBadRequest
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedSaveScannedItems, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessSaveScannedItems)
}
