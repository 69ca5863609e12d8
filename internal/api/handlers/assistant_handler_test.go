package handlers

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Expronix-Backend/domain"
	"Expronix-Backend/entities"
	"Expronix-Backend/internal/api/presenters"
	"Expronix-Backend/pkg/inventory"
	"Expronix-Backend/pkg/profile"
)

type stubAssistant struct {
	report   string
	gotImage string
	gotMime  string
}

func (s *stubAssistant) SuggestRecipes(context.Context, []entities.FoodItem, entities.UserProfile) (domain.RecipeSuggestionResponse, error) {
	return domain.RecipeSuggestionResponse{}, nil
}

func (s *stubAssistant) GenerateFoodImage(context.Context, string) (string, error) {
	return "", nil
}

func (s *stubAssistant) PredictCategory(context.Context, string) string {
	return "Other"
}

func (s *stubAssistant) ScanReceipt(context.Context, string, string) ([]domain.ScannedItemRequest, error) {
	return nil, nil
}

func (s *stubAssistant) AnalyzeFoodImage(_ context.Context, imageBase64, mimeType string) (string, error) {
	s.gotImage = imageBase64
	s.gotMime = mimeType
	return s.report, nil
}

func (s *stubAssistant) WasteInsight(context.Context, []entities.FoodItem) string {
	return ""
}

func (s *stubAssistant) BudgetInsight(context.Context, []entities.FoodItem) string {
	return ""
}

func (s *stubAssistant) Chat(context.Context, string, []entities.FoodItem, entities.UserProfile) (string, error) {
	return "", nil
}

type nopInventoryPersister struct{}

func (nopInventoryPersister) SaveInventory(context.Context, []entities.FoodItem) error {
	return nil
}

func (nopInventoryPersister) LoadInventory(context.Context) ([]entities.FoodItem, error) {
	return nil, nil
}

type nopProfilePersister struct{}

func (nopProfilePersister) SaveProfile(context.Context, entities.UserProfile) error {
	return nil
}

func (nopProfilePersister) LoadProfile(context.Context) (entities.UserProfile, error) {
	return entities.UserProfile{}, nil
}

func newAnalyzeApp(stub *stubAssistant) *fiber.App {
	handler := NewAssistantHandler(stub, inventory.NewStore(nopInventoryPersister{}), profile.NewStore(nopProfilePersister{}))
	app := fiber.New()
	app.Post("/assistant/analyze-image", handler.AnalyzeFoodImage)
	return app
}

func TestAnalyzeFoodImageReturnsReport(t *testing.T) {
	stub := &stubAssistant{report: "**Bananas**: freshness 7/10, minor bruising."}
	app := newAnalyzeApp(stub)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("image", "bananas.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(fiber.MethodPost, "/assistant/analyze-image", &body)
	req.Header.Set(fiber.HeaderContentType, writer.FormDataContentType())

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope presenters.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.True(t, envelope.Success)

	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, stub.report, data["report"])
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("jpeg-bytes")), stub.gotImage)
}

func TestAnalyzeFoodImageRequiresFile(t *testing.T) {
	app := newAnalyzeApp(&stubAssistant{})

	req := httptest.NewRequest(fiber.MethodPost, "/assistant/analyze-image", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
