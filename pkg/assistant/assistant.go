package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"Expronix-Backend/domain"
	"Expronix-Backend/entities"
	"Expronix-Backend/internal/utils"
	"Expronix-Backend/pkg/safety"
)

type (
	// AssistantService is the gateway to the generative backend. Every
	// response that feeds user-facing safety or enum state is re-validated
	// here; the model is never trusted to have respected its constraints.
	AssistantService interface {
		SuggestRecipes(ctx context.Context, items []entities.FoodItem, profile entities.UserProfile) (domain.RecipeSuggestionResponse, error)
		GenerateFoodImage(ctx context.Context, subject string) (string, error)
		PredictCategory(ctx context.Context, itemName string) string
		ScanReceipt(ctx context.Context, imageBase64, mimeType string) ([]domain.ScannedItemRequest, error)
		AnalyzeFoodImage(ctx context.Context, imageBase64, mimeType string) (string, error)
		WasteInsight(ctx context.Context, items []entities.FoodItem) string
		BudgetInsight(ctx context.Context, items []entities.FoodItem) string
		Chat(ctx context.Context, message string, items []entities.FoodItem, profile entities.UserProfile) (string, error)
	}

	assistantService struct {
		httpClient *http.Client
	}
)

func NewAssistantService() AssistantService {
	return &assistantService{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

func (s *assistantService) generateContent(ctx context.Context, parts []geminiPart, temperature float64) (string, error) {
	apiKey := utils.GetConfig("GEMINI_API_KEY")
	if apiKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY not configured")
	}
	model := utils.GetConfig("GEMINI_MODEL")
	if model == "" {
		return "", fmt.Errorf("GEMINI_MODEL not configured")
	}

	url := fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s", model, apiKey)

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{"parts": parts},
		},
		"generationConfig": map[string]interface{}{
			"temperature": temperature,
			"topP":        0.8,
			"topK":        40,
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(requestJSON))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("gemini API error: %s - %s", resp.Status, string(bodyBytes))
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return "", err
	}
	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", domain.ErrGeminiAPIFailed
	}
	return geminiResp.Candidates[0].Content.Parts[0].Text, nil
}

var jsonPattern = regexp.MustCompile(`(?s)[\[{].*[\]}]`)

// extractJSON strips markdown fences and surrounding prose from a model
// response that was asked for raw JSON.
func extractJSON(responseText string) string {
	responseText = strings.TrimSpace(responseText)
	if strings.HasPrefix(responseText, "```json") {
		responseText = strings.TrimPrefix(responseText, "```json")
		responseText = strings.TrimSuffix(responseText, "```")
	} else if strings.HasPrefix(responseText, "```") {
		responseText = strings.TrimPrefix(responseText, "```")
		responseText = strings.TrimSuffix(responseText, "```")
	}
	if match := jsonPattern.FindString(responseText); match != "" {
		responseText = match
	}
	return strings.TrimSpace(responseText)
}

func (s *assistantService) SuggestRecipes(ctx context.Context, items []entities.FoodItem, profile entities.UserProfile) (domain.RecipeSuggestionResponse, error) {
	if len(items) == 0 {
		return domain.RecipeSuggestionResponse{Recipes: []domain.Recipe{}}, domain.ErrNoIngredients
	}

	var expiringSoon, freshItems []string
	for _, item := range items {
		switch item.Status {
		case entities.StatusExpiringSoon:
			expiringSoon = append(expiringSoon, item.Name)
		case entities.StatusFresh:
			freshItems = append(freshItems, item.Name)
		}
	}

	allergies := make([]string, 0, len(profile.Allergies))
	for _, a := range profile.Allergies {
		allergies = append(allergies, fmt.Sprintf("%s (%s severity)", a.Name, a.Severity))
	}

	prompt := fmt.Sprintf(
		"ACT AS A PROFESSIONAL CHEF AND NUTRITIONIST.\n\n"+
			"INVENTORY DATA:\n"+
			"- HIGH PRIORITY (Expiring Soon): %s\n"+
			"- SECONDARY (Fresh): %s\n\n"+
			"USER PROFILE:\n"+
			"- ALLERGIES: %s\n"+
			"- HEALTH CONDITIONS: %s\n\n"+
			"TASK: Suggest 3 creative recipes using these items. "+
			"You MUST prioritize the HIGH PRIORITY list, and the recipes MUST be safe for the allergies and health conditions above; "+
			"explain any substitution in the allergyNotes field.\n"+
			"Respond ONLY with a valid JSON array of recipe objects with fields: "+
			"id, title, image, prepTime, servings, difficulty, description, rating, reviewCount, "+
			"ingredients (array of {name, quantity}), instructions (array of strings), "+
			"expiringIngredientsUsed (array of strings), allergyNotes. "+
			"No explanations or text outside the JSON array.",
		orNone(expiringSoon), orNone(freshItems), orNone(allergies), orNone(profile.HealthConditions),
	)

	responseText, err := s.generateContent(ctx, []geminiPart{{Text: prompt}}, 0.7)
	if err != nil {
		return domain.RecipeSuggestionResponse{}, err
	}

	var recipes []domain.Recipe
	if err := json.Unmarshal([]byte(extractJSON(responseText)), &recipes); err != nil {
		return domain.RecipeSuggestionResponse{}, fmt.Errorf("failed to parse recipe response: %w", err)
	}

	for i := range recipes {
		if recipes[i].ID == "" {
			recipes[i].ID = uuid.NewString()
		}
	}
	recipes = AnnotateRecipeSafety(recipes, profile)

	return domain.RecipeSuggestionResponse{
		Recipes:       recipes,
		TotalRecipes:  len(recipes),
		ExpiringItems: len(expiringSoon),
	}, nil
}

// AnnotateRecipeSafety re-runs the conflict matcher over each suggested
// recipe's ingredient list. The generative source is not trusted to have
// respected the constraints it was given; a conflicting recipe is kept but
// flagged so the caller can warn before display.
func AnnotateRecipeSafety(recipes []domain.Recipe, profile entities.UserProfile) []domain.Recipe {
	for i, recipe := range recipes {
		ingredients := make([]string, 0, len(recipe.Ingredients))
		for _, ing := range recipe.Ingredients {
			ingredients = append(ingredients, ing.Name)
		}
		report := safety.Match(
			safety.ItemText{Name: recipe.Title, Ingredients: ingredients},
			profile.Allergies,
			profile.HealthConditions,
		)

		var warnings []string
		if report.HasAllergyConflict() {
			names := make([]string, 0, len(report.AllergyMatches))
			for _, a := range report.AllergyMatches {
				names = append(names, a.Name)
			}
			warnings = append(warnings, fmt.Sprintf("Contains declared allergens (%s severity): %s",
				report.HighestSeverity, strings.Join(names, ", ")))
		}
		for _, concern := range report.HealthConcerns {
			warnings = append(warnings, fmt.Sprintf("Flagged for %s: %s",
				concern.Condition, strings.Join(concern.MatchedKeywords, ", ")))
		}
		if len(warnings) > 0 {
			note := strings.Join(warnings, ". ")
			if recipes[i].AllergyNotes != "" {
				note = recipes[i].AllergyNotes + ". " + note
			}
			recipes[i].AllergyNotes = note
		}
	}
	return recipes
}

func (s *assistantService) GenerateFoodImage(ctx context.Context, subject string) (string, error) {
	prompt := fmt.Sprintf(
		"A high-quality, professional food photography shot of %s on a clean, minimalist background. "+
			"Studio lighting, realistic textures. Respond with a single https image URL only, no other text.",
		subject,
	)

	responseText, err := s.generateContent(ctx, []geminiPart{{Text: prompt}}, 0.4)
	if err != nil {
		// No image is a normal outcome, not a failure to retry.
		return "", nil
	}

	url := strings.TrimSpace(responseText)
	if !strings.HasPrefix(url, "http") {
		return "", nil
	}
	return url, nil
}

func (s *assistantService) PredictCategory(ctx context.Context, itemName string) string {
	if len(itemName) < 2 {
		return "Other"
	}

	prompt := fmt.Sprintf(
		"Given the food item name %q, predict the most suitable category from this list: %s. "+
			"Respond ONLY with the category name string.",
		itemName, strings.Join(entities.Categories, ", "),
	)

	responseText, err := s.generateContent(ctx, []geminiPart{{Text: prompt}}, 0.1)
	if err != nil {
		return "Other"
	}
	return CoerceCategory(responseText)
}

// CoerceCategory validates a predicted category against the fixed
// enumeration; anything out of enum becomes "Other".
func CoerceCategory(predicted string) string {
	predicted = strings.TrimSpace(predicted)
	if entities.IsKnownCategory(predicted) {
		return predicted
	}
	return "Other"
}

func (s *assistantService) ScanReceipt(ctx context.Context, imageBase64, mimeType string) ([]domain.ScannedItemRequest, error) {
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	prompt := "Analyze this shopping receipt image and extract the list of food items. " +
		"For each item, extract the price and guess a logical expiry date based on standard shelf life if not visible. " +
		"Respond ONLY with a JSON array of objects with fields: name, category, expiry_date (YYYY-MM-DD), quantity, price (number)."

	responseText, err := s.generateContent(ctx, []geminiPart{
		{Text: prompt},
		{InlineData: &geminiInlineData{MimeType: mimeType, Data: imageBase64}},
	}, 0.1)
	if err != nil {
		return nil, err
	}

	var items []domain.ScannedItemRequest
	if err := json.Unmarshal([]byte(extractJSON(responseText)), &items); err != nil {
		return nil, fmt.Errorf("failed to parse receipt response: %w", err)
	}
	for i := range items {
		items[i].Category = CoerceCategory(items[i].Category)
	}
	return items, nil
}

// AnalyzeFoodImage identifies the food in a photo and reports freshness,
// spoilage signs, and storage tips.
func (s *assistantService) AnalyzeFoodImage(ctx context.Context, imageBase64, mimeType string) (string, error) {
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	prompt := "Act as a professional food safety expert and AI kitchen assistant. " +
		"Analyze this photo of food/groceries:\n" +
		"1. Identify all food items visible.\n" +
		"2. For each item, estimate freshness (1-10) and mention any signs of spoilage (mold, wilting, bruising).\n" +
		"3. Provide 2-3 specific storage tips to keep these items fresh longer.\n" +
		"4. If anything looks unsafe to eat, highlight it clearly with a safety warning.\n\n" +
		"Format the response using Markdown with bold titles and bullet points. Be professional and concise."

	responseText, err := s.generateContent(ctx, []geminiPart{
		{Text: prompt},
		{InlineData: &geminiInlineData{MimeType: mimeType, Data: imageBase64}},
	}, 0.4)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(responseText), nil
}

func (s *assistantService) WasteInsight(ctx context.Context, items []entities.FoodItem) string {
	var expiringCount, expiredCount int
	categories := map[string]int{}
	for _, item := range items {
		switch item.Status {
		case entities.StatusExpiringSoon:
			expiringCount++
		case entities.StatusExpired:
			expiredCount++
		}
		categories[item.Category]++
	}
	categoriesJSON, _ := json.Marshal(categories)

	prompt := fmt.Sprintf(
		"Analyze this pantry data:\n- Items Expiring Soon: %d\n- Currently Expired Items: %d\n- Top Categories: %s\n\n"+
			"Provide a short (2-3 sentences), encouraging, professional insight on how to reduce waste and save money this month.",
		expiringCount, expiredCount, string(categoriesJSON),
	)

	responseText, err := s.generateContent(ctx, []geminiPart{{Text: prompt}}, 0.7)
	if err != nil {
		return "Start using your expiring items today to save on grocery bills!"
	}
	return strings.TrimSpace(responseText)
}

func (s *assistantService) BudgetInsight(ctx context.Context, items []entities.FoodItem) string {
	var totalValue, wastedValue float64
	categoryWaste := map[string]float64{}
	for _, item := range items {
		totalValue += item.Price
		if item.Status == entities.StatusExpired {
			wastedValue += item.Price
			categoryWaste[item.Category] += item.Price
		}
	}
	wasteJSON, _ := json.Marshal(categoryWaste)

	prompt := fmt.Sprintf(
		"Analyze this food budget data:\n- Total Inventory Value: $%.2f\n- Total Wasted Value (Expired): $%.2f\n- Waste by Category: %s\n\n"+
			"Provide a professional financial insight on food spending in 2 sentences.",
		totalValue, wastedValue, string(wasteJSON),
	)

	responseText, err := s.generateContent(ctx, []geminiPart{{Text: prompt}}, 0.7)
	if err != nil {
		return "Optimize your shopping by buying less in categories where you frequently let food expire."
	}
	return strings.TrimSpace(responseText)
}

func (s *assistantService) Chat(ctx context.Context, message string, items []entities.FoodItem, profile entities.UserProfile) (string, error) {
	inventoryJSON, _ := json.Marshal(summarizeItems(items))
	allergies := make([]string, 0, len(profile.Allergies))
	for _, a := range profile.Allergies {
		allergies = append(allergies, a.Name)
	}

	prompt := fmt.Sprintf(
		"You are a helpful kitchen assistant for a household food tracking app.\n"+
			"Current inventory: %s\nUser allergies: %s\nUser health conditions: %s\n\n"+
			"Answer the user's question concisely and practically.\n\nUser: %s",
		string(inventoryJSON), orNone(allergies), orNone(profile.HealthConditions), message,
	)

	return s.generateContent(ctx, []geminiPart{{Text: prompt}}, 0.7)
}

func summarizeItems(items []entities.FoodItem) []map[string]string {
	out := make([]map[string]string, 0, len(items))
	for _, item := range items {
		out = append(out, map[string]string{
			"name":        item.Name,
			"category":    item.Category,
			"status":      string(item.Status),
			"expiry_date": item.ExpiryDate.Format("2006-01-02"),
		})
	}
	return out
}

func orNone(values []string) string {
	if len(values) == 0 {
		return "None"
	}
	return strings.Join(values, ", ")
}
