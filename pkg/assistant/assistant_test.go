package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"Expronix-Backend/domain"
	"Expronix-Backend/entities"
)

func TestCoerceCategory(t *testing.T) {
	assert.Equal(t, "Dairy", CoerceCategory("Dairy"))
	assert.Equal(t, "Dairy", CoerceCategory("  Dairy\n"))
	assert.Equal(t, "Other", CoerceCategory("Condiments"))
	assert.Equal(t, "Other", CoerceCategory("dairy"), "enum match is exact")
	assert.Equal(t, "Other", CoerceCategory(""))
}

func TestExtractJSON(t *testing.T) {
	fenced := "```json\n[{\"name\":\"milk\"}]\n```"
	assert.Equal(t, `[{"name":"milk"}]`, extractJSON(fenced))

	prose := "Here you go:\n{\"a\": 1}\nHope that helps!"
	assert.Equal(t, `{"a": 1}`, extractJSON(prose))

	plain := `[{"a":1}]`
	assert.Equal(t, plain, extractJSON(plain))
}

func TestAnnotateRecipeSafetyFlagsAllergens(t *testing.T) {
	profile := entities.UserProfile{
		Allergies: datatypes.NewJSONSlice([]entities.Allergy{
			{Name: "Dairy", Severity: entities.SeveritySevere},
		}),
		HealthConditions: datatypes.NewJSONSlice([]string{"Diabetes"}),
	}

	recipes := []domain.Recipe{
		{
			Title: "Creamy Rice Pudding",
			Ingredients: []domain.RecipeIngredient{
				{Name: "dairy milk", Quantity: "500ml"},
				{Name: "rice", Quantity: "200g"},
			},
		},
		{
			Title: "Garden Salad",
			Ingredients: []domain.RecipeIngredient{
				{Name: "lettuce", Quantity: "1 head"},
				{Name: "tomato", Quantity: "2"},
			},
		},
	}

	annotated := AnnotateRecipeSafety(recipes, profile)

	require.Len(t, annotated, 2)
	assert.Contains(t, annotated[0].AllergyNotes, "Dairy")
	assert.Contains(t, annotated[0].AllergyNotes, "Severe")
	assert.Contains(t, annotated[0].AllergyNotes, "Diabetes")
	assert.Empty(t, annotated[1].AllergyNotes, "safe recipe stays unannotated")
}

func TestAnnotateRecipeSafetyKeepsModelNotes(t *testing.T) {
	profile := entities.UserProfile{
		Allergies: datatypes.NewJSONSlice([]entities.Allergy{
			{Name: "Peanuts", Severity: entities.SeverityModerate},
		}),
	}

	recipes := []domain.Recipe{{
		Title:        "Satay Skewers",
		AllergyNotes: "Swapped peanut sauce for sunflower seed butter",
		Ingredients:  []domain.RecipeIngredient{{Name: "peanut sauce", Quantity: "3 tbsp"}},
	}}

	annotated := AnnotateRecipeSafety(recipes, profile)
	assert.Contains(t, annotated[0].AllergyNotes, "Swapped peanut sauce")
	assert.Contains(t, annotated[0].AllergyNotes, "Peanuts")
}
