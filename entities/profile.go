package entities

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AllergySeverity string

const (
	SeverityMild     AllergySeverity = "Mild"
	SeverityModerate AllergySeverity = "Moderate"
	SeveritySevere   AllergySeverity = "Severe"
)

type Allergy struct {
	Name     string          `json:"name"`
	Severity AllergySeverity `json:"severity"`
}

// HealthConditionOptions is the vocabulary offered in the UI. Any string is
// accepted on a profile; only conditions with a keyword table entry
// participate in conflict matching.
var HealthConditionOptions = []string{
	"Diabetes", "BP", "Pregnancy", "Heart care", "Cholesterol", "Hypertension",
}

type FamilyMember struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Age              int       `json:"age"`
	BloodGroup       string    `json:"blood_group"`
	Allergies        []Allergy `json:"allergies"`
	HealthConditions []string  `json:"health_conditions"`
	Photo            string    `json:"photo,omitempty"`
	AlertsEnabled    bool      `json:"alerts_enabled"`
}

type NotificationSettings struct {
	ExpiryReminders      bool `json:"expiry_reminders"`
	ReminderTiming       int  `json:"reminder_timing"`
	AllergyRiskAlerts    bool `json:"allergy_risk_alerts"`
	LeftoverExpiryAlerts bool `json:"leftover_expiry_alerts"`
	DonationReminders    bool `json:"donation_reminders"`
}

type AppearanceSettings struct {
	DarkMode    bool   `json:"dark_mode"`
	TextSize    string `json:"text_size"`
	AccentColor string `json:"accent_color"`
}

type LanguageSettings struct {
	AppLanguage string `json:"app_language"`
	DateFormat  string `json:"date_format"`
	TimeFormat  string `json:"time_format"`
}

type PrivacySettings struct {
	AppLock         bool `json:"app_lock"`
	HideAllergyInfo bool `json:"hide_allergy_info"`
	DataSharing     bool `json:"data_sharing"`
}

type SmartFeatureSettings struct {
	AIRecipeSuggestions     bool `json:"ai_recipe_suggestions"`
	CameraAutoDetect        bool `json:"camera_auto_detect"`
	StorageExpiryPrediction bool `json:"storage_expiry_prediction"`
}

type FamilySettings struct {
	Sharing       bool `json:"sharing"`
	EmergencySync bool `json:"emergency_sync"`
	ChildSafety   bool `json:"child_safety"`
}

type BackupSettings struct {
	CloudBackup   bool   `json:"cloud_backup"`
	SyncFrequency string `json:"sync_frequency"`
}

type UserSettings struct {
	Notifications NotificationSettings `json:"notifications"`
	Appearance    AppearanceSettings   `json:"appearance"`
	Language      LanguageSettings     `json:"language"`
	Privacy       PrivacySettings      `json:"privacy"`
	SmartFeatures SmartFeatureSettings `json:"smart_features"`
	Family        FamilySettings       `json:"family"`
	Backup        BackupSettings       `json:"backup"`
}

func DefaultSettings() UserSettings {
	return UserSettings{
		Notifications: NotificationSettings{
			ExpiryReminders:      true,
			ReminderTiming:       3,
			AllergyRiskAlerts:    true,
			LeftoverExpiryAlerts: true,
			DonationReminders:    true,
		},
		Appearance: AppearanceSettings{
			DarkMode:    false,
			TextSize:    "Medium",
			AccentColor: "#2ECC71",
		},
		Language: LanguageSettings{
			AppLanguage: "English",
			DateFormat:  "DD/MM",
			TimeFormat:  "12h",
		},
		Privacy: PrivacySettings{
			AppLock:         false,
			HideAllergyInfo: false,
			DataSharing:     true,
		},
		SmartFeatures: SmartFeatureSettings{
			AIRecipeSuggestions:     true,
			CameraAutoDetect:        true,
			StorageExpiryPrediction: true,
		},
		Family: FamilySettings{
			Sharing:       true,
			EmergencySync: true,
			ChildSafety:   false,
		},
		Backup: BackupSettings{
			CloudBackup:   true,
			SyncFrequency: "Daily",
		},
	}
}

type UserProfile struct {
	ID               uuid.UUID                         `gorm:"type:uuid;primary_key" json:"id"`
	Name             string                            `json:"name"`
	Email            string                            `json:"email"`
	Age              int                               `json:"age,omitempty"`
	BloodGroup       string                            `json:"blood_group,omitempty"`
	EmergencyContact string                            `json:"emergency_contact,omitempty"`
	HouseholdSize    int                               `json:"household_size"`
	Photo            string                            `json:"photo,omitempty"`
	Allergies        datatypes.JSONSlice[Allergy]      `json:"allergies"`
	HealthConditions datatypes.JSONSlice[string]       `json:"health_conditions"`
	FamilyMembers    datatypes.JSONSlice[FamilyMember] `json:"family_members"`
	Settings         UserSettings                      `gorm:"serializer:json" json:"settings"`

	Timestamp
}
