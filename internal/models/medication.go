package models

// Medication is a drug label summary, translated for display when possible
type Medication struct {
	BrandName   string `json:"brand_name"`
	GenericName string `json:"generic_name"`
	Purpose     string `json:"purpose"`
	Warnings    string `json:"warnings"`
	Translated  bool   `json:"translated"`
}
