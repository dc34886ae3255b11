package models

import "time"

// BusinessEntity is a driver's registered business profile.
type BusinessEntity struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	EntityType    string    `json:"entityType"` // llc, sole_prop, s_corp, c_corp
	Status        string    `json:"status"`     // active, pending, dissolved
	FormationDate string    `json:"formationDate"`
	EINMasked     string    `json:"einMasked"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Document is a file record attached to a business entity. StorageKey is
// the opaque blob identifier; contents live in external storage.
type Document struct {
	ID          int       `json:"id"`
	EntityID    int       `json:"entityId"`
	Name        string    `json:"name"`
	Category    string    `json:"category"` // formation, tax, insurance, license
	ContentType string    `json:"contentType"`
	SizeBytes   int64     `json:"sizeBytes"`
	StorageKey  string    `json:"storageKey"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

// FieldUpdate is a partial single-field change to an entity or document.
type FieldUpdate struct {
	Field string `json:"field"`
	Value string `json:"value"`
}
