package models

import "time"

// Application is a client's request to build one of the catalog projects.
// Deleting the client or the project cascades to its applications.
type Application struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID string `gorm:"size:36;not null;index" json:"clientId"`
	Client   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"client"`

	ProjectID uint    `gorm:"not null;index" json:"projectId"`
	Project   Project `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"project"`

	Status string `gorm:"size:20;default:'Pending';index" json:"status"`

	ClientComments     string `gorm:"size:500" json:"clientComments"`
	ContractorComments string `gorm:"size:500" json:"contractorComments"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
