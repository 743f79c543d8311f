package models

import "time"

// DefaultDisplayOrder sorts services without an explicit order last.
const DefaultDisplayOrder = 999

// Service represents an offered service shown on the portfolio site.
type Service struct {
	ID               int64            `json:"id" gorm:"primaryKey"`
	Title            string           `json:"title" gorm:"not null"`
	ShortDescription string           `json:"short_description"`
	FullDescription  string           `json:"full_description" gorm:"type:text"`
	Icon             string           `json:"icon"`
	Price            *string          `json:"price,omitempty"`
	Features         []ServiceFeature `json:"features" gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
	CtaText          string           `json:"cta_text"`
	CtaLink          string           `json:"cta_link"`
	DetailsLink      string           `json:"details_link"`
	DisplayOrder     int              `json:"display_order" gorm:"not null;default:999"`
	Featured         bool             `json:"featured" gorm:"not null;default:false"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// TableName returns the database table name for the Service model.
func (Service) TableName() string {
	return "services"
}

// ServiceFeature is an ordered feature bullet owned by a service.
type ServiceFeature struct {
	ID        int64  `json:"-" gorm:"primaryKey"`
	ServiceID int64  `json:"-" gorm:"index;not null"`
	Position  int    `json:"-" gorm:"not null"`
	Value     string `json:"value" gorm:"not null"`
}

// TableName returns the database table name for the ServiceFeature model.
func (ServiceFeature) TableName() string {
	return "service_features"
}

// FeatureValues returns the plain feature strings in stored order.
func (s *Service) FeatureValues() []string {
	values := make([]string, 0, len(s.Features))
	for _, f := range s.Features {
		values = append(values, f.Value)
	}
	return values
}

// NewServiceFeatures wraps plain strings into ordered rows.
func NewServiceFeatures(values []string) []ServiceFeature {
	features := make([]ServiceFeature, 0, len(values))
	for i, v := range values {
		features = append(features, ServiceFeature{Position: i, Value: v})
	}
	return features
}
