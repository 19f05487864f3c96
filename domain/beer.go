package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessAddBeer       = "beer added successfully"
	MessageSuccessUpdateBeer    = "beer updated successfully"
	MessageSuccessDeleteBeer    = "beer deleted successfully"
	MessageSuccessGetBeers      = "beers retrieved successfully"
	MessageSuccessSearchBeers   = "beers search completed successfully"
	MessageSuccessUpcomingBeers = "upcoming expiring beers retrieved successfully"
	MessageSuccessGetStats      = "statistics retrieved successfully"

	MessageFailedAddBeer       = "failed to add beer"
	MessageFailedUpdateBeer    = "failed to update beer"
	MessageFailedDeleteBeer    = "failed to delete beer"
	MessageFailedGetBeers      = "failed to retrieve beers"
	MessageFailedSearchBeers   = "failed to search beers"
	MessageFailedUpcomingBeers = "failed to retrieve upcoming expiring beers"
	MessageFailedGetStats      = "failed to retrieve statistics"

	ErrBeerNotFound       = errors.New("beer not found")
	ErrInvalidExpiryDate  = errors.New("invalid expiry date")
	ErrUnauthorizedAccess = errors.New("unauthorized access to beer")
)

type (
	CreateBeerRequest struct {
		BrandName   string                `json:"brand_name" form:"brand_name" validate:"required"`
		ProductName string                `json:"product_name" form:"product_name" validate:"required"`
		Type        string                `json:"type" form:"type" validate:"omitempty"`
		ExpiryDate  string                `json:"expiry_date" form:"expiry_date" validate:"required"`
		Image       *multipart.FileHeader `json:"image" form:"image" validate:"omitempty"`
	}

	UpdateBeerRequest struct {
		BrandName   string                `json:"brand_name" form:"brand_name" validate:"omitempty"`
		ProductName string                `json:"product_name" form:"product_name" validate:"omitempty"`
		Type        string                `json:"type" form:"type" validate:"omitempty"`
		ExpiryDate  string                `json:"expiry_date" form:"expiry_date" validate:"omitempty"`
		Image       *multipart.FileHeader `json:"image" form:"image" validate:"omitempty"`
	}

	BeerResponse struct {
		ID            string    `json:"id"`
		BrandName     string    `json:"brand_name"`
		ProductName   string    `json:"product_name"`
		Type          string    `json:"type,omitempty"`
		ExpiryDate    time.Time `json:"expiry_date"`
		ReminderDate  time.Time `json:"reminder_date"`
		ReminderCount int       `json:"reminder_count"`
		ImageURL      string    `json:"image_url,omitempty"`
		CreatedAt     time.Time `json:"created_at"`
	}

	ExpiryBreakdown struct {
		Expired      int64 `json:"expired"`
		Within30Days int64 `json:"within_30_days"`
		Within90Days int64 `json:"within_90_days"`
		After90Days  int64 `json:"after_90_days"`
	}

	ExpiryTimelineResponse struct {
		ExpiryBreakdown ExpiryBreakdown  `json:"expiry_breakdown"`
		MonthlyExpiry   map[string]int64 `json:"monthly_expiry"`
	}

	TypeCount struct {
		Type  string `json:"type"`
		Count int64  `json:"count"`
	}

	BrandCount struct {
		Brand string `json:"brand"`
		Count int64  `json:"count"`
	}

	StatsSummaryResponse struct {
		TotalBeers         int         `json:"total_beers"`
		ExpiredBeers       int64       `json:"expired_beers"`
		ExpiringSoon       int64       `json:"expiring_soon"`
		AvgDaysUntilExpiry float64     `json:"avg_days_until_expiry"`
		TopBeerTypes       []TypeCount `json:"top_beer_types"`
	}
)
