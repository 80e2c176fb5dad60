package dto

import (
	"time"

	"marketplace/internal/app/apperr"

	"github.com/google/uuid"
)

// ============ Общие структуры ============

type ErrorResponse struct {
	Status  string              `json:"status"`
	Message string              `json:"message"`
	Code    string              `json:"code,omitempty"`
	Errors  []apperr.FieldError `json:"errors,omitempty"`
}

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *PageMeta   `json:"meta,omitempty"`
}

// PageMeta: сведения о странице выборки
type PageMeta struct {
	CurrentPage  int   `json:"current_page"`
	TotalPages   int   `json:"total_pages"`
	TotalItems   int64 `json:"total_items"`
	ItemsPerPage int   `json:"items_per_page"`
	HasNextPage  bool  `json:"has_next_page"`
	HasPrevPage  bool  `json:"has_prev_page"`
}

// ============ Уровни комиссии (Platform Fees) ============

type FeeTierResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	MinValue      int       `json:"min_value"`
	MaxValue      int       `json:"max_value"`
	FeePercentage float64   `json:"fee_percentage"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type CreateFeeTierRequest struct {
	Name          string   `json:"name" binding:"required,tier_name"`
	MinValue      *int     `json:"min_value" binding:"required"`
	MaxValue      *int     `json:"max_value" binding:"required"`
	FeePercentage *float64 `json:"fee_percentage" binding:"required"`
}

type UpdateFeeTierRequest struct {
	Name          *string  `json:"name" binding:"omitempty,tier_name"`
	MinValue      *int     `json:"min_value"`
	MaxValue      *int     `json:"max_value"`
	FeePercentage *float64 `json:"fee_percentage"`
}

type FeeQuoteResponse struct {
	Amount        float64 `json:"amount"`
	PlatformFee   float64 `json:"platform_fee"`
	FinalPrice    float64 `json:"final_price"`
	TierName      string  `json:"tier_name"`
	FeePercentage float64 `json:"fee_percentage"`
	Fallback      bool    `json:"fallback"` // сумма вне всех диапазонов
}

// ============ Карточки специалистов (Specialists) ============

type SpecialistResponse struct {
	ID                 uuid.UUID               `json:"id"`
	Title              string                  `json:"title"`
	Slug               string                  `json:"slug"`
	Description        string                  `json:"description"`
	BasePrice          float64                 `json:"base_price"`
	PlatformFee        float64                 `json:"platform_fee"`
	FinalPrice         float64                 `json:"final_price"`
	AverageRating      float64                 `json:"average_rating"`
	RatingCount        int                     `json:"total_number_of_ratings"`
	IsDraft            bool                    `json:"is_draft"`
	VerificationStatus string                  `json:"verification_status"`
	IsVerified         bool                    `json:"is_verified"`
	DurationDays       int                     `json:"duration_days"`
	OwnerID            *uuid.UUID              `json:"owner_id,omitempty"`
	Services           []ServiceMasterResponse `json:"service_offerings"`
	CreatedAt          time.Time               `json:"created_at"`
	UpdatedAt          time.Time               `json:"updated_at"`
}

type CreateSpecialistRequest struct {
	Title        string      `json:"title" binding:"required"`
	Description  string      `json:"description" binding:"required"`
	BasePrice    float64     `json:"base_price" binding:"required"`
	DurationDays int         `json:"duration_days" binding:"required"`
	Slug         string      `json:"slug"`
	ServiceIDs   []uuid.UUID `json:"service_ids"`
}

// UpdateSpecialistRequest: отсутствующие поля не меняются; service_ids: [] отвязывает все услуги
type UpdateSpecialistRequest struct {
	Title              *string     `json:"title"`
	Description        *string     `json:"description"`
	BasePrice          *float64    `json:"base_price"`
	DurationDays       *int        `json:"duration_days"`
	Slug               *string     `json:"slug"`
	VerificationStatus *string     `json:"verification_status" binding:"omitempty,oneof=pending verified rejected"`
	ServiceIDs         []uuid.UUID `json:"service_ids"`
}

type AssignServicesRequest struct {
	ServiceIDs []uuid.UUID `json:"service_ids" binding:"required"`
}

// SpecialistQuery: фильтры каталога; page и limit разбираются отдельно
type SpecialistQuery struct {
	Search             string   `form:"search"`
	VerificationStatus string   `form:"verification_status" binding:"omitempty,oneof=pending verified rejected"`
	IsDraft            *bool    `form:"is_draft"`
	MinPrice           *float64 `form:"min_price"`
	MaxPrice           *float64 `form:"max_price"`
	MinRating          *float64 `form:"min_rating"`
	SortBy             string   `form:"sort_by" binding:"omitempty,oneof=price rating alphabetical newest"`
	SortOrder          string   `form:"sort_order" binding:"omitempty,oneof=asc desc"`
}

// ============ Справочник услуг (Service Offerings) ============

type ServiceMasterResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	S3Key       *string   `json:"s3_key,omitempty"`
	BucketName  *string   `json:"bucket_name,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateServiceMasterRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

type UpdateServiceMasterRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// ============ Пользователи (Users) ============

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name" binding:"required"`
	Role     string `json:"role" binding:"omitempty,oneof=client specialist"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token     string       `json:"token"`
	TokenType string       `json:"token_type"`
	ExpiresIn int          `json:"expires_in"`
	User      UserResponse `json:"user"`
}
