package handler

import (
	"context"

	"marketplace/internal/app/ds"
	"marketplace/internal/app/dto"
	"marketplace/internal/app/role"

	"github.com/sirupsen/logrus"
)

func toFeeTierResponse(t *ds.FeeTier) dto.FeeTierResponse {
	return dto.FeeTierResponse{
		ID:            t.ID,
		Name:          string(t.Name),
		MinValue:      t.MinValue,
		MaxValue:      t.MaxValue,
		FeePercentage: t.FeePercentage,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func (h *Handler) toServiceMasterResponse(ctx context.Context, m *ds.ServiceMaster) dto.ServiceMasterResponse {
	resp := dto.ServiceMasterResponse{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		S3Key:       m.S3Key,
		BucketName:  m.BucketName,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if h.Images != nil && m.S3Key != nil && *m.S3Key != "" {
		url, err := h.Images.GetFileURL(ctx, *m.S3Key, imageURLTTL)
		if err != nil {
			logrus.WithError(err).WithField("key", *m.S3Key).Warn("failed to sign image url")
		} else {
			resp.ImageURL = url
		}
	}
	return resp
}

func (h *Handler) toSpecialistResponse(ctx context.Context, s *ds.Specialist) dto.SpecialistResponse {
	services := s.Services()
	resp := dto.SpecialistResponse{
		ID:                 s.ID,
		Title:              s.Title,
		Slug:               s.Slug,
		Description:        s.Description,
		BasePrice:          s.BasePrice,
		PlatformFee:        s.PlatformFee,
		FinalPrice:         s.FinalPrice,
		AverageRating:      s.AverageRating,
		RatingCount:        s.RatingCount,
		IsDraft:            s.IsDraft,
		VerificationStatus: string(s.VerificationStatus),
		IsVerified:         s.IsVerified,
		DurationDays:       s.DurationDays,
		OwnerID:            s.OwnerID,
		Services:           make([]dto.ServiceMasterResponse, 0, len(services)),
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
	for i := range services {
		resp.Services = append(resp.Services, h.toServiceMasterResponse(ctx, &services[i]))
	}
	return resp
}

func toUserResponse(u *ds.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      role.Role(u.Role).String(),
		CreatedAt: u.CreatedAt,
	}
}
