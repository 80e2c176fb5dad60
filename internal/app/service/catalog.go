package service

import (
	"context"

	"marketplace/internal/app/apperr"
	"marketplace/internal/app/ds"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type ServiceMasterRepository interface {
	ListServiceMasters(ctx context.Context, offset, limit int) ([]ds.ServiceMaster, int64, error)
	GetServiceMaster(ctx context.Context, id uuid.UUID) (*ds.ServiceMaster, error)
	CreateServiceMaster(ctx context.Context, m *ds.ServiceMaster) error
	SaveServiceMaster(ctx context.Context, m *ds.ServiceMaster) error
	DeleteServiceMaster(ctx context.Context, id uuid.UUID) error
	ServiceMasterInUse(ctx context.Context, id uuid.UUID) (bool, error)
	DeleteServiceOfferingsByService(ctx context.Context, serviceID uuid.UUID) error
}

// ImageStorage: хранилище картинок услуг (MinIO)
type ImageStorage interface {
	UploadFile(ctx context.Context, data []byte, filename string) (string, error)
	DeleteFile(ctx context.Context, key string) error
	BucketName() string
}

type ServiceMasterInput struct {
	Title       string
	Description string
}

type UpdateServiceMasterInput struct {
	Title       *string
	Description *string
}

// CatalogService: справочник услуг, к которым привязываются карточки
type CatalogService struct {
	repo   ServiceMasterRepository
	tx     TxManager
	images ImageStorage
}

// NewCatalogService: images может быть nil, тогда загрузка картинок недоступна
func NewCatalogService(repo ServiceMasterRepository, tx TxManager, images ImageStorage) *CatalogService {
	return &CatalogService{repo: repo, tx: tx, images: images}
}

func (s *CatalogService) List(ctx context.Context, page Page) (PageResult[ds.ServiceMaster], error) {
	items, total, err := s.repo.ListServiceMasters(ctx, page.Offset(), page.Limit)
	if err != nil {
		return PageResult[ds.ServiceMaster]{}, err
	}
	return PageResult[ds.ServiceMaster]{Items: items, Total: total, Page: page}, nil
}

func (s *CatalogService) Get(ctx context.Context, id uuid.UUID) (*ds.ServiceMaster, error) {
	return s.repo.GetServiceMaster(ctx, id)
}

func (s *CatalogService) Create(ctx context.Context, in ServiceMasterInput) (*ds.ServiceMaster, error) {
	if err := validateServiceMaster(&in.Title, &in.Description); err != nil {
		return nil, err
	}

	m := &ds.ServiceMaster{Title: in.Title, Description: in.Description}
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.repo.CreateServiceMaster(ctx, m)
	})
	if err != nil {
		return nil, err
	}

	logrus.WithField("id", m.ID).Info("service created")
	return m, nil
}

func (s *CatalogService) Update(ctx context.Context, id uuid.UUID, in UpdateServiceMasterInput) (*ds.ServiceMaster, error) {
	if err := validateServiceMaster(in.Title, in.Description); err != nil {
		return nil, err
	}

	var m *ds.ServiceMaster
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		m, err = s.repo.GetServiceMaster(ctx, id)
		if err != nil {
			return err
		}
		if in.Title != nil {
			m.Title = *in.Title
		}
		if in.Description != nil {
			m.Description = *in.Description
		}
		return s.repo.SaveServiceMaster(ctx, m)
	})
	if err != nil {
		return nil, err
	}

	logrus.WithField("id", id).Info("service updated")
	return m, nil
}

// Delete запрещён, пока услуга привязана к неудалённой карточке
func (s *CatalogService) Delete(ctx context.Context, id uuid.UUID) error {
	var m *ds.ServiceMaster
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		m, err = s.repo.GetServiceMaster(ctx, id)
		if err != nil {
			return err
		}

		inUse, err := s.repo.ServiceMasterInUse(ctx, id)
		if err != nil {
			return err
		}
		if inUse {
			return apperr.Conflict(apperr.CodeServiceInUse, "service is assigned to one or more specialists")
		}

		// связи с удалёнными карточками держат внешний ключ
		if err := s.repo.DeleteServiceOfferingsByService(ctx, id); err != nil {
			return err
		}
		return s.repo.DeleteServiceMaster(ctx, id)
	})
	if err != nil {
		return err
	}

	s.dropImage(ctx, m.S3Key)
	logrus.WithField("id", id).Info("service deleted")
	return nil
}

// UploadImage кладёт картинку в хранилище и запоминает ключ. Старая картинка удаляется
func (s *CatalogService) UploadImage(ctx context.Context, id uuid.UUID, data []byte, filename string) (*ds.ServiceMaster, error) {
	if s.images == nil {
		return nil, apperr.InvalidState(apperr.CodeStorageUnavailable, "image storage is not configured")
	}
	if len(data) == 0 {
		return nil, apperr.Validation(apperr.FieldError{Field: "image", Message: "is required"})
	}

	m, err := s.repo.GetServiceMaster(ctx, id)
	if err != nil {
		return nil, err
	}

	key, err := s.images.UploadFile(ctx, data, filename)
	if err != nil {
		return nil, err
	}

	previous := m.S3Key
	bucket := s.images.BucketName()
	m.S3Key = &key
	m.BucketName = &bucket

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.repo.SaveServiceMaster(ctx, m)
	})
	if err != nil {
		s.dropImage(ctx, &key)
		return nil, err
	}

	s.dropImage(ctx, previous)
	logrus.WithFields(logrus.Fields{"id": id, "key": key}).Info("service image uploaded")
	return m, nil
}

func (s *CatalogService) dropImage(ctx context.Context, key *string) {
	if s.images == nil || key == nil || *key == "" {
		return
	}
	if err := s.images.DeleteFile(ctx, *key); err != nil {
		logrus.WithError(err).WithField("key", *key).Warn("failed to delete service image")
	}
}

func validateServiceMaster(title, description *string) error {
	var fe fieldErrors
	if title != nil {
		fe.length("title", *title, 2, 255)
	}
	if description != nil {
		fe.minLength("description", *description, 10)
	}
	return fe.err()
}
