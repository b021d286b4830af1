package minio

import (
	"context"

	"github.com/DRSN-tech/visual-search/internal/cfg"
	"github.com/DRSN-tech/visual-search/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
)

// ObjectRepo хранит файлы артефактов индекса в MinIO.
type ObjectRepo struct {
	mc  *minio.Client
	cfg *cfg.MinIOCfg
}

func NewObjectRepo(mc *minio.Client, cfg *cfg.MinIOCfg) *ObjectRepo {
	return &ObjectRepo{
		mc:  mc,
		cfg: cfg,
	}
}

// UploadFile загружает локальный файл в бакет под указанным ключом.
func (o *ObjectRepo) UploadFile(ctx context.Context, objectName, filePath, contentType string) error {
	_, err := o.mc.FPutObject(ctx, o.cfg.BucketName, objectName, filePath, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// DownloadFile скачивает объект в локальный файл.
func (o *ObjectRepo) DownloadFile(ctx context.Context, objectName, filePath string) error {
	if err := o.mc.FGetObject(ctx, o.cfg.BucketName, objectName, filePath, minio.GetObjectOptions{}); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// Exists проверяет наличие объекта в бакете.
func (o *ObjectRepo) Exists(ctx context.Context, objectName string) (bool, error) {
	_, err := o.mc.StatObject(ctx, o.cfg.BucketName, objectName, minio.StatObjectOptions{})
	if err != nil {
		if resp := minio.ToErrorResponse(err); resp.Code == "NoSuchKey" {
			return false, nil
		}
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	return true, nil
}

// Delete удаляет объект из бакета.
func (o *ObjectRepo) Delete(ctx context.Context, objectName string) error {
	if err := o.mc.RemoveObject(ctx, o.cfg.BucketName, objectName, minio.RemoveObjectOptions{}); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
