package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"time"
	"trainrec_backend/internal/config"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const uploadProgressKeyPrefix = "upload:progress:"

var ErrFileTooLarge = fmt.Errorf("file exceeds the upload size limit")

type UploadResult struct {
	URL         string `json:"url"`
	Filename    string `json:"filename"`
	Size        int64  `json:"size"`
	ContentType string `json:"contentType"`
}

type UploadProgress struct {
	Received int64 `json:"received"`
	Total    int64 `json:"total"`
}

type FileService struct {
	Storage *StorageService
	Redis   *redis.Client
	MaxSize int64
}

func NewFileService(storage *StorageService, rdb *redis.Client, cfg *config.Config) *FileService {
	return &FileService{
		Storage: storage,
		Redis:   rdb,
		MaxSize: cfg.Upload.MaxSizeMB * 1024 * 1024,
	}
}

// progressReader reports bytes read to redis roughly once per megabyte so
// a polling client can follow a long upload.
type progressReader struct {
	io.Reader
	svc      *FileService
	uploadID string
	total    int64
	received int64
	reported int64
}

func (r *progressReader) Read(p []byte) (int, error) {
	n, err := r.Reader.Read(p)
	r.received += int64(n)
	if r.received-r.reported >= 1<<20 || (err == io.EOF && r.received != r.reported) {
		r.reported = r.received
		r.svc.setProgress(context.Background(), r.uploadID, r.received, r.total)
	}
	return n, err
}

func (s *FileService) setProgress(ctx context.Context, uploadID string, received, total int64) {
	if s.Redis == nil || uploadID == "" {
		return
	}
	s.Redis.HSet(ctx, uploadProgressKeyPrefix+uploadID, "received", received, "total", total)
	s.Redis.Expire(ctx, uploadProgressKeyPrefix+uploadID, 24*time.Hour)
}

func (s *FileService) GetProgress(ctx context.Context, uploadID string) (*UploadProgress, error) {
	if s.Redis == nil {
		return nil, redis.Nil
	}
	vals, err := s.Redis.HGetAll(ctx, uploadProgressKeyPrefix+uploadID).Result()
	if err != nil {
		return nil, err
	}
	if len(vals) == 0 {
		return nil, redis.Nil
	}
	var p UploadProgress
	fmt.Sscan(vals["received"], &p.Received)
	fmt.Sscan(vals["total"], &p.Total)
	return &p, nil
}

// SaveUpload streams one multipart file into storage under a generated
// name. uploadID is optional; when set, progress is tracked in redis.
func (s *FileService) SaveUpload(ctx context.Context, fh *multipart.FileHeader, uploadID string) (*UploadResult, error) {
	if fh.Size > s.MaxSize {
		return nil, ErrFileTooLarge
	}

	src, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	ext := filepath.Ext(fh.Filename)
	name := fmt.Sprintf("%s/%s%s", time.Now().Format("2006/01"), uuid.New().String(), ext)
	contentType := fh.Header.Get("Content-Type")

	var reader io.Reader = src
	if uploadID != "" {
		reader = &progressReader{Reader: src, svc: s, uploadID: uploadID, total: fh.Size}
	}

	url, err := s.Storage.Upload(ctx, name, reader, fh.Size, contentType)
	if err != nil {
		return nil, err
	}

	return &UploadResult{
		URL:         url,
		Filename:    fh.Filename,
		Size:        fh.Size,
		ContentType: contentType,
	}, nil
}
