package service

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"time"

	"pfe_service/internal/model"
	"pfe_service/internal/repository"
	"pfe_service/internal/util"
	"pfe_service/pkg/logger"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// 预签名URL缓存比签名有效期短10分钟，缓存命中的链接保底可用
const rapportURLCacheTTL = util.PresignTTL - 10*time.Minute

// PfeService 项目列表CRUD与报告文件管理
type PfeService struct {
	repo    *repository.PfeRepository
	storage *StorageService
	redis   *redis.Client
}

func NewPfeService(repo *repository.PfeRepository, storage *StorageService, rdb *redis.Client) *PfeService {
	return &PfeService{repo: repo, storage: storage, redis: rdb}
}

type PfeCreateRequest struct {
	Title        string
	Description  string
	GithubURL    string
	VideoURL     string
	Technologies []model.Technology
	OpenFor      model.OpenFor
	StudentID    string
}

// Create 报告文件限定PDF，存储key由uuid生成，只持久化key不持久化URL
func (s *PfeService) Create(ctx context.Context, req *PfeCreateRequest, rapport io.Reader, size int64, contentType, filename string) (*model.Pfe, error) {
	if contentType != util.MimePDF {
		return nil, util.ErrOnlyPDFAllowed
	}

	key := "rapports/" + uuid.New().String() + filepath.Ext(filename)
	if _, err := s.storage.Upload(ctx, key, rapport, size, contentType); err != nil {
		return nil, err
	}

	pfe := &model.Pfe{
		Title:        req.Title,
		Description:  req.Description,
		RapportKey:   key,
		GithubURL:    req.GithubURL,
		VideoURL:     req.VideoURL,
		Technologies: model.TechnologyList(req.Technologies).Dedup(),
		OpenFor:      req.OpenFor,
		StudentID:    req.StudentID,
	}
	if err := s.repo.Create(pfe); err != nil {
		return nil, err
	}

	logger.Log.Info("Created pfe",
		zap.Uint("pfeId", pfe.ID),
		zap.String("studentId", pfe.StudentID))
	return pfe, nil
}

func (s *PfeService) GetByID(ctx context.Context, id uint) (*model.PfeView, error) {
	pfe, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrPfeNotFound
		}
		return nil, err
	}
	view := s.view(ctx, pfe)
	return &view, nil
}

func (s *PfeService) GetAll(ctx context.Context) ([]model.PfeView, error) {
	pfes, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	return s.views(ctx, pfes), nil
}

func (s *PfeService) Filter(ctx context.Context, f repository.PfeFilter) ([]model.PfeView, error) {
	pfes, err := s.repo.Filter(f)
	if err != nil {
		return nil, err
	}
	return s.views(ctx, pfes), nil
}

func (s *PfeService) GetByStudentID(ctx context.Context, studentID string) ([]model.PfeView, error) {
	pfes, err := s.repo.ListByStudent(studentID)
	if err != nil {
		return nil, err
	}
	return s.views(ctx, pfes), nil
}

type PfeUpdateRequest struct {
	Title        string               `json:"title"`
	Description  string               `json:"description"`
	GithubURL    string               `json:"githubUrl"`
	VideoURL     string               `json:"videoUrl"`
	Processing   *bool                `json:"processing"`
	Technologies model.TechnologyList `json:"technologies"`
	OpenFor      model.OpenFor        `json:"openFor"`
}

func (s *PfeService) Update(ctx context.Context, id uint, req *PfeUpdateRequest) (*model.PfeView, error) {
	pfe, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrPfeNotFound
		}
		return nil, err
	}

	if req.Title != "" {
		pfe.Title = req.Title
	}
	if req.Description != "" {
		pfe.Description = req.Description
	}
	if req.GithubURL != "" {
		pfe.GithubURL = req.GithubURL
	}
	if req.VideoURL != "" {
		pfe.VideoURL = req.VideoURL
	}
	if req.Processing != nil {
		pfe.Processing = *req.Processing
	}
	if len(req.Technologies) > 0 {
		pfe.Technologies = req.Technologies.Dedup()
	}
	if req.OpenFor != "" {
		pfe.OpenFor = req.OpenFor
	}

	if err := s.repo.Update(pfe); err != nil {
		return nil, err
	}
	view := s.view(ctx, pfe)
	return &view, nil
}

// Delete 连带清理报告对象，对象删除失败不阻断记录删除
func (s *PfeService) Delete(ctx context.Context, id uint) error {
	pfe, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrPfeNotFound
		}
		return err
	}

	if pfe.RapportKey != "" {
		if err := s.storage.Delete(ctx, pfe.RapportKey); err != nil {
			logger.Log.Warn("Failed to delete rapport object",
				zap.String("key", pfe.RapportKey),
				zap.Error(err))
		}
	}
	return s.repo.Delete(id)
}

func (s *PfeService) view(ctx context.Context, pfe *model.Pfe) model.PfeView {
	return model.PfeView{
		ID:           pfe.ID,
		Title:        pfe.Title,
		Description:  pfe.Description,
		RapportURL:   s.rapportURL(ctx, pfe.RapportKey),
		GithubURL:    pfe.GithubURL,
		VideoURL:     pfe.VideoURL,
		Processing:   pfe.Processing,
		Technologies: pfe.Technologies,
		OpenFor:      pfe.OpenFor,
		StudentID:    pfe.StudentID,
		CreatedAt:    pfe.CreatedAt,
		UpdatedAt:    pfe.UpdatedAt,
	}
}

func (s *PfeService) views(ctx context.Context, pfes []model.Pfe) []model.PfeView {
	views := make([]model.PfeView, len(pfes))
	for i := range pfes {
		views[i] = s.view(ctx, &pfes[i])
	}
	return views
}

// rapportURL 读取时临时签发下载地址，redis缓存减少重复签名；
// 缓存故障时直接签发，不影响读取
func (s *PfeService) rapportURL(ctx context.Context, key string) string {
	if key == "" {
		return ""
	}

	cacheKey := "pfe:rapport:" + key
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			return cached
		}
	}

	url, err := s.storage.PresignedURL(ctx, key, util.PresignTTL)
	if err != nil {
		logger.Log.Warn("Failed to presign rapport URL",
			zap.String("key", key),
			zap.Error(err))
		return ""
	}

	if s.redis != nil {
		if err := s.redis.Set(ctx, cacheKey, url, rapportURLCacheTTL).Err(); err != nil {
			logger.Log.Warn("Failed to cache rapport URL", zap.Error(err))
		}
	}
	return url
}
