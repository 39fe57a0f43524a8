package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Xushengqwer/forum_service/auth"
	"github.com/Xushengqwer/forum_service/constant"
	"github.com/Xushengqwer/forum_service/dependencies"
	"github.com/Xushengqwer/forum_service/models/entities"
	"github.com/Xushengqwer/forum_service/models/enums"
	"github.com/Xushengqwer/forum_service/models/vo"
	"github.com/Xushengqwer/forum_service/myErrors"
)

// 上传用途，决定对象键中的目录
const (
	MediaPurposeVideo = "video"
	MediaPurposeCover = "cover"
)

// MediaService 上传视频与封面图，返回可写入内容的公开 URL
type MediaService interface {
	Upload(ctx context.Context, actor *entities.User, purpose string, file *multipart.FileHeader) (*vo.MediaVO, error)
}

type mediaService struct {
	storage  dependencies.MediaStorage
	maxBytes int64
	logger   *core.ZapLogger
	now      func() time.Time
}

// NewMediaService storage 为 nil 时上传接口返回 500；maxUploadMB <= 0 取默认上限
func NewMediaService(storage dependencies.MediaStorage, maxUploadMB int64, logger *core.ZapLogger) MediaService {
	if maxUploadMB <= 0 {
		maxUploadMB = constant.DefaultMaxUploadMB
	}
	return &mediaService{storage: storage, maxBytes: maxUploadMB << 20, logger: logger, now: time.Now}
}

// objectKey forum/media/<purpose>/<yyyymmdd>/<userID>_<uuid><ext>
func (s *mediaService) objectKey(purpose string, userID uint64, filename string) string {
	return fmt.Sprintf("%s%s/%s/%d_%s%s",
		constant.COSObjectKeyPrefixMedia,
		purpose,
		s.now().Format("20060102"),
		userID,
		uuid.NewString(),
		strings.ToLower(filepath.Ext(filename)),
	)
}

func (s *mediaService) Upload(ctx context.Context, actor *entities.User, purpose string, file *multipart.FileHeader) (*vo.MediaVO, error) {
	if err := auth.Authorize(actor, enums.RoleNormal); err != nil {
		return nil, err
	}
	if s.storage == nil {
		return nil, myErrors.NewUnexpected("媒体存储未配置", myErrors.ErrMediaDisabled)
	}
	if purpose != MediaPurposeVideo && purpose != MediaPurposeCover {
		return nil, myErrors.NewBadRequest("purpose 只能是 video 或 cover")
	}
	if file == nil {
		return nil, myErrors.NewBadRequest("需要上传文件", "file: 必须填写")
	}
	if file.Size > s.maxBytes {
		return nil, myErrors.NewBadRequest(fmt.Sprintf("文件超过 %d MB 上限", s.maxBytes>>20))
	}

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	reader, err := file.Open()
	if err != nil {
		return nil, myErrors.NewBadRequest("读取上传文件失败")
	}
	defer reader.Close()

	key := s.objectKey(purpose, actor.ID, file.Filename)
	url, err := s.storage.UploadFile(ctx, key, reader, file.Size, contentType)
	if err != nil {
		return nil, myErrors.NewUnexpected("上传文件失败", err)
	}
	s.logger.Info("媒体文件已上传", zap.Uint64("userID", actor.ID), zap.String("objectKey", key))
	return &vo.MediaVO{URL: url, ObjectKey: key, Purpose: purpose}, nil
}
