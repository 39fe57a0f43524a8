package dependencies

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/Xushengqwer/go-common/core"
	"github.com/tencentyun/cos-go-sdk-v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/Xushengqwer/forum_service/config"
)

// MediaStorage 媒体文件（视频、封面图）的对象存储
type MediaStorage interface {
	// UploadFile 上传并返回公开访问 URL，objectKey 由调用方生成
	UploadFile(ctx context.Context, objectKey string, reader io.Reader, size int64, contentType string) (string, error)
	DeleteObject(ctx context.Context, objectKey string) error
}

type cosClient struct {
	client              *cos.Client
	publicAccessURLBase *url.URL // 拼接对象公开 URL 的基础部分
	logger              *core.ZapLogger
}

// InitCOS 初始化腾讯云 COS 客户端。
// 配置不完整时返回 (nil, nil)，上传接口随之关闭。
func InitCOS(cfg *config.COSConfig, logger *core.ZapLogger) (MediaStorage, error) {
	if cfg == nil || !cfg.Complete() {
		logger.Warn("COS 配置不完整，媒体上传已关闭")
		return nil, nil
	}

	sdkURL, err := bucketURL(cfg)
	if err != nil {
		logger.Error("解析 COS 存储桶 URL 失败", zap.Error(err))
		return nil, err
	}

	publicBase := sdkURL
	if cfg.BaseURL != "" {
		pu, err := url.Parse(cfg.BaseURL)
		if err != nil {
			logger.Error("解析 COS 公共访问 BaseURL 失败", zap.String("baseURL", cfg.BaseURL), zap.Error(err))
			return nil, fmt.Errorf("解析 COS 公共访问 BaseURL '%s' 失败: %w", cfg.BaseURL, err)
		}
		publicBase = pu
	}

	client := cos.NewClient(&cos.BaseURL{BucketURL: sdkURL}, &http.Client{
		Transport: otelhttp.NewTransport(&cos.AuthorizationTransport{
			SecretID:  cfg.SecretID,
			SecretKey: cfg.SecretKey,
		}),
	})

	logger.Info("COS 客户端初始化成功",
		zap.String("bucket", cfg.BucketName),
		zap.String("region", cfg.Region),
		zap.String("publicBase", publicBase.String()),
	)

	return &cosClient{
		client:              client,
		publicAccessURLBase: publicBase,
		logger:              logger,
	}, nil
}

// bucketURL SDK 操作使用的存储桶地址
func bucketURL(cfg *config.COSConfig) (*url.URL, error) {
	raw := fmt.Sprintf("https://%s-%s.cos.%s.myqcloud.com", cfg.BucketName, cfg.AppID, cfg.Region)
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("解析 COS 存储桶 URL '%s' 失败: %w", raw, err)
	}
	return u, nil
}

// joinObjectURL 在基础 URL 的路径后拼接对象键，保留基础路径（CDN 子目录）。
func joinObjectURL(base *url.URL, objectKey string) string {
	basePath := base.Path
	if !strings.HasSuffix(basePath, "/") {
		basePath += "/"
	}
	finalURL := *base
	finalURL.Path = basePath + strings.TrimPrefix(objectKey, "/")
	return finalURL.String()
}

func (c *cosClient) UploadFile(ctx context.Context, objectKey string, reader io.Reader, size int64, contentType string) (string, error) {
	c.logger.Info("开始上传文件到 COS", zap.String("objectKey", objectKey), zap.Int64("size", size), zap.String("contentType", contentType))
	opts := &cos.ObjectPutOptions{
		ObjectPutHeaderOptions: &cos.ObjectPutHeaderOptions{
			ContentType:   contentType,
			ContentLength: size,
		},
	}

	resp, err := c.client.Object.Put(ctx, objectKey, reader, opts)
	if err = c.checkResponse("上传", objectKey, resp, err, http.StatusOK); err != nil {
		return "", err
	}

	publicURL := joinObjectURL(c.publicAccessURLBase, objectKey)
	c.logger.Info("COS 文件上传成功", zap.String("objectKey", objectKey), zap.String("url", publicURL))
	return publicURL, nil
}

// DeleteObject 用于清理上传成功但后续步骤失败的对象
func (c *cosClient) DeleteObject(ctx context.Context, objectKey string) error {
	resp, err := c.client.Object.Delete(ctx, objectKey)
	if err = c.checkResponse("删除", objectKey, resp, err, http.StatusNoContent, http.StatusOK); err != nil {
		return err
	}
	c.logger.Info("COS 对象删除成功", zap.String("objectKey", objectKey))
	return nil
}

// checkResponse 统一处理 SDK 调用错误与非预期状态码，并关闭响应体
func (c *cosClient) checkResponse(op, objectKey string, resp *cos.Response, err error, okStatus ...int) error {
	if err != nil {
		c.logger.Error("COS 调用失败", zap.String("op", op), zap.String("objectKey", objectKey), zap.Error(err))
		return fmt.Errorf("COS %s对象 '%s' 失败: %w", op, objectKey, err)
	}
	defer resp.Body.Close()

	if slices.Contains(okStatus, resp.StatusCode) {
		return nil
	}
	body, _ := io.ReadAll(resp.Body)
	c.logger.Error("COS 返回非成功状态码",
		zap.String("op", op),
		zap.String("objectKey", objectKey),
		zap.Int("status", resp.StatusCode),
		zap.ByteString("body", body),
	)
	return fmt.Errorf("COS %s失败，状态码: %d, 响应: %s", op, resp.StatusCode, body)
}
