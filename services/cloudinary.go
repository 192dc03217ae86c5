package services

import (
	"context"
	"errors"
	"mime/multipart"
	"net/url"
	"strings"

	"chatbot-api/config"
	"chatbot-api/utils"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxAvatarSize = 5 * 1024 * 1024 // 5MB

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// cld 进程启动时创建一次，跨请求共享
var cld *cloudinary.Cloudinary

// InitCloudinary 初始化 Cloudinary 客户端
func InitCloudinary() error {
	c, err := cloudinary.NewFromParams(
		config.App.CloudinaryCloudName,
		config.App.CloudinaryAPIKey,
		config.App.CloudinaryAPISecret,
	)
	if err != nil {
		return err
	}
	cld = c
	return nil
}

// UploadAvatar 上传头像，限定图片类型且不超过 5MB，返回 HTTPS 地址
func UploadAvatar(ctx context.Context, header *multipart.FileHeader, folder string) (string, error) {
	if header == nil || header.Size == 0 {
		return "", utils.NewValidationError("No file uploaded")
	}
	contentType := strings.ToLower(header.Header.Get("Content-Type"))
	if !allowedImageTypes[contentType] {
		return "", utils.NewValidationError("Only image files are allowed (jpg, png, gif, webp)")
	}
	if header.Size > maxAvatarSize {
		return "", utils.NewValidationError("File size must not exceed 5MB")
	}
	if cld == nil {
		return "", errors.New("cloudinary client not initialized")
	}

	file, err := header.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	result, err := cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:       folder + "/" + uuid.New().String(),
		Transformation: "c_fill,g_face,w_500,h_500", // 按人脸裁剪
	})
	if err != nil {
		return "", err
	}
	if result.SecureURL == "" {
		return "", errors.New("cloudinary upload failed")
	}
	return result.SecureURL, nil
}

// DeleteImage 删除图片，尽力而为，失败只记日志
func DeleteImage(ctx context.Context, publicID string) bool {
	if publicID == "" || cld == nil {
		return false
	}
	result, err := cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		config.Logger.Warn("Failed to delete image from Cloudinary", zap.String("public_id", publicID), zap.Error(err))
		return false
	}
	return result.Result == "ok"
}

// GetPublicIDFromURL 从 Cloudinary URL 提取 Public ID。
// 例：https://res.cloudinary.com/demo/image/upload/v1234/avatars/abc.jpg => avatars/abc
// 不符合预期格式时返回空串。
func GetPublicIDFromURL(imageURL string) string {
	if imageURL == "" {
		return ""
	}
	u, err := url.Parse(imageURL)
	if err != nil {
		return ""
	}

	segments := strings.Split(u.Path, "/")
	uploadIndex := -1
	for i, seg := range segments {
		if seg == "upload" {
			uploadIndex = i
			break
		}
	}
	// "upload" 后面是版本号，再后面才是 Public ID
	if uploadIndex == -1 || uploadIndex+2 >= len(segments) {
		return ""
	}

	publicID := strings.Join(segments[uploadIndex+2:], "/")
	if dot := strings.LastIndex(publicID, "."); dot > 0 {
		publicID = publicID[:dot]
	}
	return publicID
}
