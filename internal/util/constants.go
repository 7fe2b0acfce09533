package util

import "time"

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

// 文件上传相关常量
const (
	MimePDF         = "application/pdf"
	MimeOctetStream = "application/octet-stream"
)

// 预签名下载链接有效期
const PresignTTL = 60 * time.Minute
