package util

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

const (
	// AdminCookieName 管理员会话 Cookie，值为 JWT
	AdminCookieName = "admin-auth"
	// AdminSessionMaxAge 24 小时
	AdminSessionMaxAge = 60 * 60 * 24
)

const MimeJSON = "application/json"
