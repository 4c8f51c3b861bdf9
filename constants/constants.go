package constants

// 商品の表示件数
const (
	NewCollectionsLimit  = 8
	PopularInWomenLimit  = 4
	RelatedProductsLimit = 4
	PopularCategory      = "women"
)

// アップロード
const (
	UploadFieldName = "product"
	ImagesPath      = "/images"
)

const AuthTokenHeader = "auth-token"

// エラーメッセージ
const (
	ErrAuthenticationRequired = "Authentication required"
	ErrInvalidToken           = "Invalid token"
	ErrUserAlreadyExists      = "User already exists"
	ErrInvalidCredentials     = "Invalid credentials"
	ErrUserNotFound           = "User not found"
	ErrUnexpected             = "Unexpected error"
	ErrInvalidInput           = "Invalid input"
	ErrInvalidItemID          = "Invalid itemId"
	ErrInvalidID              = "Invalid id"
	ErrInvalidPrice           = "Invalid price"
	ErrFileRequired           = "No file uploaded"
)
