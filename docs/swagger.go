package docs

import "github.com/swaggo/swag"

// @title           Cardboard API
// @version         1.0
// @description     API for a shared kanban board with ordered columns, cards, and comments

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token

// @tag.name Users
// @tag.description User registration, login, and profile

// @tag.name Columns
// @tag.description Column placement operations

// @tag.name Cards
// @tag.description Card placement operations

// @tag.name Comments
// @tag.description Comment lifecycle operations

// Register swagger info
func SwaggerInfo() *swag.Spec {
	return swag.Instance
}
