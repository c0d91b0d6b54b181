package main

import "github.com/CPU-commits/Intranet_BLearning/api/server"

// @title          Learning API
// @version        1.0
// @description    API Server of the learning platform
// @termsOfService http://swagger.io/terms/

// @contact.name  API Support
// @contact.url   http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @tag.name        courses
// @tag.description Catalog, chapters and lessons
// @tag.name        enrollments
// @tag.description Enrollments and certificates
// @tag.name        progress
// @tag.description Lesson progress, streaks and achievements

// @host     localhost:8080
// @BasePath /api

// @securityDefinitions.apikey ApiKeyAuth
// @in                         header
// @name                       Authorization
// @description                BearerJWTToken in Authorization Header

// @accept  json
// @produce json
// @product application/zip
// @product application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @product application/pdf

// @schemes http https
func main() {
	server.Init()
}
