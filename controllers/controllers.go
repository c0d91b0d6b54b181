package controllers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/CPU-commits/Intranet_BLearning/res"
	"github.com/CPU-commits/Intranet_BLearning/services"
	"github.com/gin-gonic/gin"
)

const (
	XLSX_CONTENT_TYPE = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	PDF_CONTENT_TYPE  = "application/pdf"
	ZIP_CONTENT_TYPE  = "application/zip"
)

func abort(c *gin.Context, err *res.ErrorRes) {
	c.AbortWithStatusJSON(err.StatusCode, &res.Response{
		Success: false,
		Message: err.Err.Error(),
	})
}

func badRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
		Success: false,
		Message: err.Error(),
	})
}

func ok(c *gin.Context, status int, body map[string]interface{}) {
	c.JSON(status, &res.Response{
		Success: true,
		Data:    body,
	})
}

func withPage(body map[string]interface{}, page services.Page) map[string]interface{} {
	body["total"] = page.Total
	body["page"] = page.Page
	body["pages"] = page.Pages
	return body
}

// attachment sends a generated file, service errors have been handled before
func attachment(c *gin.Context, contentType, filename string, file *bytes.Buffer) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, file.Bytes())
}

// currentClaims is nil on routes behind the optional JWT middleware
func currentClaims(c *gin.Context) *services.Claims {
	claims, _ := services.NewClaimsFromContext(c)
	return claims
}
