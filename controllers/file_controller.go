package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/patrick-campos/Accessories-Assessment-sub000/utils"
)

// UploadIntakeFile handles POST /file. Clients upload each photo here first
// and reference the returned fileId as externalId in the quote request.
func UploadIntakeFile(validator *utils.FileValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		fh, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing file field"})
			return
		}

		if _, err := validator.ValidateFile(fh); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		r2, err := utils.NewCloudClient(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to init storage client"})
			return
		}

		upload, err := utils.UploadIntakeFile(ctx, r2, fh)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "upload failed", "details": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, upload)
	}
}

// DeleteIntakeFile handles DELETE /file/:id for uploads that never ended up
// referenced by a quote.
func DeleteIntakeFile() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		r2, err := utils.NewCloudClient(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to init storage client"})
			return
		}

		if err := utils.DeleteIntakeFile(ctx, r2, c.Param("id")); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.Status(http.StatusNoContent)
	}
}
