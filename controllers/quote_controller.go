package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/patrick-campos/Accessories-Assessment-sub000/domain"
	"github.com/patrick-campos/Accessories-Assessment-sub000/dto"
	"github.com/patrick-campos/Accessories-Assessment-sub000/repository"
	"github.com/patrick-campos/Accessories-Assessment-sub000/services"
	"github.com/patrick-campos/Accessories-Assessment-sub000/utils"
)

// CreateQuote handles POST /quote: the full intake pipeline behind one call.
func CreateQuote(svc *services.QuoteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.CreateQuoteRequestDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		quoteID, err := svc.CreateQuote(c.Request.Context(), body)
		if err != nil {
			var ve *domain.ValidationError
			switch {
			case errors.As(err, &ve):
				c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message, "field": ve.Field})
			case errors.Is(err, services.ErrCountryNotFound):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "field": "countryOfOrigin"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create quote", "details": err.Error()})
			}
			return
		}

		c.JSON(http.StatusCreated, gin.H{"quoteId": quoteID})
	}
}

// AdminGetQuotes handles GET /admin/quote-requests.
func AdminGetQuotes(reader *repository.QuoteReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		page := utils.ParseIntDefault(c.Query("page"), 1)
		limit := utils.ParseIntDefault(c.Query("limit"), 50)
		if page < 1 {
			page = 1
		}
		if limit < 1 {
			limit = 50
		}
		if limit > 200 {
			limit = 200
		}
		skip := int64((page - 1) * limit)

		items, total, err := reader.List(ctx, skip, int64(limit))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"items": items,
			"page":  page,
			"limit": limit,
			"total": total,
		})
	}
}

// AdminGetQuote handles GET /admin/quote-requests/:id and returns the
// re-assembled graph.
func AdminGetQuote(reader *repository.QuoteReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		quoteID, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid quote id"})
			return
		}

		graph, err := reader.Get(ctx, quoteID)
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "quote not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, graph)
	}
}
