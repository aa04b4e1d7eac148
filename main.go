package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/patrick-campos/Accessories-Assessment-sub000/controllers"
	"github.com/patrick-campos/Accessories-Assessment-sub000/database"
	"github.com/patrick-campos/Accessories-Assessment-sub000/ledger"
	"github.com/patrick-campos/Accessories-Assessment-sub000/middleware"
	"github.com/patrick-campos/Accessories-Assessment-sub000/repository"
	"github.com/patrick-campos/Accessories-Assessment-sub000/services"
	"github.com/patrick-campos/Accessories-Assessment-sub000/utils"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file")
	}

	ctx := context.Background()

	//seeding admin user
	usersCol := database.OpenCollection("users")
	if err := utils.SeedAdminUser(ctx, usersCol); err != nil {
		log.Fatal(err)
	}

	// intake pipeline wiring
	db := database.Database()
	quoteLedger, err := ledger.NewSheetsLedger(ctx)
	if err != nil {
		log.Fatal(err)
	}
	quoteService := services.NewQuoteService(
		repository.NewCountryGate(db.Collection("countries")),
		database.NewMongoTransactionScope(database.Client()),
		repository.NewQuoteWriter(repository.NewMongoStore(db)),
		quoteLedger,
	)
	quoteReader := repository.NewQuoteReader(db)

	r := gin.New()
	v := utils.NewPDFOrImageValidator()

	origins := os.Getenv("ALLOWED_ORIGINS")
	allowedOrigins := map[string]bool{}
	for _, origin := range strings.Split(origins, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			allowedOrigins[origin] = true
		}
	}
	log.Printf("Allowed origins: %v", allowedOrigins)
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return allowedOrigins[origin]
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	r.POST("/auth/login", controllers.Login())
	r.POST("/auth/refresh", controllers.Refresh())
	r.POST("/auth/logout", controllers.Logout())

	r.GET("/countries", controllers.GetCountries())
	r.GET("/categories", controllers.GetCategories())
	r.GET("/categories/:id/attributes", controllers.GetCategoryAttributes())
	r.GET("/brands", controllers.GetBrands())

	r.POST("/quote", controllers.CreateQuote(quoteService))
	r.POST("/file", controllers.UploadIntakeFile(v))
	r.DELETE("/file/:id", controllers.DeleteIntakeFile())

	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	{
		admin.GET("/quote-requests", controllers.AdminGetQuotes(quoteReader))
		admin.GET("/quote-requests/:id", controllers.AdminGetQuote(quoteReader))

		admin.POST("/countries", controllers.AddCountry())
		admin.POST("/categories", controllers.AddCategory())
		admin.POST("/categories/:id/attributes", controllers.AddCategoryAttribute())
		admin.POST("/brands", controllers.AddBrand())

		admin.POST("/users", controllers.CreateUser())
		admin.POST("/users/me/password", controllers.ChangeMyPassword())
	}

	// Start server on port 8080 (default)
	r.Run()
}
