package main

import (
	"log"
	"os"

	"akilam/config"
	controllers "akilam/controllers/registration"
	"akilam/database"
	"akilam/payment"
	authRoutes "akilam/routers/authRoutes"
	categoryRoutes "akilam/routers/categoryRoutes"
	couponRoutes "akilam/routers/couponRoutes"
	courseRoutes "akilam/routers/courseRoutes"
	registrationRoutes "akilam/routers/registrationRoutes"
	"akilam/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	// Ensure uploads directory exists
	if err := os.MkdirAll(config.AppConfig.UploadDir, 0755); err != nil {
		log.Fatalf("Failed to create uploads directory: %v", err)
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve uploaded course images statically
	app.Static("/uploads", config.AppConfig.UploadDir)

	// Payment gateway and mailer are injected into the registration workflow
	gateway := payment.NewRazorpayClient(
		config.AppConfig.RazorpayBaseURL,
		config.AppConfig.RazorpayKeyID,
		config.AppConfig.RazorpayKeySecret,
	)
	registrationController := controllers.NewRegistrationController(gateway, utils.EmailNotifier{})

	registrationRoutes.SetupRegistrationRoutes(app, registrationController)
	couponRoutes.SetupCouponRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	categoryRoutes.SetupCategoryRoutes(app)
	authRoutes.SetupAuthRoutes(app)

	// Daily reminders for registrations still awaiting payment
	utils.InitializeRegistrationScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
