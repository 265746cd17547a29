package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/agropetvet/vetcare-app/config"
	"github.com/agropetvet/vetcare-app/controllers"
	appcron "github.com/agropetvet/vetcare-app/cron"
	"github.com/agropetvet/vetcare-app/db"
	"github.com/agropetvet/vetcare-app/middleware"
	"github.com/agropetvet/vetcare-app/routes"
	"github.com/agropetvet/vetcare-app/services"
	"github.com/agropetvet/vetcare-app/utils"
)

func main() {
	log := logrus.New()
	cfg := config.Load()

	handle, err := db.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.Migrate(handle); err != nil {
		log.Fatal("failed to run migrations: ", err)
	}
	log.Info("database connection established")

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	}

	var images *utils.ImageStore
	if cfg.CloudinaryCloudName != "" {
		images, err = utils.NewImageStore(cfg)
		if err != nil {
			log.Warnf("cloudinary disabled: %v", err)
		}
	}

	var mailer services.Mailer
	if cfg.SMTPHost != "" {
		mailer = utils.NewSMTPMailer(cfg)
	}

	authService := services.NewAuthService(handle, log, cfg.JWTSecret, redisClient)
	profileService := services.NewProfileService(handle, log)
	appointmentService := services.NewAppointmentService(handle, log)
	scheduleService := services.NewScheduleService(handle, log)
	messagingService := services.NewMessagingService(handle, log)
	adminService := services.NewAdminService(handle, log)
	reminderService := services.NewReminderService(handle, log, mailer)

	protected := middleware.Protected(authService, cfg.JWTSecret)

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowCredentials: false,
	}))

	routes.SetupAuthRoutes(app, controllers.NewAuthController(authService, profileService, log), protected)
	routes.SetupAppointmentRoutes(app, controllers.NewAppointmentController(appointmentService, images, log), protected)
	routes.SetupScheduleRoutes(app, controllers.NewScheduleController(scheduleService, log), protected)
	routes.SetupConversationRoutes(app, controllers.NewConversationController(messagingService, log), protected)
	routes.SetupProfileRoutes(app, controllers.NewProfileController(profileService, reminderService, images, log), protected)
	routes.SetupAdminRoutes(app, controllers.NewAdminController(adminService, log), protected)

	if _, err := appcron.StartReminderScheduler(log, reminderService); err != nil {
		log.Fatal("failed to start reminder scheduler: ", err)
	}

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
