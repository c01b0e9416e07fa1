package routes

import (
	"errors"
	"time"

	_ "Backend-FormFlow-007/docs"
	"Backend-FormFlow-007/src/controllers"
	"Backend-FormFlow-007/src/middleware"
	"Backend-FormFlow-007/src/services/handoff"
	"Backend-FormFlow-007/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// Options รวม dependency ที่ routes ต้องใช้
type Options struct {
	Carrier        handoff.Carrier
	HandoffTTL     time.Duration
	AllowedOrigins string
	Logger         *zap.Logger
}

// NewApp สร้าง fiber app พร้อม middleware และ routes ทั้งหมด
func NewApp(opts Options) *fiber.App {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	app := fiber.New(fiber.Config{
		AppName:      "formflow",
		ErrorHandler: errorHandler(log),
	})

	app.Use(middleware.RequestLogger(log))
	app.Use(cors.New(cors.Config{
		AllowOrigins: opts.AllowedOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// เปิดใช้งาน Swagger ที่ URL /swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	fc := controllers.NewFormController(opts.Carrier, opts.HandoffTTL, log)
	InitRoutes(app, fc, middleware.LoadSubmission(opts.Carrier, log))
	return app
}

// InitRoutes รวม routes จากแต่ละ module
func InitRoutes(app *fiber.App, fc *controllers.FormController, loadSubmission fiber.Handler) {
	formRoutes(app, fc, loadSubmission)
	submissionRoutes(app.Group("/api"), fc, loadSubmission)

	// Route เช็คว่า API ทำงานอยู่
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}

func errorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		message := "Internal server error"
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
			message = fe.Message
		} else {
			log.Error("unhandled error", zap.String("path", c.Path()), zap.Error(err))
		}
		return utils.HandleError(c, status, message)
	}
}
