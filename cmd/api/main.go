package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/varunbhx/coachdesk/internal/assistant"
	"github.com/varunbhx/coachdesk/internal/infra/database"
	"github.com/varunbhx/coachdesk/internal/infra/http/handlers"
	"github.com/varunbhx/coachdesk/internal/infra/http/middleware"
	"github.com/varunbhx/coachdesk/internal/infra/mail"
	"github.com/varunbhx/coachdesk/internal/infra/queue"
	"github.com/varunbhx/coachdesk/internal/notify"
	"github.com/varunbhx/coachdesk/internal/store"
	"github.com/varunbhx/coachdesk/internal/usecase"
)

func main() {
	godotenv.Load()

	// 1. The core: one store, one notifier hub, explicitly constructed and
	// injected everywhere. Nothing reaches for ambient globals.
	mem := store.NewMemory()
	hub := notify.NewHub()
	resolver := store.NewClientResolver(mem)

	// 2. Optional adapters. An empty env var disables the adapter; the
	// in-memory core works without any of them.
	var db *sql.DB
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		var err error
		db, err = database.NewDBConnection(dsn)
		if err != nil {
			log.Fatalf("change journal database: %v", err)
		}
		defer db.Close()

		journal := database.NewChangeJournal(db)
		if err := journal.EnsureSchema(context.Background()); err != nil {
			log.Fatalf("change journal schema: %v", err)
		}
		hub.Register(journal)
	} else {
		log.Println("DATABASE_URL not set, change journal disabled")
	}

	var rabbitConn *amqp.Connection
	if url := os.Getenv("RABBITMQ_URL"); url != "" {
		rabbitMQ, err := queue.NewRabbitMQ(url)
		if err != nil {
			log.Fatalf("rabbitmq: %v", err)
		}
		rabbitConn = rabbitMQ.Conn
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()

		hub.Register(queue.NewChangePublisher(rabbitMQ.Ch))
	} else {
		log.Println("RABBITMQ_URL not set, change publisher disabled")
	}

	var mailSender usecase.MailSender
	if host := os.Getenv("MAIL_HOST"); host != "" {
		port, err := strconv.Atoi(os.Getenv("MAIL_PORT"))
		if err != nil {
			port = 587
		}
		mailSender = mail.NewEmailSender(host, port, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"))
	} else {
		log.Println("MAIL_HOST not set, outbound mail disabled")
	}

	// 3. Use cases
	createClientUC := usecase.NewCreateClientUseCase(mem, hub, mailSender)
	createLeadUC := usecase.NewCreateLeadUseCase(mem, hub)
	createPaymentUC := usecase.NewCreatePaymentUseCase(mem, hub)
	createSessionUC := usecase.NewCreateSessionUseCase(mem, hub, mailSender)
	deleteUC := usecase.NewDeleteEntityUseCase(mem, hub)
	moveLeadUC := usecase.NewMoveLeadUseCase(mem, hub)
	metricsUC := usecase.NewComputeMetricsUseCase(mem)
	engine := assistant.NewEngine(metricsUC)

	// 4. Handlers
	clientHandler := handlers.NewClientHandler(mem, createClientUC, deleteUC)
	leadHandler := handlers.NewLeadHandler(mem, createLeadUC, moveLeadUC)
	paymentHandler := handlers.NewPaymentHandler(mem, resolver, createPaymentUC)
	sessionHandler := handlers.NewSessionHandler(mem, resolver, createSessionUC)
	dashboardHandler := handlers.NewDashboardHandler(metricsUC)
	assistantHandler := handlers.NewAssistantHandler(engine)
	healthHandler := handlers.NewHealthHandler(db, rabbitConn)

	// 5. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Post("/clients", clientHandler.Create)
	r.Get("/clients", clientHandler.List)
	r.Get("/clients/{id}", clientHandler.Get)
	r.Delete("/clients/{id}", clientHandler.Delete)

	r.Post("/leads", leadHandler.Create)
	r.Get("/leads", leadHandler.List)
	r.Post("/leads/{id}/move", leadHandler.Move)

	r.Post("/payments", paymentHandler.Create)
	r.Get("/payments", paymentHandler.List)

	r.Post("/sessions", sessionHandler.Create)
	r.Get("/sessions", sessionHandler.List)

	r.Get("/dashboard/metrics", dashboardHandler.GetMetrics)
	r.Post("/assistant/ask", assistantHandler.Ask)

	r.Get("/healthz", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("coachdesk listening on :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatal(err)
	}
}
