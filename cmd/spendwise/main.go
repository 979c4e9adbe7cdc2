package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/spendwise/backend/internal/auth"
	database "github.com/spendwise/backend/internal/db"
	emailService "github.com/spendwise/backend/internal/email"
	"github.com/spendwise/backend/internal/exchange"
	"github.com/spendwise/backend/internal/finance/application"
	"github.com/spendwise/backend/internal/finance/conversion"
	"github.com/spendwise/backend/internal/finance/infrastructure"
	"github.com/spendwise/backend/internal/finance/interfaces"
	"github.com/spendwise/backend/internal/user"
)

type Response struct {
	Message string `json:"message"`
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("Started %s %s", r.Method, r.URL.Path)

		next.ServeHTTP(w, r)

		log.Printf("Completed %s in %v", r.URL.Path, time.Since(start))
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string, errs ...[]string) {
	payload := map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	}
	if len(errs) > 0 && len(errs[0]) > 0 {
		payload["errors"] = errs[0]
	}
	respondJSON(w, status, payload)
}

type Server struct {
	router               *http.ServeMux
	authHandler          *auth.Handler
	authService          auth.Service
	userHandler          *user.Handler
	expenseHandler       *interfaces.ExpenseHandler
	incomeHandler        *interfaces.IncomeHandler
	savingHandler        *interfaces.SavingHandler
	debtHandler          *interfaces.DebtHandler
	categoryHandler      *interfaces.CategoryHandler
	currencyHandler      *interfaces.CurrencyHandler
	paymentMethodHandler *interfaces.PaymentMethodHandler
	issuingEntityHandler *interfaces.IssuingEntityHandler
	savingsWalletHandler *interfaces.SavingsWalletHandler
	dbService            *database.DBService
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(Response{Message: "Path not found"})
}

func checkConfiguration() error {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, continuing with system environment variables")
	}

	if os.Getenv("JWT_SECRET") == "" {
		return errors.New("no JWT_SECRET Provided")
	}
	return nil
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status": "ready",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, s.dbService.Health())
}

func (s *Server) RegisterRoutes() {
	withAuth := s.authService.JWTAccessTokenMiddleware()

	// Public routes
	publicRoutes := http.NewServeMux()
	publicRoutes.Handle("POST /api/register", http.HandlerFunc(s.userHandler.Register))
	publicRoutes.Handle("POST /api/email/verify", http.HandlerFunc(s.userHandler.ConfirmEmail))
	publicRoutes.Handle("POST /api/email/resend-code", http.HandlerFunc(s.userHandler.ResendVerificationCode))
	publicRoutes.Handle("POST /api/auth/login", http.HandlerFunc(s.authHandler.Login))
	publicRoutes.Handle("POST /api/auth/2fa/verify", http.HandlerFunc(s.authHandler.VerifyTwoFactor))
	publicRoutes.Handle("GET /api/ready", http.HandlerFunc(s.handleReady))
	publicRoutes.Handle("GET /api/health", http.HandlerFunc(s.handleHealth))

	// Protected routes (using JWT Access Token Middleware)
	protectedRoutes := http.NewServeMux()
	protectedRoutes.Handle("GET /api/protected/profile", withAuth(http.HandlerFunc(s.userHandler.Profile)))
	protectedRoutes.Handle("POST /api/protected/logout", withAuth(http.HandlerFunc(s.authHandler.Logout)))
	protectedRoutes.Handle("POST /api/protected/2fa/setup", withAuth(http.HandlerFunc(s.authHandler.SetupTwoFactor)))
	protectedRoutes.Handle("POST /api/protected/2fa/confirm", withAuth(http.HandlerFunc(s.authHandler.ConfirmTwoFactor)))
	protectedRoutes.Handle("DELETE /api/protected/2fa/disable", withAuth(http.HandlerFunc(s.authHandler.DisableTwoFactor)))

	// EXPENSES API
	protectedRoutes.Handle("POST /api/protected/expenses", withAuth(http.HandlerFunc(s.expenseHandler.Create)))
	protectedRoutes.Handle("GET /api/protected/expenses", withAuth(http.HandlerFunc(s.expenseHandler.List)))
	protectedRoutes.Handle("GET /api/protected/expenses/{id}", withAuth(http.HandlerFunc(s.expenseHandler.GetByID)))
	protectedRoutes.Handle("PUT /api/protected/expenses/{id}", withAuth(http.HandlerFunc(s.expenseHandler.Update)))
	protectedRoutes.Handle("DELETE /api/protected/expenses/{id}", withAuth(http.HandlerFunc(s.expenseHandler.Delete)))

	// INCOMES API
	protectedRoutes.Handle("POST /api/protected/incomes", withAuth(http.HandlerFunc(s.incomeHandler.Create)))
	protectedRoutes.Handle("GET /api/protected/incomes", withAuth(http.HandlerFunc(s.incomeHandler.List)))
	protectedRoutes.Handle("GET /api/protected/incomes/{id}", withAuth(http.HandlerFunc(s.incomeHandler.GetByID)))
	protectedRoutes.Handle("PUT /api/protected/incomes/{id}", withAuth(http.HandlerFunc(s.incomeHandler.Update)))
	protectedRoutes.Handle("DELETE /api/protected/incomes/{id}", withAuth(http.HandlerFunc(s.incomeHandler.Delete)))

	// SAVINGS API
	protectedRoutes.Handle("POST /api/protected/savings", withAuth(http.HandlerFunc(s.savingHandler.Create)))
	protectedRoutes.Handle("GET /api/protected/savings", withAuth(http.HandlerFunc(s.savingHandler.List)))
	protectedRoutes.Handle("GET /api/protected/savings/{id}", withAuth(http.HandlerFunc(s.savingHandler.GetByID)))
	protectedRoutes.Handle("PUT /api/protected/savings/{id}", withAuth(http.HandlerFunc(s.savingHandler.Update)))
	protectedRoutes.Handle("DELETE /api/protected/savings/{id}", withAuth(http.HandlerFunc(s.savingHandler.Delete)))

	// DEBTS API
	protectedRoutes.Handle("POST /api/protected/debts", withAuth(http.HandlerFunc(s.debtHandler.Create)))
	protectedRoutes.Handle("GET /api/protected/debts", withAuth(http.HandlerFunc(s.debtHandler.List)))
	protectedRoutes.Handle("GET /api/protected/debts/{id}", withAuth(http.HandlerFunc(s.debtHandler.GetByID)))
	protectedRoutes.Handle("PUT /api/protected/debts/{id}", withAuth(http.HandlerFunc(s.debtHandler.Update)))
	protectedRoutes.Handle("PUT /api/protected/debts/{id}/cancel", withAuth(http.HandlerFunc(s.debtHandler.Cancel)))
	protectedRoutes.Handle("DELETE /api/protected/debts/{id}", withAuth(http.HandlerFunc(s.debtHandler.Delete)))

	// CATEGORIES API
	protectedRoutes.Handle("POST /api/protected/categories", withAuth(http.HandlerFunc(s.categoryHandler.Create)))
	protectedRoutes.Handle("GET /api/protected/categories", withAuth(http.HandlerFunc(s.categoryHandler.List)))
	protectedRoutes.Handle("GET /api/protected/categories/{id}", withAuth(http.HandlerFunc(s.categoryHandler.GetByID)))
	protectedRoutes.Handle("PUT /api/protected/categories/{id}", withAuth(http.HandlerFunc(s.categoryHandler.Update)))
	protectedRoutes.Handle("PUT /api/protected/categories/{id}/enable", withAuth(http.HandlerFunc(s.categoryHandler.Enable)))
	protectedRoutes.Handle("PUT /api/protected/categories/{id}/disable", withAuth(http.HandlerFunc(s.categoryHandler.Disable)))
	protectedRoutes.Handle("DELETE /api/protected/categories/{id}", withAuth(http.HandlerFunc(s.categoryHandler.Delete)))

	// CURRENCIES API
	protectedRoutes.Handle("POST /api/protected/currencies", withAuth(http.HandlerFunc(s.currencyHandler.Create)))
	protectedRoutes.Handle("GET /api/protected/currencies", withAuth(http.HandlerFunc(s.currencyHandler.List)))
	protectedRoutes.Handle("GET /api/protected/currencies/{id}", withAuth(http.HandlerFunc(s.currencyHandler.GetByID)))
	protectedRoutes.Handle("PUT /api/protected/currencies/{id}", withAuth(http.HandlerFunc(s.currencyHandler.Update)))
	protectedRoutes.Handle("PUT /api/protected/currencies/{id}/enable", withAuth(http.HandlerFunc(s.currencyHandler.Enable)))
	protectedRoutes.Handle("PUT /api/protected/currencies/{id}/disable", withAuth(http.HandlerFunc(s.currencyHandler.Disable)))
	protectedRoutes.Handle("DELETE /api/protected/currencies/{id}", withAuth(http.HandlerFunc(s.currencyHandler.Delete)))

	// PAYMENT METHODS API
	protectedRoutes.Handle("POST /api/protected/payment-methods", withAuth(http.HandlerFunc(s.paymentMethodHandler.Create)))
	protectedRoutes.Handle("GET /api/protected/payment-methods", withAuth(http.HandlerFunc(s.paymentMethodHandler.List)))
	protectedRoutes.Handle("GET /api/protected/payment-methods/{id}", withAuth(http.HandlerFunc(s.paymentMethodHandler.GetByID)))
	protectedRoutes.Handle("PUT /api/protected/payment-methods/{id}", withAuth(http.HandlerFunc(s.paymentMethodHandler.Update)))
	protectedRoutes.Handle("PUT /api/protected/payment-methods/{id}/enable", withAuth(http.HandlerFunc(s.paymentMethodHandler.Enable)))
	protectedRoutes.Handle("PUT /api/protected/payment-methods/{id}/disable", withAuth(http.HandlerFunc(s.paymentMethodHandler.Disable)))
	protectedRoutes.Handle("DELETE /api/protected/payment-methods/{id}", withAuth(http.HandlerFunc(s.paymentMethodHandler.Delete)))

	// ISSUING ENTITIES API
	protectedRoutes.Handle("POST /api/protected/issuing-entities", withAuth(http.HandlerFunc(s.issuingEntityHandler.Create)))
	protectedRoutes.Handle("GET /api/protected/issuing-entities", withAuth(http.HandlerFunc(s.issuingEntityHandler.List)))
	protectedRoutes.Handle("GET /api/protected/issuing-entities/{id}", withAuth(http.HandlerFunc(s.issuingEntityHandler.GetByID)))
	protectedRoutes.Handle("PUT /api/protected/issuing-entities/{id}", withAuth(http.HandlerFunc(s.issuingEntityHandler.Update)))
	protectedRoutes.Handle("PUT /api/protected/issuing-entities/{id}/enable", withAuth(http.HandlerFunc(s.issuingEntityHandler.Enable)))
	protectedRoutes.Handle("PUT /api/protected/issuing-entities/{id}/disable", withAuth(http.HandlerFunc(s.issuingEntityHandler.Disable)))
	protectedRoutes.Handle("DELETE /api/protected/issuing-entities/{id}", withAuth(http.HandlerFunc(s.issuingEntityHandler.Delete)))

	// SAVINGS WALLETS API
	protectedRoutes.Handle("POST /api/protected/savings-wallets", withAuth(http.HandlerFunc(s.savingsWalletHandler.Create)))
	protectedRoutes.Handle("GET /api/protected/savings-wallets", withAuth(http.HandlerFunc(s.savingsWalletHandler.List)))
	protectedRoutes.Handle("GET /api/protected/savings-wallets/{id}", withAuth(http.HandlerFunc(s.savingsWalletHandler.GetByID)))
	protectedRoutes.Handle("PUT /api/protected/savings-wallets/{id}", withAuth(http.HandlerFunc(s.savingsWalletHandler.Update)))
	protectedRoutes.Handle("PUT /api/protected/savings-wallets/{id}/enable", withAuth(http.HandlerFunc(s.savingsWalletHandler.Enable)))
	protectedRoutes.Handle("PUT /api/protected/savings-wallets/{id}/disable", withAuth(http.HandlerFunc(s.savingsWalletHandler.Disable)))
	protectedRoutes.Handle("DELETE /api/protected/savings-wallets/{id}", withAuth(http.HandlerFunc(s.savingsWalletHandler.Delete)))

	// Refresh token routes
	refreshTokenRoutes := http.NewServeMux()
	refreshTokenRoutes.Handle("PUT /api/refresh/token", s.authService.JWTRefreshTokenMiddleware()(http.HandlerFunc(s.authHandler.Refresh)))

	// Main router
	mainRouter := http.NewServeMux()
	mainRouter.Handle("/api/", publicRoutes)
	mainRouter.Handle("/api/protected/", protectedRoutes)
	mainRouter.Handle("/api/refresh/", refreshTokenRoutes)
	mainRouter.Handle("/", http.HandlerFunc(notFoundHandler))

	s.router = mainRouter
}

func main() {
	if err := checkConfiguration(); err != nil {
		log.Fatalf("Missing configuration, update to start server")
	}

	dbService, err := database.NewDBService()
	if err != nil {
		log.Fatalf("Could not initialize database: %v", err)
	}
	defer dbService.Close()

	if err := database.RunMigrations(dbService.DB); err != nil {
		log.Fatalf("Could not run migrations: %v", err)
	}

	rateBaseURL := os.Getenv("DOLAR_API_BASE_URL")
	if rateBaseURL == "" {
		rateBaseURL = "https://dolarapi.com"
	}
	historicalBaseURL := os.Getenv("DOLAR_API_HISTORICAL_BASE_URL")
	if historicalBaseURL == "" {
		historicalBaseURL = "https://api.argentinadatos.com"
	}
	exchangeClient := exchange.NewClient(rateBaseURL, historicalBaseURL)
	converter := conversion.New(exchangeClient)

	authRepo := auth.NewAuthRepository(dbService.DB)
	userRepo := user.NewUserRepository(dbService.DB)

	sessionManager := auth.NewSessionManager()
	sessionManager.StartSessionTokenCleanup(10 * time.Minute)
	jwtManager := auth.NewJWTManager()
	newEmailService := emailService.NewEmailService()
	authenticator := auth.Authenticator{}

	userService := user.NewUserService(userRepo, newEmailService)
	userHandler := user.NewUserHandler(userService, respondJSON, respondError)
	authService := auth.NewAuthService(authRepo, userService, sessionManager, jwtManager, authenticator)
	authHandler := auth.NewAuthHandler(authService, respondJSON, respondError)

	expenseRepo := infrastructure.NewExpenseRepository(dbService.DB)
	incomeRepo := infrastructure.NewIncomeRepository(dbService.DB)
	savingRepo := infrastructure.NewSavingRepository(dbService.DB)
	debtRepo := infrastructure.NewDebtRepository(dbService.DB)
	categoryRepo := infrastructure.NewCategoryRepository(dbService.DB)
	currencyRepo := infrastructure.NewCurrencyRepository(dbService.DB)
	paymentMethodRepo := infrastructure.NewPaymentMethodRepository(dbService.DB)
	issuingEntityRepo := infrastructure.NewIssuingEntityRepository(dbService.DB)
	savingsWalletRepo := infrastructure.NewSavingsWalletRepository(dbService.DB)

	expenseService := application.NewExpenseService(expenseRepo, currencyRepo, converter)
	incomeService := application.NewIncomeService(incomeRepo, converter)
	savingService := application.NewSavingService(savingRepo, currencyRepo, converter)
	debtService := application.NewDebtService(debtRepo)
	categoryService := application.NewCategoryService(categoryRepo)
	currencyService := application.NewCurrencyService(currencyRepo)
	paymentMethodService := application.NewPaymentMethodService(paymentMethodRepo)
	issuingEntityService := application.NewIssuingEntityService(issuingEntityRepo)
	savingsWalletService := application.NewSavingsWalletService(savingsWalletRepo)

	server := &Server{
		router:               http.NewServeMux(),
		authHandler:          authHandler,
		authService:          authService,
		userHandler:          userHandler,
		expenseHandler:       interfaces.NewExpenseHandler(expenseService, respondJSON, respondError),
		incomeHandler:        interfaces.NewIncomeHandler(incomeService, respondJSON, respondError),
		savingHandler:        interfaces.NewSavingHandler(savingService, respondJSON, respondError),
		debtHandler:          interfaces.NewDebtHandler(debtService, respondJSON, respondError),
		categoryHandler:      interfaces.NewCategoryHandler(categoryService, respondJSON, respondError),
		currencyHandler:      interfaces.NewCurrencyHandler(currencyService, respondJSON, respondError),
		paymentMethodHandler: interfaces.NewPaymentMethodHandler(paymentMethodService, respondJSON, respondError),
		issuingEntityHandler: interfaces.NewIssuingEntityHandler(issuingEntityService, respondJSON, respondError),
		savingsWalletHandler: interfaces.NewSavingsWalletHandler(savingsWalletService, respondJSON, respondError),
		dbService:            dbService,
	}
	server.RegisterRoutes()

	if err := StartRateLogScheduler(exchangeClient); err != nil {
		log.Fatalf("Scheduler didn't start, stoping the app ...")
	}

	handler := loggingMiddleware(server.router)
	log.Println("Server starting on port 8080...")
	if err := http.ListenAndServe(":8080", handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}

// StartRateLogScheduler logs the official rate once a day, which leaves a
// trace of the quotes conversions were based on.
func StartRateLogScheduler(client *exchange.Client) error {
	c := cron.New()
	_, err := c.AddFunc("@daily", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		quote, err := client.GetCurrentQuote(ctx, "oficial")
		if err != nil {
			log.Printf("Error fetching official rate: %v", err)
			return
		}
		log.Printf("Official rate: buy %s sell %s (updated %s)", quote.BuyingPrice, quote.SellingPrice, quote.UpdatedAt)
	})
	if err != nil {
		return err
	}
	c.Start()
	return nil
}
