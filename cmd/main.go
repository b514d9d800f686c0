package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gorilla/mux"

	"loans-api/configs"
	"loans-api/internal/books"
	"loans-api/internal/daemon"
	"loans-api/internal/db"
	"loans-api/internal/handlers"
	"loans-api/internal/middleware"
	"loans-api/internal/store"
	"loans-api/internal/utils"
)

func main() {
	cfg := configs.LoadConfig()
	db.Connect(cfg.MongoURI)

	r := mux.NewRouter()
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.JSONMiddleware)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "OK")
	})

	auditCol := db.GetCollection(cfg.DBName, "audit_logs")
	auditLogger := utils.Logger{Collection: auditCol}

	exporter := daemon.LogExporter{Coll: auditCol}
	exporter.Start()

	loanCol := db.GetCollection(cfg.DBName, "loans")
	loanStore := store.NewLoanStore(loanCol)
	booksClient := books.NewClient(cfg.BooksServiceURL)

	loanHandler := handlers.NewLoanHandler(loanStore, booksClient, auditLogger, cfg.MaxMemberLoans)

	r.HandleFunc("/loans", loanHandler.CreateLoan).Methods("POST")
	r.HandleFunc("/loans", loanHandler.GetLoans).Methods("GET")
	r.HandleFunc("/loan/{id}", loanHandler.GetLoan).Methods("GET")
	r.HandleFunc("/loan/{id}", loanHandler.DeleteLoan).Methods("DELETE")

	metricsHandler := handlers.MetricsHandler{LoanCol: loanCol}
	r.HandleFunc("/admin/metrics", metricsHandler.GetMetrics).Methods("GET")

	var server = http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Println("Server starting on port", cfg.Port)
		log.Fatal(server.ListenAndServe())
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop

	log.Println("Shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Graceful shutdown failed: %v", err)
	}
	if err := db.Disconnect(ctx); err != nil {
		log.Printf("Mongo disconnect failed: %v", err)
	}
	log.Println("Server shut down.")
}
