package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"custsvc/internal/config"
	"custsvc/internal/pkg/db"
	"custsvc/internal/pkg/log"
	"custsvc/internal/repository"
	th "custsvc/internal/transport/http"
	"custsvc/internal/usecase"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log.SetLevel(cfg.LogLevel)
	log.Debug.Printf("config port=%s driver=%s db_path=%s cors=%v", cfg.Port, cfg.Driver, cfg.DBPath, cfg.CORSAllow)
	if err := cfg.Validate(); err != nil {
		log.Error.Fatalf("%v", err)
	}

	gdb, err := db.Open(cfg)
	if err != nil {
		log.Error.Fatalf("DB Error: %v", err)
	}
	defer db.Close(gdb)

	if err := db.EnsureSchema(context.Background(), gdb); err != nil {
		log.Error.Fatalf("DB Error: %v", err)
	}
	log.Info.Printf("database ready driver=%s", cfg.Driver)

	repo := repository.NewCustomerRepo(gdb)
	uc := usecase.NewCustomerUC(repo)
	h := th.NewHandler(uc)
	r := th.NewRouter(h, cfg.CORSAllow)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info.Printf("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error.Println(err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error.Printf("shutdown err=%v", err)
	}
	log.Info.Println("server stopped")
}
