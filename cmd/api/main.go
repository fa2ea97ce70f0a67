package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Prem-himanshu/food-waste-management/internal/config"
	"github.com/Prem-himanshu/food-waste-management/internal/server"
)

func main() {
	logg := config.GetLogger()
	srv := server.NewServer()

	go func() {
		logg.Infof("Server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic(fmt.Sprintf("http server error: %s", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logg.Info("Shutting down server gracefully ...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logg.Errorf("Server Shutdown: %v", err)
	}
	logg.Info("Server exiting")
}
