package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	fakeadminrepo "github.com/me1pik/admin-backoffice/admins/repofake"
	fakecatalogrepo "github.com/me1pik/admin-backoffice/catalog/repofake"
	"github.com/me1pik/admin-backoffice/internal/config"
	fakememberrepo "github.com/me1pik/admin-backoffice/members/repofake"
	fakeorderrepo "github.com/me1pik/admin-backoffice/orders/repofake"
	"github.com/me1pik/admin-backoffice/server"
	fakesupportrepo "github.com/me1pik/admin-backoffice/support/repofake"
	"github.com/me1pik/admin-backoffice/token"
	"github.com/me1pik/admin-backoffice/token/refresh"
	fakerefreshrepo "github.com/me1pik/admin-backoffice/token/refresh/repofake"
	"github.com/me1pik/admin-backoffice/token/refresh/redisrepo"
)

func main() {
	for {
		if err := run(); err != nil {
			log.Fatal().Err(err).Msg("error running server")
			time.Sleep(1 * time.Second)
		} else {
			break
		}
	}
	log.Info().Msg("server stopped")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("recovered from panic")
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	c := config.New()
	configureLogging(c)
	displayAppname(c.GetAppName())

	handler, err := buildServer(c)
	if err != nil {
		return fmt.Errorf("failed to build server: %w", err)
	}

	httpServer := &http.Server{Addr: c.GetPort(), Handler: handler}
	go listenAndServe(httpServer)
	waitForStopSignal()
	returnError = shutdown(httpServer)
	return returnError
}

func buildServer(c config.Config) (*server.Server, error) {
	repos := server.Repos{
		Admins:   fakeadminrepo.NewFakeAdminRepo(),
		Members:  fakememberrepo.NewFakeMemberRepo(),
		Products: fakecatalogrepo.NewFakeProductRepo(),
		Brands:   fakecatalogrepo.NewFakeBrandRepo(),
		Orders:   fakeorderrepo.NewFakeOrderRepo(),
		Rentals:  fakeorderrepo.NewFakeRentalRepo(),
		Tickets:  fakesupportrepo.NewFakeTicketRepo(),
		Notices:  fakesupportrepo.NewFakeNoticeRepo(),
		Terms:    fakesupportrepo.NewFakeTermRepo(),
		FAQs:     fakesupportrepo.NewFakeFAQRepo(),
	}

	var refreshRepo refresh.Repo = fakerefreshrepo.NewFakeRefreshTokenRepo()
	if addr := c.GetRedisAddr(); addr != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		refreshRepo = redisrepo.NewRefreshTokenRepo(client, c.GetRefreshTokenExpiry())
		log.Info().Str("addr", addr).Msg("refresh tokens stored in redis")
	}

	return server.New(c, repos, token.New(c), refresh.NewManager(refreshRepo, c))
}

func configureLogging(c config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if c.GetEnv() == "DEV" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func listenAndServe(httpServer *http.Server) error {
	log.Info().Str("addr", httpServer.Addr).Msg("server listening")
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server.ListenAndServe %w", err)
	}
	return nil
}

func waitForStopSignal() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}

func shutdown(httpServer *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
