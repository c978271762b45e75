package main

import (
	"net/http"
	"os"

	"github.com/shopmitra/shopmitra/app/cmd"
	"github.com/shopmitra/shopmitra/app/configs"
	"github.com/shopmitra/shopmitra/app/routes"
)

func main() {
	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	env := configs.LoadENV
	if env.RazorpayKeyID == "" || env.RazorpayKeySecret == "" {
		configs.Logger.Fatal().Msg("RAZORPAY_KEY_ID and RAZORPAY_KEY_SECRET must be set")
	}
	configs.InitRazorpayClient()

	db, err := configs.OpenConnection()
	if err != nil {
		configs.Logger.Fatal().Err(err).Msg("database connection failed")
	}
	configs.Logger.Info().Msg("database connected")

	router := routes.NewRouter(db)

	addr := env.Port
	if addr == "" {
		addr = ":8080"
	}

	server := http.Server{
		Addr:    addr,
		Handler: router,
	}

	configs.Logger.Info().Str("addr", server.Addr).Msg("server starting")
	if err := server.ListenAndServe(); err != nil {
		configs.Logger.Fatal().Err(err).Msg("server stopped")
	}
}
