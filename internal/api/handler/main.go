package handler

import (
	"net/http"

	"github.com/labstack/echo-contrib/pprof"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/samber/do"
)

type Config struct {
	Container *do.Injector
	Mode      string
	Origins   []string
}

func New(cfg *Config) (http.Handler, error) {
	r := echo.New()
	r.Pre(middleware.RemoveTrailingSlash())
	if cfg.Mode == "debug" {
		r.Debug = true
		pprof.Register(r)
	}

	r.JSONSerializer = GoccyJSONSerializer{}
	r.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339}\t${method}\t${uri}\t${status}\t${latency_human}\n",
	}))
	r.Use(middleware.Recover())

	if len(cfg.Origins) > 0 {
		r.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: cfg.Origins,
			AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
			MaxAge:       60 * 60,
		}))
	}

	r.GET("/", Hello)

	g := groupGateway{cfg.Container}
	r.POST("/submit", g.Submit)
	r.GET("/balance/:address", g.Balance)
	r.POST("/keypair", g.GenerateKeypair)
	r.POST("/token/create", g.CreateToken)
	r.POST("/token/mint", g.MintToken)
	r.POST("/message/sign", g.SignMessage)
	r.POST("/message/verify", g.VerifyMessage)
	r.POST("/send/sol", g.SendSol)
	r.POST("/send/token", g.SendToken)

	return r, nil
}

func Hello(c echo.Context) error {
	return c.String(http.StatusOK, "solana-gateway")
}
