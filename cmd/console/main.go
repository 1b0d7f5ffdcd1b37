// Command console serves a local HTTP API for exercising the banking API.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/oklog/run"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	console "github.com/fmitra/bankconsole"
	"github.com/fmitra/bankconsole/internal/dispatcher"
	"github.com/fmitra/bankconsole/internal/httpapi"
	"github.com/fmitra/bankconsole/internal/loginapi"
	"github.com/fmitra/bankconsole/internal/requestapi"
	"github.com/fmitra/bankconsole/internal/responselog"
	"github.com/fmitra/bankconsole/internal/signupapi"
	"github.com/fmitra/bankconsole/internal/tokenapi"
	"github.com/fmitra/bankconsole/internal/tokenstore"
)

func main() {
	var err error

	var logger log.Logger
	{
		logger = log.NewJSONLogger(log.NewSyncWriter(os.Stderr))
		logger = log.With(logger, "ts", log.DefaultTimestampUTC)
		logger = log.With(logger, "caller", log.DefaultCaller)
	}

	var configPath string
	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	{
		fs.Bool("console.debug", false, "Enable debug logging")
		fs.String("console.http-addr", ":8124", "Address to listen on")
		fs.String("console.allowed-origins", "*", "Comma separated list of allowed origins")
		fs.String("console.base-url", console.DefaultBaseURL, "Base URL of the banking API")
		fs.Int64("console.rate-limit", httpapi.DefaultLimit, "Requests per second accepted from one client")
		fs.String("store.backend", "file", "Token storage backend: file, redis or postgres")
		fs.String("store.key", "microbank-frontend-tokens", "Storage key for tokens")
		fs.String("store.path", "", "Token file path for the file backend")
		fs.String("redis.conn-string", "", "Redis connection string")
		fs.String("pg.conn-string", "", "Postgres connection string")

		fs.StringVar(&configPath, "config", "", "Path to the config file")
		err = fs.Parse(os.Args[1:])
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		if err != nil {
			logger.Log("message", "failed to parse cli flags", "error", err, "source", "cmd/console")
			os.Exit(1)
		}
	}

	if _, err = os.Stat(configPath); !os.IsNotExist(err) {
		viper.SetConfigFile(configPath)
		err = viper.ReadInConfig()
		if err != nil {
			logger.Log("message", "failed to load config file", "error", err, "source", "cmd/console")
			os.Exit(1)
		}
	}
	if err = viper.BindPFlags(fs); err != nil {
		logger.Log("message", "failed to load cli flags", "error", err, "source", "cmd/console")
		os.Exit(1)
	}

	if viper.GetBool("console.debug") {
		logger = level.NewFilter(logger, level.AllowDebug())
	} else {
		logger = level.NewFilter(logger, level.AllowInfo())
	}

	ctx, cancel := context.WithCancel(context.Background())

	repo, closeRepo, err := openRepository(ctx, logger)
	if err != nil {
		logger.Log("message", "token storage unavailable", "error", err, "source", "cmd/console")
		os.Exit(1)
	}
	defer func() {
		if err = closeRepo(); err != nil {
			logger.Log("message", "failed to close token storage", "error", err, "source", "cmd/console")
		}
	}()

	tokens := tokenstore.NewService(repo, tokenstore.WithLogger(logger))
	tokens.Subscribe(func(creds console.Credentials) {
		level.Debug(logger).Log(
			"message", "tokens updated",
			"has_access_token", creds.AccessToken != "",
			"has_refresh_token", creds.RefreshToken != "",
			"source", "cmd/console",
		)
	})
	if err = loadTokens(ctx, tokens, closeRepo); err != nil {
		logger.Log("message", "failed to load tokens", "error", err, "source", "cmd/console")
		os.Exit(1)
	}

	responses := responselog.NewService()

	dispatch := dispatcher.NewService(
		tokens,
		responses,
		dispatcher.WithLogger(logger),
		dispatcher.WithBaseURL(viper.GetString("console.base-url")),
	)

	signupAPI := signupapi.NewService(
		signupapi.WithLogger(logger),
		signupapi.WithDispatcher(dispatch),
	)

	loginAPI := loginapi.NewService(
		loginapi.WithLogger(logger),
		loginapi.WithDispatcher(dispatch),
		loginapi.WithTokenStore(tokens),
	)

	tokenAPI := tokenapi.NewService(
		tokenapi.WithLogger(logger),
		tokenapi.WithDispatcher(dispatch),
		tokenapi.WithTokenStore(tokens),
	)

	requestAPI := requestapi.NewService(
		requestapi.WithLogger(logger),
		requestapi.WithDispatcher(dispatch),
		requestapi.WithResponseLog(responses),
	)

	lmt := httpapi.NewRateLimiter(viper.GetInt64("console.rate-limit"))

	router := mux.NewRouter()
	router.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	signupapi.SetupHTTPHandler(signupAPI, router, logger, lmt)
	loginapi.SetupHTTPHandler(loginAPI, router, logger, lmt)
	tokenapi.SetupHTTPHandler(tokenAPI, router, logger, lmt)
	requestapi.SetupHTTPHandler(requestAPI, router, logger, lmt)

	server := http.Server{
		Addr: viper.GetString("console.http-addr"),
		Handler: handlers.CORS(
			handlers.AllowedOrigins(strings.Split(
				viper.GetString("console.allowed-origins"), ","),
			),
			handlers.AllowedHeaders([]string{
				"X-Requested-With",
				"Content-Type",
			}),
			handlers.AllowedMethods([]string{"GET", "POST", "PUT", "OPTIONS", "HEAD"}),
		)(router),
		ReadTimeout: 5 * time.Second,
		IdleTimeout: 30 * time.Second,
	}

	var g run.Group
	{
		g.Add(func() error {
			sig := make(chan os.Signal, 1)
			signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
			select {
			case s := <-sig:
				return fmt.Errorf("signal received: %v", s)
			case <-ctx.Done():
				return ctx.Err()
			}
		}, func(err error) {
			logger.Log("message", "program was interrupted", "error", err, "source", "cmd/console")
			cancel()
		})
	}
	{
		g.Add(func() error {
			logger.Log(
				"message", "console server is starting",
				"address", server.Addr,
				"base_url", dispatch.BaseURL(),
				"source", "cmd/console",
			)
			return server.ListenAndServe()
		}, func(err error) {
			logger.Log(
				"message", "console server was interrupted",
				"error", err,
				"source", "cmd/console",
			)
			shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
			defer done()
			logger.Log(
				"message", "console server shut down",
				"error", server.Shutdown(shutdownCtx),
				"source", "cmd/console",
			)
		})
	}

	err = g.Run()
	logger.Log("message", "actors stopped", "error", err, "source", "cmd/console")
}
