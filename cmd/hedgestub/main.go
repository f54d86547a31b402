// Copyright 2015-2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package hedgestub provides a development stand-in for the Hedge
// Control back office.  It serves the whole REST API from memory, so
// that hedgectl and the restclient package can be exercised without
// the real service.  Nothing survives a restart.
package main

import (
	"flag"
	"net/http"

	"github.com/Andreicr1/hedge-control/restserver"
	"github.com/sirupsen/logrus"
)

func main() {
	httpBind := flag.String("http", DefaultConfig.HTTP,
		"[ip]:port for HTTP REST interface")
	config := flag.String("config", "", "configuration YAML file")
	logRequests := flag.Bool("log-requests", false, "log all requests")
	logLevel := flag.String("log-level", "", "logging level")
	flag.Parse()

	cfg, err := LoadConfig(*config)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"err": err,
		}).Fatal("Could not load configuration")
		return
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "http":
			cfg.HTTP = *httpBind
		case "log-requests":
			cfg.LogRequests = *logRequests
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})

	if cfg.LogLevel != "" {
		level, err := logrus.ParseLevel(cfg.LogLevel)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"err": err,
			}).Fatal("Invalid log level")
			return
		}
		logrus.SetLevel(level)
	}

	var reqLogger *logrus.Logger
	if cfg.LogRequests {
		stdlog := logrus.StandardLogger()
		reqLogger = &logrus.Logger{
			Out:       stdlog.Out,
			Formatter: stdlog.Formatter,
			Hooks:     stdlog.Hooks,
			Level:     logrus.DebugLevel,
		}
	}

	handler := restserver.NewHandler(restserver.NewState(), reqLogger)
	logrus.WithFields(logrus.Fields{
		"http": cfg.HTTP,
	}).Info("Serving back-office stub")
	err = http.ListenAndServe(cfg.HTTP, handler)
	logrus.WithFields(logrus.Fields{
		"err": err,
	}).Fatal("HTTP server stopped")
}
