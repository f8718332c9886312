package main

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/cbwinslow/transfer/pkg/transfer"
	"github.com/dustin/go-humanize"
	_ "github.com/go-sql-driver/mysql"
	"github.com/je4/sshtunnel/v2/pkg/sshtunnel"
	"github.com/op/go-logging"
	flag "github.com/spf13/pflag"
)

func main() {
	os.Exit(run())
}

// run keeps os.Exit out of the way of the deferred cleanups (tunnels,
// journal, database).
func run() int {
	var action = flag.String("action", "transfer", "transfer|history")
	var user = flag.StringP("user", "u", "cbwinslow", "remote SSH username")
	var host = flag.StringP("host", "H", "192.168.6.69", "remote host IP address")
	var remotePath = flag.StringP("remote_path", "r", "/home/cbwinslow/", "destination path on remote host")
	var configfile = flag.String("cfg", "/etc/transfer.toml", "configuration file")

	flag.Parse()

	var conf = &Config{
		Logfile:    "",
		Loglevel:   "INFO",
		Logformat:  `%{time:2006-01-02T15:04:05.000} %{module}::%{shortfunc} > %{level:.5s} - %{message}`,
		User:       "cbwinslow",
		Host:       "192.168.6.69",
		RemotePath: "/home/cbwinslow/",
		Rsync:      "rsync",
	}
	if err := LoadConfig(*configfile, conf); err != nil {
		log.Printf("cannot load config file: %v", err)
	}

	// flags win over config file values
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "user":
			conf.User = *user
		case "host":
			conf.Host = *host
		case "remote_path":
			conf.RemotePath = *remotePath
		}
	})

	logger, lf := transfer.CreateLogger("transfer", conf.Logfile, conf.Loglevel, conf.Logformat)
	defer lf.Close()

	for name, tunnel := range conf.Tunnel {
		logger.Infof("starting tunnel %s", name)

		forwards := make(map[string]*sshtunnel.SourceDestination)
		for fwname, fw := range tunnel.Forward {
			forwards[fwname] = &sshtunnel.SourceDestination{
				Local: &sshtunnel.Endpoint{
					Host: fw.Local.Host,
					Port: fw.Local.Port,
				},
				Remote: &sshtunnel.Endpoint{
					Host: fw.Remote.Host,
					Port: fw.Remote.Port,
				},
			}
		}

		t, err := sshtunnel.NewSSHTunnel(
			tunnel.User,
			tunnel.PrivateKey,
			&sshtunnel.Endpoint{
				Host: tunnel.Endpoint.Host,
				Port: tunnel.Endpoint.Port,
			},
			forwards,
			logger,
		)
		if err != nil {
			logger.Errorf("cannot create tunnel %v@%v:%v - %v", tunnel.User, tunnel.Endpoint.Host, tunnel.Endpoint.Port, err)
			return 1
		}
		if err := t.Start(); err != nil {
			logger.Errorf("cannot create sshtunnel %v - %v", t.String(), err)
			return 1
		}
		defer t.Close()
	}
	// if tunnels are made, wait until connection is established
	if len(conf.Tunnel) > 0 {
		time.Sleep(2 * time.Second)
	}

	var db *sql.DB
	var err error
	if conf.DB.DSN != "" {
		logger.Debugf("connecting mysql database")
		db, err = sql.Open("mysql", conf.DB.DSN)
		if err != nil {
			// don't write dsn in error message due to password inside
			logger.Errorf("error connecting to database: %v", err)
			return 1
		}
		defer db.Close()
	}

	var journal *transfer.Journal
	if conf.JournalDir != "" {
		journal, err = transfer.OpenJournal(conf.JournalDir, logger)
		if err != nil {
			logger.Errorf("cannot open journal in %s: %v", conf.JournalDir, err)
			return 1
		}
		defer journal.Close()
	}

	var catalog *transfer.Catalog
	if db != nil {
		catalog, err = transfer.NewCatalog(db, conf.DB.Schema)
		if err != nil {
			logger.Errorf("cannot use transfer catalog: %v", err)
			return 1
		}
	}

	switch *action {
	case "history":
		return doHistory(journal, catalog, logger)
	case "transfer":
		return doTransfer(flag.Arg(0), conf, journal, catalog, logger)
	default:
		logger.Errorf("unknown action %s", *action)
		return 1
	}
}

func doTransfer(source string, conf *Config, journal *transfer.Journal, catalog *transfer.Catalog, logger *logging.Logger) int {
	req := &transfer.Request{
		Source:     source,
		User:       conf.User,
		Host:       conf.Host,
		RemotePath: conf.RemotePath,
	}

	prompter := transfer.NewPrompter(os.Stdin, os.Stdout)
	if err := prompter.Repair(req); err != nil {
		logger.Errorf("cannot validate transfer request: %v", err)
		return 1
	}

	st, err := transfer.StatSource(req.Source)
	if err != nil {
		logger.Errorf("cannot inspect source %s: %v", req.Source, err)
		return 1
	}
	logger.Infof("source: %s (%d files, %s)", req.Source, st.Files, humanize.Bytes(uint64(st.Bytes)))
	logger.Infof("destination: %s", req.Destination())

	entry := &transfer.Entry{
		Source:      req.Source,
		Destination: req.Destination(),
		Files:       st.Files,
		Size:        st.Bytes,
		Start:       time.Now(),
		Status:      "ok",
	}
	if len(conf.Checksum) > 0 {
		entry.Checksum, err = transfer.Checksums(req.Source, conf.Checksum)
		if err != nil {
			logger.Errorf("cannot calculate checksums of %s: %v", req.Source, err)
		}
	}

	rs := transfer.NewRsync(conf.Rsync, conf.RsyncArgs, logger)
	runErr := rs.Run(req)
	entry.End = time.Now()

	code := 0
	if runErr != nil {
		entry.Status = "failed"
		entry.Message = runErr.Error()
		var exitErr *transfer.ExitError
		switch {
		case errors.Is(runErr, transfer.ErrToolNotFound):
			logger.Errorf("%s not found, please ensure rsync is installed", conf.Rsync)
			code = 1
		case errors.As(runErr, &exitErr):
			logger.Errorf("transfer failed with status %d", exitErr.Code)
			code = exitErr.Code
		default:
			logger.Errorf("transfer failed: %v", runErr)
			code = 1
		}
	} else {
		logger.Infof("transfer completed successfully")
	}

	if journal != nil {
		if err := journal.Add(entry); err != nil {
			logger.Errorf("cannot write journal entry: %v", err)
		}
	}
	if catalog != nil {
		if err := catalog.Store(entry); err != nil {
			logger.Errorf("cannot write catalog entry: %v", err)
		}
	}
	return code
}

func doHistory(journal *transfer.Journal, catalog *transfer.Catalog, logger *logging.Logger) int {
	var entries []*transfer.Entry
	var err error
	switch {
	case catalog != nil:
		entries, err = catalog.LoadAll()
	case journal != nil:
		entries, err = journal.List()
	default:
		logger.Errorf("no journal folder and no database configured")
		return 1
	}
	if err != nil {
		logger.Errorf("cannot load transfer history: %v", err)
		return 1
	}
	for _, entry := range entries {
		fmt.Printf("%s  %-6s  %s -> %s (%d files, %s, %s)\n",
			entry.Start.Format(time.RFC3339),
			entry.Status,
			entry.Source,
			entry.Destination,
			entry.Files,
			humanize.Bytes(uint64(entry.Size)),
			entry.End.Sub(entry.Start).Round(time.Millisecond))
	}
	return 0
}
