package main

import (
	"net"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goph/emperror"
)

type Endpoint struct {
	Host string
	Port int
}

func (e *Endpoint) UnmarshalText(text []byte) error {
	var err error
	var port string
	e.Host, port, err = net.SplitHostPort(string(text))
	if err == nil {
		var longPort int64
		longPort, err = strconv.ParseInt(port, 10, 64)
		if err != nil {
			return emperror.Wrapf(err, "cannot parse port %s of %s", port, string(text))
		}
		e.Port = int(longPort)
	}
	return err
}

type Forward struct {
	Local  *Endpoint
	Remote *Endpoint
}

type SSHTunnel struct {
	User       string             `toml:"user"`
	PrivateKey string             `toml:"privatekey"`
	Endpoint   *Endpoint          `toml:"endpoint"`
	Forward    map[string]Forward `toml:"forward"`
}

type DBMySQL struct {
	DSN    string
	Schema string
}

// main config structure for toml file
type Config struct {
	Logfile    string               `toml:"logfile"`
	Loglevel   string               `toml:"loglevel"`
	Logformat  string               `toml:"logformat"`
	User       string               `toml:"user"`
	Host       string               `toml:"host"`
	RemotePath string               `toml:"remotepath"`
	Rsync      string               `toml:"rsync"`
	RsyncArgs  []string             `toml:"rsyncargs"`
	Checksum   []string             `toml:"checksum"`
	JournalDir string               `toml:"journaldir"`
	Tunnel     map[string]SSHTunnel `toml:"tunnel"`
	DB         DBMySQL              `toml:"db"`
}

func LoadConfig(fp string, conf *Config) error {
	_, err := toml.DecodeFile(fp, conf)
	if err != nil {
		return emperror.Wrapf(err, "error loading config file %v", fp)
	}
	if conf.JournalDir != "" {
		conf.JournalDir = strings.TrimRight(filepath.ToSlash(conf.JournalDir), "/")
	}
	return nil
}
