package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-f articles data directory
//	-admin-password-hash admin credential in salt$hexdigest form
//	-session-duration admin session lifetime (e.g., "24h", "30m")
//	-sweep-interval session sweeper interval (e.g., "10m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-env deployment environment name ("production" hardens cookies)
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var articlesDir string
	var adminPasswordHash string
	var sessionDuration time.Duration
	var sweepInterval time.Duration
	var requestTimeout time.Duration
	var environment string
	var jsonConfigPath string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&articlesDir, "f", "", "Articles data directory")
	flag.StringVar(&adminPasswordHash, "admin-password-hash", "", "Admin credential (salt$hexdigest)")
	flag.DurationVar(&sessionDuration, "session-duration", 0, "Admin session lifetime (e.g., 24h, 30m)")
	flag.DurationVar(&sweepInterval, "sweep-interval", 0, "Session sweeper interval (e.g., 10m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&environment, "env", "", "Deployment environment name")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			AdminPasswordHash: adminPasswordHash,
			SessionDuration:   sessionDuration,
			Environment:       environment,
		},
		Storage: Storage{
			Files: Files{
				ArticlesDir: articlesDir,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers:      Workers{SweepInterval: sweepInterval},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the empty string so that the
// config merge treats the flag as unset.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
