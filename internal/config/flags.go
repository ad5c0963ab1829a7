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
//	-d database DSN
//	-secret-key-base cookie signing secret
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-geo-base-url base URL of the IP geolocation service
//	-geo-timeout geolocation lookup timeout (e.g., "5s")
//	-session-sweep-interval how often stale sessions are swept
//	-session-ttl idle session lifetime for the sweeper
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var secretKeyBase string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var geoBaseURL string
	var geoTimeout time.Duration
	var sessionSweepInterval time.Duration
	var sessionTTL time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&secretKeyBase, "secret-key-base", "", "Cookie signing secret")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&geoBaseURL, "geo-base-url", "", "IP geolocation service base URL")
	flag.DurationVar(&geoTimeout, "geo-timeout", 0, "IP geolocation lookup timeout (e.g., 5s)")
	flag.DurationVar(&sessionSweepInterval, "session-sweep-interval", 0, "Stale session sweep interval (e.g., 1h)")
	flag.DurationVar(&sessionTTL, "session-ttl", 0, "Idle session lifetime (e.g., 720h)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			SecretKeyBase: secretKeyBase,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			GeoBaseURL: geoBaseURL,
			GeoTimeout: geoTimeout,
		},
		Workers: Workers{
			SessionSweepInterval: sessionSweepInterval,
			SessionTTL:           sessionTTL,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
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

	if host != "" && host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
