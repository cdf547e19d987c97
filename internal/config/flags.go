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
//	-c/-config json file path with configs
//	-access-token-secret access token signing secret
//	-access-token-ttl access token lifetime (e.g., "15m")
//	-refresh-token-secret refresh token signing secret
//	-refresh-token-ttl refresh token lifetime (e.g., "240h")
//	-token-issuer token issuer name
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-cors-origin allowed CORS origin
//	-uploads-base-url image host upload endpoint
//	-uploads-api-key image host API key
//	-uploads-temp-dir spool directory for multipart uploads
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var accessTokenSecret string
	var accessTokenTTL time.Duration
	var refreshTokenSecret string
	var refreshTokenTTL time.Duration
	var tokenIssuer string
	var requestTimeout time.Duration
	var corsOrigin string
	var uploadsBaseURL string
	var uploadsAPIKey string
	var uploadsTempDir string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&accessTokenSecret, "access-token-secret", "", "Access token signing secret")
	flag.DurationVar(&accessTokenTTL, "access-token-ttl", 0, "Access token lifetime (e.g., 15m)")
	flag.StringVar(&refreshTokenSecret, "refresh-token-secret", "", "Refresh token signing secret")
	flag.DurationVar(&refreshTokenTTL, "refresh-token-ttl", 0, "Refresh token lifetime (e.g., 240h)")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&corsOrigin, "cors-origin", "", "Allowed CORS origin")
	flag.StringVar(&uploadsBaseURL, "uploads-base-url", "", "Image host upload endpoint")
	flag.StringVar(&uploadsAPIKey, "uploads-api-key", "", "Image host API key")
	flag.StringVar(&uploadsTempDir, "uploads-temp-dir", "", "Spool directory for multipart uploads")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			AccessTokenSecret:  accessTokenSecret,
			AccessTokenTTL:     accessTokenTTL,
			RefreshTokenSecret: refreshTokenSecret,
			RefreshTokenTTL:    refreshTokenTTL,
			TokenIssuer:        tokenIssuer,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			CORSOrigin:     corsOrigin,
		},
		Uploads: Uploads{
			BaseURL: uploadsBaseURL,
			APIKey:  uploadsAPIKey,
			TempDir: uploadsTempDir,
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

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
