package config

import (
	"errors"
	"flag"
	"io"
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

// ParseFlags parses the server configuration flags from args using a
// dedicated FlagSet, so repeated calls and tests do not touch the global
// flag.CommandLine.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc health server address in format [host]:[port]
//	-driver storage driver (sqlite3 or postgres)
//	-d database DSN (file path for sqlite3)
//	-salt-file path of the deployment salt file
//	-kdf key derivation function (pbkdf2 or argon2id)
//	-kdf-iterations PBKDF2 iteration count
//	-c/-config json file path with configs
//	-token-issuer token issuer name
//	-admin-token-duration admin session duration (e.g., "1h")
//	-quiz-token-duration quiz session duration (e.g., "2h")
//	-question-limit default number of questions per quiz
//	-request-timeout request timeout (e.g., "30s", "1m")
//
// Secrets are deliberately not accepted as flags because command lines are
// visible to other users of the host.
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var driver, databaseDSN string
	var saltFile, kdf string
	var kdfIterations int
	var jsonConfigPath string
	var tokenIssuer string
	var adminTokenDuration, quizTokenDuration time.Duration
	var questionLimit uint64
	var requestTimeout time.Duration

	fs := flag.NewFlagSet("go-quiz-keeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&driver, "driver", "", "Storage driver (sqlite3, postgres)")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&saltFile, "salt-file", "", "Salt file path")
	fs.StringVar(&kdf, "kdf", "", "Key derivation function (pbkdf2, argon2id)")
	fs.IntVar(&kdfIterations, "kdf-iterations", 0, "PBKDF2 iterations")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&adminTokenDuration, "admin-token-duration", 0, "Admin session duration (e.g., 1h)")
	fs.DurationVar(&quizTokenDuration, "quiz-token-duration", 0, "Quiz session duration (e.g., 2h)")
	fs.Uint64Var(&questionLimit, "question-limit", 0, "Default questions per quiz")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			TokenIssuer:        tokenIssuer,
			AdminTokenDuration: adminTokenDuration,
			QuizTokenDuration:  quizTokenDuration,
		},
		Crypto: Crypto{
			SaltFile:      saltFile,
			KDF:           kdf,
			KDFIterations: kdfIterations,
		},
		Quiz: Quiz{
			QuestionLimit: questionLimit,
		},
		Storage: Storage{
			DB: DB{
				Driver: driver,
				DSN:    databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
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
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
