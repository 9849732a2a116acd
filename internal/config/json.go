package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors the subset of [StructuredConfig] that may be
// supplied from a JSON file. Secrets are accepted so that a file mounted from
// a secret store can carry them.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey       string   `json:"token_sign_key"`
		TokenIssuer        string   `json:"token_issuer"`
		AdminTokenDuration Duration `json:"admin_token_duration"`
		QuizTokenDuration  Duration `json:"quiz_token_duration"`
		HashKey            string   `json:"hash_key"`
		Version            string   `json:"version"`
	} `json:"app,omitempty"`

	Admin struct {
		Password string `json:"password"`
	} `json:"admin,omitempty"`

	Crypto struct {
		Passphrase    string `json:"passphrase"`
		Salt          string `json:"salt"`
		SaltFile      string `json:"salt_file"`
		KDF           string `json:"kdf"`
		KDFIterations int    `json:"kdf_iterations"`
		Argon2Time    uint32 `json:"argon2_time"`
		Argon2Memory  uint32 `json:"argon2_memory"`
		Argon2Threads uint8  `json:"argon2_threads"`
	} `json:"crypto,omitempty"`

	Quiz struct {
		QuestionLimit    uint64 `json:"question_limit"`
		LeaderboardLimit int    `json:"leaderboard_limit"`
	} `json:"quiz,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:       jsonCfg.App.TokenSignKey,
			TokenIssuer:        jsonCfg.App.TokenIssuer,
			AdminTokenDuration: time.Duration(jsonCfg.App.AdminTokenDuration),
			QuizTokenDuration:  time.Duration(jsonCfg.App.QuizTokenDuration),
			HashKey:            jsonCfg.App.HashKey,
			Version:            jsonCfg.App.Version,
		},
		Admin: Admin{
			Password: jsonCfg.Admin.Password,
		},
		Crypto: Crypto{
			Passphrase:    jsonCfg.Crypto.Passphrase,
			Salt:          jsonCfg.Crypto.Salt,
			SaltFile:      jsonCfg.Crypto.SaltFile,
			KDF:           jsonCfg.Crypto.KDF,
			KDFIterations: jsonCfg.Crypto.KDFIterations,
			Argon2Time:    jsonCfg.Crypto.Argon2Time,
			Argon2Memory:  jsonCfg.Crypto.Argon2Memory,
			Argon2Threads: jsonCfg.Crypto.Argon2Threads,
		},
		Quiz: Quiz{
			QuestionLimit:    jsonCfg.Quiz.QuestionLimit,
			LeaderboardLimit: jsonCfg.Quiz.LeaderboardLimit,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			BaseURL:        jsonCfg.Adapter.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as raw nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
