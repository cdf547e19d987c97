package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		AccessTokenSecret  string   `json:"access_token_secret"`
		AccessTokenTTL     Duration `json:"access_token_ttl"`
		RefreshTokenSecret string   `json:"refresh_token_secret"`
		RefreshTokenTTL    Duration `json:"refresh_token_ttl"`
		TokenIssuer        string   `json:"token_issuer"`
		Version            string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		CORSOrigin     string   `json:"cors_origin"`
	} `json:"server,omitempty"`

	Uploads struct {
		BaseURL string   `json:"base_url"`
		APIKey  string   `json:"api_key"`
		Timeout Duration `json:"timeout"`
		TempDir string   `json:"temp_dir"`
	} `json:"uploads,omitempty"`
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
			AccessTokenSecret:  jsonCfg.App.AccessTokenSecret,
			AccessTokenTTL:     time.Duration(jsonCfg.App.AccessTokenTTL),
			RefreshTokenSecret: jsonCfg.App.RefreshTokenSecret,
			RefreshTokenTTL:    time.Duration(jsonCfg.App.RefreshTokenTTL),
			TokenIssuer:        jsonCfg.App.TokenIssuer,
			Version:            jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			CORSOrigin:     jsonCfg.Server.CORSOrigin,
		},
		Uploads: Uploads{
			BaseURL: jsonCfg.Uploads.BaseURL,
			APIKey:  jsonCfg.Uploads.APIKey,
			Timeout: time.Duration(jsonCfg.Uploads.Timeout),
			TempDir: jsonCfg.Uploads.TempDir,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
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
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
