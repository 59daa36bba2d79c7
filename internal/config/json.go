package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON-friendly field
// types (durations accepted as "15m"-style strings).
type StructuredJSONConfig struct {
	Admin struct {
		DefaultPassword  string   `json:"default_password"`
		SecurityQuestion string   `json:"security_question"`
		SecurityAnswer   string   `json:"security_answer"`
		SessionDuration  Duration `json:"session_duration"`
		MaxLoginAttempts int      `json:"max_login_attempts"`
		LockoutDuration  Duration `json:"lockout_duration"`
	} `json:"admin,omitempty"`

	Security struct {
		HashSalt     string `json:"hash_salt"`
		TokenSignKey string `json:"token_sign_key"`
		TokenIssuer  string `json:"token_issuer"`
	} `json:"security,omitempty"`

	Catalog struct {
		InitialLoad   int `json:"initial_load"`
		ModelsPerLoad int `json:"models_per_load"`
	} `json:"catalog,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`
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
		Admin: Admin{
			DefaultPassword:  jsonCfg.Admin.DefaultPassword,
			SecurityQuestion: jsonCfg.Admin.SecurityQuestion,
			SecurityAnswer:   jsonCfg.Admin.SecurityAnswer,
			SessionDuration:  time.Duration(jsonCfg.Admin.SessionDuration),
			MaxLoginAttempts: jsonCfg.Admin.MaxLoginAttempts,
			LockoutDuration:  time.Duration(jsonCfg.Admin.LockoutDuration),
		},
		Security: Security{
			HashSalt:     jsonCfg.Security.HashSalt,
			TokenSignKey: jsonCfg.Security.TokenSignKey,
			TokenIssuer:  jsonCfg.Security.TokenIssuer,
		},
		Catalog: Catalog{
			InitialLoad:   jsonCfg.Catalog.InitialLoad,
			ModelsPerLoad: jsonCfg.Catalog.ModelsPerLoad,
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
	}

	return cfg, nil
}

// Duration is a time.Duration that unmarshals from either a JSON number of
// nanoseconds or a ParseDuration string such as "15m".
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
