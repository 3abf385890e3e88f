package util

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// Round rounds half away from zero to the given number of decimals.
// NaN and infinities pass through untouched.
func Round(f float64, decimals int) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	pow := math.Pow(10, float64(decimals))
	return math.Round(f*pow) / pow
}

type Secrets struct {
	AlphaVantageKey string `json:"alphaVantage"`
	DatabaseURL     string `json:"databaseUrl"`
}

func LoadSecrets() (*Secrets, error) {
	return LoadSecretsFrom("secrets.json")
}

func LoadSecretsFrom(path string) (*Secrets, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}
	secrets := Secrets{}
	err = json.Unmarshal(f, &secrets)
	if err != nil {
		return nil, fmt.Errorf("could not parse %s: %w", path, err)
	}

	return &secrets, nil
}
