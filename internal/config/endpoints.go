package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"

	"github.com/flight-search/flight-prices-checker/internal/domain"
)

// LoadEndpoints reads the endpoint configuration: a JSON object mapping
// logical endpoint names to URLs. It must contain domain.PriceGraphEndpoint.
// Failures are reported as *domain.DataLoadError.
func LoadEndpoints(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewDataLoadError(path, err)
	}

	var endpoints map[string]string
	if err := json.Unmarshal(data, &endpoints); err != nil {
		return nil, domain.NewDataLoadError(path, fmt.Errorf("parse endpoints: %w", err))
	}

	if err := validateEndpoints(endpoints); err != nil {
		return nil, domain.NewDataLoadError(path, err)
	}

	return endpoints, nil
}

func validateEndpoints(endpoints map[string]string) error {
	if _, ok := endpoints[domain.PriceGraphEndpoint]; !ok {
		return fmt.Errorf("endpoint %q is required", domain.PriceGraphEndpoint)
	}

	for name, raw := range endpoints {
		if name == "" {
			return errors.New("endpoint name must not be empty")
		}
		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("endpoint %q: %w", name, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
			return fmt.Errorf("endpoint %q must be an absolute http(s) URL, got %q", name, raw)
		}
	}
	return nil
}
