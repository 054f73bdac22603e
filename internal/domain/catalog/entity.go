// internal/domain/catalog/entity.go
package catalog

import (
	"errors"
	"strings"
)

var (
	ErrServiceNotFound  = errors.New("catalog: service not found")
	ErrProviderNotFound = errors.New("catalog: provider not found")
)

// Service is a bookable home-service category shown on the home screen.
type Service struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// Icon is the symbol name the mobile app renders for the category.
	Icon string `json:"icon"`
	// ImageObject is the object name of the category image in the
	// catalog bucket; resolved to a signed URL when a bucket is
	// configured.
	ImageObject string `json:"-"`
}

// Provider is a service company the buyer picks from.
type Provider struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Rating     float64 `json:"rating"`
	Reviews    int     `json:"reviews"`
	ETA        string  `json:"eta"`
	HourlyRate string  `json:"price"`
}

// MenuItem is one bookable line on a provider's menu; adding it to the
// cart produces a cart.Item with the same id, name, price, description.
type MenuItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// Menu is a provider's bookable service list.
type Menu struct {
	Provider string     `json:"provider"`
	Items    []MenuItem `json:"services"`
}

// Services returns every service category.
func Services() []Service {
	out := make([]Service, len(services))
	copy(out, services)
	return out
}

// ServiceByID looks up a category.
func ServiceByID(serviceID string) (Service, error) {
	id := strings.TrimSpace(serviceID)
	for _, s := range services {
		if s.ID == id {
			return s, nil
		}
	}
	return Service{}, ErrServiceNotFound
}

// ProvidersFor returns the providers for a service category.
func ProvidersFor(serviceID string) ([]Provider, error) {
	if _, err := ServiceByID(serviceID); err != nil {
		return nil, err
	}
	ps, ok := providersByService[strings.TrimSpace(serviceID)]
	if !ok {
		return []Provider{}, nil
	}
	out := make([]Provider, len(ps))
	copy(out, ps)
	return out, nil
}

// MenuFor returns a provider's menu. Providers without a published menu
// yield ErrProviderNotFound, matching the app's "Provider not found".
func MenuFor(serviceID, providerID string) (Menu, error) {
	if _, err := ServiceByID(serviceID); err != nil {
		return Menu{}, err
	}
	byProvider, ok := menusByService[strings.TrimSpace(serviceID)]
	if !ok {
		return Menu{}, ErrProviderNotFound
	}
	m, ok := byProvider[strings.TrimSpace(providerID)]
	if !ok {
		return Menu{}, ErrProviderNotFound
	}
	items := make([]MenuItem, len(m.Items))
	copy(items, m.Items)
	return Menu{Provider: m.Provider, Items: items}, nil
}
