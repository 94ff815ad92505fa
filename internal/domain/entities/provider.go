package entities

type ProviderStatus string

const (
	ProviderStatusAvailable ProviderStatus = "available"
	ProviderStatusBusy      ProviderStatus = "busy"
	ProviderStatusOffline   ProviderStatus = "offline"
)

// Provider is a cleaner eligible for assignment. It is owned by another
// system; this service only reads it.
type Provider struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Email        string         `json:"email"`
	Phone        string         `json:"phone"`
	Services     []string       `json:"services"`
	Rating       float64        `json:"rating"`
	Availability []string       `json:"availability"`
	Status       ProviderStatus `json:"status"`
}
