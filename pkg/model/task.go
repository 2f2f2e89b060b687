package model

// Task statuses reported by the API.
const (
	StatusOpen       = "open"
	StatusAssigned   = "assigned"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusDisputed   = "disputed"
)

// TaskStatuses lists every status a task can carry.
var TaskStatuses = []string{StatusOpen, StatusAssigned, StatusInProgress, StatusCompleted, StatusDisputed}

// DefaultCurrency is used when a task omits priceCurrency.
const DefaultCurrency = "USD"

// Task represents a single gig as shown to a hustler.
type Task struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	Status            string   `json:"status"`
	PriceAmount       float64  `json:"priceAmount"`
	PriceCurrency     string   `json:"priceCurrency"`
	EstimatedDuration float64  `json:"estimatedDuration"` // minutes
	RequiredTrustTier float64  `json:"requiredTrustTier"`
	Location          Location `json:"location"`
	Category          string   `json:"category"`
	CreatedAt         string   `json:"createdAt"`
	ExpiresAt         *string  `json:"expiresAt"`
}

// Location is where a task takes place.
type Location struct {
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// Poster is the account that published a task.
type Poster struct {
	Name      string  `json:"name"`
	Rating    float64 `json:"rating"`
	TaskCount float64 `json:"taskCount"`
}
