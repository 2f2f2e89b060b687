package model

// User is the hustler summary shown on the home dashboard.
type User struct {
	XP        float64 `json:"xp"`
	Level     float64 `json:"level"`
	TrustTier float64 `json:"trustTier"`
}

// SystemStatus is an optional banner passed through from the API.
type SystemStatus struct {
	Tone    string `json:"tone"`
	Message string `json:"message"`
}

// Destination is where a hustler is heading while a task is in progress.
type Destination struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
}

// Progress states while a task is being worked.
const (
	ProgressWorking = "WORKING"
	ProgressEnRoute = "EN_ROUTE"
)

var ProgressStates = []string{ProgressWorking, ProgressEnRoute}

// Eligibility of the current hustler for a task.
const (
	EligibilityEligible   = "eligible"
	EligibilityIneligible = "ineligible"
)

var EligibilityStatuses = []string{EligibilityEligible, EligibilityIneligible}

// Submission statuses for completed work.
const (
	SubmissionPending   = "pending"
	SubmissionSubmitted = "submitted"
	SubmissionApproved  = "approved"
	SubmissionRejected  = "rejected"
)

var SubmissionStatuses = []string{SubmissionPending, SubmissionSubmitted, SubmissionApproved, SubmissionRejected}

// Eligibility is the hustler's standing for one task.
type Eligibility struct {
	Status string
	Reason *string
}

// Earnings is the payout for a completed task.
type Earnings struct {
	Amount    float64
	XPAwarded *float64
}

// Submission is the review state of completed work.
type Submission struct {
	Status          string
	RejectionReason *string
}

// XPEntry is one line of XP history.
type XPEntry struct {
	ID        string  `json:"id"`
	Amount    float64 `json:"amount"`
	Reason    string  `json:"reason"`
	CreatedAt string  `json:"createdAt"`
}

// XPBreakdown is XP earned per category.
type XPBreakdown struct {
	Category string  `json:"category"`
	XP       float64 `json:"xp"`
}
