package types

// EntityType is the closed taxonomy label for a kind of sensitive data.
type EntityType string

const (
	NationalID      EntityType = "NATIONAL_ID"
	PassportNumber  EntityType = "PASSPORT_NUMBER"
	MedicalID       EntityType = "MEDICAL_ID"
	BankAccount     EntityType = "BANK_ACCOUNT"
	CreditCard      EntityType = "CREDIT_CARD"
	Person          EntityType = "PERSON"
	DateOfBirth     EntityType = "DATE_OF_BIRTH"
	Email           EntityType = "EMAIL"
	PhoneNumber     EntityType = "PHONE_NUMBER"
	VehicleID       EntityType = "VEHICLE_ID"
	Address         EntityType = "ADDRESS"
	IPAddress       EntityType = "IP_ADDRESS"
	Organization    EntityType = "ORGANIZATION"
	Location        EntityType = "LOCATION"
	AccountUsername EntityType = "ACCOUNT_USERNAME"
	Date            EntityType = "DATE"
	Money           EntityType = "MONEY"
	URL             EntityType = "URL"
	TaxID           EntityType = "TAX_ID"
)

// priority ranks entity types by sensitivity. It drives default action
// selection in the policy engine and is never mutated at runtime.
var priority = map[EntityType]int{
	NationalID:      100,
	PassportNumber:  100,
	MedicalID:       100,
	BankAccount:     90,
	CreditCard:      90,
	Person:          80,
	DateOfBirth:     80,
	Email:           80,
	PhoneNumber:     80,
	VehicleID:       80,
	Address:         70,
	IPAddress:       70,
	Organization:    60,
	Location:        60,
	AccountUsername: 60,
	Date:            40,
	Money:           30,
	URL:             20,
}

// Priority returns the fixed sensitivity ranking for an entity type.
// Unknown types rank 0 so they never trigger a default action on their own.
func Priority(et EntityType) int {
	return priority[et]
}

// AllEntityTypes lists the taxonomy in priority order (highest first).
func AllEntityTypes() []EntityType {
	return []EntityType{
		NationalID, PassportNumber, MedicalID,
		BankAccount, CreditCard,
		Person, DateOfBirth, Email, PhoneNumber, VehicleID,
		Address, IPAddress,
		Organization, Location, AccountUsername,
		Date, Money, URL, TaxID,
	}
}

// RedactionAction is the transformation applied to a detected value.
type RedactionAction string

const (
	ActionRedact    RedactionAction = "redact"
	ActionPseudonym RedactionAction = "pseudonymise"
	ActionMask      RedactionAction = "mask"
	ActionNone      RedactionAction = "none"
)

// Candidate is an unconfirmed detection of sensitive text. Candidates are
// transient: produced by detectors and external recognizers, consumed by one
// pipeline invocation, and discarded after overlap resolution.
type Candidate struct {
	Start      int        `json:"start"` // half-open [Start,End) offsets into the source text
	End        int        `json:"end"`
	EntityType EntityType `json:"entity_type"`
	Value      string     `json:"value"`      // exact substring text[Start:End]
	Confidence int        `json:"confidence"` // 0..100
	Source     string     `json:"source"`     // "pattern:<name>" or a recognizer tag
}

// Length returns the candidate's span length.
func (c Candidate) Length() int { return c.End - c.Start }

// Overlaps reports whether the candidate's half-open span intersects [start,end).
func (c Candidate) Overlaps(start, end int) bool {
	return c.Start < end && start < c.End
}

// Finding is the immutable audit record of a confirmed detection and the
// action taken. One Finding is emitted per surviving, non-suppressed
// candidate. FileID and OriginalFilename are attached by the caller after the
// fact; OriginalFilename is always a basename, never a path.
type Finding struct {
	FileID              string          `json:"file_id"`
	OriginalFilename    string          `json:"original_filename"`
	PageOrLocation      string          `json:"page_or_location"`
	EntityType          EntityType      `json:"entity_type"`
	EntityPriority      int             `json:"entity_priority"`
	DetectedText        string          `json:"detected_text"`
	ContextSnippet      string          `json:"context_snippet"`
	DetectionSource     string          `json:"detection_source"`
	ModelID             string          `json:"model_id"`
	ConfidenceScore     int             `json:"confidence_score"`
	ConfidenceThreshold int             `json:"confidence_threshold"`
	UncertaintyFlag     bool            `json:"uncertainty_flag"`
	RedactionAction     RedactionAction `json:"redaction_action"`
	PseudonymValue      string          `json:"pseudonym_value"`
	EscalationApplied   bool            `json:"escalation_applied"`
	WhitelistMatch      bool            `json:"whitelist_match"`
	BlacklistMatch      bool            `json:"blacklist_match"`
	Language            string          `json:"language"`
	Notes               string          `json:"notes,omitempty"`
}

// FindingsCSVHeader is the fixed column order of the findings table. It is a
// compatibility contract with downstream reporting and must not be reordered.
var FindingsCSVHeader = []string{
	"run_id",
	"file_id",
	"original_filename",
	"file_hash",
	"page_or_location",
	"entity_type",
	"entity_priority",
	"detected_text",
	"context_snippet",
	"detection_source",
	"model_id",
	"confidence_score",
	"confidence_threshold",
	"uncertainty_flag",
	"redaction_action",
	"pseudonym_value",
	"escalation_applied",
	"whitelist_match",
	"blacklist_match",
	"language",
	"notes",
}
