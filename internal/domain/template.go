package domain

type EmailTemplateType string

const (
	EmailTemplateCreated        EmailTemplateType = "CREATED"
	EmailTemplateAvailable      EmailTemplateType = "AVAILABLE"
	EmailTemplateAvailableOptIn EmailTemplateType = "AVAILABLE_OPT_IN"
	EmailTemplateReminder       EmailTemplateType = "REMINDER"
	EmailTemplateResults        EmailTemplateType = "RESULTS"
)

func (t EmailTemplateType) IsValid() bool {
	switch t {
	case EmailTemplateCreated, EmailTemplateAvailable, EmailTemplateAvailableOptIn,
		EmailTemplateReminder, EmailTemplateResults:
		return true
	default:
		return false
	}
}

// HasSlot reports whether an evaluation carries its own template of this type.
func (t EmailTemplateType) HasSlot() bool {
	return t == EmailTemplateAvailable || t == EmailTemplateReminder
}

type EmailTemplate struct {
	ID      string
	OwnerID string
	Type    EmailTemplateType
	// DefaultType is set on the system-wide fallback template of a type.
	DefaultType *EmailTemplateType
	Subject     string
	Message     string
}

type Sharing string

const (
	SharingPrivate Sharing = "private"
	SharingShared  Sharing = "shared"
	SharingPublic  Sharing = "public"
)

// Template is the question set an evaluation is built from.
type Template struct {
	ID      string
	OwnerID string
	Title   string
	Sharing Sharing
}
